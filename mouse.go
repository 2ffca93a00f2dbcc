package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/probelab/stimbox/stim"
	. "github.com/quasilyte/gmath"
)

// pointerSource feeds the mouse and touch state into the stim listeners.
// The first active touch acts as the primary button.
type pointerSource struct {
	touchIds []ebiten.TouchID
}

func (p *pointerSource) Position() Vec {
	// re-use touchId buffer
	p.touchIds = ebiten.AppendTouchIDs(p.touchIds[:0])
	for _, touchId := range p.touchIds {
		touchX, touchY := ebiten.TouchPosition(touchId)
		return Vec{X: float64(touchX), Y: float64(touchY)}
	}

	mouseX, mouseY := ebiten.CursorPosition()
	return Vec{X: float64(mouseX), Y: float64(mouseY)}
}

func (p *pointerSource) Pressed(button stim.PointerButton) bool {
	switch button {
	case stim.PointerPrimary:
		p.touchIds = ebiten.AppendTouchIDs(p.touchIds[:0])
		if len(p.touchIds) > 0 {
			return true
		}

		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	case stim.PointerSecondary:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	case stim.PointerTertiary:
		return ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)
	}

	return false
}

var touchIds []ebiten.TouchID

// justClicked reports a fresh click or tap anywhere on the screen.
func justClicked() bool {
	touchIds = inpututil.AppendJustPressedTouchIDs(touchIds[:0])
	if len(touchIds) > 0 {
		return true
	}

	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}
