package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/probelab/stimbox/stim"
	. "github.com/quasilyte/gmath"
)

func DrawWindow(target *ebiten.Image, pos Vec, size Vec) {
	posShadow := pos.Add(vecSplat(4))
	stim.DrawRoundRect(target, posShadow, size, ShadowColor)

	stim.DrawRoundRect(target, pos, size, WindowColor)
}

// hudRectangle draws one rounded status rectangle growing to the left of
// pos and moves pos along for the next one.
func (e *Experiment) hudRectangle(target *ebiten.Image, pos *Vec, msg string) {
	textSize := MeasureText(Font24, msg)

	size := textSize.Add(Vec{X: 32, Y: 16})
	pos.X -= size.X

	stim.DrawRoundRect(target, *pos, size, HudRectangleColor)
	DrawTextCenter(target, msg, Font24, pos.Add(size.Mulf(0.5)), LightTextColor)

	// spacing before the next rectangle
	pos.X -= 16
}

func (e *Experiment) drawHUD(target *ebiten.Image) {
	pos := Vec{X: imageSizeOf(target).X - 16, Y: 16}

	if e.state == phaseTrial || e.state == phaseMask {
		msg := fmt.Sprintf("Trial %d of %d", e.trialIdx+1, len(e.order))
		e.hudRectangle(target, &pos, msg)
	}

	if len(e.results.Trials) > 0 {
		msg := fmt.Sprintf("Correct %d of %d", e.results.CorrectCount(), len(e.results.Trials))
		e.hudRectangle(target, &pos, msg)
	}
}

func (e *Experiment) drawDebugText(target *ebiten.Image) {
	pos := vecSplat(32)

	t := fmt.Sprintf("%1.1f fps, seed %d, session %q", ebiten.ActualFPS(), e.seed, e.def.Name)
	DrawTextLeft(target, t, Font16, pos, DebugColor)

	pos.Y += 24
	t = fmt.Sprintf("clock %s, phase %d", e.now, e.state)
	DrawTextLeft(target, t, Font16, pos, DebugColor)

	for _, button := range e.choices {
		pos.Y += 24
		t = fmt.Sprintf("%s: clicked=%t clicks=%d on=%v off=%v",
			button.Name, button.IsClicked(), button.NumClicks(), button.TimesOn, button.TimesOff)
		DrawTextLeft(target, t, Font16, pos, DebugColor)
	}

	if e.uploadAsync.Started() {
		pos.Y += 24

		state := "upload done"
		if e.uploadAsync.Waiting() {
			state = "uploading..."
		}

		DrawTextLeft(target, state, Font16, pos, DebugColor)
	}
}
