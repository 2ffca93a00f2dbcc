package main

import (
	"image/color"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/probelab/stimbox/stim"
	. "github.com/quasilyte/gmath"
)

type Text struct {
	Offset Vec
	Text   string
	Face   text.Face
	Color  color.Color
}

func MeasureTexts(texts []Text) Vec {
	var size Vec
	for _, t := range texts {
		width, height := text.Measure(t.Text, t.Face, t.Face.Metrics().XHeight*2)
		size.X = max(size.X, t.Offset.X+width)
		size.Y += t.Offset.Y + height
	}

	return size
}

func DrawTexts(target *ebiten.Image, offset Vec, texts []Text) {
	pos := offset

	for _, t := range texts {
		DrawTextLeft(target, t.Text, t.Face, pos.Add(t.Offset), t.Color)

		// measure text to advance position
		_, height := text.Measure(t.Text, t.Face, t.Face.Metrics().XHeight*2)
		pos.Y += t.Offset.Y + height
	}
}

// DialogButton is a button control shown in a dialog, together with the
// action that runs when it was clicked.
type DialogButton struct {
	Button *stim.Button
	Action func()
}

type Dialog struct {
	Id      string
	Texts   []Text
	Modal   bool
	Buttons []DialogButton
	Padding Vec

	// the minimum size of the dialog (without padding)
	MinSize Vec
}

type DialogStack struct {
	dialogs     []Dialog
	modalAlpha  float64
	initialized bool
}

func (st *DialogStack) Close() {
	if len(st.dialogs) > 0 {
		// pop the last dialog
		st.dialogs = st.dialogs[:len(st.dialogs)-1]
	}
}

func (st *DialogStack) CloseById(id string) {
	st.dialogs = slices.DeleteFunc(st.dialogs, func(dialog Dialog) bool {
		return dialog.Id == id
	})
}

func (st *DialogStack) Push(dialog Dialog) {
	st.dialogs = append(st.dialogs, dialog)
}

func (st *DialogStack) Update(dt float64, now time.Duration) (modal bool) {
	if len(st.dialogs) > 0 {
		dialog := &st.dialogs[len(st.dialogs)-1]

		for _, button := range dialog.Buttons {
			button.Button.Update()
			button.Button.Poll(now)

			if button.Button.NumClicks() > 0 {
				button.Button.Reset()

				if button.Action != nil {
					button.Action()
				}
			}
		}

		if dialog.Modal {
			modal = true
			st.modalAlpha = min(1, st.modalAlpha+8*dt)

			if !st.initialized {
				st.modalAlpha = 1
			}

		} else {
			st.modalAlpha = max(0, st.modalAlpha-4*dt)
		}
	} else {
		// no dialog, decrease alpha
		st.modalAlpha = max(0, st.modalAlpha-4*dt)
	}

	st.initialized = true

	return
}

func (st *DialogStack) Draw(target *ebiten.Image) {
	if st.modalAlpha > 0 {
		screenSize := imageSizeOf(target)
		op := &ebiten.DrawImageOptions{}
		op.ColorScale.ScaleWithColor(ModalColor)
		op.ColorScale.ScaleAlpha(float32(0.2 * st.modalAlpha))
		op.GeoM.Scale(screenSize.X, screenSize.Y)
		target.DrawImage(whiteImage(), op)
	}

	if len(st.dialogs) > 0 {
		dialog := &st.dialogs[len(st.dialogs)-1]
		dialog.Draw(target)
	}
}

// Layout positions the dialog buttons in a row below the text block.
func (d *Dialog) Layout(screenSize Vec) {
	if len(d.Buttons) == 0 {
		return
	}

	// position is relative to the dialogs origin
	size, pos := d.Measure()

	// origin of the dialog
	origin := screenSize.Mulf(0.5).Sub(size.Mulf(0.5))

	for _, button := range d.Buttons {
		label := button.Button.Label()
		label.Anchor = stim.AnchorTopLeft
		label.Pos = pos.Add(origin)

		pos = pos.Add(Vec{X: label.Size.X}).Add(Vec{X: 16})
	}
}

func (d *Dialog) Draw(target *ebiten.Image) {
	size, _ := d.Measure()

	// base position of the dialog so it is centered on the screen
	screenSize := imageSizeOf(target)
	d.Layout(screenSize)
	pos := screenSize.Mulf(0.5).Sub(size.Mulf(0.5))

	d.DrawAt(target, pos)
}

func (d *Dialog) DrawAt(target *ebiten.Image, pos Vec) {
	size, _ := d.Measure()

	// draw the background
	DrawWindow(target, pos, size)

	// draw the text
	textPos := pos.Add(d.paddingWithDefaultValue())
	DrawTexts(target, textPos, d.Texts)

	// draw the buttons
	for _, button := range d.Buttons {
		button.Button.Draw(target)
	}
}

func (d *Dialog) paddingWithDefaultValue() Vec {
	if !d.Padding.IsZero() {
		return d.Padding
	}

	return vecSplat(24)
}

func (d *Dialog) Measure() (size Vec, button Vec) {
	textSize := MeasureTexts(d.Texts)

	size = textSize.Add(d.paddingWithDefaultValue())

	const buttonSpacing = 16

	// if we have a button, add space for the button
	if len(d.Buttons) > 0 {
		size.Y += buttonSpacing

		var buttonsWidth float64
		var buttonsHeight float64
		for idx, b := range d.Buttons {
			spacing := iff(idx == 0, 0.0, 16.0)
			buttonsWidth += b.Button.Label().Size.X + spacing

			buttonsHeight = max(buttonsHeight, b.Button.Label().Size.Y)
		}

		// account for the width of the buttons
		size.X = max(size.X, buttonsWidth)

		// extract position of the button row
		button = Vec{X: size.X/2 - buttonsWidth/2, Y: size.Y}

		// add the button height to the size
		size.Y += buttonsHeight
	}

	size = size.Add(d.paddingWithDefaultValue())

	size.X = max(size.X, d.MinSize.X)
	size.Y = max(size.Y, d.MinSize.Y)

	return
}
