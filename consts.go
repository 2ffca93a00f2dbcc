package main

import (
	"image/color"

	"github.com/probelab/stimbox/stim"
)

var DebugColor color.Color = color.RGBA{R: 0xff, B: 0xff, A: 0xff}
var BackgroundColor color.Color = rgbaOf(0xf2efe9ff)
var PromptTextColor color.Color = rgbaOf(0x3a3a3aff)
var HudTextColor color.Color = rgbaOf(0x937b6aff)
var HudRectangleColor color.Color = rgbaOf(0x839ca9ff)
var LightTextColor color.Color = rgbaOf(0xeee1c4ff)
var WindowColor color.Color = rgbaOf(0xeee1c4ff)
var ShadowColor color.Color = rgbaOf(0xada38780)
var ModalColor = rgbaOf(0xada387ff)

// ButtonStyle bundles the colors shared by a family of buttons.
type ButtonStyle struct {
	Text   color.Color
	Fill   color.Color
	Hover  color.Color
	Border color.Color
}

var ChoiceButtonStyle = ButtonStyle{
	Text:   rgbaOf(0xf2efe9ff),
	Fill:   rgbaOf(0x6f8b6eff),
	Hover:  rgbaOf(0x87a985ff),
	Border: rgbaOf(0x5c735bff),
}

var StartButtonStyle = ButtonStyle{
	Text:  rgbaOf(0xf2efe9ff),
	Fill:  rgbaOf(0x8e6d89ff),
	Hover: rgbaOf(0xb089abff),
}

var DialogButtonStyle = ButtonStyle{
	Text:  rgbaOf(0xf2efe9ff),
	Fill:  rgbaOf(0x838383ff),
	Hover: rgbaOf(0xa0a0a0ff),
}

// apply copies the style into button options.
func (s ButtonStyle) apply(opts *stim.ButtonOpts) {
	opts.Color = s.Text
	opts.FillColor = s.Fill
	opts.HoverColor = s.Hover
	opts.BorderColor = s.Border
	if s.Border != nil {
		opts.BorderWidth = 2
	}
}
