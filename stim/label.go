package stim

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/quasilyte/gmath"
)

// Fonts resolves a typeface variant to a concrete face at a given size.
type Fonts interface {
	Face(size float64, bold, italic bool) text.Face
}

// Anchor names the point of the label's box that Pos refers to.
type Anchor string

const (
	AnchorCenter      Anchor = "center"
	AnchorTopLeft     Anchor = "top-left"
	AnchorTopRight    Anchor = "top-right"
	AnchorBottomLeft  Anchor = "bottom-left"
	AnchorBottomRight Anchor = "bottom-right"
)

// offset from the anchor point to the top left corner of the box
func (a Anchor) offset(size gmath.Vec) gmath.Vec {
	off := size.Mulf(-0.5)

	name := string(a)
	if strings.Contains(name, "left") {
		off.X = 0
	}
	if strings.Contains(name, "right") {
		off.X = -size.X
	}
	if strings.Contains(name, "top") {
		off.Y = 0
	}
	if strings.Contains(name, "bottom") {
		off.Y = -size.Y
	}

	return off
}

type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

func (a Alignment) primary() text.Align {
	switch a {
	case AlignLeft:
		return text.AlignStart
	case AlignRight:
		return text.AlignEnd
	default:
		return text.AlignCenter
	}
}

type LabelOpts struct {
	Name        string
	Text        string
	Placeholder string

	Font         Fonts
	LetterHeight float64
	Bold         bool
	Italic       bool
	Alignment    Alignment

	Pos     gmath.Vec
	Size    gmath.Vec
	Padding float64
	Units   string
	Anchor  Anchor

	Color       color.Color
	FillColor   color.Color
	BorderColor color.Color
	BorderWidth float64
	Opacity     float64
	Depth       float64

	// BoxFn can replace the computed box geometry.
	BoxFn func(gmath.Rect) gmath.Rect

	AutoDraw bool
	AutoLog  bool

	Recorder Recorder
}

// Label is a rendered text box stimulus. The text layout mode is resolved
// once at construction: a label is multiline exactly if its initial text
// contains a line break. Later text mutation does not re-derive the mode.
type Label struct {
	Name string

	Text        string
	Placeholder string
	Multiline   bool

	Pos     gmath.Vec
	Size    gmath.Vec
	Padding float64
	Units   string
	Anchor  Anchor

	LetterHeight float64
	Bold         bool
	Italic       bool
	Alignment    Alignment

	Color       color.Color
	FillColor   color.Color
	BorderColor color.Color
	BorderWidth float64
	Opacity     float64
	Depth       float64

	AutoDraw bool
	AutoLog  bool

	boxFn func(gmath.Rect) gmath.Rect
	face  text.Face
	rec   Recorder

	caret     int
	selection [2]int
}

func NewLabel(opts LabelOpts) (*Label, error) {
	if opts.Font == nil {
		return nil, fmt.Errorf("label %q: no font source given", opts.Name)
	}

	letterHeight := opts.LetterHeight
	if letterHeight == 0 {
		letterHeight = 24
	}

	face := opts.Font.Face(letterHeight, opts.Bold, opts.Italic)

	rec := opts.Recorder
	if rec == nil {
		rec = NopRecorder{}
	}

	l := &Label{
		Name:        opts.Name,
		Text:        opts.Text,
		Placeholder: opts.Placeholder,
		Multiline:   strings.Contains(opts.Text, "\n"),

		Pos:     opts.Pos,
		Size:    opts.Size,
		Padding: opts.Padding,
		Units:   opts.Units,
		Anchor:  opts.Anchor,

		LetterHeight: letterHeight,
		Bold:         opts.Bold,
		Italic:       opts.Italic,
		Alignment:    opts.Alignment,

		Color:       colorOrDefault(opts.Color, color.Black),
		FillColor:   opts.FillColor,
		BorderColor: opts.BorderColor,
		BorderWidth: opts.BorderWidth,
		Opacity:     opts.Opacity,
		Depth:       opts.Depth,

		AutoDraw: opts.AutoDraw,
		AutoLog:  opts.AutoLog,

		boxFn: opts.BoxFn,
		face:  face,
		rec:   rec,
	}

	if l.Opacity == 0 {
		l.Opacity = 1
	}

	if l.Anchor == "" {
		l.Anchor = AnchorCenter
	}

	if l.Size.IsZero() {
		// size the box from the measured text plus padding
		l.Size = l.Measure().Add(splat(2 * l.Padding))
	}

	return l, nil
}

func colorOrDefault(c color.Color, fallback color.Color) color.Color {
	if c == nil {
		return fallback
	}

	return c
}

// Measure returns the size of the rendered text without padding.
func (l *Label) Measure() gmath.Vec {
	content := l.Text
	if content == "" {
		content = l.Placeholder
	}

	width, height := text.Measure(l.renderedText(content), l.face, l.lineSpacing())
	return gmath.Vec{X: width, Y: height}
}

// Bounds returns the anchor resolved box of the label.
func (l *Label) Bounds() gmath.Rect {
	origin := l.Pos.Add(l.Anchor.offset(l.Size))
	rect := gmath.Rect{Min: origin, Max: origin.Add(l.Size)}

	if l.boxFn != nil {
		rect = l.boxFn(rect)
	}

	return rect
}

func (l *Label) Contains(p gmath.Vec) bool {
	return l.Bounds().Contains(p)
}

// SetText replaces the rendered text. The multiline mode stays as derived
// at construction time.
func (l *Label) SetText(value string) {
	l.Text = value
	l.caret = len(value)
	l.selection = [2]int{}

	if l.AutoLog {
		l.rec.Record(l.Name+".text", value)
	}
}

// Select marks the span between from and to as selected.
func (l *Label) Select(from, to int) {
	l.selection = [2]int{from, to}
	l.caret = to
}

// Reset clears the transient editing state of the label, that is the
// caret position and the selection span.
func (l *Label) Reset() {
	l.caret = 0
	l.selection = [2]int{}
}

func (l *Label) Selection() (from, to int) {
	return l.selection[0], l.selection[1]
}

func (l *Label) Caret() int {
	return l.caret
}

func (l *Label) lineSpacing() float64 {
	return l.face.Metrics().XHeight * 2.0
}

// renderedText prepares the text for the current layout mode. In single
// line mode embedded line breaks collapse into spaces.
func (l *Label) renderedText(content string) string {
	if l.Multiline {
		return content
	}

	return strings.ReplaceAll(content, "\n", " ")
}

func (l *Label) Draw(target *ebiten.Image) {
	l.DrawOffset(target, gmath.Vec{})
}

// DrawOffset draws the label shifted by off, used for press feedback.
func (l *Label) DrawOffset(target *ebiten.Image, off gmath.Vec) {
	l.drawBox(target, off, l.FillColor)

	content := l.Text
	textColor := l.Color
	if content == "" {
		content = l.Placeholder
		textColor = withAlpha(textColor, 0.5)
	}

	bounds := l.Bounds()

	pos := bounds.Center().Add(off)
	switch l.Alignment {
	case AlignLeft:
		pos.X = bounds.Min.X + l.Padding + off.X
	case AlignRight:
		pos.X = bounds.Max.X - l.Padding + off.X
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.PrimaryAlign = l.Alignment.primary()
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = l.lineSpacing()
	op.ColorScale.ScaleWithColor(textColor)
	op.ColorScale.ScaleAlpha(float32(l.Opacity))

	text.Draw(target, l.renderedText(content), l.face, op)
}

func (l *Label) drawBox(target *ebiten.Image, off gmath.Vec, fill color.Color) {
	bounds := l.Bounds()
	pos := bounds.Min.Add(off)

	if fill != nil {
		DrawRoundRect(target, pos, l.Size, withAlpha(fill, l.Opacity))
	}

	if l.BorderColor != nil && l.BorderWidth > 0 {
		StrokeRoundRect(target, pos, l.Size, l.BorderWidth, withAlpha(l.BorderColor, l.Opacity))
	}
}

// String dumps the current attribute values, used for creation records.
func (l *Label) String() string {
	return fmt.Sprintf("Label(name=%q, text=%q, multiline=%t, pos=%v, size=%v, anchor=%s, align=%s, bold=%t)",
		l.Name, l.Text, l.Multiline, l.Pos, l.Size, l.Anchor, l.Alignment, l.Bold)
}
