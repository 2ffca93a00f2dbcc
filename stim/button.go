package stim

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gmath"
)

type ButtonOpts struct {
	Name string
	Text string

	Font         Fonts
	LetterHeight float64

	// Bold defaults to true for buttons, unlike plain labels. Set to
	// &false to get the regular weight.
	Bold   *bool
	Italic bool

	Pos     gmath.Vec
	Size    gmath.Vec
	Padding float64
	Units   string
	Anchor  Anchor

	Color       color.Color
	FillColor   color.Color
	HoverColor  color.Color
	BorderColor color.Color
	BorderWidth float64
	Opacity     float64
	Depth       float64

	BoxFn func(gmath.Rect) gmath.Rect

	AutoDraw bool
	AutoLog  bool

	Source   PointerSource
	Recorder Recorder
}

// Button is a clickable labeled region that records when clicks occurred.
// It owns a Label for rendering and a Listener for pointer state; the click
// history is populated by the per frame Poll path.
//
// TimesOn holds one timestamp per observed press transition, TimesOff one
// per observed release transition. Both are cleared by Reset only.
type Button struct {
	Name string

	// WasClicked is the clicked state captured immediately before the
	// last Reset cleared the history.
	WasClicked bool

	TimesOn  []time.Duration
	TimesOff []time.Duration

	HoverColor color.Color

	label    *Label
	listener *Listener
	rec      Recorder
	autoLog  bool

	// press state as of the last Poll, the edge detection baseline
	pressed bool
}

// NewButton builds the button's label and listener. The label text is
// always centered no matter which alignment the caller asked for, and the
// supplied text doubles as the placeholder.
func NewButton(opts ButtonOpts) (*Button, error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("button %q: no pointer source given", opts.Name)
	}

	bold := true
	if opts.Bold != nil {
		bold = *opts.Bold
	}

	rec := opts.Recorder
	if rec == nil {
		rec = NopRecorder{}
	}

	label, err := NewLabel(LabelOpts{
		Name:        opts.Name,
		Text:        opts.Text,
		Placeholder: opts.Text,

		Font:         opts.Font,
		LetterHeight: opts.LetterHeight,
		Bold:         bold,
		Italic:       opts.Italic,
		Alignment:    AlignCenter,

		Pos:     opts.Pos,
		Size:    opts.Size,
		Padding: opts.Padding,
		Units:   opts.Units,
		Anchor:  opts.Anchor,

		Color:       opts.Color,
		FillColor:   opts.FillColor,
		BorderColor: opts.BorderColor,
		BorderWidth: opts.BorderWidth,
		Opacity:     opts.Opacity,
		Depth:       opts.Depth,

		BoxFn: opts.BoxFn,

		AutoDraw: opts.AutoDraw,
		AutoLog:  opts.AutoLog,
		Recorder: rec,
	})
	if err != nil {
		return nil, fmt.Errorf("button %q: %w", opts.Name, err)
	}

	b := &Button{
		Name:       opts.Name,
		HoverColor: opts.HoverColor,
		label:      label,
		listener:   NewListener(opts.Name, opts.Source, rec, opts.AutoLog),
		rec:        rec,
		autoLog:    opts.AutoLog,
	}

	if b.autoLog {
		b.rec.Record(b.Name, b.String())
	}

	return b, nil
}

func (b *Button) Label() *Label {
	return b.label
}

func (b *Button) Listener() *Listener {
	return b.listener
}

// IsClicked reports whether the primary button is currently pressed while
// the pointer is over the label. It never touches the click history.
func (b *Button) IsClicked() bool {
	return b.listener.PressedIn(b.label)
}

// NumClicks returns the number of recorded press events.
func (b *Button) NumClicks() int {
	return len(b.TimesOn)
}

// Poll runs the per frame edge detection. It must be called at most once
// per frame, after the listener sampled the pointer, with a now that is
// strictly larger than on the previous call.
func (b *Button) Poll(now time.Duration) {
	clicked := b.IsClicked()

	switch {
	case clicked && !b.pressed:
		b.TimesOn = append(b.TimesOn, now)
		if b.autoLog {
			b.rec.Record(b.Name+".timesOn", b.TimesOn)
		}

	case !clicked && b.pressed:
		// a release only matches a press recorded since the last reset
		if len(b.TimesOff) < len(b.TimesOn) {
			b.TimesOff = append(b.TimesOff, now)
			if b.autoLog {
				b.rec.Record(b.Name+".timesOff", b.TimesOff)
			}
		}
	}

	b.pressed = clicked
}

// Reset captures the current clicked state into WasClicked, clears the
// click history and resets the label. The press edge state itself is left
// alone: a button held down across a Reset stays held down.
func (b *Button) Reset() {
	b.WasClicked = b.IsClicked()
	b.TimesOn = nil
	b.TimesOff = nil

	if b.autoLog {
		b.rec.Record(b.Name+".wasClicked", b.WasClicked)
		b.rec.Record(b.Name+".timesOn", b.TimesOn)
		b.rec.Record(b.Name+".timesOff", b.TimesOff)
	}

	b.label.Reset()
}

// Update samples the pointer for this frame.
func (b *Button) Update() {
	b.listener.Update()
}

func (b *Button) Draw(target *ebiten.Image) {
	hovered := b.listener.sampled && b.label.Contains(b.listener.Pos())

	if hovered && b.HoverColor != nil {
		fill := b.label.FillColor
		b.label.FillColor = b.HoverColor
		defer func() { b.label.FillColor = fill }()
	}

	var off gmath.Vec
	if b.pressed {
		off = splat(2)
	}

	b.label.DrawOffset(target, off)
}

func (b *Button) String() string {
	return fmt.Sprintf("Button(name=%q, wasClicked=%t, timesOn=%v, timesOff=%v, label=%v)",
		b.Name, b.WasClicked, b.TimesOn, b.TimesOff, b.label)
}
