package stim

import (
	"github.com/quasilyte/gmath"
)

type PointerButton int

const (
	PointerPrimary PointerButton = iota
	PointerSecondary
	PointerTertiary

	pointerButtonCount
)

// PointerSource reports the raw pointer state. The production source polls
// the mouse and touch devices, tests script it.
type PointerSource interface {
	Position() gmath.Vec
	Pressed(button PointerButton) bool
}

// Region is anything with a point-in-box test, usually a Label.
type Region interface {
	Contains(p gmath.Vec) bool
}

// Listener tracks the pointer relative to one stimulus. It samples its
// source once per frame in Update, so all queries made within a frame see
// the same state.
type Listener struct {
	Name    string
	AutoLog bool

	source PointerSource
	rec    Recorder

	pos     gmath.Vec
	state   [pointerButtonCount]bool
	prev    [pointerButtonCount]bool
	sampled bool
}

func NewListener(name string, source PointerSource, rec Recorder, autoLog bool) *Listener {
	if rec == nil {
		rec = NopRecorder{}
	}

	return &Listener{
		Name:    name,
		AutoLog: autoLog,
		source:  source,
		rec:     rec,
	}
}

// Update samples the pointer source. Call once per frame, before any
// queries for that frame.
func (l *Listener) Update() {
	l.prev = l.state
	l.pos = l.source.Position()

	for b := PointerButton(0); b < pointerButtonCount; b++ {
		l.state[b] = l.source.Pressed(b)
	}

	l.sampled = true

	if l.AutoLog {
		if l.JustPressed(PointerPrimary) {
			l.rec.Record(l.Name+".pointer", "down")
		}
		if l.JustReleased(PointerPrimary) {
			l.rec.Record(l.Name+".pointer", "up")
		}
	}
}

// Pos returns the pointer position as of the last Update.
func (l *Listener) Pos() gmath.Vec {
	return l.pos
}

// Pressed reports the cached state of the given button.
func (l *Listener) Pressed(button PointerButton) bool {
	return l.state[button]
}

func (l *Listener) JustPressed(button PointerButton) bool {
	return l.state[button] && !l.prev[button]
}

func (l *Listener) JustReleased(button PointerButton) bool {
	return !l.state[button] && l.prev[button]
}

// PressedIn reports whether the primary button, and only the primary
// button, is down while the pointer is inside the region.
func (l *Listener) PressedIn(region Region) bool {
	if !l.sampled {
		return false
	}

	if !l.state[PointerPrimary] || l.state[PointerSecondary] || l.state[PointerTertiary] {
		return false
	}

	return region.Contains(l.pos)
}
