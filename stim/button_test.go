package stim

import (
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/probelab/stimbox/assets"
	"github.com/quasilyte/gmath"
)

type scriptedPointer struct {
	pos     gmath.Vec
	buttons [pointerButtonCount]bool
}

func (s *scriptedPointer) Position() gmath.Vec {
	return s.pos
}

func (s *scriptedPointer) Pressed(button PointerButton) bool {
	return s.buttons[button]
}

type captureRecorder struct {
	records []string
}

func (c *captureRecorder) Record(name string, value any) {
	c.records = append(c.records, fmt.Sprintf("%s=%v", name, value))
}

func newTestButton(t *testing.T, text string) (*Button, *scriptedPointer) {
	t.Helper()

	source := &scriptedPointer{pos: gmath.Vec{X: -100, Y: -100}}

	button, err := NewButton(ButtonOpts{
		Name:   "choice",
		Text:   text,
		Font:   assets.Fonts(),
		Pos:    gmath.Vec{X: 100, Y: 100},
		Size:   gmath.Vec{X: 192, Y: 48},
		Source: source,
	})
	if err != nil {
		t.Fatalf("NewButton failed: %v", err)
	}

	return button, source
}

// step simulates one frame: move the pointer, set the primary button state,
// sample the listener and run the edge detection.
func step(b *Button, source *scriptedPointer, over, pressed bool, now time.Duration) {
	if over {
		source.pos = gmath.Vec{X: 100, Y: 100}
	} else {
		source.pos = gmath.Vec{X: -100, Y: -100}
	}

	source.buttons[PointerPrimary] = pressed

	b.Update()
	b.Poll(now)
}

func TestMultilineDerivedFromContent(t *testing.T) {
	cases := []struct {
		text      string
		multiline bool
	}{
		{"Click me", false},
		{"Line1\nLine2", true},
		{"one\ntwo\nthree", true},
		{"", false},
	}

	for _, c := range cases {
		button, _ := newTestButton(t, c.text)
		if got := button.Label().Multiline; got != c.multiline {
			t.Errorf("text %q: multiline = %t, want %t", c.text, got, c.multiline)
		}
	}
}

func TestButtonDefaults(t *testing.T) {
	button, _ := newTestButton(t, "Click me")

	if button.NumClicks() != 0 {
		t.Errorf("NumClicks = %d, want 0", button.NumClicks())
	}

	if button.IsClicked() {
		t.Error("IsClicked = true on a fresh button")
	}

	if button.WasClicked {
		t.Error("WasClicked = true on a fresh button")
	}

	label := button.Label()

	if label.Alignment != AlignCenter {
		t.Errorf("label alignment = %q, want center", label.Alignment)
	}

	if !label.Bold {
		t.Error("button label is not bold by default")
	}

	if label.Placeholder != "Click me" {
		t.Errorf("placeholder = %q, want the button text", label.Placeholder)
	}
}

func TestButtonBoldOverride(t *testing.T) {
	source := &scriptedPointer{}
	regular := false

	button, err := NewButton(ButtonOpts{
		Name:   "plain",
		Text:   "ok",
		Font:   assets.Fonts(),
		Size:   gmath.Vec{X: 100, Y: 40},
		Bold:   &regular,
		Source: source,
	})
	if err != nil {
		t.Fatalf("NewButton failed: %v", err)
	}

	if button.Label().Bold {
		t.Error("Bold=&false did not turn off the bold weight")
	}
}

func TestClickCounting(t *testing.T) {
	button, source := newTestButton(t, "Click me")

	now := time.Duration(0)
	tick := func(over, pressed bool) {
		now += 16 * time.Millisecond
		step(button, source, over, pressed, now)
	}

	// one press/release pair over the button
	tick(true, false)
	tick(true, true)
	tick(true, true)
	tick(true, false)

	if button.NumClicks() != 1 {
		t.Fatalf("NumClicks = %d, want 1", button.NumClicks())
	}
	if len(button.TimesOff) != 1 {
		t.Fatalf("len(TimesOff) = %d, want 1", len(button.TimesOff))
	}
	if button.TimesOff[0] <= button.TimesOn[0] {
		t.Errorf("release %v not after press %v", button.TimesOff[0], button.TimesOn[0])
	}

	// a second click
	tick(true, true)
	tick(true, false)

	if button.NumClicks() != 2 || button.NumClicks() != len(button.TimesOn) {
		t.Errorf("NumClicks = %d, len(TimesOn) = %d, want 2 and equal", button.NumClicks(), len(button.TimesOn))
	}
}

func TestPressOutsideDoesNotCount(t *testing.T) {
	button, source := newTestButton(t, "Click me")

	step(button, source, false, true, 10*time.Millisecond)
	step(button, source, false, false, 20*time.Millisecond)

	if button.NumClicks() != 0 {
		t.Errorf("NumClicks = %d after a press outside the button, want 0", button.NumClicks())
	}
}

func TestResetAfterRelease(t *testing.T) {
	button, source := newTestButton(t, "Click me")

	step(button, source, true, true, 10*time.Millisecond)
	step(button, source, true, false, 20*time.Millisecond)

	button.Reset()

	if button.NumClicks() != 0 {
		t.Errorf("NumClicks = %d after reset, want 0", button.NumClicks())
	}
	if len(button.TimesOn) != 0 || len(button.TimesOff) != 0 {
		t.Errorf("history not cleared: on=%v off=%v", button.TimesOn, button.TimesOff)
	}
	if button.WasClicked {
		t.Error("WasClicked = true, but the pointer was released before the reset")
	}
}

func TestResetWhileHeld(t *testing.T) {
	button, source := newTestButton(t, "Click me")

	step(button, source, true, true, 10*time.Millisecond)

	button.Reset()

	if !button.WasClicked {
		t.Error("WasClicked = false, but the button was held during the reset")
	}
	if len(button.TimesOn) != 0 || len(button.TimesOff) != 0 {
		t.Errorf("history not cleared: on=%v off=%v", button.TimesOn, button.TimesOff)
	}
	if !button.IsClicked() {
		t.Error("IsClicked = false, but the listener still reports the press")
	}

	// the release belongs to the cleared press, it must not be recorded
	step(button, source, true, false, 20*time.Millisecond)

	if len(button.TimesOff) != 0 {
		t.Errorf("TimesOff = %v after an orphaned release, want empty", button.TimesOff)
	}

	// the next full click is tracked again
	step(button, source, true, true, 30*time.Millisecond)
	step(button, source, true, false, 40*time.Millisecond)

	if button.NumClicks() != 1 || len(button.TimesOff) != 1 {
		t.Errorf("NumClicks = %d, len(TimesOff) = %d after a fresh click, want 1 and 1",
			button.NumClicks(), len(button.TimesOff))
	}
}

func TestResetIdempotent(t *testing.T) {
	button, source := newTestButton(t, "Click me")

	step(button, source, true, true, 10*time.Millisecond)

	button.Reset()
	wasClicked := button.WasClicked

	button.Reset()

	if button.WasClicked != wasClicked {
		t.Errorf("WasClicked changed from %t to %t across a second reset", wasClicked, button.WasClicked)
	}
	if len(button.TimesOn) != 0 || len(button.TimesOff) != 0 {
		t.Errorf("history not empty after double reset: on=%v off=%v", button.TimesOn, button.TimesOff)
	}
}

func TestHistoryOrderingInvariant(t *testing.T) {
	button, source := newTestButton(t, "Click me")
	rng := rand.New(rand.NewPCG(1, 2))

	now := time.Duration(0)
	for range 500 {
		now += 16 * time.Millisecond
		step(button, source, rng.IntN(4) > 0, rng.IntN(2) == 0, now)

		if len(button.TimesOff) > len(button.TimesOn) {
			t.Fatalf("more releases than presses: on=%d off=%d", len(button.TimesOn), len(button.TimesOff))
		}
		if len(button.TimesOn) > len(button.TimesOff)+1 {
			t.Fatalf("more than one unmatched press: on=%d off=%d", len(button.TimesOn), len(button.TimesOff))
		}
	}

	for idx := 1; idx < len(button.TimesOn); idx++ {
		if button.TimesOn[idx] <= button.TimesOn[idx-1] {
			t.Fatalf("TimesOn not strictly increasing at %d: %v", idx, button.TimesOn)
		}
	}
	for idx := 1; idx < len(button.TimesOff); idx++ {
		if button.TimesOff[idx] <= button.TimesOff[idx-1] {
			t.Fatalf("TimesOff not strictly increasing at %d: %v", idx, button.TimesOff)
		}
	}
}

func TestPrimaryButtonOnly(t *testing.T) {
	button, source := newTestButton(t, "Click me")

	// secondary press over the button
	source.pos = gmath.Vec{X: 100, Y: 100}
	source.buttons[PointerSecondary] = true
	button.Update()
	button.Poll(10 * time.Millisecond)

	if button.IsClicked() || button.NumClicks() != 0 {
		t.Error("a secondary button press registered as a click")
	}

	// a chord of primary plus secondary does not count either
	source.buttons[PointerPrimary] = true
	button.Update()
	button.Poll(20 * time.Millisecond)

	if button.IsClicked() || button.NumClicks() != 0 {
		t.Error("a primary+secondary chord registered as a click")
	}

	// primary alone does
	source.buttons[PointerSecondary] = false
	button.Update()
	button.Poll(30 * time.Millisecond)

	if !button.IsClicked() || button.NumClicks() != 1 {
		t.Errorf("IsClicked = %t, NumClicks = %d for a plain primary press", button.IsClicked(), button.NumClicks())
	}
}

func TestConstructionErrors(t *testing.T) {
	_, err := NewButton(ButtonOpts{Name: "broken", Text: "x", Source: &scriptedPointer{}})
	if err == nil {
		t.Error("NewButton without a font did not fail")
	}

	_, err = NewButton(ButtonOpts{Name: "broken", Text: "x", Font: assets.Fonts()})
	if err == nil {
		t.Error("NewButton without a pointer source did not fail")
	}
}

func TestAutoLogRecords(t *testing.T) {
	rec := &captureRecorder{}
	source := &scriptedPointer{}

	button, err := NewButton(ButtonOpts{
		Name:     "logged",
		Text:     "ok",
		Font:     assets.Fonts(),
		Size:     gmath.Vec{X: 100, Y: 40},
		Source:   source,
		AutoLog:  true,
		Recorder: rec,
	})
	if err != nil {
		t.Fatalf("NewButton failed: %v", err)
	}

	if len(rec.records) != 1 {
		t.Fatalf("creation emitted %d records, want exactly 1", len(rec.records))
	}

	before := len(rec.records)
	button.Reset()

	if len(rec.records) <= before {
		t.Error("Reset did not record the attribute mutations")
	}
}
