package main

import (
	"testing"
	"time"

	"github.com/probelab/stimbox/assets"
	"github.com/probelab/stimbox/stim"
	"github.com/quasilyte/gmath"
)

type fakePointer struct {
	pos     gmath.Vec
	pressed bool
}

func (f *fakePointer) Position() gmath.Vec {
	return f.pos
}

func (f *fakePointer) Pressed(button stim.PointerButton) bool {
	return button == stim.PointerPrimary && f.pressed
}

func TestDialogStackClose(t *testing.T) {
	var st DialogStack

	st.Push(Dialog{Id: "first"})
	st.Push(Dialog{Id: "second"})

	st.Close()
	if len(st.dialogs) != 1 || st.dialogs[0].Id != "first" {
		t.Fatalf("dialogs = %v after Close, want only the first", st.dialogs)
	}

	st.Close()
	st.Close()
	if len(st.dialogs) != 0 {
		t.Errorf("dialogs = %v after closing an empty stack, want none", st.dialogs)
	}
}

func TestDialogStackCloseById(t *testing.T) {
	var st DialogStack

	st.Push(Dialog{Id: "first"})
	st.Push(Dialog{Id: "second"})

	st.CloseById("first")
	if len(st.dialogs) != 1 || st.dialogs[0].Id != "second" {
		t.Fatalf("dialogs = %v after CloseById, want only the second", st.dialogs)
	}

	st.CloseById("unknown")
	if len(st.dialogs) != 1 {
		t.Errorf("CloseById with an unknown id changed the stack: %v", st.dialogs)
	}
}

func TestDialogStackButtonAction(t *testing.T) {
	source := &fakePointer{pos: gmath.Vec{X: 100, Y: 100}}

	button, err := stim.NewButton(stim.ButtonOpts{
		Name:   "done-ok",
		Text:   "OK",
		Font:   assets.Fonts(),
		Pos:    gmath.Vec{X: 100, Y: 100},
		Size:   gmath.Vec{X: 100, Y: 40},
		Source: source,
	})
	if err != nil {
		t.Fatalf("NewButton failed: %v", err)
	}

	var st DialogStack
	var fired bool

	st.Push(Dialog{
		Id: "done",
		Buttons: []DialogButton{
			{Button: button, Action: func() {
				fired = true
				st.CloseById("done")
			}},
		},
	})

	st.Update(0.016, 10*time.Millisecond)
	if fired {
		t.Fatal("action fired without a press")
	}

	source.pressed = true
	st.Update(0.016, 20*time.Millisecond)

	if !fired {
		t.Fatal("action did not fire on the button press")
	}
	if len(st.dialogs) != 0 {
		t.Errorf("dialogs = %v after the closing action, want none", st.dialogs)
	}
	if button.NumClicks() != 0 {
		t.Errorf("NumClicks = %d after the action, want the button reset", button.NumClicks())
	}
}
