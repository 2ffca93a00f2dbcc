package tween

import (
	"slices"
	"time"

	"github.com/quasilyte/gmath"
)

// Tweens runs a set of animations and drops them once finished.
type Tweens struct {
	tweens []Tween
}

func (t *Tweens) Add(tween Tween) {
	if tween.Update(0) {
		return
	}

	t.tweens = append(t.tweens, tween)
}

func (t *Tweens) Update(dt time.Duration) {
	t.tweens = slices.DeleteFunc(t.tweens, func(tween Tween) bool {
		return tween.Update(dt)
	})
}

func (t *Tweens) Active() bool {
	return len(t.tweens) > 0
}

type Target func(f float64, elapsed, duration time.Duration)

type Tween interface {
	Update(dt time.Duration) (done bool)
}

// Simple drives a Target from 0 to 1 over Duration, optionally shaped
// by an easing function.
type Simple struct {
	Duration time.Duration
	Target   Target
	Ease     func(t float64) float64

	elapsed time.Duration
}

func (t *Simple) Update(dt time.Duration) bool {
	if t.Duration <= 0 {
		return true
	}

	t.elapsed += dt

	f := min(1, float64(t.elapsed)/float64(t.Duration))

	if t.Ease != nil {
		f = t.Ease(f)
	}

	if t.Target != nil {
		t.Target(f, t.elapsed, t.Duration)
	}

	return t.elapsed >= t.Duration
}

func Sequence(tweens ...Tween) Tween {
	return &tweensSequence{tweens: tweens}
}

type tweensSequence struct {
	tweens []Tween
}

func (s *tweensSequence) Update(dt time.Duration) bool {
	if len(s.tweens) > 0 {
		if done := s.tweens[0].Update(dt); done {
			s.tweens = s.tweens[1:]
		}
	}

	return len(s.tweens) == 0
}

func Delay(delay time.Duration, next Tween) Tween {
	first := &Simple{Duration: delay}
	return Sequence(first, next)
}

// LerpValue animates *target from from to to.
func LerpValue(target *float64, from, to float64) Target {
	return func(f float64, _, _ time.Duration) {
		*target = gmath.Lerp(from, to, f)
	}
}

// LerpVec animates *target between two points.
func LerpVec(target *gmath.Vec, from, to gmath.Vec) Target {
	return func(f float64, _, _ time.Duration) {
		*target = from.Add(to.Sub(from).Mulf(f))
	}
}

// Call runs fn once the tweens before it in a Sequence have finished.
func Call(fn func()) Tween {
	return callTween{fn: fn}
}

type callTween struct {
	fn func()
}

func (c callTween) Update(time.Duration) bool {
	c.fn()
	return true
}
