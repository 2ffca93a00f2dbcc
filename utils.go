package main

import (
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/probelab/stimbox/assets"
	. "github.com/quasilyte/gmath"
)

var Fonts = assets.Fonts()

var Font16 = Fonts.Face(16, false, false)
var Font24 = Fonts.Face(24, false, false)
var Font32Bold = Fonts.Face(32, true, false)

// Promise carries the result of a background task into the frame loop.
type Promise[T any, P any] struct {
	result   *atomic.Pointer[T]
	progress *atomic.Pointer[P]
	seen     *atomic.Bool
	started  bool
}

func AsyncTask[T any, P any](task func(yield func(P)) T) Promise[T, P] {
	result := &atomic.Pointer[T]{}
	progress := &atomic.Pointer[P]{}

	// spawn go-routine with task
	go func() {
		value := task(func(p P) {
			progress.Store(&p)
		})

		result.Store(&value)
	}()

	return Promise[T, P]{
		started:  true,
		result:   result,
		progress: progress,
		seen:     &atomic.Bool{},
	}
}

func (p Promise[T, P]) Get() *T {
	if p.result == nil {
		return nil
	}

	return p.result.Load()
}

func (p Promise[T, P]) GetOnce() *T {
	if p.result == nil || p.seen.Load() {
		return nil
	}

	value := p.result.Load()
	if value != nil && !p.seen.CompareAndSwap(false, true) {
		return nil
	}

	return value
}

func (p Promise[T, P]) Status() *P {
	if p.progress == nil || p.Get() != nil {
		return nil
	}

	return p.progress.Load()
}

func (p Promise[T, P]) Started() bool {
	return p.started
}

func (p Promise[T, P]) Waiting() bool {
	return p.started && p.Get() == nil
}

func rgbaOf(rgba uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8((rgba >> 24) & 0xff),
		G: uint8((rgba >> 16) & 0xff),
		B: uint8((rgba >> 8) & 0xff),
		A: uint8((rgba >> 0) & 0xff),
	}
}

func MeasureText(face text.Face, t string) Vec {
	width, height := text.Measure(t, face, face.Metrics().XHeight*2)
	return Vec{X: width, Y: height}
}

func DrawText(target *ebiten.Image, msg string, face text.Face, pos Vec, color color.Color, primaryAlign, secondaryAlign text.Align) {
	if color == nil {
		color = DebugColor
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.PrimaryAlign = primaryAlign
	op.SecondaryAlign = secondaryAlign
	op.ColorScale.ScaleWithColor(color)
	op.LineSpacing = face.Metrics().XHeight * 2.0
	text.Draw(target, msg, face, op)
}

func DrawTextCenter(target *ebiten.Image, msg string, face text.Face, pos Vec, color color.Color) {
	DrawText(target, msg, face, pos, color, text.AlignCenter, text.AlignCenter)
}

func DrawTextLeft(target *ebiten.Image, msg string, face text.Face, pos Vec, color color.Color) {
	DrawText(target, msg, face, pos, color, text.AlignStart, text.AlignStart)
}

func iff[T any](cond bool, ifTrue, ifFalse T) T {
	if cond {
		return ifTrue
	}

	return ifFalse
}

func vecSplat(val float64) Vec {
	return Vec{X: val, Y: val}
}

func imageSizeOf(image *ebiten.Image) Vec {
	return Vec{
		X: float64(image.Bounds().Dx()),
		Y: float64(image.Bounds().Dy()),
	}
}

func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}

	return value
}
