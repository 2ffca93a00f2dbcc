package main

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Loader runs the session preparation task and hands over to the actual
// experiment once the task has finished and the audio context is usable.
type Loader[T any] struct {
	Next    func(T) ebiten.Game
	Promise Promise[T, string]

	ScreenWidth  int
	ScreenHeight int

	loaded      bool
	playing     bool
	initialized bool
	game        ebiten.Game
}

func (l *Loader[T]) Update() error {
	switch {
	case l.playing:
		l.initialized = true
		return l.game.Update()

	case l.loaded:
		if AudioContext().IsReady() {
			l.playing = true
		}

		if justClicked() {
			l.playing = true
		}

	default:
		if result := l.Promise.Get(); result != nil {
			l.game = l.Next(*result)
			l.game.Layout(l.ScreenWidth, l.ScreenHeight)

			l.loaded = true
		}
	}

	return nil
}

func (l *Loader[T]) Draw(screen *ebiten.Image) {
	switch {
	case l.initialized:
		l.game.Draw(screen)

	case l.loaded:
		l.drawText(screen, "click anywhere to continue")

	default:
		desc := "loading..."
		if status := l.Promise.Status(); status != nil {
			desc = "loading: " + *status + "..."
		}

		l.drawText(screen, desc)
	}
}

func (l *Loader[T]) drawText(screen *ebiten.Image, t string) {
	screen.Fill(BackgroundColor)

	center := imageSizeOf(screen).Mulf(0.5)
	DrawTextCenter(screen, t, Font24, center, HudTextColor)
}

func (l *Loader[T]) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	if l.playing {
		return l.game.Layout(outsideWidth, outsideHeight)
	}

	return l.ScreenWidth, l.ScreenHeight
}
