package main

import (
	_ "embed"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed trials.json
var defaultSessionJSON []byte

func main() {
	const windowScale = 2

	screenWidth, screenHeight := 800, 480

	stop := ProfileStart()
	defer stop()

	// ensure we have an audio context
	AudioContext()

	game := &Loader[SessionDef]{
		ScreenWidth:  screenWidth,
		ScreenHeight: screenHeight,

		// parse the session definition in the background
		Promise: AsyncTask(func(yield func(string)) SessionDef {
			yield("session definition")

			def, err := LoadSession(sessionSource())
			if err != nil {
				log.Fatalf("loading session: %s", err)
			}

			return def
		}),

		Next: func(def SessionDef) ebiten.Game {
			return &Experiment{
				def:      def,
				debug:    Debug,
				seed:     1,
				feedback: NewFeedback(),

				screenWidth:  screenWidth,
				screenHeight: screenHeight,
			}
		},
	}

	ebiten.SetWindowSize(screenWidth*windowScale, screenHeight*windowScale)
	ebiten.SetWindowTitle("Stimbox")
	ebiten.SetVsyncEnabled(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
