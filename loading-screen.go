package main

import (
	"time"
	"unicode"

	"github.com/fogleman/ease"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/probelab/stimbox/stim"
	"github.com/probelab/stimbox/tween"
	. "github.com/quasilyte/gmath"
)

const instructions = "" +
	"On every trial a question appears at the top of the screen,\n" +
	"with a row of answer buttons below it.\n" +
	"\n" +
	"Click the answer you think is correct.\n" +
	"Respond as fast as you can, a gray mask separates the trials.\n" +
	"\n" +
	"Press M to mute the feedback tones, D for debug output."

// IntroScreen shows the instructions word by word and fades in the
// start button once the text is complete.
type IntroScreen struct {
	source   stim.PointerSource
	recorder stim.Recorder

	now time.Duration

	visibleWordCount float64
	visibleText      string
	textComplete     bool

	btnStart *stim.Button
	tweens   tween.Tweens
}

func NewIntroScreen(source stim.PointerSource, recorder stim.Recorder) *IntroScreen {
	return &IntroScreen{
		source:   source,
		recorder: recorder,
	}
}

func (l *IntroScreen) Update(now time.Duration) (start bool) {
	dt := now - l.now
	l.now = now

	l.visibleWordCount += dt.Seconds() * 12
	l.visibleText = trimWords(instructions, int(l.visibleWordCount))
	l.textComplete = len(l.visibleText) == len(instructions)

	if l.textComplete && l.btnStart == nil {
		opts := stim.ButtonOpts{
			Name:         "start",
			Text:         "Start the session",
			Font:         Fonts,
			LetterHeight: 24,
			Size:         Vec{X: 256, Y: 48},
			Source:       l.source,
			Recorder:     l.recorder,
			AutoDraw:     true,
			AutoLog:      true,
		}
		StartButtonStyle.apply(&opts)

		l.btnStart = must(stim.NewButton(opts))
		l.btnStart.Label().Opacity = 0

		l.tweens.Add(&tween.Simple{
			Duration: 250 * time.Millisecond,
			Ease:     ease.OutCubic,
			Target:   tween.LerpValue(&l.btnStart.Label().Opacity, 0, 1),
		})
	}

	l.tweens.Update(dt)

	if l.btnStart != nil {
		l.btnStart.Update()
		l.btnStart.Poll(now)

		if l.btnStart.NumClicks() > 0 {
			start = true
		}
	}

	return
}

func (l *IntroScreen) Draw(screen *ebiten.Image) {
	screenSize := imageSizeOf(screen)

	// measure the full text, even if we just render a part of it
	textSize := MeasureText(Font24, instructions)

	// add some space for the button + spacing
	contentSize := textSize.Add(Vec{Y: 32 + 48})

	posText := screenSize.Mulf(0.5).Sub(contentSize.Mulf(0.5))
	DrawTextLeft(screen, l.visibleText, Font24, posText, PromptTextColor)

	if l.btnStart != nil {
		l.btnStart.Label().Pos = Vec{X: screenSize.X / 2, Y: posText.Y + textSize.Y + 32 + 24}
		l.btnStart.Draw(screen)
	}
}

func trimWords(text string, wordCount int) string {
	if wordCount <= 0 || len(text) == 0 {
		return ""
	}

	inSpace := unicode.IsSpace(rune(text[0]))

	for idx, ch := range text {
		isSpace := unicode.IsSpace(ch)

		switch {
		case isSpace == inSpace:
			// no change, just look at the next char

		case isSpace && !inSpace:
			// we just entered space
			inSpace = true
			wordCount -= 1

			// if we've reached the number of words to render,
			// we've finished
			if wordCount == 0 {
				return text[:idx]
			}

		case !isSpace && inSpace:
			// we've just left space
			inSpace = false
		}
	}

	return text
}
