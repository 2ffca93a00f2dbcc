package main

import (
	"fmt"
	"log"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/fogleman/ease"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/probelab/stimbox/stim"
	"github.com/probelab/stimbox/tween"
	. "github.com/quasilyte/gmath"
)

type phase int

const (
	phaseIntro phase = iota
	phaseTrial
	phaseMask
	phaseDone
)

// Experiment drives one session: instructions, the shuffled trials with a
// noise mask in between, and the completion dialog. It is the frame loop
// that samples the pointer listeners and runs the click edge detection of
// every button, once per frame.
type Experiment struct {
	initialized bool

	screenWidth  int
	screenHeight int

	debug bool
	seed  uint64
	rng   *rand.Rand

	clock *stim.Clock
	now   time.Duration

	source   *pointerSource
	recorder stim.Recorder

	def     SessionDef
	order   []int
	results Results

	state      phase
	trialIdx   int
	trialOnset time.Duration

	prompt  *stim.Label
	choices []*stim.Button

	intro     *IntroScreen
	dialogs   DialogStack
	mask      *NoiseMask
	maskUntil time.Duration

	feedback Feedback
	tweens   tween.Tweens

	uploadAsync Promise[string, struct{}]
}

func (e *Experiment) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	_ = outsideWidth
	_ = outsideHeight

	// stay with a fixed screen size
	return e.screenWidth, e.screenHeight
}

func (e *Experiment) Reset(seed uint64) {
	*e = Experiment{
		initialized:  true,
		debug:        e.debug,
		seed:         seed,
		feedback:     e.feedback,
		screenWidth:  e.screenWidth,
		screenHeight: e.screenHeight,
		def:          e.def,
	}

	e.clock = stim.NewClock()
	e.rng = RandWithSeed(seed)
	e.source = &pointerSource{}
	e.recorder = stim.LogRecorder{}

	e.order = e.def.TrialOrder(e.rng)
	e.results = Results{
		Participant: ParticipantName(),
		Session:     e.def.Name,
		Seed:        seed,
	}

	e.intro = NewIntroScreen(e.source, e.recorder)
	e.mask = NewNoiseMask(e.screenWidth, e.screenHeight)

	e.state = phaseIntro
}

func (e *Experiment) Update() error {
	// initialize the experiment if needed
	if !e.initialized {
		e.Reset(e.seed)
	}

	// step the session clock
	now := e.clock.Now()
	dt := now - e.now
	e.now = now

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		e.debug = !e.debug
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		e.feedback.ToggleMute()
	}

	// restart the whole session with the next seed
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		e.Reset(e.seed + 1)
		return nil
	}

	e.tweens.Update(dt)

	switch e.state {
	case phaseIntro:
		if e.intro.Update(e.now) {
			e.feedback.Play(e.feedback.Press)
			e.beginTrial(0)
		}

	case phaseTrial:
		e.updateTrial()

	case phaseMask:
		if e.now >= e.maskUntil {
			e.advance()
		}

	case phaseDone:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			e.dialogs.Close()
		}

		e.dialogs.Update(dt.Seconds(), e.now)

		if status := e.uploadAsync.GetOnce(); status != nil {
			log.Printf("[results] %s", *status)
		}
	}

	return nil
}

// beginTrial builds the prompt label and one button control per choice.
func (e *Experiment) beginTrial(idx int) {
	trial := e.def.Trials[e.order[idx]]

	e.trialIdx = idx
	e.state = phaseTrial

	prompt, err := stim.NewLabel(stim.LabelOpts{
		Name:         fmt.Sprintf("prompt-%d", idx),
		Text:         trial.Prompt,
		Font:         Fonts,
		LetterHeight: 32,
		Bold:         true,
		Alignment:    stim.AlignCenter,
		Pos:          Vec{X: float64(e.screenWidth) / 2, Y: float64(e.screenHeight) * 0.25},
		Color:        PromptTextColor,
		AutoDraw:     true,
		Recorder:     e.recorder,
	})
	if err != nil {
		log.Fatalf("building prompt: %s", err)
	}

	e.prompt = prompt

	// slide the prompt in from slightly above its resting point
	target := prompt.Pos
	prompt.Pos = target.Sub(Vec{Y: 24})
	e.tweens.Add(&tween.Simple{
		Duration: 200 * time.Millisecond,
		Ease:     ease.OutCubic,
		Target:   tween.LerpVec(&prompt.Pos, prompt.Pos, target),
	})

	e.choices = e.choices[:0]
	for choiceIdx, choice := range trial.Choices {
		opts := stim.ButtonOpts{
			Name:         fmt.Sprintf("choice-%d-%d", idx, choiceIdx),
			Text:         choice,
			Font:         Fonts,
			LetterHeight: 24,
			Padding:      16,
			Depth:        float64(choiceIdx),
			Source:       e.source,
			Recorder:     e.recorder,
			AutoDraw:     true,
			AutoLog:      true,
		}
		ChoiceButtonStyle.apply(&opts)

		button, err := stim.NewButton(opts)
		if err != nil {
			log.Fatalf("building choice button: %s", err)
		}

		// fade the fresh button in
		button.Label().Opacity = 0
		e.tweens.Add(&tween.Simple{
			Duration: 200 * time.Millisecond,
			Ease:     ease.OutCubic,
			Target:   tween.LerpValue(&button.Label().Opacity, 0, 1),
		})

		e.choices = append(e.choices, button)
	}

	layoutButtonsRow(
		Vec{X: float64(e.screenWidth) / 2, Y: float64(e.screenHeight) * 0.6},
		24, e.choices...)

	// the reaction time baseline for this trial
	e.trialOnset = e.now
}

func (e *Experiment) updateTrial() {
	for _, button := range e.choices {
		button.Update()
		button.Poll(e.now)
	}

	responded := e.respondedChoice()
	if responded < 0 {
		return
	}

	trial := e.def.Trials[e.order[e.trialIdx]]
	button := e.choices[responded]

	correct := trial.Choices[responded] == trial.Answer
	e.feedback.Play(iff(correct, e.feedback.Correct, e.feedback.Wrong))

	e.results.Trials = append(e.results.Trials, TrialResult{
		Trial:    e.order[e.trialIdx],
		Prompt:   trial.Prompt,
		Response: strings.ReplaceAll(trial.Choices[responded], "\n", " "),
		Correct:  correct,
		RT:       button.TimesOn[0] - e.trialOnset,
		Clicks:   button.NumClicks(),
	})

	// trial boundary: clear the click history of every button. The
	// pre-reset state stays observable through WasClicked.
	for _, b := range e.choices {
		b.Reset()
	}

	e.mask.Regenerate(e.rng.Int32())
	e.maskUntil = e.now + time.Duration(e.def.MaskMs)*time.Millisecond
	e.state = phaseMask
}

// respondedChoice returns the choice with the earliest recorded press, or
// -1 if no button has been clicked yet.
func (e *Experiment) respondedChoice() int {
	best := -1

	for idx, button := range e.choices {
		if button.NumClicks() == 0 {
			continue
		}

		if best < 0 || button.TimesOn[0] < e.choices[best].TimesOn[0] {
			best = idx
		}
	}

	return best
}

func (e *Experiment) advance() {
	next := e.trialIdx + 1
	if next < len(e.order) {
		e.beginTrial(next)
		return
	}

	e.finish()
}

func (e *Experiment) finish() {
	e.state = phaseDone
	e.prompt = nil
	e.choices = nil

	// hand the results off, upload plus the local csv file
	e.uploadAsync = ReportResults(&e.results, e.def.Raw)
	SaveResultsLocal(&e.results)

	summary := fmt.Sprintf("You answered %d of %d trials correctly.",
		e.results.CorrectCount(), len(e.results.Trials))
	meanRT := fmt.Sprintf("Mean reaction time: %d ms", e.results.MeanRT().Milliseconds())

	dialogButton := func(name, text string) *stim.Button {
		opts := stim.ButtonOpts{
			Name:         name,
			Text:         text,
			Font:         Fonts,
			LetterHeight: 24,
			Size:         Vec{X: 192, Y: 48},
			Source:       e.source,
			Recorder:     e.recorder,
			AutoLog:      true,
		}
		DialogButtonStyle.apply(&opts)

		button, err := stim.NewButton(opts)
		if err != nil {
			log.Fatalf("building dialog button: %s", err)
		}

		return button
	}

	e.dialogs.Push(Dialog{
		Id:    "done",
		Modal: true,
		Texts: []Text{
			{Text: "Session complete", Face: Font32Bold, Color: PromptTextColor},
			{Text: summary, Face: Font24, Color: PromptTextColor, Offset: Vec{Y: 16}},
			{Text: meanRT, Face: Font24, Color: PromptTextColor, Offset: Vec{Y: 8}},
		},
		Buttons: []DialogButton{
			{Button: dialogButton("again", "Run again"), Action: func() { e.Reset(e.seed + 1) }},
			{Button: dialogButton("dismiss", "Dismiss"), Action: func() { e.dialogs.CloseById("done") }},
		},
	})
}

func (e *Experiment) Draw(screen *ebiten.Image) {
	screen.Fill(BackgroundColor)

	switch e.state {
	case phaseIntro:
		e.intro.Draw(screen)

	case phaseTrial:
		if e.prompt.AutoDraw {
			e.prompt.Draw(screen)
		}

		// honor the stacking order of the stimuli
		ordered := slices.Clone(e.choices)
		slices.SortStableFunc(ordered, func(a, b *stim.Button) int {
			switch {
			case a.Label().Depth < b.Label().Depth:
				return -1
			case a.Label().Depth > b.Label().Depth:
				return 1
			}
			return 0
		})

		for _, button := range ordered {
			if button.Label().AutoDraw {
				button.Draw(screen)
			}
		}

		e.drawHUD(screen)

	case phaseMask:
		e.mask.Draw(screen)
		e.drawHUD(screen)

	case phaseDone:
		e.drawHUD(screen)
		e.dialogs.Draw(screen)
	}

	if e.debug {
		e.drawDebugText(screen)
	}
}

// layoutButtonsRow centers the buttons as one row around origin.
func layoutButtonsRow(origin Vec, gap float64, buttons ...*stim.Button) {
	var width float64
	for idx, button := range buttons {
		width += button.Label().Size.X + iff(idx == 0, 0, gap)
	}

	pos := Vec{X: origin.X - width/2, Y: origin.Y}

	for _, button := range buttons {
		label := button.Label()
		label.Anchor = stim.AnchorTopLeft
		label.Pos = pos

		pos.X += label.Size.X + gap
	}
}
