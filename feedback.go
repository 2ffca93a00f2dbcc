package main

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"slices"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// bytesPerSample is the byte size for one sample (8 [bytes] = 2 [channels] * 4 [bytes] (32bit float)).
const bytesPerSample = 8

const sampleRate = 48000

var AudioContext = sync.OnceValue(func() *audio.Context {
	return audio.NewContext(sampleRate)
})

// Feedback plays short response tones. The tones are synthesized once at
// startup, there are no audio assets to load.
type Feedback struct {
	Press   Samples
	Correct Samples
	Wrong   Samples

	players []*audio.Player

	mute bool
}

func NewFeedback() Feedback {
	return Feedback{
		Press:   Tone(880, 50*time.Millisecond),
		Correct: Tone(1320, 120*time.Millisecond),
		Wrong:   Tone(220, 150*time.Millisecond),
	}
}

func (a *Feedback) Play(samples Samples) {
	if a.mute || samples.Len() == 0 {
		return
	}

	a.playerOf(samples.ToStream()).Play()
}

func (a *Feedback) ToggleMute() {
	a.Cleanup()

	// toggle mute flag
	a.mute = !a.mute

	// calculate mute volume
	volume := 1.0
	if a.mute {
		volume = 0.0
	}

	// set volume on all players
	for _, p := range a.players {
		p.SetVolume(volume)
	}
}

func (a *Feedback) playerOf(stream io.Reader) *audio.Player {
	// whenever we start a new player, we remove all references to
	// now dead players
	a.Cleanup()

	// create the new player
	player, _ := AudioContext().NewPlayerF32(stream)

	// and record it to handle volume updates later
	a.players = append(a.players, player)

	return player
}

func (a *Feedback) Cleanup() {
	// remove players that are not playing
	a.players = slices.DeleteFunc(a.players, func(player *audio.Player) bool {
		return !player.IsPlaying()
	})
}

type Samples struct {
	buf []byte
}

func (m Samples) ToStream() io.ReadSeeker {
	return bytes.NewReader(m.buf)
}

func (m Samples) Len() int {
	return len(m.buf)
}

// Tone synthesizes a stereo sine tone with a linear fade out.
func Tone(freq float64, duration time.Duration) Samples {
	count := int(sampleRate * duration.Seconds())
	buf := make([]byte, 0, count*bytesPerSample)

	for idx := range count {
		t := float64(idx) / sampleRate
		envelope := 1 - t/duration.Seconds()

		value := math.Float32bits(float32(math.Sin(2*math.Pi*freq*t) * 0.2 * envelope))

		var sample [4]byte
		binary.LittleEndian.PutUint32(sample[:], value)

		// same sample on both channels
		buf = append(buf, sample[:]...)
		buf = append(buf, sample[:]...)
	}

	return Samples{buf: buf}
}
