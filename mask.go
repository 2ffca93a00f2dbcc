package main

import (
	"github.com/furui/fastnoiselite-go"
	"github.com/hajimehoshi/ebiten/v2"
)

// maskDownscale renders the noise at a quarter of the screen resolution,
// the upscaling blur is part of the mask look.
const maskDownscale = 4

// NoiseMask is the gray value noise shown between two trials.
type NoiseMask struct {
	noise  *fastnoiselite.FastNoiseLite
	image  *ebiten.Image
	width  int
	height int
}

func NewNoiseMask(screenWidth, screenHeight int) *NoiseMask {
	noise := fastnoiselite.NewNoise()
	noise.SetNoiseType(fastnoiselite.NoiseTypeValueCubic)
	noise.Frequency = 0.1

	return &NoiseMask{
		noise:  noise,
		width:  screenWidth / maskDownscale,
		height: screenHeight / maskDownscale,
	}
}

// Regenerate renders a fresh noise field so consecutive masks never
// repeat.
func (m *NoiseMask) Regenerate(seed int32) {
	m.noise.Seed = seed

	pixels := make([]uint8, m.width*m.height*4)

	var pos int
	for y := range m.height {
		for x := range m.width {
			value := m.noise.GetNoise2D(fastnoiselite.FNLfloat(x), fastnoiselite.FNLfloat(y))

			// map [-1, 1] to a gray value
			gray := uint8((float64(value)*0.5 + 0.5) * 0xff)

			pixels[pos+0] = gray
			pixels[pos+1] = gray
			pixels[pos+2] = gray
			pixels[pos+3] = 0xff

			pos += 4
		}
	}

	if m.image == nil {
		m.image = ebiten.NewImage(m.width, m.height)
	}

	m.image.WritePixels(pixels)
}

func (m *NoiseMask) Draw(target *ebiten.Image) {
	if m.image == nil {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(maskDownscale, maskDownscale)
	op.Filter = ebiten.FilterLinear
	target.DrawImage(m.image, op)
}
