package assets

import (
	"bytes"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
)

type fontVariant struct {
	Bold   bool
	Italic bool
}

var fontSources = sync.OnceValue(func() map[fontVariant]*text.GoTextFaceSource {
	return map[fontVariant]*text.GoTextFaceSource{
		{}:                         sourceOf(goregular.TTF),
		{Bold: true}:               sourceOf(gobold.TTF),
		{Italic: true}:             sourceOf(goitalic.TTF),
		{Bold: true, Italic: true}: sourceOf(gobolditalic.TTF),
	}
})

func sourceOf(ttf []byte) *text.GoTextFaceSource {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		panic(err)
	}

	return source
}

// FontSet hands out faces of the Go typeface in the requested weight
// and style.
type FontSet struct{}

func Fonts() FontSet {
	return FontSet{}
}

func (FontSet) Face(size float64, bold, italic bool) text.Face {
	return &text.GoTextFace{
		Source: fontSources()[fontVariant{Bold: bold, Italic: italic}],
		Size:   size,
	}
}
