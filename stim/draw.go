package stim

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/quasilyte/gmath"
)

var whiteImage = sync.OnceValue(func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
})

var rrVertices []ebiten.Vertex
var rrIndices []uint16

const boxCornerRadius = 8

func roundRectPath(pos gmath.Vec, size gmath.Vec, radius float64) vector.Path {
	r := float32(min(radius, size.X/2, size.Y/2))
	p := pos.AsVec32()
	s := size.AsVec32()

	c0 := p
	c1 := p.Add(gmath.Vec32{X: s.X})
	c2 := p.Add(gmath.Vec32{Y: s.Y})
	c3 := p.Add(s)

	var path vector.Path
	path.MoveTo(c0.X+r, c0.Y)
	path.ArcTo(c1.X, c1.Y, c3.X, c3.Y, r)
	path.ArcTo(c3.X, c3.Y, c2.X, c2.Y, r)
	path.ArcTo(c2.X, c2.Y, c0.X, c0.Y, r)
	path.ArcTo(c0.X, c0.Y, c1.X, c1.Y, r)
	path.Close()

	return path
}

func DrawRoundRect(target *ebiten.Image, pos gmath.Vec, size gmath.Vec, fill color.Color) {
	path := roundRectPath(pos, size, boxCornerRadius)
	rrVertices, rrIndices = path.AppendVerticesAndIndicesForFilling(rrVertices[:0], rrIndices[:0])

	applyColorToVertices(rrVertices, fill)

	target.DrawTriangles(rrVertices, rrIndices, whiteImage(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func StrokeRoundRect(target *ebiten.Image, pos gmath.Vec, size gmath.Vec, width float64, stroke color.Color) {
	path := roundRectPath(pos, size, boxCornerRadius)

	vop := &vector.StrokeOptions{Width: float32(width)}
	rrVertices, rrIndices = path.AppendVerticesAndIndicesForStroke(rrVertices[:0], rrIndices[:0], vop)

	applyColorToVertices(rrVertices, stroke)

	target.DrawTriangles(rrVertices, rrIndices, whiteImage(), &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

func applyColorToVertices(vertices []ebiten.Vertex, c color.Color) {
	r, g, b, a := c.RGBA()

	cr := float32(r) / 0xffff
	cg := float32(g) / 0xffff
	cb := float32(b) / 0xffff
	ca := float32(a) / 0xffff

	for idx := range vertices {
		vertices[idx].SrcX = 1
		vertices[idx].SrcY = 1
		vertices[idx].ColorR = cr
		vertices[idx].ColorG = cg
		vertices[idx].ColorB = cb
		vertices[idx].ColorA = ca
	}
}

func withAlpha(c color.Color, alpha float64) color.Color {
	if c == nil || alpha >= 1 {
		return c
	}

	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * alpha),
		G: uint16(float64(g) * alpha),
		B: uint16(float64(b) * alpha),
		A: uint16(float64(a) * alpha),
	}
}

func splat(value float64) gmath.Vec {
	return gmath.Vec{X: value, Y: value}
}
