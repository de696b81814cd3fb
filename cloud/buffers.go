package cloud

import (
	"math"
)

// Buffers holds flat xyz positions and rgb colors ready for GPU upload.
// Points without a color are white.
type Buffers struct {
	Positions []float32
	Colors    []float32
}

// Len returns the number of points.
func (b *Buffers) Len() int {
	return len(b.Positions) / 3
}

// White returns an rgb buffer of n opaque white points.
func White(n int) []float32 {
	out := make([]float32, n*3)
	for i := range out {
		out[i] = 1
	}
	return out
}

// NormalizationDivisor returns the largest absolute coordinate, which every
// coordinate is divided by to fit the points into the unit ball.
// It is 1 when every coordinate is zero.
func NormalizationDivisor(points []Tuple) float64 {
	var maxAbs float64
	for _, p := range points {
		for _, v := range p {
			maxAbs = math.Max(maxAbs, math.Abs(v))
		}
	}
	if maxAbs > 0 {
		return maxAbs
	}
	return 1
}

// NormalizeColor maps a 0-255 triple to 0-1. A triple is treated as 0-255
// when any of its channels exceeds 1.
func NormalizeColor(c Tuple) Tuple {
	if c[0] > 1 || c[1] > 1 || c[2] > 1 {
		return Tuple{c[0] / 255, c[1] / 255, c[2] / 255}
	}
	return c
}

// Build derives the normalized position and color buffers of a document.
func Build(doc *Document) *Buffers {
	n := len(doc.Points)
	b := &Buffers{
		Positions: make([]float32, n*3),
		Colors:    make([]float32, n*3),
	}
	div := NormalizationDivisor(doc.Points)
	for i, p := range doc.Points {
		b.Positions[i*3+0] = float32(p[0] / div)
		b.Positions[i*3+1] = float32(p[1] / div)
		b.Positions[i*3+2] = float32(p[2] / div)

		c := Tuple{1, 1, 1}
		if i < len(doc.Colors) && doc.Colors[i] != nil {
			c = NormalizeColor(*doc.Colors[i])
		}
		b.Colors[i*3+0] = float32(c[0])
		b.Colors[i*3+1] = float32(c[1])
		b.Colors[i*3+2] = float32(c[2])
	}
	return b
}
