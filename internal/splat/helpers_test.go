package splat

import (
	"math"

	"github.com/line-splat/line-splat/internal/imaging"
)

// stubSource returns fixed values, which makes ray walks exactly predictable.
type stubSource struct {
	f    float64
	intN int
}

func (s stubSource) IntN(n int) int       { return min(s.intN, n-1) }
func (s stubSource) Float64() float64     { return s.f }
func (s stubSource) NormFloat64() float64 { return 0 }

// flatField returns a gradient field with the same magnitude and direction
// everywhere.
func flatField(width, height int, magnitude, direction float32) *imaging.GradientField {
	field := &imaging.GradientField{
		Width:  width,
		Height: height,
		Data:   make([]float32, width*height*2),
	}
	for i := 0; i < width*height; i++ {
		field.Data[i*2] = magnitude
		field.Data[i*2+1] = direction
	}
	return field
}

// uniformBuffer returns a buffer filled with c.
func uniformBuffer(width, height int, c imaging.RGB) *imaging.PixelBuffer {
	buf := imaging.NewPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.SetRGB(x, y, c)
		}
	}
	return buf
}

// verticalEdgeBuffer is black left of edgeX and white from edgeX onwards.
func verticalEdgeBuffer(width, height, edgeX int) *imaging.PixelBuffer {
	buf := imaging.NewPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := edgeX; x < width; x++ {
			buf.SetRGB(x, y, imaging.RGB{R: 255, G: 255, B: 255})
		}
	}
	return buf
}

func within(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}
