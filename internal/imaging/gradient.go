package imaging

import (
	"math"

	"github.com/anthonynsimon/bild/parallel"
)

var (
	sobelX = [3][3]float32{
		{-1, 0, 1},
		{-2, 0, 2},
		{-1, 0, 1},
	}
	sobelY = [3][3]float32{
		{-1, -2, -1},
		{0, 0, 0},
		{1, 2, 1},
	}
)

// GradientField holds the Sobel gradient of a source image.
//
// Data stores one (magnitude, direction) pair per pixel at index
// (y*Width+x)*2. Magnitude is never negative and direction lies in (-π, π].
// A field is immutable once computed and may be shared freely between
// goroutines.
type GradientField struct {
	Width  int
	Height int
	Data   []float32
}

// Magnitude returns the gradient strength at (x, y).
func (f *GradientField) Magnitude(x, y int) float32 {
	return f.Data[(y*f.Width+x)*2]
}

// Direction returns the gradient angle at (x, y) in radians.
func (f *GradientField) Direction(x, y int) float32 {
	return f.Data[(y*f.Width+x)*2+1]
}

// ComputeGradient computes the gradient field of buf.
//
// # Algorithm
//
//  1. Luminance: L = 0.299*R + 0.587*G + 0.114*B (ITU-R BT.601), on the 0-255
//     scale.
//
//  2. Sobel operators over the 3x3 neighbourhood of each pixel. Neighbour
//     coordinates are clamped to the image, so border pixels reuse their own
//     row or column and 1xN images are valid.
//
//  3. magnitude = hypot(Gx, Gy), direction = atan2(Gy, Gx).
//
// Rows are processed in parallel; every pixel writes only its own slot, so
// the result is identical to a sequential pass.
func ComputeGradient(buf *PixelBuffer) *GradientField {
	width, height := buf.Width, buf.Height
	field := &GradientField{
		Width:  width,
		Height: height,
		Data:   make([]float32, width*height*2),
	}
	if width == 0 || height == 0 {
		return field
	}

	lum := make([]float32, width*height)
	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				i := (y*width + x) * 3
				lum[y*width+x] = 0.299*float32(buf.Pix[i]) +
					0.587*float32(buf.Pix[i+1]) +
					0.114*float32(buf.Pix[i+2])
			}
		}
	})

	parallel.Line(height, func(start, end int) {
		for y := start; y < end; y++ {
			for x := 0; x < width; x++ {
				var gx, gy float32
				for ky := -1; ky <= 1; ky++ {
					py := clamp(y+ky, 0, height-1)
					for kx := -1; kx <= 1; kx++ {
						px := clamp(x+kx, 0, width-1)
						v := lum[py*width+px]
						gx += v * sobelX[ky+1][kx+1]
						gy += v * sobelY[ky+1][kx+1]
					}
				}

				o := (y*width + x) * 2
				field.Data[o] = float32(math.Hypot(float64(gx), float64(gy)))
				field.Data[o+1] = normalizeDirection(math.Atan2(float64(gy), float64(gx)))
			}
		}
	})

	return field
}

// normalizeDirection narrows an atan2 result to float32 and folds -π onto π
// so the stored angle always lies in (-π, π].
func normalizeDirection(theta float64) float32 {
	d := float32(theta)
	if d <= float32(-math.Pi) {
		return float32(math.Pi)
	}
	return d
}

// clamp constrains an integer value to the range [min, max].
// Used for boundary handling in convolution operations.
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
