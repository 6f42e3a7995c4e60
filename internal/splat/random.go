package splat

import (
	"math"

	"github.com/line-splat/line-splat/internal/imaging"
)

const (
	// randomMaxDistance bounds the length of unconstrained random lines.
	randomMaxDistance = 128.0

	// steeredMaxDistance bounds the length of gradient-steered lines.
	steeredMaxDistance = 64.0

	// maxAttempts caps rejection sampling. Past the cap the line is skipped.
	maxAttempts = 1000
)

// RandomLine picks a uniformly placed start point and then polar offsets
// (angle in [0, 2π), distance in (0, 128]) until the end point lands on the
// canvas. Only the offset is resampled between attempts.
//
// ok is false for an empty canvas or when maxAttempts offsets all missed.
func RandomLine(rng Source, width, height int) (seg Segment, ok bool) {
	if width <= 0 || height <= 0 {
		return Segment{}, false
	}

	x1 := rng.IntN(width)
	y1 := rng.IntN(height)

	for i := 0; i < maxAttempts; i++ {
		angle := rng.Float64() * 2 * math.Pi
		distance := openUnit(rng) * randomMaxDistance

		x2, y2 := polarOffset(x1, y1, angle, distance)
		if x2 >= 0 && x2 < width && y2 >= 0 && y2 < height {
			return Segment{X1: x1, Y1: y1, X2: x2, Y2: y2}, true
		}
	}
	return Segment{}, false
}

// SteeredLine picks a uniformly placed start point and draws along the edge
// tangent there: the local gradient direction turned by π/2, with a distance
// in (0, 64]. The whole line, start point included, is resampled when the
// end point falls off the canvas.
func SteeredLine(rng Source, field *imaging.GradientField) (seg Segment, ok bool) {
	width, height := field.Width, field.Height
	if width <= 0 || height <= 0 {
		return Segment{}, false
	}

	for i := 0; i < maxAttempts; i++ {
		x1 := rng.IntN(width)
		y1 := rng.IntN(height)

		angle := float64(field.Direction(x1, y1)) + math.Pi/2
		distance := openUnit(rng) * steeredMaxDistance

		x2, y2 := polarOffset(x1, y1, angle, distance)
		if x2 >= 0 && x2 < width && y2 >= 0 && y2 < height {
			return Segment{X1: x1, Y1: y1, X2: x2, Y2: y2}, true
		}
	}
	return Segment{}, false
}

// polarOffset moves (x, y) by distance along angle and floors the result, so
// anything left of or above the canvas ends up negative.
func polarOffset(x, y int, angle, distance float64) (int, int) {
	return int(math.Floor(float64(x) + distance*math.Cos(angle))),
		int(math.Floor(float64(y) + distance*math.Sin(angle)))
}

// endpointPen averages the sampled colors at both ends of seg.
func endpointPen(src *imaging.PixelBuffer, seg Segment) imaging.RGB {
	return imaging.Mix(
		imaging.ColorAt(src, seg.X1, seg.Y1),
		imaging.ColorAt(src, seg.X2, seg.Y2),
	)
}
