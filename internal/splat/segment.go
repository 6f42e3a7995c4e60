package splat

import (
	"fmt"
	"image"
	"math"
)

// Segment is a pair of integer pixel coordinates. Either end may lie outside
// the canvas; the rasterizer clips it.
type Segment struct {
	X1, Y1 int
	X2, Y2 int
}

// Start returns the first endpoint.
func (s Segment) Start() image.Point { return image.Point{X: s.X1, Y: s.Y1} }

// End returns the second endpoint.
func (s Segment) End() image.Point { return image.Point{X: s.X2, Y: s.Y2} }

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(float64(s.X2-s.X1), float64(s.Y2-s.Y1))
}

// PointAt returns the pixel nearest to the point a fraction t along the
// segment, t=0 being the start.
func (s Segment) PointAt(t float64) image.Point {
	return image.Point{
		X: int(math.Round(float64(s.X1) + t*float64(s.X2-s.X1))),
		Y: int(math.Round(float64(s.Y1) + t*float64(s.Y2-s.Y1))),
	}
}

func (s Segment) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", s.X1, s.Y1, s.X2, s.Y2)
}

// AngleDifference returns the unsigned angle between two directions, in
// [0, π], taking wrap-around into account.
func AngleDifference(a, b float64) float64 {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}
