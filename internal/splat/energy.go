package splat

import (
	"image"
	"math"
	"slices"

	"github.com/line-splat/line-splat/internal/imaging"
	"github.com/line-splat/line-splat/internal/raster"
)

const (
	energyMin = 10.0
	energyMax = 80.0
)

// EnergyLine picks a centre point and a random angle and fires two rays from
// it in opposite directions. Each ray starts with an energy in [10, 80] and
// loses some at every pixel it crosses (see ray.visit). The returned segment
// joins the two points where the rays ran out of energy.
func EnergyLine(rng Source, field *imaging.GradientField) (center image.Point, seg Segment, ok bool) {
	width, height := field.Width, field.Height
	if width <= 0 || height <= 0 {
		return image.Point{}, Segment{}, false
	}

	center = image.Point{X: rng.IntN(width), Y: rng.IntN(height)}
	angle := rng.Float64() * 2 * math.Pi

	p1 := fireRay(rng, field, center, angle)
	p2 := fireRay(rng, field, center, angle+math.Pi)

	return center, Segment{X1: p1.X, Y1: p1.Y, X2: p2.X, Y2: p2.Y}, true
}

// ray is the state carried along while a ray is walked pixel by pixel.
type ray struct {
	angle  float64
	energy float64
	last   image.Point
}

// visit spends energy on pixel p. The cost is the gradient magnitude scaled
// by how well the gradient direction lines up with the ray and by a uniform
// random factor. Once energy is negative the ray is spent and p is ignored.
func (r ray) visit(rng Source, field *imaging.GradientField, p image.Point) ray {
	if r.energy < 0 {
		return r
	}
	dampening := 1 - AngleDifference(r.angle, float64(field.Direction(p.X, p.Y)))/math.Pi
	dampening *= openUnit(rng)
	r.energy -= float64(field.Magnitude(p.X, p.Y)) * dampening
	r.last = p
	return r
}

// fireRay walks from center towards angle until the ray's energy is spent
// and returns the last pixel reached.
func fireRay(rng Source, field *imaging.GradientField, center image.Point, angle float64) image.Point {
	energy := rng.Float64()*(energyMax-energyMin) + energyMin

	// The target is truncated toward zero, not floored.
	xe := int(float64(center.X) + energy*math.Cos(angle))
	ye := int(float64(center.Y) + energy*math.Sin(angle))

	line := raster.NewLine(field.Width, field.Height, center.X, center.Y, xe, ye)
	path := raster.Fold(line, []image.Point(nil), func(path []image.Point, x, y int) []image.Point {
		return append(path, image.Point{X: x, Y: y})
	})

	// The rasterizer runs left to right; walk in travel order instead.
	if len(path) > 1 && distSq(path[0], center) > distSq(path[len(path)-1], center) {
		slices.Reverse(path)
	}

	state := ray{angle: angle, energy: energy, last: center}
	for _, p := range path {
		state = state.visit(rng, field, p)
	}
	return state.last
}

func distSq(a, b image.Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx + dy*dy
}
