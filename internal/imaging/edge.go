package imaging

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/parallel"
)

const (
	// EdgeHighThreshold is the nominal strong-edge gradient magnitude. No
	// hysteresis pass uses it; it only anchors EdgeLowThreshold.
	EdgeHighThreshold = 110.0

	// EdgeLowThreshold is the minimum magnitude a pixel needs to be kept as
	// an edge. It is deliberately low so edges are over-detected.
	EdgeLowThreshold = EdgeHighThreshold / 2
)

// Quantized gradient directions returned by AngleToDirection.
const (
	DirectionHorizontal = 0 // 0°: compare east/west
	DirectionDiagonalUp = 1 // 45°: compare northeast/southwest
	DirectionVertical   = 2 // 90°: compare north/south
	DirectionDiagonalDn = 3 // 135°: compare northwest/southeast
)

// EdgeMask is a binary edge map with one entry per pixel, row-major.
type EdgeMask struct {
	Width  int
	Height int
	Pix    []bool
}

// IsEdge reports whether (x, y) was kept as an edge. Out-of-bounds
// coordinates are never edges.
func (m *EdgeMask) IsEdge(x, y int) bool {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return false
	}
	return m.Pix[y*m.Width+x]
}

// Points returns the coordinates of every edge pixel in row-major order.
func (m *EdgeMask) Points() []image.Point {
	var points []image.Point
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.Pix[y*m.Width+x] {
				points = append(points, image.Point{X: x, Y: y})
			}
		}
	}
	return points
}

// Count returns the number of edge pixels.
func (m *EdgeMask) Count() int {
	n := 0
	for _, e := range m.Pix {
		if e {
			n++
		}
	}
	return n
}

// AngleToDirection quantizes a gradient angle into one of four buckets
// (0°, 45°, 90°, 135°).
//
// Negative angles are shifted by π first, so opposite directions fall into
// the same bucket: AngleToDirection(θ) == AngleToDirection(θ+π).
func AngleToDirection(theta float32) int {
	t := float64(theta)
	if t < 0 {
		t += math.Pi
	}
	bucket := int(math.Round(t*4/math.Pi)) % 4
	if bucket < 0 {
		bucket += 4
	}
	return bucket
}

// SuppressEdges thins the gradient field to single-pixel ridges and applies
// a single low threshold.
//
// A pixel is an edge when its magnitude is at least EdgeLowThreshold and is
// not smaller than either neighbour along the axis selected by its quantized
// direction. There is no hysteresis or edge-linking pass. The one pixel
// border is always non-edge, and fields narrower or shorter than 3 pixels
// produce no edges at all.
func SuppressEdges(field *GradientField) *EdgeMask {
	width, height := field.Width, field.Height
	mask := &EdgeMask{
		Width:  width,
		Height: height,
		Pix:    make([]bool, width*height),
	}
	if width < 3 || height < 3 {
		return mask
	}

	parallel.Line(height-2, func(start, end int) {
		for y := start + 1; y < end+1; y++ {
			for x := 1; x < width-1; x++ {
				mag := field.Magnitude(x, y)
				if mag < EdgeLowThreshold {
					continue
				}

				var n1, n2 float32
				switch AngleToDirection(field.Direction(x, y)) {
				case DirectionHorizontal:
					n1 = field.Magnitude(x+1, y)
					n2 = field.Magnitude(x-1, y)
				case DirectionDiagonalUp:
					n1 = field.Magnitude(x+1, y-1)
					n2 = field.Magnitude(x-1, y+1)
				case DirectionVertical:
					n1 = field.Magnitude(x, y-1)
					n2 = field.Magnitude(x, y+1)
				default:
					n1 = field.Magnitude(x-1, y-1)
					n2 = field.Magnitude(x+1, y+1)
				}

				if mag >= n1 && mag >= n2 {
					mask.Pix[y*width+x] = true
				}
			}
		}
	})

	return mask
}
