package splat

import "github.com/line-splat/line-splat/internal/imaging"

const (
	// EdgeWebMinDistance and EdgeWebMaxDistance bound the length of a
	// matched edge pair.
	EdgeWebMinDistance = 4
	EdgeWebMaxDistance = 50

	// DefaultLinesPerPoint is how many partners each edge point keeps.
	DefaultLinesPerPoint = 1
)

// MatchEdgePairs links edge pixels that share a quantized gradient direction.
//
// For every edge point, in row-major order, the linesPerPoint nearest other
// edge points with the same direction bucket and a distance in
// [EdgeWebMinDistance, EdgeWebMaxDistance] are kept, nearest first. Equal
// distances go to the partner that comes first in row-major order. Pairs are
// ordered, so a and b may each pick the other. linesPerPoint below 1 is
// treated as 1.
//
// Candidates are looked up through a uniform grid with cells as large as the
// maximum distance, so only the 3x3 block of cells around a point is searched.
func MatchEdgePairs(field *imaging.GradientField, mask *imaging.EdgeMask, linesPerPoint int) []Segment {
	if linesPerPoint < 1 {
		linesPerPoint = 1
	}

	points := mask.Points()
	if len(points) < 2 {
		return nil
	}

	buckets := make([]int, len(points))
	for i, p := range points {
		buckets[i] = imaging.AngleToDirection(field.Direction(p.X, p.Y))
	}

	const cell = EdgeWebMaxDistance
	cols := (mask.Width + cell - 1) / cell
	rows := (mask.Height + cell - 1) / cell
	grid := make([][]int, cols*rows)
	for i, p := range points {
		c := (p.Y/cell)*cols + p.X/cell
		grid[c] = append(grid[c], i)
	}

	const minSq = EdgeWebMinDistance * EdgeWebMinDistance
	const maxSq = EdgeWebMaxDistance * EdgeWebMaxDistance

	var segments []Segment
	best := make([]candidate, 0, linesPerPoint)
	for i, p := range points {
		best = best[:0]
		cx, cy := p.X/cell, p.Y/cell
		for gy := max(cy-1, 0); gy <= min(cy+1, rows-1); gy++ {
			for gx := max(cx-1, 0); gx <= min(cx+1, cols-1); gx++ {
				for _, j := range grid[gy*cols+gx] {
					if j == i || buckets[j] != buckets[i] {
						continue
					}
					d := distSq(p, points[j])
					if d < minSq || d > maxSq {
						continue
					}
					best = keepNearest(best, candidate{index: j, distSq: d}, linesPerPoint)
				}
			}
		}
		for _, c := range best {
			q := points[c.index]
			segments = append(segments, Segment{X1: p.X, Y1: p.Y, X2: q.X, Y2: q.Y})
		}
	}
	return segments
}

type candidate struct {
	index  int
	distSq int
}

func (c candidate) less(o candidate) bool {
	if c.distSq != o.distSq {
		return c.distSq < o.distSq
	}
	return c.index < o.index
}

// keepNearest inserts c into the sorted list best, holding at most limit
// entries.
func keepNearest(best []candidate, c candidate, limit int) []candidate {
	pos := len(best)
	for pos > 0 && c.less(best[pos-1]) {
		pos--
	}
	if pos >= limit {
		return best
	}
	if len(best) < limit {
		best = append(best, candidate{})
	}
	copy(best[pos+1:], best[pos:len(best)-1])
	best[pos] = c
	return best
}

// edgeWebPen samples the source at a uniformly chosen point along seg and
// shifts its lightness.
func edgeWebPen(rng Source, src *imaging.PixelBuffer, seg Segment) imaging.RGB {
	p := seg.PointAt(rng.Float64())
	return imaging.ShiftLightness(rng, imaging.ColorAt(src, p.X, p.Y))
}
