package raster

import "math"

// clipFromOutside projects (x1, y1), which lies outside the canvas, onto the
// canvas boundary along the direction of the segment.
//
// It uses the slab test for a ray against the axis-aligned box
// [0,width-1]x[0,height-1], with the ray parameter limited to the segment's
// own length. ok is false when the segment misses the box. The segment must
// be neither horizontal nor vertical.
func clipFromOutside(width, height, x1, y1, x2, y2 int) (x, y int, ok bool) {
	maxX := float64(width - 1)
	maxY := float64(height - 1)

	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	if dx == 0 || dy == 0 {
		return 0, 0, false
	}

	length := math.Hypot(dx, dy)
	nx := dx / length
	ny := dy / length

	tMin, tMax := 0.0, length

	t0, t1 := slab(float64(x1), nx, maxX)
	tMin = math.Max(tMin, t0)
	tMax = math.Min(tMax, t1)

	t0, t1 = slab(float64(y1), ny, maxY)
	tMin = math.Max(tMin, t0)
	tMax = math.Min(tMax, t1)

	if tMax < tMin {
		return 0, 0, false
	}

	x = x1 + int(math.Round(nx*tMin))
	y = y1 + int(math.Round(ny*tMin))
	return clamp(x, 0, width-1), clamp(y, 0, height-1), true
}

// slab returns the ray parameters at which a ray starting at origin with unit
// direction component dir enters and leaves the interval [0, hi].
func slab(origin, dir, hi float64) (enter, exit float64) {
	inv := 1 / dir
	enter = -origin * inv
	exit = (hi - origin) * inv
	if inv < 0 {
		enter, exit = exit, enter
	}
	return enter, exit
}

// clipFromInside returns the point where the line from (x1, y1), which lies
// inside the canvas, through (x2, y2) leaves the canvas.
//
// The two boundary edges the line can reach are chosen from its direction
// (down or up, right or left); of the two intersections the one nearest to
// (x1, y1) wins.
func clipFromInside(width, height, x1, y1, x2, y2 int) (x, y int) {
	maxX := width - 1
	maxY := height - 1

	switch {
	case x1 == x2:
		if y2 > y1 {
			return x1, maxY
		}
		return x1, 0
	case y1 == y2:
		if x2 > x1 {
			return maxX, y1
		}
		return 0, y1
	}

	slope := float64(y2-y1) / float64(x2-x1)
	b := float64(y1) - slope*float64(x1)

	type point struct{ x, y float64 }
	top := point{-b / slope, 0}
	bottom := point{(float64(maxY) - b) / slope, float64(maxY)}
	left := point{0, b}
	right := point{float64(maxX), slope*float64(maxX) + b}

	distSq := func(p point) float64 {
		ddx := p.x - float64(x1)
		ddy := p.y - float64(y1)
		return ddx*ddx + ddy*ddy
	}
	nearest := func(a, c point) point {
		if distSq(a) < distSq(c) {
			return a
		}
		return c
	}

	var hit point
	down := y2 > y1
	rightward := x2 > x1
	switch {
	case down && rightward:
		hit = nearest(bottom, right)
	case down:
		hit = nearest(bottom, left)
	case rightward:
		hit = nearest(top, right)
	default:
		hit = nearest(top, left)
	}

	hx := math.Max(0, math.Min(hit.x, float64(maxX)))
	hy := math.Max(0, math.Min(hit.y, float64(maxY)))
	return int(hx), int(hy)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
