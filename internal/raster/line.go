package raster

import "math"

type lineMode int

const (
	modeDone lineMode = iota
	modeVertical
	modeSloped
)

// Line is a lazy, single-use enumeration of the pixels covered by a segment
// after it has been clipped to a width x height canvas.
//
// Pixels are produced left to right; vertical segments run top to bottom.
// Every produced coordinate lies inside the canvas. A coordinate can be
// produced twice in a row where the line steps diagonally, which is harmless
// for painting. The end point of the clipped segment itself is not included,
// except that a segment collapsing to a single point yields that point.
type Line struct {
	mode   lineMode
	height int

	x, y   int // current position
	endX   int // exclusive x limit (sloped)
	endY   int // exclusive y limit (vertical)
	yStep  int
	err    float64
	dErr   float64
	inStep bool // true while draining the y steps of column x
}

// NewLine clips the segment (x1,y1)-(x2,y2) to the canvas and returns an
// enumeration of the pixels it covers.
//
// Endpoints may lie anywhere, including far outside the canvas. Segments
// that do not touch the canvas, and empty canvases, produce no pixels.
func NewLine(width, height, x1, y1, x2, y2 int) *Line {
	l := &Line{height: height}

	if width <= 0 || height <= 0 ||
		(x1 < 0 && x2 < 0) || (y1 < 0 && y2 < 0) ||
		(x1 >= width && x2 >= width) || (y1 >= height && y2 >= height) {
		return l
	}

	switch {
	case y1 == y2:
		if x2 < x1 {
			x1, x2 = x2, x1
		}
		x1 = max(0, x1)
		x2 = min(x2, width-1)
	case x1 == x2:
		if y2 < y1 {
			y1, y2 = y2, y1
		}
		y1 = max(0, y1)
		y2 = min(y2, height-1)
	default:
		in1 := inBox(width, height, x1, y1)
		in2 := inBox(width, height, x2, y2)
		if !in1 {
			var ok bool
			x1, y1, ok = clipFromOutside(width, height, x1, y1, x2, y2)
			if !ok {
				return l
			}
		}
		if !in2 {
			x2, y2 = clipFromInside(width, height, x1, y1, x2, y2)
		}
	}

	if x1 == x2 {
		if y2 < y1 {
			y1, y2 = y2, y1
		}
		if y1 == y2 {
			y2++
		}
		l.mode = modeVertical
		l.x, l.y, l.endY = x1, y1, y2
		return l
	}

	if x2 < x1 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	l.mode = modeSloped
	l.x, l.y, l.endX = x1, y1, x2
	l.dErr = math.Abs(float64(y2-y1) / float64(x2-x1))
	l.yStep = 1
	if y2 < y1 {
		l.yStep = -1
	}
	return l
}

// Next returns the next covered pixel. ok is false once the enumeration is
// exhausted; it then stays exhausted.
func (l *Line) Next() (x, y int, ok bool) {
	switch l.mode {
	case modeVertical:
		if l.y >= l.endY {
			l.mode = modeDone
			return 0, 0, false
		}
		y = l.y
		l.y++
		return l.x, y, true

	case modeSloped:
		for {
			if !l.inStep {
				if l.x >= l.endX {
					l.mode = modeDone
					return 0, 0, false
				}
				l.err += l.dErr
				l.inStep = true
				return l.x, l.y, true
			}
			if l.err >= 0.5 {
				x, y = l.x, l.y
				l.y = clamp(l.y+l.yStep, 0, l.height-1)
				l.err--
				return x, y, true
			}
			l.inStep = false
			l.x++
		}
	}
	return 0, 0, false
}

// Fold threads state through every remaining pixel of l and returns the
// final state.
func Fold[S any](l *Line, state S, fn func(state S, x, y int) S) S {
	for {
		x, y, ok := l.Next()
		if !ok {
			return state
		}
		state = fn(state, x, y)
	}
}

// ForEach calls fn for every pixel of the clipped segment.
func ForEach(width, height, x1, y1, x2, y2 int, fn func(x, y int)) {
	l := NewLine(width, height, x1, y1, x2, y2)
	for {
		x, y, ok := l.Next()
		if !ok {
			return
		}
		fn(x, y)
	}
}

// Points collects the pixels of the clipped segment into a slice.
func Points(width, height, x1, y1, x2, y2 int) [][2]int {
	var pts [][2]int
	ForEach(width, height, x1, y1, x2, y2, func(x, y int) {
		pts = append(pts, [2]int{x, y})
	})
	return pts
}

func inBox(width, height, x, y int) bool {
	return x >= 0 && x < width && y >= 0 && y < height
}
