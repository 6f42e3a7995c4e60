package raster

import "github.com/line-splat/line-splat/internal/imaging"

// Painter draws aliased one-pixel lines into a PixelBuffer using a single
// pen color.
//
// A Painter is not safe for concurrent use.
type Painter struct {
	pen imaging.RGB
}

// NewPainter returns a Painter with a black pen.
func NewPainter() *Painter {
	return &Painter{}
}

// SetPen selects the color used by subsequent Line calls.
func (p *Painter) SetPen(c imaging.RGB) {
	p.pen = c
}

// Pen returns the currently selected color.
func (p *Painter) Pen() imaging.RGB {
	return p.pen
}

// Line paints the segment (x1,y1)-(x2,y2) into buf with the current pen.
// Parts of the segment outside buf are clipped away.
func (p *Painter) Line(buf *imaging.PixelBuffer, x1, y1, x2, y2 int) {
	Paint(buf, p.pen, x1, y1, x2, y2)
}

// Paint writes pen at every pixel covered by the clipped segment and returns
// the number of pixel writes.
func Paint(buf *imaging.PixelBuffer, pen imaging.RGB, x1, y1, x2, y2 int) int {
	n := 0
	ForEach(buf.Width, buf.Height, x1, y1, x2, y2, func(x, y int) {
		buf.SetRGB(x, y, pen)
		n++
	})
	return n
}
