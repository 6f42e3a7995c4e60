package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// PixelBuffer is a flat, row-major RGB image with 3 bytes per pixel.
//
// The pixel at (x, y) occupies Pix[(y*Width+x)*3 : (y*Width+x)*3+3] in
// R, G, B order. len(Pix) is always Width*Height*3.
type PixelBuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewPixelBuffer allocates a zeroed (black) buffer of the given size.
// Negative dimensions are treated as zero.
func NewPixelBuffer(width, height int) *PixelBuffer {
	width = max(width, 0)
	height = max(height, 0)
	return &PixelBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// InBounds reports whether (x, y) addresses a pixel of the buffer.
func (b *PixelBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// RGBAt returns the color stored at (x, y). The coordinates must be in bounds.
func (b *PixelBuffer) RGBAt(x, y int) RGB {
	i := (y*b.Width + x) * 3
	return RGB{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2]}
}

// SetRGB stores c at (x, y). The coordinates must be in bounds.
func (b *PixelBuffer) SetRGB(x, y int, c RGB) {
	i := (y*b.Width + x) * 3
	b.Pix[i] = c.R
	b.Pix[i+1] = c.G
	b.Pix[i+2] = c.B
}

// FromImage flattens any image.Image into a PixelBuffer. Alpha is discarded.
func FromImage(img image.Image) *PixelBuffer {
	nrgba := imaging.Clone(img)
	w, h := nrgba.Rect.Dx(), nrgba.Rect.Dy()
	buf := NewPixelBuffer(w, h)
	for y := 0; y < h; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+w*4]
		dst := buf.Pix[y*w*3 : (y+1)*w*3]
		for x := 0; x < w; x++ {
			dst[x*3] = src[x*4]
			dst[x*3+1] = src[x*4+1]
			dst[x*3+2] = src[x*4+2]
		}
	}
	return buf
}

// Image returns an opaque *image.NRGBA copy of the buffer, ready for encoding.
func (b *PixelBuffer) Image() *image.NRGBA {
	img := imaging.New(b.Width, b.Height, color.NRGBA{A: 255})
	for y := 0; y < b.Height; y++ {
		row := img.Pix[y*img.Stride:]
		for x := 0; x < b.Width; x++ {
			i := (y*b.Width + x) * 3
			row[x*4] = b.Pix[i]
			row[x*4+1] = b.Pix[i+1]
			row[x*4+2] = b.Pix[i+2]
		}
	}
	return img
}
