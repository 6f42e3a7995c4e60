package imaging

import (
	"image"
	"image/color"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createVerticalEdgeBuffer returns a buffer that is black left of edgeX and
// white from edgeX onwards.
func createVerticalEdgeBuffer(width, height, edgeX int) *PixelBuffer {
	buf := NewPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := edgeX; x < width; x++ {
			buf.SetRGB(x, y, RGB{255, 255, 255})
		}
	}
	return buf
}

// createUniformBuffer returns a buffer filled with c.
func createUniformBuffer(width, height int, c RGB) *PixelBuffer {
	buf := NewPixelBuffer(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			buf.SetRGB(x, y, c)
		}
	}
	return buf
}

// fixedNormal is a NormalSource that always returns the same sample.
type fixedNormal float64

func (f fixedNormal) NormFloat64() float64 { return float64(f) }
