package imaging

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

const (
	// colorShiftStdDev is the per-channel standard deviation used by ShiftColor.
	colorShiftStdDev = 10.0

	// lightnessShiftStdDev is the standard deviation, on a 0-1 lightness
	// scale, used by ShiftLightness.
	lightnessShiftStdDev = 0.03
)

// RGB is an 8-bit per channel color without alpha.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex formats the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// NormalSource produces standard normal samples (mean 0, stddev 1).
// *rand.Rand from math/rand/v2 satisfies it.
type NormalSource interface {
	NormFloat64() float64
}

// ColorAt returns the average color of the 3x3 box centred on (x, y).
//
// The box is clipped to the image, so corner pixels average 4 samples and
// edge pixels 6. Channel means are truncated toward zero. The coordinates
// must be in bounds.
func ColorAt(buf *PixelBuffer, x, y int) RGB {
	minX := max(x-1, 0)
	minY := max(y-1, 0)
	maxX := min(x+1, buf.Width-1)
	maxY := min(y+1, buf.Height-1)

	var rSum, gSum, bSum, total float64
	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			i := (sy*buf.Width + sx) * 3
			rSum += float64(buf.Pix[i])
			gSum += float64(buf.Pix[i+1])
			bSum += float64(buf.Pix[i+2])
			total++
		}
	}

	return RGB{
		R: uint8(rSum / total),
		G: uint8(gSum / total),
		B: uint8(bSum / total),
	}
}

// Mix returns the per-channel integer mean of two colors.
func Mix(a, b RGB) RGB {
	return RGB{
		R: uint8((uint16(a.R) + uint16(b.R)) / 2),
		G: uint8((uint16(a.G) + uint16(b.G)) / 2),
		B: uint8((uint16(a.B) + uint16(b.B)) / 2),
	}
}

// ShiftColor perturbs each channel independently by a normal sample with a
// standard deviation of 10 levels, rounding and clamping to 0-255.
func ShiftColor(rng NormalSource, c RGB) RGB {
	shift := func(v uint8) uint8 {
		return clampToU8(float64(v) + rng.NormFloat64()*colorShiftStdDev)
	}
	return RGB{R: shift(c.R), G: shift(c.G), B: shift(c.B)}
}

// ShiftLightness moves the HSL lightness of c by a normal sample with a
// standard deviation of 0.03, keeping hue and saturation.
func ShiftLightness(rng NormalSource, c RGB) RGB {
	h, s, l := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hsl()

	l += rng.NormFloat64() * lightnessShiftStdDev
	l = math.Max(math.Min(l, 1), 0)

	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// clampToU8 rounds v to the nearest integer and clamps it to 0-255.
func clampToU8(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
