// Package imaging holds the pixel-level building blocks of the stylizer:
// the RGB PixelBuffer, decoding and encoding of image files, color sampling,
// and gradient analysis.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//
// Buffers are flat and row-major. PixelBuffer stores 3 bytes per pixel,
// GradientField 2 floats per pixel, and EdgeMask 1 bool per pixel.
//
// # Gradient Analysis
//
// ComputeGradient applies Sobel operators to BT.601 luminance with clamped
// borders. SuppressEdges then performs non-maximum suppression over four
// quantized directions followed by a single low threshold; unlike a full
// Canny detector there is no hysteresis step, so edges are over-detected on
// purpose.
//
// # Thread Safety
//
// GradientField and EdgeMask are never modified after construction and can
// be read from any number of goroutines. A PixelBuffer being written must be
// owned by a single writer.
//
// # Error Handling
//
// Only the file boundary can fail. Decode returns a *DecodeError and Encode
// an *EncodeError, both wrapping the underlying cause. Output paths must end
// in .png, .jpg or .jpeg; anything else yields ErrUnsupportedFormat.
package imaging
