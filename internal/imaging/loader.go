package imaging

import (
	"errors"
	"fmt"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// DefaultJPEGQuality is used by Encode when no positive quality is given.
const DefaultJPEGQuality = 95

// ErrUnsupportedFormat is returned when an output path does not end in
// .png, .jpg or .jpeg.
var ErrUnsupportedFormat = errors.New("unsupported output format, must have a .png or .jpg extension")

// DecodeError reports an input image that could not be read or decoded.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not open input file %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// EncodeError reports an output image that could not be encoded or written.
type EncodeError struct {
	Path string
	Err  error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("could not write output file %s: %v", e.Path, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }

// CheckOutputPath verifies that path names a format Encode can produce.
//
// It does not touch the filesystem, so it can be called before any expensive
// work to reject a bad destination early.
func CheckOutputPath(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg":
		return nil
	default:
		return ErrUnsupportedFormat
	}
}

// Decode reads an image file and flattens it into an RGB PixelBuffer.
//
// PNG, JPEG, GIF, WebP, BMP and TIFF inputs are accepted. EXIF orientation is
// applied to JPEG inputs so the buffer matches what an image viewer shows.
// Any failure is returned as a *DecodeError.
func Decode(path string) (*PixelBuffer, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	return FromImage(img), nil
}

// Encode writes buf to path using the format implied by the extension.
//
// The image is first written to a temporary file in the destination directory
// and renamed into place only after encoding succeeded, so a failed encode
// never leaves a partial file at path. jpegQuality is ignored for PNG output;
// values outside 1-100 fall back to DefaultJPEGQuality.
func Encode(buf *PixelBuffer, path string, jpegQuality int) error {
	if err := CheckOutputPath(path); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if jpegQuality < 1 || jpegQuality > 100 {
		jpegQuality = DefaultJPEGQuality
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".line-splat-*"+filepath.Ext(path))
	if err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	tmpName := tmp.Name()

	if err := imaging.Encode(tmp, buf.Image(), format, imaging.JPEGQuality(jpegQuality)); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &EncodeError{Path: path, Err: fmt.Errorf("failed to encode image: %w", err)}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &EncodeError{Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return &EncodeError{Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return &EncodeError{Path: path, Err: err}
	}
	return nil
}
