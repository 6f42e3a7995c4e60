package imaging

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// writeTestPNG encodes img as a PNG file in a temporary directory and
// returns its path.
func writeTestPNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

func TestDecode(t *testing.T) {
	path := writeTestPNG(t, createInMemoryImage(6, 4, color.RGBA{255, 128, 64, 255}))

	buf, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if buf.Width != 6 || buf.Height != 4 {
		t.Errorf("dimensions: got %dx%d, want 6x4", buf.Width, buf.Height)
	}
	if len(buf.Pix) != 6*4*3 {
		t.Errorf("len(Pix): got %d, want %d", len(buf.Pix), 6*4*3)
	}
	if got := buf.RGBAt(5, 3); got != (RGB{255, 128, 64}) {
		t.Errorf("RGBAt(5,3): got %v, want {255 128 64}", got)
	}
}

func TestDecode_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.png")

	_, err := Decode(path)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %T", err)
	}
	if decodeErr.Path != path {
		t.Errorf("Path: got %s, want %s", decodeErr.Path, path)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestDecode_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bogus.png")
	if err := os.WriteFile(path, []byte("not an image"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	_, err := Decode(path)
	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected *DecodeError, got %v", err)
	}
}

func TestCheckOutputPath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"out.png", false},
		{"out.PNG", false},
		{"out.jpg", false},
		{"dir/out.jpeg", false},
		{"out.JPeG", false},
		{"out.gif", true},
		{"out.bmp", true},
		{"out", true},
		{"png", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			err := CheckOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckOutputPath(%q): got err=%v, wantErr=%v", tt.path, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnsupportedFormat) {
				t.Errorf("expected ErrUnsupportedFormat, got %v", err)
			}
		})
	}
}

func TestEncode_PNGRoundTrip(t *testing.T) {
	buf := NewPixelBuffer(5, 3)
	buf.SetRGB(0, 0, RGB{1, 2, 3})
	buf.SetRGB(4, 2, RGB{250, 128, 7})

	path := filepath.Join(t.TempDir(), "out.png")
	if err := Encode(buf, path, 0); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if got.Width != 5 || got.Height != 3 {
		t.Fatalf("dimensions: got %dx%d, want 5x3", got.Width, got.Height)
	}
	for i := range buf.Pix {
		if got.Pix[i] != buf.Pix[i] {
			t.Fatalf("Pix[%d]: got %d, want %d", i, got.Pix[i], buf.Pix[i])
		}
	}
}

func TestEncode_JPEG(t *testing.T) {
	buf := createUniformBuffer(16, 16, RGB{100, 150, 200})

	path := filepath.Join(t.TempDir(), "out.jpg")
	if err := Encode(buf, path, 90); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	got, err := Decode(path)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	c := got.RGBAt(8, 8)
	if absDiff(c.R, 100) > 8 || absDiff(c.G, 150) > 8 || absDiff(c.B, 200) > 8 {
		t.Errorf("RGBAt(8,8): got %v, want about {100 150 200}", c)
	}
}

func TestEncode_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.gif")

	err := Encode(NewPixelBuffer(2, 2), path, 0)
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
	var encodeErr *EncodeError
	if !errors.As(err, &encodeErr) {
		t.Errorf("expected *EncodeError, got %T", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Errorf("no file should be written, stat err: %v", statErr)
	}
}

func TestEncode_UnwritableDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "out.png")

	err := Encode(NewPixelBuffer(2, 2), path, 0)
	var encodeErr *EncodeError
	if !errors.As(err, &encodeErr) {
		t.Fatalf("expected *EncodeError, got %v", err)
	}
}

func TestEncode_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	if err := Encode(NewPixelBuffer(3, 3), filepath.Join(dir, "out.png"), 0); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "out.png" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contents: got %v, want [out.png]", names)
	}
}
