package texture

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writePNG(t *testing.T, path string, img image.Image) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create %s: %v", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode png: %v", err)
	}
}

func TestDecodeFlipsRows(t *testing.T) {
	// 1x2 image: red on top, blue on the bottom.
	src := image.NewNRGBA(image.Rect(0, 0, 1, 2))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(0, 1, color.NRGBA{B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "stripe.png")
	writePNG(t, path, src)

	out, err := Decode(path)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	// After the flip the bottom of the image is row 0.
	if c := out.RGBAAt(0, 0); c.B != 255 || c.R != 0 {
		t.Errorf("expected blue at row 0 after flip, got %+v", c)
	}
	if c := out.RGBAAt(0, 1); c.R != 255 || c.B != 0 {
		t.Errorf("expected red at row 1 after flip, got %+v", c)
	}
}

func TestDecodeJPEG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, color.RGBA{R: 180, G: 120, B: 60, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "tex.jpg")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	if err := jpeg.Encode(f, src, nil); err != nil {
		f.Close()
		t.Fatalf("failed to encode jpeg: %v", err)
	}
	f.Close()

	out, err := Decode(path)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if b := out.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("expected 8x8 image, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestDecodeRejectsGrayscale(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 4))
	path := filepath.Join(t.TempDir(), "gray.png")
	writePNG(t, path, src)

	_, err := Decode(path)
	if err == nil {
		t.Fatal("expected error decoding grayscale image, got nil")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("expected unsupported-channel error, got %v", err)
	}
}

func TestDecodeMissingFile(t *testing.T) {
	if _, err := Decode("/nonexistent/tex.png"); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestDecodeCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}

	if _, err := Decode(path); err == nil {
		t.Error("expected error for corrupt file, got nil")
	}
}

func TestChannelCount(t *testing.T) {
	opaque := color.Palette{color.NRGBA{R: 10, A: 255}, color.NRGBA{G: 20, A: 255}}
	translucent := color.Palette{color.NRGBA{R: 10, A: 255}, color.NRGBA{G: 20, A: 128}}

	tests := []struct {
		name     string
		img      image.Image
		expected int
	}{
		{"gray", image.NewGray(image.Rect(0, 0, 1, 1)), 1},
		{"gray16", image.NewGray16(image.Rect(0, 0, 1, 1)), 1},
		{"alpha", image.NewAlpha(image.Rect(0, 0, 1, 1)), 2},
		{"ycbcr", image.NewYCbCr(image.Rect(0, 0, 2, 2), image.YCbCrSubsampleRatio420), 3},
		{"rgba", image.NewRGBA(image.Rect(0, 0, 1, 1)), 4},
		{"nrgba", image.NewNRGBA(image.Rect(0, 0, 1, 1)), 4},
		{"paletted opaque", image.NewPaletted(image.Rect(0, 0, 1, 1), opaque), 3},
		{"paletted alpha", image.NewPaletted(image.Rect(0, 0, 1, 1), translucent), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := channelCount(tt.img); got != tt.expected {
				t.Errorf("expected %d channels, got %d", tt.expected, got)
			}
		})
	}
}
