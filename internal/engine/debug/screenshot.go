// Package debug captures rendered frames for inspection.
package debug

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// Screenshots writes timestamped PNG captures into a directory.
type Screenshots struct {
	dir    string
	prefix string
}

func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{dir: dir, prefix: prefix}
}

// Save writes one RGBA frame and returns the path written. pixels must
// hold width*height*4 bytes ordered bottom row first, the way GL reads
// a framebuffer back.
func (s *Screenshots) Save(pixels []byte, width, height int) (string, error) {
	want := width * height * 4
	if len(pixels) != want {
		return "", fmt.Errorf("pixel buffer is %d bytes, want %d", len(pixels), want)
	}

	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", fmt.Errorf("creating screenshot dir: %w", err)
		}
	}

	name := fmt.Sprintf("%s_%s.png", s.prefix, time.Now().Format("2006-01-02_15-04-05"))
	path := filepath.Join(s.dir, name)

	if err := writePNG(path, upright(pixels, width, height)); err != nil {
		return "", err
	}
	return path, nil
}

// upright copies a bottom-first GL readback into an image with the top
// row first.
func upright(pixels []byte, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	stride := width * 4
	for row := 0; row < height; row++ {
		src := pixels[(height-1-row)*stride:][:stride]
		copy(img.Pix[row*img.Stride:], src)
	}
	return img
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
