package debug

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveFlipsRows(t *testing.T) {
	dir := t.TempDir()
	s := NewScreenshots(dir, "test")

	// one column, two rows: bottom row red, top row blue, the way GL
	// hands back a framebuffer
	pixels := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}

	path, err := s.Save(pixels, 1, 2)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("screenshot written to %q, want directory %q", path, dir)
	}
	if !strings.HasPrefix(filepath.Base(path), "test_") {
		t.Errorf("screenshot named %q, want test_ prefix", filepath.Base(path))
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding screenshot: %v", err)
	}

	r, _, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 0 || b>>8 != 255 {
		t.Errorf("top pixel = %v, want blue; rows were not flipped", img.At(0, 0))
	}
	r, _, b, _ = img.At(0, 1).RGBA()
	if r>>8 != 255 || b>>8 != 0 {
		t.Errorf("bottom pixel = %v, want red", img.At(0, 1))
	}
}

func TestSaveRejectsShortBuffer(t *testing.T) {
	s := NewScreenshots(t.TempDir(), "test")
	if _, err := s.Save(make([]byte, 7), 2, 2); err == nil {
		t.Fatal("Save() accepted a buffer of the wrong size")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "captures")
	s := NewScreenshots(dir, "test")

	pixels := make([]byte, 4)
	if _, err := s.Save(pixels, 1, 1); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output directory not created: %v", err)
	}
}
