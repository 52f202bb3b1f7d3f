package texture

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

// fakeBackend records uploads, binds and deletes without a GL context.
type fakeBackend struct {
	nextID  uint32
	uploads int
	binds   [][2]uint32 // unit, id
	deleted []uint32
}

func (f *fakeBackend) Upload(img *image.RGBA) uint32 {
	f.uploads++
	f.nextID++
	return f.nextID
}

func (f *fakeBackend) Bind(unit uint32, id uint32) {
	f.binds = append(f.binds, [2]uint32{unit, id})
}

func (f *fakeBackend) Delete(ids []uint32) {
	f.deleted = append(f.deleted, ids...)
}

// writeTexturePNG writes a small RGB-bearing PNG and returns its path.
func writeTexturePNG(t *testing.T, dir, name string) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(40 * x), G: uint8(40 * y), B: 90, A: 255})
		}
	}
	path := filepath.Join(dir, name)
	writePNG(t, path, img)
	return path
}

func TestLoadAssignsDenseSlots(t *testing.T) {
	dir := t.TempDir()
	backend := &fakeBackend{}
	reg := NewRegistry(backend)

	tags := []string{"island top", "island stand", "floor"}
	for i, tag := range tags {
		path := writeTexturePNG(t, dir, fmt.Sprintf("tex%d.png", i))
		if err := reg.Load(path, tag); err != nil {
			t.Fatalf("load %q failed: %v", tag, err)
		}
	}

	if reg.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", reg.Len())
	}

	for i, tag := range tags {
		handle, ok := reg.FindHandle(tag)
		if !ok {
			t.Errorf("expected to find handle for %q", tag)
		}
		if handle != uint32(i+1) {
			t.Errorf("expected handle %d for %q, got %d", i+1, tag, handle)
		}

		slot, ok := reg.FindSlot(tag)
		if !ok {
			t.Errorf("expected to find slot for %q", tag)
		}
		if slot != int32(i) {
			t.Errorf("expected slot %d for %q, got %d", i, tag, slot)
		}
	}
}

func TestLoadGrayscaleRegistersNothing(t *testing.T) {
	dir := t.TempDir()
	backend := &fakeBackend{}
	reg := NewRegistry(backend)

	path := filepath.Join(dir, "gray.png")
	writePNG(t, path, image.NewGray(image.Rect(0, 0, 4, 4)))

	if err := reg.Load(path, "gray"); err == nil {
		t.Fatal("expected error loading grayscale texture, got nil")
	}

	if reg.Len() != 0 {
		t.Errorf("expected empty registry after failed load, got %d entries", reg.Len())
	}
	if backend.uploads != 0 {
		t.Errorf("expected no uploads after failed load, got %d", backend.uploads)
	}
	if _, ok := reg.FindHandle("gray"); ok {
		t.Error("expected not-found for tag of failed load")
	}
}

func TestFindUnregisteredTag(t *testing.T) {
	dir := t.TempDir()
	reg := NewRegistry(&fakeBackend{})

	if err := reg.Load(writeTexturePNG(t, dir, "a.png"), "wax"); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if _, ok := reg.FindHandle("marble"); ok {
		t.Error("expected not-found handle for unregistered tag")
	}
	if _, ok := reg.FindSlot("marble"); ok {
		t.Error("expected not-found slot for unregistered tag")
	}
}

func TestDuplicateTagFirstMatchWins(t *testing.T) {
	dir := t.TempDir()
	backend := &fakeBackend{}
	reg := NewRegistry(backend)

	first := writeTexturePNG(t, dir, "first.png")
	second := writeTexturePNG(t, dir, "second.png")

	if err := reg.Load(first, "island top"); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := reg.Load(second, "island top"); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	// Both entries persist.
	if reg.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", reg.Len())
	}

	// Lookups return the first registration.
	handle, ok := reg.FindHandle("island top")
	if !ok || handle != 1 {
		t.Errorf("expected first handle 1, got %d (found=%v)", handle, ok)
	}
	slot, ok := reg.FindSlot("island top")
	if !ok || slot != 0 {
		t.Errorf("expected first slot 0, got %d (found=%v)", slot, ok)
	}
}

func TestBindAllBindsSlotsInOrder(t *testing.T) {
	dir := t.TempDir()
	backend := &fakeBackend{}
	reg := NewRegistry(backend)

	for i := 0; i < 3; i++ {
		path := writeTexturePNG(t, dir, fmt.Sprintf("tex%d.png", i))
		if err := reg.Load(path, fmt.Sprintf("tag%d", i)); err != nil {
			t.Fatalf("load failed: %v", err)
		}
	}

	reg.BindAll()

	if len(backend.binds) != 3 {
		t.Fatalf("expected 3 binds, got %d", len(backend.binds))
	}
	for i, bind := range backend.binds {
		if bind[0] != uint32(i) {
			t.Errorf("bind %d: expected unit %d, got %d", i, i, bind[0])
		}
		if bind[1] != uint32(i+1) {
			t.Errorf("bind %d: expected handle %d, got %d", i, i+1, bind[1])
		}
	}
}

func TestLoadSlotCap(t *testing.T) {
	dir := t.TempDir()
	backend := &fakeBackend{}
	reg := NewRegistry(backend)

	path := writeTexturePNG(t, dir, "tex.png")
	for i := 0; i < MaxSlots; i++ {
		if err := reg.Load(path, fmt.Sprintf("tag%d", i)); err != nil {
			t.Fatalf("load %d failed: %v", i, err)
		}
	}

	if err := reg.Load(path, "one too many"); err == nil {
		t.Error("expected error loading past the slot cap, got nil")
	}
	if reg.Len() != MaxSlots {
		t.Errorf("expected %d entries, got %d", MaxSlots, reg.Len())
	}
}

func TestLoadMissingFileRegistersNothing(t *testing.T) {
	backend := &fakeBackend{}
	reg := NewRegistry(backend)

	if err := reg.Load("/nonexistent/tex.png", "ghost"); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if reg.Len() != 0 {
		t.Errorf("expected empty registry, got %d entries", reg.Len())
	}
}

func TestCloseDeletesTextures(t *testing.T) {
	dir := t.TempDir()
	backend := &fakeBackend{}
	reg := NewRegistry(backend)

	if err := reg.Load(writeTexturePNG(t, dir, "a.png"), "a"); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if err := reg.Load(writeTexturePNG(t, dir, "b.png"), "b"); err != nil {
		t.Fatalf("load failed: %v", err)
	}

	reg.Close()

	if len(backend.deleted) != 2 {
		t.Fatalf("expected 2 deleted textures, got %d", len(backend.deleted))
	}
	if backend.deleted[0] != 1 || backend.deleted[1] != 2 {
		t.Errorf("expected deleted handles [1 2], got %v", backend.deleted)
	}
	if reg.Len() != 0 {
		t.Errorf("expected empty registry after close, got %d", reg.Len())
	}

	// Close on an empty registry is a no-op.
	reg.Close()
	if len(backend.deleted) != 2 {
		t.Errorf("expected no further deletes, got %d", len(backend.deleted))
	}
}
