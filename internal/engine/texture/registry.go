package texture

import (
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/driftglass/tablescape/internal/logger"
)

// MaxSlots is the number of texture units the scene may occupy. GL 4.1
// guarantees at least 16 per stage.
const MaxSlots = 16

// Entry ties a tag to an uploaded texture and the unit slot it binds to.
type Entry struct {
	Tag  string
	ID   uint32
	Slot int32
}

// Backend performs the GL half of texture management. Injecting it keeps
// the registry bookkeeping testable without a live context.
type Backend interface {
	Upload(img *image.RGBA) uint32
	Bind(unit uint32, id uint32)
	Delete(ids []uint32)
}

// Registry loads texture images and maps tags to handles and slots.
//
// Tags are not unique: loading the same tag twice keeps both entries, and
// lookups return the first match in load order. Slots are dense, starting
// at 0, assigned in load order.
type Registry struct {
	backend Backend
	entries []Entry
}

// NewRegistry creates an empty registry on the given backend.
func NewRegistry(backend Backend) *Registry {
	return &Registry{backend: backend}
}

// Load decodes the image at path and registers it under tag in the next
// slot. A failed load leaves the registry unchanged and is not fatal to
// the caller.
func (r *Registry) Load(path, tag string) error {
	if len(r.entries) >= MaxSlots {
		return fmt.Errorf("texture %q: all %d slots in use", tag, MaxSlots)
	}

	img, err := Decode(path)
	if err != nil {
		return err
	}

	id := r.backend.Upload(img)
	slot := int32(len(r.entries))
	r.entries = append(r.entries, Entry{
		Tag:  tag,
		ID:   id,
		Slot: slot,
	})

	b := img.Bounds()
	logger.Debug("texture loaded",
		zap.String("tag", tag),
		zap.String("path", path),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
		zap.Int32("slot", slot),
	)
	return nil
}

// BindAll binds every registered texture to the unit matching its slot.
// Called once after loading, before the first draw that samples.
func (r *Registry) BindAll() {
	for _, e := range r.entries {
		r.backend.Bind(uint32(e.Slot), e.ID)
	}
}

// FindHandle returns the texture handle registered first under tag.
func (r *Registry) FindHandle(tag string) (uint32, bool) {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.ID, true
		}
	}
	return 0, false
}

// FindSlot returns the unit slot registered first under tag.
func (r *Registry) FindSlot(tag string) (int32, bool) {
	for _, e := range r.entries {
		if e.Tag == tag {
			return e.Slot, true
		}
	}
	return -1, false
}

// Len reports how many textures are registered.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Close deletes all registered GL textures.
func (r *Registry) Close() {
	if len(r.entries) == 0 {
		return
	}

	ids := make([]uint32, len(r.entries))
	for i, e := range r.entries {
		ids[i] = e.ID
	}
	r.backend.Delete(ids)
	r.entries = nil
}
