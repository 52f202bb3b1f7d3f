// Package material holds tagged surface property bundles for the phong
// shading model.
package material

import "github.com/go-gl/mathgl/mgl32"

// Material is one bundle of lighting-response properties.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// Registry is an ordered list of materials looked up by tag.
// Tags are not deduplicated; Find returns the first match in
// definition order.
type Registry struct {
	materials []Material
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Define appends a material. No uniqueness check is made.
func (r *Registry) Define(m Material) {
	r.materials = append(r.materials, m)
}

// Find returns the first material defined under tag. A scan that
// completes without a match reports not-found, including on an empty
// registry.
func (r *Registry) Find(tag string) (Material, bool) {
	for _, m := range r.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// Len reports how many materials are defined.
func (r *Registry) Len() int {
	return len(r.materials)
}
