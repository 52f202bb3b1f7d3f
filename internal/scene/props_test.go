package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftglass/tablescape/internal/engine/lighting"
	"github.com/driftglass/tablescape/internal/engine/mesh"
	"github.com/driftglass/tablescape/internal/engine/texture"
)

func TestManifestFitsSlotCap(t *testing.T) {
	if len(textureManifest) > texture.MaxSlots {
		t.Fatalf("manifest has %d entries, slot cap is %d", len(textureManifest), texture.MaxSlots)
	}
}

func TestLightsFitShader(t *testing.T) {
	if len(sceneLights) > lighting.MaxLights {
		t.Fatalf("%d lights defined, shader takes %d", len(sceneLights), lighting.MaxLights)
	}
}

func TestPropTextureTagsRegistered(t *testing.T) {
	tags := make(map[string]bool)
	for _, ref := range textureManifest {
		tags[ref.Tag] = true
	}
	for _, p := range props {
		if p.Texture != "" && !tags[p.Texture] {
			t.Errorf("prop %q references texture tag %q that the manifest never loads", p.Name, p.Texture)
		}
	}
}

func TestPropMaterialsDefined(t *testing.T) {
	defined := make(map[string]bool)
	for _, m := range sceneMaterials {
		defined[m.Tag] = true
	}
	for _, p := range props {
		if !defined[p.Material] {
			t.Errorf("prop %q references material %q that is never defined", p.Name, p.Material)
		}
	}
}

func TestPropSurfaceComplete(t *testing.T) {
	for _, p := range props {
		if p.Texture == "" && p.Color == (mgl32.Vec4{}) {
			t.Errorf("prop %q has neither a texture tag nor a flat color", p.Name)
		}
	}
}

func TestPartMasksOnlyOnCylinders(t *testing.T) {
	for _, p := range props {
		if p.Parts == 0 {
			continue
		}
		if p.Mesh != mesh.Cylinder && p.Mesh != mesh.TaperedCylinder {
			t.Errorf("prop %q sets a part mask on a %v, only cylinders have separate parts", p.Name, p.Mesh)
		}
	}
}

func TestReferencedKindsDeduplicated(t *testing.T) {
	kinds := referencedKinds(props)

	seen := make(map[mesh.Kind]bool)
	for _, k := range kinds {
		if seen[k] {
			t.Errorf("kind %v appears twice", k)
		}
		seen[k] = true
	}

	// the water surface needs the half sphere even though only one
	// prop uses it
	if !seen[mesh.HalfSphere] {
		t.Error("half sphere not referenced; the vase water prop needs it")
	}

	// nothing in the arrangement uses a tapered cylinder
	if seen[mesh.TaperedCylinder] {
		t.Error("tapered cylinder referenced but no prop draws one")
	}
}
