// Package lighting holds the scene's static light sources and uploads them
// to the shading pipeline.
package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/driftglass/tablescape/internal/logger"
)

// MaxLights is the size of the lightSources array in the fragment shader.
const MaxLights = 4

// Light is one static light source.
type Light struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// Setter is the slice of the shading pipeline lighting needs.
type Setter interface {
	SetBool(name string, v bool)
	SetVec3(name string, v mgl32.Vec3)
	SetFloat(name string, v float32)
}

// Apply enables lighting and uploads each light to its indexed uniform
// block. Lights beyond MaxLights are dropped with a warning; the shader
// has nowhere to put them.
func Apply(s Setter, lights []Light) {
	if len(lights) > MaxLights {
		logger.Warn("too many lights for shader",
			zap.Int("defined", len(lights)),
			zap.Int("max", MaxLights),
		)
		lights = lights[:MaxLights]
	}

	s.SetBool("bUseLighting", true)

	for i, l := range lights {
		s.SetVec3(uniformName(i, "position"), l.Position)
		s.SetVec3(uniformName(i, "ambientColor"), l.AmbientColor)
		s.SetVec3(uniformName(i, "diffuseColor"), l.DiffuseColor)
		s.SetVec3(uniformName(i, "specularColor"), l.SpecularColor)
		s.SetFloat(uniformName(i, "focalStrength"), l.FocalStrength)
		s.SetFloat(uniformName(i, "specularIntensity"), l.SpecularIntensity)
	}
}

func uniformName(index int, field string) string {
	return fmt.Sprintf("lightSources[%d].%s", index, field)
}
