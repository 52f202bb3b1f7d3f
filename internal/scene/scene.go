// Package scene draws a still life on a kitchen island: a wicker
// basket, a glass vase with water, a ceramic container, fruit, a
// candle in a jar and a candle snuffer, lit by two static lights.
package scene

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/driftglass/tablescape/internal/engine/lighting"
	"github.com/driftglass/tablescape/internal/engine/material"
	"github.com/driftglass/tablescape/internal/engine/mesh"
	"github.com/driftglass/tablescape/internal/engine/shader"
	"github.com/driftglass/tablescape/internal/engine/texture"
	"github.com/driftglass/tablescape/internal/logger"
)

// Scene owns the GL resources of the still life and replays its draw
// table every frame.
type Scene struct {
	pipeline  *shader.Pipeline
	textures  *texture.Registry
	materials *material.Registry
	meshes    *mesh.Library
	lights    []lighting.Light
	props     []Prop
	texDir    string
}

// New compiles the shading pipeline and sets up empty registries.
// Call Prepare before the first frame.
func New(texturesDir string) (*Scene, error) {
	pipeline, err := shader.NewPipeline(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("scene pipeline: %w", err)
	}

	return &Scene{
		pipeline:  pipeline,
		textures:  texture.NewRegistry(texture.GL()),
		materials: material.NewRegistry(),
		meshes:    mesh.NewLibrary(),
		lights:    sceneLights,
		props:     props,
		texDir:    texturesDir,
	}, nil
}

// Prepare loads every GPU resource the draw table needs: the texture
// manifest, the material definitions, the lights and the referenced
// mesh kinds. A texture that fails to load is logged and skipped; the
// affected props fall back to flat color at draw time.
func (s *Scene) Prepare() {
	for _, ref := range textureManifest {
		path := filepath.Join(s.texDir, ref.File)
		if err := s.textures.Load(path, ref.Tag); err != nil {
			logger.Warn("texture unavailable",
				zap.String("file", ref.File),
				zap.String("tag", ref.Tag),
				zap.Error(err),
			)
		}
	}
	s.textures.BindAll()

	for _, m := range sceneMaterials {
		s.materials.Define(m)
	}

	s.pipeline.Use()
	lighting.Apply(s.pipeline, s.lights)

	s.meshes.Load(referencedKinds(s.props)...)

	logger.Info("scene prepared",
		zap.Int("textures", s.textures.Len()),
		zap.Int("materials", s.materials.Len()),
		zap.Int("lights", len(s.lights)),
		zap.Int("props", len(s.props)),
	)
}

// Render replays the draw table with the given view and projection.
func (s *Scene) Render(view, projection mgl32.Mat4, cameraPos mgl32.Vec3) {
	s.pipeline.Use()
	s.pipeline.SetMat4("view", view)
	s.pipeline.SetMat4("projection", projection)
	s.pipeline.SetVec3("viewPosition", cameraPos)

	for i := range s.props {
		s.drawProp(&s.props[i])
	}
}

func (s *Scene) drawProp(p *Prop) {
	s.pipeline.SetMat4("model", ModelMatrix(p.Scale, p.Rotation, p.Position))

	s.applySurface(p)

	uv := p.UVScale
	if uv == (mgl32.Vec2{}) {
		uv = mgl32.Vec2{1, 1}
	}
	s.pipeline.SetVec2("UVscale", uv)

	if mat, ok := s.materials.Find(p.Material); ok {
		s.pipeline.SetVec3("material.ambientColor", mat.AmbientColor)
		s.pipeline.SetFloat("material.ambientStrength", mat.AmbientStrength)
		s.pipeline.SetVec3("material.diffuseColor", mat.DiffuseColor)
		s.pipeline.SetVec3("material.specularColor", mat.SpecularColor)
		s.pipeline.SetFloat("material.shininess", mat.Shininess)
	} else if p.Material != "" {
		logger.Warn("material not defined",
			zap.String("tag", p.Material),
			zap.String("prop", p.Name),
		)
	}

	s.meshes.Mesh(p.Mesh).Draw(p.Parts)
}

// applySurface selects the texture or flat-color path for a prop. A
// texture tag that never registered falls back to opaque white so the
// prop stays visible.
func (s *Scene) applySurface(p *Prop) {
	if p.Texture != "" {
		if slot, ok := s.textures.FindSlot(p.Texture); ok {
			s.pipeline.SetBool("bUseTexture", true)
			s.pipeline.SetSampler("objectTexture", slot)
			return
		}
		logger.Warn("texture tag not registered",
			zap.String("tag", p.Texture),
			zap.String("prop", p.Name),
		)
	}

	color := p.Color
	if p.Texture != "" {
		color = mgl32.Vec4{1, 1, 1, 1}
	}
	s.pipeline.SetBool("bUseTexture", false)
	s.pipeline.SetVec4("objectColor", color)
}

// Close releases every GL resource the scene owns.
func (s *Scene) Close() {
	s.meshes.Close()
	s.textures.Close()
	s.pipeline.Close()
}
