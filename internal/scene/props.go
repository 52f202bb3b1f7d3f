package scene

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/driftglass/tablescape/internal/engine/lighting"
	"github.com/driftglass/tablescape/internal/engine/material"
	"github.com/driftglass/tablescape/internal/engine/mesh"
)

// textureRef pairs an image file with the tag draw records look it up by.
type textureRef struct {
	File string
	Tag  string
}

// Prop is one draw record: a primitive with its transform and surface.
type Prop struct {
	Name string

	Scale    mgl32.Vec3
	Rotation mgl32.Vec3 // degrees about world X, Y, Z
	Position mgl32.Vec3

	Texture string     // texture tag; empty means flat color
	Color   mgl32.Vec4 // used when Texture is empty
	UVScale mgl32.Vec2 // zero means 1x1

	Material string
	Mesh     mesh.Kind
	Parts    mesh.Part // zero draws the whole shape
}

// textureManifest lists the images Prepare loads, in slot order. The
// granite image is loaded twice under the same tag; tag lookups resolve
// to the first match, so the second copy stays bound but unreferenced.
var textureManifest = []textureRef{
	{"granite_texture.jpg", "island top"},
	{"plaster_texture.jpg", "island stand"},
	{"wicker_light_texture.jpg", "stand base"},
	{"light_wood_texture.jpg", "top torus"},
	{"bamboo_texture.jpg", "torus"},
	{"granite_texture.jpg", "island top"},
	{"wood_shiny_texture.jpg", "bottom torus"},
	{"wood_floor_texture.jpg", "floor"},
	{"matte_black_metal.jpg", "candle snuffer"},
	{"ceramic_texture.jpg", "pottery"},
	{"leather_texture1.jpg", "fruit"},
	{"paper_texture2.jpg", "paper"},
	{"wax_texture.jpg", "wax"},
	{"dark_wood_texture1.jpg", "dark wood"},
	{"stainless.jpg", "steel"},
}

var sceneMaterials = []material.Material{
	{
		Tag:             "metal",
		AmbientColor:    mgl32.Vec3{0.3, 0.3, 0.3},
		AmbientStrength: 0.5,
		DiffuseColor:    mgl32.Vec3{0.25, 0.25, 0.25},
		SpecularColor:   mgl32.Vec3{0.4, 0.4, 0.4},
		Shininess:       30.0,
	},
	{
		Tag:             "wood",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
		AmbientStrength: 0.25,
		DiffuseColor:    mgl32.Vec3{0.4, 0.4, 0.4},
		SpecularColor:   mgl32.Vec3{0.15, 0.15, 0.15},
		Shininess:       0.3,
	},
	{
		Tag:             "glass",
		AmbientColor:    mgl32.Vec3{0.4, 0.4, 0.4},
		AmbientStrength: 0.3,
		DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.3},
		SpecularColor:   mgl32.Vec3{0.6, 0.6, 0.6},
		Shininess:       85.0,
	},
	{
		Tag:             "ceramic",
		AmbientColor:    mgl32.Vec3{0.6, 0.6, 0.6},
		AmbientStrength: 0.25,
		DiffuseColor:    mgl32.Vec3{0.86, 0.82, 0.78},
		SpecularColor:   mgl32.Vec3{0, 0, 0},
		Shininess:       25.0,
	},
	{
		Tag:             "walling",
		AmbientColor:    mgl32.Vec3{0.45, 0.45, 0.45},
		AmbientStrength: 0.7,
		DiffuseColor:    mgl32.Vec3{0.4, 0.5, 0.35},
		SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess:       0.0,
	},
	{
		Tag:             "leather",
		AmbientColor:    mgl32.Vec3{0.56, 0.45, 0.113},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{0.76, 0.64, 0.2},
		SpecularColor:   mgl32.Vec3{0.76, 0.64, 0.2},
		Shininess:       0.0,
	},
	{
		Tag:             "parchment",
		AmbientColor:    mgl32.Vec3{0.49, 0.41, 0.28},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{0.69, 0.63, 0.53},
		SpecularColor:   mgl32.Vec3{0.85, 0.8, 0.69},
		Shininess:       0.5,
	},
}

// Two static lights: a strong white key overhead and a dim fill off to
// the side.
var sceneLights = []lighting.Light{
	{
		Position:          mgl32.Vec3{0, 15, 2},
		AmbientColor:      mgl32.Vec3{0.05, 0.05, 0.05},
		DiffuseColor:      mgl32.Vec3{0.8, 0.8, 0.8},
		SpecularColor:     mgl32.Vec3{0.2, 0.2, 0.2},
		FocalStrength:     20.0,
		SpecularIntensity: 0.1,
	},
	{
		Position:          mgl32.Vec3{-4, 12, 3},
		AmbientColor:      mgl32.Vec3{0.1, 0.1, 0.1},
		DiffuseColor:      mgl32.Vec3{0.25, 0.25, 0.25},
		SpecularColor:     mgl32.Vec3{0, 0, 0},
		FocalStrength:     15.0,
		SpecularIntensity: 0.1,
	},
}

// props is the still life, drawn in order: the kitchen island and
// floor, a wicker basket built from two torus rims on a stand, a
// candle snuffer, a glass vase with water, a lidded ceramic container,
// a piece of fruit and a labeled wax candle in a glass jar.
var props = []Prop{
	{
		Name:     "floor",
		Scale:    mgl32.Vec3{20, 1, 10},
		Position: mgl32.Vec3{0, 0, 0},
		Texture:  "floor",
		UVScale:  mgl32.Vec2{1, 1},
		Material: "wood",
		Mesh:     mesh.Plane,
	},
	{
		Name:     "island base",
		Scale:    mgl32.Vec3{12, 7, 5},
		Position: mgl32.Vec3{0, 0, 0},
		Texture:  "island stand",
		UVScale:  mgl32.Vec2{1, 1},
		Material: "walling",
		Mesh:     mesh.Box,
	},
	{
		Name:     "island top",
		Scale:    mgl32.Vec3{14, 0.3, 6},
		Position: mgl32.Vec3{0, 3.51, 0},
		Texture:  "island top",
		UVScale:  mgl32.Vec2{1, 1},
		Material: "glass",
		Mesh:     mesh.Box,
	},
	{
		Name:     "stand base",
		Scale:    mgl32.Vec3{2, 0.1, 2},
		Position: mgl32.Vec3{0, 3.6, 0},
		Texture:  "stand base",
		UVScale:  mgl32.Vec2{1, 1},
		Material: "wood",
		Mesh:     mesh.Cylinder,
	},
	{
		Name:     "basket rim bottom",
		Scale:    mgl32.Vec3{2, 2, 1},
		Rotation: mgl32.Vec3{90, 0, 0},
		Position: mgl32.Vec3{0, 3.7, 0},
		Texture:  "bottom torus",
		UVScale:  mgl32.Vec2{1, 1},
		Material: "wood",
		Mesh:     mesh.Torus,
	},
	{
		Name:     "basket rim top",
		Scale:    mgl32.Vec3{2, 2, 1},
		Rotation: mgl32.Vec3{90, 0, 0},
		Position: mgl32.Vec3{0, 3.8, 0},
		Texture:  "top torus",
		UVScale:  mgl32.Vec2{1, 1},
		Material: "wood",
		Mesh:     mesh.Torus,
	},
	{
		Name:     "snuffer body",
		Scale:    mgl32.Vec3{0.06, 0.15, 0.06},
		Position: mgl32.Vec3{0, 3.7, 1.25},
		Texture:  "candle snuffer",
		UVScale:  mgl32.Vec2{1, 1},
		Material: "metal",
		Mesh:     mesh.Cylinder,
	},
	{
		Name:     "snuffer hinge",
		Scale:    mgl32.Vec3{0.05, 0.07, 0.05},
		Position: mgl32.Vec3{0, 3.88, 1.25},
		Texture:  "candle snuffer",
		UVScale:  mgl32.Vec2{1, 1},
		Material: "metal",
		Mesh:     mesh.Box,
	},
	{
		Name:     "snuffer handle",
		Scale:    mgl32.Vec3{0.5, 0.025, 0.025},
		Rotation: mgl32.Vec3{0, 0, 160},
		Position: mgl32.Vec3{0.25, 3.8, 1.25},
		Texture:  "candle snuffer",
		UVScale:  mgl32.Vec2{1, 1},
		Material: "metal",
		Mesh:     mesh.Box,
	},
	{
		Name:     "vase body",
		Scale:    mgl32.Vec3{1, 1, 1},
		Position: mgl32.Vec3{0.25, 4.6, -0.65},
		Color:    mgl32.Vec4{0.7, 0.7, 0.8, 0.3},
		Material: "glass",
		Mesh:     mesh.Sphere,
	},
	{
		Name:     "vase neck",
		Scale:    mgl32.Vec3{0.5, 0.45, 0.5},
		Position: mgl32.Vec3{0.25, 5.45, -0.65},
		Color:    mgl32.Vec4{0.7, 0.7, 0.8, 0.3},
		Material: "glass",
		Mesh:     mesh.Cylinder,
		Parts:    mesh.PartSide,
	},
	{
		Name:     "vase water",
		Scale:    mgl32.Vec3{0.9, 0.9, 0.9},
		Rotation: mgl32.Vec3{180, 0, 0},
		Position: mgl32.Vec3{0.25, 4.9, -0.65},
		Color:    mgl32.Vec4{0.83, 0.94, 0.976, 0.7},
		Material: "glass",
		Mesh:     mesh.HalfSphere,
	},
	{
		Name:     "container body",
		Scale:    mgl32.Vec3{0.55, 1.25, 0.55},
		Position: mgl32.Vec3{-0.95, 3.72, 0.75},
		Texture:  "pottery",
		UVScale:  mgl32.Vec2{1, 1},
		Material: "ceramic",
		Mesh:     mesh.Cylinder,
	},
	{
		// a squashed sphere reads as a domed lid
		Name:     "container lid",
		Scale:    mgl32.Vec3{0.57, 0.05, 0.57},
		Position: mgl32.Vec3{-0.95, 4.96, 0.75},
		Texture:  "pottery",
		UVScale:  mgl32.Vec2{0.5, 0.5},
		Material: "ceramic",
		Mesh:     mesh.Sphere,
	},
	{
		Name:     "fruit",
		Scale:    mgl32.Vec3{0.35, 0.35, 0.35},
		Position: mgl32.Vec3{0.95, 4.0, 0.7},
		Texture:  "fruit",
		UVScale:  mgl32.Vec2{0.5, 0.5},
		Material: "leather",
		Mesh:     mesh.Sphere,
	},
	{
		Name:     "candle jar",
		Scale:    mgl32.Vec3{0.3, 0.5, 0.3},
		Position: mgl32.Vec3{0.25, 3.7, 0.7},
		Color:    mgl32.Vec4{0.7, 0.7, 0.8, 0.4},
		Material: "glass",
		Mesh:     mesh.Cylinder,
		Parts:    mesh.PartBottom | mesh.PartSide,
	},
	{
		Name:     "candle label",
		Scale:    mgl32.Vec3{0.305, 0.305, 0.305},
		Position: mgl32.Vec3{0.25, 3.75, 0.7},
		Texture:  "paper",
		UVScale:  mgl32.Vec2{1, 1},
		Material: "parchment",
		Mesh:     mesh.Cylinder,
		Parts:    mesh.PartSide,
	},
	{
		Name:     "candle wax",
		Scale:    mgl32.Vec3{0.29, 0.35, 0.29},
		Position: mgl32.Vec3{0.25, 3.7, 0.7},
		Texture:  "wax",
		UVScale:  mgl32.Vec2{1, 1},
		Material: "ceramic",
		Mesh:     mesh.Cylinder,
	},
	{
		Name:     "candle wick",
		Scale:    mgl32.Vec3{0.03, 0.12, 0.03},
		Position: mgl32.Vec3{0.25, 4.05, 0.7},
		Texture:  "candle snuffer",
		UVScale:  mgl32.Vec2{1, 1},
		Material: "metal",
		Mesh:     mesh.Box,
	},
}

// referencedKinds returns the mesh kinds the draw table uses, in first
// appearance order without duplicates.
func referencedKinds(props []Prop) []mesh.Kind {
	var kinds []mesh.Kind
	seen := make(map[mesh.Kind]bool)
	for _, p := range props {
		if !seen[p.Mesh] {
			seen[p.Mesh] = true
			kinds = append(kinds, p.Mesh)
		}
	}
	return kinds
}
