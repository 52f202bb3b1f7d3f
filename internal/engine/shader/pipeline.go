package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/driftglass/tablescape/internal/logger"
)

// Pipeline wraps a linked shader program with named-uniform setters.
// Uniform locations are resolved once and cached by name; a name the
// linker discarded is cached as -1 and further sets on it are no-ops.
//
// The setters write to the currently bound program, so Use must be
// called before any of them.
type Pipeline struct {
	program uint32
	locs    map[string]int32
}

// NewPipeline compiles and links the given sources into a ready pipeline.
func NewPipeline(vertexSrc, fragmentSrc string) (*Pipeline, error) {
	program, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}

	return &Pipeline{
		program: program,
		locs:    make(map[string]int32),
	}, nil
}

// Use makes this pipeline's program current.
func (p *Pipeline) Use() {
	gl.UseProgram(p.program)
}

// Close deletes the underlying program.
func (p *Pipeline) Close() {
	if p.program != 0 {
		gl.DeleteProgram(p.program)
		p.program = 0
	}
}

func (p *Pipeline) location(name string) int32 {
	if loc, ok := p.locs[name]; ok {
		return loc
	}

	loc := gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
	if loc < 0 {
		logger.Warn("uniform not found in program",
			zap.String("uniform", name),
			zap.Uint32("program", p.program),
		)
	}
	p.locs[name] = loc
	return loc
}

// SetBool sets a boolean uniform.
func (p *Pipeline) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	gl.Uniform1i(p.location(name), i)
}

// SetInt sets an integer uniform.
func (p *Pipeline) SetInt(name string, v int32) {
	gl.Uniform1i(p.location(name), v)
}

// SetSampler points a sampler uniform at a texture unit.
func (p *Pipeline) SetSampler(name string, unit int32) {
	gl.Uniform1i(p.location(name), unit)
}

// SetFloat sets a float uniform.
func (p *Pipeline) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

// SetVec2 sets a vec2 uniform.
func (p *Pipeline) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(p.location(name), v.X(), v.Y())
}

// SetVec3 sets a vec3 uniform.
func (p *Pipeline) SetVec3(name string, v mgl32.Vec3) {
	gl.Uniform3f(p.location(name), v.X(), v.Y(), v.Z())
}

// SetVec4 sets a vec4 uniform.
func (p *Pipeline) SetVec4(name string, v mgl32.Vec4) {
	gl.Uniform4f(p.location(name), v.X(), v.Y(), v.Z(), v.W())
}

// SetMat4 sets a 4x4 matrix uniform.
func (p *Pipeline) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &m[0])
}
