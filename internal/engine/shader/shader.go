// Package shader provides OpenGL shader compilation and a uniform-setting
// pipeline wrapper.
package shader

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// CompileProgram links a vertex and fragment shader pair into a program
// and returns its ID.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vert, err := compile(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vert)

	frag, err := compile(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(frag)

	prog := gl.CreateProgram()
	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)

	if !statusOK(prog, gl.LINK_STATUS, gl.GetProgramiv) {
		defer gl.DeleteProgram(prog)
		return 0, fmt.Errorf("link: %s", infoLog(prog, gl.GetProgramiv, gl.GetProgramInfoLog))
	}
	return prog, nil
}

func compile(kind uint32, source string) (uint32, error) {
	sh := gl.CreateShader(kind)
	src, free := gl.Strs(source + "\x00")
	gl.ShaderSource(sh, 1, src, nil)
	free()
	gl.CompileShader(sh)

	if !statusOK(sh, gl.COMPILE_STATUS, gl.GetShaderiv) {
		defer gl.DeleteShader(sh)
		return 0, errors.New(infoLog(sh, gl.GetShaderiv, gl.GetShaderInfoLog))
	}
	return sh, nil
}

func statusOK(id uint32, param uint32, get func(uint32, uint32, *int32)) bool {
	var status int32
	get(id, param, &status)
	return status == gl.TRUE
}

// infoLog fetches the GL info log for a shader or program. The shader
// and program variants of the GL calls have the same shape, so the
// caller passes the matching pair.
func infoLog(id uint32, get func(uint32, uint32, *int32), getLog func(uint32, int32, *int32, *uint8)) string {
	var n int32
	get(id, gl.INFO_LOG_LENGTH, &n)
	buf := make([]byte, n+1)
	getLog(id, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00\n")
}
