// Package renderer owns global OpenGL state and the per-frame bracket.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/driftglass/tablescape/internal/logger"
)

// Renderer initializes OpenGL once and clears, sizes and reads back the
// framebuffer. Create it after the GL context exists.
type Renderer struct {
	width  int
	height int
}

// New loads the GL function pointers and applies the fixed pipeline
// state every frame draws under.
func New(width, height int) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("loading GL functions: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("device", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	// The glassware draws with alpha.
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	gl.ClearColor(0.08, 0.09, 0.11, 1.0)

	r := &Renderer{}
	r.Resize(width, height)
	return r, nil
}

// Resize updates the viewport after a window size change.
func (r *Renderer) Resize(width, height int) {
	r.width = width
	r.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Size returns the current viewport size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Begin clears the color and depth buffers for a new frame.
func (r *Renderer) Begin() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// End finishes the frame. Draws are unbatched, so there is nothing to
// flush.
func (r *Renderer) End() {}

// ReadPixels returns the framebuffer contents as tightly packed RGBA,
// bottom row first. Call after drawing and before the buffer swap.
func (r *Renderer) ReadPixels() (width, height int, pixels []byte) {
	width, height = r.width, r.height
	pixels = make([]byte, width*height*4)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return width, height, pixels
}
