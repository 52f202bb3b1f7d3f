// Package window owns the SDL2 window and the OpenGL context the rest
// of the engine draws into.
package window

import (
	"fmt"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/driftglass/tablescape/internal/logger"
)

func init() {
	// SDL and GL calls must stay on the main OS thread.
	runtime.LockOSThread()
}

// Config selects the window size, display mode and swap behavior.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window is an SDL2 window with a current OpenGL context.
type Window struct {
	handle *sdl.Window
	glctx  sdl.GLContext
}

// New initializes SDL2 and opens a window with a GL 4.1 core context.
func New(cfg Config) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL init: %w", err)
	}

	// Attributes apply to the context created with the window, so they
	// are set first. 4.1 core is the newest profile macOS still ships.
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 4)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)

	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	handle, err := sdl.CreateWindow(cfg.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width), int32(cfg.Height), flags)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("create window: %w", err)
	}

	glctx, err := handle.GLCreateContext()
	if err != nil {
		handle.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("create GL context: %w", err)
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		logger.Warn("swap interval not supported",
			zap.Int("interval", interval),
			zap.Error(err),
		)
	}

	logger.Info("window created",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
		zap.Bool("fullscreen", cfg.Fullscreen),
		zap.Bool("vsync", cfg.VSync),
	)

	return &Window{handle: handle, glctx: glctx}, nil
}

// Close releases the GL context, the window and SDL itself.
func (w *Window) Close() {
	if w.glctx != nil {
		sdl.GLDeleteContext(w.glctx)
	}
	if w.handle != nil {
		w.handle.Destroy()
	}
	sdl.Quit()
}

// SwapBuffers presents the frame drawn since the last swap.
func (w *Window) SwapBuffers() {
	w.handle.GLSwap()
}

// Size returns the current window size in pixels.
func (w *Window) Size() (int, int) {
	width, height := w.handle.GetSize()
	return int(width), int(height)
}
