// Package app wires the window, renderer, scene and camera together
// and drives the frame loop.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/driftglass/tablescape/internal/config"
	"github.com/driftglass/tablescape/internal/engine/camera"
	"github.com/driftglass/tablescape/internal/engine/debug"
	"github.com/driftglass/tablescape/internal/engine/input"
	"github.com/driftglass/tablescape/internal/engine/renderer"
	"github.com/driftglass/tablescape/internal/engine/window"
	"github.com/driftglass/tablescape/internal/logger"
	"github.com/driftglass/tablescape/internal/scene"
)

// App is the running application.
type App struct {
	cfg         *config.Config
	window      *window.Window
	renderer    *renderer.Renderer
	scene       *scene.Scene
	camera      *camera.Orbit
	input       *input.Input
	screenshots *debug.Screenshots

	running        bool
	wantScreenshot bool
}

// New builds the full application. The window comes first since it
// owns the GL context everything else initializes against.
func New(cfg *config.Config) (*App, error) {
	logger.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Bool("fullscreen", cfg.Graphics.Fullscreen),
	)

	win, err := window.New(window.Config{
		Title:      "Tablescape",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	rend, err := renderer.New(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("create renderer: %w", err)
	}

	sc, err := scene.New(cfg.Assets.TexturesDir)
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("create scene: %w", err)
	}
	sc.Prepare()

	cam := camera.New(cfg.Camera.Distance, cfg.Camera.Pitch, cfg.Camera.Yaw, cfg.Camera.FOV)

	return &App{
		cfg:         cfg,
		window:      win,
		renderer:    rend,
		scene:       sc,
		camera:      cam,
		input:       input.New(),
		screenshots: debug.NewScreenshots(cfg.Screenshots.Dir, "tablescape"),
	}, nil
}

// Run drives the frame loop until quit.
func (a *App) Run() error {
	a.running = true

	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for a.running {
		if a.input.Update() {
			break
		}
		a.handleEvents()
		a.handleMovement()

		a.renderer.Begin()
		width, height := a.renderer.Size()
		a.scene.Render(
			a.camera.ViewMatrix(),
			a.camera.Projection(width, height),
			a.camera.Position(),
		)
		a.renderer.End()

		// capture before the swap so the finished frame is still in
		// the back buffer
		if a.wantScreenshot {
			a.wantScreenshot = false
			a.captureScreenshot()
		}

		a.window.SwapBuffers()

		frameCount++
		if elapsed := time.Since(fpsTimer); elapsed >= 5*time.Second {
			logger.Debug("fps", zap.Float64("average", float64(frameCount)/elapsed.Seconds()))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) handleEvents() {
	for _, e := range a.input.Events() {
		switch e.Kind {
		case input.Quit:
			a.running = false

		case input.WindowResize:
			a.renderer.Resize(e.Width, e.Height)

		case input.KeyDown:
			a.handleKey(e.Key)

		case input.MouseMove:
			if a.input.IsButtonHeld(sdl.BUTTON_LEFT) {
				a.camera.Drag(float32(e.DeltaX), float32(e.DeltaY))
			}

		case input.Wheel:
			a.camera.Zoom(e.WheelY)
		}
	}
}

func (a *App) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		a.running = false
	case sdl.SCANCODE_P:
		a.camera.Ortho = false
	case sdl.SCANCODE_O:
		a.camera.Ortho = true
	case sdl.SCANCODE_F12:
		a.wantScreenshot = true
	}
}

// handleMovement pans the camera while WASD/QE are held.
func (a *App) handleMovement() {
	var forward, right, up float32
	if a.input.IsKeyHeld(sdl.SCANCODE_W) {
		forward++
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_S) {
		forward--
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_D) {
		right++
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_A) {
		right--
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_E) {
		up++
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_Q) {
		up--
	}

	if forward != 0 || right != 0 || up != 0 {
		a.camera.Pan(forward, right, up)
	}
}

func (a *App) captureScreenshot() {
	width, height, pixels := a.renderer.ReadPixels()
	path, err := a.screenshots.Save(pixels, width, height)
	if err != nil {
		logger.Error("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases resources in reverse construction order.
func (a *App) Close() {
	logger.Info("shutting down")

	if a.scene != nil {
		a.scene.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
