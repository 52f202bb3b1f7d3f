// Package config loads the viewer's settings from built-in defaults,
// an optional YAML file and command line flags, in that order.
package config

// Config is the full set of runtime settings.
type Config struct {
	Graphics    GraphicsConfig    `yaml:"graphics"`
	Assets      AssetsConfig      `yaml:"assets"`
	Camera      CameraConfig      `yaml:"camera"`
	Screenshots ScreenshotsConfig `yaml:"screenshots"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// GraphicsConfig selects the window size and display mode.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// AssetsConfig points at the image files the scene loads.
type AssetsConfig struct {
	TexturesDir string `yaml:"textures_dir"`
}

// CameraConfig sets the starting framing. Angles are in degrees.
type CameraConfig struct {
	Distance float32 `yaml:"distance"`
	Pitch    float32 `yaml:"pitch"`
	Yaw      float32 `yaml:"yaw"`
	FOV      float32 `yaml:"fov"`
}

// ScreenshotsConfig controls where captures are written.
type ScreenshotsConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig selects the log level and an optional log file.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the built-in configuration. Every value here can be
// overridden by the config file and then by flags.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Assets: AssetsConfig{
			TexturesDir: "textures",
		},
		Camera: CameraConfig{
			Distance: 16,
			Pitch:    20,
			FOV:      45,
		},
		Screenshots: ScreenshotsConfig{
			Dir: "screenshots",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}
