package config

import "flag"

// cliFlags holds the parsed command line. Flags sit above both
// defaults and the config file.
type cliFlags struct {
	configPath string
	debug      bool
	windowed   bool
	fullscreen bool
	width      int
	height     int
	textures   string
}

var cli cliFlags

func init() {
	flag.StringVar(&cli.configPath, "config", "", "path to config file")
	flag.BoolVar(&cli.debug, "debug", false, "log at debug level")
	flag.BoolVar(&cli.windowed, "windowed", false, "force windowed mode")
	flag.BoolVar(&cli.fullscreen, "fullscreen", false, "force fullscreen mode")
	flag.IntVar(&cli.width, "width", 0, "window width")
	flag.IntVar(&cli.height, "height", 0, "window height")
	flag.StringVar(&cli.textures, "textures", "", "directory with scene texture images")
}

// ParseFlags parses the command line. Call it early in main.
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the path given with -config, if any.
func ConfigPath() string {
	return cli.configPath
}

// applyFlags lays the CLI overrides over cfg.
func applyFlags(cfg *Config) {
	if cli.debug {
		cfg.Logging.Level = "debug"
	}
	if cli.windowed {
		cfg.Graphics.Fullscreen = false
	}
	if cli.fullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if cli.width > 0 {
		cfg.Graphics.Width = cli.width
	}
	if cli.height > 0 {
		cfg.Graphics.Height = cli.height
	}
	if cli.textures != "" {
		cfg.Assets.TexturesDir = cli.textures
	}
}
