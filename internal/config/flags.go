package config

import "flag"

// overrides holds command-line values. Zero values (and -1 for trees)
// leave the file setting untouched.
type overrides struct {
	path        string
	writeConfig string
	debug       bool
	windowed    bool
	fullscreen  bool
	width       int
	height      int
	trees       int
	seed        uint64
	model       string
	assets      string
	shaders     string
}

var cli = overrides{trees: -1}

func init() {
	flag.StringVar(&cli.path, "config", "", "Path to config file")
	flag.StringVar(&cli.writeConfig, "write-config", "", "Write the effective config to this path (\"default\" for the user config dir)")
	flag.BoolVar(&cli.debug, "debug", false, "Enable debug logging")
	flag.BoolVar(&cli.windowed, "windowed", false, "Run in windowed mode")
	flag.BoolVar(&cli.fullscreen, "fullscreen", false, "Run in fullscreen mode")
	flag.IntVar(&cli.width, "width", 0, "Window width")
	flag.IntVar(&cli.height, "height", 0, "Window height")
	flag.IntVar(&cli.trees, "trees", -1, "Number of trees to place")
	flag.Uint64Var(&cli.seed, "seed", 0, "Placement seed (0 = random)")
	flag.StringVar(&cli.model, "model", "", "glTF tree model to use instead of cone trees")
	flag.StringVar(&cli.assets, "assets", "", "Texture directory")
	flag.StringVar(&cli.shaders, "shaders", "", "Shader source directory, reloaded on edit")
}

// ParseFlags parses the command line. Call it before Load.
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the --config path, or "" when none was given.
func ConfigPath() string {
	return cli.path
}

// WriteConfigPath returns where --write-config asked the effective config
// to be written. "default" resolves to the user config directory.
func WriteConfigPath() string {
	if cli.writeConfig == "default" {
		return DefaultPath()
	}
	return cli.writeConfig
}

func (o overrides) apply(cfg *Config) {
	if o.debug {
		cfg.Logging.Level = "debug"
	}
	switch {
	case o.fullscreen:
		cfg.Graphics.Fullscreen = true
	case o.windowed:
		cfg.Graphics.Fullscreen = false
	}
	if o.width > 0 {
		cfg.Graphics.Width = o.width
	}
	if o.height > 0 {
		cfg.Graphics.Height = o.height
	}
	if o.trees >= 0 {
		cfg.Scene.Trees.Count = o.trees
	}
	if o.seed != 0 {
		cfg.Scene.Seed = o.seed
	}
	if o.model != "" {
		cfg.Assets.TreeModel = o.model
	}
	if o.assets != "" {
		cfg.Assets.Dir = o.assets
	}
	if o.shaders != "" {
		cfg.Assets.ShaderDir = o.shaders
	}
}
