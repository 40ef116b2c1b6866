package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg := Default()

	// Explicit path takes priority over the standard locations
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	cli.apply(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile loads defaults overlaid with a single YAML file, without flags.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings that would otherwise fail deep inside GL or
// window setup. Forest and mesh parameters are checked by their builders.
func (c *Config) Validate() error {
	g := c.Graphics
	var errs []error
	if g.Width <= 0 || g.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive", g.Width, g.Height))
	}
	if !(g.FOV > 0 && g.FOV < 180) {
		errs = append(errs, fmt.Errorf("graphics: fov %v must be in (0, 180)", g.FOV))
	}
	if !(g.Near > 0 && g.Near < g.Far) {
		errs = append(errs, fmt.Errorf("graphics: clip range [%v, %v] is invalid", g.Near, g.Far))
	}
	if c.Camera.Speed < 0 || c.Camera.Sensitivity < 0 {
		errs = append(errs, fmt.Errorf("camera: speed and sensitivity must not be negative"))
	}
	return errors.Join(errs...)
}

// findConfigFile returns ./config.yaml or the per-user file, whichever
// exists first, or "" when neither does.
func findConfigFile() string {
	for _, path := range []string{"config.yaml", DefaultPath()} {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// ConfigDir returns the per-user directory for SimpleForest settings:
// $XDG_CONFIG_HOME/simpleforest on Linux, Application Support on macOS and
// %AppData% on Windows. It falls back to ".simpleforest" in the working
// directory when the user has no config location.
func ConfigDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".simpleforest"
	}
	name := "simpleforest"
	if runtime.GOOS != "linux" {
		name = "SimpleForest"
	}
	return filepath.Join(base, name)
}

// loadFromFile overlays the YAML file at path onto cfg. Keys missing from
// the file keep their current values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing yaml: %w", err)
	}
	return nil
}
