// Package config handles scene configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Scene    SceneConfig    `yaml:"scene"`
	Camera   CameraConfig   `yaml:"camera"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and projection settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FOV        float32 `yaml:"fov"` // vertical, degrees
	Near       float32 `yaml:"near"`
	Far        float32 `yaml:"far"`
}

// SceneConfig holds forest generation and mesh settings.
type SceneConfig struct {
	Seed     uint64       `yaml:"seed"` // 0 seeds from the clock
	Textured bool         `yaml:"textured"`
	Trees    TreesConfig  `yaml:"trees"`
	Meshes   MeshesConfig `yaml:"meshes"`
}

// TreesConfig describes how trees are scattered around the cabin.
type TreesConfig struct {
	Count       int     `yaml:"count"`
	XMin        float32 `yaml:"x_min"`
	XMax        float32 `yaml:"x_max"`
	ZMin        float32 `yaml:"z_min"`
	ZMax        float32 `yaml:"z_max"`
	ExclusionX  float32 `yaml:"exclusion_x"` // half-width of the cabin clearing
	ExclusionZ  float32 `yaml:"exclusion_z"` // half-depth of the cabin clearing
	MinDistance float32 `yaml:"min_distance"`
	ScaleMin    float32 `yaml:"scale_min"`
	ScaleMax    float32 `yaml:"scale_max"`
	MaxAttempts int     `yaml:"max_attempts"`
}

// MeshesConfig holds the shape parameters of the procedural meshes.
type MeshesConfig struct {
	Cone     RingConfig `yaml:"cone"`
	Cylinder RingConfig `yaml:"cylinder"`
	Roof     RoofConfig `yaml:"roof"`
}

// RingConfig parameterizes cones and cylinders.
type RingConfig struct {
	Segments int     `yaml:"segments"`
	Height   float32 `yaml:"height"`
	Radius   float32 `yaml:"radius"`
}

// RoofConfig parameterizes the cabin roof.
type RoofConfig struct {
	Width float32 `yaml:"width"`
	Depth float32 `yaml:"depth"`
	Pitch float32 `yaml:"pitch"`
}

// CameraConfig holds fly camera settings.
type CameraConfig struct {
	Speed       float32 `yaml:"speed"`
	Sensitivity float32 `yaml:"sensitivity"`
}

// AssetsConfig holds asset locations.
type AssetsConfig struct {
	Dir       string `yaml:"dir"`        // textures and skybox faces
	ShaderDir string `yaml:"shader_dir"` // empty uses the built-in shaders
	TreeModel string `yaml:"tree_model"` // optional glTF tree, replaces cone/cylinder trees
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FOV:        60,
			Near:       0.1,
			Far:        200,
		},
		Scene: SceneConfig{
			Seed:     0,
			Textured: true,
			Trees: TreesConfig{
				Count:       50,
				XMin:        -14,
				XMax:        14,
				ZMin:        -17,
				ZMax:        20,
				ExclusionX:  4,
				ExclusionZ:  4,
				MinDistance: 2,
				ScaleMin:    0.7,
				ScaleMax:    1.5,
				MaxAttempts: 100000,
			},
			Meshes: MeshesConfig{
				Cone:     RingConfig{Segments: 28, Height: 1.6, Radius: 1.0},
				Cylinder: RingConfig{Segments: 20, Height: 1.2, Radius: 0.15},
				Roof:     RoofConfig{Width: 8, Depth: 3, Pitch: 0.5},
			},
		},
		Camera: CameraConfig{
			Speed:       3.5,
			Sensitivity: 0.1,
		},
		Assets: AssetsConfig{
			Dir:       "assets",
			ShaderDir: "",
			TreeModel: "",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
