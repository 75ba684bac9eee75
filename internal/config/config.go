// Package config handles configuration loading and management.
package config

import "time"

// Config holds all settings.
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Resources ResourcesConfig `yaml:"resources"`
	Meshes    MeshesConfig    `yaml:"meshes"`
	Animation AnimationConfig `yaml:"animation"`
	Camera    CameraConfig    `yaml:"camera"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	CaptureDir string `yaml:"capture_dir"` // where frame captures are written
}

// ResourcesConfig holds shader discovery and loading settings.
type ResourcesConfig struct {
	Markup        string        `yaml:"markup"`         // page listing the shader scripts
	Program       string        `yaml:"program"`        // shader pair used for the meshes
	Watch         bool          `yaml:"watch"`          // reload shader files on change
	MaxConcurrent int           `yaml:"max_concurrent"` // in-flight fetch limit
	Timeout       time.Duration `yaml:"timeout"`        // per fetch or mesh load, 0 waits forever
}

// MeshesConfig holds the mesh file paths.
type MeshesConfig struct {
	Monkey string `yaml:"monkey"`
	Helix  string `yaml:"helix"`
	Seed   uint64 `yaml:"seed"` // jitter seed, 0 seeds from the clock
}

// AnimationConfig holds the initial control values.
type AnimationConfig struct {
	Duration  float32 `yaml:"duration"` // seconds
	Easing    string  `yaml:"easing"`
	Offset    float32 `yaml:"offset"`
	Magnitude float32 `yaml:"magnitude"`
	Mesh      string  `yaml:"mesh"`
	Crazy     bool    `yaml:"crazy"`
}

// CameraConfig holds the trackball camera settings.
type CameraConfig struct {
	FOV         float32 `yaml:"fov"` // degrees
	Near        float32 `yaml:"near"`
	Far         float32 `yaml:"far"`
	Distance    float32 `yaml:"distance"` // along each axis from the origin
	RotateSpeed float32 `yaml:"rotate_speed"`
	Damping     float32 `yaml:"damping"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:      "meshease",
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			CaptureDir: "screenshots",
		},
		Resources: ResourcesConfig{
			Markup:        "assets/index.html",
			Program:       "Sphere",
			Watch:         false,
			MaxConcurrent: 4,
			Timeout:       0,
		},
		Meshes: MeshesConfig{
			Monkey: "assets/models/monkey.glb",
			Helix:  "assets/models/cylinder.glb",
			Seed:   0,
		},
		Animation: AnimationConfig{
			Duration:  1.8,
			Easing:    "elastic",
			Offset:    4,
			Magnitude: 40,
			Mesh:      "monkey",
			Crazy:     false,
		},
		Camera: CameraConfig{
			FOV:         45,
			Near:        1,
			Far:         10000,
			Distance:    400,
			RotateSpeed: 1,
			Damping:     0.05,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
