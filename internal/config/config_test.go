package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Window.Height)
	}
	if cfg.Window.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}

	if cfg.Resources.Markup != "assets/index.html" {
		t.Errorf("expected markup assets/index.html, got %s", cfg.Resources.Markup)
	}
	if cfg.Resources.Program != "Sphere" {
		t.Errorf("expected program Sphere, got %s", cfg.Resources.Program)
	}
	if cfg.Resources.Timeout != 0 {
		t.Errorf("expected no timeout, got %v", cfg.Resources.Timeout)
	}

	if cfg.Animation.Duration != 1.8 {
		t.Errorf("expected duration 1.8, got %f", cfg.Animation.Duration)
	}
	if cfg.Animation.Easing != "elastic" {
		t.Errorf("expected easing 'elastic', got %s", cfg.Animation.Easing)
	}
	if cfg.Animation.Offset != 4 || cfg.Animation.Magnitude != 40 {
		t.Errorf("expected offset 4 and magnitude 40, got %f and %f", cfg.Animation.Offset, cfg.Animation.Magnitude)
	}
	if cfg.Animation.Mesh != "monkey" || cfg.Animation.Crazy {
		t.Errorf("expected monkey without crazy, got %s crazy=%v", cfg.Animation.Mesh, cfg.Animation.Crazy)
	}

	if cfg.Camera.Distance != 400 {
		t.Errorf("expected camera distance 400, got %f", cfg.Camera.Distance)
	}
	if cfg.Camera.Damping != 0.05 {
		t.Errorf("expected damping 0.05, got %f", cfg.Camera.Damping)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1920
  height: 1080
  fullscreen: true

resources:
  markup: "http://localhost:8080/index.html"
  program: "Helix"
  watch: true
  max_concurrent: 2
  timeout: 5s

meshes:
  monkey: "models/suzanne.glb"
  helix: "models/tube.glb"
  seed: 99

animation:
  duration: 3.5
  easing: "back"
  offset: 2
  magnitude: 120
  mesh: "helix"
  crazy: true

logging:
  level: "debug"
  log_file: "meshease.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Window.Width != 1920 || cfg.Window.Height != 1080 || !cfg.Window.Fullscreen {
		t.Errorf("unexpected window config: %+v", cfg.Window)
	}
	if cfg.Resources.Markup != "http://localhost:8080/index.html" {
		t.Errorf("expected remote markup, got %s", cfg.Resources.Markup)
	}
	if cfg.Resources.Program != "Helix" || !cfg.Resources.Watch || cfg.Resources.MaxConcurrent != 2 {
		t.Errorf("unexpected resources config: %+v", cfg.Resources)
	}
	if cfg.Resources.Timeout != 5*time.Second {
		t.Errorf("expected timeout 5s, got %v", cfg.Resources.Timeout)
	}
	if cfg.Meshes.Monkey != "models/suzanne.glb" || cfg.Meshes.Helix != "models/tube.glb" || cfg.Meshes.Seed != 99 {
		t.Errorf("unexpected meshes config: %+v", cfg.Meshes)
	}
	if cfg.Animation.Duration != 3.5 || cfg.Animation.Easing != "back" || cfg.Animation.Mesh != "helix" || !cfg.Animation.Crazy {
		t.Errorf("unexpected animation config: %+v", cfg.Animation)
	}
	if cfg.Animation.Magnitude != 120 || cfg.Animation.Offset != 2 {
		t.Errorf("unexpected animation ranges: %+v", cfg.Animation)
	}

	// Sections absent from the file keep their defaults.
	if cfg.Camera.Distance != 400 {
		t.Errorf("expected default camera distance, got %f", cfg.Camera.Distance)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "meshease.log" {
		t.Errorf("expected log file 'meshease.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
window:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	err := loadFromFile(cfg, configPath)
	if err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	err := loadFromFile(cfg, "/nonexistent/path/config.yaml")
	if err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty markup", func(c *Config) { c.Resources.Markup = "" }},
		{"empty program", func(c *Config) { c.Resources.Program = "" }},
		{"negative concurrency", func(c *Config) { c.Resources.MaxConcurrent = -1 }},
		{"negative timeout", func(c *Config) { c.Resources.Timeout = -time.Second }},
		{"missing helix", func(c *Config) { c.Meshes.Helix = "" }},
		{"zero duration", func(c *Config) { c.Animation.Duration = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))

	path := findConfigFile()
	if path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("window:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	path = findConfigFile()
	if path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Animation.Easing = "circular"
	cfg.Animation.Magnitude = 75
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload saved config: %v", err)
	}
	if loaded.Animation.Easing != "circular" || loaded.Animation.Magnitude != 75 {
		t.Errorf("expected saved animation values, got %+v", loaded.Animation)
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Window.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Window.Width != 2560 {
					t.Errorf("expected width 2560, got %d", cfg.Window.Width)
				}
				if cfg.Window.Height != 1440 {
					t.Errorf("expected height 1440, got %d", cfg.Window.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name: "resource flags",
			setup: func() {
				*flagMarkup = "other/index.html"
				*flagWatch = true
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Resources.Markup != "other/index.html" {
					t.Errorf("expected markup other/index.html, got %s", cfg.Resources.Markup)
				}
				if !cfg.Resources.Watch {
					t.Error("expected watch enabled")
				}
			},
			teardown: func() {
				*flagMarkup = ""
				*flagWatch = false
			},
		},
		{
			name: "animation flags",
			setup: func() {
				*flagEasing = "expo"
				*flagMesh = "helix"
				*flagCrazy = true
				*flagSeed = 5
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Animation.Easing != "expo" || cfg.Animation.Mesh != "helix" || !cfg.Animation.Crazy {
					t.Errorf("unexpected animation config: %+v", cfg.Animation)
				}
				if cfg.Meshes.Seed != 5 {
					t.Errorf("expected seed 5, got %d", cfg.Meshes.Seed)
				}
			},
			teardown: func() {
				*flagEasing = ""
				*flagMesh = ""
				*flagCrazy = false
				*flagSeed = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
window:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width comes from the flag, height from the file.
	if cfg.Window.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Window.Width)
	}
	if cfg.Window.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Window.Height)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("animation:\n  duration: -1\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	if _, err := Load(); err == nil {
		t.Error("expected error for negative duration")
	}
}
