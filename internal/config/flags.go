package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagMarkup     = flag.String("markup", "", "Markup page listing the shader scripts")
	flagWatch      = flag.Bool("watch", false, "Reload shader files when they change")
	flagEasing     = flag.String("easing", "", "Initial easing family (elastic, circular, exponential, back)")
	flagMesh       = flag.String("mesh", "", "Initial mesh (monkey, helix)")
	flagCrazy      = flag.Bool("crazy", false, "Start with extra crazy jitter enabled")
	flagSeed       = flag.Uint64("seed", 0, "Jitter seed")
	flagSaveConfig = flag.Bool("save-config", false, "Write the effective config to the user config dir and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSaveConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Window.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Window.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Window.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Window.Height = *flagHeight
	}
	if *flagMarkup != "" {
		cfg.Resources.Markup = *flagMarkup
	}
	if *flagWatch {
		cfg.Resources.Watch = true
	}
	if *flagEasing != "" {
		cfg.Animation.Easing = *flagEasing
	}
	if *flagMesh != "" {
		cfg.Animation.Mesh = *flagMesh
	}
	if *flagCrazy {
		cfg.Animation.Crazy = true
	}
	if *flagSeed != 0 {
		cfg.Meshes.Seed = *flagSeed
	}
}
