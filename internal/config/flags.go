package config

import "flag"

var (
	flagConfig    = flag.String("config", "", "Path to config file")
	flagDebug     = flag.Bool("debug", false, "Enable debug logging")
	flagOut       = flag.String("out", "", "Output directory")
	flagSeed      = flag.Int64("seed", 0, "Terrain noise seed (0 keeps the configured seed)")
	flagVerts     = flag.Int("verts", 0, "Terrain vertices per side")
	flagSize      = flag.Float64("size", 0, "Terrain world size per side")
	flagFlat      = flag.Bool("flat", false, "Generate flat terrain without noise")
	flagWidth     = flag.Float64("width", 0, "Cube width")
	flagHeight    = flag.Float64("height", 0, "Cube height")
	flagDepth     = flag.Float64("depth", 0, "Cube depth")
	flagThickness = flag.Float64("thickness", 0, "Wire cube edge thickness")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// Args returns the positional arguments left after flag parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagOut != "" {
		cfg.Output.Dir = *flagOut
	}
	if *flagSeed != 0 {
		cfg.Terrain.Seed = *flagSeed
	}
	if *flagVerts > 0 {
		cfg.Terrain.Verts = *flagVerts
	}
	if *flagSize > 0 {
		cfg.Terrain.Size = float32(*flagSize)
	}
	if *flagFlat {
		cfg.Terrain.Bumps = false
	}
	if *flagWidth > 0 {
		cfg.Cube.Width = float32(*flagWidth)
	}
	if *flagHeight > 0 {
		cfg.Cube.Height = float32(*flagHeight)
	}
	if *flagDepth > 0 {
		cfg.Cube.Depth = float32(*flagDepth)
	}
	if *flagThickness > 0 {
		cfg.Cube.WireThickness = float32(*flagThickness)
	}
}
