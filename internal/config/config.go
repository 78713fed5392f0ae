// Package config handles meshgen configuration loading and management.
package config

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meshgen/pkg/noise"
	"github.com/Faultbox/meshgen/pkg/terrain"
)

// Config holds all generator settings.
type Config struct {
	Terrain TerrainConfig `yaml:"terrain"`
	Noise   NoiseConfig   `yaml:"noise"`
	Cube    CubeConfig    `yaml:"cube"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// TerrainConfig holds terrain grid settings.
type TerrainConfig struct {
	Verts     int     `yaml:"verts"`
	Size      float32 `yaml:"size"`
	Bumps     bool    `yaml:"bumps"`
	Seed      int64   `yaml:"seed"`
	Amplitude float32 `yaml:"amplitude"`
	Workers   int     `yaml:"workers"`
}

// NoiseConfig holds layered noise settings.
type NoiseConfig struct {
	Octaves    int     `yaml:"octaves"`
	Smoothness float64 `yaml:"smoothness"`
	Roughness  float64 `yaml:"roughness"`
	OffsetX    float32 `yaml:"offset_x"`
	OffsetY    float32 `yaml:"offset_y"`
}

// CubeConfig holds cube and wire cube settings.
type CubeConfig struct {
	Width         float32 `yaml:"width"`
	Height        float32 `yaml:"height"`
	Depth         float32 `yaml:"depth"`
	WireThickness float32 `yaml:"wire_thickness"`
}

// OutputConfig holds where generated files are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Terrain: TerrainConfig{
			Verts:     terrain.DefaultVerts,
			Size:      terrain.DefaultSize,
			Bumps:     true,
			Seed:      1,
			Amplitude: 1,
			Workers:   0,
		},
		Noise: NoiseConfig{
			Octaves:    5,
			Smoothness: 200,
			Roughness:  0.5,
		},
		Cube: CubeConfig{
			Width:         1,
			Height:        1,
			Depth:         1,
			WireThickness: 0.05,
		},
		Output: OutputConfig{
			Dir: ".",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// NoiseOptions converts the noise section to sampler options.
func (c *Config) NoiseOptions() noise.Options {
	return noise.Options{
		Octaves:    c.Noise.Octaves,
		Smoothness: c.Noise.Smoothness,
		Roughness:  c.Noise.Roughness,
		Offset:     mgl32.Vec2{c.Noise.OffsetX, c.Noise.OffsetY},
	}
}

// TerrainParams converts the terrain and noise sections to build parameters.
func (c *Config) TerrainParams() terrain.Params {
	return terrain.Params{
		Verts:     c.Terrain.Verts,
		Size:      c.Terrain.Size,
		Bumps:     c.Terrain.Bumps,
		Seed:      c.Terrain.Seed,
		Noise:     c.NoiseOptions(),
		Amplitude: c.Terrain.Amplitude,
		Workers:   c.Terrain.Workers,
	}
}

// CubeDimensions returns the configured box size.
func (c *Config) CubeDimensions() mgl32.Vec3 {
	return mgl32.Vec3{c.Cube.Width, c.Cube.Height, c.Cube.Depth}
}
