package config

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/Faultbox/meshgen/pkg/mesh"
)

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var err error

	// Noise is checked on its own so flat terrain configs still catch it.
	grid := c.TerrainParams()
	grid.Bumps = false
	err = multierr.Append(err, grid.Validate())
	if c.Terrain.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("terrain workers must not be negative: got %d", c.Terrain.Workers))
	}
	if noiseErr := c.NoiseOptions().Validate(); noiseErr != nil {
		err = multierr.Append(err, fmt.Errorf("noise: %w", noiseErr))
	}

	if cubeErr := mesh.ValidateDimensions(c.CubeDimensions()); cubeErr != nil {
		err = multierr.Append(err, fmt.Errorf("cube: %w", cubeErr))
	}
	if cubeErr := mesh.ValidateWireThickness(c.Cube.WireThickness); cubeErr != nil {
		err = multierr.Append(err, fmt.Errorf("cube: %w", cubeErr))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("unknown log level %q", c.Logging.Level))
	}

	return err
}
