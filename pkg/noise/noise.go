// Package noise samples a normalized multi-octave coherent noise field for
// terrain heights.
package noise

import (
	"errors"
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

// DefaultPatchSize is the world-space extent of one terrain patch.
const DefaultPatchSize = 256

var (
	ErrNoOctaves         = errors.New("noise needs at least one octave")
	ErrInvalidSmoothness = errors.New("noise smoothness must be positive")
)

// Source is a coherent noise primitive returning values in [-1, 1].
type Source interface {
	Noise3D(x, y, z float64) float64
}

// Perlin parameters for a single-octave source; octaves are layered by Sampler.
const (
	perlinAlpha = 2
	perlinBeta  = 2
)

// NewPerlinSource returns a single-octave Perlin source seeded with seed.
func NewPerlinSource(seed int64) Source {
	return perlin.NewPerlin(perlinAlpha, perlinBeta, 1, seed)
}

// Options configures a Sampler.
type Options struct {
	Octaves    int        // number of layered octaves, at least 1
	Smoothness float64    // frequency divisor; larger is smoother
	Roughness  float64    // amplitude of octave i is Roughness^i
	Offset     mgl32.Vec2 // world-space shift applied before sampling
}

// DefaultOptions returns the terrain defaults.
func DefaultOptions() Options {
	return Options{
		Octaves:    5,
		Smoothness: 200,
		Roughness:  0.5,
	}
}

// Validate reports the first invalid option.
func (o Options) Validate() error {
	if o.Octaves < 1 {
		return fmt.Errorf("%w: got %d", ErrNoOctaves, o.Octaves)
	}
	if !(o.Smoothness > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSmoothness, o.Smoothness)
	}
	return nil
}

// Sampler evaluates the layered noise field. It is safe for concurrent use
// as long as its Source is.
type Sampler struct {
	source    Source
	opts      Options
	seed      float64
	patchSize float64
}

// NewSampler creates a sampler over source.
func NewSampler(source Source, opts Options, seed int64) (*Sampler, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Sampler{
		source:    source,
		opts:      opts,
		seed:      float64(seed),
		patchSize: DefaultPatchSize,
	}, nil
}

// WithPatchSize returns a copy of s that tiles patches of the given size.
func (s *Sampler) WithPatchSize(size float64) *Sampler {
	c := *s
	c.patchSize = size
	return &c
}

// At returns the noise value in [0, 1] at vertexPosition within the patch
// at terrainPosition. Octaves are weighted-averaged so the result stays
// normalized for any octave count and roughness.
func (s *Sampler) At(vertexPosition, terrainPosition mgl32.Vec2) float32 {
	vx := float64(vertexPosition.X()) + float64(terrainPosition.X())*s.patchSize + float64(s.opts.Offset.X())
	vz := float64(vertexPosition.Y()) + float64(terrainPosition.Y())*s.patchSize + float64(s.opts.Offset.Y())

	var value, accumulated float64
	for i := range s.opts.Octaves {
		frequency := math.Pow(2, float64(i))
		amplitude := math.Pow(s.opts.Roughness, float64(i))

		x := vx * frequency / s.opts.Smoothness
		y := vz * frequency / s.opts.Smoothness

		n := s.source.Noise3D(s.seed+x, s.seed+y, s.seed)
		n = (clamp(n, -1, 1) + 1) / 2

		value += n * amplitude
		accumulated += amplitude
	}
	return float32(value / accumulated)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
