// Package terrain builds indexed triangle grids displaced by a height field.
package terrain

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meshgen/pkg/mesh"
	"github.com/Faultbox/meshgen/pkg/noise"
)

// Grid defaults.
const (
	DefaultVerts = 256
	DefaultSize  = 256
)

// normalRise is the vertical component of the finite-difference normal
// before normalization. It balances against height deltas between neighbors.
const normalRise = 2

var (
	ErrInvalidResolution = errors.New("terrain needs at least 2 vertices per side")
	ErrInvalidSize       = errors.New("terrain size must be positive")
)

// Params configures a terrain build.
type Params struct {
	Verts     int           // vertices per side
	Size      float32       // world-space extent per side
	Bumps     bool          // false produces a flat grid
	Seed      int64         // noise seed; same seed, same terrain
	Noise     noise.Options // layered noise settings
	Amplitude float32       // scale applied to the [0,1] noise height
	Workers   int           // parallel height rows; <= 0 uses GOMAXPROCS

	// Source overrides the default Perlin source. It must be safe for
	// concurrent use unless Workers is 1.
	Source noise.Source
}

// DefaultParams returns a 256×256 bumpy patch for seed.
func DefaultParams(seed int64) Params {
	return Params{
		Verts:     DefaultVerts,
		Size:      DefaultSize,
		Bumps:     true,
		Seed:      seed,
		Noise:     noise.DefaultOptions(),
		Amplitude: 1,
	}
}

// Validate checks grid and, for bumpy terrain, noise settings.
func (p Params) Validate() error {
	if p.Verts < 2 {
		return fmt.Errorf("%w: got %d", ErrInvalidResolution, p.Verts)
	}
	if !(p.Size > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSize, p.Size)
	}
	if p.Bumps {
		if err := p.Noise.Validate(); err != nil {
			return fmt.Errorf("terrain noise: %w", err)
		}
	}
	return nil
}

// VertexCount returns the number of vertices Build emits.
func (p Params) VertexCount() int {
	return p.Verts * p.Verts
}

// IndexCount returns the number of indices Build emits.
func (p Params) IndexCount() int {
	return 6 * (p.Verts - 1) * (p.Verts - 1)
}

// CreateTerrainMesh builds a default-sized terrain patch, flat or displaced
// by noise seeded with seed.
func CreateTerrainMesh(createBumps bool, seed int64) (*mesh.Mesh, error) {
	p := DefaultParams(seed)
	p.Bumps = createBumps
	return Build(p)
}

// Build generates the height grid, then emits one vertex per grid point and
// two triangles per cell.
func Build(p Params) (*mesh.Mesh, error) {
	hm, err := GenerateHeights(p)
	if err != nil {
		return nil, err
	}
	return BuildFromHeightmap(hm, p.Size), nil
}

// BuildFromHeightmap emits the grid mesh for an existing height grid
// spanning size world units per side.
func BuildFromHeightmap(hm *Heightmap, size float32) *mesh.Mesh {
	verts := hm.Verts
	m := mesh.New(verts*verts, 6*(verts-1)*(verts-1))
	last := float32(verts - 1)

	for y := range verts {
		for x := range verts {
			position := mgl32.Vec3{float32(x) / last * size, hm.At(x, y), float32(y) / last * size}
			uv := mgl32.Vec2{float32(y % verts), float32(x % verts)}
			m.AddVertex(position, hm.Normal(x, y), uv)
		}
	}

	for y := range verts - 1 {
		for x := range verts - 1 {
			topLeft := uint32(y*verts + x)
			topRight := topLeft + 1
			bottomLeft := uint32((y+1)*verts + x)
			bottomRight := bottomLeft + 1

			m.Indices = append(m.Indices,
				topLeft, bottomLeft, topRight,
				topRight, bottomLeft, bottomRight,
			)
		}
	}
	return m
}

// Normal estimates the surface normal at (x, y) by central differences of
// the four neighbor heights. A degenerate result falls back to straight up.
func (h *Heightmap) Normal(x, y int) mgl32.Vec3 {
	n := mgl32.Vec3{
		h.At(x-1, y) - h.At(x+1, y),
		normalRise,
		h.At(x, y-1) - h.At(x, y+1),
	}
	l := n.Len()
	if l == 0 || math.IsNaN(float64(l)) {
		return mgl32.Vec3{0, 1, 0}
	}
	return n.Mul(1 / l)
}
