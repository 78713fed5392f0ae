package terrain

import (
	"runtime"

	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/meshgen/pkg/noise"
)

// Heightmap is a square row-major grid of heights, indexed y*Verts + x.
type Heightmap struct {
	Verts   int
	Heights []float32
}

// NewHeightmap returns a flat grid of verts × verts zeros.
func NewHeightmap(verts int) *Heightmap {
	return &Heightmap{
		Verts:   verts,
		Heights: make([]float32, verts*verts),
	}
}

// At returns the height at (x, y), or 0 outside the grid.
// Border normals therefore see a drop to zero height past the edge.
func (h *Heightmap) At(x, y int) float32 {
	if x < 0 || x >= h.Verts || y < 0 || y >= h.Verts {
		return 0
	}
	return h.Heights[y*h.Verts+x]
}

// MinMax returns the lowest and highest heights.
func (h *Heightmap) MinMax() (lo, hi float32) {
	if len(h.Heights) == 0 {
		return 0, 0
	}
	lo, hi = h.Heights[0], h.Heights[0]
	for _, v := range h.Heights[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

// GenerateHeights fills the height grid for params. Flat terrain is all
// zeros; bumpy terrain samples the noise field once per cell. Rows are
// sampled in parallel and the grid is complete when this returns.
func GenerateHeights(p Params) (*Heightmap, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	hm := NewHeightmap(p.Verts)
	if !p.Bumps {
		return hm, nil
	}

	source := p.Source
	if source == nil {
		source = noise.NewPerlinSource(p.Seed)
	}
	sampler, err := noise.NewSampler(source, p.Noise, p.Seed)
	if err != nil {
		return nil, err
	}
	sampler = sampler.WithPatchSize(float64(p.Size))

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for y := range p.Verts {
		g.Go(func() error {
			row := hm.Heights[y*p.Verts : (y+1)*p.Verts]
			for x := range row {
				row[x] = sampler.At(mgl32.Vec2{}, mgl32.Vec2{float32(x), float32(y)}) * p.Amplitude
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return hm, nil
}
