package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Validation errors.
var (
	ErrMisalignedAttributes = errors.New("vertex attributes are not index-aligned")
	ErrPartialTriangle      = errors.New("index count is not a multiple of 3")
	ErrIndexOutOfRange      = errors.New("index out of range")
	ErrDegenerateTriangle   = errors.New("triangle repeats a vertex")
)

// New returns an empty mesh with capacity for the given vertex and index counts.
func New(vertexCap, indexCap int) *Mesh {
	return &Mesh{
		Positions: make([]mgl32.Vec3, 0, vertexCap),
		Normals:   make([]mgl32.Vec3, 0, vertexCap),
		TexCoords: make([]mgl32.Vec2, 0, vertexCap),
		Indices:   make([]uint32, 0, indexCap),
	}
}

// AddVertex appends one vertex and advances CurrentIndex.
func (m *Mesh) AddVertex(position, normal mgl32.Vec3, texCoord mgl32.Vec2) {
	m.Positions = append(m.Positions, position)
	m.Normals = append(m.Normals, normal)
	m.TexCoords = append(m.TexCoords, texCoord)
	m.CurrentIndex++
}

// AddIndices appends offsets relative to base, where base is the value of
// CurrentIndex captured before the primitive's vertices were appended.
func (m *Mesh) AddIndices(base uint32, offsets ...uint32) {
	for _, o := range offsets {
		m.Indices = append(m.Indices, base+o)
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// TriangleCount returns the number of complete triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned box enclosing all positions.
// An empty mesh yields a zero box.
func (m *Mesh) Bounds() Bounds {
	if len(m.Positions) == 0 {
		return Bounds{}
	}

	b := Bounds{Min: m.Positions[0], Max: m.Positions[0]}
	for _, p := range m.Positions[1:] {
		for i := range 3 {
			if p[i] < b.Min[i] {
				b.Min[i] = p[i]
			}
			if p[i] > b.Max[i] {
				b.Max[i] = p[i]
			}
		}
	}
	return b
}

// Validate checks the container invariants: aligned attribute arrays,
// complete triangles, indices below CurrentIndex and no repeated vertex
// within a triangle.
func (m *Mesh) Validate() error {
	n := len(m.Positions)
	if len(m.Normals) != n || len(m.TexCoords) != n || int(m.CurrentIndex) != n {
		return fmt.Errorf("%w: positions=%d normals=%d texcoords=%d current=%d",
			ErrMisalignedAttributes, n, len(m.Normals), len(m.TexCoords), m.CurrentIndex)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices", ErrPartialTriangle, len(m.Indices))
	}

	for t := 0; t < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		for _, idx := range [3]uint32{a, b, c} {
			if idx >= m.CurrentIndex {
				return fmt.Errorf("%w: triangle %d references %d (vertices=%d)",
					ErrIndexOutOfRange, t/3, idx, m.CurrentIndex)
			}
		}
		if a == b || b == c || a == c {
			return fmt.Errorf("%w: triangle %d (%d, %d, %d)", ErrDegenerateTriangle, t/3, a, b, c)
		}
	}
	return nil
}
