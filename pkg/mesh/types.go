// Package mesh provides the vertex/index container shared by all geometry
// builders, plus the cube and wire-cube builders.
package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh holds renderer-ready triangle geometry.
// Positions, Normals and TexCoords are index-aligned; every consecutive
// triple in Indices is one triangle.
type Mesh struct {
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	TexCoords []mgl32.Vec2
	Indices   []uint32

	// CurrentIndex counts the vertices appended so far. Builders read it
	// before appending a primitive to get that primitive's index base.
	CurrentIndex uint32
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Size returns the extent of the box on each axis.
func (b Bounds) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}
