package mesh

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Per-cuboid counts.
const (
	CuboidFaces    = 6
	CuboidVertices = CuboidFaces * 4
	CuboidIndices  = CuboidFaces * 6
)

// Face order: front, left, back, right, top, bottom.
var faceNormals = [CuboidFaces]mgl32.Vec3{
	{0, 0, 1},
	{-1, 0, 0},
	{0, 0, -1},
	{1, 0, 0},
	{0, 1, 0},
	{0, -1, 0},
}

// faceUVs is the same unit-square mapping for every face regardless of its size.
var faceUVs = [4]mgl32.Vec2{
	{0, 0}, {1, 0}, {0, 1}, {1, 1},
}

// faceWinding is relative to the face's own four vertices.
var faceWinding = [6]uint32{0, 1, 2, 2, 3, 0}

// AddCuboid appends one axis-aligned box spanning offset to offset+dimensions.
// Each face is an independent flat-shaded quad.
func AddCuboid(m *Mesh, dimensions, offset mgl32.Vec3) {
	hi := dimensions.Add(offset)
	w, h, d := hi.X(), hi.Y(), hi.Z()
	ox, oy, oz := offset.X(), offset.Y(), offset.Z()

	corners := [CuboidFaces][4]mgl32.Vec3{
		{{w, h, d}, {ox, h, d}, {ox, oy, d}, {w, oy, d}},
		{{ox, h, d}, {ox, h, oz}, {ox, oy, oz}, {ox, oy, d}},
		{{ox, h, oz}, {w, h, oz}, {w, oy, oz}, {ox, oy, oz}},
		{{w, h, oz}, {w, h, d}, {w, oy, d}, {w, oy, oz}},
		{{w, h, oz}, {ox, h, oz}, {ox, h, d}, {w, h, d}},
		{{ox, oy, oz}, {w, oy, oz}, {w, oy, d}, {ox, oy, d}},
	}

	for face := range CuboidFaces {
		base := m.CurrentIndex
		for corner := range 4 {
			m.AddVertex(corners[face][corner], faceNormals[face], faceUVs[corner])
		}
		m.AddIndices(base, faceWinding[:]...)
	}
}
