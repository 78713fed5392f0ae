package mesh

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// WireCubeEdges is the number of thin cuboids in a wire cube.
const WireCubeEdges = 12

var (
	ErrInvalidDimensions = errors.New("cube dimensions must be positive")
	ErrInvalidThickness  = errors.New("wire thickness must be positive")
)

// CreateCubeMesh builds a solid box spanning the origin to dimensions.
func CreateCubeMesh(dimensions mgl32.Vec3) *Mesh {
	m := New(CuboidVertices, CuboidIndices)
	AddCuboid(m, dimensions, mgl32.Vec3{})
	return m
}

// CreateWireCubeMesh builds the twelve edges of a box as thin cuboids.
// Segments overlap at the corners; no geometry is deduplicated.
func CreateWireCubeMesh(dimensions mgl32.Vec3, wireThickness float32) *Mesh {
	w, h, d := dimensions.X(), dimensions.Y(), dimensions.Z()
	t := wireThickness

	alongX := mgl32.Vec3{w, t, t}
	alongY := mgl32.Vec3{t, h, t}
	alongZ := mgl32.Vec3{t, t, d}

	edges := [WireCubeEdges]struct {
		size, offset mgl32.Vec3
	}{
		// front
		{alongX, mgl32.Vec3{0, 0, 0}},
		{alongX, mgl32.Vec3{0, h, 0}},
		{alongY, mgl32.Vec3{0, 0, 0}},
		{alongY, mgl32.Vec3{w, 0, 0}},
		// back
		{alongX, mgl32.Vec3{0, 0, d}},
		{alongX, mgl32.Vec3{0, h, d}},
		{alongY, mgl32.Vec3{0, 0, d}},
		{alongY, mgl32.Vec3{w, 0, d}},
		// depth
		{alongZ, mgl32.Vec3{0, h, 0}},
		{alongZ, mgl32.Vec3{0, 0, 0}},
		{alongZ, mgl32.Vec3{w, h, 0}},
		{alongZ, mgl32.Vec3{w, 0, 0}},
	}

	m := New(CuboidVertices*WireCubeEdges, CuboidIndices*WireCubeEdges)
	for _, e := range edges {
		AddCuboid(m, e.size, e.offset)
	}
	return m
}

// CreateCubeMeshChecked is CreateCubeMesh with input validation.
func CreateCubeMeshChecked(dimensions mgl32.Vec3) (*Mesh, error) {
	if err := ValidateDimensions(dimensions); err != nil {
		return nil, err
	}
	return CreateCubeMesh(dimensions), nil
}

// CreateWireCubeMeshChecked is CreateWireCubeMesh with input validation.
func CreateWireCubeMeshChecked(dimensions mgl32.Vec3, wireThickness float32) (*Mesh, error) {
	if err := ValidateDimensions(dimensions); err != nil {
		return nil, err
	}
	if err := ValidateWireThickness(wireThickness); err != nil {
		return nil, err
	}
	return CreateWireCubeMesh(dimensions, wireThickness), nil
}

// ValidateDimensions rejects boxes with a non-positive or NaN side.
func ValidateDimensions(d mgl32.Vec3) error {
	for i := range 3 {
		if !(d[i] > 0) {
			return fmt.Errorf("%w: got %v", ErrInvalidDimensions, d)
		}
	}
	return nil
}

// ValidateWireThickness rejects non-positive or NaN thickness.
func ValidateWireThickness(t float32) error {
	if !(t > 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidThickness, t)
	}
	return nil
}
