package mesh

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCreateCubeMeshCounts(t *testing.T) {
	dims := []mgl32.Vec3{
		{1, 1, 1},
		{2, 3, 4},
		{0.25, 10, 0.5},
	}

	for _, d := range dims {
		m := CreateCubeMesh(d)
		if len(m.Positions) != 24 {
			t.Errorf("cube %v: got %d positions, want 24", d, len(m.Positions))
		}
		if len(m.Indices) != 36 {
			t.Errorf("cube %v: got %d indices, want 36", d, len(m.Indices))
		}
		for i, idx := range m.Indices {
			if idx >= 24 {
				t.Errorf("cube %v: index[%d] = %d, want < 24", d, i, idx)
			}
		}
		if err := m.Validate(); err != nil {
			t.Errorf("cube %v: Validate() = %v", d, err)
		}
	}
}

func TestCreateCubeMeshBounds(t *testing.T) {
	m := CreateCubeMesh(mgl32.Vec3{2, 3, 4})
	b := m.Bounds()
	if b.Min != (mgl32.Vec3{0, 0, 0}) || b.Max != (mgl32.Vec3{2, 3, 4}) {
		t.Errorf("Bounds() = %v, want [0 0 0]-[2 3 4]", b)
	}
}

// Every face's triangles must wind so that their geometric normal agrees
// with the stored flat normal.
func TestCuboidWindingFacesOutward(t *testing.T) {
	m := New(0, 0)
	AddCuboid(m, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{-1, 0.5, 2})

	for tri := 0; tri < len(m.Indices); tri += 3 {
		a := m.Positions[m.Indices[tri]]
		b := m.Positions[m.Indices[tri+1]]
		c := m.Positions[m.Indices[tri+2]]
		geometric := b.Sub(a).Cross(c.Sub(a)).Normalize()
		stored := m.Normals[m.Indices[tri]]
		if geometric.Dot(stored) < 0.999 {
			t.Errorf("triangle %d: winding normal %v disagrees with face normal %v", tri/3, geometric, stored)
		}
	}
}

func TestCuboidFaceOrderAndUVs(t *testing.T) {
	m := CreateCubeMesh(mgl32.Vec3{1, 1, 1})

	wantNormals := []mgl32.Vec3{
		{0, 0, 1}, {-1, 0, 0}, {0, 0, -1}, {1, 0, 0}, {0, 1, 0}, {0, -1, 0},
	}
	wantUVs := []mgl32.Vec2{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

	for face, n := range wantNormals {
		for corner := range 4 {
			i := face*4 + corner
			if m.Normals[i] != n {
				t.Errorf("face %d vertex %d normal = %v, want %v", face, corner, m.Normals[i], n)
			}
			if m.TexCoords[i] != wantUVs[corner] {
				t.Errorf("face %d vertex %d uv = %v, want %v", face, corner, m.TexCoords[i], wantUVs[corner])
			}
		}
		wantIdx := []uint32{0, 1, 2, 2, 3, 0}
		for k, off := range wantIdx {
			if got := m.Indices[face*6+k]; got != uint32(face*4)+off {
				t.Errorf("face %d index %d = %d, want %d", face, k, got, uint32(face*4)+off)
			}
		}
	}
}

func TestCuboidOffset(t *testing.T) {
	m := New(0, 0)
	AddCuboid(m, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{0, 0, 0})
	AddCuboid(m, mgl32.Vec3{1, 2, 3}, mgl32.Vec3{10, 20, 30})

	if m.CurrentIndex != 48 {
		t.Fatalf("CurrentIndex = %d, want 48", m.CurrentIndex)
	}
	if m.Indices[36] != 24 {
		t.Errorf("second cuboid first index = %d, want 24", m.Indices[36])
	}

	second := &Mesh{Positions: m.Positions[24:]}
	b := second.Bounds()
	if b.Min != (mgl32.Vec3{10, 20, 30}) || b.Max != (mgl32.Vec3{11, 22, 33}) {
		t.Errorf("offset cuboid bounds = %v, want [10 20 30]-[11 22 33]", b)
	}
}

func TestCreateWireCubeMeshCounts(t *testing.T) {
	tests := []struct {
		dims      mgl32.Vec3
		thickness float32
	}{
		{mgl32.Vec3{1, 1, 1}, 0.05},
		{mgl32.Vec3{4, 2, 8}, 0.1},
		{mgl32.Vec3{1, 1, 1}, 2},
	}

	for _, tt := range tests {
		m := CreateWireCubeMesh(tt.dims, tt.thickness)
		if len(m.Positions) != 288 {
			t.Errorf("wire cube %v: got %d positions, want 288", tt.dims, len(m.Positions))
		}
		if len(m.Indices) != 432 {
			t.Errorf("wire cube %v: got %d indices, want 432", tt.dims, len(m.Indices))
		}
		if err := m.Validate(); err != nil {
			t.Errorf("wire cube %v: Validate() = %v", tt.dims, err)
		}
	}
}

func TestCreateWireCubeMeshEdges(t *testing.T) {
	const thick = float32(0.1)
	m := CreateWireCubeMesh(mgl32.Vec3{2, 3, 4}, thick)

	b := m.Bounds()
	want := Bounds{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{2 + thick, 3 + thick, 4 + thick}}
	if !b.Min.ApproxEqual(want.Min) || !b.Max.ApproxEqual(want.Max) {
		t.Errorf("Bounds() = %v, want %v", b, want)
	}

	// Each edge spans one full box dimension on its long axis.
	longAxes := map[int]int{}
	for e := range WireCubeEdges {
		edge := &Mesh{Positions: m.Positions[e*CuboidVertices : (e+1)*CuboidVertices]}
		size := edge.Bounds().Size()
		switch {
		case mgl32.FloatEqual(size.X(), 2):
			longAxes[0]++
		case mgl32.FloatEqual(size.Y(), 3):
			longAxes[1]++
		case mgl32.FloatEqual(size.Z(), 4):
			longAxes[2]++
		default:
			t.Errorf("edge %d has no long axis: size %v", e, size)
		}
	}
	for axis := range 3 {
		if longAxes[axis] != 4 {
			t.Errorf("axis %d: %d edges, want 4", axis, longAxes[axis])
		}
	}
}

func TestCheckedBuilders(t *testing.T) {
	if _, err := CreateCubeMeshChecked(mgl32.Vec3{1, 0, 1}); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("zero height: err = %v, want ErrInvalidDimensions", err)
	}
	if _, err := CreateWireCubeMeshChecked(mgl32.Vec3{1, 1, 1}, 0); !errors.Is(err, ErrInvalidThickness) {
		t.Errorf("zero thickness: err = %v, want ErrInvalidThickness", err)
	}
	if _, err := CreateWireCubeMeshChecked(mgl32.Vec3{-1, 1, 1}, 0.1); !errors.Is(err, ErrInvalidDimensions) {
		t.Errorf("negative width: err = %v, want ErrInvalidDimensions", err)
	}

	m, err := CreateWireCubeMeshChecked(mgl32.Vec3{1, 1, 1}, 0.1)
	if err != nil {
		t.Fatalf("CreateWireCubeMeshChecked failed: %v", err)
	}
	if m.VertexCount() != 288 {
		t.Errorf("VertexCount() = %d, want 288", m.VertexCount())
	}
}
