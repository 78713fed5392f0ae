package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/meshgen/pkg/mesh"
)

var (
	ErrMalformedOBJ    = errors.New("malformed OBJ data")
	ErrUnsupportedFace = errors.New("only triangle faces are supported")
)

// WriteOBJ writes m as Wavefront OBJ. Every vertex has a position, texture
// coordinate and normal sharing one index, so faces are written as a/a/a.
func WriteOBJ(w io.Writer, m *mesh.Mesh) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# vertices %d triangles %d\n", m.VertexCount(), m.TriangleCount())
	for _, p := range m.Positions {
		fmt.Fprintf(bw, "v %s %s %s\n", ftoa(p[0]), ftoa(p[1]), ftoa(p[2]))
	}
	for _, uv := range m.TexCoords {
		fmt.Fprintf(bw, "vt %s %s\n", ftoa(uv[0]), ftoa(uv[1]))
	}
	for _, n := range m.Normals {
		fmt.Fprintf(bw, "vn %s %s %s\n", ftoa(n[0]), ftoa(n[1]), ftoa(n[2]))
	}
	for i := 0; i+2 < len(m.Indices); i += 3 {
		// OBJ indices are 1-based
		a, b, c := m.Indices[i]+1, m.Indices[i+1]+1, m.Indices[i+2]+1
		fmt.Fprintf(bw, "f %d/%d/%d %d/%d/%d %d/%d/%d\n", a, a, a, b, b, b, c, c, c)
	}

	return bw.Flush()
}

// ParseOBJ reads an OBJ file written by WriteOBJ. Attribute streams must
// have equal length and faces must be triangles with matching v/vt/vn indices.
func ParseOBJ(r io.Reader) (*mesh.Mesh, error) {
	m := &mesh.Mesh{}
	sc := bufio.NewScanner(r)
	line := 0

	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v", "vn":
			v, err := parseFloats(fields[1:], 3)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			vec := mgl32.Vec3{v[0], v[1], v[2]}
			if fields[0] == "v" {
				m.Positions = append(m.Positions, vec)
			} else {
				m.Normals = append(m.Normals, vec)
			}
		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			m.TexCoords = append(m.TexCoords, mgl32.Vec2{v[0], v[1]})
		case "f":
			if len(fields) != 4 {
				return nil, fmt.Errorf("line %d: %w: %d corners", line, ErrUnsupportedFace, len(fields)-1)
			}
			for _, corner := range fields[1:] {
				idx, err := parseCorner(corner)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", line, err)
				}
				m.Indices = append(m.Indices, idx)
			}
		default:
			// groups, materials and smoothing are ignored
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	m.CurrentIndex = uint32(len(m.Positions))
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedOBJ, err)
	}
	return m, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("%w: want %d components, got %d", ErrMalformedOBJ, n, len(fields))
	}
	out := make([]float32, n)
	for i := range n {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedOBJ, err)
		}
		out[i] = float32(f)
	}
	return out, nil
}

// parseCorner parses "a/a/a" (or a bare "a") into a 0-based index.
func parseCorner(s string) (uint32, error) {
	parts := strings.Split(s, "/")
	first, err := strconv.ParseUint(parts[0], 10, 32)
	if err != nil || first == 0 {
		return 0, fmt.Errorf("%w: bad face index %q", ErrMalformedOBJ, s)
	}
	for _, p := range parts[1:] {
		if p != "" && p != parts[0] {
			return 0, fmt.Errorf("%w: split attribute indices %q", ErrMalformedOBJ, s)
		}
	}
	return uint32(first - 1), nil
}

func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
