package wire3d

import "errors"

// ErrEmptyMesh is returned when a mesh is built from no triangles.
var ErrEmptyMesh = errors.New("wire3d: mesh needs at least one triangle")

// Triangle is three vertices in winding order.
type Triangle [3]Vec3

// Mesh is an immutable, ordered list of triangles.
//
// It owns its storage: the constructor copies its input and accessors hand
// out values, so callers cannot alter the vertex data after construction.
type Mesh struct {
	tris []Triangle
}

// NewMesh copies triangles into a new mesh.
func NewMesh(triangles []Triangle) (*Mesh, error) {
	if len(triangles) == 0 {
		return nil, ErrEmptyMesh
	}
	tris := make([]Triangle, len(triangles))
	copy(tris, triangles)
	return &Mesh{tris: tris}, nil
}

// Len returns the number of triangles.
func (m *Mesh) Len() int {
	if m == nil {
		return 0
	}
	return len(m.tris)
}

// At returns triangle i.
func (m *Mesh) At(i int) Triangle { return m.tris[i] }

// Each calls fn for every triangle in storage order.
func (m *Mesh) Each(fn func(i int, t Triangle)) {
	if m == nil {
		return
	}
	for i, t := range m.tris {
		fn(i, t)
	}
}

// CubeTriangles returns the unit cube (corners at 0 and 1) as 12 triangles,
// two per face.
func CubeTriangles() []Triangle {
	return []Triangle{
		// South.
		{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}},
		{{0, 0, 0}, {1, 1, 0}, {1, 0, 0}},
		// East.
		{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}},
		{{1, 0, 0}, {1, 1, 1}, {1, 0, 1}},
		// North.
		{{1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
		{{1, 0, 1}, {0, 1, 1}, {0, 0, 1}},
		// West.
		{{0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
		{{0, 0, 1}, {0, 1, 0}, {0, 0, 0}},
		// Top.
		{{0, 1, 0}, {0, 1, 1}, {1, 1, 1}},
		{{0, 1, 0}, {1, 1, 1}, {1, 1, 0}},
		// Bottom.
		{{1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
		{{1, 0, 0}, {0, 0, 1}, {0, 0, 0}},
	}
}

// NewCube returns the unit cube mesh.
func NewCube() (*Mesh, error) {
	return NewMesh(CubeTriangles())
}
