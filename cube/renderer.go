// Package cube is the spinning wireframe cube demo.
package cube

import (
	"fmt"

	"wirecube/host"
	"wirecube/wire3d"
)

// Camera and projection constants.
const (
	FOVDegrees = 90
	Near       = 0.1
	Far        = 1000
	// Distance pushes the cube in front of the camera along +Z.
	Distance = 10
	// RefreshRate is the frame cap requested from the host.
	RefreshRate = 50
)

// Angular speeds in radians per second of elapsed time.
const (
	spinZ = 2.0
	spinX = 0.5
)

// Renderer owns the mesh and projection for one display size.
type Renderer struct {
	mesh   *wire3d.Mesh
	proj   wire3d.Mat4
	push   wire3d.Mat4
	width  int
	height int

	Background host.Color
	Foreground host.Color
}

// NewRenderer builds the cube mesh and the projection for a width x height display.
func NewRenderer(width, height int) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("cube: invalid display size %dx%d", width, height)
	}
	mesh, err := wire3d.NewCube()
	if err != nil {
		return nil, fmt.Errorf("cube: %w", err)
	}
	aspect := float32(height) / float32(width)
	return &Renderer{
		mesh:       mesh,
		proj:       wire3d.Projection(aspect, FOVDegrees, Near, Far),
		push:       wire3d.Translation(0, 0, Distance),
		width:      width,
		height:     height,
		Background: host.ColorWhite,
		Foreground: host.ColorBlack,
	}, nil
}

// Mesh returns the renderer's mesh.
func (r *Renderer) Mesh() *wire3d.Mesh { return r.mesh }

// Projection returns a copy of the projection matrix.
func (r *Renderer) Projection() wire3d.Mat4 { return r.proj }

// Rotations returns the Z and X rotation matrices for elapsed seconds.
func Rotations(elapsed float32) (rotZ, rotX wire3d.Mat4) {
	return wire3d.RotationZ(spinZ * elapsed), wire3d.RotationX(spinX * elapsed)
}

// project runs one vertex through rotate Z, rotate X, push, project and
// screen mapping. The result is in pixels (fractional).
func (r *Renderer) project(p wire3d.Vec3, rotZ, rotX *wire3d.Mat4) wire3d.Vec3 {
	p = wire3d.Transform(p, rotZ)
	p = wire3d.Transform(p, rotX)
	p = wire3d.Transform(p, &r.push)
	p = wire3d.Transform(p, &r.proj)

	p.X += 1
	p.Y += 1
	p.X *= 0.5 * float32(r.width)
	p.Y *= 0.5 * float32(r.height)
	return p
}

// ProjectTriangle maps t to screen space for the given rotations.
func (r *Renderer) ProjectTriangle(t wire3d.Triangle, rotZ, rotX *wire3d.Mat4) wire3d.Triangle {
	return wire3d.Triangle{
		r.project(t[0], rotZ, rotX),
		r.project(t[1], rotZ, rotX),
		r.project(t[2], rotZ, rotX),
	}
}

// Draw renders one frame at elapsed seconds into api. Triangles are drawn in
// mesh order with no depth sorting, so later faces overdraw earlier ones.
func (r *Renderer) Draw(api host.API, elapsed float32) {
	rotZ, rotX := Rotations(elapsed)

	api.Clear(r.Background)
	r.mesh.Each(func(_ int, t wire3d.Triangle) {
		s := r.ProjectTriangle(t, &rotZ, &rotX)
		r.edge(api, s[0], s[1])
		r.edge(api, s[1], s[2])
		r.edge(api, s[2], s[0])
	})
	api.DrawFPS(0, 0)
}

func (r *Renderer) edge(api host.API, a, b wire3d.Vec3) {
	api.DrawLine(int(a.X), int(a.Y), int(b.X), int(b.Y), 1, r.Foreground)
}

// Update is the per-frame callback: it draws at the host's elapsed time and
// always asks for a redraw.
func (r *Renderer) Update(api host.API) bool {
	r.Draw(api, api.ElapsedTime())
	return true
}
