package wire3d

import "math"

// Vec3 is a 3D point or vector.
type Vec3 struct {
	X, Y, Z float32
}

// Mat4 is a row-major 4x4 matrix: m[row][col].
type Mat4 [4][4]float32

func V3(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translation returns a matrix that offsets points by (x, y, z).
func Translation(x, y, z float32) Mat4 {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// RotationZ returns the rotation about the Z axis used by the demo.
func RotationZ(rad float32) Mat4 {
	c, s := sincos(rad)
	return Mat4{
		{c, s, 0, 0},
		{-s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// RotationX returns the rotation about the X axis used by the demo.
func RotationX(rad float32) Mat4 {
	c, s := sincos(rad)
	return Mat4{
		{1, 0, 0, 0},
		{0, c, s, 0},
		{0, -s, c, 0},
		{0, 0, 0, 1},
	}
}

// Projection builds the perspective matrix for a vertical field of view in
// degrees and an aspect ratio of height/width.
//
// The result carries the homogeneous w in row 3 (w = m[3][2]*z), which
// Transform divides by.
func Projection(aspect, fovDeg, near, far float32) Mat4 {
	fovRad := 1 / float32(math.Tan(float64(fovDeg*0.5/180*math.Pi)))

	var m Mat4
	m[0][0] = aspect * fovRad
	m[1][1] = fovRad
	m[2][2] = far / (far - near)
	m[2][3] = 1
	m[3][2] = (-far * near) / (far - near)
	return m
}

// Transform applies m to p as the homogeneous point (x, y, z, 1).
//
// When the resulting w is exactly zero the divide is skipped and the
// unnormalized coordinates are returned.
func Transform(p Vec3, m *Mat4) Vec3 {
	out := Vec3{
		X: m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		Y: m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		Z: m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
	w := m[3][0]*p.X + m[3][1]*p.Y + m[3][2]*p.Z + m[3][3]
	if w != 0 {
		out.X /= w
		out.Y /= w
		out.Z /= w
	}
	return out
}

// TransformTriangle applies m to every vertex of t.
func TransformTriangle(t Triangle, m *Mat4) Triangle {
	return Triangle{
		Transform(t[0], m),
		Transform(t[1], m),
		Transform(t[2], m),
	}
}

func sincos(rad float32) (c, s float32) {
	sf, cf := math.Sincos(float64(rad))
	return float32(cf), float32(sf)
}
