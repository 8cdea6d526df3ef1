// Package wire3d holds the fixed math core of the wireframe demo: points,
// triangles, an immutable mesh and the 4x4 transforms applied to it.
//
// Matrices are row-major and act on column points (x, y, z, 1):
//
//	x' = m[0]·p, y' = m[1]·p, z' = m[2]·p, w = m[3]·p
//
// followed by a perspective divide whenever w is non-zero. All math is
// float32 to match the display pipeline on small targets.
package wire3d
