package wire3d

import (
	"math"
	"testing"
)

const eps = 1e-4

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) <= eps
}

func nearV3(a, b Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

var samplePoints = []Vec3{
	{0, 0, 0},
	{1, 0, 0},
	{0, 1, 1},
	{1, 1, 1},
	{-3.5, 2.25, 10},
}

func TestTransformIdentity(t *testing.T) {
	id := Identity()
	for _, p := range samplePoints {
		if got := Transform(p, &id); got != p {
			t.Fatalf("Transform(%v, I) = %v", p, got)
		}
	}
}

func TestTransformTranslation(t *testing.T) {
	off := V3(1.5, -2, 10)
	m := Translation(off.X, off.Y, off.Z)
	for _, p := range samplePoints {
		if got, want := Transform(p, &m), p.Add(off); got != want {
			t.Fatalf("Transform(%v, T) = %v want %v", p, got, want)
		}
	}
}

func TestTransformZeroWSkipsDivide(t *testing.T) {
	m := Identity()
	m[3][3] = 0
	p := V3(2, 3, 4)
	if got := Transform(p, &m); got != p {
		t.Fatalf("w=0: got %v want %v", got, p)
	}
}

func TestTransformDividesByW(t *testing.T) {
	m := Identity()
	m[3][3] = 2
	if got := Transform(V3(2, 4, 8), &m); got != V3(1, 2, 4) {
		t.Fatalf("w=2: got %v", got)
	}
}

func TestRotationZeroIsIdentity(t *testing.T) {
	if RotationZ(0) != Identity() {
		t.Fatalf("RotationZ(0) = %v", RotationZ(0))
	}
	if RotationX(0) != Identity() {
		t.Fatalf("RotationX(0) = %v", RotationX(0))
	}
}

func TestRotationInverse(t *testing.T) {
	for _, theta := range []float32{0.1, 0.5, 1, 2.5, -4} {
		for name, rot := range map[string]func(float32) Mat4{"z": RotationZ, "x": RotationX} {
			fwd := rot(theta)
			back := rot(-theta)
			for _, p := range samplePoints {
				got := Transform(Transform(p, &fwd), &back)
				if !nearV3(got, p) {
					t.Fatalf("%s(%v) then %s(%v): %v want %v", name, theta, name, -theta, got, p)
				}
			}
		}
	}
}

func TestRotationZQuarterTurn(t *testing.T) {
	m := RotationZ(math.Pi / 2)
	// x' = cos*x + sin*y, y' = -sin*x + cos*y.
	if got := Transform(V3(1, 0, 0), &m); !nearV3(got, V3(0, -1, 0)) {
		t.Fatalf("got %v", got)
	}
	if got := Transform(V3(0, 0, 5), &m); !nearV3(got, V3(0, 0, 5)) {
		t.Fatalf("z changed: %v", got)
	}
}

func TestRotationXKeepsX(t *testing.T) {
	m := RotationX(1.3)
	got := Transform(V3(2, 0, 0), &m)
	if !nearV3(got, V3(2, 0, 0)) {
		t.Fatalf("got %v", got)
	}
}

func TestProjectionSquare(t *testing.T) {
	m := Projection(1, 90, 0.1, 1000)
	checks := []struct {
		name      string
		got, want float32
	}{
		{"m00", m[0][0], 1},
		{"m11", m[1][1], 1},
		{"m22", m[2][2], 1000 / 999.9},
		{"m23", m[2][3], 1},
		{"m32", m[3][2], -100 / 999.9},
		{"m33", m[3][3], 0},
	}
	for _, c := range checks {
		if !near(c.got, c.want) {
			t.Fatalf("%s = %v want %v", c.name, c.got, c.want)
		}
	}
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if (r == 0 && c == 0) || (r == 1 && c == 1) || (r == 2 && (c == 2 || c == 3)) || (r == 3 && c == 2) {
				continue
			}
			if m[r][c] != 0 {
				t.Fatalf("m%d%d = %v want 0", r, c, m[r][c])
			}
		}
	}
}

func TestProjectionAspect(t *testing.T) {
	m := Projection(240.0/400.0, 90, 0.1, 1000)
	if !near(m[0][0], 0.6) {
		t.Fatalf("m00 = %v want 0.6", m[0][0])
	}
	if !near(m[1][1], 1) {
		t.Fatalf("m11 = %v want 1", m[1][1])
	}
}

func TestTransformTriangle(t *testing.T) {
	m := Translation(0, 0, 1)
	tri := Triangle{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	got := TransformTriangle(tri, &m)
	want := Triangle{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}}
	if got != want {
		t.Fatalf("got %v want %v", got, want)
	}
}
