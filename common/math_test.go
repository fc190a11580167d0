package common

import (
	"math"
	"testing"
)

const epsilon = 1e-5

func approxEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < epsilon
}

func TestNormalize3UnitLength(t *testing.T) {
	tests := []struct {
		name    string
		x, y, z float32
	}{
		{"axis aligned", 5, 0, 0},
		{"negative components", -3, 4, 0},
		{"arbitrary", 1.5, -2.25, 7.125},
		{"tiny", 1e-3, 1e-3, 1e-3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, z := Normalize3(tt.x, tt.y, tt.z)
			length := float32(math.Sqrt(float64(x*x + y*y + z*z)))
			if !approxEqual(length, 1) {
				t.Errorf("Normalize3(%v, %v, %v) length = %v, want 1", tt.x, tt.y, tt.z, length)
			}
		})
	}
}

func TestNormalize3ZeroInputNonFinite(t *testing.T) {
	x, y, z := Normalize3(0, 0, 0)
	for _, c := range []float32{x, y, z} {
		if !math.IsNaN(float64(c)) && !math.IsInf(float64(c), 0) {
			t.Fatalf("Normalize3(0,0,0) = (%v, %v, %v), want non-finite components", x, y, z)
		}
	}
}

func TestCross3Orthogonal(t *testing.T) {
	tests := []struct {
		name                   string
		ax, ay, az, bx, by, bz float32
	}{
		{"basis vectors", 1, 0, 0, 0, 1, 0},
		{"arbitrary", 1.5, -2, 3, 4, 0.5, -1},
		{"skewed", 0.1, 7, 2, -3, 0.25, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy, cz := Cross3(tt.ax, tt.ay, tt.az, tt.bx, tt.by, tt.bz)
			if d := Dot3(cx, cy, cz, tt.ax, tt.ay, tt.az); !approxEqual(d, 0) {
				t.Errorf("dot(cross(a,b), a) = %v, want 0", d)
			}
			if d := Dot3(cx, cy, cz, tt.bx, tt.by, tt.bz); !approxEqual(d, 0) {
				t.Errorf("dot(cross(a,b), b) = %v, want 0", d)
			}
		})
	}
}

func TestSub3(t *testing.T) {
	x, y, z := Sub3(5, 3, 1, 2, 2, 2)
	if x != 3 || y != 1 || z != -1 {
		t.Errorf("Sub3 = (%v, %v, %v), want (3, 1, -1)", x, y, z)
	}
}

func TestLookAtAxisAligned(t *testing.T) {
	// Eye on +z looking at the origin yields the identity rotation with the
	// eye distance folded into the z translation.
	var view [16]float32
	LookAt(view[:], 0, 0, 5, 0, 0, 0, 0, 1, 0)

	want := [16]float32{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, -5, 1,
	}
	for i := range want {
		if !approxEqual(view[i], want[i]) {
			t.Errorf("view[%d] = %v, want %v", i, view[i], want[i])
		}
	}
}

func TestLookAtBasisOrthonormal(t *testing.T) {
	var view [16]float32
	LookAt(view[:], 3, 4, 5, 0, 1, 0, 0, 1, 0)

	// Rows of the rotation part (x, y, z axes) must be unit length and
	// mutually orthogonal.
	axes := [3][3]float32{
		{view[0], view[4], view[8]},
		{view[1], view[5], view[9]},
		{view[2], view[6], view[10]},
	}
	for i, a := range axes {
		length := float32(math.Sqrt(float64(Dot3(a[0], a[1], a[2], a[0], a[1], a[2]))))
		if !approxEqual(length, 1) {
			t.Errorf("axis %d length = %v, want 1", i, length)
		}
		for j := i + 1; j < 3; j++ {
			b := axes[j]
			if d := Dot3(a[0], a[1], a[2], b[0], b[1], b[2]); !approxEqual(d, 0) {
				t.Errorf("dot(axis %d, axis %d) = %v, want 0", i, j, d)
			}
		}
	}
}

func TestLookAtEyeMapsToOrigin(t *testing.T) {
	var view [16]float32
	LookAt(view[:], 3, -2, 7, 0, 0, 0, 0, 1, 0)
	x, y, z, w := Transform4(view[:], 3, -2, 7, 1)
	if !approxEqual(x, 0) || !approxEqual(y, 0) || !approxEqual(z, 0) || !approxEqual(w, 1) {
		t.Errorf("view * eye = (%v, %v, %v, %v), want (0, 0, 0, 1)", x, y, z, w)
	}
}

func TestOrthoCanonicalMapping(t *testing.T) {
	var proj [16]float32
	Ortho(proj[:], -1, 1, -1, 1, -10, 10)

	tests := []struct {
		name               string
		x, y, z            float32
		wantX, wantY, wantZ float32
	}{
		{"center", 0, 0, 0, 0, 0, 0},
		{"far corner", 1, 1, 10, 1, 1, 1},
		{"near corner", -1, -1, -10, -1, -1, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, z, w := Transform4(proj[:], tt.x, tt.y, tt.z, 1)
			x, y, z = x/w, y/w, z/w
			if !approxEqual(x, tt.wantX) || !approxEqual(y, tt.wantY) || !approxEqual(z, tt.wantZ) {
				t.Errorf("ortho * (%v, %v, %v) = (%v, %v, %v), want (%v, %v, %v)",
					tt.x, tt.y, tt.z, x, y, z, tt.wantX, tt.wantY, tt.wantZ)
			}
		})
	}
}

func TestOrthoZoomBoundary(t *testing.T) {
	// A symmetric box scaled to zoom=5 puts the world point (5, 5, 0) on the
	// boundary of the visible cube.
	var proj [16]float32
	Ortho(proj[:], -5, 5, -5, 5, -10, 10)
	x, y, z, _ := Transform4(proj[:], 5, 5, 0, 1)
	if !approxEqual(x, 1) || !approxEqual(y, 1) || !approxEqual(z, 0) {
		t.Errorf("ortho * (5, 5, 0) = (%v, %v, %v), want (1, 1, 0)", x, y, z)
	}
}

func TestOrthoDegenerateBounds(t *testing.T) {
	// Zero extents divide by zero; the result is non-finite, not a panic.
	var proj [16]float32
	Ortho(proj[:], 0, 0, 0, 0, -10, 10)
	degenerate := false
	for _, v := range proj {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			degenerate = true
			break
		}
	}
	if !degenerate {
		t.Error("Ortho with zero extents produced only finite entries, want non-finite")
	}
}

func TestMul4Identity(t *testing.T) {
	var id, m, out [16]float32
	Identity(id[:])
	for i := range m {
		m[i] = float32(i) * 0.5
	}
	Mul4(out[:], id[:], m[:])
	if out != m {
		t.Errorf("I * m = %v, want %v", out, m)
	}
	Mul4(out[:], m[:], id[:])
	if out != m {
		t.Errorf("m * I = %v, want %v", out, m)
	}
}

func TestMul4Translation(t *testing.T) {
	// Column-major: translation lives in elements 12..14.
	var a, b, out [16]float32
	Identity(a[:])
	Identity(b[:])
	a[12], a[13], a[14] = 1, 2, 3
	b[12], b[13], b[14] = 10, 20, 30
	Mul4(out[:], a[:], b[:])
	if out[12] != 11 || out[13] != 22 || out[14] != 33 {
		t.Errorf("translation = (%v, %v, %v), want (11, 22, 33)", out[12], out[13], out[14])
	}
}

func TestSliceToBytes(t *testing.T) {
	data := []float32{1, 2, 3}
	raw := SliceToBytes(data)
	if len(raw) != 12 {
		t.Fatalf("len = %d, want 12", len(raw))
	}
	if SliceToBytes([]float32(nil)) != nil {
		t.Error("nil slice should produce nil bytes")
	}
}
