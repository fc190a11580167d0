package camera

import (
	"encoding/binary"
	"math"
	"testing"
)

const epsilon = 1e-5

func approxEqual(a, b float32) bool {
	return float32(math.Abs(float64(a-b))) < epsilon
}

func TestNewCameraDefaults(t *testing.T) {
	c := NewCamera()

	if x, y, z := c.Target(); x != 0 || y != 0 || z != 0 {
		t.Errorf("default target = (%v, %v, %v), want origin", x, y, z)
	}
	if x, y, z := c.Up(); x != 0 || y != 1 || z != 0 {
		t.Errorf("default up = (%v, %v, %v), want (0, 1, 0)", x, y, z)
	}
	if c.Near() != -10 || c.Far() != 10 {
		t.Errorf("default near/far = %v/%v, want -10/10", c.Near(), c.Far())
	}
	if c.Controller() != nil {
		t.Error("expected no controller by default")
	}
	if c.BindGroupProvider() == nil {
		t.Error("expected a default bind group provider")
	}
}

func TestEyeDerivedFromZoom(t *testing.T) {
	c := NewCamera(WithController(NewZoomController(WithZoom(5))))

	x, y, z := c.Eye()
	if x != 0 || y != 0 || z != 5 {
		t.Errorf("eye = (%v, %v, %v), want (0, 0, 5)", x, y, z)
	}

	c.Controller().SetZoom(2.5)
	c.Update()
	if _, _, z := c.Eye(); z != 2.5 {
		t.Errorf("eye z after zoom change = %v, want 2.5", z)
	}
}

func TestViewMatrixAxisAligned(t *testing.T) {
	// Eye (0,0,5) looking at the origin with +y up yields the identity
	// rotation with translation (0, 0, -5) in the last column.
	c := NewCamera(WithController(NewZoomController(WithZoom(5))))
	c.Update()

	view := c.ViewMatrix()
	identity3 := []struct {
		idx  int
		want float32
	}{
		{0, 1}, {1, 0}, {2, 0},
		{4, 0}, {5, 1}, {6, 0},
		{8, 0}, {9, 0}, {10, 1},
	}
	for _, e := range identity3 {
		if !approxEqual(view[e.idx], e.want) {
			t.Errorf("view[%d] = %v, want %v", e.idx, view[e.idx], e.want)
		}
	}
	if !approxEqual(view[12], 0) || !approxEqual(view[13], 0) || !approxEqual(view[14], -5) {
		t.Errorf("view translation = (%v, %v, %v), want (0, 0, -5)", view[12], view[13], view[14])
	}
	if !approxEqual(view[15], 1) {
		t.Errorf("view[15] = %v, want 1", view[15])
	}
}

func TestProjectionMapsZoomBoundaryToClipEdge(t *testing.T) {
	// With zoom=5 the ortho volume is [-5,5] on x and y, so the world point
	// (5, 5, 0) lands on the corner of the visible region: clip x=1, y=1.
	// The view shifts z to -5 and the clip-range correction maps the
	// resulting [-1,1] depth into [0,1].
	c := NewCamera(WithController(NewZoomController(WithZoom(5))))
	c.Update()

	vp := c.ViewProjectionMatrix()
	x, y, z, w := transform(vp, 5, 5, 0, 1)
	if !approxEqual(w, 1) {
		t.Fatalf("clip w = %v, want 1", w)
	}
	if !approxEqual(x, 1) || !approxEqual(y, 1) {
		t.Errorf("clip (x, y) = (%v, %v), want (1, 1)", x, y)
	}
	if z < 0 || z > 1 {
		t.Errorf("clip z = %v, want within [0, 1]", z)
	}
}

func TestProjectionDepthRange(t *testing.T) {
	// Points on the near and far planes must map to clip z 0 and 1 after
	// the clip-range correction.
	c := NewCamera(WithController(NewZoomController(WithZoom(1))))
	c.Update()

	proj := c.ProjectionMatrix()

	_, _, zNear, _ := transform(proj, 0, 0, -10, 1)
	_, _, zFar, _ := transform(proj, 0, 0, 10, 1)
	if !approxEqual(zNear, 0) {
		t.Errorf("near plane clip z = %v, want 0", zNear)
	}
	if !approxEqual(zFar, 1) {
		t.Errorf("far plane clip z = %v, want 1", zFar)
	}
}

func TestZeroZoomDegenerates(t *testing.T) {
	// Zoom 0 collapses the ortho bounds. The division by zero is accepted
	// behavior: the projection fills with non-finite entries rather than
	// erroring out.
	c := NewCamera(WithController(NewZoomController(WithZoom(0))))
	c.Update()

	proj := c.ProjectionMatrix()
	degenerate := false
	for _, v := range proj {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			degenerate = true
			break
		}
	}
	if !degenerate {
		t.Errorf("projection with zoom 0 = %v, want non-finite entries", proj)
	}
}

func TestUpdateIdempotent(t *testing.T) {
	c := NewCamera(WithController(NewZoomController(WithZoom(3))))
	c.Update()
	first := c.ViewProjectionMatrix()
	c.Update()
	second := c.ViewProjectionMatrix()
	if first != second {
		t.Errorf("repeated Update with unchanged zoom changed the matrix:\n%v\n%v", first, second)
	}
}

func TestZoomControllerSetZoomFromString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float32
		isNaN bool
	}{
		{name: "integer", input: "5", want: 5},
		{name: "decimal", input: "2.75", want: 2.75},
		{name: "negative", input: "-3", want: -3},
		{name: "scientific", input: "1e2", want: 100},
		{name: "garbage", input: "abc", isNaN: true},
		{name: "empty", input: "", isNaN: true},
		{name: "trailing junk", input: "5x", isNaN: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zc := NewZoomController()
			zc.SetZoomFromString(tt.input)
			got := zc.Zoom()
			if tt.isNaN {
				if !math.IsNaN(float64(got)) {
					t.Errorf("SetZoomFromString(%q) = %v, want NaN", tt.input, got)
				}
				return
			}
			if !approxEqual(got, tt.want) {
				t.Errorf("SetZoomFromString(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestZoomControllerZoomBy(t *testing.T) {
	zc := NewZoomController(WithZoom(5), WithZoomSpeed(0.5))

	zc.ZoomBy(2)
	if got := zc.Zoom(); !approxEqual(got, 6) {
		t.Errorf("zoom after ZoomBy(2) = %v, want 6", got)
	}

	zc.ZoomBy(-4)
	if got := zc.Zoom(); !approxEqual(got, 4) {
		t.Errorf("zoom after ZoomBy(-4) = %v, want 4", got)
	}
}

func TestZoomControllerClamp(t *testing.T) {
	zc := NewZoomController(WithZoom(5), WithMinZoom(1), WithMaxZoom(10))

	zc.SetZoom(0.25)
	if got := zc.Zoom(); got != 1 {
		t.Errorf("zoom below min = %v, want 1", got)
	}

	zc.SetZoom(50)
	if got := zc.Zoom(); got != 10 {
		t.Errorf("zoom above max = %v, want 10", got)
	}

	// Without bounds, out-of-range values pass through untouched.
	unguarded := NewZoomController(WithZoom(5))
	unguarded.SetZoom(0)
	if got := unguarded.Zoom(); got != 0 {
		t.Errorf("unguarded zoom = %v, want 0", got)
	}
}

func TestZoomControllerReset(t *testing.T) {
	zc := NewZoomController(WithZoom(5))
	zc.SetZoom(42)
	zc.Reset()
	if got := zc.Zoom(); got != 5 {
		t.Errorf("zoom after Reset = %v, want 5", got)
	}
}

func TestGPUCameraUniformMarshal(t *testing.T) {
	u := &GPUCameraUniform{
		CameraPosition: [3]float32{1, 2, 3},
	}
	for i := range 16 {
		u.ViewProj[i] = float32(i)
	}

	if u.Size() != 80 {
		t.Fatalf("Size() = %d, want 80", u.Size())
	}

	buf := u.Marshal()
	if len(buf) != 80 {
		t.Fatalf("len(Marshal()) = %d, want 80", len(buf))
	}

	for i := range 16 {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != float32(i) {
			t.Errorf("ViewProj[%d] round-trip = %v, want %v", i, got, float32(i))
		}
	}
	for i, want := range []float32{1, 2, 3} {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[64+i*4:]))
		if got != want {
			t.Errorf("CameraPosition[%d] round-trip = %v, want %v", i, got, want)
		}
	}
	if pad := binary.LittleEndian.Uint32(buf[76:]); pad != 0 {
		t.Errorf("padding bytes = %d, want 0", pad)
	}
}

// transform applies a column-major 4x4 matrix to a homogeneous point.
func transform(m [16]float32, x, y, z, w float32) (ox, oy, oz, ow float32) {
	ox = m[0]*x + m[4]*y + m[8]*z + m[12]*w
	oy = m[1]*x + m[5]*y + m[9]*z + m[13]*w
	oz = m[2]*x + m[6]*y + m[10]*z + m[14]*w
	ow = m[3]*x + m[7]*y + m[11]*z + m[15]*w
	return
}
