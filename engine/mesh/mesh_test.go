package mesh

import (
	"encoding/binary"
	"math"
	"testing"
)

func TestMarshalVerticesLayout(t *testing.T) {
	vertices := []Vertex{
		{Position: [3]float32{1.5, -2, 3}, Color: [3]float32{0.25, 0.5, 1}},
		{Position: [3]float32{-4, 5, -6}, Color: [3]float32{0, 1, 0}},
	}

	buf := MarshalVertices(vertices)
	if len(buf) != 2*VertexSize {
		t.Fatalf("len(MarshalVertices) = %d, want %d", len(buf), 2*VertexSize)
	}

	want := []float32{1.5, -2, 3, 0.25, 0.5, 1, -4, 5, -6, 0, 1, 0}
	for i, w := range want {
		got := math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:]))
		if got != w {
			t.Errorf("field %d round-trip = %v, want %v", i, got, w)
		}
	}

	if MarshalVertices(nil) != nil {
		t.Error("empty vertex slice should produce nil bytes")
	}
}

func TestMarshalIndices(t *testing.T) {
	buf := MarshalIndices([]uint32{0, 1, 2})
	if len(buf) != 12 {
		t.Fatalf("len = %d, want 12", len(buf))
	}
	for i, want := range []uint32{0, 1, 2} {
		if got := binary.LittleEndian.Uint32(buf[i*4:]); got != want {
			t.Errorf("index %d = %d, want %d", i, got, want)
		}
	}
}

func TestTriangle(t *testing.T) {
	m := Triangle()

	if m.Name() != "triangle" {
		t.Errorf("name = %q, want %q", m.Name(), "triangle")
	}
	if got := len(m.Vertices()); got != 3 {
		t.Fatalf("vertex count = %d, want 3", got)
	}
	if m.IndexCount() != 3 {
		t.Errorf("index count = %d, want 3", m.IndexCount())
	}
	if got := len(m.VertexData()); got != 3*VertexSize {
		t.Errorf("vertex data size = %d, want %d", got, 3*VertexSize)
	}
	if got := len(m.IndexData()); got != 12 {
		t.Errorf("index data size = %d, want 12", got)
	}
	if m.Provider() == nil {
		t.Error("expected a default bind group provider")
	}

	// Each vertex carries exactly one pure color channel.
	colors := [][3]float32{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i, v := range m.Vertices() {
		if v.Color != colors[i] {
			t.Errorf("vertex %d color = %v, want %v", i, v.Color, colors[i])
		}
	}

	// All positions sit on the z=0 plane inside the unit square.
	for i, v := range m.Vertices() {
		if v.Position[2] != 0 {
			t.Errorf("vertex %d z = %v, want 0", i, v.Position[2])
		}
	}
}

func TestVertexBufferLayout(t *testing.T) {
	layouts := VertexBufferLayout()
	if len(layouts) != 1 {
		t.Fatalf("layout count = %d, want 1", len(layouts))
	}

	layout := layouts[0]
	if layout.ArrayStride != VertexSize {
		t.Errorf("stride = %d, want %d", layout.ArrayStride, VertexSize)
	}
	if len(layout.Attributes) != 2 {
		t.Fatalf("attribute count = %d, want 2", len(layout.Attributes))
	}
	if layout.Attributes[0].Offset != 0 || layout.Attributes[0].ShaderLocation != 0 {
		t.Errorf("position attribute = %+v, want offset 0 location 0", layout.Attributes[0])
	}
	if layout.Attributes[1].Offset != 12 || layout.Attributes[1].ShaderLocation != 1 {
		t.Errorf("color attribute = %+v, want offset 12 location 1", layout.Attributes[1])
	}
}
