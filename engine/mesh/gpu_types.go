package mesh

import (
	_ "embed"

	"github.com/Carmen-Shannon/tri-go/common"
	"github.com/cogentcore/webgpu/wgpu"
)

// VertexSize is the byte size of a single Vertex as laid out for the GPU.
const VertexSize = 24

// GPUVertexSource is the canonical WGSL definition of the VertexInput struct.
// Matches the Vertex layout exactly (24 bytes: position + color). Shader
// sources are assembled from this definition so the WGSL and Go sides cannot
// drift.
//
//go:embed assets/vertex.wgsl
var GPUVertexSource string

// Vertex is the GPU-aligned representation of a single mesh vertex.
// Matches the WGSL VertexInput struct layout exactly (see GPUVertexSource).
// Size: 24 bytes (two tightly packed vec3<f32> attributes).
type Vertex struct {
	Position [3]float32 // offset  0: object-space position (vec3<f32>)
	Color    [3]float32 // offset 12: linear RGB vertex color (vec3<f32>)
}

// MarshalVertices serializes a slice of vertices into a contiguous byte buffer
// suitable for a single vertex buffer upload. The returned slice is an unsafe
// view sharing memory with the input; do not modify either while the other is
// in use.
//
// Parameters:
//   - vertices: the vertices to serialize
//
// Returns:
//   - []byte: the serialized byte buffer (len(vertices) * 24 bytes), or nil if empty
func MarshalVertices(vertices []Vertex) []byte {
	return common.SliceToBytes(vertices)
}

// MarshalIndices serializes a slice of triangle indices into a byte buffer
// suitable for an index buffer upload. The returned slice is an unsafe view
// sharing memory with the input; do not modify either while the other is in
// use.
//
// Parameters:
//   - indices: the indices to serialize
//
// Returns:
//   - []byte: the serialized byte buffer (len(indices) * 4 bytes), or nil if empty
func MarshalIndices(indices []uint32) []byte {
	return common.SliceToBytes(indices)
}

// VertexBufferLayout returns the wgpu vertex buffer layout describing the
// Vertex struct: position at shader location 0, color at location 1.
//
// Returns:
//   - []wgpu.VertexBufferLayout: the single-buffer layout for Vertex data
func VertexBufferLayout() []wgpu.VertexBufferLayout {
	return []wgpu.VertexBufferLayout{
		{
			ArrayStride: VertexSize,
			StepMode:    wgpu.VertexStepModeVertex,
			Attributes: []wgpu.VertexAttribute{
				{
					Format:         wgpu.VertexFormatFloat32x3,
					Offset:         0,
					ShaderLocation: 0,
				},
				{
					Format:         wgpu.VertexFormatFloat32x3,
					Offset:         12,
					ShaderLocation: 1,
				},
			},
		},
	}
}
