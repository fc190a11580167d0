package shader

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderBuilderOption is a functional option used to configure a Shader during construction.
type ShaderBuilderOption func(*shader)

// WithBindGroupLayout declares the bind group layout descriptor for a group index.
// The descriptor must match the WGSL @group(N) declarations in the shader source;
// the renderer uses it to create bind group layouts and size uniform buffers.
//
// Parameters:
//   - group: the bind group index the descriptor applies to
//   - descriptor: the layout descriptor for the group
//
// Returns:
//   - ShaderBuilderOption: a function that applies the bind group layout to a shader
func WithBindGroupLayout(group int, descriptor wgpu.BindGroupLayoutDescriptor) ShaderBuilderOption {
	return func(s *shader) {
		s.bindGroupLayoutDescriptors[group] = descriptor
	}
}

// WithVertexLayout declares the vertex buffer layout for a vertex buffer slot.
// Only meaningful on vertex shaders; the layout must match the interleaved
// vertex data uploaded through InitMeshBuffers.
//
// Parameters:
//   - slot: the vertex buffer slot index
//   - layout: the vertex buffer layouts bound at the slot
//
// Returns:
//   - ShaderBuilderOption: a function that applies the vertex layout to a shader
func WithVertexLayout(slot int, layout []wgpu.VertexBufferLayout) ShaderBuilderOption {
	return func(s *shader) {
		s.vertexLayouts[slot] = layout
	}
}
