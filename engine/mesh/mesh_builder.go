package mesh

import (
	"github.com/Carmen-Shannon/tri-go/engine/renderer/bind_group_provider"
)

// MeshBuilderOption is a functional option for configuring a Mesh via NewMesh.
type MeshBuilderOption func(*mesh)

// WithName is an option builder that sets the name of the Mesh.
//
// Parameters:
//   - name: the mesh identifier
//
// Returns:
//   - MeshBuilderOption: a function that applies the name option to a mesh
func WithName(name string) MeshBuilderOption {
	return func(m *mesh) {
		m.name = name
	}
}

// WithVertices is an option builder that sets the vertices of the Mesh.
//
// Parameters:
//   - vertices: the vertices to stage
//
// Returns:
//   - MeshBuilderOption: a function that applies the vertices option to a mesh
func WithVertices(vertices []Vertex) MeshBuilderOption {
	return func(m *mesh) {
		m.vertices = vertices
	}
}

// WithIndices is an option builder that sets the triangle indices of the Mesh.
//
// Parameters:
//   - indices: the indices to stage
//
// Returns:
//   - MeshBuilderOption: a function that applies the indices option to a mesh
func WithIndices(indices []uint32) MeshBuilderOption {
	return func(m *mesh) {
		m.indices = indices
	}
}

// WithProvider is an option builder that sets the BindGroupProvider for mesh GPU resources.
// When not specified, a provider named after the mesh is created.
//
// Parameters:
//   - provider: the BindGroupProvider holding vertex/index buffers
//
// Returns:
//   - MeshBuilderOption: a function that applies the provider option to a mesh
func WithProvider(provider bind_group_provider.BindGroupProvider) MeshBuilderOption {
	return func(m *mesh) {
		m.provider = provider
	}
}
