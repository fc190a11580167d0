package mesh

import (
	"github.com/Carmen-Shannon/tri-go/engine/renderer/bind_group_provider"
)

// mesh is the implementation of the Mesh interface.
type mesh struct {
	name                  string
	vertices              []Vertex
	indices               []uint32
	vertexData, indexData []byte
	provider              bind_group_provider.BindGroupProvider
}

// Mesh defines the interface for a piece of renderable geometry.
// A Mesh is a GPU-ready container holding staged vertex/index bytes and a
// BindGroupProvider that receives the GPU buffers once uploaded. Geometry is
// staged at construction and immutable afterwards.
type Mesh interface {
	// Name retrieves the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Vertices returns the staged vertices.
	//
	// Returns:
	//   - []Vertex: the vertices
	Vertices() []Vertex

	// Indices returns the staged triangle indices.
	//
	// Returns:
	//   - []uint32: the indices
	Indices() []uint32

	// VertexData returns the serialized vertex bytes for GPU upload.
	//
	// Returns:
	//   - []byte: the vertex data
	VertexData() []byte

	// IndexData returns the serialized index bytes for GPU upload.
	//
	// Returns:
	//   - []byte: the index data
	IndexData() []byte

	// IndexCount returns the number of indices in the mesh.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int

	// Provider retrieves the BindGroupProvider holding GPU mesh resources.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh provider
	Provider() bind_group_provider.BindGroupProvider
}

var _ Mesh = &mesh{}

// NewMesh creates a new Mesh from the provided options and serializes its
// geometry for GPU upload. A mesh with no vertices is valid but draws nothing.
//
// Parameters:
//   - options: functional options to configure the mesh
//
// Returns:
//   - Mesh: the newly created mesh
func NewMesh(options ...MeshBuilderOption) Mesh {
	m := &mesh{
		name: "mesh",
	}
	for _, option := range options {
		option(m)
	}
	if m.provider == nil {
		m.provider = bind_group_provider.NewBindGroupProvider(m.name)
	}
	m.vertexData = MarshalVertices(m.vertices)
	m.indexData = MarshalIndices(m.indices)
	return m
}

// Triangle creates the canonical single-triangle mesh: three vertices with
// pure red, green, and blue colors, wound counter-clockwise.
//
// Returns:
//   - Mesh: the triangle mesh
func Triangle() Mesh {
	return NewMesh(
		WithName("triangle"),
		WithVertices([]Vertex{
			{Position: [3]float32{0, 1, 0}, Color: [3]float32{1, 0, 0}},
			{Position: [3]float32{-1, -1, 0}, Color: [3]float32{0, 1, 0}},
			{Position: [3]float32{1, -1, 0}, Color: [3]float32{0, 0, 1}},
		}),
		WithIndices([]uint32{0, 1, 2}),
	)
}

func (m *mesh) Name() string {
	return m.name
}

func (m *mesh) Vertices() []Vertex {
	return m.vertices
}

func (m *mesh) Indices() []uint32 {
	return m.indices
}

func (m *mesh) VertexData() []byte {
	return m.vertexData
}

func (m *mesh) IndexData() []byte {
	return m.indexData
}

func (m *mesh) IndexCount() int {
	return len(m.indices)
}

func (m *mesh) Provider() bind_group_provider.BindGroupProvider {
	return m.provider
}
