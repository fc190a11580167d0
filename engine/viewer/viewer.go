package viewer

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/Carmen-Shannon/tri-go/engine/camera"
	"github.com/Carmen-Shannon/tri-go/engine/mesh"
	"github.com/Carmen-Shannon/tri-go/engine/renderer"
	"github.com/Carmen-Shannon/tri-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/tri-go/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/tri-go/engine/renderer/shader"
)

// entry pairs a registered mesh with the render pipeline that draws it.
type entry struct {
	m           mesh.Mesh
	pipelineKey string
}

// viewer is the implementation of the Viewer interface.
type viewer struct {
	mu *sync.RWMutex

	name string

	cam camera.Camera
	r   renderer.Renderer

	entries []entry

	// dirty is set whenever camera state or geometry changes and cleared by
	// ConsumeDirty. The message loop renders only when this flag is set, so
	// idle frames cost nothing.
	dirty atomic.Bool
}

// Viewer manages a set of static meshes with a Camera and Renderer for rendering.
// Rendering is demand-driven: input mutates camera state and marks the viewer
// dirty, and the message loop renders one frame per dirty transition. Each
// RenderFrame is a full idempotent re-render from the current camera state.
// Thread-safe for concurrent access.
type Viewer interface {
	// Name returns the viewer's identifier.
	Name() string

	// SetName sets the viewer's identifier.
	SetName(name string)

	// Camera returns the viewer's camera.
	Camera() camera.Camera

	// SetCamera replaces the viewer's camera.
	//
	// Parameters:
	//   - cam: the new camera
	SetCamera(cam camera.Camera)

	// Renderer returns the viewer's renderer.
	Renderer() renderer.Renderer

	// SetRenderer replaces the viewer's renderer.
	//
	// Parameters:
	//   - r: the new renderer
	SetRenderer(r renderer.Renderer)

	// Count returns the number of registered meshes.
	//
	// Returns:
	//   - int: the mesh count
	Count() int

	// Add registers a mesh for rendering. The mesh's vertex and index data are
	// uploaded to GPU buffers on its BindGroupProvider, and a render pipeline is
	// created from the given shader pair and registered with the renderer.
	//
	// Parameters:
	//   - m: the mesh to add
	//   - vertexShader: the vertex shader for this mesh's render pipeline
	//   - fragmentShader: the fragment shader for this mesh's render pipeline
	//   - pipelineOpts: optional pipeline builder options (e.g., blending, topology)
	//
	// Returns:
	//   - error: an error if buffer upload or pipeline registration fails
	Add(m mesh.Mesh, vertexShader, fragmentShader shader.Shader, pipelineOpts ...pipeline.PipelineBuilderOption) error

	// RenderFrame renders one complete frame: recomputes camera matrices from
	// the current zoom, uploads the camera uniform, clears the frame, and issues
	// one draw call per registered mesh.
	//
	// Returns:
	//   - error: an error if the frame could not be started or a draw call fails
	RenderFrame() error

	// Invalidate marks the viewer dirty so the next message loop iteration
	// renders a frame.
	Invalidate()

	// ConsumeDirty reports whether the viewer is dirty and clears the flag.
	// Exactly one caller observes true per Invalidate.
	//
	// Returns:
	//   - bool: true if a render was pending
	ConsumeDirty() bool
}

// Ensure viewer implements Viewer interface.
var _ Viewer = &viewer{}

// NewViewer creates a new Viewer with the given camera, renderer, and a vertex
// shader used to discover the camera's bind group layout. All three are required
// and NewViewer panics if any of them is nil. The vertex shader's group 0 layout
// descriptor is used to initialize the camera's BindGroupProvider on the GPU.
//
// Parameters:
//   - name: the name of the viewer
//   - cam: the camera to attach (must not be nil)
//   - r: the renderer to attach (must not be nil)
//   - vertexShader: a vertex shader whose group 0 is the camera uniform layout (must not be nil)
//   - options: functional options to further configure the viewer
//
// Returns:
//   - Viewer: the newly created viewer
func NewViewer(name string, cam camera.Camera, r renderer.Renderer, vertexShader shader.Shader, options ...ViewerBuilderOption) Viewer {
	if cam == nil {
		panic("viewer: NewViewer requires a non-nil Camera")
	}
	if r == nil {
		panic("viewer: NewViewer requires a non-nil Renderer")
	}
	if vertexShader == nil {
		panic("viewer: NewViewer requires a non-nil vertex shader for camera BGP init")
	}

	v := &viewer{
		mu:   &sync.RWMutex{},
		name: name,
		cam:  cam,
		r:    r,
	}

	for _, option := range options {
		option(v)
	}

	// Initialize the camera's bind group on the GPU using the layout from the vertex shader.
	if bgp := cam.BindGroupProvider(); bgp != nil {
		if err := r.InitBindGroup(bgp, vertexShader.BindGroupLayoutDescriptor(cameraGroup), nil, nil); err != nil {
			panic(fmt.Sprintf("viewer: failed to init camera bind group: %v", err))
		}
	}

	// Render the first frame unprompted so the window is never blank.
	v.dirty.Store(true)

	return v
}

// cameraGroup is the bind group index the camera uniform occupies in every
// vertex shader this viewer drives.
const cameraGroup = 0

func (v *viewer) Name() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.name
}

func (v *viewer) SetName(name string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.name = name
}

func (v *viewer) Camera() camera.Camera {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.cam
}

func (v *viewer) SetCamera(cam camera.Camera) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cam = cam
}

func (v *viewer) Renderer() renderer.Renderer {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.r
}

func (v *viewer) SetRenderer(r renderer.Renderer) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.r = r
}

func (v *viewer) Count() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.entries)
}

func (v *viewer) Add(m mesh.Mesh, vertexShader, fragmentShader shader.Shader, pipelineOpts ...pipeline.PipelineBuilderOption) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if m == nil {
		return fmt.Errorf("viewer %q: cannot add a nil mesh", v.name)
	}

	if err := v.r.InitMeshBuffers(m.Provider(), m.VertexData(), m.IndexData(), m.IndexCount()); err != nil {
		return fmt.Errorf("viewer %q: failed to init mesh buffers for %q: %w", v.name, m.Name(), err)
	}

	pipelineKey := m.Name() + "_" + vertexShader.Key() + "_" + fragmentShader.Key()
	opts := append([]pipeline.PipelineBuilderOption{
		pipeline.WithVertexShader(vertexShader),
		pipeline.WithFragmentShader(fragmentShader),
	}, pipelineOpts...)
	p := pipeline.NewPipeline(pipelineKey, opts...)

	if err := v.r.RegisterPipelines(p); err != nil {
		return fmt.Errorf("viewer %q: failed to register pipeline %q: %w", v.name, pipelineKey, err)
	}

	v.entries = append(v.entries, entry{m: m, pipelineKey: pipelineKey})
	v.dirty.Store(true)
	return nil
}

func (v *viewer) RenderFrame() error {
	v.mu.RLock()
	defer v.mu.RUnlock()

	if v.r == nil {
		return fmt.Errorf("viewer %q has no renderer attached", v.name)
	}

	// Recompute camera matrices from the current zoom and upload the uniform.
	if v.cam != nil {
		v.cam.Update()
		if camBGP := v.cam.BindGroupProvider(); camBGP != nil {
			camUniform := camera.GPUCameraUniform{ViewProj: v.cam.ViewProjectionMatrix()}
			camUniform.CameraPosition[0], camUniform.CameraPosition[1], camUniform.CameraPosition[2] = v.cam.Eye()
			v.r.WriteBuffers([]bind_group_provider.BufferWrite{
				{
					Provider: camBGP,
					Binding:  0,
					Offset:   0,
					Data:     camUniform.Marshal(),
				},
			})
		}
	}

	if err := v.r.BeginFrame(); err != nil {
		return fmt.Errorf("viewer %q: failed to begin frame: %w", v.name, err)
	}

	var bindGroups []bind_group_provider.BindGroupProvider
	if v.cam != nil {
		if camBGP := v.cam.BindGroupProvider(); camBGP != nil {
			bindGroups = append(bindGroups, camBGP)
		}
	}

	for _, e := range v.entries {
		if e.m.IndexCount() == 0 {
			continue
		}
		if err := v.r.DrawCall(e.pipelineKey, e.m.Provider(), 1, bindGroups); err != nil {
			return fmt.Errorf("viewer %q: draw call for %q failed: %w", v.name, e.m.Name(), err)
		}
	}

	v.r.EndFrame()
	v.r.Present()
	return nil
}

func (v *viewer) Invalidate() {
	v.dirty.Store(true)
}

func (v *viewer) ConsumeDirty() bool {
	return v.dirty.Swap(false)
}
