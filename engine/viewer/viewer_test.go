package viewer

import (
	"testing"

	"github.com/Carmen-Shannon/tri-go/engine/camera"
	"github.com/Carmen-Shannon/tri-go/engine/mesh"
	"github.com/Carmen-Shannon/tri-go/engine/renderer"
	"github.com/Carmen-Shannon/tri-go/engine/renderer/bind_group_provider"
	"github.com/Carmen-Shannon/tri-go/engine/renderer/pipeline"
	"github.com/Carmen-Shannon/tri-go/engine/renderer/shader"
	"github.com/cogentcore/webgpu/wgpu"
)

const testVertexSource = `
struct CameraUniform {
    view_proj: mat4x4<f32>,
    camera_position: vec3<f32>,
}
@group(0) @binding(0) var<uniform> camera: CameraUniform;

@vertex
fn vs_main(@location(0) position: vec3<f32>) -> @builtin(position) vec4<f32> {
    return camera.view_proj * vec4<f32>(position, 1.0);
}
`

const testFragmentSource = `
@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 1.0, 1.0, 1.0);
}
`

// fakeRenderer records the order of renderer calls without touching the GPU.
type fakeRenderer struct {
	calls []string

	pipelines map[string]pipeline.Pipeline

	bufferWrites [][]bind_group_provider.BufferWrite
	drawKeys     []string
	drawGroups   [][]bind_group_provider.BindGroupProvider
	clearColor   renderer.ClearColor
}

var _ renderer.Renderer = &fakeRenderer{}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{pipelines: make(map[string]pipeline.Pipeline)}
}

func (f *fakeRenderer) Pipeline(key string) pipeline.Pipeline {
	return f.pipelines[key]
}

func (f *fakeRenderer) Pipelines() map[string]pipeline.Pipeline {
	return f.pipelines
}

func (f *fakeRenderer) RegisterPipelines(pipelines ...pipeline.Pipeline) error {
	f.calls = append(f.calls, "RegisterPipelines")
	for _, p := range pipelines {
		f.pipelines[p.PipelineKey()] = p
	}
	return nil
}

func (f *fakeRenderer) SetPipeline(key string, p pipeline.Pipeline) {
	f.pipelines[key] = p
}

func (f *fakeRenderer) SetPipelines(pipelines map[string]pipeline.Pipeline) {
	f.pipelines = pipelines
}

func (f *fakeRenderer) Resize(width, height int) {
	f.calls = append(f.calls, "Resize")
}

func (f *fakeRenderer) InitMeshBuffers(provider bind_group_provider.BindGroupProvider, vertexData, indexData []byte, indexCount int) error {
	f.calls = append(f.calls, "InitMeshBuffers")
	provider.SetIndexCount(indexCount)
	return nil
}

func (f *fakeRenderer) InitBindGroup(provider bind_group_provider.BindGroupProvider, descriptor wgpu.BindGroupLayoutDescriptor, bufferUsageOverrides map[int]wgpu.BufferUsage, bufferSizeOverrides map[int]uint64) error {
	f.calls = append(f.calls, "InitBindGroup")
	return nil
}

func (f *fakeRenderer) WriteBuffers(writes []bind_group_provider.BufferWrite) {
	f.calls = append(f.calls, "WriteBuffers")
	f.bufferWrites = append(f.bufferWrites, writes)
}

func (f *fakeRenderer) BeginFrame() error {
	f.calls = append(f.calls, "BeginFrame")
	return nil
}

func (f *fakeRenderer) DrawCall(pipelineKey string, meshProvider bind_group_provider.BindGroupProvider, instanceCount uint32, bindGroups []bind_group_provider.BindGroupProvider) error {
	f.calls = append(f.calls, "DrawCall")
	f.drawKeys = append(f.drawKeys, pipelineKey)
	f.drawGroups = append(f.drawGroups, bindGroups)
	return nil
}

func (f *fakeRenderer) EndFrame() {
	f.calls = append(f.calls, "EndFrame")
}

func (f *fakeRenderer) Present() {
	f.calls = append(f.calls, "Present")
}

func (f *fakeRenderer) SetPresentMode(mode renderer.PresentMode) {
	f.calls = append(f.calls, "SetPresentMode")
}

func (f *fakeRenderer) SetClearColor(c renderer.ClearColor) {
	f.calls = append(f.calls, "SetClearColor")
	f.clearColor = c
}

func newTestShaders() (shader.Shader, shader.Shader) {
	vs := shader.NewShader("test_vs", shader.ShaderTypeVertex, testVertexSource)
	fs := shader.NewShader("test_fs", shader.ShaderTypeFragment, testFragmentSource)
	return vs, fs
}

func TestNewViewerPanicsOnNilDependencies(t *testing.T) {
	vs, _ := newTestShaders()
	cam := camera.NewCamera()
	r := newFakeRenderer()

	tests := []struct {
		name string
		fn   func()
	}{
		{"nil camera", func() { NewViewer("v", nil, r, vs) }},
		{"nil renderer", func() { NewViewer("v", cam, nil, vs) }},
		{"nil vertex shader", func() { NewViewer("v", cam, r, nil) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic, got none")
				}
			}()
			tt.fn()
		})
	}
}

func TestNewViewerInitsCameraBindGroup(t *testing.T) {
	vs, _ := newTestShaders()
	r := newFakeRenderer()
	NewViewer("main", camera.NewCamera(), r, vs)

	if len(r.calls) != 1 || r.calls[0] != "InitBindGroup" {
		t.Fatalf("expected a single InitBindGroup call, got %v", r.calls)
	}
}

func TestAddRegistersMeshBuffersAndPipeline(t *testing.T) {
	vs, fs := newTestShaders()
	r := newFakeRenderer()
	v := NewViewer("main", camera.NewCamera(), r, vs)

	if err := v.Add(mesh.Triangle(), vs, fs); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if v.Count() != 1 {
		t.Fatalf("expected 1 mesh, got %d", v.Count())
	}
	if p := r.Pipeline("triangle_test_vs_test_fs"); p == nil {
		t.Fatal("expected pipeline registered under triangle_test_vs_test_fs")
	}
	if err := v.Add(nil, vs, fs); err == nil {
		t.Fatal("expected error adding nil mesh")
	}
}

func TestRenderFrameCallSequence(t *testing.T) {
	vs, fs := newTestShaders()
	r := newFakeRenderer()
	cam := camera.NewCamera(camera.WithController(camera.NewZoomController(camera.WithZoom(5.0))))
	v := NewViewer("main", cam, r, vs)
	if err := v.Add(mesh.Triangle(), vs, fs); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	r.calls = nil
	if err := v.RenderFrame(); err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}

	want := []string{"WriteBuffers", "BeginFrame", "DrawCall", "EndFrame", "Present"}
	if len(r.calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, r.calls)
	}
	for i := range want {
		if r.calls[i] != want[i] {
			t.Fatalf("call %d: expected %s, got %s", i, want[i], r.calls[i])
		}
	}

	if len(r.bufferWrites) != 1 || len(r.bufferWrites[0]) != 1 {
		t.Fatalf("expected one camera uniform write, got %v", r.bufferWrites)
	}
	write := r.bufferWrites[0][0]
	if write.Binding != 0 || write.Offset != 0 {
		t.Fatalf("expected write at binding 0 offset 0, got binding %d offset %d", write.Binding, write.Offset)
	}
	var u camera.GPUCameraUniform
	if len(write.Data) != u.Size() {
		t.Fatalf("expected %d uniform bytes, got %d", u.Size(), len(write.Data))
	}

	if len(r.drawGroups[0]) != 1 {
		t.Fatalf("expected camera bind group on draw call, got %d groups", len(r.drawGroups[0]))
	}
	if r.drawGroups[0][0] != cam.BindGroupProvider() {
		t.Fatal("draw call did not receive the camera's bind group provider")
	}
}

func TestDirtyFlagLifecycle(t *testing.T) {
	vs, fs := newTestShaders()
	r := newFakeRenderer()
	v := NewViewer("main", camera.NewCamera(), r, vs)

	if !v.ConsumeDirty() {
		t.Fatal("expected new viewer to start dirty")
	}
	if v.ConsumeDirty() {
		t.Fatal("expected dirty flag cleared after consume")
	}

	v.Invalidate()
	if !v.ConsumeDirty() {
		t.Fatal("expected dirty after Invalidate")
	}

	if err := v.Add(mesh.Triangle(), vs, fs); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if !v.ConsumeDirty() {
		t.Fatal("expected dirty after Add")
	}
}

func TestWithBackgroundSetsClearColor(t *testing.T) {
	vs, _ := newTestShaders()
	r := newFakeRenderer()
	want := renderer.ClearColor{R: 0.2, G: 0.3, B: 0.4, A: 1.0}
	NewViewer("main", camera.NewCamera(), r, vs, WithBackground(want))

	if r.clearColor != want {
		t.Fatalf("expected clear color %v, got %v", want, r.clearColor)
	}
}
