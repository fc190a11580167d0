package shader

import (
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
)

const testVertSource = `
struct CameraUniform {
    view_proj: mat4x4<f32>,
    eye: vec3<f32>,
}

@group(0) @binding(0) var<uniform> camera: CameraUniform;

// @vertex commented out decoy fn old_main
@vertex
fn vs_main(@location(0) position: vec3<f32>, @location(1) color: vec3<f32>) -> @builtin(position) vec4<f32> {
    return camera.view_proj * vec4<f32>(position, 1.0);
}
`

const testFragSource = `
/* block comment with a fake @fragment fn bogus */
@fragment
fn fs_main(@location(0) color: vec3<f32>) -> @location(0) vec4<f32> {
    return vec4<f32>(color, 1.0);
}
`

func TestParseEntryPoint(t *testing.T) {
	tests := []struct {
		name       string
		source     string
		shaderType ShaderType
		want       string
	}{
		{"vertex", testVertSource, ShaderTypeVertex, "vs_main"},
		{"fragment", testFragSource, ShaderTypeFragment, "fs_main"},
		{"wrong stage", testFragSource, ShaderTypeVertex, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseEntryPoint(tt.source, tt.shaderType); got != tt.want {
				t.Errorf("parseEntryPoint = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseEntryPointIgnoresComments(t *testing.T) {
	src := "// @vertex\n// fn decoy()\n@vertex\nfn real_main() {}\n"
	if got := parseEntryPoint(src, ShaderTypeVertex); got != "real_main" {
		t.Errorf("parseEntryPoint = %q, want real_main", got)
	}
}

func TestNewShaderLayouts(t *testing.T) {
	desc := wgpu.BindGroupLayoutDescriptor{
		Label: "camera",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: 80,
				},
			},
		},
	}
	s := NewShader("test_vert", ShaderTypeVertex, testVertSource,
		WithBindGroupLayout(0, desc),
	)
	if s.EntryPoint() != "vs_main" {
		t.Errorf("EntryPoint = %q, want vs_main", s.EntryPoint())
	}
	got := s.BindGroupLayoutDescriptor(0)
	if len(got.Entries) != 1 || got.Entries[0].Buffer.MinBindingSize != 80 {
		t.Errorf("unexpected layout descriptor: %+v", got)
	}
	if s.Module() == nil || s.Module().WGSLDescriptor.Code != testVertSource {
		t.Error("module descriptor not built from source")
	}
}

func TestNewShaderPanicsWithoutEntryPoint(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for source with no fragment entry point")
		}
	}()
	NewShader("bad_frag", ShaderTypeFragment, testVertSource)
}
