package main

import (
	_ "embed"
	"log/slog"
	"os"
	"strings"

	"github.com/Carmen-Shannon/tri-go/common"
	"github.com/Carmen-Shannon/tri-go/engine/camera"
	"github.com/Carmen-Shannon/tri-go/engine/mesh"
	"github.com/Carmen-Shannon/tri-go/engine/renderer"
	"github.com/Carmen-Shannon/tri-go/engine/renderer/shader"
	"github.com/Carmen-Shannon/tri-go/engine/viewer"
	"github.com/Carmen-Shannon/tri-go/engine/window"
	"github.com/Carmen-Shannon/tri-go/internal/config"
	"github.com/cogentcore/webgpu/wgpu"
)

//go:embed assets/triangle_vert.wgsl
var triangleVertBody string

//go:embed assets/triangle_frag.wgsl
var triangleFragSource string

// vertexShaderSource assembles the full vertex shader from the canonical WGSL
// struct definitions (which mirror the Go-side GPU structs byte for byte) and
// the embedded shader body. The body never re-declares CameraUniform or
// VertexInput, so the shader cannot drift from the uploaded data layouts.
//
// Returns:
//   - string: the complete WGSL vertex shader source
func vertexShaderSource() string {
	return strings.Join([]string{
		camera.GPUCameraUniformSource,
		mesh.GPUVertexSource,
		triangleVertBody,
	}, "\n")
}

func main() {
	cfg := config.Load(config.DefaultConfigFilename)

	// ── Window ──────────────────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(cfg.WindowTitle),
		window.WithWidth(cfg.WindowWidth),
		window.WithHeight(cfg.WindowHeight),
	)

	// ── Renderer ────────────────────────────────────────────────────────
	r := renderer.NewRenderer(
		renderer.BackendTypeWGPU,
		win,
		renderer.WithPresentMode(presentMode(cfg.PresentMode)),
		renderer.WithMSAA(msaaSamples(cfg.MSAASamples)),
		renderer.WithClearColor(renderer.ClearColor{
			R: cfg.ClearColor.R,
			G: cfg.ClearColor.G,
			B: cfg.ClearColor.B,
			A: cfg.ClearColor.A,
		}),
	)

	// ── Camera ──────────────────────────────────────────────────────────
	ctrlOpts := []camera.ZoomControllerOption{
		camera.WithZoom(float32(cfg.Zoom)),
		camera.WithZoomSpeed(float32(cfg.ZoomSpeed)),
	}
	if cfg.ZoomMin != nil {
		ctrlOpts = append(ctrlOpts, camera.WithMinZoom(float32(*cfg.ZoomMin)))
	}
	if cfg.ZoomMax != nil {
		ctrlOpts = append(ctrlOpts, camera.WithMaxZoom(float32(*cfg.ZoomMax)))
	}
	cam := camera.NewCamera(
		camera.WithController(camera.NewZoomController(ctrlOpts...)),
	)
	applyZoomArg(cam.Controller(), os.Args[1:])

	// ── Shaders ─────────────────────────────────────────────────────────
	var camUniform camera.GPUCameraUniform
	vertexShader := shader.NewShader("triangle_vert", shader.ShaderTypeVertex, vertexShaderSource(),
		shader.WithBindGroupLayout(0, wgpu.BindGroupLayoutDescriptor{
			Label: "camera",
			Entries: []wgpu.BindGroupLayoutEntry{
				{
					Binding:    0,
					Visibility: wgpu.ShaderStageVertex,
					Buffer: wgpu.BufferBindingLayout{
						Type:           wgpu.BufferBindingTypeUniform,
						MinBindingSize: uint64(camUniform.Size()),
					},
				},
			},
		}),
		shader.WithVertexLayout(0, mesh.VertexBufferLayout()),
	)
	fragmentShader := shader.NewShader("triangle_frag", shader.ShaderTypeFragment, triangleFragSource)

	// ── Viewer ──────────────────────────────────────────────────────────
	v := viewer.NewViewer("triview", cam, r, vertexShader)
	if err := v.Add(mesh.Triangle(), vertexShader, fragmentShader); err != nil {
		panic(err)
	}

	setupInput(win, r, cam, v)

	slog.Info("starting triview",
		"size", cfg.WindowWidth,
		"zoom", cfg.Zoom,
		"present_mode", cfg.PresentMode,
		"msaa", cfg.MSAASamples)

	win.ProcessMessages()
}

// setupInput wires zoom controls and the render loop: scroll and arrow/number
// keys mutate the zoom controller, every mutation invalidates the viewer, and
// the window's update callback renders one frame per invalidation.
//
// Parameters:
//   - win: the window providing input callbacks and the message loop
//   - r: the renderer, resized when the window resizes
//   - cam: the camera whose zoom controller the input drives
//   - v: the viewer rendering the frames
func setupInput(win window.Window, r renderer.Renderer, cam camera.Camera, v viewer.Viewer) {
	ctrl := cam.Controller()

	// Scroll up means zoom in, which shrinks the view volume, so the delta
	// is negated before it reaches the controller.
	win.SetScrollCallback(func(delta float32) {
		ctrl.ZoomBy(-delta)
		v.Invalidate()
	})

	win.SetKeyDownCallback(func(keyCode uint32) {
		switch keyCode {
		case common.KeyUp, common.KeyEqual:
			ctrl.ZoomBy(1)
		case common.KeyDown, common.KeyMinus:
			ctrl.ZoomBy(-1)
		case common.KeyR:
			ctrl.Reset()
		default:
			// Number keys jump to fixed zoom stops: 1 → 1.0 through 9 → 9.0.
			if keyCode >= common.Key1 && keyCode <= common.Key9 {
				ctrl.SetZoom(float32(keyCode - common.Key0))
				break
			}
			return
		}
		v.Invalidate()
	})

	win.SetResizeCallback(func(width, height int) {
		r.Resize(width, height)
		v.Invalidate()
	})

	win.SetUpdateCallback(func() {
		if !v.ConsumeDirty() {
			return
		}
		if err := v.RenderFrame(); err != nil {
			slog.Warn("frame skipped", "error", err)
		}
	})
}

// applyZoomArg sets the starting zoom from an optional command-line argument,
// overriding the config value. The argument is free-form text: malformed input
// parses to NaN and flows into the camera unguarded, producing a degenerate
// first frame that recovers on the next valid zoom input.
//
// Parameters:
//   - ctrl: the zoom controller to set
//   - args: the command-line arguments after the program name
func applyZoomArg(ctrl camera.ZoomController, args []string) {
	if len(args) == 0 {
		return
	}
	ctrl.SetZoomFromString(args[0])
}

// presentMode maps a config string onto a renderer PresentMode, defaulting to VSync.
func presentMode(mode string) renderer.PresentMode {
	if mode == "uncapped" {
		return renderer.PresentModeUncapped
	}
	return renderer.PresentModeVSync
}

// msaaSamples maps a config sample count onto a renderer MSAASampleCount,
// defaulting to 4x for unrecognized values.
func msaaSamples(samples int) renderer.MSAASampleCount {
	switch samples {
	case 1:
		return renderer.MSAAOff
	case 8:
		return renderer.MSAA8x
	case 16:
		return renderer.MSAA16x
	default:
		return renderer.MSAA4x
	}
}
