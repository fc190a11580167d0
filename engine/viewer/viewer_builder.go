package viewer

import (
	"github.com/Carmen-Shannon/tri-go/engine/renderer"
)

// ViewerBuilderOption defines a functional option for configuring a viewer during creation.
type ViewerBuilderOption func(*viewer)

// WithBackground sets the clear color used when the viewer begins each frame.
//
// Parameters:
//   - color: the background clear color
//
// Returns:
//   - ViewerBuilderOption: the functional option
func WithBackground(color renderer.ClearColor) ViewerBuilderOption {
	return func(v *viewer) {
		v.r.SetClearColor(color)
	}
}
