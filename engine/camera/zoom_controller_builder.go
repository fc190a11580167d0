package camera

// ZoomControllerOption is a functional option for configuring a zoom controller.
// Use the With* functions to create options.
type ZoomControllerOption func(*zoomControllerImpl)

// WithZoom sets the initial zoom value. Reset() restores the controller to this value.
//
// Parameters:
//   - zoom: the initial zoom value
//
// Returns:
//   - ZoomControllerOption: option function to apply
func WithZoom(zoom float32) ZoomControllerOption {
	return func(zc *zoomControllerImpl) {
		zc.zoom = zoom
	}
}

// WithZoomSpeed sets the multiplier applied to ZoomBy deltas.
//
// Parameters:
//   - speed: the zoom speed multiplier
//
// Returns:
//   - ZoomControllerOption: option function to apply
func WithZoomSpeed(speed float32) ZoomControllerOption {
	return func(zc *zoomControllerImpl) {
		zc.zoomSpeed = speed
	}
}

// WithMinZoom sets the minimum allowed zoom value. When unset, the lower
// bound is unguarded and degenerate values pass through.
//
// Parameters:
//   - minZoom: the minimum zoom value
//
// Returns:
//   - ZoomControllerOption: option function to apply
func WithMinZoom(minZoom float32) ZoomControllerOption {
	return func(zc *zoomControllerImpl) {
		zc.minZoom = &minZoom
	}
}

// WithMaxZoom sets the maximum allowed zoom value. When unset, the upper
// bound is unguarded.
//
// Parameters:
//   - maxZoom: the maximum zoom value
//
// Returns:
//   - ZoomControllerOption: option function to apply
func WithMaxZoom(maxZoom float32) ZoomControllerOption {
	return func(zc *zoomControllerImpl) {
		zc.maxZoom = &maxZoom
	}
}
