package camera

// ZoomController defines the control surface for the camera's zoom scalar.
// The controller owns the zoom state; the Camera reads from it when recomputing
// matrices. The zoom value is the camera's distance from its target along the
// view axis and also the half-extent of the orthographic view volume.
type ZoomController interface {
	// Zoom returns the current zoom value.
	//
	// Returns:
	//   - float32: the current zoom
	Zoom() float32

	// SetZoom sets the zoom value directly, clamped to the min/max bounds if set.
	//
	// Parameters:
	//   - zoom: the new zoom value
	SetZoom(zoom float32)

	// SetZoomFromString parses the given string as a floating-point number and sets it
	// as the new zoom value. Malformed input parses to NaN which propagates into the
	// zoom state unguarded, the same way an unchecked numeric input field would.
	//
	// Parameters:
	//   - value: the string to parse as the new zoom value
	SetZoomFromString(value string)

	// ZoomBy adjusts the zoom by delta scaled by ZoomSpeed.
	// Positive delta zooms out (larger view volume), negative zooms in.
	//
	// Parameters:
	//   - delta: zoom amount scaled by ZoomSpeed
	ZoomBy(delta float32)

	// Reset restores the zoom to its initial value.
	Reset()

	// ZoomSpeed returns the zoom speed multiplier applied by ZoomBy.
	//
	// Returns:
	//   - float32: multiplier for zoom input
	ZoomSpeed() float32

	// MinZoom returns the minimum allowed zoom and whether a minimum is set.
	//
	// Returns:
	//   - float32: the minimum zoom value (zero if unset)
	//   - bool: true if a minimum bound is configured
	MinZoom() (float32, bool)

	// MaxZoom returns the maximum allowed zoom and whether a maximum is set.
	//
	// Returns:
	//   - float32: the maximum zoom value (zero if unset)
	//   - bool: true if a maximum bound is configured
	MaxZoom() (float32, bool)
}
