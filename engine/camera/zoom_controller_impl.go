package camera

import (
	"math"
	"strconv"
	"sync"
)

// zoomControllerImpl is the single implementation of ZoomController.
// Zoom is the only mutable camera input in the system: it has one writer
// (the input handler) and one reader (the render path), both serialized
// behind the mutex.
type zoomControllerImpl struct {
	mu *sync.Mutex

	zoom        float32
	initialZoom float32

	zoomSpeed float32

	// Optional clamp bounds. Nil means unguarded: values outside any sensible
	// range (including zero and NaN) pass through and produce degenerate
	// projection matrices downstream.
	minZoom *float32
	maxZoom *float32
}

// Compile-time interface compliance check
var _ ZoomController = &zoomControllerImpl{}

// NewZoomController creates a new zoom controller with sensible defaults.
// The default zoom is 5 with no clamp bounds.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - ZoomController: the newly created controller
func NewZoomController(options ...ZoomControllerOption) ZoomController {
	zc := &zoomControllerImpl{
		mu:        &sync.Mutex{},
		zoom:      5.0,
		zoomSpeed: 0.25,
	}

	for _, option := range options {
		option(zc)
	}

	zc.initialZoom = zc.zoom
	return zc
}

// clamp applies the optional min/max bounds to the given zoom value.
// NaN compares false against both bounds and passes through unchanged.
// Caller must hold the mutex.
func (zc *zoomControllerImpl) clamp(zoom float32) float32 {
	if zc.minZoom != nil && zoom < *zc.minZoom {
		zoom = *zc.minZoom
	}
	if zc.maxZoom != nil && zoom > *zc.maxZoom {
		zoom = *zc.maxZoom
	}
	return zoom
}

func (zc *zoomControllerImpl) Zoom() float32 {
	zc.mu.Lock()
	defer zc.mu.Unlock()
	return zc.zoom
}

func (zc *zoomControllerImpl) SetZoom(zoom float32) {
	zc.mu.Lock()
	defer zc.mu.Unlock()
	zc.zoom = zc.clamp(zoom)
}

func (zc *zoomControllerImpl) SetZoomFromString(value string) {
	// ParseFloat rejects garbage, but the degenerate path must match an
	// unchecked numeric input: malformed text becomes NaN and flows on.
	parsed, err := strconv.ParseFloat(value, 32)
	if err != nil {
		parsed = math.NaN()
	}

	zc.mu.Lock()
	defer zc.mu.Unlock()
	zc.zoom = zc.clamp(float32(parsed))
}

func (zc *zoomControllerImpl) ZoomBy(delta float32) {
	zc.mu.Lock()
	defer zc.mu.Unlock()
	zc.zoom = zc.clamp(zc.zoom + delta*zc.zoomSpeed)
}

func (zc *zoomControllerImpl) Reset() {
	zc.mu.Lock()
	defer zc.mu.Unlock()
	zc.zoom = zc.initialZoom
}

func (zc *zoomControllerImpl) ZoomSpeed() float32 {
	zc.mu.Lock()
	defer zc.mu.Unlock()
	return zc.zoomSpeed
}

func (zc *zoomControllerImpl) MinZoom() (float32, bool) {
	zc.mu.Lock()
	defer zc.mu.Unlock()
	if zc.minZoom == nil {
		return 0, false
	}
	return *zc.minZoom, true
}

func (zc *zoomControllerImpl) MaxZoom() (float32, bool) {
	zc.mu.Lock()
	defer zc.mu.Unlock()
	if zc.maxZoom == nil {
		return 0, false
	}
	return *zc.maxZoom, true
}
