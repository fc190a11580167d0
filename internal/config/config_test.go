package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.WindowTitle != "triview" {
		t.Errorf("expected default title triview, got %q", c.WindowTitle)
	}
	if c.WindowWidth != 800 || c.WindowHeight != 600 {
		t.Errorf("expected default size 800x600, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.PresentMode != "vsync" {
		t.Errorf("expected default present mode vsync, got %q", c.PresentMode)
	}
	if c.MSAASamples != 4 {
		t.Errorf("expected default 4x MSAA, got %d", c.MSAASamples)
	}
	if c.Zoom != 5.0 || c.ZoomSpeed != 0.25 {
		t.Errorf("expected default zoom 5.0 speed 0.25, got %v / %v", c.Zoom, c.ZoomSpeed)
	}
	if c.ZoomMin != nil || c.ZoomMax != nil {
		t.Error("expected zoom bounds unset by default")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	if c != Default() {
		t.Errorf("expected defaults for missing file, got %+v", c)
	}
}

func TestLoadPartialFileMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFilename)
	data := []byte("window_title: demo\nzoom: 2.5\nzoom_min: 0.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	c := Load(path)
	if c.WindowTitle != "demo" {
		t.Errorf("expected title demo, got %q", c.WindowTitle)
	}
	if c.Zoom != 2.5 {
		t.Errorf("expected zoom 2.5, got %v", c.Zoom)
	}
	if c.ZoomMin == nil || *c.ZoomMin != 0.5 {
		t.Errorf("expected zoom_min 0.5, got %v", c.ZoomMin)
	}
	if c.ZoomMax != nil {
		t.Errorf("expected zoom_max unset, got %v", *c.ZoomMax)
	}
	// Unnamed fields keep their defaults.
	if c.WindowWidth != 800 || c.MSAASamples != 4 {
		t.Errorf("expected untouched defaults, got width %d msaa %d", c.WindowWidth, c.MSAASamples)
	}
}

func TestLoadMalformedFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultConfigFilename)
	if err := os.WriteFile(path, []byte("window_title: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	if c := Load(path); c != Default() {
		t.Errorf("expected defaults for malformed file, got %+v", c)
	}
}
