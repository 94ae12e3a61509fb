package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(c, Default()) {
		t.Fatalf("got %+v, want defaults", c)
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangles.yaml")
	content := `vertex_shader_path: shaders/v.glsl
fragment_shader_path_b: shaders/b.glsl
window:
  title: demo
  vsync: false
show_fps: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write yaml: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	d := Default()
	if c.VertexShaderPath != "shaders/v.glsl" {
		t.Errorf("VertexShaderPath = %q", c.VertexShaderPath)
	}
	if c.FragmentShaderPathA != d.FragmentShaderPathA {
		t.Errorf("FragmentShaderPathA = %q, want %q", c.FragmentShaderPathA, d.FragmentShaderPathA)
	}
	if c.FragmentShaderPathB != "shaders/b.glsl" {
		t.Errorf("FragmentShaderPathB = %q", c.FragmentShaderPathB)
	}
	if c.Window.Title != "demo" || c.Window.Width != 1024 || c.Window.Height != 768 || c.Window.Samples != 4 {
		t.Errorf("Window = %+v", c.Window)
	}
	if c.Window.VSyncEnabled() {
		t.Errorf("vsync should be disabled")
	}
	if !c.ShowFPS {
		t.Errorf("ShowFPS should be true")
	}
	if c.LogPath != d.LogPath {
		t.Errorf("LogPath = %q, want %q", c.LogPath, d.LogPath)
	}
}

func TestLoadNegativeSamplesDisablesMSAA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangles.yaml")
	if err := os.WriteFile(path, []byte("window:\n  samples: -1\n"), 0o644); err != nil {
		t.Fatalf("failed to write yaml: %v", err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.Window.Samples != 0 {
		t.Errorf("Samples = %d, want 0", c.Window.Samples)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangles.yaml")
	if err := os.WriteFile(path, []byte("window: [unterminated"), 0o644); err != nil {
		t.Fatalf("failed to write yaml: %v", err)
	}
	c, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !reflect.DeepEqual(c, Default()) {
		t.Errorf("invalid file should still yield defaults, got %+v", c)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "triangles.yaml")
	want := Default()
	want.ShowFPS = true
	want.Window.Title = "saved"
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestVSyncDefaultsOn(t *testing.T) {
	if !(Window{}).VSyncEnabled() {
		t.Fatal("nil VSync should mean enabled")
	}
}
