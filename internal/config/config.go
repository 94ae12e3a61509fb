package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Path is the config file location, relative to the process working directory.
const Path = "config/triangles.yaml"

// Window holds the surface settings requested from the windowing layer.
// A negative Samples value disables multisampling.
type Window struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Title   string `yaml:"title"`
	Samples int    `yaml:"samples"`
	VSync   *bool  `yaml:"vsync,omitempty"`
}

// Config holds the demo settings. Every field is optional in the file; zero values take the default.
type Config struct {
	VertexShaderPath    string `yaml:"vertex_shader_path"`
	FragmentShaderPathA string `yaml:"fragment_shader_path_a"`
	FragmentShaderPathB string `yaml:"fragment_shader_path_b"`
	Window              Window `yaml:"window"`
	ShowFPS             bool   `yaml:"show_fps"`
	LogPath             string `yaml:"log_path"`
}

// Default returns the settings the demo runs with when no file is present.
func Default() Config {
	vsync := true
	return Config{
		VertexShaderPath:    "SimpleVertex.vertexshader",
		FragmentShaderPathA: "SimpleFragment1.fragmentshader",
		FragmentShaderPathB: "SimpleFragment2.fragmentshader",
		Window: Window{
			Width:   1024,
			Height:  768,
			Title:   "Triangles Task",
			Samples: 4,
			VSync:   &vsync,
		},
		ShowFPS: false,
		LogPath: "logs/triangles.txt",
	}
}

// VSyncEnabled reports whether buffer swaps wait for vertical sync.
func (w Window) VSyncEnabled() bool {
	return w.VSync == nil || *w.VSync
}

// Load reads the config at path. A missing file yields Default() with no error; an unreadable
// or malformed file yields Default() and the error so the caller can report it.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), err
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), err
	}
	return c.withDefaults(), nil
}

// Save writes c to path as YAML, creating the parent directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c Config) withDefaults() Config {
	d := Default()
	if c.VertexShaderPath == "" {
		c.VertexShaderPath = d.VertexShaderPath
	}
	if c.FragmentShaderPathA == "" {
		c.FragmentShaderPathA = d.FragmentShaderPathA
	}
	if c.FragmentShaderPathB == "" {
		c.FragmentShaderPathB = d.FragmentShaderPathB
	}
	if c.Window.Width <= 0 {
		c.Window.Width = d.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = d.Window.Height
	}
	if c.Window.Title == "" {
		c.Window.Title = d.Window.Title
	}
	switch {
	case c.Window.Samples == 0:
		c.Window.Samples = d.Window.Samples
	case c.Window.Samples < 0:
		c.Window.Samples = 0
	}
	if c.LogPath == "" {
		c.LogPath = d.LogPath
	}
	return c
}
