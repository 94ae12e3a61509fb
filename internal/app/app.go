package app

import (
	"context"
	"errors"

	"triangles/internal/camera"
	"triangles/internal/config"
	"triangles/internal/debug"
	"triangles/internal/graphics"
	"triangles/internal/logger"
	"triangles/internal/scene"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitSetupFailure = -1
)

// Backend is the GPU device used for setup, per-frame drawing and teardown.
type Backend interface {
	scene.Device
	UploadVertices(data []float32)
	LoadProgram(vertexPath, fragmentPath string) (scene.Program, error)
	DeleteProgram(p scene.Program)
	EnableBlending()
	Clear()
	Release()
}

// Opener creates the presentation surface and its GPU backend.
type Opener func(cfg config.Window) (graphics.Surface, Backend, error)

// Run sets up the surface and GPU resources, renders until the exit key is pressed or the
// window is closed, then tears everything down. It returns the process exit code.
func Run(ctx context.Context, cfg config.Config, open Opener, log *logger.Logger) int {
	surface, backend, err := open(cfg.Window)
	if err != nil {
		switch {
		case errors.Is(err, graphics.ErrSurfaceCreation):
			log.Error("Failed to open window", "err", err)
		case errors.Is(err, graphics.ErrExtensionLoad):
			log.Error("Failed to initialize GL", "err", err)
		default:
			log.Error("Setup failed", "err", err)
		}
		return ExitSetupFailure
	}
	defer surface.Close()

	first := loadProgram(backend, log, cfg.VertexShaderPath, cfg.FragmentShaderPathA)
	second := loadProgram(backend, log, cfg.VertexShaderPath, cfg.FragmentShaderPathB)
	backend.UploadVertices(scene.Vertices())
	backend.EnableBlending()
	defer func() {
		backend.Release()
		backend.DeleteProgram(first)
		backend.DeleteProgram(second)
	}()

	path := camera.New()
	renderer := scene.NewRenderer(backend, first, second)
	stats := debug.New(nil)
	stats.SetShowFPS(cfg.ShowFPS)

	log.Info("render loop started", "width", cfg.Window.Width, "height", cfg.Window.Height)
	frames, err := graphics.Run(ctx, surface,
		func() {
			backend.Clear()
			renderer.Draw(path.Eye())
			path.Step()
		},
		func() {
			if text, ok := stats.Tick(); ok {
				surface.SetTitle(cfg.Window.Title + " | " + text)
			}
		},
	)
	if err != nil {
		log.Info("render loop cancelled", "reason", err)
	}
	log.Info("render loop finished", "frames", frames, "iteration", path.Iteration())
	return ExitOK
}

// loadProgram logs a failed build and returns the zero Program so that triangle is skipped.
func loadProgram(b Backend, log *logger.Logger, vertexPath, fragmentPath string) scene.Program {
	p, err := b.LoadProgram(vertexPath, fragmentPath)
	if err != nil {
		log.Warn("shader program unavailable", "vertex", vertexPath, "fragment", fragmentPath, "err", err)
		return scene.Program{}
	}
	return p
}
