package platform

import (
	"fmt"

	"triangles/internal/config"
	"triangles/internal/graphics"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window owns the GLFW window and its current GL context. It must be used from the
// goroutine that created it, locked to its OS thread.
type Window struct {
	win *glfw.Window
}

// Open initialises GLFW, creates a window with a GL 3.3 core context, makes it current and
// loads the GL function pointers. Failures wrap graphics.ErrSurfaceCreation or
// graphics.ErrExtensionLoad; anything created before the failure is released.
func Open(cfg config.Window) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw.Init: %w", graphics.ErrSurfaceCreation, err)
	}

	glfw.WindowHint(glfw.Samples, cfg.Samples)
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: glfw.CreateWindow (a GL 3.3 capable GPU is required): %w", graphics.ErrSurfaceCreation, err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: gl.Init: %w", graphics.ErrExtensionLoad, err)
	}

	if cfg.VSyncEnabled() {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	// Sticky keys so an Escape press between two polls is not missed.
	win.SetInputMode(glfw.StickyKeysMode, glfw.True)

	return &Window{win: win}, nil
}

func (w *Window) Present() {
	w.win.SwapBuffers()
	glfw.PollEvents()
}

func (w *Window) ExitRequested() bool {
	return w.win.GetKey(glfw.KeyEscape) == glfw.Press
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SetTitle(title string) {
	w.win.SetTitle(title)
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	glfw.Terminate()
}
