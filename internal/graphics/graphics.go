package graphics

import (
	"context"
	"errors"
)

var (
	// ErrSurfaceCreation is returned when the window or its GL context cannot be created.
	ErrSurfaceCreation = errors.New("surface creation failed")
	// ErrExtensionLoad is returned when GL function pointers cannot be loaded.
	ErrExtensionLoad = errors.New("GL extension loading failed")
)

// Surface is the presentation side of a window: it shows finished frames and reports
// the two termination conditions.
type Surface interface {
	// Present swaps buffers (blocking on vsync when enabled) and polls input events.
	Present()
	// ExitRequested reports whether the exit key is pressed.
	ExitRequested() bool
	// ShouldClose reports whether the window was asked to close.
	ShouldClose() bool
	SetTitle(title string)
	Close()
}

// Run drives the frame loop on the calling goroutine. Each iteration it calls frame, presents,
// then calls after (e.g. stats), and stops once the exit key is down or the window is closing.
// The checks run after presentation, so frame always runs at least once. It returns the number
// of frames drawn and ctx.Err() if the context ended the loop.
func Run(ctx context.Context, s Surface, frame, after func()) (int, error) {
	frames := 0
	for {
		frame()
		s.Present()
		frames++
		if after != nil {
			after()
		}

		if s.ExitRequested() || s.ShouldClose() {
			return frames, nil
		}
		if err := ctx.Err(); err != nil {
			return frames, err
		}
	}
}
