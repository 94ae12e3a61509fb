package main

import (
	"context"
	"os"
	"os/signal"
	"runtime"

	"triangles/internal/app"
	"triangles/internal/config"
	"triangles/internal/graphics"
	"triangles/internal/logger"
	"triangles/internal/platform"
)

func init() {
	// GLFW and GL calls must stay on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, cfgErr := config.Load(config.Path)
	log := logger.New(cfg.LogPath, os.Stderr)
	if cfgErr != nil {
		log.Warn("using default config", "path", config.Path, "err", cfgErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	code := app.Run(ctx, cfg, open, log)
	if code != app.ExitOK {
		waitForKey(os.Stdin, os.Stderr)
	}
	return code
}

func open(cfg config.Window) (graphics.Surface, app.Backend, error) {
	w, err := platform.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return w, platform.NewGL(), nil
}
