//go:build cgo

package main

import (
	"context"
	"fmt"

	"github.com/appengine-ltd/toybox/internal/config"
	"github.com/appengine-ltd/toybox/internal/gui"
	"github.com/appengine-ltd/toybox/internal/launcher"
)

func launchGraphical(ctx context.Context, app launcher.App, cfg config.Config) error {
	window := gui.NewApp(gui.AppConfig{
		Version:   version,
		Commit:    commit,
		BuildDate: date,
		Title:     app.Title,
		Width:     int32(cfg.Window.Width),
		Height:    int32(cfg.Window.Height),
		FPS:       int32(cfg.Window.FPS),
		MSAA:      cfg.Window.MSAA,
	})

	var scene gui.Scene
	switch app.ID {
	case launcher.AppRunner:
		scene = gui.NewRunnerScene(cfg.RunnerTuning(), cfg.Runner.Seed)
	case launcher.AppCube:
		scene = gui.NewCubeScene(cfg.CubeTuning())
	default:
		return fmt.Errorf("no window scene for %q", app.ID)
	}
	return window.Run(ctx, scene)
}
