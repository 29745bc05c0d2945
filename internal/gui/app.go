// Package gui hosts the raylib demos. App owns the window and frame loop;
// a Scene owns one demo's state, input polling and drawing.
package gui

import (
	"context"
	"fmt"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/toybox/internal/ctxlog"
)

type AppConfig struct {
	Version   string
	Commit    string
	BuildDate string

	Title  string
	Width  int32
	Height int32
	FPS    int32
	MSAA   bool
}

type App struct {
	cfg AppConfig
}

func NewApp(cfg AppConfig) *App {
	if cfg.Width < 1 {
		cfg.Width = 1280
	}
	if cfg.Height < 1 {
		cfg.Height = 720
	}
	if cfg.FPS < 1 {
		cfg.FPS = 60
	}
	if cfg.Title == "" {
		cfg.Title = "toybox"
	}
	return &App{cfg: cfg}
}

// Scene is driven once per frame: Update with the frame time in seconds,
// then Draw inside BeginDrawing/EndDrawing.
type Scene interface {
	Load(ctx context.Context) error
	Update(ctx context.Context, dt float64)
	Draw(width, height int32)
	Unload()
}

// Run opens the window and drives scene until the window closes or ctx is
// cancelled.
func (a *App) Run(ctx context.Context, scene Scene) error {
	log := ctxlog.FromContext(ctx).With("window", a.cfg.Title)
	start := time.Now()

	var flags uint32 = rl.FlagWindowResizable
	if a.cfg.MSAA {
		flags |= rl.FlagMsaa4xHint
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(a.cfg.Width, a.cfg.Height, a.cfg.Title)
	defer rl.CloseWindow()
	rl.SetExitKey(0)
	rl.SetTargetFPS(a.cfg.FPS)

	fonts := loadTypography(defaultFontCandidates())
	defer fonts.unload()

	if err := scene.Load(ctx); err != nil {
		return fmt.Errorf("load %s: %w", a.cfg.Title, err)
	}
	defer scene.Unload()
	log.Info("window ready", "width", a.cfg.Width, "height", a.cfg.Height, "elapsed", time.Since(start))

	for !rl.WindowShouldClose() {
		select {
		case <-ctx.Done():
			log.Info("window closing", "reason", context.Cause(ctx))
			return nil
		default:
		}

		scene.Update(ctx, float64(rl.GetFrameTime()))

		rl.BeginDrawing()
		scene.Draw(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
		rl.EndDrawing()
	}
	log.Info("window closed")
	return nil
}
