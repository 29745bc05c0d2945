package gui

import (
	"context"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"github.com/appengine-ltd/toybox/internal/ctxlog"
	"github.com/appengine-ltd/toybox/internal/pointer"
	"github.com/appengine-ltd/toybox/internal/runner"
	uitheme "github.com/appengine-ltd/toybox/internal/ui/theme"
)

// Ground slab under the track, in world units.
var (
	groundCenter = rl.NewVector3(0, -0.05, -10)
	groundSize   = rl.NewVector3(10, 0.1, 60)
)

// bootProbes logs each startup milestone once, with the time since launch.
type bootProbes struct {
	start      time.Time
	firstTick  bool
	firstSpawn bool
}

func (b *bootProbes) mark(log *slog.Logger, seen *bool, msg string) {
	if *seen {
		return
	}
	*seen = true
	log.Info(msg, "elapsed", time.Since(b.start))
}

type RunnerScene struct {
	world   *runner.World
	tracker *pointer.Tracker
	queue   *pointer.Queue
	camera  rl.Camera3D
	boot    bootProbes
	round   uuid.UUID
	log     *slog.Logger
}

// NewRunnerScene builds the lane runner. A zero seed seeds from the clock.
func NewRunnerScene(t runner.Tuning, seed int64) *RunnerScene {
	return &RunnerScene{
		world:   runner.NewWorld(t, seed),
		tracker: pointer.NewTracker(),
		queue:   pointer.NewQueue(0),
		camera:  runnerCamera(),
		boot:    bootProbes{start: time.Now()},
	}
}

func runnerCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(0, 6, 8),
		Target:     rl.NewVector3(0, 0.5, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func (s *RunnerScene) Load(ctx context.Context) error {
	s.log = ctxlog.FromContext(ctx).With("app", "runner")
	s.log.Info("setup done", "state", s.world.State, "elapsed", time.Since(s.boot.start))
	return nil
}

func (s *RunnerScene) Update(ctx context.Context, dt float64) {
	pollPointer(s.tracker, s.queue)
	in := runner.Input{
		Primary:   primaryPressed(),
		StepLeft:  stepLeftPressed(),
		StepRight: stepRightPressed(),
		Touches:   s.queue.Drain(),
	}
	events := s.world.Step(in, dt)
	s.boot.mark(s.log, &s.boot.firstTick, "first update tick")
	s.logEvents(events)
}

func (s *RunnerScene) logEvents(events []runner.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case runner.EventTransition:
			if ev.To == runner.Playing {
				s.round = uuid.New()
			}
			s.log.Info("state change", "from", ev.From, "to", ev.To, "round", s.round)
		case runner.EventSpawn:
			s.boot.mark(s.log, &s.boot.firstSpawn, "first obstacle spawned")
			s.log.Debug("obstacle spawned", "id", ev.Obstacle, "x", ev.X, "round", s.round)
		case runner.EventDespawn:
			s.log.Debug("obstacle despawned", "id", ev.Obstacle, "round", s.round)
		case runner.EventHit:
			s.log.Info("round over", "round", s.round, "obstacle", ev.Obstacle,
				"score", int(ev.Score.Value), "best", int(ev.Score.Best))
		}
	}
}

func (s *RunnerScene) Draw(width, height int32) {
	rl.ClearBackground(uitheme.BG)

	rl.BeginMode3D(s.camera)
	w := s.world
	if w.Ground {
		rl.DrawCubeV(groundCenter, groundSize, uitheme.Ground)
	}
	for _, o := range w.Obstacles {
		drawBox(o.X, o.Z, w.Tuning.ObstacleSize, uitheme.Obstacle)
	}
	if p := w.Player; p != nil {
		drawBox(p.X, p.Z, w.Tuning.PlayerSize, uitheme.Player)
	}
	rl.EndMode3D()

	for _, p := range w.Panels {
		switch p.Kind {
		case runner.PanelMenu:
			uitheme.DrawCenteredText(p.Text, width, height, uitheme.Type.Title, uitheme.TextPrimary, false, uitheme.PanelStandard)
			uitheme.DrawHintText("Space/click to start · arrows or drag to steer", height)
		case runner.PanelHUD:
			uitheme.DrawHUDText(p.Text)
		case runner.PanelGameOver:
			uitheme.DrawCenteredText(p.Text, width, height, uitheme.Type.Header, uitheme.TextPrimary, true, uitheme.PanelDanger)
		}
	}
}

// drawBox draws a box resting on the ground plane at (x, z).
func drawBox(x, z float64, size runner.Size, clr rl.Color) {
	pos := rl.NewVector3(float32(x), float32(size.Y*0.5), float32(z))
	rl.DrawCube(pos, float32(size.X), float32(size.Y), float32(size.Z), clr)
}

func (s *RunnerScene) Unload() {
	s.queue.Drain()
}
