package gui

import (
	"context"
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/toybox/internal/ctxlog"
	"github.com/appengine-ltd/toybox/internal/cube"
	"github.com/appengine-ltd/toybox/internal/pointer"
	uitheme "github.com/appengine-ltd/toybox/internal/ui/theme"
)

const cubeEdge = float32(1.5)

type CubeScene struct {
	state   *cube.State
	tracker *pointer.Tracker
	queue   *pointer.Queue
	drag    pointer.Drag
	model   rl.Model
	loaded  bool
	log     *slog.Logger
}

func NewCubeScene(t cube.Tuning) *CubeScene {
	return &CubeScene{
		state:   cube.New(t),
		tracker: pointer.NewTracker(),
		queue:   pointer.NewQueue(0),
	}
}

func (s *CubeScene) Load(ctx context.Context) error {
	s.log = ctxlog.FromContext(ctx).With("app", "cube")
	s.model = rl.LoadModelFromMesh(rl.GenMeshCube(cubeEdge, cubeEdge, cubeEdge))
	if s.model.MeshCount == 0 {
		return fmt.Errorf("cube mesh upload failed")
	}
	s.loaded = true
	s.log.Info("setup done", "distance", s.state.Distance)
	return nil
}

func (s *CubeScene) Update(ctx context.Context, dt float64) {
	pollPointer(s.tracker, s.queue)
	reset := resetPressed()
	if reset {
		// The contact that was rotating must lift before it can drag again.
		s.drag.Release()
		s.log.Info("view reset")
	}
	dx, dy := s.drag.Apply(s.queue.Drain())

	s.state.Step(cube.Input{
		Dragging: s.drag.Active(),
		DragX:    dx,
		DragY:    dy,
		Wheel:    float64(rl.GetMouseWheelMove()),
		Reset:    reset,
	}, dt)
}

func (s *CubeScene) camera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(0, 0, float32(s.state.Distance)),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func (s *CubeScene) Draw(width, height int32) {
	rl.ClearBackground(uitheme.BG)

	s.model.Transform = rl.MatrixRotateXYZ(rl.NewVector3(float32(s.state.Pitch), float32(s.state.Yaw), 0))
	rl.BeginMode3D(s.camera())
	rl.DrawModel(s.model, rl.NewVector3(0, 0, 0), 1, uitheme.Cube)
	rl.DrawModelWires(s.model, rl.NewVector3(0, 0, 0), 1.002, uitheme.CubeEdge)
	rl.EndMode3D()

	uitheme.DrawHintText("drag to spin · scroll to zoom · R to reset", height)
}

func (s *CubeScene) Unload() {
	if s.loaded {
		rl.UnloadModel(s.model)
		s.loaded = false
	}
}
