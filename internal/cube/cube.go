// Package cube is the state behind the spinning cube demo: drag to rotate,
// scroll to move the camera, release to let the spin settle back to idle.
package cube

import "math"

type Tuning struct {
	RotatePerPx   float64 // radians per pixel of drag
	MaxPitch      float64
	IdleSpin      float64 // radians/sec about the vertical axis
	SpinDamping   float64 // 1/sec decay toward idle spin after release
	ZoomPerNotch  float64
	MinDistance   float64
	MaxDistance   float64
	StartDistance float64
	StartPitch    float64
}

func DefaultTuning() Tuning {
	return Tuning{
		RotatePerPx:   0.01,
		MaxPitch:      1.4,
		IdleSpin:      0.6,
		SpinDamping:   3.0,
		ZoomPerNotch:  0.5,
		MinDistance:   2.5,
		MaxDistance:   12,
		StartDistance: 5,
		StartPitch:    0.35,
	}
}

type Input struct {
	Dragging bool
	DragX    float64 // pixels this frame
	DragY    float64
	Wheel    float64 // notches, positive zooms in
	Reset    bool
}

type State struct {
	Tuning Tuning

	Yaw      float64
	Pitch    float64
	Distance float64
	// Angular velocity in radians/sec.
	SpinYaw   float64
	SpinPitch float64
}

func New(t Tuning) *State {
	s := &State{Tuning: t}
	s.reset()
	return s
}

func (s *State) reset() {
	s.Yaw = 0
	s.Pitch = s.Tuning.StartPitch
	s.Distance = clamp(s.Tuning.StartDistance, s.Tuning.MinDistance, s.Tuning.MaxDistance)
	s.SpinYaw = s.Tuning.IdleSpin
	s.SpinPitch = 0
}

func (s *State) Step(in Input, dt float64) {
	if dt < 0 {
		dt = 0
	}
	if in.Reset {
		s.reset()
	}
	if in.Wheel != 0 {
		s.Distance = clamp(s.Distance-in.Wheel*s.Tuning.ZoomPerNotch, s.Tuning.MinDistance, s.Tuning.MaxDistance)
	}

	if in.Dragging {
		dYaw := in.DragX * s.Tuning.RotatePerPx
		dPitch := in.DragY * s.Tuning.RotatePerPx
		s.Yaw += dYaw
		clamped := s.setPitch(s.Pitch + dPitch)
		if dt > 0 {
			s.SpinYaw = dYaw / dt
			if !clamped {
				s.SpinPitch = dPitch / dt
			}
		}
	} else {
		k := math.Exp(-s.Tuning.SpinDamping * dt)
		s.SpinYaw = s.Tuning.IdleSpin + (s.SpinYaw-s.Tuning.IdleSpin)*k
		s.SpinPitch *= k
		s.Yaw += s.SpinYaw * dt
		s.setPitch(s.Pitch + s.SpinPitch*dt)
	}
	s.Yaw = math.Remainder(s.Yaw, 2*math.Pi)
}

// setPitch clamps p to the pitch limit. Hitting the limit kills the pitch
// spin and reports true.
func (s *State) setPitch(p float64) bool {
	limited := clamp(p, -s.Tuning.MaxPitch, s.Tuning.MaxPitch)
	s.Pitch = limited
	if limited != p {
		s.SpinPitch = 0
		return true
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
