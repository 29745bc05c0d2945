// Package runner holds the lane runner gameplay: a three-state machine, an
// eased player, a timed obstacle spawner and an AABB collision check. It has
// no rendering or input-device code; a frontend feeds Input each tick and
// draws what the World holds.
package runner

import (
	"math"
	"math/rand/v2"

	"github.com/appengine-ltd/toybox/internal/pointer"
)

type World struct {
	Tuning Tuning

	State     GameState
	Player    *Player
	Obstacles []Obstacle
	Ground    bool
	Panels    []Panel
	Score     Score
	Tick      uint64

	spawn      SpawnTimer
	touch      pointer.Drag
	rng        *rand.Rand
	nextID     uint64
	pending    GameState
	hasPending bool
	events     []Event
}

// Input is everything the frontend observed during one frame.
type Input struct {
	// Primary is a just-pressed click, Space or Enter. A newly started touch
	// in Touches counts as primary as well.
	Primary   bool
	StepLeft  bool
	StepRight bool
	Touches   []pointer.Event
}

func (in Input) primary() bool {
	return in.Primary || pointer.AnyStarted(in.Touches)
}

// NewWorld returns a world already inside the Menu state.
func NewWorld(t Tuning, seed int64) *World {
	w := &World{
		Tuning: t,
		State:  Menu,
		spawn:  SpawnTimer{Every: t.SpawnEvery},
		rng:    seededRNG(seed),
	}
	w.enter(Menu)
	return w
}

// Step runs one tick. A transition requested during the previous tick is
// applied first, then the active state's systems run in declared order.
// The returned events describe what happened during the tick.
func (w *World) Step(in Input, dt float64) []Event {
	w.events = nil
	if dt < 0 {
		dt = 0
	}
	w.applyTransition()
	w.Tick++

	dragX, _ := w.touch.Apply(in.Touches)

	switch w.State {
	case Menu, GameOver:
		if in.primary() {
			w.request(Playing)
		}
	case Playing:
		w.stepPlaying(in, dragX, dt)
	}
	return w.events
}

// Pending reports the state that the next Step will switch to, if any.
func (w *World) Pending() (GameState, bool) {
	return w.pending, w.hasPending
}

// Panel returns the live panel of the given kind.
func (w *World) Panel(kind PanelKind) (Panel, bool) {
	for _, p := range w.Panels {
		if p.Kind == kind {
			return p, true
		}
	}
	return Panel{}, false
}

func (w *World) request(next GameState) {
	w.pending = next
	w.hasPending = true
}

func (w *World) applyTransition() {
	if !w.hasPending {
		return
	}
	next := w.pending
	w.hasPending = false
	if next == w.State {
		return
	}
	w.exit(w.State)
	prev := w.State
	w.State = next
	w.emit(Event{Kind: EventTransition, From: prev, To: next})
	w.enter(next)
}

func (w *World) enter(s GameState) {
	switch s {
	case Menu:
		w.addPanel(Panel{Kind: PanelMenu, Text: "Tap to Start"})
	case Playing:
		w.Score.Value = 0
		w.spawn.Every = w.Tuning.SpawnEvery
		w.spawn.Reset()
		w.Player = &Player{X: 0, Z: w.Tuning.PlayerZ, TargetX: 0}
		w.Ground = true
		w.addPanel(Panel{Kind: PanelHUD, Text: hudText(0)})
	case GameOver:
		w.addPanel(Panel{Kind: PanelGameOver, Text: gameOverText(w.Score)})
	}
}

func (w *World) exit(s GameState) {
	switch s {
	case Menu:
		w.removePanel(PanelMenu)
	case Playing:
		w.Player = nil
		w.Obstacles = nil
		w.Ground = false
		w.removePanel(PanelHUD)
	case GameOver:
		w.removePanel(PanelGameOver)
	}
}

func (w *World) addPanel(p Panel) {
	w.removePanel(p.Kind)
	w.Panels = append(w.Panels, p)
}

func (w *World) removePanel(kind PanelKind) {
	kept := w.Panels[:0]
	for _, p := range w.Panels {
		if p.Kind != kind {
			kept = append(kept, p)
		}
	}
	w.Panels = kept
}

func (w *World) setPanelText(kind PanelKind, text string) {
	for i := range w.Panels {
		if w.Panels[i].Kind == kind {
			w.Panels[i].Text = text
			return
		}
	}
}

func (w *World) emit(ev Event) {
	w.events = append(w.events, ev)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
