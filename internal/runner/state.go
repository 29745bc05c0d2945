package runner

import "math"

// GameState selects which systems run each tick.
type GameState int

const (
	Menu GameState = iota
	Playing
	GameOver
)

func (s GameState) String() string {
	switch s {
	case Menu:
		return "menu"
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

type Score struct {
	Value float64
	Best  float64
}

// SpawnTimer is a repeating countdown. It fires at most once per tick.
type SpawnTimer struct {
	Every   float64
	elapsed float64
}

func (t *SpawnTimer) Tick(dt float64) bool {
	if t.Every <= 0 || dt <= 0 {
		return false
	}
	t.elapsed += dt
	if t.elapsed < t.Every {
		return false
	}
	t.elapsed = math.Mod(t.elapsed, t.Every)
	return true
}

func (t *SpawnTimer) Reset() {
	t.elapsed = 0
}

type Player struct {
	X       float64
	Z       float64
	TargetX float64
}

type Obstacle struct {
	ID uint64
	X  float64
	Z  float64
}

type PanelKind int

const (
	PanelMenu PanelKind = iota
	PanelHUD
	PanelGameOver
)

// Panel is a piece of on-screen text owned by one state.
type Panel struct {
	Kind PanelKind
	Text string
}
