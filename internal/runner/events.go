package runner

type EventKind int

const (
	EventTransition EventKind = iota
	EventSpawn
	EventDespawn
	EventHit
)

func (k EventKind) String() string {
	switch k {
	case EventTransition:
		return "transition"
	case EventSpawn:
		return "spawn"
	case EventDespawn:
		return "despawn"
	case EventHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Event is a notable thing that happened during a tick. Only the fields
// relevant to Kind are set.
type Event struct {
	Kind     EventKind
	From     GameState
	To       GameState
	Obstacle uint64
	X        float64
	Score    Score
}
