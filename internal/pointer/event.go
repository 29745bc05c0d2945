// Package pointer turns per-frame pointer snapshots into touch-style events
// and tracks a single active drag.
package pointer

type Phase int

const (
	Started Phase = iota
	Moved
	Ended
	Canceled
)

func (p Phase) String() string {
	switch p {
	case Started:
		return "started"
	case Moved:
		return "moved"
	case Ended:
		return "ended"
	case Canceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// MouseID is the pseudo touch id used for left-button mouse drags.
const MouseID int64 = -1

type Event struct {
	ID    int64
	Phase Phase
	X     float64
	Y     float64
}

// Point is one contact as sampled from the host runtime this frame.
type Point struct {
	ID int64
	X  float64
	Y  float64
}
