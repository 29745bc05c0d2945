package pointer

import "sort"

// Tracker diffs consecutive snapshots of active contacts into events.
type Tracker struct {
	last map[int64]Point
}

func NewTracker() *Tracker {
	return &Tracker{last: make(map[int64]Point)}
}

// Sample compares points against the previous frame. New ids start, ids
// that changed position move, ids that vanished end. Events are ordered
// by phase (ended first) and then by id so replay is deterministic.
func (t *Tracker) Sample(points []Point) []Event {
	if t.last == nil {
		t.last = make(map[int64]Point)
	}
	seen := make(map[int64]Point, len(points))
	for _, p := range points {
		seen[p.ID] = p
	}

	var ended, moved, started []Event
	for id, prev := range t.last {
		if _, ok := seen[id]; !ok {
			ended = append(ended, Event{ID: id, Phase: Ended, X: prev.X, Y: prev.Y})
		}
	}
	for id, p := range seen {
		prev, ok := t.last[id]
		switch {
		case !ok:
			started = append(started, Event{ID: id, Phase: Started, X: p.X, Y: p.Y})
		case prev.X != p.X || prev.Y != p.Y:
			moved = append(moved, Event{ID: id, Phase: Moved, X: p.X, Y: p.Y})
		}
	}
	t.last = seen

	sortByID(ended)
	sortByID(moved)
	sortByID(started)

	out := make([]Event, 0, len(ended)+len(moved)+len(started))
	out = append(out, ended...)
	out = append(out, moved...)
	out = append(out, started...)
	return out
}

// Reset cancels every tracked contact, e.g. when the window loses focus.
func (t *Tracker) Reset() []Event {
	out := make([]Event, 0, len(t.last))
	for id, p := range t.last {
		out = append(out, Event{ID: id, Phase: Canceled, X: p.X, Y: p.Y})
	}
	sortByID(out)
	t.last = make(map[int64]Point)
	return out
}

func sortByID(events []Event) {
	sort.Slice(events, func(i, j int) bool { return events[i].ID < events[j].ID })
}
