package pointer

// Sink accepts pointer events from whoever samples the host runtime.
type Sink interface {
	Enqueue(Event)
}

// Queue buffers events between sampling and the frame update that drains
// them.
type Queue struct {
	ch chan Event
}

func NewQueue(size int) *Queue {
	if size < 1 {
		size = 32
	}
	return &Queue{ch: make(chan Event, size)}
}

func (q *Queue) Enqueue(ev Event) {
	if q == nil {
		return
	}
	select {
	case q.ch <- ev:
	default:
		// Saturated: drop, pointer input is non-critical.
	}
}

// Drain empties the queue. Each event is returned exactly once.
func (q *Queue) Drain() []Event {
	if q == nil {
		return nil
	}
	var out []Event
	for {
		select {
		case ev := <-q.ch:
			out = append(out, ev)
		default:
			return out
		}
	}
}
