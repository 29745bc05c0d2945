package pointer

// Drag follows the first contact that starts while no other contact is
// active. The anchor moves with every Moved event so deltas are incremental.
type Drag struct {
	active  bool
	id      int64
	anchorX float64
	anchorY float64
}

// Apply consumes events and returns the summed pixel delta of the active
// contact.
func (d *Drag) Apply(events []Event) (dx, dy float64) {
	for _, ev := range events {
		switch ev.Phase {
		case Started:
			if !d.active {
				d.active = true
				d.id = ev.ID
				d.anchorX, d.anchorY = ev.X, ev.Y
			}
		case Moved:
			if d.active && d.id == ev.ID {
				dx += ev.X - d.anchorX
				dy += ev.Y - d.anchorY
				d.anchorX, d.anchorY = ev.X, ev.Y
			}
		case Ended, Canceled:
			if d.active && d.id == ev.ID {
				d.active = false
			}
		}
	}
	return dx, dy
}

func (d *Drag) Active() bool {
	return d.active
}

func (d *Drag) Release() {
	d.active = false
}

// AnyStarted reports whether a new contact began in events.
func AnyStarted(events []Event) bool {
	for _, ev := range events {
		if ev.Phase == Started {
			return true
		}
	}
	return false
}
