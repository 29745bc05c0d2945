package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/toybox/internal/pointer"
)

func anyKeyPressed(keys ...int32) bool {
	for _, k := range keys {
		if rl.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

// primaryPressed is the "advance" input: Space, Enter or a left click.
// New touches are reported separately through the pointer events.
func primaryPressed() bool {
	return anyKeyPressed(rl.KeySpace, rl.KeyEnter) || rl.IsMouseButtonPressed(rl.MouseButtonLeft)
}

func stepLeftPressed() bool {
	return anyKeyPressed(rl.KeyLeft, rl.KeyA)
}

func stepRightPressed() bool {
	return anyKeyPressed(rl.KeyRight, rl.KeyD)
}

func resetPressed() bool {
	return rl.IsKeyPressed(rl.KeyR)
}

// sampleContacts snapshots raylib touch points. With no touches the left
// mouse button stands in as contact pointer.MouseID.
func sampleContacts() []pointer.Point {
	n := rl.GetTouchPointCount()
	touches := make([]pointer.Point, 0, n)
	for i := int32(0); i < n; i++ {
		pos := rl.GetTouchPosition(i)
		touches = append(touches, pointer.Point{
			ID: int64(rl.GetTouchPointId(i)),
			X:  float64(pos.X),
			Y:  float64(pos.Y),
		})
	}
	mouse := rl.GetMousePosition()
	return mergeContacts(touches, rl.IsMouseButtonDown(rl.MouseButtonLeft), float64(mouse.X), float64(mouse.Y))
}

func mergeContacts(touches []pointer.Point, mouseDown bool, mx, my float64) []pointer.Point {
	if len(touches) > 0 || !mouseDown {
		return touches
	}
	return append(touches, pointer.Point{ID: pointer.MouseID, X: mx, Y: my})
}

// pollPointer diffs this frame's contacts into sink. Losing window focus
// cancels every contact.
func pollPointer(tracker *pointer.Tracker, sink pointer.Sink) {
	var events []pointer.Event
	if rl.IsWindowFocused() {
		events = tracker.Sample(sampleContacts())
	} else {
		events = tracker.Reset()
	}
	for _, ev := range events {
		sink.Enqueue(ev)
	}
}
