package runner

import (
	"fmt"
	"math"
)

// stepPlaying runs the Playing systems in order. A hit ends the tick early.
func (w *World) stepPlaying(in Input, dragX, dt float64) {
	w.playerInput(in, dragX)
	w.movePlayer(dt)
	w.spawnObstacles(dt)
	w.moveObstacles(dt)
	if w.detectCollision() {
		return
	}
	w.advanceScore(dt)
	w.refreshHUD()
}

func (w *World) playerInput(in Input, dragX float64) {
	p := w.Player
	if p == nil {
		return
	}
	half := w.Tuning.TrackHalfX
	if in.StepLeft {
		p.TargetX = clamp(p.TargetX-w.Tuning.KeyStepX, -half, half)
	}
	if in.StepRight {
		p.TargetX = clamp(p.TargetX+w.Tuning.KeyStepX, -half, half)
	}
	if dragX != 0 {
		p.TargetX = clamp(p.TargetX+dragX*w.Tuning.DragXPerPx, -half, half)
	}
}

func (w *World) movePlayer(dt float64) {
	p := w.Player
	if p == nil {
		return
	}
	p.X = approach(p.X, p.TargetX, w.Tuning.PlayerLerpSpeed*dt)
}

// approach moves cur toward target by at most step, landing exactly on
// target once within reach.
func approach(cur, target, step float64) float64 {
	dx := target - cur
	switch {
	case math.Abs(dx) <= step:
		return target
	case dx > 0:
		return cur + step
	default:
		return cur - step
	}
}

func (w *World) spawnObstacles(dt float64) {
	if !w.spawn.Tick(dt) {
		return
	}
	half := w.Tuning.TrackHalfX
	w.nextID++
	o := Obstacle{
		ID: w.nextID,
		X:  uniform(w.rng, -half, half),
		Z:  w.Tuning.ObstacleStartZ,
	}
	w.Obstacles = append(w.Obstacles, o)
	w.emit(Event{Kind: EventSpawn, Obstacle: o.ID, X: o.X})
}

func (w *World) moveObstacles(dt float64) {
	kept := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		o.Z += w.Tuning.ObstacleSpeed * dt
		if o.Z > w.Tuning.ObstacleDespawnZ {
			w.emit(Event{Kind: EventDespawn, Obstacle: o.ID, X: o.X})
			continue
		}
		kept = append(kept, o)
	}
	w.Obstacles = kept
}

// detectCollision checks live obstacles in spawn order. The first overlap
// records the best score and requests GameOver.
func (w *World) detectCollision() bool {
	p := w.Player
	if p == nil {
		return false
	}
	halfX, halfZ := w.Tuning.hitHalfExtents()
	for _, o := range w.Obstacles {
		if !overlaps(p.X-o.X, p.Z-o.Z, halfX, halfZ) {
			continue
		}
		if w.Score.Value > w.Score.Best {
			w.Score.Best = w.Score.Value
		}
		w.emit(Event{Kind: EventHit, Obstacle: o.ID, X: o.X, Score: w.Score})
		w.request(GameOver)
		return true
	}
	return false
}

func overlaps(dx, dz, halfX, halfZ float64) bool {
	return math.Abs(dx) < halfX && math.Abs(dz) < halfZ
}

func (w *World) advanceScore(dt float64) {
	w.Score.Value += dt * w.Tuning.ScorePerSecond
}

func (w *World) refreshHUD() {
	text := hudText(w.Score.Value)
	if p, ok := w.Panel(PanelHUD); ok && p.Text != text {
		w.setPanelText(PanelHUD, text)
	}
}

func hudText(score float64) string {
	return fmt.Sprintf("Score: %d", int(score))
}

func gameOverText(s Score) string {
	return fmt.Sprintf("Game Over\nScore: %d  Best: %d\nTap to Restart", int(s.Value), int(s.Best))
}
