package runner

// Defaults for the lane runner. World units; z grows toward the camera.
const (
	// TrackHalfX bounds the player's lateral position.
	TrackHalfX       = 4.2
	PlayerZ          = 0.0
	ObstacleStartZ   = -25.0
	ObstacleDespawnZ = 7.0
	// ObstacleSpeed is in units/sec toward the camera.
	ObstacleSpeed = 8.0
	// SpawnEvery is in seconds.
	SpawnEvery = 0.9
	// DragXPerPx is world units per horizontal pixel of drag.
	DragXPerPx = 0.02
	// PlayerLerpSpeed is units/sec the player closes on target-x.
	PlayerLerpSpeed = 12.0
	// KeyStepX is the target-x change per key press.
	KeyStepX       = 0.9
	ScorePerSecond = 10.0
	// HitSlack shrinks the overlap box so grazes do not count.
	HitSlack = 0.8
)

// Size is a box extent in world units.
type Size struct {
	X, Y, Z float64
}

var (
	PlayerSize   = Size{X: 0.8, Y: 0.8, Z: 0.8}
	ObstacleSize = Size{X: 0.8, Y: 0.8, Z: 0.8}
)

type Tuning struct {
	TrackHalfX       float64
	PlayerZ          float64
	PlayerSize       Size
	ObstacleSize     Size
	ObstacleStartZ   float64
	ObstacleDespawnZ float64
	ObstacleSpeed    float64
	SpawnEvery       float64
	DragXPerPx       float64
	PlayerLerpSpeed  float64
	KeyStepX         float64
	ScorePerSecond   float64
	HitSlack         float64
}

func DefaultTuning() Tuning {
	return Tuning{
		TrackHalfX:       TrackHalfX,
		PlayerZ:          PlayerZ,
		PlayerSize:       PlayerSize,
		ObstacleSize:     ObstacleSize,
		ObstacleStartZ:   ObstacleStartZ,
		ObstacleDespawnZ: ObstacleDespawnZ,
		ObstacleSpeed:    ObstacleSpeed,
		SpawnEvery:       SpawnEvery,
		DragXPerPx:       DragXPerPx,
		PlayerLerpSpeed:  PlayerLerpSpeed,
		KeyStepX:         KeyStepX,
		ScorePerSecond:   ScorePerSecond,
		HitSlack:         HitSlack,
	}
}

// hitHalfExtents returns the centre-distance thresholds on x and z below
// which player and obstacle overlap.
func (t Tuning) hitHalfExtents() (halfX, halfZ float64) {
	halfX = (t.PlayerSize.X + t.ObstacleSize.X) * 0.5 * t.HitSlack
	halfZ = (t.PlayerSize.Z + t.ObstacleSize.Z) * 0.5 * t.HitSlack
	return halfX, halfZ
}
