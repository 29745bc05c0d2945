package theme

type Typography struct {
	Title      int32 // start prompt
	Header     int32 // game over card
	Body       int32 // score HUD
	Small      int32
	LineFactor float32
}

var Type = Typography{
	Title:      42,
	Header:     36,
	Body:       28,
	Small:      18,
	LineFactor: 1.25,
}

// LineHeight is the vertical advance for one line at size.
func LineHeight(size int32) int32 {
	if size < 1 {
		size = 1
	}
	return int32(float32(size)*Type.LineFactor + 0.5)
}
