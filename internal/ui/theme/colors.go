package theme

import rl "github.com/gen2brain/raylib-go/raylib"

// Palette for the raylib demos. Scene colours match the lane runner's
// unlit materials.
var (
	BG          = rl.NewColor(0x1A, 0x1D, 0x24, 255) // #1A1D24
	Panel       = rl.NewColor(0x10, 0x12, 0x17, 200)
	PanelRaised = rl.NewColor(0x21, 0x26, 0x30, 220)
	Border      = rl.NewColor(0x3A, 0x44, 0x52, 255) // #3A4452
	TextPrimary = rl.White
	TextMuted   = rl.NewColor(0x9A, 0xA3, 0xAD, 255) // #9AA3AD
	Accent      = rl.NewColor(0x33, 0xE6, 0x4D, 255) // #33E64D
	Danger      = rl.NewColor(0xFF, 0x4D, 0x4D, 255) // #FF4D4D

	Player   = FromRGB(0.2, 0.9, 0.3)
	Obstacle = FromRGB(1.0, 0.3, 0.3)
	Ground   = FromRGB(0.12, 0.12, 0.16)
	Cube     = rl.NewColor(0x4D, 0x8C, 0xE6, 255) // #4D8CE6
	CubeEdge = rl.NewColor(0xE8, 0xEC, 0xF2, 255)
)

// FromRGB converts normalised sRGB components to an opaque colour.
func FromRGB(r, g, b float32) rl.Color {
	return rl.NewColor(unit(r), unit(g), unit(b), 255)
}

func unit(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
