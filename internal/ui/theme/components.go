package theme

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	PaddingXS = float32(8)
	PaddingS  = float32(12)
	PaddingM  = float32(18)
	PaddingL  = float32(24)

	CornerRadius   = float32(0.12)
	CornerSegments = int32(8)
	BorderWidth    = float32(1.2)

	// HUDInset is the distance of the score readout from the top-left corner.
	HUDInset = int32(16)
)

type PanelVariant int

const (
	PanelStandard PanelVariant = iota
	PanelLifted
	PanelDanger
)

func DrawPanel(rect rl.Rectangle, variant PanelVariant) {
	fill := Panel
	stroke := Border

	switch variant {
	case PanelLifted:
		fill = PanelRaised
		stroke = mix(Border, Accent, 0.35)
	case PanelDanger:
		fill = PanelRaised
		stroke = mix(Border, Danger, 0.6)
	}

	rl.DrawRectangleRounded(rect, CornerRadius, CornerSegments, fill)
	rl.DrawRectangleRoundedLinesEx(rect, CornerRadius, CornerSegments, BorderWidth, stroke)
}

// Block is a laid out multi-line text block. Offsets are relative to the
// block's top-left corner.
type Block struct {
	Lines   []string
	Offsets []int32
	Width   int32
	Height  int32
	Size    int32
}

// LayoutBlock splits text on newlines and centres each line within the
// widest one.
func LayoutBlock(text string, size int32, measure TextMeasureFunc) Block {
	if measure == nil {
		measure = measureText
	}
	lines := strings.Split(text, "\n")
	widths := make([]int32, len(lines))
	b := Block{Lines: lines, Offsets: make([]int32, len(lines)), Size: size}
	for i, line := range lines {
		widths[i] = measure(line, size)
		if widths[i] > b.Width {
			b.Width = widths[i]
		}
	}
	for i := range lines {
		b.Offsets[i] = (b.Width - widths[i]) / 2
	}
	b.Height = int32(len(lines)) * LineHeight(size)
	return b
}

// CenterIn returns the top-left corner that centres a w×h box on screen.
func CenterIn(screenW, screenH, w, h int32) (x, y int32) {
	return (screenW - w) / 2, (screenH - h) / 2
}

// DrawCenteredText draws text in the middle of the screen, optionally on a
// panel.
func DrawCenteredText(text string, screenW, screenH, size int32, clr rl.Color, panel bool, variant PanelVariant) {
	if text == "" {
		return
	}
	b := LayoutBlock(text, size, nil)
	x, y := CenterIn(screenW, screenH, b.Width, b.Height)
	if panel {
		rect := rl.NewRectangle(
			float32(x)-PaddingL, float32(y)-PaddingM,
			float32(b.Width)+PaddingL*2, float32(b.Height)+PaddingM*2,
		)
		DrawPanel(rect, variant)
	}
	lh := LineHeight(size)
	for i, line := range b.Lines {
		drawText(line, x+b.Offsets[i], y+int32(i)*lh, size, clr)
	}
}

// DrawHUDText draws the top-left readout with a drop shadow.
func DrawHUDText(text string) {
	if text == "" {
		return
	}
	drawText(text, HUDInset+2, HUDInset+2, Type.Body, rl.Fade(rl.Black, 0.6))
	drawText(text, HUDInset, HUDInset, Type.Body, TextPrimary)
}

// DrawHintText draws a muted line anchored to the bottom-left corner.
func DrawHintText(text string, screenH int32) {
	if text == "" {
		return
	}
	drawText(text, HUDInset, screenH-HUDInset-Type.Small, Type.Small, TextMuted)
}

func mix(a, b rl.Color, t float32) rl.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	inv := 1.0 - t
	return rl.NewColor(
		uint8(float32(a.R)*inv+float32(b.R)*t),
		uint8(float32(a.G)*inv+float32(b.G)*t),
		uint8(float32(a.B)*inv+float32(b.B)*t),
		uint8(float32(a.A)*inv+float32(b.A)*t),
	)
}
