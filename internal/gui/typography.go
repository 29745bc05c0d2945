package gui

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"

	uitheme "github.com/appengine-ltd/toybox/internal/ui/theme"
)

// fontLoadSize is the rasterisation size; larger HUD text is scaled down
// from it rather than up.
const fontLoadSize = 48

// typography is the loaded UI font. A zero font falls back to raylib's
// built-in bitmap font.
type typography struct {
	font  rl.Font
	owned bool
}

func defaultFontCandidates() []string {
	return []string{
		filepath.Join("assets", "fonts", "Inter-Bold.ttf"),
		filepath.Join("assets", "fonts", "Inter-Regular.ttf"),
		filepath.Join("assets", "fonts", "NotoSans-Regular.ttf"),
	}
}

func loadTypography(candidates []string) *typography {
	t := &typography{}
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		f := rl.LoadFontEx(path, fontLoadSize, nil, 0)
		if f.Texture.ID == 0 {
			continue
		}
		rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
		t.font = f
		t.owned = true
		break
	}
	uitheme.SetTextRenderer(t.draw, t.measure)
	return t
}

func (t *typography) unload() {
	if t.owned && t.font.Texture.ID != 0 {
		rl.UnloadFont(t.font)
	}
	*t = typography{}
	uitheme.SetTextRenderer(t.draw, t.measure)
}

func (t *typography) draw(text string, x, y, fontSize int32, clr rl.Color) {
	if t.font.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(t.font, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

func (t *typography) measure(text string, fontSize int32) int32 {
	if t.font.Texture.ID == 0 {
		return rl.MeasureText(text, fontSize)
	}
	return int32(math.Round(float64(rl.MeasureTextEx(t.font, text, float32(fontSize), 1).X)))
}
