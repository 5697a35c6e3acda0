package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/minimap/common"
	"github.com/milk9111/minimap/component"
	"github.com/milk9111/minimap/system"
)

const hint = "Press S to Save | Press L to Load"

var (
	healthBack = color.RGBA{R: 100, G: 100, B: 100, A: 0xff}
	healthFore = color.RGBA{R: 200, G: 0, B: 0, A: 0xff}
	textColor  = color.White
)

// easeHealth moves shown a quarter of the way to target, snapping when close.
func easeHealth(shown, target float32) float32 {
	next := common.Lerp(shown, target, 0.25)
	if d := next - target; d < 0.005 && d > -0.005 {
		return target
	}
	return next
}

type HUD struct {
	face      ebtext.Face
	healthBar component.Rect
	height    int
	// shown eases toward the real health fraction so hits read as a drain
	shown float32
}

func NewHUD(screenHeight int) *HUD {
	return &HUD{
		face:      ebtext.NewGoXFace(basicfont.Face7x13),
		healthBar: component.Rect{X: 10, Y: 10, W: 200, H: 20},
		height:    screenHeight,
		shown:     1,
	}
}

func (h *HUD) Draw(screen *ebiten.Image, w *system.World) {
	bar := h.healthBar
	vector.FillRect(screen, float32(bar.X), float32(bar.Y), float32(bar.W), float32(bar.H), healthBack, false)
	h.shown = easeHealth(h.shown, float32(w.Health.Fraction()))
	fill := bar
	fill.W = int(h.shown * float32(bar.W))
	if fill.W > 0 {
		vector.FillRect(screen, float32(fill.X), float32(fill.Y), float32(fill.W), float32(fill.H), healthFore, false)
	}

	h.text(screen, fmt.Sprintf("Score: %d", w.Score), 10, 40)
	h.text(screen, hint, 10, float64(h.height-30))

	if tr, ok := w.ActiveTrigger(); ok && tr.Prompt != "" {
		h.text(screen, tr.Prompt, float64(tr.Rect.X-60), float64(tr.Rect.Y-24))
	}
}

// Text draws a line at (x, y) in the HUD font.
func (h *HUD) Text(screen *ebiten.Image, s string, x, y float64) {
	h.text(screen, s, x, y)
}

func (h *HUD) text(screen *ebiten.Image, s string, x, y float64) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(textColor)
	ebtext.Draw(screen, s, h.face, op)
}
