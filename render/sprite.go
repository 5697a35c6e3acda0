package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/minimap/component"
)

// DrawSprite draws the src region of sheet into the dst box, scaling to fit.
// With mirror set the frame is flipped horizontally around its own center.
func DrawSprite(screen, sheet *ebiten.Image, src, dst component.Rect, mirror bool) {
	if sheet == nil || src.Empty() || dst.Empty() {
		return
	}
	frame := sheet.SubImage(src.Image()).(*ebiten.Image)
	op := &ebiten.DrawImageOptions{}
	sx := float64(dst.W) / float64(src.W)
	sy := float64(dst.H) / float64(src.H)
	if mirror {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(src.W), 0)
	}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(float64(dst.X), float64(dst.Y))
	screen.DrawImage(frame, op)
}

// DrawImageAt draws img with its top-left corner at (x, y).
func DrawImageAt(screen, img *ebiten.Image, x, y float64) {
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}
