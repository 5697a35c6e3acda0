package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/minimap/component"
	"github.com/milk9111/minimap/system"
)

// Minimap is the scaled overview in the top-right corner. The panel is
// wider than the space left of the screen edge and is clipped there.
type Minimap struct {
	Panel component.Rect
	Scale float64
}

func DefaultMinimap() Minimap {
	return Minimap{
		Panel: component.Rect{X: 600, Y: 10, W: 250, H: 150},
		Scale: 0.2,
	}
}

// Project maps a world rectangle onto the minimap panel. Each coordinate is
// scaled and truncated independently.
func (m Minimap) Project(r component.Rect) component.Rect {
	return r.Scale(m.Scale, m.Scale).Translate(m.Panel.X, m.Panel.Y)
}

var (
	minimapBackground = color.RGBA{R: 0x10, G: 0x18, B: 0x20, A: 0xc0}
	minimapBorder     = colornames.Lightgrey
)

// Draw renders the panel with icons for the platform, coin, obstacle and
// player. Inactive entities are left out.
func (m Minimap) Draw(screen *ebiten.Image, w *system.World) {
	p := m.Panel
	vector.FillRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), minimapBackground, false)
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), 1, minimapBorder, false)

	if w.Platform.Active {
		m.icon(screen, w.Platform.Rect, colornames.Saddlebrown)
	}
	if w.Coin.Active {
		m.icon(screen, w.Coin.Rect, colornames.Gold)
	}
	if w.Obstacle.Active {
		m.icon(screen, w.Obstacle.Rect, colornames.Steelblue)
	}
	m.icon(screen, w.Player.Rect, colornames.Crimson)
}

func (m Minimap) icon(screen *ebiten.Image, r component.Rect, c color.Color) {
	pr := m.Project(r)
	if pr.W < 1 {
		pr.W = 1
	}
	if pr.H < 1 {
		pr.H = 1
	}
	vector.FillRect(screen, float32(pr.X), float32(pr.Y), float32(pr.W), float32(pr.H), c, false)
}
