package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/milk9111/minimap/assets"
	"github.com/milk9111/minimap/component"
	"github.com/milk9111/minimap/levels"
	"github.com/milk9111/minimap/prefabs"
	"github.com/milk9111/minimap/system"
)

const (
	PlatformImage = "platform.png"
	ObstacleImage = "obstacle.png"
)

type backdrop struct {
	sky, city, ground *ebiten.Image
	parallax          float64
}

// Scene draws a world: backgrounds, entities, the player, then the
// minimap and HUD on top.
type Scene struct {
	Debug bool

	table     *levels.Table
	backdrops []backdrop

	player    *ebiten.Image
	coin      *ebiten.Image
	coinSheet component.SpriteSheet
	platform  *ebiten.Image
	obstacle  *ebiten.Image

	glow    color.Color
	glowPad int

	minimap Minimap
	hud     *HUD
}

func NewScene(lib *assets.Library, table *levels.Table, player *prefabs.PlayerSpec, coin *prefabs.CoinSpec) (*Scene, error) {
	s := &Scene{
		table:   table,
		glow:    coin.GlowColor.Color,
		glowPad: coin.GlowPad,
		minimap: DefaultMinimap(),
		hud:     NewHUD(table.Screen.Height),
	}
	if s.glow == nil {
		s.glow = color.RGBA{R: 255, G: 223, B: 0, A: 100}
	}

	sw, sh := table.Screen.Width, table.Screen.Height
	groundH := sh - table.GroundLevel
	for i, d := range table.Levels {
		bg := d.Background
		sky, err := lib.Load(bg.Sky, assets.Block(sw, sh, ParseHexColor(bg.SkyColor, colornames.Skyblue)), nil)
		if err != nil {
			return nil, fmt.Errorf("render: level %d sky: %w", i, err)
		}
		city, err := lib.Load(bg.City, assets.Skyline(sw, table.GroundLevel, ParseHexColor(bg.CityColor, colornames.Slategray)), nil)
		if err != nil {
			return nil, fmt.Errorf("render: level %d city: %w", i, err)
		}
		ground, err := lib.Load(bg.Ground, assets.Block(sw, groundH, ParseHexColor(bg.GroundColor, colornames.Saddlebrown)), nil)
		if err != nil {
			return nil, fmt.Errorf("render: level %d ground: %w", i, err)
		}
		s.backdrops = append(s.backdrops, backdrop{sky: sky, city: city, ground: ground, parallax: bg.Parallax})
	}

	if err := s.SetPlayer(lib, player); err != nil {
		return nil, err
	}

	frames := 1
	if len(coin.Animation.Rows) > 0 {
		frames = max(coin.Animation.Rows[0].FrameCount, 1)
	}
	s.coinSheet = component.SpriteSheet{
		Width:  coin.Sprite.Width,
		Height: coin.Sprite.Height,
		Rows:   []component.SheetRow{{Frames: frames}},
	}
	var err error
	s.coin, err = lib.Load(coin.Sprite.Image,
		assets.CoinSheet(coin.Sprite.Width, coin.Sprite.Height, frames, coin.Sprite.Placeholder.Color),
		coin.Sprite.ColorKey.Color)
	if err != nil {
		return nil, fmt.Errorf("render: coin: %w", err)
	}
	// entity sizes vary per level; placeholders are stretched to fit
	s.platform, err = lib.Load(PlatformImage, assets.Block(4, 4, colornames.Saddlebrown), nil)
	if err != nil {
		return nil, fmt.Errorf("render: platform: %w", err)
	}
	s.obstacle, err = lib.Load(ObstacleImage, assets.Block(4, 4, colornames.Steelblue), nil)
	if err != nil {
		return nil, fmt.Errorf("render: obstacle: %w", err)
	}
	return s, nil
}

// SetPlayer reloads the player sheet, e.g. after its prefab changed.
func (s *Scene) SetPlayer(lib *assets.Library, spec *prefabs.PlayerSpec) error {
	cols := 1
	for _, r := range spec.Animation.Rows {
		cols = max(cols, r.FrameCount)
	}
	img, err := lib.Load(spec.Sprite.Image,
		assets.PlaceholderSheet(spec.Sprite.Width, spec.Sprite.Height, cols, max(len(spec.Animation.Rows), 1), spec.Sprite.Placeholder.Color),
		spec.Sprite.ColorKey.Color)
	if err != nil {
		return fmt.Errorf("render: player sheet: %w", err)
	}
	s.player = img
	return nil
}

func (s *Scene) Draw(screen *ebiten.Image, w *system.World) {
	s.drawBackdrop(screen, w)

	if w.Platform.Active {
		drawStretched(screen, s.platform, w.Platform.Rect)
	}
	if w.Coin.Active {
		DrawSprite(screen, s.coin, s.coinSheet.FrameRect(0, w.Coin.Frame), w.Coin.Rect, false)
	}
	if w.Obstacle.Active {
		drawStretched(screen, s.obstacle, w.Obstacle.Rect)
	}
	if w.Flashing() {
		g := w.Coin.Inflate(s.glowPad)
		vector.FillRect(screen, float32(g.X), float32(g.Y), float32(g.W), float32(g.H), s.glow, false)
	}

	DrawSprite(screen, s.player, w.Source, w.Player.Rect, !w.Player.FacingRight)

	if s.Debug {
		s.drawDebug(screen, w)
	}

	s.minimap.Draw(screen, w)
	s.hud.Draw(screen, w)
}

func (s *Scene) drawBackdrop(screen *ebiten.Image, w *system.World) {
	if w.Level < 0 || w.Level >= len(s.backdrops) {
		screen.Fill(colornames.Black)
		return
	}
	b := s.backdrops[w.Level]
	DrawImageAt(screen, b.sky, 0, 0)

	width := s.table.Screen.Width
	off := 0
	if b.parallax > 0 && width > 0 {
		off = -(int(float64(w.Player.X)*b.parallax) % width)
	}
	DrawImageAt(screen, b.city, float64(off), 0)
	if off != 0 {
		DrawImageAt(screen, b.city, float64(off+width), 0)
	}

	DrawImageAt(screen, b.ground, 0, float64(s.table.GroundLevel))
}

func (s *Scene) drawDebug(screen *ebiten.Image, w *system.World) {
	stroke := func(r component.Rect, c color.Color) {
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, c, false)
	}
	stroke(w.Player.Rect, colornames.Red)
	stroke(w.Platform.Rect, colornames.Lime)
	stroke(w.Obstacle.Rect, colornames.Lime)
	if o := w.Obstacle; o.Active {
		vector.StrokeLine(screen, float32(o.LeftLimit), float32(o.Bottom()), float32(o.RightLimit), float32(o.Bottom()), 1, colornames.Yellow, false)
	}
	for _, tr := range w.Table.Level(w.Level).Triggers {
		stroke(tr.Rect, colornames.Cyan)
	}
	s.hud.Text(screen, fmt.Sprintf("level %d  %s  vy=%d  tps=%.0f", w.Level, w.Player.State, w.Player.VelocityY, ebiten.ActualTPS()), 10, 60)
}

func drawStretched(screen, img *ebiten.Image, r component.Rect) {
	if img == nil || r.Empty() {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.W)/float64(b.Dx()), float64(r.H)/float64(b.Dy()))
	op.GeoM.Translate(float64(r.X), float64(r.Y))
	screen.DrawImage(img, op)
}
