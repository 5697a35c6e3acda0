// Command spsa previews the player sprite sheet: each animation row plays at
// its configured cadence, mirrored or not.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/minimap/assets"
	"github.com/milk9111/minimap/component"
	"github.com/milk9111/minimap/prefabs"
	"github.com/milk9111/minimap/render"
	"github.com/milk9111/minimap/system"
)

const (
	viewSize = 512
	zoom     = 4
)

type previewGame struct {
	sheetImg *ebiten.Image
	sheet    component.SpriteSheet
	names    []string

	row    int
	mirror bool
	ticker component.Ticker
	ticks  int64
}

func (g *previewGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.row = (g.row + 1) % max(len(g.sheet.Rows), 1)
		g.ticker = component.Ticker{Last: g.now()}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.mirror = !g.mirror
	}
	g.ticks++
	g.ticker.Advance(g.now(), g.sheet.Cadence(g.row), g.sheet.Frames(g.row))
	return nil
}

func (g *previewGame) now() time.Duration {
	return time.Duration(g.ticks) * time.Second / time.Duration(ebiten.DefaultTPS)
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x20, 0xff})
	src := g.sheet.FrameRect(g.row, g.ticker.Frame)
	w, h := src.W*zoom, src.H*zoom
	dst := component.Rect{X: (viewSize - w) / 2, Y: (viewSize - h) / 2, W: w, H: h}
	render.DrawSprite(screen, g.sheetImg, src, dst, g.mirror)

	name := fmt.Sprint(g.row)
	if g.row < len(g.names) {
		name = g.names[g.row]
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("row %s  frame %d/%d  cadence %v\nTab: next row  F: mirror",
		name, g.ticker.Frame+1, g.sheet.Frames(g.row), g.sheet.Cadence(g.row)))
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

func main() {
	assetsDir := flag.String("assets", "", "asset directory; placeholder art when empty")
	flag.Parse()

	spec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Fatal(err)
	}
	lib, err := assets.New(*assetsDir)
	if err != nil {
		log.Fatal(err)
	}
	cols := 1
	names := make([]string, 0, len(spec.Animation.Rows))
	for _, r := range spec.Animation.Rows {
		cols = max(cols, r.FrameCount)
		names = append(names, r.Name)
	}
	img, err := lib.Load(spec.Sprite.Image,
		assets.PlaceholderSheet(spec.Sprite.Width, spec.Sprite.Height, cols, max(len(spec.Animation.Rows), 1), spec.Sprite.Placeholder.Color),
		spec.Sprite.ColorKey.Color)
	if err != nil {
		log.Fatal(err)
	}

	g := &previewGame{
		sheetImg: img,
		sheet:    system.NewPlayerConfig(spec).Sheet,
		names:    names,
	}
	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("sprite sheet preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
