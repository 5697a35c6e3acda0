package main

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/minimap/component"
	"github.com/milk9111/minimap/system"
)

// hudRows are reserved at the top of the terminal for the status line.
const hudRows = 1

var (
	styleSky      = tcell.StyleDefault.Background(tcell.ColorNavy)
	styleGround   = tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown).Background(tcell.ColorNavy)
	stylePlatform = tcell.StyleDefault.Foreground(tcell.ColorSandyBrown).Background(tcell.ColorNavy)
	styleCoin     = tcell.StyleDefault.Foreground(tcell.ColorGold).Background(tcell.ColorNavy).Bold(true)
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorSteelBlue).Background(tcell.ColorNavy)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorCrimson).Background(tcell.ColorNavy).Bold(true)
	styleTrigger  = tcell.StyleDefault.Foreground(tcell.ColorTeal).Background(tcell.ColorNavy)
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleGlow     = tcell.StyleDefault.Background(tcell.ColorOlive)
)

// cells maps world rectangles onto a cols×rows grid. Every non-empty
// rectangle covers at least one cell.
type cells struct {
	cols, rows int
	w, h       int
}

func (c cells) project(r component.Rect) (x0, y0, x1, y1 int) {
	if c.w <= 0 || c.h <= 0 {
		return 0, 0, 0, 0
	}
	x0 = r.X * c.cols / c.w
	y0 = r.Y * c.rows / c.h
	x1 = max(r.Right()*c.cols/c.w, x0+1)
	y1 = max(r.Bottom()*c.rows/c.h, y0+1)
	return x0, y0, x1, y1
}

func draw(screen tcell.Screen, w *system.World) {
	cols, rows := screen.Size()
	screen.Clear()
	grid := cells{cols: cols, rows: rows - hudRows, w: w.Table.Screen.Width, h: w.Table.Screen.Height}

	fill := func(r component.Rect, ch rune, style tcell.Style) {
		x0, y0, x1, y1 := grid.project(r)
		for y := max(y0, 0); y < min(y1, grid.rows); y++ {
			for x := max(x0, 0); x < min(x1, cols); x++ {
				screen.SetContent(x, y+hudRows, ch, nil, style)
			}
		}
	}

	fill(component.Rect{W: w.Table.Screen.Width, H: w.Table.Screen.Height}, ' ', styleSky)
	fill(component.Rect{Y: w.Table.GroundLevel, W: w.Table.Screen.Width, H: w.Table.Screen.Height - w.Table.GroundLevel}, '▒', styleGround)

	for _, tr := range w.Table.Level(w.Level).Triggers {
		fill(tr.Rect, '░', styleTrigger)
	}
	if w.Flashing() {
		fill(w.Coin.Inflate(10), ' ', styleGlow)
	}
	if w.Platform.Active {
		fill(w.Platform.Rect, '=', stylePlatform)
	}
	if w.Coin.Active {
		fill(w.Coin.Rect, coinGlyph(w.Coin.Frame), styleCoin)
	}
	if w.Obstacle.Active {
		fill(w.Obstacle.Rect, '#', styleObstacle)
	}
	glyph := '>'
	if !w.Player.FacingRight {
		glyph = '<'
	}
	fill(w.Player.Rect, glyph, stylePlayer)

	drawText(screen, 0, 0, status(w, 20), styleHUD)
	if tr, ok := w.ActiveTrigger(); ok && tr.Prompt != "" {
		x, y, _, _ := grid.project(tr.Rect)
		drawText(screen, max(x-len(tr.Prompt)/2, 0), max(y-1, 0)+hudRows, tr.Prompt, styleHUD)
	}
	drawText(screen, 0, rows-1, "S save | L load | E action | Q quit", styleHUD)
	screen.Show()
}

func coinGlyph(frame int) rune {
	return []rune{'O', '0', '|', '0'}[frame%4]
}

// status renders the HUD line with a health bar of width cells.
func status(w *system.World, width int) string {
	filled := int(w.Health.Fraction() * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("·", width-filled)
	return fmt.Sprintf("HP [%s]  Score: %d  Level: %d", bar, w.Score, w.Level+1)
}

func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
