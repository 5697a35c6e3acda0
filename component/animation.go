package component

import "time"

// Sprite sheet rows used by the player.
const (
	RowWalk = 0
	RowJump = 1
)

// SheetRow describes one animation row of a sprite sheet.
type SheetRow struct {
	Frames  int
	Cadence time.Duration
}

// SpriteSheet is a grid of frames. Every row spans the full sheet width, so
// a row's frame width is Width divided by that row's frame count. Rows are
// evenly split over Height.
//
// Mirroring is a draw-time concern; the sheet itself is only ever stored
// facing right.
type SpriteSheet struct {
	Width  int
	Height int
	Rows   []SheetRow
}

// Frames returns the frame count of row, never less than 1.
func (s SpriteSheet) Frames(row int) int {
	if row < 0 || row >= len(s.Rows) || s.Rows[row].Frames < 1 {
		return 1
	}
	return s.Rows[row].Frames
}

// Cadence returns how long a frame of row stays on screen.
func (s SpriteSheet) Cadence(row int) time.Duration {
	if row < 0 || row >= len(s.Rows) {
		return 0
	}
	return s.Rows[row].Cadence
}

// FrameRect returns the source rectangle of frame in row. frame wraps
// modulo the row's frame count.
func (s SpriteSheet) FrameRect(row, frame int) Rect {
	rows := len(s.Rows)
	if rows < 1 {
		rows = 1
	}
	if row < 0 {
		row = 0
	}
	frames := s.Frames(row)
	frame %= frames
	if frame < 0 {
		frame += frames
	}
	fw := s.Width / frames
	fh := s.Height / rows
	return Rect{X: frame * fw, Y: row * fh, W: fw, H: fh}
}

// FrameSize is the size of the first walk frame, used for the body AABB.
func (s SpriteSheet) FrameSize() (int, int) {
	r := s.FrameRect(RowWalk, 0)
	return r.W, r.H
}

// Ticker advances a frame index on a fixed cadence.
type Ticker struct {
	Frame int
	Last  time.Duration
}

// Advance moves to the next frame once more than cadence has elapsed since
// the last advance, wrapping at frames. It reports whether the frame changed.
func (t *Ticker) Advance(now, cadence time.Duration, frames int) bool {
	if frames < 1 {
		frames = 1
	}
	if now-t.Last <= cadence {
		return false
	}
	t.Frame = (t.Frame + 1) % frames
	t.Last = now
	return true
}
