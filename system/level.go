package system

import (
	"log"

	"github.com/milk9111/minimap/component"
	"github.com/milk9111/minimap/levels"
)

// LoadLevel rebuilds the platform, coin and obstacle from the level's
// descriptor. The player is left where it is.
func (w *World) LoadLevel(n int) {
	n = w.Table.Clamp(n)
	d := w.Table.Level(n)
	w.Level = n

	w.Platform = component.Platform{
		Rect:   d.Platform.Rect,
		Active: true,
		Bump:   d.Platform.Bump,
		Damage: d.Platform.Damage,
	}
	w.Coin = component.Coin{
		Rect:   d.Coin,
		Ticker: component.Ticker{Last: w.now},
		Active: !d.Coin.Empty() && !w.collected(n),
		Frames: w.Config.Coin.Frames,
	}
	w.Obstacle = component.Obstacle{
		Rect:       d.Obstacle.Rect,
		VelocityX:  d.Obstacle.Speed,
		LeftLimit:  d.Obstacle.LeftLimit,
		RightLimit: d.Obstacle.RightLimit,
		Active:     !d.Obstacle.Disabled,
		Bump:       d.Obstacle.Bump,
	}

	log.Printf("[level] loaded %d (%s)", n, d.Name)
	w.emit(EventLevelChanged)
}

// ActiveTrigger returns the first trigger of the current level the player
// is standing in.
func (w *World) ActiveTrigger() (levels.Trigger, bool) {
	for _, tr := range w.Table.Level(w.Level).Triggers {
		if w.Player.Overlaps(tr.Rect) {
			return tr, true
		}
	}
	return levels.Trigger{}, false
}

// TriggerAction fires the trigger under the player, if any.
func (w *World) TriggerAction() bool {
	tr, ok := w.ActiveTrigger()
	if !ok {
		return false
	}
	w.LoadLevel(tr.Target)
	b := &w.Player
	b.X = tr.Spawn.X
	if tr.Spawn.Y != nil {
		b.Y = *tr.Spawn.Y
	} else {
		b.Y = w.spawnY()
	}
	b.VelocityY = 0
	return true
}

// crossEdges moves to the neighbouring level when the player walks off a
// screen edge. The first and last levels, and edges flagged as blocked,
// act as walls.
func (w *World) crossEdges() {
	b := &w.Player
	width := w.Table.Screen.Width
	d := w.Table.Level(w.Level)

	switch {
	case b.Right() > width:
		if d.BlockRight || w.Level >= w.Table.Count()-1 {
			b.X = width - b.W
			return
		}
		w.LoadLevel(w.Level + 1)
		b.X = 0
	case b.X < 0:
		if d.BlockLeft || w.Level == 0 {
			b.X = 0
			return
		}
		w.LoadLevel(w.Level - 1)
		b.X = width - b.W
	}
}
