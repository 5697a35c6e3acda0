package system

import (
	"errors"
	"log"
	"time"

	"github.com/milk9111/minimap/component"
	"github.com/milk9111/minimap/levels"
	"github.com/milk9111/minimap/save"
)

// Event is something front-ends may want to react to (sound, UI).
type Event int

const (
	EventCoinCollected Event = iota
	EventLevelChanged
	EventHealthDepleted
	EventSaved
	EventLoaded
)

func (e Event) String() string {
	switch e {
	case EventCoinCollected:
		return "coin_collected"
	case EventLevelChanged:
		return "level_changed"
	case EventHealthDepleted:
		return "health_depleted"
	case EventSaved:
		return "saved"
	case EventLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// ErrNoStore is returned by Save and Load when the world has no store.
var ErrNoStore = errors.New("world: no save store")

// Store persists the single checkpoint slot.
type Store interface {
	Save(save.Record) error
	Load() (save.Record, error)
}

type Config struct {
	Player PlayerConfig
	Coin   CoinConfig
}

// World owns every entity and counter of a run. It is stepped once per
// frame by the front-end and is not safe for concurrent use.
type World struct {
	Config Config
	Table  *levels.Table

	Player    component.Body
	Platform  component.Platform
	Coin      component.Coin
	Obstacle  component.Obstacle
	Level     int
	Health    component.Health
	Score     int
	Collected []bool
	// Source is the sprite sheet frame to draw the player with.
	Source component.Rect

	now        time.Duration
	flashUntil time.Duration
	store      Store
	events     []Event
}

// NewWorld builds a world on the first level with the player at its spawn.
func NewWorld(cfg Config, table *levels.Table, store Store) *World {
	w := &World{
		Config:    cfg,
		Table:     table,
		Health:    component.NewHealth(table.MaxHealth),
		Collected: make([]bool, table.Count()),
		store:     store,
	}
	fw, fh := cfg.Player.Sheet.FrameSize()
	w.Player = component.Body{
		Rect:        component.Rect{W: fw, H: fh},
		FacingRight: true,
	}
	w.LoadLevel(0)
	w.Spawn()
	w.Source = cfg.Player.Sheet.FrameRect(component.RowWalk, 0)
	w.events = w.events[:0]
	return w
}

// Now is the time of the last step.
func (w *World) Now() time.Duration {
	return w.now
}

// Spawn puts the player at the level start, slightly above the ground.
func (w *World) Spawn() {
	b := &w.Player
	b.X = w.Config.Player.SpawnX
	b.Y = w.spawnY()
	b.VelocityY = 0
	b.Jumping = false
}

func (w *World) spawnY() int {
	return w.Table.GroundLevel - w.Player.H - w.Config.Player.SpawnLift
}

// SetPlayerConfig swaps the player tunables, resizing the body if the sheet
// layout changed.
func (w *World) SetPlayerConfig(cfg PlayerConfig) {
	w.Config.Player = cfg
	fw, fh := cfg.Sheet.FrameSize()
	w.Player.W, w.Player.H = fw, fh
}

// Step advances the simulation one frame.
func (w *World) Step(in Input, now time.Duration) {
	w.now = now
	if in.Action {
		w.TriggerAction()
	}
	w.stepPlayer(in, now)
	StepObstacle(&w.Obstacle)
	w.stepCoin(now)
}

func (w *World) stepPlayer(in Input, now time.Duration) {
	b := &w.Player
	cfg := w.Config.Player

	prevX := b.X
	MoveHorizontal(b, in, cfg.Speed)
	if w.Platform.Active && BlockedHorizontally(b.Rect, w.Platform.Rect) {
		b.X = prevX
	}

	if in.Jump {
		TryJump(b, cfg.JumpForce)
	}

	ApplyGravity(b, cfg.Gravity, cfg.MaxFallSpeed)
	b.Y += b.VelocityY

	if w.Platform.Active {
		c := Resolve(b, w.Platform.Rect)
		w.react(c, w.Platform.Bump, w.Platform.Damage)
	}

	if w.Health.Depleted() {
		w.recover()
		return
	}

	if w.Obstacle.Active {
		c := Resolve(b, w.Obstacle.Rect)
		w.react(c, w.Obstacle.Bump, 0)
		if c.Side == SideTop {
			// ride along
			b.X += w.Obstacle.VelocityX
		}
	}

	ClampToGround(b, w.Table.GroundLevel)
	w.crossEdges()

	b.State = DeriveState(b)
	w.Source = Animate(b, cfg.Sheet, now)

	ClampVertical(b, w.Table.Screen.Height)
}

// react applies the per-surface response to a contact: a push-back when
// walking into a side, and damage for side hits and landings.
func (w *World) react(c Contact, bump, damage int) {
	if c.Side == SideNone {
		return
	}
	b := &w.Player
	switch c.Side {
	case SideLeft:
		if b.Moving && b.FacingRight {
			b.X -= bump
		}
	case SideRight:
		if b.Moving && !b.FacingRight {
			b.X += bump
		}
	}
	if c.Side != SideBottom && damage > 0 {
		w.Health.Damage(damage)
	}
}

// recover refills health and rolls back to the checkpoint, or respawns at
// the level start when there is none.
func (w *World) recover() {
	w.emit(EventHealthDepleted)
	w.Health.Reset()
	if err := w.Load(); err != nil {
		w.LoadLevel(w.Level)
		w.Spawn()
	}
}

func (w *World) stepCoin(now time.Duration) {
	if !CollectCoin(&w.Coin, w.Player.Rect, w.Config.Coin, now) {
		return
	}
	w.Score++
	if w.Level < len(w.Collected) {
		w.Collected[w.Level] = true
	}
	w.flashUntil = now + w.Config.Coin.Flash
	log.Println("[pickup] coin collected")
	w.emit(EventCoinCollected)
}

// Flashing reports whether the pickup glow is still showing.
func (w *World) Flashing() bool {
	return !w.Coin.Active && w.now < w.flashUntil
}

func (w *World) collected(n int) bool {
	return n >= 0 && n < len(w.Collected) && w.Collected[n]
}

// Snapshot captures the persisted fields. Positions are narrowed to the
// save format's 16-bit range.
func (w *World) Snapshot() save.Record {
	collected := make([]bool, len(w.Collected))
	copy(collected, w.Collected)
	return save.Record{
		X:          int16(w.Player.X),
		Y:          int16(w.Player.Y),
		CoinActive: w.Coin.Active,
		Health:     w.Health.Current,
		Score:      w.Score,
		Level:      w.Level,
		Collected:  collected,
	}
}

// Restore applies a record. A stored health of zero or less comes back as
// full health so a bad slot cannot trap the player in a reload loop. The
// player starts the restored frame at rest.
func (w *World) Restore(r save.Record) {
	w.Player.X = int(r.X)
	w.Player.Y = int(r.Y)
	w.Player.VelocityY = 0
	w.Player.Jumping = false
	if r.Health <= 0 {
		w.Health.Reset()
	} else {
		w.Health.Set(r.Health)
	}
	w.Score = r.Score
	w.Collected = make([]bool, w.Table.Count())
	copy(w.Collected, r.Collected)
	w.LoadLevel(r.Level)
	w.Coin.Active = r.CoinActive
}

// Save writes the checkpoint.
func (w *World) Save() error {
	if w.store == nil {
		return ErrNoStore
	}
	if err := w.store.Save(w.Snapshot()); err != nil {
		log.Printf("[save] %v", err)
		return err
	}
	log.Println("[save] game saved")
	w.emit(EventSaved)
	return nil
}

// Load restores the checkpoint. On any error the world is left unchanged.
func (w *World) Load() error {
	if w.store == nil {
		return ErrNoStore
	}
	r, err := w.store.Load()
	if err != nil {
		log.Printf("[save] %v", err)
		return err
	}
	w.Restore(r)
	log.Println("[save] game loaded")
	w.emit(EventLoaded)
	return nil
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

// DrainEvents returns and clears the events raised since the last call.
func (w *World) DrainEvents() []Event {
	out := w.events
	w.events = nil
	return out
}
