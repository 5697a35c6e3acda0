package system

import (
	"time"

	"github.com/milk9111/minimap/component"
	"github.com/milk9111/minimap/prefabs"
)

// Input is one frame of player intent. Left, Right and Jump are held
// state; Action is true only on the frame the key went down.
type Input struct {
	Left   bool
	Right  bool
	Jump   bool
	Action bool
}

// PlayerConfig holds the player's tunables.
type PlayerConfig struct {
	Speed        int
	Gravity      int
	MaxFallSpeed int
	JumpForce    int
	SpawnX       int
	SpawnLift    int
	Sheet        component.SpriteSheet
}

// NewPlayerConfig converts a prefab spec into simulation units.
func NewPlayerConfig(spec *prefabs.PlayerSpec) PlayerConfig {
	rows := make([]component.SheetRow, 0, len(spec.Animation.Rows))
	for _, r := range spec.Animation.Rows {
		rows = append(rows, component.SheetRow{Frames: r.FrameCount, Cadence: r.Cadence()})
	}
	return PlayerConfig{
		Speed:        spec.Speed,
		Gravity:      spec.Gravity,
		MaxFallSpeed: spec.MaxFallSpeed,
		JumpForce:    spec.JumpForce,
		SpawnX:       spec.Spawn.X,
		SpawnLift:    spec.Spawn.Lift,
		Sheet: component.SpriteSheet{
			Width:  spec.Sprite.Width,
			Height: spec.Sprite.Height,
			Rows:   rows,
		},
	}
}

// MoveHorizontal applies the frame's left/right input and records Moving
// and FacingRight. Holding both keys cancels out but still counts as moving.
func MoveHorizontal(b *component.Body, in Input, speed int) {
	moving := false
	if in.Left {
		b.X -= speed
		moving = true
		b.FacingRight = false
	}
	if in.Right {
		b.X += speed
		moving = true
		b.FacingRight = true
	}
	b.Moving = moving
}

// TryJump starts a jump if the body is grounded. There is no double jump.
func TryJump(b *component.Body, force int) bool {
	if b.Jumping {
		return false
	}
	b.VelocityY = force
	b.Jumping = true
	return true
}

// ApplyGravity integrates one frame of gravity, capped at maxFall.
func ApplyGravity(b *component.Body, gravity, maxFall int) {
	b.VelocityY += gravity
	if b.VelocityY > maxFall {
		b.VelocityY = maxFall
	}
}

// ClampToGround keeps the body from falling through the world. It reports
// whether the body is resting on the ground.
func ClampToGround(b *component.Body, ground int) bool {
	if b.Bottom() < ground {
		return false
	}
	b.Land(ground)
	return true
}

// ClampVertical keeps the body inside [0, height].
func ClampVertical(b *component.Body, height int) {
	if b.Y < 0 {
		b.Y = 0
		b.VelocityY = 0
	}
	if b.Bottom() > height {
		b.Y = height - b.H
		b.VelocityY = 0
	}
}

// DeriveState picks the animation state. Jump wins over walk.
func DeriveState(b *component.Body) component.AnimState {
	switch {
	case b.Jumping:
		return component.StateJump
	case b.Moving:
		return component.StateWalk
	default:
		return component.StateIdle
	}
}

// Animate advances the body's frame for its current state and returns the
// sprite sheet source rectangle to draw. Walk and jump share one timer;
// idle always shows the first walk frame.
func Animate(b *component.Body, sheet component.SpriteSheet, now time.Duration) component.Rect {
	switch b.State {
	case component.StateWalk:
		b.Advance(now, sheet.Cadence(component.RowWalk), sheet.Frames(component.RowWalk))
		return sheet.FrameRect(component.RowWalk, b.Frame)
	case component.StateJump:
		b.Advance(now, sheet.Cadence(component.RowJump), sheet.Frames(component.RowJump))
		return sheet.FrameRect(component.RowJump, b.Frame)
	default:
		b.Frame = 0
		return sheet.FrameRect(component.RowWalk, 0)
	}
}
