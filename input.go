package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/milk9111/minimap/system"
)

const stickDeadzone = 0.3

// Input polls keyboard and the first gamepad once per tick.
type Input struct {
	Left  bool
	Right bool
	// JumpHeld is level triggered; the simulation only jumps when grounded.
	JumpHeld bool
	// The rest are true only on the tick the key went down.
	ActionPressed bool
	SavePressed   bool
	LoadPressed   bool
	PausePressed  bool
}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Update() {
	i.Left = ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	i.Right = ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	i.JumpHeld = ebiten.IsKeyPressed(ebiten.KeySpace)
	i.ActionPressed = inpututil.IsKeyJustPressed(ebiten.KeyE)
	i.SavePressed = inpututil.IsKeyJustPressed(ebiten.KeyS)
	i.LoadPressed = inpututil.IsKeyJustPressed(ebiten.KeyL)
	i.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)

	ids := ebiten.GamepadIDs()
	if len(ids) == 0 {
		return
	}
	gid := ids[0]

	leftX := ebiten.StandardGamepadAxisValue(gid, ebiten.StandardGamepadAxisLeftStickHorizontal)
	if leftX < -stickDeadzone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftLeft) {
		i.Left = true
	}
	if leftX > stickDeadzone || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonLeftRight) {
		i.Right = true
	}
	i.JumpHeld = i.JumpHeld || ebiten.IsStandardGamepadButtonPressed(gid, ebiten.StandardGamepadButtonRightBottom)
	i.ActionPressed = i.ActionPressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonRightLeft)
	i.PausePressed = i.PausePressed || inpututil.IsStandardGamepadButtonJustPressed(gid, ebiten.StandardGamepadButtonCenterRight)
}

// Frame is the simulation's view of this tick's input.
func (i *Input) Frame() system.Input {
	return system.Input{
		Left:   i.Left,
		Right:  i.Right,
		Jump:   i.JumpHeld,
		Action: i.ActionPressed,
	}
}
