package system

import (
	"testing"
	"time"

	"github.com/milk9111/minimap/component"
)

func testSheet() component.SpriteSheet {
	return component.SpriteSheet{
		Width:  256,
		Height: 128,
		Rows: []component.SheetRow{
			{Frames: 4, Cadence: 190 * time.Millisecond},
			{Frames: 4, Cadence: 150 * time.Millisecond},
		},
	}
}

func TestMoveHorizontal(t *testing.T) {
	cases := []struct {
		name   string
		in     Input
		x      int
		moving bool
		right  bool
	}{
		{"none", Input{}, 100, false, true},
		{"left", Input{Left: true}, 95, true, false},
		{"right", Input{Right: true}, 105, true, true},
		{"both", Input{Left: true, Right: true}, 100, true, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := &component.Body{Rect: component.Rect{X: 100, W: 64, H: 64}, FacingRight: true}
			MoveHorizontal(b, c.in, 5)
			if b.X != c.x || b.Moving != c.moving || b.FacingRight != c.right {
				t.Fatalf("expected x=%d moving=%v right=%v, got %+v", c.x, c.moving, c.right, b)
			}
		})
	}
}

func TestTryJumpOnlyWhenGrounded(t *testing.T) {
	b := &component.Body{}
	if !TryJump(b, -25) {
		t.Fatalf("expected first jump to start")
	}
	if b.VelocityY != -25 || !b.Jumping {
		t.Fatalf("unexpected body after jump: %+v", b)
	}
	b.VelocityY = -10
	if TryJump(b, -25) {
		t.Fatalf("expected no double jump")
	}
	if b.VelocityY != -10 {
		t.Fatalf("velocity changed by rejected jump: %d", b.VelocityY)
	}
}

func TestApplyGravityClamps(t *testing.T) {
	b := &component.Body{VelocityY: 24}
	ApplyGravity(b, 1, 25)
	ApplyGravity(b, 1, 25)
	if b.VelocityY != 25 {
		t.Fatalf("expected terminal velocity 25, got %d", b.VelocityY)
	}
}

func TestClampToGround(t *testing.T) {
	b := &component.Body{Rect: component.Rect{Y: 480, W: 64, H: 64}, VelocityY: 12, Jumping: true}
	if !ClampToGround(b, 534) {
		t.Fatalf("expected body to be grounded")
	}
	if b.Bottom() != 534 || b.VelocityY != 0 || b.Jumping {
		t.Fatalf("unexpected body: %+v", b)
	}

	b = &component.Body{Rect: component.Rect{Y: 100, W: 64, H: 64}, VelocityY: 3}
	if ClampToGround(b, 534) || b.Y != 100 {
		t.Fatalf("airborne body should be left alone: %+v", b)
	}
}

func TestClampVertical(t *testing.T) {
	b := &component.Body{Rect: component.Rect{Y: -20, W: 64, H: 64}, VelocityY: -5}
	ClampVertical(b, 600)
	if b.Y != 0 || b.VelocityY != 0 {
		t.Fatalf("expected top clamp, got %+v", b)
	}
	b.Y, b.VelocityY = 580, 5
	ClampVertical(b, 600)
	if b.Bottom() != 600 || b.VelocityY != 0 {
		t.Fatalf("expected bottom clamp, got %+v", b)
	}
}

func TestDeriveState(t *testing.T) {
	cases := []struct {
		name    string
		jumping bool
		moving  bool
		want    component.AnimState
	}{
		{"idle", false, false, component.StateIdle},
		{"walk", false, true, component.StateWalk},
		{"jump", true, false, component.StateJump},
		{"jump_beats_walk", true, true, component.StateJump},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := &component.Body{Jumping: c.jumping, Moving: c.moving}
			if got := DeriveState(b); got != c.want {
				t.Fatalf("expected %s, got %s", c.want, got)
			}
		})
	}
}

func TestAnimateCadence(t *testing.T) {
	sheet := testSheet()
	b := &component.Body{State: component.StateWalk}

	src := Animate(b, sheet, 190*time.Millisecond)
	if b.Frame != 0 || src != (component.Rect{W: 64, H: 64}) {
		t.Fatalf("walk should not advance at exactly the cadence: frame=%d src=%+v", b.Frame, src)
	}
	src = Animate(b, sheet, 191*time.Millisecond)
	if b.Frame != 1 || src.X != 64 || src.Y != 0 {
		t.Fatalf("expected walk frame 1, got frame=%d src=%+v", b.Frame, src)
	}

	b.State = component.StateJump
	src = Animate(b, sheet, 342*time.Millisecond)
	if b.Frame != 2 || src.Y != 64 || src.X != 128 {
		t.Fatalf("expected jump frame 2 on row 1, got frame=%d src=%+v", b.Frame, src)
	}

	b.State = component.StateIdle
	src = Animate(b, sheet, time.Second)
	if b.Frame != 0 || src != (component.Rect{W: 64, H: 64}) {
		t.Fatalf("idle should show the first walk frame, got frame=%d src=%+v", b.Frame, src)
	}
}
