package component

// AnimState is the animation state derived for the player after physics.
type AnimState int

const (
	StateIdle AnimState = iota
	StateWalk
	StateJump
)

func (s AnimState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalk:
		return "walk"
	case StateJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Body is the player. It is created once and only repositioned across
// level transitions.
type Body struct {
	Rect
	// VelocityY is in pixels per frame, positive is down.
	VelocityY   int
	Jumping     bool
	Moving      bool
	FacingRight bool
	State       AnimState

	// Ticker holds the animation frame index and the time it last advanced.
	Ticker
}

// Grounded reports whether the body may jump.
func (b *Body) Grounded() bool {
	return !b.Jumping
}

// Land puts the body's bottom edge on y and stops vertical motion.
func (b *Body) Land(y int) {
	b.Y = y - b.H
	b.VelocityY = 0
	b.Jumping = false
}
