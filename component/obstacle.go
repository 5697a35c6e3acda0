package component

// Obstacle patrols horizontally between LeftLimit and RightLimit.
type Obstacle struct {
	Rect
	VelocityX  int
	LeftLimit  int
	RightLimit int
	Active     bool
	// Bump is the extra push-back applied when the player walks into a side.
	Bump int
}

// Platform is the static surface of a level.
type Platform struct {
	Rect
	Active bool
	Bump   int
	// Damage is subtracted from health on every side hit or landing.
	Damage int
}
