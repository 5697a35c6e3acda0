package system

import "github.com/milk9111/minimap/component"

// Side is the edge of the obstacle a body was resolved against.
type Side int

const (
	SideNone Side = iota
	// SideLeft: the body came from the left and now sits flush against the
	// obstacle's left edge.
	SideLeft
	SideRight
	// SideTop: the body landed on the obstacle.
	SideTop
	// SideBottom: the body hit the obstacle from below.
	SideBottom
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Horizontal reports whether the contact was resolved on the x axis.
func (s Side) Horizontal() bool {
	return s == SideLeft || s == SideRight
}

// Contact is the outcome of one resolution: which side won and the
// translation that moves the body out of the obstacle.
type Contact struct {
	Side   Side
	Dx, Dy int
}

// Penetrate finds the axis of minimum penetration between an overlapping
// body and obstacle. Equal penetration on both axes resolves vertically.
func Penetrate(body, obstacle component.Rect) (Contact, bool) {
	if !body.Overlaps(obstacle) {
		return Contact{}, false
	}

	overlapLeft := body.Right() - obstacle.X
	overlapRight := obstacle.Right() - body.X
	overlapTop := body.Bottom() - obstacle.Y
	overlapBottom := obstacle.Bottom() - body.Y

	xPen := min(overlapLeft, overlapRight)
	yPen := min(overlapTop, overlapBottom)

	if xPen < yPen {
		if overlapLeft < overlapRight {
			return Contact{Side: SideLeft, Dx: obstacle.X - body.W - body.X}, true
		}
		return Contact{Side: SideRight, Dx: obstacle.Right() - body.X}, true
	}
	if overlapTop < overlapBottom {
		return Contact{Side: SideTop, Dy: obstacle.Y - body.H - body.Y}, true
	}
	return Contact{Side: SideBottom, Dy: obstacle.Bottom() - body.Y}, true
}

// Resolve pushes b out of obstacle along the minimum penetration axis. A
// vertical contact stops the body; landing on top also grounds it. Only one
// pass is made, so a body moving faster than the obstacle is thick can
// tunnel through.
func Resolve(b *component.Body, obstacle component.Rect) Contact {
	c, ok := Penetrate(b.Rect, obstacle)
	if !ok {
		return Contact{}
	}
	b.X += c.Dx
	b.Y += c.Dy
	switch c.Side {
	case SideTop:
		b.VelocityY = 0
		b.Jumping = false
	case SideBottom:
		b.VelocityY = 0
	}
	return c
}

// StandingOn reports whether body rests exactly on top of surface.
func StandingOn(body, surface component.Rect) bool {
	return body.Bottom() == surface.Y
}

// BlockedHorizontally reports whether a horizontal move into surface must be
// undone. A body standing on the surface may walk across it and off its
// edges.
//
// The check uses exact equality, so a body that is one pixel into the
// surface after a landing frame is still blocked.
func BlockedHorizontally(body, surface component.Rect) bool {
	return body.Overlaps(surface) && !StandingOn(body, surface)
}
