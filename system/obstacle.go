package system

import (
	"github.com/milk9111/minimap/common"
	"github.com/milk9111/minimap/component"
)

// StepObstacle advances a patrolling obstacle one frame. Reaching either
// limit reverses the velocity and snaps the obstacle back inside, so its
// span never leaves [LeftLimit, RightLimit].
func StepObstacle(o *component.Obstacle) {
	if o == nil || !o.Active {
		return
	}
	o.X += o.VelocityX
	switch {
	case o.X <= o.LeftLimit:
		o.X = o.LeftLimit
		o.VelocityX = common.Abs(o.VelocityX)
	case o.Right() >= o.RightLimit:
		o.X = o.RightLimit - o.W
		o.VelocityX = -common.Abs(o.VelocityX)
	}
}
