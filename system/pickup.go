package system

import (
	"time"

	"github.com/milk9111/minimap/component"
	"github.com/milk9111/minimap/prefabs"
)

// CoinConfig holds the coin's animation and pickup feedback timings.
type CoinConfig struct {
	Frames  int
	Cadence time.Duration
	Flash   time.Duration
}

func NewCoinConfig(spec *prefabs.CoinSpec) CoinConfig {
	cfg := CoinConfig{Frames: 1, Flash: spec.Flash()}
	if len(spec.Animation.Rows) > 0 {
		cfg.Frames = spec.Animation.Rows[0].FrameCount
		cfg.Cadence = spec.Animation.Rows[0].Cadence()
	}
	if cfg.Frames < 1 {
		cfg.Frames = 1
	}
	return cfg
}

// CollectCoin spins an active coin and collects it when body touches it.
// It reports whether the coin was collected this frame.
func CollectCoin(c *component.Coin, body component.Rect, cfg CoinConfig, now time.Duration) bool {
	if c == nil || !c.Active {
		return false
	}
	c.Advance(now, cfg.Cadence, c.Frames)
	if !body.Overlaps(c.Rect) {
		return false
	}
	c.Active = false
	return true
}
