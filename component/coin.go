package component

// Coin is the level's collectible. Active flips to false when collected.
type Coin struct {
	Rect
	Ticker
	Active bool
	Frames int
}
