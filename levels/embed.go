package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/milk9111/minimap/common"
	"github.com/milk9111/minimap/component"
)

//go:embed *.json
var LevelsFS embed.FS

// DefaultTable is the level table shipped with the game.
const DefaultTable = "levels.json"

// Table is the data-driven level list plus the world geometry every level
// shares.
type Table struct {
	Screen      Size         `json:"screen"`
	GroundLevel int          `json:"ground_level"`
	MaxHealth   int          `json:"max_health"`
	Levels      []Descriptor `json:"levels"`
}

type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Descriptor holds the initial entities and backgrounds of one level.
type Descriptor struct {
	Name       string         `json:"name"`
	Background Background     `json:"background"`
	Platform   PlatformSpec   `json:"platform"`
	Coin       component.Rect `json:"coin"`
	Obstacle   ObstacleSpec   `json:"obstacle"`
	// BlockLeft/BlockRight turn a screen edge into a wall instead of a
	// transition.
	BlockLeft  bool      `json:"block_left,omitempty"`
	BlockRight bool      `json:"block_right,omitempty"`
	Triggers   []Trigger `json:"triggers,omitempty"`
}

type Background struct {
	Sky    string `json:"sky"`
	City   string `json:"city"`
	Ground string `json:"ground"`
	// Colors are used when an image is missing; "#rrggbb".
	SkyColor    string  `json:"sky_color"`
	CityColor   string  `json:"city_color"`
	GroundColor string  `json:"ground_color"`
	Parallax    float64 `json:"parallax,omitempty"`
}

type PlatformSpec struct {
	Rect   component.Rect `json:"rect"`
	Bump   int            `json:"bump,omitempty"`
	Damage int            `json:"damage,omitempty"`
}

type ObstacleSpec struct {
	Rect       component.Rect `json:"rect"`
	LeftLimit  int            `json:"left_limit"`
	RightLimit int            `json:"right_limit"`
	Speed      int            `json:"speed"`
	Bump       int            `json:"bump,omitempty"`
	Disabled   bool           `json:"disabled,omitempty"`
}

// Trigger is an area that moves the player to another level when the action
// key is pressed inside it.
type Trigger struct {
	Name   string         `json:"name"`
	Rect   component.Rect `json:"rect"`
	Target int            `json:"target"`
	Spawn  Spawn          `json:"spawn"`
	Prompt string         `json:"prompt,omitempty"`
}

// Spawn is where the player appears after a trigger fires. A nil Y means
// standing just above the ground.
type Spawn struct {
	X int  `json:"x"`
	Y *int `json:"y,omitempty"`
}

// Load reads a level table, preferring a copy on disk under levels/ so the
// table can be edited without rebuilding.
func Load(name string) (*Table, error) {
	if name == "" {
		name = DefaultTable
	}
	data, err := os.ReadFile(filepath.Join("levels", name))
	if err != nil {
		data, err = LevelsFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read level table: %w", err)
		}
	}
	return Parse(data)
}

// Parse decodes and validates a level table.
func Parse(data []byte) (*Table, error) {
	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("unmarshal level table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// Validate rejects tables the simulation cannot run.
func (t *Table) Validate() error {
	if t.Screen.Width <= 0 || t.Screen.Height <= 0 {
		return fmt.Errorf("invalid screen size: %dx%d", t.Screen.Width, t.Screen.Height)
	}
	if t.GroundLevel <= 0 || t.GroundLevel > t.Screen.Height {
		return fmt.Errorf("ground level %d outside screen height %d", t.GroundLevel, t.Screen.Height)
	}
	if t.MaxHealth <= 0 {
		return fmt.Errorf("invalid max health: %d", t.MaxHealth)
	}
	if len(t.Levels) == 0 {
		return fmt.Errorf("level table has no levels")
	}
	for i, l := range t.Levels {
		if l.Platform.Rect.Empty() {
			return fmt.Errorf("level %d (%s): platform has no area", i, l.Name)
		}
		if o := l.Obstacle; !o.Disabled {
			if o.LeftLimit >= o.RightLimit {
				return fmt.Errorf("level %d (%s): obstacle limits %d..%d", i, l.Name, o.LeftLimit, o.RightLimit)
			}
			if o.Rect.W > o.RightLimit-o.LeftLimit {
				return fmt.Errorf("level %d (%s): obstacle width %d exceeds limits %d..%d", i, l.Name, o.Rect.W, o.LeftLimit, o.RightLimit)
			}
		}
		for _, tr := range l.Triggers {
			if tr.Target < 0 || tr.Target >= len(t.Levels) {
				return fmt.Errorf("level %d (%s): trigger %q targets unknown level %d", i, l.Name, tr.Name, tr.Target)
			}
		}
	}
	return nil
}

// Count is the number of levels, the fixed maximum level count.
func (t *Table) Count() int {
	if t == nil {
		return 0
	}
	return len(t.Levels)
}

// Clamp limits a level index to the table.
func (t *Table) Clamp(i int) int {
	return common.Clamp(i, 0, t.Count()-1)
}

// Level returns the descriptor at the clamped index.
func (t *Table) Level(i int) *Descriptor {
	return &t.Levels[t.Clamp(i)]
}
