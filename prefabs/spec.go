package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec holds the player's movement tunables and sprite sheet layout.
// Velocities are in pixels per frame at 60 ticks per second.
type PlayerSpec struct {
	Name         string        `yaml:"name"`
	Speed        int           `yaml:"speed"`
	Gravity      int           `yaml:"gravity"`
	MaxFallSpeed int           `yaml:"max_fall_speed"`
	JumpForce    int           `yaml:"jump_force"`
	Spawn        SpawnSpec     `yaml:"spawn"`
	Sprite       SpriteSpec    `yaml:"sprite"`
	Animation    AnimationSpec `yaml:"animation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("prefabs: player.yaml: %w", err)
	}
	return &spec, nil
}

// Validate rejects tunables that would make the simulation degenerate.
func (s *PlayerSpec) Validate() error {
	if s.JumpForce >= 0 {
		return fmt.Errorf("jump_force must be negative, got %d", s.JumpForce)
	}
	if s.MaxFallSpeed <= 0 {
		return fmt.Errorf("max_fall_speed must be positive, got %d", s.MaxFallSpeed)
	}
	if s.Sprite.Width <= 0 || s.Sprite.Height <= 0 {
		return fmt.Errorf("sprite size must be positive, got %dx%d", s.Sprite.Width, s.Sprite.Height)
	}
	return nil
}

// SpawnSpec places the player at level start: X from the left edge and Lift
// pixels above the ground.
type SpawnSpec struct {
	X    int `yaml:"x"`
	Lift int `yaml:"lift"`
}

type CoinSpec struct {
	Name      string        `yaml:"name"`
	FlashMS   int           `yaml:"flash_ms"`
	GlowPad   int           `yaml:"glow_pad"`
	GlowColor YAMLColor     `yaml:"glow_color"`
	Sprite    SpriteSpec    `yaml:"sprite"`
	Animation AnimationSpec `yaml:"animation"`
}

func LoadCoinSpec() (*CoinSpec, error) {
	spec, err := LoadSpec[CoinSpec]("coin.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Flash is how long the pickup glow stays on screen.
func (s *CoinSpec) Flash() time.Duration {
	return time.Duration(s.FlashMS) * time.Millisecond
}

// SpriteSpec names an image under the assets directory. Width/Height are
// used for the placeholder when the image is absent.
type SpriteSpec struct {
	Image       string    `yaml:"image"`
	Width       int       `yaml:"width"`
	Height      int       `yaml:"height"`
	ColorKey    YAMLColor `yaml:"color_key"`
	Placeholder YAMLColor `yaml:"placeholder"`
}

// AnimationSpec lists sheet rows top to bottom.
type AnimationSpec struct {
	Rows []AnimationRowSpec `yaml:"rows"`
}

type AnimationRowSpec struct {
	Name       string `yaml:"name"`
	FrameCount int    `yaml:"frame_count"`
	CadenceMS  int    `yaml:"cadence_ms"`
}

// Cadence is the time a frame stays on screen.
func (r AnimationRowSpec) Cadence() time.Duration {
	return time.Duration(r.CadenceMS) * time.Millisecond
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
