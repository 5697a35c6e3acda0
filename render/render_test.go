package render

import (
	"image/color"
	"testing"

	"github.com/milk9111/minimap/component"
)

func TestMinimapProject(t *testing.T) {
	m := DefaultMinimap()
	cases := []struct {
		name string
		in   component.Rect
		want component.Rect
	}{
		{"player_spawn", component.Rect{X: 100, Y: 460, W: 64, H: 64}, component.Rect{X: 620, Y: 102, W: 12, H: 12}},
		{"platform", component.Rect{X: 300, Y: 502, W: 128, H: 32}, component.Rect{X: 660, Y: 110, W: 25, H: 6}},
		{"origin", component.Rect{}, component.Rect{X: 600, Y: 10}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := m.Project(c.in); got != c.want {
				t.Fatalf("expected %+v, got %+v", c.want, got)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	fallback := color.RGBA{A: 0xff}
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#87ceeb", color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}},
		{"#FFDF00", color.RGBA{R: 0xff, G: 0xdf, B: 0x00, A: 0xff}},
		{"87ceeb", fallback},
		{"#zzzzzz", fallback},
		{"", fallback},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			if got := ParseHexColor(c.in, fallback); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestEaseHealth(t *testing.T) {
	shown := float32(1)
	for i := 0; i < 100; i++ {
		shown = easeHealth(shown, 0.8)
	}
	if shown != 0.8 {
		t.Fatalf("expected the bar to settle on 0.8, got %v", shown)
	}
	if got := easeHealth(1, 0.5); got <= 0.5 || got >= 1 {
		t.Fatalf("expected a partial step, got %v", got)
	}
}
