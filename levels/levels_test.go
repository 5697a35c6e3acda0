package levels

import (
	"strings"
	"testing"
)

func TestEmbeddedTable(t *testing.T) {
	data, err := LevelsFS.ReadFile(DefaultTable)
	if err != nil {
		t.Fatalf("read embedded table: %v", err)
	}
	tbl, err := Parse(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if tbl.Count() != 6 {
		t.Fatalf("expected 6 levels, got %d", tbl.Count())
	}
	city3 := tbl.Level(2)
	if !city3.BlockRight {
		t.Fatalf("expected city3 to block its right edge")
	}
	if len(city3.Triggers) != 1 || city3.Triggers[0].Target != 3 {
		t.Fatalf("expected a subway trigger into level 3, got %+v", city3.Triggers)
	}
	if city3.Triggers[0].Spawn.Y != nil {
		t.Fatalf("subway entrance spawn should default its height")
	}
	exit := tbl.Level(3).Triggers[0]
	if exit.Spawn.Y == nil || *exit.Spawn.Y != 450 || exit.Spawn.X != 545 {
		t.Fatalf("unexpected subway exit spawn %+v", exit.Spawn)
	}
	p := tbl.Level(0).Platform.Rect
	if p.Bottom() != tbl.GroundLevel {
		t.Fatalf("expected platform to rest on the ground, bottom=%d ground=%d", p.Bottom(), tbl.GroundLevel)
	}
}

func TestClamp(t *testing.T) {
	tbl := &Table{Levels: make([]Descriptor, 3)}
	cases := []struct {
		in, want int
	}{
		{-1, 0}, {0, 0}, {2, 2}, {3, 2}, {99, 2},
	}
	for _, c := range cases {
		if got := tbl.Clamp(c.in); got != c.want {
			t.Fatalf("Clamp(%d): expected %d, got %d", c.in, c.want, got)
		}
	}
}

func TestParseRejects(t *testing.T) {
	cases := []struct {
		name string
		json string
		want string
	}{
		{"bad_json", `{`, "unmarshal"},
		{"no_screen", `{"ground_level":1,"max_health":1,"levels":[{}]}`, "screen"},
		{"ground_below_screen", `{"screen":{"width":10,"height":10},"ground_level":20,"max_health":1,"levels":[{}]}`, "ground level"},
		{"no_levels", `{"screen":{"width":10,"height":10},"ground_level":5,"max_health":1}`, "no levels"},
		{"empty_platform", `{"screen":{"width":10,"height":10},"ground_level":5,"max_health":1,"levels":[{"name":"a"}]}`, "platform"},
		{
			"bad_limits",
			`{"screen":{"width":10,"height":10},"ground_level":5,"max_health":1,"levels":[{"platform":{"rect":{"w":1,"h":1}},"obstacle":{"left_limit":5,"right_limit":5}}]}`,
			"limits",
		},
		{
			"obstacle_wider_than_limits",
			`{"screen":{"width":10,"height":10},"ground_level":5,"max_health":1,"levels":[{"platform":{"rect":{"w":1,"h":1}},"obstacle":{"rect":{"w":100,"h":1},"left_limit":100,"right_limit":150}}]}`,
			"exceeds limits",
		},
		{
			"bad_trigger",
			`{"screen":{"width":10,"height":10},"ground_level":5,"max_health":1,"levels":[{"platform":{"rect":{"w":1,"h":1}},"obstacle":{"disabled":true},"triggers":[{"name":"t","target":4}]}]}`,
			"unknown level",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse([]byte(c.json))
			if err == nil {
				t.Fatalf("expected error")
			}
			if !strings.Contains(err.Error(), c.want) {
				t.Fatalf("expected error containing %q, got %v", c.want, err)
			}
		})
	}
}
