package component

import "testing"

func TestOverlaps(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 50, H: 50}
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"inside", Rect{X: 110, Y: 110, W: 10, H: 10}, true},
		{"partial", Rect{X: 140, Y: 140, W: 50, H: 50}, true},
		{"touching_right_edge", Rect{X: 150, Y: 100, W: 10, H: 10}, true},
		{"touching_bottom_edge", Rect{X: 100, Y: 150, W: 10, H: 10}, true},
		{"one_pixel_gap", Rect{X: 151, Y: 100, W: 10, H: 10}, false},
		{"above", Rect{X: 100, Y: 0, W: 50, H: 50}, false},
		{"zero_width", Rect{X: 110, Y: 110, W: 0, H: 10}, false},
		{"zero_height", Rect{X: 110, Y: 110, W: 10, H: 0}, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := base.Overlaps(c.other); got != c.want {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
			if Overlaps(c.other, base) != Overlaps(base, c.other) {
				t.Fatalf("overlap is not symmetric")
			}
		})
	}
}

func TestRectScaleTruncates(t *testing.T) {
	got := Rect{X: 303, Y: 502, W: 128, H: 33}.Scale(0.2, 0.2)
	want := Rect{X: 60, Y: 100, W: 25, H: 6}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestRectInflate(t *testing.T) {
	got := Rect{X: 600, Y: 334, W: 32, H: 32}.Inflate(10)
	want := Rect{X: 590, Y: 324, W: 52, H: 52}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
	if r := got.Image(); r.Dx() != 52 || r.Min.X != 590 {
		t.Fatalf("unexpected image rect %v", r)
	}
}
