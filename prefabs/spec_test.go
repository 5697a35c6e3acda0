package prefabs

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadPlayerSpec(t *testing.T) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Speed != 5 || spec.Gravity != 1 || spec.MaxFallSpeed != 25 || spec.JumpForce != -25 {
		t.Fatalf("unexpected physics tunables: %+v", spec)
	}
	if len(spec.Animation.Rows) != 2 {
		t.Fatalf("expected walk and jump rows, got %d", len(spec.Animation.Rows))
	}
	if got := spec.Animation.Rows[0].Cadence(); got != 190*time.Millisecond {
		t.Fatalf("expected walk cadence 190ms, got %v", got)
	}
	if got := spec.Animation.Rows[1].Cadence(); got != 150*time.Millisecond {
		t.Fatalf("expected jump cadence 150ms, got %v", got)
	}
}

func TestLoadCoinSpec(t *testing.T) {
	spec, err := LoadCoinSpec()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if spec.Flash() != 200*time.Millisecond {
		t.Fatalf("expected 200ms flash, got %v", spec.Flash())
	}
	if spec.GlowColor.Color == nil {
		t.Fatalf("expected glow color to be decoded")
	}
}

func TestPlayerSpecValidate(t *testing.T) {
	cases := []struct {
		name    string
		spec    PlayerSpec
		wantErr bool
	}{
		{"ok", PlayerSpec{JumpForce: -1, MaxFallSpeed: 1, Sprite: SpriteSpec{Width: 4, Height: 2}}, false},
		{"upward_jump_required", PlayerSpec{JumpForce: 3, MaxFallSpeed: 1, Sprite: SpriteSpec{Width: 4, Height: 2}}, true},
		{"fall_speed_required", PlayerSpec{JumpForce: -1, Sprite: SpriteSpec{Width: 4, Height: 2}}, true},
		{"sprite_size_required", PlayerSpec{JumpForce: -1, MaxFallSpeed: 1}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.spec.Validate()
			if (err != nil) != c.wantErr {
				t.Fatalf("expected error=%v, got %v", c.wantErr, err)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{`"#ff8000"`, color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, false},
		{`"10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{`"#fff"`, color.NRGBA{}, true},
		{`"#gg0000"`, color.NRGBA{}, true},
	}
	for _, c := range cases {
		var got YAMLColor
		err := yaml.Unmarshal([]byte(c.in), &got)
		if c.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error", c.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: %v", c.in, err)
		}
		if got.Color != c.want {
			t.Fatalf("%s: expected %v, got %v", c.in, c.want, got.Color)
		}
	}
}

func TestWatcherReportsSpecFiles(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	spec := filepath.Join(dir, "player.yaml")
	if err := os.WriteFile(spec, []byte("speed: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "player.yaml" {
			t.Fatalf("expected player.yaml event, got %s", name)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}
}

func TestWatcherReportsAfterBurst(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("watcher: %v", err)
	}
	defer w.Close()

	// an editor saving by truncate then write
	spec := filepath.Join(dir, "coin.yaml")
	if err := os.WriteFile(spec, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(spec, []byte("frames: 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		data, err := os.ReadFile(name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		if string(data) != "frames: 4\n" {
			t.Fatalf("event fired before the write landed, read %q", data)
		}
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatalf("timed out waiting for watcher event")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("expected one event for the burst, got another for %s", name)
	case <-time.After(3 * settleDelay):
	}
}
