// Package assets loads images and sounds from an optional asset directory,
// falling back to generated placeholder art when no directory is set.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/milk9111/minimap/assets/sfx"
)

const SampleRate = 44100

// Library resolves asset names against a directory. With no directory
// every lookup produces a placeholder; with one, a missing file is an error.
type Library struct {
	fsys fs.FS
	dir  string

	audioContext *audio.Context
	images       map[string]*ebiten.Image
}

// New opens dir. An empty dir selects placeholder art only.
func New(dir string) (*Library, error) {
	l := &Library{dir: dir, images: make(map[string]*ebiten.Image)}
	if dir == "" {
		return l, nil
	}
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("assets: %s is not a directory", dir)
	}
	l.fsys = os.DirFS(dir)
	return l, nil
}

// Placeholders reports whether the library draws generated art.
func (l *Library) Placeholders() bool {
	return l.fsys == nil
}

// LoadFile reads an asset by its directory-relative name.
func (l *Library) LoadFile(name string) ([]byte, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("assets: %s: %w", name, fs.ErrNotExist)
	}
	b, err := fs.ReadFile(l.fsys, cleanAssetPath(name))
	if err != nil {
		return nil, fmt.Errorf("assets: load %s: %w", name, err)
	}
	return b, nil
}

// Decode reads and decodes an image asset without touching the GPU.
func (l *Library) Decode(name string) (image.Image, error) {
	b, err := l.LoadFile(name)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return img, nil
}

// Load returns the named image with pixels matching key made transparent.
// When the library has no directory, or name is empty, placeholder is used
// instead.
func (l *Library) Load(name string, placeholder image.Image, key color.Color) (*ebiten.Image, error) {
	if l.fsys == nil || name == "" {
		return ebiten.NewImageFromImage(placeholder), nil
	}
	if img, ok := l.images[name]; ok {
		return img, nil
	}
	src, err := l.Decode(name)
	if err != nil {
		return nil, err
	}
	if key != nil {
		src = ApplyColorKey(src, key)
	}
	out := ebiten.NewImageFromImage(src)
	l.images[name] = out
	return out, nil
}

// AudioContext lazily creates the process-wide audio context.
func (l *Library) AudioContext() *audio.Context {
	if l.audioContext == nil {
		l.audioContext = audio.CurrentContext()
		if l.audioContext == nil {
			l.audioContext = audio.NewContext(SampleRate)
		}
	}
	return l.audioContext
}

// Sound returns a player for the named wav, or for the synthesized chime
// when the library has no directory.
func (l *Library) Sound(name string) (*audio.Player, error) {
	ctx := l.AudioContext()
	if l.fsys == nil {
		pcm, err := sfx.ChimePCM(ctx.SampleRate())
		if err != nil {
			return nil, fmt.Errorf("assets: chime: %w", err)
		}
		return ctx.NewPlayerFromBytes(pcm), nil
	}
	b, err := l.LoadFile(name)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(strings.ToLower(name), ".wav") {
		// already PCM in ebiten's native format
		return ctx.NewPlayerFromBytes(b), nil
	}
	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("assets: decode wav %q: %w", name, err)
	}
	return ctx.NewPlayer(stream)
}

func cleanAssetPath(p string) string {
	if p == "" {
		return ""
	}
	s := filepath.ToSlash(p)
	if filepath.IsAbs(p) {
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return path.Base(s)
	}
	return path.Clean(strings.TrimPrefix(s, "assets/"))
}
