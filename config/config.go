// Package config holds the user settings read from settings.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultPath is where settings are looked up when -settings is not given.
const DefaultPath = "settings.toml"

type Settings struct {
	// SavePath is the checkpoint file.
	SavePath string `toml:"save_path"`
	// AssetsDir is an optional directory of images and sounds. When empty
	// the game draws placeholder art.
	AssetsDir string  `toml:"assets_dir"`
	Scale     float64 `toml:"scale"`
	Mute      bool    `toml:"mute"`
	// Watch enables prefab hot reload.
	Watch bool `toml:"watch"`
}

func Default() Settings {
	return Settings{
		SavePath: "savegame.txt",
		Scale:    1,
	}
}

// Load decodes path over the defaults. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		path = DefaultPath
	}
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.SavePath == "" {
		return errors.New("save_path must not be empty")
	}
	if s.Scale <= 0 {
		return fmt.Errorf("scale must be positive, got %v", s.Scale)
	}
	return nil
}

// Save writes s to path, creating parent directories.
func (s Settings) Save(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(s); err != nil {
		return fmt.Errorf("config: encode %s: %w", path, err)
	}
	return nil
}

// Update applies fn to the settings stored at path and writes them back.
// Values overridden on the command line stay out of the file.
func Update(path string, fn func(*Settings)) (Settings, error) {
	if path == "" {
		path = DefaultPath
	}
	s, err := Load(path)
	if err != nil {
		return s, err
	}
	fn(&s)
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("config: %s: %w", path, err)
	}
	return s, s.Save(path)
}
