package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/milk9111/minimap/assets"
	"github.com/milk9111/minimap/config"
	"github.com/milk9111/minimap/levels"
	"github.com/milk9111/minimap/prefabs"
	"github.com/milk9111/minimap/render"
	"github.com/milk9111/minimap/save"
	"github.com/milk9111/minimap/system"
)

const coinSound = "coin.wav"

type Game struct {
	ticks  int64
	paused bool
	quit   bool

	input *Input
	world *system.World
	scene *render.Scene
	table *levels.Table

	settings     config.Settings
	settingsPath string

	lib     *assets.Library
	chime   *audio.Player
	watcher *prefabs.Watcher
	pauseUI *ebitenui.UI
}

// NewGame wires settings, prefabs, levels and the save slot into a world
// and its renderer.
func NewGame(settings config.Settings, settingsPath string, startLevel int, debug bool) (*Game, error) {
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, err
	}
	coinSpec, err := prefabs.LoadCoinSpec()
	if err != nil {
		return nil, err
	}
	table, err := levels.Load(levels.DefaultTable)
	if err != nil {
		return nil, err
	}
	lib, err := assets.New(settings.AssetsDir)
	if err != nil {
		return nil, err
	}
	scene, err := render.NewScene(lib, table, playerSpec, coinSpec)
	if err != nil {
		return nil, err
	}
	scene.Debug = debug

	store := save.NewFileStore(settings.SavePath)
	cfg := system.Config{
		Player: system.NewPlayerConfig(playerSpec),
		Coin:   system.NewCoinConfig(coinSpec),
	}
	world := system.NewWorld(cfg, table, store)
	if startLevel != 0 {
		world.LoadLevel(startLevel)
		world.Spawn()
	}
	// a first checkpoint so running out of health always has somewhere to go
	if _, err := store.Load(); errors.Is(err, save.ErrNoSave) {
		if err := world.Save(); err != nil {
			return nil, fmt.Errorf("initial checkpoint: %w", err)
		}
	}

	g := &Game{
		input:        NewInput(),
		world:        world,
		scene:        scene,
		table:        table,
		settings:     settings,
		settingsPath: settingsPath,
		lib:          lib,
	}
	if !settings.Mute {
		g.chime, err = lib.Sound(coinSound)
		if err != nil {
			return nil, err
		}
	}
	if settings.Watch {
		g.watcher, err = prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Printf("[prefabs] hot reload disabled: %v", err)
		}
	}
	g.pauseUI = NewPauseUI(g, table.Screen.Width, table.Screen.Height)
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.drainWatcher()
	g.input.Update()

	if g.input.PausePressed {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.ticks++
	now := time.Duration(g.ticks) * time.Second / time.Duration(ebiten.DefaultTPS)

	if g.input.SavePressed {
		_ = g.world.Save()
	}
	if g.input.LoadPressed {
		_ = g.world.Load()
	}
	g.world.Step(g.input.Frame(), now)

	for _, e := range g.world.DrainEvents() {
		if e == system.EventCoinCollected && g.chime != nil && !g.settings.Mute {
			if err := g.chime.Rewind(); err != nil {
				log.Printf("[audio] %v", err)
				continue
			}
			g.chime.Play()
		}
	}
	return nil
}

// ToggleMute flips the sound setting and persists it to the settings file.
func (g *Game) ToggleMute() {
	mute := !g.settings.Mute
	if !mute && g.chime == nil {
		p, err := g.lib.Sound(coinSound)
		if err != nil {
			log.Printf("[audio] %v", err)
			return
		}
		g.chime = p
	}
	g.settings.Mute = mute
	if _, err := config.Update(g.settingsPath, func(s *config.Settings) { s.Mute = mute }); err != nil {
		log.Printf("[config] %v", err)
		return
	}
	log.Printf("[config] mute=%v", mute)
}

func (g *Game) drainWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reloadPrefab(filepath.Base(name))
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("[prefabs] watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reloadPrefab(name string) {
	switch name {
	case "player.yaml":
		spec, err := prefabs.LoadPlayerSpec()
		if err != nil {
			log.Printf("[prefabs] reload %s: %v", name, err)
			return
		}
		if err := g.scene.SetPlayer(g.lib, spec); err != nil {
			log.Printf("[prefabs] reload %s: %v", name, err)
			return
		}
		g.world.SetPlayerConfig(system.NewPlayerConfig(spec))
	case "coin.yaml":
		spec, err := prefabs.LoadCoinSpec()
		if err != nil {
			log.Printf("[prefabs] reload %s: %v", name, err)
			return
		}
		g.world.Config.Coin = system.NewCoinConfig(spec)
	default:
		return
	}
	log.Printf("[prefabs] reloaded %s", name)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen, g.world)
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return float64(g.table.Screen.Width), float64(g.table.Screen.Height)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("[prefabs] close watcher: %v", err)
		}
	}
	if g.chime != nil {
		_ = g.chime.Close()
	}
}
