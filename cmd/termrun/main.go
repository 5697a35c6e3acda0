// Command termrun plays the game in a terminal. Rectangles are projected
// onto character cells; physics and levels are the same as the window build.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/milk9111/minimap/config"
	"github.com/milk9111/minimap/levels"
	"github.com/milk9111/minimap/prefabs"
	"github.com/milk9111/minimap/save"
	"github.com/milk9111/minimap/system"
)

const tickRate = 60

func main() {
	settingsPath := flag.String("settings", config.DefaultPath, "settings file (toml)")
	level := flag.Int("level", 0, "level index to start on")
	savePath := flag.String("save", "", "checkpoint file, overrides settings")
	logPath := flag.String("log", "termrun.log", "log file; the terminal is busy drawing")
	flag.Parse()

	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Fatal(err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}
	if *savePath != "" {
		settings.SavePath = *savePath
	}

	world, err := newWorld(settings, *level)
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()

	run(screen, world, newChime(settings.Mute))
}

func newWorld(settings config.Settings, level int) (*system.World, error) {
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
	store := save.NewFileStore(settings.SavePath)
	w := system.NewWorld(system.Config{
		Player: system.NewPlayerConfig(playerSpec),
		Coin:   system.NewCoinConfig(coinSpec),
	}, table, store)
	if level != 0 {
		w.LoadLevel(level)
		w.Spawn()
	}
	if _, err := store.Load(); errors.Is(err, save.ErrNoSave) {
		if err := w.Save(); err != nil {
			return nil, err
		}
	}
	return w, nil
}

func run(screen tcell.Screen, w *system.World, sound *chime) {
	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	var (
		keys  heldKeys
		ticks int64
	)
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keyOf(ev) {
				case keyQuit:
					return
				case keySave:
					_ = w.Save()
				case keyLoad:
					_ = w.Load()
				case keyNone:
				default:
					keys.press(keyOf(ev))
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			ticks++
			w.Step(keys.frame(), time.Duration(ticks)*time.Second/tickRate)
			for _, e := range w.DrainEvents() {
				if e == system.EventCoinCollected {
					sound.play()
				}
			}
			draw(screen, w)
		}
	}
}
