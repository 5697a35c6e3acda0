package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/minimap/common"
	"github.com/milk9111/minimap/config"
)

func main() {
	settingsPath := flag.String("settings", config.DefaultPath, "settings file (toml)")
	level := flag.Int("level", 0, "level index to start on")
	savePath := flag.String("save", "", "checkpoint file, overrides settings")
	assetsDir := flag.String("assets", "", "asset directory, overrides settings")
	watch := flag.Bool("watch", false, "hot reload prefabs from prefabs/")
	debug := flag.Bool("debug", false, "draw collision boxes")
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatal(err)
	}
	if *savePath != "" {
		settings.SavePath = *savePath
	}
	if *assetsDir != "" {
		settings.AssetsDir = *assetsDir
	}
	settings.Watch = settings.Watch || *watch

	game, err := NewGame(settings, *settingsPath, *level, *debug)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(int(common.BaseWidth*settings.Scale), int(common.BaseHeight*settings.Scale))
	ebiten.SetWindowTitle("minimap")

	err = ebiten.RunGame(game)
	game.Close()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
