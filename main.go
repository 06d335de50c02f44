package main

import (
	"log"

	"github.com/golangdaddy/roaddodge/config"
	"github.com/golangdaddy/roaddodge/game"
	"github.com/golangdaddy/roaddodge/ui"
	"github.com/hajimehoshi/ebiten/v2"

	_ "github.com/ebitengine/hideconsole"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	state := game.New(game.NewRand(cfg.Seed))
	roadView := ui.NewRoadView(state, cfg.Seed, cfg.Debug)
	app := ui.NewApp(roadView, cfg.WindowWidth, cfg.WindowHeight)

	log.Printf("Starting %s (seed: %d, TPS: %d, window: %dx%d)",
		cfg.WindowTitle, cfg.Seed, cfg.TPS, cfg.WindowWidth, cfg.WindowHeight)

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
