//go:build ebiten

package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"vista/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	sc, err := cfg.Scene()
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(cfg, sc)
	if err != nil {
		log.Fatalf("start: %v", err)
	}
	size := game.Size()

	ebiten.SetWindowTitle(fmt.Sprintf("vista (%s)", cfg.Preset))
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
