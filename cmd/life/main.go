//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"

	"lifegrid/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Resolve("life", "Conway's Game of Life - ESC to exit", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	sim, err := app.NewSimulation(cfg)
	if err != nil {
		log.Fatalf("create simulation: %v", err)
	}

	game := app.New(sim, cfg)
	size := sim.Size()

	ebiten.SetWindowTitle(sim.Name() + " - ESC to exit")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
