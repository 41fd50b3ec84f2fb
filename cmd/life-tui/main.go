package main

import (
	"log"
	"os"

	"lifegrid/internal/app"
	"lifegrid/internal/tui"
)

func main() {
	cfg, err := app.Resolve("life-tui", "Conway's Game of Life in the terminal", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	sim, err := app.NewSimulation(cfg)
	if err != nil {
		log.Fatalf("create simulation: %v", err)
	}

	ui, err := tui.New(sim, cfg.TPS)
	if err != nil {
		log.Fatal(err)
	}
	if err := ui.Run(); err != nil {
		log.Fatal(err)
	}
}
