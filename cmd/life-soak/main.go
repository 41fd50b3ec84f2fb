package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"lifegrid/internal/soak"
)

func main() {
	cfg := soak.DefaultConfig()
	noColor := false

	flaggy.SetName("life-soak")
	flaggy.SetDescription("Step many seeded simulations and recount every generation")
	flaggy.Int(&cfg.Runs, "n", "runs", "number of independent simulations")
	flaggy.Int(&cfg.Width, "x", "width", "grid width in cells")
	flaggy.Int(&cfg.Height, "y", "height", "grid height in cells")
	flaggy.Int(&cfg.Generations, "g", "generations", "generations per simulation")
	flaggy.Int64(&cfg.Seed, "s", "seed", "seed of the first run, later runs add their index")
	flaggy.Int(&cfg.Workers, "w", "workers", "simulations stepped in parallel")
	flaggy.Bool(&noColor, "", "no-color", "disable ANSI colors")
	flaggy.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	au := aurora.NewAurora(!noColor)
	fmt.Printf("Soaking %d runs of %dx%d for %d generations (%d workers)\n",
		cfg.Runs, cfg.Width, cfg.Height, cfg.Generations, cfg.Workers)

	start := time.Now()
	results, err := soak.Run(ctx, cfg)
	if err != nil {
		fmt.Println(au.Red("FAIL"))
		log.Fatal(err)
	}
	soak.Report(os.Stdout, au, results)
	fmt.Printf("Finished in %v\n", time.Since(start).Round(time.Millisecond))
}
