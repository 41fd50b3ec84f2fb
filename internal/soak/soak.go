// Package soak runs many independent seeded simulations and checks the
// engine's bookkeeping after every generation.
package soak

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"lifegrid/internal/life"
)

// Config controls a soak run.
type Config struct {
	Runs        int
	Width       int
	Height      int
	Generations int
	Seed        int64
	Workers     int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Runs:        16,
		Width:       96,
		Height:      64,
		Generations: 500,
		Seed:        1337,
		Workers:     runtime.NumCPU(),
	}
}

// Result summarizes one simulation.
type Result struct {
	Run         int
	Seed        int64
	Initial     int
	Final       int
	Peak        int
	Generations int
	ExtinctAt   int // -1 if the population never reached zero
}

// Run executes cfg.Runs simulations, each on its own goroutine with its own
// Simulation, seeded cfg.Seed+run. It stops at the first invariant failure.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if cfg.Runs <= 0 {
		return nil, errors.Errorf("runs must be positive, got %d", cfg.Runs)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	results := make([]Result, cfg.Runs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := 0; i < cfg.Runs; i++ {
		run := i
		g.Go(func() error {
			res, err := runOne(ctx, cfg, run)
			if err != nil {
				return err
			}
			results[run] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runOne(ctx context.Context, cfg Config, run int) (Result, error) {
	seed := cfg.Seed + int64(run)
	sim, err := life.New(fmt.Sprintf("soak-%d", run), cfg.Width, cfg.Height, life.WithSeed(seed))
	if err != nil {
		return Result{}, errors.Wrapf(err, "run %d", run)
	}
	if err := sim.Verify(); err != nil {
		return Result{}, errors.Wrapf(err, "run %d seed %d after randomize", run, seed)
	}
	res := Result{Run: run, Seed: seed, Initial: sim.Population(), Peak: sim.Population(), ExtinctAt: -1}
	for gen := 1; gen <= cfg.Generations; gen++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		sim.Step()
		if err := sim.Verify(); err != nil {
			return Result{}, errors.Wrapf(err, "run %d seed %d generation %d", run, seed, gen)
		}
		if p := sim.Population(); p > res.Peak {
			res.Peak = p
		}
		if sim.Population() == 0 && res.ExtinctAt < 0 {
			res.ExtinctAt = gen
		}
	}
	res.Final = sim.Population()
	res.Generations = sim.Generation()
	return res, nil
}

// Report prints one line per result plus a summary.
func Report(w io.Writer, au aurora.Aurora, results []Result) {
	total := 0
	extinct := 0
	for _, r := range results {
		status := au.Green("OK").String()
		if r.ExtinctAt >= 0 {
			status = au.Yellow(fmt.Sprintf("extinct@%d", r.ExtinctAt)).String()
			extinct++
		}
		fmt.Fprintf(w, "  run %3d seed %-8d gens %-5d pop %6d -> %-6d peak %-6d %s\n",
			r.Run, r.Seed, r.Generations, r.Initial, r.Final, r.Peak, status)
		total += r.Final
	}
	avg := 0.0
	if len(results) > 0 {
		avg = float64(total) / float64(len(results))
	}
	fmt.Fprintf(w, "%s %d runs, %d extinct, mean final population %.1f\n",
		au.Bold("Summary:"), len(results), extinct, avg)
}
