// Package life implements Conway's Game of Life (B3/S23) on an edge-clamped
// grid.
//
// Every cell carries its live-neighbor count. Toggling a cell adjusts a
// separate neighbor-count buffer for the surrounding cells, and the buffer is
// copied into the cells once an operation completes. Step decides every
// cell's fate from the counts published before the pass began, so cells
// flipped early in a pass never influence later decisions in the same pass.
package life

import (
	"time"

	"github.com/pkg/errors"

	"lifegrid/internal/core"
	"lifegrid/internal/patterns"
)

// Simulation owns a World and its neighbor-count buffer. It is not safe for
// concurrent use.
type Simulation struct {
	name       string
	world      World
	buffer     *core.ByteGrid
	population int
	generation int
	rng        *core.RNG
}

// Option configures a Simulation at construction time.
type Option func(*options)

type options struct {
	seed int64
}

// WithSeed makes Randomize deterministic for the lifetime of the simulation.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// New allocates a width x height simulation and randomizes it.
func New(name string, width, height int, opts ...Option) (*Simulation, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}
	o := options{seed: time.Now().UnixNano()}
	for _, opt := range opts {
		opt(&o)
	}
	s := &Simulation{
		name:   name,
		world:  newWorld(width, height),
		buffer: core.NewByteGrid(width, height),
		rng:    core.NewRNG(o.seed),
	}
	s.Randomize()
	return s, nil
}

// Name returns the simulation's identifier.
func (s *Simulation) Name() string { return s.name }

// Size returns the grid dimensions.
func (s *Simulation) Size() core.Size { return s.world.Size() }

// World returns a read-only view of the grid.
func (s *Simulation) World() *World { return &s.world }

// Population returns the number of live cells.
func (s *Simulation) Population() int { return s.population }

// Generation returns the number of steps taken since the last Clear or
// Randomize.
func (s *Simulation) Generation() int { return s.generation }

// Clear kills every cell and zeroes all neighbor counts.
func (s *Simulation) Clear() {
	for i := range s.world.cells {
		s.world.cells[i] = Cell{}
	}
	s.buffer.Clear()
	s.population = 0
	s.generation = 0
}

// Randomize clears the world and brings each cell to life with probability
// one half.
func (s *Simulation) Randomize() {
	s.Clear()
	w, h := s.world.width, s.world.height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if s.rng.Bool() {
				s.flip(x, y)
			}
		}
	}
	s.publish()
}

// Toggle flips the cell at (x, y).
func (s *Simulation) Toggle(x, y int) error {
	if !s.world.inBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "toggle (%d,%d) on %dx%d grid", x, y, s.world.width, s.world.height)
	}
	s.flip(x, y)
	s.publishAround(x, y)
	return nil
}

// InsertLife brings the cell at (x, y) to life. Dead cells outside the grid
// and already-live cells are left alone.
func (s *Simulation) InsertLife(x, y int) {
	if !s.world.inBounds(x, y) || s.world.At(x, y).Alive {
		return
	}
	s.flip(x, y)
	s.publishAround(x, y)
}

// DeleteLife kills the cell at (x, y) if it is alive and inside the grid.
func (s *Simulation) DeleteLife(x, y int) {
	if !s.world.inBounds(x, y) || !s.world.At(x, y).Alive {
		return
	}
	s.flip(x, y)
	s.publishAround(x, y)
}

// Stamp brings the pattern's cells to life with its top-left corner at
// (ox, oy). Cells falling outside the grid are dropped.
func (s *Simulation) Stamp(p patterns.Pattern, ox, oy int) {
	for _, c := range p.Cells {
		s.InsertLife(ox+c[0], oy+c[1])
	}
}

// Step advances the world by one generation.
func (s *Simulation) Step() {
	w, h := s.world.width, s.world.height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// NeighborCount still holds the count published before this pass;
			// flip only touches the buffer.
			c := s.world.cells[y*w+x]
			switch {
			case c.Alive && (c.NeighborCount < 2 || c.NeighborCount > 3):
				s.flip(x, y)
			case !c.Alive && c.NeighborCount == 3:
				s.flip(x, y)
			}
		}
	}
	s.publish()
	s.generation++
}

// flip inverts a cell and updates the buffered counts of its neighbors. The
// cells' visible counts are not touched.
func (s *Simulation) flip(x, y int) {
	i := y*s.world.width + x
	alive := !s.world.cells[i].Alive
	s.world.cells[i].Alive = alive

	delta := -1
	if alive {
		delta = 1
	}
	x0, y0, x1, y1 := s.buffer.Neighborhood(x, y)
	for ny := y0; ny <= y1; ny++ {
		for nx := x0; nx <= x1; nx++ {
			if nx == x && ny == y {
				continue
			}
			s.buffer.Add(nx, ny, delta)
		}
	}
	s.population += delta
}

// publish copies the whole buffer into the cells.
func (s *Simulation) publish() {
	for i, n := range s.buffer.Cells() {
		s.world.cells[i].NeighborCount = n
	}
}

// publishAround copies the buffer for the 3x3 block around (x, y), the only
// counts a single flip can change.
func (s *Simulation) publishAround(x, y int) {
	x0, y0, x1, y1 := s.buffer.Neighborhood(x, y)
	for ny := y0; ny <= y1; ny++ {
		for nx := x0; nx <= x1; nx++ {
			s.world.cells[ny*s.world.width+nx].NeighborCount = s.buffer.At(nx, ny)
		}
	}
}
