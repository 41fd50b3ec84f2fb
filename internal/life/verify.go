package life

import "github.com/pkg/errors"

// Verify recounts every neighborhood and the population by brute force and
// reports the first disagreement with the incrementally maintained values.
func (s *Simulation) Verify() error {
	w, h := s.world.width, s.world.height
	live := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := s.world.At(x, y)
			if c.Alive {
				live++
			}
			want := s.countNeighbors(x, y)
			if int(c.NeighborCount) != want {
				return errors.Errorf("cell (%d,%d): neighbor count %d, recount %d", x, y, c.NeighborCount, want)
			}
			if got := int(s.buffer.At(x, y)); got != want {
				return errors.Errorf("cell (%d,%d): buffered count %d, recount %d", x, y, got, want)
			}
		}
	}
	if live != s.population {
		return errors.Errorf("population %d, recount %d", s.population, live)
	}
	return nil
}

func (s *Simulation) countNeighbors(x, y int) int {
	n := 0
	x0, y0, x1, y1 := s.buffer.Neighborhood(x, y)
	for ny := y0; ny <= y1; ny++ {
		for nx := x0; nx <= x1; nx++ {
			if (nx != x || ny != y) && s.world.At(nx, ny).Alive {
				n++
			}
		}
	}
	return n
}
