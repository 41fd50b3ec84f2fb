package life

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/pkg/errors"

	"lifegrid/internal/patterns"
)

type snapshot struct {
	cells      []Cell
	buffer     []uint8
	population int
}

func takeSnapshot(s *Simulation) snapshot {
	return snapshot{
		cells:      append([]Cell(nil), s.world.Cells()...),
		buffer:     append([]uint8(nil), s.buffer.Cells()...),
		population: s.population,
	}
}

func (a snapshot) equal(b snapshot) bool {
	return a.population == b.population && slices.Equal(a.cells, b.cells) && slices.Equal(a.buffer, b.buffer)
}

func newEmpty(t *testing.T, w, h int) *Simulation {
	t.Helper()
	s, err := New("test", w, h, WithSeed(1))
	if err != nil {
		t.Fatalf("New(%d,%d): %v", w, h, err)
	}
	s.Clear()
	return s
}

func mustVerify(t *testing.T, s *Simulation) {
	t.Helper()
	if err := s.Verify(); err != nil {
		t.Fatalf("invariant broken: %v", err)
	}
}

func expectAlive(t *testing.T, s *Simulation, alive map[[2]int]bool) {
	t.Helper()
	w := s.World()
	for y := 0; y < w.Height(); y++ {
		for x := 0; x < w.Width(); x++ {
			if got, want := w.At(x, y).Alive, alive[[2]int{x, y}]; got != want {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, got, want)
			}
		}
	}
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 5}, {5, 0}, {-1, 3}, {0, 0}} {
		s, err := New("bad", dims[0], dims[1])
		if !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("New(%d,%d) err = %v, want ErrInvalidDimensions", dims[0], dims[1], err)
		}
		if s != nil {
			t.Fatalf("New(%d,%d) returned a simulation alongside the error", dims[0], dims[1])
		}
	}
}

func TestNewRandomizesAndKeepsName(t *testing.T) {
	s, err := New("Game of Life", 40, 30, WithSeed(7))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.Name() != "Game of Life" {
		t.Fatalf("name = %q", s.Name())
	}
	if s.Population() == 0 || s.Population() == 40*30 {
		t.Fatalf("population %d does not look random", s.Population())
	}
	mustVerify(t, s)
}

func TestRandomizeDeterministicForSeed(t *testing.T) {
	a, _ := New("a", 32, 24, WithSeed(99))
	b, _ := New("b", 32, 24, WithSeed(99))
	if !slices.Equal(a.World().Cells(), b.World().Cells()) {
		t.Fatal("same seed produced different grids")
	}
	a.Randomize()
	b.Randomize()
	if !slices.Equal(a.World().Cells(), b.World().Cells()) {
		t.Fatal("second Randomize diverged for the same seed")
	}
	if a.Population() != b.Population() {
		t.Fatalf("populations differ: %d vs %d", a.Population(), b.Population())
	}
}

func TestClearIdempotent(t *testing.T) {
	s, _ := New("clear", 16, 16, WithSeed(3))
	s.Step()
	s.Clear()
	once := takeSnapshot(s)
	s.Clear()
	if !once.equal(takeSnapshot(s)) {
		t.Fatal("second Clear changed state")
	}
	if s.Population() != 0 || s.Generation() != 0 {
		t.Fatalf("population=%d generation=%d after Clear", s.Population(), s.Generation())
	}
	for i, c := range s.World().Cells() {
		if c != (Cell{}) {
			t.Fatalf("cell %d = %+v after Clear", i, c)
		}
	}
	mustVerify(t, s)
}

func TestToggleCountsFullNeighborhood(t *testing.T) {
	s := newEmpty(t, 3, 3)
	if err := s.Toggle(1, 1); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	w := s.World()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			want := uint8(1)
			if x == 1 && y == 1 {
				want = 0
			}
			if got := w.At(x, y).NeighborCount; got != want {
				t.Fatalf("cell (%d,%d) count=%d, want %d", x, y, got, want)
			}
		}
	}
	if s.Population() != 1 {
		t.Fatalf("population = %d, want 1", s.Population())
	}
}

func TestToggleTwiceRestoresState(t *testing.T) {
	s, _ := New("sym", 12, 9, WithSeed(11))
	for _, xy := range [][2]int{{0, 0}, {11, 8}, {5, 4}, {11, 0}, {0, 8}} {
		before := takeSnapshot(s)
		if err := s.Toggle(xy[0], xy[1]); err != nil {
			t.Fatalf("Toggle%v: %v", xy, err)
		}
		mustVerify(t, s)
		if err := s.Toggle(xy[0], xy[1]); err != nil {
			t.Fatalf("Toggle%v: %v", xy, err)
		}
		if !before.equal(takeSnapshot(s)) {
			t.Fatalf("double toggle at %v did not restore state", xy)
		}
	}
}

func TestInsertDeleteIdempotent(t *testing.T) {
	s := newEmpty(t, 5, 5)
	s.InsertLife(2, 2)
	after := takeSnapshot(s)
	s.InsertLife(2, 2)
	if !after.equal(takeSnapshot(s)) {
		t.Fatal("InsertLife on a live cell changed state")
	}
	s.DeleteLife(2, 2)
	dead := takeSnapshot(s)
	s.DeleteLife(2, 2)
	if !dead.equal(takeSnapshot(s)) {
		t.Fatal("DeleteLife on a dead cell changed state")
	}
	if s.Population() != 0 {
		t.Fatalf("population = %d, want 0", s.Population())
	}
	mustVerify(t, s)
}

func TestOutOfBounds(t *testing.T) {
	s, _ := New("bounds", 8, 6, WithSeed(5))
	mustVerify(t, s)
	before := takeSnapshot(s)

	for _, xy := range [][2]int{{8, 0}, {0, 6}, {-1, 0}, {0, -1}} {
		err := s.Toggle(xy[0], xy[1])
		if !errors.Is(err, ErrOutOfBounds) {
			t.Fatalf("Toggle%v err = %v, want ErrOutOfBounds", xy, err)
		}
		s.InsertLife(xy[0], xy[1])
		s.DeleteLife(xy[0], xy[1])
	}
	if !before.equal(takeSnapshot(s)) {
		t.Fatal("out of bounds calls changed state")
	}
	mustVerify(t, s)
}

func TestBlinkerOscillation(t *testing.T) {
	s := newEmpty(t, 3, 3)
	for x := 0; x < 3; x++ {
		s.InsertLife(x, 1)
	}
	row := map[[2]int]bool{{0, 1}: true, {1, 1}: true, {2, 1}: true}
	col := map[[2]int]bool{{1, 0}: true, {1, 1}: true, {1, 2}: true}

	s.Step()
	expectAlive(t, s, col)
	mustVerify(t, s)

	s.Step()
	expectAlive(t, s, row)
	mustVerify(t, s)

	if s.Generation() != 2 {
		t.Fatalf("generation = %d, want 2", s.Generation())
	}
}

func TestStepUsesCountsFromBeforeThePass(t *testing.T) {
	// A vertical blinker at the left edge: scanning row-major kills (0,0)
	// before (1,1) is visited. An in-place update would see (1,1) with only
	// two neighbors and leave it dead.
	s := newEmpty(t, 3, 3)
	s.InsertLife(0, 0)
	s.InsertLife(0, 1)
	s.InsertLife(0, 2)

	s.Step()
	expectAlive(t, s, map[[2]int]bool{{0, 1}: true, {1, 1}: true})
	mustVerify(t, s)
}

func TestBlockIsStable(t *testing.T) {
	s := newEmpty(t, 8, 8)
	block, err := patterns.Lookup("block")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	s.Stamp(block, 3, 3)
	want := takeSnapshot(s)
	for i := 0; i < 10; i++ {
		s.Step()
		if !want.equal(takeSnapshot(s)) {
			t.Fatalf("block changed after step %d", i+1)
		}
	}
	if s.Population() != 4 {
		t.Fatalf("population = %d, want 4", s.Population())
	}
	for _, xy := range [][2]int{{3, 3}, {4, 3}, {3, 4}, {4, 4}} {
		if got := s.World().At(xy[0], xy[1]).NeighborCount; got != 3 {
			t.Fatalf("block cell %v count = %d, want 3", xy, got)
		}
	}
}

func TestGliderTranslates(t *testing.T) {
	s := newEmpty(t, 10, 10)
	glider, _ := patterns.Lookup("glider")
	s.Stamp(glider, 1, 1)

	want := map[[2]int]bool{}
	for _, c := range glider.Cells {
		want[[2]int{c[0] + 2, c[1] + 2}] = true
	}
	for i := 0; i < 4; i++ {
		s.Step()
	}
	expectAlive(t, s, want)
	mustVerify(t, s)
}

func TestStampDropsCellsOutsideGrid(t *testing.T) {
	s := newEmpty(t, 4, 4)
	block, _ := patterns.Lookup("block")
	s.Stamp(block, 3, 3)
	if s.Population() != 1 {
		t.Fatalf("population = %d, want 1", s.Population())
	}
	mustVerify(t, s)
}

func TestInvariantsHoldUnderRandomOperations(t *testing.T) {
	s, _ := New("fuzz", 17, 11, WithSeed(2024))
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		x, y := r.IntN(19)-1, r.IntN(13)-1
		switch r.IntN(10) {
		case 0:
			s.Clear()
		case 1:
			s.Randomize()
		case 2, 3:
			s.InsertLife(x, y)
		case 4, 5:
			s.DeleteLife(x, y)
		case 6:
			_ = s.Toggle(x, y)
		default:
			s.Step()
		}
		if err := s.Verify(); err != nil {
			t.Fatalf("op %d: %v", i, err)
		}
	}
}

func TestParametersReportState(t *testing.T) {
	s := newEmpty(t, 10, 10)
	s.InsertLife(0, 0)
	s.Step()
	snap := s.Parameters()
	for key, want := range map[string]string{
		"name":       "test",
		"size":       "10x10",
		"generation": "1",
		"population": "0",
		"density":    "0.0%",
	} {
		p, ok := snap.Lookup(key)
		if !ok {
			t.Fatalf("parameter %q missing", key)
		}
		if p.Value != want {
			t.Fatalf("parameter %q = %q, want %q", key, p.Value, want)
		}
	}
}
