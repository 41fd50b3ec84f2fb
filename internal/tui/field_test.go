package tui

import (
	"strings"
	"testing"

	"github.com/logrusorgru/aurora"

	"lifegrid/internal/life"
)

func newPlainRenderer() fieldRenderer {
	return fieldRenderer{au: aurora.NewAurora(false)}
}

func TestRenderFieldPlain(t *testing.T) {
	sim, err := life.New("tui", 3, 2, life.WithSeed(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sim.Clear()
	sim.InsertLife(0, 0)
	sim.InsertLife(2, 1)

	got := newPlainRenderer().render(sim.World(), 10, 10)
	want := "█░░\n░░█"
	if got != want {
		t.Fatalf("render =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderFieldCrops(t *testing.T) {
	sim, err := life.New("tui", 8, 5, life.WithSeed(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := newPlainRenderer().render(sim.World(), 4, 3)
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	for _, l := range lines[:2] {
		if n := len([]rune(l)); n != 4 {
			t.Fatalf("line %q has %d cells, want 4", l, n)
		}
	}
	if !strings.Contains(lines[2], "larger than the viewing area") {
		t.Fatalf("missing crop warning, got %q", lines[2])
	}
}

func TestGlyphShadesByNeighborCount(t *testing.T) {
	f := fieldRenderer{au: aurora.NewAurora(true)}
	two := f.glyph(life.Cell{Alive: true, NeighborCount: 2})
	three := f.glyph(life.Cell{Alive: true, NeighborCount: 3})
	other := f.glyph(life.Cell{Alive: true, NeighborCount: 5})
	if two == three || three == other || two == other {
		t.Fatalf("live glyphs not distinguished: %q %q %q", two, three, other)
	}
	if !strings.Contains(f.glyph(life.Cell{}), deadGlyph) {
		t.Fatal("dead glyph missing")
	}
}
