package tui

import (
	"bytes"

	"github.com/logrusorgru/aurora"

	"lifegrid/internal/life"
)

const (
	liveGlyph = "█"
	deadGlyph = "░"
)

// fieldRenderer turns a world into colored terminal text. Live cells are
// shaded by neighbor count the same way the pixel renderer does it.
type fieldRenderer struct {
	au aurora.Aurora
}

func (f fieldRenderer) glyph(c life.Cell) string {
	switch {
	case !c.Alive:
		return f.au.BrightBlack(deadGlyph).String()
	case c.NeighborCount == 2:
		return f.au.Green(liveGlyph).String()
	case c.NeighborCount == 3:
		return f.au.BrightGreen(liveGlyph).String()
	default:
		return f.au.BrightWhite(liveGlyph).String()
	}
}

// render writes at most maxW columns and maxH rows of the world. When the
// world does not fit, the last visible row carries a warning instead.
func (f fieldRenderer) render(w *life.World, maxW, maxH int) string {
	var b bytes.Buffer
	crop := w.Width() > maxW || w.Height() > maxH
	for y := 0; y < w.Height() && y < maxH; y++ {
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(f.au.Red("The field is larger than the viewing area").String())
			break
		}
		for x := 0; x < w.Width() && x < maxW; x++ {
			b.WriteString(f.glyph(w.At(x, y)))
		}
	}
	return b.String()
}
