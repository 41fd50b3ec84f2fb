//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"lifegrid/internal/life"
)

// GridPainter updates a single RGBA image from the simulation's world.
type GridPainter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette Palette
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int, p Palette) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h), palette: p}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the world into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, world *life.World, scale int) {
	cells := world.Cells()
	if len(cells) != gp.w*gp.h {
		return
	}
	FillRGBA(gp.buf, cells, gp.palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
