package render

import (
	"image/color"

	"lifegrid/internal/life"
)

// Palette maps a cell's state and neighbor count to a display colour.
type Palette struct {
	Dead       color.RGBA
	AliveTwo   color.RGBA
	AliveThree color.RGBA
	AliveOther color.RGBA
}

// DefaultPalette shades live cells by how many neighbors they have: pure
// green for two, pale green for three and paler still for everything else.
func DefaultPalette() Palette {
	return Palette{
		Dead:       color.RGBA{A: 255},
		AliveTwo:   color.RGBA{G: 255, A: 255},
		AliveThree: color.RGBA{R: 125, G: 255, B: 125, A: 255},
		AliveOther: color.RGBA{R: 190, G: 255, B: 190, A: 255},
	}
}

// Color returns the colour for c.
func (p Palette) Color(c life.Cell) color.RGBA {
	switch {
	case !c.Alive:
		return p.Dead
	case c.NeighborCount == 2:
		return p.AliveTwo
	case c.NeighborCount == 3:
		return p.AliveThree
	default:
		return p.AliveOther
	}
}

// FillRGBA converts cells into RGBA pixels in buf, which must hold
// 4*len(cells) bytes.
func FillRGBA(buf []byte, cells []life.Cell, p Palette) {
	for i, c := range cells {
		col := p.Color(c)
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
