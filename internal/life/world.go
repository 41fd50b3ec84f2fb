package life

import "lifegrid/internal/core"

// Cell is a single grid position. NeighborCount is the number of live cells
// in the edge-clamped 8-neighborhood as of the last completed operation.
type Cell struct {
	Alive         bool
	NeighborCount uint8
}

// World is the read-only view of the grid handed to renderers. Cells are
// stored in row-major order.
type World struct {
	width, height int
	cells         []Cell
}

func newWorld(w, h int) World {
	return World{width: w, height: h, cells: make([]Cell, w*h)}
}

// Width returns the number of columns.
func (w *World) Width() int { return w.width }

// Height returns the number of rows.
func (w *World) Height() int { return w.height }

// Size returns the grid dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.width, H: w.height} }

// At returns the cell at (x, y). Coordinates must be in range.
func (w *World) At(x, y int) Cell { return w.cells[y*w.width+x] }

// Cells exposes the backing slice. Callers must not modify it.
func (w *World) Cells() []Cell { return w.cells }

func (w *World) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < w.width && y < w.height
}
