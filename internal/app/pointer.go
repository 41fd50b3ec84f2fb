package app

// PointerToCell maps a pointer position in scaled screen pixels to grid
// coordinates. Positions left of or above the grid map to -1 so callers can
// hand them to the forgiving InsertLife/DeleteLife without extra checks.
func PointerToCell(px, py, scale int) (x, y int) {
	if scale <= 0 {
		scale = 1
	}
	return floorDiv(px, scale), floorDiv(py, scale)
}

func floorDiv(v, d int) int {
	if v < 0 {
		return -1
	}
	return v / d
}
