package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int { return s.W * s.H }

// Sim is the read-side contract front-ends use to label and lay out a
// running simulation.
type Sim interface {
	Name() string
	Size() Size
	Parameters() ParameterSnapshot
}
