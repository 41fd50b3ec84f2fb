package life

import (
	"strconv"

	"lifegrid/internal/core"
)

// Parameters reports the simulation's current state for display.
func (s *Simulation) Parameters() core.ParameterSnapshot {
	size := s.Size()
	density := 0.0
	if area := size.Area(); area > 0 {
		density = float64(s.population) / float64(area) * 100
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				{Key: "name", Label: "Name", Value: s.name},
				{Key: "size", Label: "Size", Value: strconv.Itoa(size.W) + "x" + strconv.Itoa(size.H)},
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Value: strconv.Itoa(s.generation)},
				{Key: "population", Label: "Population", Value: strconv.Itoa(s.population)},
				{Key: "density", Label: "Density", Value: strconv.FormatFloat(density, 'f', 1, 64) + "%", Description: "live cells as a share of the grid"},
			},
		},
	}}
}
