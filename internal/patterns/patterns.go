// Package patterns holds named seed patterns that can be stamped onto a
// simulation grid.
package patterns

import (
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnknownPattern is returned by Lookup when no pattern is registered
// under the requested name.
var ErrUnknownPattern = errors.New("unknown pattern")

// Pattern is a set of live cell offsets relative to its top-left corner.
type Pattern struct {
	Name  string
	Descr string
	Cells [][2]int
}

// Bounds returns the width and height of the pattern's bounding box.
func (p Pattern) Bounds() (w, h int) {
	for _, c := range p.Cells {
		if c[0]+1 > w {
			w = c[0] + 1
		}
		if c[1]+1 > h {
			h = c[1] + 1
		}
	}
	return w, h
}

// Parse builds a pattern from plaintext rows where 'O' or '*' marks a live
// cell and '.' a dead one.
func Parse(name string, rows []string) (Pattern, error) {
	p := Pattern{Name: name}
	for y, row := range rows {
		for x, r := range row {
			switch r {
			case 'O', '*':
				p.Cells = append(p.Cells, [2]int{x, y})
			case '.':
			default:
				return Pattern{}, errors.Errorf("pattern %q: unexpected %q at row %d col %d", name, r, y, x)
			}
		}
	}
	if len(p.Cells) == 0 {
		return Pattern{}, errors.Errorf("pattern %q has no live cells", name)
	}
	return p, nil
}

var registry = map[string]Pattern{}

// Register adds a pattern under its name, replacing any previous entry.
func Register(p Pattern) {
	if p.Name == "" || len(p.Cells) == 0 {
		return
	}
	registry[strings.ToLower(p.Name)] = p
}

// Lookup returns the pattern registered under name.
func Lookup(name string) (Pattern, error) {
	p, ok := registry[strings.ToLower(name)]
	if !ok {
		return Pattern{}, errors.Wrapf(ErrUnknownPattern, "%q (have %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}

// Names lists the registered pattern names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for k := range registry {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func mustParse(name, descr string, rows ...string) Pattern {
	p, err := Parse(name, rows)
	if err != nil {
		panic(err)
	}
	p.Descr = descr
	return p
}

func init() {
	Register(mustParse("block", "2x2 still life", "OO", "OO"))
	Register(mustParse("beehive", "six-cell still life", ".OO.", "O..O", ".OO."))
	Register(mustParse("blinker", "period 2 oscillator", "OOO"))
	Register(mustParse("toad", "period 2 oscillator", ".OOO", "OOO."))
	Register(mustParse("glider", "diagonal spaceship", ".O.", "..O", "OOO"))
	Register(mustParse("r-pentomino", "methuselah, settles after 1103 generations", ".OO", "OO.", ".O."))
}
