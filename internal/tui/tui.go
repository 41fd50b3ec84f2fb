// Package tui is a terminal front-end for a life simulation.
package tui

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"lifegrid/internal/life"
)

const (
	viewField  = "field"
	viewStatus = "status"
	viewHelp   = "help"

	leftColumnWidth = 28
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

// ConsoleUI owns the simulation for the lifetime of the terminal session.
// All simulation calls happen on the gocui main loop.
type ConsoleUI struct {
	sim    *life.Simulation
	g      *gocui.Gui
	keys   []keyBinding
	field  fieldRenderer
	au     aurora.Aurora
	tick   time.Duration
	paused bool
}

// New creates the terminal UI. tps is the number of generations per second
// while running.
func New(sim *life.Simulation, tps int) (*ConsoleUI, error) {
	if tps <= 0 {
		tps = 1
	}
	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, errors.Wrap(err, "create terminal gui")
	}
	g.Mouse = true

	au := aurora.NewAurora(true)
	t := &ConsoleUI{
		sim:   sim,
		g:     g,
		field: fieldRenderer{au: au},
		au:    au,
		tick:  time.Second / time.Duration(tps),
	}
	t.keys = []keyBinding{
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{gocui.KeySpace, "SPACE", "Pause", t.cmdPause, ""},
		{'n', "N", "Step", t.cmdStep, ""},
		{'c', "C", "Clear", t.cmdClear, ""},
		{'r', "R", "Randomize", t.cmdRandomize, ""},
		{gocui.MouseLeft, "MOUSE L", "Insert (paused)", t.cmdInsert, viewField},
		{gocui.MouseRight, "MOUSE R", "Delete (paused)", t.cmdDelete, viewField},
	}
	g.SetManagerFunc(t.layout)
	for _, kb := range t.keys {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(_ *gocui.Gui, v *gocui.View) error { return h(v) }); err != nil {
			g.Close()
			return nil, errors.Wrapf(err, "bind %s", kb.name)
		}
	}
	return t, nil
}

// Run blocks until the user quits.
func (t *ConsoleUI) Run() error {
	defer t.g.Close()

	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(t.tick)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				t.g.Update(t.advance)
			}
		}
	}()

	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return errors.Wrap(err, "terminal main loop")
	}
	return nil
}

func (t *ConsoleUI) advance(g *gocui.Gui) error {
	if t.paused {
		return nil
	}
	t.sim.Step()
	return t.refresh(g)
}

func (t *ConsoleUI) refresh(g *gocui.Gui) error {
	if err := t.renderField(g); err != nil {
		return err
	}
	return t.renderStatus(g)
}

func (t *ConsoleUI) renderField(g *gocui.Gui) error {
	v, err := g.View(viewField)
	if err != nil {
		// Not laid out yet.
		return nil
	}
	v.Clear()
	maxW, maxH := v.Size()
	_, err = fmt.Fprint(v, t.field.render(t.sim.World(), maxW, maxH))
	return err
}

func (t *ConsoleUI) renderStatus(g *gocui.Gui) error {
	v, err := g.View(viewStatus)
	if err != nil {
		return nil
	}
	v.Clear()
	mode := t.au.Cyan("running").String()
	if t.paused {
		mode = t.au.Blue("paused").String()
	}
	_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", mode))
	for _, group := range t.sim.Parameters().Groups {
		for _, p := range group.Params {
			_, _ = fmt.Fprintln(v, t.renderProp(p.Label, "%v", p.Value))
		}
	}
	return nil
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+t.au.Green(name).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if v, err := g.SetView(viewStatus, 0, 0, leftColumnWidth, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = "Status"
	}
	if v, err := g.SetView(viewField, leftColumnWidth+1, 0, maxX-1, maxY-3); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Title = t.sim.Name()
	}
	if v, err := g.SetView(viewHelp, -1, maxY-3, maxX, maxY-1); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
		v.Frame = false
		var b bytes.Buffer
		b.WriteString("KEYS: ")
		for i, k := range t.keys {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(t.au.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}
	return t.refresh(g)
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	return gocui.ErrQuit
}

func (t *ConsoleUI) cmdPause(_ *gocui.View) error {
	t.paused = !t.paused
	return t.refresh(t.g)
}

func (t *ConsoleUI) cmdStep(_ *gocui.View) error {
	if !t.paused {
		return nil
	}
	t.sim.Step()
	return t.refresh(t.g)
}

func (t *ConsoleUI) cmdClear(_ *gocui.View) error {
	t.sim.Clear()
	return t.refresh(t.g)
}

func (t *ConsoleUI) cmdRandomize(_ *gocui.View) error {
	t.sim.Randomize()
	return t.refresh(t.g)
}

func (t *ConsoleUI) cmdInsert(v *gocui.View) error {
	if !t.paused {
		return nil
	}
	t.sim.InsertLife(v.Cursor())
	return t.refresh(t.g)
}

func (t *ConsoleUI) cmdDelete(v *gocui.View) error {
	if !t.paused {
		return nil
	}
	t.sim.DeleteLife(v.Cursor())
	return t.refresh(t.g)
}
