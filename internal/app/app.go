//go:build ebiten

package app

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"lifegrid/internal/core"
	"lifegrid/internal/life"
	"lifegrid/internal/render"
	"lifegrid/internal/ui"
)

const hudWidth = 180

// Game adapts a life simulation to the ebiten.Game interface.
type Game struct {
	sim     *life.Simulation
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
}

// New constructs a Game driving sim.
func New(sim *life.Simulation, cfg *Config) *Game {
	size := sim.Size()
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H, render.DefaultPalette()),
		hud:     ui.NewHUD(sim, hudWidth),
		pacer:   core.NewFixedStep(cfg.TPS),
		scale:   cfg.Scale,
	}
}

// Update polls input once per frame and advances the simulation when the
// pacer allows it.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.setPaused(!g.paused)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeyC) {
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && g.paused {
		g.tickOnce = true
	}

	if g.paused {
		g.edit()
	}

	if g.tickOnce || (!g.paused && g.pacer.ShouldStep()) {
		g.sim.Step()
		g.tickOnce = false
	}

	g.hud.SetStatus(g.status())
	g.hud.Update()
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if paused {
		ebiten.SetCursorShape(ebiten.CursorShapeCrosshair)
		return
	}
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
	g.pacer.Reset()
}

// edit applies mouse painting. Only called while paused.
func (g *Game) edit() {
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	px, py := ebiten.CursorPosition()
	x, y := PointerToCell(px, py, g.scale)
	if left {
		g.sim.InsertLife(x, y)
	}
	if right {
		g.sim.DeleteLife(x, y)
	}
}

func (g *Game) status() string {
	if g.paused {
		return "Paused"
	}
	return "Running"
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.World(), g.scale)
	s := g.sim.Size()
	g.hud.Draw(screen, s.W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + hudWidth, s.H * g.scale
}
