//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"lifegrid/internal/core"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

// HUD renders the simulation's parameters in a panel to the right of the
// grid.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	status     string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{sim: sim, width: width}
}

// SetStatus sets the free-form line shown under the title, e.g. "Paused".
func (h *HUD) SetStatus(status string) {
	if h == nil {
		return
	}
	h.status = status
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.snapshot = h.sim.Parameters()
}

// Draw paints the HUD panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawText()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawText() {
	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	text.Draw(h.panel, h.sim.Name(), face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})
	y += lineHeight
	if h.status != "" {
		text.Draw(h.panel, h.status, face, panelPadding, y, color.RGBA{R: 125, G: 255, B: 125, A: 255})
		y += lineHeight
	}

	for _, group := range h.snapshot.Groups {
		y += lineHeight / 2
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += lineHeight
		for _, p := range group.Params {
			text.Draw(h.panel, p.Label, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
			bounds := text.BoundString(face, p.Value)
			text.Draw(h.panel, p.Value, face, h.width-panelPadding-bounds.Dx(), y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			y += lineHeight
		}
	}

	y += lineHeight / 2
	for _, line := range []string{"X/Space pause", "N step (paused)", "C clear  R random", "Mouse L/R paint", "Esc quit"} {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 110, G: 110, B: 120, A: 255})
		y += lineHeight
	}
}
