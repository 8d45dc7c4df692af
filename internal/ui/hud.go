//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"droplet/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// growthModel is the read-only view the HUD needs of a growing cluster.
type growthModel interface {
	ClusterSize() int
	SpawnDiameter() int
	Extents() (x, y, z int)
	MeanSteps() float64
	Stalled() bool
	Done() bool
}

// HUD renders the growth panel to the right of the cluster view: live
// statistics on top, adjustable settings below.
type HUD struct {
	sim   core.Sim
	width int

	model    growthModel
	tunables core.TunableSim
	rows     []tunableRow

	panel      *ebiten.Image
	pixel      *ebiten.Image
	lastHeight int
	offsetX    int
}

type tunableRow struct {
	def   core.Tunable
	minus image.Rectangle
	plus  image.Rectangle
}

const (
	hudPadding = 12
	hudLine    = 16
	hudRowH    = 34
	hudButton  = 22
	hudGap     = 6

	// the statistics block occupies the top of the panel; tunable rows
	// start below it
	hudTunablesTop = hudPadding + 8*hudLine + 10
)

var (
	hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	hudHeadline   = color.RGBA{R: 255, G: 200, B: 90, A: 255}
	hudText       = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	hudDim        = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	hudGrowing    = color.RGBA{R: 140, G: 220, B: 140, A: 255}
	hudStalled    = color.RGBA{R: 255, G: 120, B: 40, A: 255}
	hudComplete   = color.RGBA{R: 150, G: 220, B: 255, A: 255}
)

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.model, _ = sim.(growthModel)
	if tunables, ok := sim.(core.TunableSim); ok {
		h.tunables = tunables
		for i, def := range tunables.Tunables() {
			top := hudTunablesTop + i*hudRowH
			buttonY := top + (hudRowH-hudButton)/2
			plus := image.Rect(width-hudPadding-hudButton, buttonY, width-hudPadding, buttonY+hudButton)
			minus := plus.Sub(image.Pt(hudButton+hudGap, 0))
			h.rows = append(h.rows, tunableRow{def: def, minus: minus, plus: plus})
		}
	}
	return h
}

// Update handles clicks on the tunable adjustment buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offsetX = panelOffsetX
	if h.tunables == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	p := image.Pt(mx-panelOffsetX, my)
	if p.X < 0 {
		return
	}
	for _, row := range h.rows {
		if p.In(row.minus) {
			h.adjust(row.def, -1)
			return
		}
		if p.In(row.plus) {
			h.adjust(row.def, +1)
			return
		}
	}
}

// adjust nudges a tunable one step in the given direction, clamped to its
// bounds.
func (h *HUD) adjust(def core.Tunable, direction int) {
	cur := h.tunables.TunableValue(def.Key)
	step := def.Step
	if step <= 0 {
		step = 1
	}
	target := cur + float64(direction)*step
	if target < def.Min {
		target = def.Min
	}
	if target > def.Max {
		target = def.Max
	}
	if math.Abs(target-cur) < 1e-9 {
		return
	}
	h.tunables.SetTunable(def.Key, target)
}

// Draw paints the panel anchored to the right edge of the cluster view.
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
	h.panel.Fill(hudBackground)
	h.drawStats()
	h.drawTunables()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStats() {
	face := basicfont.Face7x13
	y := hudPadding + face.Ascent
	title := strings.ToUpper(h.sim.Name()) + " growth"
	text.Draw(h.panel, title, face, hudPadding, y, hudHeadline)
	y += hudLine + hudLine/2

	if h.model == nil {
		text.Draw(h.panel, "no growth statistics", face, hudPadding, y, hudDim)
		return
	}
	ex, ey, _ := h.model.Extents()
	lines := []string{
		fmt.Sprintf("cluster    %d", h.model.ClusterSize()),
		fmt.Sprintf("surface    %d", h.model.SpawnDiameter()),
		fmt.Sprintf("extent     %dx%d", ex, ey),
		fmt.Sprintf("mean walk  %.1f", h.model.MeanSteps()),
	}
	for _, line := range lines {
		text.Draw(h.panel, line, face, hudPadding, y, hudText)
		y += hudLine
	}

	status, col := "growing", hudGrowing
	switch {
	case h.model.Stalled():
		status, col = "stalled", hudStalled
	case h.model.Done():
		status, col = "complete", hudComplete
	}
	y += hudLine / 2
	text.Draw(h.panel, status, face, hudPadding, y, col)
}

func (h *HUD) drawTunables() {
	if h.tunables == nil {
		return
	}
	face := basicfont.Face7x13
	for _, row := range h.rows {
		cur := h.tunables.TunableValue(row.def.Key)
		baseline := row.minus.Min.Y + (hudButton+face.Ascent)/2

		text.Draw(h.panel, row.def.Label, face, hudPadding, baseline, hudText)

		value := formatTunable(row.def, cur)
		valueX := row.minus.Min.X - hudGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, valueX, baseline, hudText)

		h.drawButton(row.minus, "-", cur > row.def.Min+1e-9)
		h.drawButton(row.plus, "+", cur < row.def.Max-1e-9)
	}
}

func formatTunable(def core.Tunable, value float64) string {
	if def.Int {
		return strconv.Itoa(int(math.Round(value)))
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg, fg := color.RGBA{R: 54, G: 56, B: 64, A: 255}, hudText
	if !enabled {
		bg, fg = color.RGBA{R: 32, G: 34, B: 40, A: 255}, hudDim
	}
	h.fillRect(rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) fillRect(rect image.Rectangle, col color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	h.panel.DrawImage(h.pixel, op)
}
