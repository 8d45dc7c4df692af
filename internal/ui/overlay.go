//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"droplet/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type clusterProvider interface {
	ClusterSize() int
	SpawnDiameter() int
	Extents() (x, y, z int)
	MeanSteps() float64
}

// Overlay draws optional growth diagnostics on top of the base view.
type Overlay struct {
	sim   core.Sim
	scale int

	showSurface bool
	showStats   bool

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for the given simulation and pixel scale.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale, showStats: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update handles the overlay toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showSurface = !o.showSurface
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showStats = !o.showStats
	}
}

// Draw renders the enabled diagnostics onto the screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	provider, ok := o.sim.(clusterProvider)
	if !ok {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	if o.showSurface {
		o.drawSpawnSurface(screen, provider.SpawnDiameter(), size, scale)
	}
	if o.showStats {
		ex, ey, _ := provider.Extents()
		fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		line := fmt.Sprintf("particles %d  surface %d", provider.ClusterSize(), provider.SpawnDiameter())
		text.Draw(screen, line, basicfont.Face7x13, 6, 16, fg)
		line = fmt.Sprintf("extent %dx%d  mean steps %.1f", ex, ey, provider.MeanSteps())
		text.Draw(screen, line, basicfont.Face7x13, 6, 30, fg)
	}
}

// drawSpawnSurface outlines the square region walkers are released from,
// centered on the raster origin.
func (o *Overlay) drawSpawnSurface(screen *ebiten.Image, diam int, size core.Size, scale int) {
	if diam <= 0 {
		return
	}
	cx := float64(size.W/2) * float64(scale)
	cy := float64(size.H/2) * float64(scale)
	half := float64(diam) / 2 * float64(scale)

	left := cx - half
	right := cx + half
	top := cy - half
	bottom := cy + half

	col := color.RGBA{R: 255, G: 120, B: 40, A: 180}
	thickness := math.Max(1, float64(scale)*0.5)
	o.drawLine(screen, left, top, right, top, thickness, col)
	o.drawLine(screen, right, top, right, bottom, thickness, col)
	o.drawLine(screen, right, bottom, left, bottom, thickness, col)
	o.drawLine(screen, left, bottom, left, top, thickness, col)
}

func (o *Overlay) drawLine(screen *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	if o.pixel == nil || thickness <= 0 {
		return
	}
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}
