package dla

import "image/color"

var dlaPalette = buildPalette()

// Palette exposes the color palette used for rendering the cluster.
func (w *World) Palette() []color.RGBA {
	return dlaPalette
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, 2+ageBuckets)
	palette[cellEmpty] = color.RGBA{R: 8, G: 8, B: 12, A: 255}
	palette[cellSeed] = color.RGBA{R: 255, G: 200, B: 90, A: 255}
	old := color.RGBA{R: 40, G: 70, B: 140, A: 255}
	young := color.RGBA{R: 150, G: 220, B: 255, A: 255}
	for b := 0; b < ageBuckets; b++ {
		t := float64(b) / float64(ageBuckets-1)
		palette[int(cellOldest)+b] = lerpRGBA(old, young, t)
	}
	return palette
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}
