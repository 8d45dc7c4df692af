package dla

import (
	"strconv"

	engine "droplet/pkg/dla"
)

// Config carries the raster and growth settings for the viewer model.
type Config struct {
	Width  int
	Height int

	// Rate is the number of walkers released per tick.
	Rate int

	// Target stops growth once this many walkers have stuck. Zero means
	// grow without bound.
	Target int

	Engine engine.Config
}

// DefaultConfig returns a medium board growing a point-seeded cluster.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Rate:   4,
		Target: 0,
		Engine: engine.DefaultConfig(),
	}
}

// FromMap builds a Config from string key/value pairs, falling back to
// defaults for missing or malformed entries. Engine keys are shared with
// the headless generator.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, err := strconv.Atoi(cfg["width"]); err == nil && v > 0 {
		c.Width = v
	}
	if v, err := strconv.Atoi(cfg["height"]); err == nil && v > 0 {
		c.Height = v
	}
	if v, err := strconv.Atoi(cfg["rate"]); err == nil && v > 0 {
		c.Rate = v
	}
	if v, err := strconv.Atoi(cfg["target"]); err == nil && v >= 0 {
		c.Target = v
	}
	c.Engine = engine.FromMap(cfg)
	// the raster is a flat view, so the lattice stays two-dimensional
	c.Engine.Dim = 2
	if !validPlanarAttractor(c.Engine.Attractor) {
		c.Engine.Attractor = engine.AttractorPoint
	}
	return c
}

func validPlanarAttractor(a engine.Attractor) bool {
	switch a {
	case engine.AttractorPoint, engine.AttractorLine, engine.AttractorCircle:
		return true
	}
	return false
}
