package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width      int
	Height     int
	Rate       int
	Target     int
	Stickiness float64
	Lattice    string
	Attractor  string
	AttSize    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:        "dla",
		Scale:      3,
		TPS:        60,
		Seed:       42,
		Width:      256,
		Height:     256,
		Rate:       4,
		Stickiness: 1.0,
		Lattice:    "square",
		Attractor:  "point",
		AttSize:    1,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "model to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for model reset")
	fs.IntVar(&c.Width, "width", c.Width, "raster width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "raster height in cells")
	fs.IntVar(&c.Rate, "rate", c.Rate, "walkers released per tick")
	fs.IntVar(&c.Target, "target", c.Target, "stop after this many walkers (0 = unbounded)")
	fs.Float64Var(&c.Stickiness, "stickiness", c.Stickiness, "stick probability in [0,1]")
	fs.StringVar(&c.Lattice, "lattice", c.Lattice, "lattice geometry (square, triangle)")
	fs.StringVar(&c.Attractor, "attractor", c.Attractor, "seed shape (point, line, circle)")
	fs.IntVar(&c.AttSize, "att-size", c.AttSize, "linear size of the seed shape")
}

// Options flattens the model settings into the factory configuration map.
func (c *Config) Options() map[string]string {
	return map[string]string{
		"width":      strconv.Itoa(c.Width),
		"height":     strconv.Itoa(c.Height),
		"rate":       strconv.Itoa(c.Rate),
		"target":     strconv.Itoa(c.Target),
		"stickiness": strconv.FormatFloat(c.Stickiness, 'f', -1, 64),
		"lattice":    c.Lattice,
		"attractor":  c.Attractor,
		"att_size":   strconv.Itoa(c.AttSize),
	}
}
