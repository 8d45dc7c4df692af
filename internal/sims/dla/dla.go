// Package dla adapts the diffusion-limited aggregation engine to the
// steppable model interface used by the viewer and the stream server.
package dla

import (
	"context"
	"errors"

	"droplet/internal/core"
	engine "droplet/pkg/dla"
)

// World grows a planar aggregate tick by tick and rasterizes it onto an
// origin-centered byte grid.
type World struct {
	cfg  Config
	agg  *engine.Aggregate
	grid *core.ByteGrid

	rate   int
	target int

	stalled bool
}

// New constructs a World from the provided configuration.
func New(cfg Config) *World {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		def := DefaultConfig()
		cfg.Width, cfg.Height = def.Width, def.Height
	}
	if cfg.Rate <= 0 {
		cfg.Rate = DefaultConfig().Rate
	}
	return &World{
		cfg:    cfg,
		grid:   core.NewByteGrid(cfg.Width, cfg.Height),
		rate:   cfg.Rate,
		target: cfg.Target,
	}
}

// Name returns the model identifier.
func (w *World) Name() string { return "dla" }

// Size returns the raster dimensions.
func (w *World) Size() core.Size { return core.Size{W: w.grid.W, H: w.grid.H} }

// Cells exposes the rasterized view of the aggregate.
func (w *World) Cells() []uint8 { return w.grid.Cells() }

// Aggregate exposes the underlying cluster for stats readers.
func (w *World) Aggregate() *engine.Aggregate { return w.agg }

// Stalled reports whether growth stopped because a walker exhausted its
// step budget.
func (w *World) Stalled() bool { return w.stalled }

// ClusterSize returns the number of stuck walkers, seed excluded.
func (w *World) ClusterSize() int {
	if w.agg == nil {
		return 0
	}
	return w.agg.Len() - w.agg.SeedLen()
}

// SpawnDiameter returns the current extent of the walker spawning surface.
func (w *World) SpawnDiameter() int {
	if w.agg == nil {
		return 0
	}
	return w.agg.SpawnDiameter()
}

// Extents returns the maximum absolute coordinate reached on each axis.
func (w *World) Extents() (x, y, z int) {
	if w.agg == nil {
		return 0, 0, 0
	}
	return w.agg.MaxX(), w.agg.MaxY(), w.agg.MaxZ()
}

// MeanSteps returns the average walk length of the stuck walkers.
func (w *World) MeanSteps() float64 {
	if w.agg == nil {
		return 0
	}
	steps := w.agg.RequiredSteps()
	if len(steps) == 0 {
		return 0
	}
	var sum uint64
	for _, s := range steps {
		sum += s
	}
	return float64(sum) / float64(len(steps))
}

// Done reports whether the configured particle target has been reached.
func (w *World) Done() bool {
	if w.target <= 0 || w.agg == nil {
		return false
	}
	return w.agg.Len()-w.agg.SeedLen() >= w.target
}

// Reset discards the cluster and starts a fresh one from the given seed.
func (w *World) Reset(seed int64) {
	cfg := w.cfg.Engine
	cfg.Seed = seed
	agg, err := engine.New(cfg)
	if err != nil {
		// fall back to the defaults rather than showing a dead board
		def := engine.DefaultConfig()
		def.Seed = seed
		agg, _ = engine.New(def)
	}
	w.agg = agg
	w.stalled = false
	_ = w.agg.Generate(context.Background(), 0, nil)
	w.rebuildRaster()
}

// Step releases one batch of walkers and refreshes the raster.
func (w *World) Step() {
	if w.agg == nil || w.stalled || w.Done() {
		return
	}
	ctx := context.Background()
	for i := 0; i < w.rate && !w.Done(); i++ {
		if err := w.agg.NextParticle(ctx); err != nil {
			if errors.Is(err, engine.ErrStepLimit) {
				w.stalled = true
			}
			break
		}
	}
	w.rebuildRaster()
}

// rebuildRaster repaints the grid from the particle list. Seed particles get
// the seed value and stuck walkers are bucketed by stick order so that the
// rendering can tint growth by age.
func (w *World) rebuildRaster() {
	w.grid.Clear()
	seedLen := w.agg.SeedLen()
	total := w.agg.Len()
	stuck := total - seedLen
	for i := 0; i < total; i++ {
		p := w.agg.ParticleAt(i)
		if i < seedLen {
			w.grid.SetCentered(p.X, p.Y, cellSeed)
			continue
		}
		w.grid.SetCentered(p.X, p.Y, ageBucket(i-seedLen, stuck))
	}
}

const (
	cellEmpty uint8 = iota
	cellSeed
	cellOldest
	// three more age buckets follow cellOldest
)

const ageBuckets = 4

// ageBucket maps a stick index to one of the age cell values. The oldest
// quarter of the cluster gets the lowest value.
func ageBucket(idx, stuck int) uint8 {
	if stuck <= 0 {
		return cellOldest
	}
	b := idx * ageBuckets / stuck
	if b >= ageBuckets {
		b = ageBuckets - 1
	}
	return cellOldest + uint8(b)
}

func init() {
	core.Register("dla", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
