package dla

import (
	"math"

	"droplet/internal/core"
)

// Tunables lists the growth settings adjustable from the HUD.
func (w *World) Tunables() []core.Tunable {
	return []core.Tunable{
		{Key: "stickiness", Label: "Stickiness", Step: 0.05, Min: 0, Max: 1},
		{Key: "rate", Label: "Walkers/tick", Int: true, Step: 1, Min: 1, Max: 64},
	}
}

// TunableValue returns the current value of the named setting.
func (w *World) TunableValue(key string) float64 {
	switch key {
	case "stickiness":
		if w.agg != nil {
			return w.agg.Stickiness()
		}
		return w.cfg.Engine.Stickiness
	case "rate":
		return float64(w.rate)
	}
	return 0
}

// SetTunable applies a HUD adjustment. Rejected values leave the model
// unchanged.
func (w *World) SetTunable(key string, value float64) bool {
	switch key {
	case "stickiness":
		if w.agg == nil {
			return false
		}
		if err := w.agg.SetStickiness(value); err != nil {
			return false
		}
		w.cfg.Engine.Stickiness = value
		return true
	case "rate":
		rate := int(math.Round(value))
		if rate < 1 {
			return false
		}
		w.rate = rate
		w.cfg.Rate = rate
		return true
	}
	return false
}
