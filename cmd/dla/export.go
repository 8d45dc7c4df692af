package main

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"droplet/pkg/dla"
)

// writeCSV emits one row per particle. Seed rows carry zero statistics
// because seed particles never walked.
func writeCSV(w io.Writer, agg *dla.Aggregate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "z", "seed", "steps", "boundary_collisions"}); err != nil {
		return err
	}
	seedLen := agg.SeedLen()
	steps := agg.RequiredSteps()
	bcolls := agg.BoundaryCollisions()
	for i := 0; i < agg.Len(); i++ {
		p := agg.ParticleAt(i)
		row := []string{
			strconv.Itoa(p.X),
			strconv.Itoa(p.Y),
			strconv.Itoa(p.Z),
			"0", "0", "0",
		}
		if i < seedLen {
			row[3] = "1"
		} else {
			stuck := i - seedLen
			row[4] = strconv.FormatUint(steps[stuck], 10)
			row[5] = strconv.FormatUint(bcolls[stuck], 10)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type reportParticle struct {
	X    int  `json:"x"`
	Y    int  `json:"y"`
	Z    int  `json:"z"`
	Seed bool `json:"seed"`
}

type reportStats struct {
	Particles        int     `json:"particles"`
	SeedParticles    int     `json:"seed_particles"`
	MaxX             int     `json:"max_x"`
	MaxY             int     `json:"max_y"`
	MaxZ             int     `json:"max_z"`
	MaxRadiusSquared int     `json:"max_radius_squared"`
	SpawnDiameter    int     `json:"spawn_diameter"`
	MeanSteps        float64 `json:"mean_steps"`
	MeanBoundary     float64 `json:"mean_boundary_collisions"`
}

type runReport struct {
	Dim                int              `json:"dim"`
	Lattice            string           `json:"lattice"`
	Attractor          string           `json:"attractor"`
	Stickiness         float64          `json:"stickiness"`
	Particles          []reportParticle `json:"particles"`
	RequiredSteps      []uint64         `json:"required_steps"`
	BoundaryCollisions []uint64         `json:"boundary_collisions"`
	Stats              reportStats      `json:"stats"`
}

// writeJSON emits the full run report for external plotting.
func writeJSON(w io.Writer, agg *dla.Aggregate) error {
	seedLen := agg.SeedLen()
	particles := make([]reportParticle, agg.Len())
	for i := range particles {
		p := agg.ParticleAt(i)
		particles[i] = reportParticle{X: p.X, Y: p.Y, Z: p.Z, Seed: i < seedLen}
	}
	meanSteps, meanBcolls := means(agg.RequiredSteps(), agg.BoundaryCollisions())
	report := runReport{
		Dim:                agg.Dim(),
		Lattice:            agg.LatticeType().String(),
		Attractor:          agg.AttractorType().String(),
		Stickiness:         agg.Stickiness(),
		Particles:          particles,
		RequiredSteps:      agg.RequiredSteps(),
		BoundaryCollisions: agg.BoundaryCollisions(),
		Stats: reportStats{
			Particles:        agg.Len() - seedLen,
			SeedParticles:    seedLen,
			MaxX:             agg.MaxX(),
			MaxY:             agg.MaxY(),
			MaxZ:             agg.MaxZ(),
			MaxRadiusSquared: agg.MaxRadiusSquared(),
			SpawnDiameter:    agg.SpawnDiameter(),
			MeanSteps:        meanSteps,
			MeanBoundary:     meanBcolls,
		},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
