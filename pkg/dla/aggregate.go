package dla

import (
	"math"
	"slices"
	"time"

	"droplet/pkg/core"
)

// Aggregate is a growing diffusion-limited cluster. It is created by New,
// grown by Generate or NextParticle, and owned by a single goroutine for the
// duration of any generation call.
type Aggregate struct {
	dim        int
	lattice    Lattice
	attractor  Attractor
	stickiness float64

	rng *core.RNG

	// particles holds the seed prefix followed by stuck walkers in stick order.
	particles []Point
	seed      []Point

	// steps[i] and bcolls[i] describe the i-th stuck walker (seed excluded).
	steps  []uint64
	bcolls []uint64

	maxX, maxY, maxZ int
	maxRSqd          int

	bOffset   int
	spawnDiam int
	attSize   int

	stepLimit uint64
	seeded    bool
}

// New constructs an empty aggregate from the configuration and seeds its PRNG.
// The seed geometry is materialized on the first generation call.
func New(cfg Config) (*Aggregate, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	bOffset := cfg.BoundaryOffset
	if bOffset < 1 {
		bOffset = DefaultBoundaryOffset
	}
	return &Aggregate{
		dim:        cfg.Dim,
		lattice:    cfg.Lattice,
		attractor:  cfg.Attractor,
		stickiness: cfg.Stickiness,
		rng:        core.NewRNG(seed),
		bOffset:    bOffset,
		spawnDiam:  bOffset,
		attSize:    cfg.AttractorSize,
		stepLimit:  cfg.StepLimit,
	}, nil
}

// Reserve pre-sizes particle and statistics storage for n additional particles.
func (a *Aggregate) Reserve(n int) {
	if n <= 0 {
		return
	}
	a.particles = slices.Grow(a.particles, n)
	a.steps = slices.Grow(a.steps, n)
	a.bcolls = slices.Grow(a.bcolls, n)
}

// Len returns the total number of particles, seed included.
func (a *Aggregate) Len() int { return len(a.particles) }

// SeedLen returns the number of seed particles.
func (a *Aggregate) SeedLen() int { return len(a.seed) }

// ParticleAt returns the i-th particle in insertion order. The first SeedLen
// entries are the seed.
func (a *Aggregate) ParticleAt(i int) Point { return a.particles[i] }

// Particles exposes the particle sequence. Callers must not mutate it.
func (a *Aggregate) Particles() []Point { return a.particles }

// SeedParticles exposes the seed prefix. Callers must not mutate it.
func (a *Aggregate) SeedParticles() []Point { return a.seed }

// RequiredSteps exposes the per-walker lattice step counts, one entry per
// stuck walker in stick order.
func (a *Aggregate) RequiredSteps() []uint64 { return a.steps }

// BoundaryCollisions exposes the per-walker boundary reflection counts.
func (a *Aggregate) BoundaryCollisions() []uint64 { return a.bcolls }

// MaxX returns the largest absolute x coordinate among stuck particles.
func (a *Aggregate) MaxX() int { return a.maxX }

// MaxY returns the largest absolute y coordinate among stuck particles.
func (a *Aggregate) MaxY() int { return a.maxY }

// MaxZ returns the largest absolute z coordinate among stuck particles.
func (a *Aggregate) MaxZ() int { return a.maxZ }

// MaxRadiusSquared returns the largest squared radius among stuck particles.
// It is tracked for the point, circle and sphere attractors.
func (a *Aggregate) MaxRadiusSquared() int { return a.maxRSqd }

// SpawnDiameter returns the current extent of the spawning surface.
func (a *Aggregate) SpawnDiameter() int { return a.spawnDiam }

// Stickiness returns the current stick probability.
func (a *Aggregate) Stickiness() float64 { return a.stickiness }

// SetStickiness updates the stick probability for subsequent particles.
func (a *Aggregate) SetStickiness(v float64) error {
	if v < 0 || v > 1 {
		return ErrStickiness
	}
	a.stickiness = v
	return nil
}

// Dim returns the lattice dimensionality.
func (a *Aggregate) Dim() int { return a.dim }

// LatticeType returns the configured lattice geometry.
func (a *Aggregate) LatticeType() Lattice { return a.lattice }

// AttractorType returns the configured seed geometry.
func (a *Aggregate) AttractorType() Attractor { return a.attractor }

// AttractorSize returns the linear size of the seed.
func (a *Aggregate) AttractorSize() int { return a.attSize }

// recordStick appends prev to the cluster and updates extent metrics and the
// spawning surface. The spawn region only ever grows.
func (a *Aggregate) recordStick(prev Point) {
	a.particles = append(a.particles, prev)

	if abs := absInt(prev.X); abs > a.maxX {
		a.maxX = abs
	}
	expandY := false
	if abs := absInt(prev.Y); abs > a.maxY {
		a.maxY = abs
		expandY = true
	}
	expandZ := false
	if a.dim == 3 {
		if abs := absInt(prev.Z); abs > a.maxZ {
			a.maxZ = abs
			expandZ = true
		}
	}

	switch a.attractor {
	case AttractorPoint:
		rsqd := prev.RadiusSquared()
		if rsqd > a.maxRSqd {
			a.maxRSqd = rsqd
			a.spawnDiam = 2*int(math.Sqrt(float64(rsqd))) + a.bOffset
		}
	case AttractorCircle, AttractorSphere:
		if rsqd := prev.RadiusSquared(); rsqd > a.maxRSqd {
			a.maxRSqd = rsqd
		}
	case AttractorLine:
		if a.dim == 2 && expandY {
			a.spawnDiam = absInt(prev.Y) + a.bOffset
		}
	case AttractorPlane:
		if expandZ {
			a.spawnDiam = absInt(prev.Z) + a.bOffset
		}
	}
}

// contains scans the cluster in insertion order for an exact coordinate match.
func (a *Aggregate) contains(p Point) bool {
	for i := range a.particles {
		if a.particles[i] == p {
			return true
		}
	}
	return false
}
