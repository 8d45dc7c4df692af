package dla

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateFirstStickIsAdjacentToSeed(t *testing.T) {
	agg := newTestAggregate(t, nil)
	require.NoError(t, agg.Generate(context.Background(), 1, nil))
	require.Equal(t, 2, agg.Len())
	require.Equal(t, 1, agg.SeedLen())

	stuck := agg.ParticleAt(1)
	want := []Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	require.Contains(t, want, stuck, "first particle must neighbor the origin seed")
	require.Len(t, agg.RequiredSteps(), 1)
	require.Len(t, agg.BoundaryCollisions(), 1)
	require.NotZero(t, agg.RequiredSteps()[0])
}

func TestGenerateNegativeCount(t *testing.T) {
	agg := newTestAggregate(t, nil)
	require.ErrorIs(t, agg.Generate(context.Background(), -1, nil), ErrParticleCount)
}

func TestGenerateZeroSeedsOnly(t *testing.T) {
	agg := newTestAggregate(t, func(c *Config) {
		c.Attractor = AttractorLine
		c.AttractorSize = 5
	})
	require.NoError(t, agg.Generate(context.Background(), 0, nil))
	require.Equal(t, 5, agg.Len())
	require.Empty(t, agg.RequiredSteps())
}

func TestGenerateDeterministic(t *testing.T) {
	run := func() *Aggregate {
		agg := newTestAggregate(t, func(c *Config) { c.Lattice = LatticeTriangle })
		require.NoError(t, agg.Generate(context.Background(), 50, nil))
		return agg
	}
	a, b := run(), run()
	require.Equal(t, a.Particles(), b.Particles())
	require.Equal(t, a.RequiredSteps(), b.RequiredSteps())
	require.Equal(t, a.BoundaryCollisions(), b.BoundaryCollisions())
}

func TestGenerateParticlesDistinct(t *testing.T) {
	agg := newTestAggregate(t, nil)
	require.NoError(t, agg.Generate(context.Background(), 100, nil))
	seen := map[Point]bool{}
	for _, p := range agg.Particles() {
		if seen[p] {
			t.Fatalf("particle %+v appears twice", p)
		}
		seen[p] = true
	}
}

func TestGenerateClusterIsConnected(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(*Config)
	}{
		{"2DSquarePoint", nil},
		{"2DTriangleLine", func(c *Config) {
			c.Lattice = LatticeTriangle
			c.Attractor = AttractorLine
			c.AttractorSize = 5
		}},
		{"3DSquarePoint", func(c *Config) { c.Dim = 3 }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			agg := newTestAggregate(t, tc.mutate)
			require.NoError(t, agg.Generate(context.Background(), 40, nil))
			moves := moveSet(agg.Dim(), agg.LatticeType())
			for i := agg.SeedLen(); i < agg.Len(); i++ {
				p := agg.ParticleAt(i)
				adjacent := false
				for j := 0; j < i && !adjacent; j++ {
					q := agg.ParticleAt(j)
					for _, m := range moves {
						if (Point{X: q.X + m.X, Y: q.Y + m.Y, Z: q.Z + m.Z}) == p {
							adjacent = true
							break
						}
					}
				}
				if !adjacent {
					t.Fatalf("particle %d at %+v touches no earlier particle", i, p)
				}
			}
		})
	}
}

func TestGenerateStatsLengthsCoherent(t *testing.T) {
	agg := newTestAggregate(t, func(c *Config) {
		c.Dim = 3
		c.Attractor = AttractorPlane
		c.AttractorSize = 3
	})
	require.NoError(t, agg.Generate(context.Background(), 30, nil))
	stuck := agg.Len() - agg.SeedLen()
	require.Equal(t, 30, stuck)
	require.Len(t, agg.RequiredSteps(), stuck)
	require.Len(t, agg.BoundaryCollisions(), stuck)
}

func TestGenerateProgressCallback(t *testing.T) {
	agg := newTestAggregate(t, nil)
	var calls []int
	require.NoError(t, agg.Generate(context.Background(), 10, func(done, total int) {
		require.Equal(t, 10, total)
		calls = append(calls, done)
	}))
	require.Len(t, calls, 10)
	for i, done := range calls {
		require.Equal(t, i+1, done)
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	agg := newTestAggregate(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, agg.Generate(ctx, 10, nil), context.Canceled)
	require.Zero(t, agg.Len()-agg.SeedLen())
}

func TestGenerateCancelMidway(t *testing.T) {
	agg := newTestAggregate(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	err := agg.Generate(ctx, 100, func(done, total int) {
		if done == 7 {
			cancel()
		}
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 7, agg.Len()-agg.SeedLen())
	require.Len(t, agg.RequiredSteps(), 7)
}

func TestGenerateStepLimit(t *testing.T) {
	agg := newTestAggregate(t, func(c *Config) {
		c.Stickiness = 0 // the walker can never stick
		c.StepLimit = 500
	})
	require.ErrorIs(t, agg.Generate(context.Background(), 1, nil), ErrStepLimit)
	require.Equal(t, 1, agg.Len(), "a failed walker leaves only the seed")
	require.Empty(t, agg.RequiredSteps())
	require.Empty(t, agg.BoundaryCollisions())
}

func TestNextParticleIncremental(t *testing.T) {
	agg := newTestAggregate(t, nil)
	ctx := context.Background()
	prevSpawn := agg.SpawnDiameter()
	for i := 0; i < 60; i++ {
		require.NoError(t, agg.NextParticle(ctx))
		require.Equal(t, agg.SeedLen()+i+1, agg.Len())
		require.GreaterOrEqual(t, agg.SpawnDiameter(), prevSpawn, "the spawning surface must never shrink")
		prevSpawn = agg.SpawnDiameter()
	}
	require.Len(t, agg.RequiredSteps(), 60)
}

func TestNextParticleMatchesGenerate(t *testing.T) {
	a := newTestAggregate(t, nil)
	b := newTestAggregate(t, nil)
	ctx := context.Background()
	require.NoError(t, a.Generate(ctx, 25, nil))
	for i := 0; i < 25; i++ {
		require.NoError(t, b.NextParticle(ctx))
	}
	require.Equal(t, a.Particles(), b.Particles())
}

func TestGenerateExtentMetrics(t *testing.T) {
	agg := newTestAggregate(t, nil)
	require.NoError(t, agg.Generate(context.Background(), 200, nil))

	var wantX, wantY, wantR int
	for _, p := range agg.Particles()[agg.SeedLen():] {
		if v := absInt(p.X); v > wantX {
			wantX = v
		}
		if v := absInt(p.Y); v > wantY {
			wantY = v
		}
		if r := p.RadiusSquared(); r > wantR {
			wantR = r
		}
	}
	require.Equal(t, wantX, agg.MaxX())
	require.Equal(t, wantY, agg.MaxY())
	require.Equal(t, wantR, agg.MaxRadiusSquared())
	require.GreaterOrEqual(t, agg.MaxRadiusSquared(), agg.MaxX()*agg.MaxX())
	require.GreaterOrEqual(t, agg.MaxRadiusSquared(), agg.MaxY()*agg.MaxY())
	require.GreaterOrEqual(t, agg.SpawnDiameter(), agg.bOffset)
}

func TestGenerateLowStickinessWandersLonger(t *testing.T) {
	mean := func(stickiness float64) float64 {
		agg := newTestAggregate(t, func(c *Config) { c.Stickiness = stickiness })
		require.NoError(t, agg.Generate(context.Background(), 80, nil))
		var sum uint64
		for _, s := range agg.RequiredSteps() {
			sum += s
		}
		return float64(sum) / float64(len(agg.RequiredSteps()))
	}
	require.Greater(t, mean(0.1), mean(1.0),
		"reluctant walkers must take more lattice steps on average")
}

func TestGenerateSetStickinessMidRun(t *testing.T) {
	agg := newTestAggregate(t, nil)
	ctx := context.Background()
	require.NoError(t, agg.Generate(ctx, 10, nil))
	require.NoError(t, agg.SetStickiness(0.5))
	require.NoError(t, agg.Generate(ctx, 10, nil))
	require.Equal(t, 20, agg.Len()-agg.SeedLen())
}

func TestGenerate3DSphere(t *testing.T) {
	agg := newTestAggregate(t, func(c *Config) {
		c.Dim = 3
		c.Attractor = AttractorSphere
		c.AttractorSize = 5
	})
	require.NoError(t, agg.Generate(context.Background(), 25, nil))
	require.Equal(t, 25, agg.Len()-agg.SeedLen())
	require.GreaterOrEqual(t, agg.MaxRadiusSquared(), 0)
}
