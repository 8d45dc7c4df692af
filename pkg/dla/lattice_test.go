package dla

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestAggregate(t *testing.T, mutate func(*Config)) *Aggregate {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 1337
	if mutate != nil {
		mutate(&cfg)
	}
	agg, err := New(cfg)
	require.NoError(t, err)
	return agg
}

func moveSet(dim int, lt Lattice) []Point {
	switch {
	case dim == 2 && lt == LatticeSquare:
		return []Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	case dim == 2 && lt == LatticeTriangle:
		return []Point{
			{X: 1}, {X: -1},
			{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1},
		}
	case dim == 3 && lt == LatticeSquare:
		return []Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1}}
	default:
		return []Point{
			{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1}, {X: -1, Y: 1},
			{X: 1}, {X: -1}, {Z: 1}, {Z: -1},
		}
	}
}

func isLatticeMove(dim int, lt Lattice, d Point) bool {
	for _, m := range moveSet(dim, lt) {
		if m == d {
			return true
		}
	}
	return false
}

func TestStepWalkerStaysOnMoveSet(t *testing.T) {
	cases := []struct {
		name string
		dim  int
		lt   Lattice
	}{
		{"2DSquare", 2, LatticeSquare},
		{"2DTriangle", 2, LatticeTriangle},
		{"3DSquare", 3, LatticeSquare},
		{"3DTriangle", 3, LatticeTriangle},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			agg := newTestAggregate(t, func(c *Config) {
				c.Dim = tc.dim
				c.Lattice = tc.lt
			})
			var p Point
			for i := 0; i < 5000; i++ {
				prev := p
				agg.stepWalker(&p)
				delta := Point{X: p.X - prev.X, Y: p.Y - prev.Y, Z: p.Z - prev.Z}
				if !isLatticeMove(tc.dim, tc.lt, delta) {
					t.Fatalf("step %d produced delta %+v, not in %s move set", i, delta, tc.lt)
				}
			}
		})
	}
}

func TestStepWalkerCoversMoveSet(t *testing.T) {
	for _, tc := range []struct {
		name string
		dim  int
		lt   Lattice
	}{
		{"2DSquare", 2, LatticeSquare},
		{"2DTriangle", 2, LatticeTriangle},
		{"3DSquare", 3, LatticeSquare},
		{"3DTriangle", 3, LatticeTriangle},
	} {
		t.Run(tc.name, func(t *testing.T) {
			agg := newTestAggregate(t, func(c *Config) {
				c.Dim = tc.dim
				c.Lattice = tc.lt
			})
			seen := map[Point]int{}
			var p Point
			for i := 0; i < 20000; i++ {
				prev := p
				agg.stepWalker(&p)
				seen[Point{X: p.X - prev.X, Y: p.Y - prev.Y, Z: p.Z - prev.Z}]++
			}
			moves := moveSet(tc.dim, tc.lt)
			require.Len(t, seen, len(moves))
			// every move should come up roughly uniformly often
			want := 20000 / len(moves)
			for _, m := range moves {
				require.Greater(t, seen[m], want/2, "move %+v drawn too rarely", m)
			}
		})
	}
}

func TestStepWalker2DLeavesZUntouched(t *testing.T) {
	agg := newTestAggregate(t, func(c *Config) { c.Lattice = LatticeTriangle })
	var p Point
	for i := 0; i < 2000; i++ {
		agg.stepWalker(&p)
		if p.Z != 0 {
			t.Fatalf("2D walk moved z to %d", p.Z)
		}
	}
}

func TestStepWalkerDeterministic(t *testing.T) {
	a := newTestAggregate(t, func(c *Config) { c.Dim = 3; c.Lattice = LatticeTriangle })
	b := newTestAggregate(t, func(c *Config) { c.Dim = 3; c.Lattice = LatticeTriangle })
	var pa, pb Point
	for i := 0; i < 3000; i++ {
		a.stepWalker(&pa)
		b.stepWalker(&pb)
		if pa != pb {
			t.Fatalf("walks diverged at step %d: %+v vs %+v", i, pa, pb)
		}
	}
}
