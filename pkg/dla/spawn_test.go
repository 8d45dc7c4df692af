package dla

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSpawn2DPointOnBoxEdge(t *testing.T) {
	agg := newTestAggregate(t, nil)
	agg.spawnDiam = 40
	half := agg.spawnDiam / 2
	onEdge := 0
	for i := 0; i < 2000; i++ {
		var p Point
		agg.spawn(&p)
		require.Zero(t, p.Z)
		require.LessOrEqual(t, absInt(p.X), half)
		require.LessOrEqual(t, absInt(p.Y), half)
		if absInt(p.X) == half || absInt(p.Y) == half {
			onEdge++
		}
	}
	// every spawn pins one coordinate to ±spawn_diam/2
	require.Equal(t, 2000, onEdge)
}

func TestSpawn2DPointHitsAllFourEdges(t *testing.T) {
	agg := newTestAggregate(t, nil)
	agg.spawnDiam = 20
	half := agg.spawnDiam / 2
	var top, bottom, right, left bool
	for i := 0; i < 2000; i++ {
		var p Point
		agg.spawn(&p)
		switch {
		case p.Y == half:
			top = true
		case p.Y == -half:
			bottom = true
		case p.X == half:
			right = true
		case p.X == -half:
			left = true
		}
	}
	require.True(t, top && bottom && right && left, "edges hit: +y=%v -y=%v +x=%v -x=%v", top, bottom, right, left)
}

func TestSpawn2DLine(t *testing.T) {
	agg := newTestAggregate(t, func(c *Config) {
		c.Attractor = AttractorLine
		c.AttractorSize = 7
	})
	agg.spawnDiam = 15
	var above, below bool
	for i := 0; i < 2000; i++ {
		var p Point
		agg.spawn(&p)
		require.LessOrEqual(t, absInt(p.X), agg.attSize)
		require.Zero(t, p.X%2, "line spawn x must be even")
		require.Equal(t, agg.spawnDiam, absInt(p.Y))
		if p.Y > 0 {
			above = true
		} else {
			below = true
		}
	}
	require.True(t, above && below)
}

func TestSpawn3DPointOnCubeFace(t *testing.T) {
	agg := newTestAggregate(t, func(c *Config) { c.Dim = 3 })
	agg.spawnDiam = 30
	half := agg.spawnDiam / 2
	faces := map[string]bool{}
	for i := 0; i < 5000; i++ {
		var p Point
		agg.spawn(&p)
		require.LessOrEqual(t, absInt(p.X), half)
		require.LessOrEqual(t, absInt(p.Y), half)
		require.LessOrEqual(t, absInt(p.Z), half)
		switch {
		case p.Z == half:
			faces["+z"] = true
		case p.Z == -half:
			faces["-z"] = true
		case p.X == half:
			faces["+x"] = true
		case p.X == -half:
			faces["-x"] = true
		case p.Y == half:
			faces["+y"] = true
		case p.Y == -half:
			faces["-y"] = true
		default:
			t.Fatalf("spawn %+v not on any cube face", p)
		}
	}
	require.Len(t, faces, 6)
}

func TestSpawn3DLineTiesSigns(t *testing.T) {
	agg := newTestAggregate(t, func(c *Config) {
		c.Dim = 3
		c.Attractor = AttractorLine
		c.AttractorSize = 5
	})
	agg.spawnDiam = 11
	for i := 0; i < 1000; i++ {
		var p Point
		agg.spawn(&p)
		require.Equal(t, agg.spawnDiam, absInt(p.Y))
		require.Equal(t, p.Y, p.Z, "y and z signs are tied to the same draw")
	}
}

func TestSpawn3DPlane(t *testing.T) {
	agg := newTestAggregate(t, func(c *Config) {
		c.Dim = 3
		c.Attractor = AttractorPlane
		c.AttractorSize = 6
	})
	agg.spawnDiam = 9
	var above, below bool
	for i := 0; i < 1000; i++ {
		var p Point
		agg.spawn(&p)
		require.LessOrEqual(t, absInt(p.X), agg.attSize)
		require.LessOrEqual(t, absInt(p.Y), agg.attSize)
		require.Equal(t, agg.spawnDiam, absInt(p.Z))
		if p.Z > 0 {
			above = true
		} else {
			below = true
		}
	}
	require.True(t, above && below)
}

func TestSpawnCircleUsesPointSurface(t *testing.T) {
	agg := newTestAggregate(t, func(c *Config) {
		c.Attractor = AttractorCircle
		c.AttractorSize = 4
	})
	agg.spawnDiam = 24
	half := agg.spawnDiam / 2
	for i := 0; i < 500; i++ {
		var p Point
		agg.spawn(&p)
		if absInt(p.X) != half && absInt(p.Y) != half {
			t.Fatalf("circle spawn %+v not on the point bounding box", p)
		}
	}
}

func TestSpawnSphereUsesPointSurface(t *testing.T) {
	agg := newTestAggregate(t, func(c *Config) {
		c.Dim = 3
		c.Attractor = AttractorSphere
		c.AttractorSize = 4
	})
	agg.spawnDiam = 24
	half := agg.spawnDiam / 2
	for i := 0; i < 500; i++ {
		var p Point
		agg.spawn(&p)
		if absInt(p.X) != half && absInt(p.Y) != half && absInt(p.Z) != half {
			t.Fatalf("sphere spawn %+v not on the point bounding cube", p)
		}
	}
}
