package dla

// spawn places a fresh walker on the spawning surface enclosing the cluster.
// All arithmetic is floating point truncated toward zero.
func (a *Aggregate) spawn(p *Point) {
	ppr := a.rng.Float64()
	if a.dim == 2 {
		a.spawn2D(ppr, p)
		return
	}
	a.spawn3D(ppr, p)
}

func (a *Aggregate) spawn2D(ppr float64, p *Point) {
	switch a.attractor {
	case AttractorPoint, AttractorCircle:
		// circle shares the point bounding box; the seed is the difference
		if ppr < 0.5 { // positive/negative y-edge of boundary
			p.X = int(float64(a.spawnDiam) * (a.rng.Float64() - 0.5))
			if ppr < 0.25 {
				p.Y = a.spawnDiam / 2
			} else {
				p.Y = -(a.spawnDiam / 2)
			}
		} else { // positive/negative x-edge of boundary
			if ppr < 0.75 {
				p.X = a.spawnDiam / 2
			} else {
				p.X = -(a.spawnDiam / 2)
			}
			p.Y = int(float64(a.spawnDiam) * (a.rng.Float64() - 0.5))
		}
	case AttractorLine:
		p.X = 2 * int(float64(a.attSize)*(a.rng.Float64()-0.5))
		if ppr < 0.5 {
			p.Y = a.spawnDiam
		} else {
			p.Y = -a.spawnDiam
		}
	}
}

func (a *Aggregate) spawn3D(ppr float64, p *Point) {
	switch a.attractor {
	case AttractorPoint, AttractorCircle, AttractorSphere:
		if ppr < 1.0/3.0 { // positive/negative z-face of boundary
			p.X = int(float64(a.spawnDiam) * (a.rng.Float64() - 0.5))
			p.Y = int(float64(a.spawnDiam) * (a.rng.Float64() - 0.5))
			if ppr < 1.0/6.0 {
				p.Z = a.spawnDiam / 2
			} else {
				p.Z = -(a.spawnDiam / 2)
			}
		} else if ppr < 2.0/3.0 { // positive/negative x-face of boundary
			if ppr < 0.5 {
				p.X = a.spawnDiam / 2
			} else {
				p.X = -(a.spawnDiam / 2)
			}
			p.Y = int(float64(a.spawnDiam) * (a.rng.Float64() - 0.5))
			p.Z = int(float64(a.spawnDiam) * (a.rng.Float64() - 0.5))
		} else { // positive/negative y-face of boundary
			p.X = int(float64(a.spawnDiam) * (a.rng.Float64() - 0.5))
			if ppr < 5.0/6.0 {
				p.Y = a.spawnDiam / 2
			} else {
				p.Y = -(a.spawnDiam / 2)
			}
			p.Z = int(float64(a.spawnDiam) * (a.rng.Float64() - 0.5))
		}
	case AttractorLine:
		p.X = 2 * int(float64(a.attSize)*(a.rng.Float64()-0.5))
		if ppr < 0.5 {
			p.Y = a.spawnDiam
			p.Z = a.spawnDiam
		} else {
			p.Y = -a.spawnDiam
			p.Z = -a.spawnDiam
		}
	case AttractorPlane:
		p.X = 2 * int(float64(a.attSize)*(a.rng.Float64()-0.5))
		p.Y = 2 * int(float64(a.attSize)*(a.rng.Float64()-0.5))
		if ppr < 0.5 {
			p.Z = a.spawnDiam
		} else {
			p.Z = -a.spawnDiam
		}
	}
}
