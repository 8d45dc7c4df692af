package dla

// stepWalker advances the walker by one lattice move chosen uniformly from the
// active move set. A single uniform draw is compared against cumulative
// thresholds in declared order; the final branch absorbs any numeric residue.
// The ordering is fixed so that a given PRNG stream reproduces the same walk.
func (a *Aggregate) stepWalker(p *Point) {
	md := a.rng.Float64()
	if a.dim == 2 {
		a.step2D(md, p)
		return
	}
	a.step3D(md, p)
}

func (a *Aggregate) step2D(md float64, p *Point) {
	if a.lattice == LatticeSquare {
		if md < 0.25 {
			p.X++
		} else if md < 0.5 {
			p.X--
		} else if md < 0.75 {
			p.Y++
		} else {
			p.Y--
		}
		return
	}
	// triangular lattice, six neighbours
	if md < 1.0/6.0 {
		p.X++
	} else if md < 2.0/6.0 {
		p.X--
	} else if md < 3.0/6.0 {
		p.X++
		p.Y++
	} else if md < 4.0/6.0 {
		p.X++
		p.Y--
	} else if md < 5.0/6.0 {
		p.X--
		p.Y++
	} else {
		p.X--
		p.Y--
	}
}

func (a *Aggregate) step3D(md float64, p *Point) {
	if a.lattice == LatticeSquare {
		if md < 1.0/6.0 {
			p.X++
		} else if md < 2.0/6.0 {
			p.X--
		} else if md < 3.0/6.0 {
			p.Y++
		} else if md < 4.0/6.0 {
			p.Y--
		} else if md < 5.0/6.0 {
			p.Z++
		} else {
			p.Z--
		}
		return
	}
	// eight-move tetrahedral set, taken verbatim from the reference model
	if md < 1.0/8.0 {
		p.X++
		p.Y++
	} else if md < 2.0/8.0 {
		p.X++
		p.Y--
	} else if md < 3.0/8.0 {
		p.X--
		p.Y--
	} else if md < 4.0/8.0 {
		p.X--
		p.Y++
	} else if md < 5.0/8.0 {
		p.X++
	} else if md < 6.0/8.0 {
		p.X--
	} else if md < 7.0/8.0 {
		p.Z++
	} else {
		p.Z--
	}
}
