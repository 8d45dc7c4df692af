package dla

import "context"

// ProgressFunc is invoked after each stick with the number of particles stuck
// so far and the target count. It must not mutate the aggregate.
type ProgressFunc func(done, total int)

// Generate grows the aggregate until n more particles have stuck. The context
// is polled between particles; cancellation leaves the aggregate consistent
// with every particle that already stuck. progress may be nil.
func (a *Aggregate) Generate(ctx context.Context, n int, progress ProgressFunc) error {
	if n < 0 {
		return ErrParticleCount
	}
	a.Reserve(n)
	a.ensureSeed(n)
	for count := 0; count < n; count++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.NextParticle(ctx); err != nil {
			return err
		}
		if progress != nil {
			progress(count+1, n)
		}
	}
	return nil
}

// NextParticle releases one walker from the spawning surface and advances it
// until it sticks. It records the walker's step and boundary reflection
// counts and returns ErrStepLimit if the walker exhausts its step budget.
func (a *Aggregate) NextParticle(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	a.ensureSeed(1)

	var curr, prev Point
	a.spawn(&curr)
	var steps, bcolls uint64
	for {
		prev = curr
		a.stepWalker(&curr)
		if a.enforceBoundary(&curr, prev) {
			bcolls++
		}
		steps++
		if a.tryStick(curr, prev) {
			a.steps = append(a.steps, steps)
			a.bcolls = append(a.bcolls, bcolls)
			return nil
		}
		if a.stepLimit > 0 && steps >= a.stepLimit {
			return ErrStepLimit
		}
	}
}

// tryStick rolls the stickiness probability, then scans the cluster for a
// particle at the walker's current position. On a hit the walker sticks at
// its previous position, which keeps stuck particles distinct and produces
// the surface-hugging growth of the model.
func (a *Aggregate) tryStick(curr, prev Point) bool {
	if a.rng.Float64() > a.stickiness {
		return false
	}
	if !a.contains(curr) {
		return false
	}
	a.recordStick(prev)
	return true
}
