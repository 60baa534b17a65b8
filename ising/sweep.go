package ising

import (
	"math"
	"math/rand"
)

// Sweep performs one stochastic update round: NodeCount independent trials,
// each sampling a node uniformly at random with replacement (a node may be
// revisited or skipped within one sweep) and conditionally flipping it.
//
// Acceptance rule: with E the sampled node's LocalEnergy, the spin flips
// unconditionally when E > 0, and with probability exp(2E/temp) when
// E <= 0. The rule is one-sided on the current local energy rather than the
// textbook Metropolis before/after comparison; it is kept exactly as the
// historical simulator defines it.
//
// temp must be strictly positive; temp <= 0 returns
// ErrNonPositiveTemperature before any trial runs. An empty model sweeps
// zero trials and returns nil without validating temp — no trial ever
// reaches the acceptance probability, so there is nothing to fail. A nil
// rng selects the default deterministic stream.
//
// Complexity: O(N × d) for N nodes of typical degree d.
func Sweep(m *Model, temp float64, rng *rand.Rand) error {
	qty := len(m.nodes)
	if qty == 0 {
		return nil
	}
	if temp <= 0 {
		return ErrNonPositiveTemperature
	}
	rng = orDefaultRNG(rng)

	for i := 0; i < qty; i++ {
		n := m.nodes[rng.Intn(qty)]
		e := n.LocalEnergy(m.nodes)
		if e > 0 {
			n.Flip()
		} else if rng.Float64() < math.Exp(2*float64(e)/temp) {
			n.Flip()
		}
	}

	return nil
}

// Evolve runs iterations sequential sweeps at temperature temp — each sweep
// observing the spin state left by the previous one — then returns the
// model's final TotalEnergy.
//
// iterations must be non-negative; a negative count returns
// ErrBadIterations. With iterations == 0 no sweep runs and the energy of
// the initial configuration is returned, so temp is never validated — the
// temperature check belongs to the first attempted sweep.
//
// On a sweep error the model is left with whatever spins were last set;
// there is no rollback.
//
// Complexity: O(iterations × N × d + E + F).
func Evolve(m *Model, iterations int, temp float64, rng *rand.Rand) (int64, error) {
	if iterations < 0 {
		return 0, ErrBadIterations
	}
	rng = orDefaultRNG(rng)

	for i := 0; i < iterations; i++ {
		if err := Sweep(m, temp, rng); err != nil {
			return 0, err
		}
	}

	return m.TotalEnergy(), nil
}
