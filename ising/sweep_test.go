package ising_test

import (
	"testing"

	"github.com/pkazanov/spinglass/ising"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSweep_NonPositiveTemperature verifies that T <= 0 is rejected before
// any trial runs, for zero and negative temperatures alike.
func TestSweep_NonPositiveTemperature(t *testing.T) {
	m, err := ising.NewModel(3, []ising.Edge{{A: 0, B: 1, Weight: 1}}, ising.RNGFromSeed(5))
	require.NoError(t, err)

	before := m.SpinString()
	for _, temp := range []float64{0, -1.5} {
		assert.ErrorIs(t, ising.Sweep(m, temp, nil), ising.ErrNonPositiveTemperature, "T=%v", temp)
	}
	assert.Equal(t, before, m.SpinString(), "rejected sweep must not touch spins")
}

// TestSweep_EmptyModel verifies that sweeping zero nodes is a no-op, not an
// error — even at a non-positive temperature, since zero trials means the
// acceptance probability is never evaluated.
func TestSweep_EmptyModel(t *testing.T) {
	m, err := ising.NewModel(0, nil, nil)
	require.NoError(t, err)

	assert.NoError(t, ising.Sweep(m, 1.0, nil))
	assert.NoError(t, ising.Sweep(m, 0, nil), "zero trials never reach the exponential")
	assert.NoError(t, ising.Sweep(m, -2.5, nil), "zero trials never reach the exponential")
}

// TestSweep_SpinInvariant verifies that spins stay in {-1, +1} through many
// sweeps over a frustrated model.
func TestSweep_SpinInvariant(t *testing.T) {
	weights := []ising.Edge{
		{A: 0, B: 1, Weight: 2},
		{A: 1, B: 2, Weight: -1},
		{A: 2, B: 0, Weight: 1},
		{A: 1, B: 1, Weight: 3},
	}
	m, err := ising.NewModel(3, weights, ising.RNGFromSeed(11))
	require.NoError(t, err)

	rng := ising.RNGFromSeed(11)
	for sweep := 0; sweep < 100; sweep++ {
		require.NoError(t, ising.Sweep(m, 2.0, rng))
		for i := 0; i < m.NodeCount(); i++ {
			n, _ := m.Node(i)
			s := n.Spin()
			require.True(t, s == ising.SpinUp || s == ising.SpinDown, "sweep %d node %d spin %d", sweep, i, s)
		}
	}
}

// TestSweep_IsolatedNodeAlwaysFlips verifies the acceptance rule at its
// deterministic edge: an isolated node has local energy 0, and exp(0) = 1
// means every trial flips it. A one-node model is sampled every trial, so
// each sweep negates the spin exactly once.
func TestSweep_IsolatedNodeAlwaysFlips(t *testing.T) {
	m, err := ising.NewModel(1, nil, nil)
	require.NoError(t, err)

	n, _ := m.Node(0)
	before := n.Spin()
	require.NoError(t, ising.Sweep(m, 1.0, ising.RNGFromSeed(1)))
	assert.Equal(t, -before, n.Spin(), "one sweep over one free node flips once")
	require.NoError(t, ising.Sweep(m, 1.0, ising.RNGFromSeed(1)))
	assert.Equal(t, before, n.Spin(), "second sweep flips back")
}

// TestEvolve_NegativeIterations verifies ErrBadIterations on a negative
// sweep count.
func TestEvolve_NegativeIterations(t *testing.T) {
	m, err := ising.NewModel(2, nil, nil)
	require.NoError(t, err)

	_, err = ising.Evolve(m, -1, 1.0, nil)
	assert.ErrorIs(t, err, ising.ErrBadIterations)
}

// TestEvolve_ZeroIterations verifies that zero sweeps returns the energy of
// the initial configuration and never validates the temperature: the check
// belongs to the first attempted sweep, and none is attempted.
func TestEvolve_ZeroIterations(t *testing.T) {
	m, err := ising.NewModel(2, []ising.Edge{{A: 0, B: 1, Weight: 4}}, ising.RNGFromSeed(6))
	require.NoError(t, err)

	want := m.TotalEnergy()
	got, err := ising.Evolve(m, 0, 0, nil)
	require.NoError(t, err, "no sweep attempted, so T is never checked")
	assert.Equal(t, want, got)
}

// TestEvolve_PropagatesTemperatureError verifies that an invalid T surfaces
// from the first sweep of a run, never a silent result.
func TestEvolve_PropagatesTemperatureError(t *testing.T) {
	m, err := ising.NewModel(2, []ising.Edge{{A: 0, B: 1, Weight: 1}}, nil)
	require.NoError(t, err)

	_, err = ising.Evolve(m, 5, 0, nil)
	assert.ErrorIs(t, err, ising.ErrNonPositiveTemperature)
}

// TestEvolve_Deterministic verifies full reproducibility: identical
// instance, seed, iterations, and temperature produce identical energy and
// spin readout.
func TestEvolve_Deterministic(t *testing.T) {
	weights := []ising.Edge{
		{A: 0, B: 1, Weight: 2},
		{A: 1, B: 2, Weight: -3},
		{A: 2, B: 3, Weight: 1},
		{A: 3, B: 0, Weight: 1},
		{A: 2, B: 2, Weight: 4},
	}

	run := func() (int64, string) {
		rng := ising.RNGFromSeed(1234)
		m, err := ising.NewModel(4, weights, rng)
		require.NoError(t, err)
		e, err := ising.Evolve(m, 25, 1.5, rng)
		require.NoError(t, err)
		return e, m.SpinString()
	}

	e1, s1 := run()
	e2, s2 := run()
	assert.Equal(t, e1, e2, "energy must replay exactly")
	assert.Equal(t, s1, s2, "spin readout must replay exactly")
}

// TestEvolve_EmptyModel verifies the degenerate case end to end: zero
// trials, zero energy, empty readout.
func TestEvolve_EmptyModel(t *testing.T) {
	m, err := ising.NewModel(0, nil, nil)
	require.NoError(t, err)

	e, err := ising.Evolve(m, 10, 1.0, nil)
	require.NoError(t, err)
	assert.Zero(t, e)
	assert.Equal(t, "", m.SpinString())

	e, err = ising.Evolve(m, 10, 0, nil)
	require.NoError(t, err, "empty-model sweeps never validate the temperature")
	assert.Zero(t, e)
}
