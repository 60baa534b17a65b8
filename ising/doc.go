// Package ising models a generalized Ising spin glass on an arbitrary
// weighted graph and evolves it with stochastic single-spin updates.
//
// What:
//
//   - Node holds one binary spin (±1), a local field weight, and the list of
//     couplings incident to it.
//   - Model owns an integer-indexed arena of Nodes plus whole-model edge and
//     field lists used for Hamiltonian accounting.
//   - Sweep performs one round of NodeCount random single-spin update trials
//     under a temperature-driven acceptance probability.
//   - Evolve runs a fixed number of sweeps and reports the final Hamiltonian.
//   - SpinString renders the final configuration as a '+'/'-' row.
//
// Why:
//
//   - Ground-state search on QUBO/Ising instances (max-cut style problems).
//   - Teaching and experimentation with stochastic spin dynamics.
//   - Deterministic replay: every random draw comes from one seedable source.
//
// Acceptance rule:
//
//	A sampled node with local energy E flips unconditionally when E > 0, and
//	with probability exp(2E/T) when E <= 0. This one-sided rule is the
//	historical behavior of this simulator and is deliberately not the
//	textbook Metropolis criterion; see the Sweep documentation.
//
// Complexity:
//
//   - NewModel:    O(N + W)  (N nodes, W weight triples), Memory: O(N + W).
//   - Sweep:       O(N × d)  (d = sampled node degree).
//   - TotalEnergy: O(E + F)  (E edges, F field entries).
//   - SpinString:  O(N).
//
// Errors:
//
//   - ErrBadNodeCount: negative node count supplied to NewModel.
//   - ErrNodeIndex: a weight triple references an index outside [0, NodeCount).
//   - ErrNonPositiveTemperature: Sweep/Evolve called with T <= 0.
//   - ErrBadIterations: Evolve called with a negative sweep count.
//
// Concurrency:
//
//	A Model and its random source are owned by exactly one goroutine for the
//	lifetime of a run. Nothing here locks; run concurrent simulations on
//	independently built models with independently seeded sources.
package ising
