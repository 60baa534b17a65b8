// Package spinglass is an in-memory toolkit for simulating generalized
// Ising spin-glass models over arbitrary weighted graphs.
//
// 🚀 What is spinglass?
//
//	A small, deterministic-by-default library that brings together:
//		• Core model: integer-indexed spin nodes, symmetric couplings, local fields
//		• Dynamics: stochastic single-spin sweeps with a Boltzmann acceptance rule
//		• Accounting: Hamiltonian evaluation over final spin configurations
//		• I/O: DIMACS-style instance files, parsed with a real grammar
//		• Harness: an interactive runner mirroring the classic prompt workflow
//
// ✨ Why choose spinglass?
//
//   - Reproducible – every random draw flows from one seedable source
//   - Minimal API – build a model, evolve it, read energy and spins
//   - Pure Go core – no cgo, no hidden global state
//
// Everything is organized under three packages:
//
//	ising/    — model types, stochastic sweep dynamics, energy accounting
//	instance/ — instance-file grammar and parsing
//	cmd/      — the spinsim interactive harness
//
// Quick ASCII example (two coupled spins plus a field on node 0):
//
//	    (0)──w──(1)
//	     │
//	     h
//
//	m, _ := ising.NewModel(2, []ising.Edge{{A: 0, B: 1, Weight: 2}, {A: 0, B: 0, Weight: 1}}, nil)
//	energy, _ := ising.Evolve(m, 10, 1.0, nil)
//	fmt.Println(energy, m.SpinString())
//
// See each package's doc.go for details, errors, and complexity notes.
package spinglass
