// Package ising defines core types and sentinel errors for the spin-glass
// simulator: Spin, Coupling, Node, Edge, FieldWeight, and Model.
package ising

import "errors"

// Sentinel errors for ising operations.
var (
	// ErrBadNodeCount indicates a negative node count supplied to NewModel.
	ErrBadNodeCount = errors.New("ising: node count must be non-negative")
	// ErrNodeIndex indicates a weight triple referencing an index outside [0, NodeCount).
	ErrNodeIndex = errors.New("ising: node index out of range")
	// ErrNonPositiveTemperature indicates a sweep attempted with T <= 0.
	ErrNonPositiveTemperature = errors.New("ising: temperature must be strictly positive")
	// ErrBadIterations indicates a negative sweep count supplied to Evolve.
	ErrBadIterations = errors.New("ising: iteration count must be non-negative")
)

// Spin is the binary state of a node: exactly SpinDown (-1) or SpinUp (+1).
type Spin int8

const (
	// SpinDown is the negative spin polarity.
	SpinDown Spin = -1
	// SpinUp is the positive spin polarity.
	SpinUp Spin = 1
)

// Coupling is one edge incident to a node, as seen from that node:
// the index of the neighbor and the symmetric interaction weight.
type Coupling struct {
	// Neighbor is the index of the node at the other end of the edge.
	Neighbor int
	// Weight is the coupling strength shared by both endpoints.
	Weight int64
}

// Edge is a whole-model weight triple (A, B, Weight).
//
// A triple with A != B is an undirected coupling between two nodes.
// A triple with A == B assigns the field weight of node A; such triples
// never enter a Model's edge list.
type Edge struct {
	// A is the first endpoint index.
	A int
	// B is the second endpoint index.
	B int
	// Weight is the coupling (A != B) or field (A == B) strength.
	Weight int64
}

// FieldWeight records one field-weight assignment for Hamiltonian accounting.
type FieldWeight struct {
	// Node is the index of the node the field acts on.
	Node int
	// Weight is the field strength.
	Weight int64
}

// Node is a single spin-carrying vertex.
//
// Its spin is owned, mutable state reachable only through Spin and Flip;
// field and couplings are populated once during model construction and are
// read-only afterwards.
type Node struct {
	spin      Spin
	field     int64
	couplings []Coupling
}

// Model is the full spin system: an arena of nodes addressed by integer
// index plus the edge and field lists used for whole-model energy accounting.
//
// A Model is built once by NewModel and lives for one simulation run; the
// only mutation after construction is spin flips on individual nodes.
type Model struct {
	nodes  []*Node
	edges  []Edge
	fields []FieldWeight
}
