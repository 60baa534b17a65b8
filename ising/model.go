package ising

import "math/rand"

// NewModel builds a Model from a node count and a sequence of weight
// triples, processed in input order.
//
// Each node's spin is initialized uniformly at random from rng (nil rng ⇒
// the default deterministic stream, see RNGFromSeed). Triples with distinct
// endpoints become symmetric couplings: (B, W) is appended to node A's list,
// (A, W) to node B's, and the triple to the model edge list. Self-loop
// triples (A == B) set node A's field weight — last write wins when a node
// appears in several self-loops — and every assignment is appended to the
// field list in input order.
//
// Duplicate couplings between the same pair are kept, not deduplicated;
// their effects accumulate additively.
//
// Returns ErrBadNodeCount when nodeQty < 0, ErrNodeIndex when any triple
// references an index outside [0, nodeQty). nodeQty == 0 yields a valid
// degenerate model. On error no partial model is returned.
//
// Complexity: O(N + W) time and memory.
func NewModel(nodeQty int, weights []Edge, rng *rand.Rand) (*Model, error) {
	if nodeQty < 0 {
		return nil, ErrBadNodeCount
	}
	rng = orDefaultRNG(rng)

	nodes := make([]*Node, nodeQty)
	for i := range nodes {
		nodes[i] = &Node{spin: randomSpin(rng)}
	}

	m := &Model{nodes: nodes}
	for _, w := range weights {
		if w.A < 0 || w.A >= nodeQty || w.B < 0 || w.B >= nodeQty {
			return nil, ErrNodeIndex
		}
		if w.A != w.B {
			nodes[w.A].couplings = append(nodes[w.A].couplings, Coupling{Neighbor: w.B, Weight: w.Weight})
			nodes[w.B].couplings = append(nodes[w.B].couplings, Coupling{Neighbor: w.A, Weight: w.Weight})
			m.edges = append(m.edges, w)
		} else {
			nodes[w.A].field = w.Weight
			m.fields = append(m.fields, FieldWeight{Node: w.A, Weight: w.Weight})
		}
	}

	return m, nil
}

// NodeCount returns the number of nodes in the model.
// Complexity: O(1).
func (m *Model) NodeCount() int {
	return len(m.nodes)
}

// Node returns the node at index i, or ErrNodeIndex when i lies outside
// [0, NodeCount). The returned pointer addresses the model's own node; use
// it to read spins or apply flips within the owning goroutine.
// Complexity: O(1).
func (m *Model) Node(i int) (*Node, error) {
	if i < 0 || i >= len(m.nodes) {
		return nil, ErrNodeIndex
	}
	return m.nodes[i], nil
}

// Edges returns a copy of the model's coupling triples in input order,
// one per undirected coupling (duplicates preserved).
// Complexity: O(E).
func (m *Model) Edges() []Edge {
	out := make([]Edge, len(m.edges))
	copy(out, m.edges)
	return out
}

// Fields returns a copy of the model's field-weight assignments in input
// order, one per self-loop triple seen during construction.
// Complexity: O(F).
func (m *Model) Fields() []FieldWeight {
	out := make([]FieldWeight, len(m.fields))
	copy(out, m.fields)
	return out
}
