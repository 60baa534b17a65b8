package ising

// LocalEnergy computes the node's local energy contribution against the
// supplied node table: the negated sum, over each incident coupling, of
// field*spin + weight*spin*neighborSpin.
//
// The field term is accumulated once per incident coupling, not once per
// node, so a node of degree k contributes its field k times here while
// TotalEnergy counts it exactly once. This k-fold local over-count is the
// historical behavior of this simulator, kept intact; see DESIGN.md before
// changing it.
//
// LocalEnergy is a pure read over current spins: it never mutates any node.
// The table is passed in explicitly — nodes hold no back-reference to the
// model that owns them.
//
// Complexity: O(d) for degree d.
func (n *Node) LocalEnergy(nodes []*Node) int64 {
	var e int64
	s := int64(n.spin)
	for _, c := range n.couplings {
		e += n.field*s + c.Weight*s*int64(nodes[c.Neighbor].spin)
	}
	return -e
}

// TotalEnergy computes the model Hamiltonian over current spins:
//
//	H = -( Σ_edges spin[A]*spin[B]*W  +  Σ_fields spin[Node]*W )
//
// Each field assignment recorded during construction contributes once, so a
// node named by several self-loop triples is counted once per triple even
// though only the last assignment survives on the node itself.
//
// Pure read; safe to call at any point between sweeps.
//
// Complexity: O(E + F).
func (m *Model) TotalEnergy() int64 {
	var e int64
	for _, w := range m.edges {
		e += int64(m.nodes[w.A].spin) * int64(m.nodes[w.B].spin) * w.Weight
	}
	for _, f := range m.fields {
		e += int64(m.nodes[f.Node].spin) * f.Weight
	}
	return -e
}
