package ising

// Spin returns the node's current spin polarity, always exactly ±1.
// Complexity: O(1).
func (n *Node) Spin() Spin {
	return n.spin
}

// Flip negates the node's spin. It is the only state mutation in the whole
// system and is an involution: flipping twice restores the original spin.
// Complexity: O(1).
func (n *Node) Flip() {
	n.spin = -n.spin
}

// Field returns the node's field weight (0 when no self-loop triple set one).
// Complexity: O(1).
func (n *Node) Field() int64 {
	return n.field
}

// Couplings returns a copy of the node's incident couplings in the order
// they were appended during construction. The copy keeps the node's
// append-only internal list safe from external mutation.
// Complexity: O(d) for degree d.
func (n *Node) Couplings() []Coupling {
	out := make([]Coupling, len(n.couplings))
	copy(out, n.couplings)
	return out
}

// Degree returns the number of couplings incident to the node, counting
// duplicated parallel couplings separately.
// Complexity: O(1).
func (n *Node) Degree() int {
	return len(n.couplings)
}
