package ising

import "strings"

// SpinString renders the current configuration as one polarity symbol per
// node in ascending index order: '+' for a positive spin, '-' otherwise.
// Pure read; the result always has length NodeCount.
// Complexity: O(N).
func (m *Model) SpinString() string {
	var b strings.Builder
	b.Grow(len(m.nodes))
	for _, n := range m.nodes {
		if n.spin > 0 {
			b.WriteByte('+')
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}
