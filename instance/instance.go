package instance

import (
	"errors"
	"math/rand"

	"github.com/pkazanov/spinglass/ising"
)

// ErrNoHeader indicates the parsed file contains no 'p' header line, so the
// node count is unknown.
var ErrNoHeader = errors.New("instance: missing 'p' header line")

// Instance is one parsed problem: the node count from the header and the
// weight triples in file order.
type Instance struct {
	// NodeQty is the node count announced by the (last) header line.
	NodeQty int
	// Weights holds every triple in file order; couplings and self-loop
	// field assignments are not separated here.
	Weights []ising.Edge
}

// Build constructs an ising.Model from the instance. A nil rng selects the
// ising package's default deterministic stream. Out-of-range triples are
// rejected by ising.NewModel.
func (inst *Instance) Build(rng *rand.Rand) (*ising.Model, error) {
	return ising.NewModel(inst.NodeQty, inst.Weights, rng)
}
