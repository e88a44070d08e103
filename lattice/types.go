package lattice

import (
	"errors"

	"github.com/katalvlaran/lvlcube/cube"
)

var (
	// ErrNilMultiSet indicates Build received a nil multiset.
	ErrNilMultiSet = errors.New("lattice: multiset is nil")

	// ErrNotFrozen indicates Build requires MultiSet.Freeze first.
	ErrNotFrozen = errors.New("lattice: multiset is not frozen")

	// ErrNodeID indicates a node id outside [0, Len).
	ErrNodeID = errors.New("lattice: node id out of range")
)

// Node is one admissible rectangular multi-subset: one subset per
// dimension, identified by a dense id.
//
// Count, SumV, SumI, and Loss are filled by Build and never change
// afterwards; treat every field as read-only. Loss is already
// normalised by the top node's SumV (bits per unit of measure).
type Node struct {
	// ID is the dense node id within the owning Lattice.
	ID int

	// Subs holds the component subset index for each dimension.
	Subs []int

	// Refs lists the node's admissible refinements: dimensions
	// ascending, partitions within a dimension in insertion order.
	Refs []Refinement

	// Count is the number of atomic cells the node covers.
	Count int

	// SumV is the total measure over the covered cells.
	SumV float64

	// SumI is Σ v·log₂ v over covered cells with v > 0.
	SumI float64

	// Loss is the normalised information loss of representing the node
	// by its aggregate, in bits per unit of measure.
	Loss float64
}

// Bot reports whether the node is a leaf of the refinement DAG
// (every component subset atomic, hence no admissible refinement).
func (n *Node) Bot() bool { return len(n.Refs) == 0 }

// Refinement is one admissible multi-partition: it splits a node along
// exactly one dimension according to one admissible partition of the
// node's component subset there.
type Refinement struct {
	// Dim is the refined dimension.
	Dim int

	// Parts holds the dense ids of the resulting nodes, in the part
	// order of the underlying partition.
	Parts []int
}

// Lattice owns all nodes and refinements built over one frozen MultiSet.
type Lattice struct {
	ms     *cube.MultiSet
	counts []int // subsets per dimension
	nodes  []*Node
	top    int
	total  float64 // SumV of the top node before normalisation
}

// MultiSet returns the underlying frozen multiset.
func (l *Lattice) MultiSet() *cube.MultiSet { return l.ms }

// Len returns the number of nodes.
func (l *Lattice) Len() int { return len(l.nodes) }

// TopID returns the dense id of the top node.
func (l *Lattice) TopID() int { return l.top }

// Top returns the top node.
func (l *Lattice) Top() *Node { return l.nodes[l.top] }

// Total returns SumV of the top node before normalisation — the whole
// dataset's mass, used as the loss denominator.
func (l *Lattice) Total() float64 { return l.total }

// Node returns the node with the given dense id.
func (l *Lattice) Node(id int) (*Node, error) {
	if id < 0 || id >= len(l.nodes) {
		return nil, ErrNodeID
	}

	return l.nodes[id], nil
}

// NodeID folds a component subset-index tuple into the dense node id,
// last dimension slowest — the same formula as cube.MultiSet.CellID
// with subset counts in place of element counts.
func (l *Lattice) NodeID(subs []int) (int, error) {
	if len(subs) != len(l.counts) {
		return 0, ErrNodeID
	}

	id := 0
	for d := len(l.counts) - 1; d >= 0; d-- {
		if subs[d] < 0 || subs[d] >= l.counts[d] {
			return 0, ErrNodeID
		}
		id = id*l.counts[d] + subs[d]
	}

	return id, nil
}

// Names returns the component subset names of the given node, one per
// dimension in position order.
func (l *Lattice) Names(id int) ([]string, error) {
	n, err := l.Node(id)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(n.Subs))
	for d, j := range n.Subs {
		sub, err := l.ms.Sets()[d].SubsetAt(j)
		if err != nil {
			return nil, err
		}
		names[d] = sub.Name()
	}

	return names, nil
}
