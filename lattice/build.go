package lattice

import (
	"fmt"

	"github.com/katalvlaran/lvlcube/cube"
)

// Build enumerates the product lattice over a frozen multiset, wires
// every admissible refinement, and scores every node with its
// normalised information loss. The result is immutable.
//
// See doc.go for the algorithm outline and complexity.
func Build(ms *cube.MultiSet) (*Lattice, error) {
	// 1. Validate input
	if ms == nil {
		return nil, ErrNilMultiSet
	}
	if !ms.Frozen() {
		return nil, ErrNotFrozen
	}

	sets := ms.Sets()
	dim := len(sets)

	// 2. Component counts and lattice size
	counts := make([]int, dim)
	size := 1
	for d, s := range sets {
		counts[d] = len(s.Subsets())
		size *= counts[d]
	}

	l := &Lattice{
		ms:     ms,
		counts: counts,
		nodes:  make([]*Node, 0, size),
	}

	// 3. Enumerate nodes: odometer over component indices, first
	// dimension fastest, so ids match the addressing formula.
	subs := make([]int, dim)
	for id := 0; id < size; id++ {
		n := &Node{ID: id, Subs: make([]int, dim)}
		copy(n.Subs, subs)
		l.nodes = append(l.nodes, n)

		for d := 0; d < dim; d++ {
			subs[d]++
			if subs[d] < counts[d] {
				break
			}
			subs[d] = 0
		}
	}

	// 4. Wire refinements by single-dimension substitution.
	scratch := make([]int, dim)
	for _, n := range l.nodes {
		for d := 0; d < dim; d++ {
			sub, err := sets[d].SubsetAt(n.Subs[d])
			if err != nil {
				return nil, err
			}
			for _, p := range sub.Partitions() {
				ref := Refinement{Dim: d, Parts: make([]int, 0, len(p.Parts()))}
				copy(scratch, n.Subs)
				for _, part := range p.Parts() {
					scratch[d] = part.ID()
					pid, err := l.NodeID(scratch)
					if err != nil {
						return nil, fmt.Errorf("lattice: part %q of %q: %w", part.Name(), sub.Name(), err)
					}
					ref.Parts = append(ref.Parts, pid)
				}
				n.Refs = append(n.Refs, ref)
			}
		}
	}

	// 5. Locate the top node (every component the dimension's top).
	for d, s := range sets {
		top, err := s.Top()
		if err != nil {
			return nil, err
		}
		scratch[d] = top.ID()
	}
	topID, err := l.NodeID(scratch)
	if err != nil {
		return nil, err
	}
	l.top = topID

	// 6. Aggregate and score (aggregate.go).
	if err = l.aggregate(); err != nil {
		return nil, err
	}

	return l, nil
}
