package lattice

import (
	"math"

	"github.com/katalvlaran/lvlcube/cube"
)

// aggregate fills Count, SumV, SumI for every node, memoised over the
// refinement DAG, then scores Loss and normalises it by the top node's
// mass. Called exactly once, at the end of Build.
func (l *Lattice) aggregate() error {
	done := make([]bool, len(l.nodes))
	for _, n := range l.nodes {
		if err := l.stats(n, done); err != nil {
			return err
		}
	}

	// Normalise: loss in bits per unit of measure. A zero-mass dataset
	// has zero loss everywhere.
	l.total = l.nodes[l.top].SumV
	for _, n := range l.nodes {
		n.Loss = score(n)
		if l.total > 0 {
			n.Loss /= l.total
		} else {
			n.Loss = 0
		}
	}

	return nil
}

// stats computes Count, SumV, SumI for one node.
//
// Interior nodes reuse their first refinement: every refinement covers
// the same cells by the cover invariant, so summing the parts of any
// one of them yields the node's aggregates. Leaves scan the tensor over
// the Cartesian product of their components' atoms.
func (l *Lattice) stats(n *Node, done []bool) error {
	if done[n.ID] {
		return nil
	}
	done[n.ID] = true

	if len(n.Refs) > 0 {
		for _, pid := range n.Refs[0].Parts {
			part := l.nodes[pid]
			if err := l.stats(part, done); err != nil {
				return err
			}
			n.Count += part.Count
			n.SumV += part.SumV
			n.SumI += part.SumI
		}

		return nil
	}

	return l.scan(n)
}

// scan reads the measure tensor over the Cartesian product of the
// node's component atoms. The atom lists are scoped to this call.
func (l *Lattice) scan(n *Node) error {
	sets := l.ms.Sets()
	dim := len(sets)

	atoms := make([][]*cube.Element, dim)
	n.Count = 1
	for d, s := range sets {
		sub, err := s.SubsetAt(n.Subs[d])
		if err != nil {
			return err
		}
		if atoms[d], err = s.Atoms(sub); err != nil {
			return err
		}
		n.Count *= len(atoms[d])
	}

	// Odometer over the atom tuples, first dimension fastest.
	idx := make([]int, dim)
	tuple := make([]int, dim)
	for c := 0; c < n.Count; c++ {
		for d := 0; d < dim; d++ {
			tuple[d] = atoms[d][idx[d]].ID
		}
		v, err := l.ms.ValueAt(tuple)
		if err != nil {
			return err
		}
		n.SumV += v
		if v > 0 {
			n.SumI += v * math.Log2(v)
		}

		for d := 0; d < dim; d++ {
			idx[d]++
			if idx[d] < len(atoms[d]) {
				break
			}
			idx[d] = 0
		}
	}

	return nil
}

// score returns the raw (unnormalised) information loss of a node —
// the Kullback–Leibler divergence between the node's cell values and
// their within-node uniformization, scaled by the node's mass:
//
//	loss = sumV·log₂ count + sumI − sumV·log₂ sumV
//
// with the last term dropped when sumV = 0 (0·log 0 = 0). Gibbs'
// inequality makes the result non-negative; it is zero exactly for
// single-cell and uniform nodes. Floating-point rounding below zero is
// clamped away.
func score(n *Node) float64 {
	loss := n.SumV*math.Log2(float64(n.Count)) + n.SumI
	if n.SumV > 0 {
		loss -= n.SumV * math.Log2(n.SumV)
	}
	if loss < 0 {
		loss = 0
	}

	return loss
}
