package optimize

import (
	"math"

	"github.com/katalvlaran/lvlcube/lattice"
)

// Optimize computes the Lagrangian-optimal partition of the lattice's
// top block for the given λ and reconstructs it in queue order.
//
// See doc.go for the recurrence, tie-breaking, and complexity.
func Optimize(l *lattice.Lattice, lambda float64) (*Result, error) {
	// 1. Validate input
	if l == nil {
		return nil, ErrNilLattice
	}
	if lambda < 0 || math.IsNaN(lambda) {
		return nil, ErrBadLambda
	}

	// 2. Fresh DP state: cost unset (NaN), choice "single block" (-1).
	cost := make([]float64, l.Len())
	choice := make([]int, l.Len())
	for i := range cost {
		cost[i] = math.NaN()
		choice[i] = -1
	}

	s := &solver{l: l, lambda: lambda, cost: cost, choice: choice}

	// 3. Memoised recursion from the top block.
	top, err := l.Node(l.TopID())
	if err != nil {
		return nil, err
	}
	total := s.solve(top)

	// 4. Queue-order reconstruction.
	res := &Result{Lambda: lambda, Cost: total}
	queue := []int{l.TopID()}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		n, err := l.Node(id)
		if err != nil {
			return nil, err
		}
		if choice[id] >= 0 {
			queue = append(queue, n.Refs[choice[id]].Parts...)

			continue
		}

		names, err := l.Names(id)
		if err != nil {
			return nil, err
		}
		res.Blocks = append(res.Blocks, Block{
			ID:    id,
			Names: names,
			Count: n.Count,
			SumV:  n.SumV,
			Mean:  n.SumV / float64(n.Count),
			Loss:  n.Loss,
			Cost:  cost[id],
		})
	}

	return res, nil
}

// solver carries the per-run DP state.
type solver struct {
	l      *lattice.Lattice
	lambda float64
	cost   []float64 // NaN = unset
	choice []int     // -1 = keep as a single block, else refinement index
}

// solve returns the optimal cost of node n, memoised.
//
// The single-block cost 1 + λ·loss is the baseline; a refinement wins
// only on strict improvement, and the first improving-or-equal-best
// refinement in insertion order is kept. Each node is solved at most
// once per run.
func (s *solver) solve(n *lattice.Node) float64 {
	if !math.IsNaN(s.cost[n.ID]) {
		return s.cost[n.ID]
	}

	best := 1 + s.lambda*n.Loss
	pick := -1
	for qi := range n.Refs {
		var sum float64
		for _, pid := range n.Refs[qi].Parts {
			part, _ := s.l.Node(pid) // part ids from Build are always in range
			sum += s.solve(part)
		}
		if sum < best {
			best = sum
			pick = qi
		}
	}

	s.cost[n.ID] = best
	s.choice[n.ID] = pick

	return best
}
