// Package optimize runs the Lagrangian dynamic program over a built
// lattice: for a trade-off parameter λ ≥ 0 it selects the admissible
// rectangular partition of the top block minimising size + λ·loss.
//
// Algorithm Outline:
//
//  1. For every node M, memoised top-down from the top block:
//     cost(M) = min( 1 + λ·loss(M),
//     min over refinements Q of M: Σ_{M'∈Q} cost(M') )
//     A refinement is chosen only on strict improvement; ties keep M as
//     a single block, and ties between refinements keep the first in
//     insertion order. Both tie-breaks make the result deterministic.
//  2. Reconstruct with a FIFO queue seeded with the top block: a node
//     whose choice is "single block" is emitted; otherwise its chosen
//     refinement's parts are enqueued. The emitted blocks partition the
//     dataset and appear in queue order.
//
// The DP state (cost and choice per node) lives inside one Optimize
// call; runs never interfere and repeating a run returns an identical
// partition.
//
// Properties:
//
//   - λ = 0  → the single top block, cost 1.
//   - λ → ∞ → a zero-loss partition, cost equal to its number of
//     blocks. Lossless blocks (uniform or zero-mass) are kept whole by
//     the tie-break, so the finest admissible refinement is reached
//     only when every aggregate block has positive loss.
//   - cost at the top is non-decreasing in λ.
//
// Complexity:
//
//	Time:   O(Σ_M (1 + Σ refinement parts)) per run
//	Memory: O(nodes)
//
// Rendering: Render writes a deterministic textual report of a Result —
// one line per block with its component subset names and mean value,
// optionally per-block statistics and a summary header. See render.go.
//
// Errors:
//
//	ErrNilLattice - Optimize received a nil lattice.
//	ErrBadLambda  - λ is negative or NaN.
//	ErrNilResult  - Render received a nil result.
package optimize
