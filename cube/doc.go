// Package cube defines the data model consumed by the partition engine:
// per-dimension value sets, admissible subset hierarchies, admissible
// partitions, and the dense measure tensor over the Cartesian product of
// all dimensions.
//
// Model:
//
//	MultiSet ── owns ──▶ Set (one per dimension)
//	Set      ── owns ──▶ Element (dense index, unique name)
//	Set      ── owns ──▶ Subset  (Atomic | Intermediate | Top)
//	Subset   ── owns ──▶ Partition (ordered parts, ≥ 2, same dimension)
//	MultiSet ── owns ──▶ measure tensor (∏ N_d cells, default 0)
//
// A Subset's atoms are the elements reachable through the recursive
// closure of its first partition. All alternative partitions of a subset
// are assumed to cover the same atoms; this cover invariant is a
// documented precondition of the input and is not validated here.
//
// Lifecycle:
//
//  1. Build sets, elements, subsets, and partitions.
//  2. Freeze the MultiSet: tops and intermediate partitions are
//     validated, the tensor is allocated.
//  3. Fill the tensor by element-name or element-index tuples.
//
// Addressing: cell (e_0, …, e_{D-1}) lives at the linear index obtained
// by folding dimensions from the last (slowest) to the first (fastest):
//
//	id = ((e_{D-1}·N_{D-2} + e_{D-2})·N_{D-3} + …)·N_0 + e_0
//
// Errors:
//
//	ErrFrozen            - structural mutation after Freeze.
//	ErrNotFrozen         - tensor access before Freeze.
//	ErrDuplicateName     - element, subset, or set name already taken.
//	ErrElementNotFound   - unknown element name or index.
//	ErrSubsetNotFound    - unknown subset name.
//	ErrSetNotFound       - unknown set name.
//	ErrNoTop             - a dimension has no top subset at Freeze.
//	ErrNoPartition       - an intermediate subset has no partition.
//	ErrAtomicPartition   - a partition attached to an atomic subset.
//	ErrAtomicTop         - an atomic subset promoted to top.
//	ErrPartitionTooSmall - a partition with fewer than two parts.
//	ErrNegativeValue     - a negative measure value.
//	ErrBadTuple          - tuple arity or index out of range.
package cube
