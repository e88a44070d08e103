// Package lattice enumerates the product lattice of admissible
// rectangular multi-subsets over a frozen cube.MultiSet and scores each
// with its information loss in bits.
//
// 🚀 What is the product lattice?
//
//	A multi-subset picks one admissible subset per dimension — a
//	rectangular block of the dataset. A refinement (multi-partition)
//	splits a block along exactly one dimension using one of that
//	dimension's admissible partitions. Blocks and refinements together
//	form a DAG rooted at the top block (every component top).
//
// Algorithm Outline (Build):
//
//  1. Enumerate all ∏ S_d component combinations by D-nested iteration,
//     first dimension fastest, assigning dense node ids consistent with
//     the addressing formula
//     id = ((j_{D-1}·S_{D-2} + j_{D-2})·S_{D-3} + …)·S_0 + j_0.
//  2. For each node, for each dimension d (ascending), for each
//     admissible partition of the node's component in d (insertion
//     order), emit one Refinement whose parts substitute each partition
//     part into position d. Parts are stored as dense node ids.
//  3. Aggregate per node, memoised bottom-up:
//     count = ∏ |atoms(S_d)|, sumV = Σ v, sumI = Σ_{v>0} v·log₂ v.
//     Leaves (no refinement) scan the tensor over the Cartesian product
//     of their component atoms; interior nodes sum their first
//     refinement's parts (all refinements agree by the cover invariant).
//  4. Score: loss = sumV·log₂ count + sumI − sumV·log₂ sumV — the
//     mass-scaled KL divergence to the within-node uniformization, the
//     last term dropped when sumV = 0 — then divide every loss by
//     sumV(top). When sumV(top) = 0 every loss is 0.
//
// The builder is deterministic: node ids, refinement order, and part
// order depend only on insertion order of the underlying hierarchy.
//
// Complexity:
//
//	Nodes:  ∏ S_d
//	Refs:   Σ_M Σ_d |partitions(M.subs[d])|
//	Build:  O(nodes·D + refs·parts + leaf cells)
//	Memory: O(nodes + refs·parts)
//
// Errors:
//
//	ErrNilMultiSet - Build received a nil multiset.
//	ErrNotFrozen   - Build requires a frozen multiset.
//	ErrNodeID      - node id out of range.
package lattice
