// Package lvlcube computes optimal rectangular partitions of
// multidimensional datasets under an information-theoretic trade-off
// between partition size and information loss.
//
// 🚀 What is lvlcube?
//
//	A deterministic, in-memory library that brings together:
//		• Data model: value sets, subset hierarchies, admissible partitions
//		• Measure tensor: dense storage of non-negative cell values
//		• Product lattice: all admissible rectangular multi-subsets and
//		  their one-dimension refinements
//		• Loss evaluator: per-block information loss in bits
//		• Lagrangian DP: the optimal partition for any trade-off λ
//		• Input adapters: whitespace files and YAML documents
//
// ✨ Why choose lvlcube?
//
//   - Deterministic – same input, same partition, every run
//   - Rock-solid guarantees – sentinel errors, in-code docs, no hidden state
//   - Pure Go – no cgo, single-threaded, no goroutines
//
// Under the hood, everything is organized under four subpackages:
//
//	cube/     — sets, elements, subsets, partitions, and the measure tensor
//	lattice/  — the product lattice of multi-subsets with per-block loss
//	optimize/ — the λ-parameterised dynamic program and partition rendering
//	builder/  — textual and YAML input adapters with diagnostics
//
// Quick sketch: for a 2×2 dataset with hierarchies on both axes,
//
//	λ = 0      → one block covering everything (cost 1)
//	λ → ∞      → a zero-loss partition (one block per cell when no
//	             aggregate block is lossless)
//	in between → the Lagrangian optimum of size + λ·loss
//
// Dive into each package's doc.go for algorithm outlines and complexity.
package lvlcube
