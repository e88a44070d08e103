package optimize

import "errors"

var (
	// ErrNilLattice indicates Optimize received a nil lattice.
	ErrNilLattice = errors.New("optimize: lattice is nil")

	// ErrBadLambda indicates a negative or NaN trade-off parameter.
	ErrBadLambda = errors.New("optimize: lambda must be a non-negative number")

	// ErrNilResult indicates Render received a nil result.
	ErrNilResult = errors.New("optimize: result is nil")
)

// Block is one multi-subset of the selected partition.
type Block struct {
	// ID is the dense lattice id of the underlying node.
	ID int

	// Names holds the component subset names, one per dimension.
	Names []string

	// Count is the number of atomic cells the block covers.
	Count int

	// SumV is the total measure over the block.
	SumV float64

	// Mean is SumV / Count, the value representing every cell of the
	// block in the compressed rendition.
	Mean float64

	// Loss is the block's normalised information loss in bits.
	Loss float64

	// Cost is the block's Lagrangian cost 1 + λ·Loss.
	Cost float64
}

// Result is the outcome of one dynamic-programming run.
type Result struct {
	// Lambda is the trade-off parameter the run was computed for.
	Lambda float64

	// Cost is the Lagrangian cost of the selected partition:
	// its size plus λ times its aggregate loss.
	Cost float64

	// Blocks lists the selected partition in reconstruction order.
	Blocks []Block
}

// Size returns the number of blocks in the selected partition.
func (r *Result) Size() int { return len(r.Blocks) }

// Loss returns the partition's aggregate information loss in bits —
// the sum of the per-block losses.
func (r *Result) Loss() float64 {
	var loss float64
	for i := range r.Blocks {
		loss += r.Blocks[i].Loss
	}

	return loss
}
