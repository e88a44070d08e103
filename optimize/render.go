package optimize

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvlcube/lattice"
)

// RenderOption configures the textual report produced by Render.
type RenderOption func(*renderOptions)

// renderOptions holds the report settings.
type renderOptions struct {
	stats   bool             // per-block count, loss, cost
	summary bool             // leading partition summary line
	lattice *lattice.Lattice // non-nil: append the full lattice dump
}

// defaultRenderOptions returns the default report settings:
// blocks only, no statistics, no summary, no lattice dump.
func defaultRenderOptions() renderOptions {
	return renderOptions{}
}

// WithStats returns a RenderOption that appends count, loss, and cost
// to every block line.
func WithStats() RenderOption {
	return func(o *renderOptions) { o.stats = true }
}

// WithSummary returns a RenderOption that prepends a partition summary
// line with size, aggregate loss, cost, and λ.
func WithSummary() RenderOption {
	return func(o *renderOptions) { o.summary = true }
}

// WithLatticeDump returns a RenderOption that appends the full lattice
// listing — every node with its component names, count, mass, and loss.
// Intended for small lattices.
func WithLatticeDump(l *lattice.Lattice) RenderOption {
	return func(o *renderOptions) { o.lattice = l }
}

// Render writes a deterministic textual report of res to w.
//
// One line per block, in reconstruction order:
//
//	(A1234, B123, C12): mean=0.08333333333333333
//
// With WithStats each line carries count, loss, and cost; WithSummary
// prepends one line with the partition's size, aggregate loss, cost,
// and λ. Output depends only on the result and the options.
func Render(w io.Writer, res *Result, opts ...RenderOption) error {
	if res == nil {
		return ErrNilResult
	}
	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.summary {
		_, err := fmt.Fprintf(w, "partition: size=%d loss=%g cost=%g lambda=%g\n",
			res.Size(), res.Loss(), res.Cost, res.Lambda)
		if err != nil {
			return err
		}
	}

	for i := range res.Blocks {
		b := &res.Blocks[i]
		if err := renderBlock(w, b, o.stats); err != nil {
			return err
		}
	}

	if o.lattice != nil {
		if err := renderLattice(w, o.lattice); err != nil {
			return err
		}
	}

	return nil
}

// renderBlock writes one block line.
func renderBlock(w io.Writer, b *Block, stats bool) error {
	if _, err := fmt.Fprintf(w, "(%s): mean=%g", joinNames(b.Names), b.Mean); err != nil {
		return err
	}
	if stats {
		if _, err := fmt.Fprintf(w, " count=%d loss=%g cost=%g", b.Count, b.Loss, b.Cost); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)

	return err
}

// renderLattice writes one line per lattice node in dense-id order.
func renderLattice(w io.Writer, l *lattice.Lattice) error {
	if _, err := fmt.Fprintf(w, "lattice: nodes=%d top=%d total=%g\n",
		l.Len(), l.TopID(), l.Total()); err != nil {
		return err
	}
	for id := 0; id < l.Len(); id++ {
		n, err := l.Node(id)
		if err != nil {
			return err
		}
		names, err := l.Names(id)
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "%d (%s): count=%d sumV=%g loss=%g refs=%d\n",
			id, joinNames(names), n.Count, n.SumV, n.Loss, len(n.Refs)); err != nil {
			return err
		}
	}

	return nil
}

// joinNames renders component names as "n0, n1, …".
func joinNames(names []string) string {
	str := ""
	for i, name := range names {
		if i > 0 {
			str += ", "
		}
		str += name
	}

	return str
}
