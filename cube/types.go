// This file declares Element, Kind, Subset, and Partition — the
// per-dimension vocabulary of the data model. The owning containers
// (Set, MultiSet) live in set.go and multiset.go.
package cube

import "fmt"

// Kind tags the role of a Subset within its dimension's hierarchy.
//
//   - Atomic       — wraps exactly one element; never partitioned.
//   - Intermediate — an aggregate with one or more admissible partitions.
//   - Top          — the aggregate covering the whole dimension; exactly
//     one per dimension once the hierarchy is finalised.
type Kind int

const (
	// Atomic subsets wrap a single element and admit no partition.
	Atomic Kind = iota

	// Intermediate subsets aggregate several elements and own at least
	// one admissible partition once the hierarchy is finalised.
	Intermediate

	// Top is the unique subset covering its entire dimension.
	Top
)

// String returns the lower-case tag name.
func (k Kind) String() string {
	switch k {
	case Atomic:
		return "atomic"
	case Intermediate:
		return "intermediate"
	case Top:
		return "top"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Element is an atomic value on one dimension.
//
// Dim is the owning dimension's position, ID the dense insertion index
// within that dimension, Name the unique token it was declared with.
// Treat all fields as read-only once created.
type Element struct {
	Dim  int
	ID   int
	Name string
}

// String implements fmt.Stringer.
func (e *Element) String() string { return e.Name }

// Subset is an admissible aggregate of elements on one dimension.
//
// An Atomic subset references its element by index; Intermediate and Top
// subsets own their outgoing partitions. Back-references to the owning
// Set are kept as the dimension index only, so the ownership graph stays
// acyclic; closures over a subset's atoms are Set methods.
type Subset struct {
	dim        int
	id         int
	name       string
	kind       Kind
	elem       int // element index when kind == Atomic, -1 otherwise
	partitions []*Partition
}

// Dim returns the owning dimension's position.
func (s *Subset) Dim() int { return s.dim }

// ID returns the dense insertion index of this subset within its dimension.
func (s *Subset) ID() int { return s.id }

// Name returns the subset's unique name within its dimension.
func (s *Subset) Name() string { return s.name }

// Kind returns the subset's current role tag.
func (s *Subset) Kind() Kind { return s.kind }

// ElementID returns the wrapped element index for an Atomic subset
// and -1 for any other kind.
func (s *Subset) ElementID() int { return s.elem }

// Partitions returns the subset's admissible partitions in insertion order.
// The returned slice is shared; callers must not mutate it.
func (s *Subset) Partitions() []*Partition { return s.partitions }

// Partition is one admissible decomposition of its owner subset into two
// or more subsets of the same dimension. Parts are references, not owned.
//
// Precondition (documented, not checked): the atoms of the parts are
// pairwise disjoint and their union equals the owner's atoms. Alternative
// partitions of the same owner cover identical atom sets.
type Partition struct {
	owner *Subset
	parts []*Subset
}

// Owner returns the subset this partition decomposes.
func (p *Partition) Owner() *Subset { return p.owner }

// Parts returns the partition's member subsets in insertion order.
// The returned slice is shared; callers must not mutate it.
func (p *Partition) Parts() []*Subset { return p.parts }

// String renders the partition as "{part1, part2, …}".
func (p *Partition) String() string {
	str := "{"
	for i, part := range p.parts {
		if i > 0 {
			str += ", "
		}
		str += part.name
	}

	return str + "}"
}
