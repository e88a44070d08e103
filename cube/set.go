// This file implements Set: the value-set catalog and subset hierarchy
// of a single dimension. Sets are created through MultiSet.AddSet so the
// dimension index is assigned by the owner.
package cube

import "fmt"

// Set owns the elements and the subset hierarchy of one dimension.
//
// Elements and subsets carry dense insertion indices and unique names.
// The hierarchy is a DAG: a subset may appear as a part of several
// partitions, and a subset may own several alternative partitions.
type Set struct {
	dim  int
	name string

	elements       []*Element
	elementsByName map[string]*Element

	subsets       []*Subset
	subsetsByName map[string]*Subset

	top *Subset

	frozen *bool // shared with the owning MultiSet
}

// Name returns the set's name.
func (s *Set) Name() string { return s.name }

// Dim returns the set's dimension position within the owning MultiSet.
func (s *Set) Dim() int { return s.dim }

// Len returns the number of elements declared so far.
func (s *Set) Len() int { return len(s.elements) }

// AddElement declares a new element with the given name.
// Returns ErrDuplicateName if the name is taken, ErrFrozen after Freeze.
// Complexity: O(1).
func (s *Set) AddElement(name string) (*Element, error) {
	if *s.frozen {
		return nil, ErrFrozen
	}
	if _, ok := s.elementsByName[name]; ok {
		return nil, fmt.Errorf("%w: element %q in set %q", ErrDuplicateName, name, s.name)
	}

	e := &Element{Dim: s.dim, ID: len(s.elements), Name: name}
	s.elements = append(s.elements, e)
	s.elementsByName[name] = e

	return e, nil
}

// Element looks up an element by name.
func (s *Set) Element(name string) (*Element, error) {
	e, ok := s.elementsByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in set %q", ErrElementNotFound, name, s.name)
	}

	return e, nil
}

// ElementAt looks up an element by dense index.
func (s *Set) ElementAt(i int) (*Element, error) {
	if i < 0 || i >= len(s.elements) {
		return nil, fmt.Errorf("%w: index %d in set %q", ErrElementNotFound, i, s.name)
	}

	return s.elements[i], nil
}

// Elements returns the elements in insertion order.
// The returned slice is shared; callers must not mutate it.
func (s *Set) Elements() []*Element { return s.elements }

// HasElement reports whether name is a declared element.
func (s *Set) HasElement(name string) bool {
	_, ok := s.elementsByName[name]

	return ok
}

// AddAtomicSubset declares an atomic subset wrapping the named element.
// The element must already exist. Returns ErrDuplicateName if the subset
// name is taken and ErrElementNotFound for an unknown element.
func (s *Set) AddAtomicSubset(name, elementName string) (*Subset, error) {
	if *s.frozen {
		return nil, ErrFrozen
	}
	e, err := s.Element(elementName)
	if err != nil {
		return nil, err
	}

	return s.addSubset(name, Atomic, e.ID)
}

// AddSubset declares an intermediate subset with the given name.
// Partitions are attached separately with AddPartition; an intermediate
// that still has none when the MultiSet is frozen is a data error.
func (s *Set) AddSubset(name string) (*Subset, error) {
	if *s.frozen {
		return nil, ErrFrozen
	}

	return s.addSubset(name, Intermediate, -1)
}

// addSubset appends a subset with a dense index and registers its name.
func (s *Set) addSubset(name string, kind Kind, elem int) (*Subset, error) {
	if _, ok := s.subsetsByName[name]; ok {
		return nil, fmt.Errorf("%w: subset %q in set %q", ErrDuplicateName, name, s.name)
	}

	sub := &Subset{dim: s.dim, id: len(s.subsets), name: name, kind: kind, elem: elem}
	s.subsets = append(s.subsets, sub)
	s.subsetsByName[name] = sub

	return sub, nil
}

// Subset looks up a subset by name.
func (s *Set) Subset(name string) (*Subset, error) {
	sub, ok := s.subsetsByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q in set %q", ErrSubsetNotFound, name, s.name)
	}

	return sub, nil
}

// SubsetAt looks up a subset by dense index.
func (s *Set) SubsetAt(i int) (*Subset, error) {
	if i < 0 || i >= len(s.subsets) {
		return nil, fmt.Errorf("%w: index %d in set %q", ErrSubsetNotFound, i, s.name)
	}

	return s.subsets[i], nil
}

// Subsets returns the subsets in insertion order.
// The returned slice is shared; callers must not mutate it.
func (s *Set) Subsets() []*Subset { return s.subsets }

// HasSubset reports whether name is a declared subset.
func (s *Set) HasSubset(name string) bool {
	_, ok := s.subsetsByName[name]

	return ok
}

// AddPartition attaches one admissible partition to the named owner
// subset. Part names are resolved within this set, in the given order.
//
// Errors: ErrSubsetNotFound for the owner or any part,
// ErrAtomicPartition when the owner is atomic, ErrPartitionTooSmall for
// fewer than two parts, ErrFrozen after Freeze.
func (s *Set) AddPartition(owner string, partNames ...string) (*Partition, error) {
	if *s.frozen {
		return nil, ErrFrozen
	}
	sub, err := s.Subset(owner)
	if err != nil {
		return nil, err
	}
	if sub.kind == Atomic {
		return nil, fmt.Errorf("%w: %q in set %q", ErrAtomicPartition, owner, s.name)
	}
	if len(partNames) < 2 {
		return nil, fmt.Errorf("%w: %q in set %q", ErrPartitionTooSmall, owner, s.name)
	}

	parts := make([]*Subset, 0, len(partNames))
	for _, pn := range partNames {
		part, err := s.Subset(pn)
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}

	p := &Partition{owner: sub, parts: parts}
	sub.partitions = append(sub.partitions, p)

	return p, nil
}

// PromoteTop marks the named subset as this dimension's top, demoting a
// previously promoted top back to Intermediate. Atomic subsets cannot be
// promoted. Typically invoked by input adapters on the last declared
// subset of a dimension file.
func (s *Set) PromoteTop(name string) error {
	if *s.frozen {
		return ErrFrozen
	}
	sub, err := s.Subset(name)
	if err != nil {
		return err
	}
	if sub.kind == Atomic {
		return fmt.Errorf("%w: %q in set %q", ErrAtomicTop, name, s.name)
	}
	if s.top != nil && s.top != sub {
		s.top.kind = Intermediate
	}
	sub.kind = Top
	s.top = sub

	return nil
}

// Top returns the dimension's top subset, or ErrNoTop if none was promoted.
func (s *Set) Top() (*Subset, error) {
	if s.top == nil {
		return nil, fmt.Errorf("%w: set %q", ErrNoTop, s.name)
	}

	return s.top, nil
}

// Atoms returns the elements reachable from sub, in depth-first order
// through the first partition at each level. Atomic subsets yield their
// single element. An intermediate with no partition yields
// ErrNoPartition — the data error of an unfinished hierarchy.
//
// All alternative partitions of a subset cover the same atoms by
// precondition, so traversing partitions[0] is sufficient.
// Complexity: O(atoms) per call; no memoisation (callers cache).
func (s *Set) Atoms(sub *Subset) ([]*Element, error) {
	var atoms []*Element
	if err := s.appendAtoms(sub, &atoms); err != nil {
		return nil, err
	}

	return atoms, nil
}

// appendAtoms is the recursive worker behind Atoms.
func (s *Set) appendAtoms(sub *Subset, atoms *[]*Element) error {
	if sub.kind == Atomic {
		*atoms = append(*atoms, s.elements[sub.elem])

		return nil
	}
	if len(sub.partitions) == 0 {
		return fmt.Errorf("%w: %q in set %q", ErrNoPartition, sub.name, s.name)
	}
	for _, part := range sub.partitions[0].parts {
		if err := s.appendAtoms(part, atoms); err != nil {
			return err
		}
	}

	return nil
}

// String renders the set as its element roster followed by one line per
// subset, mirroring the engine's diagnostic dump format:
//
//	A = {a1, a2}
//		A1 = {a1}
//		A12 = {a1, a2} {A1, A2}
func (s *Set) String() string {
	str := s.name + " = {"
	for i, e := range s.elements {
		if i > 0 {
			str += ", "
		}
		str += e.Name
	}
	str += "}"

	for _, sub := range s.subsets {
		str += "\n\t" + s.subsetString(sub)
	}

	return str
}

// subsetString renders one subset: its atom roster and every partition.
func (s *Set) subsetString(sub *Subset) string {
	str := sub.name + " = {"
	atoms, err := s.Atoms(sub)
	if err == nil {
		for i, e := range atoms {
			if i > 0 {
				str += ", "
			}
			str += e.Name
		}
	}
	str += "}"

	for _, p := range sub.partitions {
		str += " " + p.String()
	}

	return str
}
