// This file implements MultiSet: the owner of all dimensions and of the
// dense measure tensor over their Cartesian product.
package cube

import (
	"fmt"
	"strconv"
)

// MultiSet owns one Set per dimension and, once frozen, the dense
// measure tensor over the Cartesian product of all element sets.
//
// Structural mutation (sets, elements, subsets, partitions) is only
// allowed before Freeze; tensor access only after. Freeze is the single
// point where the hierarchy is validated: every dimension must have a
// top subset and every non-atomic subset at least one partition.
type MultiSet struct {
	name string

	sets       []*Set
	setsByName map[string]*Set

	values []float64 // dense tensor, length ∏ N_d once frozen
	frozen bool
}

// NewMultiSet creates an empty MultiSet with the given name.
// Complexity: O(1).
func NewMultiSet(name string) *MultiSet {
	return &MultiSet{
		name:       name,
		setsByName: make(map[string]*Set),
	}
}

// Name returns the multiset's name.
func (m *MultiSet) Name() string { return m.name }

// Dim returns the number of dimensions added so far.
func (m *MultiSet) Dim() int { return len(m.sets) }

// Frozen reports whether Freeze has been called.
func (m *MultiSet) Frozen() bool { return m.frozen }

// AddSet appends a new dimension with the given name and returns its Set.
// Dimensions are positioned in insertion order.
// Returns ErrDuplicateName for a taken name, ErrFrozen after Freeze.
func (m *MultiSet) AddSet(name string) (*Set, error) {
	if m.frozen {
		return nil, ErrFrozen
	}
	if _, ok := m.setsByName[name]; ok {
		return nil, fmt.Errorf("%w: set %q", ErrDuplicateName, name)
	}

	s := &Set{
		dim:            len(m.sets),
		name:           name,
		elementsByName: make(map[string]*Element),
		subsetsByName:  make(map[string]*Subset),
		frozen:         &m.frozen,
	}
	m.sets = append(m.sets, s)
	m.setsByName[name] = s

	return s, nil
}

// Set looks up a dimension by name.
func (m *MultiSet) Set(name string) (*Set, error) {
	s, ok := m.setsByName[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSetNotFound, name)
	}

	return s, nil
}

// SetAt looks up a dimension by position.
func (m *MultiSet) SetAt(d int) (*Set, error) {
	if d < 0 || d >= len(m.sets) {
		return nil, fmt.Errorf("%w: dimension %d", ErrSetNotFound, d)
	}

	return m.sets[d], nil
}

// Sets returns the dimensions in position order.
// The returned slice is shared; callers must not mutate it.
func (m *MultiSet) Sets() []*Set { return m.sets }

// CellCount returns ∏ N_d, the number of tensor cells.
// Defined for both frozen and unfrozen multisets.
func (m *MultiSet) CellCount() int {
	n := 1
	for _, s := range m.sets {
		n *= len(s.elements)
	}

	return n
}

// Freeze validates the hierarchy and allocates the measure tensor.
//
// Validation:
//  1. At least one dimension, each with at least one element.
//  2. Every dimension has a top subset (ErrNoTop).
//  3. Every non-atomic subset owns at least one partition (ErrNoPartition).
//
// After Freeze all structural mutators fail with ErrFrozen and the
// tensor accessors become available. Freezing twice is an error.
// Complexity: O(∏ N_d) for the tensor allocation.
func (m *MultiSet) Freeze() error {
	if m.frozen {
		return ErrFrozen
	}
	if len(m.sets) == 0 {
		return fmt.Errorf("%w: multiset %q has no dimensions", ErrNoTop, m.name)
	}
	for _, s := range m.sets {
		if len(s.elements) == 0 {
			return fmt.Errorf("%w: set %q has no elements", ErrElementNotFound, s.name)
		}
		if s.top == nil {
			return fmt.Errorf("%w: set %q", ErrNoTop, s.name)
		}
		for _, sub := range s.subsets {
			if sub.kind != Atomic && len(sub.partitions) == 0 {
				return fmt.Errorf("%w: %q in set %q", ErrNoPartition, sub.name, s.name)
			}
		}
	}

	m.values = make([]float64, m.CellCount())
	m.frozen = true

	return nil
}

// CellID folds an element-index tuple into the linear tensor address,
// last dimension slowest:
//
//	id = ((e_{D-1}·N_{D-2} + e_{D-2})·N_{D-3} + …)·N_0 + e_0
//
// Returns ErrBadTuple for a wrong arity or an out-of-range index.
// Complexity: O(D).
func (m *MultiSet) CellID(idx []int) (int, error) {
	if len(idx) != len(m.sets) {
		return 0, fmt.Errorf("%w: got %d indices, want %d", ErrBadTuple, len(idx), len(m.sets))
	}

	id := 0
	for d := len(m.sets) - 1; d >= 0; d-- {
		n := len(m.sets[d].elements)
		if idx[d] < 0 || idx[d] >= n {
			return 0, fmt.Errorf("%w: index %d out of range in dimension %d", ErrBadTuple, idx[d], d)
		}
		id = id*n + idx[d]
	}

	return id, nil
}

// SetValueAt assigns v to the cell addressed by an element-index tuple.
// Assigning the same cell twice overwrites silently.
// Returns ErrNotFrozen before Freeze and ErrNegativeValue for v < 0.
func (m *MultiSet) SetValueAt(idx []int, v float64) error {
	if !m.frozen {
		return ErrNotFrozen
	}
	if v < 0 {
		return fmt.Errorf("%w: %g", ErrNegativeValue, v)
	}
	id, err := m.CellID(idx)
	if err != nil {
		return err
	}
	m.values[id] = v

	return nil
}

// SetValue assigns v to the cell addressed by an element-name tuple,
// one name per dimension in position order.
func (m *MultiSet) SetValue(names []string, v float64) error {
	idx, err := m.tuple(names)
	if err != nil {
		return err
	}

	return m.SetValueAt(idx, v)
}

// ValueAt reads the cell addressed by an element-index tuple.
// Unassigned cells read as 0.
func (m *MultiSet) ValueAt(idx []int) (float64, error) {
	if !m.frozen {
		return 0, ErrNotFrozen
	}
	id, err := m.CellID(idx)
	if err != nil {
		return 0, err
	}

	return m.values[id], nil
}

// Value reads the cell addressed by an element-name tuple.
func (m *MultiSet) Value(names []string) (float64, error) {
	idx, err := m.tuple(names)
	if err != nil {
		return 0, err
	}

	return m.ValueAt(idx)
}

// tuple resolves an element-name tuple to element indices.
func (m *MultiSet) tuple(names []string) ([]int, error) {
	if len(names) != len(m.sets) {
		return nil, fmt.Errorf("%w: got %d names, want %d", ErrBadTuple, len(names), len(m.sets))
	}

	idx := make([]int, len(names))
	for d, name := range names {
		e, err := m.sets[d].Element(name)
		if err != nil {
			return nil, err
		}
		idx[d] = e.ID
	}

	return idx, nil
}

// String renders every dimension followed by the full cell listing,
// one cell per line with its element names and value — the diagnostic
// dump of the original engine. Intended for small multisets.
func (m *MultiSet) String() string {
	str := ""
	for _, s := range m.sets {
		str += s.String() + "\n"
	}

	str += m.name + " = {"
	if !m.frozen {
		return str + "}"
	}

	idx := make([]int, len(m.sets))
	for id := range m.values {
		if id > 0 {
			str += ","
		}
		str += "\n\t("
		for d, s := range m.sets {
			str += s.elements[idx[d]].Name + ", "
		}
		str += strconv.FormatFloat(m.values[id], 'g', -1, 64) + ")"

		// odometer: first dimension fastest
		for d := 0; d < len(idx); d++ {
			idx[d]++
			if idx[d] < len(m.sets[d].elements) {
				break
			}
			idx[d] = 0
		}
	}

	return str + "\n}"
}
