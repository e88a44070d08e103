package cube

import "errors"

var (
	// ErrFrozen indicates a structural mutation was attempted after Freeze.
	ErrFrozen = errors.New("cube: multiset is frozen")

	// ErrNotFrozen indicates tensor access before the MultiSet was frozen.
	ErrNotFrozen = errors.New("cube: multiset is not frozen")

	// ErrDuplicateName indicates an element, subset, or set name is already taken.
	ErrDuplicateName = errors.New("cube: duplicate name")

	// ErrElementNotFound indicates an unknown element name or index.
	ErrElementNotFound = errors.New("cube: element not found")

	// ErrSubsetNotFound indicates an unknown subset name.
	ErrSubsetNotFound = errors.New("cube: subset not found")

	// ErrSetNotFound indicates an unknown set name.
	ErrSetNotFound = errors.New("cube: set not found")

	// ErrNoTop indicates a dimension without a top subset at Freeze time.
	ErrNoTop = errors.New("cube: no top subset")

	// ErrNoPartition indicates an intermediate subset with no attached partition.
	ErrNoPartition = errors.New("cube: intermediate subset has no partition")

	// ErrAtomicPartition indicates an attempt to partition an atomic subset.
	ErrAtomicPartition = errors.New("cube: atomic subset cannot be partitioned")

	// ErrAtomicTop indicates an attempt to promote an atomic subset to top.
	ErrAtomicTop = errors.New("cube: atomic subset cannot be top")

	// ErrPartitionTooSmall indicates a partition with fewer than two parts.
	ErrPartitionTooSmall = errors.New("cube: partition needs at least two parts")

	// ErrNegativeValue indicates a negative measure value.
	ErrNegativeValue = errors.New("cube: measure value must be non-negative")

	// ErrBadTuple indicates a tuple of wrong arity or with an index out of range.
	ErrBadTuple = errors.New("cube: bad cell tuple")
)
