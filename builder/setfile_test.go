package builder_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcube/builder"
	"github.com/katalvlaran/lvlcube/cube"
)

// newDim returns a fresh multiset with one empty dimension.
func newDim(t *testing.T) (*cube.MultiSet, *cube.Set) {
	t.Helper()
	ms := cube.NewMultiSet("M")
	s, err := ms.AddSet("A")
	require.NoError(t, err)

	return ms, s
}

// TestReadSetFile_Hierarchy verifies the three record forms, top
// promotion, and the resulting closure.
func TestReadSetFile_Hierarchy(t *testing.T) {
	_, s := newDim(t)
	input := `
a1
a2
a3
a4

A12 a1 a2
A34 a3 a4
A1234 A12 A34
`
	rep, err := builder.ReadSetFile(s, strings.NewReader(input))
	require.NoError(t, err)
	assert.True(t, rep.Ok(), "warnings: %v", rep.Warnings)
	assert.Equal(t, 7, rep.Records)
	assert.Equal(t, 7, rep.Applied)

	assert.Equal(t, 4, s.Len(), "four elements declared")
	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, "A1234", top.Name())
	assert.Equal(t, cube.Top, top.Kind())

	atoms, err := s.Atoms(top)
	require.NoError(t, err)
	require.Len(t, atoms, 4)
	assert.Equal(t, "a1", atoms[0].Name)

	// Single-token records create singleton atomic subsets.
	sub, err := s.Subset("a1")
	require.NoError(t, err)
	assert.Equal(t, cube.Atomic, sub.Kind())
}

// TestReadSetFile_AtomicAlias verifies the two-token form with a known
// element.
func TestReadSetFile_AtomicAlias(t *testing.T) {
	_, s := newDim(t)
	input := "a1\na2\nX a1\nTop X a2\n"
	rep, err := builder.ReadSetFile(s, strings.NewReader(input))
	require.NoError(t, err)
	assert.True(t, rep.Ok(), "warnings: %v", rep.Warnings)

	x, err := s.Subset("X")
	require.NoError(t, err)
	assert.Equal(t, cube.Atomic, x.Kind())
	assert.Equal(t, 0, x.ElementID())

	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, "Top", top.Name())
}

// TestReadSetFile_UnknownPart verifies that unknown parts are warned
// about and the record is applied to the recognised ones.
func TestReadSetFile_UnknownPart(t *testing.T) {
	_, s := newDim(t)
	input := "a1\na2\na3\nTop a1 zz a2 a3\n"
	rep, err := builder.ReadSetFile(s, strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0], `unknown part "zz"`)
	assert.Contains(t, rep.Warnings[0], "line 4")

	top, err := s.Top()
	require.NoError(t, err)
	atoms, err := s.Atoms(top)
	require.NoError(t, err)
	assert.Len(t, atoms, 3, "partition applied to the three known parts")
}

// TestReadSetFile_ShortPartition verifies that a record left with fewer
// than two known parts is warned about and skipped.
func TestReadSetFile_ShortPartition(t *testing.T) {
	_, s := newDim(t)
	input := "a1\na2\nBad zz yy\nTop a1 a2\n"
	rep, err := builder.ReadSetFile(s, strings.NewReader(input))
	require.NoError(t, err)
	assert.Len(t, rep.Warnings, 3, "two unknown parts and one short partition")

	// The subset exists but carries no partition: Freeze will reject it.
	bad, err := s.Subset("Bad")
	require.NoError(t, err)
	assert.Empty(t, bad.Partitions())
}

// TestReadSetFile_DuplicateElement verifies diagnostics for repeated
// declarations.
func TestReadSetFile_DuplicateElement(t *testing.T) {
	_, s := newDim(t)
	input := "a1\na1\na2\nTop a1 a2\n"
	rep, err := builder.ReadSetFile(s, strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0], "line 2")
	assert.Equal(t, 2, s.Len())
}

// TestReadSetFile_NoSubset verifies the empty-input diagnostic.
func TestReadSetFile_NoSubset(t *testing.T) {
	_, s := newDim(t)
	rep, err := builder.ReadSetFile(s, strings.NewReader("\n\n"))
	require.NoError(t, err)
	require.Len(t, rep.Warnings, 1)
	assert.Contains(t, rep.Warnings[0], "no subset declared")
}

// TestReadSetFile_Strict verifies that WithStrict aborts at the first
// diagnostic.
func TestReadSetFile_Strict(t *testing.T) {
	_, s := newDim(t)
	input := "a1\na1\na2\nTop a1 a2\n"
	_, err := builder.ReadSetFile(s, strings.NewReader(input), builder.WithStrict())
	assert.ErrorIs(t, err, builder.ErrStrict)
}

// TestReadSetFile_NilArgs verifies the hard-error paths.
func TestReadSetFile_NilArgs(t *testing.T) {
	_, s := newDim(t)
	_, err := builder.ReadSetFile(nil, strings.NewReader(""))
	assert.ErrorIs(t, err, builder.ErrNilTarget)
	_, err = builder.ReadSetFile(s, nil)
	assert.ErrorIs(t, err, builder.ErrNilReader)
}
