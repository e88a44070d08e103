package builder_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcube/builder"
	"github.com/katalvlaran/lvlcube/cube"
)

const abcDocument = `
name: ABC
sets:
  - name: A
    elements: [a1, a2, a3, a4]
    subsets:
      - {name: A1, element: a1}
      - {name: A2, element: a2}
      - {name: A3, element: a3}
      - {name: A4, element: a4}
      - {name: A12, parts: [A1, A2]}
      - {name: A34, parts: [A3, A4]}
      - {name: A1234, parts: [A12, A34], top: true}
  - name: B
    elements: [b1, b2, b3]
    subsets:
      - {name: B1, element: b1}
      - {name: B2, element: b2}
      - {name: B3, element: b3}
      - {name: B12, parts: [B1, B2]}
      - {name: B23, parts: [B2, B3]}
      - {name: B123, parts: [B1, B23], top: true}
      - {name: B123, parts: [B12, B3]}
  - name: C
    elements: [c1, c2]
    subsets:
      - {name: C1, element: c1}
      - {name: C2, element: c2}
      - {name: C12, parts: [C1, C2], top: true}
cells:
  - {at: [a3, b2, c1], value: 2}
`

// TestReadYAML_Document verifies a full document: dimensions, tops,
// alternative partitions, and cells.
func TestReadYAML_Document(t *testing.T) {
	ms, rep, err := builder.ReadYAML(strings.NewReader(abcDocument))
	require.NoError(t, err)
	assert.True(t, rep.Ok(), "warnings: %v", rep.Warnings)

	require.Equal(t, 3, ms.Dim())
	assert.True(t, ms.Frozen())
	assert.Equal(t, "ABC", ms.Name())
	assert.Equal(t, 24, ms.CellCount())

	b, err := ms.Set("B")
	require.NoError(t, err)
	top, err := b.Top()
	require.NoError(t, err)
	assert.Equal(t, "B123", top.Name())
	assert.Len(t, top.Partitions(), 2, "repeated subset entries add partitions")

	v, err := ms.Value([]string{"a3", "b2", "c1"})
	require.NoError(t, err)
	assert.Equal(t, 2.0, v)
}

// TestReadYAML_TopFallback verifies that without a top flag the last
// subset of a set is promoted.
func TestReadYAML_TopFallback(t *testing.T) {
	doc := `
sets:
  - name: A
    elements: [a1, a2]
    subsets:
      - {name: A1, element: a1}
      - {name: A2, element: a2}
      - {name: A12, parts: [A1, A2]}
`
	ms, _, err := builder.ReadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	a, err := ms.Set("A")
	require.NoError(t, err)
	top, err := a.Top()
	require.NoError(t, err)
	assert.Equal(t, "A12", top.Name())
}

// TestReadYAML_Diagnostics verifies report-and-skip on unknown parts
// and bad cells.
func TestReadYAML_Diagnostics(t *testing.T) {
	doc := `
sets:
  - name: A
    elements: [a1, a2]
    subsets:
      - {name: A1, element: a1}
      - {name: A2, element: a2}
      - {name: A12, parts: [A1, zz, A2]}
cells:
  - {at: [a9], value: 1}
  - {at: [a1], value: 3}
`
	ms, rep, err := builder.ReadYAML(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, rep.Warnings, 2)
	assert.Contains(t, rep.Warnings[0], `unknown part "zz"`)
	assert.Contains(t, rep.Warnings[1], "element not found")

	v, err := ms.Value([]string{"a1"})
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

// TestReadYAML_BadDocument verifies the hard-error paths: broken YAML,
// an empty document, and an unfreezable hierarchy.
func TestReadYAML_BadDocument(t *testing.T) {
	_, _, err := builder.ReadYAML(strings.NewReader(":\n  - ["))
	assert.ErrorIs(t, err, builder.ErrBadYAML)

	_, _, err = builder.ReadYAML(strings.NewReader("name: empty\n"))
	assert.ErrorIs(t, err, builder.ErrBadYAML, "no dimensions cannot freeze")

	// An intermediate without parts survives the read but fails Freeze.
	doc := `
sets:
  - name: A
    elements: [a1, a2]
    subsets:
      - {name: A1, element: a1}
      - {name: A2, element: a2}
      - {name: A12, parts: [A1, A2]}
      - {name: Bare, parts: [zz, yy]}
`
	_, rep, err := builder.ReadYAML(strings.NewReader(doc))
	assert.ErrorIs(t, err, builder.ErrBadYAML)
	require.NotNil(t, rep)
	assert.False(t, rep.Ok())

	_, _, err = builder.ReadYAML(nil)
	assert.ErrorIs(t, err, builder.ErrNilReader)
}

// TestReadYAML_Strict verifies WithStrict aborts at the first warning.
func TestReadYAML_Strict(t *testing.T) {
	doc := `
sets:
  - name: A
    elements: [a1, a1]
    subsets:
      - {name: A1, element: a1}
`
	_, _, err := builder.ReadYAML(strings.NewReader(doc), builder.WithStrict())
	assert.ErrorIs(t, err, builder.ErrStrict)
}

// TestReadYAML_EndToEnd verifies the loaded reference document yields a
// usable hierarchy: dimension A's flagged subset is promoted to Top and
// its closure reaches all four atoms.
func TestReadYAML_EndToEnd(t *testing.T) {
	ms, _, err := builder.ReadYAML(strings.NewReader(abcDocument))
	require.NoError(t, err)

	a, err := ms.Set("A")
	require.NoError(t, err)
	topA, err := a.Top()
	require.NoError(t, err)
	atoms, err := a.Atoms(topA)
	require.NoError(t, err)
	require.Len(t, atoms, 4)
	assert.Equal(t, cube.Top, topA.Kind())
}
