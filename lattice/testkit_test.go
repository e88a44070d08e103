package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlcube/cube"
)

// buildABC builds the three-dimensional reference multiset:
//
//	A = {a1..a4}: A1234 = {A12, A34}, A12 = {A1, A2}, A34 = {A3, A4}
//	B = {b1..b3}: B123 = {B1, B23} | {B12, B3}, B12 = {B1, B2}, B23 = {B2, B3}
//	C = {c1, c2}: C12 = {C1, C2}
//
// The multiset is frozen; cells maps element-name tuples to values.
func buildABC(t *testing.T, cells map[[3]string]float64) *cube.MultiSet {
	t.Helper()
	ms := cube.NewMultiSet("ABC")

	a, err := ms.AddSet("A")
	require.NoError(t, err)
	for _, n := range []string{"a1", "a2", "a3", "a4"} {
		_, err = a.AddElement(n)
		require.NoError(t, err)
	}
	for i, n := range []string{"A1", "A2", "A3", "A4"} {
		_, err = a.AddAtomicSubset(n, []string{"a1", "a2", "a3", "a4"}[i])
		require.NoError(t, err)
	}
	_, err = a.AddSubset("A12")
	require.NoError(t, err)
	_, err = a.AddPartition("A12", "A1", "A2")
	require.NoError(t, err)
	_, err = a.AddSubset("A34")
	require.NoError(t, err)
	_, err = a.AddPartition("A34", "A3", "A4")
	require.NoError(t, err)
	_, err = a.AddSubset("A1234")
	require.NoError(t, err)
	_, err = a.AddPartition("A1234", "A12", "A34")
	require.NoError(t, err)
	require.NoError(t, a.PromoteTop("A1234"))

	b, err := ms.AddSet("B")
	require.NoError(t, err)
	for _, n := range []string{"b1", "b2", "b3"} {
		_, err = b.AddElement(n)
		require.NoError(t, err)
	}
	for i, n := range []string{"B1", "B2", "B3"} {
		_, err = b.AddAtomicSubset(n, []string{"b1", "b2", "b3"}[i])
		require.NoError(t, err)
	}
	_, err = b.AddSubset("B12")
	require.NoError(t, err)
	_, err = b.AddPartition("B12", "B1", "B2")
	require.NoError(t, err)
	_, err = b.AddSubset("B23")
	require.NoError(t, err)
	_, err = b.AddPartition("B23", "B2", "B3")
	require.NoError(t, err)
	_, err = b.AddSubset("B123")
	require.NoError(t, err)
	_, err = b.AddPartition("B123", "B1", "B23")
	require.NoError(t, err)
	_, err = b.AddPartition("B123", "B12", "B3")
	require.NoError(t, err)
	require.NoError(t, b.PromoteTop("B123"))

	c, err := ms.AddSet("C")
	require.NoError(t, err)
	for _, n := range []string{"c1", "c2"} {
		_, err = c.AddElement(n)
		require.NoError(t, err)
	}
	_, err = c.AddAtomicSubset("C1", "c1")
	require.NoError(t, err)
	_, err = c.AddAtomicSubset("C2", "c2")
	require.NoError(t, err)
	_, err = c.AddSubset("C12")
	require.NoError(t, err)
	_, err = c.AddPartition("C12", "C1", "C2")
	require.NoError(t, err)
	require.NoError(t, c.PromoteTop("C12"))

	require.NoError(t, ms.Freeze())
	for at, v := range cells {
		require.NoError(t, ms.SetValue(at[:], v))
	}

	return ms
}
