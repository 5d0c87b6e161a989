// Package route_test - bijective mapping coverage.
package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qilimanjaro-tech/pulsekit/route"
)

// requireBijection asserts the two directions of a mapping stay mutual
// inverses.
func requireBijection(t *testing.T, m *route.CircuitMap) {
	t.Helper()

	var p int
	for p = 0; p < m.N(); p++ {
		require.Equal(t, p, m.Physical(m.Logical(p)))
	}
}

func TestNewCircuitMap_Identity(t *testing.T) {
	m := route.NewCircuitMap(4)

	var q int
	for q = 0; q < 4; q++ {
		require.Equal(t, q, m.Physical(q))
		require.Equal(t, q, m.Logical(q))
	}
	requireBijection(t, m)
}

func TestNewCircuitMapFromLayout(t *testing.T) {
	m, err := route.NewCircuitMapFromLayout([]int{2, 0, 1})
	require.NoError(t, err)
	require.Equal(t, 2, m.Physical(0))
	require.Equal(t, 1, m.Logical(0))
	requireBijection(t, m)
}

func TestNewCircuitMapFromLayout_Rejections(t *testing.T) {
	_, err := route.NewCircuitMapFromLayout([]int{0, 0, 1})
	require.ErrorIs(t, err, route.ErrBadLayout)

	_, err = route.NewCircuitMapFromLayout([]int{0, 3, 1})
	require.ErrorIs(t, err, route.ErrBadLayout)

	_, err = route.NewCircuitMapFromLayout([]int{0, -1, 1})
	require.ErrorIs(t, err, route.ErrBadLayout)
}

func TestApplySwap_InvariantHolds(t *testing.T) {
	m := route.NewCircuitMap(5)
	m.ApplySwap(0, 3)
	m.ApplySwap(3, 4)
	m.ApplySwap(1, 2)

	requireBijection(t, m)
	require.Equal(t, 0, m.Logical(4), "logical 0 travelled 0, 3, 4")
	require.Equal(t, 4, m.Physical(0))
}

func TestUndoLastSwap(t *testing.T) {
	m := route.NewCircuitMap(3)
	before := m.Layout()

	m.ApplySwap(0, 2)
	m.ApplySwap(1, 2)
	require.True(t, m.UndoLastSwap())
	require.True(t, m.UndoLastSwap())
	require.False(t, m.UndoLastSwap())

	require.Equal(t, before, m.Layout())
	requireBijection(t, m)
}

func TestLayout_IsACopy(t *testing.T) {
	m := route.NewCircuitMap(3)
	l := m.Layout()
	l[0] = 99

	require.Equal(t, 0, m.Physical(0))
}
