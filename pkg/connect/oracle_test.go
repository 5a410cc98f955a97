package connect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCircuits(t *testing.T) {
	o := NewCircuits(6)
	c := o.(*Circuits)
	require.Equal(t, []int{1, 1, 1, 1, 1, 1}, o.Sizes())

	require.True(t, o.Union(0, 1))
	require.True(t, o.Union(2, 1))
	require.False(t, o.Union(0, 2))
	require.True(t, o.Union(4, 5))
	require.Equal(t, []int{3, 2, 1}, o.Sizes())
	require.Equal(t, []int{0, 1, 2}, c.Members(1))
	require.Equal(t, []int{4, 5}, c.Members(5))
	require.Equal(t, []int{3}, c.Members(3))
	require.False(t, o.IsFullyConnected())

	require.True(t, o.Union(3, 4))
	require.True(t, o.Union(5, 0))
	require.True(t, o.IsFullyConnected())
	require.Equal(t, []int{6}, o.Sizes())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5}, c.Members(3))
}

func TestOracleComponentCountMonotonic(t *testing.T) {
	pairs := [][2]int{{0, 1}, {1, 2}, {0, 2}, {3, 4}, {4, 3}, {2, 3}, {5, 6}, {6, 0}}
	for name, f := range oracles {
		o := f(7)
		count := len(o.Sizes())
		for _, p := range pairs {
			merged := o.Union(p[0], p[1])
			newCount := len(o.Sizes())
			if merged {
				require.Equal(t, count-1, newCount, name)
			} else {
				require.Equal(t, count, newCount, name)
			}
			count = newCount
		}
		require.Equal(t, 1, count, name)
		require.True(t, o.IsFullyConnected(), name)
	}
}
