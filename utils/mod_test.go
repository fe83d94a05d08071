package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
	require.Equal(t, -1, FindIndex(nil, 3))
}

func TestLast(t *testing.T) {
	v, ok := Last([]int{1, 2, 3})
	require.True(t, ok)
	require.Equal(t, 3, v)

	_, ok = Last([]int{})
	require.False(t, ok)
}
