package math

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDivFloor(t *testing.T) {
	require.Equal(t, 0, DivFloor(1, 2))
	require.Equal(t, 4, DivFloor(8, 2))
	require.Equal(t, 4, DivFloor(9, 2))
}

func TestNonNegMod(t *testing.T) {
	require.Equal(t, 3, NonNegMod(3, 8))
	require.Equal(t, 0, NonNegMod(16, 8))
	require.Equal(t, 5, NonNegMod(-3, 8))
	require.Equal(t, int64(1), NonNegMod(int64(-15), 8))
	for x := -20; x < 20; x++ {
		r := NonNegMod(x, 7)
		require.True(t, r >= 0 && r < 7)
	}
}
