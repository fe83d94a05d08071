package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func place(b *Board, x, y int, group Group, id Identity) *Unit {
	u := NewUnit(group, id)
	b.Put(at(x, y), u)
	return u
}

func TestLegalDestinations(t *testing.T) {
	t.Run("rail slide runs to the end of the line and turns at joints", func(t *testing.T) {
		b := NewBoard()
		place(b, 4, 1, 0, Infantry)

		got := LegalDestinations(b, at(4, 1)).Sorted()

		require.Equal(t, coords(
			[2]int{1, 4}, [2]int{2, 4}, [2]int{3, 4},
			[2]int{4, 0}, [2]int{4, 2}, [2]int{4, 3}, [2]int{4, 4}, [2]int{4, 5},
			[2]int{4, 6}, [2]int{4, 7}, [2]int{4, 8}, [2]int{4, 9},
			[2]int{5, 1}, [2]int{5, 2}, [2]int{6, 1},
		), got)
	})

	t.Run("slide stops on the first enemy and includes it", func(t *testing.T) {
		b := NewBoard()
		place(b, 4, 1, 0, Infantry)
		place(b, 4, 8, 1, Infantry)

		got := LegalDestinations(b, at(4, 1))

		require.True(t, got.Has(at(4, 8)))
		require.False(t, got.Has(at(4, 9)))
		require.Len(t, got, 14)
	})

	t.Run("friendly units block and are never destinations", func(t *testing.T) {
		b := NewBoard()
		place(b, 4, 1, 0, Infantry)
		place(b, 4, 3, 2, Infantry)

		got := LegalDestinations(b, at(4, 1))

		require.True(t, got.Has(at(4, 2)))
		require.False(t, got.Has(at(4, 3)), "Allied group 2 is owned by the same player")
		require.False(t, got.Has(at(4, 4)))
		require.False(t, got.Has(at(4, 1)), "A unit never moves onto its own cell")
	})

	t.Run("units off the rails step along the roads", func(t *testing.T) {
		b := NewBoard()
		place(b, 5, 0, 0, Infantry)

		got := LegalDestinations(b, at(5, 0)).Sorted()

		require.Equal(t, coords([2]int{4, 0}, [2]int{5, 1}, [2]int{6, 0}), got)
	})

	t.Run("occupied camps are sanctuaries", func(t *testing.T) {
		b := NewBoard()
		place(b, 5, 1, 0, Infantry)
		place(b, 5, 2, 1, Infantry)

		got := LegalDestinations(b, at(5, 1)).Sorted()

		require.Equal(t, coords([2]int{4, 1}, [2]int{5, 0}, [2]int{6, 1}), got)
	})

	t.Run("units in a camp may leave it", func(t *testing.T) {
		b := NewBoard()
		place(b, 5, 2, 0, Infantry)

		got := LegalDestinations(b, at(5, 2))

		require.Len(t, got, 8)
	})

	t.Run("attack from the front line", func(t *testing.T) {
		b := NewBoard()
		place(b, 5, 3, 0, Infantry)
		place(b, 5, 4, 1, Mine)

		got := LegalDestinations(b, at(5, 3)).Sorted()

		require.Equal(t, coords([2]int{4, 3}, [2]int{5, 2}, [2]int{5, 4}, [2]int{6, 3}), got)
	})

	t.Run("Scout travels the rails freely", func(t *testing.T) {
		b := NewBoard()
		place(b, 5, 1, 0, Scout)

		got := LegalDestinations(b, at(5, 1))

		require.Len(t, got, 42)
		require.True(t, got.Has(at(9, 5)))
		require.True(t, got.Has(at(5, 9)))
		require.True(t, got.Has(at(5, 0)), "Roads still apply")
		require.False(t, got.Has(at(5, 1)))
	})

	t.Run("non-Scouts from the same cell", func(t *testing.T) {
		b := NewBoard()
		place(b, 5, 1, 0, Tank)

		got := LegalDestinations(b, at(5, 1)).Sorted()

		require.Equal(t, coords([2]int{4, 1}, [2]int{5, 0}, [2]int{5, 2}, [2]int{6, 1}), got)
	})

	t.Run("Base and Mine never move", func(t *testing.T) {
		b := NewBoard()
		place(b, 5, 1, 0, Base)
		place(b, 4, 1, 0, Mine)

		require.Empty(t, LegalDestinations(b, at(5, 1)))
		require.Empty(t, LegalDestinations(b, at(4, 1)))
		require.False(t, HasLegalMove(b, 0))
	})

	t.Run("empty cell has no destinations", func(t *testing.T) {
		require.Empty(t, LegalDestinations(NewBoard(), at(5, 5)))
	})
}

func TestValidateMove(t *testing.T) {
	b := NewBoard()
	place(b, 5, 3, 0, Infantry)
	place(b, 5, 4, 1, Infantry)

	tests := []struct {
		name  string
		group Group
		move  Move
		want  bool
	}{
		{"legal step", 0, NewMove(at(5, 3), at(5, 2)), true},
		{"legal attack", 0, NewMove(at(5, 3), at(5, 4)), true},
		{"unit of another group", 2, NewMove(at(5, 3), at(5, 2)), false},
		{"no unit on the origin", 0, NewMove(at(5, 2), at(5, 1)), false},
		{"destination out of reach", 0, NewMove(at(5, 3), at(5, 0)), false},
		{"staying put", 0, NewMove(at(5, 3), at(5, 3)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ValidateMove(b, tt.group, tt.move))
		})
	}
}

func TestGroupMoves(t *testing.T) {
	b := NewBoard()
	place(b, 5, 0, 0, Infantry)
	place(b, 6, 0, 0, Base)

	moves := GroupMoves(b, 0)

	require.Equal(t, []Move{
		NewMove(at(5, 0), at(4, 0)),
		NewMove(at(5, 0), at(5, 1)),
	}, moves)
	require.True(t, HasLegalMove(b, 0))
	require.False(t, HasLegalMove(b, 1))
}
