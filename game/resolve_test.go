package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Run("relocation narrows the mover to mobile identities", func(t *testing.T) {
		b := NewBoard()
		place(b, 5, 3, 0, Infantry)

		next := Resolve(b, NewMove(at(5, 3), at(5, 2)))

		require.Nil(t, next.At(at(5, 3)))
		moved := next.At(at(5, 2))
		require.NotNil(t, moved)
		require.Equal(t, mobileIdentities, moved.Belief)
		require.False(t, moved.Revealed)
		require.NotNil(t, b.At(at(5, 3)), "Input board should be left untouched")
		require.Nil(t, b.At(at(5, 2)))
	})

	t.Run("Infantry clearing a Mine identifies itself", func(t *testing.T) {
		b := NewBoard()
		place(b, 5, 3, 0, Infantry)
		place(b, 5, 4, 1, Mine)

		next := Resolve(b, NewMove(at(5, 3), at(5, 4)))

		winner := next.At(at(5, 4))
		require.Equal(t, Infantry, winner.Identity)
		require.Equal(t, NewIdentitySet(Infantry), winner.Belief)
		require.True(t, winner.Revealed)
		require.Len(t, next.Outcasts(), 1)
		mine := next.Outcasts()[0]
		require.Equal(t, Mine, mine.Identity)
		require.Equal(t, NewIdentitySet(Base, Artillery, Scout, Mine), mine.Belief)
	})

	t.Run("capturing a Base removes its whole group", func(t *testing.T) {
		b := NewBoard()
		place(b, 4, 2, 0, Artillery)
		place(b, 4, 6, 1, Base)
		place(b, 0, 4, 1, Mine)
		place(b, 1, 5, 1, Infantry)
		place(b, 9, 5, 3, Infantry)

		next := Resolve(b, NewMove(at(4, 2), at(4, 6)))

		require.Equal(t, Artillery, next.At(at(4, 6)).Identity)
		require.False(t, next.Present(1))
		require.True(t, next.Present(3))
		require.Len(t, next.Outcasts(), 3)
		require.Equal(t, Base, next.Outcasts()[0].Identity, "Base is captured before the sweep")
		require.Equal(t, NewIdentitySet(Artillery, Scout, Infantry, Armored, Tank), next.At(at(4, 6)).Belief)
	})

	t.Run("two Bombs destroy each other", func(t *testing.T) {
		b := NewBoard()
		place(b, 5, 3, 0, Bomb)
		place(b, 5, 4, 1, Bomb)

		next := Resolve(b, NewMove(at(5, 3), at(5, 4)))

		require.Zero(t, next.Len())
		require.Len(t, next.Outcasts(), 2)
		require.Equal(t, Group(0), next.Outcasts()[0].Group, "Attacker is removed first")
		require.Equal(t, Group(1), next.Outcasts()[1].Group)
	})

	t.Run("losing attacker leaves the defender in place", func(t *testing.T) {
		b := NewBoard()
		place(b, 5, 3, 0, Artillery)
		place(b, 5, 4, 1, Mine)

		next := Resolve(b, NewMove(at(5, 3), at(5, 4)))

		require.Equal(t, Mine, next.At(at(5, 4)).Identity)
		require.Equal(t, NewIdentitySet(Artillery, Scout, Armored, Tank), next.Outcasts()[0].Belief)
		require.Equal(t, NewIdentitySet(Mine), next.At(at(5, 4)).Belief)
	})

	t.Run("Scout identifies what defeats it", func(t *testing.T) {
		b := NewBoard()
		place(b, 5, 3, 0, Scout)
		place(b, 5, 4, 1, Armored)

		next := Resolve(b, NewMove(at(5, 3), at(5, 4)))

		defender := next.At(at(5, 4))
		require.True(t, defender.Revealed)
		require.Equal(t, NewIdentitySet(Armored), defender.Belief)
	})

	t.Run("Scout using the free rail travel is revealed", func(t *testing.T) {
		b := NewBoard()
		place(b, 5, 1, 0, Scout)

		next := Resolve(b, NewMove(at(5, 1), at(9, 5)))

		require.True(t, next.At(at(9, 5)).Revealed)
		require.Equal(t, NewIdentitySet(Scout), next.At(at(9, 5)).Belief)
	})

	t.Run("Scout moving like any other unit stays hidden", func(t *testing.T) {
		b := NewBoard()
		place(b, 5, 1, 0, Scout)

		next := Resolve(b, NewMove(at(5, 1), at(4, 1)))

		require.False(t, next.At(at(4, 1)).Revealed)
		require.Equal(t, mobileIdentities, next.At(at(4, 1)).Belief)
	})

	t.Run("Tank failing an attack exposes its Base", func(t *testing.T) {
		b := NewBoard()
		place(b, 5, 3, 0, Tank)
		base := place(b, 5, 0, 0, Base)
		place(b, 5, 4, 1, Mine)

		next := Resolve(b, NewMove(at(5, 3), at(5, 4)))

		require.False(t, base.Revealed, "Input board should be left untouched")
		require.True(t, next.At(at(5, 0)).Revealed)
		require.Equal(t, NewIdentitySet(Base), next.At(at(5, 0)).Belief)
		require.True(t, next.Outcasts()[0].Revealed)
	})

	t.Run("missing attacker is an invariant violation", func(t *testing.T) {
		require.Panics(t, func() { Resolve(NewBoard(), NewMove(at(5, 3), at(5, 4))) })
	})
}
