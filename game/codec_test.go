package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerializeRound(t *testing.T) {
	t.Run("wire form of a fresh game", func(t *testing.T) {
		s, err := Serialize(sampleGame(t))

		require.NoError(t, err)
		require.True(t, strings.HasPrefix(s, "[0,[[[[0,4],[7,1,false,255]],"), s)
		require.True(t, strings.HasSuffix(s, "],[]],null,0,0]"), s)
	})

	t.Run("round trip of a fresh game", func(t *testing.T) {
		r := sampleGame(t)
		s, err := Serialize(r)
		require.NoError(t, err)

		decoded, err := Deserialize(s)

		require.NoError(t, err)
		require.True(t, r.Board().Equal(decoded.Board()))
		require.Equal(t, r.Hash(), decoded.Hash())
		again, err := Serialize(decoded)
		require.NoError(t, err)
		require.Equal(t, s, again)
	})

	t.Run("round trip after combat", func(t *testing.T) {
		b := NewBoard()
		place(b, 5, 3, 0, Infantry)
		place(b, 5, 4, 1, Mine)
		place(b, 9, 5, 3, Scout)
		r, err := roundOf(b, 0).Proceed(NewMove(at(5, 3), at(5, 4)))
		require.NoError(t, err)
		s, err := Serialize(r)
		require.NoError(t, err)

		decoded, err := Deserialize(s)

		require.NoError(t, err)
		require.Equal(t, 1, decoded.RoundCount())
		require.Equal(t, Group(3), decoded.GroupToMove())
		last, ok := decoded.LastMove()
		require.True(t, ok)
		require.Equal(t, NewMove(at(5, 3), at(5, 4)), last)
		require.True(t, r.Board().Equal(decoded.Board()))
		require.Len(t, decoded.Board().Outcasts(), 1)
	})

	t.Run("round trip keeps the liveness rule", func(t *testing.T) {
		r, err := NewGameWithRules(Rules{Liveness: LivenessMobility},
			PlayerLayout{Player: P1, Layouts: [2]GroupLayout{sampleLayout, sampleLayout}},
			PlayerLayout{Player: P2, Layouts: [2]GroupLayout{sampleLayout, sampleLayout}},
		)
		require.NoError(t, err)
		s, err := Serialize(r)
		require.NoError(t, err)
		require.True(t, strings.HasSuffix(s, "],[]],null,0,0,1]"), s)

		decoded, err := Deserialize(s)

		require.NoError(t, err)
		require.Equal(t, LivenessMobility, decoded.Rules().Liveness)
		require.Equal(t, r.Hash(), decoded.Hash())
	})

	t.Run("short form defaults the turn and recomputes the status", func(t *testing.T) {
		s, err := Serialize(sampleGame(t))
		require.NoError(t, err)
		short := strings.TrimSuffix(s, ",0,0]") + "]"

		decoded, err := Deserialize(short)

		require.NoError(t, err)
		require.Equal(t, Group(0), decoded.GroupToMove())
		require.Equal(t, Ongoing, decoded.Status())
		require.Equal(t, 0, decoded.RoundCount())
	})

	t.Run("short form of a finished game", func(t *testing.T) {
		decoded, err := Deserialize(`[7,[[[[4,6],[3,0,true,4]]],[]],[[4,2],[4,6]]]`)

		require.NoError(t, err)
		require.Equal(t, WonByPlayer1, decoded.Status())
	})
}

func TestDeserializeMalformed(t *testing.T) {
	tooMany := `[0,[[],[` + strings.Repeat(`[5,0,false,16],`, UnitsPerGroup) + `[5,0,false,16]]],null]`
	tests := []struct {
		name    string
		payload string
	}{
		{"not json", `round`},
		{"not an array", `{"count":0}`},
		{"too few elements", `[0,[[],[]]]`},
		{"too many elements", `[0,[[],[]],null,0,0,0,0]`},
		{"liveness out of range", `[0,[[],[]],null,0,0,9]`},
		{"negative round count", `[-1,[[],[]],null]`},
		{"group out of range", `[0,[[],[]],null,4,0]`},
		{"status out of range", `[0,[[],[]],null,0,3]`},
		{"coordinate off the board", `[0,[[[[3,3],[5,0,false,16]]],[]],null]`},
		{"duplicate cell", `[0,[[[[5,3],[5,0,false,16]],[[5,3],[5,1,false,16]]],[]],null]`},
		{"revealed unit with an open belief", `[0,[[[[5,3],[5,0,true,48]]],[]],null]`},
		{"belief excluding the identity", `[0,[[[[5,3],[5,0,false,32]]],[]],null]`},
		{"identity out of range", `[0,[[[[5,3],[9,0,false,16]]],[]],null]`},
		{"bitfield out of range", `[0,[[[[5,3],[5,0,false,256]]],[]],null]`},
		{"unit group out of range", `[0,[[[[5,3],[5,4,false,16]]],[]],null]`},
		{"short unit", `[0,[[[[5,3],[5,0,false]]],[]],null]`},
		{"null outcast", `[0,[[],[null]],null]`},
		{"group larger than an army", tooMany},
		{"withheld identity", `[0,[[[[5,3],[0,0,false,16]]],[]],null]`},
		{"malformed last move", `[1,[[],[]],[[5,3]]]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Deserialize(tt.payload)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestRoundView(t *testing.T) {
	r := sampleGame(t)
	r.Board().At(at(5, 3)).Reveal()

	v := r.View(P2)

	require.Equal(t, Unknown, v.Board().At(at(4, 0)).Identity, "Enemy identities are withheld")
	require.Equal(t, AllowedAt(8), v.Board().At(at(4, 0)).Belief, "Beliefs stay visible")
	require.Equal(t, Scout, v.Board().At(at(5, 3)).Identity, "Revealed units are shown")
	require.Equal(t, Tank, v.Board().At(at(0, 4)).Identity, "Own units are shown")
	require.Equal(t, Base, r.Board().At(at(4, 0)).Identity, "Ground truth is untouched")

	s, err := Serialize(v)
	require.NoError(t, err)
	decoded, err := DeserializeView(s)
	require.NoError(t, err)
	require.True(t, v.Board().Equal(decoded.Board()))
	_, err = Deserialize(s)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestMoveCodec(t *testing.T) {
	m := NewMove(at(5, 3), at(5, 4))

	s, err := EncodeMove(m)
	require.NoError(t, err)
	require.Equal(t, "[[5,3],[5,4]]", s)

	decoded, err := DecodeMove(s)
	require.NoError(t, err)
	require.Equal(t, m, decoded)

	for _, bad := range []string{`x`, `[[5,3]]`, `[[5,3],[0,0]]`, `[[5,3],[5,4,1]]`, `[[5,3],[5,4],[5,5]]`} {
		_, err := DecodeMove(bad)
		require.ErrorIs(t, err, ErrMalformed, bad)
	}
}

func TestPlayerLayoutCodec(t *testing.T) {
	pl := PlayerLayout{Player: P1, Layouts: [2]GroupLayout{sampleLayout, sampleLayout}}

	s, err := EncodePlayerLayout(pl)
	require.NoError(t, err)
	require.Equal(t, "[1,[[3,4,5,2,5,5,8,8,1,6,7],[3,4,5,2,5,5,8,8,1,6,7]]]", s)

	decoded, err := DecodePlayerLayout(s)
	require.NoError(t, err)
	require.Equal(t, pl, decoded)

	for _, bad := range []string{
		`[3,[[3,4,5,2,5,5,8,8,1,6,7],[3,4,5,2,5,5,8,8,1,6,7]]]`,
		`[1,[[3,4,5,2,5,5,8,8,1,6,7]]]`,
		`[1,[[3,4,5,2,5,5,8,8,1,6],[3,4,5,2,5,5,8,8,1,6,7]]]`,
		`[1,[[0,4,5,2,5,5,8,8,1,6,7],[3,4,5,2,5,5,8,8,1,6,7]]]`,
	} {
		_, err := DecodePlayerLayout(bad)
		require.ErrorIs(t, err, ErrMalformed, bad)
	}
}
