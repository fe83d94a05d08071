package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// playout plays random legal moves from a random pair of layouts and calls
// visit on every round reached. A stall under presence liveness ends it.
func playout(t *testing.T, rules Rules, seed uint64, maxTurns int, visit func(*Round)) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	r, err := NewGameWithRules(rules, RandomPlayerLayout(P1, rng), RandomPlayerLayout(P2, rng))
	require.NoError(t, err)

	for turn := 0; turn < maxTurns && r.Status() == Ongoing; turn++ {
		visit(r)
		moves := r.LegalMoves()
		require.NotEmpty(t, moves, "round %d", r.RoundCount())
		next, stalled := proceedOrStall(t, r, moves[rng.Intn(len(moves))])
		if stalled {
			require.Equal(t, LivenessPresence, rules.Liveness, "Only presence liveness can stall")
			return
		}
		r = next
	}
	visit(r)
}

func proceedOrStall(t *testing.T, r *Round, m Move) (next *Round, stalled bool) {
	defer func() {
		if rec := recover(); rec != nil {
			_, ok := AsInvariantViolation(rec)
			require.True(t, ok, "unexpected panic: %v", rec)
			next, stalled = nil, true
		}
	}()
	next, err := r.Proceed(m)
	require.NoError(t, err)
	return next, false
}

func checkPosition(t *testing.T, r *Round) {
	t.Helper()
	b := r.Board()
	var units [GroupCount]int

	checkBelief := func(u *Unit) {
		require.True(t, u.Belief.Contains(u.Identity), "belief %v of %s", u.Belief, u.Identity)
		if u.Revealed {
			require.Equal(t, 1, u.Belief.Len(), "revealed %s with belief %v", u.Identity, u.Belief)
		}
	}

	for _, c := range b.Coordinates() {
		u := b.At(c)
		units[u.Group]++
		checkBelief(u)
		for _, d := range LegalDestinations(b, c).Sorted() {
			require.NotEqual(t, c, d, "round %d", r.RoundCount())
			if other := b.At(d); other != nil {
				require.NotEqual(t, u.Group, other.Group, "%v may reach its own group on %v", c, d)
			}
		}
	}
	for _, u := range b.Outcasts() {
		units[u.Group]++
		checkBelief(u)
	}
	for g, n := range units {
		require.Equal(t, UnitsPerGroup, n, "group %d in round %d", g, r.RoundCount())
	}

	for _, p := range []Player{P1, P2} {
		view := b.View(p)
		for _, c := range view.Coordinates() {
			u := view.At(c)
			if u.Owner() != p && u.Identity != Unknown {
				require.True(t, u.Revealed, "%v sees the hidden unit on %v", p, c)
			}
		}
	}
}

func TestRandomPlayoutsKeepInvariants(t *testing.T) {
	tests := []struct {
		name  string
		rules Rules
	}{
		{"presence liveness", StandardRules()},
		{"mobility liveness", Rules{Liveness: LivenessMobility}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(1); seed <= 20; seed++ {
				playout(t, tt.rules, seed, 400, func(r *Round) {
					checkPosition(t, r)
				})
			}
		})
	}
}

func TestRandomPlayoutsRoundTrip(t *testing.T) {
	playout(t, Rules{Liveness: LivenessMobility}, 99, 200, func(r *Round) {
		s, err := Serialize(r)
		require.NoError(t, err)
		decoded, err := Deserialize(s)
		require.NoError(t, err)
		require.Equal(t, r.Hash(), decoded.Hash())
		require.Equal(t, r.Rules(), decoded.Rules())
	})
}
