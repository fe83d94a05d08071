package player

import (
	"junqi/game"

	"golang.org/x/exp/rand"
)

// RandomAgent draws its layout from the layout universe and plays a uniformly
// random legal move.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Layout(p game.Player) game.PlayerLayout {
	return game.RandomPlayerLayout(p, a.rng)
}

func (a *RandomAgent) FindMove(view *game.Round) (game.Move, bool) {
	moves := view.LegalMoves()
	if len(moves) == 0 {
		return game.Move{}, false
	}
	return moves[a.rng.Intn(len(moves))], true
}

// ScriptedAgent replays a fixed layout and move list, in order.
type ScriptedAgent struct {
	Layouts [2]game.GroupLayout
	Moves   []game.Move
	next    int
}

func (a *ScriptedAgent) Layout(p game.Player) game.PlayerLayout {
	return game.PlayerLayout{Player: p, Layouts: a.Layouts}
}

func (a *ScriptedAgent) FindMove(*game.Round) (game.Move, bool) {
	if a.next >= len(a.Moves) {
		return game.Move{}, false
	}
	m := a.Moves[a.next]
	a.next++
	return m, true
}
