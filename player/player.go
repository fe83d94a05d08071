package player

import (
	"junqi/game"
)

// Agent decides on a layout before the game and on moves during it. Agents
// only ever see their own player's view of the round.
type Agent interface {
	Layout(p game.Player) game.PlayerLayout
	FindMove(view *game.Round) (game.Move, bool)
}

// Player represents one side of the board.
type Player struct {
	ID    game.Player
	Agent Agent
}

// NewPlayer creates a new Player instance.
func NewPlayer(id game.Player, agent Agent) *Player {
	return &Player{
		ID:    id,
		Agent: agent,
	}
}

// Layout asks the agent for the player's starting arrangement.
func (p *Player) Layout() game.PlayerLayout {
	layout := p.Agent.Layout(p.ID)
	layout.Player = p.ID
	return layout
}

// TakeTurn hands the agent the player's view of the round. Enemy identities
// that were never revealed stay hidden.
func (p *Player) TakeTurn(r *game.Round) (game.Move, bool) {
	return p.Agent.FindMove(r.View(p.ID))
}
