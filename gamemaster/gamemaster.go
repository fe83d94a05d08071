package gamemaster

import (
	"errors"

	"junqi/game"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNotStarted is returned when a move arrives before Init.
	ErrNotStarted = errors.New("game has not started")
	// ErrGameOver is returned for moves after the game has been decided or stalled.
	ErrGameOver = errors.New("game is over - no moves allowed")
	// ErrStalled is returned when the engine reached a state in which nobody can
	// move although both players are alive. The game is closed without a winner.
	ErrStalled = errors.New("game stalled")
)

// Update is published after every accepted move.
type Update struct {
	Move  game.Move
	Round *game.Round
	Hash  uint64
}

// UpdateGetter returns the next pending update, or false when there is none.
type UpdateGetter func() (Update, bool)

// Engine referees a single game: it holds the ground truth and accepts one
// move at a time.
type Engine interface {
	Init(p1, p2 game.PlayerLayout) (*game.Round, UpdateGetter, error)
	// Play applies a move and publishes its update. It never blocks on unread
	// updates; only the latest updateBuffer of them are kept.
	Play(game.Move) error
	Round() *game.Round
}

// CheckGameOver determines if the game has ended and logs the outcome.
func CheckGameOver(r *game.Round) bool {
	winner, ok := r.Winner()
	if !ok {
		return false
	}
	log.Info().Msgf("%v wins after %d rounds", winner, r.RoundCount())
	return true
}
