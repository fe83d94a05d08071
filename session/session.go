package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"junqi/game"
	"junqi/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	ErrNoMatch     = errors.New("no such match")
	ErrNoRound     = errors.New("no such round")
	ErrStaleRound  = errors.New("stale round")
	ErrNotYourTurn = errors.New("not your turn")
	ErrGameOver    = errors.New("game is over")
	ErrLayoutPhase = errors.New("layouts can only be edited before the first move")
	// ErrInvariant is returned once the engine has hit a state that should be
	// impossible. The match accepts no further moves.
	ErrInvariant = errors.New("engine invariant violated")
)

// Match serializes every change to one game. Rounds are handed out as
// snapshots and never change after they have been published.
type Match struct {
	ID      uuid.UUID
	Created time.Time

	mutex   sync.RWMutex
	history []*game.Round
	broken  error
	logger  zerolog.Logger
}

// NewMatch starts a game from both players' layouts.
func NewMatch(rules game.Rules, p1, p2 game.PlayerLayout) (*Match, error) {
	r, err := game.NewGameWithRules(rules, p1, p2)
	if err != nil {
		return nil, err
	}
	return newMatch(r), nil
}

func newMatch(r *game.Round) *Match {
	id := uuid.New()
	return &Match{
		ID:      id,
		Created: time.Now(),
		history: []*game.Round{r},
		logger:  log.With().Str("match", id.String()).Logger(),
	}
}

// Current returns the latest round.
func (m *Match) Current() *game.Round {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.current()
}

func (m *Match) current() *game.Round {
	r, _ := utils.Last(m.history)
	return r
}

// View returns the latest round as the player may see it.
func (m *Match) View(player game.Player) *game.Round {
	return m.Current().View(player)
}

// Submit plays a move for player. roundCount is the round the player based
// the move on; a move computed against an older round is rejected.
func (m *Match) Submit(player game.Player, roundCount int, move game.Move) (next *game.Round, err error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.broken != nil {
		return nil, m.broken
	}
	cur := m.current()
	if cur.Status() != game.Ongoing {
		return nil, ErrGameOver
	}
	if roundCount != cur.RoundCount() {
		return nil, fmt.Errorf("%w: submitted for round %d, match is at round %d", ErrStaleRound, roundCount, cur.RoundCount())
	}
	if owner := cur.GroupToMove().Owner(); owner != player {
		return nil, fmt.Errorf("%w: group %d of %v is to move", ErrNotYourTurn, cur.GroupToMove(), owner)
	}

	defer func() {
		if rec := recover(); rec != nil {
			v, ok := game.AsInvariantViolation(rec)
			if !ok {
				panic(rec)
			}
			m.broken = fmt.Errorf("%w: %s", ErrInvariant, v.Reason)
			m.logger.Error().Err(m.broken).Msg("match closed")
			next, err = nil, m.broken
		}
	}()

	next, err = cur.Proceed(move)
	if err != nil {
		return nil, err
	}
	m.history = append(m.history, next)
	if winner, ok := next.Winner(); ok {
		m.logger.Info().Msgf("%v wins in round %d", winner, next.RoundCount())
	}
	return next, nil
}

// SwapEdit exchanges two of the player's units while no move has been played.
// It reports false when the edit would break the layout.
func (m *Match) SwapEdit(player game.Player, move game.Move) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if len(m.history) != 1 || m.current().RoundCount() != 0 {
		return false, ErrLayoutPhase
	}
	cur := m.current()
	for _, c := range []game.Coordinate{move.From, move.To} {
		if u := cur.Board().At(c); u == nil || u.Owner() != player {
			return false, nil
		}
	}
	// Published rounds stay untouched; the edit goes to a copy.
	edited := cur.WithRules(cur.Rules())
	if !edited.SwapEdit(move) {
		return false, nil
	}
	m.history[0] = edited
	return true, nil
}

// Layout returns the player's current arrangement.
func (m *Match) Layout(player game.Player) (game.PlayerLayout, bool) {
	return m.Current().Layout(player)
}

// History returns every round of the match, oldest first.
func (m *Match) History() []*game.Round {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	history := make([]*game.Round, len(m.history))
	copy(history, m.history)
	return history
}

// Replay returns the i-th round of the match.
func (m *Match) Replay(i int) (*game.Round, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if i < 0 || i >= len(m.history) {
		return nil, fmt.Errorf("%w: %d of %d", ErrNoRound, i, len(m.history))
	}
	return m.history[i], nil
}

// Err returns the error that closed the match, if any.
func (m *Match) Err() error {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.broken
}
