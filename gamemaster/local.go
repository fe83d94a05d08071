package gamemaster

import (
	"fmt"

	"junqi/game"

	"github.com/rs/zerolog/log"
)

// updateBuffer is how many updates are kept unread. Older ones are dropped.
const updateBuffer = 16

type localEngine struct {
	rules    game.Rules
	round    *game.Round
	updateCh chan Update
	gameOver bool
}

func NewLocalEngine(rules game.Rules) *localEngine {
	return &localEngine{rules: rules}
}

func (e *localEngine) Init(p1, p2 game.PlayerLayout) (*game.Round, UpdateGetter, error) {
	r, err := game.NewGameWithRules(e.rules, p1, p2)
	if err != nil {
		return nil, nil, err
	}

	e.round = r
	e.gameOver = false
	e.updateCh = make(chan Update, updateBuffer)
	updates := e.updateCh
	return r, func() (Update, bool) {
		select {
		case u, ok := <-updates:
			if !ok { // Game over
				return Update{}, false
			}
			return u, true
		default:
			// No updates yet
			return Update{}, false
		}
	}, nil
}

func (e *localEngine) Round() *game.Round {
	return e.round
}

func (e *localEngine) Play(move game.Move) (err error) {
	if e.round == nil {
		return ErrNotStarted
	}
	if e.gameOver || e.round.Status() != game.Ongoing {
		return ErrGameOver
	}

	defer func() {
		if rec := recover(); rec != nil {
			v, ok := game.AsInvariantViolation(rec)
			if !ok {
				panic(rec)
			}
			log.Warn().Msgf("closing game after round %d: %v", e.round.RoundCount(), v)
			e.finish()
			err = fmt.Errorf("%w: %v", ErrStalled, v)
		}
	}()

	next, err := e.round.Proceed(move)
	if err != nil {
		return err
	}
	e.round = next
	e.publish(Update{Move: move, Round: next, Hash: next.Hash()})

	if CheckGameOver(next) {
		e.finish()
	}
	return nil
}

// publish never blocks: when the buffer is full the oldest update goes.
func (e *localEngine) publish(u Update) {
	for {
		select {
		case e.updateCh <- u:
			return
		default:
		}
		select {
		case <-e.updateCh:
		default:
		}
	}
}

func (e *localEngine) finish() {
	e.gameOver = true
	close(e.updateCh)
}
