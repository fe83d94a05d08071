package engine

import (
	"errors"
	"fmt"
	"time"

	"junqi/experiments/metrics"
	"junqi/game"
	"junqi/gamemaster"
	"junqi/player"

	"github.com/rs/zerolog/log"
)

var _ Runner = (*Engine)(nil)

type Engine struct {
	Players   [2]*player.Player
	Rules     game.Rules
	MaxTurns  int
	Collector func() metrics.Collector
}

// LocalEngine seats two players against each other in process.
func LocalEngine(players [2]*player.Player, rules game.Rules, maxTurns int) *Engine {
	if players[0] == nil || players[1] == nil {
		panic("need two players")
	}
	if players[0].ID != game.P1 || players[1].ID != game.P2 {
		panic("players must be seated in turn order")
	}
	return &Engine{
		Players:   players,
		Rules:     rules,
		MaxTurns:  maxTurns,
		Collector: metrics.NewCollector,
	}
}

// Run executes the entire game loop until a winner is found.
func (e *Engine) Run() (Result, error) {
	gm := gamemaster.NewLocalEngine(e.Rules)
	round, getUpdate, err := gm.Init(e.Players[0].Layout(), e.Players[1].Layout())
	if err != nil {
		return Result{}, fmt.Errorf("failed to set out the armies: %w", err)
	}

	gameMetric := metrics.GameMetric{
		StartingPlayer: int(round.GroupToMove().Owner()),
		StartTime:      time.Now(),
	}
	log.Debug().Msgf("%v is starting", round.GroupToMove().Owner())

	var moveMetrics []metrics.MoveMetric
	for turn := 1; round.Status() == game.Ongoing && turn <= e.MaxTurns; turn++ {
		group := round.GroupToMove()
		p := e.Players[group.Owner()-1]

		collector := e.Collector()
		collector.Start(int(p.ID), int(group))
		collector.SetLegalMoves(len(round.LegalMoves()))

		move, ok := p.TakeTurn(round)
		if !ok {
			return Result{}, fmt.Errorf("%v found no move for group %d in round %d", p.ID, group, round.RoundCount())
		}
		log.Trace().Msgf("round %d: group %d plays %v", round.RoundCount(), group, move)

		captured := len(round.Board().Outcasts())
		if err := gm.Play(move); err != nil {
			if errors.Is(err, gamemaster.ErrStalled) {
				log.Warn().Err(err).Msgf("game stalled in round %d", round.RoundCount())
				gameMetric.Stalled = true
				break
			}
			return Result{}, fmt.Errorf("%v played %v: %w", p.ID, move, err)
		}

		u, ok := getUpdate()
		if !ok {
			return Result{}, fmt.Errorf("no update after %v", move)
		}
		round = u.Round
		collector.AddCaptures(len(round.Board().Outcasts()) - captured)
		moveMetrics = append(moveMetrics, collector.Complete(turn, move.String()))
	}

	if winner, ok := round.Winner(); ok {
		gameMetric.Winner = winner.String()
	} else if !gameMetric.Stalled {
		log.Debug().Msgf("stopped after %d turns without a winner", e.MaxTurns)
	}
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	gameMetric.Outcasts = len(round.Board().Outcasts())

	return Result{
		Status: round.Status(),
		Game:   gameMetric,
		Moves:  moveMetrics,
	}, nil
}
