package engine

import (
	"junqi/experiments/metrics"
	"junqi/game"
)

// Result summarises a finished game.
type Result struct {
	Status game.Status
	Game   metrics.GameMetric
	Moves  []metrics.MoveMetric
}

type Runner interface {
	// Run plays a game till there's a winner, the game stalls or the turn cap is reached
	Run() (Result, error)
}
