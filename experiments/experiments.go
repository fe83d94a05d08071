package experiments

import (
	"fmt"

	"junqi/config"
	"junqi/engine"
	"junqi/experiments/metrics"
	"junqi/game"
	"junqi/player"

	"github.com/rs/zerolog/log"
)

// Summary is the outcome of a batch of self-play games.
type Summary struct {
	Dir       string
	Games     int
	Wins      map[string]int
	Undecided int
	Stalled   int
	Throughput
}

// Run plays cfg.Games games between two random agents and stores the game and
// move records under cfg.OutputDir.
func Run(cfg config.Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	rules := cfg.Rules()

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	agentConfigs := []metrics.AgentConfig{}
	summary := Summary{Wins: make(map[string]int)}

	log.Info().Msgf("starting %d self-play games with %v liveness...", cfg.Games, rules.Liveness)

	for i := 0; i < cfg.Games; i++ {
		config1 := metrics.AgentConfig{ID: 2*i + 1, Kind: "random", Seed: cfg.Seed + uint64(2*i)}
		config2 := metrics.AgentConfig{ID: 2*i + 2, Kind: "random", Seed: cfg.Seed + uint64(2*i+1)}
		agentConfigs = append(agentConfigs, config1, config2)

		log.Debug().Msgf("starting game %d of %d...", i+1, cfg.Games)
		result, err := runGame(config1, config2, rules, cfg.MaxTurns)
		if err != nil {
			return summary, fmt.Errorf("game %d: %w", i+1, err)
		}

		count++
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         count,
			Agent1:     config1.ID,
			Agent2:     config2.ID,
			GameMetric: result.Game,
		})
		for _, mm := range result.Moves {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       count,
				MoveMetric: mm,
			})
		}

		switch {
		case result.Game.Stalled:
			summary.Stalled++
		case result.Game.Winner == "":
			summary.Undecided++
		default:
			summary.Wins[result.Game.Winner]++
		}
		log.Info().Msgf("completed game %d of %d in %d moves with winner: %q", i+1, cfg.Games, result.Game.TotalMoves, result.Game.Winner)
	}
	summary.Games = count
	summary.Throughput = MeasureThroughput(gameRecords)

	writer, err := metrics.NewWriter(cfg.OutputDir)
	if err != nil {
		return summary, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.Dir = writer.Dir()

	if err := writer.WriteAgentConfigs(agentConfigs); err != nil {
		return summary, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return summary, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return summary, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())

	return summary, nil
}

// runGame executes a single game between two agents
func runGame(config1, config2 metrics.AgentConfig, rules game.Rules, maxTurns int) (engine.Result, error) {
	players := [2]*player.Player{
		player.NewPlayer(game.P1, player.NewRandomAgent(config1.Seed)),
		player.NewPlayer(game.P2, player.NewRandomAgent(config2.Seed)),
	}
	e := engine.LocalEngine(players, rules, maxTurns)
	return e.Run()
}
