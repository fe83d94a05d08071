package experiments

import (
	"time"

	"junqi/experiments/metrics"
)

// Throughput aggregates how fast games were played.
type Throughput struct {
	Moves          int
	Elapsed        time.Duration
	MovesPerSecond float64
	MeanGameLength float64
}

func MeasureThroughput(records []metrics.GameRecord) Throughput {
	var t Throughput
	for _, r := range records {
		t.Moves += r.TotalMoves
		t.Elapsed += r.Duration
	}
	if t.Elapsed > 0 {
		t.MovesPerSecond = float64(t.Moves) / t.Elapsed.Seconds()
	}
	if len(records) > 0 {
		t.MeanGameLength = float64(t.Moves) / float64(len(records))
	}
	return t
}
