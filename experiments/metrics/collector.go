package metrics

import (
	"sync/atomic"
	"time"
)

type MoveMetric struct {
	Step       int
	Player     int // Player ID
	Group      int
	Move       string
	LegalMoves int
	Captures   int
	Duration   time.Duration
}

type GameMetric struct {
	StartingPlayer int    // Player ID
	Winner         string // Player name, empty when undecided
	Stalled        bool
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Outcasts       int
}

type Collector interface {
	Start(player, group int)
	SetLegalMoves(n int)
	AddCaptures(n int)
	Complete(step int, move string) MoveMetric
}

type collector struct {
	player     int
	group      int
	startTime  time.Time
	legalMoves atomic.Int32
	captures   atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(player, group int) {
	m.startTime = time.Now()
	m.player = player
	m.group = group
	m.legalMoves.Store(0)
	m.captures.Store(0)
}

func (m *collector) SetLegalMoves(n int) {
	m.legalMoves.Store(int32(n))
}

func (m *collector) AddCaptures(n int) {
	m.captures.Add(int32(n))
}

func (m *collector) Complete(step int, move string) MoveMetric {
	return MoveMetric{
		Step:       step,
		Player:     m.player,
		Group:      m.group,
		Move:       move,
		LegalMoves: int(m.legalMoves.Load()),
		Captures:   int(m.captures.Load()),
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(player, group int) {}
func (m *dummyCollector) SetLegalMoves(n int)     {}
func (m *dummyCollector) AddCaptures(n int)       {}
func (m *dummyCollector) Complete(step int, move string) MoveMetric {
	return MoveMetric{Step: step, Move: move}
}
