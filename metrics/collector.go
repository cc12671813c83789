package metrics

import (
	"sync/atomic"
	"time"
)

// Outcome of a single rollout from the searching player's perspective.
type Outcome int

const (
	Draw Outcome = iota
	Win
	Loss
)

type SearchMetric struct {
	Goroutines int
	Rounds     int
	Duration   time.Duration
	Rollouts   int
	Wins       int
	Losses     int
	Draws      int
}

type Collector interface {
	Start(goroutines, rounds int)
	AddRollout(outcome Outcome)
	Complete() SearchMetric
}

type collector struct {
	goroutines int
	rounds     int
	startTime  time.Time
	rollouts   atomic.Int64
	wins       atomic.Int64
	losses     atomic.Int64
	draws      atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets the counters for a new search.
func (m *collector) Start(goroutines, rounds int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.rounds = rounds
	m.rollouts.Store(0)
	m.wins.Store(0)
	m.losses.Store(0)
	m.draws.Store(0)
}

func (m *collector) AddRollout(outcome Outcome) {
	m.rollouts.Add(1)
	switch outcome {
	case Win:
		m.wins.Add(1)
	case Loss:
		m.losses.Add(1)
	default:
		m.draws.Add(1)
	}
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines: m.goroutines,
		Rounds:     m.rounds,
		Duration:   time.Since(m.startTime),
		Rollouts:   int(m.rollouts.Load()),
		Wins:       int(m.wins.Load()),
		Losses:     int(m.losses.Load()),
		Draws:      int(m.draws.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, rounds int) {}
func (m *dummyCollector) AddRollout(outcome Outcome)   {}
func (m *dummyCollector) Complete() SearchMetric       { return SearchMetric{} }
