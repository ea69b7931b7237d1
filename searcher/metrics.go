package searcher

import (
	"sync/atomic"
	"time"
)

type MoveMetrics struct {
	Strategy     string
	StartTime    time.Time
	Duration     time.Duration
	Depth        int64 // Deepest completed depth (minimax plies, MaxN turns)
	Nodes        int64
	Episodes     int64
	FullPlayouts int64
	TimedOut     bool // Deadline cut the search short
}

type MetricsCollector interface {
	Start(strategy string)
	AddNode()
	AddEpisode()
	AddFullPlayout()
	SetDepth(depth int)
	SetTimedOut()
	Complete() MoveMetrics
}

type metricsCollector struct {
	strategy     string
	startTime    time.Time
	depth        atomic.Int64
	nodes        atomic.Int64
	episodes     atomic.Int64
	fullPlayouts atomic.Int64
	timedOut     atomic.Bool
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start(strategy string) {
	m.strategy = strategy
	m.startTime = time.Now()
	m.depth.Store(0)
	m.nodes.Store(0)
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
	m.timedOut.Store(false)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *metricsCollector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *metricsCollector) SetDepth(depth int) {
	m.depth.Store(int64(depth))
}

func (m *metricsCollector) SetTimedOut() {
	m.timedOut.Store(true)
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		Strategy:     m.strategy,
		StartTime:    m.startTime,
		Duration:     time.Since(m.startTime),
		Depth:        m.depth.Load(),
		Nodes:        m.nodes.Load(),
		Episodes:     m.episodes.Load(),
		FullPlayouts: m.fullPlayouts.Load(),
		TimedOut:     m.timedOut.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start(string)          {}
func (m *noMetricsCollector) AddNode()              {}
func (m *noMetricsCollector) AddEpisode()           {}
func (m *noMetricsCollector) AddFullPlayout()       {}
func (m *noMetricsCollector) SetDepth(int)          {}
func (m *noMetricsCollector) SetTimedOut()          {}
func (m *noMetricsCollector) Complete() MoveMetrics { return MoveMetrics{} }
