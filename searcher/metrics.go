package searcher

import (
	"sync/atomic"
	"time"
)

// SearchMetrics is a snapshot of what one Decide call did, suitable for
// logging or for the batch-experiment CLI's CSV writer.
type SearchMetrics struct {
	StartTime       time.Time
	Duration        time.Duration
	NodesExpanded   int64
	CacheHits       int64
	LethalOverrides int64
}

// Collector observes a single search. It must be safe to share across the
// lifetime of one Engine, but a search is single-threaded, so no locking
// beyond atomics is required.
type Collector interface {
	Start()
	AddNodeExpanded()
	AddCacheHit()
	AddLethalOverride()
	Complete() SearchMetrics
}

type collector struct {
	startTime       time.Time
	nodesExpanded   atomic.Int64
	cacheHits       atomic.Int64
	lethalOverrides atomic.Int64
}

// NewCollector returns a Collector that actually counts.
func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start()             { c.startTime = time.Now() }
func (c *collector) AddNodeExpanded()   { c.nodesExpanded.Add(1) }
func (c *collector) AddCacheHit()       { c.cacheHits.Add(1) }
func (c *collector) AddLethalOverride() { c.lethalOverrides.Add(1) }
func (c *collector) Complete() SearchMetrics {
	return SearchMetrics{
		StartTime:       c.startTime,
		Duration:        time.Since(c.startTime),
		NodesExpanded:   c.nodesExpanded.Load(),
		CacheHits:       c.cacheHits.Load(),
		LethalOverrides: c.lethalOverrides.Load(),
	}
}

type noopCollector struct{}

// NewNoopCollector returns a Collector that discards everything, for
// production use where metrics would be unused overhead.
func NewNoopCollector() Collector {
	return &noopCollector{}
}

func (noopCollector) Start()                  {}
func (noopCollector) AddNodeExpanded()        {}
func (noopCollector) AddCacheHit()            {}
func (noopCollector) AddLethalOverride()      {}
func (noopCollector) Complete() SearchMetrics { return SearchMetrics{} }
