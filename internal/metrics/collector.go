package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/livefir/vdombench/internal/vdom"
)

// Collector counts renderer events and scenario runs with no external dependencies
type Collector struct {
	renderMetrics    *RenderMetrics
	scenarioCounters map[string]*int64
	mu               sync.RWMutex
	startTime        time.Time
}

// RenderMetrics tracks what the renderer did during a benchmark invocation
type RenderMetrics struct {
	// Renderer operations
	Mounts       int64 `json:"mounts"`
	Replacements int64 `json:"replacements"`
	Updates      int64 `json:"updates"`
	Unmounts     int64 `json:"unmounts"`

	// Host node churn
	NodesCreated  int64 `json:"nodes_created"`
	NodesRemoved  int64 `json:"nodes_removed"`
	NodesReplaced int64 `json:"nodes_replaced"`
	LargestBuild  int64 `json:"largest_build"`

	// Scenario runs
	WarmupRuns   int64 `json:"warmup_runs"`
	MeasuredRuns int64 `json:"measured_runs"`

	// Uptime
	StartTime time.Time     `json:"start_time"`
	Uptime    time.Duration `json:"uptime"`
}

// NewCollector creates a new metrics collector
func NewCollector() *Collector {
	return &Collector{
		renderMetrics: &RenderMetrics{
			StartTime: time.Now(),
		},
		scenarioCounters: make(map[string]*int64),
		startTime:        time.Now(),
	}
}

// Observe records a renderer event. It has the signature of vdom.Observer.
func (c *Collector) Observe(ev vdom.Event) {
	m := c.renderMetrics
	switch ev.Kind {
	case vdom.EventMount:
		atomic.AddInt64(&m.Mounts, 1)
	case vdom.EventReplace:
		atomic.AddInt64(&m.Replacements, 1)
	case vdom.EventUpdate:
		atomic.AddInt64(&m.Updates, 1)
	case vdom.EventUnmount:
		atomic.AddInt64(&m.Unmounts, 1)
	}

	atomic.AddInt64(&m.NodesReplaced, int64(ev.Replaced))
	atomic.AddInt64(&m.NodesRemoved, int64(ev.Removed))
	if ev.Created == 0 {
		return
	}
	atomic.AddInt64(&m.NodesCreated, int64(ev.Created))

	// Track the largest single build
	created := int64(ev.Created)
	for {
		max := atomic.LoadInt64(&m.LargestBuild)
		if created <= max {
			break
		}
		if atomic.CompareAndSwapInt64(&m.LargestBuild, max, created) {
			break
		}
	}
}

// RecordScenario records a completed scenario run
func (c *Collector) RecordScenario(name string, measured bool) {
	if measured {
		atomic.AddInt64(&c.renderMetrics.MeasuredRuns, 1)
	} else {
		atomic.AddInt64(&c.renderMetrics.WarmupRuns, 1)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if counter, exists := c.scenarioCounters[name]; exists {
		atomic.AddInt64(counter, 1)
	} else {
		var newCounter int64 = 1
		c.scenarioCounters[name] = &newCounter
	}
}

// GetMetrics returns current render metrics
func (c *Collector) GetMetrics() RenderMetrics {
	m := c.renderMetrics
	return RenderMetrics{
		Mounts:        atomic.LoadInt64(&m.Mounts),
		Replacements:  atomic.LoadInt64(&m.Replacements),
		Updates:       atomic.LoadInt64(&m.Updates),
		Unmounts:      atomic.LoadInt64(&m.Unmounts),
		NodesCreated:  atomic.LoadInt64(&m.NodesCreated),
		NodesRemoved:  atomic.LoadInt64(&m.NodesRemoved),
		NodesReplaced: atomic.LoadInt64(&m.NodesReplaced),
		LargestBuild:  atomic.LoadInt64(&m.LargestBuild),
		WarmupRuns:    atomic.LoadInt64(&m.WarmupRuns),
		MeasuredRuns:  atomic.LoadInt64(&m.MeasuredRuns),
		StartTime:     m.StartTime,
		Uptime:        time.Since(c.startTime),
	}
}

// GetScenarioCounters returns the number of runs per scenario
func (c *Collector) GetScenarioCounters() map[string]int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make(map[string]int64)
	for name, counter := range c.scenarioCounters {
		result[name] = atomic.LoadInt64(counter)
	}
	return result
}

// GetFreshBuildRate returns the percentage of Render calls that built a new
// tree instead of reconciling the mounted one
func (c *Collector) GetFreshBuildRate() float64 {
	mounts := atomic.LoadInt64(&c.renderMetrics.Mounts)
	replacements := atomic.LoadInt64(&c.renderMetrics.Replacements)
	updates := atomic.LoadInt64(&c.renderMetrics.Updates)

	total := mounts + replacements + updates
	if total == 0 {
		return 0.0
	}

	return float64(mounts+replacements) / float64(total) * 100.0
}
