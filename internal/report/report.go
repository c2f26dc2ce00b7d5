// Package report writes benchmark results to a log sink and renders a
// styled summary table.
package report

import (
	"log"
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/livefir/vdombench/internal/bench"
	"github.com/livefir/vdombench/internal/components"
	"github.com/livefir/vdombench/internal/metrics"
)

var printer = message.NewPrinter(language.English)

// Write logs one line per result:
//
//	simple times (initial render / update): [12.345 4.321]
//
// Values are mean milliseconds.
func Write(logger *log.Logger, results []bench.Result) {
	for _, r := range results {
		initial, update := r.Mean.Milliseconds()
		logger.Printf("%s times (initial render / update): [%.3f %.3f]", r.Scenario, initial, update)
	}
	if ratio, ok := Speedup(results); ok {
		logger.Printf("type change update speedup: %.2fx", ratio)
	}
}

// Speedup returns how many times faster the simple scenario's update was
// than the props scenario's. It reports false when either result is missing
// or the simple update took no measurable time.
func Speedup(results []bench.Result) (float64, bool) {
	simple, ok := find(results, components.ScenarioSimple)
	if !ok || simple.Mean.Update <= 0 {
		return 0, false
	}
	props, ok := find(results, components.ScenarioProps)
	if !ok {
		return 0, false
	}
	return float64(props.Mean.Update) / float64(simple.Mean.Update), true
}

func find(results []bench.Result, scenario string) (bench.Result, bool) {
	for _, r := range results {
		if r.Scenario == scenario {
			return r, true
		}
	}
	return bench.Result{}, false
}

// WriteMetrics logs the renderer counters and the runs per scenario
func WriteMetrics(logger *log.Logger, c *metrics.Collector) {
	m := c.GetMetrics()
	logger.Print(printer.Sprintf("renders: %d mounts, %d replacements, %d updates, %d unmounts (%.1f%% fresh builds)",
		m.Mounts, m.Replacements, m.Updates, m.Unmounts, c.GetFreshBuildRate()))
	logger.Print(printer.Sprintf("nodes: %d created, %d removed, %d replaced in place, largest build %d",
		m.NodesCreated, m.NodesRemoved, m.NodesReplaced, m.LargestBuild))
	logger.Print(printer.Sprintf("scenario runs: %d warm-up, %d measured", m.WarmupRuns, m.MeasuredRuns))

	counters := c.GetScenarioCounters()
	names := make([]string, 0, len(counters))
	for name := range counters {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		logger.Print(printer.Sprintf("  %s: %d runs", name, counters[name]))
	}
}
