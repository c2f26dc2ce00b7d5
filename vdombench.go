// Package vdombench measures how much a virtual-DOM renderer gains when the
// root component type changes between renders, compared with re-rendering
// the same component type with different props.
//
// Two scenarios run against one render target:
//
//   - simple: mount one component type, then render a different type with
//     the same shape. The renderer discards the old tree without diffing.
//   - props: mount a component, then render the same type with a different
//     element factory. The renderer has to walk and patch every node.
//
// Go runs a warm-up loop whose timings are dropped, then a measured loop,
// and reports the mean initial-render and update times of each scenario.
package vdombench

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/benbjohnson/clock"

	"github.com/livefir/vdombench/internal/bench"
	"github.com/livefir/vdombench/internal/components"
	"github.com/livefir/vdombench/internal/config"
	"github.com/livefir/vdombench/internal/metrics"
	"github.com/livefir/vdombench/internal/report"
	"github.com/livefir/vdombench/internal/vdom"
)

type (
	// Result is the measured outcome of one scenario
	Result = bench.Result
	// Config holds the loop sizes and output switches
	Config = config.Config
)

// Options carries everything Go needs. Nil fields get defaults: the default
// config, a fresh vdom.Root observed by Metrics, the wall clock,
// log.Default() and no styled output.
type Options struct {
	Config   *Config
	Renderer bench.Renderer
	Clock    clock.Clock
	Logger   *log.Logger
	Metrics  *metrics.Collector

	// Output receives the styled table when Config.Styled is set
	Output io.Writer
}

// Go runs the whole benchmark once: warm-up, measured rounds, report.
// Any renderer failure aborts the run and nothing is reported. In verbose
// mode the timed updates are also checked to produce the same markup as a
// fresh mount.
func Go(ctx context.Context, opts Options) ([]Result, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	collector := opts.Metrics
	if collector == nil {
		collector = metrics.NewCollector()
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = vdom.NewRoot(vdom.WithObserver(collector.Observe))
	}

	runner := bench.NewRunner(renderer, opts.Clock, cfg.Bench(),
		bench.WithRecorder(collector),
		bench.WithLogger(logger),
	)

	scenarios := components.Scenarios(cfg.Nodes)
	results, err := runner.Run(ctx, scenarios)
	if err != nil {
		return nil, fmt.Errorf("benchmark aborted: %w", err)
	}

	report.Write(logger, results)
	if cfg.Verbose {
		report.WriteMetrics(logger, collector)
		if err := verifyScenarios(scenarios, logger); err != nil {
			return nil, err
		}
	}
	if cfg.Styled && opts.Output != nil {
		if _, err := io.WriteString(opts.Output, report.Table(results, cfg.Nodes)); err != nil {
			return nil, fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return results, nil
}
