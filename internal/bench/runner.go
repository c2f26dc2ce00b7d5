package bench

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/benbjohnson/clock"
)

// Default loop sizes
const (
	DefaultWarmup     = 10
	DefaultIterations = 10
)

// Recorder is notified of every completed scenario run
type Recorder interface {
	RecordScenario(name string, measured bool)
}

// Result holds the measured samples of one scenario and their mean
type Result struct {
	Scenario string
	Samples  []Sample
	Mean     Mean
}

// Config defines the loop sizes of a Runner
type Config struct {
	Warmup     int  // rounds run and discarded before measuring
	Iterations int  // measured rounds
	Verbose    bool // log every measured sample
}

// DefaultConfig returns the default loop sizes
func DefaultConfig() *Config {
	return &Config{
		Warmup:     DefaultWarmup,
		Iterations: DefaultIterations,
	}
}

// Runner runs scenarios in rounds against one render target
type Runner struct {
	renderer Renderer
	clock    clock.Clock
	config   *Config
	recorder Recorder
	logger   *log.Logger
}

// RunnerOption configures a Runner
type RunnerOption func(*Runner)

// WithRecorder sets the recorder notified after each scenario run
func WithRecorder(rec Recorder) RunnerOption {
	return func(r *Runner) {
		r.recorder = rec
	}
}

// WithLogger sets the logger for progress lines
func WithLogger(logger *log.Logger) RunnerOption {
	return func(r *Runner) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRunner creates a runner over renderer and clk
func NewRunner(renderer Renderer, clk clock.Clock, config *Config, opts ...RunnerOption) *Runner {
	if config == nil {
		config = DefaultConfig()
	}
	if clk == nil {
		clk = clock.New()
	}

	r := &Runner{
		renderer: renderer,
		clock:    clk,
		config:   config,
		logger:   log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes config.Warmup rounds whose samples are dropped, then
// config.Iterations measured rounds. Each round runs every scenario once,
// in order. The context is checked between scenario runs.
func (r *Runner) Run(ctx context.Context, scenarios []Scenario) ([]Result, error) {
	if len(scenarios) == 0 {
		return nil, nil
	}

	for round := 0; round < r.config.Warmup; round++ {
		for _, s := range scenarios {
			if _, err := r.runOne(ctx, s, false); err != nil {
				return nil, fmt.Errorf("warm-up round %d: %w", round, err)
			}
		}
	}
	if r.config.Warmup > 0 {
		r.logger.Printf("warm-up complete: %d rounds", r.config.Warmup)
	}

	samples := make([][]Sample, len(scenarios))
	for i := range samples {
		samples[i] = make([]Sample, 0, r.config.Iterations)
	}

	for round := 0; round < r.config.Iterations; round++ {
		for i, s := range scenarios {
			sample, err := r.runOne(ctx, s, true)
			if err != nil {
				return nil, fmt.Errorf("measured round %d: %w", round, err)
			}
			samples[i] = append(samples[i], sample)
			if r.config.Verbose {
				r.logger.Printf("round %d %s: initial render %v, update %v", round, s.Name, sample.InitialRender, sample.Update)
			}
		}
	}

	results := make([]Result, len(scenarios))
	for i, s := range scenarios {
		mean, err := Aggregate(samples[i])
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", s.Name, err)
		}
		results[i] = Result{Scenario: s.Name, Samples: samples[i], Mean: mean}
	}
	return results, nil
}

func (r *Runner) runOne(ctx context.Context, s Scenario, measured bool) (Sample, error) {
	if err := ctx.Err(); err != nil {
		return Sample{}, err
	}

	sample, err := RunScenario(r.renderer, r.clock, s)
	if err != nil {
		return Sample{}, err
	}
	if r.recorder != nil {
		r.recorder.RecordScenario(s.Name, measured)
	}
	return sample, nil
}
