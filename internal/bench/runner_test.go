package bench_test

import (
	"bytes"
	"context"
	"errors"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/livefir/vdombench/internal/bench"
	"github.com/livefir/vdombench/internal/components"
	"github.com/livefir/vdombench/internal/vdom"
)

func TestRunnerOnlyMeasuredRoundsAreAggregated(t *testing.T) {
	const warmup, iterations = 3, 4

	mock := clock.NewMock()
	renderer := newFakeRenderer(mock)
	// warm-up renders are expensive, measured ones cost 10ms then 5ms
	warmupRenders := warmup * 2 * 2
	renderer.cost = func(call int) time.Duration {
		if call < warmupRenders {
			return time.Second
		}
		if call%2 == 0 {
			return 10 * time.Millisecond
		}
		return 5 * time.Millisecond
	}

	recorder := newCountingRecorder()
	runner := bench.NewRunner(renderer, mock, &bench.Config{Warmup: warmup, Iterations: iterations}, bench.WithRecorder(recorder))

	results, err := runner.Run(context.Background(), components.Scenarios(3))
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	for _, r := range results {
		if len(r.Samples) != iterations {
			t.Errorf("%s: expected %d samples, got %d", r.Scenario, iterations, len(r.Samples))
		}
		want := bench.Mean{InitialRender: 10 * time.Millisecond, Update: 5 * time.Millisecond}
		if r.Mean != want {
			t.Errorf("%s: expected mean %+v, got %+v", r.Scenario, want, r.Mean)
		}
	}

	for _, name := range []string{components.ScenarioSimple, components.ScenarioProps} {
		if recorder.warmup[name] != warmup {
			t.Errorf("%s: expected %d warm-up runs, got %d", name, warmup, recorder.warmup[name])
		}
		if recorder.measured[name] != iterations {
			t.Errorf("%s: expected %d measured runs, got %d", name, iterations, recorder.measured[name])
		}
	}

	if got, want := renderer.unmounts, (warmup+iterations)*2; got != want {
		t.Errorf("Expected %d unmounts, got %d", want, got)
	}
}

func TestRunnerInterleavesScenarios(t *testing.T) {
	var order []string
	root := vdom.NewRoot(vdom.WithObserver(func(ev vdom.Event) {
		if ev.Kind == vdom.EventMount {
			order = append(order, ev.Component.String())
		}
	}))

	runner := bench.NewRunner(root, clock.New(), &bench.Config{Warmup: 0, Iterations: 2})
	if _, err := runner.Run(context.Background(), components.Scenarios(5)); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(order) != 4 {
		t.Fatalf("Expected 4 mounts, got %d: %v", len(order), order)
	}
	for i, name := range order {
		wantProps := i%2 == 1
		if strings.Contains(name, "PropsList") != wantProps {
			t.Errorf("Mount %d: unexpected component %s", i, name)
		}
	}
}

func TestRunnerZeroIterations(t *testing.T) {
	mock := clock.NewMock()
	runner := bench.NewRunner(newFakeRenderer(mock), mock, &bench.Config{Warmup: 1, Iterations: 0})

	_, err := runner.Run(context.Background(), components.Scenarios(1))
	if !errors.Is(err, bench.ErrNoSamples) {
		t.Fatalf("Expected ErrNoSamples, got %v", err)
	}
}

func TestRunnerStopsOnScenarioError(t *testing.T) {
	mock := clock.NewMock()
	renderer := newFakeRenderer(mock)
	renderer.failRender = map[int]error{5: errors.New("render failed")}

	runner := bench.NewRunner(renderer, mock, &bench.Config{Warmup: 2, Iterations: 2})
	results, err := runner.Run(context.Background(), components.Scenarios(1))

	var scenarioErr *bench.ScenarioError
	if !errors.As(err, &scenarioErr) {
		t.Fatalf("Expected *ScenarioError, got %v", err)
	}
	if !strings.Contains(err.Error(), "warm-up round 1") {
		t.Errorf("Expected error to name the warm-up round, got %v", err)
	}
	if results != nil {
		t.Errorf("Expected no partial results, got %v", results)
	}
}

func TestRunnerContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := clock.NewMock()
	renderer := newFakeRenderer(mock)
	runner := bench.NewRunner(renderer, mock, nil)

	if _, err := runner.Run(ctx, components.Scenarios(1)); !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if renderer.renders != 0 {
		t.Errorf("Expected no renders after cancellation, got %d", renderer.renders)
	}
}

func TestRunnerVerboseLogging(t *testing.T) {
	var buf bytes.Buffer
	mock := clock.NewMock()
	runner := bench.NewRunner(newFakeRenderer(mock), mock,
		&bench.Config{Warmup: 1, Iterations: 1, Verbose: true},
		bench.WithLogger(log.New(&buf, "", 0)))

	if _, err := runner.Run(context.Background(), components.Scenarios(1)); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"warm-up complete: 1 rounds", "round 0 simple", "round 0 props"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log to contain %q, got:\n%s", want, out)
		}
	}
}

func TestRunnerNoScenarios(t *testing.T) {
	runner := bench.NewRunner(vdom.NewRoot(), nil, nil)
	results, err := runner.Run(context.Background(), nil)
	if err != nil || results != nil {
		t.Fatalf("Expected nil results and error, got %v, %v", results, err)
	}
}
