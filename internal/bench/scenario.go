package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/livefir/vdombench/internal/vdom"
)

// ErrTargetNotEmpty is returned when a scenario starts on a render target
// that still holds a mounted tree
var ErrTargetNotEmpty = errors.New("bench: render target is not empty")

// Scenario is one mount, update, unmount cycle
type Scenario struct {
	Name   string
	Mount  vdom.Component
	Update vdom.Component
}

// Sample is the timing of one scenario run
type Sample struct {
	InitialRender time.Duration
	Update        time.Duration
}

// Phase names the renderer call that failed inside a scenario
type Phase string

// Scenario phases
const (
	PhaseStart   Phase = "start"
	PhaseMount   Phase = "mount"
	PhaseUpdate  Phase = "update"
	PhaseUnmount Phase = "unmount"
)

// ScenarioError wraps a renderer failure with the scenario and phase it hit
type ScenarioError struct {
	Scenario string
	Phase    Phase
	Err      error
}

func (e *ScenarioError) Error() string {
	return fmt.Sprintf("scenario %s: %s failed: %v", e.Scenario, e.Phase, e.Err)
}

func (e *ScenarioError) Unwrap() error {
	return e.Err
}

// RunScenario mounts s.Mount, re-renders s.Update onto the same target and
// unmounts. It returns the time spent in the first and second Render calls;
// the unmount is not timed.
func RunScenario(r Renderer, clk clock.Clock, s Scenario) (Sample, error) {
	if r.Mounted() {
		return Sample{}, &ScenarioError{Scenario: s.Name, Phase: PhaseStart, Err: ErrTargetNotEmpty}
	}

	initialRenderStart := clk.Now()
	if err := r.Render(s.Mount); err != nil {
		return Sample{}, &ScenarioError{Scenario: s.Name, Phase: PhaseMount, Err: err}
	}
	updateStart := clk.Now()
	updateErr := r.Render(s.Update)
	updateEnd := clk.Now()

	if err := r.Unmount(); err != nil {
		if updateErr != nil {
			return Sample{}, &ScenarioError{Scenario: s.Name, Phase: PhaseUpdate, Err: errors.Join(updateErr, err)}
		}
		return Sample{}, &ScenarioError{Scenario: s.Name, Phase: PhaseUnmount, Err: err}
	}
	if updateErr != nil {
		return Sample{}, &ScenarioError{Scenario: s.Name, Phase: PhaseUpdate, Err: updateErr}
	}

	return Sample{
		InitialRender: elapsed(initialRenderStart, updateStart),
		Update:        elapsed(updateStart, updateEnd),
	}, nil
}

// elapsed never reports a negative duration
func elapsed(from, to time.Time) time.Duration {
	if d := to.Sub(from); d > 0 {
		return d
	}
	return 0
}
