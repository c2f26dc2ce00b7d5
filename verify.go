package vdombench

import (
	"errors"
	"fmt"
	"log"

	"github.com/livefir/vdombench/internal/bench"
	"github.com/livefir/vdombench/internal/vdom"
)

// ErrMarkupMismatch is returned when an update renders different markup
// than mounting the same component on an empty root
var ErrMarkupMismatch = errors.New("vdombench: updated markup differs from a fresh mount")

// verifyScenarios renders each scenario's update twice, once over its mount
// and once onto an empty root, and compares the host markup
func verifyScenarios(scenarios []bench.Scenario, logger *log.Logger) error {
	for _, s := range scenarios {
		updated := vdom.NewRoot()
		if err := updated.Render(s.Mount); err != nil {
			return fmt.Errorf("verify %s: %w", s.Name, err)
		}
		if err := updated.Render(s.Update); err != nil {
			return fmt.Errorf("verify %s: %w", s.Name, err)
		}

		fresh := vdom.NewRoot()
		if err := fresh.Render(s.Update); err != nil {
			return fmt.Errorf("verify %s: %w", s.Name, err)
		}

		got, err := updated.Markup()
		if err != nil {
			return fmt.Errorf("verify %s: %w", s.Name, err)
		}
		want, err := fresh.Markup()
		if err != nil {
			return fmt.Errorf("verify %s: %w", s.Name, err)
		}
		if got != want || updated.Size() != fresh.Size() {
			return fmt.Errorf("verify %s: %w", s.Name, ErrMarkupMismatch)
		}

		logger.Printf("%s: update matches a fresh mount (%d nodes, %d bytes of markup)", s.Name, updated.Size(), len(got))
	}
	return nil
}
