// Package components defines the components rendered by the benchmark
// scenarios.
package components

import (
	"errors"

	"github.com/livefir/vdombench/internal/bench"
	"github.com/livefir/vdombench/internal/fixture"
	"github.com/livefir/vdombench/internal/vdom"
)

// ErrNoElementFactory is returned when a PropsList renders without a factory
var ErrNoElementFactory = errors.New("components: no element factory in props")

// LeafTag selects the leaf constructor baked into a Simple component type
type LeafTag interface {
	Leaf() vdom.ElementFactory
}

// SpanTag builds span leaves
type SpanTag struct{}

// Leaf returns vdom.Span
func (SpanTag) Leaf() vdom.ElementFactory { return vdom.Span }

// DivTag builds div leaves
type DivTag struct{}

// Leaf returns vdom.Div
func (DivTag) Leaf() vdom.ElementFactory { return vdom.Div }

// Simple renders a div wrapping Nodes leaves of the tag fixed by T.
// Each instantiation is its own component type, so the renderer treats
// Simple[SpanTag] and Simple[DivTag] as unrelated.
type Simple[T LeafTag] struct {
	Nodes int
}

// Render builds the container and its fixture
func (s Simple[T]) Render() (*vdom.Element, error) {
	var tag T
	return vdom.H(vdom.TagDiv, nil, fixture.Build(s.Nodes, tag.Leaf())...), nil
}

// The two fixed-shape components
type (
	SimpleSpan = Simple[SpanTag]
	SimpleDiv  = Simple[DivTag]
)

// Props configures a PropsList render
type Props struct {
	ElementFactory vdom.ElementFactory
}

// PropsList renders a div wrapping Nodes leaves built by Props.ElementFactory
type PropsList struct {
	Nodes int
	Props Props
}

// Render builds the container and its fixture
func (p PropsList) Render() (*vdom.Element, error) {
	if p.Props.ElementFactory == nil {
		return nil, ErrNoElementFactory
	}
	return vdom.H(vdom.TagDiv, nil, fixture.Build(p.Nodes, p.Props.ElementFactory)...), nil
}

// Scenario names
const (
	ScenarioSimple = "simple"
	ScenarioProps  = "props"
)

// SimpleScenario swaps the root component type between mount and update
func SimpleScenario(nodes int) bench.Scenario {
	return bench.Scenario{
		Name:   ScenarioSimple,
		Mount:  SimpleSpan{Nodes: nodes},
		Update: SimpleDiv{Nodes: nodes},
	}
}

// PropsScenario keeps the component type and changes its element factory
func PropsScenario(nodes int) bench.Scenario {
	return bench.Scenario{
		Name:   ScenarioProps,
		Mount:  PropsList{Nodes: nodes, Props: Props{ElementFactory: vdom.Span}},
		Update: PropsList{Nodes: nodes, Props: Props{ElementFactory: vdom.Div}},
	}
}

// Scenarios returns both scenarios in run order
func Scenarios(nodes int) []bench.Scenario {
	return []bench.Scenario{SimpleScenario(nodes), PropsScenario(nodes)}
}
