// Package fixture builds the element lists rendered by the benchmark components.
package fixture

import (
	"strconv"

	"github.com/livefir/vdombench/internal/vdom"
)

// DefaultNodes is the node count of a large single-page app screen
// (document.querySelectorAll('*').length on a news feed), used to
// simulate a full-page transition.
const DefaultNodes = 4667

// Build returns n leaves made by factory; leaf i has key i and text "element i"
func Build(n int, factory vdom.ElementFactory) []*vdom.Element {
	if n <= 0 {
		return nil
	}

	elements := make([]*vdom.Element, n)
	for i := range elements {
		elements[i] = factory(&vdom.Attrs{Key: i}, Text(i))
	}
	return elements
}

// Text returns the text of leaf i
func Text(i int) string {
	return "element " + strconv.Itoa(i)
}
