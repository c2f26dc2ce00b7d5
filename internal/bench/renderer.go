// Package bench times mount and update passes of a renderer and reduces the
// timings to means.
package bench

import "github.com/livefir/vdombench/internal/vdom"

// Renderer is the rendering capability a scenario runs against. Render
// mounts a component onto the render target, updating whatever is already
// mounted; Unmount clears the target.
type Renderer interface {
	Render(c vdom.Component) error
	Unmount() error
	Mounted() bool
}

var _ Renderer = (*vdom.Root)(nil)
