package vdom

import (
	"bytes"
	"fmt"
	"reflect"
	"sync"

	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	minifier *minify.M
	once     sync.Once
)

// getMinifier returns a configured HTML minifier (singleton)
func getMinifier() *minify.M {
	once.Do(func() {
		minifier = minify.New()
		minifier.AddFunc("text/html", mhtml.Minify)
	})
	return minifier
}

// Root is a render target: a host <body> node plus the type and tree of the
// component currently mounted into it. A Root is not safe for concurrent use.
type Root struct {
	body          *html.Node
	componentType reflect.Type
	tree          *instance
	observers     []Observer
}

// Option configures a Root
type Option func(*Root)

// WithObserver registers an observer for render events
func WithObserver(o Observer) Option {
	return func(r *Root) {
		if o != nil {
			r.observers = append(r.observers, o)
		}
	}
}

// NewRoot creates an empty render target
func NewRoot(opts ...Option) *Root {
	r := &Root{
		body: &html.Node{
			Type:     html.ElementNode,
			Data:     atom.Body.String(),
			DataAtom: atom.Body,
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render mounts c onto the root. An empty root gets a fresh build. A root
// holding a component of another type is torn down and rebuilt without
// diffing. A root holding the same component type is reconciled in place.
// The rendered tree is checked before any host node changes, so a failed
// Render leaves the mounted tree as it was.
func (r *Root) Render(c Component) error {
	if c == nil {
		return ErrNilComponent
	}

	typ := TypeOf(c)
	el, err := c.Render()
	if err != nil {
		return fmt.Errorf("render %s: %w", typ, err)
	}
	if el == nil {
		return fmt.Errorf("render %s: %w", typ, ErrNilElement)
	}

	if err := check(el); err != nil {
		return fmt.Errorf("render %s: %w", typ, err)
	}

	var p pass
	switch {
	case r.tree == nil:
		tree := p.build(el)
		r.body.AppendChild(tree.node)
		r.set(typ, tree)
		r.emit(Event{Kind: EventMount, Component: typ, Created: p.created})

	case typ != r.componentType:
		tree := p.build(el)
		removed := r.tree.size()
		r.body.RemoveChild(r.tree.node)
		r.body.AppendChild(tree.node)
		r.set(typ, tree)
		r.emit(Event{Kind: EventReplace, Component: typ, Created: p.created, Removed: removed})

	default:
		tree := p.patch(r.tree, el)
		r.set(typ, tree)
		r.emit(Event{
			Kind:      EventUpdate,
			Component: typ,
			Created:   p.created,
			Removed:   p.removed,
			Replaced:  p.replaced,
		})
	}
	return nil
}

// Unmount removes the mounted tree and leaves the root empty
func (r *Root) Unmount() error {
	if r.tree == nil {
		return ErrNotMounted
	}

	typ := r.componentType
	removed := r.tree.size()
	r.body.RemoveChild(r.tree.node)
	r.set(nil, nil)
	r.emit(Event{Kind: EventUnmount, Component: typ, Removed: removed})
	return nil
}

// Mounted reports whether a tree is mounted
func (r *Root) Mounted() bool {
	return r.tree != nil
}

// Size returns the number of mounted element nodes
func (r *Root) Size() int {
	if r.tree == nil {
		return 0
	}
	return r.tree.size()
}

// Markup serializes the mounted host nodes as minified HTML
func (r *Root) Markup() (string, error) {
	var buf bytes.Buffer
	for n := r.body.FirstChild; n != nil; n = n.NextSibling {
		if err := html.Render(&buf, n); err != nil {
			return "", fmt.Errorf("failed to render markup: %w", err)
		}
	}
	out, err := getMinifier().String("text/html", buf.String())
	if err != nil {
		return "", fmt.Errorf("failed to minify markup: %w", err)
	}
	return out, nil
}

func (r *Root) set(typ reflect.Type, tree *instance) {
	r.componentType = typ
	r.tree = tree
}

func (r *Root) emit(ev Event) {
	for _, o := range r.observers {
		o(ev)
	}
}
