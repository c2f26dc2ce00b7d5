package vdom

// Tag is the element name of a host node
type Tag string

// Supported tags
const (
	TagSpan Tag = "span"
	TagDiv  Tag = "div"
)

// Attrs carries the optional attributes of an element
type Attrs struct {
	Key int
}

// Element describes one node of a virtual tree. Elements are never mutated after
// construction; the renderer keeps its own bookkeeping next to them.
type Element struct {
	Tag      Tag
	Key      int
	HasKey   bool
	Text     string
	Children []*Element
}

// ElementFactory builds a leaf element from attributes and text
type ElementFactory func(attrs *Attrs, text string) *Element

// Span builds a span leaf
func Span(attrs *Attrs, text string) *Element {
	return leaf(TagSpan, attrs, text)
}

// Div builds a div leaf
func Div(attrs *Attrs, text string) *Element {
	return leaf(TagDiv, attrs, text)
}

// H builds a container element wrapping children
func H(tag Tag, attrs *Attrs, children ...*Element) *Element {
	el := &Element{Tag: tag, Children: children}
	if attrs != nil {
		el.Key = attrs.Key
		el.HasKey = true
	}
	return el
}

func leaf(tag Tag, attrs *Attrs, text string) *Element {
	el := &Element{Tag: tag, Text: text}
	if attrs != nil {
		el.Key = attrs.Key
		el.HasKey = true
	}
	return el
}

// childKey identifies a child among its siblings: keyed children by key,
// unkeyed children by position.
type childKey struct {
	keyed bool
	n     int
}

func keyOf(el *Element, index int) childKey {
	if el.HasKey {
		return childKey{keyed: true, n: el.Key}
	}
	return childKey{n: index}
}
