package vdom

import (
	"strconv"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const keyAttr = "data-key"

// instance pairs an element with the host node built for it
type instance struct {
	el       *Element
	node     *html.Node
	text     *html.Node
	children []*instance
}

func (in *instance) size() int {
	n := 1
	for _, c := range in.children {
		n += c.size()
	}
	return n
}

// pass accumulates host node churn for one Render call
type pass struct {
	created  int
	removed  int
	replaced int
}

func validate(el *Element) error {
	if el.Tag == "" {
		return &EmptyTagError{Text: el.Text}
	}
	if el.HasKey && el.Key < 0 {
		return &InvalidKeyError{Tag: el.Tag, Key: el.Key}
	}
	return nil
}

// check validates el and its whole subtree: tags, keys and sibling key
// uniqueness. build and patch only run on checked trees and cannot fail.
func check(el *Element) error {
	if err := validate(el); err != nil {
		return err
	}
	if len(el.Children) == 0 {
		return nil
	}

	seen := make(map[childKey]struct{}, len(el.Children))
	for i, child := range el.Children {
		k := keyOf(child, i)
		if _, dup := seen[k]; dup {
			return &DuplicateKeyError{Parent: el.Tag, Key: child.Key}
		}
		seen[k] = struct{}{}

		if err := check(child); err != nil {
			return err
		}
	}
	return nil
}

func keyAttrs(el *Element) []html.Attribute {
	if !el.HasKey {
		return nil
	}
	return []html.Attribute{{Key: keyAttr, Val: strconv.Itoa(el.Key)}}
}

// build creates detached host nodes for el and its subtree
func (p *pass) build(el *Element) *instance {
	node := &html.Node{
		Type:     html.ElementNode,
		Data:     string(el.Tag),
		DataAtom: atom.Lookup([]byte(el.Tag)),
		Attr:     keyAttrs(el),
	}

	in := &instance{el: el, node: node}
	if el.Text != "" {
		in.text = &html.Node{Type: html.TextNode, Data: el.Text}
		node.AppendChild(in.text)
	}

	if len(el.Children) > 0 {
		in.children = make([]*instance, 0, len(el.Children))
		for _, child := range el.Children {
			ci := p.build(child)
			node.AppendChild(ci.node)
			in.children = append(in.children, ci)
		}
	}

	p.created++
	return in
}

// patch reconciles the mounted instance against next. A tag change replaces
// the host node and its subtree; otherwise the node is updated in place.
func (p *pass) patch(in *instance, next *Element) *instance {
	if in.el.Tag != next.Tag {
		fresh := p.build(next)
		if parent := in.node.Parent; parent != nil {
			parent.InsertBefore(fresh.node, in.node)
			parent.RemoveChild(in.node)
		}
		p.removed += in.size()
		p.replaced++
		return fresh
	}

	if in.el.HasKey != next.HasKey || in.el.Key != next.Key {
		in.node.Attr = keyAttrs(next)
	}

	switch {
	case in.text == nil && next.Text != "":
		in.text = &html.Node{Type: html.TextNode, Data: next.Text}
		in.node.InsertBefore(in.text, in.node.FirstChild)
	case in.text != nil && next.Text == "":
		in.node.RemoveChild(in.text)
		in.text = nil
	case in.text != nil && in.text.Data != next.Text:
		in.text.Data = next.Text
	}

	in.children = p.patchChildren(in, next)
	in.el = next
	return in
}

func (p *pass) patchChildren(in *instance, next *Element) []*instance {
	if len(in.children) == 0 && len(next.Children) == 0 {
		return nil
	}

	old := make(map[childKey]*instance, len(in.children))
	for i, c := range in.children {
		old[keyOf(c.el, i)] = c
	}

	children := make([]*instance, 0, len(next.Children))
	for i, el := range next.Children {
		k := keyOf(el, i)
		if c, ok := old[k]; ok {
			delete(old, k)
			children = append(children, p.patch(c, el))
			continue
		}
		children = append(children, p.build(el))
	}

	for _, c := range old {
		in.node.RemoveChild(c.node)
		p.removed += c.size()
	}

	// Move nodes into the order of next, skipping the ones already in place.
	cursor := in.node.FirstChild
	if in.text != nil {
		cursor = in.text.NextSibling
	}
	for _, c := range children {
		if c.node == cursor {
			cursor = cursor.NextSibling
			continue
		}
		if c.node.Parent != nil {
			c.node.Parent.RemoveChild(c.node)
		}
		in.node.InsertBefore(c.node, cursor)
	}
	return children
}
