package vdom

import "reflect"

// Component is a renderable unit. Its dynamic type is its identity: two
// components of different types are never diffed against each other.
type Component interface {
	Render() (*Element, error)
}

// TypeOf returns the identity the renderer uses to compare components
func TypeOf(c Component) reflect.Type {
	return reflect.TypeOf(c)
}

// SameType reports whether two components share a component type
func SameType(a, b Component) bool {
	return TypeOf(a) == TypeOf(b)
}
