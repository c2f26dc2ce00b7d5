package vdom

import (
	"errors"
	"fmt"
)

var (
	// ErrNilComponent is returned when Render is called without a component
	ErrNilComponent = errors.New("vdom: nil component")

	// ErrNilElement is returned when a component renders nothing
	ErrNilElement = errors.New("vdom: component rendered a nil element")

	// ErrNotMounted is returned when unmounting an empty root
	ErrNotMounted = errors.New("vdom: nothing mounted")
)

// InvalidKeyError is returned when an element carries a negative key
type InvalidKeyError struct {
	Tag Tag
	Key int
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("vdom: invalid key %d on <%s>", e.Key, e.Tag)
}

// DuplicateKeyError is returned when two siblings share a key
type DuplicateKeyError struct {
	Parent Tag
	Key    int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("vdom: duplicate key %d under <%s>", e.Key, e.Parent)
}

// EmptyTagError is returned when an element has no tag
type EmptyTagError struct {
	Text string
}

func (e *EmptyTagError) Error() string {
	return fmt.Sprintf("vdom: element with text %q has no tag", e.Text)
}
