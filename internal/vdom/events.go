package vdom

import "reflect"

// EventKind classifies what the renderer did with a Render or Unmount call
type EventKind int

const (
	// EventMount is a fresh build onto an empty root
	EventMount EventKind = iota
	// EventReplace is a fresh build that discarded a tree of another component type
	EventReplace
	// EventUpdate is an in-place reconciliation of a tree of the same component type
	EventUpdate
	// EventUnmount removed the mounted tree
	EventUnmount
)

func (k EventKind) String() string {
	switch k {
	case EventMount:
		return "mount"
	case EventReplace:
		return "replace"
	case EventUpdate:
		return "update"
	case EventUnmount:
		return "unmount"
	default:
		return "unknown"
	}
}

// FreshBuild reports whether the event built a new tree from scratch
func (k EventKind) FreshBuild() bool {
	return k == EventMount || k == EventReplace
}

// Event is emitted to observers after every successful Render or Unmount
type Event struct {
	Kind      EventKind
	Component reflect.Type

	// Host nodes created and removed by the operation
	Created int
	Removed int
	// Nodes replaced because their tag changed during an update
	Replaced int
}

// Observer receives renderer events
type Observer func(Event)
