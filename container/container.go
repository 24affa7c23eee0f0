// Package container defines the capability interfaces every collection
// in this module implements: sizing, clearing, associative storage and
// membership storage. Generic code should be written against these
// interfaces, never against a concrete collection.
package container

// Container is the base capability of every collection.
type Container interface {
	// Len returns the number of elements currently stored.
	Len() int

	// IsEmpty reports whether the container holds no elements.
	// It must always agree with Len() == 0.
	IsEmpty() bool
}

// Mutable is a container that can be reset. After Clear the
// container's Len is zero.
type Mutable interface {
	Container

	// Clear removes all elements. It never fails.
	Clear()
}
