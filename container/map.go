package container

type (
	// PairVisitor receives a key and an immutable copy of its value.
	// Returning false stops the traversal.
	PairVisitor[K comparable, V any] func(key K, value V) bool

	// KeyVisitor receives a key. Returning false stops the traversal.
	KeyVisitor[K comparable] func(key K) bool

	// ValueVisitor receives an immutable copy of a value.
	// Returning false stops the traversal.
	ValueVisitor[V any] func(value V) bool

	// MutVisitor receives a key and a pointer to the stored value, so
	// the value may be changed in place. Returning false stops the
	// traversal. The pointer is valid only for the duration of the call.
	MutVisitor[K comparable, V any] func(key K, value *V) bool
)

// Map is the associative storage capability: unique keys of type K
// mapped to values of type V.
//
// Absence is never an error: lookups on a missing key yield the zero
// value and false. Traversal order is implementation defined, but
// repeated traversals of a map that has not been mutated in between
// must visit elements in the same order. Every visitor-style method
// returns a completion signal: true when all elements were visited,
// false when the visitor stopped the traversal early. Adding or
// removing entries from inside a visitor is undefined behavior.
type Map[K comparable, V any] interface {
	Mutable

	// ContainsKey reports whether a value is stored under key.
	ContainsKey(key K) bool

	// Find returns a copy of the value stored under key.
	Find(key K) (V, bool)

	// FindMut returns a pointer to the value stored under key, allowing
	// in-place mutation. The pointer stays valid only until the map is
	// next mutated; callers must not retain it past that point.
	FindMut(key K) (*V, bool)

	// Insert stores value under key, replacing any existing value.
	// It returns true iff the key was not present before the call.
	Insert(key K, value V) bool

	// Swap stores value under key and returns the value it replaced,
	// if any. Like Insert, but for callers that need the old value back.
	Swap(key K, value V) (V, bool)

	// Remove deletes the entry stored under key and reports whether
	// the key was present. Removing an absent key is a no-op.
	Remove(key K) bool

	// Pop deletes the entry stored under key and returns its value,
	// if the key was present.
	Pop(key K) (V, bool)

	// Each visits every key/value pair.
	Each(f PairVisitor[K, V]) bool

	// EachKey visits every key.
	EachKey(f KeyVisitor[K]) bool

	// EachValue visits every value.
	EachValue(f ValueVisitor[V]) bool

	// MutateValues visits every pair allowing the value to be changed
	// in place. The set of keys must not be modified during traversal.
	MutateValues(f MutVisitor[K, V]) bool
}
