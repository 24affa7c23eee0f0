package container

// ItemVisitor receives a set element. Returning false stops the
// traversal.
type ItemVisitor[T comparable] func(item T) bool

// Set is the membership storage capability: a collection of unique
// values of type T.
//
// The binary predicates and algebra visitors take any other Set of the
// same element type; the two sets do not have to share a concrete
// implementation. Algebra visitors follow the same completion-signal
// contract as Map traversal: true means the full relation was visited,
// false means the visitor stopped it early. Order is implementation
// defined but stable across repeated traversals of unmutated sets.
type Set[T comparable] interface {
	Mutable

	// Contains reports whether item is a member of the set.
	Contains(item T) bool

	// Insert adds item and returns true iff it was not already present.
	Insert(item T) bool

	// Remove deletes item and returns true iff it was present.
	Remove(item T) bool

	// Each visits every member of the set.
	Each(f ItemVisitor[T]) bool

	// IsDisjoint reports whether the set has no members in common
	// with other.
	IsDisjoint(other Set[T]) bool

	// IsSubset reports whether every member of the set is in other.
	IsSubset(other Set[T]) bool

	// IsSuperset reports whether every member of other is in the set.
	IsSuperset(other Set[T]) bool

	// Difference visits the members of the set that are not in other.
	Difference(other Set[T], f ItemVisitor[T]) bool

	// SymmetricDifference visits the members present in exactly one of
	// the two sets.
	SymmetricDifference(other Set[T], f ItemVisitor[T]) bool

	// Intersection visits the members present in both sets.
	Intersection(other Set[T], f ItemVisitor[T]) bool

	// Union visits the members present in either set, each once.
	Union(other Set[T], f ItemVisitor[T]) bool
}
