package container

// The set algebra is evaluated purely through the Set interface, so
// every implementation can delegate its algebra methods here and get
// identical semantics.

// Difference visits the members of s that are not members of other.
func Difference[T comparable](s, other Set[T], f ItemVisitor[T]) bool {
	return s.Each(func(item T) bool {
		if other.Contains(item) {
			return true
		}
		return f(item)
	})
}

// SymmetricDifference visits first the members of s not in other, then
// the members of other not in s.
func SymmetricDifference[T comparable](s, other Set[T], f ItemVisitor[T]) bool {
	if !Difference(s, other, f) {
		return false
	}
	return Difference(other, s, f)
}

// Intersection visits the members of s that are also members of other.
func Intersection[T comparable](s, other Set[T], f ItemVisitor[T]) bool {
	return s.Each(func(item T) bool {
		if !other.Contains(item) {
			return true
		}
		return f(item)
	})
}

// Union visits every member of s, then the members of other that are
// not in s, so each element of the union is visited exactly once.
func Union[T comparable](s, other Set[T], f ItemVisitor[T]) bool {
	if !s.Each(f) {
		return false
	}
	return Difference(other, s, f)
}

// IsDisjoint reports whether s and other have an empty intersection.
func IsDisjoint[T comparable](s, other Set[T]) bool {
	return Intersection(s, other, func(T) bool { return false })
}

// IsSubset reports whether every member of s is a member of other.
func IsSubset[T comparable](s, other Set[T]) bool {
	return s.Each(func(item T) bool {
		return other.Contains(item)
	})
}

// IsSuperset reports whether every member of other is a member of s.
func IsSuperset[T comparable](s, other Set[T]) bool {
	return IsSubset(other, s)
}
