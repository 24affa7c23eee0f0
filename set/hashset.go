// Package set provides three container.Set implementations: HashSet
// (unordered, stable traversal between mutations), OrderedSet
// (insertion order) and TreeSet (ascending order).
package set

import (
	"github.com/denismitr/collections/container"
)

// HashSet - an unordered set. Traversal order carries no meaning but
// stays stable between mutations.
type HashSet[T comparable] struct {
	m       map[T]int
	journal []T
}

var _ container.Set[int] = (*HashSet[int])(nil)

func NewHashSet[T comparable]() *HashSet[T] {
	return &HashSet[T]{
		m: make(map[T]int),
	}
}

func NewHashSetFromSlice[T comparable](items []T) *HashSet[T] {
	s := NewHashSet[T]()
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

func (s *HashSet[T]) Len() int {
	return len(s.m)
}

func (s *HashSet[T]) IsEmpty() bool {
	return len(s.m) == 0
}

func (s *HashSet[T]) Clear() {
	s.m = make(map[T]int)
	s.journal = nil
}

func (s *HashSet[T]) Contains(item T) bool {
	_, found := s.m[item]
	return found
}

func (s *HashSet[T]) Insert(item T) (added bool) {
	if _, found := s.m[item]; found {
		return false
	}

	s.m[item] = len(s.journal)
	s.journal = append(s.journal, item)
	return true
}

func (s *HashSet[T]) Remove(item T) bool {
	pos, found := s.m[item]
	if !found {
		return false
	}

	// swap the journal tail into the vacated slot
	last := len(s.journal) - 1
	tail := s.journal[last]
	s.journal[pos] = tail
	s.m[tail] = pos
	s.journal = s.journal[:last]
	delete(s.m, item)
	return true
}

func (s *HashSet[T]) Each(f container.ItemVisitor[T]) bool {
	for _, item := range s.journal {
		if !f(item) {
			return false
		}
	}
	return true
}

func (s *HashSet[T]) Items() []T {
	items := make([]T, len(s.journal))
	copy(items, s.journal)
	return items
}

func (s *HashSet[T]) IsDisjoint(other container.Set[T]) bool {
	return container.IsDisjoint[T](s, other)
}

func (s *HashSet[T]) IsSubset(other container.Set[T]) bool {
	return container.IsSubset[T](s, other)
}

func (s *HashSet[T]) IsSuperset(other container.Set[T]) bool {
	return container.IsSuperset[T](s, other)
}

func (s *HashSet[T]) Difference(other container.Set[T], f container.ItemVisitor[T]) bool {
	return container.Difference[T](s, other, f)
}

func (s *HashSet[T]) SymmetricDifference(other container.Set[T], f container.ItemVisitor[T]) bool {
	return container.SymmetricDifference[T](s, other, f)
}

func (s *HashSet[T]) Intersection(other container.Set[T], f container.ItemVisitor[T]) bool {
	return container.Intersection[T](s, other, f)
}

func (s *HashSet[T]) Union(other container.Set[T], f container.ItemVisitor[T]) bool {
	return container.Union[T](s, other, f)
}
