package set

import (
	"github.com/google/btree"
	"golang.org/x/exp/constraints"

	"github.com/denismitr/collections/container"
)

const btreeDegree = 32

// TreeSet - a B-tree backed set that traverses its members in
// ascending order.
type TreeSet[T constraints.Ordered] struct {
	tree *btree.BTreeG[T]
}

var _ container.Set[int] = (*TreeSet[int])(nil)

func NewTreeSet[T constraints.Ordered]() *TreeSet[T] {
	return &TreeSet[T]{
		tree: btree.NewG[T](btreeDegree, func(a, b T) bool {
			return a < b
		}),
	}
}

func NewTreeSetFromSlice[T constraints.Ordered](items []T) *TreeSet[T] {
	s := NewTreeSet[T]()
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

func (s *TreeSet[T]) Len() int {
	return s.tree.Len()
}

func (s *TreeSet[T]) IsEmpty() bool {
	return s.tree.Len() == 0
}

func (s *TreeSet[T]) Clear() {
	s.tree.Clear(false)
}

func (s *TreeSet[T]) Contains(item T) bool {
	return s.tree.Has(item)
}

func (s *TreeSet[T]) Insert(item T) (added bool) {
	_, replaced := s.tree.ReplaceOrInsert(item)
	return !replaced
}

func (s *TreeSet[T]) Remove(item T) bool {
	_, removed := s.tree.Delete(item)
	return removed
}

func (s *TreeSet[T]) Each(f container.ItemVisitor[T]) bool {
	completed := true
	s.tree.Ascend(func(item T) bool {
		if !f(item) {
			completed = false
			return false
		}
		return true
	})
	return completed
}

func (s *TreeSet[T]) Items() []T {
	items := make([]T, 0, s.tree.Len())
	s.tree.Ascend(func(item T) bool {
		items = append(items, item)
		return true
	})
	return items
}

func (s *TreeSet[T]) IsDisjoint(other container.Set[T]) bool {
	return container.IsDisjoint[T](s, other)
}

func (s *TreeSet[T]) IsSubset(other container.Set[T]) bool {
	return container.IsSubset[T](s, other)
}

func (s *TreeSet[T]) IsSuperset(other container.Set[T]) bool {
	return container.IsSuperset[T](s, other)
}

func (s *TreeSet[T]) Difference(other container.Set[T], f container.ItemVisitor[T]) bool {
	return container.Difference[T](s, other, f)
}

func (s *TreeSet[T]) SymmetricDifference(other container.Set[T], f container.ItemVisitor[T]) bool {
	return container.SymmetricDifference[T](s, other, f)
}

func (s *TreeSet[T]) Intersection(other container.Set[T], f container.ItemVisitor[T]) bool {
	return container.Intersection[T](s, other, f)
}

func (s *TreeSet[T]) Union(other container.Set[T], f container.ItemVisitor[T]) bool {
	return container.Union[T](s, other, f)
}
