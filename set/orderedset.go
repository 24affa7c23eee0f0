package set

import (
	"github.com/denismitr/dll"

	"github.com/denismitr/collections/container"
)

// OrderedSet - a set that traverses its members in insertion order.
type OrderedSet[T comparable] struct {
	m    map[T]*dll.Element[T]
	list *dll.DoublyLinkedList[T]
}

var _ container.Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T comparable]() *OrderedSet[T] {
	return &OrderedSet[T]{
		m:    make(map[T]*dll.Element[T]),
		list: dll.New[T](),
	}
}

func NewOrderedSetFromSlice[T comparable](items []T) *OrderedSet[T] {
	s := NewOrderedSet[T]()
	for _, item := range items {
		s.Insert(item)
	}
	return s
}

func (s *OrderedSet[T]) Len() int {
	return len(s.m)
}

func (s *OrderedSet[T]) IsEmpty() bool {
	return len(s.m) == 0
}

func (s *OrderedSet[T]) Clear() {
	s.m = make(map[T]*dll.Element[T])
	s.list = dll.New[T]()
}

func (s *OrderedSet[T]) Contains(item T) bool {
	_, found := s.m[item]
	return found
}

func (s *OrderedSet[T]) Insert(item T) (added bool) {
	if _, found := s.m[item]; found {
		return false
	}

	newEl := dll.NewElement(item)
	s.m[item] = newEl
	s.list.PushTail(newEl)
	return true
}

func (s *OrderedSet[T]) Remove(item T) bool {
	el, found := s.m[item]
	if !found {
		return false
	}

	delete(s.m, item)
	s.list.Remove(el)
	return true
}

func (s *OrderedSet[T]) Each(f container.ItemVisitor[T]) bool {
	curr := s.list.Head()
	for curr != nil {
		if !f(curr.Value()) {
			return false
		}
		curr = curr.Next()
	}
	return true
}

func (s *OrderedSet[T]) Items() []T {
	items := make([]T, 0, len(s.m))
	curr := s.list.Head()
	for curr != nil {
		items = append(items, curr.Value())
		curr = curr.Next()
	}
	return items
}

func (s *OrderedSet[T]) IsDisjoint(other container.Set[T]) bool {
	return container.IsDisjoint[T](s, other)
}

func (s *OrderedSet[T]) IsSubset(other container.Set[T]) bool {
	return container.IsSubset[T](s, other)
}

func (s *OrderedSet[T]) IsSuperset(other container.Set[T]) bool {
	return container.IsSuperset[T](s, other)
}

func (s *OrderedSet[T]) Difference(other container.Set[T], f container.ItemVisitor[T]) bool {
	return container.Difference[T](s, other, f)
}

func (s *OrderedSet[T]) SymmetricDifference(other container.Set[T], f container.ItemVisitor[T]) bool {
	return container.SymmetricDifference[T](s, other, f)
}

func (s *OrderedSet[T]) Intersection(other container.Set[T], f container.ItemVisitor[T]) bool {
	return container.Intersection[T](s, other, f)
}

func (s *OrderedSet[T]) Union(other container.Set[T], f container.ItemVisitor[T]) bool {
	return container.Union[T](s, other, f)
}
