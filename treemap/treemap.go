// Package treemap provides a container.Map backed by a red-black tree.
// Traversal visits keys in ascending comparator order, so two unmutated
// traversals always agree and the order survives removals.
package treemap

import (
	"github.com/emirpasic/gods/trees/redblacktree"
	"golang.org/x/exp/constraints"

	"github.com/denismitr/collections/container"
	"github.com/denismitr/collections/utils"
)

type (
	// ComparatorFn imposes a total order on keys: negative when a < b,
	// zero when equal, positive when a > b.
	ComparatorFn[K comparable] func(a, b K) int

	TreeMap[K comparable, V any] struct {
		tree *redblacktree.Tree
	}
)

var _ container.Map[string, int] = (*TreeMap[string, int])(nil)

// New creates a TreeMap ordered by the natural order of its keys.
func New[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return NewWith[K, V](func(a, b K) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		default:
			return 0
		}
	})
}

// NewWith creates a TreeMap ordered by a caller supplied comparator.
func NewWith[K comparable, V any](cmp ComparatorFn[K]) *TreeMap[K, V] {
	return &TreeMap[K, V]{
		tree: redblacktree.NewWith(func(a, b interface{}) int {
			return cmp(a.(K), b.(K))
		}),
	}
}

func (tm *TreeMap[K, V]) Len() int {
	return tm.tree.Size()
}

func (tm *TreeMap[K, V]) IsEmpty() bool {
	return tm.tree.Empty()
}

func (tm *TreeMap[K, V]) Clear() {
	tm.tree.Clear()
}

func (tm *TreeMap[K, V]) ContainsKey(key K) bool {
	_, found := tm.tree.Get(key)
	return found
}

func (tm *TreeMap[K, V]) Find(key K) (V, bool) {
	p, found := tm.find(key)
	if !found {
		return utils.GetZero[V](), false
	}
	return *p, true
}

func (tm *TreeMap[K, V]) FindMut(key K) (*V, bool) {
	return tm.find(key)
}

func (tm *TreeMap[K, V]) Insert(key K, value V) (added bool) {
	if p, found := tm.find(key); found {
		*p = value
		return false
	}

	v := value
	tm.tree.Put(key, &v)
	return true
}

func (tm *TreeMap[K, V]) Swap(key K, value V) (V, bool) {
	if p, found := tm.find(key); found {
		prev := *p
		*p = value
		return prev, true
	}

	v := value
	tm.tree.Put(key, &v)
	return utils.GetZero[V](), false
}

func (tm *TreeMap[K, V]) Remove(key K) bool {
	if _, found := tm.tree.Get(key); !found {
		return false
	}

	tm.tree.Remove(key)
	return true
}

func (tm *TreeMap[K, V]) Pop(key K) (V, bool) {
	p, found := tm.find(key)
	if !found {
		return utils.GetZero[V](), false
	}

	v := *p
	tm.tree.Remove(key)
	return v, true
}

func (tm *TreeMap[K, V]) Each(f container.PairVisitor[K, V]) bool {
	it := tm.tree.Iterator()
	for it.Next() {
		if !f(it.Key().(K), *it.Value().(*V)) {
			return false
		}
	}
	return true
}

func (tm *TreeMap[K, V]) EachKey(f container.KeyVisitor[K]) bool {
	return tm.Each(func(key K, _ V) bool {
		return f(key)
	})
}

func (tm *TreeMap[K, V]) EachValue(f container.ValueVisitor[V]) bool {
	return tm.Each(func(_ K, value V) bool {
		return f(value)
	})
}

func (tm *TreeMap[K, V]) MutateValues(f container.MutVisitor[K, V]) bool {
	it := tm.tree.Iterator()
	for it.Next() {
		if !f(it.Key().(K), it.Value().(*V)) {
			return false
		}
	}
	return true
}

func (tm *TreeMap[K, V]) find(key K) (*V, bool) {
	raw, found := tm.tree.Get(key)
	if !found {
		return nil, false
	}
	return raw.(*V), true
}
