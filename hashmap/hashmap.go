// Package hashmap provides a hash-table backed container.Map built on
// the builtin map. Go randomizes builtin map range order on every
// traversal, so the map keeps an entry journal on the side and
// traverses through it; the order is not meaningful (removals reorder
// it) but it is stable between mutations, as the Map contract requires.
package hashmap

import (
	"github.com/denismitr/collections/container"
	"github.com/denismitr/collections/utils"
)

type entry[K comparable, V any] struct {
	key   K
	value V
	pos   int
}

// HashMap - an unordered map with stable traversal between mutations
type HashMap[K comparable, V any] struct {
	m       map[K]*entry[K, V]
	journal []*entry[K, V]
}

var _ container.Map[string, int] = (*HashMap[string, int])(nil)

func New[K comparable, V any]() *HashMap[K, V] {
	return &HashMap[K, V]{
		m: make(map[K]*entry[K, V]),
	}
}

// FromNative copies the contents of a builtin map into a new HashMap.
func FromNative[K comparable, V any](in map[K]V) *HashMap[K, V] {
	hm := New[K, V]()
	for k, v := range in {
		hm.Insert(k, v)
	}
	return hm
}

func (hm *HashMap[K, V]) Len() int {
	return len(hm.m)
}

func (hm *HashMap[K, V]) IsEmpty() bool {
	return len(hm.m) == 0
}

func (hm *HashMap[K, V]) Clear() {
	hm.m = make(map[K]*entry[K, V])
	hm.journal = nil
}

func (hm *HashMap[K, V]) ContainsKey(key K) bool {
	_, found := hm.m[key]
	return found
}

func (hm *HashMap[K, V]) Find(key K) (V, bool) {
	e, found := hm.m[key]
	if !found {
		return utils.GetZero[V](), false
	}
	return e.value, true
}

func (hm *HashMap[K, V]) FindMut(key K) (*V, bool) {
	e, found := hm.m[key]
	if !found {
		return nil, false
	}
	return &e.value, true
}

func (hm *HashMap[K, V]) Insert(key K, value V) (added bool) {
	if e, found := hm.m[key]; found {
		e.value = value
		return false
	}

	hm.append(key, value)
	return true
}

func (hm *HashMap[K, V]) Swap(key K, value V) (V, bool) {
	if e, found := hm.m[key]; found {
		prev := e.value
		e.value = value
		return prev, true
	}

	hm.append(key, value)
	return utils.GetZero[V](), false
}

func (hm *HashMap[K, V]) Remove(key K) bool {
	e, found := hm.m[key]
	if !found {
		return false
	}

	hm.drop(e)
	return true
}

func (hm *HashMap[K, V]) Pop(key K) (V, bool) {
	e, found := hm.m[key]
	if !found {
		return utils.GetZero[V](), false
	}

	v := e.value
	hm.drop(e)
	return v, true
}

func (hm *HashMap[K, V]) Each(f container.PairVisitor[K, V]) bool {
	for _, e := range hm.journal {
		if !f(e.key, e.value) {
			return false
		}
	}
	return true
}

func (hm *HashMap[K, V]) EachKey(f container.KeyVisitor[K]) bool {
	return hm.Each(func(key K, _ V) bool {
		return f(key)
	})
}

func (hm *HashMap[K, V]) EachValue(f container.ValueVisitor[V]) bool {
	return hm.Each(func(_ K, value V) bool {
		return f(value)
	})
}

func (hm *HashMap[K, V]) MutateValues(f container.MutVisitor[K, V]) bool {
	for _, e := range hm.journal {
		if !f(e.key, &e.value) {
			return false
		}
	}
	return true
}

func (hm *HashMap[K, V]) append(key K, value V) {
	e := &entry[K, V]{key: key, value: value, pos: len(hm.journal)}
	hm.m[key] = e
	hm.journal = append(hm.journal, e)
}

// drop removes an entry in O(1) by swapping the journal tail into its
// slot; traversal order is unspecified, so the reshuffle is fine.
func (hm *HashMap[K, V]) drop(e *entry[K, V]) {
	last := len(hm.journal) - 1
	tail := hm.journal[last]
	hm.journal[e.pos] = tail
	tail.pos = e.pos
	hm.journal[last] = nil
	hm.journal = hm.journal[:last]
	delete(hm.m, e.key)
}
