// Package orderedmap provides a container.Map that remembers insertion
// order. Traversal always runs from the oldest key to the newest;
// replacing the value of an existing key keeps its position.
package orderedmap

import (
	"context"

	"github.com/denismitr/dll"

	"github.com/denismitr/collections/container"
	"github.com/denismitr/collections/utils"
)

type (
	OrderedMap[K comparable, V any] struct {
		m    map[K]*dll.Element[utils.Pair[K, *V]]
		list *dll.DoublyLinkedList[utils.Pair[K, *V]]
	}

	// LessKeyFn compares two keys for SortKeys.
	LessKeyFn[K comparable] func(a, b K) (less bool)
)

var _ container.Map[string, int] = (*OrderedMap[string, int])(nil)

func New[K comparable, V any]() *OrderedMap[K, V] {
	return &OrderedMap[K, V]{
		m:    make(map[K]*dll.Element[utils.Pair[K, *V]]),
		list: dll.New[utils.Pair[K, *V]](),
	}
}

func (om *OrderedMap[K, V]) Len() int {
	return len(om.m)
}

func (om *OrderedMap[K, V]) IsEmpty() bool {
	return len(om.m) == 0
}

func (om *OrderedMap[K, V]) Clear() {
	om.m = make(map[K]*dll.Element[utils.Pair[K, *V]])
	om.list = dll.New[utils.Pair[K, *V]]()
}

func (om *OrderedMap[K, V]) ContainsKey(key K) bool {
	_, found := om.m[key]
	return found
}

func (om *OrderedMap[K, V]) Find(key K) (V, bool) {
	el, found := om.m[key]
	if !found {
		return utils.GetZero[V](), false
	}
	return *el.Value().Value, true
}

func (om *OrderedMap[K, V]) FindMut(key K) (*V, bool) {
	el, found := om.m[key]
	if !found {
		return nil, false
	}
	return el.Value().Value, true
}

func (om *OrderedMap[K, V]) Insert(key K, value V) (added bool) {
	if el, found := om.m[key]; found {
		*el.Value().Value = value
		return false
	}

	om.push(key, value)
	return true
}

func (om *OrderedMap[K, V]) Swap(key K, value V) (V, bool) {
	if el, found := om.m[key]; found {
		p := el.Value().Value
		prev := *p
		*p = value
		return prev, true
	}

	om.push(key, value)
	return utils.GetZero[V](), false
}

func (om *OrderedMap[K, V]) Remove(key K) bool {
	el, found := om.m[key]
	if !found {
		return false
	}

	delete(om.m, key)
	om.list.Remove(el)
	return true
}

func (om *OrderedMap[K, V]) Pop(key K) (V, bool) {
	el, found := om.m[key]
	if !found {
		return utils.GetZero[V](), false
	}

	v := *el.Value().Value
	delete(om.m, key)
	om.list.Remove(el)
	return v, true
}

func (om *OrderedMap[K, V]) Each(f container.PairVisitor[K, V]) bool {
	curr := om.list.Head()
	for curr != nil {
		pair := curr.Value()
		if !f(pair.Key, *pair.Value) {
			return false
		}
		curr = curr.Next()
	}
	return true
}

func (om *OrderedMap[K, V]) EachKey(f container.KeyVisitor[K]) bool {
	return om.Each(func(key K, _ V) bool {
		return f(key)
	})
}

func (om *OrderedMap[K, V]) EachValue(f container.ValueVisitor[V]) bool {
	return om.Each(func(_ K, value V) bool {
		return f(value)
	})
}

func (om *OrderedMap[K, V]) MutateValues(f container.MutVisitor[K, V]) bool {
	curr := om.list.Head()
	for curr != nil {
		pair := curr.Value()
		if !f(pair.Key, pair.Value) {
			return false
		}
		curr = curr.Next()
	}
	return true
}

// Pairs streams the map contents in insertion order until the map is
// exhausted or ctx is cancelled. The map must not be mutated while the
// channel is open.
func (om *OrderedMap[K, V]) Pairs(ctx context.Context) <-chan utils.Pair[K, V] {
	resultCh := make(chan utils.Pair[K, V])

	go func() {
		defer close(resultCh)

		curr := om.list.Head()
		for curr != nil {
			if ctx.Err() != nil {
				return
			}

			pair := curr.Value()
			resultCh <- utils.Pair[K, V]{Key: pair.Key, Value: *pair.Value}
			curr = curr.Next()
		}
	}()

	return resultCh
}

func (om *OrderedMap[K, V]) Clone() *OrderedMap[K, V] {
	result := New[K, V]()

	curr := om.list.Head()
	for curr != nil {
		pair := curr.Value()
		result.Insert(pair.Key, *pair.Value)
		curr = curr.Next()
	}

	return result
}

// SortKeys - reorders the map in place so that traversal follows lessFn
// over the keys instead of insertion order
func (om *OrderedMap[K, V]) SortKeys(lessFn LessKeyFn[K]) *OrderedMap[K, V] {
	om.list.Sort(dll.LessFn[utils.Pair[K, *V]](func(a, b utils.Pair[K, *V]) bool {
		return lessFn(a.Key, b.Key)
	}))
	return om
}

func (om *OrderedMap[K, V]) push(key K, value V) {
	v := value
	newEl := dll.NewElement(utils.Pair[K, *V]{Key: key, Value: &v})
	om.m[key] = newEl
	om.list.PushTail(newEl)
}
