// Package maputils holds generic algorithms written purely against the
// container.Map capability, so they work with any conformant map
// implementation.
package maputils

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/denismitr/collections/container"
	"github.com/denismitr/collections/utils"
)

type (
	ValueTransformer[K comparable, V any] func(K, V) V

	// Predicate allows to filter key value pairs
	Predicate[K comparable, V any] func(K, V) bool

	// Reducer takes a carry from the previous iteration plus a key and
	// a value and returns the new version of the carry
	Reducer[K comparable, V, R any] func(carry R, k K, v V) R
)

// Keys collects the map keys in traversal order.
func Keys[K comparable, V any](m container.Map[K, V]) []K {
	keys := make([]K, 0, m.Len())
	m.EachKey(func(key K) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Values collects the map values in traversal order.
func Values[K comparable, V any](m container.Map[K, V]) []V {
	values := make([]V, 0, m.Len())
	m.EachValue(func(value V) bool {
		values = append(values, value)
		return true
	})
	return values
}

// SortedKeys collects the map keys in ascending natural order,
// regardless of the map's own traversal order.
func SortedKeys[K constraints.Ordered, V any](m container.Map[K, V]) []K {
	keys := Keys(m)
	slices.Sort(keys)
	return keys
}

// Pairs collects the map contents in traversal order.
func Pairs[K comparable, V any](m container.Map[K, V]) []utils.Pair[K, V] {
	pairs := make([]utils.Pair[K, V], 0, m.Len())
	m.Each(func(key K, value V) bool {
		pairs = append(pairs, utils.Pair[K, V]{Key: key, Value: value})
		return true
	})
	return pairs
}

// Filter copies the pairs satisfying pred from src into dst and
// returns dst.
func Filter[K comparable, V any, M container.Map[K, V]](
	src container.Map[K, V],
	dst M,
	pred Predicate[K, V],
) M {
	src.Each(func(key K, value V) bool {
		if pred(key, value) {
			dst.Insert(key, value)
		}
		return true
	})
	return dst
}

// Transform rewrites every value of m in place by applying vt to each
// key value pair.
func Transform[K comparable, V any](m container.Map[K, V], vt ValueTransformer[K, V]) {
	m.MutateValues(func(key K, value *V) bool {
		*value = vt(key, *value)
		return true
	})
}

// Reduce folds the map into a single value in traversal order.
func Reduce[K comparable, V, R any](m container.Map[K, V], reducer Reducer[K, V, R]) R {
	var carry R
	m.Each(func(key K, value V) bool {
		carry = reducer(carry, key, value)
		return true
	})
	return carry
}

// FromNative copies a builtin map into dst and returns dst.
func FromNative[K comparable, V any, M container.Map[K, V]](in map[K]V, dst M) M {
	for k, v := range in {
		dst.Insert(k, v)
	}
	return dst
}

// ToNative copies the map contents into a builtin map.
func ToNative[K comparable, V any](m container.Map[K, V]) map[K]V {
	out := make(map[K]V, m.Len())
	m.Each(func(key K, value V) bool {
		out[key] = value
		return true
	})
	return out
}
