// Package containertest verifies that a container.Map or container.Set
// implementation honors the capability contracts. It is used by this
// module's own tests and is exported so third-party implementations
// can check themselves the same way.
package containertest

import (
	"github.com/pkg/errors"

	"github.com/denismitr/collections/container"
)

// VerifyMap runs the associative storage contract against m, which must
// arrive empty. k1 and k2 must differ, as must v1 and v2. The map is
// left empty on success. The first violated property is reported as an
// error.
func VerifyMap[K, V comparable](m container.Map[K, V], k1, k2 K, v1, v2 V) error {
	if k1 == k2 {
		return errors.New("containertest: k1 and k2 must differ")
	}
	if v1 == v2 {
		return errors.New("containertest: v1 and v2 must differ")
	}
	if !m.IsEmpty() || m.Len() != 0 {
		return errors.Errorf("map must start empty, got len %d", m.Len())
	}

	if err := verifyMapLookups(m, k1, k2, v1, v2); err != nil {
		return err
	}
	if err := verifyMapTraversal(m, k1, k2, v1, v2); err != nil {
		return err
	}
	return verifyMapRemoval(m, k1, k2, v1, v2)
}

func verifyMapLookups[K, V comparable](m container.Map[K, V], k1, k2 K, v1, v2 V) error {
	if m.ContainsKey(k1) {
		return errors.New("empty map claims to contain a key")
	}
	if _, found := m.Find(k1); found {
		return errors.New("Find on an empty map reported presence")
	}

	if !m.Insert(k1, v1) {
		return errors.New("first Insert of a fresh key must return true")
	}
	if m.Len() != 1 || m.IsEmpty() {
		return errors.Errorf("after one Insert: len %d, empty %v", m.Len(), m.IsEmpty())
	}
	if !m.ContainsKey(k1) {
		return errors.New("ContainsKey is false for an inserted key")
	}
	if got, found := m.Find(k1); !found || got != v1 {
		return errors.Errorf("Find after Insert: got (%v, %v), want (%v, true)", got, found, v1)
	}

	if m.Insert(k1, v2) {
		return errors.New("Insert over an existing key must return false")
	}
	if m.Len() != 1 {
		return errors.Errorf("replacing Insert changed len to %d", m.Len())
	}
	if got, _ := m.Find(k1); got != v2 {
		return errors.Errorf("replacing Insert kept the old value %v", got)
	}

	prev, had := m.Swap(k1, v1)
	if !had || prev != v2 {
		return errors.Errorf("Swap over an existing key: got (%v, %v), want (%v, true)", prev, had, v2)
	}
	if _, had := m.Swap(k2, v2); had {
		return errors.New("Swap of an absent key reported a previous value")
	}
	if m.Len() != 2 {
		return errors.Errorf("Swap of an absent key must insert it, len %d", m.Len())
	}

	p, found := m.FindMut(k1)
	if !found || p == nil {
		return errors.New("FindMut did not return a pointer for a present key")
	}
	*p = v2
	if got, _ := m.Find(k1); got != v2 {
		return errors.Errorf("mutation through FindMut was lost, got %v", got)
	}
	if p, found := m.FindMut(k2); !found || *p != v2 {
		return errors.New("FindMut disagrees with Find for a present key")
	}

	return nil
}

func verifyMapTraversal[K, V comparable](m container.Map[K, V], k1, k2 K, v1, v2 V) error {
	// both keys hold v2 at this point
	visited := 0
	completed := m.Each(func(K, V) bool {
		visited++
		return true
	})
	if !completed {
		return errors.New("uninterrupted Each must report completion")
	}
	if visited != m.Len() {
		return errors.Errorf("Each visited %d of %d pairs", visited, m.Len())
	}

	visited = 0
	completed = m.Each(func(K, V) bool {
		visited++
		return false
	})
	if completed || visited != 1 {
		return errors.Errorf(
			"short-circuited Each: visited %d, completed %v; want 1, false", visited, completed,
		)
	}

	var first, second []K
	m.EachKey(func(key K) bool {
		first = append(first, key)
		return true
	})
	m.EachKey(func(key K) bool {
		second = append(second, key)
		return true
	})
	if len(first) != len(second) {
		return errors.New("repeated EachKey traversals disagree on length")
	}
	for i := range first {
		if first[i] != second[i] {
			return errors.Errorf("traversal order is not stable at position %d", i)
		}
	}

	values := 0
	if completed := m.EachValue(func(value V) bool {
		if value != v2 {
			return false
		}
		values++
		return true
	}); !completed || values != m.Len() {
		return errors.New("EachValue did not visit every value")
	}

	if completed := m.MutateValues(func(_ K, value *V) bool {
		*value = v1
		return true
	}); !completed {
		return errors.New("uninterrupted MutateValues must report completion")
	}
	ok := true
	m.EachValue(func(value V) bool {
		ok = ok && value == v1
		return true
	})
	if !ok {
		return errors.New("mutation through MutateValues was lost")
	}

	return nil
}

func verifyMapRemoval[K, V comparable](m container.Map[K, V], k1, k2 K, v1, v2 V) error {
	// both keys hold v1 at this point
	if !m.Remove(k1) {
		return errors.New("Remove of a present key must return true")
	}
	if m.Remove(k1) {
		return errors.New("second Remove of the same key must return false")
	}
	if m.ContainsKey(k1) {
		return errors.New("key still present after Remove")
	}

	got, found := m.Pop(k2)
	if !found || got != v1 {
		return errors.Errorf("Pop of a present key: got (%v, %v), want (%v, true)", got, found, v1)
	}
	if _, found := m.Pop(k2); found {
		return errors.New("Pop of an absent key reported a value")
	}

	m.Insert(k1, v1)
	m.Clear()
	if m.Len() != 0 || !m.IsEmpty() {
		return errors.Errorf("after Clear: len %d, empty %v", m.Len(), m.IsEmpty())
	}
	return nil
}
