package set_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/collections/containertest"
	"github.com/denismitr/collections/set"
)

func TestHashSet_Conformance(t *testing.T) {
	require.NoError(t, containertest.VerifySet(
		set.NewHashSet[string](), set.NewHashSet[string](), "a", "b", "c", "d",
	))
}

func TestHashSet_Membership(t *testing.T) {
	t.Run("insert reports new members only", func(t *testing.T) {
		s := set.NewHashSet[string]()

		assert.True(t, s.Insert("foo"))
		assert.False(t, s.Insert("foo"))
		assert.True(t, s.Insert("bar"))
		assert.Equal(t, 2, s.Len())
		assert.True(t, s.Contains("foo"))
		assert.False(t, s.Contains("baz"))
	})

	t.Run("remove reports prior presence", func(t *testing.T) {
		s := set.NewHashSetFromSlice([]string{"foo", "bar", "baz"})

		assert.True(t, s.Remove("bar"))
		assert.False(t, s.Remove("bar"))
		assert.False(t, s.Contains("bar"))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("clear empties the set", func(t *testing.T) {
		s := set.NewHashSetFromSlice([]int{1, 2, 3})
		s.Clear()

		assert.True(t, s.IsEmpty())
		assert.Equal(t, 0, s.Len())
		assert.False(t, s.Contains(1))
	})
}

func TestHashSet_Algebra(t *testing.T) {
	a := set.NewHashSetFromSlice([]int{1, 2, 3})
	b := set.NewHashSetFromSlice([]int{2, 3, 4})

	collect := func(visit func(f func(int) bool) bool) []int {
		var items []int
		completed := visit(func(item int) bool {
			items = append(items, item)
			return true
		})
		require.True(t, completed)
		return items
	}

	t.Run("intersection", func(t *testing.T) {
		got := collect(func(f func(int) bool) bool { return a.Intersection(b, f) })
		assert.ElementsMatch(t, []int{2, 3}, got)
	})

	t.Run("difference", func(t *testing.T) {
		got := collect(func(f func(int) bool) bool { return a.Difference(b, f) })
		assert.ElementsMatch(t, []int{1}, got)
	})

	t.Run("symmetric difference", func(t *testing.T) {
		got := collect(func(f func(int) bool) bool { return a.SymmetricDifference(b, f) })
		assert.ElementsMatch(t, []int{1, 4}, got)
	})

	t.Run("union visits each element once", func(t *testing.T) {
		got := collect(func(f func(int) bool) bool { return a.Union(b, f) })
		assert.ElementsMatch(t, []int{1, 2, 3, 4}, got)
	})

	t.Run("subset and disjoint predicates", func(t *testing.T) {
		assert.False(t, a.IsSubset(b))
		assert.True(t, a.IsSubset(a))
		assert.True(t, set.NewHashSetFromSlice([]int{2, 3}).IsSubset(a))
		assert.True(t, a.IsSuperset(set.NewHashSetFromSlice([]int{1})))
		assert.False(t, a.IsDisjoint(b))
		assert.True(t, a.IsDisjoint(set.NewHashSetFromSlice([]int{7, 8})))
	})

	t.Run("early termination is honored", func(t *testing.T) {
		visited := 0
		completed := a.Union(b, func(int) bool {
			visited++
			return false
		})

		assert.False(t, completed)
		assert.Equal(t, 1, visited)
	})
}

func TestHashSet_StableTraversal(t *testing.T) {
	s := set.NewHashSetFromSlice([]string{"a", "b", "c", "d", "e"})
	s.Remove("b")

	var first, second []string
	s.Each(func(item string) bool {
		first = append(first, item)
		return true
	})
	s.Each(func(item string) bool {
		second = append(second, item)
		return true
	})

	assert.Equal(t, first, second)
	assert.ElementsMatch(t, []string{"a", "c", "d", "e"}, s.Items())
}

// product types with derived equality work as set members
func TestHashSet_StructElements(t *testing.T) {
	type version struct {
		Major, Minor int
	}

	s := set.NewHashSet[version]()

	assert.True(t, s.Insert(version{1, 0}))
	assert.False(t, s.Insert(version{1, 0}))
	assert.True(t, s.Insert(version{1, 1}))

	assert.True(t, s.Contains(version{Major: 1, Minor: 0}))
	assert.False(t, s.Contains(version{Major: 2, Minor: 0}))
	assert.Equal(t, 2, s.Len())
}
