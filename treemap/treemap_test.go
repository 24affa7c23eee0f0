package treemap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/collections/containertest"
	"github.com/denismitr/collections/treemap"
)

func TestTreeMap_Conformance(t *testing.T) {
	t.Run("naturally ordered keys", func(t *testing.T) {
		require.NoError(t, containertest.VerifyMap(treemap.New[string, int](), "foo", "bar", 1, 2))
	})

	t.Run("comparator ordered keys", func(t *testing.T) {
		tm := treemap.NewWith[int, string](func(a, b int) int { return b - a })
		require.NoError(t, containertest.VerifyMap(tm, 1, 2, "a", "b"))
	})
}

func TestTreeMap_AscendingOrder(t *testing.T) {
	t.Run("traversal follows key order regardless of insertion", func(t *testing.T) {
		tm := treemap.New[string, int]()
		tm.Insert("charlie", 3)
		tm.Insert("alpha", 1)
		tm.Insert("bravo", 2)

		var keys []string
		completed := tm.EachKey(func(k string) bool {
			keys = append(keys, k)
			return true
		})

		assert.True(t, completed)
		assert.Equal(t, []string{"alpha", "bravo", "charlie"}, keys)
	})

	t.Run("order survives removals", func(t *testing.T) {
		tm := treemap.New[int, string]()
		for _, k := range []int{5, 3, 8, 1, 9} {
			tm.Insert(k, "")
		}

		require.True(t, tm.Remove(8))

		var keys []int
		tm.EachKey(func(k int) bool {
			keys = append(keys, k)
			return true
		})

		assert.Equal(t, []int{1, 3, 5, 9}, keys)
	})

	t.Run("custom comparator reverses the order", func(t *testing.T) {
		tm := treemap.NewWith[int, string](func(a, b int) int { return b - a })
		tm.Insert(1, "a")
		tm.Insert(3, "c")
		tm.Insert(2, "b")

		var keys []int
		tm.EachKey(func(k int) bool {
			keys = append(keys, k)
			return true
		})

		assert.Equal(t, []int{3, 2, 1}, keys)
	})
}

func TestTreeMap_MutateValues(t *testing.T) {
	tm := treemap.New[string, int]()
	tm.Insert("a", 1)
	tm.Insert("b", 2)

	completed := tm.MutateValues(func(_ string, v *int) bool {
		*v++
		return true
	})
	require.True(t, completed)

	a, _ := tm.Find("a")
	b, _ := tm.Find("b")
	assert.Equal(t, 2, a)
	assert.Equal(t, 3, b)
}

func TestTreeMap_EarlyTermination(t *testing.T) {
	tm := treemap.New[int, int]()
	for i := 0; i < 10; i++ {
		tm.Insert(i, i*i)
	}

	visited := 0
	completed := tm.Each(func(k, v int) bool {
		visited++
		return k < 3
	})

	assert.False(t, completed)
	assert.Equal(t, 4, visited)
}
