package containertest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/collections/containertest"
	"github.com/denismitr/collections/hashmap"
	"github.com/denismitr/collections/set"
)

func TestVerifyMap_RejectsBadFixtures(t *testing.T) {
	t.Run("equal keys", func(t *testing.T) {
		err := containertest.VerifyMap(hashmap.New[string, int](), "foo", "foo", 1, 2)
		assert.Error(t, err)
	})

	t.Run("equal values", func(t *testing.T) {
		err := containertest.VerifyMap(hashmap.New[string, int](), "foo", "bar", 1, 1)
		assert.Error(t, err)
	})

	t.Run("non empty map", func(t *testing.T) {
		hm := hashmap.New[string, int]()
		hm.Insert("leftover", 0)

		err := containertest.VerifyMap(hm, "foo", "bar", 1, 2)
		assert.Error(t, err)
	})
}

func TestVerifySet_RejectsBadFixtures(t *testing.T) {
	err := containertest.VerifySet(set.NewHashSet[int](), set.NewHashSet[int](), 1, 1, 3, 4)
	assert.Error(t, err)
}

func TestVerify_LeavesFixturesEmpty(t *testing.T) {
	hm := hashmap.New[string, int]()
	require.NoError(t, containertest.VerifyMap(hm, "foo", "bar", 1, 2))
	assert.True(t, hm.IsEmpty())

	a := set.NewHashSet[string]()
	b := set.NewOrderedSet[string]()
	require.NoError(t, containertest.VerifySet[string](a, b, "a", "b", "c", "d"))
	assert.True(t, a.IsEmpty())
	assert.True(t, b.IsEmpty())
}
