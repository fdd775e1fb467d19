package chainmap

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTable[K comparable, V any](t *testing.T, size int, opts ...Option[K, V]) *table[K, V] {
	t.Helper()

	var tt table[K, V]
	require.NoError(t, tt.init(size, opts...))

	return &tt
}

// Every key lands in bucket 0.
func collisionHash[K comparable](K) uint64 {
	return 0
}

func TestTable_init(t *testing.T) {
	var tt table[uint64, struct{}]

	require.NoError(t, tt.init(4096))

	require.Len(t, tt.buckets, 4096)
	require.Equal(t, 4096, tt.Size())
	require.Zero(t, tt.Len())
	require.NotNil(t, tt.hashFunc)
}

func TestTable_init_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1, -4096} {
		var tt table[int, int]

		err := tt.init(size)
		require.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestTable_set(t *testing.T) {
	tt := newTable[string, string](t, 16)

	require.True(t, tt.set("foo", "foo"))

	v, ok := tt.get("foo")
	require.True(t, ok)
	require.Equal(t, "foo", v)

	require.False(t, tt.set("foo", "bar"))
	require.Equal(t, 1, tt.Len())

	v, ok = tt.get("foo")
	require.True(t, ok)
	require.Equal(t, "bar", v)
}

func TestTable_set_Collisions(t *testing.T) {
	tt := newTable(t, 16, WithHashFunc[string, string](collisionHash[string]))

	require.True(t, tt.set("A", "foo"))
	require.True(t, tt.set("B", "bar"))
	require.True(t, tt.set("C", "lol"))

	// Chains keep insertion order.
	require.Equal(t, []entry[string, string]{
		{"A", "foo"},
		{"B", "bar"},
		{"C", "lol"},
	}, tt.buckets[0].entries)

	// Update in place, no new entry.
	require.False(t, tt.set("B", "baz"))
	require.Equal(t, 3, tt.buckets[0].len())
	require.Equal(t, "baz", tt.buckets[0].entries[1].value)
}

func TestTable_delete_KeepsChainOrder(t *testing.T) {
	tt := newTable(t, 16, WithHashFunc[string, string](collisionHash[string]))

	tt.set("A", "foo")
	tt.set("B", "bar")
	tt.set("C", "lol")

	v, ok := tt.delete("B")
	require.True(t, ok)
	require.Equal(t, "bar", v)
	require.Equal(t, 2, tt.Len())

	require.Equal(t, []entry[string, string]{
		{"A", "foo"},
		{"C", "lol"},
	}, tt.buckets[0].entries)

	v, ok = tt.get("C")
	require.True(t, ok, "could not find 'C' after deleting 'B'")
	require.Equal(t, "lol", v)
}

func TestTable_delete_Miss(t *testing.T) {
	tt := newTable[int, int](t, 8)

	for i := range 20 {
		tt.set(i, i)
	}

	before := tt.distribution()

	_, ok := tt.delete(100)
	require.False(t, ok)
	require.Equal(t, 20, tt.Len())
	require.Equal(t, before, tt.distribution())
}

func TestTable_delete_Random(t *testing.T) {
	tt := newTable[int, int](t, 4)

	for i := range 10 {
		require.True(t, tt.set(i, i*100))
	}

	keys := make([]int, 0, 5)

	for len(keys) < 5 {
		idx := rand.Intn(10)

		if _, ok := tt.delete(idx); ok {
			keys = append(keys, idx)
		}
	}

	for idx := range 10 {
		if slices.Contains(keys, idx) {
			continue
		}

		val, ok := tt.get(idx)
		require.True(t, ok)
		require.Equal(t, idx*100, val)
	}

	for _, key := range keys {
		_, ok := tt.get(key)
		require.False(t, ok)
	}
}

func TestTable_hashIndex(t *testing.T) {
	tt := newTable[string, int](t, 7)

	for _, key := range []string{"", "foo", "bar", "key42"} {
		idx := tt.hashIndex(key)

		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 7)
		assert.Equal(t, idx, tt.hashIndex(key))
	}
}

func TestTable_distribution(t *testing.T) {
	tt := newTable(t, 4, WithHashFunc[int, int](func(k int) uint64 {
		return uint64(k)
	}))

	for i := range 10 {
		tt.set(i, i)
	}

	require.Equal(t, []int{3, 3, 2, 2}, tt.distribution())

	// Callers get a copy.
	dist := tt.distribution()
	dist[0] = 100
	require.Equal(t, 3, tt.distribution()[0])
}

func TestTable_Reset(t *testing.T) {
	tt := newTable[int, int](t, 4)

	for i := range 10 {
		tt.set(i, i)
	}

	tt.Reset()

	require.Zero(t, tt.Len())
	require.Equal(t, 4, tt.Size())
	require.Equal(t, []int{0, 0, 0, 0}, tt.distribution())

	_, ok := tt.get(0)
	require.False(t, ok)
}

func TestTable_Stats(t *testing.T) {
	tt := newTable(t, 4, WithHashFunc[int, int](func(k int) uint64 {
		return uint64(k % 2)
	}))

	stats := tt.Stats()
	assert.Equal(t, Stats{Size: 4, EmptyBuckets: 4}, stats)

	for i := range 6 {
		tt.set(i, i)
	}

	stats = tt.Stats()
	assert.Equal(t, 4, stats.Size)
	assert.Equal(t, 6, stats.Count)
	assert.Equal(t, 1.5, stats.LoadFactor)
	assert.Equal(t, 2, stats.EmptyBuckets)
	assert.Equal(t, 3, stats.LongestChain)
}
