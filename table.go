package chainmap

import (
	"fmt"
)

// Bucket count used by NewDefault.
const DefaultSize = 10

type table[K comparable, V any] struct {
	buckets []bucket[K, V]

	// Fixed at init, never changes afterwards.
	size  int
	count int

	hashFunc HashFunc[K]

	emptyV V
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

func (t *table[K, V]) init(size int, opts ...Option[K, V]) error {
	if size <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}

	t.buckets = make([]bucket[K, V], size)
	t.size = size
	t.count = 0

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](defaultSeed)
	}

	return nil
}

func (t *table[K, V]) hashIndex(key K) int {
	return BucketIndex(t.hashFunc(key), t.size)
}

func (t *table[K, V]) get(key K) (V, bool) {
	b := &t.buckets[t.hashIndex(key)]

	if i := b.lookup(key); i >= 0 {
		return b.entries[i].value, true
	}

	return t.emptyV, false
}

// Puts a key in the table or replaces the value of an existing one.
// Returns whether the key is new.
func (t *table[K, V]) set(key K, value V) bool {
	b := &t.buckets[t.hashIndex(key)]

	if i := b.lookup(key); i >= 0 {
		b.entries[i].value = value
		return false
	}

	b.append(key, value)
	t.count++

	return true
}

func (t *table[K, V]) delete(key K) (V, bool) {
	b := &t.buckets[t.hashIndex(key)]

	i := b.lookup(key)
	if i < 0 {
		return t.emptyV, false
	}

	e := b.removeAt(i)
	t.count--

	return e.value, true
}

func (t *table[K, V]) distribution() []int {
	dist := make([]int, t.size)
	for i := range t.buckets {
		dist[i] = t.buckets[i].len()
	}

	return dist
}

func (t *table[K, V]) loadFactor() float64 {
	return float64(t.count) / float64(t.size)
}

func (t *table[K, V]) Size() int {
	return t.size
}

func (t *table[K, V]) Len() int {
	return t.count
}

func (t *table[K, V]) Reset() {
	for i := range t.buckets {
		clear(t.buckets[i].entries)
		t.buckets[i].entries = t.buckets[i].entries[:0]
	}

	t.count = 0
}

func (t *table[K, V]) Stats() Stats {
	s := Stats{
		Size:       t.size,
		Count:      t.count,
		LoadFactor: t.loadFactor(),
	}

	for i := range t.buckets {
		n := t.buckets[i].len()
		if n == 0 {
			s.EmptyBuckets++
		}

		s.LongestChain = max(s.LongestChain, n)
	}

	return s
}
