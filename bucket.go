package chainmap

type entry[K comparable, V any] struct {
	key   K
	value V
}

// bucket is a chain of entries in insertion order.
// Keys are unique within a bucket, and the table guarantees that a key
// can only ever land in one bucket, so keys are unique table-wide.
type bucket[K comparable, V any] struct {
	entries []entry[K, V]
}

// lookup returns the position of the key in the chain, or -1.
func (b *bucket[K, V]) lookup(key K) int {
	for i := range b.entries {
		if b.entries[i].key == key {
			return i
		}
	}

	return -1
}

func (b *bucket[K, V]) append(key K, value V) {
	b.entries = append(b.entries, entry[K, V]{key: key, value: value})
}

// removeAt drops the entry at i, keeping the order of the rest.
func (b *bucket[K, V]) removeAt(i int) entry[K, V] {
	e := b.entries[i]

	copy(b.entries[i:], b.entries[i+1:])

	// Clear the vacated tail slot so the GC can reclaim key and value.
	b.entries[len(b.entries)-1] = entry[K, V]{}
	b.entries = b.entries[:len(b.entries)-1]

	return e
}

func (b *bucket[K, V]) len() int {
	return len(b.entries)
}
