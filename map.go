package chainmap

import (
	"fmt"
	"iter"
	"strings"
)

// Table is a hash table resolving collisions by separate chaining.
// Every bucket is a chain of key-value pairs, scanned linearly.
//
// Table has a fixed number of buckets, chosen at construction. It never
// grows or rehashes: the load factor may rise above 1.0 and chains get
// longer instead. Keep that in mind when sizing it, growing the table is
// the caller's responsibility (build a larger one and move the entries).
//
// Table is not safe for concurrent use.
type Table[K comparable, V any] struct {
	table[K, V]
}

// Returns a new table with the given number of buckets.
// Fails with ErrInvalidSize if size is not positive.
func New[K comparable, V any](size int, opts ...Option[K, V]) (*Table[K, V], error) {
	var tm Table[K, V]
	if err := tm.init(size, opts...); err != nil {
		return nil, err
	}

	return &tm, nil
}

// Returns a new table with DefaultSize buckets.
func NewDefault[K comparable, V any](opts ...Option[K, V]) *Table[K, V] {
	tm, err := New[K, V](DefaultSize, opts...)
	if err != nil {
		panic(err)
	}

	return tm
}

// Inserts a key, or replaces the value if the key is already there.
// Len only grows for new keys.
func (tm *Table[K, V]) Insert(key K, value V) {
	tm.set(key, value)
}

// Returns the value stored for the key.
// Fails with ErrKeyNotFound if there is none.
func (tm *Table[K, V]) Search(key K) (V, error) {
	v, ok := tm.get(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return v, nil
}

// Removes the key and returns its value.
// Fails with ErrKeyNotFound if there is none, leaving the table untouched.
func (tm *Table[K, V]) Delete(key K) (V, error) {
	v, ok := tm.delete(key)
	if !ok {
		return v, fmt.Errorf("%w: %v", ErrKeyNotFound, key)
	}

	return v, nil
}

func (tm *Table[K, V]) Contains(key K) bool {
	_, ok := tm.get(key)
	return ok
}

// Returns the bucket the key maps to.
func (tm *Table[K, V]) HashIndex(key K) int {
	return tm.hashIndex(key)
}

// Returns Len / Size. There is no upper bound.
func (tm *Table[K, V]) LoadFactor() float64 {
	return tm.loadFactor()
}

// Returns the number of entries of every bucket, in bucket order.
// The slice is a copy and always has Size elements.
func (tm *Table[K, V]) Distribution() []int {
	return tm.distribution()
}

// Iterates over the entries in bucket order, then chain order.
// The table must not be modified during iteration.
func (tm *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range tm.buckets {
			for _, e := range tm.buckets[i].entries {
				if !yield(e.key, e.value) {
					return
				}
			}
		}
	}
}

func (tm *Table[K, V]) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "chainmap.Table{size: %d, count: %d, items: map[", tm.size, tm.count)

	first := true
	for k, v := range tm.All() {
		if !first {
			sb.WriteByte(' ')
		}

		fmt.Fprintf(&sb, "%v:%v", k, v)
		first = false
	}

	sb.WriteString("]}")

	return sb.String()
}
