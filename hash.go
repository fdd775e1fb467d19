package chainmap

import "hash/maphash"

type HashFunc[K comparable] func(K) uint64

// Shared by every table of the process, so that equal keys are placed
// into the same bucket by any two tables of the same size.
var defaultSeed = maphash.MakeSeed()

func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// Reduces a hash to a bucket index in [0, size).
func BucketIndex(hash uint64, size int) int {
	return int(hash % uint64(size))
}
