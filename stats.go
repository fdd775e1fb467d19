package chainmap

type Stats struct {
	Size         int
	Count        int
	LoadFactor   float64
	EmptyBuckets int
	LongestChain int
}
