package chainmap

// Returns the bucket count giving a load factor of about alpha
// once n keys are stored. Never less than one bucket.
func SizeForLoadFactor(n int, alpha float64) int {
	if alpha <= 0 {
		return max(1, n)
	}

	return max(1, int(float64(n)/alpha))
}

// Returns the bucket count used when timing n operations: n/10,
// but never below DefaultSize.
func TimingSize(n int) int {
	return max(DefaultSize, n/10)
}
