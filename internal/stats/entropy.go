package stats

import (
	"math"
)

// ShannonEntropy calculates the Shannon entropy of a probability distribution
// values: frequency counts or probabilities
// Returns entropy in bits (log base 2)
func ShannonEntropy(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	sum := Sum(values)
	if sum == 0 {
		return 0
	}

	var entropy float64
	for _, v := range values {
		if v > 0 {
			p := v / sum
			entropy -= p * math.Log2(p)
		}
	}
	return entropy
}

// NormalizedEntropy calculates the normalized Shannon entropy (0 to 1)
// Divides by log2(n) where n is the number of categories
func NormalizedEntropy(values []float64) float64 {
	if len(values) <= 1 {
		return 0
	}

	maxEntropy := math.Log2(float64(len(values)))
	if maxEntropy == 0 {
		return 0
	}
	return ShannonEntropy(values) / maxEntropy
}
