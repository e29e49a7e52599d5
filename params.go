package bloom

import "math"

// OptimalBitCount returns the optimal bit-array length for a filter expected
// to hold n items at false positive rate p.
//
// Formula: m = ceil((n * ln(p)) / ln(1 / 2^ln(2)))
//
// The denominator is -ln(2)^2, kept in this form so repeated calls reproduce
// the exact same rounding for identical inputs.
func OptimalBitCount(n uint, p float64) uint {
	numerator := float64(n) * math.Log(p)
	denominator := math.Log(1.0 / math.Pow(2.0, math.Ln2))
	return uint(math.Ceil(numerator / denominator))
}

// OptimalHashCount returns the optimal number of hash probes for a bit array
// of length m holding n expected items.
//
// Formula: k = round((m / n) * ln(2))
func OptimalHashCount(m, n uint) uint {
	return uint(math.Round((float64(m) / float64(n)) * math.Ln2))
}

// EstimateFalsePositiveRate estimates the false positive rate of a filter
// with m bits and k probes after n items have been added.
// Formula: (1 - e^(-kn/m))^k
func EstimateFalsePositiveRate(m, k, n uint) float64 {
	if m == 0 || n == 0 {
		return 0
	}

	mf := float64(m)
	nf := float64(n)
	kf := float64(k)

	return math.Pow(1-math.Exp(-kf*nf/mf), kf)
}
