package utils

import (
	"fmt"
	"math"
	"math/bits"
)

// Combination returns n choose k. It returns 0 when k > n and panics when the
// result does not fit in a uint64 (from about n = 68).
func Combination(n, k uint64) uint64 {
	c, ok := combination(n, k)
	if !ok {
		panic(fmt.Sprintf("combination: C(%d, %d) overflows uint64", n, k))
	}
	return c
}

// combination computes n choose k exactly, reporting false on overflow.
// Each step of the product is an exact binomial coefficient, so the running
// value never exceeds the final result.
func combination(n, k uint64) (uint64, bool) {
	if k > n {
		return 0, true
	}
	if k > n-k {
		k = n - k
	}

	result := uint64(1)
	for i := uint64(1); i <= k; i++ {
		hi, lo := bits.Mul64(result, n-k+i)
		if hi >= i {
			return 0, false
		}
		result, _ = bits.Div64(hi, lo, i)
	}
	return result, true
}

// Binomial returns the probability of exactly k successes in n independent
// trials with per-trial success probability p.
//
// It panics when p is outside [0, 1] or k > n.
func Binomial(p float64, n, k uint64) float64 {
	mustProbability(p)
	if k > n {
		panic(fmt.Sprintf("binomial: k (%d) greater than n (%d)", k, n))
	}

	switch p {
	case 0:
		if k == 0 {
			return 1
		}
		return 0
	case 1:
		if k == n {
			return 1
		}
		return 0
	}

	if c, ok := combination(n, k); ok {
		return math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k)) * float64(c)
	}
	return math.Exp(logCombination(n, k) + float64(k)*math.Log(p) + float64(n-k)*math.Log1p(-p))
}

// logCombination returns ln(n choose k) for coefficients too large for uint64.
func logCombination(n, k uint64) float64 {
	lnFactorial := func(x uint64) float64 {
		v, _ := math.Lgamma(float64(x) + 1)
		return v
	}
	return lnFactorial(n) - lnFactorial(k) - lnFactorial(n-k)
}

// BinomialCDF sums Binomial over the given k values. The values need not be
// contiguous; each one must be <= n.
func BinomialCDF(p float64, n uint64, ks []uint64) float64 {
	var sum float64
	for _, k := range ks {
		sum += Binomial(p, n, k)
	}
	return sum
}

// MapToRange linearly maps value from [inMin, inMax] onto [outMin, outMax].
func MapToRange(value, inMin, inMax, outMin, outMax float64) float64 {
	return outMin + (value-inMin)*(outMax-outMin)/(inMax-inMin)
}

func mustProbability(p float64) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		panic(fmt.Sprintf("binomial: probability %v outside [0, 1]", p))
	}
}
