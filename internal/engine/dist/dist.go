// Package dist provides the hypergeometric and binomial distributions
// used to score card draws from a finite, non-replacing deck.
//
// Every function resolves degenerate input to a defined probability
// rather than signalling: a zero denominator or an inconsistent draw
// count yields 0, never NaN and never an error.
package dist

import (
	"math"

	"github.com/tcgtools/topdeck/internal/engine/combin"
)

// HypergeomPMF returns the probability of drawing exactly k successes
// in n draws from a population of N containing K successes.
//
// Postcondition: Returns a value in [0, 1]; returns 0 when the draw
// exceeds the population (Comb(N, n) == 0) or k is unreachable.
func HypergeomPMF(N, K, n, k int) float64 {
	total := combin.Comb(N, n)
	if total == 0 {
		return 0
	}
	return combin.Comb(K, k) * combin.Comb(N-K, n-k) / total
}

// HypergeomCDF returns the probability of drawing at least k successes
// in n draws from a population of N containing K successes.
//
// Postcondition: Returns a value in [0, 1]; HypergeomCDF(N, K, n, 0)
// is 1 for any valid population.
func HypergeomCDF(N, K, n, k int) float64 {
	upper := n
	if K < upper {
		upper = K
	}
	var sum float64
	for i := k; i <= upper; i++ {
		sum += HypergeomPMF(N, K, n, i)
	}
	return sum
}

// MultivariatePMF returns the probability of the exact per-category
// draw described by drawn, given the per-category population counts.
//
// Precondition: N == sum(population); this is a caller invariant and
// is not re-validated here.
// Postcondition: Returns 0 when sum(drawn) != n or when Comb(N, n)
// is 0; otherwise a value in [0, 1].
func MultivariatePMF(population, drawn []int, N, n int) float64 {
	sum := 0
	for _, d := range drawn {
		sum += d
	}
	if sum != n {
		return 0
	}
	total := combin.Comb(N, n)
	if total == 0 {
		return 0
	}
	numerator := 1.0
	for i, p := range population {
		numerator *= combin.Comb(p, drawn[i])
	}
	return numerator / total
}

// BinomialPMF returns the probability of exactly k successes in n
// independent trials with per-trial success probability p.
//
// Precondition: p is in [0, 1].
func BinomialPMF(n, k int, p float64) float64 {
	return combin.Comb(n, k) * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
}
