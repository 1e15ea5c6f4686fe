// Package combin provides the log-space combinatorics kernel used by
// every probability computation in the engine.
//
// Combination counts are computed through log-factorials so that deck
// sizes of several hundred cards stay finite; the result is rounded
// back to the nearest integer because a combination count is always
// integral and the round trip through log space accumulates small
// floating error.
package combin

import "math"

// LogFactorial returns ln(n!), computed as a running sum of ln(i).
//
// Precondition: n >= 0.
// Postcondition: Returns 0 for n in {0, 1}; otherwise a finite
// positive value, stable for n up to at least 1000.
func LogFactorial(n int) float64 {
	var sum float64
	for i := 2; i <= n; i++ {
		sum += math.Log(float64(i))
	}
	return sum
}

// Comb returns the number of ways to choose r items from n, as an
// integer-valued float64.
//
// Postcondition: Returns 0 when r < 0 or r > n; 1 when r is 0 or n.
// Callers must not rely on sub-integer bits: the value is recovered
// from log space and rounded.
func Comb(n, r int) float64 {
	if r < 0 || r > n {
		return 0
	}
	if r == 0 || r == n {
		return 1
	}
	// Symmetry keeps the subtraction small.
	if r > n/2 {
		r = n - r
	}
	return math.Round(math.Exp(LogFactorial(n) - LogFactorial(r) - LogFactorial(n-r)))
}
