// Package draw enumerates every way a hand of a given size can be
// composed category-by-category from a deck, filtered by per-role
// count thresholds.
//
// The search is exhaustive backtracking over category indices. The
// domain keeps it tractable: decks carry a handful of categories and
// opening hands a handful of cards. Threshold filtering is applied to
// completed vectors only; role-sum pruning mid-search is deliberately
// avoided because a role's sum is a property of the whole vector.
package draw

import "github.com/tcgtools/topdeck/internal/engine/deck"

// ValidVectors returns every draw vector over the population whose
// per-role summed counts satisfy all thresholds.
//
// A category with a non-zero drawn count contributes that count to
// every role it carries, so a card tagged with two roles counts fully
// toward both. Roles absent from thresholds are unconstrained.
//
// Postcondition: Each returned vector has len(population) entries
// summing to totalDraws, with vector[i] <= population[i]. Returns an
// empty result when totalDraws exceeds the total population.
func ValidVectors(population []int, totalDraws int, roleSets [][]string, thresholds map[string]deck.Threshold) [][]int {
	if len(population) == 0 {
		if totalDraws == 0 && satisfies(nil, nil, thresholds) {
			return [][]int{{}}
		}
		return nil
	}

	var out [][]int
	vec := make([]int, len(population))

	var descend func(idx, remaining int)
	descend = func(idx, remaining int) {
		if idx == len(population)-1 {
			// The remainder is forced; it either fits or the branch dies.
			if remaining > population[idx] {
				return
			}
			vec[idx] = remaining
			if satisfies(vec, roleSets, thresholds) {
				out = append(out, append([]int(nil), vec...))
			}
			return
		}
		limit := remaining
		if population[idx] < limit {
			limit = population[idx]
		}
		for n := 0; n <= limit; n++ {
			vec[idx] = n
			descend(idx+1, remaining-n)
		}
	}
	descend(0, totalDraws)
	return out
}

// RoleSums returns the drawn-card count per role for a complete
// vector. Multi-role categories contribute their count to each role.
//
// Precondition: len(vector) == len(roleSets).
func RoleSums(vector []int, roleSets [][]string) map[string]int {
	sums := make(map[string]int)
	for i, n := range vector {
		if n == 0 {
			continue
		}
		for _, role := range roleSets[i] {
			sums[role] += n
		}
	}
	return sums
}

func satisfies(vector []int, roleSets [][]string, thresholds map[string]deck.Threshold) bool {
	if len(thresholds) == 0 {
		return true
	}
	sums := RoleSums(vector, roleSets)
	for role, t := range thresholds {
		if !t.Contains(sums[role]) {
			return false
		}
	}
	return true
}
