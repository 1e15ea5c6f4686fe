// Package prob composes the enumerator and the multivariate
// hypergeometric distribution into per-condition event probabilities,
// the mulligan adjustment, and the per-turn probability timeline.
package prob

import (
	"github.com/tcgtools/topdeck/internal/engine/deck"
	"github.com/tcgtools/topdeck/internal/engine/dist"
	"github.com/tcgtools/topdeck/internal/engine/draw"
)

// EventProbability returns the exact probability that a hand of draws
// cards satisfies the condition, as the sum of the multivariate PMF
// over every threshold-valid draw vector.
//
// Postcondition: Returns a value in [0, 1]; 0 when draws exceeds the
// population or no vector satisfies the thresholds.
func EventProbability(draws int, cond deck.Condition, population []int, roleSets [][]string) float64 {
	total := 0
	for _, p := range population {
		total += p
	}
	var sum float64
	for _, vec := range draw.ValidVectors(population, draws, roleSets, cond.Thresholds) {
		sum += dist.MultivariatePMF(population, vec, total, draws)
	}
	return sum
}

// DeckEventProbability is EventProbability over a full deck, filler
// included.
//
// Precondition: d passes Validate.
func DeckEventProbability(draws int, cond deck.Condition, d deck.Deck) float64 {
	population, roleSets := d.Population()
	return EventProbability(draws, cond, population, roleSets)
}

// KeepProbability returns the probability that an opening hand of
// handSize cards already satisfies the mulligan keep threshold.
//
// Postcondition: Returns 1 when the mulligan is disabled, so that the
// adjustment degenerates to the raw probability.
func KeepProbability(handSize int, m deck.Mulligan, d deck.Deck) float64 {
	if !m.Enabled {
		return 1
	}
	return DeckEventProbability(handSize, m.KeepCondition(d.Size), d)
}

// MulliganAdjusted applies the single-retry mulligan adjustment:
//
//	adjusted = raw + (1 - probKeep) * raw
//
// This models the redraw as an independent hand with the same raw
// success probability and exactly one retry. It is a documented
// approximation kept for compatibility: the result is not a proper
// convex combination and can exceed 1. Callers that need a display
// probability must clamp on their side.
func MulliganAdjusted(raw, probKeep float64) float64 {
	return raw + (1-probKeep)*raw
}

// TimelineSteps is the number of draw-step offsets in a timeline,
// covering offsets 0 through 10 from the opening-hand baseline.
const TimelineSteps = 11

// Point is one timeline entry: the per-condition probabilities at a
// given total draw count and their weighted expected value.
type Point struct {
	// Step is the offset from the opening-hand baseline, 0..10.
	Step int `json:"step"`
	// Draws is the total cards seen at this step.
	Draws int `json:"draws"`
	// Probabilities maps condition name to its event probability,
	// mulligan-adjusted only at step 0.
	Probabilities map[string]float64 `json:"probabilities"`
	// ExpectedValue is the weight-scaled sum over all conditions.
	ExpectedValue float64 `json:"expected_value"`
}

// Timeline computes the 11-point per-turn probability curve starting
// from the opening-hand baseline. The mulligan adjustment applies at
// the baseline step only. The result is recomputed from scratch on
// every call; nothing is cached.
//
// Precondition: d passes Validate; baseline >= 0.
func Timeline(d deck.Deck, conds []deck.Condition, m deck.Mulligan, baseline int) []Point {
	keep := KeepProbability(baseline, m, d)
	points := make([]Point, 0, TimelineSteps)
	for step := 0; step < TimelineSteps; step++ {
		draws := baseline + step
		probs := make(map[string]float64, len(conds))
		var ev float64
		for _, cond := range conds {
			p := DeckEventProbability(draws, cond, d)
			if step == 0 && m.Enabled {
				p = MulliganAdjusted(p, keep)
			}
			probs[cond.Name] = p
			ev += p * cond.Weight
		}
		points = append(points, Point{
			Step:          step,
			Draws:         draws,
			Probabilities: probs,
			ExpectedValue: ev,
		})
	}
	return points
}
