// Package analysis ties the deck model, the composition layer, and
// the tournament aggregator together: one validated definition in,
// the full match and tournament picture out.
package analysis

import (
	"github.com/tcgtools/topdeck/internal/engine/deck"
	"github.com/tcgtools/topdeck/internal/engine/prob"
	"github.com/tcgtools/topdeck/internal/engine/tourney"
)

// Result carries the per-condition seat probabilities that fed the
// aggregator alongside the aggregate figures.
type Result struct {
	Pre      []tourney.ConditionProb `json:"pre"`
	Post     []tourney.ConditionProb `json:"post"`
	Analysis tourney.Analysis        `json:"analysis"`
}

// Run computes the full analysis for a definition. Game 1 uses the
// main deck; games 2/3 use the side deck when one is defined,
// otherwise the main deck again.
//
// Precondition: def passes Validate.
func Run(def deck.Definition) Result {
	format, _ := deck.FormatFor(def.Format)

	pre := conditionProbs(def.Deck, def.Conditions, def.Mulligan, format)

	post := pre
	if def.SideDeck != nil {
		post = conditionProbs(*def.SideDeck, def.Conditions, def.Mulligan, format)
	}

	return Result{
		Pre:  pre,
		Post: post,
		Analysis: tourney.Analyze(tourney.Input{
			Pre:    pre,
			Post:   post,
			Params: def.Tournament,
		}),
	}
}

// conditionProbs computes each condition's opening-hand event
// probability for both seats, mulligan-adjusted when the rule is
// enabled (the opening hand is the only draw count the adjustment
// applies to).
func conditionProbs(d deck.Deck, conds []deck.Condition, m deck.Mulligan, format deck.Format) []tourney.ConditionProb {
	first := format.OpeningDraws(true)
	second := format.OpeningDraws(false)

	keepFirst := prob.KeepProbability(first, m, d)
	keepSecond := prob.KeepProbability(second, m, d)

	out := make([]tourney.ConditionProb, 0, len(conds))
	for _, cond := range conds {
		pFirst := prob.DeckEventProbability(first, cond, d)
		pSecond := prob.DeckEventProbability(second, cond, d)
		if m.Enabled {
			pFirst = prob.MulliganAdjusted(pFirst, keepFirst)
			pSecond = prob.MulliganAdjusted(pSecond, keepSecond)
		}
		out = append(out, tourney.ConditionProb{
			Name:   cond.Name,
			Weight: cond.Weight,
			First:  pFirst,
			Second: pSecond,
		})
	}
	return out
}
