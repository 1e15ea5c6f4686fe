package prob_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/tcgtools/topdeck/internal/engine/combin"
	"github.com/tcgtools/topdeck/internal/engine/deck"
	"github.com/tcgtools/topdeck/internal/engine/prob"
)

func starterDeck() deck.Deck {
	return deck.Deck{
		Size: 40,
		Categories: []deck.Category{
			{Name: "starters", Count: 12, Roles: []string{"Starter"}},
		},
	}
}

func starterCondition() deck.Condition {
	return deck.Condition{
		Name:   "playable",
		Weight: 1,
		Thresholds: map[string]deck.Threshold{
			"Starter": {Min: 1, Max: 40},
		},
	}
}

// TestDeckEventProbability_StarterScenario checks the classic opening
// hand: 40 cards, 12 starters, 5 drawn, at least one starter. The
// closed form is 1 - C(28,5)/C(40,5).
func TestDeckEventProbability_StarterScenario(t *testing.T) {
	got := prob.DeckEventProbability(5, starterCondition(), starterDeck())
	want := 1 - combin.Comb(28, 5)/combin.Comb(40, 5)
	assert.InDelta(t, want, got, 1e-9)
	assert.InDelta(t, 0.8506, got, 1e-3)
}

func TestDeckEventProbability_Overdraw(t *testing.T) {
	got := prob.DeckEventProbability(41, starterCondition(), starterDeck())
	assert.Equal(t, 0.0, got, "drawing past the deck must resolve to 0")
}

// TestEventProbability_Unconstrained_Property verifies that with no
// thresholds the valid vectors cover the whole sample space.
func TestEventProbability_Unconstrained_Property(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		population := rapid.SliceOfN(rapid.IntRange(1, 6), 1, 3).Draw(rt, "population")
		total := 0
		for _, p := range population {
			total += p
		}
		draws := rapid.IntRange(0, total).Draw(rt, "draws")
		roleSets := make([][]string, len(population))

		cond := deck.Condition{Name: "any", Weight: 1}
		got := prob.EventProbability(draws, cond, population, roleSets)
		assert.InDelta(rt, 1.0, got, 1e-9, "unconstrained event is certain")
	})
}

// TestMulliganAdjusted_Formula pins the exact single-retry formula,
// including the known overshoot past 1: the adjustment is a
// documented approximation, not a proper convex combination, and must
// not be silently clamped.
func TestMulliganAdjusted_Formula(t *testing.T) {
	got := prob.MulliganAdjusted(0.7, 0.4)
	assert.InDelta(t, 1.12, got, 1e-12)
	assert.Greater(t, got, 1.0, "the documented approximation may exceed 1")
}

func TestMulliganAdjusted_CertainKeep(t *testing.T) {
	assert.InDelta(t, 0.7, prob.MulliganAdjusted(0.7, 1.0), 1e-12,
		"a hand that is always kept gets no adjustment")
}

func TestKeepProbability_Disabled(t *testing.T) {
	m := deck.Mulligan{Enabled: false}
	assert.Equal(t, 1.0, prob.KeepProbability(5, m, starterDeck()))
}

func TestKeepProbability_Enabled(t *testing.T) {
	m := deck.Mulligan{Enabled: true, KeepRole: "Starter", KeepMin: 1, MaxMulligans: 1}
	want := 1 - combin.Comb(28, 5)/combin.Comb(40, 5)
	assert.InDelta(t, want, prob.KeepProbability(5, m, starterDeck()), 1e-9)
}

func TestTimeline_Shape(t *testing.T) {
	conds := []deck.Condition{starterCondition()}
	points := prob.Timeline(starterDeck(), conds, deck.Mulligan{}, 5)

	require.Len(t, points, prob.TimelineSteps)
	for i, pt := range points {
		assert.Equal(t, i, pt.Step)
		assert.Equal(t, 5+i, pt.Draws)
		require.Contains(t, pt.Probabilities, "playable")
		assert.InDelta(t, pt.Probabilities["playable"], pt.ExpectedValue, 1e-12,
			"a single weight-1 condition makes EV equal its probability")
	}

	// More cards seen can only help an at-least threshold.
	for i := 1; i < len(points); i++ {
		assert.GreaterOrEqual(t,
			points[i].Probabilities["playable"],
			points[i-1].Probabilities["playable"],
		)
	}
}

// TestTimeline_MulliganOnlyAtBaseline verifies the adjustment applies
// at step 0 and nowhere else.
func TestTimeline_MulliganOnlyAtBaseline(t *testing.T) {
	conds := []deck.Condition{starterCondition()}
	m := deck.Mulligan{Enabled: true, KeepRole: "Starter", KeepMin: 1, MaxMulligans: 1}

	points := prob.Timeline(starterDeck(), conds, m, 5)

	raw0 := prob.DeckEventProbability(5, conds[0], starterDeck())
	keep := prob.KeepProbability(5, m, starterDeck())
	assert.InDelta(t, prob.MulliganAdjusted(raw0, keep), points[0].Probabilities["playable"], 1e-12)

	raw1 := prob.DeckEventProbability(6, conds[0], starterDeck())
	assert.InDelta(t, raw1, points[1].Probabilities["playable"], 1e-12,
		"steps past the baseline must not be mulligan-adjusted")
}

func TestTimeline_WeightedExpectedValue(t *testing.T) {
	conds := []deck.Condition{
		starterCondition(),
		{Name: "secondary", Weight: 0.5, Thresholds: map[string]deck.Threshold{
			"Starter": {Min: 2, Max: 40},
		}},
	}
	points := prob.Timeline(starterDeck(), conds, deck.Mulligan{}, 5)

	for _, pt := range points {
		want := pt.Probabilities["playable"]*1 + pt.Probabilities["secondary"]*0.5
		assert.InDelta(t, want, pt.ExpectedValue, 1e-12)
	}
}
