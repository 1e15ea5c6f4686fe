// Package tourney aggregates per-condition event probabilities into
// single-game, best-of-three match, and Swiss tournament statistics.
//
// Inputs are plain probability figures computed upstream by the
// composition layer; this package never touches deck composition.
// Game independence within a match and across rounds is an explicit
// modelling approximation.
package tourney

import (
	"math"

	"github.com/tcgtools/topdeck/internal/engine/dist"
)

// ConditionProb carries one condition's weight and its going-first /
// going-second event probabilities for a given deck configuration.
type ConditionProb struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
	// First is the event probability when the player goes first.
	First float64 `json:"first"`
	// Second is the event probability when the player goes second.
	Second float64 `json:"second"`
}

func (c ConditionProb) seat(goingFirst bool) float64 {
	if goingFirst {
		return c.First
	}
	return c.Second
}

// AlertLevel classifies the game-1 to games-2/3 velocity drop.
type AlertLevel string

// Brick alert levels, ordered by severity.
const (
	AlertNone     AlertLevel = "none"
	AlertWarning  AlertLevel = "warning"
	AlertCritical AlertLevel = "critical"
)

// Velocity-drop thresholds for the brick alert.
const (
	warningDrop  = 0.02
	criticalDrop = 0.05
)

// Fatigue penalties subtracted from the per-round win probability in
// stamina mode.
const (
	finalRoundPenalty       = 0.03
	penultimateRoundPenalty = 0.02
)

// Input is everything the aggregator needs for one analysis. Post
// holds the post-sideboard condition probabilities for games 2/3;
// when empty, the pre-board figures are reused.
type Input struct {
	Pre    []ConditionProb `json:"pre"`
	Post   []ConditionProb `json:"post,omitempty"`
	Params Params          `json:"params"`
}

// Analysis is the full set of derived match and tournament figures.
type Analysis struct {
	GameOne          float64 `json:"game_one"`
	GameTwoAfterWin  float64 `json:"game_two_after_win"`
	GameTwoAfterLoss float64 `json:"game_two_after_loss"`
	GameThree        float64 `json:"game_three"`
	MatchWin         float64 `json:"match_win"`

	MatchConsistency    float64 `json:"match_consistency"`
	PostSideConsistency float64 `json:"post_side_consistency"`

	VelocityDrop float64    `json:"velocity_drop"`
	BrickAlert   AlertLevel `json:"brick_alert"`

	RoundsDist     []float64 `json:"rounds_dist"`
	TopCut         float64   `json:"top_cut"`
	ExpectedWins   float64   `json:"expected_wins"`
	ExpectedLosses float64   `json:"expected_losses"`
}

// GameWinProb returns the weight-normalized mean of the conditions'
// probabilities for the given seat. When withVariance is set, each
// condition's weight is scaled by its sideboard keep factor: the
// top-weighted conditions retain 90% effectiveness while fringe
// conditions degrade with their distance from the maximum weight.
//
// Postcondition: Returns a value in [0, 1]; 0 for an empty or
// zero-weight condition set.
func GameWinProb(conds []ConditionProb, goingFirst, withVariance bool) float64 {
	if len(conds) == 0 {
		return 0
	}
	maxWeight := 0.0
	for _, c := range conds {
		if c.Weight > maxWeight {
			maxWeight = c.Weight
		}
	}
	if maxWeight == 0 {
		return 0
	}
	var weighted, total float64
	for _, c := range conds {
		w := c.Weight
		if withVariance {
			w *= math.Max(0, keepFactor(c.Weight/maxWeight))
		}
		weighted += c.seat(goingFirst) * w
		total += w
	}
	if total == 0 {
		return 0
	}
	return weighted / total
}

// keepFactor models post-sideboard resilience as a function of a
// condition's weight relative to the maximum.
func keepFactor(ratio float64) float64 {
	if ratio >= 0.8 {
		return 0.90
	}
	return 1 - 0.30*(1-ratio)
}

// MatchWinProb composes the three-game win paths: win-win,
// win-lose-win, and lose-win-win.
func MatchWinProb(g1, g2AfterWin, g2AfterLoss, g3 float64) float64 {
	return g1*g2AfterWin + g1*(1-g2AfterWin)*g3 + (1-g1)*g2AfterLoss*g3
}

// SwissBinomial returns the win-count distribution over rounds Swiss
// rounds with a constant per-round win probability.
//
// Postcondition: The returned slice has rounds+1 entries summing to 1
// within floating tolerance.
func SwissBinomial(rounds int, pMatch float64) []float64 {
	out := make([]float64, rounds+1)
	for w := 0; w <= rounds; w++ {
		out[w] = dist.BinomialPMF(rounds, w, pMatch)
	}
	return out
}

// SwissStamina returns the fatigue-adjusted win-count distribution:
// the per-round win probability is reduced on the last two rounds and
// the distribution is built by dynamic programming over rounds.
//
// Postcondition: The returned slice has rounds+1 entries summing to 1
// within floating tolerance.
func SwissStamina(rounds int, pMatch float64) []float64 {
	dp := make([]float64, rounds+1)
	dp[0] = 1
	for r := 1; r <= rounds; r++ {
		p := math.Max(0, pMatch-roundPenalty(r, rounds))
		// Walk win counts downward so dp[w-1] is still round r-1.
		for w := r; w >= 1; w-- {
			dp[w] = dp[w-1]*p + dp[w]*(1-p)
		}
		dp[0] *= 1 - p
	}
	return dp
}

func roundPenalty(round, rounds int) float64 {
	switch round {
	case rounds:
		return finalRoundPenalty
	case rounds - 1:
		return penultimateRoundPenalty
	default:
		return 0
	}
}

// TopCutProb sums the probability mass at or above the win threshold.
func TopCutProb(dist []float64, threshold int) float64 {
	var sum float64
	for w, p := range dist {
		if w >= threshold {
			sum += p
		}
	}
	return sum
}

// Analyze derives the full match and tournament picture from the
// per-condition probabilities and parameters.
//
// Precondition: in.Params passes Validate.
func Analyze(in Input) Analysis {
	post := in.Post
	if len(post) == 0 {
		post = in.Pre
	}
	variance := in.Params.SideboardVariance > 0

	g1 := GameWinProb(in.Pre, in.Params.GoingFirst, false)
	// The game-1 loser is assumed to put the player in their
	// non-chosen seat for game 2; game 3 seat is a coin flip.
	g2AfterWin := GameWinProb(post, !in.Params.GoingFirst, variance)
	g2AfterLoss := GameWinProb(post, in.Params.GoingFirst, variance)
	g3 := (GameWinProb(post, true, variance) + GameWinProb(post, false, variance)) / 2

	matchWin := MatchWinProb(g1, g2AfterWin, g2AfterLoss, g3)

	a := Analysis{
		GameOne:          g1,
		GameTwoAfterWin:  g2AfterWin,
		GameTwoAfterLoss: g2AfterLoss,
		GameThree:        g3,
		MatchWin:         matchWin,
		BrickAlert:       AlertNone,
	}

	// Playability uses the first defined condition only: the leading
	// condition is treated as "a playable hand".
	if len(in.Pre) > 0 {
		playableG1 := (in.Pre[0].First + in.Pre[0].Second) / 2
		playableG23 := (post[0].First + post[0].Second) / 2
		a.MatchConsistency = 1 - (1-playableG1)*(1-playableG23)*(1-playableG23)
		a.PostSideConsistency = 1 - (1-playableG23)*(1-playableG23)
	}

	if g1 > 0 {
		g23 := (g2AfterWin + g2AfterLoss + g3) / 3
		a.VelocityDrop = (g1 - g23) / g1
	}
	if in.Params.BrickSensitivity {
		switch {
		case a.VelocityDrop > criticalDrop:
			a.BrickAlert = AlertCritical
		case a.VelocityDrop > warningDrop:
			a.BrickAlert = AlertWarning
		}
	}

	if in.Params.Stamina {
		a.RoundsDist = SwissStamina(in.Params.Rounds, matchWin)
	} else {
		a.RoundsDist = SwissBinomial(in.Params.Rounds, matchWin)
	}
	a.TopCut = TopCutProb(a.RoundsDist, in.Params.TopCutWins)
	for w, p := range a.RoundsDist {
		a.ExpectedWins += float64(w) * p
	}
	a.ExpectedLosses = float64(in.Params.Rounds) - a.ExpectedWins

	return a
}
