package tourney

import (
	"fmt"
	"strings"
)

// Params holds the externally owned match and tournament settings.
// The engine reads them per call and never retains them.
type Params struct {
	// Rounds is the number of Swiss rounds.
	Rounds int `yaml:"rounds" json:"rounds"`
	// TopCutWins is the minimum win count that makes the cut.
	TopCutWins int `yaml:"top_cut_wins" json:"top_cut_wins"`
	// GoingFirst is the player's positional choice for game 1.
	GoingFirst bool `yaml:"going_first" json:"going_first"`
	// SideboardVariance scales the post-sideboard resilience effect;
	// 0 disables it.
	SideboardVariance float64 `yaml:"sideboard_variance" json:"sideboard_variance"`
	// BrickSensitivity enables the velocity-drop brick alert.
	BrickSensitivity bool `yaml:"brick_sensitivity" json:"brick_sensitivity"`
	// Stamina enables the fatigue-adjusted Swiss distribution.
	Stamina bool `yaml:"stamina" json:"stamina"`
}

// Validate checks the parameter invariants, collecting every violation.
func (p Params) Validate() error {
	var errs []string
	if p.Rounds < 0 {
		errs = append(errs, fmt.Sprintf("rounds must be >= 0, got %d", p.Rounds))
	}
	if p.TopCutWins < 0 {
		errs = append(errs, fmt.Sprintf("top_cut_wins must be >= 0, got %d", p.TopCutWins))
	}
	if p.SideboardVariance < 0 {
		errs = append(errs, fmt.Sprintf("sideboard_variance must be >= 0, got %g", p.SideboardVariance))
	}
	if len(errs) > 0 {
		return fmt.Errorf("tournament params: %s", strings.Join(errs, "; "))
	}
	return nil
}
