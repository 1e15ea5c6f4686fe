package deck

import (
	"fmt"
	"strings"
)

// Threshold is an inclusive [Min, Max] bound on the number of drawn
// cards carrying a role.
type Threshold struct {
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`
}

// Contains reports whether count falls inside the threshold.
func (t Threshold) Contains(count int) bool {
	return count >= t.Min && count <= t.Max
}

// Validate checks the threshold invariants.
func (t Threshold) Validate() error {
	if t.Min < 0 {
		return fmt.Errorf("min must be >= 0, got %d", t.Min)
	}
	if t.Min > t.Max {
		return fmt.Errorf("min %d exceeds max %d", t.Min, t.Max)
	}
	return nil
}

// Condition is a named conjunction of role thresholds plus a weight
// used only in downstream weighted aggregation. A hand satisfies the
// condition iff every thresholded role's drawn count falls inside its
// bound; roles not mentioned are unconstrained.
type Condition struct {
	Name       string               `yaml:"name" json:"name"`
	Weight     float64              `yaml:"weight" json:"weight"`
	Thresholds map[string]Threshold `yaml:"thresholds" json:"thresholds"`
}

// Validate checks the condition invariants, collecting every violation.
func (c Condition) Validate() error {
	var errs []string
	if c.Name == "" {
		errs = append(errs, "name must not be empty")
	}
	if c.Weight < 0 {
		errs = append(errs, fmt.Sprintf("weight must be >= 0, got %g", c.Weight))
	}
	for role, t := range c.Thresholds {
		if err := t.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("threshold for role %q: %v", role, err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("condition %q: %s", c.Name, strings.Join(errs, "; "))
	}
	return nil
}

// Mulligan describes the single-retry redraw adjustment. MaxMulligans
// is carried for the caller's benefit but the adjustment models
// exactly one retry regardless of its value.
type Mulligan struct {
	Enabled      bool   `yaml:"enabled" json:"enabled"`
	KeepRole     string `yaml:"keep_role" json:"keep_role"`
	KeepMin      int    `yaml:"keep_min" json:"keep_min"`
	MaxMulligans int    `yaml:"max_mulligans" json:"max_mulligans"`
}

// Validate checks the mulligan invariants. A disabled mulligan is
// always valid.
func (m Mulligan) Validate() error {
	if !m.Enabled {
		return nil
	}
	var errs []string
	if m.KeepRole == "" {
		errs = append(errs, "keep_role must not be empty when enabled")
	}
	if m.KeepMin < 0 {
		errs = append(errs, fmt.Sprintf("keep_min must be >= 0, got %d", m.KeepMin))
	}
	if m.MaxMulligans < 0 {
		errs = append(errs, fmt.Sprintf("max_mulligans must be >= 0, got %d", m.MaxMulligans))
	}
	if len(errs) > 0 {
		return fmt.Errorf("mulligan: %s", strings.Join(errs, "; "))
	}
	return nil
}

// KeepCondition returns the single-threshold condition "opening hand
// holds at least KeepMin cards of the keep role", bounded above by the
// deck size so the threshold can never exclude a hand by its ceiling.
func (m Mulligan) KeepCondition(deckSize int) Condition {
	return Condition{
		Name:   "mulligan-keep",
		Weight: 1,
		Thresholds: map[string]Threshold{
			m.KeepRole: {Min: m.KeepMin, Max: deckSize},
		},
	}
}
