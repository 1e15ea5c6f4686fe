// Package deck defines the deck composition model consumed by the
// probability engine: role-tagged card categories, role thresholds,
// win conditions, mulligan rules, and game-format presets.
//
// All validation lives here, at the boundary. The enumerator and the
// distribution functions assume validated input and resolve any
// remaining degenerate case to a defined zero probability.
package deck

import (
	"fmt"
	"strings"
)

// Category is a group of cards sharing a count and a set of roles.
type Category struct {
	Name  string   `yaml:"name" json:"name"`
	Count int      `yaml:"count" json:"count"`
	Roles []string `yaml:"roles" json:"roles"`
}

// Deck is an ordered sequence of categories plus a declared total
// size. When the explicit category counts sum below Size, the
// remainder is treated as a roleless filler category.
type Deck struct {
	Size       int        `yaml:"size" json:"size"`
	Categories []Category `yaml:"categories" json:"categories"`
}

// AssignedCount returns the sum of all explicit category counts.
func (d Deck) AssignedCount() int {
	total := 0
	for _, c := range d.Categories {
		total += c.Count
	}
	return total
}

// FillerCount returns the size of the implicit roleless category.
//
// Postcondition: Returns Size - AssignedCount(); negative only for a
// deck that fails Validate.
func (d Deck) FillerCount() int {
	return d.Size - d.AssignedCount()
}

// Population returns the per-category card counts and role sets used
// by the enumerator, with the filler category appended when the deck
// has unassigned cards.
//
// Precondition: d passes Validate.
// Postcondition: The returned counts sum to d.Size; both slices have
// equal length.
func (d Deck) Population() ([]int, [][]string) {
	counts := make([]int, 0, len(d.Categories)+1)
	roles := make([][]string, 0, len(d.Categories)+1)
	for _, c := range d.Categories {
		counts = append(counts, c.Count)
		roles = append(roles, c.Roles)
	}
	if filler := d.FillerCount(); filler > 0 {
		counts = append(counts, filler)
		roles = append(roles, nil)
	}
	return counts, roles
}

// Roles returns the sorted-insertion set of every role named by any
// category, in first-appearance order.
func (d Deck) Roles() []string {
	seen := make(map[string]bool)
	var out []string
	for _, c := range d.Categories {
		for _, r := range c.Roles {
			if !seen[r] {
				seen[r] = true
				out = append(out, r)
			}
		}
	}
	return out
}

// Validate checks all deck invariants, collecting every violation.
//
// Postcondition: Returns nil if the deck is valid, or an error
// describing all violations.
func (d Deck) Validate() error {
	var errs []string
	if d.Size <= 0 {
		errs = append(errs, fmt.Sprintf("deck size must be positive, got %d", d.Size))
	}
	names := make(map[string]bool)
	for i, c := range d.Categories {
		if c.Count < 0 {
			errs = append(errs, fmt.Sprintf("category %d (%s): count must be >= 0, got %d", i, c.Name, c.Count))
		}
		if c.Name != "" && names[c.Name] {
			errs = append(errs, fmt.Sprintf("duplicate category name %q", c.Name))
		}
		names[c.Name] = true
	}
	if d.Size > 0 && d.AssignedCount() > d.Size {
		errs = append(errs, fmt.Sprintf("categories total %d cards but deck size is %d", d.AssignedCount(), d.Size))
	}
	if len(errs) > 0 {
		return fmt.Errorf("deck validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
