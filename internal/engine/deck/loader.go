package deck

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tcgtools/topdeck/internal/engine/tourney"
)

// Definition is a complete analysis input loaded from a YAML file:
// the deck, an optional post-sideboard deck, the win conditions, the
// mulligan rule, the game format tag, and the tournament parameters.
type Definition struct {
	Name       string         `yaml:"name" json:"name"`
	Format     string         `yaml:"format" json:"format"`
	Deck       Deck           `yaml:"deck" json:"deck"`
	SideDeck   *Deck          `yaml:"side_deck,omitempty" json:"side_deck,omitempty"`
	Conditions []Condition    `yaml:"conditions" json:"conditions"`
	Mulligan   Mulligan       `yaml:"mulligan" json:"mulligan"`
	Tournament tourney.Params `yaml:"tournament" json:"tournament"`
}

// Validate checks every section of the definition, collecting all
// violations into a single error.
func (d Definition) Validate() error {
	var errs []string
	if err := d.Deck.Validate(); err != nil {
		errs = append(errs, err.Error())
	}
	if d.SideDeck != nil {
		if err := d.SideDeck.Validate(); err != nil {
			errs = append(errs, fmt.Sprintf("side deck: %v", err))
		}
	}
	if len(d.Conditions) == 0 {
		errs = append(errs, "at least one condition is required")
	}
	for _, c := range d.Conditions {
		if err := c.Validate(); err != nil {
			errs = append(errs, err.Error())
		}
	}
	if err := d.Mulligan.Validate(); err != nil {
		errs = append(errs, err.Error())
	}
	if err := d.Tournament.Validate(); err != nil {
		errs = append(errs, err.Error())
	}
	if f, ok := FormatFor(d.Format); ok {
		if d.Deck.Size < f.MinDeck || d.Deck.Size > f.MaxDeck {
			errs = append(errs, fmt.Sprintf("deck size %d outside %s bounds [%d, %d]",
				d.Deck.Size, f.Tag, f.MinDeck, f.MaxDeck))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("definition validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// LoadFile reads and strictly decodes a single definition YAML file.
//
// Precondition: path must name a readable YAML file.
// Postcondition: Returns a validated Definition or a non-nil error.
func LoadFile(path string) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, fmt.Errorf("reading %q: %w", path, err)
	}
	var def Definition
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&def); err != nil {
		return Definition{}, fmt.Errorf("parsing %q: %w", path, err)
	}
	if err := def.Validate(); err != nil {
		return Definition{}, fmt.Errorf("%q: %w", path, err)
	}
	return def, nil
}

// LoadDirectory reads every *.yaml file in dir as a Definition.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns the definitions in file-name order, or an
// error if any file fails to parse or validate.
func LoadDirectory(dir string) ([]Definition, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading deck dir %q: %w", dir, err)
	}
	var defs []Definition
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		def, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}
