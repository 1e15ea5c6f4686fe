package deck

// Format is a game-format preset: deck size bounds, starting hand
// size, and which seats draw a card on the first turn. The table is
// fixed; "custom" is the escape hatch for anything else.
type Format struct {
	Tag           string `yaml:"tag" json:"tag"`
	MinDeck       int    `yaml:"min_deck" json:"min_deck"`
	MaxDeck       int    `yaml:"max_deck" json:"max_deck"`
	HandSize      int    `yaml:"hand_size" json:"hand_size"`
	FirstDraws    bool   `yaml:"first_draws" json:"first_draws"`
	SecondDraws   bool   `yaml:"second_draws" json:"second_draws"`
	MulliganStyle string `yaml:"mulligan_style" json:"mulligan_style"`
}

// Preset tags.
const (
	FormatYuGiOh      = "yugioh"
	FormatMagic       = "magic"
	FormatPokemon     = "pokemon"
	FormatHearthstone = "hearthstone"
	FormatCustom      = "custom"
)

var formats = map[string]Format{
	FormatYuGiOh: {
		Tag: FormatYuGiOh, MinDeck: 40, MaxDeck: 60, HandSize: 5,
		FirstDraws: false, SecondDraws: true, MulliganStyle: "none",
	},
	FormatMagic: {
		Tag: FormatMagic, MinDeck: 60, MaxDeck: 250, HandSize: 7,
		FirstDraws: false, SecondDraws: true, MulliganStyle: "redraw",
	},
	FormatPokemon: {
		Tag: FormatPokemon, MinDeck: 60, MaxDeck: 60, HandSize: 7,
		FirstDraws: true, SecondDraws: true, MulliganStyle: "forced",
	},
	FormatHearthstone: {
		Tag: FormatHearthstone, MinDeck: 30, MaxDeck: 30, HandSize: 3,
		FirstDraws: true, SecondDraws: true, MulliganStyle: "partial",
	},
}

// FormatFor returns the preset for tag. Unknown tags fall back to a
// custom format with open deck bounds and report ok == false so the
// caller can require explicit sizing.
func FormatFor(tag string) (Format, bool) {
	if f, ok := formats[tag]; ok {
		return f, true
	}
	return Format{
		Tag: FormatCustom, MinDeck: 1, MaxDeck: 1000, HandSize: 5,
		FirstDraws: false, SecondDraws: true, MulliganStyle: "none",
	}, false
}

// OpeningDraws returns the baseline opening-hand size for a seat:
// the starting hand plus the turn-one draw when the format grants one
// to that seat.
func (f Format) OpeningDraws(goingFirst bool) int {
	n := f.HandSize
	if goingFirst && f.FirstDraws {
		n++
	}
	if !goingFirst && f.SecondDraws {
		n++
	}
	return n
}
