package models

import "strings"

// Status is what is known about one player holding one card.
type Status int

const (
	Unknown Status = iota
	Owned
	NotOwned
	Suspected
)

// Terminal reports whether the status is definitive.
func (s Status) Terminal() bool {
	return s == Owned || s == NotOwned
}

// Symbol is the grid mark used by the front end.
func (s Status) Symbol() string {
	switch s {
	case Owned:
		return "✅"
	case NotOwned:
		return "❌"
	case Suspected:
		return "?"
	default:
		return ""
	}
}

func (s Status) String() string {
	switch s {
	case Owned:
		return "owned"
	case NotOwned:
		return "not-owned"
	case Suspected:
		return "suspected"
	default:
		return "unknown"
	}
}

func (s Status) MarshalYAML() (any, error) {
	return s.String(), nil
}

// Card is a single card of the deck.
type Card struct {
	ID       string `yaml:"id"`   // e.g., "lead_pipe"
	Name     string `yaml:"name"` // e.g., "Lead Pipe"
	Category string `yaml:"-"`
	Index    int    `yaml:"-"` // position in Deck.Cards
}

func (c Card) String() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// Category groups the cards of which exactly one ends up in the case file.
type Category struct {
	Name  string `yaml:"name"`
	Cards []Card `yaml:"cards"`
}

// Deck is the immutable card configuration of a game.
type Deck struct {
	Name       string     `yaml:"name"`
	Categories []Category `yaml:"categories"`

	// Cards lists every card in declaration order, category by category.
	Cards []Card `yaml:"-"`

	lookup        map[string]int
	categoryIndex map[string]int
}

// Player is a seat at the table. Index is the turn order, the user sits at 0.
type Player struct {
	Name  string `yaml:"name"`
	Index int    `yaml:"index"`
	Hand  int    `yaml:"hand"` // expected number of cards dealt
}

// User reports whether the player is the one running the assistant.
func (p Player) User() bool {
	return p.Index == 0
}

// CellChange is one cell that moved during a command.
type CellChange struct {
	Player string `yaml:"player"`
	Card   string `yaml:"card"`
	From   Status `yaml:"from"`
	To     Status `yaml:"to"`
}

// SlotChange is a case file slot that got resolved during a command.
// Card is empty when a reset cleared the slot.
type SlotChange struct {
	Category string `yaml:"category"`
	Card     string `yaml:"card,omitempty"`
}

// GridDelta lists what a command changed, for incremental rendering.
type GridDelta struct {
	Cells []CellChange `yaml:"cells,omitempty"`
	Slots []SlotChange `yaml:"slots,omitempty"`
}

// Empty reports whether nothing changed.
func (d GridDelta) Empty() bool {
	return len(d.Cells) == 0 && len(d.Slots) == 0
}

// CaseFileEntry is the state of one category's case file slot.
type CaseFileEntry struct {
	Category string
	Card     *Card // nil while unresolved
}

// Snapshot is a read-only copy of the whole knowledge state.
type Snapshot struct {
	Deck     *Deck
	Players  []Player
	Cells    [][]Status // [player][card]
	CaseFile []CaseFileEntry
}

// HistoryEntry represents a single accepted command.
type HistoryEntry struct {
	Command string    `yaml:"command"`
	Args    []string  `yaml:"args,omitempty"`
	Delta   GridDelta `yaml:"delta"`
}

// NormalizeName folds a card or player token for lookups: case, spaces,
// underscores and hyphens are ignored.
func NormalizeName(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '_', '-', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
