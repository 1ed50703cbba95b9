package engine

import (
	"slices"

	"github.com/tatianab/cluedo-solver/internal/models"
)

// State returns a copy of every cell and slot.
func (e *Engine) State() models.Snapshot {
	return e.grid.Snapshot()
}

// Counters reports how many of the player's cells are settled, out of the
// number of cards.
func (e *Engine) Counters(player string) (known, total int, err error) {
	p, err := e.player(player)
	if err != nil {
		return 0, 0, err
	}
	for c := range e.deck.Cards {
		if e.grid.Status(p.Index, c).Terminal() {
			known++
		}
	}
	return known, len(e.deck.Cards), nil
}

// HandCount reports how many cards the player is known to hold, out of
// their hand size.
func (e *Engine) HandCount(player string) (owned, hand int, err error) {
	p, err := e.player(player)
	if err != nil {
		return 0, 0, err
	}
	for c := range e.deck.Cards {
		if e.grid.Status(p.Index, c) == models.Owned {
			owned++
		}
	}
	return owned, p.Hand, nil
}

func (e *Engine) CaseFile() []models.CaseFileEntry {
	return e.grid.CaseFile()
}

// Suggestion picks one card per category for the next suggestion, the one
// with the most players still unknown, earliest declared on ties.
func (e *Engine) Suggestion() []models.Card {
	out := make([]models.Card, len(e.deck.Categories))
	for cat, category := range e.deck.Categories {
		best, bestCount := -1, 0
		for _, card := range category.Cards {
			count := 0
			for p := range e.players {
				if e.grid.Status(p, card.Index) == models.Unknown {
					count++
				}
			}
			if count > bestCount {
				best, bestCount = card.Index, count
			}
		}
		if best < 0 {
			best = e.fallbackSuggestion(cat)
		}
		out[cat] = e.deck.Cards[best]
	}
	return out
}

// fallbackSuggestion is used when a category has no unknown cell left.
func (e *Engine) fallbackSuggestion(cat int) int {
	if slot := e.grid.Slot(cat); slot >= 0 {
		return slot
	}
	cards := e.deck.Categories[cat].Cards
	for _, card := range cards {
		if e.grid.Owner(card.Index) < 0 {
			return card.Index
		}
	}
	return cards[0].Index
}

// History lists the accepted commands since the last reset.
func (e *Engine) History() []models.HistoryEntry {
	return slices.Clone(e.history)
}
