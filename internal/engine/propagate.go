package engine

import (
	"fmt"
	"strings"

	"github.com/tatianab/cluedo-solver/internal/models"
)

// deduction derives new facts from the grid. It returns a ConflictError
// when the grid turns out to be impossible.
type deduction func(g *models.Grid) error

var deductions = []deduction{
	completeRows,
	eliminateCards,
	completeCategories,
	resolveDisproofs,
	completeHands,
}

// propagate applies every deduction until a full pass changes nothing.
func propagate(g *models.Grid) error {
	d := g.Deck()
	limit := 2*len(g.Players())*len(d.Cards) + len(d.Categories) + 1
	for range limit {
		before := g.Version()
		for _, deduce := range deductions {
			if err := deduce(g); err != nil {
				return err
			}
		}
		if g.Version() == before {
			return checkInvariants(g)
		}
	}
	return &models.InvariantError{Reason: fmt.Sprintf("no fixed point after %d passes", limit)}
}

// completeRows gives a card to the only player who can still hold it,
// once the case file is known to hold another card of its category.
func completeRows(g *models.Grid) error {
	d := g.Deck()
	for c, card := range d.Cards {
		slot := g.Slot(d.CategoryOf(card))
		if slot < 0 || slot == c || g.Owner(c) >= 0 {
			continue
		}
		candidate := -1
		for p := range g.Players() {
			if g.Status(p, c) != models.NotOwned {
				if candidate >= 0 {
					candidate = -2
					break
				}
				candidate = p
			}
		}
		if candidate >= 0 {
			if err := g.SetStatus(candidate, c, models.Owned); err != nil {
				return err
			}
		}
	}
	return nil
}

// eliminateCards puts a card nobody holds into the case file.
func eliminateCards(g *models.Grid) error {
	d := g.Deck()
	for c := range d.Cards {
		held := false
		for p := range g.Players() {
			if g.Status(p, c) != models.NotOwned {
				held = true
				break
			}
		}
		if !held {
			if err := g.SetCaseFile(c); err != nil {
				return err
			}
		}
	}
	return nil
}

// completeCategories puts the last card without an owner into the case file.
func completeCategories(g *models.Grid) error {
	d := g.Deck()
	for cat, category := range d.Categories {
		if g.Slot(cat) >= 0 {
			continue
		}
		free := -1
		count := 0
		for _, card := range category.Cards {
			if g.Owner(card.Index) < 0 {
				free = card.Index
				count++
			}
		}
		switch count {
		case 0:
			return &models.ConflictError{Category: category.Name, Reason: "every card is held by a player"}
		case 1:
			if err := g.SetCaseFile(free); err != nil {
				return err
			}
		}
	}
	return nil
}

// resolveDisproofs gives a shower the one card of a suggestion they can
// still hold.
func resolveDisproofs(g *models.Grid) error {
	d := g.Deck()
	for _, dp := range g.Disproofs() {
		open := -1
		count := 0
		for _, c := range dp.Cards {
			if g.Status(dp.Player, c) != models.NotOwned {
				open = c
				count++
			}
		}
		switch {
		case count == 0:
			names := make([]string, len(dp.Cards))
			for i, c := range dp.Cards {
				names[i] = d.Cards[c].String()
			}
			return &models.ConflictError{
				Player: g.Players()[dp.Player].Name,
				Reason: "showed one of " + strings.Join(names, ", ") + " but holds none of them",
			}
		case count == 1 && g.Status(dp.Player, open) != models.Owned:
			if err := g.SetStatus(dp.Player, open, models.Owned); err != nil {
				return err
			}
		}
	}
	return nil
}

// completeHands closes a player's row once their hand is accounted for:
// a full hand rules out the rest, and exactly as many open cards as the
// hand size means all of them are held.
func completeHands(g *models.Grid) error {
	d := g.Deck()
	for p, player := range g.Players() {
		owned, possible := 0, 0
		for c := range d.Cards {
			switch g.Status(p, c) {
			case models.Owned:
				owned++
				possible++
			case models.NotOwned:
			default:
				possible++
			}
		}
		var target models.Status
		switch {
		case owned > player.Hand:
			return &models.ConflictError{Player: player.Name, Reason: fmt.Sprintf("holds %d cards, hand size is %d", owned, player.Hand)}
		case possible < player.Hand:
			return &models.ConflictError{Player: player.Name, Reason: fmt.Sprintf("can hold at most %d cards, hand size is %d", possible, player.Hand)}
		case possible == owned:
			continue
		case owned == player.Hand:
			target = models.NotOwned
		case possible == player.Hand:
			target = models.Owned
		default:
			continue
		}
		for c := range d.Cards {
			if s := g.Status(p, c); !s.Terminal() {
				if err := g.SetStatus(p, c, target); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// checkInvariants verifies what every write is supposed to preserve.
func checkInvariants(g *models.Grid) error {
	d := g.Deck()
	for c, card := range d.Cards {
		owners := 0
		for p := range g.Players() {
			if g.Status(p, c) == models.Owned {
				owners++
			}
		}
		if owners > 1 {
			return &models.InvariantError{Reason: fmt.Sprintf("%s has %d owners", card, owners)}
		}
		if g.Slot(d.CategoryOf(card)) == c && owners > 0 {
			return &models.InvariantError{Reason: fmt.Sprintf("%s is both held and in the case file", card)}
		}
	}
	return nil
}
