package engine

import (
	"github.com/tatianab/cluedo-solver/internal/models"
)

// applyOwn marks the user's cards. A complete hand also rules out every
// other card for the user.
func applyOwn(e *Engine, g *models.Grid, args []string) error {
	if len(args) == 0 {
		return models.Invalid("own syntax: own <card1> <card2> …")
	}
	owned := make(map[int]bool)
	for _, tok := range args {
		c, err := e.card(tok)
		if err != nil {
			return err
		}
		owned[c.Index] = true
	}
	for c := range e.deck.Cards {
		if owned[c] {
			if err := g.SetStatus(0, c, models.Owned); err != nil {
				return err
			}
		}
	}
	if len(owned) != e.players[0].Hand {
		return nil
	}
	for c := range e.deck.Cards {
		if !owned[c] {
			if err := g.SetStatus(0, c, models.NotOwned); err != nil {
				return err
			}
		}
	}
	return nil
}

func applyNot(e *Engine, g *models.Grid, args []string) error {
	if len(args) < 2 {
		return models.Invalid("not syntax: not <player> <card>")
	}
	p, err := e.player(args[0])
	if err != nil {
		return err
	}
	c, err := e.card(args[1:]...)
	if err != nil {
		return err
	}
	return g.SetStatus(p.Index, c.Index, models.NotOwned)
}

func applyHas(e *Engine, g *models.Grid, args []string) error {
	if len(args) < 2 {
		return models.Invalid("has syntax: has <player> <card>")
	}
	p, err := e.player(args[0])
	if err != nil {
		return err
	}
	c, err := e.card(args[1:]...)
	if err != nil {
		return err
	}
	return g.SetStatus(p.Index, c.Index, models.Owned)
}

func applyIs(e *Engine, g *models.Grid, args []string) error {
	if len(args) == 0 {
		return models.Invalid("is syntax: is <card>")
	}
	c, err := e.card(args...)
	if err != nil {
		return err
	}
	return g.SetCaseFile(c.Index)
}

// applyAsk records another player's suggestion.
//
// Players seated between the asker and the first shower passed, so they
// hold none of the three cards. Each shower gets a ? on the cards still
// open for them and a disproof that propagation resolves once only one
// card is left. With "none" everybody but the asker and the user passed.
func applyAsk(e *Engine, g *models.Grid, args []string) error {
	if len(args) < 5 {
		return models.Invalid("ask syntax: ask <asker> <c1> <c2> <c3> <shower …|none>")
	}
	asker, err := e.player(args[0])
	if err != nil {
		return err
	}
	trio, err := e.trio(args[1:4])
	if err != nil {
		return err
	}
	tail := args[4:]

	if len(tail) == 1 && isNone(tail[0]) {
		for _, p := range e.players {
			if p.Index == asker.Index || p.User() {
				continue
			}
			if err := markAll(g, p.Index, trio, models.NotOwned); err != nil {
				return err
			}
		}
		return nil
	}

	showers := make([]models.Player, 0, len(tail))
	seen := make(map[int]bool)
	for _, tok := range tail {
		if isNone(tok) {
			return models.Invalid("none cannot be combined with showers")
		}
		p, err := e.player(tok)
		if err != nil {
			return err
		}
		if p.Index == asker.Index {
			return models.Invalid("%s cannot answer their own suggestion", p.Name)
		}
		if seen[p.Index] {
			return models.Invalid("%s is listed twice", p.Name)
		}
		seen[p.Index] = true
		showers = append(showers, p)
	}

	n := len(e.players)
	dist := func(p int) int { return (p - asker.Index + n) % n }
	first := n
	for _, s := range showers {
		first = min(first, dist(s.Index))
	}
	for d := 1; d < first; d++ {
		if err := markAll(g, (asker.Index+d)%n, trio, models.NotOwned); err != nil {
			return err
		}
	}

	for _, s := range showers {
		for _, c := range trio {
			if g.Status(s.Index, c) == models.Unknown {
				if err := g.SetStatus(s.Index, c, models.Suspected); err != nil {
					return err
				}
			}
		}
		g.AddDisproof(s.Index, trio)
	}
	return nil
}

type playEntry struct {
	player int
	shown  int // card index, -1 when the player passed
}

// applyPlay records the user's own suggestion: entries are a player
// optionally followed by the card they showed.
func applyPlay(e *Engine, g *models.Grid, args []string) error {
	if len(args) < 4 {
		return models.Invalid("play syntax: play <c1> <c2> <c3> <player [card] …|none>")
	}
	trio, err := e.trio(args[:3])
	if err != nil {
		return err
	}
	tail := args[3:]

	if len(tail) == 1 && isNone(tail[0]) {
		for _, p := range e.players[1:] {
			if err := markAll(g, p.Index, trio, models.NotOwned); err != nil {
				return err
			}
		}
		return nil
	}

	var entries []playEntry
	seen := make(map[int]bool)
	for i := 0; i < len(tail); {
		if isNone(tail[i]) {
			return models.Invalid("none cannot be combined with players")
		}
		p, err := e.player(tail[i])
		if err != nil {
			return err
		}
		if p.User() {
			return models.Invalid("you cannot answer your own suggestion")
		}
		if seen[p.Index] {
			return models.Invalid("%s is listed twice", p.Name)
		}
		seen[p.Index] = true
		i++
		entry := playEntry{player: p.Index, shown: -1}
		if i < len(tail) {
			if c, ok := e.deck.Card(tail[i]); ok {
				if c.Index != trio[0] && c.Index != trio[1] && c.Index != trio[2] {
					return models.Invalid("%s showed %s, which was not suggested", p.Name, c)
				}
				entry.shown = c.Index
				i++
			}
		}
		entries = append(entries, entry)
	}

	// The user asks first, so seat order is turn order.
	first := len(e.players)
	for _, en := range entries {
		if en.shown >= 0 {
			first = min(first, en.player)
		}
	}
	if first < len(e.players) {
		for p := 1; p < first; p++ {
			if err := markAll(g, p, trio, models.NotOwned); err != nil {
				return err
			}
		}
	}
	for _, en := range entries {
		switch {
		case en.shown >= 0:
			if err := g.SetStatus(en.player, en.shown, models.Owned); err != nil {
				return err
			}
		case en.player < first:
			if err := markAll(g, en.player, trio, models.NotOwned); err != nil {
				return err
			}
		}
	}
	return nil
}

// markAll writes the same status for player p on all three cards.
func markAll(g *models.Grid, p int, trio [3]int, s models.Status) error {
	for _, c := range trio {
		if err := g.SetStatus(p, c, s); err != nil {
			return err
		}
	}
	return nil
}
