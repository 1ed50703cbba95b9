package models

import (
	"fmt"
	"slices"
)

// Disproof records that a player showed one of three cards without the
// card being revealed.
type Disproof struct {
	Player int
	Cards  [3]int
}

// Grid is the knowledge state of one session: a status per (player, card),
// a case file slot per category, and the open disproofs.
//
// Writes keep two invariants: at most one player owns a card, and a card
// in the case file is owned by nobody. Cells only ever move towards a
// terminal status.
type Grid struct {
	deck      *Deck
	players   []Player
	cells     [][]Status // [player][card]
	slots     []int      // card index per category, -1 while unresolved
	disproofs []Disproof
	version   int
}

func NewGrid(d *Deck, players []Player) *Grid {
	g := &Grid{
		deck:    d,
		players: players,
		cells:   make([][]Status, len(players)),
		slots:   make([]int, len(d.Categories)),
	}
	for p := range g.cells {
		g.cells[p] = make([]Status, len(d.Cards))
	}
	for i := range g.slots {
		g.slots[i] = -1
	}
	return g
}

func (g *Grid) Deck() *Deck { return g.deck }

func (g *Grid) Players() []Player { return g.players }

// Version increases on every effective write.
func (g *Grid) Version() int { return g.version }

func (g *Grid) Status(p, c int) Status { return g.cells[p][c] }

// Owner returns the player known to hold card c, or -1.
func (g *Grid) Owner(c int) int {
	for p := range g.cells {
		if g.cells[p][c] == Owned {
			return p
		}
	}
	return -1
}

// Slot returns the card index in the category's case file slot, or -1.
func (g *Grid) Slot(category int) int { return g.slots[category] }

// SetStatus writes one cell. Writing the current status, or Suspected over
// a definitive status, changes nothing. Owned makes every other player
// NotOwned for the card.
func (g *Grid) SetStatus(p, c int, s Status) error {
	cur := g.cells[p][c]
	if cur == s {
		return nil
	}
	switch s {
	case Unknown:
		return &InvariantError{Reason: fmt.Sprintf("cannot clear %s / %s", g.players[p].Name, g.deck.Cards[c])}
	case Suspected:
		if cur.Terminal() {
			return nil
		}
	case NotOwned:
		if cur == Owned {
			return g.conflict(p, c, "already known to hold it")
		}
	case Owned:
		if g.slots[g.deck.CategoryOf(g.deck.Cards[c])] == c {
			return g.conflict(p, c, "the card is in the case file")
		}
		if owner := g.Owner(c); owner >= 0 {
			return g.conflict(p, c, "already held by "+g.players[owner].Name)
		}
		if cur == NotOwned {
			return g.conflict(p, c, "already known not to hold it")
		}
		for q := range g.cells {
			if q != p && g.cells[q][c] != NotOwned {
				g.cells[q][c] = NotOwned
			}
		}
	}
	g.cells[p][c] = s
	g.version++
	return nil
}

// SetCaseFile puts card c in its category's slot and marks it NotOwned
// for every player.
func (g *Grid) SetCaseFile(c int) error {
	card := g.deck.Cards[c]
	cat := g.deck.CategoryOf(card)
	switch cur := g.slots[cat]; {
	case cur == c:
		return nil
	case cur >= 0:
		return &ConflictError{
			Category: card.Category,
			Card:     card.String(),
			Reason:   "case file already holds " + g.deck.Cards[cur].String(),
		}
	}
	if owner := g.Owner(c); owner >= 0 {
		return &ConflictError{
			Category: card.Category,
			Card:     card.String(),
			Reason:   "held by " + g.players[owner].Name,
		}
	}
	g.slots[cat] = c
	g.version++
	for p := range g.cells {
		g.cells[p][c] = NotOwned
	}
	return nil
}

// AddDisproof records that player p holds at least one of cards.
func (g *Grid) AddDisproof(p int, cards [3]int) {
	sorted := cards
	slices.Sort(sorted[:])
	d := Disproof{Player: p, Cards: sorted}
	if slices.Contains(g.disproofs, d) {
		return
	}
	g.disproofs = append(g.disproofs, d)
	g.version++
}

func (g *Grid) Disproofs() []Disproof { return g.disproofs }

func (g *Grid) conflict(p, c int, reason string) error {
	return &ConflictError{
		Player: g.players[p].Name,
		Card:   g.deck.Cards[c].String(),
		Reason: reason,
	}
}

// Clone returns an independent copy for trial application.
func (g *Grid) Clone() *Grid {
	out := &Grid{
		deck:      g.deck,
		players:   g.players,
		cells:     make([][]Status, len(g.cells)),
		slots:     slices.Clone(g.slots),
		disproofs: slices.Clone(g.disproofs),
		version:   g.version,
	}
	for p := range g.cells {
		out.cells[p] = slices.Clone(g.cells[p])
	}
	return out
}

// Diff lists the cells and slots that differ from before.
func (g *Grid) Diff(before *Grid) GridDelta {
	var delta GridDelta
	for c, card := range g.deck.Cards {
		for p, player := range g.players {
			if from, to := before.cells[p][c], g.cells[p][c]; from != to {
				delta.Cells = append(delta.Cells, CellChange{Player: player.Name, Card: card.String(), From: from, To: to})
			}
		}
	}
	for cat, c := range g.slots {
		if before.slots[cat] == c {
			continue
		}
		change := SlotChange{Category: g.deck.Categories[cat].Name}
		if c >= 0 {
			change.Card = g.deck.Cards[c].String()
		}
		delta.Slots = append(delta.Slots, change)
	}
	return delta
}

// CaseFile lists every category's slot in declaration order.
func (g *Grid) CaseFile() []CaseFileEntry {
	out := make([]CaseFileEntry, len(g.slots))
	for cat, c := range g.slots {
		out[cat] = CaseFileEntry{Category: g.deck.Categories[cat].Name}
		if c >= 0 {
			card := g.deck.Cards[c]
			out[cat].Card = &card
		}
	}
	return out
}

func (g *Grid) Snapshot() Snapshot {
	s := Snapshot{
		Deck:     g.deck,
		Players:  slices.Clone(g.players),
		Cells:    make([][]Status, len(g.cells)),
		CaseFile: g.CaseFile(),
	}
	for p := range g.cells {
		s.Cells[p] = slices.Clone(g.cells[p])
	}
	return s
}
