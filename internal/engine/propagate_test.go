package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tatianab/cluedo-solver/internal/models"
)

func TestNobodyHoldsCard(t *testing.T) {
	e := newTestEngine(t, 3)

	apply(t, e, "not p1 rope")
	apply(t, e, "not p2 rope")
	assert.Empty(t, caseFile(e, "weapon"))

	delta := apply(t, e, "not p3 rope")

	assert.Equal(t, "rope", caseFile(e, "weapon"))
	assert.Contains(t, delta.Slots, models.SlotChange{Category: "weapon", Card: "Rope"})
}

func TestRowCompletesOnceCaseFileKnown(t *testing.T) {
	e := newTestEngine(t, 3)

	apply(t, e, "not you wrench")
	apply(t, e, "not p2 wrench")
	// The wrench may still be in the case file.
	assert.Equal(t, models.Unknown, status(t, e, "p3", "wrench"))

	apply(t, e, "is rope")
	assert.Equal(t, models.Owned, status(t, e, "p3", "wrench"))

	assert.ErrorIs(t, applyErr(t, e, "not p3 wrench"), models.ErrConflict)
}

func TestCategoryCompletesByCount(t *testing.T) {
	e := newTestEngine(t, 3)

	for _, line := range []string{
		"has p2 candlestick",
		"has p2 dagger",
		"has p3 lead_pipe",
		"has p3 revolver",
	} {
		apply(t, e, line)
	}
	assert.Empty(t, caseFile(e, "weapon"))

	apply(t, e, "has you rope")

	assert.Equal(t, "wrench", caseFile(e, "weapon"))
	for _, p := range []string{"you", "p2", "p3"} {
		assert.Equal(t, models.NotOwned, status(t, e, p, "wrench"), p)
	}
}

func TestEveryCardOfCategoryHeld(t *testing.T) {
	e := newTestEngine(t, 3)

	for _, line := range []string{
		"has you scarlet",
		"has you mustard",
		"has p2 white",
		"has p2 green",
		"has p3 peacock",
	} {
		apply(t, e, line)
	}
	require.Equal(t, "plum", caseFile(e, "suspect"))

	assert.ErrorIs(t, applyErr(t, e, "has p3 plum"), models.ErrConflict)
}

func TestFullHandRulesOutTheRest(t *testing.T) {
	e := newTestEngine(t, 4)
	p4 := []string{"scarlet", "rope", "hall", "study"}

	for _, card := range p4 {
		apply(t, e, "has p4 "+card)
	}

	owned, hand, err := e.HandCount("p4")
	require.NoError(t, err)
	assert.Equal(t, 4, owned)
	assert.Equal(t, 4, hand)
	known, _, err := e.Counters("p4")
	require.NoError(t, err)
	assert.Equal(t, 21, known)
	assert.Equal(t, models.NotOwned, status(t, e, "p4", "plum"))

	assert.ErrorIs(t, applyErr(t, e, "has p4 plum"), models.ErrConflict)
}

func TestOpenCardsFillHand(t *testing.T) {
	e := newTestEngine(t, 6)
	keep := map[string]bool{"scarlet": true, "candlestick": true, "kitchen": true}

	for _, card := range e.deck.Cards {
		if !keep[card.ID] {
			apply(t, e, "not p2 "+card.ID)
		}
	}

	for id := range keep {
		assert.Equal(t, models.Owned, status(t, e, "p2", id), id)
		assert.Equal(t, models.NotOwned, status(t, e, "p3", id), id)
	}
	assert.ErrorIs(t, applyErr(t, e, "not p2 kitchen"), models.ErrConflict)
}

func TestHandTooSmallForOwnedCards(t *testing.T) {
	e := newTestEngine(t, 6)

	apply(t, e, "has p2 scarlet")
	apply(t, e, "has p2 rope")
	apply(t, e, "has p2 hall")
	assert.ErrorIs(t, applyErr(t, e, "has p2 study"), models.ErrConflict)
	assert.Equal(t, models.NotOwned, status(t, e, "p2", "study"))
}

func TestDisproofResolvedByLaterFacts(t *testing.T) {
	e := newTestEngine(t, 4)

	apply(t, e, "ask p4 green rope kitchen p2")
	assert.Equal(t, models.Suspected, status(t, e, "p2", "kitchen"))

	apply(t, e, "has p3 green")
	apply(t, e, "is rope")

	assert.Equal(t, models.Owned, status(t, e, "p2", "kitchen"))
}

func TestPropagateReachesFixedPoint(t *testing.T) {
	d := models.ClassicDeck()
	players, err := models.NewPlayers(d, 3, nil, nil)
	require.NoError(t, err)
	g := models.NewGrid(d, players)

	rope, _ := d.Card("rope")
	for p := range players {
		require.NoError(t, g.SetStatus(p, rope.Index, models.NotOwned))
	}
	require.NoError(t, propagate(g))

	assert.Equal(t, rope.Index, g.Slot(d.CategoryOf(rope)))

	v := g.Version()
	require.NoError(t, propagate(g))
	assert.Equal(t, v, g.Version())
}
