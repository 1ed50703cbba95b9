package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGrid(t *testing.T, numPlayers int) (*Grid, *Deck) {
	t.Helper()
	d := ClassicDeck()
	players, err := NewPlayers(d, numPlayers, nil, nil)
	require.NoError(t, err)
	return NewGrid(d, players), d
}

func cardIndex(t *testing.T, d *Deck, name string) int {
	t.Helper()
	c, ok := d.Card(name)
	require.True(t, ok, name)
	return c.Index
}

func TestGridStartsUnknown(t *testing.T) {
	g, d := newTestGrid(t, 4)

	for p := range g.Players() {
		for c := range d.Cards {
			assert.Equal(t, Unknown, g.Status(p, c))
		}
	}
	for cat := range d.Categories {
		assert.Equal(t, -1, g.Slot(cat))
	}
}

func TestSetOwnedExcludesOthers(t *testing.T) {
	g, d := newTestGrid(t, 4)
	wrench := cardIndex(t, d, "wrench")

	require.NoError(t, g.SetStatus(2, wrench, Owned))

	assert.Equal(t, Owned, g.Status(2, wrench))
	for _, p := range []int{0, 1, 3} {
		assert.Equal(t, NotOwned, g.Status(p, wrench))
	}
	assert.Equal(t, 2, g.Owner(wrench))
}

func TestSetStatusIsIdempotent(t *testing.T) {
	g, d := newTestGrid(t, 4)
	rope := cardIndex(t, d, "rope")

	require.NoError(t, g.SetStatus(1, rope, NotOwned))
	v := g.Version()
	require.NoError(t, g.SetStatus(1, rope, NotOwned))
	assert.Equal(t, v, g.Version())

	require.NoError(t, g.SetStatus(2, rope, Owned))
	v = g.Version()
	require.NoError(t, g.SetStatus(2, rope, Owned))
	assert.Equal(t, v, g.Version())
}

func TestSetStatusConflicts(t *testing.T) {
	g, d := newTestGrid(t, 4)
	rope := cardIndex(t, d, "rope")
	hall := cardIndex(t, d, "hall")

	require.NoError(t, g.SetStatus(1, rope, Owned))

	err := g.SetStatus(2, rope, Owned)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
	var conflict *ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "Player 3", conflict.Player)
	assert.Equal(t, "Rope", conflict.Card)
	assert.Contains(t, conflict.Reason, "Player 2")

	assert.ErrorIs(t, g.SetStatus(1, rope, NotOwned), ErrConflict)

	require.NoError(t, g.SetStatus(0, hall, NotOwned))
	assert.ErrorIs(t, g.SetStatus(0, hall, Owned), ErrConflict)
	assert.Equal(t, NotOwned, g.Status(0, hall))
}

func TestSuspectedKeepsDefinitiveStatus(t *testing.T) {
	g, d := newTestGrid(t, 4)
	rope := cardIndex(t, d, "rope")
	hall := cardIndex(t, d, "hall")

	require.NoError(t, g.SetStatus(1, rope, NotOwned))
	require.NoError(t, g.SetStatus(1, rope, Suspected))
	assert.Equal(t, NotOwned, g.Status(1, rope))

	require.NoError(t, g.SetStatus(1, hall, Suspected))
	assert.Equal(t, Suspected, g.Status(1, hall))
	require.NoError(t, g.SetStatus(1, hall, Owned))
	assert.Equal(t, Owned, g.Status(1, hall))
}

func TestCellsCannotBeCleared(t *testing.T) {
	g, d := newTestGrid(t, 4)
	rope := cardIndex(t, d, "rope")

	require.NoError(t, g.SetStatus(1, rope, Suspected))
	assert.ErrorIs(t, g.SetStatus(1, rope, Unknown), ErrInvariant)
}

func TestSetCaseFile(t *testing.T) {
	g, d := newTestGrid(t, 4)
	rope := cardIndex(t, d, "rope")
	wrench := cardIndex(t, d, "wrench")
	weapon := d.CategoryOf(d.Cards[rope])

	require.NoError(t, g.SetCaseFile(rope))
	assert.Equal(t, rope, g.Slot(weapon))
	for p := range g.Players() {
		assert.Equal(t, NotOwned, g.Status(p, rope))
	}

	require.NoError(t, g.SetCaseFile(rope))

	err := g.SetCaseFile(wrench)
	assert.ErrorIs(t, err, ErrConflict)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "weapon", conflict.Category)

	assert.ErrorIs(t, g.SetStatus(2, rope, Owned), ErrConflict)
}

func TestSetCaseFileHeldCard(t *testing.T) {
	g, d := newTestGrid(t, 4)
	hall := cardIndex(t, d, "hall")

	require.NoError(t, g.SetStatus(3, hall, Owned))
	assert.ErrorIs(t, g.SetCaseFile(hall), ErrConflict)
	assert.Equal(t, -1, g.Slot(d.CategoryOf(d.Cards[hall])))
}

func TestCloneIsIndependent(t *testing.T) {
	g, d := newTestGrid(t, 4)
	rope := cardIndex(t, d, "rope")

	clone := g.Clone()
	require.NoError(t, clone.SetStatus(1, rope, Owned))
	require.NoError(t, clone.SetCaseFile(cardIndex(t, d, "hall")))
	clone.AddDisproof(2, [3]int{0, 6, 12})

	assert.Equal(t, Unknown, g.Status(1, rope))
	assert.Equal(t, -1, g.Slot(2))
	assert.Empty(t, g.Disproofs())
}

func TestDiff(t *testing.T) {
	g, d := newTestGrid(t, 3)
	rope := cardIndex(t, d, "rope")

	after := g.Clone()
	require.NoError(t, after.SetCaseFile(rope))

	delta := after.Diff(g)
	assert.Len(t, delta.Cells, 3)
	for _, c := range delta.Cells {
		assert.Equal(t, "Rope", c.Card)
		assert.Equal(t, Unknown, c.From)
		assert.Equal(t, NotOwned, c.To)
	}
	assert.Equal(t, []SlotChange{{Category: "weapon", Card: "Rope"}}, delta.Slots)

	cleared := g.Diff(after)
	assert.Equal(t, []SlotChange{{Category: "weapon"}}, cleared.Slots)
	assert.True(t, g.Diff(g).Empty())
}

func TestAddDisproofDeduplicates(t *testing.T) {
	g, _ := newTestGrid(t, 4)

	g.AddDisproof(1, [3]int{12, 0, 6})
	g.AddDisproof(1, [3]int{6, 12, 0})
	g.AddDisproof(2, [3]int{6, 12, 0})

	require.Len(t, g.Disproofs(), 2)
	assert.Equal(t, [3]int{0, 6, 12}, g.Disproofs()[0].Cards)
}

func TestConflictErrorMessage(t *testing.T) {
	assert.Equal(t, "conflict at You / Rope: nope", (&ConflictError{Player: "You", Card: "Rope", Reason: "nope"}).Error())
	assert.Equal(t, "conflict in weapon case file: nope", (&ConflictError{Category: "weapon", Reason: "nope"}).Error())
	assert.ErrorIs(t, Invalid("bad %s", "thing"), ErrValidation)
	assert.EqualError(t, Invalid("bad %s", "thing"), "bad thing")
}
