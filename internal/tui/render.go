package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/tatianab/cluedo-solver/internal/engine"
	"github.com/tatianab/cluedo-solver/internal/models"
)

var (
	gridHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500")).Padding(0, 1)
	cardCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	caseCellStyle   = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFD700"))
	categoryStyle   = lipgloss.NewStyle().Padding(0, 1).Italic(true).Foreground(lipgloss.Color("#888888"))
	markCellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Center)
)

// RenderGrid draws the card x player grid. Headers carry the
// owned/hand counters, case file cards get a star.
func RenderGrid(e *engine.Engine) string {
	state := e.State()

	headers := []string{"Card"}
	for _, p := range state.Players {
		owned, hand, _ := e.HandCount(seat(p))
		headers = append(headers, fmt.Sprintf("%s (%d/%d)", p.Name, owned, hand))
	}

	inCase := make(map[int]bool)
	for _, entry := range state.CaseFile {
		if entry.Card != nil {
			inCase[entry.Card.Index] = true
		}
	}

	var rows [][]string
	categoryRows := make(map[int]bool)
	caseRows := make(map[int]bool)
	for _, category := range state.Deck.Categories {
		categoryRows[len(rows)] = true
		rows = append(rows, append([]string{strings.ToUpper(category.Name)}, make([]string, len(state.Players))...))
		for _, card := range category.Cards {
			name := card.String()
			if inCase[card.Index] {
				caseRows[len(rows)] = true
				name = "★ " + name
			}
			row := []string{name}
			for p := range state.Players {
				row = append(row, state.Cells[p][card.Index].Symbol())
			}
			rows = append(rows, row)
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#3C3C3C"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return gridHeaderStyle
			case categoryRows[row]:
				return categoryStyle
			case col == 0 && caseRows[row]:
				return caseCellStyle
			case col == 0:
				return cardCellStyle
			}
			return markCellStyle
		})
	return t.String()
}

// seat is the numeric alias of p, which no player name can shadow.
func seat(p models.Player) string {
	return strconv.Itoa(p.Index + 1)
}

// RenderCaseFile lists the case file, one category per line.
func RenderCaseFile(e *engine.Engine) string {
	var b strings.Builder
	for _, entry := range e.CaseFile() {
		card := "?"
		if entry.Card != nil {
			card = entry.Card.String()
		}
		fmt.Fprintf(&b, "%s: %s\n", entry.Category, card)
	}
	return b.String()
}

// RenderCounters lists known/total cells per player.
func RenderCounters(e *engine.Engine) string {
	var b strings.Builder
	for _, p := range e.Players() {
		known, total, _ := e.Counters(seat(p))
		fmt.Fprintf(&b, "%s: %d/%d\n", p.Name, known, total)
	}
	return b.String()
}

// RenderSuggestion is the one-line proposal for the next suggestion.
func RenderSuggestion(e *engine.Engine) string {
	cards := e.Suggestion()
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = c.String()
	}
	return "Next suggestion → " + strings.Join(names, " • ")
}

// DescribeDelta summarizes what a command changed.
func DescribeDelta(d models.GridDelta) string {
	if d.Empty() {
		return "Nothing new."
	}
	var parts []string
	if n := len(d.Cells); n == 1 {
		parts = append(parts, "1 cell updated")
	} else if n > 1 {
		parts = append(parts, fmt.Sprintf("%d cells updated", n))
	}
	for _, s := range d.Slots {
		if s.Card != "" {
			parts = append(parts, fmt.Sprintf("case file %s: %s", s.Category, s.Card))
		}
	}
	if len(parts) == 0 {
		return "Case file cleared."
	}
	return strings.Join(parts, "; ") + "."
}
