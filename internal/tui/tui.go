package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tatianab/cluedo-solver/internal/engine"
)

const HelpText = `Commands
  own <card> …                       you hold these cards (a full hand rules out the rest)
  not <player> <card>                that player lacks the card
  has <player> <card>                that player holds the card
  is <card>                          the card is in the case file
  ask <asker> c1 c2 c3 <shower …|none>
                                     someone else's suggestion and who showed a card
  play c1 c2 c3 <player [card] …|none>
                                     your suggestion: who passed, who showed what
  reset                              clear the grid
  help                               this text
  quit                               leave

Players: you, 2..N, p2, player2 or their names. Cards: id or name, any case.`

type sessionState int

const (
	statePlaying sessionState = iota
	stateConfirmReset
)

type model struct {
	state     sessionState
	engine    *engine.Engine
	textInput textinput.Model
	viewport  viewport.Model
	gameLog   string
	width     int
	height    int
}

var (
	userStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Background(lipgloss.Color("#5F5F87")).
			Bold(true).
			PaddingLeft(1)

	gameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Italic(true)

	stateStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("#3C3C3C")).
			PaddingLeft(2).
			Foreground(lipgloss.Color("#AAAAAA"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500")).
			Bold(true).
			Underline(true)
)

func NewModel(eng *engine.Engine) model {
	ti := textinput.New()
	ti.Placeholder = "own dagger lounge plum"
	ti.Focus()
	ti.CharLimit = 156
	ti.Width = 60

	return model{
		state:     statePlaying,
		engine:    eng,
		textInput: ti,
		viewport:  viewport.New(80, 8),
		gameLog:   gameStyle.Render("Type 'help' for the list of commands."),
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == stateConfirmReset {
			return m.confirmReset(msg), nil
		}
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			line := strings.TrimSpace(m.textInput.Value())
			if line == "" {
				return m, nil
			}
			m.textInput.Reset()
			m.appendLog(userStyle.Render("> " + line))
			return m.run(line)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-lipgloss.Height(m.board())-6, 3)
		m.viewport.SetContent(m.gameLog)
		m.viewport.GotoBottom()
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// run hands a typed line to the engine. Tokenizing happens here, the
// engine only sees a command name and its arguments.
func (m model) run(line string) (tea.Model, tea.Cmd) {
	fields := strings.Fields(line)
	name, args := strings.ToLower(fields[0]), fields[1:]
	switch name {
	case "quit", "exit", "/quit":
		return m, tea.Quit
	case "help":
		m.appendLog(helpStyle.Render(HelpText))
		return m, nil
	case "reset":
		if len(args) == 0 {
			m.state = stateConfirmReset
			m.appendLog(gameStyle.Render("Clear the grid? (y/n)"))
			return m, nil
		}
	}

	delta, err := m.engine.ApplyCommand(name, args)
	if err != nil {
		m.appendLog(errorStyle.Render("Error: " + err.Error()))
		return m, nil
	}
	m.appendLog(gameStyle.Render(DescribeDelta(delta)))
	return m, nil
}

func (m model) confirmReset(msg tea.KeyMsg) model {
	m.state = statePlaying
	if strings.EqualFold(msg.String(), "y") {
		if _, err := m.engine.ApplyCommand("reset", nil); err != nil {
			m.appendLog(errorStyle.Render("Error: " + err.Error()))
			return m
		}
		m.appendLog(gameStyle.Render("Grid cleared."))
		return m
	}
	m.appendLog(gameStyle.Render("Reset cancelled."))
	return m
}

func (m *model) appendLog(s string) {
	m.gameLog += "\n" + s
	m.viewport.SetContent(m.gameLog)
	m.viewport.GotoBottom()
}

func (m model) View() string {
	help := helpStyle.Render("own / not / has / ask / play / is / reset • help for details • Esc to quit")
	s := lipgloss.JoinVertical(lipgloss.Left,
		m.board(),
		m.viewport.View(),
		"\n"+m.textInput.View(),
		help,
	)
	return "\n" + s + "\n"
}

// board is the grid with the case file and counters next to it.
func (m model) board() string {
	grid := RenderGrid(m.engine)
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, grid, m.renderState(lipgloss.Height(grid))),
		helpStyle.Render(RenderSuggestion(m.engine)),
	)
}

func (m model) renderState(height int) string {
	caseFile := titleStyle.Render("CASE FILE") + "\n" + RenderCaseFile(m.engine) + "\n"
	counters := titleStyle.Render("KNOWN") + "\n" + RenderCounters(m.engine)
	return stateStyle.Height(height).Render(caseFile + counters)
}

func Run(eng *engine.Engine) error {
	p := tea.NewProgram(NewModel(eng), tea.WithAltScreen())
	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
