package engine

import (
	"strings"

	"github.com/tatianab/cluedo-solver/internal/models"
)

// Kind is one of the recognized commands.
type Kind int

const (
	KindOwn Kind = iota
	KindNot
	KindHas
	KindAsk
	KindPlay
	KindIs
	KindReset
	KindHelp
)

var kindNames = [...]string{
	KindOwn:   "own",
	KindNot:   "not",
	KindHas:   "has",
	KindAsk:   "ask",
	KindPlay:  "play",
	KindIs:    "is",
	KindReset: "reset",
	KindHelp:  "help",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind resolves a command name, ignoring case.
func ParseKind(name string) (Kind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range kindNames {
		if n == name {
			return Kind(k), nil
		}
	}
	return 0, models.Invalid("unknown command: %q", name)
}

// factRule applies the direct consequences of one command to g.
type factRule func(e *Engine, g *models.Grid, args []string) error

// factRules is the dispatch table for the commands that write facts.
// reset and help are handled by the engine itself.
var factRules = map[Kind]factRule{
	KindOwn:  applyOwn,
	KindNot:  applyNot,
	KindHas:  applyHas,
	KindAsk:  applyAsk,
	KindPlay: applyPlay,
	KindIs:   applyIs,
}

func (e *Engine) player(token string) (models.Player, error) {
	p, ok := models.FindPlayer(e.players, token)
	if !ok {
		return models.Player{}, models.Invalid("unknown player: %s", token)
	}
	return p, nil
}

// card resolves a card that may be spelled over several tokens.
func (e *Engine) card(tokens ...string) (models.Card, error) {
	name := strings.Join(tokens, " ")
	c, ok := e.deck.Card(name)
	if !ok {
		return models.Card{}, models.Invalid("unknown card: %s", name)
	}
	return c, nil
}

// trio resolves the three distinct cards of a suggestion.
func (e *Engine) trio(tokens []string) ([3]int, error) {
	var out [3]int
	for i, tok := range tokens[:3] {
		c, err := e.card(tok)
		if err != nil {
			return out, err
		}
		for _, prev := range out[:i] {
			if prev == c.Index {
				return out, models.Invalid("%s is suggested twice", c)
			}
		}
		out[i] = c.Index
	}
	return out, nil
}

func isNone(token string) bool {
	return strings.EqualFold(token, "none")
}
