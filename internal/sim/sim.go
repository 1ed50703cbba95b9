// Package sim deals random games and reports their events as engine
// commands, so that deductions can be checked against the real deal.
package sim

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"github.com/tatianab/cluedo-solver/internal/engine"
	"github.com/tatianab/cluedo-solver/internal/models"
)

// Game is a dealt game whose hidden state is fully known.
type Game struct {
	Deck     *models.Deck
	Players  []models.Player
	Hands    [][]int // card indices per player
	Solution []int   // card index per category

	owner []int // player per card, -1 for the case file
	rng   *rand.Rand
}

// Deal picks a solution and deals the rest following the players' hand sizes.
func Deal(d *models.Deck, players []models.Player, rng *rand.Rand) *Game {
	g := &Game{
		Deck:     d,
		Players:  players,
		Hands:    make([][]int, len(players)),
		Solution: make([]int, len(d.Categories)),
		owner:    make([]int, len(d.Cards)),
		rng:      rng,
	}
	inCase := make(map[int]bool)
	for cat, category := range d.Categories {
		c := category.Cards[rng.IntN(len(category.Cards))].Index
		g.Solution[cat] = c
		inCase[c] = true
		g.owner[c] = -1
	}
	var rest []int
	for c := range d.Cards {
		if !inCase[c] {
			rest = append(rest, c)
		}
	}
	rng.Shuffle(len(rest), func(i, j int) { rest[i], rest[j] = rest[j], rest[i] })
	for p, player := range players {
		g.Hands[p] = rest[:player.Hand]
		for _, c := range g.Hands[p] {
			g.owner[c] = p
		}
		rest = rest[player.Hand:]
	}
	return g
}

// Token is the command token naming seat p.
func Token(p int) string {
	if p == 0 {
		return "you"
	}
	return fmt.Sprintf("p%d", p+1)
}

// Own is the user's opening statement of their hand.
func (g *Game) Own() (string, []string) {
	args := make([]string, len(g.Hands[0]))
	for i, c := range g.Hands[0] {
		args[i] = g.Deck.Cards[c].ID
	}
	return "own", args
}

// Turn plays one suggestion by asker and returns the command reporting it.
func (g *Game) Turn(asker int) (string, []string) {
	trio := g.suggest()
	n := len(g.Players)
	shower, shown := -1, -1
	var passed []int
	for d := 1; d < n; d++ {
		p := (asker + d) % n
		var held []int
		for _, c := range trio {
			if g.owner[c] == p {
				held = append(held, c)
			}
		}
		if len(held) > 0 {
			shower, shown = p, held[g.rng.IntN(len(held))]
			break
		}
		passed = append(passed, p)
	}

	cards := make([]string, 3)
	for i, c := range trio {
		cards[i] = g.Deck.Cards[c].ID
	}
	if asker != 0 {
		args := append([]string{Token(asker)}, cards...)
		if shower < 0 {
			return "ask", append(args, "none")
		}
		return "ask", append(args, Token(shower))
	}
	if shower < 0 {
		return "play", append(cards, "none")
	}
	args := cards
	for _, p := range passed {
		// Passers may go unreported; their seats still tell.
		if g.rng.IntN(2) == 0 {
			args = append(args, Token(p))
		}
	}
	return "play", append(args, Token(shower), g.Deck.Cards[shown].ID)
}

func (g *Game) suggest() [3]int {
	var trio [3]int
	if len(g.Deck.Categories) >= 3 {
		for i := range trio {
			cards := g.Deck.Categories[i].Cards
			trio[i] = cards[g.rng.IntN(len(cards))].Index
		}
		return trio
	}
	perm := g.rng.Perm(len(g.Deck.Cards))
	copy(trio[:], perm[:3])
	return trio
}

// Check verifies that everything e claims is true of the deal.
func (g *Game) Check(e *engine.Engine) error {
	state := e.State()
	for p, row := range state.Cells {
		for c, s := range row {
			switch {
			case s == models.Owned && g.owner[c] != p:
				return fmt.Errorf("%s is marked as holding %s", g.Players[p].Name, g.Deck.Cards[c])
			case s == models.NotOwned && g.owner[c] == p:
				return fmt.Errorf("%s is marked as not holding %s", g.Players[p].Name, g.Deck.Cards[c])
			}
		}
	}
	for cat, entry := range state.CaseFile {
		if entry.Card != nil && entry.Card.Index != g.Solution[cat] {
			return fmt.Errorf("case file %s: deduced %s, dealt %s", entry.Category, entry.Card, g.Deck.Cards[g.Solution[cat]])
		}
	}
	return nil
}

// Solved reports whether every case file slot is resolved.
func Solved(e *engine.Engine) bool {
	for _, entry := range e.CaseFile() {
		if entry.Card == nil {
			return false
		}
	}
	return true
}

// Play feeds the user's hand and then up to maxTurns suggestions to e,
// seats taking turns. It returns the number of turns played.
func (g *Game) Play(e *engine.Engine, maxTurns int) (int, error) {
	name, args := g.Own()
	if _, err := e.ApplyCommand(name, args); err != nil {
		return 0, fmt.Errorf("%s %v: %w", name, args, err)
	}
	for turn := 1; turn <= maxTurns; turn++ {
		name, args := g.Turn((turn - 1) % len(g.Players))
		if _, err := e.ApplyCommand(name, args); err != nil {
			return turn, fmt.Errorf("turn %d: %s %v: %w", turn, name, args, err)
		}
		if err := g.Check(e); err != nil {
			return turn, fmt.Errorf("turn %d: %w", turn, err)
		}
		if Solved(e) {
			return turn, nil
		}
	}
	return maxTurns, nil
}

// Options configures a batch of simulated games.
type Options struct {
	Games    int
	Seed     uint64
	MaxTurns int
}

// Summary is the outcome of a batch.
type Summary struct {
	Games  int
	Solved int
	Turns  int // summed over solved games
}

// AverageTurns is the mean number of turns of the solved games.
func (s Summary) AverageTurns() float64 {
	if s.Solved == 0 {
		return 0
	}
	return float64(s.Turns) / float64(s.Solved)
}

// Simulate plays opts.Games seeded games, writing one line per game to w.
// A deduction that contradicts the deal stops the batch.
func Simulate(w io.Writer, d *models.Deck, players []models.Player, logger *slog.Logger, opts Options) (Summary, error) {
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed))
	sum := Summary{Games: opts.Games}
	for i := 1; i <= opts.Games; i++ {
		game := Deal(d, players, rng)
		eng := engine.NewEngine(d, players, logger)

		turns, err := game.Play(eng, opts.MaxTurns)
		if err != nil {
			return sum, fmt.Errorf("game %d: %w", i, err)
		}
		if Solved(eng) {
			sum.Solved++
			sum.Turns += turns
			fmt.Fprintf(w, "Game %d: solved after %d turns\n", i, turns)
		} else {
			fmt.Fprintf(w, "Game %d: unsolved after %d turns\n", i, turns)
		}
	}
	return sum, nil
}
