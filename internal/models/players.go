package models

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	MinPlayers = 3
	MaxPlayers = 6
	UserName   = "You"
)

// HandSizes deals the cards in play as evenly as possible. The leftover
// cards go one each to the opponents seated right after the user.
func HandSizes(d *Deck, numPlayers int) []int {
	base, extras := d.InPlay()/numPlayers, d.InPlay()%numPlayers
	sizes := make([]int, numPlayers)
	for i := range sizes {
		sizes[i] = base
		if i >= 1 && i <= extras {
			sizes[i]++
		}
	}
	return sizes
}

// NewPlayers builds the seating. names optionally renames the opponents in
// turn order; hands optionally overrides the dealt hand sizes.
func NewPlayers(d *Deck, numPlayers int, names []string, hands []int) ([]Player, error) {
	if numPlayers < MinPlayers || numPlayers > MaxPlayers {
		return nil, fmt.Errorf("player count must be between %d and %d, got %d", MinPlayers, MaxPlayers, numPlayers)
	}
	if len(names) > numPlayers-1 {
		return nil, fmt.Errorf("%d opponent names given for %d opponents", len(names), numPlayers-1)
	}
	if hands == nil {
		hands = HandSizes(d, numPlayers)
	}
	if len(hands) != numPlayers {
		return nil, fmt.Errorf("%d hand sizes given for %d players", len(hands), numPlayers)
	}
	total := 0
	for _, h := range hands {
		if h < 0 {
			return nil, fmt.Errorf("hand sizes must not be negative")
		}
		total += h
	}
	if total != d.InPlay() {
		return nil, fmt.Errorf("hand sizes add up to %d, deck deals %d cards", total, d.InPlay())
	}

	players := make([]Player, numPlayers)
	seen := map[string]bool{NormalizeName(UserName): true, "me": true}
	for i := range players {
		name := UserName
		if i > 0 {
			name = "Player " + strconv.Itoa(i+1)
			if i-1 < len(names) && strings.TrimSpace(names[i-1]) != "" {
				name = strings.TrimSpace(names[i-1])
				if err := checkName(d, name); err != nil {
					return nil, err
				}
			}
			key := NormalizeName(name)
			if seen[key] {
				return nil, fmt.Errorf("duplicate player name: %s", name)
			}
			seen[key] = true
		}
		players[i] = Player{Name: name, Index: i, Hand: hands[i]}
	}
	return players, nil
}

// checkName rejects an opponent name that a command would read as
// something else: a seat alias, "none", or a card.
func checkName(d *Deck, name string) error {
	key := NormalizeName(name)
	switch key {
	case "you", "me", "none":
		return fmt.Errorf("player name %q is reserved", name)
	}
	if _, err := strconv.Atoi(seatAlias(key)); err == nil {
		return fmt.Errorf("player name %q looks like a seat number", name)
	}
	if c, ok := d.Card(name); ok {
		return fmt.Errorf("player name %q is the name of card %s", name, c)
	}
	return nil
}

func seatAlias(key string) string {
	return strings.TrimPrefix(strings.TrimPrefix(key, "player"), "p")
}

// FindPlayer resolves a player token: "you"/"me", a player name, or a seat
// alias "N", "pN", "playerN" where seat 1 is the user.
func FindPlayer(players []Player, token string) (Player, bool) {
	key := NormalizeName(token)
	if key == "you" || key == "me" {
		return players[0], true
	}
	for _, p := range players {
		if NormalizeName(p.Name) == key {
			return p, true
		}
	}
	if n, err := strconv.Atoi(seatAlias(key)); err == nil && n >= 1 && n <= len(players) {
		return players[n-1], true
	}
	return Player{}, false
}
