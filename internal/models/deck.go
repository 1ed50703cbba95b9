package models

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed decks/classic.yaml
var classicDeck []byte

// ClassicDeck returns the standard six suspects, six weapons and nine rooms.
func ClassicDeck() *Deck {
	d, err := ParseDeck(classicDeck)
	if err != nil {
		panic(fmt.Sprintf("embedded classic deck: %v", err))
	}
	return d
}

// LoadDeck reads a YAML deck definition from path.
func LoadDeck(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading deck: %w", err)
	}
	d, err := ParseDeck(data)
	if err != nil {
		return nil, fmt.Errorf("loading deck %s: %w", path, err)
	}
	return d, nil
}

// ParseDeck decodes and validates a YAML deck definition.
func ParseDeck(data []byte) (*Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse deck YAML: %w", err)
	}
	if err := d.index(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Marshal encodes the deck back into its YAML form.
func (d *Deck) Marshal() ([]byte, error) {
	return yaml.Marshal(d)
}

func (d *Deck) index() error {
	if len(d.Categories) == 0 {
		return fmt.Errorf("at least one category is required")
	}
	d.Cards = nil
	d.lookup = make(map[string]int)
	d.categoryIndex = make(map[string]int)
	for ci := range d.Categories {
		cat := &d.Categories[ci]
		cat.Name = strings.TrimSpace(cat.Name)
		if cat.Name == "" {
			return fmt.Errorf("category %d name is required", ci)
		}
		key := NormalizeName(cat.Name)
		if _, exists := d.categoryIndex[key]; exists {
			return fmt.Errorf("duplicate category name: %s", cat.Name)
		}
		d.categoryIndex[key] = ci
		if len(cat.Cards) < 2 {
			return fmt.Errorf("category %s needs at least two cards", cat.Name)
		}
		for i := range cat.Cards {
			c := &cat.Cards[i]
			c.ID = strings.TrimSpace(c.ID)
			if c.ID == "" {
				return fmt.Errorf("card %d of category %s: id is required", i, cat.Name)
			}
			if c.Name == "" {
				c.Name = c.ID
			}
			c.Category = cat.Name
			c.Index = len(d.Cards)
			for _, k := range []string{NormalizeName(c.ID), NormalizeName(c.Name)} {
				if prev, exists := d.lookup[k]; exists && prev != c.Index {
					return fmt.Errorf("duplicate card name: %s", k)
				}
				d.lookup[k] = c.Index
			}
			d.Cards = append(d.Cards, *c)
		}
	}
	return nil
}

// Card resolves a case-insensitive card token, by id or display name.
func (d *Deck) Card(name string) (Card, bool) {
	i, ok := d.lookup[NormalizeName(name)]
	if !ok {
		return Card{}, false
	}
	return d.Cards[i], true
}

// CategoryOf returns the position of the card's category.
func (d *Deck) CategoryOf(c Card) int {
	return d.categoryIndex[NormalizeName(c.Category)]
}

// InPlay is the number of cards dealt to players: one card of every
// category goes to the case file.
func (d *Deck) InPlay() int {
	return len(d.Cards) - len(d.Categories)
}
