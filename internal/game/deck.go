package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeckFile represents the top-level YAML structure.
type DeckFile struct {
	Decks []DeckEntry `yaml:"decks" json:"decks"`
}

// DeckEntry represents a single deck in the YAML file.
type DeckEntry struct {
	Name  string      `yaml:"name" json:"name"`
	Cards []CardEntry `yaml:"cards" json:"cards"`
}

// CardEntry represents a card and its count in a deck.
type CardEntry struct {
	ID    string `yaml:"id" json:"id"`
	Count int    `yaml:"count" json:"count"`
}

// ErrInvalidDeck is wrapped by deck validation failures.
var ErrInvalidDeck = errors.New("invalid deck")

// LoadDeckFile reads and parses a YAML deck file.
func LoadDeckFile(path string) (*DeckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck file: %w", err)
	}
	return ParseDecks(data)
}

// ParseDecks parses YAML deck data.
func ParseDecks(data []byte) (*DeckFile, error) {
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parse deck YAML: %w", err)
	}
	return &df, nil
}

// Build validates the deck against rules and returns its cards in list order.
func (e DeckEntry) Build(rules Rules) ([]*Card, error) {
	var cards []*Card
	for _, entry := range e.Cards {
		card, ok := FindCard(entry.ID)
		if !ok {
			return nil, fmt.Errorf("%w %q: unknown card %q", ErrInvalidDeck, e.Name, entry.ID)
		}
		limit := rules.MaxCardCopies
		if card.MaxCopies > 0 {
			limit = card.MaxCopies
		}
		if entry.Count < 1 || entry.Count > limit {
			return nil, fmt.Errorf("%w %q: %d copies of %s (allowed 1-%d)", ErrInvalidDeck, e.Name, entry.Count, card.Name, limit)
		}
		cards = append(cards, card)
		for i := 1; i < entry.Count; i++ {
			cards = append(cards, LookupCard(entry.ID))
		}
	}
	if len(cards) != rules.DeckSize {
		return nil, fmt.Errorf("%w %q: %d cards, need %d", ErrInvalidDeck, e.Name, len(cards), rules.DeckSize)
	}
	return cards, nil
}

// Deck returns the Nth deck (1-indexed), validated against rules.
func (df *DeckFile) Deck(n int, rules Rules) (string, []*Card, error) {
	if n < 1 || n > len(df.Decks) {
		return "", nil, fmt.Errorf("deck %d not found (have %d decks)", n, len(df.Decks))
	}
	deck := df.Decks[n-1]
	cards, err := deck.Build(rules)
	if err != nil {
		return "", nil, err
	}
	return deck.Name, cards, nil
}

// DeckByNumber loads path and returns its Nth deck (1-indexed).
func DeckByNumber(path string, n int, rules Rules) (string, []*Card, error) {
	df, err := LoadDeckFile(path)
	if err != nil {
		return "", nil, err
	}
	return df.Deck(n, rules)
}
