package game

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// paddedDeckYAML returns YAML card lines for extra, topped up with two-copy
// entries until the deck holds 20 cards.
func paddedDeckYAML(name string, extra map[string]int) string {
	var b strings.Builder
	b.WriteString("decks:\n  - name: " + name + "\n    cards:\n")
	total := 0
	for id, n := range extra {
		b.WriteString("      - id: " + id + "\n        count: " + strconv.Itoa(n) + "\n")
		total += n
	}
	for _, id := range []string{"the-champ", "northern-queen", "party-trick", "her-spirit", "dust-bowl", "chromax", "forest-witch", "skinlette", "yodkai", "madame-nilah"} {
		if total >= 20 {
			break
		}
		if _, taken := extra[id]; taken {
			continue
		}
		n := 2
		if 20-total < 2 {
			n = 1
		}
		b.WriteString("      - id: " + id + "\n        count: " + strconv.Itoa(n) + "\n")
		total += n
	}
	return b.String()
}

func TestParseDecks(t *testing.T) {
	df, err := ParseDecks([]byte(openingDecksYAML))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(df.Decks) != 2 {
		t.Fatalf("expected 2 decks, got %d", len(df.Decks))
	}
	name, cards, err := df.Deck(1, DefaultRules())
	if err != nil {
		t.Fatalf("deck 1: %v", err)
	}
	if name == "" || len(cards) != 20 {
		t.Errorf("unexpected deck %q with %d cards", name, len(cards))
	}
	if _, _, err := df.Deck(3, DefaultRules()); err == nil {
		t.Error("deck 3 should not exist")
	}
}

func TestParseDecksRejectsBadYAML(t *testing.T) {
	if _, err := ParseDecks([]byte("decks: [unterminated")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestDeckValidation(t *testing.T) {
	rules := DefaultRules()
	cases := []struct {
		name    string
		yaml    string
		wantErr bool
	}{
		{"valid", paddedDeckYAML("ok", nil), false},
		{"unknown card", paddedDeckYAML("ghost", map[string]int{"no-such-card": 2}), true},
		{"too many copies", paddedDeckYAML("greedy", map[string]int{"the-champ": 3}), true},
		{"zero copies", paddedDeckYAML("empty", map[string]int{"the-champ": 0}), true},
		{"tax allows three", paddedDeckYAML("taxed", map[string]int{"universal-tax": 3}), false},
		{"wrath allows one", paddedDeckYAML("wrathful", map[string]int{"ungo-wrath": 2}), true},
		{"too small", "decks:\n  - name: tiny\n    cards:\n      - id: the-champ\n        count: 2\n", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			df, err := ParseDecks([]byte(tc.yaml))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			_, cards, err := df.Deck(1, rules)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidDeck) {
					t.Fatalf("expected ErrInvalidDeck, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(cards) != rules.DeckSize {
				t.Errorf("expected %d cards, got %d", rules.DeckSize, len(cards))
			}
		})
	}
}

func TestDeckCopiesAreDistinct(t *testing.T) {
	df, err := ParseDecks([]byte(paddedDeckYAML("twins", nil)))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, cards, err := df.Deck(1, DefaultRules())
	if err != nil {
		t.Fatalf("deck: %v", err)
	}
	if cards[0].ID != cards[1].ID || cards[0] == cards[1] {
		t.Error("two copies should be separate card values with the same id")
	}
}

func TestDeckByNumber(t *testing.T) {
	path := filepath.Join(t.TempDir(), "decks.yaml")
	if err := os.WriteFile(path, []byte(openingDecksYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, cards, err := DeckByNumber(path, 2, DefaultRules()); err != nil || len(cards) != 20 {
		t.Fatalf("deck 2: %d cards, err %v", len(cards), err)
	}
	if _, _, err := DeckByNumber(filepath.Join(t.TempDir(), "missing.yaml"), 1, DefaultRules()); err == nil {
		t.Error("missing file should fail")
	}
}

func TestShippedDecksAreLegal(t *testing.T) {
	df, err := LoadDeckFile("../../decks.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(df.Decks) == 0 {
		t.Fatal("no decks shipped")
	}
	for i := range df.Decks {
		if _, _, err := df.Deck(i+1, DefaultRules()); err != nil {
			t.Errorf("deck %d: %v", i+1, err)
		}
	}
}
