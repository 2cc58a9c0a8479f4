package web

import (
	"github.com/peterkuimelis/colossus/internal/game"
)

// DeckInfo is the JSON representation of a deck for the /api/decks endpoint.
type DeckInfo struct {
	Number int        `json:"number"`
	Name   string     `json:"name"`
	Cards  []DeckCard `json:"cards"`
	Size   int        `json:"size"`
	Legal  bool       `json:"legal"`
	Error  string     `json:"error,omitempty"`
}

// DeckCard is one line of a deck list.
type DeckCard struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// deckInfos lists every deck in df with its legality under rules.
func deckInfos(df *game.DeckFile, rules game.Rules) []DeckInfo {
	decks := make([]DeckInfo, 0, len(df.Decks))
	for i, d := range df.Decks {
		di := DeckInfo{Number: i + 1, Name: d.Name, Cards: []DeckCard{}}
		for _, entry := range d.Cards {
			name := entry.ID
			if c, ok := game.FindCard(entry.ID); ok {
				name = c.Name
			}
			di.Cards = append(di.Cards, DeckCard{ID: entry.ID, Name: name, Count: entry.Count})
			di.Size += entry.Count
		}
		if _, err := d.Build(rules); err != nil {
			di.Error = err.Error()
		} else {
			di.Legal = true
		}
		decks = append(decks, di)
	}
	return decks
}
