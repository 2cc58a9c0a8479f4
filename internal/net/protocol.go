package net

// Message types for the JSON protocol over TCP.

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"`

	// For "notify"
	Event *EventView `json:"event,omitempty"`

	// For "choose_action"
	Actions []ActionView `json:"actions,omitempty"`
	State   *StateView   `json:"state,omitempty"`

	// For "choose_cards", "choose_yes_no", "choose_option" and "choose_number"
	Prompt     string     `json:"prompt,omitempty"`
	Candidates []CardView `json:"candidates,omitempty"`
	Options    []string   `json:"options,omitempty"`
	Min        int        `json:"min,omitempty"`
	Max        int        `json:"max,omitempty"`

	// For "game_over"
	Winner int    `json:"winner,omitempty"`
	Result string `json:"result,omitempty"`
}

// EventView is a simplified game event for the client.
type EventView struct {
	Round   int    `json:"round"`
	Turn    int    `json:"turn"`
	Phase   string `json:"phase"`
	Player  int    `json:"player"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// ActionView is a numbered action choice.
type ActionView struct {
	Index int    `json:"index"`
	Desc  string `json:"desc"`
}

// CardView describes a card, either as a selection candidate or as part of a view.
type CardView struct {
	Index     int      `json:"index"`
	Name      string   `json:"name"`
	Types     []string `json:"types,omitempty"`
	Cost      int      `json:"cost"`
	Remaining int      `json:"remaining,omitempty"` // rounds left on the field, -1 for infinite
	Effect    string   `json:"effect,omitempty"`
}

// EffectView is an active effect as shown to clients.
type EffectView struct {
	Name     string `json:"name"`
	Card     string `json:"card"`
	Owner    int    `json:"owner"`
	Duration int    `json:"duration"`
}

// StateView is the game state from one player's perspective.
type StateView struct {
	You        PlayerView   `json:"you"`
	Opponent   PlayerView   `json:"opponent"`
	Round      int          `json:"round"`
	Turn       int          `json:"turn"`
	Phase      string       `json:"phase"`
	Bank       int          `json:"bank"`
	IsYourTurn bool         `json:"is_your_turn"`
	Effects    []EffectView `json:"effects,omitempty"`
	Log        []string     `json:"log,omitempty"` // most recent combat log lines
}

// PlayerView shows one side of the board.
type PlayerView struct {
	Health     int          `json:"health"`
	Gold       int          `json:"gold"`
	Moves      int          `json:"moves"`
	HandCount  int          `json:"hand_count"`
	Hand       []CardView   `json:"hand,omitempty"` // only for "you"
	Field      [3]*CardView `json:"field"`
	CryptCount int          `json:"crypt_count"`
	DeckCount  int          `json:"deck_count"`
}

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server messages.
type ClientMessage struct {
	Type string `json:"type"`

	// For "action", "option" and "number"
	Index int `json:"index,omitempty"`

	// For "cards"
	Indices []int `json:"indices,omitempty"`

	// For "yes_no"
	Answer bool `json:"answer,omitempty"`

	// For "join" (initial handshake)
	DeckNumber int `json:"deck_number,omitempty"`
}
