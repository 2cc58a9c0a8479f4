package game

import (
	"fmt"
	"sort"
)

// Rules holds the numeric constants of a game. Field tags let config load
// overrides from the environment.
type Rules struct {
	StartingHealth   int `env:"STARTING_HEALTH" envDefault:"100"`
	StartingGold     int `env:"STARTING_GOLD" envDefault:"50"`
	BankGold         int `env:"BANK_GOLD" envDefault:"100"`
	DeckSize         int `env:"DECK_SIZE" envDefault:"20"`
	MovesPerTurn     int `env:"MOVES_PER_TURN" envDefault:"3"`
	StartingHandSize int `env:"STARTING_HAND_SIZE" envDefault:"3"`
	DrawPerTurn      int `env:"DRAW_PER_TURN" envDefault:"1"`
	MaxHandSize      int `env:"MAX_HAND_SIZE" envDefault:"7"`
	CoinFlipAttempts int `env:"COIN_FLIP_ATTEMPTS" envDefault:"3"`
	MaxCardCopies    int `env:"MAX_CARD_COPIES" envDefault:"2"`
}

// DefaultRules returns the standard Colossus constants.
func DefaultRules() Rules {
	return Rules{
		StartingHealth:   100,
		StartingGold:     50,
		BankGold:         100,
		DeckSize:         20,
		MovesPerTurn:     3,
		StartingHandSize: 3,
		DrawPerTurn:      1,
		MaxHandSize:      7,
		CoinFlipAttempts: 3,
		MaxCardCopies:    2,
	}
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	switch {
	case r.StartingHealth <= 0:
		return fmt.Errorf("starting health must be positive, got %d", r.StartingHealth)
	case r.StartingGold < 0:
		return fmt.Errorf("starting gold must not be negative, got %d", r.StartingGold)
	case r.BankGold < 0:
		return fmt.Errorf("bank gold must not be negative, got %d", r.BankGold)
	case r.DeckSize <= 0:
		return fmt.Errorf("deck size must be positive, got %d", r.DeckSize)
	case r.MovesPerTurn <= 0:
		return fmt.Errorf("moves per turn must be positive, got %d", r.MovesPerTurn)
	case r.StartingHandSize < 0 || r.StartingHandSize > r.MaxHandSize:
		return fmt.Errorf("starting hand size %d outside [0, %d]", r.StartingHandSize, r.MaxHandSize)
	case r.DrawPerTurn < 0:
		return fmt.Errorf("draw per turn must not be negative, got %d", r.DrawPerTurn)
	case r.CoinFlipAttempts <= 0:
		return fmt.Errorf("coin flip attempts must be positive, got %d", r.CoinFlipAttempts)
	case r.MaxCardCopies <= 0:
		return fmt.Errorf("max card copies must be positive, got %d", r.MaxCardCopies)
	}
	return nil
}

// RoundStats accumulates what happened to a player during one round.
type RoundStats struct {
	DamageDealt int
	DamageTaken int
	Healed      int
	GoldGained  int
	GoldLost    int
}

// Player represents one player's entire state.
type Player struct {
	Index   int
	Health  int
	Gold    int
	Deck    []*CardInstance // top of deck is last element (pop from end)
	Hand    []*CardInstance
	Field   [SlotCount]*CardInstance
	Crypt   []*CardInstance
	Removed []*CardInstance

	MovesRemaining int
	CoinAttempts   int

	Stats     RoundStats // current round
	LastRound RoundStats // the round that just ended
}

// DeckCount returns the number of cards remaining in the deck.
func (p *Player) DeckCount() int {
	return len(p.Deck)
}

// HandCount returns the number of cards in hand.
func (p *Player) HandCount() int {
	return len(p.Hand)
}

// DrawCard removes the top card from the deck and adds it to the hand.
// Returns the drawn card, or nil if the deck is empty.
func (p *Player) DrawCard() *CardInstance {
	if len(p.Deck) == 0 {
		return nil
	}
	card := p.Deck[len(p.Deck)-1]
	p.Deck = p.Deck[:len(p.Deck)-1]
	card.Zone = ZoneHand
	p.Hand = append(p.Hand, card)
	return card
}

// HandCard returns the card in hand with the given instance ID, or nil.
func (p *Player) HandCard(id int) *CardInstance {
	for _, c := range p.Hand {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// FieldCards returns the occupied field slots in slot order.
func (p *Player) FieldCards() []*CardInstance {
	var result []*CardInstance
	for _, c := range p.Field {
		if c != nil {
			result = append(result, c)
		}
	}
	return result
}

// FreeSlots returns the empty slots.
func (p *Player) FreeSlots() []Slot {
	var slots []Slot
	for i, c := range p.Field {
		if c == nil {
			slots = append(slots, Slot(i))
		}
	}
	return slots
}

// freeSlotFor returns the first empty slot card may occupy, or SlotNone.
func (p *Player) freeSlotFor(card *Card) Slot {
	for _, s := range card.EligibleSlots() {
		if p.Field[s] == nil {
			return s
		}
	}
	return SlotNone
}

// CountInPlay counts field cards carrying the given tag.
func (p *Player) CountInPlay(t CardType) int {
	n := 0
	for _, c := range p.Field {
		if c != nil && c.Card.HasType(t) {
			n++
		}
	}
	return n
}

// CryptOfType returns crypt cards carrying the given tag, oldest first.
func (p *Player) CryptOfType(t CardType) []*CardInstance {
	var result []*CardInstance
	for _, c := range p.Crypt {
		if c.Card.HasType(t) {
			result = append(result, c)
		}
	}
	return result
}

// detach removes ci from whichever of the player's zones holds it.
func (p *Player) detach(ci *CardInstance) bool {
	remove := func(zone []*CardInstance) ([]*CardInstance, bool) {
		for i, c := range zone {
			if c == ci {
				return append(zone[:i], zone[i+1:]...), true
			}
		}
		return zone, false
	}
	var ok bool
	switch ci.Zone {
	case ZoneDeck:
		p.Deck, ok = remove(p.Deck)
	case ZoneHand:
		p.Hand, ok = remove(p.Hand)
	case ZoneCrypt:
		p.Crypt, ok = remove(p.Crypt)
	case ZoneRemoved:
		p.Removed, ok = remove(p.Removed)
	case ZoneField:
		switch {
		case ci.Slot == SlotNone:
			// resolving without a slot
			ok = true
		case ci.Slot >= 0 && ci.Slot < SlotCount && p.Field[ci.Slot] == ci:
			p.Field[ci.Slot] = nil
			ok = true
		}
	}
	if ok {
		ci.Slot = SlotNone
		ci.RemainingDuration = 0
	}
	return ok
}

// loseHealth lowers health by up to n, never below zero, and returns the
// amount actually lost.
func (p *Player) loseHealth(n int) int {
	if n <= 0 {
		return 0
	}
	if n > p.Health {
		n = p.Health
	}
	p.Health -= n
	return n
}

func (p *Player) gainHealth(n int) int {
	if n <= 0 {
		return 0
	}
	p.Health += n
	return n
}

func (p *Player) addGold(n int) int {
	if n <= 0 {
		return 0
	}
	p.Gold += n
	return n
}

// takeGold lowers gold by up to n, never below zero.
func (p *Player) takeGold(n int) int {
	if n <= 0 {
		return 0
	}
	if n > p.Gold {
		n = p.Gold
	}
	p.Gold -= n
	return n
}

// Bank is the shared gold pool.
type Bank struct {
	Gold int
}

func (b *Bank) deposit(n int) int {
	if n <= 0 {
		return 0
	}
	b.Gold += n
	return n
}

func (b *Bank) withdraw(n int) int {
	if n <= 0 {
		return 0
	}
	if n > b.Gold {
		n = b.Gold
	}
	b.Gold -= n
	return n
}

// roundMark records balances at the start of a round.
type roundMark struct {
	valid  bool
	health [2]int
	gold   [2]int
	bank   int
}

// GameState holds the complete state of a game.
type GameState struct {
	Rules        Rules
	Players      [2]*Player
	Bank         *Bank
	Round        int
	Turn         int
	ActivePlayer int
	FirstPlayer  int // -1 until the coin flip settles
	Phase        Phase
	CombatLog    []string
	Effects      *EffectRegistry
	Counters     *Counters
	Tallies      map[CardType]int // cards played per tag

	Winner int // -1 = no winner (draw or ongoing)
	Over   bool
	Result string

	prevRound roundMark
	thisRound roundMark
	nextID    int
	playSeq   int
}

// NewGameState creates a fresh game state for the given rules.
func NewGameState(rules Rules) *GameState {
	gs := &GameState{
		Rules:       rules,
		Bank:        &Bank{Gold: rules.BankGold},
		FirstPlayer: -1,
		Phase:       PhaseCoinFlip,
		Effects:     NewEffectRegistry(),
		Counters:    NewCounters(),
		Tallies:     make(map[CardType]int),
		Winner:      -1,
	}
	for i := range gs.Players {
		gs.Players[i] = &Player{
			Index:  i,
			Health: rules.StartingHealth,
			Gold:   rules.StartingGold,
		}
	}
	return gs
}

// NextID returns a unique card instance ID.
func (gs *GameState) NextID() int {
	gs.nextID++
	return gs.nextID
}

// Opponent returns the other player index.
func (gs *GameState) Opponent(player int) int {
	return 1 - player
}

// CurrentPlayer returns the active player.
func (gs *GameState) CurrentPlayer() *Player {
	return gs.Players[gs.ActivePlayer]
}

// CreateCardInstance creates a new instance of a card owned by player.
func (gs *GameState) CreateCardInstance(card *Card, owner int) *CardInstance {
	return &CardInstance{
		ID:    gs.NextID(),
		Card:  card,
		Owner: owner,
		Zone:  ZoneDeck,
		Slot:  SlotNone,
	}
}

// CardsInPlay returns every field card on both sides in placement order.
func (gs *GameState) CardsInPlay() []*CardInstance {
	var result []*CardInstance
	for _, p := range gs.Players {
		result = append(result, p.FieldCards()...)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].PlayedSeq < result[j].PlayedSeq
	})
	return result
}

// CountInPlay counts field cards on both sides carrying the given tag.
func (gs *GameState) CountInPlay(t CardType) int {
	return gs.Players[0].CountInPlay(t) + gs.Players[1].CountInPlay(t)
}

// FindCard locates a card instance anywhere in the game.
func (gs *GameState) FindCard(id int) *CardInstance {
	for _, p := range gs.Players {
		for _, zone := range [][]*CardInstance{p.Hand, p.Deck, p.Crypt, p.Removed, p.FieldCards()} {
			for _, c := range zone {
				if c.ID == id {
					return c
				}
			}
		}
	}
	return nil
}

// CheckWinCondition checks health and returns true if the game is over.
func (gs *GameState) CheckWinCondition() bool {
	if gs.Over {
		return true
	}
	dead0 := gs.Players[0].Health <= 0
	dead1 := gs.Players[1].Health <= 0
	switch {
	case dead0 && dead1:
		gs.Over = true
		gs.Winner = -1
		gs.Result = "Both players fell at once"
	case dead0:
		gs.Over = true
		gs.Winner = 1
		gs.Result = "P2 wins — P1's health reached 0"
	case dead1:
		gs.Over = true
		gs.Winner = 0
		gs.Result = "P1 wins — P2's health reached 0"
	}
	return gs.Over
}

func (gs *GameState) markRound() {
	gs.prevRound = gs.thisRound
	gs.thisRound = roundMark{valid: true, bank: gs.Bank.Gold}
	for i, p := range gs.Players {
		gs.thisRound.health[i] = p.Health
		gs.thisRound.gold[i] = p.Gold
	}
}
