package game

import (
	"fmt"
	"strings"
)

// CardType is a tag from the closed type vocabulary printed on every card.
type CardType int

const (
	TypeHuman CardType = iota
	TypeNonhuman
	TypeCelestial
	TypeLocation
	TypeEvent
	TypeObject
	TypePassive
	TypeUnidentifiable
)

func (t CardType) String() string {
	switch t {
	case TypeHuman:
		return "human"
	case TypeNonhuman:
		return "nonhuman"
	case TypeCelestial:
		return "celestial"
	case TypeLocation:
		return "location"
	case TypeEvent:
		return "event"
	case TypeObject:
		return "object"
	case TypePassive:
		return "passive"
	case TypeUnidentifiable:
		return "unidentifiable"
	default:
		return "unknown"
	}
}

// ParseCardType maps a tag name back to its CardType.
func ParseCardType(s string) (CardType, error) {
	for t := TypeHuman; t <= TypeUnidentifiable; t++ {
		if t.String() == strings.ToLower(s) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown card type %q", s)
}

// Slot identifies one of the three type-gated field slots.
type Slot int

const (
	SlotNone Slot = iota - 1
	SlotHumanNonhuman
	SlotCelestialLocation
	SlotEventObject
)

const SlotCount = 3

func (s Slot) String() string {
	switch s {
	case SlotHumanNonhuman:
		return "Human/Nonhuman"
	case SlotCelestialLocation:
		return "Celestial/Location"
	case SlotEventObject:
		return "Event/Object"
	default:
		return "None"
	}
}

// placementRules maps each type tag to the field slots it may occupy.
var placementRules = map[CardType][]Slot{
	TypeHuman:          {SlotHumanNonhuman},
	TypeNonhuman:       {SlotHumanNonhuman},
	TypeCelestial:      {SlotCelestialLocation},
	TypeLocation:       {SlotCelestialLocation},
	TypeEvent:          {SlotEventObject},
	TypeObject:         {SlotEventObject},
	TypePassive:        {},
	TypeUnidentifiable: {SlotHumanNonhuman, SlotCelestialLocation, SlotEventObject},
}

// ZoneType identifies where a card instance currently is.
type ZoneType int

const (
	ZoneDeck ZoneType = iota
	ZoneHand
	ZoneField
	ZoneCrypt
	ZoneRemoved
)

func (z ZoneType) String() string {
	switch z {
	case ZoneDeck:
		return "Deck"
	case ZoneHand:
		return "Hand"
	case ZoneField:
		return "Field"
	case ZoneCrypt:
		return "Crypt"
	case ZoneRemoved:
		return "Removed"
	default:
		return "Unknown"
	}
}

// Phase represents the scheduler state.
type Phase int

const (
	PhaseCoinFlip Phase = iota
	PhaseDraw
	PhaseMain
	PhaseEffectResolution
	PhaseCleanup
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseCoinFlip:
		return "Coin Flip"
	case PhaseDraw:
		return "Draw"
	case PhaseMain:
		return "Main"
	case PhaseEffectResolution:
		return "Resolution"
	case PhaseCleanup:
		return "Cleanup"
	case PhaseGameOver:
		return "Game Over"
	default:
		return "Unknown"
	}
}

// CoinSide is one face of the opening coin.
type CoinSide int

const (
	Heads CoinSide = iota
	Tails
)

func (c CoinSide) String() string {
	if c == Heads {
		return "heads"
	}
	return "tails"
}

// ParseCoinSide accepts "heads"/"tails" (or "h"/"t").
func ParseCoinSide(s string) (CoinSide, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "heads", "h":
		return Heads, nil
	case "tails", "t":
		return Tails, nil
	}
	return Heads, fmt.Errorf("unknown coin side %q", s)
}

// Destination is where a card goes when it leaves the field.
type Destination int

const (
	DestCrypt Destination = iota
	DestDeckBottom
	DestRemoved
)

func (d Destination) String() string {
	switch d {
	case DestCrypt:
		return "the crypt"
	case DestDeckBottom:
		return "the bottom of the deck"
	case DestRemoved:
		return "outside the game"
	default:
		return "unknown"
	}
}

// DurationInfinite marks a card or effect that stays until cleared.
const DurationInfinite = -1

// Card is an immutable catalog entry.
type Card struct {
	ID          string
	Name        string
	Year        string
	Description string
	Effect      string // rules text
	Rarity      string
	Types       []CardType
	Cost        int
	Duration    int // rounds; 0 = instantaneous, DurationInfinite = until cleared
	Power       int
	Defense     int

	Limit      PlayLimit   // how often the card may be played
	Replaces   string      // catalog id of a card this one may be played over
	ExpireTo   Destination // where the card goes when its duration runs out
	AfterPlay  Destination // where an instantaneous card goes once resolved
	NoSlot     bool        // resolves without occupying a field slot
	MaxCopies  int         // per-deck limit override (0 = rules default)
	PlayOnDraw bool        // enters play for free as soon as it is drawn

	// CanPlay runs before any mutation and may reject the play.
	CanPlay func(d *Duel, card *CardInstance, player, opponent *Player) error
	// OnPlay resolves the card once it has been placed.
	OnPlay func(d *Duel, card *CardInstance, player, opponent *Player)
}

// HasType reports whether the card carries the given tag.
func (c *Card) HasType(t CardType) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// IsInstant reports whether the card resolves immediately and leaves the field.
func (c *Card) IsInstant() bool {
	return c.Duration == 0
}

// EligibleSlots returns the union of slots allowed by the card's tags, in slot order.
func (c *Card) EligibleSlots() []Slot {
	var allowed [SlotCount]bool
	for _, t := range c.Types {
		for _, s := range placementRules[t] {
			allowed[s] = true
		}
	}
	var slots []Slot
	for i, ok := range allowed {
		if ok {
			slots = append(slots, Slot(i))
		}
	}
	return slots
}

// CanOccupy reports whether the card may be placed in slot s.
func (c *Card) CanOccupy(s Slot) bool {
	for _, es := range c.EligibleSlots() {
		if es == s {
			return true
		}
	}
	return false
}

// TypeNames returns the card's tags as strings.
func (c *Card) TypeNames() []string {
	names := make([]string, len(c.Types))
	for i, t := range c.Types {
		names[i] = t.String()
	}
	return names
}

// CardInstance is a specific copy of a card in a game.
type CardInstance struct {
	ID                int
	Card              *Card
	Owner             int
	Zone              ZoneType
	Slot              Slot
	RemainingDuration int
	PlayedSeq         int  // placement order on the field
	Token             bool // created by an effect rather than drawn from a deck
}

func (ci *CardInstance) String() string {
	return fmt.Sprintf("%s#%d", ci.Card.Name, ci.ID)
}

// OnField reports whether the instance currently occupies a field slot.
func (ci *CardInstance) OnField() bool {
	return ci.Zone == ZoneField
}

// ActionType enumerates the commands a player can issue.
type ActionType int

const (
	ActionCallCoin ActionType = iota
	ActionPlayCard
	ActionEndTurn
)

func (a ActionType) String() string {
	switch a {
	case ActionCallCoin:
		return "Call Coin"
	case ActionPlayCard:
		return "Play Card"
	case ActionEndTurn:
		return "End Turn"
	default:
		return "Unknown"
	}
}

// Action represents a player command with all necessary details.
type Action struct {
	Type   ActionType
	Player int
	Card   *CardInstance // card being played
	Slot   Slot          // target slot
	Side   CoinSide      // coin call
	Desc   string        // human-readable description
}

func (a Action) String() string {
	if a.Desc != "" {
		return a.Desc
	}
	return a.Type.String()
}
