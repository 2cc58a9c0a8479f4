package log

// EventType enumerates all observable game events.
type EventType int

const (
	EventPhaseChange EventType = iota
	EventCoinCall
	EventFirstPlayer
	EventNewTurn
	EventNewRound
	EventDraw
	EventDrawSkipped
	EventPlay
	EventNegated
	EventEffectInstalled
	EventEffectRemoved
	EventDamage
	EventHeal
	EventGold
	EventSendToCrypt
	EventExpire
	EventRemoveFromGame
	EventAddToHand
	EventReturnToDeck
	EventDiscard
	EventShuffle
	EventDiceRoll
	EventDurationChange
	EventCardEffect
	EventWin
	EventGameDrawn
)

func (e EventType) String() string {
	switch e {
	case EventPhaseChange:
		return "PhaseChange"
	case EventCoinCall:
		return "CoinCall"
	case EventFirstPlayer:
		return "FirstPlayer"
	case EventNewTurn:
		return "NewTurn"
	case EventNewRound:
		return "NewRound"
	case EventDraw:
		return "Draw"
	case EventDrawSkipped:
		return "DrawSkipped"
	case EventPlay:
		return "Play"
	case EventNegated:
		return "Negated"
	case EventEffectInstalled:
		return "EffectInstalled"
	case EventEffectRemoved:
		return "EffectRemoved"
	case EventDamage:
		return "Damage"
	case EventHeal:
		return "Heal"
	case EventGold:
		return "Gold"
	case EventSendToCrypt:
		return "SendToCrypt"
	case EventExpire:
		return "Expire"
	case EventRemoveFromGame:
		return "RemoveFromGame"
	case EventAddToHand:
		return "AddToHand"
	case EventReturnToDeck:
		return "ReturnToDeck"
	case EventDiscard:
		return "Discard"
	case EventShuffle:
		return "Shuffle"
	case EventDiceRoll:
		return "DiceRoll"
	case EventDurationChange:
		return "DurationChange"
	case EventCardEffect:
		return "CardEffect"
	case EventWin:
		return "Win"
	case EventGameDrawn:
		return "GameDrawn"
	default:
		return "Unknown"
	}
}

// GameEvent represents a single observable event in a game.
type GameEvent struct {
	Seq     int       // monotonic sequence number
	Round   int       // which round (1-based, 0 before the coin flip settles)
	Turn    int       // which turn (1-based)
	Phase   string    // current phase name (e.g. "Main")
	Player  int       // acting player (0 or 1)
	Type    EventType // event type
	Card    string    // card name (if applicable)
	Details string    // human-readable detail string
}
