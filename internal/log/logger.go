package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging game events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// PlayerName returns "P1" or "P2" for display.
func PlayerName(p int) string {
	return fmt.Sprintf("P%d", p+1)
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	phase := e.Phase
	// Pad phase to 12 chars for alignment
	for len(phase) < 12 {
		phase += " "
	}

	return fmt.Sprintf("R%-2d T%-2d %s| %s", e.Round, e.Turn, phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---
//
// Round, Turn and Phase are stamped by the game when the event is logged.

func NewPhaseChangeEvent(phase string) GameEvent {
	return GameEvent{
		Type:    EventPhaseChange,
		Details: fmt.Sprintf("Phase → %s", phase),
	}
}

func NewCoinCallEvent(player int, called, landed string, correct bool) GameEvent {
	outcome := "wrong"
	if correct {
		outcome = "correct"
	}
	return GameEvent{
		Player:  player,
		Type:    EventCoinCall,
		Details: fmt.Sprintf("%s calls %s, coin lands %s (%s)", PlayerName(player), called, landed, outcome),
	}
}

func NewFirstPlayerEvent(player int, reason string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventFirstPlayer,
		Details: fmt.Sprintf("%s goes first (%s)", PlayerName(player), reason),
	}
}

func NewTurnEvent(turn int, player int) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d (%s) ===", turn, PlayerName(player)),
	}
}

func NewRoundEvent(round int) GameEvent {
	return GameEvent{
		Type:    EventNewRound,
		Details: fmt.Sprintf("Round %d begins!", round),
	}
}

func NewDrawEvent(player int, cardName string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("%s draws %s", PlayerName(player), cardName),
	}
}

func NewDrawSkippedEvent(player int, reason string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventDrawSkipped,
		Details: fmt.Sprintf("%s draws nothing (%s)", PlayerName(player), reason),
	}
}

func NewPlayEvent(player int, cardName string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventPlay,
		Card:    cardName,
		Details: fmt.Sprintf("%s played %s", PlayerName(player), cardName),
	}
}

func NewNegatedEvent(player int, cardName string, by string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventNegated,
		Card:    cardName,
		Details: fmt.Sprintf("%s's effect is negated by %s", cardName, by),
	}
}

func NewEffectInstalledEvent(player int, cardName string, effectName string, duration int) GameEvent {
	span := fmt.Sprintf("%d rounds", duration)
	if duration < 0 {
		span = "until cleared"
	}
	return GameEvent{
		Player:  player,
		Type:    EventEffectInstalled,
		Card:    cardName,
		Details: fmt.Sprintf("%s effect %q is active (%s)", cardName, effectName, span),
	}
}

func NewEffectRemovedEvent(player int, cardName string, effectName string, reason string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventEffectRemoved,
		Card:    cardName,
		Details: fmt.Sprintf("%s effect %q ends (%s)", cardName, effectName, reason),
	}
}

func NewDamageEvent(player int, cardName string, oldHealth, newHealth int, reason string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventDamage,
		Card:    cardName,
		Details: fmt.Sprintf("%s health: %d → %d (%s)", PlayerName(player), oldHealth, newHealth, reason),
	}
}

func NewHealEvent(player int, cardName string, oldHealth, newHealth int, reason string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventHeal,
		Card:    cardName,
		Details: fmt.Sprintf("%s heals: %d → %d (%s)", PlayerName(player), oldHealth, newHealth, reason),
	}
}

func NewGoldEvent(player int, cardName string, amount int, from, to string, reason string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventGold,
		Card:    cardName,
		Details: fmt.Sprintf("%d gold: %s → %s (%s)", amount, from, to, reason),
	}
}

func NewSendToCryptEvent(player int, cardName string, reason string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventSendToCrypt,
		Card:    cardName,
		Details: fmt.Sprintf("%s is sent to %s's crypt (%s)", cardName, PlayerName(player), reason),
	}
}

func NewExpireEvent(player int, cardName string, destination string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventExpire,
		Card:    cardName,
		Details: fmt.Sprintf("%s expires and is sent to %s", cardName, destination),
	}
}

func NewRemoveFromGameEvent(player int, cardName string, reason string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventRemoveFromGame,
		Card:    cardName,
		Details: fmt.Sprintf("%s is removed from the game (%s)", cardName, reason),
	}
}

func NewAddToHandEvent(player int, cardName string, reason string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventAddToHand,
		Card:    cardName,
		Details: fmt.Sprintf("%s is added to %s's hand (%s)", cardName, PlayerName(player), reason),
	}
}

func NewReturnToDeckEvent(player int, cardName string, where string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventReturnToDeck,
		Card:    cardName,
		Details: fmt.Sprintf("%s is returned to %s's deck (%s)", cardName, PlayerName(player), where),
	}
}

func NewDiscardEvent(player int, cardName string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventDiscard,
		Card:    cardName,
		Details: fmt.Sprintf("%s discards %s", PlayerName(player), cardName),
	}
}

func NewShuffleEvent(player int) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventShuffle,
		Details: fmt.Sprintf("%s shuffled their deck", PlayerName(player)),
	}
}

func NewDiceRollEvent(player int, cardName string, sides, result int) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventDiceRoll,
		Card:    cardName,
		Details: fmt.Sprintf("%s rolls a d%d for %s: %d", PlayerName(player), sides, cardName, result),
	}
}

func NewDurationChangeEvent(player int, cardName string, oldDur, newDur int) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventDurationChange,
		Card:    cardName,
		Details: fmt.Sprintf("%s duration: %d → %d", cardName, oldDur, newDur),
	}
}

func NewCardEffectEvent(player int, cardName string, details string) GameEvent {
	return GameEvent{
		Player:  player,
		Type:    EventCardEffect,
		Card:    cardName,
		Details: fmt.Sprintf("%s: %s", cardName, details),
	}
}

func NewWinEvent(winner int, reason string) GameEvent {
	return GameEvent{
		Player:  winner,
		Type:    EventWin,
		Details: fmt.Sprintf("%s wins! (%s)", PlayerName(winner), reason),
	}
}

func NewGameDrawnEvent(reason string) GameEvent {
	return GameEvent{
		Player:  -1,
		Type:    EventGameDrawn,
		Details: fmt.Sprintf("The game ends without a winner (%s)", reason),
	}
}
