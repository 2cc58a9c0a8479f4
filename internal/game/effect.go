package game

// HookKind names an extension point an effect can implement.
type HookKind int

const (
	HookRoundStart HookKind = iota
	HookRoundEnd
	HookDamageDealt
	HookDamageReceived
	HookHeal
	HookGoldReceived
	HookGoldTaken
	HookCardCost
	HookPlayAttempt
	HookNegate
	HookCardPlayed
	HookDraw
	HookDiscard
	HookCardToCrypt
	HookInstall
	HookRemove
	HookCleared
)

func (h HookKind) String() string {
	switch h {
	case HookRoundStart:
		return "round-start"
	case HookRoundEnd:
		return "round-end"
	case HookDamageDealt:
		return "damage-dealt"
	case HookDamageReceived:
		return "damage-received"
	case HookHeal:
		return "heal"
	case HookGoldReceived:
		return "gold-received"
	case HookGoldTaken:
		return "gold-taken"
	case HookCardCost:
		return "card-cost"
	case HookPlayAttempt:
		return "play-attempt"
	case HookNegate:
		return "negate"
	case HookCardPlayed:
		return "card-played"
	case HookDraw:
		return "draw"
	case HookDiscard:
		return "discard"
	case HookCardToCrypt:
		return "card-to-crypt"
	case HookInstall:
		return "install"
	case HookRemove:
		return "remove"
	case HookCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// HookSet is the capability bitmask of an effect.
type HookSet uint32

// Has reports whether h is in the set.
func (s HookSet) Has(h HookKind) bool {
	return s&(1<<uint(h)) != 0
}

func (s HookSet) with(h HookKind) HookSet {
	return s | 1<<uint(h)
}

// DamageEvent describes damage in flight. From is -1 when no player deals it.
type DamageEvent struct {
	From   int
	To     int
	Card   *CardInstance
	Reason string
}

// HealEvent describes healing in flight.
type HealEvent struct {
	Player int
	Card   *CardInstance
	Reason string
}

// GoldEvent describes a gold transfer in flight.
type GoldEvent struct {
	From   Party
	To     Party
	Card   *CardInstance
	Reason string
}

// Hooks is the set of callbacks an effect may register. Nil fields are not
// part of the effect's capability set and are never dispatched.
type Hooks struct {
	OnRoundStart func(d *Duel, e *Effect)
	OnRoundEnd   func(d *Duel, e *Effect)

	// Transforms receive the running amount and return the new one.
	OnDamageDealt    func(d *Duel, e *Effect, ev DamageEvent, amount int) int
	OnDamageReceived func(d *Duel, e *Effect, ev DamageEvent, amount int) int
	OnHeal           func(d *Duel, e *Effect, ev HealEvent, amount int) int
	OnGoldReceived   func(d *Duel, e *Effect, ev GoldEvent, amount int) int
	OnGoldTaken      func(d *Duel, e *Effect, ev GoldEvent, amount int) int
	OnCardCost       func(d *Duel, e *Effect, card *CardInstance, player int, cost int) int

	// OnPlayAttempt returns false to veto the play.
	OnPlayAttempt func(d *Duel, e *Effect, card *CardInstance, player int) bool
	// OnNegate returns true to cancel the played card's own resolution.
	OnNegate     func(d *Duel, e *Effect, card *CardInstance, player int) bool
	OnCardPlayed func(d *Duel, e *Effect, card *CardInstance, player int)
	// OnDraw returns true when it replaces the player's normal draw.
	OnDraw func(d *Duel, e *Effect, player int) bool
	// OnDiscard returns true when it has moved the card somewhere else.
	OnDiscard     func(d *Duel, e *Effect, card *CardInstance) bool
	OnCardToCrypt func(d *Duel, e *Effect, card *CardInstance)
	// OnInstall returns false to refuse the incoming effect.
	OnInstall func(d *Duel, e *Effect, incoming *Effect) bool

	OnRemove  func(d *Duel, e *Effect)
	OnCleared func(d *Duel, e *Effect)
}

func (h *Hooks) capabilities() HookSet {
	var s HookSet
	add := func(ok bool, k HookKind) {
		if ok {
			s = s.with(k)
		}
	}
	add(h.OnRoundStart != nil, HookRoundStart)
	add(h.OnRoundEnd != nil, HookRoundEnd)
	add(h.OnDamageDealt != nil, HookDamageDealt)
	add(h.OnDamageReceived != nil, HookDamageReceived)
	add(h.OnHeal != nil, HookHeal)
	add(h.OnGoldReceived != nil, HookGoldReceived)
	add(h.OnGoldTaken != nil, HookGoldTaken)
	add(h.OnCardCost != nil, HookCardCost)
	add(h.OnPlayAttempt != nil, HookPlayAttempt)
	add(h.OnNegate != nil, HookNegate)
	add(h.OnCardPlayed != nil, HookCardPlayed)
	add(h.OnDraw != nil, HookDraw)
	add(h.OnDiscard != nil, HookDiscard)
	add(h.OnCardToCrypt != nil, HookCardToCrypt)
	add(h.OnInstall != nil, HookInstall)
	add(h.OnRemove != nil, HookRemove)
	add(h.OnCleared != nil, HookCleared)
	return s
}

// RemoveCause records why an effect left the registry.
type RemoveCause int

const (
	RemoveExpired RemoveCause = iota
	RemoveCleared
	RemoveReplaced
	RemoveSourceLeft
)

func (c RemoveCause) String() string {
	switch c {
	case RemoveExpired:
		return "expired"
	case RemoveCleared:
		return "cleared"
	case RemoveReplaced:
		return "replaced"
	case RemoveSourceLeft:
		return "source left play"
	default:
		return "unknown"
	}
}

// Effect is an installed, timed modifier.
type Effect struct {
	ID       int
	Name     string
	Source   *CardInstance // card that installed it, nil for engine effects
	Owner    int
	Duration int // remaining rounds, DurationInfinite until cleared
	Hooks

	Excludes  []string // names of effects that may not be active alongside this one
	Lingers   bool     // survives its source leaving the field
	Uncleared bool     // opposing card effects cannot clear it

	caps    HookSet
	active  bool
	removed bool
}

// Active reports whether the effect is currently installed.
func (e *Effect) Active() bool {
	return e.active && !e.removed
}

// Has reports whether the effect implements hook h.
func (e *Effect) Has(h HookKind) bool {
	return e.caps.Has(h)
}

// Infinite reports whether the effect never expires on its own.
func (e *Effect) Infinite() bool {
	return e.Duration == DurationInfinite
}

// Extend lengthens a finite effect by n rounds.
func (e *Effect) Extend(n int) {
	if e.Infinite() || n <= 0 {
		return
	}
	e.Duration += n
}

// Label is the name used in the combat log.
func (e *Effect) Label() string {
	if e.Source != nil {
		return e.Source.Card.Name
	}
	return e.Name
}

func (e *Effect) excludes(other *Effect) bool {
	for _, n := range e.Excludes {
		if n == other.Name {
			return true
		}
	}
	return false
}
