package game

// CardSnapshot is a read-only copy of a card instance.
type CardSnapshot struct {
	InstanceID int
	CardID     string
	Name       string
	Types      []string
	Cost       int
	Duration   int
	Remaining  int
	Owner      int
	Zone       ZoneType
	Slot       Slot
	Effect     string
}

// PlayerSnapshot is a read-only copy of a player.
type PlayerSnapshot struct {
	Index          int
	Health         int
	Gold           int
	MovesRemaining int
	DeckCount      int
	Hand           []CardSnapshot
	Field          [SlotCount]*CardSnapshot
	Crypt          []CardSnapshot
	Removed        []CardSnapshot
}

// EffectSnapshot is a read-only copy of an active effect.
type EffectSnapshot struct {
	ID       int
	Name     string
	Card     string
	Owner    int
	Duration int
	Hooks    []string
}

// Snapshot is a deep, read-only copy of the game after an action.
type Snapshot struct {
	Round        int
	Turn         int
	ActivePlayer int
	FirstPlayer  int
	Phase        Phase
	Bank         int
	Players      [2]PlayerSnapshot
	Effects      []EffectSnapshot
	CombatLog    []string
	Over         bool
	Winner       int
	Result       string
}

// Snapshot copies the current state. Mutating the result never affects the game.
func (d *Duel) Snapshot() Snapshot {
	return d.State.Snapshot()
}

// Snapshot copies gs. Controllers use it to render state they are shown.
func (gs *GameState) Snapshot() Snapshot {
	s := Snapshot{
		Round:        gs.Round,
		Turn:         gs.Turn,
		ActivePlayer: gs.ActivePlayer,
		FirstPlayer:  gs.FirstPlayer,
		Phase:        gs.Phase,
		Bank:         gs.Bank.Gold,
		CombatLog:    append([]string(nil), gs.CombatLog...),
		Over:         gs.Over,
		Winner:       gs.Winner,
		Result:       gs.Result,
	}
	for i, p := range gs.Players {
		ps := PlayerSnapshot{
			Index:          p.Index,
			Health:         p.Health,
			Gold:           p.Gold,
			MovesRemaining: p.MovesRemaining,
			DeckCount:      p.DeckCount(),
			Hand:           snapshotCards(p.Hand),
			Crypt:          snapshotCards(p.Crypt),
			Removed:        snapshotCards(p.Removed),
		}
		for slot, c := range p.Field {
			if c != nil {
				cs := snapshotCard(c)
				ps.Field[slot] = &cs
			}
		}
		s.Players[i] = ps
	}
	for _, e := range gs.Effects.Active() {
		es := EffectSnapshot{
			ID:       e.ID,
			Name:     e.Name,
			Card:     e.Label(),
			Owner:    e.Owner,
			Duration: e.Duration,
		}
		for h := HookRoundStart; h <= HookCleared; h++ {
			if e.Has(h) {
				es.Hooks = append(es.Hooks, h.String())
			}
		}
		s.Effects = append(s.Effects, es)
	}
	return s
}

func snapshotCard(c *CardInstance) CardSnapshot {
	return CardSnapshot{
		InstanceID: c.ID,
		CardID:     c.Card.ID,
		Name:       c.Card.Name,
		Types:      c.Card.TypeNames(),
		Cost:       c.Card.Cost,
		Duration:   c.Card.Duration,
		Remaining:  c.RemainingDuration,
		Owner:      c.Owner,
		Zone:       c.Zone,
		Slot:       c.Slot,
		Effect:     c.Card.Effect,
	}
}

func snapshotCards(cards []*CardInstance) []CardSnapshot {
	out := make([]CardSnapshot, 0, len(cards))
	for _, c := range cards {
		out = append(out, snapshotCard(c))
	}
	return out
}
