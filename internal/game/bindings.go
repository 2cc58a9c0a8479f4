package game

import (
	"fmt"

	"github.com/peterkuimelis/colossus/internal/log"
)

// Helpers shared by the catalog bindings.

// lasting installs card's effect for the card's printed duration. It is
// evicted when the card leaves the field.
func lasting(d *Duel, card *CardInstance, hooks Hooks) *Effect {
	return d.addEffect(&Effect{
		Name:     card.Card.ID,
		Source:   card,
		Owner:    card.Owner,
		Duration: card.Card.Duration,
		Hooks:    hooks,
	})
}

// timed installs a named effect from card for the given number of rounds.
// It is evicted when the card leaves the field.
func timed(d *Duel, card *CardInstance, name string, rounds int, hooks Hooks) *Effect {
	return d.addEffect(&Effect{
		Name:     name,
		Source:   card,
		Owner:    card.Owner,
		Duration: rounds,
		Hooks:    hooks,
	})
}

// lingering installs an effect for the given number of rounds that
// survives card leaving the field.
func lingering(d *Duel, card *CardInstance, name string, rounds int, hooks Hooks) *Effect {
	return d.addEffect(&Effect{
		Name:     name,
		Source:   card,
		Owner:    card.Owner,
		Duration: rounds,
		Hooks:    hooks,
		Lingers:  true,
	})
}

// rollD6 rolls a six-sided die for player and logs the result.
func (d *Duel) rollD6(player int, card *CardInstance) int {
	n := rollDie(d.rng, 6)
	d.log(log.NewDiceRollEvent(player, cardName(card), 6, n))
	return n
}

// note records a card's narrative effect in the combat log.
func (d *Duel) note(card *CardInstance, format string, args ...any) {
	d.log(log.NewCardEffectEvent(card.Owner, card.Card.Name, fmt.Sprintf(format, args...)))
}

// hasAnyType reports whether c carries at least one of ts.
func hasAnyType(c *Card, ts ...CardType) bool {
	for _, t := range ts {
		if c.HasType(t) {
			return true
		}
	}
	return false
}

// cardsOfType filters cards by tag, keeping order.
func cardsOfType(cards []*CardInstance, t CardType) []*CardInstance {
	var out []*CardInstance
	for _, c := range cards {
		if c.Card.HasType(t) {
			out = append(out, c)
		}
	}
	return out
}

// inPlay reports whether a card with catalog id is on either field.
func (gs *GameState) inPlay(id string) bool {
	for _, c := range gs.CardsInPlay() {
		if c.Card.ID == id {
			return true
		}
	}
	return false
}

// fromBank pays player up to amount from the bank and returns what moved.
func (d *Duel) fromBank(player int, amount int, card *CardInstance, reason string) int {
	return d.TransferGold(PartyBank, PlayerParty(player), amount, card, reason)
}

// steal moves up to amount from one player to the other.
func (d *Duel) steal(from, to int, amount int, card *CardInstance, reason string) int {
	return d.TransferGold(PlayerParty(from), PlayerParty(to), amount, card, reason)
}

// sendHandToCrypt discards every card in player's hand and returns how many went.
func (d *Duel) sendHandToCrypt(player int) int {
	p := d.State.Players[player]
	hand := append([]*CardInstance(nil), p.Hand...)
	for _, c := range hand {
		d.discard(c)
	}
	return len(hand)
}

// mostExpensive returns the costliest card, the earliest one on ties.
func mostExpensive(cards []*CardInstance) *CardInstance {
	var best *CardInstance
	for _, c := range cards {
		if best == nil || c.Card.Cost > best.Card.Cost {
			best = c
		}
	}
	return best
}

// shuffleHandIntoDeck moves player's whole hand into the deck and shuffles once.
func (d *Duel) shuffleHandIntoDeck(player int) {
	p := d.State.Players[player]
	if len(p.Hand) == 0 {
		return
	}
	for _, c := range append([]*CardInstance(nil), p.Hand...) {
		p.detach(c)
		c.Zone = ZoneDeck
		p.Deck = append(p.Deck, c)
	}
	d.log(log.NewReturnToDeckEvent(player, "hand", "shuffled"))
	d.shuffleDeck(player)
}

// refuseConflicts rejects a play whose effect an active effect excludes.
func refuseConflicts(d *Duel, card *CardInstance, player, opponent *Player) error {
	if other := d.State.Effects.conflict(&Effect{Name: card.Card.ID}); other != nil {
		return reject(EffectConflict, "%s cannot be active alongside %s", card.Card.Name, other.Label())
	}
	return nil
}

// atOnce runs fn as a single step for the win check, so players knocked
// out together draw.
func (d *Duel) atOnce(fn func()) {
	d.holdWin++
	fn()
	d.holdWin--
	d.checkWin()
}

// reshuffleAll gathers player's hand and crypt into the deck and shuffles it.
func (d *Duel) reshuffleAll(player int) {
	p := d.State.Players[player]
	for _, c := range append(append([]*CardInstance(nil), p.Hand...), p.Crypt...) {
		p.detach(c)
		c.Zone = ZoneDeck
		p.Deck = append(p.Deck, c)
	}
	d.log(log.NewReturnToDeckEvent(player, "hand and crypt", "shuffled"))
	d.shuffleDeck(player)
}

// millTop sends the top card of player's deck to the crypt.
func (d *Duel) millTop(player int, reason string) *CardInstance {
	p := d.State.Players[player]
	if len(p.Deck) == 0 {
		return nil
	}
	top := p.Deck[len(p.Deck)-1]
	d.moveToCrypt(top, RemoveSourceLeft, reason)
	return top
}

// preventsPlay reports whether e stops cards from being played or resolving.
func preventsPlay(e *Effect) bool {
	return e.Has(HookPlayAttempt) || e.Has(HookNegate)
}
