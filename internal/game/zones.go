package game

import (
	"github.com/peterkuimelis/colossus/internal/log"
)

// leaveZone detaches card from its current zone. Leaving the field first
// evicts the card's non-lingering effects with the given cause; if one of
// their removal hooks has already moved the card, leaveZone reports false
// and the caller's move is dropped.
func (d *Duel) leaveZone(card *CardInstance, cause RemoveCause) bool {
	if card.OnField() {
		slot := card.Slot
		d.evictSourceEffects(card, cause)
		if !card.OnField() || card.Slot != slot {
			return false
		}
	}
	return d.State.Players[card.Owner].detach(card)
}

// depart runs leaveZone and reports whether card still needs a
// destination. Tokens cease to exist once they leave their zone.
func (d *Duel) depart(card *CardInstance, cause RemoveCause) bool {
	if !d.leaveZone(card, cause) {
		return false
	}
	if card.Token {
		card.Zone = ZoneRemoved
		d.log(log.NewRemoveFromGameEvent(card.Owner, card.Card.Name, "the copy fades"))
		return false
	}
	return true
}

// placeOnField puts card into slot of its owner's field.
func (d *Duel) placeOnField(card *CardInstance, slot Slot) {
	gs := d.State
	gs.playSeq++
	card.Zone = ZoneField
	card.Slot = slot
	card.RemainingDuration = card.Card.Duration
	card.PlayedSeq = gs.playSeq
	gs.Players[card.Owner].Field[slot] = card
}

// moveToCrypt sends card to its owner's crypt.
func (d *Duel) moveToCrypt(card *CardInstance, cause RemoveCause, reason string) {
	if card.Zone == ZoneCrypt || !d.depart(card, cause) {
		return
	}
	owner := d.State.Players[card.Owner]
	card.Zone = ZoneCrypt
	owner.Crypt = append(owner.Crypt, card)
	d.log(log.NewSendToCryptEvent(card.Owner, card.Card.Name, reason))
	d.fireToCrypt(card)
}

// moveToHand returns card to its owner's hand.
func (d *Duel) moveToHand(card *CardInstance, cause RemoveCause, reason string) {
	if card.Zone == ZoneHand || !d.depart(card, cause) {
		return
	}
	owner := d.State.Players[card.Owner]
	card.Zone = ZoneHand
	owner.Hand = append(owner.Hand, card)
	d.log(log.NewAddToHandEvent(card.Owner, card.Card.Name, reason))
}

// moveToDeckTop puts card on top of its owner's deck.
func (d *Duel) moveToDeckTop(card *CardInstance, cause RemoveCause, reason string) {
	if !d.depart(card, cause) {
		return
	}
	owner := d.State.Players[card.Owner]
	card.Zone = ZoneDeck
	owner.Deck = append(owner.Deck, card)
	d.log(log.NewReturnToDeckEvent(card.Owner, card.Card.Name, "top, "+reason))
}

// moveToDeckBottom puts card at the bottom of its owner's deck.
func (d *Duel) moveToDeckBottom(card *CardInstance, cause RemoveCause, reason string) {
	if !d.depart(card, cause) {
		return
	}
	owner := d.State.Players[card.Owner]
	card.Zone = ZoneDeck
	owner.Deck = append([]*CardInstance{card}, owner.Deck...)
	d.log(log.NewReturnToDeckEvent(card.Owner, card.Card.Name, "bottom, "+reason))
}

// shuffleIntoDeck puts card into its owner's deck and shuffles it.
func (d *Duel) shuffleIntoDeck(card *CardInstance, cause RemoveCause, reason string) {
	if !d.depart(card, cause) {
		return
	}
	owner := d.State.Players[card.Owner]
	card.Zone = ZoneDeck
	owner.Deck = append(owner.Deck, card)
	d.log(log.NewReturnToDeckEvent(card.Owner, card.Card.Name, "shuffled, "+reason))
	d.shuffleDeck(card.Owner)
}

// removeFromGame moves card out of the game for good.
func (d *Duel) removeFromGame(card *CardInstance, cause RemoveCause, reason string) {
	if card.Zone == ZoneRemoved || !d.depart(card, cause) {
		return
	}
	owner := d.State.Players[card.Owner]
	card.Zone = ZoneRemoved
	owner.Removed = append(owner.Removed, card)
	d.log(log.NewRemoveFromGameEvent(card.Owner, card.Card.Name, reason))
}

// sendTo moves a field card to dest.
func (d *Duel) sendTo(card *CardInstance, dest Destination, cause RemoveCause, reason string) {
	switch dest {
	case DestDeckBottom:
		d.moveToDeckBottom(card, cause, reason)
	case DestRemoved:
		d.removeFromGame(card, cause, reason)
	default:
		d.moveToCrypt(card, cause, reason)
	}
}

// clearCard removes an opposing field card as the acting player. Cards
// protected by an uncleared effect stay put.
func (d *Duel) clearCard(card *CardInstance, actor int, dest Destination, reason string) bool {
	if !card.OnField() || d.protected(card) {
		return false
	}
	cause := RemoveSourceLeft
	if card.Owner != actor {
		cause = RemoveCleared
	}
	d.sendTo(card, dest, cause, reason)
	return true
}

func (d *Duel) protected(card *CardInstance) bool {
	for _, e := range d.State.Effects.BySource(card) {
		if e.Uncleared {
			return true
		}
	}
	return false
}

func (d *Duel) shuffleDeck(player int) {
	deck := d.State.Players[player].Deck
	d.rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})
	d.log(log.NewShuffleEvent(player))
}

// drawCards draws up to n cards for player, stopping at the hand limit or an
// empty deck. Cards that would overflow the hand stay in the deck. Once the
// game is under way, drawn cards marked PlayOnDraw go straight into play.
func (d *Duel) drawCards(player int, n int) []*CardInstance {
	p := d.State.Players[player]
	var drawn []*CardInstance
	for i := 0; i < n; i++ {
		if p.HandCount() >= d.State.Rules.MaxHandSize {
			d.log(log.NewDrawSkippedEvent(player, "hand is full"))
			break
		}
		card := p.DrawCard()
		if card == nil {
			d.log(log.NewDrawSkippedEvent(player, "deck is empty"))
			break
		}
		d.log(log.NewDrawEvent(player, card.Card.Name))
		drawn = append(drawn, card)
	}
	if d.State.Phase == PhaseCoinFlip {
		return drawn
	}
	for _, card := range drawn {
		if card.Card.PlayOnDraw && card.Zone == ZoneHand && !d.State.Over {
			d.putIntoPlay(card, "played on draw")
		}
	}
	return drawn
}

// discardRandom sends n random cards from player's hand to the crypt.
func (d *Duel) discardRandom(player int, n int) []*CardInstance {
	p := d.State.Players[player]
	var discarded []*CardInstance
	for i := 0; i < n && p.HandCount() > 0; i++ {
		card := p.Hand[d.rng.Intn(p.HandCount())]
		d.discard(card)
		discarded = append(discarded, card)
	}
	return discarded
}

func (d *Duel) discard(card *CardInstance) {
	for _, e := range d.State.Effects.Query(HookDiscard) {
		if e.Active() && e.OnDiscard(d, e, card) {
			return
		}
	}
	d.log(log.NewDiscardEvent(card.Owner, card.Card.Name))
	d.moveToCrypt(card, RemoveSourceLeft, "discarded")
}

// extendCard lengthens a finite field card and its finite effects.
func (d *Duel) extendCard(card *CardInstance, n int) {
	if !card.OnField() || card.RemainingDuration == DurationInfinite || n <= 0 {
		return
	}
	old := card.RemainingDuration
	card.RemainingDuration += n
	for _, e := range d.State.Effects.BySource(card) {
		e.Extend(n)
	}
	d.log(log.NewDurationChangeEvent(card.Owner, card.Card.Name, old, card.RemainingDuration))
}

// putIntoPlay places card onto its owner's field without paying its cost or
// spending a move, then resolves it like a normal play. It returns false
// when no eligible slot is free.
func (d *Duel) putIntoPlay(card *CardInstance, reason string) bool {
	gs := d.State
	owner := gs.Players[card.Owner]
	slot := SlotNone
	if !card.Card.NoSlot {
		slot = owner.freeSlotFor(card.Card)
		if slot == SlotNone {
			d.log(log.NewCardEffectEvent(card.Owner, card.Card.Name, "no free slot, "+reason+" fizzles"))
			return false
		}
	}
	owner.detach(card)
	if slot != SlotNone {
		d.placeOnField(card, slot)
	} else {
		card.Zone = ZoneField
	}
	d.log(log.NewCardEffectEvent(card.Owner, card.Card.Name, "enters play ("+reason+")"))
	d.resolve(card, card.Owner)
	return true
}
