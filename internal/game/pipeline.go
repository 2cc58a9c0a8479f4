package game

import (
	"github.com/peterkuimelis/colossus/internal/log"
)

// Party is one side of a gold transfer: a player index, the bank, or nobody.
type Party int

const (
	PartyNone Party = -2
	PartyBank Party = -1
)

// PlayerParty returns the party for player index p.
func PlayerParty(p int) Party {
	return Party(p)
}

// IsPlayer reports whether the party is a player.
func (p Party) IsPlayer() bool {
	return p >= 0
}

func (p Party) String() string {
	switch p {
	case PartyNone:
		return "nowhere"
	case PartyBank:
		return "Bank"
	default:
		return log.PlayerName(int(p))
	}
}

// maxPipelineDepth bounds hooks that trigger further events from inside
// a transform.
const maxPipelineDepth = 8

func (d *Duel) enterPipeline() bool {
	if d.depth >= maxPipelineDepth {
		return false
	}
	d.depth++
	return true
}

func (d *Duel) leavePipeline() {
	d.depth--
}

// DealDamage routes damage from player from (or -1) to player to through
// the damage-dealt and damage-received hooks, applies it, and checks for
// a winner. It returns the health actually lost.
func (d *Duel) DealDamage(from, to int, amount int, card *CardInstance, reason string) int {
	gs := d.State
	if gs.Over || amount <= 0 {
		return 0
	}
	if !d.enterPipeline() {
		return 0
	}
	defer d.leavePipeline()

	ev := DamageEvent{From: from, To: to, Card: card, Reason: reason}
	for _, e := range gs.Effects.Query(HookDamageDealt) {
		if e.Active() {
			amount = e.OnDamageDealt(d, e, ev, amount)
		}
	}
	for _, e := range gs.Effects.Query(HookDamageReceived) {
		if e.Active() {
			amount = e.OnDamageReceived(d, e, ev, amount)
		}
	}
	if amount < 0 {
		amount = 0
	}

	target := gs.Players[to]
	old := target.Health
	lost := target.loseHealth(amount)
	target.Stats.DamageTaken += lost
	if from >= 0 {
		gs.Players[from].Stats.DamageDealt += lost
	}
	d.log(log.NewDamageEvent(to, cardName(card), old, target.Health, reason))
	d.checkWin()
	return lost
}

// Heal routes healing for player through the heal hooks and applies it.
func (d *Duel) Heal(player int, amount int, card *CardInstance, reason string) int {
	gs := d.State
	if gs.Over || amount <= 0 {
		return 0
	}
	if !d.enterPipeline() {
		return 0
	}
	defer d.leavePipeline()

	ev := HealEvent{Player: player, Card: card, Reason: reason}
	for _, e := range gs.Effects.Query(HookHeal) {
		if e.Active() {
			amount = e.OnHeal(d, e, ev, amount)
		}
	}
	return d.healDirect(player, amount, card, reason)
}

// healDirect applies healing without consulting any hook.
func (d *Duel) healDirect(player int, amount int, card *CardInstance, reason string) int {
	if amount <= 0 {
		return 0
	}
	p := d.State.Players[player]
	old := p.Health
	gained := p.gainHealth(amount)
	p.Stats.Healed += gained
	d.log(log.NewHealEvent(player, cardName(card), old, p.Health, reason))
	return gained
}

// TransferGold moves gold from one party to another. Gold-taken hooks see
// the amount when a player pays; gold-received hooks then see it when a
// player is paid. The final amount is floored at zero and capped by what
// the paying party holds. It returns the amount that moved.
func (d *Duel) TransferGold(from, to Party, amount int, card *CardInstance, reason string) int {
	gs := d.State
	if gs.Over || amount <= 0 {
		return 0
	}
	if !d.enterPipeline() {
		return 0
	}
	defer d.leavePipeline()

	ev := GoldEvent{From: from, To: to, Card: card, Reason: reason}
	if from.IsPlayer() {
		for _, e := range gs.Effects.Query(HookGoldTaken) {
			if e.Active() {
				amount = e.OnGoldTaken(d, e, ev, amount)
			}
		}
	}
	if to.IsPlayer() {
		for _, e := range gs.Effects.Query(HookGoldReceived) {
			if e.Active() {
				amount = e.OnGoldReceived(d, e, ev, amount)
			}
		}
	}
	return d.moveGold(from, to, amount, card, reason)
}

// moveGold settles a transfer without consulting any hook.
func (d *Duel) moveGold(from, to Party, amount int, card *CardInstance, reason string) int {
	gs := d.State
	if amount <= 0 {
		return 0
	}
	switch {
	case from.IsPlayer():
		amount = gs.Players[from].takeGold(amount)
		gs.Players[from].Stats.GoldLost += amount
	case from == PartyBank:
		amount = gs.Bank.withdraw(amount)
	}
	if amount == 0 {
		return 0
	}
	switch {
	case to.IsPlayer():
		gs.Players[to].addGold(amount)
		gs.Players[to].Stats.GoldGained += amount
	case to == PartyBank:
		gs.Bank.deposit(amount)
	}

	player := -1
	if to.IsPlayer() {
		player = int(to)
	} else if from.IsPlayer() {
		player = int(from)
	}
	d.log(log.NewGoldEvent(player, cardName(card), amount, from.String(), to.String(), reason))
	return amount
}

// CostOf computes what player must pay to play card, after every card-cost
// transform. Cost transforms are pure, so CostOf never changes the game.
func (d *Duel) CostOf(card *CardInstance, player int) int {
	cost := card.Card.Cost
	for _, e := range d.State.Effects.Query(HookCardCost) {
		if e.Active() {
			cost = e.OnCardCost(d, e, card, player, cost)
		}
	}
	if cost < 0 {
		cost = 0
	}
	return cost
}

// playVeto returns the first effect that forbids player from playing card.
func (d *Duel) playVeto(card *CardInstance, player int) *Effect {
	for _, e := range d.State.Effects.Query(HookPlayAttempt) {
		if e.Active() && !e.OnPlayAttempt(d, e, card, player) {
			return e
		}
	}
	return nil
}

// negatedBy returns the first effect that cancels card's resolution.
func (d *Duel) negatedBy(card *CardInstance, player int) *Effect {
	for _, e := range d.State.Effects.Query(HookNegate) {
		if e.Active() && e.Source != card && e.OnNegate(d, e, card, player) {
			return e
		}
	}
	return nil
}

func (d *Duel) firePlayed(card *CardInstance, player int) {
	for _, e := range d.State.Effects.Query(HookCardPlayed) {
		if d.State.Over {
			return
		}
		if e.Active() && e.Source != card {
			e.OnCardPlayed(d, e, card, player)
		}
	}
}

func (d *Duel) fireToCrypt(card *CardInstance) {
	for _, e := range d.State.Effects.Query(HookCardToCrypt) {
		if e.Active() && e.Source != card {
			e.OnCardToCrypt(d, e, card)
		}
	}
}

// replacedDraw reports whether an effect consumed player's normal draw.
func (d *Duel) replacedDraw(player int) bool {
	for _, e := range d.State.Effects.Query(HookDraw) {
		if e.Active() && e.OnDraw(d, e, player) {
			return true
		}
	}
	return false
}

func cardName(card *CardInstance) string {
	if card == nil {
		return ""
	}
	return card.Card.Name
}
