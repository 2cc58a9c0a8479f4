package game

import (
	"github.com/peterkuimelis/colossus/internal/log"
)

// startGame assigns the first player, deals opening hands and begins the
// first turn.
func (d *Duel) startGame(first int, reason string) {
	gs := d.State
	gs.FirstPlayer = first
	gs.ActivePlayer = first
	gs.Round = 1
	d.log(log.NewFirstPlayerEvent(first, reason))

	for i := 0; i < gs.Rules.StartingHandSize; i++ {
		d.drawCards(first, 1)
		d.drawCards(gs.Opponent(first), 1)
	}
	gs.markRound()
	d.beginTurn(true)
}

// beginTurn runs the draw phase for the active player and opens the main
// phase. The very first turn of the game has no draw.
func (d *Duel) beginTurn(firstTurn bool) {
	gs := d.State
	gs.Turn++
	p := gs.CurrentPlayer()
	p.MovesRemaining = gs.Rules.MovesPerTurn
	d.log(log.NewTurnEvent(gs.Turn, gs.ActivePlayer))

	d.setPhase(PhaseDraw)
	if !firstTurn && !d.replacedDraw(gs.ActivePlayer) {
		d.drawCards(gs.ActivePlayer, gs.Rules.DrawPerTurn)
	}
	if gs.Over {
		return
	}
	d.setPhase(PhaseMain)
}

// roundBoundary closes the current round and opens the next: round-end
// hooks, the round counter, round-start hooks with the duration tick, then
// cleanup of field cards whose time is up.
func (d *Duel) roundBoundary() {
	gs := d.State
	d.setPhase(PhaseEffectResolution)
	d.Tick(TickRoundEnd)
	if gs.Over {
		return
	}

	gs.Round++
	for _, p := range gs.Players {
		p.LastRound = p.Stats
		p.Stats = RoundStats{}
	}
	gs.markRound()
	d.log(log.NewRoundEvent(gs.Round))

	d.Tick(TickRoundStart)
	if gs.Over {
		return
	}

	d.setPhase(PhaseCleanup)
	d.cleanup()
}

// cleanup counts finite field cards down and sends expired ones to their
// destination.
func (d *Duel) cleanup() {
	for _, card := range d.State.CardsInPlay() {
		if !card.OnField() || card.RemainingDuration <= 0 {
			continue
		}
		card.RemainingDuration--
		if card.RemainingDuration > 0 {
			continue
		}
		dest := card.Card.ExpireTo
		d.log(log.NewExpireEvent(card.Owner, card.Card.Name, dest.String()))
		d.sendTo(card, dest, RemoveExpired, "expired")
	}
}

func (d *Duel) setPhase(p Phase) {
	if d.State.Phase == p || d.State.Phase == PhaseGameOver {
		return
	}
	d.State.Phase = p
	d.log(log.NewPhaseChangeEvent(p.String()))
}
