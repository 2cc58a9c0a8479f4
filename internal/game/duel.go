package game

import (
	"context"
	"fmt"

	"github.com/peterkuimelis/colossus/internal/log"
)

// PlayerController is the interface that human (network) and AI (MCP) players implement.
type PlayerController interface {
	// ChooseAction presents available actions and waits for the player to pick one.
	ChooseAction(ctx context.Context, state *GameState, actions []Action) (Action, error)

	// ChooseCards asks the player to select cards from a list (e.g., a crypt card to revive).
	ChooseCards(ctx context.Context, state *GameState, prompt string, candidates []*CardInstance, min, max int) ([]*CardInstance, error)

	// ChooseYesNo asks the player a yes/no question.
	ChooseYesNo(ctx context.Context, state *GameState, prompt string) (bool, error)

	// ChooseOption asks the player to pick one of several labelled options.
	ChooseOption(ctx context.Context, state *GameState, prompt string, options []string) (int, error)

	// ChooseNumber asks the player for a number in [min, max].
	ChooseNumber(ctx context.Context, state *GameState, prompt string, min, max int) (int, error)

	// Notify sends a game event notification (no response needed).
	Notify(ctx context.Context, event log.GameEvent) error
}

// DuelConfig holds configuration for creating a new duel.
type DuelConfig struct {
	Deck0     []*Card // Player 0's deck (card definitions)
	Deck1     []*Card // Player 1's deck (card definitions)
	Rules     Rules   // zero value uses DefaultRules
	Logger    log.EventLogger
	Seed      int64        // RNG seed (0 for random)
	Rand      RandomSource // overrides Seed when set
	NoShuffle bool         // skip deck shuffle (for deterministic tests)
	MaxTurns  int          // Run stops after this many turns (0 = 200)
}

// Duel orchestrates an entire game between two players. All state changes
// go through its methods, one command at a time.
type Duel struct {
	State       *GameState
	Controllers [2]PlayerController
	Logger      log.EventLogger
	ctx         context.Context
	rng         RandomSource
	maxTurns    int
	depth       int
	holdWin     int
}

// NewDuel creates a new duel from the given config and player controllers.
// Controllers may be nil when the duel is driven through the command methods.
func NewDuel(cfg DuelConfig, p0, p1 PlayerController) *Duel {
	rules := cfg.Rules
	if rules == (Rules{}) {
		rules = DefaultRules()
	}
	gs := NewGameState(rules)
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = NewRandomSource(cfg.Seed)
	}
	maxTurns := cfg.MaxTurns
	if maxTurns == 0 {
		maxTurns = 200 // safety limit
	}

	d := &Duel{
		State:       gs,
		Controllers: [2]PlayerController{p0, p1},
		Logger:      logger,
		ctx:         context.Background(),
		rng:         rng,
		maxTurns:    maxTurns,
	}

	// Build player decks as CardInstances
	for p, deck := range [][]*Card{cfg.Deck0, cfg.Deck1} {
		for _, card := range deck {
			ci := gs.CreateCardInstance(card, p)
			gs.Players[p].Deck = append(gs.Players[p].Deck, ci)
		}
	}
	if !cfg.NoShuffle {
		d.shuffleDeck(0)
		d.shuffleDeck(1)
	}
	return d
}

// CoinResult reports the outcome of a coin call.
type CoinResult struct {
	Landed      CoinSide
	Correct     bool
	FirstPlayer int // -1 while undecided
}

// CallCoin resolves player's call during the coin flip. A correct call makes
// the caller go first; once a player has missed the configured number of
// calls the first player is picked at random instead.
func (d *Duel) CallCoin(player int, side CoinSide) (CoinResult, error) {
	gs := d.State
	if err := d.checkActor(player); err != nil {
		return CoinResult{FirstPlayer: gs.FirstPlayer}, err
	}
	if gs.Phase != PhaseCoinFlip {
		return CoinResult{FirstPlayer: gs.FirstPlayer}, reject(InvalidAction, "the coin flip is already settled")
	}

	landed := CoinSide(d.rng.Intn(2))
	correct := landed == side
	d.log(log.NewCoinCallEvent(player, side.String(), landed.String(), correct))

	p := gs.Players[player]
	switch {
	case correct:
		d.startGame(player, "won the coin flip")
	default:
		p.CoinAttempts++
		if p.CoinAttempts >= gs.Rules.CoinFlipAttempts {
			d.startGame(d.rng.Intn(2), fmt.Sprintf("chosen at random after %d missed calls", p.CoinAttempts))
		}
	}
	return CoinResult{Landed: landed, Correct: correct, FirstPlayer: gs.FirstPlayer}, nil
}

// PlayCard plays the card with instance ID cardID from player's hand into
// slot. Slot is ignored for cards that resolve without a slot. Every check
// runs before anything changes; a rejected play leaves the game untouched.
func (d *Duel) PlayCard(player int, cardID int, slot Slot) error {
	if err := d.checkActor(player); err != nil {
		return err
	}
	gs := d.State
	p := gs.Players[player]
	card := p.HandCard(cardID)
	cost, replaced, err := d.checkPlay(player, card, slot)
	if err != nil {
		if card == nil && KindOf(err) == IllegalCardState {
			if found := gs.FindCard(cardID); found != nil {
				return reject(IllegalCardState, "%s is in %s's %s, not in %s's hand",
					found.Card.Name, log.PlayerName(found.Owner), found.Zone, log.PlayerName(player))
			}
		}
		return err
	}

	d.moveGold(PlayerParty(player), PartyNone, cost, card, "cost of "+card.Card.Name)
	p.MovesRemaining--
	if replaced != nil {
		d.moveToCrypt(replaced, RemoveReplaced, "replaced by "+card.Card.Name)
	}
	p.detach(card)
	if card.Card.NoSlot {
		card.Zone = ZoneField
		card.Slot = SlotNone
	} else {
		d.placeOnField(card, slot)
	}
	limit := card.Card.Limit
	gs.Counters.Add(KeyFor(card, counterPlays, limit.Scope), 1, limit.Reset)

	d.log(log.NewPlayEvent(player, card.Card.Name))
	d.resolve(card, player)
	return nil
}

// EndTurn finishes player's turn. When play passes back to the first player
// a round boundary runs before the next turn begins.
func (d *Duel) EndTurn(player int) error {
	if err := d.checkActor(player); err != nil {
		return err
	}
	gs := d.State
	if gs.Phase != PhaseMain {
		return reject(InvalidAction, "cannot end the turn during %s", gs.Phase)
	}
	if player != gs.ActivePlayer {
		return reject(InvalidAction, "it is not %s's turn", log.PlayerName(player))
	}

	gs.Counters.ResetTurn()
	next := gs.Opponent(player)
	if next == gs.FirstPlayer {
		d.roundBoundary()
		if gs.Over {
			return nil
		}
	}
	gs.ActivePlayer = next
	d.beginTurn(false)
	return nil
}

// EndGame ends the game with winner (-1 for no winner) for the given reason.
func (d *Duel) EndGame(winner int, reason string) {
	gs := d.State
	if gs.Over {
		return
	}
	gs.Over = true
	gs.Winner = winner
	if winner >= 0 {
		gs.Result = fmt.Sprintf("%s wins — %s", log.PlayerName(winner), reason)
	} else {
		gs.Result = reason
	}
	d.finish(reason)
}

// Apply executes an action chosen from LegalActions.
func (d *Duel) Apply(a Action) error {
	switch a.Type {
	case ActionCallCoin:
		_, err := d.CallCoin(a.Player, a.Side)
		return err
	case ActionPlayCard:
		if a.Card == nil {
			return reject(IllegalCardState, "no card given")
		}
		return d.PlayCard(a.Player, a.Card.ID, a.Slot)
	case ActionEndTurn:
		return d.EndTurn(a.Player)
	}
	return reject(InvalidAction, "unknown action %d", a.Type)
}

// LegalActions lists every command player may issue right now.
func (d *Duel) LegalActions(player int) []Action {
	gs := d.State
	if gs.Over || player < 0 || player > 1 {
		return nil
	}
	if gs.Phase == PhaseCoinFlip {
		return []Action{
			{Type: ActionCallCoin, Player: player, Side: Heads, Desc: "Call heads"},
			{Type: ActionCallCoin, Player: player, Side: Tails, Desc: "Call tails"},
		}
	}
	if gs.Phase != PhaseMain || player != gs.ActivePlayer {
		return nil
	}

	var actions []Action
	for _, card := range gs.Players[player].Hand {
		slots := card.Card.EligibleSlots()
		if card.Card.NoSlot {
			slots = []Slot{SlotNone}
		}
		for _, s := range slots {
			cost, _, err := d.checkPlay(player, card, s)
			if err != nil {
				continue
			}
			desc := fmt.Sprintf("Play %s (cost %d)", card.Card.Name, cost)
			if s != SlotNone {
				desc += " to " + s.String()
			}
			actions = append(actions, Action{Type: ActionPlayCard, Player: player, Card: card, Slot: s, Desc: desc})
		}
	}
	actions = append(actions, Action{Type: ActionEndTurn, Player: player, Desc: "End turn"})
	return actions
}

// Run executes the entire game loop using the controllers. Returns the
// winner (0, 1, or -1 for no winner).
func (d *Duel) Run(ctx context.Context) (int, error) {
	d.ctx = ctx
	gs := d.State

	for !gs.Over {
		if err := ctx.Err(); err != nil {
			return -1, err
		}
		if gs.Turn > d.maxTurns {
			d.EndGame(-1, fmt.Sprintf("Turn limit reached (%d turns)", d.maxTurns))
			break
		}

		player := gs.ActivePlayer
		actions := d.LegalActions(player)
		if len(actions) == 0 {
			return gs.Winner, fmt.Errorf("no legal actions for %s during %s", log.PlayerName(player), gs.Phase)
		}
		action, err := d.controller(player).ChooseAction(ctx, gs, actions)
		if err != nil {
			return gs.Winner, fmt.Errorf("%s choose action: %w", log.PlayerName(player), err)
		}
		if err := d.Apply(action); err != nil {
			if !IsRejection(err) {
				return gs.Winner, err
			}
			d.log(log.NewCardEffectEvent(player, cardName(action.Card), err.Error()))
		}
	}

	return gs.Winner, nil
}

func (d *Duel) checkActor(player int) error {
	if player < 0 || player > 1 {
		return reject(InvalidAction, "no such player %d", player)
	}
	if d.State.Over {
		return reject(InvalidAction, "the game is over")
	}
	return nil
}

// checkPlay validates a play without changing anything. It returns the
// cost to pay and the field card the play would replace, if any.
func (d *Duel) checkPlay(player int, card *CardInstance, slot Slot) (int, *CardInstance, error) {
	gs := d.State
	if gs.Over {
		return 0, nil, reject(InvalidAction, "the game is over")
	}
	if gs.Phase != PhaseMain {
		return 0, nil, reject(InvalidAction, "cards can only be played in the main phase (now %s)", gs.Phase)
	}
	if player != gs.ActivePlayer {
		return 0, nil, reject(InvalidAction, "it is not %s's turn", log.PlayerName(player))
	}
	p := gs.Players[player]
	if p.MovesRemaining <= 0 {
		return 0, nil, reject(InvalidAction, "no moves remaining this turn")
	}
	if card == nil || card.Owner != player || card.Zone != ZoneHand || p.HandCard(card.ID) == nil {
		return 0, nil, reject(IllegalCardState, "card is not in %s's hand", log.PlayerName(player))
	}

	if limit := card.Card.Limit; limit.Max > 0 {
		if gs.Counters.Get(KeyFor(card, counterPlays, limit.Scope)) >= limit.Max {
			return 0, nil, reject(InvalidAction, "%s can only be played %d time(s) per %s", card.Card.Name, limit.Max, limitPeriod(limit))
		}
	}

	var replaced *CardInstance
	if !card.Card.NoSlot {
		if slot < 0 || slot >= SlotCount {
			return 0, nil, reject(InvalidPlacement, "no such slot %d", slot)
		}
		if !card.Card.CanOccupy(slot) {
			return 0, nil, reject(InvalidPlacement, "%s cannot be placed in the %s slot", card.Card.Name, slot)
		}
		if occupant := p.Field[slot]; occupant != nil {
			if card.Card.Replaces == "" || occupant.Card.ID != card.Card.Replaces {
				return 0, nil, reject(InvalidPlacement, "the %s slot is occupied by %s", slot, occupant.Card.Name)
			}
			replaced = occupant
		}
	}

	cost := d.CostOf(card, player)
	if cost > p.Gold {
		return 0, nil, reject(InsufficientResources, "%s costs %d gold but %s has %d", card.Card.Name, cost, log.PlayerName(player), p.Gold)
	}
	if card.Card.CanPlay != nil {
		if err := card.Card.CanPlay(d, card, p, gs.Players[gs.Opponent(player)]); err != nil {
			return 0, nil, err
		}
	}
	if e := d.playVeto(card, player); e != nil {
		return 0, nil, reject(InvalidAction, "%s is prevented by %s", card.Card.Name, e.Label())
	}
	return cost, replaced, nil
}

func limitPeriod(l PlayLimit) string {
	if l.Reset == ResetEachTurn {
		return "turn"
	}
	return "game"
}

// resolve runs a card that has just entered play.
func (d *Duel) resolve(card *CardInstance, player int) {
	gs := d.State
	for _, t := range card.Card.Types {
		gs.Tallies[t]++
	}
	if e := d.negatedBy(card, player); e != nil {
		d.log(log.NewNegatedEvent(player, card.Card.Name, e.Label()))
	} else if card.Card.OnPlay != nil {
		card.Card.OnPlay(d, card, gs.Players[player], gs.Players[gs.Opponent(player)])
	}
	if !gs.Over {
		d.firePlayed(card, player)
	}
	if card.Card.IsInstant() && card.OnField() {
		d.sendTo(card, card.Card.AfterPlay, RemoveSourceLeft, "resolved")
	}
	d.checkWin()
}

func (d *Duel) checkWin() {
	if d.State.Phase == PhaseGameOver || d.holdWin > 0 {
		return
	}
	if d.State.CheckWinCondition() {
		d.finish(d.State.Result)
	}
}

func (d *Duel) finish(reason string) {
	gs := d.State
	if gs.Phase == PhaseGameOver {
		return
	}
	gs.Phase = PhaseGameOver
	if gs.Winner >= 0 {
		d.log(log.NewWinEvent(gs.Winner, reason))
	} else {
		d.log(log.NewGameDrawnEvent(reason))
	}
}

func (d *Duel) log(event log.GameEvent) {
	gs := d.State
	event.Round = gs.Round
	event.Turn = gs.Turn
	event.Phase = gs.Phase.String()
	d.Logger.Log(event)
	gs.CombatLog = append(gs.CombatLog, event.Details)
	// Notify controllers (ignore errors for notifications)
	for i := 0; i < 2; i++ {
		if d.Controllers[i] != nil {
			_ = d.Controllers[i].Notify(d.ctx, event)
		}
	}
}
