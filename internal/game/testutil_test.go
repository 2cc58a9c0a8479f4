package game

import (
	"context"
	"fmt"
	"testing"

	"github.com/peterkuimelis/colossus/internal/log"
)

// ScriptedController is a PlayerController that follows a predefined script of actions.
// Used in tests to deterministically drive the game.
type ScriptedController struct {
	t       *testing.T
	name    string
	actions []ScriptedAction
	pos     int

	// For ChooseCards prompts
	cardChoices []ScriptedCardChoice
	cardPos     int

	// For ChooseYesNo prompts
	yesNoChoices []bool
	yesNoPos     int

	options   []int
	optionPos int
	numbers   []int
	numberPos int

	prompts []string
}

type ScriptedAction struct {
	// Match by ActionType: picks the first action of this type
	Type ActionType
	// Optional: match by catalog id as well
	CardID string
}

type ScriptedCardChoice struct {
	// Choose cards by catalog id
	IDs []string
}

func NewScriptedController(t *testing.T, name string) *ScriptedController {
	return &ScriptedController{t: t, name: name}
}

func (sc *ScriptedController) AddAction(actionType ActionType, cardID string) *ScriptedController {
	sc.actions = append(sc.actions, ScriptedAction{Type: actionType, CardID: cardID})
	return sc
}

func (sc *ScriptedController) AddPlay(cardID string) *ScriptedController {
	return sc.AddAction(ActionPlayCard, cardID)
}

func (sc *ScriptedController) AddCardChoice(ids ...string) *ScriptedController {
	sc.cardChoices = append(sc.cardChoices, ScriptedCardChoice{IDs: ids})
	return sc
}

func (sc *ScriptedController) AddYesNo(answer bool) *ScriptedController {
	sc.yesNoChoices = append(sc.yesNoChoices, answer)
	return sc
}

func (sc *ScriptedController) AddOption(i int) *ScriptedController {
	sc.options = append(sc.options, i)
	return sc
}

func (sc *ScriptedController) AddNumber(n int) *ScriptedController {
	sc.numbers = append(sc.numbers, n)
	return sc
}

func (sc *ScriptedController) ChooseAction(ctx context.Context, state *GameState, actions []Action) (Action, error) {
	// Coin calls are always heads.
	for _, a := range actions {
		if a.Type == ActionCallCoin {
			return a, nil
		}
	}
	if sc.pos < len(sc.actions) {
		// Peek at next scripted action; only consume it if it matches an available action.
		// This allows scripts to span multiple turns without needing to explicitly script "EndTurn".
		scripted := sc.actions[sc.pos]
		for _, a := range actions {
			if a.Type != scripted.Type {
				continue
			}
			if scripted.CardID != "" && (a.Card == nil || a.Card.Card.ID != scripted.CardID) {
				continue
			}
			sc.pos++
			return a, nil
		}
	}
	for _, a := range actions {
		if a.Type == ActionEndTurn {
			return a, nil
		}
	}
	return actions[len(actions)-1], nil
}

func (sc *ScriptedController) ChooseCards(ctx context.Context, state *GameState, prompt string, candidates []*CardInstance, min, max int) ([]*CardInstance, error) {
	sc.prompts = append(sc.prompts, prompt)
	if sc.cardPos >= len(sc.cardChoices) {
		// Default: choose the first min candidates
		if min > len(candidates) {
			min = len(candidates)
		}
		return candidates[:min], nil
	}

	choice := sc.cardChoices[sc.cardPos]
	sc.cardPos++

	var result []*CardInstance
	used := make(map[*CardInstance]bool)
	for _, id := range choice.IDs {
		for _, c := range candidates {
			if c.Card.ID == id && !used[c] {
				used[c] = true
				result = append(result, c)
				break
			}
		}
	}

	if len(result) < min {
		return nil, fmt.Errorf("[%s] card choice: wanted %v but only found %d in candidates", sc.name, choice.IDs, len(result))
	}
	return result, nil
}

func (sc *ScriptedController) ChooseYesNo(ctx context.Context, state *GameState, prompt string) (bool, error) {
	sc.prompts = append(sc.prompts, prompt)
	if sc.yesNoPos >= len(sc.yesNoChoices) {
		return false, nil
	}
	answer := sc.yesNoChoices[sc.yesNoPos]
	sc.yesNoPos++
	return answer, nil
}

func (sc *ScriptedController) ChooseOption(ctx context.Context, state *GameState, prompt string, options []string) (int, error) {
	sc.prompts = append(sc.prompts, prompt)
	if sc.optionPos >= len(sc.options) {
		return 0, nil
	}
	i := sc.options[sc.optionPos]
	sc.optionPos++
	return i, nil
}

func (sc *ScriptedController) ChooseNumber(ctx context.Context, state *GameState, prompt string, min, max int) (int, error) {
	sc.prompts = append(sc.prompts, prompt)
	if sc.numberPos >= len(sc.numbers) {
		return min, nil
	}
	n := sc.numbers[sc.numberPos]
	sc.numberPos++
	return n, nil
}

func (sc *ScriptedController) Notify(ctx context.Context, event log.GameEvent) error {
	return nil
}

// fixedRand replays a fixed sequence of Intn results (modulo n) and never
// reorders on Shuffle. An exhausted sequence keeps returning 0.
type fixedRand struct {
	ints []int
	pos  int
}

func (r *fixedRand) Intn(n int) int {
	if r.pos >= len(r.ints) {
		return 0
	}
	v := r.ints[r.pos] % n
	r.pos++
	return v
}

func (r *fixedRand) Shuffle(n int, swap func(i, j int)) {}

// rolls builds a fixedRand whose die rolls come out as the given faces.
func rolls(faces ...int) *fixedRand {
	ints := make([]int, len(faces))
	for i, f := range faces {
		ints[i] = f - 1
	}
	return &fixedRand{ints: ints}
}

// --- Test card helpers ---

// plainCard is a card with no binding side effects.
func plainCard(id string, cost, duration int, types ...CardType) *Card {
	return &Card{
		ID:       id,
		Name:     id,
		Types:    types,
		Cost:     cost,
		Duration: duration,
		OnPlay:   func(d *Duel, card *CardInstance, player, opponent *Player) {},
	}
}

// makePaddedDeck creates a deck with specified cards on top (drawn first) and filler to reach a minimum size.
// topCards are ordered so that index 0 is drawn first.
func makePaddedDeck(topCards []*Card, minSize int) []*Card {
	filler := plainCard("filler", 1, 1, TypeHuman)
	deck := make([]*Card, 0, minSize)

	// Filler goes at bottom (drawn last)
	for i := 0; i < minSize-len(topCards); i++ {
		deck = append(deck, filler)
	}

	// Top cards go at end of slice (drawn first); reverse order so index 0 is drawn first
	for i := len(topCards) - 1; i >= 0; i-- {
		deck = append(deck, topCards[i])
	}

	return deck
}

// openingDeck orders cards so the first player's opening hand is exactly
// hand (the first three draws), followed by later draws in order.
func openingDeck(cards ...*Card) []*Card {
	return makePaddedDeck(cards, 20)
}

// newTestDuel builds an unshuffled duel with a fixed random source. The
// coin flip has not happened yet.
func newTestDuel(t *testing.T, deck0, deck1 []*Card, rng RandomSource, p0, p1 PlayerController) (*Duel, *log.MemoryLogger) {
	t.Helper()
	if rng == nil {
		rng = &fixedRand{}
	}
	logger := log.NewMemoryLogger()
	d := NewDuel(DuelConfig{
		Deck0:     deck0,
		Deck1:     deck1,
		Logger:    logger,
		Rand:      rng,
		NoShuffle: true,
	}, p0, p1)
	return d, logger
}

// startDuel builds a duel and has P1 win the coin flip, so it is P1's
// main phase in round 1 with three cards in each hand. The coin reads the
// first value of rng, so a rolls() source must start with a 1 for heads.
func startDuel(t *testing.T, deck0, deck1 []*Card, rng RandomSource, p0, p1 PlayerController) (*Duel, *log.MemoryLogger) {
	t.Helper()
	if rng == nil {
		rng = &fixedRand{}
	}
	d, logger := newTestDuel(t, deck0, deck1, rng, p0, p1)
	res, err := d.CallCoin(0, Heads)
	if err != nil {
		t.Fatalf("CallCoin: %v", err)
	}
	if !res.Correct || d.State.FirstPlayer != 0 {
		t.Fatalf("expected P1 to win the flip, got %+v", res)
	}
	return d, logger
}

// handCard returns the first card with catalog id in player's hand.
func handCard(t *testing.T, d *Duel, player int, id string) *CardInstance {
	t.Helper()
	for _, c := range d.State.Players[player].Hand {
		if c.Card.ID == id {
			return c
		}
	}
	t.Fatalf("%s not in %s's hand", id, log.PlayerName(player))
	return nil
}

// play plays the first copy of id from player's hand into its first
// eligible slot and fails the test on rejection.
func play(t *testing.T, d *Duel, player int, id string) *CardInstance {
	t.Helper()
	card := handCard(t, d, player, id)
	slot := SlotNone
	if !card.Card.NoSlot {
		slot = d.State.Players[player].freeSlotFor(card.Card)
		if slot == SlotNone {
			slot = card.Card.EligibleSlots()[0]
		}
	}
	if err := d.PlayCard(player, card.ID, slot); err != nil {
		t.Fatalf("play %s: %v", id, err)
	}
	return card
}

// endRound ends both players' turns, running one round boundary.
func endRound(t *testing.T, d *Duel) {
	t.Helper()
	for i := 0; i < 2 && !d.State.Over; i++ {
		if err := d.EndTurn(d.State.ActivePlayer); err != nil {
			t.Fatalf("EndTurn: %v", err)
		}
	}
}

// place puts a fresh instance of card straight onto player's field,
// bypassing cost and moves, and resolves it.
func place(t *testing.T, d *Duel, player int, card *Card) *CardInstance {
	t.Helper()
	ci := d.State.CreateCardInstance(card, player)
	ci.Zone = ZoneHand
	d.State.Players[player].Hand = append(d.State.Players[player].Hand, ci)
	if !d.putIntoPlay(ci, "test") {
		t.Fatalf("no slot for %s", card.ID)
	}
	return ci
}

// giveHand adds fresh instances of cards to player's hand.
func giveHand(d *Duel, player int, cards ...*Card) []*CardInstance {
	var out []*CardInstance
	for _, c := range cards {
		ci := d.State.CreateCardInstance(c, player)
		ci.Zone = ZoneHand
		d.State.Players[player].Hand = append(d.State.Players[player].Hand, ci)
		out = append(out, ci)
	}
	return out
}

// giveCrypt adds fresh instances of cards to player's crypt.
func giveCrypt(d *Duel, player int, cards ...*Card) []*CardInstance {
	var out []*CardInstance
	for _, c := range cards {
		ci := d.State.CreateCardInstance(c, player)
		ci.Zone = ZoneCrypt
		d.State.Players[player].Crypt = append(d.State.Players[player].Crypt, ci)
		out = append(out, ci)
	}
	return out
}

func fillerDeck() []*Card {
	return makePaddedDeck(nil, 20)
}
