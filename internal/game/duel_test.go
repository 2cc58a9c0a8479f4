package game

import (
	"context"
	"reflect"
	"testing"

	"github.com/peterkuimelis/colossus/internal/log"
)

const openingDecksYAML = `
decks:
  - name: Coin and Crowns
    cards:
      - { id: absorb, count: 2 }
      - { id: atmos, count: 2 }
      - { id: firo, count: 2 }
      - { id: cup-of-blood, count: 2 }
      - { id: ythpxx, count: 2 }
      - { id: face-of-fate, count: 2 }
      - { id: failing-operation, count: 2 }
      - { id: universal-tax, count: 3 }
      - { id: king-kain, count: 2 }
      - { id: the-champ, count: 1 }
  - name: Fog
    cards:
      - { id: skinlette, count: 2 }
      - { id: dust-bowl, count: 2 }
      - { id: her-spirit, count: 2 }
      - { id: madame-nilah, count: 2 }
      - { id: spear-a-gott, count: 2 }
      - { id: yatesuratsu, count: 2 }
      - { id: party-trick, count: 2 }
      - { id: nyton-arena, count: 2 }
      - { id: universal-tax, count: 3 }
      - { id: chromax, count: 1 }
`

// TestOpeningPlayZeroCostCard: two real decks, P1 calls heads correctly and
// plays The Champ for free.
func TestOpeningPlayZeroCostCard(t *testing.T) {
	df, err := ParseDecks([]byte(openingDecksYAML))
	if err != nil {
		t.Fatalf("parse decks: %v", err)
	}
	rules := DefaultRules()
	name0, deck0, err := df.Deck(1, rules)
	if err != nil {
		t.Fatalf("deck 1: %v", err)
	}
	name1, deck1, err := df.Deck(2, rules)
	if err != nil {
		t.Fatalf("deck 2: %v", err)
	}
	if name0 == name1 || len(deck0) != 20 || len(deck1) != 20 {
		t.Fatalf("expected two distinct 20-card decks, got %q(%d) and %q(%d)", name0, len(deck0), name1, len(deck1))
	}

	d, logger := newTestDuel(t, deck0, deck1, nil, nil, nil)
	res, err := d.CallCoin(0, Heads)
	if err != nil {
		t.Fatalf("CallCoin: %v", err)
	}
	if res.Landed != Heads || !res.Correct || res.FirstPlayer != 0 {
		t.Fatalf("expected a correct heads call, got %+v", res)
	}
	p := d.State.Players[0]
	if p.HandCount() != 3 || d.State.Players[1].HandCount() != 3 {
		t.Fatalf("expected 3-card hands, got %d and %d", p.HandCount(), d.State.Players[1].HandCount())
	}
	if d.State.Phase != PhaseMain || d.State.Round != 1 {
		t.Fatalf("expected round 1 main phase, got round %d %s", d.State.Round, d.State.Phase)
	}

	champ := handCard(t, d, 0, "the-champ")
	gold, moves := p.Gold, p.MovesRemaining
	if err := d.PlayCard(0, champ.ID, SlotHumanNonhuman); err != nil {
		t.Fatalf("play The Champ: %v", err)
	}

	if p.HandCount() != 2 {
		t.Errorf("expected hand of 2, got %d", p.HandCount())
	}
	if p.Field[SlotHumanNonhuman] != champ {
		t.Errorf("The Champ should occupy the Human/Nonhuman slot")
	}
	if n := len(logger.EventsOfType(log.EventPlay)); n != 1 {
		t.Errorf("expected exactly one play entry, got %d", n)
	}
	if p.MovesRemaining != moves-1 {
		t.Errorf("expected %d moves left, got %d", moves-1, p.MovesRemaining)
	}
	if p.Gold != gold {
		t.Errorf("a free card changed gold from %d to %d", gold, p.Gold)
	}
}

func TestDoublingThroughPlayedCard(t *testing.T) {
	d, _ := startDuel(t, openingDeck(NorthernQueen()), fillerDeck(), nil, nil, nil)
	play(t, d, 0, "northern-queen")

	before := d.State.Players[0].Gold
	if moved := d.TransferGold(PartyBank, PlayerParty(0), 10, nil, "test"); moved != 20 {
		t.Fatalf("expected doubling to turn 10 into 20, moved %d", moved)
	}
	if got := d.State.Players[0].Gold - before; got != 20 {
		t.Errorf("expected +20 gold, got +%d", got)
	}
}

func TestThreeRoundCardLastsThreeFullRounds(t *testing.T) {
	removed := 0
	omen := &Card{
		ID:       "omen",
		Name:     "Omen",
		Types:    []CardType{TypeCelestial},
		Duration: 3,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{OnRemove: func(d *Duel, e *Effect) { removed++ }})
		},
	}
	d, _ := startDuel(t, openingDeck(omen), fillerDeck(), nil, nil, nil)
	card := play(t, d, 0, "omen")

	for round := 2; round <= 3; round++ {
		endRound(t, d)
		if d.State.Round != round || !card.OnField() {
			t.Fatalf("round %d: expected the card in play, zone %s", d.State.Round, card.Zone)
		}
		if removed != 0 {
			t.Fatalf("round %d: OnRemove fired early", round)
		}
	}
	endRound(t, d)
	if card.Zone != ZoneCrypt {
		t.Fatalf("after three rounds the card should be in the crypt, is in %s", card.Zone)
	}
	if removed != 1 {
		t.Errorf("expected OnRemove exactly once, got %d", removed)
	}
	endRound(t, d)
	if removed != 1 {
		t.Errorf("OnRemove fired again after expiry: %d", removed)
	}
}

func TestLethalDamageEndsTheGame(t *testing.T) {
	strike := &Card{
		ID:    "strike",
		Name:  "Strike",
		Types: []CardType{TypeEvent},
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			d.DealDamage(player.Index, opponent.Index, 25, card, "")
		},
	}
	d, logger := startDuel(t, openingDeck(strike, strike, strike), fillerDeck(), nil, nil, nil)
	d.State.Players[1].Health = 75

	for i := 0; i < 3; i++ {
		play(t, d, 0, "strike")
	}

	gs := d.State
	if gs.Players[1].Health != 0 {
		t.Fatalf("expected P2 at 0 health, got %d", gs.Players[1].Health)
	}
	if !gs.Over || gs.Winner != 0 || gs.Phase != PhaseGameOver {
		t.Fatalf("expected P1 to win, over=%v winner=%d phase=%s", gs.Over, gs.Winner, gs.Phase)
	}
	if len(logger.EventsOfType(log.EventWin)) != 1 {
		t.Error("expected one win event")
	}

	if err := d.EndTurn(0); KindOf(err) != InvalidAction {
		t.Errorf("EndTurn after game over: expected InvalidAction, got %v", err)
	}
	if _, err := d.CallCoin(1, Tails); KindOf(err) != InvalidAction {
		t.Errorf("CallCoin after game over: expected InvalidAction, got %v", err)
	}
	if err := d.PlayCard(0, 1, SlotHumanNonhuman); KindOf(err) != InvalidAction {
		t.Errorf("PlayCard after game over: expected InvalidAction, got %v", err)
	}
	if actions := d.LegalActions(0); len(actions) != 0 {
		t.Errorf("expected no legal actions, got %v", actions)
	}
}

func TestSimultaneousKnockoutIsADraw(t *testing.T) {
	d, _ := startDuel(t, fillerDeck(), fillerDeck(), nil, nil, nil)
	d.State.Players[0].Health = 5
	d.State.Players[1].Health = 5
	d.atOnce(func() {
		d.DealDamage(-1, 0, 5, nil, "blast")
		d.DealDamage(-1, 1, 5, nil, "blast")
	})
	if !d.State.Over || d.State.Winner != -1 {
		t.Fatalf("expected a draw, over=%v winner=%d", d.State.Over, d.State.Winner)
	}
}

func TestInsufficientGoldRejectionIsIdempotent(t *testing.T) {
	pricey := plainCard("pricey", 60, 2, TypeHuman)
	d, _ := startDuel(t, openingDeck(pricey), fillerDeck(), nil, nil, nil)
	card := handCard(t, d, 0, "pricey")

	before := d.Snapshot()
	err1 := d.PlayCard(0, card.ID, SlotHumanNonhuman)
	if KindOf(err1) != InsufficientResources {
		t.Fatalf("expected InsufficientResources, got %v", err1)
	}
	after := d.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Fatal("a rejected play changed the game")
	}
	err2 := d.PlayCard(0, card.ID, SlotHumanNonhuman)
	if err2 == nil || err2.Error() != err1.Error() {
		t.Fatalf("retry should give the identical rejection: %v vs %v", err1, err2)
	}
	if !reflect.DeepEqual(after, d.Snapshot()) {
		t.Fatal("the retry changed the game")
	}
}

func TestVetoedPlayStaysInHand(t *testing.T) {
	d, _ := startDuel(t, openingDeck(plainCard("banned", 0, 2, TypeHuman), plainCard("free", 0, 2, TypeHuman)), fillerDeck(), nil, nil, nil)
	d.addEffect(&Effect{Name: "ban", Owner: 1, Duration: 3, Hooks: Hooks{
		OnPlayAttempt: func(d *Duel, e *Effect, card *CardInstance, player int) bool {
			return card.Card.ID != "banned"
		},
	}})
	card := handCard(t, d, 0, "banned")

	before := d.Snapshot()
	err := d.PlayCard(0, card.ID, SlotHumanNonhuman)
	if KindOf(err) != InvalidAction {
		t.Fatalf("expected InvalidAction, got %v", err)
	}
	if card.Zone != ZoneHand {
		t.Errorf("vetoed card moved to %v", card.Zone)
	}
	if !reflect.DeepEqual(before, d.Snapshot()) {
		t.Fatal("a vetoed play changed the game")
	}

	play(t, d, 0, "free")
}

func TestPlayRejections(t *testing.T) {
	d, _ := startDuel(t, openingDeck(plainCard("a", 1, 2, TypeHuman), plainCard("b", 1, 2, TypeHuman)), fillerDeck(), nil, nil, nil)
	a := handCard(t, d, 0, "a")
	b := handCard(t, d, 0, "b")

	if err := d.PlayCard(0, a.ID, SlotEventObject); KindOf(err) != InvalidPlacement {
		t.Errorf("wrong slot: expected InvalidPlacement, got %v", err)
	}
	if err := d.PlayCard(0, a.ID, Slot(7)); KindOf(err) != InvalidPlacement {
		t.Errorf("bad slot: expected InvalidPlacement, got %v", err)
	}
	if err := d.PlayCard(1, d.State.Players[1].Hand[0].ID, SlotHumanNonhuman); KindOf(err) != InvalidAction {
		t.Errorf("out of turn: expected InvalidAction, got %v", err)
	}
	if err := d.PlayCard(0, 9999, SlotHumanNonhuman); KindOf(err) != IllegalCardState {
		t.Errorf("unknown card: expected IllegalCardState, got %v", err)
	}
	if err := d.PlayCard(0, d.State.Players[1].Hand[0].ID, SlotHumanNonhuman); KindOf(err) != IllegalCardState {
		t.Errorf("opponent's card: expected IllegalCardState, got %v", err)
	}

	play(t, d, 0, "a")
	if err := d.PlayCard(0, b.ID, SlotHumanNonhuman); KindOf(err) != InvalidPlacement {
		t.Errorf("occupied slot: expected InvalidPlacement, got %v", err)
	}
	if err := d.PlayCard(0, a.ID, SlotHumanNonhuman); KindOf(err) != IllegalCardState {
		t.Errorf("card on field: expected IllegalCardState, got %v", err)
	}

	d.State.Players[0].MovesRemaining = 0
	if err := d.PlayCard(0, b.ID, SlotHumanNonhuman); KindOf(err) != InvalidAction {
		t.Errorf("no moves: expected InvalidAction, got %v", err)
	}
}

func TestCoinFlipFallsBackToRandomAfterMisses(t *testing.T) {
	// Coin lands tails three times, then the random pick chooses P2.
	d, _ := newTestDuel(t, fillerDeck(), fillerDeck(), &fixedRand{ints: []int{1, 1, 1, 1}}, nil, nil)
	for i := 0; i < 3; i++ {
		res, err := d.CallCoin(0, Heads)
		if err != nil {
			t.Fatalf("call %d: %v", i, err)
		}
		if res.Correct {
			t.Fatalf("call %d should miss", i)
		}
		if i < 2 && res.FirstPlayer != -1 {
			t.Fatalf("first player settled too early after call %d", i)
		}
	}
	if d.State.FirstPlayer != 1 || d.State.ActivePlayer != 1 {
		t.Fatalf("expected P2 picked at random, got first=%d", d.State.FirstPlayer)
	}
	if _, err := d.CallCoin(0, Heads); KindOf(err) != InvalidAction {
		t.Errorf("calling after the flip should be rejected, got %v", err)
	}
}

func TestEndTurnDrawsAndRoundsAdvanceWithFirstPlayer(t *testing.T) {
	d, _ := startDuel(t, fillerDeck(), fillerDeck(), nil, nil, nil)
	gs := d.State
	if err := d.EndTurn(1); KindOf(err) != InvalidAction {
		t.Fatalf("P2 cannot end P1's turn, got %v", err)
	}
	if err := d.EndTurn(0); err != nil {
		t.Fatalf("EndTurn: %v", err)
	}
	if gs.ActivePlayer != 1 || gs.Round != 1 {
		t.Fatalf("expected P2's turn in round 1, got P%d round %d", gs.ActivePlayer+1, gs.Round)
	}
	if gs.Players[1].HandCount() != 4 || gs.Players[1].MovesRemaining != 3 {
		t.Errorf("P2 should draw to 4 with 3 moves, got %d cards %d moves", gs.Players[1].HandCount(), gs.Players[1].MovesRemaining)
	}
	if err := d.EndTurn(1); err != nil {
		t.Fatalf("EndTurn: %v", err)
	}
	if gs.ActivePlayer != 0 || gs.Round != 2 {
		t.Fatalf("expected P1's turn in round 2, got P%d round %d", gs.ActivePlayer+1, gs.Round)
	}
}

func TestHandLimitLeavesCardsInDeck(t *testing.T) {
	d, logger := startDuel(t, fillerDeck(), fillerDeck(), nil, nil, nil)
	p := d.State.Players[0]
	deck := p.DeckCount()
	drawn := d.drawCards(0, 10)
	if p.HandCount() != d.State.Rules.MaxHandSize {
		t.Fatalf("hand should stop at %d, has %d", d.State.Rules.MaxHandSize, p.HandCount())
	}
	if p.DeckCount() != deck-len(drawn) {
		t.Errorf("overflow cards should stay in the deck")
	}
	if len(logger.EventsOfType(log.EventDrawSkipped)) == 0 {
		t.Error("expected a skipped-draw event")
	}
}

func TestRunEndsAtTurnLimit(t *testing.T) {
	p0 := NewScriptedController(t, "P1")
	p1 := NewScriptedController(t, "P2")
	p0.AddPlay("filler")
	logger := log.NewMemoryLogger()
	d := NewDuel(DuelConfig{
		Deck0:     fillerDeck(),
		Deck1:     fillerDeck(),
		Logger:    logger,
		Rand:      &fixedRand{},
		NoShuffle: true,
		MaxTurns:  6,
	}, p0, p1)

	winner, err := d.Run(context.Background())
	if err != nil {
		t.Logf("Event log:\n%s", log.FormatAll(logger.Events()))
		t.Fatalf("Run: %v", err)
	}
	if winner != -1 || !d.State.Over {
		t.Fatalf("expected a draw at the turn limit, got winner %d", winner)
	}
	if len(logger.EventsOfType(log.EventPlay)) != 1 {
		t.Errorf("expected the scripted play to happen once")
	}
	if len(logger.EventsOfType(log.EventGameDrawn)) != 1 {
		t.Errorf("expected a game-drawn event")
	}
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	d, _ := newTestDuel(t, fillerDeck(), fillerDeck(), nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := d.Run(ctx); err == nil {
		t.Fatal("expected the cancelled context to stop the run")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	d, _ := startDuel(t, fillerDeck(), fillerDeck(), nil, nil, nil)
	s := d.Snapshot()
	s.Players[0].Hand[0].Name = "changed"
	s.CombatLog[0] = "changed"
	if d.State.Players[0].Hand[0].Card.Name == "changed" || d.State.CombatLog[0] == "changed" {
		t.Fatal("mutating a snapshot changed the game")
	}
}
