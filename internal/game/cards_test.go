package game

import (
	"testing"

	"github.com/peterkuimelis/colossus/internal/log"
)

func activeNamed(d *Duel, name string) int {
	return len(d.State.Effects.Find(name))
}

func TestTableOfSacrificeReplacesGobletInItsSlot(t *testing.T) {
	d, _ := startDuel(t, openingDeck(GobletOfLife(), TableOfSacrifice()), fillerDeck(), nil, nil, nil)
	goblet := play(t, d, 0, "goblet-of-life")
	if goblet.Slot != SlotHumanNonhuman {
		t.Fatalf("goblet should take the first eligible slot, took %s", goblet.Slot)
	}
	table := handCard(t, d, 0, "table-of-sacrifice")
	if err := d.PlayCard(0, table.ID, SlotHumanNonhuman); err != nil {
		t.Fatalf("play table over goblet: %v", err)
	}

	if activeNamed(d, "goblet-of-life") != 0 || activeNamed(d, "table-of-sacrifice") != 1 {
		t.Fatalf("expected only the table active, effects: %v", effectNames(d.State.Effects.Active()))
	}
	if goblet.Zone != ZoneCrypt || d.State.Players[0].Field[SlotHumanNonhuman] != table {
		t.Errorf("goblet should be in the crypt and the table in its slot")
	}
}

func TestTableOfSacrificeReplacesGobletFromAnotherSlot(t *testing.T) {
	d, _ := startDuel(t, openingDeck(GobletOfLife(), TableOfSacrifice()), fillerDeck(), nil, nil, nil)
	goblet := play(t, d, 0, "goblet-of-life")
	table := play(t, d, 0, "table-of-sacrifice")

	if table.Slot != SlotCelestialLocation {
		t.Fatalf("table should go to the free celestial slot, went to %s", table.Slot)
	}
	if activeNamed(d, "goblet-of-life") != 0 || activeNamed(d, "table-of-sacrifice") != 1 {
		t.Fatalf("expected exactly one of the pair active, effects: %v", effectNames(d.State.Effects.Active()))
	}
	if goblet.Zone != ZoneCrypt {
		t.Errorf("replaced goblet should be in the crypt, is in %s", goblet.Zone)
	}
}

func TestCupOfBloodConflictsWithActiveGoblet(t *testing.T) {
	d, _ := startDuel(t, openingDeck(GobletOfLife(), CupOfBlood()), fillerDeck(), nil, nil, nil)
	play(t, d, 0, "goblet-of-life")
	cup := handCard(t, d, 0, "cup-of-blood")
	gold := d.State.Players[0].Gold

	err := d.PlayCard(0, cup.ID, SlotEventObject)
	if KindOf(err) != EffectConflict {
		t.Fatalf("expected EffectConflict, got %v", err)
	}
	if cup.Zone != ZoneHand || d.State.Players[0].Gold != gold {
		t.Error("a conflicting play must not change the game")
	}
}

func TestUniversalTaxChargesBothPlayers(t *testing.T) {
	d, _ := startDuel(t, openingDeck(UniversalTax()), fillerDeck(), nil, nil, nil)
	bank := d.State.Bank.Gold
	tax := play(t, d, 0, "universal-tax")

	if d.State.Players[0].Gold != 47 || d.State.Players[1].Gold != 47 {
		t.Errorf("expected both players at 47 gold, got %d and %d", d.State.Players[0].Gold, d.State.Players[1].Gold)
	}
	if d.State.Bank.Gold != bank+6 {
		t.Errorf("expected bank +6, got %d", d.State.Bank.Gold-bank)
	}
	if tax.Zone != ZoneRemoved {
		t.Errorf("tax should leave the game after resolving, is in %s", tax.Zone)
	}
}

func TestDejaManPunishesRepeatAppearances(t *testing.T) {
	d, _ := startDuel(t, openingDeck(DejaMan(), DejaMan()), openingDeck(DejaMan()), nil, nil, nil)
	play(t, d, 0, "deja-man")
	if d.State.Players[1].Health != 100 {
		t.Fatalf("the first appearance should not deal damage")
	}

	second := handCard(t, d, 0, "deja-man")
	if err := d.PlayCard(0, second.ID, SlotEventObject); KindOf(err) != InvalidAction {
		t.Fatalf("a second play in the same turn should be rejected, got %v", err)
	}

	if err := d.EndTurn(0); err != nil {
		t.Fatalf("EndTurn: %v", err)
	}
	play(t, d, 1, "deja-man")
	if d.State.Players[0].Health != 90 {
		t.Errorf("expected the repeat to deal 10 to P1, health %d", d.State.Players[0].Health)
	}
}

func TestMelopixBankHeistTwicePerGame(t *testing.T) {
	d, _ := startDuel(t, openingDeck(MelopixBankHeist(), MelopixBankHeist(), MelopixBankHeist()), fillerDeck(), nil, nil, nil)
	play(t, d, 0, "melopix-bank-heist")
	play(t, d, 0, "melopix-bank-heist")
	// Each heist costs 5 and rolls a 1.
	if got := d.State.Players[0].Gold; got != 44 {
		t.Errorf("expected 44 gold after two heists, got %d", got)
	}
	third := handCard(t, d, 0, "melopix-bank-heist")
	if err := d.PlayCard(0, third.ID, SlotHumanNonhuman); KindOf(err) != InvalidAction {
		t.Fatalf("a third heist should be rejected, got %v", err)
	}
}

func TestMelopixBankHeistOnEmptyBankShufflesBack(t *testing.T) {
	d, _ := startDuel(t, openingDeck(MelopixBankHeist()), fillerDeck(), nil, nil, nil)
	d.State.Bank.Gold = 0
	deck := d.State.Players[0].DeckCount()
	heist := play(t, d, 0, "melopix-bank-heist")
	if heist.Zone != ZoneDeck || d.State.Players[0].DeckCount() != deck+1 {
		t.Fatalf("heist should be shuffled back into the deck, is in %s", heist.Zone)
	}
}

func TestYodkaiReturnsToHandWhenCleared(t *testing.T) {
	d, _ := startDuel(t, openingDeck(Yodkai()), fillerDeck(), nil, nil, nil)
	yodkai := play(t, d, 0, "yodkai")
	if d.State.Players[0].Gold != 40 {
		t.Fatalf("expected 40 gold after paying 10, got %d", d.State.Players[0].Gold)
	}

	if !d.clearCard(yodkai, 1, DestCrypt, "test") {
		t.Fatal("clear should succeed")
	}
	if yodkai.Zone != ZoneHand {
		t.Fatalf("yodkai should slip back to hand, is in %s", yodkai.Zone)
	}
	if d.State.Players[0].Gold != 50 {
		t.Errorf("expected the cost refunded, gold %d", d.State.Players[0].Gold)
	}
	if len(d.State.Players[0].Crypt) != 0 || d.State.Players[0].Field[SlotHumanNonhuman] != nil {
		t.Error("yodkai must be in exactly one zone")
	}
	if d.State.Players[1].Health != 100 {
		t.Errorf("a cleared yodkai should not deal its tally, P2 health %d", d.State.Players[1].Health)
	}
}

func TestYodkaiDealsTallyWhenItLeaves(t *testing.T) {
	d, _ := startDuel(t, openingDeck(Yodkai()), fillerDeck(), nil, nil, nil)
	yodkai := play(t, d, 0, "yodkai")
	place(t, d, 0, plainCard("wisp", 0, 2, TypeUnidentifiable))
	place(t, d, 1, plainCard("shade", 0, 2, TypeUnidentifiable))

	d.moveToCrypt(yodkai, RemoveSourceLeft, "test")
	if d.State.Players[1].Health != 98 {
		t.Fatalf("expected 2 damage for two unidentifiable plays, P2 health %d", d.State.Players[1].Health)
	}
}

func TestContinuumTransfunctionerReversesCardFlow(t *testing.T) {
	relic := plainCard("relic", 1, 1, TypeObject)
	d, _ := startDuel(t, openingDeck(ContinuumTransfunctioner(), plainCard("spare", 1, 1, TypeHuman)), fillerDeck(), nil, nil, nil)
	play(t, d, 0, "continuum-transfunctioner")
	giveCrypt(d, 0, relic)
	p := d.State.Players[0]

	spare := handCard(t, d, 0, "spare")
	deck := p.DeckCount()
	d.discard(spare)
	if spare.Zone != ZoneDeck || p.Deck[len(p.Deck)-1] != spare || p.DeckCount() != deck+1 {
		t.Fatalf("discard should go to the top of the deck, is in %s", spare.Zone)
	}

	endRound(t, d)
	// filler left over from the opening hand, plus the crypt draw
	if p.HandCount() != 2 {
		t.Fatalf("expected 2 cards in hand after the crypt draw, have %d", p.HandCount())
	}
	if handCard(t, d, 0, "relic").Zone != ZoneHand {
		t.Error("relic should have been drawn from the crypt")
	}
	if p.DeckCount() != deck+1 {
		t.Errorf("the deck should be untouched by the draw, %d cards", p.DeckCount())
	}
}

func TestAvalonsToyShelterPlaysOnDraw(t *testing.T) {
	a := plainCard("a", 1, 1, TypeHuman)
	b := plainCard("b", 1, 1, TypeHuman)
	c := plainCard("c", 1, 1, TypeHuman)
	d, _ := startDuel(t, openingDeck(a, b, c, AvalonsToyShelter()), fillerDeck(), nil, nil, nil)
	p := d.State.Players[0]

	endRound(t, d)
	var shelter *CardInstance
	for _, card := range p.FieldCards() {
		if card.Card.ID == "avalons-toy-shelter" {
			shelter = card
		}
	}
	if shelter == nil {
		t.Fatal("the shelter should enter play as soon as it is drawn")
	}
	if p.Gold != 50 || p.MovesRemaining != 3 {
		t.Errorf("a drawn shelter is free: gold %d moves %d", p.Gold, p.MovesRemaining)
	}
	if p.HandCount() != 1 || len(p.Crypt) != 2 {
		t.Fatalf("expected two cards forfeited, hand %d crypt %d", p.HandCount(), len(p.Crypt))
	}

	endRound(t, d)
	if d.State.Players[1].Health != 98 {
		t.Errorf("expected 2 damage at round end, P2 health %d", d.State.Players[1].Health)
	}
}

func TestAvalonsToyShelterStaysInOpeningHand(t *testing.T) {
	d, _ := startDuel(t, openingDeck(AvalonsToyShelter()), fillerDeck(), nil, nil, nil)
	if handCard(t, d, 0, "avalons-toy-shelter").Zone != ZoneHand {
		t.Fatal("the opening deal should not put the shelter into play")
	}
}

func TestBonoboJungleStashAbsorbsTakenGold(t *testing.T) {
	d, _ := startDuel(t, fillerDeck(), fillerDeck(), nil, nil, nil)
	jungle := place(t, d, 0, TheBonoboJungle())
	place(t, d, 0, plainCard("ape", 0, 2, TypeNonhuman))
	place(t, d, 1, plainCard("ape", 0, 2, TypeNonhuman))

	d.moveToCrypt(jungle, RemoveSourceLeft, "test")
	if activeNamed(d, "bonobo-jungle-stash") != 1 {
		t.Fatal("leaving should leave a stash behind")
	}

	if moved := d.steal(0, 1, 5, nil, "raid"); moved != 3 {
		t.Fatalf("a stash of 2 should absorb 2 of 5, moved %d", moved)
	}
	if activeNamed(d, "bonobo-jungle-stash") != 0 {
		t.Error("an empty stash should be removed")
	}
	if moved := d.steal(0, 1, 5, nil, "raid"); moved != 5 {
		t.Errorf("without a stash the full amount moves, moved %d", moved)
	}
}

func TestIslandDuGonzoReturnsToDeckBottom(t *testing.T) {
	d, _ := startDuel(t, fillerDeck(), fillerDeck(), nil, nil, nil)
	island := place(t, d, 0, IslandDuGonzo())
	bank := d.State.Bank.Gold

	for i := 0; i < 5; i++ {
		endRound(t, d)
	}
	if island.Zone != ZoneDeck || d.State.Players[0].Deck[0] != island {
		t.Fatalf("the island should sink to the bottom of the deck, is in %s", island.Zone)
	}
	if d.State.Players[1].Gold != 40 || d.State.Bank.Gold != bank+10 {
		t.Errorf("the final round should send 10 of P2's gold to the bank: P2 %d bank %d", d.State.Players[1].Gold, d.State.Bank.Gold)
	}
	if d.State.Effects.Len() != 0 {
		t.Errorf("no island effects should outlive it: %v", effectNames(d.State.Effects.Active()))
	}
}

func TestPeaceTreatyEndsInADrawWhenAccepted(t *testing.T) {
	p1 := NewScriptedController(t, "P2").AddYesNo(true)
	d, _ := startDuel(t, openingDeck(PeaceTreaty()), fillerDeck(), nil, nil, p1)
	d.State.Players[1].Gold = 30
	play(t, d, 0, "peace-treaty")

	gs := d.State
	if !gs.Over || gs.Winner != -1 || gs.Result != "Peace treaty signed" {
		t.Fatalf("expected a signed treaty, over=%v winner=%d result=%q", gs.Over, gs.Winner, gs.Result)
	}
	if gs.Players[0].Gold != 40 || gs.Players[1].Gold != 40 {
		t.Errorf("expected gold split 40/40, got %d/%d", gs.Players[0].Gold, gs.Players[1].Gold)
	}
}

func TestPeaceTreatyRefused(t *testing.T) {
	p1 := NewScriptedController(t, "P2").AddYesNo(false)
	d, _ := startDuel(t, openingDeck(PeaceTreaty()), fillerDeck(), nil, nil, p1)
	play(t, d, 0, "peace-treaty")
	if d.State.Over {
		t.Fatal("a refused treaty should not end the game")
	}
}

func TestTheEndWinsAgainstAPoorOpponent(t *testing.T) {
	d, _ := startDuel(t, openingDeck(TheEnd(), TheEnd()), fillerDeck(), nil, nil, nil)
	d.State.Players[1].Gold = 21
	play(t, d, 0, "the-end")
	if d.State.Over {
		t.Fatal("21 gold should survive The End")
	}
	d.State.Players[1].Gold = 20
	play(t, d, 0, "the-end")
	if !d.State.Over || d.State.Winner != 0 {
		t.Fatalf("expected P1 to win, over=%v winner=%d", d.State.Over, d.State.Winner)
	}
}

func TestHeavenlyFireStopsNonhumanDamage(t *testing.T) {
	d, _ := startDuel(t, fillerDeck(), fillerDeck(), nil, nil, nil)
	place(t, d, 0, HeavenlyFire())
	beast := giveHand(d, 1, plainCard("beast", 0, 1, TypeNonhuman))[0]
	knight := giveHand(d, 1, plainCard("knight", 0, 1, TypeHuman))[0]

	if lost := d.DealDamage(1, 0, 5, beast, "claw"); lost != 0 {
		t.Errorf("nonhuman damage should be prevented, lost %d", lost)
	}
	if lost := d.DealDamage(1, 0, 5, knight, "sword"); lost != 5 {
		t.Errorf("human damage should land, lost %d", lost)
	}
}

func TestUngosChaliceCannotBeClearedAndFeedsOnTheCrypt(t *testing.T) {
	d, _ := startDuel(t, fillerDeck(), fillerDeck(), nil, nil, nil)
	chalice := place(t, d, 0, UngosChalice())
	if d.clearCard(chalice, 1, DestCrypt, "test") {
		t.Fatal("the chalice should resist clearing")
	}
	if !chalice.OnField() {
		t.Fatal("the chalice should still be in play")
	}

	victim := giveHand(d, 1, plainCard("victim", 0, 1, TypeHuman))[0]
	d.discard(victim)
	endRound(t, d)
	if d.State.Players[1].Health != 97 {
		t.Errorf("expected 3 damage for one fallen card, P2 health %d", d.State.Players[1].Health)
	}
}

func TestLaSantaMiguelaDispelsPrevention(t *testing.T) {
	d, _ := startDuel(t, openingDeck(LaSantaMiguela()), fillerDeck(), nil, nil, nil)
	hero := place(t, d, 1, TheHero())
	play(t, d, 0, "la-santa-miguela")

	if hero.Zone != ZoneCrypt || activeNamed(d, "the-hero") != 0 {
		t.Fatalf("The Hero should be dispelled, is in %s", hero.Zone)
	}

	closet := d.State.CreateCardInstance(AnniesCloset(), 1)
	closet.Zone = ZoneHand
	d.State.Players[1].Hand = append(d.State.Players[1].Hand, closet)
	d.putIntoPlay(closet, "test")
	if closet.Zone != ZoneCrypt || activeNamed(d, "annies-closet") != 0 {
		t.Errorf("a new prevention effect should be blocked and its card sent to the crypt, zone %s", closet.Zone)
	}
}

func TestTheHeroNegatesHumanCards(t *testing.T) {
	resolved := false
	squire := &Card{
		ID:       "squire",
		Name:     "Squire",
		Types:    []CardType{TypeHuman},
		Duration: 1,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			resolved = true
		},
	}
	d, _ := startDuel(t, openingDeck(squire), fillerDeck(), nil, nil, nil)
	place(t, d, 1, TheHero())
	play(t, d, 0, "squire")
	if resolved {
		t.Fatal("a human card should be negated while The Hero is in play")
	}
}

func TestKingKainRalliesTheNextCreature(t *testing.T) {
	brute := &Card{
		ID:       "brute",
		Name:     "Brute",
		Types:    []CardType{TypeNonhuman},
		Duration: 2,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{OnRoundStart: func(d *Duel, e *Effect) {
				d.DealDamage(player.Index, opponent.Index, 3, card, "")
			}})
		},
	}
	d, _ := startDuel(t, openingDeck(KingKain(), brute), fillerDeck(), nil, nil, nil)
	play(t, d, 0, "king-kain")
	play(t, d, 0, "brute")
	if activeNamed(d, "king-kain") != 0 || activeNamed(d, "king-kain-rally") != 1 {
		t.Fatalf("the rally should replace the pending boost: %v", effectNames(d.State.Effects.Active()))
	}
	endRound(t, d)
	if d.State.Players[1].Health != 92 {
		t.Errorf("expected 3+5 damage from the rallied brute, P2 health %d", d.State.Players[1].Health)
	}
}

func TestRepentanceCanKnockOutBothPlayers(t *testing.T) {
	d, _ := startDuel(t, openingDeck(Repentance()), fillerDeck(), rolls(1, 6), nil, nil)
	d.State.Players[0].Health = 6
	d.State.Players[1].Health = 6
	play(t, d, 0, "repentance")
	if !d.State.Over || d.State.Winner != -1 {
		t.Fatalf("expected a draw when both fall, over=%v winner=%d", d.State.Over, d.State.Winner)
	}
}

func TestTheChampGivesGoldAsDamage(t *testing.T) {
	p0 := NewScriptedController(t, "P1").AddNumber(7)
	d, _ := startDuel(t, openingDeck(TheChamp()), fillerDeck(), nil, p0, nil)
	play(t, d, 0, "the-champ")
	endRound(t, d)
	if d.State.Players[0].Gold != 43 || d.State.Players[1].Gold != 57 {
		t.Errorf("expected 7 gold to change hands, got %d/%d", d.State.Players[0].Gold, d.State.Players[1].Gold)
	}
	if d.State.Players[1].Health != 93 {
		t.Errorf("expected 7 damage, P2 health %d", d.State.Players[1].Health)
	}
}

func TestSpearAGottSkewsHealing(t *testing.T) {
	d, _ := startDuel(t, fillerDeck(), fillerDeck(), nil, nil, nil)
	place(t, d, 0, SpearAGott())
	if got := d.Heal(0, 4, nil, "test"); got != 5 {
		t.Errorf("owner heal should gain 1, got %d", got)
	}
	if got := d.Heal(1, 4, nil, "test"); got != 3 {
		t.Errorf("opponent heal should lose 1, got %d", got)
	}
	if got := d.Heal(1, 1, nil, "test"); got != 0 {
		t.Errorf("opponent heal should floor at 0, got %d", got)
	}
}

func TestFiroBurnsNowAndLater(t *testing.T) {
	d, _ := startDuel(t, openingDeck(Firo()), fillerDeck(), nil, nil, nil)
	firo := play(t, d, 0, "firo")
	if d.State.Players[1].Health != 96 {
		t.Fatalf("expected 4 immediate damage, health %d", d.State.Players[1].Health)
	}
	endRound(t, d)
	endRound(t, d)
	endRound(t, d)
	if d.State.Players[1].Health != 92 {
		t.Errorf("expected 2 more in each of two rounds, health %d", d.State.Players[1].Health)
	}
	if firo.Zone != ZoneCrypt {
		t.Errorf("firo should have expired, is in %s", firo.Zone)
	}
}

func TestJacobsSecondLadderDiscountsTheNextCelestial(t *testing.T) {
	d, _ := startDuel(t, fillerDeck(), fillerDeck(), nil, nil, nil)
	place(t, d, 0, JacobsSecondLadder())
	place(t, d, 0, plainCard("star", 0, 1, TypeCelestial))
	place(t, d, 1, plainCard("star", 0, 1, TypeCelestial))

	comet := plainCard("comet", 10, 1, TypeCelestial)
	mine := giveHand(d, 0, comet, plainCard("clerk", 10, 1, TypeHuman))
	theirs := giveHand(d, 1, comet)[0]

	endRound(t, d)
	endRound(t, d)
	if got := d.CostOf(mine[0], 0); got != 10 {
		t.Fatalf("no discount while the ladder is in play, cost %d", got)
	}
	endRound(t, d)
	endRound(t, d)

	tests := []struct {
		name   string
		card   *CardInstance
		player int
		want   int
	}{
		{"owner celestial", mine[0], 0, 8},
		{"owner non-celestial", mine[1], 0, 10},
		{"opponent celestial", theirs, 1, 10},
	}
	for _, tt := range tests {
		if got := d.CostOf(tt.card, tt.player); got != tt.want {
			t.Errorf("%s: cost %d, want %d", tt.name, got, tt.want)
		}
	}

	place(t, d, 0, plainCard("moon", 0, 1, TypeCelestial))
	if got := d.CostOf(mine[0], 0); got != 10 {
		t.Errorf("the discount should be used up, cost %d", got)
	}
}

func TestWallOfFleshHealsFromDamageTaken(t *testing.T) {
	d, _ := startDuel(t, fillerDeck(), fillerDeck(), nil, nil, nil)
	wall := place(t, d, 0, WallOfFlesh())
	p0, p1 := d.State.Players[0], d.State.Players[1]
	p0.Health = 80

	rounds := []struct {
		damage int
		want   int
	}{
		{5, 81}, // 75 + 3 per 2
		{1, 80}, // odd point heals nothing
	}
	for i, r := range rounds {
		d.DealDamage(1, 0, r.damage, nil, "test")
		endRound(t, d)
		if p0.Health != r.want {
			t.Fatalf("round %d: health %d, want %d", i+1, p0.Health, r.want)
		}
	}

	if !d.clearCard(wall, 1, DestCrypt, "test") {
		t.Fatal("wall should be clearable")
	}
	if p0.Health != 90 || p1.Health != 92 {
		t.Errorf("clearing should heal 10 and deal 8, health %d/%d", p0.Health, p1.Health)
	}
	if wall.Zone != ZoneCrypt {
		t.Errorf("wall should be in the crypt, is in %s", wall.Zone)
	}
}

func TestAEONUnwindsTheLastRound(t *testing.T) {
	tests := []struct {
		name   string
		rounds int
	}{
		{"first round restores its own start", 0},
		{"later rounds restore the previous start", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := startDuel(t, fillerDeck(), fillerDeck(), nil, nil, nil)
			gs := d.State
			var want [2][2]int
			for i, p := range gs.Players {
				want[i] = [2]int{p.Health, p.Gold}
			}
			bank := gs.Bank.Gold

			for i := 0; i < tt.rounds; i++ {
				d.DealDamage(1, 0, 10, nil, "test")
				endRound(t, d)
			}

			d.DealDamage(0, 1, 20, nil, "test")
			d.TransferGold(PartyBank, PlayerParty(1), 15, nil, "test")
			giveHand(d, 0, AEON())
			play(t, d, 0, "aeon")

			for i, p := range gs.Players {
				if got := [2]int{p.Health, p.Gold}; got != want[i] {
					t.Errorf("%s health/gold %v, want %v", log.PlayerName(i), got, want[i])
				}
			}
			if gs.Bank.Gold != bank {
				t.Errorf("bank %d, want %d", gs.Bank.Gold, bank)
			}
		})
	}
}
