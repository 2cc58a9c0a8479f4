package game

import "fmt"

// TheHero negates human cards for 2 rounds and punishes nonhumans in play.
func TheHero() *Card {
	return &Card{
		ID:          "the-hero",
		Name:        "The Hero",
		Year:        "2023",
		Types:       []CardType{TypeHuman},
		Description: "..he knew we was destined for greater. It was only a matter of time..",
		Effect:      "this card is in play for 2 rounds. negate any human card effects and cards allowing these effects for the duration of this card. deal an additional 2 damage for every nonhuman card in play per round.",
		Duration:    2,
		Cost:        7,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					n := d.State.CountInPlay(TypeNonhuman)
					d.DealDamage(player.Index, opponent.Index, 2*n, card, fmt.Sprintf("%d nonhuman in play", n))
				},
				OnNegate: func(d *Duel, e *Effect, played *CardInstance, _ int) bool {
					return played.Card.HasType(TypeHuman)
				},
			})
		},
	}
}

// NorthernQueen doubles the owner's gold income for one round. When the
// paying opponent cannot cover the doubled amount it is dealt as damage.
func NorthernQueen() *Card {
	return &Card{
		ID:          "northern-queen",
		Name:        "Northern Queen",
		Year:        "2023",
		Types:       []CardType{TypeHuman, TypeNonhuman},
		Description: "...She rules with an iron fist, though her preferred method of torture involves gold.",
		Effect:      "this card is in play for 1 round. multiply your currency effects by two for the duration of this card. if there is no more currency to take, deal the amount in damage to your opponent instead.",
		Duration:    1,
		Cost:        9,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnGoldReceived: func(d *Duel, e *Effect, ev GoldEvent, amount int) int {
					if ev.To != PlayerParty(e.Owner) {
						return amount
					}
					doubled := amount * 2
					if ev.From == PlayerParty(opponent.Index) && opponent.Gold < doubled {
						d.DealDamage(player.Index, opponent.Index, doubled, card, "no gold left to take")
						return 0
					}
					return doubled
				},
			})
		},
	}
}

// AnniesCloset lets only human cards resolve for 3 rounds.
func AnniesCloset() *Card {
	return &Card{
		ID:          "annies-closet",
		Name:        "Annie's Closet",
		Year:        "2023",
		Types:       []CardType{TypeHuman, TypeNonhuman, TypeUnidentifiable},
		Description: "...people only thought she had 1 pyromancer bear...",
		Effect:      "this card is in play for 3 rounds. only human card effects can be done during the duration of this card",
		Duration:    3,
		Cost:        7,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnNegate: func(d *Duel, e *Effect, played *CardInstance, _ int) bool {
					return !played.Card.HasType(TypeHuman)
				},
			})
		},
	}
}

// YoshikaBusiness borrows 20 gold from the bank and owes 30 back five
// rounds later, whether or not the card is still in play.
func YoshikaBusiness() *Card {
	return &Card{
		ID:          "yoshika-business",
		Name:        "Yoshika Business",
		Year:        "2023",
		Types:       []CardType{TypeHuman, TypeUnidentifiable, TypeEvent},
		Description: "...we are allies... until we are not.",
		Effect:      "this card is in play for 5 rounds. deal 2 damage at the start of every round to your opponent. you may borrow 20 gold from the bank in the first round, however, you will have to pay 30 gold back when sending this card to the crypt. if there is not enough gold to borrow, shuffle this card back into your deck. clearing this card early does not affect the debt time.",
		Duration:    5,
		Cost:        6,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			if d.State.Bank.Gold < 20 {
				d.note(card, "the bank cannot lend 20 gold")
				d.shuffleIntoDeck(card, RemoveSourceLeft, "nothing to borrow")
				return
			}
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					d.DealDamage(player.Index, opponent.Index, 2, card, "")
				},
			})
			if !d.askYesNo(player.Index, "Borrow 20 gold from the bank? 30 is due when Yoshika Business ends.") {
				return
			}
			d.fromBank(player.Index, 20, card, "loan")
			lingering(d, card, "yoshika-business-debt", card.Card.Duration, Hooks{
				OnRemove: func(d *Duel, e *Effect) {
					if player.Gold >= 30 {
						d.TransferGold(PlayerParty(player.Index), PartyBank, 30, card, "loan repaid")
						return
					}
					d.note(card, "the loan cannot be repaid")
					if card.Zone != ZoneRemoved {
						d.shuffleIntoDeck(card, RemoveSourceLeft, "defaulted on the loan")
					}
				},
			})
		},
	}
}

// DealMaker tallies the opponent's gains for four rounds and, on three
// sixes in a row, deals double the tally back.
func DealMaker() *Card {
	return &Card{
		ID:          "deal-maker",
		Name:        "Deal Maker",
		Year:        "2023",
		Types:       []CardType{TypeHuman, TypeNonhuman, TypeCelestial, TypeUnidentifiable, TypeLocation, TypeObject},
		Description: "The time is right.... Let's settle the score.",
		Effect:      "this card is in play for 5 rounds. tally any amount healed, damage dealt, and gold obtained by your opponent for the first 4 rounds. deal double that amount in damage back to them at the start of the 5th round under one condition; you roll a 6 three times in a row on a 6 sided die. you only get one attempt. good luck.",
		Duration:    5,
		Cost:        15,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			round, tally := 0, 0
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					round++
					switch {
					case round <= 4:
						last := opponent.LastRound
						tally += last.Healed + last.DamageDealt + last.GoldGained
					case round == 5:
						for i := 0; i < 3; i++ {
							if d.rollD6(player.Index, card) != 6 {
								d.note(card, "the deal falls through")
								return
							}
						}
						d.DealDamage(player.Index, opponent.Index, 2*tally, card, "the deal is settled")
					}
				},
			})
		},
	}
}

// AdvancedCaster strips the opponent's hand in its first and third rounds
// and draws three in its second.
func AdvancedCaster() *Card {
	return &Card{
		ID:          "advanced-caster",
		Name:        "Advanced Caster",
		Year:        "2023",
		Types:       []CardType{TypeUnidentifiable, TypeHuman, TypeNonhuman},
		Description: "Revered as a master of the craft, this caster burns fear into those opposing him.",
		Effect:      "this card is in play for 3 rounds. remove 3 cards from your opponent's hand the first round, pick up 3 extra cards at the start of the second round, and remove 3 from their hand in the third round.",
		Duration:    3,
		Cost:        12,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			round := 0
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					round++
					switch round {
					case 1, 3:
						d.discardRandom(opponent.Index, 3)
					case 2:
						d.drawCards(player.Index, 3)
					}
				},
			})
		},
	}
}

// TheChamp pays the opponent a chosen amount of gold (up to 20) at the
// next round start and deals that much damage.
func TheChamp() *Card {
	return &Card{
		ID:          "the-champ",
		Name:        "The Champ",
		Year:        "2023",
		Types:       []CardType{TypeHuman, TypeUnidentifiable},
		Description: "He has studied every art of fighting and war, and is one of the most feared fighters imaginable!",
		Effect:      "this card is in play for 1 round. give your opponent a chosen amount of gold, dealing 1 damage per 1 gold given, (maximum of 20 gold)",
		Duration:    1,
		Cost:        0,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					n := d.chooseNumber(player.Index, "How much gold does The Champ give away?", 0, min(20, player.Gold))
					given := d.steal(player.Index, opponent.Index, n, card, "The Champ's purse")
					d.DealDamage(player.Index, opponent.Index, given, card, "")
				},
			})
		},
	}
}

// IntermediateCaster blocks and tallies incoming damage for two rounds,
// then splits the tally between damage and healing.
func IntermediateCaster() *Card {
	return &Card{
		ID:          "intermediate-caster",
		Name:        "Intermediate Caster",
		Year:        "2023",
		Types:       []CardType{TypeUnidentifiable, TypeHuman, TypeNonhuman},
		Description: "Legend has it, she annihilated the entire student body during graduation.... one of the most revered and feared!",
		Effect:      "this card is in play for 3 rounds. For the first two rounds, block and tally any damage towards you. In the 3rd round, deal half of the total damage back to your opponent, and heal for the other half amount. if it's an odd total, choose where to place the remaining number.",
		Duration:    3,
		Cost:        5,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			round, tally := 0, 0
			lasting(d, card, Hooks{
				OnDamageReceived: func(d *Duel, e *Effect, ev DamageEvent, amount int) int {
					if ev.To != e.Owner || round >= 2 {
						return amount
					}
					tally += amount
					return 0
				},
				OnRoundStart: func(d *Duel, e *Effect) {
					round++
					if round != 3 {
						return
					}
					dmg, heal := tally/2, tally/2
					if tally%2 == 1 {
						if d.chooseOption(player.Index, "Where does the odd point go?", []string{"damage", "healing"}) == 0 {
							dmg++
						} else {
							heal++
						}
					}
					d.DealDamage(player.Index, opponent.Index, dmg, card, "blocked damage returned")
					d.Heal(player.Index, heal, card, "blocked damage absorbed")
				},
			})
		},
	}
}

// Absorb draws a card, then trades the whole hand for 10 health.
func Absorb() *Card {
	return &Card{
		ID:          "absorb",
		Name:        "Absorb",
		Year:        "2023",
		Types:       []CardType{TypeHuman, TypeNonhuman, TypeEvent},
		Description: "An incredibly advanced spell... only for the desperate.",
		Effect:      "draw one card after playing this card, and send your hand to the crypt to gain 10 health",
		Duration:    0,
		Cost:        8,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			d.drawCards(player.Index, 1)
			d.sendHandToCrypt(player.Index)
			d.Heal(player.Index, 10, card, "")
		},
	}
}

// MelopixBankHeist robs the bank for twice a die roll. Each player may
// play it twice per game; an empty bank sends it back into the deck.
func MelopixBankHeist() *Card {
	return &Card{
		ID:          "melopix-bank-heist",
		Name:        "Melopix Bank Heist",
		Year:        "2023",
		Types:       []CardType{TypeHuman, TypeNonhuman, TypeEvent},
		Description: "this ain't a scene.... hands up!",
		Effect:      "roll a six sided die. multiply that number by 2 and take that amount of gold from the bank. if there is 0 gold, shuffle this card back into your deck. this card can only be played twice per game.",
		Duration:    0,
		Cost:        5,
		Limit:       PlayLimit{Max: 2, Scope: ScopeOwnerCatalog},
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			if d.State.Bank.Gold == 0 {
				d.shuffleIntoDeck(card, RemoveSourceLeft, "the vault is empty")
				return
			}
			roll := d.rollD6(player.Index, card)
			d.fromBank(player.Index, roll*2, card, "heist")
		},
	}
}

// KingKain boosts the damage of the owner's next human or nonhuman card.
func KingKain() *Card {
	return &Card{
		ID:          "king-kain",
		Name:        "King Kain",
		Year:        "2023",
		Types:       []CardType{TypeHuman, TypeCelestial},
		Description: "He rallies together even the saddest and lost of souls. His words drive pride and power through his people.",
		Effect:      "play this card at the beginning of a round. the next card played will deal 5 additional damage if it is a human or nonhuman card",
		Duration:    0,
		Cost:        6,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lingering(d, card, "king-kain", 1, Hooks{
				OnCardPlayed: func(d *Duel, e *Effect, played *CardInstance, by int) {
					if by != e.Owner {
						return
					}
					d.RemoveEffect(e, RemoveExpired)
					if !hasAnyType(played.Card, TypeHuman, TypeNonhuman) {
						return
					}
					d.note(card, "%s is emboldened", played.Card.Name)
					lingering(d, card, "king-kain-rally", 1, Hooks{
						OnDamageDealt: func(d *Duel, e *Effect, ev DamageEvent, amount int) int {
							if ev.Card != played {
								return amount
							}
							return amount + 5
						},
					})
				},
			})
		},
	}
}

// FailingOperation pays 8 gold to the player on a combined roll of 8 or
// more, else 4 gold to the opponent.
func FailingOperation() *Card {
	return &Card{
		ID:          "failing-operation",
		Name:        "Failing Operation",
		Year:        "2023",
		Types:       []CardType{TypeHuman, TypeEvent, TypeUnidentifiable},
		Description: "mayday, mayday! We're falling out over the side here!\n..how is Agent J doing?\n..Agent J...?!",
		Effect:      "you and your opponent roll a 6 sided die. If the amounts both add up to 8 or more, you take 8 gold. If they do not, they take 4 gold",
		Duration:    0,
		Cost:        3,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			total := d.rollD6(player.Index, card) + d.rollD6(opponent.Index, card)
			if total >= 8 {
				d.fromBank(player.Index, 8, card, "operation succeeded")
			} else {
				d.fromBank(opponent.Index, 4, card, "operation failed")
			}
		},
	}
}

// ShiriO fetches a human card from the deck or crypt to the top of the deck.
func ShiriO() *Card {
	return &Card{
		ID:          "shiri-o",
		Name:        "Shiri-ø",
		Year:        "2023",
		Types:       []CardType{TypeHuman, TypeNonhuman},
		Description: "....the oldest cult leader to have ever existed.. they say he mastered the art of blood through mass executions..",
		Effect:      "this card is in play for 1 round. take any human card, regardless of game status, and place it on the top of your deck",
		Duration:    1,
		Cost:        5,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			var candidates []*CardInstance
			candidates = append(candidates, cardsOfType(player.Deck, TypeHuman)...)
			candidates = append(candidates, cardsOfType(player.Crypt, TypeHuman)...)
			if picked := d.chooseCard(player.Index, "Choose a human card for the top of your deck", candidates); picked != nil {
				d.moveToDeckTop(picked, RemoveSourceLeft, "summoned by Shiri-ø")
			}
		},
	}
}

// JustALittleBit negates human cards entering play for 2 rounds.
func JustALittleBit() *Card {
	return &Card{
		ID:          "just-a-little-bit",
		Name:        "just a little bit...",
		Year:        "2023",
		Types:       []CardType{TypeHuman, TypeUnidentifiable},
		Description: "The unfortunate demise of a particular subject;\nOne found it necessary to use the Click remote to rewind their way out of a parking ticket.\n~\nHowever, rewinding \"just a little bit\" cost him his reality.",
		Effect:      "this card is in play for 2 rounds. any human creatures in the next 2 rounds that are put into play are negated",
		Duration:    2,
		Cost:        3,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnNegate: func(d *Duel, e *Effect, played *CardInstance, _ int) bool {
					return played.Card.HasType(TypeHuman)
				},
			})
		},
	}
}
