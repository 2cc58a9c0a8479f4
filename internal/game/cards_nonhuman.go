package game

import "fmt"

// Chromax stays until cleared and deals 8 damage for every fifth celestial played.
func Chromax() *Card {
	return &Card{
		ID:          "chromax",
		Name:        "Chromax",
		Year:        "2024",
		Types:       []CardType{TypeNonhuman, TypeObject, TypeEvent},
		Description: "the parallels are unmatched... summon their power at will..!",
		Effect:      "this card is infinite until cleared. tally up the amount of celestial cards in play during this card's duration. deal 8 damage to your opponent every time your tally hits 5. restart and go again.",
		Duration:    DurationInfinite,
		Cost:        12,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, everyFifth(TypeCelestial, func(d *Duel) {
				d.DealDamage(player.Index, opponent.Index, 8, card, "fifth celestial")
			}))
		},
	}
}

// ForestWitch stays until cleared and deals 5 damage for every fifth
// unidentifiable card played.
func ForestWitch() *Card {
	return &Card{
		ID:          "forest-witch",
		Name:        "Forest Witch",
		Year:        "2024",
		Types:       []CardType{TypeUnidentifiable, TypeLocation},
		Description: "in Riverknot forest.... there's a hex that forces you to walk towards the center... like a trance...",
		Effect:      "this card is infinite until cleared. tally up the amount of unidentifiable cards in play during this card's duration. deal 5 damage to your opponent every time your tally hits 5. restart and go again.",
		Duration:    DurationInfinite,
		Cost:        9,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, everyFifth(TypeUnidentifiable, func(d *Duel) {
				d.DealDamage(player.Index, opponent.Index, 5, card, "fifth unidentifiable")
			}))
		},
	}
}

// everyFifth builds hooks that call fire each time five cards of type t
// have been played.
func everyFifth(t CardType, fire func(d *Duel)) Hooks {
	count := 0
	return Hooks{
		OnCardPlayed: func(d *Duel, e *Effect, played *CardInstance, _ int) {
			if !played.Card.HasType(t) {
				return
			}
			count++
			if count >= 5 {
				count = 0
				fire(d)
			}
		},
	}
}

// IslandDuGonzo changes its blessing every round and returns to the
// bottom of the deck when it expires.
func IslandDuGonzo() *Card {
	return &Card{
		ID:          "island-du-gonzo",
		Name:        "Island du Gonzo",
		Year:        "2024",
		Types:       []CardType{TypeNonhuman, TypeLocation},
		Description: "home to a reclusive creator... the island seems to almost fade in and out of existence when accompanied by fog.",
		Effect:      "this card is in play for 5 rounds. double the amount of gold you take in the first round. double the amount of damage you deal in the second round. negate any damage done to you in the third and fourth round. your opponent must send 10 gold to the bank in the final round. place this card at the bottom of your deck instead of sending it to the crypt.",
		Duration:    5,
		Cost:        10,
		ExpireTo:    DestDeckBottom,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			round := 0
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					round++
					switch round {
					case 1:
						timed(d, card, "island-du-gonzo-gold", 1, Hooks{
							OnGoldReceived: func(d *Duel, e *Effect, ev GoldEvent, amount int) int {
								if ev.To != PlayerParty(e.Owner) {
									return amount
								}
								return amount * 2
							},
						})
					case 2:
						timed(d, card, "island-du-gonzo-damage", 1, Hooks{
							OnDamageDealt: func(d *Duel, e *Effect, ev DamageEvent, amount int) int {
								if ev.From != e.Owner {
									return amount
								}
								return amount * 2
							},
						})
					case 3, 4:
						timed(d, card, "island-du-gonzo-fog", 1, Hooks{
							OnDamageReceived: func(d *Duel, e *Effect, ev DamageEvent, amount int) int {
								if ev.To != e.Owner {
									return amount
								}
								return 0
							},
						})
					case 5:
						d.TransferGold(PlayerParty(opponent.Index), PartyBank, 10, card, "island tribute")
					}
				},
			})
		},
	}
}

// FestivalOfLights tallies all healing and, on leaving, splits the tally
// between healing and damage as the owner chooses.
func FestivalOfLights() *Card {
	return &Card{
		ID:          "festival-of-lights",
		Name:        "Festival Of Lights",
		Year:        "2024",
		Types:       []CardType{TypeNonhuman, TypeLocation},
		Description: "what started as a reason to sacrifice the village witch, turned into yearly sacrifices that summon the lights..",
		Effect:      "this card is in play for 4 rounds. tally the amount of healing done during the duration of this card. heal for any number from that amount, and dealing the remaining amount in damage to your opponent when sending this card to the crypt.",
		Duration:    4,
		Cost:        6,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			tally := 0
			lasting(d, card, Hooks{
				OnHeal: func(d *Duel, e *Effect, ev HealEvent, amount int) int {
					tally += amount
					return amount
				},
				OnRemove: func(d *Duel, e *Effect) {
					if tally == 0 {
						return
					}
					heal := d.chooseNumber(player.Index, fmt.Sprintf("Heal how much of %d? The rest is dealt as damage.", tally), 0, tally)
					d.Heal(player.Index, heal, card, "")
					d.DealDamage(player.Index, opponent.Index, tally-heal, card, "")
				},
			})
		},
	}
}

// DustBowl deals 1 damage per human in play each round and stays a round
// longer for each human in the owner's hand.
func DustBowl() *Card {
	return &Card{
		ID:          "dust-bowl",
		Name:        "Dust Bowl",
		Year:        "2024",
		Types:       []CardType{TypeNonhuman, TypeLocation},
		Description: "families continue to see flyers for a new life among the taverns, and travel to the dust bowl... just wait until sunset.",
		Effect:      "this card is in play for 3 rounds. deal 1 damage to your opponent per round for each human card in play during this card's duration. extend this card's duration by 1 round for each human card in your hand each round.",
		Duration:    3,
		Cost:        5,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					d.DealDamage(player.Index, opponent.Index, d.State.CountInPlay(TypeHuman), card, "")
					d.extendCard(card, len(cardsOfType(player.Hand, TypeHuman)))
				},
			})
		},
	}
}

// Skinlette heals by what is in play in its first and third rounds, and
// strikes when both heals match.
func Skinlette() *Card {
	return &Card{
		ID:          "skinlette",
		Name:        "Skinlette",
		Year:        "2023",
		Types:       []CardType{TypeNonhuman},
		Description: "The smell of sulfur fills the air... and out from trees; you spot it.",
		Effect:      "this card is in play for 3 rounds. heal for: 1 health per unidentifiable card on the field, 2 per human, and 3 per celestial, in the first round. Repeat again in the third round. if the amount is the same both rounds, take 5 gold from your opponent and deal 5 damage.",
		Duration:    3,
		Cost:        8,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			round, first := 0, 0
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					round++
					if round != 1 && round != 3 {
						return
					}
					gs := d.State
					amount := gs.CountInPlay(TypeUnidentifiable) + 2*gs.CountInPlay(TypeHuman) + 3*gs.CountInPlay(TypeCelestial)
					d.Heal(player.Index, amount, card, "")
					if round == 1 {
						first = amount
						return
					}
					if amount == first {
						d.DealDamage(player.Index, opponent.Index, 5, card, "the same harvest twice")
						d.steal(opponent.Index, player.Index, 5, card, "the same harvest twice")
					}
				},
			})
		},
	}
}

// SpearAGott adds 1 to the owner's healing and takes 1 from the opponent's.
func SpearAGott() *Card {
	return &Card{
		ID:          "spear-a-gott",
		Name:        "Spear-a-gott",
		Year:        "2023",
		Types:       []CardType{TypeObject, TypeNonhuman},
		Description: "the Ep'catt use a particularly deadly weapon; one that never seems to fail...",
		Effect:      "this card is in play for 4 rounds. heal an additional 1 health from all sources, and reduce your opponent's healing by 1 from all sources for the duration of this card.",
		Duration:    4,
		Cost:        4,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnHeal: func(d *Duel, e *Effect, ev HealEvent, amount int) int {
					if ev.Player == e.Owner {
						return amount + 1
					}
					return max(0, amount-1)
				},
			})
		},
	}
}

// AvalonsToyShelter enters play as soon as it is drawn. Forfeiting two
// cards makes it deal 2 damage every round end, and the owner's next card
// after it is free.
func AvalonsToyShelter() *Card {
	return &Card{
		ID:          "avalons-toy-shelter",
		Name:        "Avalon's Toy Shelter",
		Year:        "2023",
		Types:       []CardType{TypeLocation, TypeNonhuman},
		Description: "it used to be a shelter for kids... until they ran out of kids...",
		Effect:      "play this card immediately when it is drawn. this card is in play for 5 rounds. forfeit 2 cards from your hand to the crypt to deal: 2 damage at the end of each round to your opponent for the duration of this card. the next card replacing this card will have a play cost of 0 gold.",
		Duration:    5,
		Cost:        7,
		PlayOnDraw:  true,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			forfeit := d.chooseCards(player.Index, "Forfeit 2 cards to the crypt", player.Hand, 2, 2)
			hooks := Hooks{
				OnRemove: func(d *Duel, e *Effect) {
					lingering(d, card, "avalons-toy-shelter-discount", 1, Hooks{
						OnCardCost: func(d *Duel, e *Effect, c *CardInstance, by int, cost int) int {
							if by != e.Owner {
								return cost
							}
							return 0
						},
						OnCardPlayed: func(d *Duel, e *Effect, _ *CardInstance, by int) {
							if by == e.Owner {
								d.RemoveEffect(e, RemoveExpired)
							}
						},
					})
				},
			}
			if len(forfeit) == 2 {
				for _, c := range forfeit {
					d.moveToCrypt(c, RemoveSourceLeft, "forfeited to the shelter")
				}
				hooks.OnRoundEnd = func(d *Duel, e *Effect) {
					d.DealDamage(player.Index, opponent.Index, 2, card, "")
				}
			}
			lasting(d, card, hooks)
		},
	}
}

// TheBonoboJungle counts nonhumans played and, on leaving, turns the count
// into a stash that absorbs gold the opponent would take.
func TheBonoboJungle() *Card {
	return &Card{
		ID:          "bonobo-jungle",
		Name:        "The Bonobo Jungle",
		Year:        "2023",
		Types:       []CardType{TypeLocation},
		Description: "The group was headed towards a center of uncertainty...",
		Effect:      "this card is in play for 4 rounds. tally the total amount of nonhuman cards during this card's duration, and use that amount as a stash that your opponent will take from instead of your actual gold. this amount remains indefinitely even after this card is sent to the crypt, and will prevent any gold from being taken until the total has been used up.",
		Duration:    4,
		Cost:        11,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			count := 0
			lasting(d, card, Hooks{
				OnCardPlayed: func(d *Duel, e *Effect, played *CardInstance, _ int) {
					if played.Card.HasType(TypeNonhuman) {
						count++
					}
				},
				OnRemove: func(d *Duel, e *Effect) {
					if count == 0 {
						return
					}
					stash := count
					d.note(card, "a stash of %d guards the gold", stash)
					lingering(d, card, "bonobo-jungle-stash", DurationInfinite, Hooks{
						OnGoldTaken: func(d *Duel, e *Effect, ev GoldEvent, amount int) int {
							if ev.From != PlayerParty(e.Owner) || ev.To != PlayerParty(opponent.Index) {
								return amount
							}
							absorbed := min(amount, stash)
							stash -= absorbed
							if stash == 0 {
								d.RemoveEffect(e, RemoveExpired)
							}
							return amount - absorbed
						},
					})
				},
			})
		},
	}
}

// UngosWrath deals 6 damage a round while the owner holds a creature, 9
// with Un'go and his chalice in play. It leaves the game when it expires.
func UngosWrath() *Card {
	return &Card{
		ID:          "ungo-wrath",
		Name:        "Un'go's Wrath",
		Year:        "2023",
		Types:       []CardType{TypeUnidentifiable, TypeLocation},
		Description: "...a prophecy was foretold that he would return once again..!",
		Effect:      "this card is in play for 3 rounds. if at any point in time you have a human or nonhuman card in your hand, deal 6 damage once per round to your opponent. Add an additional 3 damage once per round if Un'go and Un'go's Chalice are on either side of the field. remove this card from play. only one card per deck.",
		Duration:    3,
		Cost:        10,
		ExpireTo:    DestRemoved,
		MaxCopies:   1,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					armed := false
					for _, c := range player.Hand {
						if hasAnyType(c.Card, TypeHuman, TypeNonhuman) {
							armed = true
							break
						}
					}
					if !armed {
						return
					}
					dmg := 6
					if d.State.inPlay("ungo") && d.State.inPlay("ungo-chalice") {
						dmg += 3
					}
					d.DealDamage(player.Index, opponent.Index, dmg, card, "")
				},
			})
		},
	}
}

// ContinuumTransfunctioner reverses the owner's card flow: draws come from
// the crypt and discards go to the top of the deck.
func ContinuumTransfunctioner() *Card {
	return &Card{
		ID:          "continuum-transfunctioner",
		Name:        "Continuum Transfunctioner",
		Year:        "2023",
		Types:       []CardType{TypeUnidentifiable, TypeObject},
		Description: "A scientific breakthrough once vaulted by G. Lab. before they disappeared....",
		Effect:      "this card is in play for 3 rounds. reverse the flow of the cards (draw from the crypt, discard to the stack) for the duration of this card.",
		Duration:    3,
		Cost:        6,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnDraw: func(d *Duel, e *Effect, p int) bool {
					if p != e.Owner || len(player.Crypt) == 0 {
						return false
					}
					d.moveToHand(player.Crypt[len(player.Crypt)-1], RemoveSourceLeft, "drawn from the crypt")
					return true
				},
				OnDiscard: func(d *Duel, e *Effect, c *CardInstance) bool {
					if c.Owner != e.Owner {
						return false
					}
					d.moveToDeckTop(c, RemoveSourceLeft, "discarded to the stack")
					return true
				},
			})
		},
	}
}

// ArtOfRooster raises the damage and gold the owner takes from the
// opponent by 3, and steals 13 gold if the opponent clears it.
func ArtOfRooster() *Card {
	return &Card{
		ID:          "art-of-rooster",
		Name:        "Art Of Rooster",
		Year:        "2023",
		Types:       []CardType{TypePassive, TypeUnidentifiable},
		Description: "...the defensive escape. A classic!",
		Effect:      "this card is in play for 3 rounds. every round, add an additional 3 to the amount of damage you take from your opponent and 3 to the amount of gold you take from your opponent. take 13 gold from your opponent if this card is cleared.",
		Duration:    3,
		Cost:        8,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnDamageReceived: func(d *Duel, e *Effect, ev DamageEvent, amount int) int {
					if ev.To != e.Owner || ev.From != opponent.Index {
						return amount
					}
					return amount + 3
				},
				OnGoldReceived: func(d *Duel, e *Effect, ev GoldEvent, amount int) int {
					if ev.To != PlayerParty(e.Owner) || ev.From != PlayerParty(opponent.Index) {
						return amount
					}
					return amount + 3
				},
				OnCleared: func(d *Duel, e *Effect) {
					d.steal(opponent.Index, player.Index, 13, card, "the rooster escapes")
				},
			})
		},
	}
}

// PartyTrick adds 1 gold from outside the game every second round until cleared.
func PartyTrick() *Card {
	return &Card{
		ID:          "party-trick",
		Name:        "Party Trick",
		Year:        "2023",
		Types:       []CardType{TypePassive, TypeUnidentifiable},
		Description: "Casters were banned from most normal gatherings...",
		Effect:      "every 2 rounds, transfer 1 gold from your out-of-game stash into your in-game stash. this card is a passive, and in play indefinitely until the user decides or is otherwise cleared.",
		Duration:    DurationInfinite,
		Cost:        4,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			round := 0
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					round++
					if round%2 == 0 {
						d.TransferGold(PartyNone, PlayerParty(player.Index), 1, card, "out-of-game stash")
					}
				},
			})
		},
	}
}

// Yatesuratsu sends the opponent's most expensive hand card to the crypt every round.
func Yatesuratsu() *Card {
	return &Card{
		ID:          "yatesuratsu",
		Name:        "Yatesuratsu",
		Year:        "2023",
		Types:       []CardType{TypeNonhuman, TypeUnidentifiable},
		Description: "...some describe him in dreams... before they go missing.",
		Effect:      "this card is in play for 3 rounds. once per round, your opponent must send their most expensive card from their hand to the crypt. have someone else verify.",
		Duration:    3,
		Cost:        8,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					if c := mostExpensive(opponent.Hand); c != nil {
						d.discard(c)
					}
				},
			})
		},
	}
}

// Yodkai counts unidentifiable cards played and deals the count on
// leaving. If the opponent clears it, it returns to hand with a refund.
func Yodkai() *Card {
	return &Card{
		ID:          "yodkai",
		Name:        "Yodkai",
		Year:        "2023",
		Types:       []CardType{TypeNonhuman, TypeUnidentifiable},
		Description: "An elusive creature that's only ever captured on footage...",
		Effect:      "this card is in play for 3 rounds. tally up the amount of unidentifiable cards played during its duration, dealing that amount in damage to your opponent when sending this card to the crypt. place this card back into your hand if it is cleared by your opponent and refund the summon gold.",
		Duration:    3,
		Cost:        10,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			count := 0
			lasting(d, card, Hooks{
				OnCardPlayed: func(d *Duel, e *Effect, played *CardInstance, _ int) {
					if played.Card.HasType(TypeUnidentifiable) {
						count++
					}
				},
				OnRemove: func(d *Duel, e *Effect) {
					d.DealDamage(player.Index, opponent.Index, count, card, "")
				},
				OnCleared: func(d *Duel, e *Effect) {
					d.moveGold(PartyNone, PlayerParty(player.Index), card.Card.Cost, card, "refund")
					d.moveToHand(card, RemoveCleared, "slipped away")
				},
			})
		},
	}
}

// HerSpirit adds 3 to the owner's gold income and takes 3 off the opponent's.
func HerSpirit() *Card {
	return &Card{
		ID:          "her-spirit",
		Name:        "Her Spirit",
		Year:        "2023",
		Types:       []CardType{TypeNonhuman, TypeUnidentifiable},
		Description: "She exists indefinitely...\nThe presence of her spirit...",
		Effect:      "this card is in play for 2 rounds. reduce any of your opponent's gold income by 3, and increase any of your gold income by 3 for the duration of this card. this card can stack with each effect already in play.",
		Duration:    2,
		Cost:        7,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnGoldReceived: func(d *Duel, e *Effect, ev GoldEvent, amount int) int {
					if ev.To == PlayerParty(e.Owner) {
						return amount + 3
					}
					return max(0, amount-3)
				},
			})
		},
	}
}

// MadameNilah deals 2 damage a round plus 2 for every gold the opponent
// has received while she lasts.
func MadameNilah() *Card {
	return &Card{
		ID:          "madame-nilah",
		Name:        "Madame Nilah",
		Year:        "2023",
		Types:       []CardType{TypeNonhuman, TypeUnidentifiable},
		Description: "She seemed normal to her people... until servants, guests, and even townsfolk started disappearing...",
		Effect:      "this card is in play for 3 rounds. deal 2 damage each round and an additional 2 damage per 1 gold taken by your opponent during the duration",
		Duration:    3,
		Cost:        5,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			taken := 0
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					d.DealDamage(player.Index, opponent.Index, 2+2*taken, card, "")
				},
				OnGoldReceived: func(d *Duel, e *Effect, ev GoldEvent, amount int) int {
					if ev.To == PlayerParty(opponent.Index) {
						taken += amount
					}
					return amount
				},
			})
		},
	}
}

// MadameNilahsBracelet draws from the crypt instead of the deck, dealing
// half of each drawn card's cost as damage.
func MadameNilahsBracelet() *Card {
	return &Card{
		ID:          "madame-nilah-bracelet",
		Name:        "Madame Nilah's Bracelet",
		Year:        "2023",
		Types:       []CardType{TypeObject},
		Description: "...this is the infamous band that was found when the townsfolk stormed the castle...",
		Effect:      "this card is in play for 3 rounds. draw from the crypt instead of your deck for the duration of this card. each round, deal half of the card's summoning gold in damage to your opponent",
		Duration:    3,
		Cost:        10,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnDraw: func(d *Duel, e *Effect, p int) bool {
					if p != e.Owner || len(player.Crypt) == 0 {
						return false
					}
					drawn := player.Crypt[len(player.Crypt)-1]
					d.moveToHand(drawn, RemoveSourceLeft, "drawn from the crypt")
					d.DealDamage(player.Index, opponent.Index, drawn.Card.Cost/2, card, "")
					return true
				},
			})
		},
	}
}

// NytonArena pays 1 gold from the bank for every 2 damage either side
// deals, or heals at the same rate when the bank is short.
func NytonArena() *Card {
	return &Card{
		ID:          "nyton-arena",
		Name:        "Nyton Arena",
		Year:        "2023",
		Types:       []CardType{TypeLocation},
		Description: "here.... the fights never seem to end...",
		Effect:      "this card is in play for 3 rounds. any attack done by either side rewards them with gold from the bank (1 gold per 2 damage done). if the bank has no gold, gain health at the same rate.",
		Duration:    3,
		Cost:        7,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnDamageDealt: func(d *Duel, e *Effect, ev DamageEvent, amount int) int {
					reward := amount / 2
					if ev.From < 0 || reward == 0 {
						return amount
					}
					if d.State.Bank.Gold >= reward {
						d.fromBank(ev.From, reward, card, "arena purse")
					} else {
						d.Heal(ev.From, reward, card, "arena purse")
					}
					return amount
				},
			})
		},
	}
}

// UngosChalice deals 3 damage a round for every card sent to a crypt while
// it lasts, 2 more with Un'go in play. It cannot be cleared.
func UngosChalice() *Card {
	return &Card{
		ID:          "ungo-chalice",
		Name:        "Un'go's Chalice",
		Year:        "2023",
		Types:       []CardType{TypeObject},
		Description: "The weapon of a mass murderer; \nit harnesses the blood of those killed to feed whatever is inside...",
		Effect:      "this card is in play for 2 rounds. deal 3 damage per round for each card that is cleared or sent to the crypt during its duration. deal an additional 2 per round if Un'go is on either side of the field. this card cannot be cleared. only one card per deck.",
		Duration:    2,
		Cost:        10,
		MaxCopies:   1,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			fallen := 0
			d.addEffect(&Effect{
				Name:      card.Card.ID,
				Source:    card,
				Owner:     player.Index,
				Duration:  card.Card.Duration,
				Uncleared: true,
				Hooks: Hooks{
					OnCardToCrypt: func(d *Duel, e *Effect, c *CardInstance) {
						fallen++
					},
					OnRoundStart: func(d *Duel, e *Effect) {
						dmg := 3 * fallen
						if d.State.inPlay("ungo") {
							dmg += 2
						}
						d.DealDamage(player.Index, opponent.Index, dmg, card, "")
					},
				},
			})
		},
	}
}

// TheWitchesPamphlet rolls a die plus 2 and, every round, shuffles a crypt
// card costing no more than that back into the deck.
func TheWitchesPamphlet() *Card {
	return &Card{
		ID:          "witches-pamphlet",
		Name:        "The Witches' Pamphlet",
		Year:        "2023",
		Types:       []CardType{TypeObject, TypeUnidentifiable},
		Description: "Made by a banished caster, these are the work of a mad genius..!",
		Effect:      "this card is in play for 3 rounds. roll a six sided die, and add 2 to your roll. each round, take 1 card with equal or less gold summon from the crypt and shuffle it back into your deck.",
		Duration:    3,
		Cost:        7,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			limit := d.rollD6(player.Index, card) + 2
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					var eligible []*CardInstance
					for _, c := range player.Crypt {
						if c.Card.Cost <= limit {
							eligible = append(eligible, c)
						}
					}
					prompt := fmt.Sprintf("Shuffle which crypt card (cost %d or less) into your deck?", limit)
					if chosen := d.chooseCard(player.Index, prompt, eligible); chosen != nil {
						d.shuffleIntoDeck(chosen, RemoveSourceLeft, "recovered by the pamphlet")
					}
				},
			})
		},
	}
}

// PorcusAureus rolls off against the opponent every round. A win takes 12
// gold from the bank, healing for whatever the bank cannot cover. Once per game.
func PorcusAureus() *Card {
	return &Card{
		ID:          "porcus-aureus",
		Name:        "Porcus Aureus",
		Year:        "2023",
		Types:       []CardType{TypeNonhuman, TypeEvent},
		Description: "The townspeople fear it... for once a year, it demands we feed it money... or else...",
		Effect:      "this card is in play for 3 rounds. each round, you and your opponent roll a 6 sided die. if your opponent rolls a higher combined total than you, nothing happens. if you roll higher than your opponent, take 12 gold from the bank. if there is not enough, take what is there and add the remaining to your health. you can only play this card once.",
		Duration:    3,
		Cost:        7,
		Limit:       PlayLimit{Max: 1, Scope: ScopeOwnerCatalog},
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					mine := d.rollD6(player.Index, card)
					theirs := d.rollD6(opponent.Index, card)
					if mine <= theirs {
						return
					}
					got := d.fromBank(player.Index, 12, card, "the golden pig is fed")
					d.Heal(player.Index, 12-got, card, "the bank ran dry")
				},
			})
		},
	}
}
