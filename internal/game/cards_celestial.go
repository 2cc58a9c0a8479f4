package game

import "fmt"

// TableOfSacrifice heals 4 a round at the cost of 3 damage per hit. It may
// be played over Goblet Of Life, whose effect it replaces.
func TableOfSacrifice() *Card {
	return &Card{
		ID:          "table-of-sacrifice",
		Name:        "Table Of Sacrifice",
		Year:        "2023",
		Types:       []CardType{TypeNonhuman, TypeCelestial},
		Description: "Hidden deep within the cavernous mountains.... lies a table used for centuries.",
		Effect:      "this card is in play for 3 rounds. heal 4 health per round, but reduce the damage you do by 3. this card can be played over \"Goblet Of Life\" at any point in time, removing the previous card's effect and replacing it.",
		Duration:    3,
		Cost:        9,
		Replaces:    "goblet-of-life",
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			err := d.ReplaceEffect("goblet-of-life", &Effect{
				Name:     card.Card.ID,
				Source:   card,
				Owner:    player.Index,
				Duration: card.Card.Duration,
				Excludes: []string{"goblet-of-life"},
				Hooks: Hooks{
					OnRoundStart: func(d *Duel, e *Effect) {
						d.Heal(player.Index, 4, card, "")
					},
					OnDamageDealt: func(d *Duel, e *Effect, ev DamageEvent, amount int) int {
						if ev.From != e.Owner {
							return amount
						}
						return max(0, amount-3)
					},
				},
			})
			if err != nil {
				d.note(card, "%v", err)
			}
		},
	}
}

// JacobsSecondLadder counts celestials played while it lasts and takes
// that many gold off the owner's next celestial.
func JacobsSecondLadder() *Card {
	return &Card{
		ID:          "jacobs-second-ladder",
		Name:        "Jacob's Second Ladder",
		Year:        "2023",
		Types:       []CardType{TypeNonhuman, TypeCelestial},
		Description: "instead of death, the universe gifts the very fortunate with a path to the light...",
		Effect:      "this card is in play for 3 rounds. tally up the amount of celestial cards played during its duration & remove that amount from the gold needed to summon your next celestial.",
		Duration:    3,
		Cost:        10,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			count := 0
			lasting(d, card, Hooks{
				OnCardPlayed: func(d *Duel, e *Effect, played *CardInstance, _ int) {
					if played.Card.HasType(TypeCelestial) {
						count++
					}
				},
				OnRemove: func(d *Duel, e *Effect) {
					if count == 0 {
						return
					}
					discount := count
					lingering(d, card, "jacobs-second-ladder-discount", DurationInfinite, Hooks{
						OnCardCost: func(d *Duel, e *Effect, c *CardInstance, by int, cost int) int {
							if by != e.Owner || !c.Card.HasType(TypeCelestial) {
								return cost
							}
							return cost - discount
						},
						OnCardPlayed: func(d *Duel, e *Effect, played *CardInstance, by int) {
							if by == e.Owner && played.Card.HasType(TypeCelestial) {
								d.RemoveEffect(e, RemoveExpired)
							}
						},
					})
				},
			})
		},
	}
}

// KiiadTheConfuser shields the owner in its first round and, in its third,
// trades places with the last celestial in the owner's crypt.
func KiiadTheConfuser() *Card {
	return &Card{
		ID:          "kiiad-the-confuser",
		Name:        "K'iiad, The Confuser",
		Year:        "2023",
		Types:       []CardType{TypeCelestial, TypeUnidentifiable, TypeEvent},
		Description: "...he speaks from the beyond. They warn not to answer his call...",
		Effect:      "this card is in play for 3 rounds. negate any damage done to you in the first round. replace this card with the last celestial sent to the crypt and reset its duration in the third round.",
		Duration:    3,
		Cost:        9,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			round := 0
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					round++
					switch round {
					case 1:
						timed(d, card, "kiiad-shield", 1, Hooks{
							OnDamageReceived: func(d *Duel, e *Effect, ev DamageEvent, amount int) int {
								if ev.To != e.Owner {
									return amount
								}
								return 0
							},
						})
					case 3:
						celestials := player.CryptOfType(TypeCelestial)
						if len(celestials) == 0 {
							return
						}
						last := celestials[len(celestials)-1]
						d.moveToCrypt(card, RemoveSourceLeft, "replaced by "+last.Card.Name)
						d.putIntoPlay(last, "called back by K'iiad")
					}
				},
			})
		},
	}
}

// NyuuTheBestower counts celestials played while it lasts and, on leaving,
// extends a chosen celestial in play by that many rounds.
func NyuuTheBestower() *Card {
	return &Card{
		ID:          "nyuu-the-bestower",
		Name:        "Nyuu', The Bestower",
		Year:        "2023",
		Types:       []CardType{TypeCelestial, TypeUnidentifiable, TypeEvent},
		Description: "From the cosmos, he winds the threads of fate into his intricate web...",
		Effect:      "this card is in play for 3 rounds. tally up the amount of celestials played during this card's duration. extend the duration of one chosen celestial card by that amount when sending this card to the crypt.",
		Duration:    3,
		Cost:        9,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			count := 0
			lasting(d, card, Hooks{
				OnCardPlayed: func(d *Duel, e *Effect, played *CardInstance, _ int) {
					if played.Card.HasType(TypeCelestial) {
						count++
					}
				},
				OnRemove: func(d *Duel, e *Effect) {
					if count == 0 {
						return
					}
					var candidates []*CardInstance
					for _, c := range cardsOfType(d.State.CardsInPlay(), TypeCelestial) {
						if c != card {
							candidates = append(candidates, c)
						}
					}
					prompt := fmt.Sprintf("Extend which celestial by %d round(s)?", count)
					if chosen := d.chooseCard(player.Index, prompt, candidates); chosen != nil {
						d.extendCard(chosen, count)
					}
				},
			})
		},
	}
}

// MirrorOfAvagoss records the owner's first two rounds and replays them
// in the last two.
func MirrorOfAvagoss() *Card {
	return &Card{
		ID:          "mirror-of-avagoss",
		Name:        "Mirror Of Ava'goss",
		Year:        "2023",
		Types:       []CardType{TypeNonhuman, TypeCelestial, TypeUnidentifiable},
		Description: "...no one knows where it leads.. and some spend their entire lives looking for it.",
		Effect:      "this card is in play for 4 rounds. repeat all health and currency related actions done in the first 2 rounds again for the final 2 rounds.",
		Duration:    4,
		Cost:        13,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			var recorded []RoundStats
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					if len(recorded) < 2 {
						recorded = append(recorded, player.LastRound)
						return
					}
					past := recorded[0]
					recorded = recorded[1:]
					d.note(card, "the mirror replays a past round")
					d.Heal(player.Index, past.Healed, card, "mirrored")
					d.DealDamage(player.Index, opponent.Index, past.DamageDealt, card, "mirrored")
					d.fromBank(player.Index, past.GoldGained, card, "mirrored")
					d.TransferGold(PlayerParty(player.Index), PartyBank, past.GoldLost, card, "mirrored")
				},
			})
		},
	}
}

// Ollgrw shuffles both hands away in its first round and discards two from
// each hand in its third.
func Ollgrw() *Card {
	return &Card{
		ID:          "ollgrw",
		Name:        "Oll'grw",
		Year:        "2023",
		Types:       []CardType{TypeCelestial, TypeUnidentifiable},
		Description: "A nihilistic celestial that is pleasing to look at; it is cursed to wander for all eternity..",
		Effect:      "this card is in play for 3 rounds. you and your opponent must shuffle their hand into their deck in the first round. send two cards from you and your opponent's hand to the crypt in the third round.",
		Duration:    3,
		Cost:        8,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			round := 0
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					round++
					switch round {
					case 1:
						d.shuffleHandIntoDeck(player.Index)
						d.shuffleHandIntoDeck(opponent.Index)
					case 3:
						d.discardRandom(player.Index, 2)
						d.discardRandom(opponent.Index, 2)
					}
				},
			})
		},
	}
}

// Ythpxx draws an extra card every round.
func Ythpxx() *Card {
	return &Card{
		ID:          "ythpxx",
		Name:        "Yth'pxx",
		Year:        "2023",
		Types:       []CardType{TypeCelestial, TypeUnidentifiable},
		Description: "A boisterous celestial that sails through the cosmos creating colors and bending reality...",
		Effect:      "this card is in play for 3 rounds. draw one extra card at the start of each round during this card's duration",
		Duration:    3,
		Cost:        8,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					d.drawCards(player.Index, 1)
				},
			})
		},
	}
}

// YthuuTheDestruction hits the opponent's health, hand and gold every round.
func YthuuTheDestruction() *Card {
	return &Card{
		ID:          "ythuu-the-destruction",
		Name:        "Ythuu', the Destruction",
		Year:        "2023",
		Types:       []CardType{TypeCelestial},
		Description: "Legend has it, it came down and wreaked havoc from the heavens..\nAnd then all of a sudden... it vanished!",
		Effect:      "this card is in play for 3 rounds. each round; deal 3 damage to your opponent, send 1 card from their hand to the crypt, and remove 2 gold from your opponent.",
		Duration:    3,
		Cost:        10,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					d.DealDamage(player.Index, opponent.Index, 3, card, "")
					d.discardRandom(opponent.Index, 1)
					d.TransferGold(PlayerParty(opponent.Index), PartyNone, 2, card, "destroyed")
				},
			})
		},
	}
}

// YayaGoddess deals damage for every celestial and human in play, and 10
// more if the opponent clears her.
func YayaGoddess() *Card {
	return &Card{
		ID:          "yaya-goddess",
		Name:        "Yaya, Goddess of Emanation",
		Year:        "2023",
		Types:       []CardType{TypeCelestial},
		Description: "....reclusive and historically omniscient... \nshe picks her targets without mercy.",
		Effect:      "this card is in play for 2 rounds. deal 2 damage per celestial in play and 3 damage per human card in play per round during its duration. deal 10 damage to your opponent if this card is cleared.",
		Duration:    2,
		Cost:        8,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					gs := d.State
					dmg := 2*gs.CountInPlay(TypeCelestial) + 3*gs.CountInPlay(TypeHuman)
					d.DealDamage(player.Index, opponent.Index, dmg, card, "")
				},
				OnCleared: func(d *Duel, e *Effect) {
					d.DealDamage(player.Index, opponent.Index, 10, card, "cleared")
				},
			})
		},
	}
}

// HyliaTheValiant softens the opponent's hits in its first and third
// rounds and returns its second round's damage on leaving.
func HyliaTheValiant() *Card {
	return &Card{
		ID:          "hylia-the-valiant",
		Name:        "Hylia, the Valiant",
		Year:        "2023",
		Types:       []CardType{TypeNonhuman, TypeCelestial},
		Description: "He hides in the shadows, pondering his next meal...",
		Effect:      "this card is in play for 4 rounds. reduce the damage your opponent does by 5 in the 1st and 3rd round. take the total damage the opponent dealt to you in the 2nd round and deal that back to your opponent when sending this card to the crypt.",
		Duration:    4,
		Cost:        9,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			round, stored := 0, 0
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					round++
					if round == 3 {
						stored = opponent.LastRound.DamageDealt
					}
				},
				OnDamageReceived: func(d *Duel, e *Effect, ev DamageEvent, amount int) int {
					if ev.To != e.Owner || (round != 1 && round != 3) {
						return amount
					}
					return max(0, amount-5)
				},
				OnRemove: func(d *Duel, e *Effect) {
					d.DealDamage(player.Index, opponent.Index, stored, card, "returned")
				},
			})
		},
	}
}

// ConvergingParalax sends every celestial in play to the crypt and deals
// their combined cost as damage.
func ConvergingParalax() *Card {
	return &Card{
		ID:          "converging-paralax",
		Name:        "Converging Paralax",
		Year:        "2023",
		Types:       []CardType{TypeCelestial, TypeEvent},
		Description: "There is a bond between celestials that is unknown to others... they are all connected...",
		Effect:      "if this card is in your hand at the start of a turn, you can draw one card before playing. send any celestials to the crypt, combining their summoning gold and dealing that amount in damage to your opponent",
		Duration:    0,
		Cost:        10,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			d.drawCards(player.Index, 1)
			total := 0
			for _, c := range cardsOfType(d.State.CardsInPlay(), TypeCelestial) {
				if c != card && d.clearCard(c, player.Index, DestCrypt, "converged") {
					total += c.Card.Cost
				}
			}
			d.DealDamage(player.Index, opponent.Index, total, card, "")
		},
	}
}

// Rebirth must be the second card of a turn. It returns a celestial from
// the crypt to hand, or heals 7, and then leaves the game.
func Rebirth() *Card {
	return &Card{
		ID:          "rebirth",
		Name:        "Rebirth",
		Year:        "2023",
		Types:       []CardType{TypeCelestial, TypeEvent},
		Description: "In a flash, blinding...\nThey came from the beyond!",
		Effect:      "play this card second. place 1 celestial card from the crypt back into your hand. if there are none, gain 7 health. remove this card from play",
		Duration:    0,
		Cost:        6,
		AfterPlay:   DestRemoved,
		CanPlay: func(d *Duel, card *CardInstance, player, opponent *Player) error {
			if played := d.State.Rules.MovesPerTurn - player.MovesRemaining; played != 1 {
				return reject(InvalidAction, "Rebirth must be the second card played this turn")
			}
			return nil
		},
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			celestial := d.chooseCard(player.Index, "Return which celestial to your hand?", player.CryptOfType(TypeCelestial))
			if celestial == nil {
				d.Heal(player.Index, 7, card, "no celestial to return")
				return
			}
			d.moveToHand(celestial, RemoveSourceLeft, "reborn")
		},
	}
}

// FaceOfFate deals 5 damage in its third round if the owner is richer.
func FaceOfFate() *Card {
	return &Card{
		ID:          "face-of-fate",
		Name:        "Face of Fate",
		Year:        "2023",
		Types:       []CardType{TypeCelestial, TypeUnidentifiable},
		Description: "The face you feel watching you from the shadows. It watches the moments you appreciate.. and the ones you throw away.",
		Effect:      "this card is in play for 3 rounds. if you have more gold than your opponent in the beginning of the 3rd round, deal 5 damage to your opponent",
		Duration:    3,
		Cost:        2,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			round := 0
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					round++
					if round == 3 && player.Gold > opponent.Gold {
						d.DealDamage(player.Index, opponent.Index, 5, card, "")
					}
				},
			})
		},
	}
}

// HeloniusText puts a copy of every object played onto the owner's field
// with the original's remaining duration.
func HeloniusText() *Card {
	return &Card{
		ID:          "helonius-text",
		Name:        "Helonius Text",
		Year:        "2023",
		Types:       []CardType{TypeCelestial, TypeObject},
		Description: "Once awakened, the book creates whatever is written into reality.\n~\nNobody has ever seen what it creates, or has lived to read its pages.",
		Effect:      "this card is in play for 2 rounds. duplicate any object played during its duration and mimic its duration",
		Duration:    2,
		Cost:        5,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnCardPlayed: func(d *Duel, e *Effect, played *CardInstance, _ int) {
					if played.Token || !played.Card.HasType(TypeObject) {
						return
					}
					dup := d.State.CreateCardInstance(played.Card, player.Index)
					dup.Token = true
					dup.Zone = ZoneRemoved
					if d.putIntoPlay(dup, "written by Helonius Text") && dup.OnField() && played.OnField() {
						dup.RemainingDuration = played.RemainingDuration
					}
				},
			})
		},
	}
}

// OIO removes the opponent's newest creature from the game, then itself.
func OIO() *Card {
	return &Card{
		ID:          "oio",
		Name:        "ŒIO",
		Year:        "2023",
		Types:       []CardType{TypeCelestial},
		Description: "Those brave enough to time travel always run the risk of the butterfly effect.\nTo mess up the fabric of time will forever mean an inevitable end.\nIt comes for you.\nAnd there is nothing you can do.",
		Effect:      "remove your opponent's newest creature from play and remove this creature from play",
		Duration:    0,
		Cost:        5,
		AfterPlay:   DestRemoved,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			var newest *CardInstance
			for _, c := range opponent.FieldCards() {
				if hasAnyType(c.Card, TypeEvent, TypeObject) {
					continue
				}
				if newest == nil || c.PlayedSeq > newest.PlayedSeq {
					newest = c
				}
			}
			if newest != nil {
				d.clearCard(newest, player.Index, DestRemoved, "erased from time")
			}
		},
	}
}

// AEON rolls health, gold and the bank back to the start of the last round.
func AEON() *Card {
	return &Card{
		ID:          "aeon",
		Name:        "ÆON",
		Year:        "2023",
		Types:       []CardType{TypeCelestial},
		Description: "As a result of the butterfly affect, the folklore entity makes itself known.\n~\nThe winder of sand, and bringer of color;\nit writes the wrongs of those found meddling through time.",
		Effect:      "negate the events of the entire last round",
		Duration:    0,
		Cost:        6,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			gs := d.State
			mark := gs.prevRound
			if !mark.valid {
				mark = gs.thisRound
			}
			for i, p := range gs.Players {
				p.Health = mark.health[i]
				p.Gold = mark.gold[i]
			}
			gs.Bank.Gold = mark.bank
			d.note(card, "time unwinds: P1 %d/%d, P2 %d/%d, bank %d",
				gs.Players[0].Health, gs.Players[0].Gold, gs.Players[1].Health, gs.Players[1].Gold, gs.Bank.Gold)
		},
	}
}
