package game

import "fmt"

// Vaporize removes a chosen card in play from the game every round.
func Vaporize() *Card {
	return &Card{
		ID:          "vaporize",
		Name:        "Vaporize",
		Year:        "2024",
		Types:       []CardType{TypeEvent},
		Description: "skin.. flesh.. bone.. and possibly soul; all gone.",
		Effect:      "this card is in play for 3 rounds. each round, choose one card in play and remove it from play for the rest of the game, including any effects. this does not prevent said cards from reentering the game.",
		Duration:    3,
		Cost:        10,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					var targets []*CardInstance
					targets = append(targets, opponent.FieldCards()...)
					for _, c := range player.FieldCards() {
						if c != card {
							targets = append(targets, c)
						}
					}
					if target := d.chooseCard(player.Index, "Vaporize which card?", targets); target != nil {
						d.clearCard(target, player.Index, DestRemoved, "vaporized")
					}
				},
			})
		},
	}
}

// Catastrophe mills both decks every round for nine rounds. In the tenth
// everything is reshuffled and both players draw on the bank.
func Catastrophe() *Card {
	return &Card{
		ID:          "catastrophe",
		Name:        "Catastrophe",
		Year:        "2023",
		Types:       []CardType{TypeEvent, TypeNonhuman},
		Description: "One for the history books... what have we done...?",
		Effect:      "this card is in play for 10 rounds. you and your opponent must discard the top card of your deck to the crypt before drawing to your hand. on the final round; shuffle your hand, crypt, and deck together, and you both take 1 gold from the bank. if there is 0 gold in the bank afterwards, you both lose 20 health.",
		Duration:    10,
		Cost:        6,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			round := 0
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					round++
					if round < 10 {
						d.millTop(player.Index, "lost to the catastrophe")
						d.millTop(opponent.Index, "lost to the catastrophe")
						return
					}
					d.reshuffleAll(player.Index)
					d.reshuffleAll(opponent.Index)
					d.fromBank(player.Index, 1, card, "")
					d.fromBank(opponent.Index, 1, card, "")
					if d.State.Bank.Gold > 0 {
						return
					}
					d.atOnce(func() {
						d.DealDamage(-1, player.Index, 20, card, "the bank is empty")
						d.DealDamage(-1, opponent.Index, 20, card, "the bank is empty")
					})
				},
			})
		},
	}
}

// GobletOfLife heals 3 a round at the cost of 2 damage per hit. It may be
// played over Cup Of Blood, whose effect it replaces.
func GobletOfLife() *Card {
	return &Card{
		ID:          "goblet-of-life",
		Name:        "Goblet Of Life",
		Year:        "2023",
		Types:       []CardType{TypeEvent, TypeNonhuman},
		Description: "A seemingly innocent Valencia Chalice that invokes a certain mood...",
		Effect:      "this card is in play for 3 rounds. heal 3 health per round, but reduce the damage you do by 2. this card can be played over \"Cup Of Blood\" at any point in time, removing the previous card's effect and replacing it.",
		Duration:    3,
		Cost:        7,
		Replaces:    "cup-of-blood",
		CanPlay:     refuseConflicts,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			err := d.ReplaceEffect("cup-of-blood", &Effect{
				Name:     card.Card.ID,
				Source:   card,
				Owner:    player.Index,
				Duration: card.Card.Duration,
				Excludes: []string{"cup-of-blood"},
				Hooks: Hooks{
					OnRoundStart: func(d *Duel, e *Effect) {
						d.Heal(player.Index, 3, card, "")
					},
					OnDamageDealt: func(d *Duel, e *Effect, ev DamageEvent, amount int) int {
						if ev.From != e.Owner {
							return amount
						}
						return max(0, amount-2)
					},
				},
			})
			if err != nil {
				d.note(card, "%v", err)
			}
		},
	}
}

// CupOfBlood heals 2 a round at the cost of 1 damage per hit, and 4 if
// the opponent clears it.
func CupOfBlood() *Card {
	return &Card{
		ID:          "cup-of-blood",
		Name:        "Cup Of Blood",
		Year:        "2023",
		Types:       []CardType{TypeObject, TypeNonhuman},
		Description: "A vision came to the blacksmith... to forge a cup, instead of a sword...",
		Effect:      "this card is in play for 4 rounds. heal 2 health per round, but reduce the damage you do by 1. heal 4 health if cleared by the opponent.",
		Duration:    4,
		Cost:        5,
		CanPlay:     refuseConflicts,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					d.Heal(player.Index, 2, card, "")
				},
				OnDamageDealt: func(d *Duel, e *Effect, ev DamageEvent, amount int) int {
					if ev.From != e.Owner {
						return amount
					}
					return max(0, amount-1)
				},
				OnCleared: func(d *Duel, e *Effect) {
					d.Heal(player.Index, 4, card, "cleared")
				},
			})
		},
	}
}

// WallOfFlesh heals 3 for every 2 damage taken each round.
func WallOfFlesh() *Card {
	return &Card{
		ID:          "wall-of-flesh",
		Name:        "Wall of Flesh",
		Year:        "2023",
		Types:       []CardType{TypeEvent},
		Description: "It whispers thousands of languages all at once... in hopes of attracting followers...",
		Effect:      "this card is in play for 3 rounds. heal 3 health per 2 damage dealt to you at the end of each round during this card's duration. if this card is cleared, deal 8 damage and heal 10 health.",
		Duration:    3,
		Cost:        9,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			taken := 0
			lasting(d, card, Hooks{
				OnDamageReceived: func(d *Duel, e *Effect, ev DamageEvent, amount int) int {
					if ev.To == e.Owner {
						taken += amount
					}
					return amount
				},
				OnRoundEnd: func(d *Duel, e *Effect) {
					d.Heal(player.Index, taken/2*3, card, "")
					taken = 0
				},
				OnCleared: func(d *Duel, e *Effect) {
					d.DealDamage(player.Index, opponent.Index, 8, card, "cleared")
					d.Heal(player.Index, 10, card, "cleared")
				},
			})
		},
	}
}

// AquilusRift puts a chosen card from the deck straight into play.
func AquilusRift() *Card {
	return &Card{
		ID:          "aquilus-rift",
		Name:        "Aquilus' Rift",
		Year:        "2023",
		Types:       []CardType{TypeEvent},
		Description: "No... do not read from it's pages!",
		Effect:      "this card is in play for 1 round. take any one card from your deck and put it directly into play.",
		Duration:    1,
		Cost:        5,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			if chosen := d.chooseCard(player.Index, "Put which card from your deck into play?", player.Deck); chosen != nil {
				d.putIntoPlay(chosen, "pulled through Aquilus' Rift")
			}
		},
	}
}

// Dreamstate counts unidentifiable cards played and, on leaving, steals
// half that in gold and heals the other half.
func Dreamstate() *Card {
	return &Card{
		ID:          "dreamstate",
		Name:        "Dreamstate",
		Year:        "2023",
		Types:       []CardType{TypeEvent},
		Description: "well, what an odd request...",
		Effect:      "this card is in play for 4 rounds. tally the total amount of unidentifiable cards during this card's duration and take half of that amount in gold from your opponent, healing for the other half when sending this card to the crypt.",
		Duration:    4,
		Cost:        9,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			count := 0
			lasting(d, card, Hooks{
				OnCardPlayed: func(d *Duel, e *Effect, played *CardInstance, _ int) {
					if played.Card.HasType(TypeUnidentifiable) {
						count++
					}
				},
				OnRemove: func(d *Duel, e *Effect) {
					half := count / 2
					d.steal(opponent.Index, player.Index, half, card, "")
					d.Heal(player.Index, count-half, card, "")
				},
			})
		},
	}
}

// CryptReaver offers one of three crypt plays every round.
func CryptReaver() *Card {
	return &Card{
		ID:          "crypt-reaver",
		Name:        "Crypt Reaver",
		Year:        "2023",
		Types:       []CardType{TypeNonhuman, TypeUnidentifiable, TypeEvent},
		Description: "The Crypt is his realm..\nThe creatures; his puppets.",
		Effect:      "this card is in play for 3 rounds. each round, choose to do any 1 of the following; draw 3 cards at the start of a round from the crypt, send 3 cards from your opponent's hand to the crypt, or send 3 cards from your crypt back onto the top of your deck.",
		Duration:    3,
		Cost:        13,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			options := []string{
				"Draw 3 cards from your crypt",
				"Send 3 cards from your opponent's hand to the crypt",
				"Put 3 cards from your crypt on top of your deck",
			}
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					choice := d.chooseOption(player.Index, "Crypt Reaver", options)
					for i := 0; i < 3; i++ {
						switch choice {
						case 0:
							if len(player.Crypt) == 0 || player.HandCount() >= d.State.Rules.MaxHandSize {
								return
							}
							d.moveToHand(player.Crypt[d.rng.Intn(len(player.Crypt))], RemoveSourceLeft, "reaped from the crypt")
						case 1:
							d.discardRandom(opponent.Index, 1)
						case 2:
							if len(player.Crypt) == 0 {
								return
							}
							d.moveToDeckTop(player.Crypt[d.rng.Intn(len(player.Crypt))], RemoveSourceLeft, "reaped from the crypt")
						}
					}
				},
			})
		},
	}
}

// SecondShipment removes the opponent's objects from the game, including
// any they play while it lasts.
func SecondShipment() *Card {
	return &Card{
		ID:          "second-shipment",
		Name:        "Second Shipment",
		Year:        "2023",
		Types:       []CardType{TypeUnidentifiable, TypeEvent},
		Description: "What do you mean it was 'just here'..? ....Where is it?!",
		Effect:      "this card is in play for 3 rounds. remove any and all items from your opponent's side from play. any item played during its duration will be removed from play.",
		Duration:    3,
		Cost:        6,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			for _, c := range cardsOfType(opponent.FieldCards(), TypeObject) {
				d.clearCard(c, player.Index, DestRemoved, "lost in shipment")
			}
			lasting(d, card, Hooks{
				OnCardPlayed: func(d *Duel, e *Effect, played *CardInstance, by int) {
					if by == opponent.Index && played.Card.HasType(TypeObject) {
						d.clearCard(played, player.Index, DestRemoved, "lost in shipment")
					}
				},
			})
		},
	}
}

// Atmos deals 1 damage, doubling every round.
func Atmos() *Card {
	return &Card{
		ID:          "atmos",
		Name:        "Atmos",
		Year:        "2023",
		Types:       []CardType{TypeEvent, TypeUnidentifiable},
		Description: "One cannot just call upon the divine for assistance....",
		Effect:      "this card is in play for 4 rounds. deal 1 damage in the first round, doubling it every round during its duration (8 damage at round 4)",
		Duration:    4,
		Cost:        8,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			dmg := 1
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					d.DealDamage(player.Index, opponent.Index, dmg, card, "")
					dmg *= 2
				},
			})
		},
	}
}

// CreatureControl pays 4 gold to the bank per opposing creature removed,
// up to 12 gold over its lifetime.
func CreatureControl() *Card {
	return &Card{
		ID:          "creature-control",
		Name:        "Creature Control",
		Year:        "2023",
		Types:       []CardType{TypeEvent, TypeUnidentifiable},
		Description: "...only the most advanced caster can control any creature using wits and soul stones...!",
		Effect:      "this card is in play for 3 rounds. deposit 4 gold into the bank to remove 1 human or nonhuman card from your opponent's side (hand or field), at a maximum of 12 gold.",
		Duration:    3,
		Cost:        2,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			spent := 0
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					for spent < 12 && player.Gold >= 4 {
						var targets []*CardInstance
						for _, c := range append(opponent.FieldCards(), opponent.Hand...) {
							if hasAnyType(c.Card, TypeHuman, TypeNonhuman) && !d.protected(c) {
								targets = append(targets, c)
							}
						}
						if len(targets) == 0 || !d.askYesNo(player.Index, "Spend 4 gold to remove a creature?") {
							return
						}
						target := d.chooseCard(player.Index, "Remove which creature?", targets)
						if target == nil {
							return
						}
						spent += d.TransferGold(PlayerParty(player.Index), PartyBank, 4, card, "creature control")
						if target.OnField() {
							d.clearCard(target, player.Index, DestCrypt, "taken under control")
						} else {
							d.moveToCrypt(target, RemoveSourceLeft, "taken under control")
						}
					}
				},
			})
		},
	}
}

// BaezersBazaar adds 3 to every gold payment and card cost.
func BaezersBazaar() *Card {
	return &Card{
		ID:          "baezers-bazaar",
		Name:        "Bæzer's Bazaar",
		Year:        "2023",
		Types:       []CardType{TypeEvent, TypeUnidentifiable},
		Description: "...Come one and all! We have anything you can imagine...!",
		Effect:      "this card is in play for 2 rounds. Increase all gold related card's effects and gold costs by 3 additional gold.",
		Duration:    2,
		Cost:        5,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnGoldReceived: func(d *Duel, e *Effect, ev GoldEvent, amount int) int {
					return amount + 3
				},
				OnCardCost: func(d *Duel, e *Effect, c *CardInstance, by int, cost int) int {
					return cost + 3
				},
			})
		},
	}
}

// ComicalIntervention turns gold income into healing and healing into
// gold, 4 less each way.
func ComicalIntervention() *Card {
	return &Card{
		ID:          "comical-intervention",
		Name:        "Comical Intervention",
		Year:        "2023",
		Types:       []CardType{TypeEvent, TypeUnidentifiable},
		Description: "An effective strategy used by the ancients...",
		Effect:      "this card is in play for 2 rounds. swap gold effects into health, and vice versa for the duration of this card for both you and your opponent. Reduce all effects by 4 during the duration of this card",
		Duration:    2,
		Cost:        7,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnGoldReceived: func(d *Duel, e *Effect, ev GoldEvent, amount int) int {
					d.healDirect(int(ev.To), amount-4, card, "gold turned to health")
					return 0
				},
				OnHeal: func(d *Duel, e *Effect, ev HealEvent, amount int) int {
					d.moveGold(PartyNone, PlayerParty(ev.Player), amount-4, card, "health turned to gold")
					return 0
				},
			})
		},
	}
}

// UniversalTax charges both players 3 gold for the bank.
func UniversalTax() *Card {
	return &Card{
		ID:          "universal-tax",
		Name:        "Universal Tax",
		Year:        "2023",
		Types:       []CardType{TypeUnidentifiable},
		Description: "Only two things in this life of that I'm sure...",
		Effect:      "play this card, and then remove it from play. each player must pay 3 gold to the bank. it is required that each player has 3 of these cards in their deck.",
		Duration:    0,
		Cost:        0,
		AfterPlay:   DestRemoved,
		MaxCopies:   3,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			d.TransferGold(PlayerParty(player.Index), PartyBank, 3, card, "tax")
			d.TransferGold(PlayerParty(opponent.Index), PartyBank, 3, card, "tax")
		},
	}
}

// DejaMan deals 10 damage to the opponent of anyone who plays it after
// its first appearance in the game. Once per turn.
func DejaMan() *Card {
	return &Card{
		ID:          "deja-man",
		Name:        "Déjà Man",
		Year:        "2023",
		Types:       []CardType{TypeNonhuman, TypeUnidentifiable, TypeEvent},
		Description: "I've seen him before.... haven't I?",
		Effect:      "play this card, and then remove from play. if you or your opponent play this card again, the card's opponent receives 10 damage. this card cannot be played twice within the same turn. this effect cannot be cleared or stacked.",
		Duration:    0,
		Cost:        4,
		AfterPlay:   DestRemoved,
		Limit:       PlayLimit{Max: 1, Scope: ScopeOwnerCatalog, Reset: ResetEachTurn},
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			seen := d.State.Counters.Add(KeyFor(card, "appearances", ScopeCatalog), 1, ResetNever)
			if seen > 1 {
				d.DealDamage(player.Index, opponent.Index, 10, card, fmt.Sprintf("seen %d times", seen))
			}
		},
	}
}

// LaSantaMiguela clears every effect that prevents plays and, while it
// lasts, sends new ones straight to the crypt.
func LaSantaMiguela() *Card {
	return &Card{
		ID:          "la-santa-miguela",
		Name:        "La Santa Miguela",
		Year:        "2023",
		Types:       []CardType{TypeEvent, TypeUnidentifiable},
		Description: "The church built in the name of St. GONZO.\nIt was quickly abandoned as many lost faith... yet the power it contained grew.",
		Effect:      "this card is in play for 2 rounds. remove any card play prevention affects during the duration. send any/all of these prevention cards in play to the crypt.",
		Duration:    2,
		Cost:        6,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			for _, e := range d.State.Effects.Active() {
				if !preventsPlay(e) {
					continue
				}
				if e.Source != nil && e.Source.OnField() {
					d.clearCard(e.Source, player.Index, DestCrypt, "dispelled by La Santa Miguela")
				}
				d.RemoveEffect(e, RemoveCleared)
			}
			lasting(d, card, Hooks{
				OnInstall: func(d *Duel, e *Effect, incoming *Effect) bool {
					if !preventsPlay(incoming) {
						return true
					}
					if src := incoming.Source; src != nil && src.OnField() && src.Slot != SlotNone {
						d.moveToCrypt(src, RemoveCleared, "dispelled by La Santa Miguela")
					}
					return false
				},
			})
		},
	}
}

// ColossalRebirth takes no slot. It returns one crypt card to hand and
// puts another into play, or heals 10 when there is no room for it.
func ColossalRebirth() *Card {
	return &Card{
		ID:          "colossal-rebirth",
		Name:        "Colossal Rebirth",
		Year:        "2023",
		Types:       []CardType{TypeEvent, TypeUnidentifiable},
		Description: "The Creatures of Colossus all reign under a special law...",
		Effect:      "this card does not take up a slot on the field. play two cards from the crypt; place one in your hand, and one on the field. if both slots are full, gain 10 health.",
		Duration:    0,
		Cost:        9,
		NoSlot:      true,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			if len(player.Crypt) < 2 {
				d.note(card, "the crypt is too quiet")
				return
			}
			if toHand := d.chooseCard(player.Index, "Return which card to your hand?", player.Crypt); toHand != nil {
				d.moveToHand(toHand, RemoveSourceLeft, "colossal rebirth")
			}
			toField := d.chooseCard(player.Index, "Put which card into play?", player.Crypt)
			if toField == nil {
				return
			}
			if player.freeSlotFor(toField.Card) == SlotNone && !toField.Card.NoSlot {
				d.Heal(player.Index, 10, card, "no room on the field")
				return
			}
			d.putIntoPlay(toField, "colossal rebirth")
		},
	}
}

// HeavenlyFire prevents all damage from nonhuman cards for 2 rounds.
func HeavenlyFire() *Card {
	return &Card{
		ID:          "heavenly-fire",
		Name:        "Heavenly Fire",
		Year:        "2023",
		Types:       []CardType{TypeEvent, TypeUnidentifiable},
		Description: "Back! Back, you monsters!",
		Effect:      "prevent the damage of any nonhuman cards for 2 rounds",
		Duration:    2,
		Cost:        4,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			lasting(d, card, Hooks{
				OnDamageDealt: func(d *Duel, e *Effect, ev DamageEvent, amount int) int {
					if ev.Card != nil && ev.Card.Card.HasType(TypeNonhuman) {
						return 0
					}
					return amount
				},
			})
		},
	}
}

// Firo deals 4 damage now and 2 in each of the next two rounds.
func Firo() *Card {
	return &Card{
		ID:          "firo",
		Name:        "Firo",
		Year:        "2023",
		Types:       []CardType{TypeEvent, TypeUnidentifiable},
		Description: "A fun intermediate spell for any caster willing to try...!",
		Effect:      "this card deals 4 damage to your opponent, and 2 damage the next 2 rounds",
		Duration:    2,
		Cost:        5,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			d.DealDamage(player.Index, opponent.Index, 4, card, "")
			lasting(d, card, Hooks{
				OnRoundStart: func(d *Duel, e *Effect) {
					d.DealDamage(player.Index, opponent.Index, 2, card, "")
				},
			})
		},
	}
}

// GiftOfMercy offers the opponent 3 gold to discard their hand; a refusal
// costs them 6 health.
func GiftOfMercy() *Card {
	return &Card{
		ID:          "gift-of-mercy",
		Name:        "Gift of Mercy",
		Year:        "2023",
		Types:       []CardType{TypeEvent, TypeUnidentifiable},
		Description: "They heard the humans cry for help and sent a gift; A donut that blasts a million degrees into one direct spot.\nYou'd be surprised how many humans gathered.\nMany felt like this was the only way.",
		Effect:      "offer 3 gold for your opponent to send their hand to the crypt. if they decline, deal 6 damage.",
		Duration:    0,
		Cost:        2,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			if d.askYesNo(opponent.Index, "Accept 3 gold to send your hand to the crypt?") {
				d.steal(player.Index, opponent.Index, 3, card, "gift of mercy")
				d.sendHandToCrypt(opponent.Index)
				return
			}
			d.DealDamage(player.Index, opponent.Index, 6, card, "mercy refused")
		},
	}
}

// PeaceTreaty ends the game without a winner if the opponent agrees,
// splitting the players' gold evenly.
func PeaceTreaty() *Card {
	return &Card{
		ID:          "peace-treaty",
		Name:        "Peace Treaty",
		Year:        "2023",
		Types:       []CardType{TypeEvent},
		Description: "Though fighting seemed to be the answer,\nboth parties decided peace was the ultimate solution.",
		Effect:      "ask your opponent for a treaty. if they say yes, the game ends with both parties splitting their gold.",
		Duration:    0,
		Cost:        0,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			if !d.askYesNo(opponent.Index, "Accept the peace treaty?") {
				d.note(card, "the treaty is refused")
				return
			}
			share := (player.Gold + opponent.Gold) / 2
			player.Gold, opponent.Gold = share, share
			d.note(card, "both players keep %d gold", share)
			d.EndGame(-1, "Peace treaty signed")
		},
	}
}

// Repentance deals a die roll of damage to both players at once.
func Repentance() *Card {
	return &Card{
		ID:          "repentance",
		Name:        "Repentance",
		Year:        "2023",
		Types:       []CardType{TypeUnidentifiable, TypeEvent},
		Description: "The warnings were true.\nThe scalding earth was now nothing more than a prison.\n-×-×-×-×-×-×-×-×-×-\nIf only they had acted sooner.",
		Effect:      "roll a 6 sided die. Remove that number rolled from you and your enemy's health",
		Duration:    0,
		Cost:        3,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			roll := d.rollD6(player.Index, card)
			d.atOnce(func() {
				d.DealDamage(player.Index, player.Index, roll, card, "repentance")
				d.DealDamage(player.Index, opponent.Index, roll, card, "repentance")
			})
		},
	}
}

// TheEnd wins the game outright when the opponent holds 20 gold or less.
func TheEnd() *Card {
	return &Card{
		ID:          "the-end",
		Name:        "The End",
		Year:        "2023",
		Types:       []CardType{TypeEvent},
		Description: "The claws of fate finally ripped through.\n\nThe sky's galling mouth opened;\nAnd all they foretold was coming true...!",
		Effect:      "if the opponent is at 10(20) gold or less, the opponent loses",
		Duration:    0,
		Cost:        8,
		OnPlay: func(d *Duel, card *CardInstance, player, opponent *Player) {
			if opponent.Gold > 20 {
				d.note(card, "the opponent holds %d gold and endures", opponent.Gold)
				return
			}
			d.EndGame(player.Index, "The End")
		},
	}
}
