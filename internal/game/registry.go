package game

import (
	"errors"
	"fmt"
	"sort"
)

// CardRegistry maps catalog ids to their constructor functions.
var CardRegistry = map[string]func() *Card{
	// Human
	"the-hero":            TheHero,
	"northern-queen":      NorthernQueen,
	"annies-closet":       AnniesCloset,
	"yoshika-business":    YoshikaBusiness,
	"deal-maker":          DealMaker,
	"advanced-caster":     AdvancedCaster,
	"the-champ":           TheChamp,
	"intermediate-caster": IntermediateCaster,
	"absorb":              Absorb,
	"melopix-bank-heist":  MelopixBankHeist,
	"king-kain":           KingKain,
	"failing-operation":   FailingOperation,
	"shiri-o":             ShiriO,
	"just-a-little-bit":   JustALittleBit,

	// Celestial
	"table-of-sacrifice":    TableOfSacrifice,
	"jacobs-second-ladder":  JacobsSecondLadder,
	"kiiad-the-confuser":    KiiadTheConfuser,
	"nyuu-the-bestower":     NyuuTheBestower,
	"mirror-of-avagoss":     MirrorOfAvagoss,
	"ollgrw":                Ollgrw,
	"ythpxx":                Ythpxx,
	"ythuu-the-destruction": YthuuTheDestruction,
	"yaya-goddess":          YayaGoddess,
	"hylia-the-valiant":     HyliaTheValiant,
	"converging-paralax":    ConvergingParalax,
	"rebirth":               Rebirth,
	"face-of-fate":          FaceOfFate,
	"helonius-text":         HeloniusText,
	"oio":                   OIO,
	"aeon":                  AEON,

	// Event
	"vaporize":             Vaporize,
	"catastrophe":          Catastrophe,
	"goblet-of-life":       GobletOfLife,
	"cup-of-blood":         CupOfBlood,
	"wall-of-flesh":        WallOfFlesh,
	"aquilus-rift":         AquilusRift,
	"dreamstate":           Dreamstate,
	"crypt-reaver":         CryptReaver,
	"second-shipment":      SecondShipment,
	"atmos":                Atmos,
	"creature-control":     CreatureControl,
	"baezers-bazaar":       BaezersBazaar,
	"comical-intervention": ComicalIntervention,
	"universal-tax":        UniversalTax,
	"deja-man":             DejaMan,
	"la-santa-miguela":     LaSantaMiguela,
	"colossal-rebirth":     ColossalRebirth,
	"heavenly-fire":        HeavenlyFire,
	"firo":                 Firo,
	"gift-of-mercy":        GiftOfMercy,
	"peace-treaty":         PeaceTreaty,
	"repentance":           Repentance,
	"the-end":              TheEnd,

	// Nonhuman and unidentifiable
	"chromax":                   Chromax,
	"forest-witch":              ForestWitch,
	"island-du-gonzo":           IslandDuGonzo,
	"festival-of-lights":        FestivalOfLights,
	"dust-bowl":                 DustBowl,
	"skinlette":                 Skinlette,
	"spear-a-gott":              SpearAGott,
	"avalons-toy-shelter":       AvalonsToyShelter,
	"bonobo-jungle":             TheBonoboJungle,
	"ungo-wrath":                UngosWrath,
	"continuum-transfunctioner": ContinuumTransfunctioner,
	"art-of-rooster":            ArtOfRooster,
	"party-trick":               PartyTrick,
	"yatesuratsu":               Yatesuratsu,
	"yodkai":                    Yodkai,
	"her-spirit":                HerSpirit,
	"madame-nilah":              MadameNilah,
	"madame-nilah-bracelet":     MadameNilahsBracelet,
	"nyton-arena":               NytonArena,
	"ungo-chalice":              UngosChalice,
	"witches-pamphlet":          TheWitchesPamphlet,
	"porcus-aureus":             PorcusAureus,
}

// LookupCard looks up a card by id and returns a new instance.
// Panics if the card is not found.
func LookupCard(id string) *Card {
	ctor, ok := CardRegistry[id]
	if !ok {
		panic(fmt.Sprintf("card not found in registry: %q", id))
	}
	return ctor()
}

// FindCard looks up a card by id.
func FindCard(id string) (*Card, bool) {
	ctor, ok := CardRegistry[id]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// CardIDs returns every catalog id in sorted order.
func CardIDs() []string {
	ids := make([]string, 0, len(CardRegistry))
	for id := range CardRegistry {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ValidateCatalog checks every registered card for authoring mistakes. All
// problems are reported together, each wrapping ErrInvalidCatalog.
func ValidateCatalog() error {
	var errs []error
	bad := func(id, format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s: %s", ErrInvalidCatalog, id, fmt.Sprintf(format, args...)))
	}
	for _, key := range CardIDs() {
		c := CardRegistry[key]()
		if c.ID != key {
			bad(key, "registered under a different id %q", c.ID)
		}
		if c.Name == "" {
			bad(key, "missing name")
		}
		if len(c.Types) == 0 {
			bad(key, "no tags")
		}
		if c.Cost < 0 {
			bad(key, "negative cost %d", c.Cost)
		}
		if c.Duration < 0 && c.Duration != DurationInfinite {
			bad(key, "invalid duration %d", c.Duration)
		}
		if c.OnPlay == nil {
			bad(key, "no binding")
		}
		if !c.NoSlot && len(c.EligibleSlots()) == 0 {
			bad(key, "no placement for tags %v", c.TypeNames())
		}
		if c.Replaces != "" {
			if _, ok := CardRegistry[c.Replaces]; !ok {
				bad(key, "replaces unknown card %q", c.Replaces)
			}
		}
		if c.Limit.Max < 0 || c.MaxCopies < 0 {
			bad(key, "negative limit")
		}
	}
	return errors.Join(errs...)
}

// CatalogEntry is the exported, binding-free view of a card.
type CatalogEntry struct {
	ID          string   `yaml:"id" json:"id"`
	Name        string   `yaml:"name" json:"name"`
	Types       []string `yaml:"types" json:"types"`
	Cost        int      `yaml:"cost" json:"cost"`
	Duration    int      `yaml:"duration" json:"duration"`
	Description string   `yaml:"description" json:"description"`
	Effect      string   `yaml:"effect" json:"effect"`
	Power       int      `yaml:"power,omitempty" json:"power,omitempty"`
	Defense     int      `yaml:"defense,omitempty" json:"defense,omitempty"`
	Rarity      string   `yaml:"rarity,omitempty" json:"rarity,omitempty"`
	Year        string   `yaml:"year,omitempty" json:"year,omitempty"`
}

// EntryFor describes c for export.
func EntryFor(c *Card) CatalogEntry {
	return CatalogEntry{
		ID:          c.ID,
		Name:        c.Name,
		Types:       c.TypeNames(),
		Cost:        c.Cost,
		Duration:    c.Duration,
		Description: c.Description,
		Effect:      c.Effect,
		Power:       c.Power,
		Defense:     c.Defense,
		Rarity:      c.Rarity,
		Year:        c.Year,
	}
}

// Catalog returns the whole catalog sorted by id.
func Catalog() []CatalogEntry {
	ids := CardIDs()
	out := make([]CatalogEntry, len(ids))
	for i, id := range ids {
		out[i] = EntryFor(CardRegistry[id]())
	}
	return out
}
