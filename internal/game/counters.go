package game

// CounterScope decides which card instances share a counter.
type CounterScope int

const (
	// ScopeInstance gives every card instance its own counter.
	ScopeInstance CounterScope = iota
	// ScopeOwnerCatalog shares one counter between all copies a player owns.
	ScopeOwnerCatalog
	// ScopeCatalog shares one counter between every copy in the game.
	ScopeCatalog
)

func (s CounterScope) String() string {
	switch s {
	case ScopeInstance:
		return "instance"
	case ScopeOwnerCatalog:
		return "owner+catalog"
	case ScopeCatalog:
		return "catalog"
	default:
		return "unknown"
	}
}

// CounterReset decides when a counter returns to zero.
type CounterReset int

const (
	ResetNever CounterReset = iota
	ResetEachTurn
)

// PlayLimit caps how many times a card may be played. A zero Max means no limit.
type PlayLimit struct {
	Max   int
	Scope CounterScope
	Reset CounterReset
}

const counterPlays = "plays"

// CounterKey addresses a single counter in the store.
type CounterKey struct {
	Name     string
	Scope    CounterScope
	Catalog  string
	Owner    int
	Instance int
}

// KeyFor builds the key for a named counter on card under the given scope.
func KeyFor(card *CardInstance, name string, scope CounterScope) CounterKey {
	key := CounterKey{Name: name, Scope: scope, Owner: -1, Instance: -1}
	switch scope {
	case ScopeInstance:
		key.Instance = card.ID
	case ScopeOwnerCatalog:
		key.Catalog = card.Card.ID
		key.Owner = card.Owner
	case ScopeCatalog:
		key.Catalog = card.Card.ID
	}
	return key
}

// Counters is the per-game store for card counters.
type Counters struct {
	values map[CounterKey]int
	resets map[CounterKey]CounterReset
}

func NewCounters() *Counters {
	return &Counters{
		values: make(map[CounterKey]int),
		resets: make(map[CounterKey]CounterReset),
	}
}

// Get returns the current value of key (0 if never set).
func (c *Counters) Get(key CounterKey) int {
	return c.values[key]
}

// Add increments key by delta and returns the new value.
func (c *Counters) Add(key CounterKey, delta int, reset CounterReset) int {
	c.values[key] += delta
	c.resets[key] = reset
	return c.values[key]
}

// ResetTurn clears every counter registered with ResetEachTurn.
func (c *Counters) ResetTurn() {
	for key, reset := range c.resets {
		if reset == ResetEachTurn {
			delete(c.values, key)
			delete(c.resets, key)
		}
	}
}

// Len returns the number of live counters.
func (c *Counters) Len() int {
	return len(c.values)
}
