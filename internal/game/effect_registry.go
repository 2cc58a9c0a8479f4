package game

import (
	"fmt"
	"slices"

	"github.com/peterkuimelis/colossus/internal/log"
)

// EffectRegistry holds the active effects of one game in insertion order.
type EffectRegistry struct {
	effects []*Effect
	nextID  int
}

func NewEffectRegistry() *EffectRegistry {
	return &EffectRegistry{}
}

// Len returns the number of active effects.
func (r *EffectRegistry) Len() int {
	return len(r.effects)
}

// Active returns a copy of the active effects in insertion order.
func (r *EffectRegistry) Active() []*Effect {
	out := make([]*Effect, len(r.effects))
	copy(out, r.effects)
	return out
}

// Query returns the active effects implementing h, in insertion order.
// The result is a snapshot: effects installed or removed while the caller
// iterates do not change it.
func (r *EffectRegistry) Query(h HookKind) []*Effect {
	var out []*Effect
	for _, e := range r.effects {
		if e.caps.Has(h) {
			out = append(out, e)
		}
	}
	return out
}

// Find returns the active effects with the given name.
func (r *EffectRegistry) Find(name string) []*Effect {
	var out []*Effect
	for _, e := range r.effects {
		if e.Name == name {
			out = append(out, e)
		}
	}
	return out
}

// BySource returns the active effects installed by card.
func (r *EffectRegistry) BySource(card *CardInstance) []*Effect {
	var out []*Effect
	for _, e := range r.effects {
		if e.Source == card {
			out = append(out, e)
		}
	}
	return out
}

// OwnedBy returns the active effects owned by player.
func (r *EffectRegistry) OwnedBy(player int) []*Effect {
	var out []*Effect
	for _, e := range r.effects {
		if e.Owner == player {
			out = append(out, e)
		}
	}
	return out
}

func (r *EffectRegistry) validate(e *Effect) error {
	if e == nil {
		return fmt.Errorf("%w: nil effect", ErrInvalidEffect)
	}
	if e.Name == "" {
		return fmt.Errorf("%w: effect has no name", ErrInvalidEffect)
	}
	if e.Duration == 0 || e.Duration < DurationInfinite {
		return fmt.Errorf("%w: %s has duration %d", ErrInvalidEffect, e.Name, e.Duration)
	}
	if e.Owner < 0 || e.Owner > 1 {
		return fmt.Errorf("%w: %s has owner %d", ErrInvalidEffect, e.Name, e.Owner)
	}
	if e.active || e.removed {
		return fmt.Errorf("%w: %s was already installed", ErrInvalidEffect, e.Name)
	}
	return nil
}

// conflict returns the first active effect that excludes e or is excluded
// by it, ignoring the effects in skip.
func (r *EffectRegistry) conflict(e *Effect, skip ...*Effect) *Effect {
	for _, other := range r.effects {
		if slices.Contains(skip, other) {
			continue
		}
		if e.excludes(other) || other.excludes(e) {
			return other
		}
	}
	return nil
}

func (r *EffectRegistry) add(e *Effect) {
	r.nextID++
	e.ID = r.nextID
	e.caps = e.Hooks.capabilities()
	e.active = true
	r.effects = append(r.effects, e)
}

func (r *EffectRegistry) evict(e *Effect) {
	e.active = false
	e.removed = true
	for i, other := range r.effects {
		if other == e {
			r.effects = append(r.effects[:i], r.effects[i+1:]...)
			return
		}
	}
}

// --- Registry operations that dispatch hooks ---

// admit runs every pre-install check for e as if the effects in replacing
// were already gone. It reports false when an install guard refuses e.
func (d *Duel) admit(e *Effect, replacing []*Effect) (bool, error) {
	reg := d.State.Effects
	if err := reg.validate(e); err != nil {
		return false, err
	}
	if other := reg.conflict(e, replacing...); other != nil {
		return false, reject(EffectConflict, "%s cannot be active alongside %s", e.Name, other.Name)
	}
	e.caps = e.Hooks.capabilities()
	for _, guard := range reg.Query(HookInstall) {
		if slices.Contains(replacing, guard) {
			continue
		}
		if guard.Active() && !guard.OnInstall(d, guard, e) {
			d.log(log.NewCardEffectEvent(guard.Owner, guard.Label(), fmt.Sprintf("%s is blocked", e.Label())))
			return false, nil
		}
	}
	return true, nil
}

func (d *Duel) install(e *Effect) {
	d.State.Effects.add(e)
	d.log(log.NewEffectInstalledEvent(e.Owner, e.Label(), e.Name, e.Duration))
}

// InstallEffect validates e and appends it to the registry. A malformed
// effect returns an error wrapping ErrInvalidEffect; an effect excluded by an
// active one returns an EffectConflict rejection. An install guard may refuse
// the effect, in which case it stays inactive and nil is returned.
func (d *Duel) InstallEffect(e *Effect) error {
	ok, err := d.admit(e, nil)
	if ok {
		d.install(e)
	}
	return err
}

// ReplaceEffect evicts every active effect called name and installs e in
// the same resolution step. Every check runs before anything moves, so a
// rejected or refused replacement leaves the old effects in place.
func (d *Duel) ReplaceEffect(name string, e *Effect) error {
	olds := d.State.Effects.Find(name)
	ok, err := d.admit(e, olds)
	if !ok {
		return err
	}
	for _, old := range olds {
		d.RemoveEffect(old, RemoveReplaced)
		if old.Source != nil && old.Source.OnField() {
			d.moveToCrypt(old.Source, RemoveReplaced, "replaced by "+e.Label())
		}
	}
	d.install(e)
	return nil
}

// RemoveEffect evicts e and fires its removal hook exactly once. Clearing
// by an opposing action prefers OnCleared; every other cause fires OnRemove.
// Removing an effect that is not active is a no-op.
func (d *Duel) RemoveEffect(e *Effect, cause RemoveCause) {
	if e == nil || !e.Active() {
		return
	}
	d.State.Effects.evict(e)
	d.log(log.NewEffectRemovedEvent(e.Owner, e.Label(), e.Name, cause.String()))
	if cause == RemoveCleared && e.OnCleared != nil {
		e.OnCleared(d, e)
		return
	}
	if e.OnRemove != nil {
		e.OnRemove(d, e)
	}
}

// TickPhase selects which half of a round boundary Tick runs.
type TickPhase int

const (
	TickRoundEnd TickPhase = iota
	TickRoundStart
)

// Tick runs one half of a round boundary. TickRoundEnd fires round-end
// hooks. TickRoundStart fires round-start hooks, then counts every finite
// effect down by one and removes those that reach zero.
func (d *Duel) Tick(phase TickPhase) {
	reg := d.State.Effects
	switch phase {
	case TickRoundEnd:
		for _, e := range reg.Query(HookRoundEnd) {
			if d.State.Over {
				return
			}
			if e.Active() {
				e.OnRoundEnd(d, e)
			}
		}
	case TickRoundStart:
		// Effects installed by the hooks below start counting next round.
		ticking := reg.Active()
		for _, e := range reg.Query(HookRoundStart) {
			if d.State.Over {
				return
			}
			if e.Active() {
				e.OnRoundStart(d, e)
			}
		}
		for _, e := range ticking {
			if !e.Active() || e.Infinite() {
				continue
			}
			e.Duration--
			if e.Duration <= 0 {
				d.RemoveEffect(e, RemoveExpired)
			}
		}
	}
}

// addEffect installs e on behalf of a card binding. Card bindings only build
// well-formed effects, so a failure here is logged rather than returned.
func (d *Duel) addEffect(e *Effect) *Effect {
	if err := d.InstallEffect(e); err != nil {
		d.log(log.NewCardEffectEvent(e.Owner, e.Label(), err.Error()))
	}
	return e
}

// evictSourceEffects removes the non-lingering effects installed by card.
func (d *Duel) evictSourceEffects(card *CardInstance, cause RemoveCause) {
	for _, e := range d.State.Effects.BySource(card) {
		if e.Lingers {
			continue
		}
		d.RemoveEffect(e, cause)
	}
}
