package combat

import (
	"fmt"
	"math"

	"github.com/pixil98/go-mud-rules/internal/game"
	"github.com/pixil98/go-mud-rules/internal/schema"
)

const (
	// UnarmedDamage is dealt by a combatant with nothing in the main hand.
	UnarmedDamage = 1
	// RetreatDistance is how far a retreat carries a combatant.
	RetreatDistance = 2.0
	// StrikeMultiplier scales weapon damage for a strike.
	StrikeMultiplier = 1.5
)

// Hit is the outcome of an attack that connected.
type Hit struct {
	Attacker      string `json:"attacker"`
	Target        string `json:"target"`
	Damage        int    `json:"damage"`
	Blocked       bool   `json:"blocked"`
	Remaining     int    `json:"remaining"`
	Incapacitated bool   `json:"incapacitated"`
}

// Combatant is the action API of one seat in a session.
type Combatant struct {
	session *Session
	state   *game.Combatant
	actor   *game.Actor
}

func (c *Combatant) Id() string            { return c.state.ActorId }
func (c *Combatant) Team() game.Team       { return c.state.Team }
func (c *Combatant) AP() game.ActionPoints { return c.state.AP }
func (c *Combatant) Position() float64     { return c.state.Position }
func (c *Combatant) Target() string        { return c.state.Target }

// CanAfford checks a rounded cost against remaining AP, then energy.
func (c *Combatant) CanAfford(cost Cost) error {
	if cost.ActionPoints > c.state.AP.Current {
		return fmt.Errorf("%w: need %.1f, have %.1f", ErrInsufficientAP, cost.ActionPoints, c.state.AP.Current)
	}
	if cost.Energy > c.actor.Vitals.Energy {
		return fmt.Errorf("%w: need %.0f, have %.0f", ErrInsufficientEnergy, cost.Energy, c.actor.Vitals.Energy)
	}
	return nil
}

// DeductCost spends a cost. Nothing is spent when it is unaffordable.
func (c *Combatant) DeductCost(cost Cost) error {
	if err := c.CanAfford(cost); err != nil {
		return err
	}
	c.state.AP.Current -= cost.ActionPoints
	c.actor.Vitals.Energy -= cost.Energy
	return nil
}

// Distance returns the battlefield distance to another combatant.
func (c *Combatant) Distance(targetID string) (float64, error) {
	t, err := c.opponentState(targetID)
	if err != nil {
		return 0, err
	}
	return math.Abs(c.state.Position - t.Position), nil
}

// CheckMelee reports whether targetID can be hit in melee right now.
func (c *Combatant) CheckMelee(targetID string) error {
	d, err := c.Distance(targetID)
	if err != nil {
		return err
	}
	reach := schema.DefaultReach
	if w := c.weapon(); w != nil {
		reach = w.EffectiveReach()
	}
	if d > reach {
		return fmt.Errorf("%w: %.1f away, reach %.1f", ErrOutOfReach, d, reach)
	}
	return nil
}

// CheckRanged reports whether targetID can be shot right now.
func (c *Combatant) CheckRanged(targetID string) error {
	w := c.weapon()
	if w == nil || w.Kind != schema.WeaponRanged {
		return ErrNoRangedWeapon
	}
	d, err := c.Distance(targetID)
	if err != nil {
		return err
	}
	if d > w.Range {
		return fmt.Errorf("%w: %.1f away, range %.1f", ErrOutOfReach, d, w.Range)
	}
	return nil
}

// Attack makes a melee attack.
func (c *Combatant) Attack(targetID string) (Hit, error) {
	if err := c.CheckMelee(targetID); err != nil {
		return Hit{}, err
	}
	return c.hit(targetID, c.baseDamage())
}

// Strike makes a heavy melee attack.
func (c *Combatant) Strike(targetID string) (Hit, error) {
	if err := c.CheckMelee(targetID); err != nil {
		return Hit{}, err
	}
	return c.hit(targetID, int(math.Floor(float64(c.baseDamage())*StrikeMultiplier)))
}

// Range makes a ranged attack.
func (c *Combatant) Range(targetID string) (Hit, error) {
	if err := c.CheckRanged(targetID); err != nil {
		return Hit{}, err
	}
	return c.hit(targetID, c.baseDamage())
}

// Defend raises a guard until this combatant's next turn. With an ally id
// the guard covers that ally instead.
func (c *Combatant) Defend(allyID string) error {
	if allyID == "" || allyID == c.Id() {
		c.state.Defending = true
		return nil
	}
	ally, ok := c.session.state.Combatants[allyID]
	if !ok {
		return ErrTargetNotInSession
	}
	if ally.Team != c.state.Team {
		return fmt.Errorf("%w: %s is not an ally", ErrInvalidTarget, allyID)
	}
	c.state.Guarding = allyID
	return nil
}

// Retreat falls back away from the opposing line and drops the target.
func (c *Combatant) Retreat() float64 {
	c.state.Position -= c.facing() * RetreatDistance
	c.state.Target = ""
	return c.state.Position
}

// Move steps toward the opposing line. A negative distance steps away.
func (c *Combatant) Move(distance float64) float64 {
	c.state.Position += c.facing() * distance
	return c.state.Position
}

// SetTarget selects who later attacks default to.
func (c *Combatant) SetTarget(targetID string) error {
	if _, err := c.opponentState(targetID); err != nil {
		return err
	}
	c.state.Target = targetID
	return nil
}

// Done gives up the rest of the turn.
func (c *Combatant) Done() {
	c.state.AP.Current = 0
}

// facing is +1 for BRAVO, which starts on the low end of the line.
func (c *Combatant) facing() float64 {
	if c.state.Team == game.TeamBravo {
		return 1
	}
	return -1
}

func (c *Combatant) opponentState(targetID string) (*game.Combatant, error) {
	if targetID == c.Id() {
		return nil, fmt.Errorf("%w: cannot target yourself", ErrInvalidTarget)
	}
	t, ok := c.session.state.Combatants[targetID]
	if !ok {
		return nil, ErrTargetNotInSession
	}
	return t, nil
}

func (c *Combatant) weapon() *schema.Weapon {
	if c.session.catalog == nil {
		return nil
	}
	it := c.actor.Equipment.GetSlot(schema.SlotMainHand)
	if it == nil {
		return nil
	}
	w, ok := c.session.catalog.Weapon(it.Schema)
	if !ok {
		return nil
	}
	return w
}

func (c *Combatant) baseDamage() int {
	if w := c.weapon(); w != nil {
		return w.Damage
	}
	return UnarmedDamage
}

// hit applies damage after armor and guards, floored at zero health.
func (c *Combatant) hit(targetID string, damage int) (Hit, error) {
	t, err := c.opponentState(targetID)
	if err != nil {
		return Hit{}, err
	}
	victim := c.session.world.Actor(targetID)
	if victim == nil {
		return Hit{}, fmt.Errorf("%w: %s", game.ErrActorNotFound, targetID)
	}

	damage = max(1, damage-armorDefense(c.session.catalog, victim))
	blocked := t.Defending || c.session.guarded(targetID)
	if blocked {
		damage /= 2
	}

	victim.Vitals.Health = max(0, victim.Vitals.Health-damage)
	if victim.Vitals.Health == 0 {
		t.Incapacitated = true
	}

	return Hit{
		Attacker:      c.Id(),
		Target:        targetID,
		Damage:        damage,
		Blocked:       blocked,
		Remaining:     victim.Vitals.Health,
		Incapacitated: t.Incapacitated,
	}, nil
}

// guarded reports whether an able ally is guarding actorID.
func (s *Session) guarded(actorID string) bool {
	for _, c := range s.state.Combatants {
		if c.Guarding == actorID && !c.Incapacitated {
			return true
		}
	}
	return false
}

func armorDefense(catalog schema.Catalog, a *game.Actor) int {
	if catalog == nil {
		return 0
	}
	var total int
	for _, it := range a.Equipment.Slots {
		if armor, ok := catalog.Armor(it.Schema); ok {
			total += armor.Defense
		}
	}
	return total
}
