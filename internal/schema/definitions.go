package schema

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// WeaponKind separates weapons that strike in reach from those that fire.
type WeaponKind string

const (
	WeaponMelee  WeaponKind = "melee"
	WeaponRanged WeaponKind = "ranged"
)

// SlotMainHand is where weapons go unless their definition says otherwise.
const SlotMainHand = "main-hand"

// DefaultReach is the melee reach of a weapon that does not declare one, and
// of an unarmed combatant.
const DefaultReach = 1.5

// Weapon is the static definition of a wieldable item.
type Weapon struct {
	Name string     `json:"name"`
	Kind WeaponKind `json:"kind"`
	Slot string     `json:"slot,omitempty"`
	// SetupTime is how long readying the weapon takes, in seconds.
	SetupTime float64 `json:"setup_time"`
	Damage    int     `json:"damage"`
	Reach     float64 `json:"reach,omitempty"`
	Range     float64 `json:"range,omitempty"`
}

func (w *Weapon) Validate() error {
	el := errors.NewErrorList()

	if w.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	switch w.Kind {
	case WeaponMelee:
	case WeaponRanged:
		if w.Range <= 0 {
			el.Add(fmt.Errorf("ranged weapons require a positive range"))
		}
	default:
		el.Add(fmt.Errorf("unknown weapon kind %q", w.Kind))
	}
	if w.SetupTime < 0 {
		el.Add(fmt.Errorf("setup_time must not be negative"))
	}
	if w.Damage < 0 {
		el.Add(fmt.Errorf("damage must not be negative"))
	}

	return el.Err()
}

// EquipSlot returns the slot the weapon occupies.
func (w *Weapon) EquipSlot() string {
	if w.Slot == "" {
		return SlotMainHand
	}
	return w.Slot
}

// EffectiveReach returns the melee reach, falling back to DefaultReach.
func (w *Weapon) EffectiveReach() float64 {
	if w.Reach <= 0 {
		return DefaultReach
	}
	return w.Reach
}

// Armor is the static definition of a wearable item.
type Armor struct {
	Name      string  `json:"name"`
	Slot      string  `json:"slot"`
	SetupTime float64 `json:"setup_time"`
	Defense   int     `json:"defense,omitempty"`
	// APPenalty is subtracted from the wearer's natural action points.
	APPenalty float64 `json:"ap_penalty,omitempty"`
}

func (a *Armor) Validate() error {
	el := errors.NewErrorList()

	if a.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if a.Slot == "" {
		el.Add(fmt.Errorf("slot is required"))
	}
	if a.SetupTime < 0 {
		el.Add(fmt.Errorf("setup_time must not be negative"))
	}
	if a.APPenalty < 0 {
		el.Add(fmt.Errorf("ap_penalty must not be negative"))
	}

	return el.Err()
}
