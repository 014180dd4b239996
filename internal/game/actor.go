package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// SystemActorID is the well-known actor that issues privileged commands.
// It has no entry in the world and bypasses actor validation.
const SystemActorID = "@system"

// Vitals tracks the depletable resources of an actor.
type Vitals struct {
	Health    int     `json:"health"`
	MaxHealth int     `json:"max_health"`
	Energy    float64 `json:"energy"`
	MaxEnergy float64 `json:"max_energy"`
}

// Actor is a live participant in the world.
type Actor struct {
	Id        string     `json:"id"`
	Name      string     `json:"name"`
	Location  string     `json:"location"`
	Vitals    Vitals     `json:"vitals"`
	Agility   int        `json:"agility"`
	Inventory *Inventory `json:"inventory"`
	Equipment *Equipment `json:"equipment"`

	// Session is the id of the combat session the actor fights in, if any.
	Session string `json:"session,omitempty"`
	// Party is the id of the group the actor belongs to, if any.
	Party string `json:"party,omitempty"`
}

// NewActor creates an actor with empty inventory and equipment.
func NewActor(id, name, location string) *Actor {
	return &Actor{
		Id:        id,
		Name:      name,
		Location:  location,
		Inventory: NewInventory(),
		Equipment: NewEquipment(),
	}
}

// EquipFromInventory moves an item from the inventory into slot.
// Nothing changes when the item is missing or the slot is taken.
func (a *Actor) EquipFromInventory(itemID, slot string) error {
	it := a.Inventory.Get(itemID)
	if it == nil {
		return ErrItemNotFound
	}
	if a.Equipment.GetSlot(slot) != nil {
		return ErrSlotOccupied
	}
	a.Inventory.Remove(itemID)
	return a.Equipment.Equip(slot, it)
}

// UnequipToInventory moves an equipped item back into the inventory.
func (a *Actor) UnequipToInventory(itemID string) (*Item, error) {
	it := a.Equipment.Remove(itemID)
	if it == nil {
		return nil, ErrNotEquipped
	}
	a.Inventory.Add(it)
	return it, nil
}

// Incapacitated reports whether the actor has no health left.
func (a *Actor) Incapacitated() bool {
	return a.Vitals.Health <= 0
}

// ActorSpec is the asset definition an actor is seeded from.
type ActorSpec struct {
	Name      string          `json:"name"`
	Location  string          `json:"location"`
	Health    int             `json:"health"`
	Energy    float64         `json:"energy"`
	Agility   int             `json:"agility"`
	Inventory []Item          `json:"inventory,omitempty"`
	Equipment map[string]Item `json:"equipment,omitempty"`
}

func (s *ActorSpec) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	if s.Location == "" {
		el.Add(fmt.Errorf("location is required"))
	}
	if s.Health <= 0 {
		el.Add(fmt.Errorf("health must be positive"))
	}
	if s.Energy < 0 {
		el.Add(fmt.Errorf("energy must not be negative"))
	}
	seen := map[string]bool{}
	for _, it := range s.Inventory {
		if it.Id == "" || it.Schema == "" {
			el.Add(fmt.Errorf("inventory items need id and schema"))
			continue
		}
		if seen[it.Id] {
			el.Add(fmt.Errorf("duplicate item %q", it.Id))
		}
		seen[it.Id] = true
	}
	for slot, it := range s.Equipment {
		if it.Id == "" || it.Schema == "" {
			el.Add(fmt.Errorf("equipment in slot %q needs id and schema", slot))
			continue
		}
		if seen[it.Id] {
			el.Add(fmt.Errorf("duplicate item %q", it.Id))
		}
		seen[it.Id] = true
	}

	return el.Err()
}

// NewActorFromSpec builds a live actor at full vitals.
func NewActorFromSpec(id string, s *ActorSpec) *Actor {
	a := NewActor(id, s.Name, s.Location)
	a.Vitals = Vitals{Health: s.Health, MaxHealth: s.Health, Energy: s.Energy, MaxEnergy: s.Energy}
	a.Agility = s.Agility
	for _, it := range s.Inventory {
		a.Inventory.Add(&Item{Id: it.Id, Schema: it.Schema})
	}
	for slot, it := range s.Equipment {
		a.Equipment.Slots[slot] = &Item{Id: it.Id, Schema: it.Schema}
	}
	return a
}
