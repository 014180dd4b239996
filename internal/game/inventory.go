package game

// Item is an instance of a schema definition carried by an actor.
type Item struct {
	Id     string `json:"id"`
	Schema string `json:"schema"`
}

// Inventory holds items carried by an actor.
type Inventory struct {
	// Items maps instance IDs to items
	Items map[string]*Item `json:"items,omitempty"`
}

// NewInventory creates an empty inventory.
func NewInventory(items ...*Item) *Inventory {
	inv := &Inventory{Items: make(map[string]*Item, len(items))}
	for _, it := range items {
		inv.Add(it)
	}
	return inv
}

// Add adds an item to the inventory.
func (inv *Inventory) Add(it *Item) {
	if inv.Items == nil {
		inv.Items = make(map[string]*Item)
	}
	inv.Items[it.Id] = it
}

// Remove removes an item from the inventory.
// Returns the removed item, or nil if not found.
func (inv *Inventory) Remove(id string) *Item {
	if it, ok := inv.Items[id]; ok {
		delete(inv.Items, id)
		return it
	}
	return nil
}

// Get returns an item by ID, or nil if not found.
func (inv *Inventory) Get(id string) *Item {
	return inv.Items[id]
}

// Equipment holds items equipped by an actor.
// Keys are slot identifiers (e.g., "main-hand", "body").
type Equipment struct {
	Slots map[string]*Item `json:"slots,omitempty"`
}

// NewEquipment creates an empty equipment set.
func NewEquipment() *Equipment {
	return &Equipment{Slots: make(map[string]*Item)}
}

// Equip places an item in the given slot.
func (eq *Equipment) Equip(slot string, it *Item) error {
	if eq.Slots == nil {
		eq.Slots = make(map[string]*Item)
	}
	if _, occupied := eq.Slots[slot]; occupied {
		return ErrSlotOccupied
	}
	eq.Slots[slot] = it
	return nil
}

// GetSlot returns the item in the given slot, or nil if empty.
func (eq *Equipment) GetSlot(slot string) *Item {
	return eq.Slots[slot]
}

// SlotOf returns the slot holding the item with the given id.
func (eq *Equipment) SlotOf(id string) (string, bool) {
	for slot, it := range eq.Slots {
		if it.Id == id {
			return slot, true
		}
	}
	return "", false
}

// Remove finds and unequips an item by ID.
func (eq *Equipment) Remove(id string) *Item {
	slot, ok := eq.SlotOf(id)
	if !ok {
		return nil
	}
	it := eq.Slots[slot]
	delete(eq.Slots, slot)
	return it
}
