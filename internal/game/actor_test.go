package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestActor_EquipFromInventory(t *testing.T) {
	tests := map[string]struct {
		item     string
		slot     string
		occupied bool
		expErr   error
	}{
		"equips carried item": {
			item: "sword-1",
			slot: "main-hand",
		},
		"missing item": {
			item:   "axe-1",
			slot:   "main-hand",
			expErr: ErrItemNotFound,
		},
		"slot taken": {
			item:     "sword-1",
			slot:     "main-hand",
			occupied: true,
			expErr:   ErrSlotOccupied,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			a := NewActor("alice", "Alice", "hall")
			a.Inventory.Add(&Item{Id: "sword-1", Schema: "longsword"})
			if tt.occupied {
				a.Equipment.Slots["main-hand"] = &Item{Id: "dagger-1", Schema: "dagger"}
			}

			err := a.EquipFromInventory(tt.item, tt.slot)
			if !errors.Is(err, tt.expErr) {
				t.Fatalf("err = %v, want %v", err, tt.expErr)
			}
			if tt.expErr != nil {
				testutil.AssertEqual(t, "still carried", a.Inventory.Get("sword-1") != nil, true)
				return
			}
			testutil.AssertEqual(t, "carried", a.Inventory.Get("sword-1") == nil, true)
			testutil.AssertEqual(t, "slot item", a.Equipment.GetSlot("main-hand").Id, "sword-1")
		})
	}
}

func TestActor_UnequipToInventory(t *testing.T) {
	a := NewActor("alice", "Alice", "hall")
	a.Equipment.Slots["body"] = &Item{Id: "mail-1", Schema: "chainmail"}

	it, err := a.UnequipToInventory("mail-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "schema", it.Schema, "chainmail")
	testutil.AssertEqual(t, "in inventory", a.Inventory.Get("mail-1") != nil, true)
	testutil.AssertEqual(t, "slot empty", a.Equipment.GetSlot("body") == nil, true)

	_, err = a.UnequipToInventory("mail-1")
	if !errors.Is(err, ErrNotEquipped) {
		t.Errorf("err = %v, want %v", err, ErrNotEquipped)
	}
}

func TestActorSpec_Validate(t *testing.T) {
	tests := map[string]struct {
		spec    ActorSpec
		expErrs []string
	}{
		"valid": {
			spec: ActorSpec{Name: "Alice", Location: "hall", Health: 10, Inventory: []Item{{Id: "s1", Schema: "longsword"}}},
		},
		"missing fields": {
			spec:    ActorSpec{},
			expErrs: []string{"name is required", "location is required", "health must be positive"},
		},
		"duplicate item across inventory and equipment": {
			spec: ActorSpec{
				Name: "Alice", Location: "hall", Health: 10,
				Inventory: []Item{{Id: "s1", Schema: "longsword"}},
				Equipment: map[string]Item{"main-hand": {Id: "s1", Schema: "longsword"}},
			},
			expErrs: []string{`duplicate item "s1"`},
		},
		"item without schema": {
			spec:    ActorSpec{Name: "Alice", Location: "hall", Health: 10, Inventory: []Item{{Id: "s1"}}},
			expErrs: []string{"need id and schema"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			err := tt.spec.Validate()
			if len(tt.expErrs) == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected errors %v, got nil", tt.expErrs)
			}
			for _, e := range tt.expErrs {
				if !strings.Contains(err.Error(), e) {
					t.Errorf("error %q does not contain %q", err.Error(), e)
				}
			}
		})
	}
}

func TestNewActorFromSpec(t *testing.T) {
	a := NewActorFromSpec("alice", &ActorSpec{
		Name: "Alice", Location: "hall", Health: 12, Energy: 30, Agility: 4,
		Inventory: []Item{{Id: "s1", Schema: "longsword"}},
		Equipment: map[string]Item{"body": {Id: "m1", Schema: "chainmail"}},
	})

	testutil.AssertEqual(t, "health", a.Vitals.Health, 12)
	testutil.AssertEqual(t, "max health", a.Vitals.MaxHealth, 12)
	testutil.AssertEqual(t, "energy", a.Vitals.Energy, 30.0)
	testutil.AssertEqual(t, "agility", a.Agility, 4)
	testutil.AssertEqual(t, "inventory", len(a.Inventory.Items), 1)
	testutil.AssertEqual(t, "body", a.Equipment.GetSlot("body").Schema, "chainmail")
}
