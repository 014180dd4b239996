package combat

import (
	"fmt"

	"github.com/pixil98/go-mud-rules/internal/game"
	"github.com/pixil98/go-mud-rules/internal/schema"
)

var testCatalog = schema.Static{
	Weapons: map[string]*schema.Weapon{
		"longsword": {Name: "Longsword", Kind: schema.WeaponMelee, SetupTime: 1, Damage: 4},
		"spear":     {Name: "Spear", Kind: schema.WeaponMelee, SetupTime: 1, Damage: 3, Reach: 3},
		"shortbow":  {Name: "Shortbow", Kind: schema.WeaponRanged, SetupTime: 2, Damage: 3, Range: 10},
	},
	Armors: map[string]*schema.Armor{
		"chainmail": {Name: "Chainmail", Slot: "body", SetupTime: 4, Defense: 1, APPenalty: 1},
	},
}

// fatalHelper is satisfied by both *testing.T and *rapid.T.
type fatalHelper interface {
	Helper()
	Fatalf(format string, args ...any)
}

type fighter struct {
	id      string
	team    game.Team
	agility int
	health  int
	wield   string
	wear    string
}

// newArena seats the fighters in a pending session at "pit".
func newArena(t fatalHelper, fighters ...fighter) (*game.World, *Session) {
	t.Helper()

	n := 0
	w := game.NewWorld(game.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	}))
	if err := w.AddPlace(game.NewPlace("pit", "The Pit")); err != nil {
		t.Fatalf("adding place: %v", err)
	}

	for _, f := range fighters {
		a := game.NewActor(f.id, f.id, "pit")
		a.Agility = f.agility
		hp := f.health
		if hp == 0 {
			hp = 20
		}
		a.Vitals = game.Vitals{Health: hp, MaxHealth: hp, Energy: 20, MaxEnergy: 20}
		if f.wield != "" {
			a.Equipment.Slots[schema.SlotMainHand] = &game.Item{Id: f.id + "-weapon", Schema: f.wield}
		}
		if f.wear != "" {
			a.Equipment.Slots["body"] = &game.Item{Id: f.id + "-armor", Schema: f.wear}
		}
		if err := w.AddActor(a); err != nil {
			t.Fatalf("adding actor: %v", err)
		}
	}

	s, err := Create(w, testCatalog, "pit")
	if err != nil {
		t.Fatalf("creating session: %v", err)
	}
	for _, f := range fighters {
		if err := s.AddCombatant(f.id, f.team); err != nil {
			t.Fatalf("adding %s: %v", f.id, err)
		}
	}
	return w, s
}

func mustCombatant(t fatalHelper, s *Session, id string) *Combatant {
	t.Helper()
	c, err := s.Combatant(id)
	if err != nil {
		t.Fatalf("combatant %s: %v", id, err)
	}
	return c
}
