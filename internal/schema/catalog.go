package schema

import (
	_ "embed"
	"fmt"

	"github.com/pixil98/go-mud-rules/internal/storage"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	//go:embed schemas/weapon.schema.json
	weaponSchemaJSON string
	//go:embed schemas/armor.schema.json
	armorSchemaJSON string
)

// Catalog answers schema lookups for item definitions.
type Catalog interface {
	Weapon(id string) (*Weapon, bool)
	Armor(id string) (*Armor, bool)
}

// Library is a Catalog backed by asset stores.
type Library struct {
	weapons storage.Storer[*Weapon]
	armor   storage.Storer[*Armor]
}

func NewLibrary(weapons storage.Storer[*Weapon], armor storage.Storer[*Armor]) *Library {
	return &Library{weapons: weapons, armor: armor}
}

func (l *Library) Weapon(id string) (*Weapon, bool) {
	if l == nil || l.weapons == nil {
		return nil, false
	}
	w := l.weapons.Get(id)
	return w, w != nil
}

func (l *Library) Armor(id string) (*Armor, bool) {
	if l == nil || l.armor == nil {
		return nil, false
	}
	a := l.armor.Get(id)
	return a, a != nil
}

// LoadLibrary reads weapon and armor assets from disk, validating each
// against the embedded JSON schemas.
func LoadLibrary(weaponPath, armorPath string) (*Library, error) {
	weaponSchema, err := jsonschema.CompileString("weapon.schema.json", weaponSchemaJSON)
	if err != nil {
		return nil, fmt.Errorf("compiling weapon schema: %w", err)
	}
	armorSchema, err := jsonschema.CompileString("armor.schema.json", armorSchemaJSON)
	if err != nil {
		return nil, fmt.Errorf("compiling armor schema: %w", err)
	}

	weapons, err := storage.NewFileStore(weaponPath, storage.WithSchema[*Weapon](weaponSchema))
	if err != nil {
		return nil, fmt.Errorf("loading weapons: %w", err)
	}
	armor, err := storage.NewFileStore(armorPath, storage.WithSchema[*Armor](armorSchema))
	if err != nil {
		return nil, fmt.Errorf("loading armor: %w", err)
	}

	return NewLibrary(weapons, armor), nil
}

// Static is an in-memory Catalog, handy for worlds assembled in code.
type Static struct {
	Weapons map[string]*Weapon
	Armors  map[string]*Armor
}

func (s Static) Weapon(id string) (*Weapon, bool) {
	w, ok := s.Weapons[id]
	return w, ok
}

func (s Static) Armor(id string) (*Armor, bool) {
	a, ok := s.Armors[id]
	return a, ok
}
