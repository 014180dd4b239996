package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-mud-rules/internal/game"
	"github.com/pixil98/go-mud-rules/internal/schema"
	"github.com/pixil98/go-mud-rules/internal/storage"
)

type StorageConfig struct {
	Weapons PathConfig                   `json:"weapons"`
	Armor   PathConfig                   `json:"armor"`
	Places  AssetConfig[*game.PlaceSpec] `json:"places"`
	Actors  AssetConfig[*game.ActorSpec] `json:"actors"`
}

func (c *StorageConfig) BuildCatalog() (*schema.Library, error) {
	lib, err := schema.LoadLibrary(c.Weapons.Path, c.Armor.Path)
	if err != nil {
		return nil, fmt.Errorf("loading item definitions: %w", err)
	}
	return lib, nil
}

func (c *StorageConfig) BuildWorld() (*game.World, error) {
	places, err := c.Places.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating place store: %w", err)
	}
	actors, err := c.Actors.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating actor store: %w", err)
	}

	w, err := game.NewWorldFromStores(places, actors)
	if err != nil {
		return nil, fmt.Errorf("seeding world: %w", err)
	}
	return w, nil
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Weapons.Validate("weapons"))
	el.Add(c.Armor.Validate("armor"))
	el.Add(c.Places.Validate("places"))
	el.Add(c.Actors.Validate("actors"))
	return el.Err()
}

type PathConfig struct {
	Path string `json:"path"`
}

func (c *PathConfig) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

type AssetConfig[T storage.ValidatingSpec] struct {
	PathConfig
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
