package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
)

// EntityKind classifies what occupies a place.
type EntityKind string

const (
	EntityActor EntityKind = "actor"
	EntityItem  EntityKind = "item"
)

// Presence describes an entity present in a place.
type Presence struct {
	Kind    EntityKind `json:"kind"`
	Visible bool       `json:"visible"`
}

// Exit leads from one place to another.
type Exit struct {
	PlaceId string `json:"place"`
}

// Place is a location in the world.
type Place struct {
	Id       string              `json:"id"`
	Name     string              `json:"name"`
	Exits    map[string]Exit     `json:"exits,omitempty"`
	Entities map[string]Presence `json:"entities,omitempty"`
}

// NewPlace creates a place with no exits and nobody present.
func NewPlace(id, name string) *Place {
	return &Place{
		Id:       id,
		Name:     name,
		Exits:    make(map[string]Exit),
		Entities: make(map[string]Presence),
	}
}

// Exit returns the destination in the given direction.
func (p *Place) Exit(direction string) (string, bool) {
	e, ok := p.Exits[direction]
	return e.PlaceId, ok
}

// Materialize records an entity as present.
func (p *Place) Materialize(id string, kind EntityKind) {
	if p.Entities == nil {
		p.Entities = make(map[string]Presence)
	}
	p.Entities[id] = Presence{Kind: kind, Visible: true}
}

// Dematerialize removes an entity's presence.
func (p *Place) Dematerialize(id string) {
	delete(p.Entities, id)
}

// Contains reports whether the entity is present.
func (p *Place) Contains(id string) bool {
	_, ok := p.Entities[id]
	return ok
}

// PlaceSpec is the asset definition a place is seeded from.
type PlaceSpec struct {
	Name  string            `json:"name"`
	Exits map[string]string `json:"exits,omitempty"`
}

func (s *PlaceSpec) Validate() error {
	el := errors.NewErrorList()

	if s.Name == "" {
		el.Add(fmt.Errorf("name is required"))
	}
	for dir, to := range s.Exits {
		if to == "" {
			el.Add(fmt.Errorf("exit %q has no destination", dir))
		}
	}

	return el.Err()
}

// NewPlaceFromSpec builds a live place.
func NewPlaceFromSpec(id string, s *PlaceSpec) *Place {
	p := NewPlace(id, s.Name)
	for dir, to := range s.Exits {
		p.Exits[dir] = Exit{PlaceId: to}
	}
	return p
}
