package game

import (
	"fmt"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-mud-rules/internal/storage"
)

// NewWorldFromStores builds a world from loaded place and actor assets.
// Every exit and actor location must name a known place.
func NewWorldFromStores(places storage.Storer[*PlaceSpec], actors storage.Storer[*ActorSpec], opts ...WorldOpt) (*World, error) {
	w := NewWorld(opts...)
	el := errors.NewErrorList()

	placeSpecs := places.GetAll()
	for id, spec := range placeSpecs {
		el.Add(w.AddPlace(NewPlaceFromSpec(id, spec)))
	}
	for id, spec := range placeSpecs {
		for dir, to := range spec.Exits {
			if w.Place(to) == nil {
				el.Add(fmt.Errorf("place %q: exit %q: %w: %s", id, dir, ErrPlaceNotFound, to))
			}
		}
	}

	for id, spec := range actors.GetAll() {
		if w.Place(spec.Location) == nil {
			el.Add(fmt.Errorf("actor %q: %w: %s", id, ErrPlaceNotFound, spec.Location))
			continue
		}
		el.Add(w.AddActor(NewActorFromSpec(id, spec)))
	}

	if err := el.Err(); err != nil {
		return nil, err
	}
	return w, nil
}
