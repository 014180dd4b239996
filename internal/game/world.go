package game

import (
	"slices"
	"strings"

	"github.com/google/uuid"
)

// World is the mutable aggregate of everything the rules act on.
// It performs no locking: the host must serialize access.
type World struct {
	actors   map[string]*Actor
	places   map[string]*Place
	groups   map[string]*Group
	sessions map[string]*CombatSession

	newID func() string
}

// WorldOpt configures a World.
type WorldOpt func(*World)

// WithIDGenerator replaces the uuid generator used for sessions and groups.
func WithIDGenerator(fn func() string) WorldOpt {
	return func(w *World) {
		w.newID = fn
	}
}

// NewWorld creates an empty world.
func NewWorld(opts ...WorldOpt) *World {
	w := &World{
		actors:   make(map[string]*Actor),
		places:   make(map[string]*Place),
		groups:   make(map[string]*Group),
		sessions: make(map[string]*CombatSession),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewID returns a fresh identifier for a generated entity.
func (w *World) NewID() string {
	return w.newID()
}

// Actor returns the actor with the given id, or nil.
func (w *World) Actor(id string) *Actor {
	return w.actors[id]
}

// Actors returns every actor id in sorted order.
func (w *World) Actors() []string {
	ids := make([]string, 0, len(w.actors))
	for id := range w.actors {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// AddActor registers an actor and makes it present at its location.
func (w *World) AddActor(a *Actor) error {
	if _, exists := w.actors[a.Id]; exists {
		return ErrActorExists
	}
	w.actors[a.Id] = a
	if p := w.places[a.Location]; p != nil {
		p.Materialize(a.Id, EntityActor)
	}
	return nil
}

// Place returns the place with the given id, or nil.
func (w *World) Place(id string) *Place {
	return w.places[id]
}

func (w *World) AddPlace(p *Place) error {
	if _, exists := w.places[p.Id]; exists {
		return ErrPlaceExists
	}
	w.places[p.Id] = p
	return nil
}

// MoveActor relocates an actor, updating presence in both places.
func (w *World) MoveActor(actorID, to string) error {
	a := w.actors[actorID]
	if a == nil {
		return ErrActorNotFound
	}
	dest := w.places[to]
	if dest == nil {
		return ErrPlaceNotFound
	}
	if from := w.places[a.Location]; from != nil {
		from.Dematerialize(actorID)
	}
	a.Location = to
	dest.Materialize(actorID, EntityActor)
	return nil
}

// Group returns the group with the given id, or nil.
func (w *World) Group(id string) *Group {
	return w.groups[id]
}

func (w *World) AddGroup(g *Group) error {
	if _, exists := w.groups[g.Id]; exists {
		return ErrGroupExists
	}
	w.groups[g.Id] = g
	return nil
}

func (w *World) RemoveGroup(id string) {
	delete(w.groups, id)
}

// Groups returns every group sorted by id.
func (w *World) Groups() []*Group {
	out := make([]*Group, 0, len(w.groups))
	for _, g := range w.groups {
		out = append(out, g)
	}
	slices.SortFunc(out, func(a, b *Group) int {
		return strings.Compare(a.Id, b.Id)
	})
	return out
}

// Session returns the combat session with the given id, or nil.
func (w *World) Session(id string) *CombatSession {
	return w.sessions[id]
}

func (w *World) AddSession(s *CombatSession) error {
	if _, exists := w.sessions[s.Id]; exists {
		return ErrSessionExists
	}
	w.sessions[s.Id] = s
	return nil
}

func (w *World) RemoveSession(id string) {
	delete(w.sessions, id)
}

// Sessions returns every session sorted by id.
func (w *World) Sessions() []*CombatSession {
	out := make([]*CombatSession, 0, len(w.sessions))
	for _, s := range w.sessions {
		out = append(out, s)
	}
	slices.SortFunc(out, func(a, b *CombatSession) int {
		return strings.Compare(a.Id, b.Id)
	})
	return out
}

// SessionsAt returns the sessions held at a location, sorted by id.
func (w *World) SessionsAt(location string) []*CombatSession {
	var out []*CombatSession
	for _, s := range w.Sessions() {
		if s.Location == location {
			out = append(out, s)
		}
	}
	return out
}
