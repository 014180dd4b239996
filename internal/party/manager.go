package party

import (
	"fmt"

	"github.com/pixil98/go-mud-rules/internal/game"
)

// SuccessorFunc picks the next owner of a group whose owner just left.
// It is called after the owner was removed and must return a member.
type SuccessorFunc func(g *game.Group) string

// FirstMember hands ownership to the longest-standing remaining member.
func FirstMember(g *game.Group) string {
	id, _ := g.Members.First()
	return id
}

// Manager enforces party rules over the groups stored in a world.
type Manager struct {
	world     *game.World
	successor SuccessorFunc
}

// ManagerOpt configures a Manager.
type ManagerOpt func(*Manager)

// WithSuccessor replaces the ownership transfer policy.
func WithSuccessor(fn SuccessorFunc) ManagerOpt {
	return func(m *Manager) {
		m.successor = fn
	}
}

func NewManager(w *game.World, opts ...ManagerOpt) *Manager {
	m := &Manager{world: w, successor: FirstMember}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Departure describes the result of a member leaving.
type Departure struct {
	Group     *game.Group
	Disbanded bool
	// NewOwner is set when ownership moved.
	NewOwner string
	// FormerMembers and FormerInvitations are set on disband. They hold who
	// belonged to or was invited into the party before it dissolved.
	FormerMembers     *game.IdSet
	FormerInvitations *game.IdSet
}

// View is what a member may see of their party.
type View struct {
	Id      string      `json:"id"`
	Owner   string      `json:"owner"`
	Members *game.IdSet `json:"members"`
	// Invitations is only shown to the owner.
	Invitations *game.IdSet `json:"invitations,omitempty"`
}

// PartyOf returns the group an actor belongs to.
func (m *Manager) PartyOf(actorID string) (*game.Group, error) {
	a := m.world.Actor(actorID)
	if a == nil {
		return nil, fmt.Errorf("%w: %s", game.ErrActorNotFound, actorID)
	}
	if a.Party == "" {
		return nil, ErrNoParty
	}
	g := m.world.Group(a.Party)
	if g == nil {
		return nil, fmt.Errorf("%w: %s", ErrDanglingParty, a.Party)
	}
	return g, nil
}

// OwnedBy returns the group owned by ownerID.
func (m *Manager) OwnedBy(ownerID string) (*game.Group, error) {
	g, err := m.PartyOf(ownerID)
	if err != nil {
		return nil, err
	}
	if !g.IsOwner(ownerID) {
		return nil, ErrNotOwner
	}
	return g, nil
}

// Invite records an invitation from ownerID to inviteeID, founding a party
// owned by the inviter if it has none. created reports a new party.
func (m *Manager) Invite(ownerID, inviteeID string) (g *game.Group, created bool, err error) {
	owner := m.world.Actor(ownerID)
	if owner == nil {
		return nil, false, fmt.Errorf("%w: %s", game.ErrActorNotFound, ownerID)
	}
	invitee := m.world.Actor(inviteeID)
	if invitee == nil {
		return nil, false, fmt.Errorf("%w: %s", game.ErrActorNotFound, inviteeID)
	}
	if ownerID == inviteeID {
		return nil, false, ErrSelf
	}

	if owner.Party != "" {
		if g, err = m.OwnedBy(ownerID); err != nil {
			return nil, false, err
		}
	}
	if g != nil && g.Members.Has(inviteeID) {
		return nil, false, ErrAlreadyMember
	}
	if invitee.Party != "" {
		return nil, false, ErrAlreadyInParty
	}
	if g != nil && g.Invitations.Has(inviteeID) {
		return nil, false, ErrAlreadyInvited
	}

	if g == nil {
		g = game.NewGroup(m.world.NewID(), ownerID)
		if err := m.world.AddGroup(g); err != nil {
			return nil, false, err
		}
		owner.Party = g.Id
		created = true
	}
	g.Invitations.Add(inviteeID)
	return g, created, nil
}

// Accept joins the party owned by ownerID. Accepting a party the actor
// already belongs to succeeds with joined false.
func (m *Manager) Accept(actorID, ownerID string) (g *game.Group, joined bool, err error) {
	a := m.world.Actor(actorID)
	if a == nil {
		return nil, false, fmt.Errorf("%w: %s", game.ErrActorNotFound, actorID)
	}
	if g, err = m.OwnedBy(ownerID); err != nil {
		return nil, false, err
	}
	if g.Members.Has(actorID) {
		return g, false, nil
	}
	if !g.Invitations.Has(actorID) {
		return nil, false, ErrNoInvitation
	}
	if a.Party != "" {
		return nil, false, ErrAlreadyInParty
	}

	g.Invitations.Remove(actorID)
	g.Members.Add(actorID)
	a.Party = g.Id
	return g, true, nil
}

// Reject declines an invitation from ownerID.
func (m *Manager) Reject(actorID, ownerID string) (*game.Group, error) {
	if m.world.Actor(actorID) == nil {
		return nil, fmt.Errorf("%w: %s", game.ErrActorNotFound, actorID)
	}
	g, err := m.OwnedBy(ownerID)
	if err != nil {
		return nil, err
	}
	if !g.Invitations.Remove(actorID) {
		return nil, ErrNoInvitation
	}
	return g, nil
}

// Leave removes an actor from its party. The last member out disbands it;
// an owner leaving others behind hands ownership to the successor.
func (m *Manager) Leave(actorID string) (Departure, error) {
	g, err := m.PartyOf(actorID)
	if err != nil {
		return Departure{}, err
	}

	g.Members.Remove(actorID)
	m.world.Actor(actorID).Party = ""

	if g.Members.Len() == 0 {
		d := Departure{
			Group:             g,
			Disbanded:         true,
			FormerMembers:     game.NewIdSet(actorID),
			FormerInvitations: g.Invitations,
		}
		g.Invitations = game.NewIdSet()
		m.world.RemoveGroup(g.Id)
		return d, nil
	}

	d := Departure{Group: g}
	if g.IsOwner(actorID) {
		next := m.successor(g)
		if !g.Members.Has(next) {
			next = FirstMember(g)
		}
		g.Owner = next
		d.NewOwner = next
	}
	return d, nil
}

// Kick removes another member. It never disbands the party since the
// owner stays.
func (m *Manager) Kick(ownerID, targetID string) (*game.Group, error) {
	g, err := m.OwnedBy(ownerID)
	if err != nil {
		return nil, err
	}
	if targetID == ownerID {
		return nil, ErrSelf
	}
	if !g.Members.Has(targetID) {
		return nil, ErrNotMember
	}

	g.Members.Remove(targetID)
	if a := m.world.Actor(targetID); a != nil {
		a.Party = ""
	}
	return g, nil
}

// Disband dissolves the party owned by ownerID. The returned group keeps
// its member and invitation sets so the caller can report who was affected.
func (m *Manager) Disband(ownerID string) (*game.Group, error) {
	g, err := m.OwnedBy(ownerID)
	if err != nil {
		return nil, err
	}
	for _, id := range g.Members.Ids() {
		if a := m.world.Actor(id); a != nil && a.Party == g.Id {
			a.Party = ""
		}
	}
	m.world.RemoveGroup(g.Id)
	return g, nil
}

// Inspect shows an actor their party.
func (m *Manager) Inspect(actorID string) (View, error) {
	g, err := m.PartyOf(actorID)
	if err != nil {
		return View{}, err
	}
	v := View{Id: g.Id, Owner: g.Owner, Members: g.Members}
	if g.IsOwner(actorID) {
		v.Invitations = g.Invitations
	}
	return v, nil
}
