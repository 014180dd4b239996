package game

// Group is a voluntary party of actors.
// The owner is always a member; an actor is never both invited and a member.
type Group struct {
	Id          string `json:"id"`
	Owner       string `json:"owner"`
	Members     *IdSet `json:"members"`
	Invitations *IdSet `json:"invitations"`
}

// NewGroup creates a group with owner as its sole member.
func NewGroup(id, owner string) *Group {
	return &Group{
		Id:          id,
		Owner:       owner,
		Members:     NewIdSet(owner),
		Invitations: NewIdSet(),
	}
}

// IsOwner reports whether actorID owns the group.
func (g *Group) IsOwner(actorID string) bool {
	return g.Owner == actorID
}
