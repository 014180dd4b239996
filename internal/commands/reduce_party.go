package commands

import (
	"github.com/pixil98/go-mud-rules/internal/game"
)

// DisbandPayload reports who a disbanded party held. The sets are the
// party's own and must not be retained or modified.
type DisbandPayload struct {
	Party       string      `json:"party"`
	Owner       string      `json:"owner"`
	Members     *game.IdSet `json:"members"`
	Invitations *game.IdSet `json:"invitations"`
}

func partyLayers[A Args](t CommandType, guards ...Layer) []Layer {
	return append([]Layer{withWorldState, withActor, withType[A](t)}, guards...)
}

func acceptOwner(r *Resolution) string { return argsOf[*PartyAcceptArgs](r).Owner }
func rejectOwner(r *Resolution) string { return argsOf[*PartyRejectArgs](r).Owner }

func partyInviteReducer() Handler {
	return chain(func(r *Resolution) error {
		invitee := argsOf[*PartyInviteArgs](r).Invitee
		g, created, err := r.Ctx.Parties().Invite(r.Actor.Id, invitee)
		if err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		if created {
			r.event(EventPartyCreated, PartyPayload{Party: g.Id, Owner: g.Owner})
		}
		r.event(EventPartyInvited, PartyPayload{Party: g.Id, Owner: g.Owner, Member: invitee})
		return nil
	}, partyLayers[*PartyInviteArgs](TypePartyInvite,
		withOwnParty(false),
		withOwner(ownParty, actingActor),
		withPrecondition(func(r *Resolution) error {
			invitee := argsOf[*PartyInviteArgs](r).Invitee
			if r.Ctx.World().Actor(invitee) == nil {
				return reject(CodeTargetNotFound, "actor %q not found", invitee)
			}
			return nil
		}),
	)...)
}

// partyAcceptReducer joins the named owner's party. Accepting a party the
// actor already belongs to declares nothing.
func partyAcceptReducer() Handler {
	return chain(func(r *Resolution) error {
		g, joined, err := r.Ctx.Parties().Accept(r.Actor.Id, acceptOwner(r))
		if err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		if joined {
			r.event(EventPartyJoined, PartyPayload{Party: g.Id, Owner: g.Owner, Member: r.Actor.Id})
		}
		return nil
	}, partyLayers[*PartyAcceptArgs](TypePartyAccept,
		withCounterpartParty(acceptOwner),
		withOwner(counterpartParty, acceptOwner),
	)...)
}

func partyRejectReducer() Handler {
	return chain(func(r *Resolution) error {
		g, err := r.Ctx.Parties().Reject(r.Actor.Id, rejectOwner(r))
		if err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		r.event(EventPartyRejected, PartyPayload{Party: g.Id, Owner: g.Owner, Member: r.Actor.Id})
		return nil
	}, partyLayers[*PartyRejectArgs](TypePartyReject,
		withCounterpartParty(rejectOwner),
		withOwner(counterpartParty, rejectOwner),
	)...)
}

func partyLeaveReducer() Handler {
	return chain(func(r *Resolution) error {
		d, err := r.Ctx.Parties().Leave(r.Actor.Id)
		if err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		g := d.Group
		r.event(EventPartyLeft, PartyPayload{Party: g.Id, Owner: g.Owner, Member: r.Actor.Id})
		switch {
		case d.Disbanded:
			r.event(EventPartyDisbanded, DisbandPayload{Party: g.Id, Owner: g.Owner, Members: d.FormerMembers, Invitations: d.FormerInvitations})
		case d.NewOwner != "":
			r.event(EventPartyOwnerChanged, PartyPayload{Party: g.Id, Owner: d.NewOwner})
		}
		return nil
	}, partyLayers[*PartyLeaveArgs](TypePartyLeave,
		withOwnParty(true),
	)...)
}

func partyKickReducer() Handler {
	return chain(func(r *Resolution) error {
		member := argsOf[*PartyKickArgs](r).Member
		g, err := r.Ctx.Parties().Kick(r.Actor.Id, member)
		if err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		r.event(EventPartyKicked, PartyPayload{Party: g.Id, Owner: g.Owner, Member: member})
		return nil
	}, partyLayers[*PartyKickArgs](TypePartyKick,
		withOwnParty(true),
		withOwner(ownParty, actingActor),
	)...)
}

func partyDisbandReducer() Handler {
	return chain(func(r *Resolution) error {
		g, err := r.Ctx.Parties().Disband(r.Actor.Id)
		if err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		r.event(EventPartyDisbanded, DisbandPayload{Party: g.Id, Owner: g.Owner, Members: g.Members, Invitations: g.Invitations})
		return nil
	}, partyLayers[*PartyDisbandArgs](TypePartyDisband,
		withOwnParty(true),
		withOwner(ownParty, actingActor),
	)...)
}

func partyInspectReducer() Handler {
	return chain(func(r *Resolution) error {
		view, err := r.Ctx.Parties().Inspect(r.Actor.Id)
		if err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		r.event(EventPartyInspected, view)
		return nil
	}, partyLayers[*PartyInspectArgs](TypePartyInspect,
		withOwnParty(true),
	)...)
}
