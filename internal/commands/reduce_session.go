package commands

import (
	"github.com/pixil98/go-mud-rules/internal/combat"
	"github.com/pixil98/go-mud-rules/internal/game"
)

// sessionEvent declares a session-scoped event located at the arena.
func (r *Resolution) sessionEvent(t EventType, s *combat.Session, actor string, payload any) {
	r.Ctx.DeclareEvent(Event{
		Type:     t,
		Trace:    r.Cmd.Id,
		Actor:    actor,
		Location: s.Location(),
		Payload:  payload,
	})
}

func (r *Resolution) actorID() string {
	if r.Actor == nil {
		return ""
	}
	return r.Actor.Id
}

func engageTarget(r *Resolution) string { return argsOf[*EngageArgs](r).Target }

// engageReducer opens a fight: a new session at the actor's location with
// the actor on BRAVO and the target on ALPHA, started at once with the
// actor holding the opening turn.
func engageReducer() Handler {
	return chain(func(r *Resolution) error {
		target := engageTarget(r)
		s, err := r.Ctx.CreateSession(r.Actor.Location)
		if err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		r.sessionEvent(EventSessionCreated, s, r.Actor.Id, SessionPayload{Session: s.Id(), Location: s.Location()})

		for _, seat := range []struct {
			id   string
			team game.Team
		}{{r.Actor.Id, game.TeamBravo}, {target, game.TeamAlpha}} {
			if err := s.AddCombatant(seat.id, seat.team); err != nil {
				return rejectErr(err, CodePreconditionFailed)
			}
			r.sessionEvent(EventCombatJoined, s, seat.id, CombatantPayload{Session: s.Id(), Actor: seat.id, Team: string(seat.team)})
		}

		if err := s.StartOpenedBy(r.Actor.Id); err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		r.sessionEvent(EventSessionStarted, s, r.Actor.Id, SessionPayload{Session: s.Id(), Round: s.Round(), Current: s.Current()})
		return nil
	},
		withWorldState,
		withActor,
		withType[*EngageArgs](TypeEngage),
		withPrecondition(func(r *Resolution) error {
			id := engageTarget(r)
			target := r.Ctx.World().Actor(id)
			switch {
			case target == nil:
				return reject(CodeTargetNotFound, "target %q not found", id)
			case id == r.Actor.Id:
				return reject(CodeInvalidTarget, "%s cannot engage themselves", id)
			case target.Location != r.Actor.Location:
				return reject(CodeInvalidTarget, "%s is not here", id)
			case r.Actor.Session != "":
				return reject(CodeAlreadyInSession, "%s is already fighting in %q", r.Actor.Id, r.Actor.Session)
			case target.Session != "":
				return reject(CodeAlreadyInSession, "%s is already fighting in %q", id, target.Session)
			}
			return nil
		}),
	)
}

func sessionCreateReducer() Handler {
	return chain(func(r *Resolution) error {
		location := r.Cmd.Location
		if location == "" && r.Actor != nil {
			location = r.Actor.Location
		}
		if location == "" {
			return reject(CodeInvalidSyntax, "%s needs a location", r.Cmd.Type)
		}
		s, err := r.Ctx.CreateSession(location)
		if err != nil {
			return rejectErr(err, CodePlaceNotFound)
		}
		r.sessionEvent(EventSessionCreated, s, r.actorID(), SessionPayload{Session: s.Id(), Location: s.Location()})
		return nil
	},
		withWorldState,
		withType[*SessionCreateArgs](TypeSessionCreate),
	)
}

// withSelfOrSystem lets actors manage only their own seat. System commands
// may name anyone.
func withSelfOrSystem(named func(r *Resolution) string) Layer {
	return func(next Handler) Handler {
		return func(r *Resolution) error {
			id := named(r)
			if r.Actor == nil {
				if id == "" {
					return reject(CodeInvalidSyntax, "%s from the system needs an actor", r.Cmd.Type)
				}
				return next(r)
			}
			if id != "" && id != r.Actor.Id {
				return reject(CodeForbidden, "%s may not seat %s", r.Actor.Id, id)
			}
			return next(r)
		}
	}
}

func seatOf(named string, r *Resolution) string {
	if named != "" {
		return named
	}
	return r.actorID()
}

func joinActor(r *Resolution) string  { return argsOf[*SessionJoinArgs](r).Actor }
func leaveActor(r *Resolution) string { return argsOf[*SessionLeaveArgs](r).Actor }

// withReferencedSession opens the session without requiring the actor to
// be seated in it.
func withReferencedSession(next Handler) Handler {
	return func(r *Resolution) error {
		if r.Cmd.Session == "" {
			return reject(CodeSessionNotFound, "%s needs a session", r.Cmd.Type)
		}
		s, err := r.Ctx.Session(r.Cmd.Session)
		if err != nil {
			return rejectErr(err, CodeSessionNotFound)
		}
		r.Session = s
		return next(r)
	}
}

func sessionJoinReducer() Handler {
	return chain(func(r *Resolution) error {
		args := argsOf[*SessionJoinArgs](r)
		id := seatOf(args.Actor, r)
		if r.Ctx.World().Actor(id) == nil {
			return reject(CodeTargetNotFound, "actor %q not found", id)
		}
		if err := r.Session.AddCombatant(id, args.Team); err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		r.sessionEvent(EventCombatJoined, r.Session, id, CombatantPayload{Session: r.Session.Id(), Actor: id, Team: string(args.Team)})
		return nil
	},
		withWorldState,
		withType[*SessionJoinArgs](TypeSessionJoin),
		withSelfOrSystem(joinActor),
		withReferencedSession,
	)
}

func sessionLeaveReducer() Handler {
	return chain(func(r *Resolution) error {
		id := seatOf(leaveActor(r), r)
		if err := r.Session.RemoveCombatant(id); err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		r.sessionEvent(EventCombatLeft, r.Session, id, CombatantPayload{Session: r.Session.Id(), Actor: id})
		return nil
	},
		withWorldState,
		withType[*SessionLeaveArgs](TypeSessionLeave),
		withSelfOrSystem(leaveActor),
		withReferencedSession,
	)
}

// withSeatedOrSystem restricts session control to its combatants and the
// system.
func withSeatedOrSystem(next Handler) Handler {
	return func(r *Resolution) error {
		if r.Actor != nil && !r.Session.Has(r.Actor.Id) {
			return reject(CodeForbidden, "%s is not fighting in session %q", r.Actor.Id, r.Session.Id())
		}
		return next(r)
	}
}

func sessionTransitionReducer[A Args](t CommandType, ev EventType, transition func(s *combat.Session) error) Handler {
	return chain(func(r *Resolution) error {
		if err := transition(r.Session); err != nil {
			return rejectErr(err, CodeInvalidTransition)
		}
		r.sessionEvent(ev, r.Session, r.actorID(), SessionPayload{
			Session: r.Session.Id(),
			Round:   r.Session.Round(),
			Current: r.Session.Current(),
		})
		return nil
	},
		withWorldState,
		withType[A](t),
		withReferencedSession,
		withSeatedOrSystem,
	)
}
