package commands

import (
	"errors"

	"github.com/pixil98/go-mud-rules/internal/combat"
	"github.com/pixil98/go-mud-rules/internal/game"
	"github.com/pixil98/go-mud-rules/internal/party"
)

// Resolution carries one command through its reducer along with what the
// layers resolved for the core effect.
type Resolution struct {
	Ctx *Context
	Cmd Command

	// Actor is nil for system commands.
	Actor     *game.Actor
	Session   *combat.Session
	Combatant *combat.Combatant
	// Party is the acting actor's own party.
	Party *game.Group
	// Counterpart is the party of another actor the command names.
	Counterpart *game.Group
}

// Handler is a reducer stage. A non-nil error halts the chain.
type Handler func(r *Resolution) error

// Layer wraps a handler with a guard.
type Layer func(next Handler) Handler

// chain composes layers around a core effect, first layer outermost.
func chain(core Handler, layers ...Layer) Handler {
	h := core
	for i := len(layers) - 1; i >= 0; i-- {
		h = layers[i](h)
	}
	return h
}

func isSystem(actorID string) bool {
	return actorID == "" || actorID == game.SystemActorID
}

// withWorldState checks that everything the command refers to exists.
// System actors skip the actor checks.
func withWorldState(next Handler) Handler {
	return func(r *Resolution) error {
		w := r.Ctx.World()
		if !isSystem(r.Cmd.Actor) {
			a := w.Actor(r.Cmd.Actor)
			if a == nil {
				return reject(CodeActorNotFound, "actor %q not found", r.Cmd.Actor)
			}
			if w.Place(a.Location) == nil {
				return reject(CodePlaceNotFound, "actor %q is nowhere: %q", a.Id, a.Location)
			}
			r.Actor = a
		}
		if r.Cmd.Location != "" && w.Place(r.Cmd.Location) == nil {
			return reject(CodePlaceNotFound, "place %q not found", r.Cmd.Location)
		}
		if r.Cmd.Session != "" && w.Session(r.Cmd.Session) == nil {
			return reject(CodeSessionNotFound, "session %q not found", r.Cmd.Session)
		}
		return next(r)
	}
}

// withActor rejects system commands for reducers that need someone acting.
func withActor(next Handler) Handler {
	return func(r *Resolution) error {
		if r.Actor == nil {
			return reject(CodeActorNotFound, "%s needs an acting actor", r.Cmd.Type)
		}
		return next(r)
	}
}

// withType checks the command is tagged t and carries valid args of type A.
func withType[A Args](t CommandType) Layer {
	return func(next Handler) Handler {
		return func(r *Resolution) error {
			if r.Cmd.Type != t {
				return reject(CodeInvalidSyntax, "command type %q does not match %s", r.Cmd.Type, t)
			}
			args, ok := r.Cmd.Args.(A)
			if !ok {
				return reject(CodeInvalidSyntax, "%s needs %T args, got %T", t, *new(A), r.Cmd.Args)
			}
			if err := args.Validate(); err != nil {
				return reject(CodeInvalidSyntax, "%s: %v", t, err)
			}
			return next(r)
		}
	}
}

// argsOf returns the args withType already checked.
func argsOf[A Args](r *Resolution) A {
	return r.Cmd.Args.(A)
}

// withExistingCombatSession requires the actor to fight in the referenced
// session.
func withExistingCombatSession(next Handler) Handler {
	return func(r *Resolution) error {
		if r.Cmd.Session == "" {
			return reject(CodeSessionNotFound, "%s needs a session", r.Cmd.Type)
		}
		return resolveSession(r, next)
	}
}

// withOptionalCombatSession resolves the session when one is referenced.
func withOptionalCombatSession(next Handler) Handler {
	return func(r *Resolution) error {
		if r.Cmd.Session == "" {
			if r.Actor != nil && r.Actor.Session != "" {
				return reject(CodeAlreadyInSession, "%s is fighting in session %q", r.Actor.Id, r.Actor.Session)
			}
			return next(r)
		}
		return resolveSession(r, next)
	}
}

func resolveSession(r *Resolution, next Handler) error {
	s, err := r.Ctx.Session(r.Cmd.Session)
	if err != nil {
		return rejectErr(err, CodeSessionNotFound)
	}
	if r.Actor == nil {
		r.Session = s
		return next(r)
	}
	if !s.Has(r.Actor.Id) {
		return reject(CodeForbidden, "%s is not fighting in session %q", r.Actor.Id, s.Id())
	}
	if r.Actor.Session != s.Id() {
		return reject(CodeInvariantViolation, "%s is seated in %q but points at %q", r.Actor.Id, s.Id(), r.Actor.Session)
	}
	c, err := s.Combatant(r.Actor.Id)
	if err != nil {
		return rejectErr(err, CodeInvariantViolation)
	}
	r.Session = s
	r.Combatant = c
	return next(r)
}

// withTurn lets only the current combatant of a running session act.
// Commands outside a session pass through.
func withTurn(next Handler) Handler {
	return func(r *Resolution) error {
		if r.Session == nil || r.Actor == nil {
			return next(r)
		}
		if err := r.Session.CheckTurn(r.Actor.Id); err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		return next(r)
	}
}

// withSameSession requires the actor named by target to fight in the
// actor's session. An optional target may be absent.
func withSameSession(optional bool, target func(r *Resolution) string) Layer {
	return func(next Handler) Handler {
		return func(r *Resolution) error {
			id := target(r)
			if id == "" {
				if optional {
					return next(r)
				}
				return reject(CodeInvalidSyntax, "%s needs a target", r.Cmd.Type)
			}
			if r.Ctx.World().Actor(id) == nil {
				return reject(CodeTargetNotFound, "target %q not found", id)
			}
			if r.Session == nil || !r.Session.Has(id) {
				return reject(CodeTargetNotInSession, "target %q is not in this session", id)
			}
			return next(r)
		}
	}
}

// withPrecondition runs a check that must pass before anything changes.
func withPrecondition(check func(r *Resolution) error) Layer {
	return func(next Handler) Handler {
		return func(r *Resolution) error {
			if err := check(r); err != nil {
				return rejectErr(err, CodePreconditionFailed)
			}
			return next(r)
		}
	}
}

// withOwnParty resolves the actor's party. A required party that is
// missing is GROUP_NOT_FOUND.
func withOwnParty(required bool) Layer {
	return func(next Handler) Handler {
		return func(r *Resolution) error {
			g, err := r.Ctx.Parties().PartyOf(r.Actor.Id)
			switch {
			case errors.Is(err, party.ErrNoParty) && !required:
				return next(r)
			case err != nil:
				return rejectErr(err, CodeGroupNotFound)
			}
			r.Party = g
			return next(r)
		}
	}
}

// withCounterpartParty resolves the party of another actor the command names.
func withCounterpartParty(actorID func(r *Resolution) string) Layer {
	return func(next Handler) Handler {
		return func(r *Resolution) error {
			id := actorID(r)
			if r.Ctx.World().Actor(id) == nil {
				return reject(CodeTargetNotFound, "actor %q not found", id)
			}
			g, err := r.Ctx.Parties().PartyOf(id)
			if err != nil {
				return rejectErr(err, CodeGroupNotFound)
			}
			r.Counterpart = g
			return next(r)
		}
	}
}

// withOwner requires owner to own the group selected by group. A nil group
// passes, for reducers that found one.
func withOwner(group func(r *Resolution) *game.Group, owner func(r *Resolution) string) Layer {
	return func(next Handler) Handler {
		return func(r *Resolution) error {
			g := group(r)
			if g == nil {
				return next(r)
			}
			if id := owner(r); !g.IsOwner(id) {
				return reject(CodeForbidden, "%s does not own party %q", id, g.Id)
			}
			return next(r)
		}
	}
}

func ownParty(r *Resolution) *game.Group         { return r.Party }
func counterpartParty(r *Resolution) *game.Group { return r.Counterpart }
func actingActor(r *Resolution) string           { return r.Actor.Id }
