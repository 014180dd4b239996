package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/pixil98/go-mud-rules/internal/combat"
)

// Processor reduces commands against a Context, one reducer per type.
type Processor struct {
	reducers map[CommandType]Handler
}

// NewProcessor creates a processor with every built-in reducer registered.
func NewProcessor() *Processor {
	p := &Processor{reducers: make(map[CommandType]Handler)}

	for t, h := range map[CommandType]Handler{
		TypeAttack:  attackReducer(),
		TypeStrike:  strikeReducer(),
		TypeRange:   rangeReducer(),
		TypeDefend:  defendReducer(),
		TypeRetreat: retreatReducer(),
		TypeMove:    moveReducer(),
		TypeTarget:  targetReducer(),
		TypeDone:    doneReducer(),
		TypeEquip:   equipReducer(),
		TypeUnequip: unequipReducer(),

		TypeEngage:        engageReducer(),
		TypeSessionCreate: sessionCreateReducer(),
		TypeSessionJoin:   sessionJoinReducer(),
		TypeSessionLeave:  sessionLeaveReducer(),
		TypeSessionStart:  sessionTransitionReducer[*SessionStartArgs](TypeSessionStart, EventSessionStarted, (*combat.Session).Start),
		TypeSessionPause:  sessionTransitionReducer[*SessionPauseArgs](TypeSessionPause, EventSessionPaused, (*combat.Session).Pause),
		TypeSessionResume: sessionTransitionReducer[*SessionResumeArgs](TypeSessionResume, EventSessionResumed, (*combat.Session).Resume),

		TypePartyInvite:  partyInviteReducer(),
		TypePartyAccept:  partyAcceptReducer(),
		TypePartyReject:  partyRejectReducer(),
		TypePartyLeave:   partyLeaveReducer(),
		TypePartyKick:    partyKickReducer(),
		TypePartyDisband: partyDisbandReducer(),
		TypePartyInspect: partyInspectReducer(),
	} {
		p.reducers[t] = h
	}

	return p
}

// Register adds or replaces the reducer for a command type.
func (p *Processor) Register(t CommandType, h Handler) error {
	if t == "" {
		return fmt.Errorf("command type cannot be empty")
	}
	if h == nil {
		return fmt.Errorf("reducer for %s cannot be nil", t)
	}
	p.reducers[t] = h
	return nil
}

// Process reduces one command. Failures are declared on the context,
// which is returned either way. A failed command leaves no events behind.
func (p *Processor) Process(pc *Context, cmd Command) *Context {
	h, ok := p.reducers[cmd.Type]
	if !ok {
		slog.Debug("command rejected", "command", cmd.Id, "type", cmd.Type, "code", CodeInvalidSyntax)
		return pc.Failed(cmd.Id, CodeInvalidSyntax, fmt.Sprintf("%s: %q", ErrUnknownType, cmd.Type))
	}

	err := h(&Resolution{Ctx: pc, Cmd: cmd})
	if err == nil {
		return pc
	}

	var r *Rejection
	if !errors.As(err, &r) {
		r = &Rejection{Code: codeFor(err, CodeInvariantViolation), Message: err.Error()}
	}
	slog.Debug("command rejected", "command", cmd.Id, "type", cmd.Type, "code", r.Code, "error", r.Message)
	pc.discard(cmd.Id)
	return pc.Failed(cmd.Id, r.Code, r.Message)
}

// ProcessAll reduces commands in order, continuing past failures.
func (p *Processor) ProcessAll(pc *Context, cmds ...Command) *Context {
	for _, cmd := range cmds {
		p.Process(pc, cmd)
	}
	return pc
}
