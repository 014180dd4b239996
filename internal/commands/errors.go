package commands

import (
	"errors"
	"fmt"

	"github.com/pixil98/go-mud-rules/internal/combat"
	"github.com/pixil98/go-mud-rules/internal/game"
	"github.com/pixil98/go-mud-rules/internal/party"
)

// Code classifies a declared error.
type Code string

const (
	CodeActorNotFound   Code = "ACTOR_NOT_FOUND"
	CodeTargetNotFound  Code = "TARGET_NOT_FOUND"
	CodePlaceNotFound   Code = "PLACE_NOT_FOUND"
	CodeSessionNotFound Code = "SESSION_NOT_FOUND"
	CodeGroupNotFound   Code = "GROUP_NOT_FOUND"
	CodeItemNotFound    Code = "ITEM_NOT_FOUND"

	CodeInvalidTarget      Code = "INVALID_TARGET"
	CodeTargetNotInSession Code = "TARGET_NOT_IN_SESSION"

	CodeForbidden Code = "FORBIDDEN"

	CodePreconditionFailed Code = "PRECONDITION_FAILED"
	CodeNoExit             Code = "NO_EXIT"
	CodeInsufficientAP     Code = "INSUFFICIENT_ACTION_POINTS"
	CodeInsufficientEnergy Code = "INSUFFICIENT_ENERGY"
	CodeNotYourTurn        Code = "NOT_YOUR_TURN"
	CodeSessionNotRunning  Code = "SESSION_NOT_RUNNING"
	CodeInvalidTransition  Code = "INVALID_TRANSITION"
	CodeOutOfReach         Code = "OUT_OF_REACH"
	CodeAlreadyInSession   Code = "ALREADY_IN_SESSION"
	CodeAlreadyInParty     Code = "ALREADY_IN_PARTY"
	CodeAlreadyMember      Code = "ALREADY_MEMBER"
	CodeAlreadyInvited     Code = "ALREADY_INVITED"
	CodeNoInvitation       Code = "NO_INVITATION"
	CodeNotAMember         Code = "NOT_A_MEMBER"
	CodeSlotOccupied       Code = "SLOT_OCCUPIED"
	CodeNotEquipped        Code = "NOT_EQUIPPED"

	CodeInvariantViolation Code = "INVARIANT_VIOLATION"
	CodeInvalidSyntax      Code = "INVALID_SYNTAX"
)

// Kind groups codes by what went wrong.
type Kind string

const (
	KindNotFound           Kind = "not_found"
	KindInvalidTarget      Kind = "invalid_target"
	KindForbidden          Kind = "forbidden"
	KindPreconditionFailed Kind = "precondition_failed"
	KindInvariantViolation Kind = "invariant_violation"
	KindInvalidSyntax      Kind = "invalid_syntax"
)

func (c Code) Kind() Kind {
	switch c {
	case CodeActorNotFound, CodeTargetNotFound, CodePlaceNotFound,
		CodeSessionNotFound, CodeGroupNotFound, CodeItemNotFound:
		return KindNotFound
	case CodeInvalidTarget, CodeTargetNotInSession:
		return KindInvalidTarget
	case CodeForbidden:
		return KindForbidden
	case CodeInvariantViolation:
		return KindInvariantViolation
	case CodeInvalidSyntax:
		return KindInvalidSyntax
	default:
		return KindPreconditionFailed
	}
}

// DeclaredError is an expected failure of one command.
type DeclaredError struct {
	Code    Code   `json:"code"`
	Kind    Kind   `json:"kind"`
	Trace   string `json:"trace"`
	Message string `json:"message"`
}

func (e DeclaredError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Rejection halts a reducer chain with a code.
type Rejection struct {
	Code    Code
	Message string
}

func (r *Rejection) Error() string {
	return r.Message
}

func reject(code Code, format string, args ...any) error {
	return &Rejection{Code: code, Message: fmt.Sprintf(format, args...)}
}

// rejectErr wraps a domain error, deriving its code from the sentinel it
// carries. fallback applies when no sentinel matches.
func rejectErr(err error, fallback Code) error {
	var r *Rejection
	if errors.As(err, &r) {
		return r
	}
	return &Rejection{Code: codeFor(err, fallback), Message: err.Error()}
}

var sentinelCodes = []struct {
	err  error
	code Code
}{
	{game.ErrActorNotFound, CodeActorNotFound},
	{game.ErrPlaceNotFound, CodePlaceNotFound},
	{game.ErrNoExit, CodeNoExit},
	{game.ErrItemNotFound, CodeItemNotFound},
	{game.ErrSlotOccupied, CodeSlotOccupied},
	{game.ErrNotEquipped, CodeNotEquipped},

	{combat.ErrSessionNotFound, CodeSessionNotFound},
	{combat.ErrNotCombatant, CodeForbidden},
	{combat.ErrTargetNotInSession, CodeTargetNotInSession},
	{combat.ErrInvalidTarget, CodeInvalidTarget},
	{combat.ErrAlreadyInSession, CodeAlreadyInSession},
	{combat.ErrWrongLocation, CodePreconditionFailed},
	{combat.ErrInvalidTeam, CodeInvalidSyntax},
	{combat.ErrNotPending, CodePreconditionFailed},
	{combat.ErrMissingTeam, CodePreconditionFailed},
	{combat.ErrInvalidTransition, CodeInvalidTransition},
	{combat.ErrNotRunning, CodeSessionNotRunning},
	{combat.ErrNotYourTurn, CodeNotYourTurn},
	{combat.ErrIncapacitated, CodePreconditionFailed},
	{combat.ErrInsufficientAP, CodeInsufficientAP},
	{combat.ErrInsufficientEnergy, CodeInsufficientEnergy},
	{combat.ErrOutOfReach, CodeOutOfReach},
	{combat.ErrNoRangedWeapon, CodePreconditionFailed},

	{party.ErrNoParty, CodeGroupNotFound},
	{party.ErrDanglingParty, CodeInvariantViolation},
	{party.ErrNotOwner, CodeForbidden},
	{party.ErrSelf, CodeInvalidTarget},
	{party.ErrAlreadyInParty, CodeAlreadyInParty},
	{party.ErrAlreadyMember, CodeAlreadyMember},
	{party.ErrAlreadyInvited, CodeAlreadyInvited},
	{party.ErrNoInvitation, CodeNoInvitation},
	{party.ErrNotMember, CodeNotAMember},
}

func codeFor(err error, fallback Code) Code {
	for _, sc := range sentinelCodes {
		if errors.Is(err, sc.err) {
			return sc.code
		}
	}
	return fallback
}
