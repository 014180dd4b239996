package combat

import "errors"

var (
	ErrSessionNotFound    = errors.New("session not found")
	ErrNotCombatant       = errors.New("actor is not a combatant in this session")
	ErrTargetNotInSession = errors.New("target is not a combatant in this session")
	ErrInvalidTarget      = errors.New("invalid target")
	ErrAlreadyInSession   = errors.New("actor is already in a session")
	ErrWrongLocation      = errors.New("actor is not at the session location")
	ErrInvalidTeam        = errors.New("invalid team")
	ErrNotPending         = errors.New("session roster is fixed")
	ErrMissingTeam        = errors.New("both teams need a combatant")
	ErrInvalidTransition  = errors.New("invalid session transition")
	ErrNotRunning         = errors.New("session is not running")
	ErrNotYourTurn        = errors.New("not your turn")
	ErrIncapacitated      = errors.New("combatant is incapacitated")
	ErrInsufficientAP     = errors.New("insufficient action points")
	ErrInsufficientEnergy = errors.New("insufficient energy")
	ErrOutOfReach         = errors.New("target is out of reach")
	ErrNoRangedWeapon     = errors.New("no ranged weapon equipped")
)
