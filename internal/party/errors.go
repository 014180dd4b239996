package party

import "errors"

var (
	ErrNoParty        = errors.New("no party")
	ErrDanglingParty  = errors.New("actor references a party that does not exist")
	ErrNotOwner       = errors.New("only the party owner may do that")
	ErrSelf           = errors.New("cannot target yourself")
	ErrAlreadyInParty = errors.New("actor is already in a party")
	ErrAlreadyMember  = errors.New("actor is already a member")
	ErrAlreadyInvited = errors.New("actor is already invited")
	ErrNoInvitation   = errors.New("no pending invitation")
	ErrNotMember      = errors.New("actor is not a member")
)
