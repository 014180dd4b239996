package game

import "errors"

var (
	ErrActorNotFound = errors.New("actor not found")
	ErrActorExists   = errors.New("actor already exists")
	ErrPlaceNotFound = errors.New("place not found")
	ErrPlaceExists   = errors.New("place already exists")
	ErrNoExit        = errors.New("no exit in that direction")
	ErrItemNotFound  = errors.New("item not found")
	ErrSlotOccupied  = errors.New("slot is already occupied")
	ErrNotEquipped   = errors.New("item is not equipped")
)

var (
	ErrGroupExists   = errors.New("group already exists")
	ErrSessionExists = errors.New("session already exists")
)
