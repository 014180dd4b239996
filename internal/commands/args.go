package commands

import (
	"fmt"
	"math"

	"github.com/pixil98/go-mud-rules/internal/game"
)

// Args is the type-specific payload of a command. The set of
// implementations is closed to this package.
type Args interface {
	commandType() CommandType
	Validate() error
}

// argsFactory maps each command type to a constructor for its args.
var argsFactory = map[CommandType]func() Args{
	TypeAttack:  func() Args { return &AttackArgs{} },
	TypeStrike:  func() Args { return &StrikeArgs{} },
	TypeRange:   func() Args { return &RangeArgs{} },
	TypeDefend:  func() Args { return &DefendArgs{} },
	TypeRetreat: func() Args { return &RetreatArgs{} },
	TypeMove:    func() Args { return &MoveArgs{} },
	TypeTarget:  func() Args { return &TargetArgs{} },
	TypeDone:    func() Args { return &DoneArgs{} },
	TypeEquip:   func() Args { return &EquipArgs{} },
	TypeUnequip: func() Args { return &UnequipArgs{} },

	TypeEngage:        func() Args { return &EngageArgs{} },
	TypeSessionCreate: func() Args { return &SessionCreateArgs{} },
	TypeSessionJoin:   func() Args { return &SessionJoinArgs{} },
	TypeSessionLeave:  func() Args { return &SessionLeaveArgs{} },
	TypeSessionStart:  func() Args { return &SessionStartArgs{} },
	TypeSessionPause:  func() Args { return &SessionPauseArgs{} },
	TypeSessionResume: func() Args { return &SessionResumeArgs{} },

	TypePartyInvite:  func() Args { return &PartyInviteArgs{} },
	TypePartyAccept:  func() Args { return &PartyAcceptArgs{} },
	TypePartyReject:  func() Args { return &PartyRejectArgs{} },
	TypePartyLeave:   func() Args { return &PartyLeaveArgs{} },
	TypePartyKick:    func() Args { return &PartyKickArgs{} },
	TypePartyDisband: func() Args { return &PartyDisbandArgs{} },
	TypePartyInspect: func() Args { return &PartyInspectArgs{} },
}

// NewArgs returns empty args for a command type.
func NewArgs(t CommandType) (Args, bool) {
	f, ok := argsFactory[t]
	if !ok {
		return nil, false
	}
	return f(), true
}

func requireField(name, value string) error {
	if value == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}

type AttackArgs struct {
	Target string `json:"target"`
}

func (*AttackArgs) commandType() CommandType { return TypeAttack }
func (a *AttackArgs) Validate() error        { return requireField("target", a.Target) }

type StrikeArgs struct {
	Target string `json:"target"`
}

func (*StrikeArgs) commandType() CommandType { return TypeStrike }
func (a *StrikeArgs) Validate() error        { return requireField("target", a.Target) }

type RangeArgs struct {
	Target string `json:"target"`
}

func (*RangeArgs) commandType() CommandType { return TypeRange }
func (a *RangeArgs) Validate() error        { return requireField("target", a.Target) }

// DefendArgs optionally names an ally to guard instead of oneself.
type DefendArgs struct {
	Ally string `json:"ally,omitempty"`
}

func (*DefendArgs) commandType() CommandType { return TypeDefend }
func (*DefendArgs) Validate() error          { return nil }

type RetreatArgs struct{}

func (*RetreatArgs) commandType() CommandType { return TypeRetreat }
func (*RetreatArgs) Validate() error          { return nil }

// MoveArgs travels through an exit by Direction, or repositions on the
// battlefield by Distance metres when fighting. Exactly one is set.
type MoveArgs struct {
	Direction string  `json:"direction,omitempty"`
	Distance  float64 `json:"distance,omitempty"`
}

func (*MoveArgs) commandType() CommandType { return TypeMove }
func (a *MoveArgs) Validate() error {
	switch {
	case a.Direction == "" && a.Distance == 0:
		return fmt.Errorf("direction or distance is required")
	case a.Direction != "" && a.Distance != 0:
		return fmt.Errorf("direction and distance are mutually exclusive")
	case math.IsNaN(a.Distance) || math.IsInf(a.Distance, 0):
		return fmt.Errorf("distance must be finite")
	}
	return nil
}

type TargetArgs struct {
	Target string `json:"target"`
}

func (*TargetArgs) commandType() CommandType { return TypeTarget }
func (a *TargetArgs) Validate() error        { return requireField("target", a.Target) }

type DoneArgs struct{}

func (*DoneArgs) commandType() CommandType { return TypeDone }
func (*DoneArgs) Validate() error          { return nil }

// EquipArgs readies a carried item. Slot defaults to the item's own slot.
type EquipArgs struct {
	Item string `json:"item"`
	Slot string `json:"slot,omitempty"`
}

func (*EquipArgs) commandType() CommandType { return TypeEquip }
func (a *EquipArgs) Validate() error        { return requireField("item", a.Item) }

type UnequipArgs struct {
	Item string `json:"item"`
}

func (*UnequipArgs) commandType() CommandType { return TypeUnequip }
func (a *UnequipArgs) Validate() error        { return requireField("item", a.Item) }

// EngageArgs opens a fight between the actor and Target.
type EngageArgs struct {
	Target string `json:"target"`
}

func (*EngageArgs) commandType() CommandType { return TypeEngage }
func (a *EngageArgs) Validate() error        { return requireField("target", a.Target) }

type SessionCreateArgs struct{}

func (*SessionCreateArgs) commandType() CommandType { return TypeSessionCreate }
func (*SessionCreateArgs) Validate() error          { return nil }

// SessionJoinArgs seats Actor, or the issuing actor, on Team.
type SessionJoinArgs struct {
	Actor string    `json:"actor,omitempty"`
	Team  game.Team `json:"team"`
}

func (*SessionJoinArgs) commandType() CommandType { return TypeSessionJoin }
func (a *SessionJoinArgs) Validate() error {
	if !a.Team.Valid() {
		return fmt.Errorf("team must be %s or %s", game.TeamAlpha, game.TeamBravo)
	}
	return nil
}

type SessionLeaveArgs struct {
	Actor string `json:"actor,omitempty"`
}

func (*SessionLeaveArgs) commandType() CommandType { return TypeSessionLeave }
func (*SessionLeaveArgs) Validate() error          { return nil }

type SessionStartArgs struct{}

func (*SessionStartArgs) commandType() CommandType { return TypeSessionStart }
func (*SessionStartArgs) Validate() error          { return nil }

type SessionPauseArgs struct{}

func (*SessionPauseArgs) commandType() CommandType { return TypeSessionPause }
func (*SessionPauseArgs) Validate() error          { return nil }

type SessionResumeArgs struct{}

func (*SessionResumeArgs) commandType() CommandType { return TypeSessionResume }
func (*SessionResumeArgs) Validate() error          { return nil }

type PartyInviteArgs struct {
	Invitee string `json:"invitee"`
}

func (*PartyInviteArgs) commandType() CommandType { return TypePartyInvite }
func (a *PartyInviteArgs) Validate() error        { return requireField("invitee", a.Invitee) }

type PartyAcceptArgs struct {
	Owner string `json:"owner"`
}

func (*PartyAcceptArgs) commandType() CommandType { return TypePartyAccept }
func (a *PartyAcceptArgs) Validate() error        { return requireField("owner", a.Owner) }

type PartyRejectArgs struct {
	Owner string `json:"owner"`
}

func (*PartyRejectArgs) commandType() CommandType { return TypePartyReject }
func (a *PartyRejectArgs) Validate() error        { return requireField("owner", a.Owner) }

type PartyLeaveArgs struct{}

func (*PartyLeaveArgs) commandType() CommandType { return TypePartyLeave }
func (*PartyLeaveArgs) Validate() error          { return nil }

type PartyKickArgs struct {
	Member string `json:"member"`
}

func (*PartyKickArgs) commandType() CommandType { return TypePartyKick }
func (a *PartyKickArgs) Validate() error        { return requireField("member", a.Member) }

type PartyDisbandArgs struct{}

func (*PartyDisbandArgs) commandType() CommandType { return TypePartyDisband }
func (*PartyDisbandArgs) Validate() error          { return nil }

type PartyInspectArgs struct{}

func (*PartyInspectArgs) commandType() CommandType { return TypePartyInspect }
func (*PartyInspectArgs) Validate() error          { return nil }
