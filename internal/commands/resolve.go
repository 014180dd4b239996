package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pixil98/go-mud-rules/internal/game"
)

var ErrUnknownVerb = errors.New("unknown verb")

// Intent is an already-parsed player request.
type Intent struct {
	Id        string    `json:"id"`
	Actor     string    `json:"actor"`
	Verb      string    `json:"verb"`
	Target    string    `json:"target,omitempty"`
	Item      string    `json:"item,omitempty"`
	Slot      string    `json:"slot,omitempty"`
	Direction string    `json:"direction,omitempty"`
	Distance  float64   `json:"distance,omitempty"`
	Team      game.Team `json:"team,omitempty"`
}

// verbs maps player verbs onto command types.
var verbs = map[string]CommandType{
	"attack":  TypeAttack,
	"hit":     TypeAttack,
	"strike":  TypeStrike,
	"range":   TypeRange,
	"shoot":   TypeRange,
	"fire":    TypeRange,
	"defend":  TypeDefend,
	"guard":   TypeDefend,
	"block":   TypeDefend,
	"retreat": TypeRetreat,
	"flee":    TypeRetreat,
	"move":    TypeMove,
	"go":      TypeMove,
	"walk":    TypeMove,
	"step":    TypeMove,
	"target":  TypeTarget,
	"focus":   TypeTarget,
	"done":    TypeDone,
	"pass":    TypeDone,
	"end":     TypeDone,
	"equip":   TypeEquip,
	"wield":   TypeEquip,
	"wear":    TypeEquip,
	"unequip": TypeUnequip,
	"remove":  TypeUnequip,
	"engage":  TypeEngage,
	"fight":   TypeEngage,
	"join":    TypeSessionJoin,
	"invite":  TypePartyInvite,
	"accept":  TypePartyAccept,
	"reject":  TypePartyReject,
	"decline": TypePartyReject,
	"leave":   TypePartyLeave,
	"kick":    TypePartyKick,
	"disband": TypePartyDisband,
	"party":   TypePartyInspect,
	"inspect": TypePartyInspect,
}

// directions are verbs that imply a move through that exit.
var directions = map[string]bool{
	"north": true,
	"south": true,
	"east":  true,
	"west":  true,
	"up":    true,
	"down":  true,
}

// engaging types open a fight when neither side is in one yet.
var engaging = map[CommandType]bool{
	TypeAttack: true,
	TypeStrike: true,
	TypeRange:  true,
}

// Resolver turns intents into commands, inferring location, session and
// target from the world.
type Resolver struct {
	world     *game.World
	processor *Processor
}

func NewResolver(w *game.World, p *Processor) *Resolver {
	return &Resolver{world: w, processor: p}
}

// Plan lists the command types an intent resolves to right now.
func (r *Resolver) Plan(in Intent) ([]CommandType, error) {
	t, err := r.commandType(in)
	if err != nil {
		return nil, err
	}
	if r.needsEngage(t, in) {
		return []CommandType{TypeEngage, t}, nil
	}
	return []CommandType{t}, nil
}

// Dispatch resolves an intent and reduces the resulting commands against
// pc. An attack between two actors outside any fight is preceded by an
// ENGAGE command traced as "<id>.engage". If the engagement fails the
// attack is skipped and the intent id carries the same error code.
func (r *Resolver) Dispatch(pc *Context, in Intent) *Context {
	t, err := r.commandType(in)
	if err != nil {
		return pc.Failed(in.Id, CodeInvalidSyntax, err.Error())
	}

	if r.needsEngage(t, in) {
		engage := r.infer(Command{
			Id:    in.Id + ".engage",
			Type:  TypeEngage,
			Actor: in.Actor,
			Args:  &EngageArgs{Target: in.Target},
		})
		r.processor.Process(pc, engage)
		if errs := pc.ErrorsByCommand(engage.Id); len(errs) > 0 {
			return pc.Failed(in.Id, errs[0].Code, fmt.Sprintf("engaging %s: %s", in.Target, errs[0].Message))
		}
	}

	cmd, err := r.Command(in)
	if err != nil {
		return pc.Failed(in.Id, CodeInvalidSyntax, err.Error())
	}
	return r.processor.Process(pc, cmd)
}

// Command builds the single command an intent stands for, with inferred
// context filled in.
func (r *Resolver) Command(in Intent) (Command, error) {
	t, err := r.commandType(in)
	if err != nil {
		return Command{}, err
	}

	target := in.Target
	if target == "" && engaging[t] {
		target = r.selectedTarget(in.Actor)
	}

	var args Args
	switch t {
	case TypeAttack:
		args = &AttackArgs{Target: target}
	case TypeStrike:
		args = &StrikeArgs{Target: target}
	case TypeRange:
		args = &RangeArgs{Target: target}
	case TypeDefend:
		args = &DefendArgs{Ally: in.Target}
	case TypeRetreat:
		args = &RetreatArgs{}
	case TypeMove:
		dir := in.Direction
		if directions[strings.ToLower(in.Verb)] {
			dir = strings.ToLower(in.Verb)
		}
		args = &MoveArgs{Direction: dir, Distance: in.Distance}
	case TypeTarget:
		args = &TargetArgs{Target: in.Target}
	case TypeDone:
		args = &DoneArgs{}
	case TypeEquip:
		args = &EquipArgs{Item: in.Item, Slot: in.Slot}
	case TypeUnequip:
		args = &UnequipArgs{Item: in.Item}
	case TypeEngage:
		args = &EngageArgs{Target: in.Target}
	case TypeSessionJoin:
		args = &SessionJoinArgs{Team: in.Team}
	case TypePartyInvite:
		args = &PartyInviteArgs{Invitee: in.Target}
	case TypePartyAccept:
		args = &PartyAcceptArgs{Owner: in.Target}
	case TypePartyReject:
		args = &PartyRejectArgs{Owner: in.Target}
	case TypePartyLeave:
		args = &PartyLeaveArgs{}
	case TypePartyKick:
		args = &PartyKickArgs{Member: in.Target}
	case TypePartyDisband:
		args = &PartyDisbandArgs{}
	case TypePartyInspect:
		args = &PartyInspectArgs{}
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownVerb, in.Verb)
	}

	cmd := r.infer(Command{Id: in.Id, Type: t, Actor: in.Actor, Args: args})
	if t == TypeMove && in.Distance == 0 {
		// Travel never happens inside a fight.
		cmd.Session = ""
	}
	if t == TypeSessionJoin && in.Target != "" {
		// Joining names the session to join through the target actor.
		if a := r.world.Actor(in.Target); a != nil {
			cmd.Session = a.Session
		}
	}
	return cmd, nil
}

func (r *Resolver) commandType(in Intent) (CommandType, error) {
	verb := strings.ToLower(strings.TrimSpace(in.Verb))
	if directions[verb] {
		return TypeMove, nil
	}
	t, ok := verbs[verb]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownVerb, in.Verb)
	}
	return t, nil
}

// infer fills location and session from the acting actor.
func (r *Resolver) infer(cmd Command) Command {
	a := r.world.Actor(cmd.Actor)
	if a == nil {
		return cmd
	}
	if cmd.Location == "" {
		cmd.Location = a.Location
	}
	if cmd.Session == "" {
		cmd.Session = a.Session
	}
	return cmd
}

func (r *Resolver) needsEngage(t CommandType, in Intent) bool {
	if !engaging[t] || in.Target == "" {
		return false
	}
	a, target := r.world.Actor(in.Actor), r.world.Actor(in.Target)
	if a == nil || target == nil {
		return false
	}
	return a.Session == "" && target.Session == ""
}

func (r *Resolver) selectedTarget(actorID string) string {
	a := r.world.Actor(actorID)
	if a == nil || a.Session == "" {
		return ""
	}
	s := r.world.Session(a.Session)
	if s == nil {
		return ""
	}
	if c, ok := s.Combatants[actorID]; ok {
		return c.Target
	}
	return ""
}
