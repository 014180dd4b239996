package commands

import (
	"math"

	"github.com/pixil98/go-mud-rules/internal/combat"
)

// Action prices.
var (
	AttackCost  = combat.Cost{ActionPoints: 2}
	StrikeCost  = combat.Cost{ActionPoints: 3, Energy: 10}
	RangeCost   = combat.Cost{ActionPoints: 2}
	DefendCost  = combat.Cost{ActionPoints: 1}
	RetreatCost = combat.Cost{ActionPoints: 1, Energy: 5}
	FreeCost    = combat.Cost{}
)

const (
	// MoveAPPerMetre is charged for each metre of battlefield movement.
	MoveAPPerMetre = 1.0
	// SecondsPerAP converts equipment setup time to action points.
	SecondsPerAP = 2.0
)

// CostFunc prices a command from the command and the world.
type CostFunc func(r *Resolution) combat.Cost

func fixedCost(c combat.Cost) CostFunc {
	return func(*Resolution) combat.Cost { return c }
}

func moveCost(r *Resolution) combat.Cost {
	return combat.Cost{ActionPoints: math.Abs(argsOf[*MoveArgs](r).Distance) * MoveAPPerMetre}
}

func equipCost(r *Resolution) combat.Cost {
	it := r.Actor.Inventory.Get(argsOf[*EquipArgs](r).Item)
	gear, _ := r.Ctx.Gear(it)
	return combat.Cost{ActionPoints: gear.SetupTime / SecondsPerAP}
}

// withCombatCost charges the action's rounded cost before the core effect
// runs, finalizes the events it declared and then lets the turn move on.
// Without a session no accounting happens.
func withCombatCost(price CostFunc) Layer {
	return func(next Handler) Handler {
		return func(r *Resolution) error {
			if r.Session == nil || r.Combatant == nil {
				return next(r)
			}

			cost := price(r).Rounded()
			if !cost.IsFree() {
				if err := r.Combatant.DeductCost(cost); err != nil {
					return rejectErr(err, CodePreconditionFailed)
				}
			}
			if err := next(r); err != nil {
				return err
			}
			r.Ctx.finalize(r.Cmd.Id, cost)

			if change, ok := r.Session.AdvanceIfExhausted(); ok {
				r.Ctx.DeclareEvent(Event{
					Type:     EventTurnStarted,
					Trace:    r.Cmd.Id,
					Actor:    change.Current,
					Location: r.Session.Location(),
					Payload:  change,
				})
			}
			return nil
		}
	}
}
