package commands

import (
	"github.com/pixil98/go-mud-rules/internal/combat"
)

func (r *Resolution) event(t EventType, payload any) {
	ev := Event{Type: t, Trace: r.Cmd.Id, Payload: payload}
	if r.Actor != nil {
		ev.Actor = r.Actor.Id
		ev.Location = r.Actor.Location
	}
	if r.Cmd.Location != "" {
		ev.Location = r.Cmd.Location
	}
	r.Ctx.DeclareEvent(ev)
}

// combatLayers are shared by every in-session action.
func combatLayers[A Args](t CommandType) []Layer {
	return []Layer{
		withWorldState,
		withActor,
		withType[A](t),
		withExistingCombatSession,
		withTurn,
	}
}

func attackTarget(r *Resolution) string { return argsOf[*AttackArgs](r).Target }
func strikeTarget(r *Resolution) string { return argsOf[*StrikeArgs](r).Target }
func rangeTarget(r *Resolution) string  { return argsOf[*RangeArgs](r).Target }
func defendAlly(r *Resolution) string   { return argsOf[*DefendArgs](r).Ally }
func targetTarget(r *Resolution) string { return argsOf[*TargetArgs](r).Target }

func checkNotSelf(target func(r *Resolution) string) func(r *Resolution) error {
	return func(r *Resolution) error {
		if target(r) == r.Actor.Id {
			return reject(CodeInvalidTarget, "%s cannot target themselves", r.Actor.Id)
		}
		return nil
	}
}

func attackReducer() Handler {
	layers := append(combatLayers[*AttackArgs](TypeAttack),
		withSameSession(false, attackTarget),
		withPrecondition(checkNotSelf(attackTarget)),
		withPrecondition(func(r *Resolution) error { return r.Combatant.CheckMelee(attackTarget(r)) }),
		withCombatCost(fixedCost(AttackCost)),
	)
	return chain(func(r *Resolution) error {
		hit, err := r.Combatant.Attack(attackTarget(r))
		if err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		r.declareHit(EventCombatAttacked, hit)
		return nil
	}, layers...)
}

func strikeReducer() Handler {
	layers := append(combatLayers[*StrikeArgs](TypeStrike),
		withSameSession(false, strikeTarget),
		withPrecondition(checkNotSelf(strikeTarget)),
		withPrecondition(func(r *Resolution) error { return r.Combatant.CheckMelee(strikeTarget(r)) }),
		withCombatCost(fixedCost(StrikeCost)),
	)
	return chain(func(r *Resolution) error {
		hit, err := r.Combatant.Strike(strikeTarget(r))
		if err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		r.declareHit(EventCombatStruck, hit)
		return nil
	}, layers...)
}

func rangeReducer() Handler {
	layers := append(combatLayers[*RangeArgs](TypeRange),
		withSameSession(false, rangeTarget),
		withPrecondition(checkNotSelf(rangeTarget)),
		withPrecondition(func(r *Resolution) error { return r.Combatant.CheckRanged(rangeTarget(r)) }),
		withCombatCost(fixedCost(RangeCost)),
	)
	return chain(func(r *Resolution) error {
		hit, err := r.Combatant.Range(rangeTarget(r))
		if err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		r.declareHit(EventCombatShot, hit)
		return nil
	}, layers...)
}

func (r *Resolution) declareHit(t EventType, hit combat.Hit) {
	r.event(t, hit)
	if hit.Incapacitated {
		r.Ctx.DeclareEvent(Event{
			Type:     EventCombatIncapacitated,
			Trace:    r.Cmd.Id,
			Actor:    hit.Target,
			Location: r.Session.Location(),
			Payload:  CombatantPayload{Session: r.Session.Id(), Actor: hit.Target},
		})
	}
}

func defendReducer() Handler {
	layers := append(combatLayers[*DefendArgs](TypeDefend),
		withSameSession(true, defendAlly),
		withPrecondition(func(r *Resolution) error {
			ally := defendAlly(r)
			if ally == "" || ally == r.Actor.Id {
				return nil
			}
			c, err := r.Session.Combatant(ally)
			if err != nil {
				return err
			}
			if c.Team() != r.Combatant.Team() {
				return reject(CodeInvalidTarget, "%s is not an ally of %s", ally, r.Actor.Id)
			}
			return nil
		}),
		withCombatCost(fixedCost(DefendCost)),
	)
	return chain(func(r *Resolution) error {
		ally := defendAlly(r)
		if err := r.Combatant.Defend(ally); err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		r.event(EventCombatDefended, DefendPayload{Ally: ally})
		return nil
	}, layers...)
}

func retreatReducer() Handler {
	layers := append(combatLayers[*RetreatArgs](TypeRetreat),
		withCombatCost(fixedCost(RetreatCost)),
	)
	return chain(func(r *Resolution) error {
		r.event(EventCombatRetreated, PositionPayload{Position: r.Combatant.Retreat()})
		return nil
	}, layers...)
}

func targetReducer() Handler {
	layers := append(combatLayers[*TargetArgs](TypeTarget),
		withSameSession(false, targetTarget),
		withPrecondition(checkNotSelf(targetTarget)),
		withCombatCost(fixedCost(FreeCost)),
	)
	return chain(func(r *Resolution) error {
		if err := r.Combatant.SetTarget(targetTarget(r)); err != nil {
			return rejectErr(err, CodeInvalidTarget)
		}
		r.event(EventCombatTargeted, TargetPayload{Target: targetTarget(r)})
		return nil
	}, layers...)
}

func doneReducer() Handler {
	layers := append(combatLayers[*DoneArgs](TypeDone),
		withCombatCost(fixedCost(FreeCost)),
	)
	return chain(func(r *Resolution) error {
		r.Combatant.Done()
		r.event(EventCombatDone, CombatantPayload{Session: r.Session.Id(), Actor: r.Actor.Id})
		return nil
	}, layers...)
}
