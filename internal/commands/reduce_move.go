package commands

// moveReducer repositions a combatant on the battlefield when a session is
// referenced, and otherwise travels through an exit.
func moveReducer() Handler {
	battlefield := chain(func(r *Resolution) error {
		pos := r.Combatant.Move(argsOf[*MoveArgs](r).Distance)
		r.event(EventCombatMoved, PositionPayload{Position: pos})
		return nil
	},
		withPrecondition(func(r *Resolution) error {
			if argsOf[*MoveArgs](r).Distance == 0 {
				return reject(CodeInvalidSyntax, "moving in combat needs a distance")
			}
			return nil
		}),
		withCombatCost(moveCost),
	)

	travel := chain(func(r *Resolution) error {
		dir := argsOf[*MoveArgs](r).Direction
		from := r.Actor.Location
		to, _ := r.Ctx.World().Place(from).Exit(dir)
		if err := r.Ctx.World().MoveActor(r.Actor.Id, to); err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		r.Ctx.DeclareEvent(Event{
			Type:     EventActorMoved,
			Trace:    r.Cmd.Id,
			Actor:    r.Actor.Id,
			Location: to,
			Payload:  TravelPayload{From: from, To: to, Direction: dir},
		})
		return nil
	},
		withPrecondition(func(r *Resolution) error {
			dir := argsOf[*MoveArgs](r).Direction
			if dir == "" {
				return reject(CodeInvalidSyntax, "moving needs a direction")
			}
			to, ok := r.Ctx.World().Place(r.Actor.Location).Exit(dir)
			if !ok {
				return reject(CodeNoExit, "no exit %s from %s", dir, r.Actor.Location)
			}
			if r.Ctx.World().Place(to) == nil {
				return reject(CodePlaceNotFound, "exit %s leads to unknown place %q", dir, to)
			}
			return nil
		}),
	)

	return chain(func(r *Resolution) error {
		if r.Session != nil {
			return battlefield(r)
		}
		return travel(r)
	},
		withWorldState,
		withActor,
		withType[*MoveArgs](TypeMove),
		withOptionalCombatSession,
		withTurn,
	)
}
