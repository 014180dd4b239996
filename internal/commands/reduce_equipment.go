package commands

func equipItem(r *Resolution) string   { return argsOf[*EquipArgs](r).Item }
func unequipItem(r *Resolution) string { return argsOf[*UnequipArgs](r).Item }

// equipSlot is the requested slot, or the one the item's schema declares.
func equipSlot(r *Resolution) string {
	if slot := argsOf[*EquipArgs](r).Slot; slot != "" {
		return slot
	}
	gear, _ := r.Ctx.Gear(r.Actor.Inventory.Get(equipItem(r)))
	return gear.Slot
}

func equipReducer() Handler {
	return chain(func(r *Resolution) error {
		id, slot := equipItem(r), equipSlot(r)
		if err := r.Actor.EquipFromInventory(id, slot); err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		if r.Session != nil {
			r.Session.RefreshMaxAP(r.Actor.Id)
		}
		it := r.Actor.Equipment.GetSlot(slot)
		r.event(EventEquipped, EquipmentPayload{Item: it.Id, Schema: it.Schema, Slot: slot})
		return nil
	},
		withWorldState,
		withActor,
		withType[*EquipArgs](TypeEquip),
		withOptionalCombatSession,
		withTurn,
		withPrecondition(func(r *Resolution) error {
			it := r.Actor.Inventory.Get(equipItem(r))
			if it == nil {
				return reject(CodeItemNotFound, "%s does not carry %q", r.Actor.Id, equipItem(r))
			}
			if _, ok := r.Ctx.Gear(it); !ok {
				return reject(CodeItemNotFound, "no definition for %q", it.Schema)
			}
			if occupant := r.Actor.Equipment.GetSlot(equipSlot(r)); occupant != nil {
				return reject(CodeSlotOccupied, "slot %s already holds %q", equipSlot(r), occupant.Id)
			}
			return nil
		}),
		withCombatCost(equipCost),
	)
}

func unequipReducer() Handler {
	return chain(func(r *Resolution) error {
		slot, _ := r.Actor.Equipment.SlotOf(unequipItem(r))
		it, err := r.Actor.UnequipToInventory(unequipItem(r))
		if err != nil {
			return rejectErr(err, CodePreconditionFailed)
		}
		if r.Session != nil {
			r.Session.RefreshMaxAP(r.Actor.Id)
		}
		r.event(EventUnequipped, EquipmentPayload{Item: it.Id, Schema: it.Schema, Slot: slot})
		return nil
	},
		withWorldState,
		withActor,
		withType[*UnequipArgs](TypeUnequip),
		withOptionalCombatSession,
		withTurn,
		withPrecondition(func(r *Resolution) error {
			if _, ok := r.Actor.Equipment.SlotOf(unequipItem(r)); !ok {
				return reject(CodeNotEquipped, "%q is not equipped", unequipItem(r))
			}
			return nil
		}),
		withCombatCost(fixedCost(FreeCost)),
	)
}
