package combat

import "math"

// TacticalUnit is the granularity action point costs are rounded up to.
const TacticalUnit = 0.5

// Cost is the price of an action.
type Cost struct {
	ActionPoints float64 `json:"action_points"`
	Energy       float64 `json:"energy"`
}

// Rounded returns the cost with action points rounded up to the tactical
// unit and energy rounded up to whole units.
func (c Cost) Rounded() Cost {
	return Cost{
		ActionPoints: math.Ceil(c.ActionPoints/TacticalUnit) * TacticalUnit,
		Energy:       math.Ceil(c.Energy),
	}
}

// IsFree reports whether the cost consumes nothing.
func (c Cost) IsFree() bool {
	return c.ActionPoints <= 0 && c.Energy <= 0
}
