package display

// damageBands maps damage ceilings to the verb used when narrating a hit.
// Combat damage is small: a plain attack lands in the low single digits and
// a strike tops out in the teens.
var damageBands = []struct {
	ceiling int
	verb    string
}{
	{0, "misses"},
	{1, "grazes"},
	{2, "nicks"},
	{4, "hits"},
	{6, "wounds"},
	{9, "batters"},
	{13, "mauls"},
	{18, "savages"},
}

// DamageVerb returns the third person verb for a damage amount.
func DamageVerb(damage int) string {
	for _, b := range damageBands {
		if damage <= b.ceiling {
			return b.verb
		}
	}
	return "wrecks"
}
