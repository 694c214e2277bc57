package actor

import "fmt"

// DefaultStamina is used when a Spec leaves stamina unset.
const DefaultStamina = 100

// Character is a combatant in a duel. It is created once when a battle
// starts and mutated in place by the actions resolved against it.
type Character struct {
	Name string

	HP    int
	MaxHP int

	Attack  int
	Defense int
	Speed   float64 // only compared for turn order

	Stamina    int
	MaxStamina int

	// Defending is set by the Defend action and cleared at the start of every turn.
	Defending bool

	// Actions holds action keys (e.g. "attack", "power_attack") in menu order.
	Actions []string
}

// NewCharacter builds a fresh combatant from a stat block.
// HP and stamina start at their maximums.
func NewCharacter(spec Spec) *Character {
	stamina := spec.Stamina
	if stamina == 0 {
		stamina = DefaultStamina
	}
	actions := make([]string, len(spec.Actions))
	copy(actions, spec.Actions)

	return &Character{
		Name:       spec.Name,
		HP:         spec.HP,
		MaxHP:      spec.HP,
		Attack:     spec.Attack,
		Defense:    spec.Defense,
		Speed:      spec.Speed,
		Stamina:    stamina,
		MaxStamina: stamina,
		Actions:    actions,
	}
}

// TakeDamage reduces the character's HP by the specified amount.
// HP cannot go below 0; overkill is not an error.
func (c *Character) TakeDamage(n int) {
	c.HP -= n
	if c.HP < 0 {
		c.HP = 0
	}
}

// RecoverStamina adds stamina, capped at MaxStamina.
func (c *Character) RecoverStamina(n int) {
	c.Stamina = min(c.Stamina+n, c.MaxStamina)
}

// SpendStamina deducts stamina. Callers check affordability first.
func (c *Character) SpendStamina(n int) {
	c.Stamina -= n
}

// IsAlive returns true while HP is above 0.
func (c *Character) IsAlive() bool {
	return c.HP > 0
}

// Status renders the per-turn summary line, e.g. "Knight: 95/100, Stamina: 100/100".
func (c *Character) Status() string {
	return fmt.Sprintf("%s: %d/%d, Stamina: %d/%d", c.Name, c.HP, c.MaxHP, c.Stamina, c.MaxStamina)
}
