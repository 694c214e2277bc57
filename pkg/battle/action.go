package battle

import (
	"strings"

	"github.com/jwebster45206/duel-engine/pkg/actor"
	"golang.org/x/text/cases"
)

// Action keys as they appear in scenario files.
const (
	KeyAttack      = "attack"
	KeyPowerAttack = "power_attack"
	KeyDefend      = "defend"
	KeyHesitate    = "hesitate"
)

const (
	PowerAttackCost       = 30
	PowerAttackMultiplier = 1.5
	// PowerAttackMissChance applies after the stamina cost has been paid.
	PowerAttackMissChance = 0.25
)

// Action is one of the four moves a combatant can make on its turn.
// Implementations carry no state and are shared between combatants.
type Action interface {
	Key() string
	Name() string
	Execute(self, target *actor.Character, e *Engine)
}

// Shared action values.
var (
	Attack      Action = attackAction{}
	PowerAttack Action = powerAttackAction{}
	Defend      Action = defendAction{}
	Hesitate    Action = hesitateAction{}
)

var actionsByKey = map[string]Action{
	KeyAttack:      Attack,
	KeyPowerAttack: PowerAttack,
	KeyDefend:      Defend,
	KeyHesitate:    Hesitate,
}

// ActionByName resolves a key ("power_attack") or display name ("Power Attack").
func ActionByName(name string) (Action, bool) {
	key := cases.Fold().String(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	a, ok := actionsByKey[key]
	return a, ok
}

// ActionsOf resolves a character's action keys in menu order.
// Unknown keys are skipped; scenario validation reports them.
func ActionsOf(c *actor.Character) []Action {
	actions := make([]Action, 0, len(c.Actions))
	for _, name := range c.Actions {
		if a, ok := ActionByName(name); ok {
			actions = append(actions, a)
		}
	}
	return actions
}

type attackAction struct{}

func (attackAction) Key() string  { return KeyAttack }
func (attackAction) Name() string { return "Attack" }

func (attackAction) Execute(self, target *actor.Character, e *Engine) {
	damage, critical := CalculateDamage(e.rand, self, target, 1)
	target.TakeDamage(damage)
	e.logf("%s attacks %s for %d damage!", self.Name, target.Name, damage)
	if critical {
		e.logf("%s lands a Critical Hit!", self.Name)
	}
}

type powerAttackAction struct{}

func (powerAttackAction) Key() string  { return KeyPowerAttack }
func (powerAttackAction) Name() string { return "Power Attack" }

func (powerAttackAction) Execute(self, target *actor.Character, e *Engine) {
	if self.Stamina < PowerAttackCost {
		e.logf("%s tried Power Attack but doesn't have enough stamina!", self.Name)
		return
	}
	self.SpendStamina(PowerAttackCost)

	if e.rand.Float64() < PowerAttackMissChance {
		e.logf("%s tries a Power Attack but misses!", self.Name)
		return
	}

	damage, critical := CalculateDamage(e.rand, self, target, PowerAttackMultiplier)
	target.TakeDamage(damage)
	e.logf("%s uses Power Attack on %s for %d!", self.Name, target.Name, damage)
	if critical {
		e.logf("%s lands a Critical Hit with Power Attack!", self.Name)
	}
}

type defendAction struct{}

func (defendAction) Key() string  { return KeyDefend }
func (defendAction) Name() string { return "Defend" }

func (defendAction) Execute(self, _ *actor.Character, e *Engine) {
	self.Defending = true
	e.logf("%s is defending!", self.Name)
}

type hesitateAction struct{}

func (hesitateAction) Key() string  { return KeyHesitate }
func (hesitateAction) Name() string { return "Hesitate" }

func (hesitateAction) Execute(self, _ *actor.Character, e *Engine) {
	e.logf("%s hesitates!", self.Name)
}
