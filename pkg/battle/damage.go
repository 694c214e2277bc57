package battle

import (
	"math"

	"github.com/jwebster45206/duel-engine/pkg/actor"
)

const (
	// CritChance is the probability that a resolved hit deals double damage.
	CritChance = 0.12
	// MinDamage is the floor applied after the multiplier and before crit/defend.
	MinDamage = 1
)

// CalculateDamage resolves one hit of attacker against defender.
// The defender is read, never mutated.
//
//	base  = max(floor((attack - defense) * multiplier), 1)
//	crit  = draw < CritChance -> base * 2
//	guard = defender.Defending -> damage / 2
func CalculateDamage(r Rand, attacker, defender *actor.Character, multiplier float64) (damage int, critical bool) {
	damage = int(math.Floor(float64(attacker.Attack-defender.Defense) * multiplier))
	if damage < MinDamage {
		damage = MinDamage
	}

	if r.Float64() < CritChance {
		damage *= 2
		critical = true
	}

	if defender.Defending {
		damage /= 2
	}
	return damage, critical
}
