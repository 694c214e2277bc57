package battle

import (
	"io"
	"log/slog"

	"github.com/jwebster45206/duel-engine/pkg/actor"
)

// scriptedRand replays fixed draws. Once a script runs out it returns
// 0.99 for floats (no crit, no miss) and 0 for ints.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.99
	}
	f := r.floats[0]
	r.floats = r.floats[1:]
	return f
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	i := r.ints[0]
	r.ints = r.ints[1:]
	return i % n
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func knight() *actor.Character {
	return actor.NewCharacter(actor.Spec{
		Name: "Knight", HP: 100, Attack: 15, Defense: 5, Speed: 6, Stamina: 100,
		Actions: []string{KeyAttack, KeyDefend, KeyPowerAttack},
	})
}

func goblin() *actor.Character {
	return actor.NewCharacter(actor.Spec{
		Name: "Goblin", HP: 60, Attack: 10, Defense: 3, Speed: 4.2, Stamina: 100,
		Actions: []string{KeyAttack, KeyDefend, KeyPowerAttack, KeyHesitate},
	})
}

func newTestEngine(player, enemy *actor.Character, playerPolicy, enemyPolicy Policy, r Rand) *Engine {
	return NewEngine(player, enemy, Config{
		PlayerPolicy: playerPolicy,
		EnemyPolicy:  enemyPolicy,
		Rand:         r,
		Logger:       quietLogger(),
	})
}
