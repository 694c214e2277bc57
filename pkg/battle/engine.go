package battle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/enetx/fsm"
	"github.com/google/uuid"
	"github.com/jwebster45206/duel-engine/pkg/actor"
)

// StaminaRecovery is granted to both combatants at the end of every turn.
const StaminaRecovery = 10

// Battle lifecycle.
const (
	StateInProgress fsm.State = "in_progress"
	StateFinished   fsm.State = "finished"

	EventKnockout fsm.Event = "knockout"
)

// Config wires the collaborators of an Engine. Zero values get defaults:
// a time-seeded Rand, Random policies and slog.Default().
type Config struct {
	PlayerPolicy Policy
	EnemyPolicy  Policy
	Rand         Rand
	Logger       *slog.Logger
}

// Engine runs a two-party duel. It owns both characters for the whole battle.
type Engine struct {
	ID uuid.UUID

	player *actor.Character
	enemy  *actor.Character

	playerPolicy Policy
	enemyPolicy  Policy
	rand         Rand
	logger       *slog.Logger

	turn      int
	events    []string
	lifecycle *fsm.FSM
}

// TurnReport is what the surrounding loop prints after each turn.
type TurnReport struct {
	Turn   int
	Events []string
	Status []string // player first, then enemy
}

// Outcome summarizes a finished battle.
type Outcome struct {
	Turns     int
	Winner    *actor.Character
	Loser     *actor.Character
	PlayerWon bool
}

func NewEngine(player, enemy *actor.Character, cfg Config) *Engine {
	if cfg.Rand == nil {
		cfg.Rand = NewRand(time.Now().UnixNano())
	}
	if cfg.PlayerPolicy == nil {
		cfg.PlayerPolicy = NewRandom(cfg.Rand)
	}
	if cfg.EnemyPolicy == nil {
		cfg.EnemyPolicy = NewRandom(cfg.Rand)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	e := &Engine{
		ID:           uuid.New(),
		player:       player,
		enemy:        enemy,
		playerPolicy: cfg.PlayerPolicy,
		enemyPolicy:  cfg.EnemyPolicy,
		rand:         cfg.Rand,
		turn:         1,
	}
	e.logger = cfg.Logger.With("battle_id", e.ID.String())

	e.lifecycle = fsm.New(StateInProgress).
		Transition(StateInProgress, EventKnockout, StateFinished).
		OnEnter(StateFinished, func(*fsm.Context) error {
			e.logger.Info("Battle finished", "turns", e.turn-1, "winner", e.Winner().Name)
			return nil
		})

	e.logger.Debug("Battle started", "player", player.Name, "enemy", enemy.Name)
	return e
}

func (e *Engine) Player() *actor.Character { return e.player }
func (e *Engine) Enemy() *actor.Character  { return e.enemy }

// Turn is the number of the next turn to be resolved. It starts at 1.
func (e *Engine) Turn() int { return e.turn }

// State returns the lifecycle state of the battle.
func (e *Engine) State() fsm.State { return e.lifecycle.Current() }

// Over reports whether either combatant is down.
func (e *Engine) Over() bool {
	return !e.player.IsAlive() || !e.enemy.IsAlive()
}

// Winner returns the player while it is alive, otherwise the enemy.
// A double knockout therefore counts as an enemy win.
func (e *Engine) Winner() *actor.Character {
	if e.player.IsAlive() {
		return e.player
	}
	return e.enemy
}

// Events returns the log collected since the last Drain.
func (e *Engine) Events() []string { return e.events }

// Drain returns the event log and clears it.
func (e *Engine) Drain() []string {
	events := e.events
	e.events = nil
	return events
}

func (e *Engine) logf(format string, args ...any) {
	e.events = append(e.events, fmt.Sprintf(format, args...))
}

// Order returns the acting order for this turn. The player acts first
// unless the enemy is strictly faster.
func (e *Engine) Order() (first, second *actor.Character) {
	if e.player.Speed >= e.enemy.Speed {
		return e.player, e.enemy
	}
	return e.enemy, e.player
}

// NextTurn resolves one full turn: reset stances, both combatants act in
// speed order while both are standing, then both recover stamina.
// An error means a policy could not produce an action and the turn is
// abandoned part way: stances are already reset and the first action may
// have landed, but stamina is not recovered and Turn does not advance.
// Callers must not retry such a turn; treat the battle as aborted.
func (e *Engine) NextTurn() error {
	e.player.Defending = false
	e.enemy.Defending = false

	first, second := e.Order()
	for _, pair := range [2][2]*actor.Character{{first, second}, {second, first}} {
		if e.Over() {
			break
		}
		if err := e.resolve(pair[0], pair[1]); err != nil {
			return err
		}
	}

	e.player.RecoverStamina(StaminaRecovery)
	e.enemy.RecoverStamina(StaminaRecovery)

	e.logger.Debug("Turn resolved",
		"turn", e.turn,
		"player_hp", e.player.HP,
		"enemy_hp", e.enemy.HP,
		"events", len(e.events))
	e.turn++

	if e.Over() && e.lifecycle.Current() == StateInProgress {
		if err := e.lifecycle.Trigger(EventKnockout); err != nil {
			return fmt.Errorf("failed to finish battle: %w", err)
		}
	}
	return nil
}

func (e *Engine) resolve(self, target *actor.Character) error {
	policy := e.enemyPolicy
	if self == e.player {
		policy = e.playerPolicy
	}

	action, err := policy.Choose(self, target)
	if err != nil {
		return fmt.Errorf("failed to choose action for %s: %w", self.Name, err)
	}
	e.logger.Debug("Action chosen", "turn", e.turn, "actor", self.Name, "action", action.Key())
	action.Execute(self, target, e)
	return nil
}

// Run drives turns until one side is down, reporting after each turn.
// Cancellation is checked between turns.
func (e *Engine) Run(ctx context.Context, report func(TurnReport)) (Outcome, error) {
	for !e.Over() {
		if err := ctx.Err(); err != nil {
			return Outcome{}, err
		}
		if err := e.NextTurn(); err != nil {
			return Outcome{}, err
		}
		if report != nil {
			report(TurnReport{
				Turn:   e.turn - 1,
				Events: e.Drain(),
				Status: []string{e.player.Status(), e.enemy.Status()},
			})
		}
	}
	return e.Outcome(), nil
}

// Outcome is valid once Over returns true.
func (e *Engine) Outcome() Outcome {
	if e.player.IsAlive() {
		return Outcome{Turns: e.turn - 1, Winner: e.player, Loser: e.enemy, PlayerWon: true}
	}
	return Outcome{Turns: e.turn - 1, Winner: e.enemy, Loser: e.player}
}
