package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jwebster45206/d20"
	"github.com/jwebster45206/duel-engine/pkg/actor"
	"github.com/jwebster45206/duel-engine/pkg/battle"
	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownAction is returned when a combatant lists an action key the engine does not know.
	ErrUnknownAction = errors.New("unknown action")
	// ErrInvalidCombatant is returned for stat blocks that cannot fight.
	ErrInvalidCombatant = errors.New("invalid combatant")
)

// Scenario is a two-party duel: one player-controlled combatant and one enemy.
type Scenario struct {
	Name        string     `json:"name" yaml:"name"`
	Description string     `json:"description,omitempty" yaml:"description,omitempty"`
	Player      actor.Spec `json:"player" yaml:"player"`
	Enemy       actor.Spec `json:"enemy" yaml:"enemy"`
}

// Default is the built-in Knight vs Goblin duel.
func Default() *Scenario {
	return &Scenario{
		Name:        "Knight vs Goblin",
		Description: "A lone knight meets a goblin on the road.",
		Player: actor.Spec{
			Name: "Knight", HP: 100, Attack: 15, Defense: 5, Speed: 6, Stamina: 100,
			Actions: []string{battle.KeyAttack, battle.KeyDefend, battle.KeyPowerAttack},
		},
		Enemy: actor.Spec{
			Name: "Goblin", HP: 60, Attack: 10, Defense: 3, Speed: 4.2, Stamina: 100,
			Actions: []string{battle.KeyAttack, battle.KeyDefend, battle.KeyPowerAttack, battle.KeyHesitate},
		},
	}
}

// Load reads a scenario from a .json, .yaml or .yml file and validates it.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	s, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes scenario bytes. ext selects the format (".json", ".yaml", ".yml").
func Parse(data []byte, ext string) (*Scenario, error) {
	var s Scenario
	switch strings.ToLower(ext) {
	case ".json":
		decoder := json.NewDecoder(strings.NewReader(string(data)))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported scenario format %q", ext)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Validate checks both stat blocks and their action lists.
func (s *Scenario) Validate() error {
	var errs []error
	if err := validateSpec(s.Player); err != nil {
		errs = append(errs, fmt.Errorf("player: %w", err))
	}
	if err := validateSpec(s.Enemy); err != nil {
		errs = append(errs, fmt.Errorf("enemy: %w", err))
	}
	return errors.Join(errs...)
}

func validateSpec(spec actor.Spec) error {
	if strings.TrimSpace(spec.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidCombatant)
	}
	if spec.Attack < 0 || spec.Defense < 0 || spec.Stamina < 0 || spec.Speed < 0 {
		return fmt.Errorf("%w: %s has negative stats", ErrInvalidCombatant, spec.Name)
	}
	if len(spec.Actions) == 0 {
		return fmt.Errorf("%w: %s has no actions", ErrInvalidCombatant, spec.Name)
	}
	for _, name := range spec.Actions {
		if _, ok := battle.ActionByName(name); !ok {
			return fmt.Errorf("%w %q for %s", ErrUnknownAction, name, spec.Name)
		}
	}

	// d20 rejects a stat sheet without positive max HP.
	if _, err := d20.NewActor(spec.Name).
		WithHP(spec.HP).
		Build(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidCombatant, spec.Name, err)
	}
	return nil
}
