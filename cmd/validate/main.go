package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jwebster45206/duel-engine/pkg/actor"
	"github.com/jwebster45206/duel-engine/pkg/battle"
	"github.com/jwebster45206/duel-engine/pkg/scenario"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <scenario.json|scenario.yaml>\n", os.Args[0])
		os.Exit(1)
	}

	validator := &ScenarioValidator{out: os.Stdout}
	if err := validator.validateFile(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "Validation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Scenario file is valid!")
}

// ScenarioValidator checks a scenario file. Structural problems fail the
// run; combatants that can never use an action only produce warnings.
type ScenarioValidator struct {
	out      io.Writer
	warnings []string
}

func (v *ScenarioValidator) validateFile(filename string) error {
	fmt.Fprintf(v.out, "Validating %s...\n", filename)

	baseName := filepath.Base(filename)
	ext := strings.ToLower(filepath.Ext(baseName))
	switch ext {
	case ".json", ".yaml", ".yml":
	default:
		return fmt.Errorf("scenario file must have a .json, .yaml or .yml extension: %s", baseName)
	}

	nameWithoutExt := strings.TrimSuffix(baseName, filepath.Ext(baseName))
	if !isValidScenarioFilename(nameWithoutExt) {
		return fmt.Errorf("scenario filename '%s' must be lowercase snake_case (e.g., cellar_rat.yaml, not cellar-rat.yaml or CellarRat.yaml)", baseName)
	}

	s, err := scenario.Load(filename)
	if err != nil {
		return err
	}

	v.warnings = nil
	v.checkCombatant("player", s.Player)
	v.checkCombatant("enemy", s.Enemy)
	for _, w := range v.warnings {
		fmt.Fprintf(v.out, "warning: %s\n", w)
	}
	return nil
}

func (v *ScenarioValidator) checkCombatant(role string, spec actor.Spec) {
	c := actor.NewCharacter(spec)
	actions := battle.ActionsOf(c)

	seen := make(map[string]bool, len(actions))
	dealsDamage := false
	for _, a := range actions {
		if seen[a.Key()] {
			v.addWarning(fmt.Sprintf("%s %s lists %s more than once", role, c.Name, a.Name()))
		}
		seen[a.Key()] = true

		switch a {
		case battle.Attack:
			dealsDamage = true
		case battle.PowerAttack:
			if c.MaxStamina < battle.PowerAttackCost {
				v.addWarning(fmt.Sprintf("%s %s can never afford Power Attack (max stamina %d < %d)",
					role, c.Name, c.MaxStamina, battle.PowerAttackCost))
			} else {
				dealsDamage = true
			}
		}
	}
	if !dealsDamage {
		v.addWarning(fmt.Sprintf("%s %s has no damaging action", role, c.Name))
	}
}

func (v *ScenarioValidator) addWarning(msg string) {
	v.warnings = append(v.warnings, msg)
}

var validFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidScenarioFilename(name string) bool {
	return validFilenameRegex.MatchString(name)
}
