package actor

import (
	"slices"
	"testing"
)

func TestNewCharacter(t *testing.T) {
	t.Run("starts at full HP and stamina", func(t *testing.T) {
		c := NewCharacter(Spec{Name: "Knight", HP: 100, Attack: 15, Defense: 5, Speed: 6, Stamina: 80})

		if c.HP != 100 || c.MaxHP != 100 {
			t.Errorf("expected HP 100/100, got %d/%d", c.HP, c.MaxHP)
		}
		if c.Stamina != 80 || c.MaxStamina != 80 {
			t.Errorf("expected stamina 80/80, got %d/%d", c.Stamina, c.MaxStamina)
		}
		if c.Defending {
			t.Error("expected a fresh character not to be defending")
		}
	})

	t.Run("defaults stamina when unset", func(t *testing.T) {
		c := NewCharacter(Spec{Name: "Goblin", HP: 60})

		if c.Stamina != DefaultStamina || c.MaxStamina != DefaultStamina {
			t.Errorf("expected stamina %d/%d, got %d/%d", DefaultStamina, DefaultStamina, c.Stamina, c.MaxStamina)
		}
	})

	t.Run("copies the action list", func(t *testing.T) {
		spec := Spec{Name: "Goblin", HP: 60, Actions: []string{"attack", "defend"}}
		c := NewCharacter(spec)
		spec.Actions[0] = "hesitate"

		if !slices.Equal(c.Actions, []string{"attack", "defend"}) {
			t.Errorf("expected actions [attack defend], got %v", c.Actions)
		}
	})
}

func TestCharacter_TakeDamage(t *testing.T) {
	tests := []struct {
		name   string
		hp     int
		damage int
		want   int
	}{
		{name: "normal hit", hp: 60, damage: 12, want: 48},
		{name: "exact kill", hp: 12, damage: 12, want: 0},
		{name: "overkill clamps to zero", hp: 5, damage: 40, want: 0},
		{name: "zero damage", hp: 5, damage: 0, want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Character{HP: tt.hp, MaxHP: 100}
			c.TakeDamage(tt.damage)
			if c.HP != tt.want {
				t.Errorf("expected HP %d, got %d", tt.want, c.HP)
			}
		})
	}
}

func TestCharacter_RecoverStamina(t *testing.T) {
	t.Run("caps at max", func(t *testing.T) {
		c := &Character{Stamina: 95, MaxStamina: 100}
		c.RecoverStamina(10)
		if c.Stamina != 100 {
			t.Errorf("expected stamina 100, got %d", c.Stamina)
		}
	})

	t.Run("adds below max", func(t *testing.T) {
		c := &Character{Stamina: 40, MaxStamina: 100}
		c.RecoverStamina(10)
		if c.Stamina != 50 {
			t.Errorf("expected stamina 50, got %d", c.Stamina)
		}
	})
}

func TestCharacter_IsAlive(t *testing.T) {
	if !(&Character{HP: 1}).IsAlive() {
		t.Error("expected character with 1 HP to be alive")
	}
	if (&Character{HP: 0}).IsAlive() {
		t.Error("expected character with 0 HP to be down")
	}
}

func TestCharacter_Status(t *testing.T) {
	c := &Character{Name: "Goblin", HP: 48, MaxHP: 60, Stamina: 100, MaxStamina: 100}
	if got := c.Status(); got != "Goblin: 48/60, Stamina: 100/100" {
		t.Errorf("unexpected status %q", got)
	}
}
