package battle

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestHuman_Choose(t *testing.T) {
	t.Run("shows the menu and returns the choice", func(t *testing.T) {
		var out strings.Builder
		h := NewHuman(strings.NewReader("3\n"), &out)

		a, err := h.Choose(knight(), goblin())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a != PowerAttack {
			t.Errorf("expected Power Attack, got %s", a.Name())
		}
		for _, want := range []string{
			"Your stamina: 100/100",
			"1: Attack\n2: Defend\n3: Power Attack\n",
			"Enter number: ",
		} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("expected prompt to contain %q, got %q", want, out.String())
			}
		}
	})

	t.Run("re-prompts on invalid input", func(t *testing.T) {
		var out strings.Builder
		h := NewHuman(strings.NewReader("abc\n0\n4\n-1\n\n2\n"), &out)

		a, err := h.Choose(knight(), goblin())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a != Defend {
			t.Errorf("expected Defend, got %s", a.Name())
		}
		if n := strings.Count(out.String(), "Invalid choice, try again."); n != 5 {
			t.Errorf("expected 5 re-prompts, got %d", n)
		}
	})

	t.Run("re-prompts on an oversized line", func(t *testing.T) {
		var out strings.Builder
		input := strings.Repeat("x", 70*1024) + "\n1\n"
		h := NewHuman(strings.NewReader(input), &out)

		a, err := h.Choose(knight(), goblin())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a != Attack {
			t.Errorf("expected Attack, got %s", a.Name())
		}
		if n := strings.Count(out.String(), "Invalid choice, try again."); n != 1 {
			t.Errorf("expected 1 re-prompt, got %d", n)
		}
	})

	t.Run("accepts a final line without newline", func(t *testing.T) {
		var out strings.Builder
		h := NewHuman(strings.NewReader("2"), &out)

		a, err := h.Choose(knight(), goblin())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a != Defend {
			t.Errorf("expected Defend, got %s", a.Name())
		}
	})

	t.Run("closed input is an error", func(t *testing.T) {
		var out strings.Builder
		h := NewHuman(strings.NewReader("x\n"), &out)

		_, err := h.Choose(knight(), goblin())

		if !errors.Is(err, ErrInputClosed) {
			t.Errorf("expected ErrInputClosed, got %v", err)
		}
	})

	t.Run("no actions hesitates", func(t *testing.T) {
		var out strings.Builder
		k := knight()
		k.Actions = nil

		a, err := NewHuman(strings.NewReader(""), &out).Choose(k, goblin())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a != Hesitate {
			t.Errorf("expected Hesitate, got %s", a.Name())
		}
		if out.Len() != 0 {
			t.Errorf("expected no prompt, got %q", out.String())
		}
	})
}

func TestRandom_Choose(t *testing.T) {
	t.Run("picks uniformly by index", func(t *testing.T) {
		p := NewRandom(&scriptedRand{ints: []int{0, 1, 2, 3}})
		g := goblin()

		var got []Action
		for range 4 {
			a, err := p.Choose(g, knight())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got = append(got, a)
		}

		if !slices.Equal(got, []Action{Attack, Defend, PowerAttack, Hesitate}) {
			t.Errorf("unexpected picks %v", got)
		}
	})

	t.Run("drops power attack when stamina is short", func(t *testing.T) {
		p := NewRandom(&scriptedRand{ints: []int{2}})
		g := goblin()
		g.Stamina = PowerAttackCost - 1

		a, err := p.Choose(g, knight())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// candidates are Attack, Defend, Hesitate
		if a != Hesitate {
			t.Errorf("expected Hesitate, got %s", a.Name())
		}
	})

	t.Run("only power attack and no stamina falls back to hesitate", func(t *testing.T) {
		p := NewRandom(&scriptedRand{})
		g := goblin()
		g.Actions = []string{KeyPowerAttack}
		g.Stamina = 0

		a, err := p.Choose(g, knight())

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if a != Hesitate {
			t.Errorf("expected Hesitate, got %s", a.Name())
		}
	})
}

func TestFixed_Choose(t *testing.T) {
	f := &Fixed{}
	if a, err := f.Choose(knight(), goblin()); err != nil || a != Hesitate {
		t.Errorf("expected Hesitate, got %v (err %v)", a, err)
	}

	f.Action = Defend
	if a, err := f.Choose(knight(), goblin()); err != nil || a != Defend {
		t.Errorf("expected Defend, got %v (err %v)", a, err)
	}
}
