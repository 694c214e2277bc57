package battle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jwebster45206/duel-engine/pkg/actor"
)

// ErrInputClosed is returned when the human's input stream ends mid-prompt.
var ErrInputClosed = errors.New("input closed before an action was chosen")

// Policy decides which action a combatant takes this turn.
type Policy interface {
	Choose(self, opponent *actor.Character) (Action, error)
}

// Human prompts on out and reads 1-based menu choices line by line from in.
// Invalid entries re-prompt indefinitely, whatever their length.
type Human struct {
	in  *bufio.Reader
	out io.Writer
}

func NewHuman(in io.Reader, out io.Writer) *Human {
	return &Human{in: bufio.NewReader(in), out: out}
}

func (h *Human) Choose(self, _ *actor.Character) (Action, error) {
	actions := ActionsOf(self)
	if len(actions) == 0 {
		return Hesitate, nil
	}

	for {
		fmt.Fprintf(h.out, "\nYour stamina: %d/%d\n", self.Stamina, self.MaxStamina)
		fmt.Fprintln(h.out, "\nChoose your action:")
		for i, a := range actions {
			fmt.Fprintf(h.out, "%d: %s\n", i+1, a.Name())
		}
		fmt.Fprint(h.out, "Enter number: ")

		line, err := h.in.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to read choice: %w", err)
		}
		if a, ok := pick(actions, line); ok {
			return a, nil
		}
		if err != nil {
			return nil, ErrInputClosed
		}
		fmt.Fprintln(h.out, "Invalid choice, try again.")
	}
}

// pick maps a 1-based numeric entry onto the menu.
func pick(actions []Action, input string) (Action, bool) {
	input = strings.TrimSpace(input)
	if input == "" || strings.ContainsAny(input, "+-") {
		return nil, false
	}
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > len(actions) {
		return nil, false
	}
	return actions[n-1], true
}

// Random drops Power Attack when it is unaffordable and picks uniformly from the rest.
type Random struct {
	rand Rand
}

func NewRandom(r Rand) *Random {
	return &Random{rand: r}
}

func (p *Random) Choose(self, _ *actor.Character) (Action, error) {
	var candidates []Action
	for _, a := range ActionsOf(self) {
		if a == PowerAttack && self.Stamina < PowerAttackCost {
			continue
		}
		candidates = append(candidates, a)
	}
	if len(candidates) == 0 {
		return Hesitate, nil
	}
	return candidates[p.rand.Intn(len(candidates))], nil
}

// Fixed always returns the same action. Front ends that collect input
// out of band set Action before each turn.
type Fixed struct {
	Action Action
}

func (f *Fixed) Choose(_, _ *actor.Character) (Action, error) {
	if f.Action == nil {
		return Hesitate, nil
	}
	return f.Action, nil
}
