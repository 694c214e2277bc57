package actor

// Spec is the serializable stat block for a combatant.
// Scenario files decode into it; NewCharacter turns it into runtime state.
type Spec struct {
	Name    string   `json:"name" yaml:"name"`
	HP      int      `json:"hp" yaml:"hp"`
	Attack  int      `json:"attack" yaml:"attack"`
	Defense int      `json:"defense" yaml:"defense"`
	Speed   float64  `json:"speed" yaml:"speed"`
	Stamina int      `json:"stamina,omitempty" yaml:"stamina,omitempty"` // defaults to DefaultStamina
	Actions []string `json:"actions" yaml:"actions"`                     // action keys in menu order
}
