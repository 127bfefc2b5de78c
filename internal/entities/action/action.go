// Package action defines the moves an entity can make on its turn.
package action

import (
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Kind is the closed set of action variants a battle knows how to resolve.
type Kind string

const (
	KindAttack Kind = "attack"
	KindEscape Kind = "escape"
	KindUse    Kind = "use"
)

const (
	defaultAttackName = "Attack"
	defaultStrength   = 1
	defaultSuccess    = 100

	// MinInflict and MaxInflict bound the percentage of the attacker's
	// attack stat that is added to the blow.
	MinInflict = 5
	MaxInflict = 15
)

// Action is an immutable description of a battle command.
// Strength and SuccessRate only matter for attacks.
type Action struct {
	Kind        Kind   `json:"kind" yaml:"kind"`
	Name        string `json:"name" yaml:"name"`
	Strength    int    `json:"strength,omitempty" yaml:"strength,omitempty"`
	SuccessRate int    `json:"success_rate,omitempty" yaml:"success_rate,omitempty"`
}

// NewAttack creates an attack. An empty name, a non-positive strength or a
// negative success rate fall back to "Attack", 1 and 100.
func NewAttack(name string, strength, successRate int) Action {
	if name == "" {
		name = defaultAttackName
	}
	if strength <= 0 {
		strength = defaultStrength
	}
	if successRate < 0 {
		successRate = defaultSuccess
	}
	return Action{
		Kind:        KindAttack,
		Name:        name,
		Strength:    strength,
		SuccessRate: successRate,
	}
}

// NewEscape creates the command for running away from a battle.
func NewEscape() Action {
	return Action{Kind: KindEscape, Name: "Escape"}
}

// NewUse creates the command for using an item during a battle.
func NewUse() Action {
	return Action{Kind: KindUse, Name: "Use"}
}

// Validate checks that the action is one a battle can resolve.
func (a Action) Validate() error {
	switch a.Kind {
	case KindAttack:
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", a.Name, vb)
		errors.ValidateRange("success_rate", a.SuccessRate, 0, 100, vb)
		errors.ValidateMin("strength", a.Strength, 0, vb)
		return vb.Build()
	case KindEscape, KindUse:
		vb := errors.NewValidationBuilder()
		errors.ValidateRequired("name", a.Name, vb)
		return vb.Build()
	default:
		return errors.Unimplementedf("action %q has unknown kind %q", a.Name, a.Kind)
	}
}

// Damage returns the HP a successful attack removes.
//
// inflict is the drawn percentage of the attacker's attack stat, each point
// of defense cancels ten percent, and the result never drops below 1.
// The multiplier is computed in hundredths so the result is exact.
func Damage(strength, attack, defense, inflict int) int {
	multiplier := 100 + attack*inflict - defense*10
	if multiplier < 0 {
		multiplier = 0
	}
	damage := (strength*multiplier + 50) / 100
	return max(damage, 1)
}
