// Package stats holds the combat statistics of an entity.
//
// A Block is a value: every change goes through Apply, which returns a new
// Block with the clamps re-established. Entities hand out copies, so a Block
// held by a caller never changes underneath it.
package stats

import "fmt"

// Block is a clamped snapshot of combat statistics.
// MaxHP, Attack, Defense and Agility are at least 1; HP is within [0, MaxHP].
type Block struct {
	MaxHP   int `json:"max_hp" yaml:"max_hp"`
	HP      int `json:"hp" yaml:"hp"`
	Attack  int `json:"attack" yaml:"attack"`
	Defense int `json:"defense" yaml:"defense"`
	Agility int `json:"agility" yaml:"agility"`
}

// Update is a partial set of stat overrides. Nil fields are left untouched.
type Update struct {
	MaxHP   *int `json:"max_hp,omitempty" yaml:"max_hp,omitempty"`
	HP      *int `json:"hp,omitempty" yaml:"hp,omitempty"`
	Attack  *int `json:"attack,omitempty" yaml:"attack,omitempty"`
	Defense *int `json:"defense,omitempty" yaml:"defense,omitempty"`
	Agility *int `json:"agility,omitempty" yaml:"agility,omitempty"`
}

// Delta is the fixed change an equippable item makes while worn.
type Delta struct {
	Attack  int `json:"attack,omitempty" yaml:"attack,omitempty"`
	Defense int `json:"defense,omitempty" yaml:"defense,omitempty"`
	Agility int `json:"agility,omitempty" yaml:"agility,omitempty"`
	MaxHP   int `json:"max_hp,omitempty" yaml:"max_hp,omitempty"`
}

// Value returns a pointer to v for use in an Update.
func Value(v int) *int {
	return &v
}

// New builds a Block from defaults of 1 merged with u.
// When u leaves HP unset the entity starts at full health.
func New(u Update) Block {
	b := Block{MaxHP: 1, Attack: 1, Defense: 1, Agility: 1}
	merged := b.merge(u)
	if u.HP == nil {
		merged.HP = merged.MaxHP
	}
	return merged.clamp()
}

// Apply returns a copy of b with the fields present in u overwritten and all
// clamps re-established. It never fails.
func (b Block) Apply(u Update) Block {
	return b.merge(u).clamp()
}

// Shift builds the update that adds d to b, or removes it when sign is negative.
// HP is not part of the update; it only moves through the MaxHP clamp.
func (b Block) Shift(d Delta, sign int) Update {
	if sign < 0 {
		sign = -1
	} else {
		sign = 1
	}
	return Update{
		Attack:  Value(b.Attack + sign*d.Attack),
		Defense: Value(b.Defense + sign*d.Defense),
		Agility: Value(b.Agility + sign*d.Agility),
		MaxHP:   Value(b.MaxHP + sign*d.MaxHP),
	}
}

// Dead reports whether HP has reached zero.
func (b Block) Dead() bool {
	return b.HP == 0
}

// Missing returns how much HP is needed to be back at MaxHP.
func (b Block) Missing() int {
	return b.MaxHP - b.HP
}

// IsZero reports whether d changes nothing.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// String renders the block the way the status screen shows it.
func (b Block) String() string {
	return fmt.Sprintf("* HP: %d/%d\n* Attack: %d\n* Defense: %d\n* Agility: %d",
		b.HP, b.MaxHP, b.Attack, b.Defense, b.Agility)
}

func (b Block) merge(u Update) Block {
	if u.MaxHP != nil {
		b.MaxHP = *u.MaxHP
	}
	if u.HP != nil {
		b.HP = *u.HP
	}
	if u.Attack != nil {
		b.Attack = *u.Attack
	}
	if u.Defense != nil {
		b.Defense = *u.Defense
	}
	if u.Agility != nil {
		b.Agility = *u.Agility
	}
	return b
}

func (b Block) clamp() Block {
	b.MaxHP = max(b.MaxHP, 1)
	b.Attack = max(b.Attack, 1)
	b.Defense = max(b.Defense, 1)
	b.Agility = max(b.Agility, 1)
	b.HP = min(max(b.HP, 0), b.MaxHP)
	return b
}
