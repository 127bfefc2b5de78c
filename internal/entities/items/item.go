// Package items holds the things an entity can carry or wear.
package items

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/KirkDiggler/rpg-battle/internal/entities/action"
	"github.com/KirkDiggler/rpg-battle/internal/entities/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Kind selects what happens when an item is used.
type Kind string

const (
	KindItem      Kind = "item"
	KindFood      Kind = "food"
	KindEquipment Kind = "equipment"
)

// Slot is a body position that holds at most one equipped item.
type Slot string

const (
	SlotWeapon Slot = "weapon"
	SlotShield Slot = "shield"
	SlotHelmet Slot = "helmet"
	SlotTorso  Slot = "torso"
	SlotLegs   Slot = "legs"
)

// Slots lists every slot in display order.
var Slots = []Slot{SlotWeapon, SlotShield, SlotHelmet, SlotTorso, SlotLegs}

// Valid reports whether s is one of the known slots.
func (s Slot) Valid() bool {
	for _, slot := range Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// Title returns the slot name as shown to the player.
func (s Slot) Title() string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(string(s[:1])) + string(s[1:])
}

// Item is an immutable item definition. Two items with the same name
// (ignoring case) are the same item as far as an Inventory is concerned.
type Item struct {
	Name       string         `json:"name" yaml:"name"`
	Kind       Kind           `json:"kind" yaml:"kind"`
	Price      int            `json:"price,omitempty" yaml:"price,omitempty"`
	Consumable bool           `json:"consumable,omitempty" yaml:"consumable,omitempty"`
	Disposable bool           `json:"disposable,omitempty" yaml:"disposable,omitempty"`
	Recovers   int            `json:"recovers,omitempty" yaml:"recovers,omitempty"`
	Slot       Slot           `json:"slot,omitempty" yaml:"slot,omitempty"`
	StatChange stats.Delta    `json:"stat_change,omitempty" yaml:"stat_change,omitempty"`
	Attack     *action.Action `json:"attack,omitempty" yaml:"attack,omitempty"`
}

// NewItem creates a plain item that does nothing when used.
func NewItem(name string, price int) Item {
	return Item{Name: name, Kind: KindItem, Price: price, Disposable: true}
}

// NewFood creates a consumable item that restores HP.
func NewFood(name string, recovers int) Item {
	return Item{
		Name:       name,
		Kind:       KindFood,
		Consumable: true,
		Disposable: true,
		Recovers:   recovers,
	}
}

// NewEquipment creates an item worn in slot that changes stats by delta.
func NewEquipment(name string, slot Slot, delta stats.Delta) Item {
	return Item{
		Name:       name,
		Kind:       KindEquipment,
		Disposable: true,
		Slot:       slot,
		StatChange: delta,
	}
}

// NewWeapon creates equipment for the weapon slot. While it is worn the
// wearer gains attack as a battle command.
func NewWeapon(name string, delta stats.Delta, attack action.Action) Item {
	item := NewEquipment(name, SlotWeapon, delta)
	item.Attack = &attack
	return item
}

// IsEquippable reports whether the item can be worn.
func (i Item) IsEquippable() bool {
	return i.Kind == KindEquipment
}

// Is reports whether name refers to this item, ignoring case.
func (i Item) Is(name string) bool {
	return SameName(i.Name, name)
}

// Validate checks the item definition. Equipment without a usable slot
// cannot be worn by anything and is reported as Unimplemented.
func (i Item) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", i.Name, vb)
	errors.ValidateEnum("kind", string(i.Kind),
		[]string{string(KindItem), string(KindFood), string(KindEquipment)}, vb)
	errors.ValidateMin("price", i.Price, 0, vb)
	errors.ValidateMin("recovers", i.Recovers, 0, vb)
	// Deltas only add, so taking an item off always undoes putting it on.
	errors.ValidateMin("stat_change.attack", i.StatChange.Attack, 0, vb)
	errors.ValidateMin("stat_change.defense", i.StatChange.Defense, 0, vb)
	errors.ValidateMin("stat_change.agility", i.StatChange.Agility, 0, vb)
	errors.ValidateMin("stat_change.max_hp", i.StatChange.MaxHP, 0, vb)
	if err := vb.Build(); err != nil {
		return err
	}

	if i.IsEquippable() && !i.Slot.Valid() {
		return errors.Unimplementedf("equippable item %q must have a slot", i.Name).
			WithMeta("slot", string(i.Slot))
	}
	if i.Attack != nil {
		if i.Slot != SlotWeapon {
			return errors.InvalidArgumentf("only weapons grant an attack, %q is %q", i.Name, i.Slot)
		}
		if err := i.Attack.Validate(); err != nil {
			return errors.Wrapf(err, "invalid attack on %q", i.Name)
		}
	}
	return nil
}

var folder = cases.Fold()

// SameName compares item or command names the way the player types them.
func SameName(a, b string) bool {
	return NameKey(a) == NameKey(b)
}

// NameKey folds a name for case-insensitive lookups.
func NameKey(name string) string {
	return folder.String(strings.TrimSpace(name))
}
