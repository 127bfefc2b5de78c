package items

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Entry is one stack of items. Amount is always at least 1.
type Entry struct {
	Item   Item `json:"item" yaml:"item"`
	Amount int  `json:"amount" yaml:"amount"`
}

// Inventory is an ordered collection of item stacks keyed by
// case-insensitive item name. Empty stacks are removed.
// The zero value is an empty inventory ready to use.
type Inventory struct {
	entries []Entry
}

// NewInventory creates an inventory holding entries, merging repeated names.
func NewInventory(entries ...Entry) *Inventory {
	inv := &Inventory{}
	for _, e := range entries {
		inv.Add(e.Item, e.Amount)
	}
	return inv
}

// Add puts amount of item into the inventory. Adding to an existing stack
// keeps its position; a new stack is appended. Non-positive amounts are ignored.
func (inv *Inventory) Add(item Item, amount int) {
	if amount <= 0 {
		return
	}
	if i := inv.index(item.Name); i >= 0 {
		inv.entries[i].Amount += amount
		return
	}
	inv.entries = append(inv.entries, Entry{Item: item, Amount: amount})
}

// Remove takes up to amount of the named item out of the inventory,
// dropping the stack when it empties. It reports whether the item was held.
func (inv *Inventory) Remove(name string, amount int) bool {
	i := inv.index(name)
	if i < 0 {
		return false
	}
	inv.entries[i].Amount -= amount
	if inv.entries[i].Amount <= 0 {
		inv.entries = append(inv.entries[:i], inv.entries[i+1:]...)
	}
	return true
}

// Find returns the named item.
func (inv *Inventory) Find(name string) (Item, bool) {
	e, ok := inv.Entry(name)
	return e.Item, ok
}

// Entry returns the stack for the named item.
func (inv *Inventory) Entry(name string) (Entry, bool) {
	i := inv.index(name)
	if i < 0 {
		return Entry{}, false
	}
	return inv.entries[i], true
}

// Entries returns a copy of the stacks in order.
func (inv *Inventory) Entries() []Entry {
	out := make([]Entry, len(inv.entries))
	copy(out, inv.entries)
	return out
}

// Len returns the number of distinct items.
func (inv *Inventory) Len() int {
	return len(inv.entries)
}

// IsEmpty reports whether nothing is held.
func (inv *Inventory) IsEmpty() bool {
	return len(inv.entries) == 0
}

// Clear removes every stack.
func (inv *Inventory) Clear() {
	inv.entries = nil
}

// Clone returns an independent copy.
func (inv *Inventory) Clone() *Inventory {
	return &Inventory{entries: inv.Entries()}
}

// RandomItem picks one of the held items with equal odds per stack.
func (inv *Inventory) RandomItem(roller dice.Roller) (Item, bool, error) {
	if inv.IsEmpty() {
		return Item{}, false, nil
	}
	roll, err := roller.Roll(len(inv.entries))
	if err != nil {
		return Item{}, false, errors.Wrap(err, "failed to pick an item")
	}
	return inv.entries[roll-1].Item, true, nil
}

// Format lists the stacks one per line, e.g. "* Banana (2)".
func (inv *Inventory) Format() string {
	var b strings.Builder
	for _, e := range inv.entries {
		fmt.Fprintf(&b, "* %s (%d)\n", e.Item.Name, e.Amount)
	}
	return b.String()
}

// MarshalJSON encodes the inventory as its list of stacks.
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	return json.Marshal(inv.Entries())
}

// UnmarshalJSON decodes a list of stacks, merging repeated names.
func (inv *Inventory) UnmarshalJSON(data []byte) error {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*inv = *NewInventory(entries...)
	return nil
}

// MarshalYAML encodes the inventory as its list of stacks.
func (inv *Inventory) MarshalYAML() (interface{}, error) {
	return inv.Entries(), nil
}

// UnmarshalYAML decodes a list of stacks, merging repeated names.
func (inv *Inventory) UnmarshalYAML(value *yaml.Node) error {
	var entries []Entry
	if err := value.Decode(&entries); err != nil {
		return err
	}
	*inv = *NewInventory(entries...)
	return nil
}

func (inv *Inventory) index(name string) int {
	key := NameKey(name)
	for i, e := range inv.entries {
		if NameKey(e.Item.Name) == key {
			return i
		}
	}
	return -1
}
