package items

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Outfit maps each slot to the item worn there, if any.
// The zero value is an empty outfit ready to use.
type Outfit struct {
	slots map[Slot]Item
}

// NewOutfit creates an outfit wearing the given items.
// Later items replace earlier ones in the same slot.
func NewOutfit(worn ...Item) *Outfit {
	o := &Outfit{}
	for _, item := range worn {
		o.Put(item)
	}
	return o
}

// Get returns the item in slot.
func (o *Outfit) Get(slot Slot) (Item, bool) {
	item, ok := o.slots[slot]
	return item, ok
}

// Put places item in its slot and returns whatever was displaced.
func (o *Outfit) Put(item Item) (Item, bool) {
	if o.slots == nil {
		o.slots = make(map[Slot]Item)
	}
	prev, had := o.slots[item.Slot]
	o.slots[item.Slot] = item
	return prev, had
}

// Remove empties slot and returns what was there.
func (o *Outfit) Remove(slot Slot) (Item, bool) {
	item, ok := o.slots[slot]
	if ok {
		delete(o.slots, slot)
	}
	return item, ok
}

// FindByName returns the worn item with the given name, ignoring case.
func (o *Outfit) FindByName(name string) (Item, bool) {
	for _, slot := range Slots {
		if item, ok := o.slots[slot]; ok && item.Is(name) {
			return item, true
		}
	}
	return Item{}, false
}

// Items returns the worn items in slot order.
func (o *Outfit) Items() []Item {
	out := make([]Item, 0, len(o.slots))
	for _, slot := range Slots {
		if item, ok := o.slots[slot]; ok {
			out = append(out, item)
		}
	}
	return out
}

// IsEmpty reports whether nothing is worn.
func (o *Outfit) IsEmpty() bool {
	return len(o.slots) == 0
}

// Clone returns an independent copy.
func (o *Outfit) Clone() *Outfit {
	return NewOutfit(o.Items()...)
}

// Format lists every slot, e.g. "* Weapon: Hammer" or "* Shield: none".
func (o *Outfit) Format() string {
	var b strings.Builder
	for _, slot := range Slots {
		name := "none"
		if item, ok := o.slots[slot]; ok {
			name = item.Name
		}
		fmt.Fprintf(&b, "* %s: %s\n", slot.Title(), name)
	}
	return b.String()
}

// MarshalJSON encodes the worn items as a list in slot order.
func (o *Outfit) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.Items())
}

// UnmarshalJSON decodes a list of worn items.
func (o *Outfit) UnmarshalJSON(data []byte) error {
	var worn []Item
	if err := json.Unmarshal(data, &worn); err != nil {
		return err
	}
	*o = *NewOutfit(worn...)
	return nil
}

// MarshalYAML encodes the worn items as a list in slot order.
func (o *Outfit) MarshalYAML() (interface{}, error) {
	return o.Items(), nil
}

// UnmarshalYAML decodes a list of worn items.
func (o *Outfit) UnmarshalYAML(value *yaml.Node) error {
	var worn []Item
	if err := value.Decode(&worn); err != nil {
		return err
	}
	*o = *NewOutfit(worn...)
	return nil
}
