// Package entities provides the things that take part in a battle.
//
// An Entity owns its stats, inventory, outfit and gold, and is the only
// place those change. Player and Monster wrap an Entity and add how each
// one decides what to do in a fight.
package entities

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-battle/internal/entities/action"
	"github.com/KirkDiggler/rpg-battle/internal/entities/items"
	"github.com/KirkDiggler/rpg-battle/internal/entities/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/narration"
)

// Entity types reported through core.Entity.
const (
	TypePlayer  = "player"
	TypeMonster = "monster"
)

// Config describes a new entity.
type Config struct {
	ID        string
	Name      string
	Type      string
	Stats     stats.Update
	Inventory []items.Entry
	// Outfit items start worn; their stat changes are applied on top of Stats.
	Outfit   []items.Item
	Gold     int
	Commands []action.Action
	Narrator narration.Sink
}

// Validate ensures the entity can be built
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("ID", c.ID, vb)
	errors.ValidateRequired("Name", c.Name, vb)
	errors.ValidateMin("Gold", c.Gold, 0, vb)

	if err := vb.Build(); err != nil {
		return err
	}

	for _, entry := range c.Inventory {
		if err := entry.Item.Validate(); err != nil {
			return errors.Wrapf(err, "invalid inventory item %q", entry.Item.Name)
		}
	}
	for _, item := range c.Outfit {
		if !item.IsEquippable() {
			return errors.InvalidArgumentf("%s cannot be equipped!", item.Name)
		}
		if err := item.Validate(); err != nil {
			return errors.Wrapf(err, "invalid outfit item %q", item.Name)
		}
	}
	for _, cmd := range c.Commands {
		if err := cmd.Validate(); err != nil {
			return errors.Wrapf(err, "invalid battle command %q", cmd.Name)
		}
	}
	return nil
}

// Entity is the shared state of everything that can fight.
// It is not safe for concurrent use; a battle owns both of its entities
// for as long as it runs.
type Entity struct {
	id       string
	name     string
	kind     string
	stats    stats.Block
	inv      *items.Inventory
	outfit   *items.Outfit
	gold     int
	commands []action.Action
	escaped  bool
	narrator narration.Sink
}

var _ core.Entity = (*Entity)(nil)

// New creates an entity from cfg.
func New(cfg *Config) (*Entity, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	e := &Entity{
		id:       cfg.ID,
		name:     cfg.Name,
		kind:     cfg.Type,
		stats:    stats.New(cfg.Stats),
		inv:      items.NewInventory(cfg.Inventory...),
		outfit:   items.NewOutfit(),
		gold:     cfg.Gold,
		narrator: cfg.Narrator,
	}
	for _, cmd := range cfg.Commands {
		e.AddCommand(cmd)
	}
	for _, item := range cfg.Outfit {
		if prev, had := e.outfit.Put(item); had {
			e.takeOff(prev)
			e.inv.Add(prev, 1)
		}
		e.putOn(item)
	}
	return e, nil
}

// GetID returns the entity's unique identifier
func (e *Entity) GetID() string {
	return e.id
}

// GetType returns the entity type
func (e *Entity) GetType() string {
	return e.kind
}

// Name returns the display name.
func (e *Entity) Name() string {
	return e.name
}

// Base returns the entity itself. Player and Monster promote it so a
// Fighter can always reach the shared state.
func (e *Entity) Base() *Entity {
	return e
}

// Stats returns a copy of the current stats.
func (e *Entity) Stats() stats.Block {
	return e.stats
}

// SetStats applies u to the stats, keeping every clamp.
func (e *Entity) SetStats(u stats.Update) {
	e.stats = e.stats.Apply(u)
}

// Dead reports whether HP has reached zero.
func (e *Entity) Dead() bool {
	return e.stats.Dead()
}

// Gold returns the gold carried.
func (e *Entity) Gold() int {
	return e.gold
}

// SetGold sets the gold carried. Negative amounts become zero.
func (e *Entity) SetGold(gold int) {
	e.gold = max(gold, 0)
}

// AdjustGold adds delta to the gold carried, never going below zero.
func (e *Entity) AdjustGold(delta int) {
	e.SetGold(e.gold + delta)
}

// Escaped reports whether the entity ran from the current battle.
func (e *Entity) Escaped() bool {
	return e.escaped
}

// SetEscaped marks or clears the escape flag. Only the battle uses it.
func (e *Entity) SetEscaped(escaped bool) {
	e.escaped = escaped
}

// SetNarrator replaces where the entity's narration goes.
func (e *Entity) SetNarrator(sink narration.Sink) {
	e.narrator = sink
}

// Inventory returns a copy of the inventory.
func (e *Entity) Inventory() *items.Inventory {
	return e.inv.Clone()
}

// Outfit returns a copy of the outfit.
func (e *Entity) Outfit() *items.Outfit {
	return e.outfit.Clone()
}

// Equipped returns the item worn in slot.
func (e *Entity) Equipped(slot items.Slot) (items.Item, bool) {
	return e.outfit.Get(slot)
}

// Commands returns the battle commands sorted by name.
func (e *Entity) Commands() []action.Action {
	out := make([]action.Action, len(e.commands))
	copy(out, e.commands)
	return out
}

// AddCommand learns a battle command, replacing one with the same name.
func (e *Entity) AddCommand(cmd action.Action) {
	e.RemoveCommand(cmd.Name)
	e.commands = append(e.commands, cmd)
	sort.SliceStable(e.commands, func(i, j int) bool {
		return items.NameKey(e.commands[i].Name) < items.NameKey(e.commands[j].Name)
	})
}

// RemoveCommand forgets the named battle command.
func (e *Entity) RemoveCommand(name string) bool {
	for i, cmd := range e.commands {
		if items.SameName(cmd.Name, name) {
			e.commands = append(e.commands[:i], e.commands[i+1:]...)
			return true
		}
	}
	return false
}

// FindCommand looks up a battle command by name, ignoring case.
func (e *Entity) FindCommand(name string) (action.Action, bool) {
	for _, cmd := range e.commands {
		if items.SameName(cmd.Name, name) {
			return cmd, true
		}
	}
	return action.Action{}, false
}

// FormatCommands lists the battle commands one per line.
func (e *Entity) FormatCommands() string {
	var b strings.Builder
	for _, cmd := range e.commands {
		fmt.Fprintf(&b, "* %s\n", cmd.Name)
	}
	return b.String()
}

// FormatStatus renders stats, gold and equipment for the status screen.
func (e *Entity) FormatStatus() string {
	return fmt.Sprintf("%s\n\nStats:\n%s\n\nGold: %d\n\nEquipment:\n%s",
		e.name, e.stats, e.gold, e.outfit.Format())
}

// FormatInventory renders the inventory, or a note that it is empty.
func (e *Entity) FormatInventory() string {
	if e.inv.IsEmpty() {
		return "Current inventory: nothing!"
	}
	return "Current inventory:\n" + e.inv.Format()
}

func (e *Entity) say(format string, args ...interface{}) {
	narration.Sayf(e.narrator, format, args...)
}
