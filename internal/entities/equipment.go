package entities

import (
	"github.com/KirkDiggler/rpg-battle/internal/entities/items"
	"github.com/KirkDiggler/rpg-battle/internal/entities/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// EquipItem moves the named item from the inventory into its outfit slot.
//
// Whatever was in that slot goes back to the inventory with its stat change
// reversed. Nothing changes when the item is missing or cannot be worn.
func (e *Entity) EquipItem(name string) error {
	item, ok := e.inv.Find(name)
	if !ok {
		return errors.NotFound(MsgNoSuchItem).WithMeta("item", name)
	}
	if !item.IsEquippable() {
		return errors.InvalidArgumentf("%s cannot be equipped!", item.Name).WithMeta("item", item.Name)
	}
	if err := item.Validate(); err != nil {
		return err
	}

	e.inv.Remove(item.Name, 1)
	if prev, had := e.outfit.Put(item); had {
		e.takeOff(prev)
		e.inv.Add(prev, 1)
	}
	e.putOn(item)

	e.say("%s equips %s!", e.name, item.Name)
	return nil
}

// UnequipItem takes the named item off and returns it to the inventory.
func (e *Entity) UnequipItem(name string) error {
	item, ok := e.outfit.FindByName(name)
	if !ok {
		return errors.NotFound(MsgNotEquipped).WithMeta("item", name)
	}

	e.outfit.Remove(item.Slot)
	e.takeOff(item)
	e.inv.Add(item, 1)
	// Taking armor off never knocks an entity out.
	if e.stats.HP < 1 {
		e.SetStats(stats.Update{HP: stats.Value(1)})
	}

	e.say("%s unequips %s!", e.name, item.Name)
	return nil
}

func (e *Entity) putOn(item items.Item) {
	e.alterStats(item.StatChange, 1)
	if item.Attack != nil {
		e.AddCommand(*item.Attack)
	}
}

func (e *Entity) takeOff(item items.Item) {
	e.alterStats(item.StatChange, -1)
	if item.Attack != nil {
		e.RemoveCommand(item.Attack.Name)
	}
}

// alterStats applies or reverses an equipment delta.
func (e *Entity) alterStats(d stats.Delta, sign int) {
	e.SetStats(e.stats.Shift(d, sign))
}
