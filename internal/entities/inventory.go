package entities

import (
	"github.com/KirkDiggler/rpg-battle/internal/entities/items"
	"github.com/KirkDiggler/rpg-battle/internal/entities/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// AddItem puts amount of item into the inventory.
func (e *Entity) AddItem(item items.Item, amount int) {
	e.inv.Add(item, amount)
}

// FindItem looks up a carried item by name, ignoring case.
func (e *Entity) FindItem(name string) (items.Item, bool) {
	return e.inv.Find(name)
}

// RemoveItem takes up to amount of the named item out of the inventory.
func (e *Entity) RemoveItem(name string, amount int) bool {
	return e.inv.Remove(name, amount)
}

// AddLoot adds gold and treasures and announces what was received.
func (e *Entity) AddLoot(gold int, treasures []items.Item) {
	if gold <= 0 && len(treasures) == 0 {
		e.say("Loot: nothing!")
		return
	}

	e.say("Loot: ")
	if gold > 0 {
		e.AdjustGold(gold)
		e.say("* %d gold", gold)
	}
	for _, t := range treasures {
		e.inv.Add(t, 1)
		e.say("* %s", t.Name)
	}
}

// DropItem throws away one of the named item.
func (e *Entity) DropItem(name string) error {
	item, ok := e.inv.Find(name)
	if !ok {
		return errors.NotFound(MsgNoSuchItem).WithMeta("item", name)
	}
	if !item.Disposable {
		return errors.InvalidArgument(MsgCannotDrop).WithMeta("item", item.Name)
	}

	e.inv.Remove(item.Name, 1)
	e.say("You have dropped %s.", item.Name)
	return nil
}

// UseItem uses one of the named item on target, or on the entity itself
// when target is nil. Consumable items are used up.
func (e *Entity) UseItem(name string, target *Entity) error {
	item, ok := e.inv.Find(name)
	if !ok {
		return errors.NotFound(MsgNoSuchItem).WithMeta("item", name)
	}
	if target == nil {
		target = e
	}

	switch item.Kind {
	case items.KindFood:
		e.eat(item, target)
	case items.KindEquipment:
		e.say("Type 'equip %s' to equip this item.", item.Name)
	default:
		e.say("Nothing happens.")
	}

	if item.Consumable {
		e.inv.Remove(item.Name, 1)
	}
	return nil
}

func (e *Entity) eat(food items.Item, target *Entity) {
	recovered := min(food.Recovers, target.stats.Missing())
	target.SetStats(stats.Update{HP: stats.Value(target.stats.HP + recovered)})

	if target == e {
		e.say("%s uses %s and recovers %d HP!", e.name, food.Name, recovered)
	} else {
		e.say("%s uses %s on %s!", e.name, food.Name, target.name)
		e.say("%s recovers %d HP!", target.name, recovered)
	}
	e.say("%s's HP: %d/%d", target.name, target.stats.HP, target.stats.MaxHP)
}
