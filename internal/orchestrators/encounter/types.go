package encounter

import (
	"github.com/KirkDiggler/rpg-battle/internal/battle"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
)

// FightInput defines the request for fighting a monster
type FightInput struct {
	PlayerID  string
	MonsterID string
}

// FightOutput defines the response for a finished fight
type FightOutput struct {
	Result *battle.Result
	// Player is the player's state as saved after the fight.
	Player *entities.PlayerData
}

// EquipInput defines the request for equipping an item
type EquipInput struct {
	PlayerID string
	ItemName string
}

// EquipOutput defines the response for equipping an item
type EquipOutput struct {
	Player *entities.PlayerData
}

// UnequipInput defines the request for unequipping an item
type UnequipInput struct {
	PlayerID string
	ItemName string
}

// UnequipOutput defines the response for unequipping an item
type UnequipOutput struct {
	Player *entities.PlayerData
}

// UseItemInput defines the request for using an item on the player
type UseItemInput struct {
	PlayerID string
	ItemName string
}

// UseItemOutput defines the response for using an item
type UseItemOutput struct {
	Player *entities.PlayerData
}

// DropItemInput defines the request for dropping an item
type DropItemInput struct {
	PlayerID string
	ItemName string
}

// DropItemOutput defines the response for dropping an item
type DropItemOutput struct {
	Player *entities.PlayerData
}

// StatusInput defines the request for a player's status
type StatusInput struct {
	PlayerID string
}

// StatusOutput defines the response for a player's status
type StatusOutput struct {
	Player *entities.PlayerData
	// Text is the status screen followed by the inventory.
	Text string
	// New is set when no save existed and the player was made from a template.
	New bool
}

// ListPlayersInput defines the request for listing saved players
type ListPlayersInput struct{}

// ListPlayersOutput defines the response for listing saved players
type ListPlayersOutput struct {
	PlayerIDs []string
}

// ResetInput defines the request for deleting a player's save
type ResetInput struct {
	PlayerID string
}

// ResetOutput defines the response for deleting a player's save
type ResetOutput struct{}

func (i *EquipInput) playerID() string {
	if i == nil {
		return ""
	}
	return i.PlayerID
}

func (i *UnequipInput) playerID() string {
	if i == nil {
		return ""
	}
	return i.PlayerID
}

func (i *UseItemInput) playerID() string {
	if i == nil {
		return ""
	}
	return i.PlayerID
}

func (i *DropItemInput) playerID() string {
	if i == nil {
		return ""
	}
	return i.PlayerID
}
