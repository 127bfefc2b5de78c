package testutils

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/entities/action"
	"github.com/KirkDiggler/rpg-battle/internal/entities/items"
	"github.com/KirkDiggler/rpg-battle/internal/entities/stats"
	"github.com/KirkDiggler/rpg-battle/internal/narration"
)

const (
	// TestPlayerID is the ID used by player fixtures
	TestPlayerID = "player-test-001"
	// TestPlayerName is the name used by player fixtures
	TestPlayerName = "Hero"
)

// Banana is a food fixture restoring 5 HP.
func Banana() items.Item {
	return items.NewFood("Banana", 5)
}

// Hammer is a weapon fixture granting the Bash attack.
func Hammer() items.Item {
	return items.NewWeapon("Hammer", stats.Delta{Attack: 3}, action.NewAttack("Bash", 5, 100))
}

// Knife is a weapon fixture granting the Stab attack.
func Knife() items.Item {
	return items.NewWeapon("Knife", stats.Delta{Attack: 1, Agility: 2}, action.NewAttack("Stab", 3, 100))
}

// Helmet is an armor fixture for the helmet slot.
func Helmet() items.Item {
	return items.NewEquipment("Helmet", items.SlotHelmet, stats.Delta{Defense: 2, MaxHP: 5})
}

// StatsOf builds a stats update for the common fixture shape.
func StatsOf(maxHP, attack, defense, agility int) stats.Update {
	return stats.Update{
		MaxHP:   stats.Value(maxHP),
		Attack:  stats.Value(attack),
		Defense: stats.Value(defense),
		Agility: stats.Value(agility),
	}
}

// CreateTestPlayer creates a player with 30 HP carrying the fixture items.
func CreateTestPlayer(in entities.Input, sink narration.Sink) (*entities.Player, error) {
	return entities.NewPlayer(&entities.PlayerConfig{
		Entity: entities.Config{
			ID:    TestPlayerID,
			Name:  TestPlayerName,
			Stats: StatsOf(30, 3, 2, 2),
			Inventory: []items.Entry{
				{Item: Banana(), Amount: 2},
				{Item: Hammer(), Amount: 1},
				{Item: Knife(), Amount: 1},
				{Item: Helmet(), Amount: 1},
			},
			Gold:     20,
			Narrator: sink,
		},
		Input:           in,
		RespawnLocation: "the town square",
	})
}

// CreateTestMonster creates a monster with a single attack.
func CreateTestMonster(id string, update stats.Update, roller dice.Roller) (*entities.Monster, error) {
	return entities.NewMonster(&entities.MonsterConfig{
		Entity: entities.Config{
			ID:       id,
			Name:     "Alien",
			Stats:    update,
			Gold:     10,
			Commands: []action.Action{action.NewAttack("Kick", 5, 100)},
		},
		Roller: roller,
	})
}
