package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/entities/action"
	"github.com/KirkDiggler/rpg-battle/internal/entities/items"
	"github.com/KirkDiggler/rpg-battle/internal/entities/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/narration"
)

// Snapshot is the storable form of an entity. Stats already include the
// outfit's stat changes, so restoring never applies them again.
type Snapshot struct {
	ID        string           `json:"id" yaml:"id"`
	Name      string           `json:"name" yaml:"name"`
	Type      string           `json:"type" yaml:"type"`
	Stats     stats.Block      `json:"stats" yaml:"stats"`
	Inventory *items.Inventory `json:"inventory" yaml:"inventory"`
	Outfit    *items.Outfit    `json:"outfit" yaml:"outfit"`
	Gold      int              `json:"gold" yaml:"gold"`
	Commands  []action.Action  `json:"commands" yaml:"commands"`
}

// PlayerData is the storable form of a player.
type PlayerData struct {
	Snapshot        `yaml:",inline"`
	RespawnLocation string    `json:"respawn_location,omitempty" yaml:"respawn_location,omitempty"`
	SavedAt         time.Time `json:"saved_at" yaml:"saved_at"`
}

// Snapshot captures the entity's current state.
func (e *Entity) Snapshot() Snapshot {
	return Snapshot{
		ID:        e.id,
		Name:      e.name,
		Type:      e.kind,
		Stats:     e.stats,
		Inventory: e.inv.Clone(),
		Outfit:    e.outfit.Clone(),
		Gold:      e.gold,
		Commands:  e.Commands(),
	}
}

// FromSnapshot rebuilds an entity from stored state.
// Stored state that breaks the entity's invariants is reported as DataLoss.
func FromSnapshot(s Snapshot, narrator narration.Sink) (*Entity, error) {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("id", s.ID, vb)
	errors.ValidateRequired("name", s.Name, vb)
	if err := vb.Build(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored entity is incomplete")
	}

	e := &Entity{
		id:       s.ID,
		name:     s.Name,
		kind:     s.Type,
		stats:    s.Stats.Apply(stats.Update{}),
		inv:      items.NewInventory(),
		outfit:   items.NewOutfit(),
		gold:     max(s.Gold, 0),
		narrator: narrator,
	}
	if s.Inventory != nil {
		e.inv = s.Inventory.Clone()
	}
	if s.Outfit != nil {
		e.outfit = s.Outfit.Clone()
	}
	for _, cmd := range s.Commands {
		e.AddCommand(cmd)
	}

	for _, item := range e.outfit.Items() {
		if err := item.Validate(); err != nil {
			return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "stored outfit item %q is invalid", item.Name)
		}
	}
	return e, nil
}

// Data captures the player's current state for storage.
func (p *Player) Data() *PlayerData {
	return &PlayerData{
		Snapshot:        p.Snapshot(),
		RespawnLocation: p.respawn,
	}
}

// PlayerFromData rebuilds a player from stored state.
func PlayerFromData(data *PlayerData, in Input, narrator narration.Sink) (*Player, error) {
	if data == nil {
		return nil, errors.InvalidArgument("player data is required")
	}

	e, err := FromSnapshot(data.Snapshot, narrator)
	if err != nil {
		return nil, err
	}
	e.kind = TypePlayer

	return &Player{
		Entity:  e,
		input:   in,
		respawn: data.RespawnLocation,
	}, nil
}
