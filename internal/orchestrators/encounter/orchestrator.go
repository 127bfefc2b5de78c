// Package encounter implements the encounter orchestrator: it loads the
// player, spawns monsters from the catalog, runs battles and saves the
// player afterwards.
package encounter

//go:generate mockgen -destination=mock/mock_service.go -package=encountermock github.com/KirkDiggler/rpg-battle/internal/orchestrators/encounter Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-battle/internal/battle"
	"github.com/KirkDiggler/rpg-battle/internal/catalog"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/narration"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/player"
)

// Service defines the interface for encounter operations.
// Errors caused by what the player typed (unknown item, item that cannot
// be worn) are returned as user errors, so errors.GetMessage is fit to show.
type Service interface {
	// Fight runs a battle between the player and a fresh monster
	Fight(ctx context.Context, input *FightInput) (*FightOutput, error)

	// Equip puts on an item from the player's inventory
	Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error)

	// Unequip takes off a worn item
	Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error)

	// UseItem uses an item on the player
	UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error)

	// DropItem throws away one of an item
	DropItem(ctx context.Context, input *DropItemInput) (*DropItemOutput, error)

	// Status describes the player
	Status(ctx context.Context, input *StatusInput) (*StatusOutput, error)

	// ListPlayers returns the IDs of all saved players
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// Reset deletes a player's save so the next load starts over
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)
}

// Config holds the dependencies for the encounter orchestrator
type Config struct {
	PlayerRepo  player.Repository
	Catalog     *catalog.Catalog
	Roller      dice.Roller
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	Input       entities.Input
	Narrator    narration.Sink
	// DefaultPlayer is the catalog template for players without a save.
	DefaultPlayer string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Input == nil {
		vb.RequiredField("Input")
	}
	errors.ValidateRequired("DefaultPlayer", c.DefaultPlayer, vb)

	if err := vb.Build(); err != nil {
		return err
	}

	if _, err := c.Catalog.Player(c.DefaultPlayer); err != nil {
		return errors.InvalidArgumentf("default player template %q is not in the catalog", c.DefaultPlayer)
	}
	return nil
}

type orchestrator struct {
	playerRepo    player.Repository
	catalog       *catalog.Catalog
	roller        dice.Roller
	eventBus      events.EventBus
	idGen         idgen.Generator
	input         entities.Input
	narrator      narration.Sink
	defaultPlayer string
}

// NewOrchestrator creates a new encounter orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		playerRepo:    cfg.PlayerRepo,
		catalog:       cfg.Catalog,
		roller:        cfg.Roller,
		eventBus:      cfg.EventBus,
		idGen:         cfg.IDGenerator,
		input:         cfg.Input,
		narrator:      cfg.Narrator,
		defaultPlayer: cfg.DefaultPlayer,
	}, nil
}

// Fight runs a battle between the player and a fresh monster
func (o *orchestrator) Fight(ctx context.Context, input *FightInput) (*FightOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("PlayerID", input.PlayerID, vb)
	errors.ValidateRequired("MonsterID", input.MonsterID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	p, _, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	monster, err := o.catalog.SpawnMonster(ctx, input.MonsterID, o.idGen, o.roller)
	if err != nil {
		return nil, err
	}
	monster.SetNarrator(o.narrator)
	if msg := monster.Message(); msg != "" {
		narration.Sayf(o.narrator, "%s: %s", monster.Name(), msg)
	}

	b, err := battle.New(&battle.Config{
		Roller:   o.roller,
		EventBus: o.eventBus,
		Narrator: o.narrator,
	}, p, monster)
	if err != nil {
		return nil, err
	}

	result, err := b.Run(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "battle against %s failed", input.MonsterID)
	}

	saved, err := o.save(ctx, p)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Fight finished",
		"player_id", p.GetID(),
		"monster", input.MonsterID,
		"rounds", result.Rounds,
		"escaped", result.Escaped,
		"player_won", result.Winner != nil && result.Winner.GetID() == p.GetID(),
	)
	return &FightOutput{Result: result, Player: saved}, nil
}

// Equip puts on an item from the player's inventory
func (o *orchestrator) Equip(ctx context.Context, input *EquipInput) (*EquipOutput, error) {
	saved, err := o.mutate(ctx, "equip", input.playerID(), func(p *entities.Player) error {
		return p.EquipItem(input.ItemName)
	})
	if err != nil {
		return nil, err
	}
	return &EquipOutput{Player: saved}, nil
}

// Unequip takes off a worn item
func (o *orchestrator) Unequip(ctx context.Context, input *UnequipInput) (*UnequipOutput, error) {
	saved, err := o.mutate(ctx, "unequip", input.playerID(), func(p *entities.Player) error {
		return p.UnequipItem(input.ItemName)
	})
	if err != nil {
		return nil, err
	}
	return &UnequipOutput{Player: saved}, nil
}

// UseItem uses an item on the player
func (o *orchestrator) UseItem(ctx context.Context, input *UseItemInput) (*UseItemOutput, error) {
	saved, err := o.mutate(ctx, "use", input.playerID(), func(p *entities.Player) error {
		return p.UseItem(input.ItemName, nil)
	})
	if err != nil {
		return nil, err
	}
	return &UseItemOutput{Player: saved}, nil
}

// DropItem throws away one of an item
func (o *orchestrator) DropItem(ctx context.Context, input *DropItemInput) (*DropItemOutput, error) {
	saved, err := o.mutate(ctx, "drop", input.playerID(), func(p *entities.Player) error {
		return p.DropItem(input.ItemName)
	})
	if err != nil {
		return nil, err
	}
	return &DropItemOutput{Player: saved}, nil
}

// Status describes the player
func (o *orchestrator) Status(ctx context.Context, input *StatusInput) (*StatusOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	p, isNew, err := o.loadPlayer(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &StatusOutput{
		Player: p.Data(),
		Text:   p.FormatStatus() + "\n" + p.FormatInventory(),
		New:    isNew,
	}, nil
}

// ListPlayers returns the IDs of all saved players
func (o *orchestrator) ListPlayers(ctx context.Context, _ *ListPlayersInput) (*ListPlayersOutput, error) {
	out, err := o.playerRepo.List(ctx, player.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list players")
	}
	return &ListPlayersOutput{PlayerIDs: out.IDs}, nil
}

// Reset deletes a player's save so the next load starts over
func (o *orchestrator) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	if _, err := o.playerRepo.Delete(ctx, player.DeleteInput{ID: input.PlayerID}); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Player reset", "player_id", input.PlayerID)
	return &ResetOutput{}, nil
}

// mutate loads the player, applies change and saves the result.
// Errors from change are returned as they are so user errors keep their message.
func (o *orchestrator) mutate(ctx context.Context, op, playerID string, change func(*entities.Player) error) (*entities.PlayerData, error) {
	if playerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	p, _, err := o.loadPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if err := change(p); err != nil {
		if errors.IsUserError(err) {
			slog.DebugContext(ctx, "Player request refused",
				"player_id", playerID,
				"operation", op,
				"reason", errors.GetMessage(err),
			)
		}
		return nil, err
	}

	return o.save(ctx, p)
}

// loadPlayer restores the player's save. Without a usable save the player
// starts over from the default template; the second result reports that.
func (o *orchestrator) loadPlayer(ctx context.Context, playerID string) (*entities.Player, bool, error) {
	out, err := o.playerRepo.Get(ctx, player.GetInput{ID: playerID})
	switch {
	case err == nil:
		p, err := entities.PlayerFromData(out.PlayerData, o.input, o.narrator)
		if err == nil {
			return p, false, nil
		}
		if !errors.IsDataLoss(err) {
			return nil, false, err
		}
		slog.WarnContext(ctx, "Saved player is unusable, starting over",
			"player_id", playerID,
			"error", err,
		)
	case errors.IsNotFound(err):
		slog.InfoContext(ctx, "No saved player, creating one",
			"player_id", playerID,
			"template", o.defaultPlayer,
		)
	case errors.IsDataLoss(err):
		slog.WarnContext(ctx, "Saved player is corrupt, starting over",
			"player_id", playerID,
			"error", err,
		)
	default:
		return nil, false, errors.Wrap(err, "failed to load player")
	}

	p, err := o.catalog.NewPlayer(o.defaultPlayer, playerID, o.input)
	if err != nil {
		return nil, false, err
	}
	p.SetNarrator(o.narrator)
	return p, true, nil
}

func (o *orchestrator) save(ctx context.Context, p *entities.Player) (*entities.PlayerData, error) {
	out, err := o.playerRepo.Save(ctx, player.SaveInput{PlayerData: p.Data()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save player")
	}
	return out.PlayerData, nil
}
