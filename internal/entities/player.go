package entities

import (
	"context"
	"strings"

	"github.com/KirkDiggler/rpg-battle/internal/entities/action"
	"github.com/KirkDiggler/rpg-battle/internal/entities/items"
	"github.com/KirkDiggler/rpg-battle/internal/entities/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

const defaultRespawn = "a safe place"

// PlayerConfig describes a new player.
type PlayerConfig struct {
	Entity          Config
	Input           Input
	RespawnLocation string
}

// Player is the fighter controlled by the person at the keyboard.
type Player struct {
	*Entity
	input   Input
	respawn string
}

var _ Fighter = (*Player)(nil)

// DefaultPlayerCommands are the battle commands of a player created without any.
func DefaultPlayerCommands() []action.Action {
	return []action.Action{
		action.NewAttack("", 0, -1),
		action.NewEscape(),
		action.NewUse(),
	}
}

// NewPlayer creates a player. Without commands the player starts with
// Attack, Escape and Use.
func NewPlayer(cfg *PlayerConfig) (*Player, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	entityCfg := cfg.Entity
	entityCfg.Type = TypePlayer
	if entityCfg.Commands == nil {
		entityCfg.Commands = DefaultPlayerCommands()
	}

	e, err := New(&entityCfg)
	if err != nil {
		return nil, err
	}

	return &Player{
		Entity:  e,
		input:   cfg.Input,
		respawn: cfg.RespawnLocation,
	}, nil
}

// SetInput replaces where the player's answers come from.
func (p *Player) SetInput(in Input) {
	p.input = in
}

// RespawnLocation names where the player wakes up after losing.
func (p *Player) RespawnLocation() string {
	return p.respawn
}

// ChooseAction asks the player for a battle command until one of their
// commands is named or they pass.
func (p *Player) ChooseAction(ctx context.Context, _ Fighter) (Choice, error) {
	if p.input == nil {
		return Choice{}, errors.FailedPreconditionf("%s has no input source", p.name)
	}

	p.say("Choose an attack:")
	p.say("%s", p.FormatCommands())
	for {
		line, err := p.input.Prompt(ctx, "Choose an attack: ")
		if err != nil {
			return Choice{}, inputError(err, "battle command")
		}
		if isPass(line) {
			return Choice{Pass: true}, nil
		}
		if cmd, ok := p.FindCommand(line); ok {
			return Choice{Action: cmd}, nil
		}

		p.say("You don't have '%s'", strings.TrimSpace(line))
		p.say("Try one of these:")
		p.say("%s", p.FormatCommands())
	}
}

// ChooseItemAndTarget asks for an item and then for whom to use it on.
// Either answer may be "pass".
func (p *Player) ChooseItemAndTarget(ctx context.Context, opponent Fighter) (*ItemChoice, error) {
	if p.input == nil {
		return nil, errors.FailedPreconditionf("%s has no input source", p.name)
	}
	if p.inv.IsEmpty() {
		p.say("You don't have anything to use!")
		return nil, nil
	}

	p.say("%s", p.FormatInventory())
	var item items.Item
	for {
		line, err := p.input.Prompt(ctx, "Which item would you like to use? ")
		if err != nil {
			return nil, inputError(err, "item name")
		}
		if isPass(line) {
			return nil, nil
		}
		found, ok := p.inv.Find(line)
		if ok {
			item = found
			break
		}
		p.say(MsgNoSuchItem)
	}

	other := opponent.Base()
	for {
		line, err := p.input.Prompt(ctx, "Whom will you use "+item.Name+" on? ")
		if err != nil {
			return nil, inputError(err, "item target")
		}
		switch {
		case isPass(line):
			return nil, nil
		case items.SameName(line, p.name):
			return &ItemChoice{ItemName: item.Name, Target: p.Entity}, nil
		case items.SameName(line, other.name):
			return &ItemChoice{ItemName: item.Name, Target: other}, nil
		}
		p.say("What?! Choose either %s or %s!", p.name, other.name)
	}
}

// Die sends the player back to the respawn location fully healed.
func (p *Player) Die(_ context.Context) error {
	where := p.respawn
	if where == "" {
		where = defaultRespawn
	}

	p.SetStats(stats.Update{HP: stats.Value(p.stats.MaxHP)})
	p.say("After being knocked out in battle,")
	p.say("%s wakes up in %s.", p.name, where)
	return nil
}

// HandleVictory collects the loser's gold and treasure.
func (p *Player) HandleVictory(_ context.Context, loser Fighter) error {
	p.say("%s defeated the %s!", p.name, loser.Base().Name())

	gold, err := loser.SampleGold()
	if err != nil {
		return errors.Wrap(err, "failed to sample gold")
	}
	treasure, err := loser.SampleTreasure()
	if err != nil {
		return errors.Wrap(err, "failed to sample treasure")
	}

	var treasures []items.Item
	if treasure != nil {
		treasures = append(treasures, *treasure)
	}
	p.AddLoot(gold, treasures)
	return nil
}

// SampleGold gives up half of the player's gold.
func (p *Player) SampleGold() (int, error) {
	if p.gold <= 0 {
		return 0, nil
	}
	p.say("Looks like you lost some gold...")
	lost := p.gold / 2
	p.gold -= lost
	return lost, nil
}

// SampleTreasure returns nothing; a player never drops items.
func (p *Player) SampleTreasure() (*items.Item, error) {
	return nil, nil
}
