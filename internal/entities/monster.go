package entities

import (
	"context"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-battle/internal/entities/items"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
)

// Treasure is one row of a monster's drop table. A nil Item means the
// monster drops nothing when this row is drawn.
type Treasure struct {
	Item *items.Item `json:"item,omitempty" yaml:"item,omitempty"`
	Odds int         `json:"odds" yaml:"odds"`
}

// MonsterConfig describes a new monster.
type MonsterConfig struct {
	Entity    Config
	Message   string
	Treasures []Treasure
	Roller    dice.Roller
}

// Monster is a fighter that picks its moves at random.
type Monster struct {
	*Entity
	message   string
	treasures []Treasure
	roller    dice.Roller
	removed   bool
}

var _ Fighter = (*Monster)(nil)

// NewMonster creates a monster.
func NewMonster(cfg *MonsterConfig) (*Monster, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if cfg.Roller == nil {
		vb.RequiredField("Roller")
	}
	for _, t := range cfg.Treasures {
		errors.ValidateMin("Treasures.Odds", t.Odds, 1, vb)
	}
	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	entityCfg := cfg.Entity
	entityCfg.Type = TypeMonster
	e, err := New(&entityCfg)
	if err != nil {
		return nil, err
	}

	treasures := make([]Treasure, len(cfg.Treasures))
	copy(treasures, cfg.Treasures)

	return &Monster{
		Entity:    e,
		message:   cfg.Message,
		treasures: treasures,
		roller:    cfg.Roller,
	}, nil
}

// Message is what the monster says when it is encountered.
func (m *Monster) Message() string {
	return m.message
}

// Removed reports whether the monster has died and left the world.
func (m *Monster) Removed() bool {
	return m.removed
}

// ChooseAction picks one of the monster's commands with equal odds.
// A monster without commands passes.
func (m *Monster) ChooseAction(_ context.Context, _ Fighter) (Choice, error) {
	if len(m.commands) == 0 {
		return Choice{Pass: true}, nil
	}
	i, err := rng.Draw(m.roller, len(m.commands))
	if err != nil {
		return Choice{}, err
	}
	return Choice{Action: m.commands[i]}, nil
}

// ChooseItemAndTarget picks a random carried item and a random target.
func (m *Monster) ChooseItemAndTarget(_ context.Context, opponent Fighter) (*ItemChoice, error) {
	item, ok, err := m.inv.RandomItem(m.roller)
	if err != nil || !ok {
		return nil, err
	}

	who, err := rng.Draw(m.roller, 2)
	if err != nil {
		return nil, err
	}
	target := m.Entity
	if who == 1 {
		target = opponent.Base()
	}
	return &ItemChoice{ItemName: item.Name, Target: target}, nil
}

// Die removes the monster for good.
func (m *Monster) Die(_ context.Context) error {
	m.removed = true
	return nil
}

// HandleVictory pockets whatever the loser gives up.
func (m *Monster) HandleVictory(_ context.Context, loser Fighter) error {
	gold, err := loser.SampleGold()
	if err != nil {
		return errors.Wrap(err, "failed to sample gold")
	}
	treasure, err := loser.SampleTreasure()
	if err != nil {
		return errors.Wrap(err, "failed to sample treasure")
	}

	m.AdjustGold(gold)
	if treasure != nil {
		m.inv.Add(*treasure, 1)
	}
	return nil
}

// SampleGold returns a random amount between zero and all of the
// monster's gold.
func (m *Monster) SampleGold() (int, error) {
	return rng.Draw(m.roller, m.gold+1)
}

// SampleTreasure draws from the drop table, weighting each row by its odds.
func (m *Monster) SampleTreasure() (*items.Item, error) {
	total := 0
	for _, t := range m.treasures {
		total += t.Odds
	}
	if total == 0 {
		return nil, nil
	}

	r, err := rng.Draw(m.roller, total)
	if err != nil {
		return nil, err
	}
	for _, t := range m.treasures {
		if r < t.Odds {
			if t.Item == nil {
				return nil, nil
			}
			item := *t.Item
			return &item, nil
		}
		r -= t.Odds
	}
	return nil, nil
}
