package entities

import (
	"context"
	stderrors "errors"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-battle/internal/entities/action"
	"github.com/KirkDiggler/rpg-battle/internal/entities/items"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Fighter is an entity that can take part in a battle.
type Fighter interface {
	core.Entity

	// Base returns the shared entity state.
	Base() *Entity

	// ChooseAction picks this round's command against opponent.
	// Choosing never changes any battle state.
	ChooseAction(ctx context.Context, opponent Fighter) (Choice, error)

	// ChooseItemAndTarget picks an item and whom to use it on.
	// A nil choice means the fighter passes.
	ChooseItemAndTarget(ctx context.Context, opponent Fighter) (*ItemChoice, error)

	// Die is called on the loser once the battle is decided.
	Die(ctx context.Context) error

	// HandleVictory is called on the winner with the loser.
	HandleVictory(ctx context.Context, loser Fighter) error

	// SampleGold returns the gold this fighter gives up on losing.
	SampleGold() (int, error)

	// SampleTreasure returns the item this fighter drops on losing, if any.
	SampleTreasure() (*items.Item, error)
}

// Choice is the command picked for a round. Pass forfeits the action.
type Choice struct {
	Action action.Action
	Pass   bool
}

// ItemChoice names an item to use and the entity to use it on.
type ItemChoice struct {
	ItemName string
	Target   *Entity
}

// Input is the source of the player's typed answers.
type Input interface {
	// Prompt shows prompt and returns the next line the player entered.
	Prompt(ctx context.Context, prompt string) (string, error)
}

const passCommand = "pass"

func isPass(line string) bool {
	return items.SameName(line, passCommand)
}

func inputError(err error, what string) error {
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return errors.WrapWithCodef(err, errors.CodeCanceled, "stopped waiting for %s", what)
	}
	return errors.Wrapf(err, "failed to read %s", what)
}
