// Package battle runs a turn-based fight between two fighters.
//
// Each round both fighters choose a command, the agility-weighted coin flip
// decides who goes first, and the commands resolve in that order. The fight
// ends when a fighter's HP reaches zero or a fighter escapes.
package battle

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/narration"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
)

// Config holds the dependencies of a battle
type Config struct {
	// Roller is the only source of randomness in a fight.
	Roller dice.Roller
	// EventBus receives battle events. Optional.
	EventBus events.EventBus
	// Narrator receives the battle text. Optional.
	Narrator narration.Sink
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}

	return vb.Build()
}

// Result is how a battle ended. Either Escaped is set, or Winner and Loser are.
type Result struct {
	Winner    entities.Fighter
	Loser     entities.Fighter
	Escaped   bool
	EscapedBy entities.Fighter
	Rounds    int
}

// Battle is a single fight. It owns both fighters until Run returns.
type Battle struct {
	a, b     entities.Fighter
	roller   dice.Roller
	bus      events.EventBus
	narrator narration.Sink
	round    int
	ran      bool
}

// New prepares a battle between a and b.
// Both must be distinct, living fighters.
func New(cfg *Config, a, b entities.Fighter) (*Battle, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	if a == nil || b == nil {
		return nil, errors.FailedPrecondition("a battle needs two fighters")
	}
	if a.Base() == b.Base() {
		return nil, errors.FailedPreconditionf("%s cannot fight itself", a.Base().Name())
	}
	for _, f := range []entities.Fighter{a, b} {
		if f.Base().Dead() {
			return nil, errors.FailedPreconditionf("%s cannot fight while knocked out", f.Base().Name()).
				WithMeta("fighter_id", f.GetID())
		}
	}

	return &Battle{
		a:        a,
		b:        b,
		roller:   cfg.Roller,
		bus:      cfg.EventBus,
		narrator: cfg.Narrator,
	}, nil
}

// Run fights until one side is knocked out or escapes.
// Context cancellation is honoured between rounds.
func (bt *Battle) Run(ctx context.Context) (*Result, error) {
	if bt.ran {
		return nil, errors.FailedPrecondition("battle has already been fought")
	}
	bt.ran = true

	slog.InfoContext(ctx, "Battle started",
		"fighter_a", bt.a.GetID(),
		"fighter_b", bt.b.GetID(),
	)
	bt.say("%s enters a battle with %s!", bt.a.Base().Name(), bt.b.Base().Name())
	bt.publish(ctx, EventStarted, bt.a, bt.b, nil)

	for !bt.decided() {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "battle interrupted")
		}

		escaper, err := bt.playRound(ctx)
		if err != nil {
			return nil, err
		}
		if escaper != nil {
			return bt.finishEscaped(ctx, escaper), nil
		}
	}

	return bt.finish(ctx)
}

// Round returns the number of the current or last round.
func (bt *Battle) Round() int {
	return bt.round
}

type turn struct {
	actor  entities.Fighter
	target entities.Fighter
	choice entities.Choice
}

// playRound plays one round and returns the fighter that escaped, if any.
func (bt *Battle) playRound(ctx context.Context) (entities.Fighter, error) {
	bt.round++

	first, second, err := bt.openingPair()
	if err != nil {
		return nil, err
	}

	choiceA, err := bt.a.ChooseAction(ctx, bt.b)
	if err != nil {
		return nil, errors.Wrapf(err, "%s failed to choose an action", bt.a.Base().Name())
	}
	choiceB, err := bt.b.ChooseAction(ctx, bt.a)
	if err != nil {
		return nil, errors.Wrapf(err, "%s failed to choose an action", bt.b.Base().Name())
	}
	choices := map[entities.Fighter]entities.Choice{bt.a: choiceA, bt.b: choiceB}

	turns := []turn{
		{actor: first, target: second, choice: choices[first]},
		{actor: second, target: first, choice: choices[second]},
	}
	for _, t := range turns {
		outcome, err := bt.resolve(ctx, t.actor, t.target, t.choice)
		if err != nil {
			return nil, err
		}

		slog.DebugContext(ctx, "Resolved action",
			"round", bt.round,
			"actor", t.actor.GetID(),
			"action", outcome.Action.Name,
			"passed", outcome.Passed,
			"succeeded", outcome.Succeeded,
			"damage", outcome.Damage,
		)
		bt.publish(ctx, EventActionResolved, t.actor, t.target, outcome.eventData(bt.round))

		for _, f := range []entities.Fighter{bt.a, bt.b} {
			if f.Base().Escaped() {
				f.Base().SetEscaped(false)
				return f, nil
			}
		}
		if bt.decided() {
			break
		}
	}
	return nil, nil
}

// openingPair flips the agility-weighted coin for who acts first.
func (bt *Battle) openingPair() (entities.Fighter, entities.Fighter, error) {
	agilityA := bt.a.Base().Stats().Agility
	agilityB := bt.b.Base().Stats().Agility

	r, err := rng.Draw(bt.roller, agilityA+agilityB)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to decide turn order")
	}
	if r < agilityA {
		return bt.a, bt.b, nil
	}
	return bt.b, bt.a, nil
}

func (bt *Battle) decided() bool {
	return bt.a.Base().Dead() || bt.b.Base().Dead()
}

func (bt *Battle) finishEscaped(ctx context.Context, escaper entities.Fighter) *Result {
	slog.InfoContext(ctx, "Battle ended in escape",
		"escaped_by", escaper.GetID(),
		"rounds", bt.round,
	)
	bt.publish(ctx, EventEscaped, escaper, bt.opponent(escaper), map[string]interface{}{"rounds": bt.round})

	return &Result{Escaped: true, EscapedBy: escaper, Rounds: bt.round}
}

func (bt *Battle) finish(ctx context.Context) (*Result, error) {
	winner, loser := bt.a, bt.b
	if bt.a.Base().Dead() {
		winner, loser = bt.b, bt.a
	}

	if err := winner.HandleVictory(ctx, loser); err != nil {
		return nil, errors.Wrapf(err, "%s failed to claim victory", winner.Base().Name())
	}
	if err := loser.Die(ctx); err != nil {
		return nil, errors.Wrapf(err, "%s failed to die", loser.Base().Name())
	}

	slog.InfoContext(ctx, "Battle finished",
		"winner", winner.GetID(),
		"loser", loser.GetID(),
		"rounds", bt.round,
	)
	bt.publish(ctx, EventFinished, winner, loser, map[string]interface{}{"rounds": bt.round})

	return &Result{Winner: winner, Loser: loser, Rounds: bt.round}, nil
}

func (bt *Battle) opponent(f entities.Fighter) entities.Fighter {
	if f == bt.a {
		return bt.b
	}
	return bt.a
}

func (bt *Battle) say(format string, args ...interface{}) {
	narration.Sayf(bt.narrator, format, args...)
}
