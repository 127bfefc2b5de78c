package battle

import (
	"context"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/entities/action"
	"github.com/KirkDiggler/rpg-battle/internal/entities/stats"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/rng"
)

// Outcome describes what one resolved command did.
type Outcome struct {
	Action    action.Action
	Passed    bool
	Succeeded bool
	Damage    int
	HPBefore  int
	HPAfter   int
	Escaped   bool
}

func (o Outcome) eventData(round int) map[string]interface{} {
	return map[string]interface{}{
		"round":     round,
		"action":    o.Action.Name,
		"kind":      string(o.Action.Kind),
		"passed":    o.Passed,
		"succeeded": o.Succeeded,
		"damage":    o.Damage,
	}
}

// resolve carries out the actor's choice against target. It runs to
// completion before anything else in the battle is looked at.
func (bt *Battle) resolve(ctx context.Context, actor, target entities.Fighter, choice entities.Choice) (Outcome, error) {
	if choice.Pass {
		bt.say("%s passes the turn.", actor.Base().Name())
		return Outcome{Passed: true}, nil
	}

	switch choice.Action.Kind {
	case action.KindAttack:
		return bt.attack(actor.Base(), target.Base(), choice.Action)
	case action.KindEscape:
		return bt.escape(actor.Base(), target.Base(), choice.Action)
	case action.KindUse:
		return bt.use(ctx, actor, target, choice.Action)
	default:
		return Outcome{}, errors.Unimplementedf("%s chose %q, which has unknown kind %q",
			actor.Base().Name(), choice.Action.Name, choice.Action.Kind)
	}
}

func (bt *Battle) attack(actor, target *entities.Entity, a action.Action) (Outcome, error) {
	out := Outcome{Action: a}

	r, err := rng.Draw(bt.roller, 100)
	if err != nil {
		return out, errors.Wrap(err, "failed to roll for success")
	}
	if r >= a.SuccessRate {
		bt.say("%s tries to use %s, but it fails.", actor.Name(), a.Name)
		return out, nil
	}

	roll, err := bt.roller.Roll(action.MaxInflict - action.MinInflict + 1)
	if err != nil {
		return out, errors.Wrap(err, "failed to roll damage")
	}
	inflict := action.MinInflict + roll - 1

	out.Succeeded = true
	out.Damage = action.Damage(a.Strength, actor.Stats().Attack, target.Stats().Defense, inflict)
	out.HPBefore = target.Stats().HP
	target.SetStats(stats.Update{HP: stats.Value(out.HPBefore - out.Damage)})
	out.HPAfter = target.Stats().HP

	bt.say("%s uses %s!", actor.Name(), a.Name)
	bt.say("%s takes %d damage!", target.Name(), out.Damage)
	bt.say("%s's HP: %d -> %d", target.Name(), out.HPBefore, out.HPAfter)
	return out, nil
}

// escape succeeds with odds of the actor's share of the combined agility.
func (bt *Battle) escape(actor, target *entities.Entity, a action.Action) (Outcome, error) {
	out := Outcome{Action: a}

	agility := actor.Stats().Agility
	r, err := rng.Draw(bt.roller, agility+target.Stats().Agility)
	if err != nil {
		return out, errors.Wrap(err, "failed to roll escape")
	}
	if r >= agility {
		bt.say("%s tries to run away, but fails!", actor.Name())
		return out, nil
	}

	out.Succeeded = true
	out.Escaped = true
	actor.SetEscaped(true)
	bt.say("%s successfully escapes the clutches of the %s!", actor.Name(), target.Name())
	return out, nil
}

// use asks the actor what to use on whom. Player mistakes are narrated and
// cost the turn rather than ending the battle.
func (bt *Battle) use(ctx context.Context, actor, target entities.Fighter, a action.Action) (Outcome, error) {
	out := Outcome{Action: a}

	choice, err := actor.ChooseItemAndTarget(ctx, target)
	if err != nil {
		return out, errors.Wrapf(err, "%s failed to choose an item", actor.Base().Name())
	}
	if choice == nil {
		out.Passed = true
		bt.say("%s passes the turn.", actor.Base().Name())
		return out, nil
	}

	if err := actor.Base().UseItem(choice.ItemName, choice.Target); err != nil {
		if !errors.IsUserError(err) {
			return out, err
		}
		bt.say("%s", errors.GetMessage(err))
		return out, nil
	}
	out.Succeeded = true
	return out, nil
}
