package testutils

import (
	"errors"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ErrRollsExhausted is returned once a ScriptedRoller has no rolls left.
var ErrRollsExhausted = errors.New("scripted roller has no rolls left")

// ScriptedRoller returns a fixed sequence of rolls. A scripted value larger
// than the die is reduced to the die size so scripts stay readable.
type ScriptedRoller struct {
	mu    sync.Mutex
	rolls []int
	sizes []int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates a roller returning rolls in order.
func NewScriptedRoller(rolls ...int) *ScriptedRoller {
	return &ScriptedRoller{rolls: rolls}
}

// Roll returns the next scripted roll.
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sizes = append(r.sizes, size)
	if len(r.rolls) == 0 {
		return 0, ErrRollsExhausted
	}
	v := r.rolls[0]
	r.rolls = r.rolls[1:]
	return min(max(v, 1), size), nil
}

// RollN returns the next count scripted rolls.
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Remaining returns how many scripted rolls are left.
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rolls)
}

// Sizes returns the die size asked for on every roll so far.
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.sizes))
	copy(out, r.sizes)
	return out
}
