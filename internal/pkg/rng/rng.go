// Package rng provides a seedable dice.Roller.
//
// The toolkit's default roller draws from crypto/rand, which cannot be
// replayed. Battles started with a seed use this roller instead so the same
// seed replays the same fight.
package rng

import (
	"math/rand/v2"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Roller is a deterministic dice.Roller backed by a PCG source.
type Roller struct {
	mu sync.Mutex
	r  *rand.Rand
}

var _ dice.Roller = (*Roller)(nil)

// New creates a roller that replays the same sequence for the same seed.
func New(seed uint64) *Roller {
	return &Roller{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Roll returns a number in [1, size].
func (r *Roller) Roll(size int) (int, error) {
	if size <= 0 {
		return 0, errors.InvalidArgumentf("dice size must be positive, got %d", size)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.r.IntN(size) + 1, nil
}

// RollN rolls count dice of the given size.
func (r *Roller) RollN(count, size int) ([]int, error) {
	if count <= 0 {
		return nil, errors.InvalidArgumentf("dice count must be positive, got %d", count)
	}
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

// Draw returns a number in [0, n) from roller. It is the zero-based form
// every weighted choice in the game uses.
func Draw(roller dice.Roller, n int) (int, error) {
	v, err := roller.Roll(n)
	if err != nil {
		return 0, errors.Wrap(err, "failed to roll")
	}
	return v - 1, nil
}
