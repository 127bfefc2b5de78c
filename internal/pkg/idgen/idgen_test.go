package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	g := idgen.NewSequential("monster")
	assert.Equal(t, "monster_1", g.Generate())
	assert.Equal(t, "monster_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	g := idgen.NewUUID("player")
	id := g.Generate()

	require.True(t, strings.HasPrefix(id, "player_"))
	_, err := uuid.Parse(strings.TrimPrefix(id, "player_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, g.Generate())
}
