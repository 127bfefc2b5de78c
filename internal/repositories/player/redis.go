package player

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-battle/internal/redis"
)

const (
	playerKeyPrefix = "player:"
	playerIndexKey  = "player:index"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis player repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	saved := *input.PlayerData
	saved.SavedAt = r.clock.Now()

	data, err := json.Marshal(&saved)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player data")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, playerKeyPrefix+saved.ID, data, 0)
	pipe.SAdd(ctx, playerIndexKey, saved.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to save player")
	}

	slog.DebugContext(ctx, "Saved player",
		"player_id", saved.ID,
		"saved_at", saved.SavedAt,
	)
	return &SaveOutput{PlayerData: &saved}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	result, err := r.client.Get(ctx, playerKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("player with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get player")
	}

	var data entities.PlayerData
	if err := json.Unmarshal([]byte(result), &data); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeDataLoss, "saved player %s is corrupt", input.ID)
	}
	if data.ID != input.ID {
		return nil, errors.DataLossf("saved player %s holds data for %q", input.ID, data.ID)
	}

	return &GetOutput{PlayerData: &data}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, playerKeyPrefix+input.ID)
	pipe.SRem(ctx, playerIndexKey, input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete player")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("player with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, playerIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list players")
	}
	sort.Strings(ids)

	return &ListOutput{IDs: ids}, nil
}
