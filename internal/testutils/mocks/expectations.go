// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/repositories/player"
	playermock "github.com/KirkDiggler/rpg-battle/internal/repositories/player/mock"
)

// ExpectPlayerLoad sets up the repository to return data for its player
func ExpectPlayerLoad(ctx context.Context, repo *playermock.MockRepository, data *entities.PlayerData) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, player.GetInput{ID: data.ID}).
		Return(&player.GetOutput{PlayerData: data}, nil)
}

// ExpectPlayerMissing sets up the repository to have no save for playerID
func ExpectPlayerMissing(ctx context.Context, repo *playermock.MockRepository, playerID string) *gomock.Call {
	return repo.EXPECT().
		Get(ctx, player.GetInput{ID: playerID}).
		Return(nil, errors.NotFoundf("player with ID %s not found", playerID))
}

// SavedPlayer holds whatever was passed to an expected Save
type SavedPlayer struct {
	Data *entities.PlayerData
}

// ExpectPlayerSave accepts one Save and records the saved data
func ExpectPlayerSave(ctx context.Context, repo *playermock.MockRepository) *SavedPlayer {
	saved := &SavedPlayer{}
	repo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input player.SaveInput) (*player.SaveOutput, error) {
			saved.Data = input.PlayerData
			return &player.SaveOutput{PlayerData: input.PlayerData}, nil
		})
	return saved
}
