// Package player provides the interface for player persistence
package player

//go:generate mockgen -destination=mock/mock_repository.go -package=playermock github.com/KirkDiggler/rpg-battle/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Repository defines the interface for player persistence
type Repository interface {
	// Save creates or replaces a player's saved state and stamps SavedAt
	// Returns errors.InvalidArgument for missing data or ID
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a player's saved state by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if nothing is saved under the ID
	// Returns errors.DataLoss if the saved state cannot be decoded
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a player's saved state
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if nothing is saved under the ID
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns the IDs of every saved player in sorted order
	// Returns errors.Internal for storage failures
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// SaveInput defines the input for saving a player
type SaveInput struct {
	PlayerData *entities.PlayerData
}

// SaveOutput defines the output for saving a player
type SaveOutput struct {
	PlayerData *entities.PlayerData
}

// GetInput defines the input for getting a player
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a player
type GetOutput struct {
	PlayerData *entities.PlayerData
}

// DeleteInput defines the input for deleting a player
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a player
type DeleteOutput struct{}

// ListInput defines the input for listing players
type ListInput struct{}

// ListOutput defines the output for listing players
type ListOutput struct {
	IDs []string
}

const (
	errPlayerNil     = "player data cannot be nil"
	errPlayerIDEmpty = "player ID cannot be empty"
)

func validateSave(input SaveInput) error {
	if input.PlayerData == nil {
		return errors.InvalidArgument(errPlayerNil)
	}
	if input.PlayerData.ID == "" {
		return errors.InvalidArgument(errPlayerIDEmpty)
	}
	return nil
}
