package result

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/liarsdice/internal/repositories/result Repository

import (
	"context"

	"github.com/KirkDiggler/liarsdice/internal/models"
)

// Repository defines the interface for finished game records
type Repository interface {
	// SaveResult records a finished game and credits the winner
	SaveResult(ctx context.Context, input *SaveResultInput) error

	// GetResult retrieves a finished game by ID
	GetResult(ctx context.Context, input *GetResultInput) (*models.GameResult, error)

	// GetRecentResults retrieves the most recently recorded games, newest first
	GetRecentResults(ctx context.Context, input *GetRecentResultsInput) (*GetRecentResultsOutput, error)

	// GetLeaderboard retrieves players ordered by wins
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*models.Leaderboard, error)
}
