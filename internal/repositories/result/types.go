package result

import "github.com/KirkDiggler/liarsdice/internal/models"

type SaveResultInput struct {
	Result *models.GameResult
}

type GetResultInput struct {
	GameID string
}

type GetRecentResultsInput struct {
	// Limit defaults to DefaultLimit
	Limit int
}

type GetRecentResultsOutput struct {
	Results []*models.GameResult
}

type GetLeaderboardInput struct {
	// Limit defaults to DefaultLimit
	Limit int
}
