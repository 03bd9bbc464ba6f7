package messaging

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/liarsdice/internal/services/messaging Service

// Service is the interface for the messaging service
type Service interface {
	// GetRoundStartedMessage returns a message for the start of a round
	GetRoundStartedMessage(ctx context.Context, input *GetRoundStartedMessageInput) (*GetRoundStartedMessageOutput, error)

	// GetBidMessage returns a message announcing a bid
	GetBidMessage(ctx context.Context, input *GetBidMessageInput) (*GetBidMessageOutput, error)

	// GetChallengeResultMessage returns a message describing how a challenge played out
	GetChallengeResultMessage(ctx context.Context, input *GetChallengeResultMessageInput) (*GetChallengeResultMessageOutput, error)

	// GetInvalidMoveMessage returns a message for a rejected move
	GetInvalidMoveMessage(ctx context.Context, input *GetInvalidMoveMessageInput) (*GetInvalidMoveMessageOutput, error)

	// GetGameOverMessage returns a message announcing the winner
	GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error)
}
