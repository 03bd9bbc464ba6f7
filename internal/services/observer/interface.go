package observer

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_observer.go github.com/KirkDiggler/liarsdice/internal/services/observer Observer

// Observer receives the engine's game events. Implementations must not block
// for long; the engine calls them inline.
type Observer interface {
	// RoundStarted is called after every active player's dice are rolled
	RoundStarted(ctx context.Context, event *RoundStartedEvent)

	// BidPlaced is called when a bid becomes the standing bid
	BidPlaced(ctx context.Context, event *BidPlacedEvent)

	// ChallengeResolved is called after the loser of a challenge gives up a die
	ChallengeResolved(ctx context.Context, event *ChallengeResolvedEvent)

	// InvalidMove is called when a player's decision breaks the move contract
	InvalidMove(ctx context.Context, event *InvalidMoveEvent)

	// GameOver is called once a single player has dice left
	GameOver(ctx context.Context, event *GameOverEvent)
}
