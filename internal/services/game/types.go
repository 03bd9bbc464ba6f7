package game

import (
	"github.com/KirkDiggler/liarsdice/internal/common/clock"
	"github.com/KirkDiggler/liarsdice/internal/common/uuid"
	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/KirkDiggler/liarsdice/internal/player"
	"github.com/KirkDiggler/liarsdice/internal/services/observer"
)

// Config holds configuration for the game service
type Config struct {
	// Players is the roster in seating order; the first player opens
	Players []player.Player

	// WildOnes makes 1s match any other face
	WildOnes bool

	// Observer receives game events (optional)
	Observer observer.Observer

	// Service dependencies (optional, default to system implementations)
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// State is a snapshot of the engine
type State struct {
	GameID        string
	Status        models.GameStatus
	Round         int
	CurrentPlayer int
	CurrentBid    *models.Bid
	WildOnes      bool
	TotalDice     int
	ActivePlayers int
}

// PlayRoundOutput contains the result of a round
type PlayRoundOutput struct {
	// Round is the number of the round that was played
	Round int

	// Challenge is the challenge that ended the round
	Challenge *HandleChallengeOutput

	// Winner is set when the round ended the game
	Winner player.Player
}

// PlayGameOutput contains the result of a full game
type PlayGameOutput struct {
	// Winner is the last player with dice
	Winner player.Player

	// Rounds is the number of rounds played
	Rounds int

	// Result is the record of the finished game
	Result *models.GameResult
}

// HandleChallengeInput contains parameters for resolving a challenge
type HandleChallengeInput struct {
	// ChallengerIndex is the roster index of the challenging player
	ChallengerIndex int

	// Bid is the bid under challenge
	Bid *models.Bid
}

// HandleChallengeOutput contains the result of a challenge
type HandleChallengeOutput struct {
	// BidValid is true when the table held enough matching dice
	BidValid bool

	// ActualCount is the number of matching dice on the table
	ActualCount int

	// LoserIndex is the roster index of the player who lost a die
	LoserIndex int
}

// CheckBidOutput contains the result of counting a bid against the table
type CheckBidOutput struct {
	// Valid is true when ActualCount is at least the bid quantity
	Valid bool

	// ActualCount is the number of matching dice on the table
	ActualCount int
}
