package observer

import "github.com/KirkDiggler/liarsdice/internal/models"

// RoundStartedEvent is emitted at the start of every round
type RoundStartedEvent struct {
	GameID string
	Round  int

	// TotalDice is the number of dice in play this round
	TotalDice int

	// StartingPlayer is the name of the player who opens the bidding
	StartingPlayer string
}

// BidPlacedEvent is emitted for every accepted bid
type BidPlacedEvent struct {
	GameID     string
	Round      int
	PlayerID   int
	PlayerName string
	Bid        *models.Bid
}

// Hand is one player's dice as revealed at a challenge
type Hand struct {
	PlayerID   int
	PlayerName string
	Values     []int
}

// ChallengeResolvedEvent is emitted when a challenge has been settled
type ChallengeResolvedEvent struct {
	GameID string
	Round  int

	ChallengerID   int
	ChallengerName string

	// Bid is the challenged bid
	Bid *models.Bid

	// BidValid is true when the table held at least Bid.Quantity matches
	BidValid bool

	// ActualCount is the number of matching dice on the table
	ActualCount int

	LoserID   int
	LoserName string

	// DiceLeft is the loser's die count after losing one
	DiceLeft int

	// Eliminated is true when the loser has no dice left
	Eliminated bool

	// Hands are every player's dice at the moment of the challenge
	Hands []*Hand
}

// InvalidMoveEvent is emitted when a move is rejected and the turn retried
type InvalidMoveEvent struct {
	GameID     string
	Round      int
	PlayerID   int
	PlayerName string
	Err        error
}

// GameOverEvent is emitted once when the game has a winner
type GameOverEvent struct {
	GameID     string
	Rounds     int
	WinnerID   int
	WinnerName string
}
