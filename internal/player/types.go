package player

import (
	"github.com/KirkDiggler/liarsdice/internal/dice"
	"github.com/KirkDiggler/liarsdice/internal/models"
)

// DecideMoveInput is the table state a player decides on
type DecideMoveInput struct {
	// CurrentBid is the standing bid, nil when opening the round
	CurrentBid *models.Bid

	// TotalDice is the number of dice in play across all players
	TotalDice int

	// WildOnes is true when 1s match any other face
	WildOnes bool
}

// GetMoveInput is what a move provider needs to ask a human for a move
type GetMoveInput struct {
	PlayerID   int
	PlayerName string

	// Dice are the face values the player is holding
	Dice []int

	CurrentBid *models.Bid
	TotalDice  int
	WildOnes   bool
}

// AutomatedConfig holds configuration for an AI player
type AutomatedConfig struct {
	ID   int
	Name string

	// Roller rolls the player's dice and drives the AI's coin flips
	Roller dice.Roller

	// StartingDice defaults to dice.StartingDice
	StartingDice int
}

// InteractiveConfig holds configuration for a human player
type InteractiveConfig struct {
	ID   int
	Name string

	// Roller rolls the player's dice
	Roller dice.Roller

	// Provider is asked for every move
	Provider MoveProvider

	// StartingDice defaults to dice.StartingDice
	StartingDice int
}
