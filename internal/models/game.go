package models

import (
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusActive indicates a game is in progress
	GameStatusActive GameStatus = "active"

	// GameStatusCompleted indicates a game has a winner
	GameStatusCompleted GameStatus = "completed"
)

// GameResult is the record of a finished game
type GameResult struct {
	// ID is the unique identifier for the game
	ID string

	// WinnerID is the roster ID of the winning player
	WinnerID int

	// WinnerName is the display name of the winning player
	WinnerName string

	// Players lists everyone seated at the start of the game
	Players []*Player

	// Rounds is how many rounds were played
	Rounds int

	// WildOnes records whether 1s were wild
	WildOnes bool

	// FinishedAt is when the last challenge was resolved
	FinishedAt time.Time
}
