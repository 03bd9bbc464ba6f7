package player

import (
	"context"

	"github.com/KirkDiggler/liarsdice/internal/dice"
	"github.com/KirkDiggler/liarsdice/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_player.go github.com/KirkDiggler/liarsdice/internal/player Player,MoveProvider

// Player is a seat at the table that can decide its own moves
type Player interface {
	// ID returns the roster identifier of the player
	ID() int

	// Name returns the display name of the player
	Name() string

	// Dice returns the set of dice the player owns
	Dice() *dice.Set

	// IsActive reports whether the player still has dice
	IsActive() bool

	// DecideMove chooses a bid or a challenge for the current turn
	DecideMove(ctx context.Context, input *DecideMoveInput) (*models.Move, error)
}

// MoveProvider supplies moves for an interactive player, usually from a human
type MoveProvider interface {
	// GetMove blocks until a valid move is available. Invalid input is
	// handled inside the provider and never returned.
	GetMove(ctx context.Context, input *GetMoveInput) (*models.Move, error)
}
