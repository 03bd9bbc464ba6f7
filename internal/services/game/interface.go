package game

import (
	"context"

	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/KirkDiggler/liarsdice/internal/player"
)

// Service defines the interface for running a game of Liar's Dice
type Service interface {
	// PlayGame plays rounds until a single player has dice left
	PlayGame(ctx context.Context) (*PlayGameOutput, error)

	// PlayRound plays one round, from the roll to the resolved challenge
	PlayRound(ctx context.Context) (*PlayRoundOutput, error)

	// HandleChallenge settles a challenge against bid and takes a die from the loser
	HandleChallenge(ctx context.Context, input *HandleChallengeInput) (*HandleChallengeOutput, error)

	// CheckBid counts the matching dice on the table for bid
	CheckBid(bid *models.Bid) *CheckBidOutput

	// NextPlayer advances the turn to the next active player
	NextPlayer()

	// TotalDice returns the number of dice in play
	TotalDice() int

	// GetState returns a snapshot of the engine state
	GetState() *State

	// Players returns the roster in seating order
	Players() []player.Player
}
