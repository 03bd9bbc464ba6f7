package player

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/liarsdice/internal/models"
)

// Interactive is a player whose moves come from a MoveProvider
type Interactive struct {
	*base
	provider MoveProvider
}

// NewInteractive creates a new human-controlled player
func NewInteractive(cfg *InteractiveConfig) (*Interactive, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}
	if cfg.Provider == nil {
		return nil, ErrNilProvider
	}
	if cfg.Name == "" {
		return nil, ErrEmptyName
	}

	return &Interactive{
		base:     newBase(cfg.ID, cfg.Name, cfg.Roller, cfg.StartingDice),
		provider: cfg.Provider,
	}, nil
}

// DecideMove asks the provider until it returns a move that satisfies the
// decision contract. Only input and context failures are returned.
func (p *Interactive) DecideMove(ctx context.Context, input *DecideMoveInput) (*models.Move, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		move, err := p.provider.GetMove(ctx, &GetMoveInput{
			PlayerID:   p.id,
			PlayerName: p.name,
			Dice:       p.dice.Values(),
			CurrentBid: input.CurrentBid,
			TotalDice:  input.TotalDice,
			WildOnes:   input.WildOnes,
		})
		if err != nil {
			if errors.Is(err, ErrInputClosed) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			return nil, fmt.Errorf("failed to get move: %w", err)
		}

		if err := ValidateMove(move, input.CurrentBid); err != nil {
			continue
		}

		if move.Action == models.ActionBid && move.Bid.PlayerID != p.id {
			move = models.NewBidMove(models.NewBid(move.Bid.Quantity, move.Bid.Face, p.id))
		}

		return move, nil
	}
}
