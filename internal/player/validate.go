package player

import (
	"github.com/KirkDiggler/liarsdice/internal/dice"
	"github.com/KirkDiggler/liarsdice/internal/models"
)

// ValidateBid checks a candidate bid's ranges and that it raises current.
// A nil current accepts any well-formed opening bid.
func ValidateBid(bid, current *models.Bid) error {
	if bid == nil {
		return ErrMissingBid
	}
	if bid.Quantity < 1 {
		return ErrInvalidQuantity
	}
	if bid.Face < 1 || bid.Face > dice.Sides {
		return ErrInvalidFace
	}
	if current != nil && !bid.IsValidRaise(current) {
		return ErrInvalidRaise
	}
	return nil
}

// ValidateMove checks that move honours the decision contract for current
func ValidateMove(move *models.Move, current *models.Bid) error {
	if move == nil {
		return ErrUnknownAction
	}

	switch move.Action {
	case models.ActionChallenge:
		if current == nil {
			return ErrChallengeWithNoBid
		}
		return nil
	case models.ActionBid:
		return ValidateBid(move.Bid, current)
	default:
		return ErrUnknownAction
	}
}
