package player

import (
	"context"

	"github.com/KirkDiggler/liarsdice/internal/dice"
	"github.com/KirkDiggler/liarsdice/internal/models"
)

const (
	// ChallengeThreshold is the fraction of the bid quantity the expected
	// match count must reach for the AI to keep bidding
	ChallengeThreshold = 0.7

	// QuantityRaiseChance is how often the AI raises quantity rather than face
	QuantityRaiseChance = 0.7
)

// Automated is an AI player that bids on expected dice counts
type Automated struct {
	*base
	roller dice.Roller
}

// NewAutomated creates a new AI player
func NewAutomated(cfg *AutomatedConfig) (*Automated, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Roller == nil {
		return nil, ErrNilRoller
	}
	if cfg.Name == "" {
		return nil, ErrEmptyName
	}

	return &Automated{
		base:   newBase(cfg.ID, cfg.Name, cfg.Roller, cfg.StartingDice),
		roller: cfg.Roller,
	}, nil
}

// DecideMove opens on the player's strongest face, then challenges when the
// standing bid looks unlikely and raises otherwise.
func (a *Automated) DecideMove(ctx context.Context, input *DecideMoveInput) (*models.Move, error) {
	if input.CurrentBid == nil {
		return models.NewBidMove(a.openingBid(input.WildOnes)), nil
	}

	current := input.CurrentBid
	if a.ExpectedCount(current.Face, input.TotalDice, input.WildOnes) < float64(current.Quantity)*ChallengeThreshold {
		return models.NewChallengeMove(), nil
	}

	if a.roller.Float64() < QuantityRaiseChance {
		return models.NewBidMove(models.NewBid(current.Quantity+1, current.Face, a.id)), nil
	}

	// Near face 6 this can fail to raise; the engine accepts it as is.
	return models.NewBidMove(models.NewBid(
		max(1, current.Quantity-1),
		min(dice.Sides, current.Face+1),
		a.id,
	)), nil
}

// ExpectedCount estimates how many dice on the table show face: the
// player's own matches plus the expected matches among everyone else's dice.
func (a *Automated) ExpectedCount(face, totalDice int, wildOnes bool) float64 {
	own := a.dice.CountValue(face, wildOnes)
	remaining := totalDice - a.dice.Count()

	perDie := 1.0 / 6.0
	if wildOnes {
		perDie = 2.0 / 6.0
	}

	return float64(own) + float64(remaining)*perDie
}

// openingBid bids the count of the face the player holds most of. Ties go
// to the higher face.
func (a *Automated) openingBid(wildOnes bool) *models.Bid {
	bestFace, bestCount := dice.Sides, -1
	for face := dice.Sides; face >= 1; face-- {
		count := a.dice.CountValue(face, wildOnes)
		if count > bestCount {
			bestFace, bestCount = face, count
		}
	}

	return models.NewBid(bestCount, bestFace, a.id)
}
