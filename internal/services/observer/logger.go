package observer

import (
	"context"

	"github.com/rs/zerolog"
)

// logger writes game events as structured zerolog entries
type logger struct {
	log zerolog.Logger
}

// NewLogger creates an observer that logs every event to log
func NewLogger(log zerolog.Logger) Observer {
	return &logger{log: log}
}

func (l *logger) RoundStarted(ctx context.Context, event *RoundStartedEvent) {
	l.log.Info().
		Str("game_id", event.GameID).
		Int("round", event.Round).
		Int("total_dice", event.TotalDice).
		Str("starting_player", event.StartingPlayer).
		Msg("round started")
}

func (l *logger) BidPlaced(ctx context.Context, event *BidPlacedEvent) {
	l.log.Info().
		Str("game_id", event.GameID).
		Int("round", event.Round).
		Int("player_id", event.PlayerID).
		Str("player", event.PlayerName).
		Int("quantity", event.Bid.Quantity).
		Int("face", event.Bid.Face).
		Msgf("%s bids %s", event.PlayerName, event.Bid)
}

func (l *logger) ChallengeResolved(ctx context.Context, event *ChallengeResolvedEvent) {
	result := "bid invalid"
	if event.BidValid {
		result = "bid valid"
	}

	entry := l.log.Info().
		Str("game_id", event.GameID).
		Int("round", event.Round).
		Str("challenger", event.ChallengerName).
		Int("quantity", event.Bid.Quantity).
		Int("face", event.Bid.Face).
		Bool("bid_valid", event.BidValid).
		Int("actual_count", event.ActualCount).
		Int("loser_id", event.LoserID).
		Str("loser", event.LoserName).
		Int("dice_left", event.DiceLeft).
		Bool("eliminated", event.Eliminated)

	if l.log.GetLevel() <= zerolog.DebugLevel {
		hands := zerolog.Dict()
		for _, h := range event.Hands {
			hands = hands.Ints(h.PlayerName, h.Values)
		}
		entry = entry.Dict("hands", hands)
	}

	entry.Msgf("challenge result: %s, actual count of %d's: %d", result, event.Bid.Face, event.ActualCount)
}

func (l *logger) InvalidMove(ctx context.Context, event *InvalidMoveEvent) {
	l.log.Error().
		Err(event.Err).
		Str("game_id", event.GameID).
		Int("round", event.Round).
		Int("player_id", event.PlayerID).
		Str("player", event.PlayerName).
		Msg("invalid move")
}

func (l *logger) GameOver(ctx context.Context, event *GameOverEvent) {
	l.log.Info().
		Str("game_id", event.GameID).
		Int("rounds", event.Rounds).
		Int("winner_id", event.WinnerID).
		Str("winner", event.WinnerName).
		Msgf("game over, %s wins", event.WinnerName)
}
