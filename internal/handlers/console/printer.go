package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/KirkDiggler/liarsdice/internal/services/messaging"
	"github.com/KirkDiggler/liarsdice/internal/services/observer"
	"github.com/rs/zerolog"
)

// PrinterConfig holds configuration for the console event printer
type PrinterConfig struct {
	Out       io.Writer
	Messaging messaging.Service

	// Logger receives messaging failures. Defaults to a no-op logger.
	Logger *zerolog.Logger
}

// Printer is an observer that narrates the game to the terminal
type Printer struct {
	out       io.Writer
	messaging messaging.Service
	logger    zerolog.Logger
}

// NewPrinter creates a new console printer
func NewPrinter(cfg *PrinterConfig) (*Printer, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Out == nil {
		return nil, errors.New("output cannot be nil")
	}

	if cfg.Messaging == nil {
		return nil, errors.New("messaging service cannot be nil")
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Printer{
		out:       cfg.Out,
		messaging: cfg.Messaging,
		logger:    logger,
	}, nil
}

var _ observer.Observer = (*Printer)(nil)

func (p *Printer) RoundStarted(ctx context.Context, event *observer.RoundStartedEvent) {
	msg, err := p.messaging.GetRoundStartedMessage(ctx, &messaging.GetRoundStartedMessageInput{
		Round:          event.Round,
		TotalDice:      event.TotalDice,
		StartingPlayer: event.StartingPlayer,
	})
	if err != nil {
		p.logger.Error().Err(err).Int("round", event.Round).Msg("failed to render round start")
		return
	}

	fmt.Fprintf(p.out, "\n%s\n%s\n", titleColor.Sprintf("=== %s ===", msg.Title), msg.Message)
}

func (p *Printer) BidPlaced(ctx context.Context, event *observer.BidPlacedEvent) {
	msg, err := p.messaging.GetBidMessage(ctx, &messaging.GetBidMessageInput{
		PlayerName: event.PlayerName,
		Bid:        event.Bid,
	})
	if err != nil {
		p.logger.Error().Err(err).Str("player", event.PlayerName).Msg("failed to render bid")
		return
	}

	fmt.Fprintln(p.out, msg.Message)
}

// ChallengeResolved reveals every hand, then the outcome
func (p *Printer) ChallengeResolved(ctx context.Context, event *observer.ChallengeResolvedEvent) {
	msg, err := p.messaging.GetChallengeResultMessage(ctx, &messaging.GetChallengeResultMessageInput{
		ChallengerName: event.ChallengerName,
		Bid:            event.Bid,
		BidValid:       event.BidValid,
		ActualCount:    event.ActualCount,
		LoserName:      event.LoserName,
		DiceLeft:       event.DiceLeft,
		Eliminated:     event.Eliminated,
	})
	if err != nil {
		p.logger.Error().Err(err).Str("challenger", event.ChallengerName).Msg("failed to render challenge")
		return
	}

	fmt.Fprintf(p.out, "%s challenges %s!\n", event.ChallengerName, bidColor.Sprint(event.Bid))
	fmt.Fprint(p.out, renderHands(event.Hands))
	fmt.Fprintln(p.out, renderChallengeTitle(msg.Title, event.BidValid))
	fmt.Fprintln(p.out, msg.Message)
}

func (p *Printer) InvalidMove(ctx context.Context, event *observer.InvalidMoveEvent) {
	reason := "unknown error"
	if event.Err != nil {
		reason = event.Err.Error()
	}

	msg, err := p.messaging.GetInvalidMoveMessage(ctx, &messaging.GetInvalidMoveMessageInput{
		PlayerName: event.PlayerName,
		Reason:     reason,
	})
	if err != nil {
		p.logger.Error().Err(err).Str("player", event.PlayerName).Msg("failed to render invalid move")
		return
	}

	fmt.Fprintln(p.out, warnColor.Sprint(msg.Message))
}

func (p *Printer) GameOver(ctx context.Context, event *observer.GameOverEvent) {
	msg, err := p.messaging.GetGameOverMessage(ctx, &messaging.GetGameOverMessageInput{
		WinnerName: event.WinnerName,
		Rounds:     event.Rounds,
	})
	if err != nil {
		p.logger.Error().Err(err).Str("winner", event.WinnerName).Msg("failed to render game over")
		return
	}

	fmt.Fprintf(p.out, "\n%s\n%s\n", titleColor.Sprint(msg.Title), msg.Message)
}
