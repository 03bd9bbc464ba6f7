package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/KirkDiggler/liarsdice/internal/player"
)

// ProviderConfig holds the streams a console move provider talks over
type ProviderConfig struct {
	In  io.Reader
	Out io.Writer
}

// Provider asks a human at the terminal for moves. It re-prompts until the
// input is a well-formed move that raises the current bid.
type Provider struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewProvider creates a new console move provider
func NewProvider(cfg *ProviderConfig) (*Provider, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.In == nil {
		return nil, errors.New("input cannot be nil")
	}

	if cfg.Out == nil {
		return nil, errors.New("output cannot be nil")
	}

	return &Provider{
		scanner: bufio.NewScanner(cfg.In),
		out:     cfg.Out,
	}, nil
}

// GetMove prompts for a move. A closed input returns player.ErrInputClosed.
func (p *Provider) GetMove(ctx context.Context, input *player.GetMoveInput) (*models.Move, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	fmt.Fprintf(p.out, "\nYour dice: %s\n", renderDice(input.Dice))

	if input.CurrentBid != nil {
		fmt.Fprintf(p.out, "Current bid: %s\n", bidColor.Sprint(input.CurrentBid))

		challenge, err := p.askChoice(ctx)
		if err != nil {
			return nil, err
		}
		if challenge {
			return models.NewChallengeMove(), nil
		}
	}

	bid, err := p.askBid(ctx, input)
	if err != nil {
		return nil, err
	}

	return models.NewBidMove(bid), nil
}

// askChoice returns true when the player wants to challenge
func (p *Provider) askChoice(ctx context.Context) (bool, error) {
	for {
		line, err := p.prompt(ctx, "Enter 'b' to bid or 'c' to challenge: ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "c":
			return true, nil
		case "b":
			return false, nil
		}

		fmt.Fprintln(p.out, warnColor.Sprint("Invalid choice. Please try again."))
	}
}

func (p *Provider) askBid(ctx context.Context, input *player.GetMoveInput) (*models.Bid, error) {
	for {
		line, err := p.prompt(ctx, "Enter quantity: ")
		if err != nil {
			return nil, err
		}
		quantity, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, warnColor.Sprint("Invalid input. Please enter numbers."))
			continue
		}

		line, err = p.prompt(ctx, "Enter face value (1-6): ")
		if err != nil {
			return nil, err
		}
		face, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintln(p.out, warnColor.Sprint("Invalid input. Please enter numbers."))
			continue
		}

		bid := models.NewBid(quantity, face, input.PlayerID)
		switch err := player.ValidateBid(bid, input.CurrentBid); {
		case err == nil:
			return bid, nil
		case errors.Is(err, player.ErrInvalidRaise):
			fmt.Fprintln(p.out, warnColor.Sprint("Invalid bid. Must raise quantity or value."))
		default:
			fmt.Fprintln(p.out, warnColor.Sprint("Invalid input. Quantity must be positive, value between 1-6."))
		}
	}
}

// prompt writes text and reads one trimmed line
func (p *Provider) prompt(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(p.out, text)

	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", player.ErrInputClosed
	}

	return strings.TrimSpace(p.scanner.Text()), nil
}
