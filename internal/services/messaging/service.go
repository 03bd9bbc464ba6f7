package messaging

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/liarsdice/internal/dice"
)

var (
	// ErrInvalidTone is returned for a tone the service has no messages for
	ErrInvalidTone = errors.New("invalid message tone")

	// ErrNilInput is returned when a request has no input
	ErrNilInput = errors.New("input cannot be nil")
)

// service implements the Service interface
type service struct {
	// roller selects random messages
	roller dice.Roller
	tone   MessageTone
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (*service, error) {
	if config == nil {
		config = &ServiceConfig{}
	}

	tone := config.Tone
	if tone == "" {
		tone = ToneNeutral
	}
	if !tone.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTone, tone)
	}

	roller := config.Roller
	if roller == nil {
		roller = dice.New(nil)
	}

	return &service{
		roller: roller,
		tone:   tone,
	}, nil
}

// GetRoundStartedMessage returns a message for the start of a round
func (s *service) GetRoundStartedMessage(ctx context.Context, input *GetRoundStartedMessageInput) (*GetRoundStartedMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone, err := s.resolveTone(input.PreferredTone)
	if err != nil {
		return nil, err
	}

	var messages []string
	switch tone {
	case ToneFunny:
		messages = []string{
			fmt.Sprintf("Shake those cups! %d dice on the table and %s goes first.", input.TotalDice, input.StartingPlayer),
			fmt.Sprintf("%d dice hiding under the cups. %s, start the fibbing.", input.TotalDice, input.StartingPlayer),
			fmt.Sprintf("Fresh roll, fresh lies. %s opens with %d dice in play.", input.StartingPlayer, input.TotalDice),
		}
	case ToneSarcastic:
		messages = []string{
			fmt.Sprintf("Oh good, another round. %d dice left and %s gets to embarrass themselves first.", input.TotalDice, input.StartingPlayer),
			fmt.Sprintf("%s opens. I'm sure this bid will be totally honest. %d dice in play.", input.StartingPlayer, input.TotalDice),
		}
	default:
		messages = []string{
			fmt.Sprintf("%d dice in play. %s starts.", input.TotalDice, input.StartingPlayer),
		}
	}

	return &GetRoundStartedMessageOutput{
		Title:   fmt.Sprintf("Round %d", input.Round),
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetBidMessage returns a message announcing a bid
func (s *service) GetBidMessage(ctx context.Context, input *GetBidMessageInput) (*GetBidMessageOutput, error) {
	if input == nil || input.Bid == nil {
		return nil, ErrNilInput
	}

	tone, err := s.resolveTone(input.PreferredTone)
	if err != nil {
		return nil, err
	}

	var messages []string
	switch tone {
	case ToneFunny:
		messages = []string{
			fmt.Sprintf("%s bids %s. Bold, or just thirsty?", input.PlayerName, input.Bid),
			fmt.Sprintf("%s says %s and keeps a straight face. Mostly.", input.PlayerName, input.Bid),
			fmt.Sprintf("%s bids %s. Somebody check under that cup!", input.PlayerName, input.Bid),
		}
	case ToneSarcastic:
		messages = []string{
			fmt.Sprintf("%s bids %s. Sure, why not.", input.PlayerName, input.Bid),
			fmt.Sprintf("%s bids %s. Totally believable.", input.PlayerName, input.Bid),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s bids %s", input.PlayerName, input.Bid),
		}
	}

	return &GetBidMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetChallengeResultMessage returns a message describing how a challenge played out
func (s *service) GetChallengeResultMessage(ctx context.Context, input *GetChallengeResultMessageInput) (*GetChallengeResultMessageOutput, error) {
	if input == nil || input.Bid == nil {
		return nil, ErrNilInput
	}

	tone, err := s.resolveTone(input.PreferredTone)
	if err != nil {
		return nil, err
	}

	outcome := "bid invalid"
	if input.BidValid {
		outcome = "bid valid"
	}
	title := fmt.Sprintf("Challenge result: %s, actual count of %d's: %d", outcome, input.Bid.Face, input.ActualCount)

	var messages []string
	switch {
	case input.Eliminated:
		switch tone {
		case ToneFunny:
			messages = []string{
				fmt.Sprintf("%s is out of dice and out of the game. Grab a snack and heckle.", input.LoserName),
				fmt.Sprintf("That's the last die for %s. Pour one out.", input.LoserName),
			}
		case ToneSarcastic:
			messages = []string{
				fmt.Sprintf("%s is eliminated. Shocking, truly.", input.LoserName),
				fmt.Sprintf("And %s is out. Nobody saw that coming.", input.LoserName),
			}
		default:
			messages = []string{
				fmt.Sprintf("%s loses their last die and is eliminated.", input.LoserName),
			}
		}
	default:
		switch tone {
		case ToneFunny:
			messages = []string{
				fmt.Sprintf("%s coughs up a die. %d to go!", input.LoserName, input.DiceLeft),
				fmt.Sprintf("Ouch! %s is down to %d dice.", input.LoserName, input.DiceLeft),
				fmt.Sprintf("%s drops a die on the floor. %d left in the cup.", input.LoserName, input.DiceLeft),
			}
		case ToneSarcastic:
			messages = []string{
				fmt.Sprintf("Great call, %s. Only %d dice left now.", input.LoserName, input.DiceLeft),
				fmt.Sprintf("%s loses a die. Keep playing like that and %d won't last long.", input.LoserName, input.DiceLeft),
			}
		default:
			messages = []string{
				fmt.Sprintf("%s loses a die and has %d left.", input.LoserName, input.DiceLeft),
			}
		}
	}

	return &GetChallengeResultMessageOutput{
		Title:   title,
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetInvalidMoveMessage returns a message for a rejected move
func (s *service) GetInvalidMoveMessage(ctx context.Context, input *GetInvalidMoveMessageInput) (*GetInvalidMoveMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone, err := s.resolveTone(input.PreferredTone)
	if err != nil {
		return nil, err
	}

	var messages []string
	switch tone {
	case ToneFunny:
		messages = []string{
			fmt.Sprintf("Nice try, %s, but no: %s. Go again.", input.PlayerName, input.Reason),
			fmt.Sprintf("%s fumbled the cup (%s). Try that again.", input.PlayerName, input.Reason),
		}
	case ToneSarcastic:
		messages = []string{
			fmt.Sprintf("Really, %s? %s. Once more, with feeling.", input.PlayerName, input.Reason),
		}
	default:
		messages = []string{
			fmt.Sprintf("Invalid move by %s: %s", input.PlayerName, input.Reason),
		}
	}

	return &GetInvalidMoveMessageOutput{
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

// GetGameOverMessage returns a message announcing the winner
func (s *service) GetGameOverMessage(ctx context.Context, input *GetGameOverMessageInput) (*GetGameOverMessageOutput, error) {
	if input == nil {
		return nil, ErrNilInput
	}

	tone, err := s.resolveTone(input.PreferredTone)
	if err != nil {
		return nil, err
	}

	var messages []string
	switch tone {
	case ToneFunny:
		messages = []string{
			fmt.Sprintf("%s lied the best and lived to tell the tale after %d rounds!", input.WinnerName, input.Rounds),
			fmt.Sprintf("All hail %s, keeper of the last cup! (%d rounds)", input.WinnerName, input.Rounds),
		}
	case ToneSarcastic:
		messages = []string{
			fmt.Sprintf("%s wins after %d rounds. Try not to let it go to your head.", input.WinnerName, input.Rounds),
			fmt.Sprintf("Congratulations %s, you out-bluffed a bunch of dice. %d rounds well spent.", input.WinnerName, input.Rounds),
		}
	default:
		messages = []string{
			fmt.Sprintf("%s wins after %d rounds.", input.WinnerName, input.Rounds),
		}
	}

	return &GetGameOverMessageOutput{
		Title:   fmt.Sprintf("Game over! %s wins!", input.WinnerName),
		Message: s.pick(messages),
		Tone:    tone,
	}, nil
}

func (s *service) resolveTone(preferred MessageTone) (MessageTone, error) {
	if preferred == "" {
		return s.tone, nil
	}
	if !preferred.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidTone, preferred)
	}
	return preferred, nil
}

// pick selects a random message
func (s *service) pick(messages []string) string {
	if len(messages) == 1 {
		return messages[0]
	}
	return messages[s.roller.Roll(len(messages))-1]
}
