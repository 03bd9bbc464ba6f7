package messaging

import (
	"github.com/KirkDiggler/liarsdice/internal/dice"
	"github.com/KirkDiggler/liarsdice/internal/models"
)

// MessageTone represents the tone of a message
type MessageTone string

const (
	// ToneNeutral is a neutral tone
	ToneNeutral MessageTone = "neutral"

	// ToneFunny is a humorous tone
	ToneFunny MessageTone = "funny"

	// ToneSarcastic is a sarcastic tone
	ToneSarcastic MessageTone = "sarcastic"
)

// IsValid reports whether t is a tone the service knows about
func (t MessageTone) IsValid() bool {
	switch t {
	case ToneNeutral, ToneFunny, ToneSarcastic:
		return true
	}
	return false
}

// GetRoundStartedMessageInput is the input for GetRoundStartedMessage
type GetRoundStartedMessageInput struct {
	Round          int
	TotalDice      int
	StartingPlayer string

	// PreferredTone overrides the service tone (optional)
	PreferredTone MessageTone
}

// GetRoundStartedMessageOutput is the output for GetRoundStartedMessage
type GetRoundStartedMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// GetBidMessageInput is the input for GetBidMessage
type GetBidMessageInput struct {
	PlayerName    string
	Bid           *models.Bid
	PreferredTone MessageTone
}

// GetBidMessageOutput is the output for GetBidMessage
type GetBidMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetChallengeResultMessageInput is the input for GetChallengeResultMessage
type GetChallengeResultMessageInput struct {
	ChallengerName string
	Bid            *models.Bid
	BidValid       bool
	ActualCount    int
	LoserName      string
	DiceLeft       int
	Eliminated     bool
	PreferredTone  MessageTone
}

// GetChallengeResultMessageOutput is the output for GetChallengeResultMessage
type GetChallengeResultMessageOutput struct {
	// Title is the factual outcome line
	Title string

	// Message is the commentary on the loser
	Message string

	Tone MessageTone
}

// GetInvalidMoveMessageInput is the input for GetInvalidMoveMessage
type GetInvalidMoveMessageInput struct {
	PlayerName    string
	Reason        string
	PreferredTone MessageTone
}

// GetInvalidMoveMessageOutput is the output for GetInvalidMoveMessage
type GetInvalidMoveMessageOutput struct {
	Message string
	Tone    MessageTone
}

// GetGameOverMessageInput is the input for GetGameOverMessage
type GetGameOverMessageInput struct {
	WinnerName    string
	Rounds        int
	PreferredTone MessageTone
}

// GetGameOverMessageOutput is the output for GetGameOverMessage
type GetGameOverMessageOutput struct {
	Title   string
	Message string
	Tone    MessageTone
}

// ServiceConfig contains configuration for the messaging service
type ServiceConfig struct {
	// Roller picks among message variants. Defaults to a time-seeded roller.
	Roller dice.Roller

	// Tone is used when an input does not ask for one. Defaults to ToneNeutral.
	Tone MessageTone
}
