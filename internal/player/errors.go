package player

// PlayerError is a custom error type for player-related errors
type PlayerError string

// Error implements the error interface
func (e PlayerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          PlayerError = "config cannot be nil"
	ErrNilRoller          PlayerError = "roller cannot be nil"
	ErrNilProvider        PlayerError = "move provider cannot be nil"
	ErrEmptyName          PlayerError = "player name cannot be empty"
	ErrInputClosed        PlayerError = "move input closed"
	ErrMissingBid         PlayerError = "bid move has no bid"
	ErrInvalidQuantity    PlayerError = "quantity must be positive"
	ErrInvalidFace        PlayerError = "face value must be between 1 and 6"
	ErrInvalidRaise       PlayerError = "bid must raise the quantity or the face value"
	ErrChallengeWithNoBid PlayerError = "cannot challenge when no bid exists"
	ErrUnknownAction      PlayerError = "unknown action"
)
