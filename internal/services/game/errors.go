package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig          GameError = "config cannot be nil"
	ErrNotEnoughPlayers   GameError = "at least two players are required"
	ErrNilPlayer          GameError = "player cannot be nil"
	ErrDuplicatePlayerID  GameError = "player IDs must be unique"
	ErrNoActivePlayers    GameError = "no active players"
	ErrGameOver           GameError = "game is already over"
	ErrChallengeWithNoBid GameError = "cannot challenge when no bid exists"
	ErrMissingBid         GameError = "bid move has no bid"
	ErrUnknownAction      GameError = "unknown action"
	ErrUnknownProposer    GameError = "bid proposer is not seated at this table"
	ErrInvalidChallenger  GameError = "challenger is not seated at this table"
)
