package models

// Action is what a player does on their turn
type Action string

const (
	// ActionBid raises the current bid
	ActionBid Action = "bid"

	// ActionChallenge disputes the current bid
	ActionChallenge Action = "challenge"
)

// Move is a player's decision for one turn
type Move struct {
	// Action is either a bid or a challenge
	Action Action

	// Bid is the new bid, set only when Action is ActionBid
	Bid *Bid
}

// NewBidMove creates a move placing bid
func NewBidMove(bid *Bid) *Move {
	return &Move{Action: ActionBid, Bid: bid}
}

// NewChallengeMove creates a move challenging the standing bid
func NewChallengeMove() *Move {
	return &Move{Action: ActionChallenge}
}
