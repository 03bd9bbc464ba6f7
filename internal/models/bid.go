package models

import "fmt"

// Bid is a claim that at least Quantity dice across the table show Face
type Bid struct {
	// Quantity is how many dice the bid claims
	Quantity int

	// Face is the claimed face value, 1 through 6
	Face int

	// PlayerID is the ID of the player who proposed the bid
	PlayerID int
}

// NewBid creates a bid proposed by playerID
func NewBid(quantity, face, playerID int) *Bid {
	return &Bid{
		Quantity: quantity,
		Face:     face,
		PlayerID: playerID,
	}
}

// IsValidRaise reports whether b outranks other. A higher face always
// outranks; the same face needs a strictly higher quantity.
func (b *Bid) IsValidRaise(other *Bid) bool {
	if b.Face == other.Face {
		return b.Quantity > other.Quantity
	}
	return b.Face > other.Face
}

// String renders the bid as "4 3's"
func (b *Bid) String() string {
	return fmt.Sprintf("%d %d's", b.Quantity, b.Face)
}
