package models

// Player describes a seat at the table
type Player struct {
	// ID is the roster identifier of the player
	ID int

	// Name is the display name of the player
	Name string

	// Automated is true for AI opponents
	Automated bool
}
