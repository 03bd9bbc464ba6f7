package player

import "github.com/KirkDiggler/liarsdice/internal/dice"

// base holds the state every player variant shares
type base struct {
	id   int
	name string
	dice *dice.Set
}

func newBase(id int, name string, roller dice.Roller, startingDice int) *base {
	if startingDice <= 0 {
		startingDice = dice.StartingDice
	}
	return &base{
		id:   id,
		name: name,
		dice: dice.NewSet(roller, startingDice),
	}
}

// ID returns the roster identifier of the player
func (b *base) ID() int {
	return b.id
}

// Name returns the display name of the player
func (b *base) Name() string {
	return b.name
}

// Dice returns the player's dice
func (b *base) Dice() *dice.Set {
	return b.dice
}

// IsActive reports whether the player has any dice left
func (b *base) IsActive() bool {
	return b.dice.Count() > 0
}
