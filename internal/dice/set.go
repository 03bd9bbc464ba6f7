package dice

const (
	// Sides is the number of faces on every die in the game
	Sides = 6

	// StartingDice is how many dice each player begins a game with
	StartingDice = 5
)

// Set is the cup of dice owned by a single player
type Set struct {
	roller Roller
	values []int
}

// NewSet creates a set of count dice and rolls them
func NewSet(roller Roller, count int) *Set {
	if count < 0 {
		count = 0
	}

	s := &Set{
		roller: roller,
		values: make([]int, count),
	}
	s.Roll()

	return s
}

// Roll replaces every value with a fresh roll
func (s *Set) Roll() {
	for i := range s.values {
		s.values[i] = s.roller.Roll(Sides)
	}
}

// Count returns the number of dice left in the set
func (s *Set) Count() int {
	return len(s.values)
}

// Values returns a copy of the current face values
func (s *Set) Values() []int {
	out := make([]int, len(s.values))
	copy(out, s.values)
	return out
}

// SetValues overwrites the set with known values. The die count follows len(values).
func (s *Set) SetValues(values []int) {
	s.values = make([]int, len(values))
	copy(s.values, values)
}

// CountValue counts dice showing target. With wildOnes, 1s also match any
// target other than 1.
func (s *Set) CountValue(target int, wildOnes bool) int {
	count := 0
	for _, v := range s.values {
		switch {
		case v == target:
			count++
		case wildOnes && target != 1 && v == 1:
			count++
		}
	}
	return count
}

// RemoveDie drops one die and re-rolls the rest. It returns false and leaves
// the set untouched when it is already empty.
func (s *Set) RemoveDie() bool {
	if len(s.values) == 0 {
		return false
	}

	s.values = s.values[:len(s.values)-1]
	s.Roll()

	return true
}
