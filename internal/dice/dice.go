package dice

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_roller.go github.com/KirkDiggler/liarsdice/internal/dice Roller

// Roller is the source of randomness shared by dice sets and AI players
type Roller interface {
	// Roll returns a value in [1, sides]
	Roll(sides int) int

	// Float64 returns a value in [0.0, 1.0)
	Float64() float64
}

// RandomRoller provides dice rolling functionality backed by math/rand
type RandomRoller struct {
	random *rand.Rand
}

// Config for dice roller
type Config struct {
	// Optional seed for reproducible games
	Seed int64
}

// New creates a new dice roller
func New(cfg *Config) *RandomRoller {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &RandomRoller{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Roll generates a random dice roll with the specified number of sides
func (r *RandomRoller) Roll(sides int) int {
	if sides < 1 {
		sides = Sides
	}
	return r.random.Intn(sides) + 1
}

// Float64 returns a uniform value in [0.0, 1.0)
func (r *RandomRoller) Float64() float64 {
	return r.random.Float64()
}
