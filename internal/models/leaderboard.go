package models

// LeaderboardEntry is a player's standing across recorded games
type LeaderboardEntry struct {
	// PlayerName is the display name the wins are recorded under
	PlayerName string

	// Wins is the number of games won
	Wins int
}

// Leaderboard represents the standings across recorded games
type Leaderboard struct {
	// Entries are ordered by wins, highest first
	Entries []*LeaderboardEntry
}
