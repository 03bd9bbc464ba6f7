package result

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	resultKeyPrefix = "result:"
	recentResults   = "results:recent"
	leaderboardKey  = "leaderboard:wins"

	// DefaultLimit is used when a read asks for no limit
	DefaultLimit = 10

	// maxRecentResults caps the recent results list
	maxRecentResults = 100
)

// ErrResultNotFound is returned when a result is not found
var ErrResultNotFound = errors.New("result not found")

// Config holds configuration for the Redis result repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed result repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveResult persists a finished game to Redis
func (r *redisRepository) SaveResult(ctx context.Context, input *SaveResultInput) error {
	if input == nil || input.Result == nil {
		return errors.New("input and result cannot be nil")
	}

	if input.Result.ID == "" {
		return errors.New("result ID cannot be empty")
	}

	resultJSON, err := json.Marshal(input.Result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	exists, err := r.client.Exists(ctx, resultKey(input.Result.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check result: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.TxPipeline()

	pipe.Set(ctx, resultKey(input.Result.ID), resultJSON, 0) // No expiration for now

	// Only credit the winner the first time a game is recorded
	if exists == 0 {
		pipe.LPush(ctx, recentResults, input.Result.ID)
		pipe.LTrim(ctx, recentResults, 0, maxRecentResults-1)
		pipe.ZIncrBy(ctx, leaderboardKey, 1, input.Result.WinnerName)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}

	return nil
}

// GetResult retrieves a finished game by ID from Redis
func (r *redisRepository) GetResult(ctx context.Context, input *GetResultInput) (*models.GameResult, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	resultJSON, err := r.client.Get(ctx, resultKey(input.GameID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var result models.GameResult
	if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result: %w", err)
	}

	return &result, nil
}

// GetRecentResults retrieves the newest results from Redis
func (r *redisRepository) GetRecentResults(ctx context.Context, input *GetRecentResultsInput) (*GetRecentResultsOutput, error) {
	limit := DefaultLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	gameIDs, err := r.client.LRange(ctx, recentResults, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get recent result IDs: %w", err)
	}

	// If there are no results, return an empty slice
	if len(gameIDs) == 0 {
		return &GetRecentResultsOutput{
			Results: []*models.GameResult{},
		}, nil
	}

	// Get all results in one round trip using a pipeline
	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(gameIDs))
	for i, gameID := range gameIDs {
		cmds[i] = pipe.Get(ctx, resultKey(gameID))
	}

	// redis.Nil for a missing key is reported per command below
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get recent results: %w", err)
	}

	results := make([]*models.GameResult, 0, len(gameIDs))
	for i, cmd := range cmds {
		resultJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to get result %s: %w", gameIDs[i], err)
		}

		var result models.GameResult
		if err := json.Unmarshal([]byte(resultJSON), &result); err != nil {
			return nil, fmt.Errorf("failed to unmarshal result %s: %w", gameIDs[i], err)
		}

		results = append(results, &result)
	}

	return &GetRecentResultsOutput{
		Results: results,
	}, nil
}

// GetLeaderboard retrieves the players with the most wins from Redis
func (r *redisRepository) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*models.Leaderboard, error) {
	limit := DefaultLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	scores, err := r.client.ZRevRangeWithScores(ctx, leaderboardKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	entries := make([]*models.LeaderboardEntry, 0, len(scores))
	for _, z := range scores {
		name, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, &models.LeaderboardEntry{
			PlayerName: name,
			Wins:       int(z.Score),
		})
	}

	return &models.Leaderboard{
		Entries: entries,
	}, nil
}

func resultKey(gameID string) string {
	return fmt.Sprintf("%s%s", resultKeyPrefix, gameID)
}
