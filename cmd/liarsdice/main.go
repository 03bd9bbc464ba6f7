package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/liarsdice/internal/config"
	"github.com/KirkDiggler/liarsdice/internal/dice"
	"github.com/KirkDiggler/liarsdice/internal/handlers/console"
	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/KirkDiggler/liarsdice/internal/player"
	"github.com/KirkDiggler/liarsdice/internal/repositories/result"
	"github.com/KirkDiggler/liarsdice/internal/services/game"
	"github.com/KirkDiggler/liarsdice/internal/services/messaging"
	"github.com/KirkDiggler/liarsdice/internal/services/observer"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// options are the command line flags
type options struct {
	aiPlayers int
	wildOnes  bool
	debug     bool
	seed      int64
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "liarsdice: %v\n", err)
		os.Exit(1)
	}
}

func parseOptions(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}

	fs := flag.NewFlagSet("liarsdice", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.aiPlayers, "ai-players", 1, "Number of AI opponents")
	fs.BoolVar(&opts.wildOnes, "wild-ones", false, "Enable wild ones mode where 1s count as any value")
	fs.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	fs.Int64Var(&opts.seed, "seed", 0, "Seed for a reproducible game (0 picks one from the clock)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.aiPlayers < 1 {
		return nil, fmt.Errorf("-ai-players must be at least 1, got %d", opts.aiPlayers)
	}

	return opts, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args, stderr)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := zerolog.WarnLevel
	if opts.debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()

	msgs, err := messaging.NewService(&messaging.ServiceConfig{
		Tone: messaging.MessageTone(cfg.Tone),
	})
	if err != nil {
		return fmt.Errorf("failed to create messaging service: %w", err)
	}

	printer, err := console.NewPrinter(&console.PrinterConfig{
		Out:       stdout,
		Messaging: msgs,
		Logger:    &logger,
	})
	if err != nil {
		return fmt.Errorf("failed to create printer: %w", err)
	}

	provider, err := console.NewProvider(&console.ProviderConfig{
		In:  stdin,
		Out: stdout,
	})
	if err != nil {
		return fmt.Errorf("failed to create move provider: %w", err)
	}

	roller := dice.New(&dice.Config{Seed: opts.seed})

	players, err := buildRoster(cfg.PlayerName, opts.aiPlayers, roller, provider)
	if err != nil {
		return err
	}

	results, client := connectResults(cfg, logger)
	if client != nil {
		defer client.Close()
	}

	engine, err := game.New(&game.Config{
		Players:  players,
		WildOnes: opts.wildOnes,
		Observer: observer.NewMulti(observer.NewLogger(logger), printer),
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	fmt.Fprintln(stdout, "\nWelcome to Liar's Dice!")
	fmt.Fprintln(stdout, "======================")
	if opts.wildOnes {
		fmt.Fprintln(stdout, "\nPlaying with wild ones mode enabled!")
	}
	fmt.Fprintf(stdout, "\nStarting game with %d AI opponent(s)...\n", opts.aiPlayers)

	out, err := engine.PlayGame(ctx)
	if err != nil {
		if errors.Is(err, player.ErrInputClosed) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(stdout, "\nGame abandoned.")
		}
		return err
	}

	if results != nil {
		recordResult(ctx, results, out.Result, stdout, logger)
	}

	return nil
}

// recordResult saves a finished game and prints the leaderboard. Failures
// are logged; the game already has a winner.
func recordResult(ctx context.Context, repo result.Repository, res *models.GameResult, w io.Writer, logger zerolog.Logger) {
	if err := repo.SaveResult(ctx, &result.SaveResultInput{Result: res}); err != nil {
		logger.Error().Err(err).Str("game_id", res.ID).Msg("failed to record result")
		return
	}

	board, err := repo.GetLeaderboard(ctx, &result.GetLeaderboardInput{Limit: 5})
	if err != nil {
		logger.Error().Err(err).Msg("failed to load leaderboard")
		return
	}

	printLeaderboard(w, board.Entries)
}

// buildRoster seats the human first, then the AI opponents
func buildRoster(name string, aiPlayers int, roller dice.Roller, provider player.MoveProvider) ([]player.Player, error) {
	human, err := player.NewInteractive(&player.InteractiveConfig{
		ID:       0,
		Name:     name,
		Roller:   roller,
		Provider: provider,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create human player: %w", err)
	}

	players := []player.Player{human}
	for i := 1; i <= aiPlayers; i++ {
		ai, err := player.NewAutomated(&player.AutomatedConfig{
			ID:     i,
			Name:   fmt.Sprintf("AI Player %d", i),
			Roller: roller,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create AI player %d: %w", i, err)
		}
		players = append(players, ai)
	}

	return players, nil
}

// connectResults returns nils when recording is not configured or redis is
// unreachable. The game is playable either way.
func connectResults(cfg *config.Config, logger zerolog.Logger) (result.Repository, *redis.Client) {
	if !cfg.RecordsResults() {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	repo, err := result.NewRedis(&result.Config{RedisClient: client})
	if err != nil {
		logger.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("results will not be recorded")
		client.Close()
		return nil, nil
	}

	return repo, client
}

func printLeaderboard(w io.Writer, entries []*models.LeaderboardEntry) {
	if len(entries) == 0 {
		return
	}

	fmt.Fprintln(w, "\nLeaderboard")
	for i, entry := range entries {
		fmt.Fprintf(w, "%d. %s - %d win(s)\n", i+1, entry.PlayerName, entry.Wins)
	}
}
