package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/liarsdice/internal/common/clock"
	"github.com/KirkDiggler/liarsdice/internal/common/uuid"
	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/KirkDiggler/liarsdice/internal/player"
	"github.com/KirkDiggler/liarsdice/internal/services/observer"
)

// service implements the Service interface
type service struct {
	players  []player.Player
	indexOf  map[int]int
	wildOnes bool
	observer observer.Observer
	clock    clock.Clock
	uuid     uuid.UUID

	gameID        string
	status        models.GameStatus
	round         int
	currentPlayer int
	currentBid    *models.Bid
}

// New creates a new game over cfg.Players
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if len(cfg.Players) < 2 {
		return nil, ErrNotEnoughPlayers
	}

	indexOf := make(map[int]int, len(cfg.Players))
	for i, p := range cfg.Players {
		if p == nil {
			return nil, ErrNilPlayer
		}
		if _, ok := indexOf[p.ID()]; ok {
			return nil, fmt.Errorf("%w: %d", ErrDuplicatePlayerID, p.ID())
		}
		indexOf[p.ID()] = i
	}

	obs := cfg.Observer
	if obs == nil {
		obs = observer.NewNop()
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	gen := cfg.UUIDGenerator
	if gen == nil {
		gen = uuid.New()
	}

	players := make([]player.Player, len(cfg.Players))
	copy(players, cfg.Players)

	return &service{
		players:  players,
		indexOf:  indexOf,
		wildOnes: cfg.WildOnes,
		observer: obs,
		clock:    clk,
		uuid:     gen,
		gameID:   gen.NewUUID(),
		status:   models.GameStatusActive,
		round:    1,
	}, nil
}

// PlayGame plays rounds until a single player has dice left
func (s *service) PlayGame(ctx context.Context) (*PlayGameOutput, error) {
	for {
		out, err := s.PlayRound(ctx)
		if err != nil {
			return nil, err
		}

		if out.Winner == nil {
			continue
		}

		s.observer.GameOver(ctx, &observer.GameOverEvent{
			GameID:     s.gameID,
			Rounds:     out.Round,
			WinnerID:   out.Winner.ID(),
			WinnerName: out.Winner.Name(),
		})

		return &PlayGameOutput{
			Winner: out.Winner,
			Rounds: out.Round,
			Result: s.result(out.Winner, out.Round),
		}, nil
	}
}

// PlayRound rolls every active player's dice and takes turns until a
// challenge is resolved. The loser of the challenge opens the next round.
func (s *service) PlayRound(ctx context.Context) (*PlayRoundOutput, error) {
	if s.status == models.GameStatusCompleted {
		return nil, ErrGameOver
	}

	if s.countActive() == 0 {
		return nil, ErrNoActivePlayers
	}

	for _, p := range s.players {
		if p.IsActive() {
			p.Dice().Roll()
		}
	}
	s.currentBid = nil

	if !s.players[s.currentPlayer].IsActive() {
		s.NextPlayer()
	}

	s.observer.RoundStarted(ctx, &observer.RoundStartedEvent{
		GameID:         s.gameID,
		Round:          s.round,
		TotalDice:      s.TotalDice(),
		StartingPlayer: s.players[s.currentPlayer].Name(),
	})

	challenge, err := s.takeTurns(ctx)
	if err != nil {
		return nil, err
	}

	out := &PlayRoundOutput{
		Round:     s.round,
		Challenge: challenge,
	}

	if active := s.activePlayers(); len(active) == 1 {
		s.status = models.GameStatusCompleted
		out.Winner = active[0]
		return out, nil
	}

	s.round++
	return out, nil
}

// takeTurns asks players for moves until one of them challenges
func (s *service) takeTurns(ctx context.Context) (*HandleChallengeOutput, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		current := s.players[s.currentPlayer]
		if !current.IsActive() {
			s.NextPlayer()
			continue
		}

		move, err := current.DecideMove(ctx, &player.DecideMoveInput{
			CurrentBid: s.currentBid,
			TotalDice:  s.TotalDice(),
			WildOnes:   s.wildOnes,
		})
		if err != nil {
			if isFatal(ctx, err) {
				return nil, fmt.Errorf("failed to get move from %s: %w", current.Name(), err)
			}
			s.invalidMove(ctx, current, err)
			continue
		}

		if move == nil {
			s.invalidMove(ctx, current, ErrUnknownAction)
			continue
		}

		switch move.Action {
		case models.ActionChallenge:
			if s.currentBid == nil {
				s.invalidMove(ctx, current, ErrChallengeWithNoBid)
				continue
			}

			out, err := s.HandleChallenge(ctx, &HandleChallengeInput{
				ChallengerIndex: s.currentPlayer,
				Bid:             s.currentBid,
			})
			if err != nil {
				return nil, err
			}

			s.currentPlayer = out.LoserIndex
			return out, nil

		case models.ActionBid:
			if move.Bid == nil {
				s.invalidMove(ctx, current, ErrMissingBid)
				continue
			}

			s.currentBid = models.NewBid(move.Bid.Quantity, move.Bid.Face, current.ID())
			s.observer.BidPlaced(ctx, &observer.BidPlacedEvent{
				GameID:     s.gameID,
				Round:      s.round,
				PlayerID:   current.ID(),
				PlayerName: current.Name(),
				Bid:        s.currentBid,
			})
			s.NextPlayer()

		default:
			s.invalidMove(ctx, current, fmt.Errorf("%w: %q", ErrUnknownAction, move.Action))
		}
	}
}

// HandleChallenge counts the table against bid. The challenger loses a die
// when the bid holds, otherwise the bid's proposer does.
func (s *service) HandleChallenge(ctx context.Context, input *HandleChallengeInput) (*HandleChallengeOutput, error) {
	if input == nil || input.Bid == nil {
		return nil, ErrChallengeWithNoBid
	}

	if input.ChallengerIndex < 0 || input.ChallengerIndex >= len(s.players) {
		return nil, ErrInvalidChallenger
	}

	proposerIndex, ok := s.indexOf[input.Bid.PlayerID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProposer, input.Bid.PlayerID)
	}

	hands := s.hands()
	check := s.CheckBid(input.Bid)

	loserIndex := proposerIndex
	if check.Valid {
		loserIndex = input.ChallengerIndex
	}

	loser := s.players[loserIndex]
	loser.Dice().RemoveDie()

	challenger := s.players[input.ChallengerIndex]
	s.observer.ChallengeResolved(ctx, &observer.ChallengeResolvedEvent{
		GameID:         s.gameID,
		Round:          s.round,
		ChallengerID:   challenger.ID(),
		ChallengerName: challenger.Name(),
		Bid:            input.Bid,
		BidValid:       check.Valid,
		ActualCount:    check.ActualCount,
		LoserID:        loser.ID(),
		LoserName:      loser.Name(),
		DiceLeft:       loser.Dice().Count(),
		Eliminated:     !loser.IsActive(),
		Hands:          hands,
	})

	return &HandleChallengeOutput{
		BidValid:    check.Valid,
		ActualCount: check.ActualCount,
		LoserIndex:  loserIndex,
	}, nil
}

// CheckBid counts the dice matching bid across every player
func (s *service) CheckBid(bid *models.Bid) *CheckBidOutput {
	total := 0
	for _, p := range s.players {
		total += p.Dice().CountValue(bid.Face, s.wildOnes)
	}

	return &CheckBidOutput{
		Valid:       total >= bid.Quantity,
		ActualCount: total,
	}
}

// NextPlayer moves the turn clockwise to the next player with dice. It
// leaves the turn alone when nobody has dice.
func (s *service) NextPlayer() {
	for range s.players {
		s.currentPlayer = (s.currentPlayer + 1) % len(s.players)
		if s.players[s.currentPlayer].IsActive() {
			return
		}
	}
}

// TotalDice returns the number of dice in play
func (s *service) TotalDice() int {
	total := 0
	for _, p := range s.players {
		total += p.Dice().Count()
	}
	return total
}

// GetState returns a snapshot of the engine state
func (s *service) GetState() *State {
	return &State{
		GameID:        s.gameID,
		Status:        s.status,
		Round:         s.round,
		CurrentPlayer: s.currentPlayer,
		CurrentBid:    s.currentBid,
		WildOnes:      s.wildOnes,
		TotalDice:     s.TotalDice(),
		ActivePlayers: s.countActive(),
	}
}

// Players returns the roster in seating order
func (s *service) Players() []player.Player {
	out := make([]player.Player, len(s.players))
	copy(out, s.players)
	return out
}

func (s *service) activePlayers() []player.Player {
	var active []player.Player
	for _, p := range s.players {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

func (s *service) countActive() int {
	return len(s.activePlayers())
}

func (s *service) hands() []*observer.Hand {
	hands := make([]*observer.Hand, 0, len(s.players))
	for _, p := range s.players {
		hands = append(hands, &observer.Hand{
			PlayerID:   p.ID(),
			PlayerName: p.Name(),
			Values:     p.Dice().Values(),
		})
	}
	return hands
}

func (s *service) invalidMove(ctx context.Context, p player.Player, err error) {
	s.observer.InvalidMove(ctx, &observer.InvalidMoveEvent{
		GameID:     s.gameID,
		Round:      s.round,
		PlayerID:   p.ID(),
		PlayerName: p.Name(),
		Err:        err,
	})
}

func (s *service) result(winner player.Player, rounds int) *models.GameResult {
	seats := make([]*models.Player, 0, len(s.players))
	for _, p := range s.players {
		_, automated := p.(*player.Automated)
		seats = append(seats, &models.Player{
			ID:        p.ID(),
			Name:      p.Name(),
			Automated: automated,
		})
	}

	return &models.GameResult{
		ID:         s.gameID,
		WinnerID:   winner.ID(),
		WinnerName: winner.Name(),
		Players:    seats,
		Rounds:     rounds,
		WildOnes:   s.wildOnes,
		FinishedAt: s.clock.Now(),
	}
}

// isFatal reports whether a decision error should end the game rather than
// retry the turn
func isFatal(ctx context.Context, err error) bool {
	return ctx.Err() != nil ||
		errors.Is(err, player.ErrInputClosed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
