package game

import (
	"context"
	"fmt"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/liarsdice/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/liarsdice/internal/common/uuid/mocks"
	"github.com/KirkDiggler/liarsdice/internal/dice"
	diceMocks "github.com/KirkDiggler/liarsdice/internal/dice/mocks"
	"github.com/KirkDiggler/liarsdice/internal/models"
	"github.com/KirkDiggler/liarsdice/internal/player"
	playerMocks "github.com/KirkDiggler/liarsdice/internal/player/mocks"
	"github.com/KirkDiggler/liarsdice/internal/services/observer"
	observerMocks "github.com/KirkDiggler/liarsdice/internal/services/observer/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockObserver *observerMocks.MockObserver
	mockClock    *clockMocks.MockClock
	mockUUID     *uuidMocks.MockUUID
	mockRoller   *diceMocks.MockRoller
	ctx          context.Context

	// Test data
	testTime   time.Time
	testGameID string
	roller     *dice.RandomRoller
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockObserver = observerMocks.NewMockObserver(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.mockRoller = diceMocks.NewMockRoller(s.mockCtrl)
	s.ctx = context.Background()

	s.testTime = time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)
	s.testGameID = "test-game-id"
	s.roller = dice.New(&dice.Config{Seed: 1234})

	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return(s.testGameID).AnyTimes()
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) newService(wildOnes bool, players ...player.Player) *service {
	svc, err := New(&Config{
		Players:       players,
		WildOnes:      wildOnes,
		Observer:      s.mockObserver,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	return svc
}

func (s *GameServiceTestSuite) newAI(id int, roller dice.Roller) *player.Automated {
	ai, err := player.NewAutomated(&player.AutomatedConfig{
		ID:     id,
		Name:   fmt.Sprintf("AI Player %d", id),
		Roller: roller,
	})
	s.Require().NoError(err)
	return ai
}

func (s *GameServiceTestSuite) newHuman(id int, roller dice.Roller) (*player.Interactive, *playerMocks.MockMoveProvider) {
	provider := playerMocks.NewMockMoveProvider(s.mockCtrl)
	human, err := player.NewInteractive(&player.InteractiveConfig{
		ID:       id,
		Name:     fmt.Sprintf("Player %d", id),
		Roller:   roller,
		Provider: provider,
	})
	s.Require().NoError(err)
	return human, provider
}

// newScripted builds a mock player holding count dice that always roll face
func (s *GameServiceTestSuite) newScripted(id, face, count int) *playerMocks.MockPlayer {
	roller := diceMocks.NewMockRoller(s.mockCtrl)
	roller.EXPECT().Roll(dice.Sides).Return(face).AnyTimes()
	set := dice.NewSet(roller, count)

	p := playerMocks.NewMockPlayer(s.mockCtrl)
	p.EXPECT().ID().Return(id).AnyTimes()
	p.EXPECT().Name().Return(fmt.Sprintf("Scripted %d", id)).AnyTimes()
	p.EXPECT().Dice().Return(set).AnyTimes()
	p.EXPECT().IsActive().DoAndReturn(func() bool { return set.Count() > 0 }).AnyTimes()
	return p
}

func (s *GameServiceTestSuite) allowEvents() {
	s.mockObserver.EXPECT().RoundStarted(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockObserver.EXPECT().BidPlaced(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockObserver.EXPECT().ChallengeResolved(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockObserver.EXPECT().InvalidMove(gomock.Any(), gomock.Any()).AnyTimes()
	s.mockObserver.EXPECT().GameOver(gomock.Any(), gomock.Any()).AnyTimes()
}

func (s *GameServiceTestSuite) TestNew_Validation() {
	a, b := s.newAI(0, s.roller), s.newAI(1, s.roller)

	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Players: []player.Player{a}})
	s.ErrorIs(err, ErrNotEnoughPlayers)

	_, err = New(&Config{Players: []player.Player{a, nil}})
	s.ErrorIs(err, ErrNilPlayer)

	_, err = New(&Config{Players: []player.Player{a, b, s.newAI(1, s.roller)}})
	s.ErrorIs(err, ErrDuplicatePlayerID)
}

func (s *GameServiceTestSuite) TestNew_InitialState() {
	svc := s.newService(true, s.newAI(0, s.roller), s.newAI(1, s.roller))

	state := svc.GetState()
	s.Equal(s.testGameID, state.GameID)
	s.Equal(models.GameStatusActive, state.Status)
	s.Equal(1, state.Round)
	s.Equal(0, state.CurrentPlayer)
	s.Nil(state.CurrentBid)
	s.True(state.WildOnes)
	s.Equal(10, state.TotalDice)
	s.Equal(2, state.ActivePlayers)
}

func (s *GameServiceTestSuite) TestNew_DefaultsDependencies() {
	svc, err := New(&Config{Players: []player.Player{s.newAI(0, s.roller), s.newAI(1, s.roller)}})
	s.Require().NoError(err)
	s.NotEmpty(svc.GetState().GameID)
}

func (s *GameServiceTestSuite) TestHandleChallenge_ValidBidChallengerLoses() {
	a, b := s.newAI(0, s.roller), s.newAI(1, s.roller)
	a.Dice().SetValues([]int{3, 3, 3, 2, 2})
	b.Dice().SetValues([]int{3, 1, 4, 5, 6})
	svc := s.newService(false, a, b)
	bid := models.NewBid(4, 3, a.ID())

	s.mockObserver.EXPECT().
		ChallengeResolved(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, event *observer.ChallengeResolvedEvent) {
			s.True(event.BidValid)
			s.Equal(4, event.ActualCount)
			s.Equal(b.ID(), event.ChallengerID)
			s.Equal(b.ID(), event.LoserID)
			s.Equal(4, event.DiceLeft)
			s.False(event.Eliminated)
			s.Require().Len(event.Hands, 2)
			s.Equal([]int{3, 3, 3, 2, 2}, event.Hands[0].Values)
			s.Equal([]int{3, 1, 4, 5, 6}, event.Hands[1].Values)
		})

	out, err := svc.HandleChallenge(s.ctx, &HandleChallengeInput{ChallengerIndex: 1, Bid: bid})

	s.Require().NoError(err)
	s.True(out.BidValid)
	s.Equal(4, out.ActualCount)
	s.Equal(1, out.LoserIndex)
	s.Equal(5, a.Dice().Count())
	s.Equal(4, b.Dice().Count())
}

func (s *GameServiceTestSuite) TestHandleChallenge_WildOnesInvalidBidProposerLoses() {
	a, b := s.newAI(0, s.roller), s.newAI(1, s.roller)
	a.Dice().SetValues([]int{3, 3, 3, 2, 2})
	b.Dice().SetValues([]int{3, 1, 4, 5, 6})
	svc := s.newService(true, a, b)
	s.allowEvents()

	out, err := svc.HandleChallenge(s.ctx, &HandleChallengeInput{
		ChallengerIndex: 1,
		Bid:             models.NewBid(6, 3, a.ID()),
	})

	s.Require().NoError(err)
	s.False(out.BidValid)
	s.Equal(5, out.ActualCount)
	s.Equal(0, out.LoserIndex)
	s.Equal(4, a.Dice().Count())
	s.Equal(5, b.Dice().Count())
}

func (s *GameServiceTestSuite) TestHandleChallenge_Errors() {
	a, b := s.newAI(0, s.roller), s.newAI(1, s.roller)
	svc := s.newService(false, a, b)

	_, err := svc.HandleChallenge(s.ctx, &HandleChallengeInput{ChallengerIndex: 1})
	s.ErrorIs(err, ErrChallengeWithNoBid)

	_, err = svc.HandleChallenge(s.ctx, &HandleChallengeInput{ChallengerIndex: 5, Bid: models.NewBid(1, 2, 0)})
	s.ErrorIs(err, ErrInvalidChallenger)

	_, err = svc.HandleChallenge(s.ctx, &HandleChallengeInput{ChallengerIndex: 1, Bid: models.NewBid(1, 2, 42)})
	s.ErrorIs(err, ErrUnknownProposer)
}

func (s *GameServiceTestSuite) TestCheckBid() {
	a, b, c := s.newAI(0, s.roller), s.newAI(1, s.roller), s.newAI(2, s.roller)
	a.Dice().SetValues([]int{3, 3, 3, 2, 2})
	b.Dice().SetValues([]int{3, 1, 4, 5, 6})
	c.Dice().SetValues(nil)

	testCases := []struct {
		name   string
		wild   bool
		bid    *models.Bid
		valid  bool
		actual int
	}{
		{name: "exact count holds", bid: models.NewBid(4, 3, 0), valid: true, actual: 4},
		{name: "one short fails", bid: models.NewBid(5, 3, 0), valid: false, actual: 4},
		{name: "wild ones add to threes", wild: true, bid: models.NewBid(5, 3, 0), valid: true, actual: 5},
		{name: "wild ones not doubled for ones", wild: true, bid: models.NewBid(2, 1, 0), valid: false, actual: 1},
		{name: "wild ones six short", wild: true, bid: models.NewBid(6, 3, 0), valid: false, actual: 5},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc := s.newService(tc.wild, a, b, c)

			out := svc.CheckBid(tc.bid)

			s.Equal(tc.valid, out.Valid)
			s.Equal(tc.actual, out.ActualCount)
		})
	}
}

func (s *GameServiceTestSuite) TestNextPlayer_SkipsEliminated() {
	a, b, c, d := s.newAI(0, s.roller), s.newAI(1, s.roller), s.newAI(2, s.roller), s.newAI(3, s.roller)
	b.Dice().SetValues(nil)
	c.Dice().SetValues(nil)
	svc := s.newService(false, a, b, c, d)

	svc.NextPlayer()
	s.Equal(3, svc.GetState().CurrentPlayer)

	svc.NextPlayer()
	s.Equal(0, svc.GetState().CurrentPlayer)
}

func (s *GameServiceTestSuite) TestNextPlayer_NoActivePlayersTerminates() {
	a, b := s.newAI(0, s.roller), s.newAI(1, s.roller)
	a.Dice().SetValues(nil)
	b.Dice().SetValues(nil)
	svc := s.newService(false, a, b)

	svc.NextPlayer()

	s.Equal(0, svc.GetState().ActivePlayers)
}

func (s *GameServiceTestSuite) TestTotalDice() {
	a, b, c := s.newAI(0, s.roller), s.newAI(1, s.roller), s.newAI(2, s.roller)
	b.Dice().SetValues([]int{1, 2})
	c.Dice().SetValues(nil)
	svc := s.newService(false, a, b, c)

	s.Equal(7, svc.TotalDice())
}

func (s *GameServiceTestSuite) TestPlayRound_BidThenChallenge() {
	s.mockRoller.EXPECT().Roll(dice.Sides).Return(3).AnyTimes()
	a, providerA := s.newHuman(0, s.mockRoller)
	b, providerB := s.newHuman(1, s.mockRoller)
	svc := s.newService(false, a, b)

	gomock.InOrder(
		s.mockObserver.EXPECT().RoundStarted(gomock.Any(), &observer.RoundStartedEvent{
			GameID:         s.testGameID,
			Round:          1,
			TotalDice:      10,
			StartingPlayer: "Player 0",
		}),
		providerA.EXPECT().GetMove(gomock.Any(), gomock.Any()).Return(models.NewBidMove(models.NewBid(10, 3, 0)), nil),
		s.mockObserver.EXPECT().BidPlaced(gomock.Any(), &observer.BidPlacedEvent{
			GameID:     s.testGameID,
			Round:      1,
			PlayerID:   0,
			PlayerName: "Player 0",
			Bid:        models.NewBid(10, 3, 0),
		}),
		providerB.EXPECT().
			GetMove(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *player.GetMoveInput) (*models.Move, error) {
				s.Equal(models.NewBid(10, 3, 0), input.CurrentBid)
				s.Equal(10, input.TotalDice)
				return models.NewChallengeMove(), nil
			}),
		s.mockObserver.EXPECT().ChallengeResolved(gomock.Any(), gomock.Any()),
	)

	out, err := svc.PlayRound(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, out.Round)
	s.Nil(out.Winner)
	s.True(out.Challenge.BidValid)
	s.Equal(10, out.Challenge.ActualCount)
	s.Equal(1, out.Challenge.LoserIndex)

	state := svc.GetState()
	s.Equal(2, state.Round)
	s.Equal(1, state.CurrentPlayer)
	s.Equal(9, state.TotalDice)
	s.Equal(4, b.Dice().Count())
}

func (s *GameServiceTestSuite) TestPlayRound_ResetsBidAndRollsActiveDice() {
	s.mockRoller.EXPECT().Roll(dice.Sides).Return(2).AnyTimes()
	a, providerA := s.newHuman(0, s.mockRoller)
	b, providerB := s.newHuman(1, s.mockRoller)
	svc := s.newService(false, a, b)
	s.allowEvents()

	// Round 1: A overbids and loses a die
	providerA.EXPECT().GetMove(gomock.Any(), gomock.Any()).Return(models.NewBidMove(models.NewBid(20, 6, 0)), nil)
	providerB.EXPECT().GetMove(gomock.Any(), gomock.Any()).Return(models.NewChallengeMove(), nil)

	_, err := svc.PlayRound(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, svc.GetState().CurrentPlayer)
	s.Equal(4, a.Dice().Count())

	// Round 2: the loser opens with no standing bid
	providerA.EXPECT().
		GetMove(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *player.GetMoveInput) (*models.Move, error) {
			s.Nil(input.CurrentBid)
			s.Equal([]int{2, 2, 2, 2}, input.Dice)
			s.Equal(9, input.TotalDice)
			return models.NewBidMove(models.NewBid(1, 2, 0)), nil
		})
	providerB.EXPECT().GetMove(gomock.Any(), gomock.Any()).Return(models.NewChallengeMove(), nil)

	out, err := svc.PlayRound(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, out.Round)
	s.Equal(1, out.Challenge.LoserIndex)
}

func (s *GameServiceTestSuite) TestPlayRound_ChallengeWithNoBidIsRetried() {
	a := s.newScripted(0, 4, 5)
	b := s.newScripted(1, 4, 5)
	svc := s.newService(false, a, b)

	s.mockObserver.EXPECT().RoundStarted(gomock.Any(), gomock.Any())
	gomock.InOrder(
		a.EXPECT().DecideMove(gomock.Any(), gomock.Any()).Return(models.NewChallengeMove(), nil),
		s.mockObserver.EXPECT().
			InvalidMove(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, event *observer.InvalidMoveEvent) {
				s.ErrorIs(event.Err, ErrChallengeWithNoBid)
				s.Equal(0, event.PlayerID)
			}),
		a.EXPECT().DecideMove(gomock.Any(), gomock.Any()).Return(models.NewBidMove(nil), nil),
		s.mockObserver.EXPECT().
			InvalidMove(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, event *observer.InvalidMoveEvent) {
				s.ErrorIs(event.Err, ErrMissingBid)
			}),
		a.EXPECT().DecideMove(gomock.Any(), gomock.Any()).Return(&models.Move{Action: "fold"}, nil),
		s.mockObserver.EXPECT().
			InvalidMove(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, event *observer.InvalidMoveEvent) {
				s.ErrorIs(event.Err, ErrUnknownAction)
			}),
		a.EXPECT().DecideMove(gomock.Any(), gomock.Any()).Return(models.NewBidMove(models.NewBid(3, 4, 0)), nil),
		s.mockObserver.EXPECT().BidPlaced(gomock.Any(), gomock.Any()),
		b.EXPECT().DecideMove(gomock.Any(), gomock.Any()).Return(models.NewChallengeMove(), nil),
		s.mockObserver.EXPECT().ChallengeResolved(gomock.Any(), gomock.Any()),
	)

	out, err := svc.PlayRound(s.ctx)

	s.Require().NoError(err)
	s.True(out.Challenge.BidValid)
	s.Equal(1, out.Challenge.LoserIndex)
}

func (s *GameServiceTestSuite) TestPlayRound_StampsProposerOnBid() {
	a := s.newScripted(0, 4, 5)
	b := s.newScripted(1, 4, 5)
	svc := s.newService(false, a, b)
	s.allowEvents()

	// A claims the bid belongs to B; the engine records A as the proposer
	a.EXPECT().DecideMove(gomock.Any(), gomock.Any()).Return(models.NewBidMove(models.NewBid(50, 4, 1)), nil)
	b.EXPECT().DecideMove(gomock.Any(), gomock.Any()).Return(models.NewChallengeMove(), nil)

	out, err := svc.PlayRound(s.ctx)

	s.Require().NoError(err)
	s.False(out.Challenge.BidValid)
	s.Equal(0, out.Challenge.LoserIndex)
}

func (s *GameServiceTestSuite) TestPlayRound_AcceptsNonRaisingAutomatedBid() {
	a := s.newScripted(0, 6, 5)
	b := s.newScripted(1, 6, 5)
	svc := s.newService(false, a, b)
	s.allowEvents()

	gomock.InOrder(
		a.EXPECT().DecideMove(gomock.Any(), gomock.Any()).Return(models.NewBidMove(models.NewBid(1, 6, 0)), nil),
		b.EXPECT().DecideMove(gomock.Any(), gomock.Any()).Return(models.NewBidMove(models.NewBid(1, 6, 1)), nil),
		a.EXPECT().
			DecideMove(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, input *player.DecideMoveInput) (*models.Move, error) {
				s.Equal(models.NewBid(1, 6, 1), input.CurrentBid)
				return models.NewChallengeMove(), nil
			}),
	)

	out, err := svc.PlayRound(s.ctx)

	s.Require().NoError(err)
	s.True(out.Challenge.BidValid)
	s.Equal(0, out.Challenge.LoserIndex)
}

func (s *GameServiceTestSuite) TestPlayRound_InputClosedAbortsGame() {
	s.mockRoller.EXPECT().Roll(dice.Sides).Return(5).AnyTimes()
	a, providerA := s.newHuman(0, s.mockRoller)
	b := s.newAI(1, s.mockRoller)
	svc := s.newService(false, a, b)
	s.allowEvents()

	providerA.EXPECT().GetMove(gomock.Any(), gomock.Any()).Return(nil, player.ErrInputClosed)

	out, err := svc.PlayGame(s.ctx)

	s.Nil(out)
	s.ErrorIs(err, player.ErrInputClosed)
	s.Equal(models.GameStatusActive, svc.GetState().Status)
}

func (s *GameServiceTestSuite) TestPlayRound_CancelledContext() {
	svc := s.newService(false, s.newAI(0, s.roller), s.newAI(1, s.roller))
	s.allowEvents()

	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	out, err := svc.PlayRound(ctx)

	s.Nil(out)
	s.ErrorIs(err, context.Canceled)
}

func (s *GameServiceTestSuite) TestPlayRound_SkipsEliminatedStarter() {
	a := s.newScripted(0, 1, 0)
	b := s.newScripted(1, 2, 2)
	c := s.newScripted(2, 2, 2)
	svc := s.newService(false, a, b, c)
	s.allowEvents()

	gomock.InOrder(
		b.EXPECT().DecideMove(gomock.Any(), gomock.Any()).Return(models.NewBidMove(models.NewBid(9, 2, 1)), nil),
		c.EXPECT().DecideMove(gomock.Any(), gomock.Any()).Return(models.NewChallengeMove(), nil),
	)

	out, err := svc.PlayRound(s.ctx)

	s.Require().NoError(err)
	s.Equal(1, out.Challenge.LoserIndex)
	s.Nil(out.Winner)
}

func (s *GameServiceTestSuite) TestPlayRound_LastDieEndsGame() {
	a := s.newScripted(0, 5, 1)
	b := s.newScripted(1, 5, 2)
	svc := s.newService(false, a, b)
	s.allowEvents()

	a.EXPECT().DecideMove(gomock.Any(), gomock.Any()).Return(models.NewBidMove(models.NewBid(4, 5, 0)), nil)
	b.EXPECT().DecideMove(gomock.Any(), gomock.Any()).Return(models.NewChallengeMove(), nil)

	out, err := svc.PlayRound(s.ctx)

	s.Require().NoError(err)
	s.Equal(b, out.Winner)
	s.Equal(models.GameStatusCompleted, svc.GetState().Status)
	s.Equal(1, svc.GetState().Round)

	_, err = svc.PlayRound(s.ctx)
	s.ErrorIs(err, ErrGameOver)
}

func (s *GameServiceTestSuite) TestPlayGame_AutomatedPlayersFinish() {
	players := []player.Player{s.newAI(0, s.roller), s.newAI(1, s.roller), s.newAI(2, s.roller), s.newAI(3, s.roller)}
	svc := s.newService(false, players...)
	s.allowEvents()

	out, err := svc.PlayGame(s.ctx)

	s.Require().NoError(err)
	s.Require().NotNil(out.Winner)
	s.True(out.Winner.IsActive())
	// every round takes exactly one die off the table
	s.Equal(4*dice.StartingDice-out.Winner.Dice().Count(), out.Rounds)

	active := 0
	for _, p := range svc.Players() {
		if p.IsActive() {
			active++
		}
	}
	s.Equal(1, active)

	s.Equal(s.testGameID, out.Result.ID)
	s.Equal(out.Winner.ID(), out.Result.WinnerID)
	s.Equal(out.Winner.Name(), out.Result.WinnerName)
	s.Equal(out.Rounds, out.Result.Rounds)
	s.Equal(s.testTime, out.Result.FinishedAt)
	s.Len(out.Result.Players, 4)
	s.True(out.Result.Players[0].Automated)
}

func (s *GameServiceTestSuite) TestPlayGame_EmitsGameOver() {
	a := s.newScripted(0, 5, 1)
	b := s.newScripted(1, 5, 1)
	svc := s.newService(true, a, b)

	s.mockObserver.EXPECT().RoundStarted(gomock.Any(), gomock.Any())
	s.mockObserver.EXPECT().BidPlaced(gomock.Any(), gomock.Any())
	s.mockObserver.EXPECT().ChallengeResolved(gomock.Any(), gomock.Any())
	s.mockObserver.EXPECT().GameOver(gomock.Any(), &observer.GameOverEvent{
		GameID:     s.testGameID,
		Rounds:     1,
		WinnerID:   0,
		WinnerName: "Scripted 0",
	})

	a.EXPECT().DecideMove(gomock.Any(), gomock.Any()).Return(models.NewBidMove(models.NewBid(2, 5, 0)), nil)
	b.EXPECT().DecideMove(gomock.Any(), gomock.Any()).Return(models.NewChallengeMove(), nil)

	out, err := svc.PlayGame(s.ctx)

	s.Require().NoError(err)
	s.Equal(a, out.Winner)
	s.True(out.Result.WildOnes)
	s.False(out.Result.Players[1].Automated)
}

func (s *GameServiceTestSuite) TestPlayGame_SeededGamesAreReproducible() {
	s.allowEvents()

	play := func() (int, int) {
		roller := dice.New(&dice.Config{Seed: 99})
		svc := s.newService(true, s.newAI(0, roller), s.newAI(1, roller), s.newAI(2, roller))
		out, err := svc.PlayGame(s.ctx)
		s.Require().NoError(err)
		return out.Winner.ID(), out.Rounds
	}

	winner1, rounds1 := play()
	winner2, rounds2 := play()

	s.Equal(winner1, winner2)
	s.Equal(rounds1, rounds2)
}
