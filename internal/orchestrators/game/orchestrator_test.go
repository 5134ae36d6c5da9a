package game_test

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/jp-mud/internal/clients/gameapi"
	gameapimock "github.com/KirkDiggler/jp-mud/internal/clients/gameapi/mock"
	"github.com/KirkDiggler/jp-mud/internal/entities"
	"github.com/KirkDiggler/jp-mud/internal/errors"
	"github.com/KirkDiggler/jp-mud/internal/orchestrators/game"
	"github.com/KirkDiggler/jp-mud/internal/pkg/clock"
	"github.com/KirkDiggler/jp-mud/internal/resilience"
	"github.com/KirkDiggler/jp-mud/internal/store"
	"github.com/KirkDiggler/jp-mud/internal/testutils"
	"github.com/KirkDiggler/jp-mud/internal/testutils/builders"
	"github.com/KirkDiggler/jp-mud/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockClient   *gameapimock.MockClient
	store        *store.Store
	resilience   *resilience.Manager
	clock        *clock.Fixed
	orchestrator game.Service
	ctx          context.Context
}

func TestOrchestratorTestSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = gameapimock.NewMockClient(s.ctrl)
	s.store = store.New()
	s.clock = clock.NewFixed(time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	var err error
	s.resilience, err = resilience.NewManager(nil)
	s.Require().NoError(err)

	s.orchestrator, err = game.NewOrchestrator(&game.Config{
		Client:      s.mockClient,
		Store:       s.store,
		Resilience:  s.resilience,
		Clock:       s.clock,
		SettleDelay: -1,
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.orchestrator.Wait()
	s.ctrl.Finish()
}

// seed puts a ready game in the store without going through generation
func (s *OrchestratorTestSuite) seed(state *entities.GameState) uint64 {
	return s.store.Commit(state, entities.CloneTranscript(testutils.TranscriptLook), store.PhaseReady)
}

func (s *OrchestratorTestSuite) TestNewOrchestratorRequiresDependencies() {
	_, err := game.NewOrchestrator(&game.Config{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "Client")
	s.Contains(err.Error(), "Store")

	_, err = game.NewOrchestrator(nil)
	s.Require().Error(err)
}

func (s *OrchestratorTestSuite) TestStartBootstrapsNewGame() {
	gomock.InOrder(
		mocks.ExpectWorldGeneration(s.mockClient, testutils.WorldPayloadList).Times(1),
		mocks.ExpectEcho(s.mockClient, "look", "You stand in the village square."),
	)

	out, err := s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "start"})
	s.Require().NoError(err)
	s.True(out.Bootstrapped)
	s.Nil(out.Banner)
	s.Require().True(out.Snapshot.Initialized())
	s.Equal(entities.StartLocationID, out.Snapshot.State.Player.CurrentLocation)

	s.orchestrator.Wait()

	snap := s.store.Read()
	s.Equal(store.PhaseReady, snap.Phase)
	s.Require().Len(snap.Transcript, 3)
	s.Equal(entities.RoleSystem, snap.Transcript[0].Role)
	s.Contains(snap.Transcript[0].Content, "Welcome to your Japanese adventure")
	s.Equal(entities.RoleSystem, snap.Transcript[1].Role)
	s.Equal(entities.AssistantMessage("You stand in the village square."), snap.Transcript[2])

	s.Equal("0.1.0", snap.State.Metadata[entities.MetaVersion])
	s.Equal("2024-04-01T09:00:00Z", snap.State.Metadata[entities.MetaCreationTime])
	s.NotContains(snap.State.Metadata, entities.MetaOffline)
}

func (s *OrchestratorTestSuite) TestStartIsCaseAndWidthInsensitive() {
	mocks.ExpectWorldGeneration(s.mockClient, testutils.WorldPayloadList)
	mocks.ExpectEcho(s.mockClient, "look", "Village square.")

	out, err := s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "  ＳＴＡＲＴ "})
	s.Require().NoError(err)
	s.True(out.Bootstrapped)
}

func (s *OrchestratorTestSuite) TestNewGameRepairsDisconnectedStart() {
	mocks.ExpectWorldGeneration(s.mockClient, testutils.WorldPayloadDisconnected)
	mocks.ExpectEcho(s.mockClient, "look", "A lonely hill.")

	out, err := s.orchestrator.NewGame(s.ctx, &game.NewGameInput{})
	s.Require().NoError(err)

	start := out.Snapshot.State.World.Location(entities.StartLocationID)
	s.Require().NotNil(start)
	s.Equal("forest", start.Connections["north"])
	s.NotNil(out.Snapshot.State.World.Location("forest"))
}

func (s *OrchestratorTestSuite) TestNewGameRejectsNonObjectWorld() {
	mocks.ExpectWorldGeneration(s.mockClient, `null`)

	out, err := s.orchestrator.NewGame(s.ctx, &game.NewGameInput{})
	s.Require().Error(err)
	s.Equal(errors.KindWorldGeneration, errors.GetKind(err))
	s.Require().NotNil(out.Banner)
	s.Equal(errors.KindWorldGeneration, out.Banner.Kind)
	s.Equal("Received invalid world data structure", out.Banner.Detail)
	s.False(out.Snapshot.Initialized())
	s.Equal(store.PhaseUninitialized, out.Snapshot.Phase)
	s.Equal(0, s.resilience.Failures())
}

func (s *OrchestratorTestSuite) TestNewGameUsesPromptOverrideAndTheme() {
	themes := game.NewThemeRoller(&fixedRoller{value: 2}, []string{"by the sea", "in the mountains"})
	orch, err := game.NewOrchestrator(&game.Config{
		Client:      s.mockClient,
		Store:       s.store,
		Resilience:  s.resilience,
		Clock:       s.clock,
		Themes:      themes,
		SettleDelay: -1,
	})
	s.Require().NoError(err)

	var prompt string
	s.mockClient.EXPECT().
		GenerateWorld(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *gameapi.GenerateWorldRequest) (*gameapi.GenerateWorldResponse, error) {
			prompt = req.Prompt
			return &gameapi.GenerateWorldResponse{World: json.RawMessage(testutils.WorldPayloadList)}, nil
		})
	mocks.ExpectEcho(s.mockClient, "look", "Mountains.")

	_, err = orch.NewGame(s.ctx, &game.NewGameInput{Prompt: "A snowy world"})
	s.Require().NoError(err)
	orch.Wait()

	s.Equal("A snowy world, in the mountains", prompt)
}

func (s *OrchestratorTestSuite) TestLookReplacesStateAndTranscriptTogether() {
	token := s.seed(testutils.CreateTestGameState())

	moved := builders.NewGameStateBuilder().WithCurrentLocation("forest").WithVisited("start").Build()
	replyTranscript := []entities.ChatMessage{
		entities.UserMessage("north"),
		entities.AssistantMessage("You walk into the forest."),
	}
	s.mockClient.EXPECT().
		ProcessInput(gomock.Any(), mocks.ProcessInputFor("north")).
		Return(&gameapi.ProcessInputResponse{
			Response:    "You walk into the forest.",
			GameState:   moved,
			ChatHistory: replyTranscript,
		}, nil)

	out, err := s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "north"})
	s.Require().NoError(err)
	s.Equal("You walk into the forest.", out.Response)
	s.False(out.Stale)

	snap := s.store.Read()
	s.Equal("forest", snap.State.Player.CurrentLocation)
	s.Equal(replyTranscript, snap.Transcript)
	s.Greater(snap.Token, token)
}

func (s *OrchestratorTestSuite) TestDispatchSendsUserMessageWithRequest() {
	s.seed(testutils.CreateTestGameState())

	s.mockClient.EXPECT().
		ProcessInput(gomock.Any(), mocks.ProcessInputFor("look")).
		DoAndReturn(func(_ context.Context, req *gameapi.ProcessInputRequest) (*gameapi.ProcessInputResponse, error) {
			s.Require().Len(req.ChatHistory, 3)
			s.Equal(entities.UserMessage("look"), req.ChatHistory[2])
			s.Equal(entities.StartLocationID, req.GameState.Player.CurrentLocation)
			return &gameapi.ProcessInputResponse{GameState: req.GameState, ChatHistory: req.ChatHistory}, nil
		})

	_, err := s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "look"})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TestBlankInputIsIgnored() {
	token := s.seed(testutils.CreateTestGameState())

	out, err := s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "   "})
	s.Require().NoError(err)
	s.True(out.Ignored)
	s.Equal(token, s.store.Token())
}

func (s *OrchestratorTestSuite) TestInvalidJapaneseDoesNotMutate() {
	token := s.seed(testutils.CreateTestGameState())
	before := s.store.Read()

	mocks.ExpectValidation(s.mockClient, "森へいくます", false, "Use 行きます")

	out, err := s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "森へいくます"})
	s.Require().NoError(err)
	s.True(out.Rejected)
	s.Equal("Use 行きます", out.ValidationFeedback)

	after := s.store.Read()
	s.Equal(token, after.Token)
	s.Equal(before.Transcript, after.Transcript)
	s.Equal(before.State, after.State)
}

func (s *OrchestratorTestSuite) TestValidJapaneseIsProcessed() {
	s.seed(testutils.CreateTestGameState())

	mocks.ExpectValidation(s.mockClient, "見る", true, "")
	mocks.ExpectEcho(s.mockClient, "見る", "広場にいます。")

	out, err := s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "見る"})
	s.Require().NoError(err)
	s.False(out.Rejected)
	s.Equal("広場にいます。", out.Response)
}

func (s *OrchestratorTestSuite) TestValidationFailureAddsNoticeAndContinues() {
	s.seed(testutils.CreateTestGameState())

	s.mockClient.EXPECT().
		ValidateJapanese(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("connection refused"))
	mocks.ExpectEcho(s.mockClient, "北へ行く", "北へ行きました。")

	out, err := s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "北へ行く"})
	s.Require().NoError(err)

	transcript := out.Snapshot.Transcript
	s.Require().Len(transcript, 5)
	s.Equal(entities.RoleSystem, transcript[2].Role)
	s.Contains(transcript[2].Content, "Japanese validation is currently unavailable")
	s.Equal(entities.UserMessage("北へ行く"), transcript[3])
	s.Equal(entities.AssistantMessage("北へ行きました。"), transcript[4])
	s.Equal(0, s.resilience.Failures())
}

func (s *OrchestratorTestSuite) TestDispatchBeforeStartShowsHint() {
	out, err := s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "look"})
	s.Require().Error(err)
	s.True(errors.IsFailedPrecondition(err))
	s.Equal(errors.KindStateNotInitialized, errors.GetKind(err))

	s.Require().NotNil(out.Banner)
	s.Equal(errors.KindStateNotInitialized, out.Banner.Kind)
	s.Require().Len(out.Snapshot.Transcript, 1)
	s.Equal(entities.RoleSystem, out.Snapshot.Transcript[0].Role)
	s.Contains(out.Snapshot.Transcript[0].Content, `"start"`)
}

func (s *OrchestratorTestSuite) TestProcessingErrorAppendsDetail() {
	s.seed(testutils.CreateTestGameState())

	s.mockClient.EXPECT().
		ProcessInput(gomock.Any(), mocks.ProcessInputFor("dance")).
		Return(nil, errors.Wrap(errors.InvalidArgument("Unknown command: dance"), "game server rejected request"))

	out, err := s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "dance"})
	s.Require().Error(err)
	s.Equal(errors.KindCommandProcessing, errors.GetKind(err))

	s.Require().NotNil(out.Banner)
	s.Equal(errors.KindCommandProcessing, out.Banner.Kind)
	s.Equal("Unknown command: dance", out.Banner.Detail)

	transcript := out.Snapshot.Transcript
	s.Require().Len(transcript, 4)
	s.Equal(entities.UserMessage("dance"), transcript[2])
	s.Equal(entities.SystemMessage("Error processing command: Unknown command: dance"), transcript[3])
	s.Equal(0, s.resilience.Failures())
}

func (s *OrchestratorTestSuite) TestConnectionFailuresSwitchToOfflineNotice() {
	s.seed(testutils.CreateTestGameState())

	s.mockClient.EXPECT().
		ProcessInput(gomock.Any(), mocks.ProcessInputFor("look")).
		Return(nil, errors.Unavailable("connection refused")).
		Times(3)

	var out *game.DispatchOutput
	for i := 0; i < 3; i++ {
		var err error
		out, err = s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "look"})
		s.Require().Error(err)
		s.Equal(errors.KindConnection, errors.GetKind(err))
	}

	s.Equal(3, s.resilience.Failures())
	s.Equal("Failed after 3 attempts. Server may be down or unreachable.", out.Banner.Detail)

	transcript := out.Snapshot.Transcript
	s.Require().Len(transcript, 2+3*2+1)
	last := transcript[len(transcript)-1]
	s.Contains(last.Content, "Switched to offline mode")
	s.Contains(transcript[len(transcript)-2].Content, "Your command was not processed")
}

func (s *OrchestratorTestSuite) TestThreeGenerationFailuresFallBackToOfflineWorld() {
	s.mockClient.EXPECT().
		GenerateWorld(gomock.Any(), gomock.Any()).
		Return(nil, errors.Unavailable("connection refused")).
		Times(3)

	out, err := s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "start"})
	s.Require().Error(err)
	s.Equal(errors.KindConnection, errors.GetKind(err))
	s.Equal("Check your internet connection and try again.", out.Banner.Detail)
	s.False(out.Snapshot.Initialized())
	s.Equal(store.PhaseUninitialized, out.Snapshot.Phase)

	_, err = s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "start"})
	s.Require().Error(err)

	out, err = s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "start"})
	s.Require().NoError(err)
	s.Require().NotNil(out.Banner)
	s.Equal(errors.KindConnection, out.Banner.Kind)
	s.Require().True(out.Snapshot.Initialized())

	s.orchestrator.Wait()

	snap := s.store.Read()
	s.Equal(true, snap.State.Metadata[entities.MetaOffline])
	start := snap.State.World.Location(entities.StartLocationID)
	s.Require().NotNil(start)
	s.Equal("Offline Starting Village", start.Name)
	s.Empty(start.Connections)

	s.Require().Len(snap.Transcript, 3)
	s.True(strings.HasPrefix(snap.Transcript[2].Content, "You are at Offline Starting Village (オフライン開始村)."))
	s.Equal(store.PhaseReady, snap.Phase)
}

func (s *OrchestratorTestSuite) TestSuccessResetsFailureCount() {
	gomock.InOrder(
		mocks.ExpectWorldGenerationError(s.mockClient, errors.New(errors.CodeDeadlineExceeded, "timed out")).Times(2),
		mocks.ExpectWorldGeneration(s.mockClient, testutils.WorldPayloadList),
	)
	mocks.ExpectEcho(s.mockClient, "look", "Village square.")

	for i := 0; i < 2; i++ {
		_, err := s.orchestrator.NewGame(s.ctx, &game.NewGameInput{})
		s.Require().Error(err)
	}
	s.Equal(2, s.resilience.Failures())

	out, err := s.orchestrator.NewGame(s.ctx, &game.NewGameInput{})
	s.Require().NoError(err)
	s.False(out.Offline)
	s.Equal(0, s.resilience.Failures())
}

func (s *OrchestratorTestSuite) TestServerErrorDuringGenerationDoesNotFallBack() {
	mocks.ExpectWorldGenerationError(s.mockClient, errors.Internal("model overloaded")).Times(3)

	for i := 0; i < 3; i++ {
		out, err := s.orchestrator.NewGame(s.ctx, &game.NewGameInput{})
		s.Require().Error(err)
		s.Equal(errors.KindWorldGeneration, out.Banner.Kind)
		s.Equal("model overloaded", out.Banner.Detail)
		s.False(out.Offline)
	}
	s.Equal(0, s.resilience.Failures())
}

func (s *OrchestratorTestSuite) TestStaleOpeningLookIsDiscarded() {
	started := make(chan struct{})
	release := make(chan struct{})

	mocks.ExpectWorldGeneration(s.mockClient, testutils.WorldPayloadList)
	s.mockClient.EXPECT().
		ProcessInput(gomock.Any(), mocks.ProcessInputFor("look")).
		DoAndReturn(func(_ context.Context, req *gameapi.ProcessInputRequest) (*gameapi.ProcessInputResponse, error) {
			close(started)
			<-release
			history := append(entities.CloneTranscript(req.ChatHistory), entities.AssistantMessage("late look"))
			return &gameapi.ProcessInputResponse{GameState: req.GameState, ChatHistory: history}, nil
		})
	mocks.ExpectEcho(s.mockClient, "inventory", "You carry nothing.")

	_, err := s.orchestrator.NewGame(s.ctx, &game.NewGameInput{})
	s.Require().NoError(err)
	<-started

	out, err := s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "inventory"})
	s.Require().NoError(err)
	s.False(out.Stale)

	close(release)
	s.orchestrator.Wait()

	snap := s.store.Read()
	last := snap.Transcript[len(snap.Transcript)-1]
	s.Equal(entities.AssistantMessage("You carry nothing."), last)
	for _, msg := range snap.Transcript {
		s.NotEqual("late look", msg.Content)
	}
	s.Equal(store.PhaseReady, snap.Phase)
}

// blockingLook expects one opening look that waits for release and then
// answers with reply appended
func (s *OrchestratorTestSuite) blockingLook(reply string, started, release chan struct{}) {
	s.mockClient.EXPECT().
		ProcessInput(gomock.Any(), mocks.ProcessInputFor("look")).
		DoAndReturn(func(_ context.Context, req *gameapi.ProcessInputRequest) (*gameapi.ProcessInputResponse, error) {
			close(started)
			<-release
			history := append(entities.CloneTranscript(req.ChatHistory), entities.AssistantMessage(reply))
			return &gameapi.ProcessInputResponse{GameState: req.GameState, ChatHistory: history}, nil
		})
}

func (s *OrchestratorTestSuite) TestSupersededOpeningLookLeavesPhaseAlone() {
	firstStarted, firstRelease := make(chan struct{}), make(chan struct{})
	secondStarted, secondRelease := make(chan struct{}), make(chan struct{})

	mocks.ExpectWorldGeneration(s.mockClient, testutils.WorldPayloadList)
	s.blockingLook("first look", firstStarted, firstRelease)
	mocks.ExpectWorldGeneration(s.mockClient, testutils.WorldPayloadList)
	s.blockingLook("second look", secondStarted, secondRelease)

	_, err := s.orchestrator.NewGame(s.ctx, &game.NewGameInput{})
	s.Require().NoError(err)
	<-firstStarted

	_, err = s.orchestrator.NewGame(s.ctx, &game.NewGameInput{})
	s.Require().NoError(err)
	<-secondStarted

	close(firstRelease)
	s.Never(func() bool {
		return s.store.Phase() != store.PhaseSettling
	}, 100*time.Millisecond, 10*time.Millisecond)

	close(secondRelease)
	s.orchestrator.Wait()

	snap := s.store.Read()
	s.Equal(store.PhaseReady, snap.Phase)
	s.Equal(entities.AssistantMessage("second look"), snap.Transcript[len(snap.Transcript)-1])
	for _, msg := range snap.Transcript {
		s.NotEqual("first look", msg.Content)
	}
}

func (s *OrchestratorTestSuite) TestFailedDispatchDuringSettleStillEndsSettling() {
	started, release := make(chan struct{}), make(chan struct{})

	mocks.ExpectWorldGeneration(s.mockClient, testutils.WorldPayloadList)
	s.blockingLook("late look", started, release)
	s.mockClient.EXPECT().
		ProcessInput(gomock.Any(), mocks.ProcessInputFor("inventory")).
		Return(nil, errors.Internal("inventory failed"))

	_, err := s.orchestrator.NewGame(s.ctx, &game.NewGameInput{})
	s.Require().NoError(err)
	<-started

	_, err = s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "inventory"})
	s.Require().Error(err)
	s.Equal(store.PhaseSettling, s.store.Phase())

	close(release)
	s.orchestrator.Wait()

	s.Equal(store.PhaseReady, s.store.Phase())
}

func (s *OrchestratorTestSuite) TestFailedOpeningLookUsesLocalDescription() {
	mocks.ExpectWorldGeneration(s.mockClient, testutils.WorldPayloadList)
	s.mockClient.EXPECT().
		ProcessInput(gomock.Any(), mocks.ProcessInputFor("look")).
		Return(nil, errors.Internal("look failed"))

	_, err := s.orchestrator.NewGame(s.ctx, &game.NewGameInput{})
	s.Require().NoError(err)
	s.orchestrator.Wait()

	snap := s.store.Read()
	s.Require().Len(snap.Transcript, 3)
	s.Equal(entities.SystemMessage("You are at Village Square (村の広場). A quiet square."), snap.Transcript[2])
}

func (s *OrchestratorTestSuite) TestConcurrentDispatchIsAborted() {
	s.seed(testutils.CreateTestGameState())

	started := make(chan struct{})
	release := make(chan struct{})
	s.mockClient.EXPECT().
		ProcessInput(gomock.Any(), mocks.ProcessInputFor("look")).
		DoAndReturn(func(_ context.Context, req *gameapi.ProcessInputRequest) (*gameapi.ProcessInputResponse, error) {
			close(started)
			<-release
			return &gameapi.ProcessInputResponse{GameState: req.GameState, ChatHistory: req.ChatHistory}, nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "look"})
		s.NoError(err)
	}()
	<-started

	_, err := s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "north"})
	s.Require().Error(err)
	s.True(errors.IsAborted(err))

	_, err = s.orchestrator.NewGame(s.ctx, &game.NewGameInput{})
	s.Require().Error(err)
	s.True(errors.IsAborted(err))

	close(release)
	wg.Wait()
}

func (s *OrchestratorTestSuite) TestDispatchResolvesGrammarChallenge() {
	quest := builders.NewQuestBuilder("q-particles").
		WithTitle("Particles").
		WithObjective("use-wo", false).
		Build()
	state := builders.NewGameStateBuilder().
		WithActiveQuest(quest).
		WithGrammarChallenge("q-particles", "use-wo").
		Build()
	s.seed(state)

	mocks.ExpectEcho(s.mockClient, "talk elder", "The elder asks you a question.")

	out, err := s.orchestrator.Dispatch(s.ctx, &game.DispatchInput{Text: "talk elder"})
	s.Require().NoError(err)
	s.Require().NotNil(out.Challenge)
	s.Equal("q-particles", out.Challenge.Quest.ID)
	s.Equal("use-wo", out.Challenge.Objective.ID)
}

func (s *OrchestratorTestSuite) TestAvailableCommands() {
	s.mockClient.EXPECT().
		AvailableCommands(gomock.Any()).
		Return(&gameapi.AvailableCommands{Movement: []string{"north"}, Actions: []string{"look"}}, nil)

	out, err := s.orchestrator.AvailableCommands(s.ctx)
	s.Require().NoError(err)
	s.False(out.Fallback)
	s.Equal([]string{"north"}, out.Movement)
}

func (s *OrchestratorTestSuite) TestAvailableCommandsFallsBack() {
	s.mockClient.EXPECT().
		AvailableCommands(gomock.Any()).
		Return(nil, errors.Unavailable("connection refused"))

	out, err := s.orchestrator.AvailableCommands(s.ctx)
	s.Require().NoError(err)
	s.True(out.Fallback)
	s.Contains(out.Movement, "north")
	s.Contains(out.Actions, "inventory")
	s.Contains(out.JapaneseCommands, "見る")
}

type fixedRoller struct {
	value int
}

func (r *fixedRoller) Roll(_ int) (int, error) { return r.value, nil }

func (r *fixedRoller) RollN(count, _ int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i] = r.value
	}
	return out, nil
}
