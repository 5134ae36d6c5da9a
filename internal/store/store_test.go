package store_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/jp-mud/internal/entities"
	"github.com/KirkDiggler/jp-mud/internal/store"
)

type StoreTestSuite struct {
	suite.Suite
	store *store.Store
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.store = store.New()
}

func testState(location string) *entities.GameState {
	w := entities.NewWorld()
	w.Locations[location] = &entities.Location{ID: location, Name: location}

	player := entities.NewPlayer()
	player.CurrentLocation = location

	return &entities.GameState{
		World:    w,
		Player:   player,
		QuestLog: entities.NewQuestLog(),
	}
}

func (s *StoreTestSuite) TestNewIsUninitialized() {
	snap := s.store.Read()

	s.False(snap.Initialized())
	s.Nil(snap.State)
	s.Empty(snap.Transcript)
	s.Equal(store.PhaseUninitialized, snap.Phase)
	s.Equal(uint64(0), snap.Token)
}

func (s *StoreTestSuite) TestCommitReplacesBoth() {
	transcript := []entities.ChatMessage{entities.AssistantMessage("hello")}

	token := s.store.Commit(testState("start"), transcript, store.PhaseReady)

	snap := s.store.Read()
	s.True(snap.Initialized())
	s.Equal(token, snap.Token)
	s.Equal("start", snap.State.Player.CurrentLocation)
	s.Equal(transcript, snap.Transcript)
	s.Equal(store.PhaseReady, snap.Phase)
}

func (s *StoreTestSuite) TestReadIsACopy() {
	state := testState("start")
	s.store.Commit(state, []entities.ChatMessage{entities.UserMessage("look")}, store.PhaseReady)

	// caller memory is not aliased
	state.Player.CurrentLocation = "elsewhere"

	snap := s.store.Read()
	snap.State.World.Locations["start"].Name = "mutated"
	snap.Transcript[0].Content = "mutated"

	again := s.store.Read()
	s.Equal("start", again.State.Player.CurrentLocation)
	s.Equal("start", again.State.World.Locations["start"].Name)
	s.Equal("look", again.Transcript[0].Content)
}

func (s *StoreTestSuite) TestCommitIfDiscardsStale() {
	captured := s.store.Commit(testState("start"), nil, store.PhaseSettling)

	// a newer producer wins first
	newer := s.store.Commit(testState("forest"), nil, store.PhaseReady)

	token, ok := s.store.CommitIf(captured, testState("river"), nil, store.PhaseReady)
	s.False(ok)
	s.Equal(newer, token)
	s.Equal("forest", s.store.Read().State.Player.CurrentLocation)
}

func (s *StoreTestSuite) TestCommitIfApplies() {
	captured := s.store.Commit(testState("start"), nil, store.PhaseSettling)

	token, ok := s.store.CommitIf(captured, testState("forest"), nil, store.PhaseReady)
	s.True(ok)
	s.Greater(token, captured)
	s.Equal(store.PhaseReady, s.store.Phase())
}

func (s *StoreTestSuite) TestAppendBumpsToken() {
	before := s.store.Commit(testState("start"), nil, store.PhaseReady)

	after := s.store.Append(entities.UserMessage("look"), entities.AssistantMessage("a room"))
	s.Greater(after, before)
	s.Len(s.store.Read().Transcript, 2)

	// an append overtakes a commit captured before it
	_, ok := s.store.CommitIf(before, testState("forest"), nil, store.PhaseReady)
	s.False(ok)
}

func (s *StoreTestSuite) TestAppendIf() {
	token := s.store.Commit(testState("start"), nil, store.PhaseReady)

	_, ok := s.store.AppendIf(token, entities.SystemMessage("first"))
	s.True(ok)

	_, ok = s.store.AppendIf(token, entities.SystemMessage("stale"))
	s.False(ok)
	s.Equal([]entities.ChatMessage{entities.SystemMessage("first")}, s.store.Read().Transcript)
}

func (s *StoreTestSuite) TestResetClearsState() {
	s.store.Commit(testState("start"), []entities.ChatMessage{entities.UserMessage("look")}, store.PhaseReady)

	s.store.Reset(store.PhaseWorldGenerating, nil)

	snap := s.store.Read()
	s.False(snap.Initialized())
	s.Empty(snap.Transcript)
	s.Equal(store.PhaseWorldGenerating, snap.Phase)
}

func (s *StoreTestSuite) TestConcurrentAppendsAreSerialized() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.store.Append(entities.UserMessage("x"))
		}()
	}
	wg.Wait()

	snap := s.store.Read()
	s.Len(snap.Transcript, 50)
	s.Equal(uint64(50), snap.Token)
}

func (s *StoreTestSuite) TestSetPhaseIf() {
	s.store.SetPhase(store.PhaseSettling)
	token := s.store.Token()

	s.False(s.store.SetPhaseIf(store.PhaseWorldReady, store.PhaseReady))
	s.Equal(store.PhaseSettling, s.store.Phase())

	s.True(s.store.SetPhaseIf(store.PhaseSettling, store.PhaseReady))
	s.Equal(store.PhaseReady, s.store.Phase())
	s.Equal(token, s.store.Token())
}
