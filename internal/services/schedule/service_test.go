package schedule

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/msommer/pickem/internal/dependencies/mocks"
	"github.com/msommer/pickem/internal/model"
	"github.com/msommer/pickem/internal/storage/memory"
	"github.com/msommer/pickem/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
	now     time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.now = time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	s.clock = mocks.NewMockClock(s.now)
	s.service = New(s.storage, s.clock, DefaultConfig(), testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) game(id string, offset time.Duration) *model.Game {
	return &model.Game{
		ID:       model.GameID(id),
		GameTime: s.now.Add(offset),
		Roster:   []model.Player{{ID: "p1", Name: "Player One"}},
	}
}

// Classification tests

func (s *ServiceSuite) TestClassifyPartitionsByTime() {
	games := []*model.Game{
		s.game("next", time.Hour),
		s.game("old", -48 * time.Hour),
		s.game("later", 72 * time.Hour),
		s.game("soon", 24 * time.Hour),
	}

	cls := s.service.Classify(games, s.now)

	s.Require().Len(cls.Past, 1)
	s.Equal(model.GameID("old"), cls.Past[0].ID)
	s.Require().NotNil(cls.Next)
	s.Equal(model.GameID("next"), cls.Next.ID)
	s.Require().Len(cls.Upcoming, 2)
	s.Equal(model.GameID("soon"), cls.Upcoming[0].ID)
	s.Equal(model.GameID("later"), cls.Upcoming[1].ID)
}

func (s *ServiceSuite) TestClassifyGameAtNowIsNext() {
	games := []*model.Game{s.game("exact", 0)}

	cls := s.service.Classify(games, s.now)

	s.Empty(cls.Past)
	s.Require().NotNil(cls.Next)
	s.Equal(model.GameID("exact"), cls.Next.ID)
}

func (s *ServiceSuite) TestClassifyNoFutureGames() {
	games := []*model.Game{
		s.game("a", -2 * time.Hour),
		s.game("b", -time.Hour),
	}

	cls := s.service.Classify(games, s.now)

	s.Len(cls.Past, 2)
	s.Nil(cls.Next)
	s.Empty(cls.Upcoming)
}

func (s *ServiceSuite) TestClassifyEmpty() {
	cls := s.service.Classify(nil, s.now)

	s.Empty(cls.Past)
	s.Nil(cls.Next)
	s.Empty(cls.Upcoming)
}

func (s *ServiceSuite) TestClassifyCutoffExcludesOlderGames() {
	cfg := DefaultConfig()
	cfg.Cutoff = s.now.Add(-24 * time.Hour)
	service := New(s.storage, s.clock, cfg, testutil.NopLogger())

	games := []*model.Game{
		s.game("ancient", -72 * time.Hour),
		s.game("recent", -time.Hour),
		s.game("future", time.Hour),
	}

	cls := service.Classify(games, s.now)

	s.Require().Len(cls.Past, 1)
	s.Equal(model.GameID("recent"), cls.Past[0].ID)
	s.Require().NotNil(cls.Next)
	s.Equal(model.GameID("future"), cls.Next.ID)
}

func (s *ServiceSuite) TestClassifyIdempotent() {
	games := []*model.Game{
		s.game("b", 2 * time.Hour),
		s.game("a", time.Hour),
		s.game("z", -time.Hour),
	}

	first := s.service.Classify(games, s.now)
	second := s.service.Classify(games, s.now)

	s.Equal(first.Past, second.Past)
	s.Equal(first.Next, second.Next)
	s.Equal(first.Upcoming, second.Upcoming)
}

func (s *ServiceSuite) TestClassifyDoesNotReorderInput() {
	games := []*model.Game{
		s.game("b", 2 * time.Hour),
		s.game("a", time.Hour),
	}

	_ = s.service.Classify(games, s.now)

	s.Equal(model.GameID("b"), games[0].ID)
	s.Equal(model.GameID("a"), games[1].ID)
}

// Lock tests

func (s *ServiceSuite) TestIsLockedOutsideWindow() {
	game := s.game("g", 6*time.Minute)
	s.False(s.service.IsLocked(game, s.now))
}

func (s *ServiceSuite) TestIsLockedAtWindowBoundary() {
	// Exactly five minutes out is still open
	game := s.game("g", 5*time.Minute)
	s.False(s.service.IsLocked(game, s.now))
}

func (s *ServiceSuite) TestIsLockedInsideWindow() {
	game := s.game("g", 4*time.Minute)
	s.True(s.service.IsLocked(game, s.now))
}

func (s *ServiceSuite) TestIsLockedAfterStart() {
	game := s.game("g", -time.Minute)
	s.True(s.service.IsLocked(game, s.now))
}

func (s *ServiceSuite) TestLockIsMonotonic() {
	// Once locked, advancing time never unlocks
	game := s.game("g", 10*time.Minute)

	locked := false
	for offset := time.Duration(0); offset <= 20*time.Minute; offset += time.Minute {
		now := s.now.Add(offset)
		if s.service.IsLocked(game, now) {
			locked = true
		} else {
			s.False(locked, "game unlocked after being locked at offset %s", offset)
		}
	}
	s.True(locked)
}

// Schedule data tests

func (s *ServiceSuite) TestGamesSortedByTime() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.game("late", 2*time.Hour)))
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.game("early", time.Hour)))

	games, err := s.service.Games(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal(model.GameID("early"), games[0].ID)
	s.Equal(model.GameID("late"), games[1].ID)
}

func (s *ServiceSuite) TestLoadFromFile() {
	path := filepath.Join(s.T().TempDir(), "schedule.json")
	content := `[
		{
			"id": 2026020101,
			"gameTime": "2026-01-11T19:00:00Z",
			"homeTeam": "Aurora",
			"awayTeam": "Glaciers",
			"players": [
				{"id": 8478402, "name": "Eero Lahtinen"},
				{"id": "8480012", "name": "Danny O'Shea"}
			]
		}
	]`
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))

	s.Require().NoError(s.service.LoadFromFile(s.ctx, path))

	game, err := s.storage.GetGame(s.ctx, "2026020101")
	s.Require().NoError(err)
	s.Equal("Aurora", game.HomeTeam)
	s.Require().Len(game.Roster, 2)
	s.Equal(model.PlayerID("8478402"), game.Roster[0].ID)
	s.Equal(model.PlayerID("8480012"), game.Roster[1].ID)
}

func (s *ServiceSuite) TestLoadFromFileMissing() {
	err := s.service.LoadFromFile(s.ctx, filepath.Join(s.T().TempDir(), "absent.json"))
	s.Error(err)
}

// Result recording tests

func (s *ServiceSuite) TestRecordResult() {
	game := s.game("g", -2*time.Hour)
	game.Roster = []model.Player{
		{ID: "p1", Name: "Player One"},
		{ID: "p2", Name: "Player Two"},
	}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	updated, err := s.service.RecordResult(s.ctx, "g", "p1", "p2")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("p1"), updated.FirstGoalPlayerID)
	s.Equal(model.PlayerID("p2"), updated.GWGoalPlayerID)
	s.True(updated.Concluded())

	stored, err := s.storage.GetGame(s.ctx, "g")
	s.Require().NoError(err)
	s.True(stored.Concluded())
}

func (s *ServiceSuite) TestRecordResultUnknownGame() {
	_, err := s.service.RecordResult(s.ctx, "missing", "p1", "p2")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ServiceSuite) TestRecordResultUnknownPlayer() {
	game := s.game("g", -2*time.Hour)
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	_, err := s.service.RecordResult(s.ctx, "g", "stranger", "p1")
	s.ErrorIs(err, model.ErrUnknownPlayer)
}
