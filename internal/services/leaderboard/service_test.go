package leaderboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/msommer/pickem/internal/model"
	"github.com/msommer/pickem/internal/services/scoring"
	"github.com/msommer/pickem/internal/storage/memory"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
	base    time.Time
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, scoring.New())
	s.ctx = context.Background()
	s.base = time.Date(2026, 1, 10, 19, 0, 0, 0, time.UTC)
}

func (s *ServiceSuite) seedUser(id, username string) {
	s.Require().NoError(s.storage.SaveUser(s.ctx, &model.User{
		ID:       model.UserID(id),
		Username: username,
	}))
}

func (s *ServiceSuite) seedConcludedGame(id string, offset time.Duration, first, gwg model.PlayerID) {
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{
		ID:                model.GameID(id),
		GameTime:          s.base.Add(offset),
		FirstGoalPlayerID: first,
		GWGoalPlayerID:    gwg,
	}))
}

func (s *ServiceSuite) seedPick(user, game string, first, gwg model.PlayerID) {
	s.Require().NoError(s.storage.SavePick(s.ctx, &model.Pick{
		UserID:            model.UserID(user),
		GameID:            model.GameID(game),
		FirstGoalPlayerID: first,
		GWGoalPlayerID:    gwg,
	}))
}

func (s *ServiceSuite) TestStandingsRankByTotalPoints() {
	s.seedUser("u1", "alice")
	s.seedUser("u2", "bob")
	s.seedConcludedGame("g1", 0, "p1", "p2")
	s.seedPick("u1", "g1", "p1", "p2") // 3 points
	s.seedPick("u2", "g1", "p1", "p9") // 1 point

	entries, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(entries, 2)
	s.Equal("alice", entries[0].Username)
	s.Equal(3, entries[0].TotalPoints)
	s.Equal("bob", entries[1].Username)
	s.Equal(1, entries[1].TotalPoints)
}

func (s *ServiceSuite) TestStandingsAccumulateAcrossGames() {
	s.seedUser("u1", "alice")
	s.seedConcludedGame("g1", 0, "p1", "p2")
	s.seedConcludedGame("g2", 24*time.Hour, "p3", "p4")
	s.seedPick("u1", "g1", "p1", "p2") // 3
	s.seedPick("u1", "g2", "p3", "p9") // 1

	entries, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(entries, 1)
	s.Equal(4, entries[0].TotalPoints)
}

func (s *ServiceSuite) TestStandingsIncludeZeroPointUsers() {
	s.seedUser("u1", "alice")
	s.seedUser("u2", "idler")
	s.seedConcludedGame("g1", 0, "p1", "p2")
	s.seedPick("u1", "g1", "p1", "p2")

	entries, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(entries, 2)
	s.Equal("idler", entries[1].Username)
	s.Equal(0, entries[1].TotalPoints)
	s.Equal(0, entries[1].LastGamePoints)
}

func (s *ServiceSuite) TestStandingsTieBrokenByUsername() {
	s.seedUser("u1", "zoe")
	s.seedUser("u2", "adam")
	s.seedConcludedGame("g1", 0, "p1", "p2")
	s.seedPick("u1", "g1", "p1", "p9")
	s.seedPick("u2", "g1", "p1", "p9")

	entries, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(entries, 2)
	s.Equal("adam", entries[0].Username)
	s.Equal("zoe", entries[1].Username)
}

func (s *ServiceSuite) TestLastGamePointsFromLatestConcludedGame() {
	s.seedUser("u1", "alice")
	s.seedConcludedGame("early", 0, "p1", "p2")
	s.seedConcludedGame("late", 48*time.Hour, "p3", "p4")
	s.seedPick("u1", "early", "p1", "p2") // 3 points, but not the last game
	s.seedPick("u1", "late", "p3", "p9")  // 1 point

	entries, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(entries, 1)
	s.Equal(4, entries[0].TotalPoints)
	s.Equal(1, entries[0].LastGamePoints)
}

func (s *ServiceSuite) TestUnconcludedGamesDoNotScore() {
	s.seedUser("u1", "alice")
	// Game has a first goal but no winner yet
	s.Require().NoError(s.storage.SaveGame(s.ctx, &model.Game{
		ID:                "g1",
		GameTime:          s.base,
		FirstGoalPlayerID: "p1",
	}))
	s.seedPick("u1", "g1", "p1", "p2")

	entries, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(entries, 1)
	s.Equal(0, entries[0].TotalPoints)
}

func (s *ServiceSuite) TestEmptyStandings() {
	entries, err := s.service.Standings(s.ctx)
	s.Require().NoError(err)
	s.Empty(entries)
}
