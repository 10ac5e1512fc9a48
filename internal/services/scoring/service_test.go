package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/msommer/pickem/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New()
}

func (s *ServiceSuite) concludedGame() *model.Game {
	return &model.Game{
		ID:                "game-1",
		FirstGoalPlayerID: "p1",
		GWGoalPlayerID:    "p2",
	}
}

func (s *ServiceSuite) TestBothCorrect() {
	pick := &model.Pick{FirstGoalPlayerID: "p1", GWGoalPlayerID: "p2"}

	result := s.service.Score(pick, s.concludedGame())

	s.True(result.CorrectFirst)
	s.True(result.CorrectGWG)
	s.Equal(3, result.Points)
}

func (s *ServiceSuite) TestOnlyFirstCorrect() {
	pick := &model.Pick{FirstGoalPlayerID: "p1", GWGoalPlayerID: "p9"}

	result := s.service.Score(pick, s.concludedGame())

	s.True(result.CorrectFirst)
	s.False(result.CorrectGWG)
	s.Equal(1, result.Points)
}

func (s *ServiceSuite) TestOnlyGWGCorrect() {
	pick := &model.Pick{FirstGoalPlayerID: "p9", GWGoalPlayerID: "p2"}

	result := s.service.Score(pick, s.concludedGame())

	s.False(result.CorrectFirst)
	s.True(result.CorrectGWG)
	s.Equal(1, result.Points)
}

func (s *ServiceSuite) TestNeitherCorrect() {
	pick := &model.Pick{FirstGoalPlayerID: "p8", GWGoalPlayerID: "p9"}

	result := s.service.Score(pick, s.concludedGame())

	s.False(result.CorrectFirst)
	s.False(result.CorrectGWG)
	s.Equal(0, result.Points)
}

func (s *ServiceSuite) TestSamePlayerBothSlots() {
	// The first scorer can also score the winner
	game := &model.Game{FirstGoalPlayerID: "p1", GWGoalPlayerID: "p1"}
	pick := &model.Pick{FirstGoalPlayerID: "p1", GWGoalPlayerID: "p1"}

	result := s.service.Score(pick, game)

	s.Equal(3, result.Points)
}

func (s *ServiceSuite) TestNilPickScoresZero() {
	result := s.service.Score(nil, s.concludedGame())

	s.False(result.CorrectFirst)
	s.False(result.CorrectGWG)
	s.Equal(0, result.Points)
}

func (s *ServiceSuite) TestUnresolvedGameScoresZero() {
	game := &model.Game{ID: "game-1"}
	pick := &model.Pick{FirstGoalPlayerID: "p1", GWGoalPlayerID: "p2"}

	result := s.service.Score(pick, game)

	s.False(result.CorrectFirst)
	s.False(result.CorrectGWG)
	s.Equal(0, result.Points)
}

func (s *ServiceSuite) TestPartiallyResolvedGameScoresZero() {
	// Only one outcome recorded: not concluded, nothing scores
	game := &model.Game{FirstGoalPlayerID: "p1"}
	pick := &model.Pick{FirstGoalPlayerID: "p1"}

	result := s.service.Score(pick, game)

	s.Equal(0, result.Points)
}

func (s *ServiceSuite) TestEmptyPickFieldNeverMatches() {
	// An unset pick field is not a match even if the outcome is set
	pick := &model.Pick{GWGoalPlayerID: "p2"}

	result := s.service.Score(pick, s.concludedGame())

	s.False(result.CorrectFirst)
	s.True(result.CorrectGWG)
	s.Equal(1, result.Points)
}

func (s *ServiceSuite) TestDeterministic() {
	pick := &model.Pick{FirstGoalPlayerID: "p1", GWGoalPlayerID: "p2"}
	game := s.concludedGame()

	first := s.service.Score(pick, game)
	second := s.service.Score(pick, game)

	s.Equal(first, second)
}
