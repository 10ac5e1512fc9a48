package scoring

import "github.com/msommer/pickem/internal/model"

// Points policy. Substitute an alternate table here without touching
// the scoring flow.
const (
	PointsBothCorrect = 3
	PointsOneCorrect  = 1
	PointsNone        = 0
)

// Service computes pick scores for concluded games
type Service struct{}

// New creates a new scoring Service
func New() *Service {
	return &Service{}
}

// Score computes the result of a pick against a game. A nil pick or a
// game without recorded outcomes scores zero with both flags false.
// Deterministic, no I/O.
func (s *Service) Score(pick *model.Pick, game *model.Game) model.ScoreResult {
	if pick == nil || !game.Concluded() {
		return model.ScoreResult{}
	}

	result := model.ScoreResult{
		CorrectFirst: pick.FirstGoalPlayerID != "" && pick.FirstGoalPlayerID == game.FirstGoalPlayerID,
		CorrectGWG:   pick.GWGoalPlayerID != "" && pick.GWGoalPlayerID == game.GWGoalPlayerID,
	}

	switch {
	case result.CorrectFirst && result.CorrectGWG:
		result.Points = PointsBothCorrect
	case result.CorrectFirst || result.CorrectGWG:
		result.Points = PointsOneCorrect
	default:
		result.Points = PointsNone
	}

	return result
}

// Interface for dependency injection
type ServiceInterface interface {
	Score(pick *model.Pick, game *model.Game) model.ScoreResult
}

var _ ServiceInterface = (*Service)(nil)
