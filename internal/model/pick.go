package model

import "time"

// Pick is a user's prediction for a single game. At most one Pick exists
// per (user, game); resubmission before lock replaces it.
type Pick struct {
	UserID UserID `json:"user_id"`
	GameID GameID `json:"game_id"`

	// Each field may be set independently; a user can pick the first
	// goal scorer without picking the game-winning-goal scorer
	FirstGoalPlayerID PlayerID `json:"first_goal_player_id,omitempty"`
	GWGoalPlayerID    PlayerID `json:"gw_goal_player_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScoreResult is the derived outcome of scoring a pick against a
// concluded game. Never stored; computed on demand.
type ScoreResult struct {
	CorrectFirst bool `json:"correct_first"`
	CorrectGWG   bool `json:"correct_gwg"`
	Points       int  `json:"points"`
}
