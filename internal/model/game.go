package model

import "time"

// Player is reference roster data for a game, used for label lookup only
type Player struct {
	ID   PlayerID `json:"id"`
	Name string   `json:"name"`
}

// Game represents a scheduled game. Games are created by the schedule
// importer and mutated only when a result is recorded; the prediction
// core treats them as read-only.
type Game struct {
	ID       GameID    `json:"id"`
	GameTime time.Time `json:"game_time"`

	HomeTeam    string `json:"home_team"`
	AwayTeam    string `json:"away_team"`
	HomeLogoURL string `json:"home_logo_url,omitempty"`
	AwayLogoURL string `json:"away_logo_url,omitempty"`

	// Roster of players eligible to be picked for this game
	Roster []Player `json:"roster"`

	// Resolved outcomes, empty until the game concludes
	FirstGoalPlayerID PlayerID `json:"first_goal_player_id,omitempty"`
	GWGoalPlayerID    PlayerID `json:"gw_goal_player_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Concluded reports whether both outcomes have been recorded
func (g *Game) Concluded() bool {
	return g.FirstGoalPlayerID != "" && g.GWGoalPlayerID != ""
}

// PlayerName returns the roster display name for a player ID,
// or the empty string if the player is not on the roster
func (g *Game) PlayerName(id PlayerID) string {
	for _, p := range g.Roster {
		if p.ID == id {
			return p.Name
		}
	}
	return ""
}

// HasPlayer reports whether the player is on this game's roster
func (g *Game) HasPlayer(id PlayerID) bool {
	for _, p := range g.Roster {
		if p.ID == id {
			return true
		}
	}
	return false
}
