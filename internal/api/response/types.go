package response

import (
	"time"

	"github.com/msommer/pickem/internal/model"
	"github.com/msommer/pickem/internal/services/auth"
)

// User represents a user in API responses
type User struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Email            string `json:"email,omitempty"`
	AvatarURL        string `json:"avatarUrl,omitempty"`
	DefaultFirstGoal string `json:"defaultFirstGoal,omitempty"`
	DefaultGWG       string `json:"defaultGWG,omitempty"`
}

// UserFromModel converts a model.User to a response User
func UserFromModel(u *model.User) User {
	return User{
		ID:               string(u.ID),
		Username:         u.Username,
		Email:            u.Email,
		AvatarURL:        u.AvatarURL,
		DefaultFirstGoal: string(u.DefaultFirstGoal),
		DefaultGWG:       string(u.DefaultGWG),
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// AuthResponseFromResult creates an AuthResponse from an auth result
func AuthResponseFromResult(r *auth.Result) AuthResponse {
	return AuthResponse{
		User:  UserFromModel(r.User),
		Token: r.Token,
	}
}

// Player represents a roster player
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Game represents a game in API responses
type Game struct {
	ID                string    `json:"id"`
	GameTime          time.Time `json:"gameTime"`
	HomeTeam          string    `json:"homeTeam"`
	AwayTeam          string    `json:"awayTeam"`
	HomeLogoURL       string    `json:"homeLogo,omitempty"`
	AwayLogoURL       string    `json:"awayLogo,omitempty"`
	Players           []Player  `json:"players"`
	FirstGoalPlayerID string    `json:"firstGoalPlayerId,omitempty"`
	GWGoalPlayerID    string    `json:"gwGoalPlayerId,omitempty"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	players := make([]Player, 0, len(g.Roster))
	for _, p := range g.Roster {
		players = append(players, Player{ID: string(p.ID), Name: p.Name})
	}
	return Game{
		ID:                string(g.ID),
		GameTime:          g.GameTime,
		HomeTeam:          g.HomeTeam,
		AwayTeam:          g.AwayTeam,
		HomeLogoURL:       g.HomeLogoURL,
		AwayLogoURL:       g.AwayLogoURL,
		Players:           players,
		FirstGoalPlayerID: string(g.FirstGoalPlayerID),
		GWGoalPlayerID:    string(g.GWGoalPlayerID),
	}
}

// Pick represents a stored pick
type Pick struct {
	GameID            string    `json:"gameId"`
	FirstGoalPlayerID string    `json:"firstGoalPlayerId,omitempty"`
	GWGoalPlayerID    string    `json:"gwGoalPlayerId,omitempty"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// PickFromModel converts a model.Pick to a response Pick
func PickFromModel(p *model.Pick) Pick {
	return Pick{
		GameID:            string(p.GameID),
		FirstGoalPlayerID: string(p.FirstGoalPlayerID),
		GWGoalPlayerID:    string(p.GWGoalPlayerID),
		UpdatedAt:         p.UpdatedAt,
	}
}
