package leaderboard

import (
	"context"
	"sort"

	"github.com/msommer/pickem/internal/model"
	"github.com/msommer/pickem/internal/services/scoring"
	"github.com/msommer/pickem/internal/storage"
)

// Entry is one leaderboard row. Every user appears, including those
// with no scored picks yet.
type Entry struct {
	UserID         model.UserID `json:"id"`
	Username       string       `json:"username"`
	AvatarURL      string       `json:"avatarUrl,omitempty"`
	TotalPoints    int          `json:"total_points"`
	LastGamePoints int          `json:"last_game_points"`
}

// Service ranks users by accumulated pick points
type Service struct {
	storage storage.Storage
	scoring *scoring.Service
}

// New creates a new leaderboard Service
func New(storage storage.Storage, scoring *scoring.Service) *Service {
	return &Service{
		storage: storage,
		scoring: scoring,
	}
}

// Standings computes the leaderboard: total points descending, ties
// broken by username. LastGamePoints is the score from the most
// recently concluded game.
func (s *Service) Standings(ctx context.Context) ([]Entry, error) {
	users, err := s.storage.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	games, err := s.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	concluded := make(map[model.GameID]*model.Game)
	var lastGame *model.Game
	for _, game := range games {
		if !game.Concluded() {
			continue
		}
		concluded[game.ID] = game
		if lastGame == nil || game.GameTime.After(lastGame.GameTime) {
			lastGame = game
		}
	}

	entries := make([]Entry, 0, len(users))
	for _, user := range users {
		entry := Entry{
			UserID:    user.ID,
			Username:  user.Username,
			AvatarURL: user.AvatarURL,
		}

		picks, err := s.storage.ListPicksForUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}

		for _, pick := range picks {
			game, ok := concluded[pick.GameID]
			if !ok {
				continue
			}
			result := s.scoring.Score(pick, game)
			entry.TotalPoints += result.Points
			if lastGame != nil && game.ID == lastGame.ID {
				entry.LastGamePoints = result.Points
			}
		}

		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		return entries[i].Username < entries[j].Username
	})

	return entries, nil
}
