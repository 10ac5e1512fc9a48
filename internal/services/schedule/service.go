package schedule

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/msommer/pickem/internal/dependencies/clock"
	"github.com/msommer/pickem/internal/model"
	"github.com/msommer/pickem/internal/storage"
)

// DefaultLockWindow is how long before puck drop submissions close
const DefaultLockWindow = 5 * time.Minute

// Config holds schedule classification settings
type Config struct {
	// Cutoff is the contest start; games strictly older are excluded
	// from classification entirely
	Cutoff time.Time

	// LockWindow is the duration before game time during which picks
	// are rejected
	LockWindow time.Duration
}

// DefaultConfig returns default schedule configuration
func DefaultConfig() Config {
	return Config{
		LockWindow: DefaultLockWindow,
	}
}

// Classification partitions games relative to an instant
type Classification struct {
	// Past holds concluded-or-started games at or after the cutoff,
	// ascending by game time
	Past []*model.Game
	// Next is the earliest game at or after the instant, nil if none
	Next *model.Game
	// Upcoming holds the remaining future games, ascending by game time
	Upcoming []*model.Game
}

// Service classifies scheduled games and manages schedule data
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	cfg     Config
	logger  *slog.Logger
}

// New creates a new schedule Service
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger) *Service {
	if cfg.LockWindow == 0 {
		cfg.LockWindow = DefaultLockWindow
	}
	return &Service{
		storage: storage,
		clock:   clock,
		cfg:     cfg,
		logger:  logger,
	}
}

// Classify partitions games into past, next and upcoming buckets
// relative to now. Pure: repeated calls with the same inputs yield the
// same buckets.
func (s *Service) Classify(games []*model.Game, now time.Time) Classification {
	sorted := make([]*model.Game, len(games))
	copy(sorted, games)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].GameTime.Before(sorted[j].GameTime)
	})

	var result Classification
	for _, game := range sorted {
		if !s.cfg.Cutoff.IsZero() && game.GameTime.Before(s.cfg.Cutoff) {
			// Out-of-season noise, dropped from every bucket
			continue
		}
		if game.GameTime.Before(now) {
			result.Past = append(result.Past, game)
			continue
		}
		if result.Next == nil {
			result.Next = game
			continue
		}
		result.Upcoming = append(result.Upcoming, game)
	}

	return result
}

// IsLocked reports whether the game no longer accepts picks at the
// given instant. Once locked a game never unlocks: the predicate is
// monotonic in now.
func (s *Service) IsLocked(game *model.Game, now time.Time) bool {
	return game.GameTime.Sub(now) < s.cfg.LockWindow
}

// Games returns all stored games sorted ascending by game time
func (s *Service) Games(ctx context.Context) ([]*model.Game, error) {
	games, err := s.storage.ListGames(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(games, func(i, j int) bool {
		return games[i].GameTime.Before(games[j].GameTime)
	})
	return games, nil
}

// scheduleEntry is the JSON shape of an imported schedule record
type scheduleEntry struct {
	ID       model.FlexID `json:"id"`
	GameTime time.Time    `json:"gameTime"`
	HomeTeam string       `json:"homeTeam"`
	AwayTeam string       `json:"awayTeam"`
	HomeLogo string       `json:"homeLogo,omitempty"`
	AwayLogo string       `json:"awayLogo,omitempty"`
	Players  []struct {
		ID   model.FlexID `json:"id"`
		Name string       `json:"name"`
	} `json:"players"`
}

// LoadFromFile imports a JSON schedule file into storage
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var entries []scheduleEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}

	now := s.clock.Now()
	games := make([]*model.Game, 0, len(entries))
	for _, e := range entries {
		roster := make([]model.Player, 0, len(e.Players))
		for _, p := range e.Players {
			roster = append(roster, model.Player{ID: p.ID.PlayerID(), Name: p.Name})
		}
		games = append(games, &model.Game{
			ID:          model.GameID(e.ID),
			GameTime:    e.GameTime,
			HomeTeam:    e.HomeTeam,
			AwayTeam:    e.AwayTeam,
			HomeLogoURL: e.HomeLogo,
			AwayLogoURL: e.AwayLogo,
			Roster:      roster,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := s.ImportGames(ctx, games); err != nil {
		return err
	}

	s.logger.Info("schedule loaded",
		slog.String("path", path),
		slog.Int("games", len(games)),
	)
	return nil
}

// ImportGames saves a batch of games to storage
func (s *Service) ImportGames(ctx context.Context, games []*model.Game) error {
	for _, game := range games {
		if err := s.storage.SaveGame(ctx, game); err != nil {
			return err
		}
	}
	return nil
}

// RecordResult records a concluded game's outcomes. Both scorers must
// be on the game's roster.
func (s *Service) RecordResult(ctx context.Context, gameID model.GameID, firstGoal, gwGoal model.PlayerID) (*model.Game, error) {
	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !game.HasPlayer(firstGoal) || !game.HasPlayer(gwGoal) {
		return nil, model.ErrUnknownPlayer
	}

	game.FirstGoalPlayerID = firstGoal
	game.GWGoalPlayerID = gwGoal
	game.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	s.logger.Info("game result recorded",
		slog.String("game_id", string(gameID)),
		slog.String("first_goal", string(firstGoal)),
		slog.String("gw_goal", string(gwGoal)),
	)
	return game, nil
}
