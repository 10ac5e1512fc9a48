package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/msommer/pickem/internal/dependencies/clock"
	"github.com/msommer/pickem/internal/services/auth"
	"github.com/msommer/pickem/internal/services/leaderboard"
	"github.com/msommer/pickem/internal/services/picks"
	"github.com/msommer/pickem/internal/services/schedule"
	"github.com/msommer/pickem/internal/services/scoring"
	"github.com/msommer/pickem/internal/storage"
	"github.com/msommer/pickem/internal/storage/memory"
	redisstorage "github.com/msommer/pickem/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock clock.Clock

	// Services
	ScheduleService    *schedule.Service
	ScoringService     *scoring.Service
	PickCoordinator    *picks.Coordinator
	LeaderboardService *leaderboard.Service
	AuthService        *auth.Service
}

// Config holds configuration for the application factory
type Config struct {
	// ScheduleConfig holds classification settings (optional)
	// If zero value, defaults to schedule.DefaultConfig()
	ScheduleConfig schedule.Config
	// AuthConfig holds configuration for the auth service
	// TokenSecret is required
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	clk := clock.New()

	scheduleCfg := cfg.ScheduleConfig
	if scheduleCfg.LockWindow == 0 {
		scheduleCfg.LockWindow = schedule.DefaultLockWindow
	}

	return newWithDependencies(store, clk, scheduleCfg, cfg.AuthConfig, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, scheduleCfg schedule.Config, authCfg auth.Config, logger *slog.Logger) (*App, error) {
	// Create services
	scheduleService := schedule.New(store, clk, scheduleCfg, logger)
	scoringService := scoring.New()
	pickCoordinator := picks.NewCoordinator(store, scheduleService, scoringService, clk, logger)
	leaderboardService := leaderboard.New(store, scoringService)
	authService, err := auth.New(store, clk, authCfg, logger)
	if err != nil {
		return nil, err
	}

	return &App{
		Storage:            store,
		Clock:              clk,
		ScheduleService:    scheduleService,
		ScoringService:     scoringService,
		PickCoordinator:    pickCoordinator,
		LeaderboardService: leaderboardService,
		AuthService:        authService,
	}, nil
}
