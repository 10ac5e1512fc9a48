package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/msommer/pickem/internal/api/handler"
	"github.com/msommer/pickem/internal/api/middleware"
	"github.com/msommer/pickem/internal/services/auth"
	"github.com/msommer/pickem/internal/services/leaderboard"
	"github.com/msommer/pickem/internal/services/picks"
	"github.com/msommer/pickem/internal/services/schedule"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	ScheduleService    *schedule.Service
	PickCoordinator    *picks.Coordinator
	LeaderboardService *leaderboard.Service
	AdminKey           string
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	gameHandler := handler.NewGameHandler(cfg.ScheduleService, cfg.AdminKey)
	pickHandler := handler.NewPickHandler(cfg.PickCoordinator)
	userHandler := handler.NewUserHandler(cfg.AuthService)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.LeaderboardService)

	// Create middleware
	authMiddleware := middleware.Auth(cfg.AuthService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Auth routes (no token required)
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/reset-password", authHandler.ResetPassword).Methods(http.MethodPost)

	// Game routes; listing is public, result recording is key-gated
	api.HandleFunc("/games", gameHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{id}/result", gameHandler.RecordResult).Methods(http.MethodPost)

	// Leaderboard is public
	api.HandleFunc("/leaderboard", leaderboardHandler.Standings).Methods(http.MethodGet)

	// Authenticated routes
	protected := api.NewRoute().Subrouter()
	protected.Use(authMiddleware)
	protected.HandleFunc("/pickem", pickHandler.ViewModel).Methods(http.MethodGet)
	protected.HandleFunc("/picks", pickHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/picks", pickHandler.Submit).Methods(http.MethodPost)
	protected.HandleFunc("/users/me", userHandler.Me).Methods(http.MethodGet)
	protected.HandleFunc("/users/defaults", userHandler.SetDefaults).Methods(http.MethodPatch)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
