package handler

import (
	"net/http"

	"github.com/msommer/pickem/internal/api/response"
	"github.com/msommer/pickem/internal/services/leaderboard"
)

// LeaderboardHandler handles the leaderboard endpoint
type LeaderboardHandler struct {
	leaderboard *leaderboard.Service
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboard *leaderboard.Service) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboard: leaderboard,
	}
}

// Standings handles GET /api/v1/leaderboard
func (h *LeaderboardHandler) Standings(w http.ResponseWriter, r *http.Request) {
	entries, err := h.leaderboard.Standings(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, entries)
}
