package handler

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/msommer/pickem/internal/api/request"
	"github.com/msommer/pickem/internal/api/response"
	"github.com/msommer/pickem/internal/model"
	"github.com/msommer/pickem/internal/services/schedule"
)

// GameHandler handles game listing and result recording
type GameHandler struct {
	schedule *schedule.Service
	adminKey string
}

// NewGameHandler creates a new game handler
func NewGameHandler(schedule *schedule.Service, adminKey string) *GameHandler {
	return &GameHandler{
		schedule: schedule,
		adminKey: adminKey,
	}
}

// List handles GET /api/v1/games
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.schedule.Games(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Game, 0, len(games))
	for _, g := range games {
		out = append(out, response.GameFromModel(g))
	}
	response.JSON(w, http.StatusOK, out)
}

// RecordResult handles POST /api/v1/games/{id}/result.
// Result recording is an operator action gated by a shared admin key;
// when no key is configured the endpoint is disabled.
func (h *GameHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	if h.adminKey == "" || subtle.ConstantTimeCompare([]byte(r.Header.Get("X-Admin-Key")), []byte(h.adminKey)) != 1 {
		WriteError(w, NewUnauthorizedError())
		return
	}

	gameID := model.GameID(mux.Vars(r)["id"])

	var req request.RecordResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.FirstGoalPlayerID == "" {
		WriteError(w, NewInvalidRequestError("firstGoalPlayerId is required"))
		return
	}
	if req.GWGoalPlayerID == "" {
		WriteError(w, NewInvalidRequestError("gwGoalPlayerId is required"))
		return
	}

	game, err := h.schedule.RecordResult(r.Context(), gameID, req.FirstGoalPlayerID.PlayerID(), req.GWGoalPlayerID.PlayerID())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}
