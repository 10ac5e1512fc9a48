package handler

import (
	"encoding/json"
	"net/http"

	"github.com/msommer/pickem/internal/api/middleware"
	"github.com/msommer/pickem/internal/api/request"
	"github.com/msommer/pickem/internal/api/response"
	"github.com/msommer/pickem/internal/model"
	"github.com/msommer/pickem/internal/services/picks"
)

// PickHandler handles the pick'em view model and pick submission
type PickHandler struct {
	coordinator *picks.Coordinator
}

// NewPickHandler creates a new pick handler
func NewPickHandler(coordinator *picks.Coordinator) *PickHandler {
	return &PickHandler{
		coordinator: coordinator,
	}
}

// ViewModel handles GET /api/v1/pickem
func (h *PickHandler) ViewModel(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	vm, err := h.coordinator.BuildViewModel(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, vm)
}

// List handles GET /api/v1/picks
func (h *PickHandler) List(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	userPicks, err := h.coordinator.MyPicks(r.Context(), user.ID)
	if err != nil {
		WriteError(w, err)
		return
	}

	out := make([]response.Pick, 0, len(userPicks))
	for _, p := range userPicks {
		out = append(out, response.PickFromModel(p))
	}
	response.JSON(w, http.StatusOK, out)
}

// Submit handles POST /api/v1/picks
func (h *PickHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.SubmitPickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.GameID == "" {
		WriteError(w, NewInvalidRequestError("gameId is required"))
		return
	}
	if req.FirstGoalPlayerID == nil && req.GWGoalPlayerID == nil {
		WriteError(w, NewInvalidRequestError("at least one selection is required"))
		return
	}

	sel := picks.Selection{}
	if req.FirstGoalPlayerID != nil {
		id := req.FirstGoalPlayerID.PlayerID()
		sel.FirstGoalPlayerID = &id
	}
	if req.GWGoalPlayerID != nil {
		id := req.GWGoalPlayerID.PlayerID()
		sel.GWGoalPlayerID = &id
	}

	pick, err := h.coordinator.SubmitPick(r.Context(), user.ID, model.GameID(req.GameID), sel)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PickFromModel(pick))
}
