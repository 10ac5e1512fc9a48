package handler

import (
	"encoding/json"
	"net/http"

	"github.com/msommer/pickem/internal/api/middleware"
	"github.com/msommer/pickem/internal/api/request"
	"github.com/msommer/pickem/internal/api/response"
	"github.com/msommer/pickem/internal/model"
	"github.com/msommer/pickem/internal/services/auth"
)

// UserHandler handles user profile endpoints
type UserHandler struct {
	authService *auth.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(authService *auth.Service) *UserHandler {
	return &UserHandler{
		authService: authService,
	}
}

// Me handles GET /api/v1/users/me
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())
	response.JSON(w, http.StatusOK, response.UserFromModel(user))
}

// SetDefaults handles PATCH /api/v1/users/defaults
func (h *UserHandler) SetDefaults(w http.ResponseWriter, r *http.Request) {
	user := middleware.MustGetUser(r.Context())

	var req request.SetDefaultsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.DefaultFirstGoal == nil && req.DefaultGWG == nil {
		WriteError(w, NewInvalidRequestError("at least one default is required"))
		return
	}

	var defaultFirst, defaultGWG *model.PlayerID
	if req.DefaultFirstGoal != nil {
		id := req.DefaultFirstGoal.PlayerID()
		defaultFirst = &id
	}
	if req.DefaultGWG != nil {
		id := req.DefaultGWG.PlayerID()
		defaultGWG = &id
	}

	updated, err := h.authService.SetDefaults(r.Context(), user.ID, defaultFirst, defaultGWG)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.UserFromModel(updated))
}
