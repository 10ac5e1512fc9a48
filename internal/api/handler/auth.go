package handler

import (
	"encoding/json"
	"mime"
	"net/http"
	"strconv"

	"github.com/msommer/pickem/internal/api/request"
	"github.com/msommer/pickem/internal/api/response"
	"github.com/msommer/pickem/internal/services/auth"
)

const maxSignupFormSize = 1 << 20

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Signup handles POST /api/v1/auth/signup.
// Accepts either a JSON body or a multipart form (the form variant
// carries an avatar URL alongside the profile fields); both resolve to
// the same signup input before the service is reached.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	input, err := decodeSignup(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.authService.Signup(r.Context(), input)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.AuthResponseFromResult(result))
}

func decodeSignup(r *http.Request) (auth.SignupInput, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	var req request.SignupRequest
	var avatarURL string

	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(maxSignupFormSize); err != nil {
			return auth.SignupInput{}, NewInvalidRequestError("invalid multipart form")
		}
		req.Username = r.FormValue("username")
		req.Email = r.FormValue("email")
		req.Password = r.FormValue("password")
		req.PasswordConfirm = r.FormValue("password_confirm")
		req.Remember, _ = strconv.ParseBool(r.FormValue("remember"))
		avatarURL = r.FormValue("avatar_url")
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return auth.SignupInput{}, NewInvalidRequestError("invalid request body")
		}
	}

	if req.Username == "" {
		return auth.SignupInput{}, NewInvalidRequestError("username is required")
	}
	if req.Password == "" {
		return auth.SignupInput{}, NewInvalidRequestError("password is required")
	}
	if req.PasswordConfirm != "" && req.PasswordConfirm != req.Password {
		return auth.SignupInput{}, NewInvalidRequestError("passwords do not match")
	}

	return auth.SignupInput{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		AvatarURL: avatarURL,
	}, nil
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Username == "" {
		WriteError(w, NewInvalidRequestError("username is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	result, err := h.authService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuthResponseFromResult(result))
}

// ResetPassword handles POST /api/v1/auth/reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Email == "" {
		WriteError(w, NewInvalidRequestError("email is required"))
		return
	}

	if err := h.authService.ResetPassword(r.Context(), req.Email); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
