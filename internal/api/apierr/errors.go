package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/msommer/pickem/internal/model"
	"github.com/msommer/pickem/internal/services/auth"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUsernameExists     = "USERNAME_EXISTS"
	CodeEmailExists        = "EMAIL_EXISTS"
	CodeUnknownEmail       = "UNKNOWN_EMAIL"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeGameNotFound       = "GAME_NOT_FOUND"
	CodeGameLocked         = "GAME_LOCKED"
	CodeUnknownPlayer      = "UNKNOWN_PLAYER"
	CodePickNotFound       = "PICK_NOT_FOUND"
	CodeUpstreamRejected   = "UPSTREAM_REJECTED"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeUserNotFound, "User not found"}}
	case errors.Is(err, model.ErrGameNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeGameNotFound, "Game not found"}}
	case errors.Is(err, model.ErrGameLocked):
		return &httpError{http.StatusConflict, APIError{CodeGameLocked, "Game is locked for picks"}}
	case errors.Is(err, model.ErrUnknownPlayer):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownPlayer, "Player is not on the game roster"}}
	case errors.Is(err, model.ErrPickNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePickNotFound, "Pick not found"}}
	case errors.Is(err, model.ErrUpstreamRejected):
		return upstreamHTTPError(err)

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, APIError{CodeInvalidCredentials, "Invalid username or password"}}
	case errors.Is(err, auth.ErrInvalidToken):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid or expired token"}}
	case errors.Is(err, auth.ErrUsernameExists):
		return &httpError{http.StatusConflict, APIError{CodeUsernameExists, "Username already exists"}}
	case errors.Is(err, auth.ErrEmailExists):
		return &httpError{http.StatusConflict, APIError{CodeEmailExists, "Email already registered"}}
	case errors.Is(err, auth.ErrUnknownEmail):
		return &httpError{http.StatusNotFound, APIError{CodeUnknownEmail, "No account for that email"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// upstreamHTTPError surfaces the collaborator's reason when it gave one
func upstreamHTTPError(err error) *httpError {
	message := "Upstream store rejected the request"
	var ue *model.UpstreamError
	if errors.As(err, &ue) && ue.Reason != "" {
		message = ue.Reason
	}
	return &httpError{http.StatusBadGateway, APIError{CodeUpstreamRejected, message}}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Authentication required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
