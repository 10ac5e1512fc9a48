package request

import "github.com/msommer/pickem/internal/model"

// SignupRequest is the JSON request body for signing up
type SignupRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm,omitempty"`
	Remember        bool   `json:"remember,omitempty"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember,omitempty"`
}

// ResetPasswordRequest is the request body for requesting a password reset
type ResetPasswordRequest struct {
	Email string `json:"email"`
}

// SubmitPickRequest is the request body for submitting a pick.
// Identifier fields tolerate string or numeric JSON encodings; an
// omitted field leaves any existing selection untouched.
type SubmitPickRequest struct {
	GameID            model.FlexID  `json:"gameId"`
	FirstGoalPlayerID *model.FlexID `json:"firstGoalPlayerId,omitempty"`
	GWGoalPlayerID    *model.FlexID `json:"gwGoalPlayerId,omitempty"`
}

// RecordResultRequest is the request body for recording a game result
type RecordResultRequest struct {
	FirstGoalPlayerID model.FlexID `json:"firstGoalPlayerId"`
	GWGoalPlayerID    model.FlexID `json:"gwGoalPlayerId"`
}

// SetDefaultsRequest is the request body for updating default picks
type SetDefaultsRequest struct {
	DefaultFirstGoal *model.FlexID `json:"defaultFirstGoal,omitempty"`
	DefaultGWG       *model.FlexID `json:"defaultGWG,omitempty"`
}
