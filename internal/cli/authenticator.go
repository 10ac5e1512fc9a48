package cli

import (
	"context"

	"github.com/msommer/pickem/internal/model"
	"github.com/msommer/pickem/internal/session"
)

// apiAuthenticator adapts the HTTP API to the session.Authenticator
// contract. Its client field is bound after construction because the
// client's transport needs the credential the session manager owns.
type apiAuthenticator struct {
	client *Client
}

var _ session.Authenticator = (*apiAuthenticator)(nil)

func (a *apiAuthenticator) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	req := map[string]string{
		"username": username,
		"password": password,
	}
	var result AuthResult
	if err := a.client.Post("/api/v1/auth/login", req, &result); err != nil {
		return nil, "", err
	}
	return result.User.toModel(), result.Token, nil
}

func (a *apiAuthenticator) Signup(ctx context.Context, profile session.SignupProfile) (*model.User, string, error) {
	req := map[string]string{
		"username":         profile.Username,
		"email":            profile.Email,
		"password":         profile.Password,
		"password_confirm": profile.PasswordConfirm,
	}
	var result AuthResult
	if err := a.client.Post("/api/v1/auth/signup", req, &result); err != nil {
		return nil, "", err
	}
	return result.User.toModel(), result.Token, nil
}

func (a *apiAuthenticator) ResetPassword(ctx context.Context, email string) error {
	req := map[string]string{"email": email}
	return a.client.Post("/api/v1/auth/reset-password", req, nil)
}
