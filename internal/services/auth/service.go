package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/rs/xid"
	"golang.org/x/crypto/bcrypt"

	"github.com/msommer/pickem/internal/dependencies/clock"
	"github.com/msommer/pickem/internal/model"
	"github.com/msommer/pickem/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already registered")
	ErrUnknownEmail       = errors.New("no account for that email")
)

// Result is a successful authentication: the user plus a bearer token
type Result struct {
	User  *model.User
	Token string
}

// SignupInput is the uniform signup payload. Both the JSON-profile and
// multipart-with-avatar entry points resolve to this shape before the
// service is reached.
type SignupInput struct {
	Username  string
	Email     string
	Password  string
	AvatarURL string
}

// Config holds configuration for the auth service
type Config struct {
	TokenSecret   string
	TokenDuration time.Duration
}

// DefaultConfig returns default auth configuration
func DefaultConfig() Config {
	return Config{
		TokenDuration: 24 * time.Hour,
	}
}

// Service handles signup, login and password reset
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	tokens  *TokenIssuer
	logger  *slog.Logger

	tokenDuration time.Duration
}

// New creates a new auth Service
func New(storage storage.Storage, clock clock.Clock, cfg Config, logger *slog.Logger) (*Service, error) {
	if cfg.TokenDuration == 0 {
		cfg.TokenDuration = DefaultConfig().TokenDuration
	}

	tokens, err := NewTokenIssuer(cfg.TokenSecret, clock)
	if err != nil {
		return nil, err
	}

	return &Service{
		storage:       storage,
		clock:         clock,
		tokens:        tokens,
		logger:        logger,
		tokenDuration: cfg.TokenDuration,
	}, nil
}

// Signup creates a new account and returns the user with a fresh token
func (s *Service) Signup(ctx context.Context, input SignupInput) (*Result, error) {
	if _, err := s.storage.GetAccountByUsername(ctx, input.Username); err == nil {
		return nil, ErrUsernameExists
	} else if !errors.Is(err, model.ErrUserNotFound) {
		return nil, err
	}

	if input.Email != "" {
		if _, err := s.storage.GetAccountByEmail(ctx, input.Email); err == nil {
			return nil, ErrEmailExists
		} else if !errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	userID := model.UserID(xid.New().String())

	user := &model.User{
		ID:        userID,
		Username:  input.Username,
		Email:     input.Email,
		AvatarURL: input.AvatarURL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	account := &model.Account{
		UserID:       userID,
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	s.logger.Info("user signed up", slog.String("user_id", string(userID)))
	return s.issue(user)
}

// Login authenticates a user by username and password
func (s *Service) Login(ctx context.Context, username, password string) (*Result, error) {
	account, err := s.storage.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := s.storage.GetUser(ctx, account.UserID)
	if err != nil {
		return nil, err
	}

	return s.issue(user)
}

// ResetPassword acknowledges a password reset request for a known
// email. Mail delivery is a collaborator concern; the service only
// validates and reports.
func (s *Service) ResetPassword(ctx context.Context, email string) error {
	if _, err := s.storage.GetAccountByEmail(ctx, email); err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return ErrUnknownEmail
		}
		return err
	}

	s.logger.Info("password reset requested", slog.String("email", email))
	return nil
}

// ValidateToken resolves a bearer token to its user
func (s *Service) ValidateToken(ctx context.Context, token string) (*model.User, error) {
	userID, err := s.tokens.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

// SetDefaults updates a user's default pick selections. A nil field
// leaves the stored value untouched.
func (s *Service) SetDefaults(ctx context.Context, userID model.UserID, defaultFirst, defaultGWG *model.PlayerID) (*model.User, error) {
	user, err := s.storage.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if defaultFirst != nil {
		user.DefaultFirstGoal = *defaultFirst
	}
	if defaultGWG != nil {
		user.DefaultGWG = *defaultGWG
	}
	user.UpdatedAt = s.clock.Now()

	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Service) issue(user *model.User) (*Result, error) {
	token, err := s.tokens.Issue(user.ID, s.tokenDuration)
	if err != nil {
		return nil, err
	}
	return &Result{User: user, Token: token}, nil
}
