// Package session owns the credential/session state machine: a process
// starts in Restoring, probes two key-value tiers for a persisted
// session, and settles into Anonymous or Authenticated. Exactly one
// tier holds the active token and user at any time; the remember flag
// chosen at login selects which.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"github.com/msommer/pickem/internal/kv"
	"github.com/msommer/pickem/internal/model"
)

// State is the session lifecycle phase
type State string

const (
	StateRestoring     State = "restoring"
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Storage keys for the persisted session record
const (
	keyToken = "token"
	keyUser  = "user"
)

// Errors
var (
	// ErrPasswordMismatch is local validation; it never reaches the
	// authentication collaborator
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrMissingField     = errors.New("required field is empty")
)

// SignupProfile is the signup form as the manager receives it. The
// confirmation field is validated locally before any request is made.
type SignupProfile struct {
	Username        string
	Email           string
	Password        string
	PasswordConfirm string
	AvatarURL       string
}

// Authenticator is the authentication collaborator: a request/response
// channel that may fail with a transport or validation error
type Authenticator interface {
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	Signup(ctx context.Context, profile SignupProfile) (*model.User, string, error)
	ResetPassword(ctx context.Context, email string) error
}

// Manager owns the session state machine and the dual-tier persistence
// policy. All mutation is serialized through its lock, so the pair of
// stores never observes a half-applied session change.
type Manager struct {
	durable   kv.Store
	ephemeral kv.Store
	auth      Authenticator
	cred      *Credential
	logger    *slog.Logger

	mu       sync.Mutex
	state    State
	user     *model.User
	remember bool
	busy     bool
}

// NewManager creates a Manager in the Restoring state
func NewManager(durable, ephemeral kv.Store, auth Authenticator, logger *slog.Logger) *Manager {
	return &Manager{
		durable:   durable,
		ephemeral: ephemeral,
		auth:      auth,
		cred:      NewCredential(),
		logger:    logger,
		state:     StateRestoring,
	}
}

// State returns the current lifecycle state
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// CurrentUser returns the authenticated user, nil otherwise
func (m *Manager) CurrentUser() *model.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.user
}

// Busy reports whether an authentication transition is in flight.
// Callers use it to disable repeat submission; the manager does not
// reject overlapping calls itself.
func (m *Manager) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.busy
}

// Credential returns the process credential owned by this manager
func (m *Manager) Credential() *Credential {
	return m.cred
}

// Restore probes the durable store then the ephemeral store for a
// persisted session. The first tier holding a parseable record wins.
// A value that is literally "undefined" or fails to parse is treated
// as absent and that tier's session keys are cleared. Restore always
// leaves the Restoring state.
func (m *Manager) Restore(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tiers := []kv.Store{m.durable, m.ephemeral}
	for _, store := range tiers {
		user, token, found, valid := m.probe(store)
		if !found {
			continue
		}
		if !valid {
			// Corrupt or partial record: self-heal by clearing the
			// session keys in both tiers and falling back to anonymous
			for _, tier := range tiers {
				_ = tier.Remove(keyUser)
				_ = tier.Remove(keyToken)
			}
			m.logger.Warn("cleared malformed stored session")
			break
		}
		m.user = user
		m.remember = store == m.durable
		m.cred.Set(token)
		m.state = StateAuthenticated
		m.logger.Info("session restored", slog.String("user_id", string(user.ID)))
		return nil
	}

	m.state = StateAnonymous
	return nil
}

// probe reads one tier's session record. found reports whether any
// session key was present; valid whether the record parsed.
func (m *Manager) probe(store kv.Store) (user *model.User, token string, found, valid bool) {
	rawUser, userOK, err := store.Get(keyUser)
	if err != nil {
		return nil, "", false, false
	}
	token, tokenOK, err := store.Get(keyToken)
	if err != nil {
		return nil, "", false, false
	}

	if !userOK && !tokenOK {
		return nil, "", false, false
	}

	user, ok := parseUser(rawUser)
	if !ok || !tokenOK || token == "" || token == "undefined" {
		return nil, "", true, false
	}

	return user, token, true, true
}

func parseUser(raw string) (*model.User, bool) {
	if raw == "" || raw == "undefined" {
		return nil, false
	}
	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false
	}
	if user.ID == "" {
		return nil, false
	}
	return &user, true
}

// Login authenticates and, on success, transitions to Authenticated.
// A failed attempt surfaces the error without transitioning.
func (m *Manager) Login(ctx context.Context, username, password string, remember bool) (*model.User, error) {
	m.setBusy(true)
	defer m.setBusy(false)

	user, token, err := m.auth.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	if err := m.setSession(user, token, remember); err != nil {
		return nil, err
	}
	return user, nil
}

// Signup validates the profile locally, then registers and transitions
// to Authenticated on success. Local validation failures never reach
// the collaborator.
func (m *Manager) Signup(ctx context.Context, profile SignupProfile, remember bool) (*model.User, error) {
	if profile.Username == "" || profile.Password == "" {
		return nil, ErrMissingField
	}
	if profile.Password != profile.PasswordConfirm {
		return nil, ErrPasswordMismatch
	}

	m.setBusy(true)
	defer m.setBusy(false)

	user, token, err := m.auth.Signup(ctx, profile)
	if err != nil {
		return nil, err
	}

	if err := m.setSession(user, token, remember); err != nil {
		return nil, err
	}
	return user, nil
}

// Logout wipes both stores entirely, detaches the credential and
// returns to Anonymous
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	var errs []error
	if err := m.durable.Clear(); err != nil {
		errs = append(errs, err)
	}
	if err := m.ephemeral.Clear(); err != nil {
		errs = append(errs, err)
	}

	m.user = nil
	m.remember = false
	m.cred.Clear()
	m.state = StateAnonymous

	return errors.Join(errs...)
}

// ResetPassword is a side-channel request; it never transitions state
func (m *Manager) ResetPassword(ctx context.Context, email string) error {
	m.setBusy(true)
	defer m.setBusy(false)
	return m.auth.ResetPassword(ctx, email)
}

// setSession persists the new session to exactly one tier and clears
// the other, as one unit under the manager lock: no reader observes a
// state where both tiers or neither tier holds the token.
func (m *Manager) setSession(user *model.User, token string, remember bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	target, other := m.ephemeral, m.durable
	if remember {
		target, other = m.durable, m.ephemeral
	}

	encoded, err := json.Marshal(user)
	if err != nil {
		return err
	}

	if err := target.Set(keyToken, token); err != nil {
		return m.rollback(target, err)
	}
	if err := target.Set(keyUser, string(encoded)); err != nil {
		return m.rollback(target, err)
	}

	if err := other.Remove(keyToken); err != nil {
		return err
	}
	if err := other.Remove(keyUser); err != nil {
		return err
	}

	m.user = user
	m.remember = remember
	m.cred.Set(token)
	m.state = StateAuthenticated
	return nil
}

// rollback undoes a partial write so the failed tier holds no session
func (m *Manager) rollback(store kv.Store, cause error) error {
	_ = store.Remove(keyToken)
	_ = store.Remove(keyUser)
	return cause
}

func (m *Manager) setBusy(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.busy = v
}
