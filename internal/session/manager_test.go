package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/msommer/pickem/internal/kv"
	"github.com/msommer/pickem/internal/model"
	"github.com/msommer/pickem/internal/testutil"
)

// fakeAuthenticator records calls and returns canned results
type fakeAuthenticator struct {
	user  *model.User
	token string
	err   error

	loginCalls  int
	signupCalls int
	resetCalls  int
}

func (f *fakeAuthenticator) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	f.loginCalls++
	if f.err != nil {
		return nil, "", f.err
	}
	return f.user, f.token, nil
}

func (f *fakeAuthenticator) Signup(ctx context.Context, profile SignupProfile) (*model.User, string, error) {
	f.signupCalls++
	if f.err != nil {
		return nil, "", f.err
	}
	return f.user, f.token, nil
}

func (f *fakeAuthenticator) ResetPassword(ctx context.Context, email string) error {
	f.resetCalls++
	return f.err
}

type ManagerSuite struct {
	suite.Suite
	durable   *kv.MemoryStore
	ephemeral *kv.MemoryStore
	auth      *fakeAuthenticator
	manager   *Manager
	ctx       context.Context
}

func TestManagerSuite(t *testing.T) {
	suite.Run(t, new(ManagerSuite))
}

func (s *ManagerSuite) SetupTest() {
	s.durable = kv.NewMemoryStore()
	s.ephemeral = kv.NewMemoryStore()
	s.auth = &fakeAuthenticator{
		user:  &model.User{ID: "u1", Username: "alice"},
		token: "token-abc",
	}
	s.manager = NewManager(s.durable, s.ephemeral, s.auth, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ManagerSuite) storeSession(store kv.Store, user *model.User, token string) {
	encoded, err := json.Marshal(user)
	s.Require().NoError(err)
	s.Require().NoError(store.Set("user", string(encoded)))
	s.Require().NoError(store.Set("token", token))
}

func (s *ManagerSuite) keyAbsent(store kv.Store, key string) {
	_, ok, err := store.Get(key)
	s.Require().NoError(err)
	s.False(ok, "expected key %q to be absent", key)
}

// Restore

func (s *ManagerSuite) TestStartsRestoring() {
	s.Equal(StateRestoring, s.manager.State())
}

func (s *ManagerSuite) TestRestoreWithNoSession() {
	s.Require().NoError(s.manager.Restore(s.ctx))

	s.Equal(StateAnonymous, s.manager.State())
	s.Nil(s.manager.CurrentUser())
	s.Empty(s.manager.Credential().Token())
}

func (s *ManagerSuite) TestRestoreFromDurable() {
	s.storeSession(s.durable, &model.User{ID: "u1", Username: "alice"}, "stored-token")

	s.Require().NoError(s.manager.Restore(s.ctx))

	s.Equal(StateAuthenticated, s.manager.State())
	s.Equal(model.UserID("u1"), s.manager.CurrentUser().ID)
	s.Equal("stored-token", s.manager.Credential().Token())
}

func (s *ManagerSuite) TestRestoreFromEphemeral() {
	s.storeSession(s.ephemeral, &model.User{ID: "u2", Username: "bob"}, "session-token")

	s.Require().NoError(s.manager.Restore(s.ctx))

	s.Equal(StateAuthenticated, s.manager.State())
	s.Equal(model.UserID("u2"), s.manager.CurrentUser().ID)
}

func (s *ManagerSuite) TestRestoreDurableWinsOverEphemeral() {
	s.storeSession(s.durable, &model.User{ID: "u1", Username: "alice"}, "durable-token")
	s.storeSession(s.ephemeral, &model.User{ID: "u2", Username: "bob"}, "ephemeral-token")

	s.Require().NoError(s.manager.Restore(s.ctx))

	s.Equal(model.UserID("u1"), s.manager.CurrentUser().ID)
	s.Equal("durable-token", s.manager.Credential().Token())
}

func (s *ManagerSuite) TestRestoreClearsUndefinedValues() {
	// Some upstream writers persist the literal string "undefined"
	s.Require().NoError(s.durable.Set("user", "undefined"))
	s.Require().NoError(s.durable.Set("token", "undefined"))

	s.Require().NoError(s.manager.Restore(s.ctx))

	s.Equal(StateAnonymous, s.manager.State())
	s.keyAbsent(s.durable, "user")
	s.keyAbsent(s.durable, "token")
}

func (s *ManagerSuite) TestRestoreClearsUnparseableUser() {
	s.Require().NoError(s.durable.Set("user", "{not json"))
	s.Require().NoError(s.durable.Set("token", "token-abc"))

	s.Require().NoError(s.manager.Restore(s.ctx))

	s.Equal(StateAnonymous, s.manager.State())
	s.keyAbsent(s.durable, "user")
	s.keyAbsent(s.durable, "token")
}

func (s *ManagerSuite) TestRestoreClearsUserWithoutID() {
	s.Require().NoError(s.durable.Set("user", `{"username":"ghost"}`))
	s.Require().NoError(s.durable.Set("token", "token-abc"))

	s.Require().NoError(s.manager.Restore(s.ctx))

	s.Equal(StateAnonymous, s.manager.State())
	s.keyAbsent(s.durable, "user")
}

func (s *ManagerSuite) TestRestoreClearsPartialRecord() {
	// Token without a user is not a restorable session
	s.Require().NoError(s.ephemeral.Set("token", "orphan-token"))

	s.Require().NoError(s.manager.Restore(s.ctx))

	s.Equal(StateAnonymous, s.manager.State())
	s.keyAbsent(s.ephemeral, "token")
}

func (s *ManagerSuite) TestRestoreMalformedClearsBothTiers() {
	s.Require().NoError(s.durable.Set("user", "undefined"))
	s.Require().NoError(s.durable.Set("token", "undefined"))
	s.storeSession(s.ephemeral, &model.User{ID: "u2", Username: "bob"}, "ephemeral-token")

	s.Require().NoError(s.manager.Restore(s.ctx))

	s.Equal(StateAnonymous, s.manager.State())
	s.keyAbsent(s.ephemeral, "user")
	s.keyAbsent(s.ephemeral, "token")
}

// Login

func (s *ManagerSuite) TestLoginRemembered() {
	s.Require().NoError(s.manager.Restore(s.ctx))

	user, err := s.manager.Login(s.ctx, "alice", "hunter2hunter2", true)
	s.Require().NoError(err)
	s.Equal(model.UserID("u1"), user.ID)
	s.Equal(StateAuthenticated, s.manager.State())
	s.Equal("token-abc", s.manager.Credential().Token())

	token, ok, err := s.durable.Get("token")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("token-abc", token)
	s.keyAbsent(s.ephemeral, "token")
}

func (s *ManagerSuite) TestLoginNotRemembered() {
	s.Require().NoError(s.manager.Restore(s.ctx))

	_, err := s.manager.Login(s.ctx, "alice", "hunter2hunter2", false)
	s.Require().NoError(err)

	token, ok, err := s.ephemeral.Get("token")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal("token-abc", token)
	s.keyAbsent(s.durable, "token")
	s.keyAbsent(s.durable, "user")
}

func (s *ManagerSuite) TestLoginReplacesPriorTier() {
	s.Require().NoError(s.manager.Restore(s.ctx))

	_, err := s.manager.Login(s.ctx, "alice", "hunter2hunter2", true)
	s.Require().NoError(err)

	// Logging in again without remember moves the session to the
	// ephemeral tier and clears the durable one
	_, err = s.manager.Login(s.ctx, "alice", "hunter2hunter2", false)
	s.Require().NoError(err)

	s.keyAbsent(s.durable, "token")
	_, ok, err := s.ephemeral.Get("token")
	s.Require().NoError(err)
	s.True(ok)
}

func (s *ManagerSuite) TestFailedLoginStaysAnonymous() {
	s.Require().NoError(s.manager.Restore(s.ctx))
	s.auth.err = errors.New("invalid credentials")

	_, err := s.manager.Login(s.ctx, "alice", "wrong", true)
	s.Error(err)
	s.Equal(StateAnonymous, s.manager.State())
	s.Nil(s.manager.CurrentUser())
	s.Empty(s.manager.Credential().Token())
	s.keyAbsent(s.durable, "token")
}

// Signup

func (s *ManagerSuite) TestSignupSucceeds() {
	s.Require().NoError(s.manager.Restore(s.ctx))

	user, err := s.manager.Signup(s.ctx, SignupProfile{
		Username:        "alice",
		Password:        "hunter2hunter2",
		PasswordConfirm: "hunter2hunter2",
	}, false)
	s.Require().NoError(err)
	s.Equal(model.UserID("u1"), user.ID)
	s.Equal(StateAuthenticated, s.manager.State())
	s.Equal(1, s.auth.signupCalls)
}

func (s *ManagerSuite) TestSignupMissingFields() {
	_, err := s.manager.Signup(s.ctx, SignupProfile{Username: "alice"}, false)
	s.ErrorIs(err, ErrMissingField)
	s.Equal(0, s.auth.signupCalls)
}

func (s *ManagerSuite) TestSignupPasswordMismatch() {
	_, err := s.manager.Signup(s.ctx, SignupProfile{
		Username:        "alice",
		Password:        "hunter2hunter2",
		PasswordConfirm: "different",
	}, false)
	s.ErrorIs(err, ErrPasswordMismatch)
	s.Equal(0, s.auth.signupCalls)
}

// Logout

func (s *ManagerSuite) TestLogoutClearsEverything() {
	s.Require().NoError(s.manager.Restore(s.ctx))
	_, err := s.manager.Login(s.ctx, "alice", "hunter2hunter2", true)
	s.Require().NoError(err)

	s.Require().NoError(s.manager.Logout(s.ctx))

	s.Equal(StateAnonymous, s.manager.State())
	s.Nil(s.manager.CurrentUser())
	s.Empty(s.manager.Credential().Token())
	s.keyAbsent(s.durable, "token")
	s.keyAbsent(s.durable, "user")
}

// ResetPassword

func (s *ManagerSuite) TestResetPasswordDoesNotTransition() {
	s.Require().NoError(s.manager.Restore(s.ctx))

	s.Require().NoError(s.manager.ResetPassword(s.ctx, "alice@example.com"))
	s.Equal(StateAnonymous, s.manager.State())
	s.Equal(1, s.auth.resetCalls)
}

// Credential transport

func (s *ManagerSuite) TestTransportAttachesBearerToken() {
	var got string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Get("Authorization")
	}))
	defer server.Close()

	cred := s.manager.Credential()
	client := &http.Client{Transport: &Transport{Credential: cred}}

	// Detached credential sends no header
	resp, err := client.Get(server.URL)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Empty(got)

	cred.Set("token-abc")
	resp, err = client.Get(server.URL)
	s.Require().NoError(err)
	resp.Body.Close()
	s.Equal("Bearer token-abc", got)
}
