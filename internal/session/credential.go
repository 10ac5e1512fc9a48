package session

import (
	"net/http"
	"sync"
)

// Credential is the bearer token attached to outgoing requests. It is
// owned by the Manager and injected into HTTP clients explicitly, so a
// session change updates every subsequent request without ambient
// global state.
type Credential struct {
	mu    sync.RWMutex
	token string
}

// NewCredential creates an empty Credential
func NewCredential() *Credential {
	return &Credential{}
}

// Set replaces the attached token
func (c *Credential) Set(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

// Clear detaches the token
func (c *Credential) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

// Token returns the currently attached token, empty when detached
func (c *Credential) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Transport is an http.RoundTripper that attaches the credential's
// bearer token to every request
type Transport struct {
	Credential *Credential
	Base       http.RoundTripper
}

// RoundTrip implements http.RoundTripper
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if token := t.Credential.Token(); token != "" {
		clone := req.Clone(req.Context())
		clone.Header.Set("Authorization", "Bearer "+token)
		return base.RoundTrip(clone)
	}
	return base.RoundTrip(req)
}
