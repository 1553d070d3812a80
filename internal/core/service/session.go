package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/jobportal/portal-client/internal/core/domain"
	"github.com/jobportal/portal-client/internal/core/ports"
)

// SessionManager is the single source of truth for "who is the current
// user". It is constructed once at startup and injected into the request
// pipeline and the command surface; all queries are local and synchronous.
//
// The manager never verifies token signatures: expiry is decided by an
// unverified decode of the payload, and the backend remains the real
// enforcement boundary. Store read failures are treated as "logged out"
// rather than surfaced, so a broken session medium degrades to
// unauthenticated instead of wedging every command.
type SessionManager struct {
	store ports.SessionStore
	log   zerolog.Logger
	now   func() time.Time
}

func NewSessionManager(store ports.SessionStore, log zerolog.Logger) *SessionManager {
	return &SessionManager{store: store, log: log, now: time.Now}
}

// Token returns the stored credential, or "" when unauthenticated.
func (m *SessionManager) Token() string {
	token, err := m.store.Token()
	if err != nil {
		m.log.Error().Err(err).Msg("session store read failed")
		return ""
	}
	return token
}

// Profile returns the cached profile, or nil when none is stored. A profile
// without a token is meaningless, so callers gate on IsAuthenticated first.
func (m *SessionManager) Profile() *domain.Profile {
	profile, err := m.store.Profile()
	if err != nil {
		m.log.Error().Err(err).Msg("session store read failed")
		return nil
	}
	return profile
}

// IsAuthenticated reports whether a credential is present. It does not
// validate the credential; see TokenExpired.
func (m *SessionManager) IsAuthenticated() bool {
	return m.Token() != ""
}

// HasRole reports whether the cached profile carries the given role.
func (m *SessionManager) HasRole(role string) bool {
	return m.Profile().HasRole(role)
}

// Claims returns the unverified decoded payload of the stored token, or nil
// when the token is absent or undecodable. Display gating uses the cached
// profile; Claims exists for callers that want to inspect token-side state.
func (m *SessionManager) Claims() jwt.MapClaims {
	token := m.Token()
	if token == "" {
		return nil
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}

// TokenExpired reports whether the credential is unusable: absent, past its
// exp claim, or failing to decode in any way. Decode failures count as
// expired so a garbled token can never authorize a dispatch.
func (m *SessionManager) TokenExpired() bool {
	token := m.Token()
	if token == "" {
		return true
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return !m.now().Before(exp.Time)
}

// Establish stores a fresh credential and its derived profile, replacing
// any previous session.
func (m *SessionManager) Establish(token string, profile *domain.Profile) error {
	if err := m.store.SetToken(token); err != nil {
		return err
	}
	return m.store.SetProfile(profile)
}

// Invalidate clears both session slots. Idempotent: invalidating a
// logged-out session is a no-op.
func (m *SessionManager) Invalidate() {
	if err := m.store.Clear(); err != nil {
		m.log.Error().Err(err).Msg("session clear failed")
	}
}

// Visibility is the set of display-gating decisions derived from session
// state. Computing it is pure; applying it to a screen is the caller's job.
type Visibility struct {
	Authenticated   bool
	Unauthenticated bool
	AdminOnly       bool
	RecruiterOnly   bool
	UserOnly        bool
}

// Visibility derives the gating set from the current session. Recruiter
// screens include admins; user screens include anyone who is not
// recruiter-grade, which deliberately covers anonymous visitors.
func (m *SessionManager) Visibility() Visibility {
	profile := m.Profile()
	authenticated := m.IsAuthenticated()
	admin := profile.HasRole(domain.RoleAdmin)
	recruiter := profile.HasRole(domain.RoleRecruiter) || admin
	user := profile.HasRole(domain.RoleUser) || !recruiter

	return Visibility{
		Authenticated:   authenticated,
		Unauthenticated: !authenticated,
		AdminOnly:       admin,
		RecruiterOnly:   recruiter,
		UserOnly:        user,
	}
}
