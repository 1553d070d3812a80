package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/jobportal/portal-client/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub store
// ---------------------------------------------------------------------------

type stubStore struct {
	token   string
	profile *domain.Profile
	readErr error // if set, every read fails
}

func (s *stubStore) Token() (string, error) {
	if s.readErr != nil {
		return "", s.readErr
	}
	return s.token, nil
}

func (s *stubStore) SetToken(token string) error {
	s.token = token
	return nil
}

func (s *stubStore) Profile() (*domain.Profile, error) {
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.profile, nil
}

func (s *stubStore) SetProfile(profile *domain.Profile) error {
	s.profile = profile
	return nil
}

func (s *stubStore) Clear() error {
	s.token = ""
	s.profile = nil
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

var fixedNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

// signedToken mints an HS256 token expiring at the given time. The manager
// never checks signatures, so any secret will do.
func signedToken(t *testing.T, expiry time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "alice", "exp": expiry.Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func tokenWithoutExpiry(t *testing.T) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "alice"}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("signing token: %v", err)
	}
	return token
}

func newManager(store *stubStore) *SessionManager {
	m := NewSessionManager(store, discardLogger)
	m.now = func() time.Time { return fixedNow }
	return m
}

// ---------------------------------------------------------------------------
// TokenExpired tests
// ---------------------------------------------------------------------------

func TestSessionManager_TokenExpired_FutureExpiry(t *testing.T) {
	store := &stubStore{token: signedToken(t, fixedNow.Add(time.Hour))}
	m := newManager(store)

	if m.TokenExpired() {
		t.Error("token expiring in one hour must not be expired")
	}
}

func TestSessionManager_TokenExpired_PastExpiry(t *testing.T) {
	store := &stubStore{token: signedToken(t, fixedNow.Add(-time.Minute))}
	m := newManager(store)

	if !m.TokenExpired() {
		t.Error("token past its exp claim must be expired")
	}
}

func TestSessionManager_TokenExpired_ExactBoundary(t *testing.T) {
	store := &stubStore{token: signedToken(t, fixedNow)}
	m := newManager(store)

	if !m.TokenExpired() {
		t.Error("token expiring exactly now must count as expired")
	}
}

func TestSessionManager_TokenExpired_AbsentToken(t *testing.T) {
	m := newManager(&stubStore{})

	if !m.TokenExpired() {
		t.Error("absent token must count as expired")
	}
}

func TestSessionManager_TokenExpired_MalformedToken(t *testing.T) {
	for _, token := range []string{"garbage", "a.b", "!!.!!.!!"} {
		store := &stubStore{token: token}
		m := newManager(store)
		if !m.TokenExpired() {
			t.Errorf("malformed token %q must count as expired", token)
		}
	}
}

func TestSessionManager_TokenExpired_MissingExpClaim(t *testing.T) {
	store := &stubStore{token: tokenWithoutExpiry(t)}
	m := newManager(store)

	if !m.TokenExpired() {
		t.Error("token without exp claim must count as expired")
	}
}

func TestSessionManager_TokenExpired_StoreReadError(t *testing.T) {
	store := &stubStore{token: signedToken(t, fixedNow.Add(time.Hour)), readErr: errors.New("disk gone")}
	m := newManager(store)

	if !m.TokenExpired() {
		t.Error("unreadable store must degrade to expired")
	}
}

// ---------------------------------------------------------------------------
// Session state tests
// ---------------------------------------------------------------------------

func TestSessionManager_EstablishRoundTrip(t *testing.T) {
	store := &stubStore{}
	m := newManager(store)

	profile := &domain.Profile{ID: "u1", Username: "alice", Email: "alice@example.com", Roles: []string{domain.RoleUser}}
	if err := m.Establish("some-token", profile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if m.Token() != "some-token" {
		t.Errorf("expected stored token, got %q", m.Token())
	}
	if !m.IsAuthenticated() {
		t.Error("expected authenticated after Establish")
	}
	got := m.Profile()
	if got == nil || got.Username != "alice" {
		t.Fatalf("profile did not round-trip: %+v", got)
	}
}

func TestSessionManager_InvalidateIsIdempotent(t *testing.T) {
	store := &stubStore{token: "tok", profile: &domain.Profile{Username: "alice"}}
	m := newManager(store)

	m.Invalidate()
	m.Invalidate()

	if m.IsAuthenticated() {
		t.Error("expected unauthenticated after Invalidate")
	}
	if m.Profile() != nil {
		t.Error("expected no profile after Invalidate")
	}
}

func TestSessionManager_HasRole(t *testing.T) {
	store := &stubStore{profile: &domain.Profile{Roles: []string{domain.RoleUser, domain.RoleRecruiter}}}
	m := newManager(store)

	if !m.HasRole(domain.RoleRecruiter) {
		t.Error("expected RECRUITER role")
	}
	if m.HasRole(domain.RoleAdmin) {
		t.Error("did not expect ADMIN role")
	}
}

func TestSessionManager_HasRole_NoProfile(t *testing.T) {
	m := newManager(&stubStore{})

	if m.HasRole(domain.RoleUser) {
		t.Error("missing profile must grant no roles")
	}
}

// ---------------------------------------------------------------------------
// Visibility tests
// ---------------------------------------------------------------------------

func TestSessionManager_Visibility(t *testing.T) {
	cases := []struct {
		name    string
		token   string
		roles   []string
		want    Visibility
		profile bool
	}{
		{
			name:  "anonymous",
			want:  Visibility{Authenticated: false, Unauthenticated: true, UserOnly: true},
		},
		{
			name:    "plain user",
			token:   "tok",
			roles:   []string{domain.RoleUser},
			profile: true,
			want:    Visibility{Authenticated: true, UserOnly: true},
		},
		{
			name:    "recruiter",
			token:   "tok",
			roles:   []string{domain.RoleRecruiter},
			profile: true,
			want:    Visibility{Authenticated: true, RecruiterOnly: true},
		},
		{
			name:    "admin sees recruiter screens",
			token:   "tok",
			roles:   []string{domain.RoleAdmin},
			profile: true,
			want:    Visibility{Authenticated: true, AdminOnly: true, RecruiterOnly: true},
		},
		{
			name:    "user and recruiter",
			token:   "tok",
			roles:   []string{domain.RoleUser, domain.RoleRecruiter},
			profile: true,
			want:    Visibility{Authenticated: true, RecruiterOnly: true, UserOnly: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &stubStore{token: tc.token}
			if tc.profile {
				store.profile = &domain.Profile{Username: "x", Roles: tc.roles}
			}
			m := newManager(store)

			got := m.Visibility()
			if got != tc.want {
				t.Errorf("visibility mismatch:\n got %+v\nwant %+v", got, tc.want)
			}
		})
	}
}
