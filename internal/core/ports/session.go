package ports

import "github.com/jobportal/portal-client/internal/core/domain"

// SessionStore is the two-slot persistence scope for the client session:
// the bearer credential and the serialized profile. Implementations must
// survive process restarts where their medium allows (file, Redis) and
// round-trip the profile losslessly.
type SessionStore interface {
	Token() (string, error)
	SetToken(token string) error
	Profile() (*domain.Profile, error)
	SetProfile(profile *domain.Profile) error
	// Clear removes both slots. Clearing an empty store is a no-op.
	Clear() error
}

// SessionGuard is the narrow session view the request pipeline consults
// before every authenticated call.
type SessionGuard interface {
	// Token returns the stored credential, or "" when unauthenticated.
	Token() string
	// TokenExpired reports whether the credential is absent, expired, or
	// undecodable. Any decode failure counts as expired.
	TokenExpired() bool
	// Invalidate tears the session down. Idempotent.
	Invalidate()
}
