package ports

import (
	"context"

	"github.com/jobportal/portal-client/internal/core/domain"
)

// RegisterInput carries the account-creation form. Validation runs locally
// before any network call; ConfirmPassword never leaves the client.
type RegisterInput struct {
	Username        string `validate:"required,min=3,max=20"`
	Email           string `validate:"required,email,max=50"`
	Password        string `validate:"required,min=6,max=40"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Role            string `validate:"omitempty,oneof=USER RECRUITER"`

	// Recruiter-only extras, forwarded when Role is RECRUITER.
	Company  string
	Phone    string
	Position string
}

// RegisterResult is the backend acknowledgement of an account creation.
type RegisterResult struct {
	Message string `json:"message"`
}

// AuthService performs credential exchange against the backend and keeps
// the session store in sync.
type AuthService interface {
	// Login exchanges credentials for a token, stores token and derived
	// profile, and returns the profile. On a non-2xx response the session
	// is left untouched and the backend message is surfaced.
	Login(ctx context.Context, username, password string) (*domain.Profile, error)
	// Register creates an account. It does not log the user in.
	Register(ctx context.Context, input RegisterInput) (*RegisterResult, error)
	// Logout clears the session. Idempotent.
	Logout()
}
