package ports

import (
	"context"

	"github.com/jobportal/portal-client/internal/core/domain"
)

// RecruiterInput is the recruiter profile form.
type RecruiterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required,email"`
	Company  string `validate:"required"`
	Position string
	Phone    string
}

// RecruiterService covers the recruiter directory endpoints.
type RecruiterService interface {
	List(ctx context.Context, page, size int) (*domain.Page[domain.Recruiter], error)
	Get(ctx context.Context, id string) (*domain.Recruiter, error)
	// SearchByEmail resolves the recruiter record owned by the given email,
	// or nil when none exists.
	SearchByEmail(ctx context.Context, email string) (*domain.Recruiter, error)
	Create(ctx context.Context, input RecruiterInput) (*domain.Recruiter, error)
	Update(ctx context.Context, id string, input RecruiterInput) (*domain.Recruiter, error)
	Delete(ctx context.Context, id string) error
}
