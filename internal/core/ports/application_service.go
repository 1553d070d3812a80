package ports

import (
	"context"

	"github.com/jobportal/portal-client/internal/core/domain"
)

// ApplyInput is the candidate-facing application form.
type ApplyInput struct {
	JobID           string `validate:"required"`
	CandidateName   string `validate:"required"`
	Email           string `validate:"required,email"`
	Phone           string `validate:"required"`
	ResumeURL       string `validate:"omitempty,url"`
	CoverLetterText string
}

// ApplicationService covers application submission, lookup, and the
// recruiter-side review workflow.
type ApplicationService interface {
	ListAll(ctx context.Context) ([]domain.Application, error)
	List(ctx context.Context, page, size int) (*domain.Page[domain.Application], error)
	Get(ctx context.Context, id string) (*domain.Application, error)
	ByEmail(ctx context.Context, email string, page, size int) (*domain.Page[domain.Application], error)
	ByJob(ctx context.Context, jobID string) ([]domain.Application, error)
	ByStatus(ctx context.Context, status domain.ApplicationStatus, page, size int) (*domain.Page[domain.Application], error)
	// Submit validates the form, stamps today's date and SUBMITTED status,
	// and posts the application.
	Submit(ctx context.Context, input ApplyInput) (*domain.Application, error)
	// UpdateStatus fetches the application and rejects lifecycle violations
	// locally before sending the update.
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error)
	Delete(ctx context.Context, id string) error
}
