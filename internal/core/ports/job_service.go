package ports

import (
	"context"

	"github.com/jobportal/portal-client/internal/core/domain"
)

// JobInput carries the fields a recruiter supplies when posting or editing
// a job. Validated locally before dispatch.
type JobInput struct {
	Title          string `validate:"required"`
	Company        string `validate:"required"`
	Description    string `validate:"required"`
	RequiredSkills []string
	MinSalary      float64 `validate:"required,gt=0"`
	MaxSalary      float64 `validate:"omitempty,gtefield=MinSalary"`
	Location       string  `validate:"required"`
	EmploymentType string  `validate:"required"`
	DeadlineDate   string
	Active         bool
}

// JobService covers the job listing, search, and CRUD endpoints. Paged
// forms use zero-based page numbers and decode the backend's page envelope;
// the remaining forms return bare lists, matching the backend contract.
type JobService interface {
	ListAll(ctx context.Context) ([]domain.Job, error)
	List(ctx context.Context, page, size int) (*domain.Page[domain.Job], error)
	SearchTitle(ctx context.Context, title string, page, size int) (*domain.Page[domain.Job], error)
	SearchKeyword(ctx context.Context, keyword string) ([]domain.Job, error)
	ByLocation(ctx context.Context, location string, page, size int) (*domain.Page[domain.Job], error)
	ByCompany(ctx context.Context, company string, page, size int) (*domain.Page[domain.Job], error)
	ByRecruiter(ctx context.Context, recruiterID string, page, size int) (*domain.Page[domain.Job], error)
	Get(ctx context.Context, id string) (*domain.Job, error)
	Create(ctx context.Context, input JobInput) (*domain.Job, error)
	Update(ctx context.Context, id string, input JobInput) (*domain.Job, error)
	Delete(ctx context.Context, id string) error
}
