package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/jobportal/portal-client/internal/core/domain"
	"github.com/jobportal/portal-client/internal/core/ports"
	"github.com/jobportal/portal-client/internal/validate"
)

// ApplicationService talks to the /applications endpoints: candidate
// submission plus the recruiter review workflow.
type ApplicationService struct {
	api ports.Requester
	log zerolog.Logger
	now func() time.Time
}

func NewApplicationService(api ports.Requester, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{api: api, log: log, now: time.Now}
}

func (s *ApplicationService) ListAll(ctx context.Context) ([]domain.Application, error) {
	var apps []domain.Application
	if err := s.api.Get(ctx, "/applications", &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *ApplicationService) List(ctx context.Context, page, size int) (*domain.Page[domain.Application], error) {
	var result domain.Page[domain.Application]
	if err := s.api.Get(ctx, "/applications/paged"+pagedQuery(page, size, nil), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *ApplicationService) Get(ctx context.Context, id string) (*domain.Application, error) {
	var app domain.Application
	if err := s.api.Get(ctx, "/applications/"+url.PathEscape(id), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationService) ByEmail(ctx context.Context, email string, page, size int) (*domain.Page[domain.Application], error) {
	var result domain.Page[domain.Application]
	path := "/applications/email/" + url.PathEscape(email) + "/paged" + pagedQuery(page, size, nil)
	if err := s.api.Get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *ApplicationService) ByJob(ctx context.Context, jobID string) ([]domain.Application, error) {
	var apps []domain.Application
	if err := s.api.Get(ctx, "/applications/job/"+url.PathEscape(jobID), &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *ApplicationService) ByStatus(ctx context.Context, status domain.ApplicationStatus, page, size int) (*domain.Page[domain.Application], error) {
	var result domain.Page[domain.Application]
	path := "/applications/status/" + url.PathEscape(string(status)) + "/paged" + pagedQuery(page, size, nil)
	if err := s.api.Get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Submit validates the form, stamps today's date and SUBMITTED status, and
// posts the application.
func (s *ApplicationService) Submit(ctx context.Context, input ports.ApplyInput) (*domain.Application, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	app := domain.Application{
		JobID:           input.JobID,
		CandidateName:   input.CandidateName,
		Email:           input.Email,
		Phone:           input.Phone,
		ResumeURL:       input.ResumeURL,
		CoverLetterText: input.CoverLetterText,
		ApplicationDate: s.now().Format(time.DateOnly),
		Status:          domain.StatusSubmitted,
	}

	var created domain.Application
	if err := s.api.Post(ctx, "/applications", app, &created); err != nil {
		return nil, err
	}
	s.log.Info().Str("application_id", created.ID).Str("job_id", input.JobID).Msg("application submitted")
	return &created, nil
}

// UpdateStatus fetches the application and rejects lifecycle violations
// locally before sending the update.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) (*domain.Application, error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !current.Status.CanTransitionTo(status) {
		return nil, fmt.Errorf("%w: %s to %s", domain.ErrInvalidTransition, current.Status, status)
	}

	current.Status = status
	var updated domain.Application
	if err := s.api.Put(ctx, "/applications/"+url.PathEscape(id), current, &updated); err != nil {
		return nil, err
	}
	s.log.Info().Str("application_id", id).Str("status", string(status)).Msg("application status updated")
	return &updated, nil
}

func (s *ApplicationService) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/applications/"+url.PathEscape(id)); err != nil {
		return err
	}
	s.log.Info().Str("application_id", id).Msg("application deleted")
	return nil
}
