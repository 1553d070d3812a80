package service

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/jobportal/portal-client/internal/core/domain"
	"github.com/jobportal/portal-client/internal/core/ports"
	"github.com/jobportal/portal-client/internal/validate"
)

// RecruiterService talks to the /recruiters directory endpoints.
type RecruiterService struct {
	api ports.Requester
	log zerolog.Logger
}

func NewRecruiterService(api ports.Requester, log zerolog.Logger) *RecruiterService {
	return &RecruiterService{api: api, log: log}
}

func (s *RecruiterService) List(ctx context.Context, page, size int) (*domain.Page[domain.Recruiter], error) {
	var result domain.Page[domain.Recruiter]
	if err := s.api.Get(ctx, "/recruiters/paged"+pagedQuery(page, size, nil), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *RecruiterService) Get(ctx context.Context, id string) (*domain.Recruiter, error) {
	var recruiter domain.Recruiter
	if err := s.api.Get(ctx, "/recruiters/"+url.PathEscape(id), &recruiter); err != nil {
		return nil, err
	}
	return &recruiter, nil
}

// SearchByEmail resolves the recruiter record owned by the given email. A
// 404 from the backend means no record, reported as nil without error.
func (s *RecruiterService) SearchByEmail(ctx context.Context, email string) (*domain.Recruiter, error) {
	var recruiter domain.Recruiter
	path := "/recruiters/search?" + url.Values{"email": {email}}.Encode()
	if err := s.api.Get(ctx, path, &recruiter); err != nil {
		if re, ok := domain.AsRequestError(err); ok && re.StatusCode == 404 {
			return nil, nil
		}
		return nil, err
	}
	return &recruiter, nil
}

func (s *RecruiterService) Create(ctx context.Context, input ports.RecruiterInput) (*domain.Recruiter, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	var created domain.Recruiter
	if err := s.api.Post(ctx, "/recruiters", recruiterFromInput(input), &created); err != nil {
		return nil, err
	}
	s.log.Info().Str("recruiter_id", created.ID).Str("email", created.Email).Msg("recruiter profile created")
	return &created, nil
}

func (s *RecruiterService) Update(ctx context.Context, id string, input ports.RecruiterInput) (*domain.Recruiter, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	var updated domain.Recruiter
	if err := s.api.Put(ctx, "/recruiters/"+url.PathEscape(id), recruiterFromInput(input), &updated); err != nil {
		return nil, err
	}
	s.log.Info().Str("recruiter_id", id).Msg("recruiter profile updated")
	return &updated, nil
}

func (s *RecruiterService) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/recruiters/"+url.PathEscape(id)); err != nil {
		return err
	}
	s.log.Info().Str("recruiter_id", id).Msg("recruiter profile deleted")
	return nil
}

func recruiterFromInput(input ports.RecruiterInput) domain.Recruiter {
	return domain.Recruiter{
		Name:     input.Name,
		Email:    input.Email,
		Company:  input.Company,
		Position: input.Position,
		Phone:    input.Phone,
	}
}
