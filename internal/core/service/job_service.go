package service

import (
	"context"
	"fmt"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/jobportal/portal-client/internal/core/domain"
	"github.com/jobportal/portal-client/internal/core/ports"
	"github.com/jobportal/portal-client/internal/validate"
)

// JobService talks to the /jobs endpoints. Browsing and search are open to
// everyone; create, update and delete require a recruiter-grade session,
// which the backend enforces.
type JobService struct {
	api ports.Requester
	log zerolog.Logger
}

func NewJobService(api ports.Requester, log zerolog.Logger) *JobService {
	return &JobService{api: api, log: log}
}

// pagedQuery renders the standard zero-based pagination query string.
func pagedQuery(page, size int, extra url.Values) string {
	q := url.Values{}
	for k, vs := range extra {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("page", fmt.Sprint(page))
	q.Set("size", fmt.Sprint(size))
	return "?" + q.Encode()
}

func (s *JobService) ListAll(ctx context.Context) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := s.api.Get(ctx, "/jobs", &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) List(ctx context.Context, page, size int) (*domain.Page[domain.Job], error) {
	var result domain.Page[domain.Job]
	if err := s.api.Get(ctx, "/jobs/paged"+pagedQuery(page, size, nil), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *JobService) SearchTitle(ctx context.Context, title string, page, size int) (*domain.Page[domain.Job], error) {
	var result domain.Page[domain.Job]
	path := "/jobs/search/paged" + pagedQuery(page, size, url.Values{"title": {title}})
	if err := s.api.Get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *JobService) SearchKeyword(ctx context.Context, keyword string) ([]domain.Job, error) {
	var jobs []domain.Job
	path := "/jobs/search?" + url.Values{"keyword": {keyword}}.Encode()
	if err := s.api.Get(ctx, path, &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) ByLocation(ctx context.Context, location string, page, size int) (*domain.Page[domain.Job], error) {
	var result domain.Page[domain.Job]
	path := "/jobs/location/" + url.PathEscape(location) + "/paged" + pagedQuery(page, size, nil)
	if err := s.api.Get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *JobService) ByCompany(ctx context.Context, company string, page, size int) (*domain.Page[domain.Job], error) {
	var result domain.Page[domain.Job]
	path := "/jobs/company/" + url.PathEscape(company) + "/paged" + pagedQuery(page, size, nil)
	if err := s.api.Get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *JobService) ByRecruiter(ctx context.Context, recruiterID string, page, size int) (*domain.Page[domain.Job], error) {
	var result domain.Page[domain.Job]
	path := "/jobs/recruiter/" + url.PathEscape(recruiterID) + "/paged" + pagedQuery(page, size, nil)
	if err := s.api.Get(ctx, path, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *JobService) Get(ctx context.Context, id string) (*domain.Job, error) {
	var job domain.Job
	if err := s.api.Get(ctx, "/jobs/"+url.PathEscape(id), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobService) Create(ctx context.Context, input ports.JobInput) (*domain.Job, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	var created domain.Job
	if err := s.api.Post(ctx, "/jobs", jobFromInput(input), &created); err != nil {
		return nil, err
	}
	s.log.Info().Str("job_id", created.ID).Str("title", created.Title).Msg("job posted")
	return &created, nil
}

func (s *JobService) Update(ctx context.Context, id string, input ports.JobInput) (*domain.Job, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	var updated domain.Job
	if err := s.api.Put(ctx, "/jobs/"+url.PathEscape(id), jobFromInput(input), &updated); err != nil {
		return nil, err
	}
	s.log.Info().Str("job_id", id).Msg("job updated")
	return &updated, nil
}

func (s *JobService) Delete(ctx context.Context, id string) error {
	if err := s.api.Delete(ctx, "/jobs/"+url.PathEscape(id)); err != nil {
		return err
	}
	s.log.Info().Str("job_id", id).Msg("job deleted")
	return nil
}

func jobFromInput(input ports.JobInput) domain.Job {
	return domain.Job{
		Title:          input.Title,
		Company:        input.Company,
		Description:    input.Description,
		RequiredSkills: input.RequiredSkills,
		MinSalary:      input.MinSalary,
		MaxSalary:      input.MaxSalary,
		Location:       input.Location,
		EmploymentType: input.EmploymentType,
		DeadlineDate:   input.DeadlineDate,
		Active:         input.Active,
	}
}
