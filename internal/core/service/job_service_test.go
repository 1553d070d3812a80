package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/jobportal/portal-client/internal/core/domain"
	"github.com/jobportal/portal-client/internal/core/ports"
	"github.com/jobportal/portal-client/internal/portaltest"
)

// ---------------------------------------------------------------------------
// Recording stub requester
// ---------------------------------------------------------------------------

// recordingRequester captures the last dispatched call and feeds back a
// canned response through out.
type recordingRequester struct {
	method   string
	path     string
	body     any
	response any   // marshalled into out when non-nil
	err      error // returned verbatim when set
	calls    int
}

func (r *recordingRequester) dispatch(method, path string, body, out any) error {
	r.calls++
	r.method, r.path, r.body = method, path, body
	if r.err != nil {
		return r.err
	}
	if r.response != nil && out != nil {
		data, err := json.Marshal(r.response)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, out)
	}
	return nil
}

func (r *recordingRequester) Get(_ context.Context, path string, out any) error {
	return r.dispatch("GET", path, nil, out)
}

func (r *recordingRequester) Post(_ context.Context, path string, body, out any) error {
	return r.dispatch("POST", path, body, out)
}

func (r *recordingRequester) Put(_ context.Context, path string, body, out any) error {
	return r.dispatch("PUT", path, body, out)
}

func (r *recordingRequester) Delete(_ context.Context, path string) error {
	return r.dispatch("DELETE", path, nil, nil)
}

func (r *recordingRequester) PostAnonymous(_ context.Context, path string, body, out any) error {
	return r.dispatch("POST", path, body, out)
}

func validJobInput() ports.JobInput {
	return ports.JobInput{
		Title:          "Go Engineer",
		Company:        "Acme",
		Description:    "Build backend services",
		RequiredSkills: []string{"Go", "SQL"},
		MinSalary:      90000,
		MaxSalary:      120000,
		Location:       "Remote",
		EmploymentType: "FULL_TIME",
		Active:         true,
	}
}

// ---------------------------------------------------------------------------
// Path construction
// ---------------------------------------------------------------------------

func TestJobService_PathConstruction(t *testing.T) {
	cases := []struct {
		name     string
		call     func(svc *JobService) error
		wantPath string
	}{
		{
			name:     "list all",
			call:     func(svc *JobService) error { _, err := svc.ListAll(context.Background()); return err },
			wantPath: "/jobs",
		},
		{
			name:     "paged list",
			call:     func(svc *JobService) error { _, err := svc.List(context.Background(), 2, 25); return err },
			wantPath: "/jobs/paged?page=2&size=25",
		},
		{
			name: "title search",
			call: func(svc *JobService) error {
				_, err := svc.SearchTitle(context.Background(), "go engineer", 0, 10)
				return err
			},
			wantPath: "/jobs/search/paged?page=0&size=10&title=go+engineer",
		},
		{
			name: "keyword search",
			call: func(svc *JobService) error {
				_, err := svc.SearchKeyword(context.Background(), "kubernetes")
				return err
			},
			wantPath: "/jobs/search?keyword=kubernetes",
		},
		{
			name: "by location escapes the segment",
			call: func(svc *JobService) error {
				_, err := svc.ByLocation(context.Background(), "New York", 0, 10)
				return err
			},
			wantPath: "/jobs/location/New%20York/paged?page=0&size=10",
		},
		{
			name: "by company",
			call: func(svc *JobService) error {
				_, err := svc.ByCompany(context.Background(), "Acme", 1, 5)
				return err
			},
			wantPath: "/jobs/company/Acme/paged?page=1&size=5",
		},
		{
			name: "by recruiter",
			call: func(svc *JobService) error {
				_, err := svc.ByRecruiter(context.Background(), "rec-7", 0, 10)
				return err
			},
			wantPath: "/jobs/recruiter/rec-7/paged?page=0&size=10",
		},
		{
			name:     "get by id",
			call:     func(svc *JobService) error { _, err := svc.Get(context.Background(), "job-1"); return err },
			wantPath: "/jobs/job-1",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &recordingRequester{}
			svc := NewJobService(api, discardLogger)

			if err := tc.call(svc); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if api.path != tc.wantPath {
				t.Errorf("expected path %q, got %q", tc.wantPath, api.path)
			}
		})
	}
}

func TestJobService_SearchKeyword_EndToEnd(t *testing.T) {
	srv := portaltest.New(t)
	srv.SeedUser("bob", "password123", "bob@example.com", domain.RoleUser)
	srv.SeedJob(domain.Job{Title: "Go Engineer", Company: "Acme", Location: "Remote", MinSalary: 90000, Description: "Kubernetes platform work"})
	srv.SeedJob(domain.Job{Title: "Accountant", Company: "Acme", Location: "Remote", MinSalary: 60000, Description: "Ledger upkeep"})

	sessions, api := newLiveClient(t, srv)
	auth := NewAuthService(api, sessions, discardLogger)
	svc := NewJobService(api, discardLogger)
	ctx := context.Background()

	if _, err := auth.Login(ctx, "bob", "password123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	matched, err := svc.SearchKeyword(ctx, "kubernetes")
	if err != nil {
		t.Fatalf("keyword search failed: %v", err)
	}
	if len(matched) != 1 || matched[0].Title != "Go Engineer" {
		t.Fatalf("unexpected matches: %+v", matched)
	}
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

func TestJobService_Create_InvalidInputStopsBeforeNetwork(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ports.JobInput)
	}{
		{"missing title", func(in *ports.JobInput) { in.Title = "" }},
		{"zero salary", func(in *ports.JobInput) { in.MinSalary = 0 }},
		{"max below min", func(in *ports.JobInput) { in.MaxSalary = in.MinSalary - 1 }},
		{"missing location", func(in *ports.JobInput) { in.Location = "" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := &recordingRequester{}
			svc := NewJobService(api, discardLogger)

			input := validJobInput()
			tc.mutate(&input)

			if _, err := svc.Create(context.Background(), input); err == nil {
				t.Fatal("expected validation error")
			}
			if api.calls != 0 {
				t.Errorf("invalid form must not reach the network, got %d calls", api.calls)
			}
		})
	}
}

func TestJobService_Create_OmittedMaxSalaryIsAllowed(t *testing.T) {
	api := &recordingRequester{response: domain.Job{ID: "job-1"}}
	svc := NewJobService(api, discardLogger)

	input := validJobInput()
	input.MaxSalary = 0

	if _, err := svc.Create(context.Background(), input); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ---------------------------------------------------------------------------
// End-to-end CRUD against the fake backend
// ---------------------------------------------------------------------------

func TestJobService_CRUD(t *testing.T) {
	srv := portaltest.New(t)
	srv.SeedUser("rita", "password123", "rita@example.com", domain.RoleRecruiter)

	sessions, api := newLiveClient(t, srv)
	auth := NewAuthService(api, sessions, discardLogger)
	svc := NewJobService(api, discardLogger)
	ctx := context.Background()

	if _, err := auth.Login(ctx, "rita", "password123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	created, err := svc.Create(ctx, validJobInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned job id")
	}
	if created.PostDate == "" {
		t.Error("expected backend-stamped post date")
	}

	input := validJobInput()
	input.Title = "Senior Go Engineer"
	updated, err := svc.Update(ctx, created.ID, input)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "Senior Go Engineer" {
		t.Errorf("update not applied: %+v", updated)
	}

	fetched, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fetched.Title != "Senior Go Engineer" {
		t.Errorf("unexpected title %q", fetched.Title)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	_, err = svc.Get(ctx, created.ID)
	re, ok := domain.AsRequestError(err)
	if !ok {
		t.Fatalf("expected *RequestError after delete, got %v", err)
	}
	if re.Message != "Job not found" {
		t.Errorf("expected %q, got %q", "Job not found", re.Message)
	}
}

func TestJobService_Create_ForbiddenForPlainUsers(t *testing.T) {
	srv := portaltest.New(t)
	srv.SeedUser("bob", "password123", "bob@example.com", domain.RoleUser)

	sessions, api := newLiveClient(t, srv)
	auth := NewAuthService(api, sessions, discardLogger)
	svc := NewJobService(api, discardLogger)
	ctx := context.Background()

	if _, err := auth.Login(ctx, "bob", "password123"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	_, err := svc.Create(ctx, validJobInput())
	re, ok := domain.AsRequestError(err)
	if !ok {
		t.Fatalf("expected *RequestError, got %v", err)
	}
	if re.StatusCode != 403 {
		t.Errorf("expected 403, got %d", re.StatusCode)
	}
	if !sessions.IsAuthenticated() {
		t.Error("a 403 must not tear down the session")
	}
}
