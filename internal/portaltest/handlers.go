package portaltest

import (
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jobportal/portal-client/internal/core/domain"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string   `json:"token"`
	Type     string   `json:"type"`
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (s *Server) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[req.Username]
	if !ok || user.Password != req.Password {
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Bad credentials"})
	}
	if !user.Enabled {
		return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Account is disabled"})
	}

	token, err := s.mintToken(user, time.Now().Add(s.tokenTTL))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, messageResponse{Message: "Token generation failed"})
	}
	return c.JSON(http.StatusOK, loginResponse{
		Token:    token,
		Type:     "Bearer",
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Roles:    user.Roles,
	})
}

func (s *Server) register(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[req.Username]; exists {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Error: Username is already taken!"})
	}
	for _, u := range s.users {
		if u.Email == req.Email {
			return c.JSON(http.StatusBadRequest, messageResponse{Message: "Error: Email is already in use!"})
		}
	}

	role := req.Role
	if role == "" {
		role = domain.RoleUser
	}
	s.users[req.Username] = &account{
		ID:       s.id("user"),
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Roles:    []string{role},
		Enabled:  true,
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "User registered successfully!"})
}

// --- jobs ---

// sortedJobs returns jobs in insertion order for deterministic listings.
func (s *Server) sortedJobs() []domain.Job {
	jobs := make([]domain.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobs = append(jobs, *j)
	}
	slices.SortFunc(jobs, func(a, b domain.Job) int {
		return strings.Compare(a.ID, b.ID)
	})
	return jobs
}

func (s *Server) listJobs(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.sortedJobs())
}

func (s *Server) listJobsPaged(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, page(s.sortedJobs(), c))
}

func (s *Server) searchJobsByTitle(c echo.Context) error {
	title := strings.ToLower(c.QueryParam("title"))
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []domain.Job
	for _, j := range s.sortedJobs() {
		if strings.Contains(strings.ToLower(j.Title), title) {
			matched = append(matched, j)
		}
	}
	return c.JSON(http.StatusOK, page(matched, c))
}

func (s *Server) searchJobsByKeyword(c echo.Context) error {
	keyword := strings.ToLower(c.QueryParam("keyword"))
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []domain.Job{}
	for _, j := range s.sortedJobs() {
		haystack := strings.ToLower(j.Title + " " + j.Description + " " + strings.Join(j.RequiredSkills, " "))
		if strings.Contains(haystack, keyword) {
			matched = append(matched, j)
		}
	}
	return c.JSON(http.StatusOK, matched)
}

func (s *Server) jobsByLocation(c echo.Context) error {
	location := c.Param("location")
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []domain.Job
	for _, j := range s.sortedJobs() {
		if strings.EqualFold(j.Location, location) {
			matched = append(matched, j)
		}
	}
	return c.JSON(http.StatusOK, page(matched, c))
}

func (s *Server) jobsByCompany(c echo.Context) error {
	company := c.Param("company")
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []domain.Job
	for _, j := range s.sortedJobs() {
		if strings.EqualFold(j.Company, company) {
			matched = append(matched, j)
		}
	}
	return c.JSON(http.StatusOK, page(matched, c))
}

func (s *Server) jobsByRecruiter(c echo.Context) error {
	recruiterID := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []domain.Job
	for _, j := range s.sortedJobs() {
		if j.RecruiterID == recruiterID {
			matched = append(matched, j)
		}
	}
	return c.JSON(http.StatusOK, page(matched, c))
}

func (s *Server) getJob(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	job, ok := s.jobs[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Job not found"})
	}
	return c.JSON(http.StatusOK, job)
}

func (s *Server) createJob(c echo.Context) error {
	var job domain.Job
	if err := c.Bind(&job); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	job.ID = s.id("job")
	if job.PostDate == "" {
		job.PostDate = time.Now().Format(time.DateOnly)
	}
	s.jobs[job.ID] = &job
	return c.JSON(http.StatusCreated, job)
}

func (s *Server) updateJob(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.jobs[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Job not found"})
	}
	var job domain.Job
	if err := c.Bind(&job); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}
	job.ID = existing.ID
	if job.PostDate == "" {
		job.PostDate = existing.PostDate
	}
	s.jobs[job.ID] = &job
	return c.JSON(http.StatusOK, job)
}

func (s *Server) deleteJob(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[c.Param("id")]; !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Job not found"})
	}
	delete(s.jobs, c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// --- applications ---

func (s *Server) sortedApplications() []domain.Application {
	apps := make([]domain.Application, 0, len(s.applications))
	for _, a := range s.applications {
		apps = append(apps, *a)
	}
	slices.SortFunc(apps, func(a, b domain.Application) int {
		return strings.Compare(a.ID, b.ID)
	})
	return apps
}

func (s *Server) listApplications(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, s.sortedApplications())
}

func (s *Server) listApplicationsPaged(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, page(s.sortedApplications(), c))
}

func (s *Server) applicationsByEmail(c echo.Context) error {
	email := c.Param("email")
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []domain.Application
	for _, a := range s.sortedApplications() {
		if strings.EqualFold(a.Email, email) {
			matched = append(matched, a)
		}
	}
	return c.JSON(http.StatusOK, page(matched, c))
}

func (s *Server) applicationsByJob(c echo.Context) error {
	jobID := c.Param("id")
	s.mu.Lock()
	defer s.mu.Unlock()
	matched := []domain.Application{}
	for _, a := range s.sortedApplications() {
		if a.JobID == jobID {
			matched = append(matched, a)
		}
	}
	return c.JSON(http.StatusOK, matched)
}

func (s *Server) applicationsByStatus(c echo.Context) error {
	status := domain.ApplicationStatus(c.Param("status"))
	s.mu.Lock()
	defer s.mu.Unlock()
	var matched []domain.Application
	for _, a := range s.sortedApplications() {
		if a.Status == status {
			matched = append(matched, a)
		}
	}
	return c.JSON(http.StatusOK, page(matched, c))
}

func (s *Server) getApplication(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Application not found"})
	}
	return c.JSON(http.StatusOK, app)
}

func (s *Server) createApplication(c echo.Context) error {
	var app domain.Application
	if err := c.Bind(&app); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[app.JobID]; !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Job not found"})
	}
	app.ID = s.id("app")
	if app.Status == "" {
		app.Status = domain.StatusSubmitted
	}
	s.applications[app.ID] = &app
	return c.JSON(http.StatusCreated, app)
}

func (s *Server) updateApplication(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.applications[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Application not found"})
	}
	var app domain.Application
	if err := c.Bind(&app); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}
	app.ID = existing.ID
	s.applications[app.ID] = &app
	return c.JSON(http.StatusOK, app)
}

func (s *Server) deleteApplication(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.applications[c.Param("id")]; !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Application not found"})
	}
	delete(s.applications, c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// --- recruiters ---

func (s *Server) sortedRecruiters() []domain.Recruiter {
	recs := make([]domain.Recruiter, 0, len(s.recruiters))
	for _, r := range s.recruiters {
		recs = append(recs, *r)
	}
	slices.SortFunc(recs, func(a, b domain.Recruiter) int {
		return strings.Compare(a.ID, b.ID)
	})
	return recs
}

func (s *Server) listRecruitersPaged(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(http.StatusOK, page(s.sortedRecruiters(), c))
}

func (s *Server) searchRecruiterByEmail(c echo.Context) error {
	email := c.QueryParam("email")
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.sortedRecruiters() {
		if strings.EqualFold(r.Email, email) {
			return c.JSON(http.StatusOK, r)
		}
	}
	return c.JSON(http.StatusNotFound, messageResponse{Message: "Recruiter not found"})
}

func (s *Server) getRecruiter(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.recruiters[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Recruiter not found"})
	}
	return c.JSON(http.StatusOK, rec)
}

func (s *Server) createRecruiter(c echo.Context) error {
	var rec domain.Recruiter
	if err := c.Bind(&rec); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = s.id("rec")
	s.recruiters[rec.ID] = &rec
	return c.JSON(http.StatusCreated, rec)
}

func (s *Server) updateRecruiter(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.recruiters[c.Param("id")]
	if !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Recruiter not found"})
	}
	var rec domain.Recruiter
	if err := c.Bind(&rec); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}
	rec.ID = existing.ID
	s.recruiters[rec.ID] = &rec
	return c.JSON(http.StatusOK, rec)
}

func (s *Server) deleteRecruiter(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recruiters[c.Param("id")]; !ok {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Recruiter not found"})
	}
	delete(s.recruiters, c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// --- admin ---

func (s *Server) adminStats(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	recruiterCount := int64(0)
	for _, u := range s.users {
		if slices.Contains(u.Roles, domain.RoleRecruiter) {
			recruiterCount++
		}
	}
	return c.JSON(http.StatusOK, domain.DashboardStats{
		TotalUsers:        int64(len(s.users)),
		TotalJobs:         int64(len(s.jobs)),
		TotalApplications: int64(len(s.applications)),
		TotalRecruiters:   recruiterCount,
	})
}

func (s *Server) adminUsers(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	users := make([]domain.AdminUser, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, domain.AdminUser{
			ID: u.ID, Username: u.Username, Email: u.Email, Roles: u.Roles, Enabled: u.Enabled,
		})
	}
	slices.SortFunc(users, func(a, b domain.AdminUser) int {
		return strings.Compare(a.ID, b.ID)
	})
	return c.JSON(http.StatusOK, users)
}

func (s *Server) adminUser(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == c.Param("id") {
			return c.JSON(http.StatusOK, domain.AdminUser{
				ID: u.ID, Username: u.Username, Email: u.Email, Roles: u.Roles, Enabled: u.Enabled,
			})
		}
	}
	return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
}

func (s *Server) adminUserStatus(c echo.Context) error {
	var body struct {
		Enabled bool `json:"enabled"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, messageResponse{Message: "Invalid payload"})
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == c.Param("id") {
			u.Enabled = body.Enabled
			return c.JSON(http.StatusOK, messageResponse{Message: "User status updated"})
		}
	}
	return c.JSON(http.StatusNotFound, messageResponse{Message: "User not found"})
}
