// Package portaltest runs an in-memory job-portal backend for tests. It
// speaks the same wire contract as the real API (JWT bearer auth, page
// envelopes, {"message": ...} error bodies) so the client pipeline and
// services can be exercised end to end without a live deployment.
package portaltest

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/jobportal/portal-client/internal/core/domain"
)

const signingSecret = "portaltest-secret"

// messageResponse is the canonical error and acknowledgement envelope.
type messageResponse struct {
	Message string `json:"message"`
}

// account is a registered user with its plaintext test password.
type account struct {
	ID       string
	Username string
	Email    string
	Password string
	Roles    []string
	Enabled  bool
}

// Server is the fake backend. All state is in memory and guarded by one
// mutex; IDs are sequential. Use the Seed helpers to arrange fixtures.
type Server struct {
	URL string

	mu           sync.Mutex
	nextID       int
	users        map[string]*account
	jobs         map[string]*domain.Job
	applications map[string]*domain.Application
	recruiters   map[string]*domain.Recruiter
	tokenTTL     time.Duration

	httpSrv *httptest.Server
}

// New starts a fake backend and registers its shutdown with t.Cleanup.
// The returned URL already includes the /api prefix.
func New(t *testing.T) *Server {
	t.Helper()

	s := &Server{
		users:        make(map[string]*account),
		jobs:         make(map[string]*domain.Job),
		applications: make(map[string]*domain.Application),
		recruiters:   make(map[string]*domain.Recruiter),
		tokenTTL:     time.Hour,
	}

	e := echo.New()
	e.HideBanner = true
	s.routes(e)

	s.httpSrv = httptest.NewServer(e)
	s.URL = s.httpSrv.URL + "/api"
	t.Cleanup(s.httpSrv.Close)
	return s
}

func (s *Server) routes(e *echo.Echo) {
	api := e.Group("/api")

	api.POST("/auth/login", s.login)
	api.POST("/auth/register", s.register)

	auth := api.Group("", s.requireToken)

	auth.GET("/jobs", s.listJobs)
	auth.GET("/jobs/paged", s.listJobsPaged)
	auth.GET("/jobs/search", s.searchJobsByKeyword)
	auth.GET("/jobs/search/paged", s.searchJobsByTitle)
	auth.GET("/jobs/location/:location/paged", s.jobsByLocation)
	auth.GET("/jobs/company/:company/paged", s.jobsByCompany)
	auth.GET("/jobs/recruiter/:id/paged", s.jobsByRecruiter)
	auth.GET("/jobs/:id", s.getJob)
	auth.POST("/jobs", s.createJob, s.requireRole(domain.RoleRecruiter, domain.RoleAdmin))
	auth.PUT("/jobs/:id", s.updateJob, s.requireRole(domain.RoleRecruiter, domain.RoleAdmin))
	auth.DELETE("/jobs/:id", s.deleteJob, s.requireRole(domain.RoleRecruiter, domain.RoleAdmin))

	auth.GET("/applications", s.listApplications)
	auth.GET("/applications/paged", s.listApplicationsPaged)
	auth.GET("/applications/email/:email/paged", s.applicationsByEmail)
	auth.GET("/applications/job/:id", s.applicationsByJob)
	auth.GET("/applications/status/:status/paged", s.applicationsByStatus)
	auth.GET("/applications/:id", s.getApplication)
	auth.POST("/applications", s.createApplication)
	auth.PUT("/applications/:id", s.updateApplication, s.requireRole(domain.RoleRecruiter, domain.RoleAdmin))
	auth.DELETE("/applications/:id", s.deleteApplication)

	auth.GET("/recruiters/paged", s.listRecruitersPaged)
	auth.GET("/recruiters/search", s.searchRecruiterByEmail)
	auth.GET("/recruiters/:id", s.getRecruiter)
	auth.POST("/recruiters", s.createRecruiter, s.requireRole(domain.RoleRecruiter, domain.RoleAdmin))
	auth.PUT("/recruiters/:id", s.updateRecruiter, s.requireRole(domain.RoleRecruiter, domain.RoleAdmin))
	auth.DELETE("/recruiters/:id", s.deleteRecruiter, s.requireRole(domain.RoleAdmin))

	admin := auth.Group("/admin", s.requireRole(domain.RoleAdmin))
	admin.GET("/stats", s.adminStats)
	admin.GET("/users", s.adminUsers)
	admin.GET("/users/:id", s.adminUser)
	admin.PUT("/users/:id/status", s.adminUserStatus)
}

// requireToken validates the bearer JWT and stores its roles in context.
func (s *Server) requireToken(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get("Authorization")
		const prefix = "Bearer "
		if len(header) <= len(prefix) || header[:len(prefix)] != prefix {
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Full authentication is required"})
		}

		claims := jwt.MapClaims{}
		tkn, err := jwt.ParseWithClaims(header[len(prefix):], claims, func(token *jwt.Token) (any, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, jwt.ErrTokenSignatureInvalid
			}
			return []byte(signingSecret), nil
		})
		if err != nil || !tkn.Valid {
			return c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid or expired token"})
		}

		var roles []string
		if raw, ok := claims["roles"].([]any); ok {
			for _, r := range raw {
				if str, ok := r.(string); ok {
					roles = append(roles, str)
				}
			}
		}
		c.Set("username", claims["sub"])
		c.Set("roles", roles)
		return next(c)
	}
}

// requireRole rejects requests whose token carries none of the roles.
func (s *Server) requireRole(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, _ := c.Get("roles").([]string)
			for _, have := range roles {
				for _, want := range allowed {
					if have == want {
						return next(c)
					}
				}
			}
			return c.JSON(http.StatusForbidden, messageResponse{Message: "Access denied"})
		}
	}
}

func (s *Server) id(prefix string) string {
	s.nextID++
	return fmt.Sprintf("%s-%d", prefix, s.nextID)
}

// SeedUser registers an account directly, bypassing the signup endpoint.
func (s *Server) SeedUser(username, password, email string, roles ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[username] = &account{
		ID:       s.id("user"),
		Username: username,
		Email:    email,
		Password: password,
		Roles:    roles,
		Enabled:  true,
	}
}

// SeedJob stores a job and returns its assigned id.
func (s *Server) SeedJob(job domain.Job) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	job.ID = s.id("job")
	if job.PostDate == "" {
		job.PostDate = time.Now().Format(time.DateOnly)
	}
	s.jobs[job.ID] = &job
	return job.ID
}

// SeedApplication stores an application and returns its assigned id.
func (s *Server) SeedApplication(app domain.Application) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	app.ID = s.id("app")
	if app.Status == "" {
		app.Status = domain.StatusSubmitted
	}
	s.applications[app.ID] = &app
	return app.ID
}

// SeedRecruiter stores a recruiter record and returns its assigned id.
func (s *Server) SeedRecruiter(r domain.Recruiter) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.id("rec")
	s.recruiters[r.ID] = &r
	return r.ID
}

// TokenFor mints a valid token for a seeded user, as the login endpoint
// would.
func (s *Server) TokenFor(t *testing.T, username string) string {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		t.Fatalf("TokenFor: user %q not seeded", username)
	}
	token, err := s.mintToken(user, time.Now().Add(s.tokenTTL))
	if err != nil {
		t.Fatalf("TokenFor: %v", err)
	}
	return token
}

func (s *Server) mintToken(user *account, expiry time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.Username,
		"roles": user.Roles,
		"iat":   time.Now().Unix(),
		"exp":   expiry.Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signingSecret))
}

// page slices items into the backend's page envelope.
func page[T any](items []T, c echo.Context) *domain.Page[T] {
	number, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	if size <= 0 {
		size = 10
	}
	if number < 0 {
		number = 0
	}

	total := len(items)
	start := number * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	totalPages := (total + size - 1) / size
	return &domain.Page[T]{
		Content:       items[start:end],
		Number:        number,
		Size:          size,
		TotalElements: int64(total),
		TotalPages:    totalPages,
	}
}
