package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jobportal/portal-client/internal/core/domain"
	"github.com/jobportal/portal-client/internal/core/ports"
	"github.com/jobportal/portal-client/internal/validate"
)

// AuthService exchanges credentials with the backend and keeps the session
// in sync. Login and registration are the only anonymous calls in the
// client; everything else rides the authenticated pipeline.
type AuthService struct {
	api     ports.Requester
	session *SessionManager
	log     zerolog.Logger
}

func NewAuthService(api ports.Requester, session *SessionManager, log zerolog.Logger) *AuthService {
	return &AuthService{api: api, session: session, log: log}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse mirrors the backend's JWT envelope.
type loginResponse struct {
	Token    string   `json:"token"`
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
	Company  string `json:"company,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Position string `json:"position,omitempty"`
}

// Login authenticates against POST /auth/login. On success the token and
// derived profile are stored and the profile returned; on failure the
// session is untouched and the backend message is surfaced.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Profile, error) {
	var resp loginResponse
	if err := s.api.PostAnonymous(ctx, "/auth/login", loginRequest{Username: username, Password: password}, &resp); err != nil {
		return nil, err
	}

	profile := &domain.Profile{
		ID:       resp.ID,
		Username: resp.Username,
		Email:    resp.Email,
		Roles:    resp.Roles,
	}
	if err := s.session.Establish(resp.Token, profile); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", profile.Username).Strs("roles", profile.Roles).Msg("logged in")
	return profile, nil
}

// Register creates an account via POST /auth/register. The form is
// validated locally first; a validation failure never reaches the network.
// Registration does not log the user in.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.RegisterResult, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	req := signupRequest{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		Role:     role,
	}
	if role == domain.RoleRecruiter {
		req.Company = input.Company
		req.Phone = input.Phone
		req.Position = input.Position
	}

	var result ports.RegisterResult
	if err := s.api.PostAnonymous(ctx, "/auth/register", req, &result); err != nil {
		return nil, err
	}

	s.log.Info().Str("username", input.Username).Str("role", role).Msg("account registered")
	return &result, nil
}

// Logout clears the session. Idempotent.
func (s *AuthService) Logout() {
	s.session.Invalidate()
}
