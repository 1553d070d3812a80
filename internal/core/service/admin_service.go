package service

import (
	"context"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/jobportal/portal-client/internal/core/domain"
	"github.com/jobportal/portal-client/internal/core/ports"
)

// AdminService talks to the /admin endpoints. The backend rejects these for
// non-admin tokens; the client only gates display.
type AdminService struct {
	api ports.Requester
	log zerolog.Logger
}

func NewAdminService(api ports.Requester, log zerolog.Logger) *AdminService {
	return &AdminService{api: api, log: log}
}

func (s *AdminService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := s.api.Get(ctx, "/admin/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *AdminService) Users(ctx context.Context) ([]domain.AdminUser, error) {
	var users []domain.AdminUser
	if err := s.api.Get(ctx, "/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *AdminService) User(ctx context.Context, id string) (*domain.AdminUser, error) {
	var user domain.AdminUser
	if err := s.api.Get(ctx, "/admin/users/"+url.PathEscape(id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type statusUpdate struct {
	Enabled bool `json:"enabled"`
}

// SetUserStatus enables or disables an account.
func (s *AdminService) SetUserStatus(ctx context.Context, id string, enabled bool) error {
	path := "/admin/users/" + url.PathEscape(id) + "/status"
	if err := s.api.Put(ctx, path, statusUpdate{Enabled: enabled}, nil); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Bool("enabled", enabled).Msg("user status changed")
	return nil
}
