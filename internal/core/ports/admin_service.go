package ports

import (
	"context"

	"github.com/jobportal/portal-client/internal/core/domain"
)

// AdminService covers the admin dashboard endpoints. The backend rejects
// these for non-admin tokens; client-side gating is display convenience only.
type AdminService interface {
	Stats(ctx context.Context) (*domain.DashboardStats, error)
	Users(ctx context.Context) ([]domain.AdminUser, error)
	User(ctx context.Context, id string) (*domain.AdminUser, error)
	// SetUserStatus enables or disables an account via
	// PUT /admin/users/{id}/status with body {"enabled": ...}.
	SetUserStatus(ctx context.Context, id string, enabled bool) error
}
