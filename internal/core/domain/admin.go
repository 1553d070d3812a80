package domain

// AdminUser is the user summary returned by the admin endpoints.
type AdminUser struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
	Enabled  bool     `json:"enabled"`
}

// DashboardStats is the admin dashboard counter set.
type DashboardStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	TotalJobs         int64 `json:"totalJobs"`
	TotalApplications int64 `json:"totalApplications"`
	TotalRecruiters   int64 `json:"totalRecruiters"`
}
