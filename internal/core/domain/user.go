package domain

import "slices"

const (
	RoleUser      = "USER"
	RoleRecruiter = "RECRUITER"
	RoleAdmin     = "ADMIN"
)

// Profile is the cached identity of the logged-in user, derived from the
// login response. It is client-held display state, not server-authoritative:
// the backend re-checks authorization on every call.
type Profile struct {
	ID       string   `json:"id"`
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
}

// HasRole reports whether role is a member of the profile's role set.
// A nil profile has no roles.
func (p *Profile) HasRole(role string) bool {
	if p == nil {
		return false
	}
	return slices.Contains(p.Roles, role)
}

// IsRecruiterLevel reports recruiter-grade visibility: admins implicitly
// see recruiter screens even without the RECRUITER role.
func (p *Profile) IsRecruiterLevel() bool {
	return p.HasRole(RoleRecruiter) || p.HasRole(RoleAdmin)
}
