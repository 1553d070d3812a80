package domain

// Recruiter is the public recruiter record attached to job postings.
type Recruiter struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Company  string `json:"company"`
	Position string `json:"position,omitempty"`
	Phone    string `json:"phone,omitempty"`
}
