package domain

// Job is a single job posting as served by the backend. Date fields are
// ISO dates (yyyy-mm-dd), kept as strings to match the wire format.
type Job struct {
	ID             string   `json:"id,omitempty"`
	Title          string   `json:"title"`
	Company        string   `json:"company"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills,omitempty"`
	MinSalary      float64  `json:"minSalary"`
	MaxSalary      float64  `json:"maxSalary"`
	Location       string   `json:"location"`
	EmploymentType string   `json:"employmentType"`
	PostDate       string   `json:"postDate,omitempty"`
	DeadlineDate   string   `json:"deadlineDate,omitempty"`
	Active         bool     `json:"active"`
	RecruiterID    string   `json:"recruiterId,omitempty"`
}

// Page is one page of a paginated listing endpoint. The backend shapes
// these as {content, number, size, totalElements, totalPages}.
type Page[T any] struct {
	Content       []T   `json:"content"`
	Number        int   `json:"number"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}
