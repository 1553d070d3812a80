package domain

// ApplicationStatus represents the review state of a job application.
type ApplicationStatus string

const (
	StatusSubmitted   ApplicationStatus = "SUBMITTED"
	StatusReviewing   ApplicationStatus = "REVIEWING"
	StatusInterviewed ApplicationStatus = "INTERVIEWED"
	StatusRejected    ApplicationStatus = "REJECTED"
	StatusAccepted    ApplicationStatus = "ACCEPTED"
)

// validTransitions defines the allowed review lifecycle transitions.
// ACCEPTED and REJECTED are terminal.
var validTransitions = map[ApplicationStatus][]ApplicationStatus{
	StatusSubmitted:   {StatusReviewing, StatusRejected},
	StatusReviewing:   {StatusInterviewed, StatusRejected},
	StatusInterviewed: {StatusAccepted, StatusRejected},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Label returns the human-readable form of the status for display.
func (s ApplicationStatus) Label() string {
	switch s {
	case StatusSubmitted:
		return "Submitted"
	case StatusReviewing:
		return "Under review"
	case StatusInterviewed:
		return "Interviewed"
	case StatusRejected:
		return "Rejected"
	case StatusAccepted:
		return "Accepted"
	default:
		return string(s)
	}
}

// Application is a candidate's submission for a job.
type Application struct {
	ID              string            `json:"id,omitempty"`
	JobID           string            `json:"jobId"`
	CandidateName   string            `json:"candidateName"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	ResumeURL       string            `json:"resumeUrl,omitempty"`
	CoverLetterText string            `json:"coverLetterText,omitempty"`
	ApplicationDate string            `json:"applicationDate,omitempty"`
	Status          ApplicationStatus `json:"status"`
}
