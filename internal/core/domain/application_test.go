package domain

import "testing"

func TestApplicationStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to ApplicationStatus
		want     bool
	}{
		{StatusSubmitted, StatusReviewing, true},
		{StatusSubmitted, StatusRejected, true},
		{StatusSubmitted, StatusInterviewed, false},
		{StatusSubmitted, StatusAccepted, false},
		{StatusReviewing, StatusInterviewed, true},
		{StatusReviewing, StatusRejected, true},
		{StatusReviewing, StatusAccepted, false},
		{StatusInterviewed, StatusAccepted, true},
		{StatusInterviewed, StatusRejected, true},
		{StatusInterviewed, StatusReviewing, false},
		{StatusAccepted, StatusRejected, false},
		{StatusRejected, StatusReviewing, false},
		{StatusSubmitted, StatusSubmitted, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestProfile_HasRole(t *testing.T) {
	p := &Profile{Roles: []string{RoleUser, RoleRecruiter}}

	if !p.HasRole(RoleUser) || !p.HasRole(RoleRecruiter) {
		t.Error("expected USER and RECRUITER roles")
	}
	if p.HasRole(RoleAdmin) {
		t.Error("did not expect ADMIN role")
	}

	var nilProfile *Profile
	if nilProfile.HasRole(RoleUser) {
		t.Error("nil profile must grant no roles")
	}
}

func TestApplicationStatus_Label(t *testing.T) {
	if StatusReviewing.Label() != "Under review" {
		t.Errorf("unexpected label %q", StatusReviewing.Label())
	}
	if ApplicationStatus("CUSTOM").Label() != "CUSTOM" {
		t.Error("unknown status must fall back to its raw value")
	}
}
