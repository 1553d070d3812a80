package validate

import (
	"strings"
	"testing"
)

type sampleForm struct {
	Username        string  `validate:"required,min=3,max=20"`
	Email           string  `validate:"required,email"`
	Password        string  `validate:"required,min=6"`
	ConfirmPassword string  `validate:"required,eqfield=Password"`
	Role            string  `validate:"omitempty,oneof=USER RECRUITER"`
	MinSalary       float64 `validate:"omitempty,gt=0"`
}

func validForm() sampleForm {
	return sampleForm{
		Username:        "alice",
		Email:           "alice@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
		Role:            "USER",
		MinSalary:       90000,
	}
}

func TestStruct_Valid(t *testing.T) {
	if err := Struct(validForm()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStruct_MessagesAreHumanReadable(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*sampleForm)
		want   string
	}{
		{"required", func(f *sampleForm) { f.Username = "" }, "username is required"},
		{"email", func(f *sampleForm) { f.Email = "nope" }, "email must be a valid email"},
		{"min length", func(f *sampleForm) { f.Username = "ab" }, "username must be at least 3 characters"},
		{"eqfield", func(f *sampleForm) { f.ConfirmPassword = "other" }, "confirmpassword must match password"},
		{"oneof", func(f *sampleForm) { f.Role = "ADMIN" }, "role must be one of: USER RECRUITER"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)

			err := Struct(form)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("expected message containing %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestStruct_JoinsMultipleFailures(t *testing.T) {
	err := Struct(sampleForm{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "; ") {
		t.Errorf("expected joined messages, got %q", err.Error())
	}
}
