package cli

import "testing"

func TestStripHTML(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"plain text", "Build backend services", "Build backend services"},
		{"tags removed", "<p>Build <b>backend</b> services</p>", "Build backend services"},
		{"nested markup", "<div><ul><li>Go</li><li>SQL</li></ul></div>", "Go SQL"},
		{"whitespace collapsed", "  Build\n\tbackend   services ", "Build backend services"},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StripHTML(tc.in); got != tc.want {
				t.Errorf("StripHTML(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSalary(t *testing.T) {
	if got := Salary(90000, 120000); got != "$90,000 - $120,000" {
		t.Errorf("unexpected band %q", got)
	}
	if got := Salary(90000, 0); got != "$90,000+" {
		t.Errorf("unexpected open band %q", got)
	}
}

func TestDate(t *testing.T) {
	if got := Date(""); got != "-" {
		t.Errorf("empty date should render as dash, got %q", got)
	}
	if got := Date("not-a-date"); got != "not-a-date" {
		t.Errorf("unparsable date should pass through, got %q", got)
	}
}
