// Package cli renders domain values for the terminal. It owns all pterm
// output so the service layer stays presentation-free.
package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/jobportal/portal-client/internal/core/domain"
	"github.com/jobportal/portal-client/internal/core/service"
)

// Error prints a request failure. Session invalidation gets the dedicated
// "logged out" treatment so the user knows why their next call will be
// anonymous.
func Error(err error) {
	if errors.Is(err, domain.ErrSessionInvalidated) {
		pterm.Warning.Println("Session expired. You have been logged out; run 'portal login' to continue.")
		return
	}
	pterm.Error.Println(err.Error())
}

// Success prints a green confirmation line.
func Success(msg string) {
	pterm.Success.Println(msg)
}

// Busy shows a spinner for the duration of a backend call. The returned
// stop function is safe to call even when the spinner failed to start.
func Busy(text string) func() {
	spinner, err := pterm.DefaultSpinner.Start(text)
	if err != nil {
		return func() {}
	}
	return func() { _ = spinner.Stop() }
}

// Salary renders a job's salary band, eliding the unset upper bound.
func Salary(min, max float64) string {
	if max > 0 {
		return fmt.Sprintf("$%s - $%s", humanize.Comma(int64(min)), humanize.Comma(int64(max)))
	}
	return fmt.Sprintf("$%s+", humanize.Comma(int64(min)))
}

// Date renders an ISO date as a relative time ("3 days ago") when it
// parses, falling back to the raw value.
func Date(iso string) string {
	if iso == "" {
		return "-"
	}
	t, err := time.Parse(time.DateOnly, iso)
	if err != nil {
		return iso
	}
	return humanize.Time(t)
}

// Jobs renders a job listing table.
func Jobs(jobs []domain.Job) {
	if len(jobs) == 0 {
		pterm.Info.Println("No jobs found.")
		return
	}
	data := pterm.TableData{{"ID", "Title", "Company", "Location", "Type", "Salary", "Posted"}}
	for _, j := range jobs {
		data = append(data, []string{
			j.ID, j.Title, j.Company, j.Location, j.EmploymentType,
			Salary(j.MinSalary, j.MaxSalary), Date(j.PostDate),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// JobsPage renders one page of jobs with a footer line.
func JobsPage(page *domain.Page[domain.Job]) {
	Jobs(page.Content)
	pageFooter(page.Number, page.TotalPages, page.TotalElements)
}

// Job renders a single job in full.
func Job(j *domain.Job) {
	pterm.DefaultSection.Println(j.Title)
	data := pterm.TableData{
		{"Company", j.Company},
		{"Location", j.Location},
		{"Type", j.EmploymentType},
		{"Salary", Salary(j.MinSalary, j.MaxSalary)},
		{"Skills", strings.Join(j.RequiredSkills, ", ")},
		{"Posted", Date(j.PostDate)},
		{"Deadline", valueOrDash(j.DeadlineDate)},
		{"Active", fmt.Sprint(j.Active)},
	}
	_ = pterm.DefaultTable.WithData(data).Render()
	if j.Description != "" {
		fmt.Println(StripHTML(j.Description))
	}
}

// Applications renders an application listing table.
func Applications(apps []domain.Application) {
	if len(apps) == 0 {
		pterm.Info.Println("No applications found.")
		return
	}
	data := pterm.TableData{{"ID", "Job", "Candidate", "Email", "Status", "Applied"}}
	for _, a := range apps {
		data = append(data, []string{
			a.ID, a.JobID, a.CandidateName, a.Email, a.Status.Label(), Date(a.ApplicationDate),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// ApplicationsPage renders one page of applications with a footer line.
func ApplicationsPage(page *domain.Page[domain.Application]) {
	Applications(page.Content)
	pageFooter(page.Number, page.TotalPages, page.TotalElements)
}

// Application renders a single application in full.
func Application(a *domain.Application) {
	pterm.DefaultSection.Println("Application " + a.ID)
	data := pterm.TableData{
		{"Job", a.JobID},
		{"Candidate", a.CandidateName},
		{"Email", a.Email},
		{"Phone", a.Phone},
		{"Resume", valueOrDash(a.ResumeURL)},
		{"Status", a.Status.Label()},
		{"Applied", Date(a.ApplicationDate)},
	}
	_ = pterm.DefaultTable.WithData(data).Render()
	if a.CoverLetterText != "" {
		fmt.Println(StripHTML(a.CoverLetterText))
	}
}

// Recruiters renders the recruiter directory table.
func Recruiters(page *domain.Page[domain.Recruiter]) {
	if len(page.Content) == 0 {
		pterm.Info.Println("No recruiters found.")
		return
	}
	data := pterm.TableData{{"ID", "Name", "Company", "Position", "Email", "Phone"}}
	for _, r := range page.Content {
		data = append(data, []string{
			r.ID, r.Name, r.Company, valueOrDash(r.Position), r.Email, valueOrDash(r.Phone),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	pageFooter(page.Number, page.TotalPages, page.TotalElements)
}

// Stats renders the admin dashboard counters.
func Stats(s *domain.DashboardStats) {
	data := pterm.TableData{
		{"Users", humanize.Comma(s.TotalUsers)},
		{"Jobs", humanize.Comma(s.TotalJobs)},
		{"Applications", humanize.Comma(s.TotalApplications)},
		{"Recruiters", humanize.Comma(s.TotalRecruiters)},
	}
	_ = pterm.DefaultTable.WithData(data).Render()
}

// Users renders the admin user listing.
func Users(users []domain.AdminUser) {
	if len(users) == 0 {
		pterm.Info.Println("No users found.")
		return
	}
	data := pterm.TableData{{"ID", "Username", "Email", "Roles", "Enabled"}}
	for _, u := range users {
		data = append(data, []string{
			u.ID, u.Username, u.Email, strings.Join(u.Roles, ", "), fmt.Sprint(u.Enabled),
		})
	}
	_ = pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// Profile renders the current session's identity and what it may see.
func Profile(p *domain.Profile, vis service.Visibility) {
	if p == nil {
		pterm.Info.Println("Not logged in.")
		return
	}
	data := pterm.TableData{
		{"Username", p.Username},
		{"Email", p.Email},
		{"Roles", strings.Join(p.Roles, ", ")},
	}
	_ = pterm.DefaultTable.WithData(data).Render()

	var areas []string
	if vis.UserOnly {
		areas = append(areas, "job search")
	}
	if vis.RecruiterOnly {
		areas = append(areas, "recruiter tools")
	}
	if vis.AdminOnly {
		areas = append(areas, "admin dashboard")
	}
	pterm.Info.Println("Access: " + strings.Join(areas, ", "))
}

func pageFooter(number, totalPages int, totalElements int64) {
	pterm.Info.Printfln("Page %d of %d (%s total)", number+1, totalPages, humanize.Comma(totalElements))
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
