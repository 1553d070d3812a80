// Command portal is a terminal client for the job portal REST API. It keeps
// a login session between invocations, gates commands on the session's
// roles, and renders backend data as tables.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/pterm/pterm"

	"github.com/jobportal/portal-client/internal/cli"
	"github.com/jobportal/portal-client/internal/core/domain"
	"github.com/jobportal/portal-client/internal/core/ports"
	"github.com/jobportal/portal-client/internal/core/service"
	"github.com/jobportal/portal-client/internal/infrastructure/backend"
	"github.com/jobportal/portal-client/internal/infrastructure/config"
	"github.com/jobportal/portal-client/internal/infrastructure/session"
	"github.com/jobportal/portal-client/pkg/logger"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: portal <command> [flags]

Account
  login          Log in and store the session
  logout         Clear the stored session
  register       Create an account
  whoami         Show the current session

Jobs
  jobs           List or search jobs (-title, -keyword, -location, -company, -all)
  job            Show one job (-id)
  post-job       Post a job (recruiter)
  update-job     Update a job (-id, recruiter)
  delete-job     Delete a job (-id, recruiter)
  my-jobs        List jobs posted by a recruiter (-recruiter)

Applications
  apply          Apply to a job (-job, -name, -email, -phone)
  applications   List applications (-email, -job, -status, -all)
  application    Show one application (-id)
  review         Move an application through review (-id, -status)

Recruiters
  recruiters     Browse the recruiter directory (-email to search)

Admin
  stats          Show dashboard counters
  users          List user accounts
  user-status    Enable or disable an account (-id, -enabled)

Run 'portal <command> -h' for command flags.`)
}

// app bundles the wired client so command handlers stay short.
type app struct {
	session      *service.SessionManager
	auth         ports.AuthService
	jobs         ports.JobService
	applications ports.ApplicationService
	recruiters   ports.RecruiterService
	admin        ports.AdminService
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: !cfg.LogJSON})

	store, err := openStore(cfg)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}

	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				log.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	sessions := service.NewSessionManager(store, log)
	api := backend.NewClient(cfg.BaseURL, sessions, &http.Client{Timeout: cfg.Timeout}, log)

	a := &app{
		session:      sessions,
		auth:         service.NewAuthService(api, sessions, log),
		jobs:         service.NewJobService(api, log),
		applications: service.NewApplicationService(api, log),
		recruiters:   service.NewRecruiterService(api, log),
		admin:        service.NewAdminService(api, log),
	}

	if err := a.run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		cli.Error(err)
		os.Exit(1)
	}
}

// openStore picks the session medium from configuration.
func openStore(cfg *config.Config) (ports.SessionStore, error) {
	switch cfg.Session.Backend {
	case "memory":
		return session.NewMemoryStore(), nil
	case "file":
		return session.NewFileStore(cfg.Session.File), nil
	case "redis":
		client, err := session.Connect(context.Background(), session.Config{
			Addr: cfg.Session.Redis.Addr,
			DB:   cfg.Session.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		return session.NewRedisStore(client), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "logout":
		a.auth.Logout()
		cli.Success("Logged out.")
		return nil
	case "register":
		return a.register(ctx, args)
	case "whoami", "profile":
		cli.Profile(a.session.Profile(), a.session.Visibility())
		return nil
	case "jobs":
		return a.listJobs(ctx, args)
	case "job":
		return a.showJob(ctx, args)
	case "post-job":
		return a.postJob(ctx, args)
	case "update-job":
		return a.updateJob(ctx, args)
	case "delete-job":
		return a.deleteJob(ctx, args)
	case "my-jobs":
		return a.myJobs(ctx, args)
	case "apply":
		return a.apply(ctx, args)
	case "applications":
		return a.listApplications(ctx, args)
	case "application":
		return a.showApplication(ctx, args)
	case "review":
		return a.review(ctx, args)
	case "recruiters":
		return a.listRecruiters(ctx, args)
	case "stats":
		return a.stats(ctx)
	case "users":
		return a.users(ctx)
	case "user-status":
		return a.userStatus(ctx, args)
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	username := fs.String("username", "", "Account username")
	password := fs.String("password", "", "Account password (prompted when omitted)")
	fs.Parse(args)

	if *username == "" {
		return fmt.Errorf("-username is required")
	}
	if *password == "" {
		entered, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
		if err != nil {
			return err
		}
		*password = entered
	}

	stop := cli.Busy("Logging in")
	profile, err := a.auth.Login(ctx, *username, *password)
	stop()
	if err != nil {
		return err
	}
	cli.Success(fmt.Sprintf("Logged in as %s (%s).", profile.Username, strings.Join(profile.Roles, ", ")))
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	username := fs.String("username", "", "Account username")
	email := fs.String("email", "", "Email address")
	password := fs.String("password", "", "Password")
	confirm := fs.String("confirm", "", "Password confirmation")
	role := fs.String("role", domain.RoleUser, "Account role (USER or RECRUITER)")
	company := fs.String("company", "", "Company (recruiters)")
	phone := fs.String("phone", "", "Phone (recruiters)")
	position := fs.String("position", "", "Position (recruiters)")
	fs.Parse(args)

	result, err := a.auth.Register(ctx, ports.RegisterInput{
		Username:        *username,
		Email:           *email,
		Password:        *password,
		ConfirmPassword: *confirm,
		Role:            *role,
		Company:         *company,
		Phone:           *phone,
		Position:        *position,
	})
	if err != nil {
		return err
	}
	cli.Success(result.Message)
	return nil
}

func (a *app) listJobs(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("jobs", flag.ExitOnError)
	title := fs.String("title", "", "Search by title")
	keyword := fs.String("keyword", "", "Search descriptions and skills by keyword")
	location := fs.String("location", "", "Filter by location")
	company := fs.String("company", "", "Filter by company")
	all := fs.Bool("all", false, "Fetch the entire listing unpaged")
	page, size := pageFlags(fs)
	fs.Parse(args)

	stop := cli.Busy("Fetching jobs")
	defer stop()

	switch {
	case *keyword != "":
		jobs, err := a.jobs.SearchKeyword(ctx, *keyword)
		if err != nil {
			return err
		}
		stop()
		cli.Jobs(jobs)
	case *title != "":
		result, err := a.jobs.SearchTitle(ctx, *title, *page, *size)
		if err != nil {
			return err
		}
		stop()
		cli.JobsPage(result)
	case *location != "":
		result, err := a.jobs.ByLocation(ctx, *location, *page, *size)
		if err != nil {
			return err
		}
		stop()
		cli.JobsPage(result)
	case *company != "":
		result, err := a.jobs.ByCompany(ctx, *company, *page, *size)
		if err != nil {
			return err
		}
		stop()
		cli.JobsPage(result)
	case *all:
		jobs, err := a.jobs.ListAll(ctx)
		if err != nil {
			return err
		}
		stop()
		cli.Jobs(jobs)
	default:
		result, err := a.jobs.List(ctx, *page, *size)
		if err != nil {
			return err
		}
		stop()
		cli.JobsPage(result)
	}
	return nil
}

func (a *app) showJob(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("job", flag.ExitOnError)
	id := fs.String("id", "", "Job id")
	fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	job, err := a.jobs.Get(ctx, *id)
	if err != nil {
		return err
	}
	cli.Job(job)
	return nil
}

// jobFlags defines the shared posting form for post-job and update-job.
func jobFlags(fs *flag.FlagSet) func() ports.JobInput {
	title := fs.String("title", "", "Job title")
	company := fs.String("company", "", "Company name")
	description := fs.String("description", "", "Job description")
	skills := fs.String("skills", "", "Comma-separated required skills")
	minSalary := fs.Float64("min-salary", 0, "Minimum salary")
	maxSalary := fs.Float64("max-salary", 0, "Maximum salary")
	location := fs.String("location", "", "Job location")
	employmentType := fs.String("type", "", "Employment type (e.g. FULL_TIME)")
	deadline := fs.String("deadline", "", "Application deadline (yyyy-mm-dd)")
	active := fs.Bool("active", true, "Whether the posting is open")

	return func() ports.JobInput {
		var skillList []string
		for _, s := range strings.Split(*skills, ",") {
			if s = strings.TrimSpace(s); s != "" {
				skillList = append(skillList, s)
			}
		}
		return ports.JobInput{
			Title:          *title,
			Company:        *company,
			Description:    *description,
			RequiredSkills: skillList,
			MinSalary:      *minSalary,
			MaxSalary:      *maxSalary,
			Location:       *location,
			EmploymentType: *employmentType,
			DeadlineDate:   *deadline,
			Active:         *active,
		}
	}
}

func (a *app) postJob(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("post-job", flag.ExitOnError)
	input := jobFlags(fs)
	fs.Parse(args)

	if !a.session.Visibility().RecruiterOnly {
		return fmt.Errorf("posting jobs requires a recruiter account")
	}
	job, err := a.jobs.Create(ctx, input())
	if err != nil {
		return err
	}
	cli.Success("Job posted: " + job.ID)
	return nil
}

func (a *app) updateJob(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update-job", flag.ExitOnError)
	id := fs.String("id", "", "Job id")
	input := jobFlags(fs)
	fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	if !a.session.Visibility().RecruiterOnly {
		return fmt.Errorf("updating jobs requires a recruiter account")
	}
	job, err := a.jobs.Update(ctx, *id, input())
	if err != nil {
		return err
	}
	cli.Success("Job updated: " + job.ID)
	return nil
}

func (a *app) deleteJob(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete-job", flag.ExitOnError)
	id := fs.String("id", "", "Job id")
	fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	if err := a.jobs.Delete(ctx, *id); err != nil {
		return err
	}
	cli.Success("Job deleted.")
	return nil
}

func (a *app) myJobs(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("my-jobs", flag.ExitOnError)
	recruiterID := fs.String("recruiter", "", "Recruiter id (defaults to the recruiter record for the logged-in email)")
	page, size := pageFlags(fs)
	fs.Parse(args)

	id := *recruiterID
	if id == "" {
		profile := a.session.Profile()
		if profile == nil {
			return fmt.Errorf("not logged in; pass -recruiter or log in first")
		}
		recruiter, err := a.recruiters.SearchByEmail(ctx, profile.Email)
		if err != nil {
			return err
		}
		if recruiter == nil {
			return fmt.Errorf("no recruiter profile found for %s", profile.Email)
		}
		id = recruiter.ID
	}

	result, err := a.jobs.ByRecruiter(ctx, id, *page, *size)
	if err != nil {
		return err
	}
	cli.JobsPage(result)
	return nil
}

func (a *app) apply(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	jobID := fs.String("job", "", "Job id")
	name := fs.String("name", "", "Candidate name")
	email := fs.String("email", "", "Contact email")
	phone := fs.String("phone", "", "Contact phone")
	resume := fs.String("resume", "", "Resume URL")
	cover := fs.String("cover", "", "Cover letter text")
	fs.Parse(args)

	appl, err := a.applications.Submit(ctx, ports.ApplyInput{
		JobID:           *jobID,
		CandidateName:   *name,
		Email:           *email,
		Phone:           *phone,
		ResumeURL:       *resume,
		CoverLetterText: *cover,
	})
	if err != nil {
		return err
	}
	cli.Success("Application submitted: " + appl.ID)
	return nil
}

func (a *app) listApplications(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("applications", flag.ExitOnError)
	email := fs.String("email", "", "Filter by candidate email")
	jobID := fs.String("job", "", "Filter by job id")
	status := fs.String("status", "", "Filter by review status")
	all := fs.Bool("all", false, "Fetch the entire listing unpaged")
	page, size := pageFlags(fs)
	fs.Parse(args)

	switch {
	case *jobID != "":
		apps, err := a.applications.ByJob(ctx, *jobID)
		if err != nil {
			return err
		}
		cli.Applications(apps)
	case *email != "":
		result, err := a.applications.ByEmail(ctx, *email, *page, *size)
		if err != nil {
			return err
		}
		cli.ApplicationsPage(result)
	case *status != "":
		result, err := a.applications.ByStatus(ctx, domain.ApplicationStatus(strings.ToUpper(*status)), *page, *size)
		if err != nil {
			return err
		}
		cli.ApplicationsPage(result)
	case *all:
		apps, err := a.applications.ListAll(ctx)
		if err != nil {
			return err
		}
		cli.Applications(apps)
	default:
		result, err := a.applications.List(ctx, *page, *size)
		if err != nil {
			return err
		}
		cli.ApplicationsPage(result)
	}
	return nil
}

func (a *app) showApplication(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("application", flag.ExitOnError)
	id := fs.String("id", "", "Application id")
	fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	appl, err := a.applications.Get(ctx, *id)
	if err != nil {
		return err
	}
	cli.Application(appl)
	return nil
}

func (a *app) review(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("review", flag.ExitOnError)
	id := fs.String("id", "", "Application id")
	status := fs.String("status", "", "New status (REVIEWING, INTERVIEWED, ACCEPTED, REJECTED)")
	fs.Parse(args)
	if *id == "" || *status == "" {
		return fmt.Errorf("-id and -status are required")
	}

	if !a.session.Visibility().RecruiterOnly {
		return fmt.Errorf("reviewing applications requires a recruiter account")
	}
	appl, err := a.applications.UpdateStatus(ctx, *id, domain.ApplicationStatus(strings.ToUpper(*status)))
	if err != nil {
		return err
	}
	cli.Success("Application " + appl.ID + " is now " + appl.Status.Label() + ".")
	return nil
}

func (a *app) listRecruiters(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("recruiters", flag.ExitOnError)
	email := fs.String("email", "", "Look up a recruiter by email")
	page, size := pageFlags(fs)
	fs.Parse(args)

	if *email != "" {
		recruiter, err := a.recruiters.SearchByEmail(ctx, *email)
		if err != nil {
			return err
		}
		if recruiter == nil {
			pterm.Info.Println("No recruiter found for " + *email + ".")
			return nil
		}
		cli.Recruiters(&domain.Page[domain.Recruiter]{
			Content: []domain.Recruiter{*recruiter}, TotalElements: 1, TotalPages: 1,
		})
		return nil
	}

	result, err := a.recruiters.List(ctx, *page, *size)
	if err != nil {
		return err
	}
	cli.Recruiters(result)
	return nil
}

func (a *app) stats(ctx context.Context) error {
	if !a.session.Visibility().AdminOnly {
		return fmt.Errorf("the dashboard requires an admin account")
	}
	stats, err := a.admin.Stats(ctx)
	if err != nil {
		return err
	}
	cli.Stats(stats)
	return nil
}

func (a *app) users(ctx context.Context) error {
	if !a.session.Visibility().AdminOnly {
		return fmt.Errorf("listing users requires an admin account")
	}
	users, err := a.admin.Users(ctx)
	if err != nil {
		return err
	}
	cli.Users(users)
	return nil
}

func (a *app) userStatus(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("user-status", flag.ExitOnError)
	id := fs.String("id", "", "User id")
	enabled := fs.Bool("enabled", true, "Whether the account may log in")
	fs.Parse(args)
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	if !a.session.Visibility().AdminOnly {
		return fmt.Errorf("changing account status requires an admin account")
	}
	if err := a.admin.SetUserStatus(ctx, *id, *enabled); err != nil {
		return err
	}
	if *enabled {
		cli.Success("Account enabled.")
	} else {
		cli.Success("Account disabled.")
	}
	return nil
}

func pageFlags(fs *flag.FlagSet) (*int, *int) {
	page := fs.Int("page", 0, "Zero-based page number")
	size := fs.Int("size", 10, "Page size")
	return page, size
}
