package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"

	"github.com/gm2dev/interviewhub-client/internal/api"
	"github.com/gm2dev/interviewhub-client/internal/config"
	"github.com/gm2dev/interviewhub-client/internal/keyvalue"
	"github.com/gm2dev/interviewhub-client/internal/logger"
	"github.com/gm2dev/interviewhub-client/internal/model"
	"github.com/gm2dev/interviewhub-client/internal/service"
	"github.com/gm2dev/interviewhub-client/internal/session"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
)

var errUsage = errors.New("usage error")

type app struct {
	session    *session.Store
	interviews *api.Interviews
	shadowing  *api.ShadowingRequests
	scheduler  *service.Interviews
	shadowSvc  *service.Shadowing
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	global := pflag.NewFlagSet("interviewhub", pflag.ContinueOnError)
	global.SetInterspersed(false)
	configPath := global.String("config", "", "path to YAML config file")
	if err := global.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	args := global.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logg := logger.New(cfg.LogLevel)

	if cfg.Session.DBPath == "" {
		logg.Fatal("session database path is not configured")
	}
	kv, err := keyvalue.OpenSQLite(cfg.Session.DBPath)
	if err != nil {
		logg.Fatal("failed to open session store", "error", err)
	}
	defer kv.Close()

	sess := session.NewStore(kv, cfg.API.BaseURL, logg)
	client := api.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.Timeout), sess, logg)
	interviews := api.NewInterviews(client)
	shadowing := api.NewShadowingRequests(client)

	a := &app{
		session:    sess,
		interviews: interviews,
		shadowing:  shadowing,
		scheduler:  service.NewInterviews(interviews, sess, logg),
		shadowSvc:  service.NewShadowing(shadowing, sess, logg),
	}

	if err := a.run(ctx, args[0], args[1:]); err != nil {
		if errors.Is(err, errUsage) {
			usage()
			os.Exit(2)
		}
		logg.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: interviewhub [--config FILE] COMMAND

Commands:
  login                         print the Google sign-in URL
  callback FRAGMENT             store the session returned by the sign-in callback
  whoami                        show the current session
  logout                        clear the session
  list [--page N] [--size N] [--sort FIELD,DIR]
  get ID
  create --tech-stack S --start "2006-01-02T15:04" [--duration MIN]
         [--candidate-name S] [--candidate-email S]
  update ID [same flags as create]
  cancel ID
  shadow request INTERVIEW_ID
  shadow approve  --interview INTERVIEW_ID REQUEST_ID
  shadow reject   --interview INTERVIEW_ID --reason S REQUEST_ID
  shadow cancel   --interview INTERVIEW_ID REQUEST_ID
  version`)
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		fmt.Println(a.session.LoginURL())
		return nil
	case "callback":
		return a.callback(args)
	case "whoami":
		return a.whoami()
	case "logout":
		return a.session.Logout()
	case "list":
		return a.list(ctx, args)
	case "get":
		return a.get(ctx, args)
	case "create":
		return a.create(ctx, args)
	case "update":
		return a.update(ctx, args)
	case "cancel":
		return a.cancelInterview(ctx, args)
	case "shadow":
		return a.shadow(ctx, args)
	case "version":
		fmt.Printf("interviewhub %s (built %s)\n", buildVersion, buildDate)
		return nil
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, command)
	}
}

func (a *app) callback(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: callback expects the fragment string", errUsage)
	}
	cb, err := session.ParseCallback(args[0])
	if err != nil {
		return err
	}
	if err := a.session.HandleCallback(cb.Token, cb.Email, cb.ExpiresIn); err != nil {
		return err
	}
	return a.whoami()
}

func (a *app) whoami() error {
	snap := a.session.Snapshot()
	if !snap.Authenticated {
		fmt.Println("not signed in")
		return nil
	}
	fmt.Printf("email:   %s\n", snap.Email)
	if snap.Subject != "" {
		fmt.Printf("subject: %s\n", snap.Subject)
	} else {
		fmt.Println("subject: unknown (token did not decode)")
	}
	return nil
}

func (a *app) list(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("list", pflag.ContinueOnError)
	page := fs.Int("page", 0, "zero-based page number")
	size := fs.Int("size", api.DefaultPageSize, "page size")
	sort := fs.String("sort", "", "sort as field,direction")
	if err := fs.Parse(args); err != nil {
		return err
	}

	result, err := a.interviews.List(ctx, api.ListParams{Page: *page, Size: *size, Sort: *sort})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTECH STACK\tSTART\tSTATUS\tINTERVIEWER")
	for _, iv := range result.Content {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			iv.ID, iv.TechStack, iv.StartTime.Local().Format("2006-01-02 15:04"),
			iv.Status, iv.Interviewer.Email)
	}
	w.Flush()
	fmt.Printf("page %d/%d, %d total\n", result.Number+1, max(result.TotalPages, 1), result.TotalElements)
	return nil
}

func (a *app) get(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		return err
	}
	iv, err := a.interviews.Get(ctx, id)
	if err != nil {
		return err
	}
	printInterview(iv)
	return nil
}

func (a *app) create(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("create", pflag.ContinueOnError)
	form := bindForm(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	created, err := a.scheduler.Schedule(ctx, *form, time.Local)
	if err != nil {
		return err
	}
	printInterview(created)
	return nil
}

func (a *app) update(ctx context.Context, args []string) error {
	fs := pflag.NewFlagSet("update", pflag.ContinueOnError)
	form := bindForm(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := argID(fs.Args())
	if err != nil {
		return err
	}

	iv, err := a.interviews.Get(ctx, id)
	if err != nil {
		return err
	}

	// Start from the pre-filled form and apply only the flags the
	// user actually set.
	merged := a.scheduler.EditForm(iv, time.Local)
	if fs.Changed("tech-stack") {
		merged.TechStack = form.TechStack
	}
	if fs.Changed("start") {
		merged.StartLocal = form.StartLocal
	}
	if fs.Changed("duration") {
		merged.DurationMinutes = form.DurationMinutes
	}
	if fs.Changed("candidate-name") {
		merged.CandidateName = form.CandidateName
	}
	if fs.Changed("candidate-email") {
		merged.CandidateEmail = form.CandidateEmail
	}

	updated, err := a.scheduler.Reschedule(ctx, iv, merged, time.Local)
	if err != nil {
		return err
	}
	printInterview(updated)
	return nil
}

func (a *app) cancelInterview(ctx context.Context, args []string) error {
	id, err := argID(args)
	if err != nil {
		return err
	}
	iv, err := a.interviews.Get(ctx, id)
	if err != nil {
		return err
	}
	return a.scheduler.Cancel(ctx, iv)
}

func (a *app) shadow(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: shadow expects a subcommand", errUsage)
	}
	action, args := args[0], args[1:]

	fs := pflag.NewFlagSet("shadow "+action, pflag.ContinueOnError)
	interviewID := fs.String("interview", "", "interview the request belongs to")
	reason := fs.String("reason", "", "rejection reason")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if action == "request" {
		id, err := argID(fs.Args())
		if err != nil {
			return err
		}
		iv, err := a.interviews.Get(ctx, id)
		if err != nil {
			return err
		}
		req, err := a.shadowSvc.Request(ctx, iv)
		if err != nil {
			return err
		}
		fmt.Printf("shadowing request %s is %s\n", req.ID, req.Status)
		return nil
	}

	requestID, err := argID(fs.Args())
	if err != nil {
		return err
	}
	req, err := a.findRequest(ctx, *interviewID, requestID)
	if err != nil {
		return err
	}

	var result model.ShadowingRequest
	switch action {
	case "approve":
		result, err = a.shadowSvc.Approve(ctx, req)
	case "reject":
		result, err = a.shadowSvc.Reject(ctx, req, *reason)
	case "cancel":
		result, err = a.shadowSvc.CancelRequest(ctx, req)
	default:
		return fmt.Errorf("%w: unknown shadow action %q", errUsage, action)
	}
	if err != nil {
		return err
	}
	fmt.Printf("shadowing request %s is %s\n", result.ID, result.Status)
	return nil
}

// findRequest resolves a shadowing request through its interview,
// attaching the back-reference the policy checks need.
func (a *app) findRequest(ctx context.Context, interviewID string, requestID uuid.UUID) (model.ShadowingRequest, error) {
	if interviewID == "" {
		return model.ShadowingRequest{}, fmt.Errorf("%w: --interview is required", errUsage)
	}
	ivID, err := uuid.Parse(interviewID)
	if err != nil {
		return model.ShadowingRequest{}, fmt.Errorf("failed to parse interview id: %w", err)
	}

	iv, err := a.interviews.Get(ctx, ivID)
	if err != nil {
		return model.ShadowingRequest{}, err
	}
	for _, req := range iv.ShadowingRequests {
		if req.ID == requestID {
			req.Interview = &iv
			return req, nil
		}
	}
	return model.ShadowingRequest{}, fmt.Errorf("shadowing request %s: %w", requestID, model.ErrNotFound)
}

func bindForm(fs *pflag.FlagSet) *service.ScheduleForm {
	form := &service.ScheduleForm{}
	fs.StringVar(&form.TechStack, "tech-stack", "", "tech stack of the interview")
	fs.StringVar(&form.CandidateName, "candidate-name", "", "candidate name")
	fs.StringVar(&form.CandidateEmail, "candidate-email", "", "candidate email")
	fs.StringVar(&form.StartLocal, "start", "", `local start time, "2006-01-02T15:04"`)
	fs.IntVar(&form.DurationMinutes, "duration", 60, "duration in minutes")
	return form
}

func argID(args []string) (uuid.UUID, error) {
	if len(args) != 1 {
		return uuid.Nil, fmt.Errorf("%w: expected exactly one id argument", errUsage)
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to parse id: %w", err)
	}
	return id, nil
}

func printInterview(iv model.Interview) {
	fmt.Printf("id:           %s\n", iv.ID)
	fmt.Printf("tech stack:   %s\n", iv.TechStack)
	fmt.Printf("interviewer:  %s\n", iv.Interviewer.Email)
	fmt.Printf("start:        %s\n", iv.StartTime.Local().Format("2006-01-02 15:04"))
	fmt.Printf("end:          %s\n", iv.EndTime.Local().Format("2006-01-02 15:04"))
	fmt.Printf("status:       %s\n", iv.Status)
	if name, ok := iv.CandidateInfo["name"].(string); ok {
		fmt.Printf("candidate:    %s\n", name)
	}
	if iv.GoogleEventID != "" {
		fmt.Printf("calendar:     %s\n", iv.GoogleEventID)
	}
	for _, req := range iv.ShadowingRequests {
		line := fmt.Sprintf("shadowing:    %s  %s  %s", req.ID, req.Shadower.Email, req.Status)
		if req.Reason != "" {
			line += "  (" + req.Reason + ")"
		}
		fmt.Println(line)
	}
}
