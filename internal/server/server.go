package server

import (
	"context"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"sync"
	"time"

	"volunteerhub/internal/moderation"
	"volunteerhub/internal/notify"
	"volunteerhub/internal/store"
	"volunteerhub/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/securecookie"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

//go:embed templates static
var uiFS embed.FS

var (
	decoder  = form.NewDecoder()
	validate = validator.New()
)

type Service struct {
	logger    *logrus.Logger
	config    *types.Config
	templates *template.Template

	opportunities *store.OpportunityRepository
	submissions   *store.SubmissionRepository
	preferences   *store.PreferenceRepository
	notifications *store.NotificationRepository
	users         *store.UserRepository
	organizations *store.OrganizationRepository

	gate      *moderation.Gate
	scheduler *moderation.Scheduler
	toaster   *notify.Toaster

	cookie *securecookie.SecureCookie

	// baseCtx scopes every scheduled approval task; Stop cancels it so no
	// task fires after shutdown.
	baseCtx       context.Context
	cancelBaseCtx context.CancelFunc

	// Armed review timers keyed by opportunity ID, so a manual approve or
	// reject can disarm the pending one.
	approvalMu      sync.Mutex
	approvalCancels map[string]context.CancelFunc

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	opportunities *store.OpportunityRepository,
	submissions *store.SubmissionRepository,
	preferences *store.PreferenceRepository,
	notifications *store.NotificationRepository,
	users *store.UserRepository,
	organizations *store.OrganizationRepository,
	gate *moderation.Gate,
	scheduler *moderation.Scheduler,
) (*Service, error) {
	mux := flow.New()

	hashKey, _ := base64.StdEncoding.DecodeString(config.CookieHashKey)
	blockKey, _ := base64.StdEncoding.DecodeString(config.CookieBlockKey)

	baseCtx, cancel := context.WithCancel(context.Background())

	s := &Service{
		logger: logger,
		config: config,
		cookie: securecookie.New(hashKey, blockKey),

		opportunities: opportunities,
		submissions:   submissions,
		preferences:   preferences,
		notifications: notifications,
		users:         users,
		organizations: organizations,

		gate:      gate,
		scheduler: scheduler,
		toaster:   notify.NewToaster(),

		baseCtx:         baseCtx,
		cancelBaseCtx:   cancel,
		approvalCancels: make(map[string]context.CancelFunc),

		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			Handler:           mux,
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	s.templates = templates

	s.buildRouter(mux)

	return s, nil
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	s.cancelBaseCtx()
	s.scheduler.Wait()
	return s.server.Shutdown(ctx)
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.Use(s.StripTrailingSlash)
	r.Use(s.LoggingMiddleware)
	r.Use(s.MetricsMiddleware)

	r.HandleFunc("/login", s.handleGetLogin, http.MethodGet)
	r.HandleFunc("/login", s.handlePostLogin, http.MethodPost)
	r.HandleFunc("/register", s.handleGetRegister, http.MethodGet)
	r.HandleFunc("/register", s.handlePostRegister, http.MethodPost)
	r.HandleFunc("/logout", s.handlePostLogout, http.MethodPost)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)
	r.Handle("/metrics", promhttp.Handler(), http.MethodGet)

	staticRoot, _ := fs.Sub(uiFS, "static")
	r.Handle("/static/...", http.StripPrefix("/static/", http.FileServer(http.FS(staticRoot))), http.MethodGet)

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireSession)

		r.HandleFunc("/", s.handleHome, http.MethodGet)
		r.HandleFunc("/opportunities", s.handleAllOpportunities, http.MethodGet)
		r.HandleFunc("/opportunity/:id", s.handleOpportunityDetail, http.MethodGet)

		r.HandleFunc("/onboarding", s.handleGetOnboarding, http.MethodGet)
		r.HandleFunc("/onboarding", s.handlePostOnboarding, http.MethodPost)
		r.HandleFunc("/onboarding/organization", s.handleGetOrganizationOnboarding, http.MethodGet)
		r.HandleFunc("/onboarding/organization", s.handlePostOrganizationOnboarding, http.MethodPost)

		r.HandleFunc("/signup/:id", s.handleGetSignupForm, http.MethodGet)
		r.HandleFunc("/signup/:id", s.handlePostSignupForm, http.MethodPost)
		r.HandleFunc("/withdraw/:id", s.handlePostWithdraw, http.MethodPost)

		r.HandleFunc("/my-opportunities", s.handleMyOpportunities, http.MethodGet)
		r.HandleFunc("/profile", s.handleProfile, http.MethodGet)

		r.HandleFunc("/organization/opportunity/new", s.handleGetNewOpportunity, http.MethodGet)
		r.HandleFunc("/organization/opportunity/new", s.handlePostNewOpportunity, http.MethodPost)
		r.HandleFunc("/organization/opportunity/:id/edit", s.handleGetEditOpportunity, http.MethodGet)
		r.HandleFunc("/organization/opportunity/:id/edit", s.handlePostEditOpportunity, http.MethodPost)
		r.HandleFunc("/organization/opportunity/:id/delete", s.handlePostDeleteOpportunity, http.MethodPost)
		r.HandleFunc("/organization/opportunity/:id/applications", s.handleApplications, http.MethodGet)
		r.HandleFunc("/organization/opportunity/:id/applications/:submissionID/complete", s.handlePostCompleteSubmission, http.MethodPost)

		r.HandleFunc("/notifications", s.handleNotifications, http.MethodGet)
		r.HandleFunc("/notifications/:id/read", s.handlePostNotificationRead, http.MethodPost)
		r.HandleFunc("/notifications/read-all", s.handlePostNotificationsReadAll, http.MethodPost)
		r.HandleFunc("/notifications/:id/delete", s.handlePostNotificationDelete, http.MethodPost)
		r.HandleFunc("/notifications/clear", s.handlePostNotificationsClear, http.MethodPost)

		r.HandleFunc("/toast/:id/dismiss", s.handlePostToastDismiss, http.MethodPost)
	})

	r.Group(func(r *flow.Mux) {
		r.Use(s.RequireSession)
		r.Use(s.RequireAdmin)

		r.HandleFunc("/admin", s.handleAdminDashboard, http.MethodGet)
		r.HandleFunc("/admin/approve/:id", s.handlePostApprove, http.MethodPost)
		r.HandleFunc("/admin/reject/:id", s.handlePostReject, http.MethodPost)
	})
}

func loadTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"percent": func(a, b int) int {
			if b == 0 {
				return 0
			}
			return a * 100 / b
		},
		"title": func(s string) string {
			if s == "" {
				return s
			}
			return strings.ToUpper(s[:1]) + s[1:]
		},
	}

	t := template.New("").Funcs(funcMap)
	err := fs.WalkDir(uiFS, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".html") {
			return nil
		}

		data, err := fs.ReadFile(uiFS, path)
		if err != nil {
			return fmt.Errorf("read template %s: %w", path, err)
		}

		if _, err := t.Parse(string(data)); err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return t, nil
}
