// Package server provides the HTTP REST API of the job application tracker.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/config"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/dashboard"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/forms"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/notify"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/retry"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/server/middleware"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/server/ratelimit"
	"github.com/pape-dev/Dashboard-Gestion-Candidatures-sub001/internal/uploads"
)

// maxJSONBody bounds JSON request bodies.
const maxJSONBody = 1 << 20

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	handler     http.Handler
	store       Store
	loader      *dashboard.Loader
	notifier    notify.Notifier
	forms       *forms.Validator
	uploads     uploads.Policy
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler

	appName        string
	appVersion     string
	analytics      bool
	errorReporting bool
	now            func() time.Time
}

// New wires the API on top of store. The caller owns store and closes it after Start returns.
func New(cfg *config.Config, store Store, notifier notify.Notifier) (*Server, error) {
	if err := cfg.JWT.RequireSecret(); err != nil {
		return nil, fmt.Errorf("invalid JWT config: %w", err)
	}
	if notifier == nil {
		notifier = notify.LogNotifier{}
	}

	s := &Server{
		store:          store,
		loader:         dashboard.NewLoader(store, cfg.MaxRetryAttempts, retry.DefaultBaseDelay),
		notifier:       notifier,
		forms:          forms.New(),
		uploads:        uploads.Policy{MaxSize: cfg.MaxFileSize, AllowedTypes: cfg.AllowedFileTypes},
		rateLimiter:    ratelimit.NewLimiter(ratelimit.LoadConfig()),
		appName:        cfg.AppName,
		appVersion:     cfg.AppVersion,
		analytics:      cfg.EnableAnalytics,
		errorReporting: cfg.EnableErrorReporting,
		now:            time.Now,
	}

	passwordConfig := cfg.Password
	jwtConfig := cfg.JWT
	s.userService = NewUserService(store, &passwordConfig)
	s.jwtService = NewJWTService(&jwtConfig, cfg.AppName)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService, s)

	s.handler = s.withRateLimit(s.withLogging(s.withCORS(s.routes())))
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	authed := middleware.AuthMiddleware(s.jwtService.AsTokenValidator())
	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, authed(h))
	}

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /v1/auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", s.authHandler.Login)

	// Account
	handle("GET /v1/auth/me", s.authHandler.Me)
	handle("PUT /v1/auth/password", s.authHandler.UpdatePassword)
	handle("DELETE /v1/account", s.authHandler.DeleteAccount)
	handle("GET /v1/profile", s.handleGetProfile)
	handle("PUT /v1/profile", s.handleUpdateProfile)

	// Dashboard
	handle("GET /v1/dashboard", s.handleDashboard)

	// Applications
	handle("GET /v1/applications", s.handleListApplications)
	handle("POST /v1/applications", s.handleCreateApplication)
	handle("GET /v1/applications/{id}", s.handleGetApplication)
	handle("PUT /v1/applications/{id}", s.handleUpdateApplication)
	handle("PATCH /v1/applications/{id}/status", s.handleUpdateApplicationStatus)
	handle("DELETE /v1/applications/{id}", s.handleDeleteApplication)

	// Interviews
	handle("GET /v1/interviews", s.handleListInterviews)
	handle("POST /v1/interviews", s.handleCreateInterview)
	handle("GET /v1/interviews/{id}", s.handleGetInterview)
	handle("PUT /v1/interviews/{id}", s.handleUpdateInterview)
	handle("DELETE /v1/interviews/{id}", s.handleDeleteInterview)

	// Contacts
	handle("GET /v1/contacts", s.handleListContacts)
	handle("POST /v1/contacts", s.handleCreateContact)
	handle("GET /v1/contacts/{id}", s.handleGetContact)
	handle("PUT /v1/contacts/{id}", s.handleUpdateContact)
	handle("DELETE /v1/contacts/{id}", s.handleDeleteContact)

	// Tasks
	handle("GET /v1/tasks", s.handleListTasks)
	handle("POST /v1/tasks", s.handleCreateTask)
	handle("GET /v1/tasks/{id}", s.handleGetTask)
	handle("PUT /v1/tasks/{id}", s.handleUpdateTask)
	handle("PATCH /v1/tasks/{id}/status", s.handleUpdateTaskStatus)
	handle("DELETE /v1/tasks/{id}", s.handleDeleteTask)

	// Profile items
	handle("GET /v1/experiences", s.handleListExperiences)
	handle("POST /v1/experiences", s.handleCreateExperience)
	handle("PUT /v1/experiences/{id}", s.handleUpdateExperience)
	handle("DELETE /v1/experiences/{id}", s.handleDeleteExperience)
	handle("GET /v1/skills", s.handleListSkills)
	handle("POST /v1/skills", s.handleCreateSkill)
	handle("PUT /v1/skills/{id}", s.handleUpdateSkill)
	handle("DELETE /v1/skills/{id}", s.handleDeleteSkill)
	handle("GET /v1/social-links", s.handleListSocialLinks)
	handle("POST /v1/social-links", s.handleCreateSocialLink)
	handle("DELETE /v1/social-links/{id}", s.handleDeleteSocialLink)

	// Documents
	handle("GET /v1/documents", s.handleListDocuments)
	handle("POST /v1/documents", s.handleUploadDocument)
	handle("GET /v1/documents/{id}/content", s.handleDownloadDocument)
	handle("DELETE /v1/documents/{id}", s.handleDeleteDocument)

	return mux
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Start begins listening for requests and blocks until SIGINT or SIGTERM
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Printf("[server] %s %s listening on %s", s.appName, s.appVersion, s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-stop:
	case err := <-errCh:
		s.Close()
		return fmt.Errorf("server error: %w", err)
	}
	log.Println("[server] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.Close()
	log.Println("[server] stopped")
	return nil
}

// Close releases background resources. The store is left open.
func (s *Server) Close() {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder remembers the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging logs each request with its status and duration
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Printf("[%s] %s %d in %v", r.Method, r.URL.Path, rec.status, time.Since(start))
		if s.analytics && r.Method != http.MethodGet && rec.status < 400 {
			log.Printf("[analytics] event=%s path=%s", r.Method, r.URL.Path)
		}
	})
}

// withRateLimit rejects clients over their quota with 429
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := s.rateLimiter.Allow(s.extractClientID(r), r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// handleHealth reports whether the database answers
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	body := map[string]string{"status": "ok", "app": s.appName, "version": s.appVersion}
	if err := s.store.Ping(ctx); err != nil {
		log.Printf("[server] health check failed: %v", err)
		body["status"] = "unavailable"
		s.jsonResponse(w, http.StatusServiceUnavailable, body)
		return
	}
	s.jsonResponse(w, http.StatusOK, body)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[server] error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// fail reports err to the user both as the response and as an error notice titled title.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, title string, err error) {
	status := HTTPStatus(err)
	msg := UserMessage(err)
	if status >= http.StatusInternalServerError || s.errorReporting {
		log.Printf("[server] %s %s failed (%d): %v", r.Method, r.URL.Path, status, err)
	}

	userID, _ := middleware.GetUserID(r)
	s.notifier.Notify(r.Context(), userID, notify.Error(title, msg))

	body := map[string]any{"error": msg}
	if fields, ok := forms.AsFieldErrors(err); ok {
		body["fields"] = fields
	}
	s.jsonResponse(w, status, body)
}

// succeed writes data and sends notice to the user.
func (s *Server) succeed(w http.ResponseWriter, r *http.Request, status int, notice notify.Notice, data any) {
	userID, _ := middleware.GetUserID(r)
	s.notifier.Notify(r.Context(), userID, notice)
	if data == nil {
		w.WriteHeader(status)
		return
	}
	s.jsonResponse(w, status, data)
}

// decode reads a JSON body into form and validates it.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, form forms.Form) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(form); err != nil {
		return &ErrBadRequest{Message: "Corps de requête invalide"}
	}
	return s.forms.Validate(form)
}

// currentUser returns the authenticated user. Routes behind AuthMiddleware always have one.
func currentUser(r *http.Request) uuid.UUID {
	userID, _ := middleware.GetUserID(r)
	return userID
}

// pathID parses the {id} path parameter.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, &ErrBadRequest{Message: "Identifiant invalide"}
	}
	return id, nil
}

// extractClientID identifies the caller by IP address.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response with rate limit information.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	retryAfter := int(info.RetryAfter.Round(time.Second).Seconds())
	if retryAfter > 0 {
		w.Header().Set("Retry-After", fmt.Sprintf("%d", retryAfter))
	}
	log.Printf("[rate-limit] limit=%d reset=%s", info.Limit, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, map[string]any{
		"error":       "Trop de requêtes, veuillez réessayer plus tard",
		"limit":       info.Limit,
		"retry_after": retryAfter,
	})
}
