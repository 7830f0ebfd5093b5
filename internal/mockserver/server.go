// Package mockserver is an in-memory stand-in for the Emailight backend.
// It implements every endpoint the client consumes, with the same JSON
// shapes and status codes, so the client and CLI can be exercised without
// a real server.
package mockserver

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cheikh-mbacke/emailight-mobile/client"
	"github.com/cheikh-mbacke/emailight-mobile/devmode"
)

type user struct {
	client.User
	passwordHash []byte
}

type sentEmail struct {
	ID        string `json:"id"`
	AccountID string `json:"accountId"`
	To        string `json:"to"`
	Cc        string `json:"cc,omitempty"`
	Bcc       string `json:"bcc,omitempty"`
	Subject   string `json:"subject"`
	Content   string `json:"content"`
	SentAt    string `json:"sentAt"`
}

// Server holds all state behind one mutex. Safe for concurrent use.
type Server struct {
	mu       sync.Mutex
	users    map[string]*user  // by ID
	byEmail  map[string]string // email -> user ID
	tokens   map[string]string // token -> user ID
	drafts   map[string]*client.Draft
	order    []string // draft IDs in creation order
	accounts map[string]*client.EmailAccount
	accOrder []string
	history  map[string][]sentEmail // user ID -> newest last

	logger     zerolog.Logger
	bcryptCost int
	now        func() time.Time
	router     *mux.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and panic logger.
func WithLogger(l zerolog.Logger) Option { return func(s *Server) { s.logger = l } }

// WithBcryptCost lowers hashing cost, mainly for tests.
func WithBcryptCost(cost int) Option { return func(s *Server) { s.bcryptCost = cost } }

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option { return func(s *Server) { s.now = now } }

// WithDemoUser seeds the account from the devmode package.
func WithDemoUser() Option {
	return func(s *Server) {
		_, _ = s.createUser(devmode.DemoName, devmode.DemoEmail, devmode.DemoPassword)
	}
}

// New builds a server and its router. Options run in order, so WithDemoUser
// should come after WithBcryptCost and WithClock.
func New(opts ...Option) *Server {
	s := &Server{
		users:      map[string]*user{},
		byEmail:    map[string]string{},
		tokens:     map[string]string{},
		drafts:     map[string]*client.Draft{},
		accounts:   map[string]*client.EmailAccount{},
		history:    map[string][]sentEmail{},
		logger:     zerolog.Nop(),
		bcryptCost: bcrypt.DefaultCost,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.router = s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(recoveryMiddleware(s.logger), accessLogMiddleware(s.logger))
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.health).Methods(http.MethodGet)
	api.HandleFunc("/auth/register", s.register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(s.requireAuth)
	authed.HandleFunc("/auth/refresh", s.refresh).Methods(http.MethodPost)
	authed.HandleFunc("/auth/logout", s.logout).Methods(http.MethodPost)
	authed.HandleFunc("/auth/profile", s.getProfile).Methods(http.MethodGet)
	authed.HandleFunc("/auth/profile", s.updateProfile).Methods(http.MethodPut)
	authed.HandleFunc("/auth/change-password", s.changePassword).Methods(http.MethodPut)

	authed.HandleFunc("/emails/generate", s.generate).Methods(http.MethodPost)

	authed.HandleFunc("/drafts", s.listDrafts).Methods(http.MethodGet)
	authed.HandleFunc("/drafts", s.createDraft).Methods(http.MethodPost)
	authed.HandleFunc("/drafts/{id}", s.getDraft).Methods(http.MethodGet)
	authed.HandleFunc("/drafts/{id}", s.updateDraft).Methods(http.MethodPut)
	authed.HandleFunc("/drafts/{id}", s.deleteDraft).Methods(http.MethodDelete)

	authed.HandleFunc("/email-accounts", s.listAccounts).Methods(http.MethodGet)
	authed.HandleFunc("/email-accounts/connect", s.connectAccount).Methods(http.MethodPost)
	authed.HandleFunc("/email-accounts/{id}/disconnect", s.disconnectAccount).Methods(http.MethodPost)
	authed.HandleFunc("/email-accounts/{id}/send", s.sendEmail).Methods(http.MethodPost)

	authed.HandleFunc("/history", s.getHistory).Methods(http.MethodGet)
	return r
}

func (s *Server) timestamp() string {
	return s.now().UTC().Format(time.RFC3339)
}

func newID() string { return uuid.NewString() }

// Token issues a session token for an existing user. It is meant for tests
// and for seeding the CLI against the demo account.
func (s *Server) Token(email string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.byEmail[email]
	if !ok {
		return "", false
	}
	return s.issueTokenLocked(id), true
}

func (s *Server) issueTokenLocked(userID string) string {
	token := newID()
	s.tokens[token] = userID
	return token
}

func (s *Server) userForToken(token string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.tokens[token]
	return id, ok
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, client.HealthStatus{Status: "ok", Timestamp: s.timestamp()})
}
