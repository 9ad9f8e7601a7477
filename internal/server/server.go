// Package server exposes Spock's analyze pipeline over HTTP, grounded
// in the teacher's internal/web package: a chi router, a zap logger
// threaded through middleware, and a Deps struct wiring collaborators
// together the way the teacher's Server wired its ORM connection and
// auth service into request handlers.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/spock-lang/spock/internal/audit"
	"github.com/spock-lang/spock/internal/collabauth"
	"github.com/spock-lang/spock/internal/ratelimit"
)

// Deps collects every collaborator the HTTP layer needs. None of them
// are optional: a Server with a nil field will panic on first request
// rather than silently skip auth or rate limiting.
type Deps struct {
	Issuer  *collabauth.Issuer
	Limiter ratelimit.Limiter
	Audit   *audit.Store
	Logger  *zap.Logger
}

// Server is spockd's HTTP collaborator.
type Server struct {
	deps   Deps
	router chi.Router
}

// New builds a Server with routes mounted and ready to serve.
func New(deps Deps) *Server {
	s := &Server{deps: deps}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logging(s.deps.Logger))
	r.Use(Recovery(s.deps.Logger))

	r.Get("/healthz", s.handleHealthz)
	r.Group(func(r chi.Router) {
		r.Use(s.authenticate)
		r.Use(s.rateLimit)
		r.Post("/v1/evaluate", s.handleEvaluate)
		r.Get("/v1/stream", s.handleStream)
	})
	return r
}

// ServeHTTP satisfies http.Handler, letting a Server be passed straight
// to http.Server.Handler or httptest.NewServer.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run starts an http.Server bound to addr and blocks until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	httpServer := &http.Server{Addr: addr, Handler: s}

	errCh := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}
