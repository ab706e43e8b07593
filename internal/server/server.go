package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Amriteshwork/Resume-Assessment-System/internal/db"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/ingest"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/server/middleware"
	"github.com/Amriteshwork/Resume-Assessment-System/internal/types"
)

// Assessor is the pipeline invocation surface consumed by the HTTP handlers.
type Assessor interface {
	Run(ctx context.Context, resumeText, jdText string) (*types.State, error)
}

// Config holds server configuration.
type Config struct {
	Port      int
	JWTSecret string // empty disables auth
}

// Server exposes the assessment pipeline over HTTP.
type Server struct {
	httpServer *http.Server
	runner     Assessor
	store      *db.DB // may be nil
	decoders   ingest.Decoders
	validate   *validator.Validate
	log        *zap.Logger
}

// New creates a server. store may be nil when no database is configured;
// the read endpoints then answer 503.
func New(cfg Config, runner Assessor, store *db.DB, decoders ingest.Decoders, log *zap.Logger) *Server {
	s := &Server{
		runner:   runner,
		store:    store,
		decoders: decoders,
		validate: validator.New(),
		log:      log,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /assess", s.handleAssess)
	mux.HandleFunc("GET /assessments", s.handleListAssessments)
	mux.HandleFunc("GET /assessments/{id}", s.handleGetAssessment)
	mux.HandleFunc("GET /health", s.handleHealth)

	var handler http.Handler = mux
	if cfg.JWTSecret != "" {
		handler = middleware.Auth(NewJWTService(cfg.JWTSecret).AsTokenValidator())(mux)
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the server's HTTP handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}
	return nil
}
