package health

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Server exposes /healthz over HTTP.
type Server struct {
	srv    *http.Server
	logger *zap.Logger
}

func NewServer(addr string, logger *zap.Logger, checks map[string]Checker) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Mount("/healthz", NewHandler(logger, checks).Routes())

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Run serves until Shutdown is called.
func (s *Server) Run() error {
	s.logger.Info("starting health server", zap.String("addr", s.srv.Addr))
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down health server")
	return s.srv.Shutdown(ctx)
}
