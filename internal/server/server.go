// Package server exposes plan generation over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/alexanderramin/learnplan/internal/curriculum"
	"github.com/alexanderramin/learnplan/internal/generation"
	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

// Version is reported by the index route.
const Version = "2.1.0"

const shutdownTimeout = 10 * time.Second

// Generator produces plans. *generation.Service satisfies it.
type Generator interface {
	Generate(ctx context.Context, req generation.Request) (*generation.Result, error)
}

// Server routes HTTP requests to a Generator.
type Server struct {
	generator  Generator
	catalog    *curriculum.Catalog
	logger     *slog.Logger
	modelReady bool
	router     *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request logger. A nil logger discards records.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithModelReady records whether a language model client was configured.
// It is reported by /health.
func WithModelReady(ready bool) Option {
	return func(s *Server) { s.modelReady = ready }
}

func NewServer(gen Generator, catalog *curriculum.Catalog, opts ...Option) *Server {
	s := &Server{
		generator: gen,
		catalog:   catalog,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.router = gin.New()
	s.router.Use(gin.Recovery(), requestID(), s.logRequests(), cors())
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.GET("/", s.handleIndex)
	s.router.GET("/health", s.handleHealth)
	s.router.GET("/categories", s.handleCategories)
	s.router.POST("/generate-plan", s.handleGeneratePlan)
}

// Run serves on addr until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("server_listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		s.logger.Info("server_stopped", "addr", addr)
		return nil
	})
	return g.Wait()
}
