package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rgehrsitz/itrgo/internal/breakeven"
	"github.com/rgehrsitz/itrgo/internal/calculation"
	"github.com/rgehrsitz/itrgo/internal/compare"
	"github.com/rgehrsitz/itrgo/internal/config"
	"github.com/rgehrsitz/itrgo/internal/metrics"
	"go.uber.org/zap"
)

const (
	defaultAddress         = ":8080"
	defaultReadTimeout     = 10 * time.Second
	defaultShutdownTimeout = 5 * time.Second
)

// Options wires the server's collaborators. Only Engine is required.
type Options struct {
	Engine   *calculation.Engine
	Settings config.ServerSettings
	Logger   *zap.Logger
	Metrics  *metrics.Metrics
	// Gatherer backs /metrics; nil serves the default registry.
	Gatherer prometheus.Gatherer
}

// Server exposes the tax engine over HTTP.
type Server struct {
	calc     *calculation.Engine
	compare  *compare.CompareEngine
	solver   *breakeven.Solver
	parser   *config.InputParser
	metrics  *metrics.Metrics
	gatherer prometheus.Gatherer
	log      *zap.Logger
	cfg      config.ServerSettings
}

// New builds a server around one shared engine.
func New(opts Options) (*Server, error) {
	if opts.Engine == nil {
		return nil, errors.New("server: calculation engine is required")
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	cfg := opts.Settings
	if cfg.Address == "" {
		cfg.Address = defaultAddress
	}
	if cfg.ReadTimeout <= 0 {
		cfg.ReadTimeout = defaultReadTimeout
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	return &Server{
		calc:     opts.Engine,
		compare:  compare.NewCompareEngine(opts.Engine),
		solver:   breakeven.NewDefaultSolver(opts.Engine),
		parser:   config.NewInputParser(),
		metrics:  opts.Metrics,
		gatherer: opts.Gatherer,
		log:      log,
		cfg:      cfg,
	}, nil
}

// Handler builds the gin engine with every route registered.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.log, s.metrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(s.metricsHandler()))

	v1 := r.Group("/v1")
	v1.GET("/rules", s.GetRules)
	v1.POST("/tax/old", s.CalculateOld)
	v1.POST("/tax/new", s.CalculateNew)
	v1.POST("/tax/compare", s.Compare)
	v1.POST("/tax/breakeven", s.BreakEven)

	return r
}

func (s *Server) metricsHandler() http.Handler {
	if s.gatherer == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: s.cfg.ReadTimeout,
		ReadTimeout:       s.cfg.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("address", s.cfg.Address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen on %s: %w", s.cfg.Address, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	s.log.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
