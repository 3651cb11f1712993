// Package server exposes the tracker as a JSON API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	achievementin "hunttrack/internal/modules/achievement/port/in"
	applicationin "hunttrack/internal/modules/application/port/in"
	metricsin "hunttrack/internal/modules/metrics/port/in"
	studyin "hunttrack/internal/modules/study/port/in"
)

const shutdownTimeout = 5 * time.Second

type Options struct {
	Addr         string
	Logger       *zap.Logger
	Applications applicationin.Usecase
	Study        studyin.Usecase
	Metrics      metricsin.Usecase
	Achievements achievementin.Usecase
}

type Server struct {
	addr   string
	logger *zap.Logger
	engine *gin.Engine
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("http")

	engine := gin.New()
	engine.Use(recovery(logger), requestLogger(logger))
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete}
	engine.Use(cors.New(corsConfig))

	h := &handlers{
		applications: opts.Applications,
		study:        opts.Study,
		metrics:      opts.Metrics,
		achievements: opts.Achievements,
	}
	engine.GET("/health", h.health)

	api := engine.Group("/api")
	{
		api.GET("/dashboard", h.dashboard)

		api.GET("/applications", h.listApplications)
		api.POST("/applications", h.addApplication)
		api.GET("/applications/:id", h.getApplication)
		api.PATCH("/applications/:id", h.updateApplication)
		api.DELETE("/applications/:id", h.deleteApplication)

		api.GET("/study-logs", h.listStudyLogs)
		api.POST("/study-logs", h.logStudy)
		api.GET("/study-logs/:id", h.getStudyLog)
		api.PATCH("/study-logs/:id", h.updateStudyLog)
		api.DELETE("/study-logs/:id", h.deleteStudyLog)

		api.GET("/achievements", h.listAchievements)
	}

	return &Server{addr: opts.Addr, logger: logger, engine: engine}
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", zap.String("addr", s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		s.logger.Info("stopped")
		return nil
	}
}
