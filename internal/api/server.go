package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/pmax-campaign-manager/internal/api/handler"
	"github.com/vfg2006/pmax-campaign-manager/internal/api/handler/router"
	"github.com/vfg2006/pmax-campaign-manager/internal/config"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/authenticating"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/reconciling"
	"github.com/vfg2006/pmax-campaign-manager/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

// Services groups what the admin endpoints call into. Scheduler and Runs may be nil.
type Services struct {
	Discoverer    handler.LabelDiscoverer
	Campaigns     handler.CampaignPlanner
	Monitor       handler.Monitor
	Scheduler     handler.MonitorScheduler
	Runs          handler.RunLister
	Authenticator authenticating.Authenticator
	Gatherer      prometheus.Gatherer
	Defaults      reconciling.RunOptions
}

type Server struct {
	httpServer *http.Server
}

func New(cfg *config.Config, services Services) (*Server, error) {
	if services.Gatherer == nil {
		services.Gatherer = prometheus.DefaultGatherer
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Metrics(services.Gatherer)...),
		router.WithRoutes(handler.Campaigns(services.Discoverer, services.Campaigns, services.Monitor, services.Defaults)...),
		router.WithRoutes(handler.CronJobs(services.Scheduler)...),
		router.WithRoutes(handler.Runs(services.Runs)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler exposes the full middleware chain, mostly for tests.
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Server starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Server stopped unexpectedly")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Interrupt signal received")
	case <-ctx.Done():
		logrus.Info("Application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": shutdownTimeout.String(),
	}).Info("Starting graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
		return err
	}

	logrus.Info("Server shut down")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
