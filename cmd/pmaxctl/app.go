package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/pmax-campaign-manager/infrastructure/database/postgres"
	"github.com/vfg2006/pmax-campaign-manager/infrastructure/integrator/googleads"
	"github.com/vfg2006/pmax-campaign-manager/infrastructure/integrator/googleads/adsclient"
	"github.com/vfg2006/pmax-campaign-manager/infrastructure/repository"
	"github.com/vfg2006/pmax-campaign-manager/internal/config"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/campaigning"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/discovering"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/provisioning"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/reconciling"
	"github.com/vfg2006/pmax-campaign-manager/pkg/log"
	"github.com/vfg2006/pmax-campaign-manager/pkg/metrics"
	"github.com/vfg2006/pmax-campaign-manager/pkg/retry"
)

// app holds the services shared by the commands that talk to Google Ads.
type app struct {
	registry     *prometheus.Registry
	discovery    discovering.DiscoveryService
	provisioning provisioning.ProvisioningService
	campaigns    campaigning.CampaignService
	monitor      reconciling.MonitorService
	runs         repository.RunRepository
	db           *postgres.Connection
}

// newApp wires the Ads client and the use cases. With history set and a database configured,
// monitor runs are persisted.
func newApp(ctx context.Context, cfg *config.Config, history bool) (*app, error) {
	if err := cfg.ValidateCredentials(); err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	recorder := metrics.NewRecorder(registry)

	client := adsclient.NewClient(cfg.GoogleAds, adsclient.NewTokenManager(cfg.GoogleAds), recorder)
	ads := googleads.New(client, retryPolicy(cfg.Retry, recorder))

	discovery := discovering.NewService(ads)
	prov := provisioning.NewService(ads, provisioning.Settings{
		PropagationDelay: cfg.Provisioning.PropagationDelay,
		ActivationDelay:  cfg.Provisioning.ActivationDelay,
		CreationSpacing:  cfg.Provisioning.CreationSpacing,
	})

	a := &app{
		registry:     registry,
		discovery:    discovery,
		provisioning: prov,
		campaigns:    campaigning.NewService(discovery, prov),
	}

	var runRecorder reconciling.RunRecorder
	if history && cfg.Database.Enabled() {
		if err := a.openHistory(ctx, cfg.Database); err != nil {
			return nil, err
		}
		runRecorder = a.runs
	}

	a.monitor = reconciling.NewMonitor(ads, discovery, prov, ads, runRecorder, recorder, reconciling.Settings{
		RequestDelay: cfg.Monitor.RequestDelay,
	})
	return a, nil
}

func (a *app) openHistory(ctx context.Context, cfg config.Database) error {
	conn, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return err
	}
	if err := postgres.EnsureSchema(ctx, conn); err != nil {
		_ = conn.Close()
		return err
	}

	logrus.Info("Run history enabled")
	a.db = conn
	a.runs = repository.NewRunRepository(conn)
	return nil
}

func (a *app) Close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close database connection")
		}
	}
}

func retryPolicy(cfg config.Retry, recorder *metrics.Recorder) retry.Policy {
	policy := retry.DefaultPolicy()
	if cfg.MaxAttempts > 0 {
		policy.MaxAttempts = cfg.MaxAttempts
	}
	if cfg.BaseDelay > 0 {
		policy.BaseDelay = cfg.BaseDelay
	}
	if cfg.BackoffFactor > 0 {
		policy.BackoffFactor = cfg.BackoffFactor
	}
	if cfg.Jitter >= 0 {
		policy.Jitter = cfg.Jitter
	}
	policy.Logger = log.L
	policy.OnRetry = recorder.ObserveRetry
	return policy
}
