package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/pmax-campaign-manager/internal/config"
	"github.com/vfg2006/pmax-campaign-manager/internal/usecases/reconciling"
)

var ErrRunInProgress = errors.New("a monitor run is already in progress")

type WeeklyMonitorConfig struct {
	CronSchedule string
	Enabled      bool
}

// WeeklyMonitorService runs the reconciliation monitor on a cron schedule and on demand.
// At most one run is in flight at any time.
type WeeklyMonitorService struct {
	scheduler *gocron.Scheduler
	config    WeeklyMonitorConfig
	monitor   MonitorRunner
	options   reconciling.RunOptions

	baseCtx         context.Context
	runMutex        sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastRunID       string
	lastError       string
	lastCreated     int
	lastPaused      int
	lastNewLabels   int
}

func NewWeeklyMonitorService(monitor MonitorRunner, options reconciling.RunOptions, appConfig *config.Config) *WeeklyMonitorService {
	monitorConfig := WeeklyMonitorConfig{
		CronSchedule: appConfig.Monitor.CronSchedule,
		Enabled:      appConfig.Monitor.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": monitorConfig.CronSchedule,
		"enabled":       monitorConfig.Enabled,
		"customer_id":   options.CustomerID,
		"mode":          options.Mode,
	}).Info("Weekly monitor configuration loaded")

	return &WeeklyMonitorService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    monitorConfig,
		monitor:   monitor,
		options:   options,
		baseCtx:   context.Background(),
	}
}

// Start schedules the monitor and stops the scheduler when ctx is cancelled.
func (s *WeeklyMonitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Weekly monitor disabled by configuration")
		return nil
	}

	s.baseCtx = ctx
	logrus.WithField("cron", s.config.CronSchedule).Info("Starting weekly monitor scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.runMonitor(ctx); err != nil && !errors.Is(err, ErrRunInProgress) {
			logrus.WithError(err).Error("Scheduled monitor run failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule the weekly monitor: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Stopping weekly monitor scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// runMonitor performs one run unless another is still in flight.
func (s *WeeklyMonitorService) runMonitor(ctx context.Context) error {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Monitor run already in progress, skipping")
		return ErrRunInProgress
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.lastCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	logrus.WithField("customer_id", s.options.CustomerID).Info("Starting monitor run")

	report, err := s.monitor.Run(ctx, s.options)

	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	if report != nil {
		s.lastRunID = report.RunID
		s.lastCreated = report.Created()
		s.lastPaused = report.Paused()
		s.lastNewLabels = len(report.NewLabels)
	}

	return err
}

// TriggerManualRun starts a run in the background. It returns ErrRunInProgress when a run is in flight.
func (s *WeeklyMonitorService) TriggerManualRun() error {
	s.runMutex.Lock()
	running := s.running
	s.runMutex.Unlock()
	if running {
		logrus.Info("Monitor run already in progress, ignoring manual request")
		return ErrRunInProgress
	}

	logrus.Info("Starting manual monitor run")
	go func() {
		if err := s.runMonitor(s.baseCtx); err != nil && !errors.Is(err, ErrRunInProgress) {
			logrus.WithError(err).Error("Manual monitor run failed")
		}
	}()
	return nil
}

func (s *WeeklyMonitorService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"monitor_enabled":   s.config.Enabled,
		"monitor_cron":      s.config.CronSchedule,
		"mode":              s.options.Mode,
		"customer_id":       s.options.CustomerID,
		"running":           s.running,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_run_id":       s.lastRunID,
		"last_error":        s.lastError,
		"last_new_labels":   s.lastNewLabels,
		"last_created":      s.lastCreated,
		"last_paused":       s.lastPaused,
	}
}
