// Package repository keeps the history of reconciliation runs.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/pmax-campaign-manager/infrastructure/database/postgres"
	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

const (
	runTable        = "reconciliation_runs"
	DefaultRunLimit = 20
)

var ErrRunNotFound = errors.New("run not found")

var runColumns = []string{
	"id",
	"customer_id",
	"label_index",
	"prefix",
	"mode",
	"started_at",
	"completed_at",
	"campaigns",
	"empty_campaigns",
	"new_labels",
	"created",
	"paused",
	"failures",
}

type RunRepository interface {
	SaveRun(ctx context.Context, run *domain.RunRecord) error
	ListRuns(ctx context.Context, customerID string, limit uint64) ([]domain.RunRecord, error)
	GetRun(ctx context.Context, id string) (*domain.RunRecord, error)
}

type runRepository struct {
	db postgres.Queryer
}

func NewRunRepository(db postgres.Queryer) RunRepository {
	return &runRepository{db: db}
}

// SaveRun stores a run once. Saving the same id twice keeps the first record.
func (r *runRepository) SaveRun(ctx context.Context, run *domain.RunRecord) error {
	report := run.Report
	if len(report) == 0 {
		report = []byte("{}")
	}

	query, args, err := squirrel.
		Insert(runTable).
		Columns(append(runColumns, "report")...).
		Values(
			run.ID,
			run.CustomerID,
			run.LabelIndex,
			run.Prefix,
			string(run.Mode),
			run.StartedAt,
			sql.NullTime{Time: run.CompletedAt, Valid: !run.CompletedAt.IsZero()},
			run.Campaigns,
			run.EmptyCampaigns,
			run.NewLabels,
			run.Created,
			run.Paused,
			run.Failures,
			report,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build insert: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save run %s: %w", run.ID, err)
	}
	return nil
}

// ListRuns returns the latest runs first. An empty customerID lists every customer.
func (r *runRepository) ListRuns(ctx context.Context, customerID string, limit uint64) ([]domain.RunRecord, error) {
	if limit == 0 {
		limit = DefaultRunLimit
	}

	builder := squirrel.
		Select(runColumns...).
		From(runTable).
		OrderBy("started_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)
	if customerID != "" {
		builder = builder.Where(squirrel.Eq{"customer_id": customerID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	runs := make([]domain.RunRecord, 0)
	for rows.Next() {
		var run domain.RunRecord
		if err := rows.Scan(scanTargets(&run)...); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

// GetRun returns one run including its full JSON report.
func (r *runRepository) GetRun(ctx context.Context, id string) (*domain.RunRecord, error) {
	query, args, err := squirrel.
		Select(append(runColumns, "report")...).
		From(runTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var run domain.RunRecord
	targets := append(scanTargets(&run), &run.Report)
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(targets...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
		}
		return nil, fmt.Errorf("failed to get run %s: %w", id, err)
	}

	return &run, nil
}

// scanTargets mirrors runColumns.
func scanTargets(run *domain.RunRecord) []any {
	return []any{
		&run.ID,
		&run.CustomerID,
		&run.LabelIndex,
		&run.Prefix,
		&run.Mode,
		&run.StartedAt,
		completedTime{run: run},
		&run.Campaigns,
		&run.EmptyCampaigns,
		&run.NewLabels,
		&run.Created,
		&run.Paused,
		&run.Failures,
	}
}

// completedTime scans a nullable timestamp straight into RunRecord.CompletedAt.
type completedTime struct {
	run *domain.RunRecord
}

func (c completedTime) Scan(src any) error {
	var value sql.NullTime
	if err := value.Scan(src); err != nil {
		return err
	}
	if value.Valid {
		c.run.CompletedAt = value.Time
	}
	return nil
}
