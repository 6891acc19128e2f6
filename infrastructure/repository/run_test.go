package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/pmax-campaign-manager/internal/domain"
)

var listColumns = []string{
	"id", "customer_id", "label_index", "prefix", "mode", "started_at", "completed_at",
	"campaigns", "empty_campaigns", "new_labels", "created", "paused", "failures",
}

func TestRunRepository_SaveRun(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	started := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	run := &domain.RunRecord{
		ID:         "run001",
		CustomerID: "123",
		LabelIndex: 0,
		Prefix:     "PMax Feed",
		Mode:       domain.RunModeApply,
		StartedAt:  started,
		NewLabels:  1,
		Created:    1,
		Report:     []byte(`{"run_id":"run001"}`),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reconciliation_runs (id,customer_id,label_index,prefix,mode,started_at,completed_at,")).
		WithArgs("run001", "123", 0, "PMax Feed", "apply", started, sqlmock.AnyArg(), 0, 0, 1, 1, 0, 0, []byte(`{"run_id":"run001"}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewRunRepository(db).SaveRun(context.Background(), run))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunRepository_SaveRunWrapsDriverErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO reconciliation_runs")).WillReturnError(assert.AnError)

	err = NewRunRepository(db).SaveRun(context.Background(), &domain.RunRecord{ID: "run001"})
	assert.ErrorIs(t, err, assert.AnError)
	assert.ErrorContains(t, err, "run001")
}

func TestRunRepository_ListRuns(t *testing.T) {
	started := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	completed := started.Add(time.Minute)

	tests := []struct {
		name       string
		customerID string
		limit      uint64
		setup      func(mock sqlmock.Sqlmock)
		validate   func(t *testing.T, runs []domain.RunRecord, err error)
	}{
		{
			name:       "Filters by customer and keeps the newest first",
			customerID: "123",
			limit:      5,
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows(listColumns).
					AddRow("run002", "123", 0, "PMax Feed", "apply", started, completed, 3, 1, 1, 1, 1, 0).
					AddRow("run001", "123", 0, "PMax Feed", "dry_run", started.Add(-time.Hour), nil, 3, 1, 1, 0, 0, 0)
				mock.ExpectQuery(regexp.QuoteMeta("FROM reconciliation_runs WHERE customer_id = $1 ORDER BY started_at DESC LIMIT 5")).
					WithArgs("123").
					WillReturnRows(rows)
			},
			validate: func(t *testing.T, runs []domain.RunRecord, err error) {
				require.NoError(t, err)
				require.Len(t, runs, 2)
				assert.Equal(t, "run002", runs[0].ID)
				assert.Equal(t, domain.RunModeApply, runs[0].Mode)
				assert.Equal(t, completed, runs[0].CompletedAt)
				assert.Equal(t, 3, runs[0].Campaigns)
				assert.True(t, runs[1].CompletedAt.IsZero())
			},
		},
		{
			name: "Uses the default limit and lists every customer",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("FROM reconciliation_runs ORDER BY started_at DESC LIMIT 20")).
					WillReturnRows(sqlmock.NewRows(listColumns))
			},
			validate: func(t *testing.T, runs []domain.RunRecord, err error) {
				require.NoError(t, err)
				assert.NotNil(t, runs)
				assert.Empty(t, runs)
			},
		},
		{
			name: "Query errors are wrapped",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)
			},
			validate: func(t *testing.T, _ []domain.RunRecord, err error) {
				assert.ErrorIs(t, err, assert.AnError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.setup(mock)
			runs, err := NewRunRepository(db).ListRuns(context.Background(), tt.customerID, tt.limit)
			tt.validate(t, runs, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRunRepository_GetRun(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	started := time.Date(2025, 3, 10, 6, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM reconciliation_runs WHERE id = $1")).
		WithArgs("run001").
		WillReturnRows(sqlmock.NewRows(append(listColumns, "report")).
			AddRow("run001", "123", 1, "PMax Feed", "apply", started, nil, 1, 0, 0, 0, 0, 0, []byte(`{}`)))
	mock.ExpectQuery(regexp.QuoteMeta("FROM reconciliation_runs WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	repo := NewRunRepository(db)

	run, err := repo.GetRun(context.Background(), "run001")
	require.NoError(t, err)
	assert.Equal(t, 1, run.LabelIndex)
	assert.Equal(t, []byte(`{}`), run.Report)

	_, err = repo.GetRun(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
