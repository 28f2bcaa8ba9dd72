package booking

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Turf-BookingService/internal/domain"
)

type fakeResult struct {
	rowsAffected int64
}

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return r.rowsAffected, nil }

// fakeExecutor перехватывает запросы репозитория, не обращаясь к БД
type fakeExecutor struct {
	execQuery string
	execArgs  []interface{}
	execCalls int

	rowsAffected int64
	execErr      error
}

func (f *fakeExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	f.execCalls++
	f.execQuery = query
	f.execArgs = args
	if f.execErr != nil {
		return nil, f.execErr
	}
	return fakeResult{rowsAffected: f.rowsAffected}, nil
}

func (f *fakeExecutor) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return nil, errors.New("unexpected QueryContext call")
}

func (f *fakeExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return nil
}

func TestRepository_CancelSeries_SingleUpdateExcludesCancelled(t *testing.T) {
	executor := &fakeExecutor{rowsAffected: 3}
	repo := NewRepository(executor)

	affected, err := repo.CancelSeries(context.Background(), "2f1a6c1e-9a2b-4f4e-8a64-0a1b2c3d4e5f", nil, "смена расписания")

	require.NoError(t, err)
	assert.Equal(t, int64(3), affected)
	assert.Equal(t, 1, executor.execCalls)

	assert.Contains(t, executor.execQuery, "UPDATE bookings")
	assert.Contains(t, executor.execQuery, "parent_booking_id = $")
	// повторная отмена не трогает уже отменённые строки
	assert.Contains(t, executor.execQuery, "status <> $")
	assert.NotContains(t, executor.execQuery, "start_time >=")

	assert.Contains(t, executor.execArgs, "2f1a6c1e-9a2b-4f4e-8a64-0a1b2c3d4e5f")
	assert.Contains(t, executor.execArgs, string(domain.StatusCancelled))
	assert.Contains(t, executor.execArgs, "смена расписания")
}

func TestRepository_CancelSeries_FutureScopeFiltersByStartTime(t *testing.T) {
	executor := &fakeExecutor{rowsAffected: 2}
	repo := NewRepository(executor)

	minStart := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)
	affected, err := repo.CancelSeries(context.Background(), "parent-series-id", &minStart, "")

	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)
	assert.Contains(t, executor.execQuery, "start_time >= $")
	assert.Contains(t, executor.execArgs, minStart)
}

func TestRepository_CancelSeries_ArbitraryParentIDMatchesNothing(t *testing.T) {
	// parent_booking_id хранится как TEXT: произвольная строка в пути
	// запроса сравнивается как текст и просто не находит строк
	executor := &fakeExecutor{rowsAffected: 0}
	repo := NewRepository(executor)

	affected, err := repo.CancelSeries(context.Background(), "abc", nil, "")

	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
	assert.Contains(t, executor.execArgs, "abc")
}

func TestRepository_CancelSeries_ExecError(t *testing.T) {
	executor := &fakeExecutor{execErr: errors.New("connection reset")}
	repo := NewRepository(executor)

	_, err := repo.CancelSeries(context.Background(), "parent-series-id", nil, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecQuery)
}
