package plan_recurring_booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Turf-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	overlapping []*domain.Booking
	overlapErr  error
	createErr   error

	findCalls    int
	createdBatch []*domain.Booking
}

func (f *fakeBookingRepo) FindOverlapping(_ context.Context, intervals []domain.Interval) ([]*domain.Booking, error) {
	f.findCalls++
	if f.overlapErr != nil {
		return nil, f.overlapErr
	}
	return f.overlapping, nil
}

func (f *fakeBookingRepo) CreateMany(_ context.Context, bookings []*domain.Booking) ([]*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdBatch = bookings
	for i, b := range bookings {
		b.ID = int64(i + 1)
	}
	return bookings, nil
}

type fakeTxManager struct {
	calls int
	err   error
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeBookingRepo, tx *fakeTxManager, now time.Time) *UseCase {
	uc := NewUseCase(repo, tx, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestUseCase_Execute_CreatesSeries(t *testing.T) {
	repo := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, tx, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 7, resp.Count)
	assert.Len(t, resp.Dates, 7)
	require.NotEmpty(t, resp.ParentBookingID)

	_, err = uuid.Parse(resp.ParentBookingID)
	assert.NoError(t, err, "parent booking id must be a valid UUID")

	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, 1, repo.findCalls, "conflict check must be a single batched query")

	require.Len(t, repo.createdBatch, 7)
	for _, b := range repo.createdBatch {
		assert.Equal(t, domain.StatusConfirmed, b.Status)
		assert.Equal(t, 500.0, b.Charge)
		require.NotNil(t, b.ParentBookingID)
		assert.Equal(t, resp.ParentBookingID, *b.ParentBookingID)
		require.NotNil(t, b.RecurringDays)
		assert.Equal(t, "1,3,5", *b.RecurringDays)
		require.NotNil(t, b.RecurringEndDate)
	}
}

func TestUseCase_Execute_SlotConflict(t *testing.T) {
	existing := &domain.Booking{ID: 42, Status: domain.StatusConfirmed}
	repo := &fakeBookingRepo{overlapping: []*domain.Booking{existing}}
	tx := &fakeTxManager{}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, tx, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSlotConflict)

	var conflictErr *ConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, 1, conflictErr.Count)

	assert.Nil(t, repo.createdBatch, "nothing may be persisted on conflict")
}

func TestUseCase_Execute_NoValidDates(t *testing.T) {
	repo := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	// Все кандидаты уже в прошлом
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, tx, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNoValidDates)
	assert.Zero(t, tx.calls, "storage must not be touched")
}

func TestUseCase_Execute_TooManyInstances(t *testing.T) {
	repo := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, tx, now)

	// Ежедневно на 26 недель: 182 кандидата, потолок в 100 превышен
	req := validRequest()
	req.RecurringDays = []int{0, 1, 2, 3, 4, 5, 6}
	req.RecurringEndDate = req.StartTime.AddDate(0, 0, 182)

	resp, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrTooManyInstances)
	assert.Zero(t, tx.calls, "series must be rejected before storage access")
}

func TestUseCase_Execute_ValidationBeforeStorage(t *testing.T) {
	repo := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, tx, now)

	req := validRequest()
	req.RecurringEndDate = req.StartTime.AddDate(1, 0, 0)

	resp, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrRecurrenceRangeTooLarge)
	assert.Zero(t, tx.calls)
	assert.Zero(t, repo.findCalls)
}

func TestUseCase_Execute_CustomCharge(t *testing.T) {
	repo := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, tx, now)

	charge := 1500.0
	req := validRequest()
	req.Charge = &charge

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	for _, b := range repo.createdBatch {
		assert.Equal(t, 1500.0, b.Charge)
	}
}

func TestUseCase_Execute_TxFailureReturnsError(t *testing.T) {
	repo := &fakeBookingRepo{}
	tx := &fakeTxManager{err: context.DeadlineExceeded}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, tx, now)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.Nil(t, repo.createdBatch)
}
