package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Turf-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	overlapping []*domain.Booking

	created *domain.Booking
}

func (f *fakeBookingRepo) FindOverlapping(_ context.Context, _ []domain.Interval) ([]*domain.Booking, error) {
	return f.overlapping, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	booking.ID = 1
	f.created = booking
	return booking, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
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

func testRequest() *Request {
	start := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)
	return &Request{
		CustomerName:  "Иван Петров",
		CustomerPhone: "+79001234567",
		StartTime:     start,
		EndTime:       start.Add(time.Hour),
		CreatedBy:     1,
	}
}

func newTestUseCase(repo *fakeBookingRepo, tx *fakeTxManager, now time.Time) *UseCase {
	uc := NewUseCase(repo, tx, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestUseCase_Execute_CreatesBooking(t *testing.T) {
	repo := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, tx, now)

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, 500.0, resp.Charge, "default charge applies when omitted")
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 1, tx.calls)
}

func TestUseCase_Execute_SlotOccupied(t *testing.T) {
	repo := &fakeBookingRepo{
		overlapping: []*domain.Booking{{ID: 7, Status: domain.StatusConfirmed}},
	}
	tx := &fakeTxManager{}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, tx, now)

	resp, err := uc.Execute(context.Background(), testRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created)
}

func TestUseCase_Execute_StartTimeInPast(t *testing.T) {
	repo := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, tx, now)

	resp, err := uc.Execute(context.Background(), testRequest())

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrStartTimeInPast)
	assert.Zero(t, tx.calls, "validation happens before storage access")
}

func TestUseCase_Execute_InvalidInterval(t *testing.T) {
	repo := &fakeBookingRepo{}
	tx := &fakeTxManager{}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := newTestUseCase(repo, tx, now)

	req := testRequest()
	req.EndTime = req.StartTime

	resp, err := uc.Execute(context.Background(), req)

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInterval)
	assert.Zero(t, tx.calls)
}
