package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Turf-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Turf-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Turf-BookingService/internal/service/bookings/models"
)

type fakeRepo struct {
	bookings map[int64]*domain.Booking

	cancelSeriesAffected int64
	cancelSeriesParent   string
	cancelSeriesMinStart *time.Time
	cancelSeriesReason   string
	cancelSeriesCalls    int

	cancelledID     int64
	cancelledReason string
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0, len(f.bookings))
	for _, b := range f.bookings {
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason string) error {
	b, ok := f.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	f.cancelledID = id
	f.cancelledReason = reason
	return nil
}

func (f *fakeRepo) CancelSeries(_ context.Context, parentBookingID string, minStartTime *time.Time, reason string) (int64, error) {
	f.cancelSeriesCalls++
	f.cancelSeriesParent = parentBookingID
	f.cancelSeriesMinStart = minStartTime
	f.cancelSeriesReason = reason

	affected := f.cancelSeriesAffected
	// Повторный вызов ничего не затрагивает: строки уже отменены
	f.cancelSeriesAffected = 0
	return affected, nil
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

func newTestService(repo *fakeRepo, now time.Time) *Service {
	svc := NewService(repo, nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: now}
	return svc
}

func TestService_Cancel(t *testing.T) {
	repo := &fakeRepo{
		bookings: map[int64]*domain.Booking{
			1: {ID: 1, Status: domain.StatusConfirmed},
		},
	}
	svc := newTestService(repo, time.Now())

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{
		CancellationReason: "клиент попросил перенести",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.cancelledID)
	assert.Equal(t, "клиент попросил перенести", repo.cancelledReason)
	assert.Equal(t, domain.StatusCancelled, repo.bookings[1].Status)
}

func TestService_Cancel_NotFound(t *testing.T) {
	repo := &fakeRepo{bookings: map[int64]*domain.Booking{}}
	svc := newTestService(repo, time.Now())

	err := svc.Cancel(context.Background(), 99, &models.CancelBookingRequest{})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel_AlreadyCancelled(t *testing.T) {
	repo := &fakeRepo{
		bookings: map[int64]*domain.Booking{
			1: {ID: 1, Status: domain.StatusCancelled},
		},
	}
	svc := newTestService(repo, time.Now())

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_Cancel_CompletedCannotBeCancelled(t *testing.T) {
	repo := &fakeRepo{
		bookings: map[int64]*domain.Booking{
			1: {ID: 1, Status: domain.StatusCompleted},
		},
	}
	svc := newTestService(repo, time.Now())

	err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestService_CancelSeries_FutureScope(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{cancelSeriesAffected: 4}
	svc := newTestService(repo, now)

	resp, err := svc.CancelSeries(context.Background(), &models.CancelSeriesRequest{
		ParentBookingID:    "3f6c2d1e-8a4b-4c9d-9e0f-1a2b3c4d5e6f",
		Scope:              "future",
		CancellationReason: "команда распалась",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(4), resp.Affected)
	assert.Equal(t, "3f6c2d1e-8a4b-4c9d-9e0f-1a2b3c4d5e6f", repo.cancelSeriesParent)
	require.NotNil(t, repo.cancelSeriesMinStart, "future scope must bound cancellation by now")
	assert.Equal(t, now, *repo.cancelSeriesMinStart)
	assert.Equal(t, "команда распалась", repo.cancelSeriesReason)
}

func TestService_CancelSeries_AllScope(t *testing.T) {
	repo := &fakeRepo{cancelSeriesAffected: 10}
	svc := newTestService(repo, time.Now())

	resp, err := svc.CancelSeries(context.Background(), &models.CancelSeriesRequest{
		ParentBookingID: "3f6c2d1e-8a4b-4c9d-9e0f-1a2b3c4d5e6f",
		Scope:           "all",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.Affected)
	assert.Nil(t, repo.cancelSeriesMinStart, "all scope cancels regardless of start time")
}

func TestService_CancelSeries_DefaultScopeIsFuture(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	repo := &fakeRepo{cancelSeriesAffected: 2}
	svc := newTestService(repo, now)

	_, err := svc.CancelSeries(context.Background(), &models.CancelSeriesRequest{
		ParentBookingID: "3f6c2d1e-8a4b-4c9d-9e0f-1a2b3c4d5e6f",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.cancelSeriesMinStart)
	assert.Equal(t, now, *repo.cancelSeriesMinStart)
}

func TestService_CancelSeries_Idempotent(t *testing.T) {
	repo := &fakeRepo{cancelSeriesAffected: 3}
	svc := newTestService(repo, time.Now())

	req := &models.CancelSeriesRequest{
		ParentBookingID: "3f6c2d1e-8a4b-4c9d-9e0f-1a2b3c4d5e6f",
		Scope:           "all",
	}

	first, err := svc.CancelSeries(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(3), first.Affected)

	second, err := svc.CancelSeries(context.Background(), req)
	require.NoError(t, err)
	assert.Zero(t, second.Affected, "repeat cancellation affects nothing and is not an error")
}

func TestService_CancelSeries_UnknownSeriesIsNotAnError(t *testing.T) {
	repo := &fakeRepo{cancelSeriesAffected: 0}
	svc := newTestService(repo, time.Now())

	resp, err := svc.CancelSeries(context.Background(), &models.CancelSeriesRequest{
		ParentBookingID: "00000000-0000-0000-0000-000000000000",
		Scope:           "all",
	})

	require.NoError(t, err)
	assert.Zero(t, resp.Affected)
}

func TestService_CancelSeries_Validation(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, time.Now())

	_, err := svc.CancelSeries(context.Background(), &models.CancelSeriesRequest{
		ParentBookingID: "",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CancelSeries(context.Background(), &models.CancelSeriesRequest{
		ParentBookingID: "3f6c2d1e-8a4b-4c9d-9e0f-1a2b3c4d5e6f",
		Scope:           "yesterday",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.CancelSeries(context.Background(), &models.CancelSeriesRequest{
		ParentBookingID:    "3f6c2d1e-8a4b-4c9d-9e0f-1a2b3c4d5e6f",
		CancellationReason: strings.Repeat("x", 501),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Zero(t, repo.cancelSeriesCalls, "invalid requests must not reach storage")
}

func TestService_UpdateStatus(t *testing.T) {
	repo := &fakeRepo{
		bookings: map[int64]*domain.Booking{
			1: {ID: 1, Status: domain.StatusConfirmed},
		},
	}
	svc := newTestService(repo, time.Now())

	err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "no_show"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNoShow, repo.bookings[1].Status)

	err = svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "unknown"})
	assert.ErrorIs(t, err, ErrInvalidStatus)

	err = svc.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{Status: "completed"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
