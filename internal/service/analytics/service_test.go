package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Turf-BookingService/internal/domain"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return f.bookings, nil
}

type fakeExpenseRepo struct {
	expenses []*domain.Expense
}

func (f *fakeExpenseRepo) GetWithFilter(_ context.Context, _ domain.ExpensesFilter) ([]*domain.Expense, error) {
	return f.expenses, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestService_GetSummary(t *testing.T) {
	bookings := []*domain.Booking{
		{ID: 1, Status: domain.StatusConfirmed, Charge: 500},
		{ID: 2, Status: domain.StatusCompleted, Charge: 1000},
		{ID: 3, Status: domain.StatusCancelled, Charge: 700},
		{ID: 4, Status: domain.StatusNoShow, Charge: 500},
	}
	expenses := []*domain.Expense{
		{ID: 1, Amount: 300},
		{ID: 2, Amount: 200},
	}

	svc := NewService(&fakeBookingRepo{bookings: bookings}, &fakeExpenseRepo{expenses: expenses}, nopLogger{})

	resp, err := svc.GetSummary(context.Background(), &SummaryRequest{
		StartDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 4, resp.TotalBookings)
	assert.Equal(t, 1, resp.CompletedBookings)
	assert.Equal(t, 1, resp.CancelledBookings)
	assert.Equal(t, 1, resp.NoShowBookings)
	// Отменённое бронирование дохода не приносит
	assert.Equal(t, 2000.0, resp.Revenue)
	assert.Equal(t, 500.0, resp.Expenses)
	assert.Equal(t, 1500.0, resp.Net)
}

func TestService_GetSummary_InvalidPeriod(t *testing.T) {
	svc := NewService(&fakeBookingRepo{}, &fakeExpenseRepo{}, nopLogger{})

	_, err := svc.GetSummary(context.Background(), &SummaryRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.GetSummary(context.Background(), &SummaryRequest{StartDate: start, EndDate: start})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
