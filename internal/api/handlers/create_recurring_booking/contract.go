package create_recurring_booking

import (
	"context"

	"github.com/m04kA/Turf-BookingService/internal/usecase/plan_recurring_booking"
)

type RecurringBookingPlanner interface {
	Execute(ctx context.Context, req *plan_recurring_booking.Request) (*plan_recurring_booking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
