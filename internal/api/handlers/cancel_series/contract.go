package cancel_series

import (
	"context"

	"github.com/m04kA/Turf-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	CancelSeries(ctx context.Context, req *models.CancelSeriesRequest) (*models.CancelSeriesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
