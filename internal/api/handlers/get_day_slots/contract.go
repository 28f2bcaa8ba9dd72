package get_day_slots

import (
	"context"

	usecase "github.com/m04kA/Turf-BookingService/internal/usecase/get_day_slots"
)

type SlotsProvider interface {
	Execute(ctx context.Context, req *usecase.Request) (*usecase.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
