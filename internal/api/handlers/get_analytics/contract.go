package get_analytics

import (
	"context"

	"github.com/m04kA/Turf-BookingService/internal/service/analytics"
)

type AnalyticsService interface {
	GetSummary(ctx context.Context, req *analytics.SummaryRequest) (*analytics.SummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
