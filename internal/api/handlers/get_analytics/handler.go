package get_analytics

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/Turf-BookingService/internal/api/handlers"
	"github.com/m04kA/Turf-BookingService/internal/service/analytics"
)

const (
	msgMissingPeriod = "параметры startDate и endDate обязательны"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod = "некорректный период сводки"
)

type Handler struct {
	service AnalyticsService
	logger  Logger
}

func NewHandler(service AnalyticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/analytics/summary?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	startRaw := query.Get("startDate")
	endRaw := query.Get("endDate")
	if startRaw == "" || endRaw == "" {
		h.logger.Warn("GET /analytics/summary - Missing period parameters")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	startDate, err := time.Parse("2006-01-02", startRaw)
	if err != nil {
		h.logger.Warn("GET /analytics/summary - Invalid startDate: %q", startRaw)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	endDate, err := time.Parse("2006-01-02", endRaw)
	if err != nil {
		h.logger.Warn("GET /analytics/summary - Invalid endDate: %q", endRaw)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.service.GetSummary(r.Context(), &analytics.SummaryRequest{
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, analytics.ErrInvalidInput):
			h.logger.Warn("GET /analytics/summary - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /analytics/summary - Failed to build summary: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
