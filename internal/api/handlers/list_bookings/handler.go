package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/Turf-BookingService/internal/api/handlers"
	"github.com/m04kA/Turf-BookingService/internal/service/bookings"
	"github.com/m04kA/Turf-BookingService/internal/service/bookings/models"
	"github.com/m04kA/Turf-BookingService/pkg/ptr"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput = "некорректные параметры фильтра"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings
// Query параметры: startDate, endDate (YYYY-MM-DD), status,
// parentBookingId, includeInactive (true/false)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListBookingsRequest{
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if raw := query.Get("startDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid startDate: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &parsed
	}

	if raw := query.Get("endDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.logger.Warn("GET /bookings - Invalid endDate: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &parsed
	}

	if status := query.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	if parentID := query.Get("parentBookingId"); parentID != "" {
		req.ParentBookingID = ptr.Ptr(parentID)
	}

	resp, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput), errors.Is(err, bookings.ErrInvalidStatus):
			h.logger.Warn("GET /bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
