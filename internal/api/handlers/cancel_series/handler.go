package cancel_series

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/Turf-BookingService/internal/api/handlers"
	"github.com/m04kA/Turf-BookingService/internal/service/bookings"
)

const (
	msgInvalidParentID    = "некорректный идентификатор серии"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры отмены серии"
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

// Handle POST /api/v1/bookings/series/{parentId}/cancel
// Операция идемпотентна: повторная отмена той же серии вернет affected=0
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	parentID := vars["parentId"]
	if parentID == "" {
		h.logger.Warn("POST /bookings/series/{parentId}/cancel - Empty parent booking ID")
		handlers.RespondBadRequest(w, msgInvalidParentID)
		return
	}

	// Декодируем body: оба поля опциональны, пустое тело допустимо
	var req CancelSeriesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Warn("POST /bookings/series/{parentId}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resp, err := h.service.CancelSeries(r.Context(), req.ToServiceRequest(parentID))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings/series/{parentId}/cancel - Invalid input: parent_booking_id=%s, error=%v",
				parentID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/series/{parentId}/cancel - Failed to cancel series: parent_booking_id=%s, error=%v",
				parentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/series/{parentId}/cancel - Series cancelled: parent_booking_id=%s, affected=%d",
		parentID, resp.Affected)
	handlers.RespondJSON(w, http.StatusOK, CancelSeriesResponse{
		Success:  true,
		Affected: resp.Affected,
	})
}
