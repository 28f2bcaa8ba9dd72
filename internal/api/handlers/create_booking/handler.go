package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/Turf-BookingService/internal/api/handlers"
	"github.com/m04kA/Turf-BookingService/internal/api/middleware"
	usecase "github.com/m04kA/Turf-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается ISO 8601"
	msgInvalidInput       = "некорректные данные клиента"
	msgInvalidInterval    = "некорректный интервал времени"
	msgInvalidCharge      = "некорректная стоимость бронирования"
	msgStartTimeInPast    = "время начала бронирования уже прошло"
	msgSlotNotAvailable   = "слот занят другим бронированием"
	msgUserNotResolved    = "не удалось определить пользователя"
)

type Handler struct {
	creator BookingCreator
	logger  Logger
}

func NewHandler(creator BookingCreator, logger Logger) *Handler {
	return &Handler{
		creator: creator,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Error("POST /bookings - User ID is missing in request context")
		handlers.RespondError(w, http.StatusInternalServerError, msgUserNotResolved)
		return
	}

	// Декодируем body
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Создаем бронирование
	resp, err := h.creator.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: start=%s, user_id=%d",
				req.StartTime, userID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, usecase.ErrStartTimeInPast):
			h.logger.Warn("POST /bookings - Start time in past: %v", err)
			handlers.RespondBadRequest(w, msgStartTimeInPast)

		case errors.Is(err, usecase.ErrInvalidInterval):
			h.logger.Warn("POST /bookings - Invalid interval: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, usecase.ErrInvalidCharge):
			h.logger.Warn("POST /bookings - Invalid charge: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCharge)

		case errors.Is(err, usecase.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, user_id=%d", resp.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
