package create_recurring_booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/Turf-BookingService/internal/api/handlers"
	"github.com/m04kA/Turf-BookingService/internal/api/middleware"
	"github.com/m04kA/Turf-BookingService/internal/usecase/plan_recurring_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается ISO 8601"
	msgInvalidInput       = "некорректные данные клиента"
	msgInvalidInterval    = "некорректный интервал времени"
	msgInvalidRecurrence  = "некорректное правило повторения"
	msgRangeTooLarge      = "период повторения превышает 26 недель"
	msgInvalidCharge      = "некорректная стоимость бронирования"
	msgNoValidDates       = "в указанном периоде нет подходящих дат"
	msgTooManyInstances   = "серия превышает лимит в 100 бронирований"
	msgUserNotResolved    = "не удалось определить пользователя"
)

type Handler struct {
	planner RecurringBookingPlanner
	logger  Logger
}

func NewHandler(planner RecurringBookingPlanner, logger Logger) *Handler {
	return &Handler{
		planner: planner,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/recurring
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Error("POST /bookings/recurring - User ID is missing in request context")
		handlers.RespondError(w, http.StatusInternalServerError, msgUserNotResolved)
		return
	}

	// Декодируем body
	var req CreateRecurringBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/recurring - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в модель usecase
	ucReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings/recurring - Invalid time format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	// Планируем серию
	resp, err := h.planner.Execute(r.Context(), ucReq)
	if err != nil {
		var conflictErr *plan_recurring_booking.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings/recurring - Slot conflict: overlapping=%d, user_id=%d",
				conflictErr.Count, userID)
			handlers.RespondConflict(w, fmt.Sprintf(
				"конфликт со слотами: найдено пересечений с существующими бронированиями: %d",
				conflictErr.Count))

		case errors.Is(err, plan_recurring_booking.ErrSlotConflict):
			h.logger.Warn("POST /bookings/recurring - Slot conflict: user_id=%d", userID)
			handlers.RespondConflict(w, "конфликт со слотами существующих бронирований")

		case errors.Is(err, plan_recurring_booking.ErrInvalidInterval):
			h.logger.Warn("POST /bookings/recurring - Invalid interval: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, plan_recurring_booking.ErrRecurrenceRangeTooLarge):
			h.logger.Warn("POST /bookings/recurring - Recurrence range too large: %v", err)
			handlers.RespondBadRequest(w, msgRangeTooLarge)

		case errors.Is(err, plan_recurring_booking.ErrInvalidRecurrenceRule):
			h.logger.Warn("POST /bookings/recurring - Invalid recurrence rule: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRecurrence)

		case errors.Is(err, plan_recurring_booking.ErrInvalidCharge):
			h.logger.Warn("POST /bookings/recurring - Invalid charge: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCharge)

		case errors.Is(err, plan_recurring_booking.ErrNoValidDates):
			h.logger.Warn("POST /bookings/recurring - No valid dates: %v", err)
			handlers.RespondBadRequest(w, msgNoValidDates)

		case errors.Is(err, plan_recurring_booking.ErrTooManyInstances):
			h.logger.Warn("POST /bookings/recurring - Too many instances: %v", err)
			handlers.RespondBadRequest(w, msgTooManyInstances)

		case errors.Is(err, plan_recurring_booking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/recurring - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/recurring - Failed to plan series: user_id=%d, error=%v",
				userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/recurring - Series created: parent_booking_id=%s, bookings=%d, user_id=%d",
		resp.ParentBookingID, resp.Count, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(resp))
}
