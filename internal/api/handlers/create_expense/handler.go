package create_expense

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/Turf-BookingService/internal/api/handlers"
	"github.com/m04kA/Turf-BookingService/internal/api/middleware"
	"github.com/m04kA/Turf-BookingService/internal/service/expenses"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается ISO 8601"
	msgInvalidInput       = "некорректные данные расхода"
	msgUserNotResolved    = "не удалось определить пользователя"
)

type Handler struct {
	service ExpenseService
	logger  Logger
}

func NewHandler(service ExpenseService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CreateExpenseRequest HTTP request model
type CreateExpenseRequest struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Note     *string `json:"note,omitempty"`
	SpentAt  string  `json:"spentAt"` // ISO 8601
}

// Handle POST /api/v1/expenses
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		h.logger.Error("POST /expenses - User ID is missing in request context")
		handlers.RespondError(w, http.StatusInternalServerError, msgUserNotResolved)
		return
	}

	var req CreateExpenseRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /expenses - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	spentAt, err := time.Parse(time.RFC3339, req.SpentAt)
	if err != nil {
		h.logger.Warn("POST /expenses - Invalid spentAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	resp, err := h.service.Create(r.Context(), &expenses.CreateExpenseRequest{
		Category:  req.Category,
		Amount:    req.Amount,
		Note:      req.Note,
		SpentAt:   spentAt,
		CreatedBy: userID,
	})
	if err != nil {
		switch {
		case errors.Is(err, expenses.ErrInvalidInput):
			h.logger.Warn("POST /expenses - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /expenses - Failed to create expense: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /expenses - Expense created: expense_id=%d, user_id=%d", resp.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
