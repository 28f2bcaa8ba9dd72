package delete_expense

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Turf-BookingService/internal/api/handlers"
	"github.com/m04kA/Turf-BookingService/internal/service/expenses"
)

const (
	msgInvalidExpenseID = "некорректный ID расхода"
	msgNotFound         = "расход не найден"
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

// Handle DELETE /api/v1/expenses/{expenseId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	expenseIDStr := vars["expenseId"]

	expenseID, err := strconv.ParseInt(expenseIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /expenses/{id} - Invalid expense ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidExpenseID)
		return
	}

	err = h.service.Delete(r.Context(), expenseID)
	if err != nil {
		switch {
		case errors.Is(err, expenses.ErrExpenseNotFound):
			h.logger.Warn("DELETE /expenses/{id} - Expense not found: expense_id=%d", expenseID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /expenses/{id} - Failed to delete expense: expense_id=%d, error=%v",
				expenseID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /expenses/{id} - Expense deleted: expense_id=%d", expenseID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
