package list_expenses

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/Turf-BookingService/internal/api/handlers"
	"github.com/m04kA/Turf-BookingService/internal/service/expenses"
	"github.com/m04kA/Turf-BookingService/pkg/ptr"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput = "некорректные параметры фильтра"
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

// Handle GET /api/v1/expenses
// Query параметры: startDate, endDate (YYYY-MM-DD), category
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &expenses.ListExpensesRequest{}

	if raw := query.Get("startDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.logger.Warn("GET /expenses - Invalid startDate: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &parsed
	}

	if raw := query.Get("endDate"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.logger.Warn("GET /expenses - Invalid endDate: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &parsed
	}

	if category := query.Get("category"); category != "" {
		req.Category = ptr.Ptr(category)
	}

	resp, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, expenses.ErrInvalidInput):
			h.logger.Warn("GET /expenses - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("GET /expenses - Failed to list expenses: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
