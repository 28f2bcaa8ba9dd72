package get_day_slots

import (
	"net/http"
	"time"

	"github.com/m04kA/Turf-BookingService/internal/api/handlers"
	usecase "github.com/m04kA/Turf-BookingService/internal/usecase/get_day_slots"
)

const (
	msgMissingDate = "параметр date обязателен"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	provider SlotsProvider
	logger   Logger
}

func NewHandler(provider SlotsProvider, logger Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
	}
}

// SlotResponse один слот сетки в ответе API
type SlotResponse struct {
	StartTime       string `json:"startTime"` // "HH:MM"
	DurationMinutes int    `json:"durationMinutes"`
	Available       bool   `json:"available"`
}

// DaySlotsResponse HTTP response model
type DaySlotsResponse struct {
	Date  string         `json:"date"` // YYYY-MM-DD
	Slots []SlotResponse `json:"slots"`
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD
// Публичный эндпоинт: отдает только занятость слотов, без данных клиентов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("date")
	if raw == "" {
		h.logger.Warn("GET /slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse("2006-01-02", raw)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date: %q", raw)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	resp, err := h.provider.Execute(r.Context(), &usecase.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /slots - Failed to build slot grid: date=%s, error=%v", raw, err)
		handlers.RespondInternalError(w)
		return
	}

	slots := make([]SlotResponse, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = SlotResponse{
			StartTime:       slot.StartTime.String(),
			DurationMinutes: slot.DurationMinutes,
			Available:       slot.Available,
		}
	}

	handlers.RespondJSON(w, http.StatusOK, DaySlotsResponse{
		Date:  resp.Date.Format("2006-01-02"),
		Slots: slots,
	})
}
