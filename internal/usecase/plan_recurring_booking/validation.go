package plan_recurring_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/Turf-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Проверки выполняются до любого обращения к хранилищу (fail fast)
func validateRequest(req *Request) (domain.RecurringDays, error) {
	if strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return nil, fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	phone := strings.TrimSpace(req.CustomerPhone)
	if phone == "" {
		return nil, fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}
	if len(phone) < domain.MinCustomerPhoneLength {
		return nil, fmt.Errorf("%w: customerPhone must be at least %d characters", ErrInvalidInput, domain.MinCustomerPhoneLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	// Интервал первого бронирования
	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return nil, fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInterval)
	}
	if !req.EndTime.After(req.StartTime) {
		return nil, fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInterval)
	}
	if req.EndTime.Sub(req.StartTime) > 24*time.Hour {
		return nil, fmt.Errorf("%w: duration must not exceed 24 hours", ErrInvalidInterval)
	}

	// Правило повторения
	days, err := domain.ParseRecurringDays(req.RecurringDays)
	if err != nil {
		return nil, fmt.Errorf("%w: recurringDays must be a non-empty set of integers in [0,6]", ErrInvalidRecurrenceRule)
	}

	if req.RecurringEndDate.IsZero() || !req.RecurringEndDate.After(req.StartTime) {
		return nil, fmt.Errorf("%w: recurringEndDate must be after startTime", ErrInvalidRecurrenceRule)
	}

	maxEndDate := req.StartTime.AddDate(0, 0, domain.MaxRecurrenceDays)
	if req.RecurringEndDate.After(maxEndDate) {
		return nil, fmt.Errorf("%w: recurringEndDate must be within %d weeks of startTime",
			ErrRecurrenceRangeTooLarge, domain.MaxRecurrenceWeeks)
	}

	return days, nil
}

// resolveCharge применяет значение по умолчанию и валидирует стоимость
func resolveCharge(charge *float64) (float64, error) {
	if charge == nil {
		return domain.DefaultCharge, nil
	}
	if *charge <= domain.MinCharge {
		return 0, fmt.Errorf("%w: charge must be positive", ErrInvalidCharge)
	}
	if *charge > domain.MaxCharge {
		return 0, fmt.Errorf("%w: charge must not exceed %.0f", ErrInvalidCharge, domain.MaxCharge)
	}
	return *charge, nil
}
