package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/Turf-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, now time.Time) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
	}
	if len(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName exceeds %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	phone := strings.TrimSpace(req.CustomerPhone)
	if phone == "" {
		return fmt.Errorf("%w: customerPhone is required", ErrInvalidInput)
	}
	if len(phone) < domain.MinCustomerPhoneLength {
		return fmt.Errorf("%w: customerPhone must be at least %d characters", ErrInvalidInput, domain.MinCustomerPhoneLength)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInterval)
	}
	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInterval)
	}
	if req.EndTime.Sub(req.StartTime) > 24*time.Hour {
		return fmt.Errorf("%w: duration must not exceed 24 hours", ErrInvalidInterval)
	}

	if !req.StartTime.After(now) {
		return ErrStartTimeInPast
	}

	return nil
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
