package create_recurring_booking

import (
	"time"

	"github.com/m04kA/Turf-BookingService/internal/usecase/plan_recurring_booking"
)

// CreateRecurringBookingRequest HTTP request model
type CreateRecurringBookingRequest struct {
	CustomerName     string   `json:"customerName"`
	CustomerPhone    string   `json:"customerPhone"`
	StartTime        string   `json:"startTime"` // ISO 8601
	EndTime          string   `json:"endTime"`   // ISO 8601
	RecurringDays    []int    `json:"recurringDays"`
	RecurringEndDate string   `json:"recurringEndDate"` // ISO 8601
	Charge           *float64 `json:"charge,omitempty"`
	Notes            *string  `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase.
// Времена парсятся как ISO 8601 с таймзоной.
func (r *CreateRecurringBookingRequest) ToUseCaseRequest(createdBy int64) (*plan_recurring_booking.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	recurringEndDate, err := time.Parse(time.RFC3339, r.RecurringEndDate)
	if err != nil {
		return nil, err
	}

	return &plan_recurring_booking.Request{
		CustomerName:     r.CustomerName,
		CustomerPhone:    r.CustomerPhone,
		StartTime:        startTime,
		EndTime:          endTime,
		RecurringDays:    r.RecurringDays,
		RecurringEndDate: recurringEndDate,
		Charge:           r.Charge,
		Notes:            r.Notes,
		CreatedBy:        createdBy,
	}, nil
}

// CreateRecurringBookingResponse HTTP response model
type CreateRecurringBookingResponse struct {
	Success         bool     `json:"success"`
	Bookings        int      `json:"bookings"`
	ParentBookingID string   `json:"parentBookingId"`
	Dates           []string `json:"dates"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *plan_recurring_booking.Response) *CreateRecurringBookingResponse {
	dates := make([]string, len(resp.Dates))
	for i, d := range resp.Dates {
		dates[i] = d.Format(time.RFC3339)
	}

	return &CreateRecurringBookingResponse{
		Success:         true,
		Bookings:        resp.Count,
		ParentBookingID: resp.ParentBookingID,
		Dates:           dates,
	}
}
