package create_booking

import (
	"time"

	usecase "github.com/m04kA/Turf-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName  string   `json:"customerName"`
	CustomerPhone string   `json:"customerPhone"`
	StartTime     string   `json:"startTime"` // ISO 8601
	EndTime       string   `json:"endTime"`   // ISO 8601
	Charge        *float64 `json:"charge,omitempty"`
	Notes         *string  `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *CreateBookingRequest) ToUseCaseRequest(createdBy int64) (*usecase.Request, error) {
	startTime, err := time.Parse(time.RFC3339, r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := time.Parse(time.RFC3339, r.EndTime)
	if err != nil {
		return nil, err
	}

	return &usecase.Request{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		StartTime:     startTime,
		EndTime:       endTime,
		Charge:        r.Charge,
		Notes:         r.Notes,
		CreatedBy:     createdBy,
	}, nil
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Charge        float64 `json:"charge"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *usecase.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:            resp.ID,
		CustomerName:  resp.CustomerName,
		CustomerPhone: resp.CustomerPhone,
		StartTime:     resp.StartTime.Format(time.RFC3339),
		EndTime:       resp.EndTime.Format(time.RFC3339),
		Charge:        resp.Charge,
		Status:        resp.Status,
		Notes:         resp.Notes,
	}
}
