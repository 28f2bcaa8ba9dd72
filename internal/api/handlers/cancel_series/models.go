package cancel_series

import (
	"github.com/m04kA/Turf-BookingService/internal/service/bookings/models"
)

// CancelSeriesRequest HTTP request model
type CancelSeriesRequest struct {
	Scope              *string `json:"scope,omitempty"` // "all" или "future", по умолчанию "future"
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelSeriesRequest) ToServiceRequest(parentBookingID string) *models.CancelSeriesRequest {
	scope := ""
	if r.Scope != nil {
		scope = *r.Scope
	}

	reason := ""
	if r.CancellationReason != nil {
		reason = *r.CancellationReason
	}

	return &models.CancelSeriesRequest{
		ParentBookingID:    parentBookingID,
		Scope:              scope,
		CancellationReason: reason,
	}
}

// CancelSeriesResponse HTTP response model
type CancelSeriesResponse struct {
	Success  bool  `json:"success"`
	Affected int64 `json:"affected"`
}
