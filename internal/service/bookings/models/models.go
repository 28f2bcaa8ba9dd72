package models

import (
	"errors"
	"time"

	"github.com/m04kA/Turf-BookingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// CancelBookingRequest запрос на отмену одного бронирования
type CancelBookingRequest struct {
	CancellationReason string
}

// UpdateStatusRequest запрос на обновление статуса бронирования
// Явная структура частичного обновления: изменяемые поля перечислены заранее
type UpdateStatusRequest struct {
	Status string
}

// CancelSeriesRequest запрос на отмену серии бронирований
type CancelSeriesRequest struct {
	ParentBookingID    string
	Scope              string // "all" или "future" (по умолчанию "future")
	CancellationReason string
}

// ListBookingsRequest запрос на получение списка бронирований с фильтрацией
type ListBookingsRequest struct {
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	ParentBookingID *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		ParentBookingID: r.ParentBookingID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID            int64   `json:"id"`
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	StartTime     string  `json:"startTime"` // ISO 8601
	EndTime       string  `json:"endTime"`   // ISO 8601
	Charge        float64 `json:"charge"`
	Status        string  `json:"status"`
	Notes         *string `json:"notes,omitempty"`

	ParentBookingID  *string `json:"parentBookingId,omitempty"`
	RecurringDays    []int   `json:"recurringDays,omitempty"`
	RecurringEndDate *string `json:"recurringEndDate,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CancelSeriesResponse ответ на отмену серии
type CancelSeriesResponse struct {
	Affected int64 `json:"affected"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		CustomerName:       b.CustomerName,
		CustomerPhone:      b.CustomerPhone,
		StartTime:          b.StartTime.Format(time.RFC3339),
		EndTime:            b.EndTime.Format(time.RFC3339),
		Charge:             b.Charge,
		Status:             string(b.Status),
		Notes:              b.Notes,
		ParentBookingID:    b.ParentBookingID,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Десериализуем набор дней правила повторения для отображения
	if b.RecurringDays != nil {
		if days, err := domain.ParseRecurringDaysString(*b.RecurringDays); err == nil {
			resp.RecurringDays = days.Ints()
		}
	}

	if b.RecurringEndDate != nil {
		endDateStr := b.RecurringEndDate.Format(time.RFC3339)
		resp.RecurringEndDate = &endDateStr
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	if bookings == nil {
		return &BookingListResponse{
			Bookings: []BookingResponse{},
		}
	}

	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
	}

	for i, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings[i] = *bookingResp
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	validStatuses := []domain.BookingStatus{
		domain.StatusConfirmed,
		domain.StatusCompleted,
		domain.StatusCancelled,
		domain.StatusNoShow,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}

// ToDomainCancelScope конвертирует строку в domain.CancelScope
// Пустая строка трактуется как "future" (значение по умолчанию)
func ToDomainCancelScope(scope string) (domain.CancelScope, error) {
	if scope == "" {
		return domain.CancelScopeFuture, nil
	}

	s := domain.CancelScope(scope)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
