package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Turf-BookingService/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

// SummaryRequest запрос на сводку за период
type SummaryRequest struct {
	StartDate time.Time
	EndDate   time.Time
}

// SummaryResponse сводка доходов и расходов площадки за период
type SummaryResponse struct {
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
	Revenue   float64 `json:"revenue"`  // сумма стоимости неотменённых бронирований
	Expenses  float64 `json:"expenses"` // сумма расходов за период
	Net       float64 `json:"net"`      // revenue - expenses

	TotalBookings     int `json:"totalBookings"`
	CompletedBookings int `json:"completedBookings"`
	CancelledBookings int `json:"cancelledBookings"`
	NoShowBookings    int `json:"noShowBookings"`
}

// Service сервис аналитики для админ-панели
// Простая линейная агрегация по выборке бронирований и расходов
type Service struct {
	bookingRepo BookingRepository
	expenseRepo ExpenseRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса аналитики
func NewService(bookingRepo BookingRepository, expenseRepo ExpenseRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// GetSummary возвращает сводку доходов и расходов за период
func (s *Service) GetSummary(ctx context.Context, req *SummaryRequest) (*SummaryResponse, error) {
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: endDate must be after startDate", ErrInvalidInput)
	}

	s.logger.Info("GetSummary: period=%s to %s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// Включаем отменённые, чтобы посчитать их отдельно
	bookingList, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		StartDate:       &req.StartDate,
		EndDate:         &req.EndDate,
		IncludeInactive: true,
	})
	if err != nil {
		s.logger.Error("GetSummary: booking repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSummary - booking repository error: %v", ErrInternal, err)
	}

	expenseList, err := s.expenseRepo.GetWithFilter(ctx, domain.ExpensesFilter{
		StartDate: &req.StartDate,
		EndDate:   &req.EndDate,
	})
	if err != nil {
		s.logger.Error("GetSummary: expense repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSummary - expense repository error: %v", ErrInternal, err)
	}

	resp := &SummaryResponse{
		StartDate: req.StartDate.Format(domain.DateFormat),
		EndDate:   req.EndDate.Format(domain.DateFormat),
	}

	for _, b := range bookingList {
		resp.TotalBookings++
		switch b.Status {
		case domain.StatusCancelled:
			resp.CancelledBookings++
		case domain.StatusNoShow:
			resp.NoShowBookings++
			resp.Revenue += b.Charge
		case domain.StatusCompleted:
			resp.CompletedBookings++
			resp.Revenue += b.Charge
		default:
			resp.Revenue += b.Charge
		}
	}

	for _, e := range expenseList {
		resp.Expenses += e.Amount
	}

	resp.Net = resp.Revenue - resp.Expenses

	s.logger.Info("GetSummary: bookings=%d, revenue=%.2f, expenses=%.2f, net=%.2f",
		resp.TotalBookings, resp.Revenue, resp.Expenses, resp.Net)

	return resp, nil
}
