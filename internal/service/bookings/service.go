package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/Turf-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Turf-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Turf-BookingService/internal/service/bookings/models"
)

// Service сервис для администрирования бронирований
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает список бронирований с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу, серии и включению отменённых
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("List: fetching bookings, includeInactive=%v", req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookingList, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookingList))
	return models.FromDomainBookingList(bookingList), nil
}

// Cancel отменяет одно бронирование с указанием причины
// Статус переводится в cancelled, строка сохраняется для истории
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s", bookingID, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status %q", ErrInvalidStatus, req.Status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// CancelSeries массово отменяет бронирования серии одним UPDATE
//
// scope = "all" отменяет все бронирования серии;
// scope = "future" (по умолчанию) - только начинающиеся не раньше текущего момента.
// Серия, которой не существует, не является ошибкой - возвращается 0.
// Повторный вызов идемпотентен: уже отменённые строки не затрагиваются
func (s *Service) CancelSeries(ctx context.Context, req *models.CancelSeriesRequest) (*models.CancelSeriesResponse, error) {
	if req.ParentBookingID == "" {
		s.logger.Warn("CancelSeries: empty parent booking id")
		return nil, fmt.Errorf("%w: parentBookingId is required", ErrInvalidInput)
	}

	scope, err := models.ToDomainCancelScope(req.Scope)
	if err != nil {
		s.logger.Warn("CancelSeries: invalid scope=%q", req.Scope)
		return nil, fmt.Errorf("%w: scope must be %q or %q", ErrInvalidInput,
			domain.CancelScopeAll, domain.CancelScopeFuture)
	}

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason exceeds %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	s.logger.Info("CancelSeries: cancelling series parent=%s, scope=%s", req.ParentBookingID, scope)

	var minStartTime *time.Time
	if scope == domain.CancelScopeFuture {
		now := s.timeProvider.Now()
		minStartTime = &now
	}

	affected, err := s.bookingRepo.CancelSeries(ctx, req.ParentBookingID, minStartTime, req.CancellationReason)
	if err != nil {
		s.logger.Error("CancelSeries: repository error for parent=%s: %v", req.ParentBookingID, err)
		return nil, fmt.Errorf("%w: CancelSeries - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CancelSeries: cancelled %d bookings in series parent=%s", affected, req.ParentBookingID)
	return &models.CancelSeriesResponse{Affected: affected}, nil
}
