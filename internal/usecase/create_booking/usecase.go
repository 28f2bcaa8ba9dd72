package create_booking

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/Turf-BookingService/internal/domain"
)

// UseCase use case для создания одиночного бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка конфликта и вставка выполняются в одной сериализуемой транзакции
// тем же примитивом пересечения, что и при создании серии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%q, start=%s, end=%s",
		req.CustomerName,
		req.StartTime.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.EndTime.Format(domain.TimeFormat))

	// 1. Валидация входных данных
	now := uc.timeProvider.Now()
	if err := validateRequest(req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	charge, err := resolveCharge(req.Charge)
	if err != nil {
		uc.logger.Warn("CreateBooking: charge validation failed: %v", err)
		return nil, err
	}

	interval := domain.Interval{Start: req.StartTime, End: req.EndTime}

	var result *domain.Booking

	// 2. Проверка конфликта + вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, []domain.Interval{interval})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("CreateBooking: slot occupied by %d existing bookings", len(overlapping))
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			CustomerName:  strings.TrimSpace(req.CustomerName),
			CustomerPhone: strings.TrimSpace(req.CustomerPhone),
			StartTime:     req.StartTime,
			EndTime:       req.EndTime,
			Charge:        charge,
			Status:        domain.StatusConfirmed,
			Notes:         req.Notes,
			CreatedBy:     req.CreatedBy,
		}

		result, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:            result.ID,
		CustomerName:  result.CustomerName,
		CustomerPhone: result.CustomerPhone,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		Charge:        result.Charge,
		Status:        string(result.Status),
		Notes:         result.Notes,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}
