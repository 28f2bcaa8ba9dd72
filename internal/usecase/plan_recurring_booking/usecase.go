package plan_recurring_booking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/Turf-BookingService/internal/domain"
	"github.com/m04kA/Turf-BookingService/pkg/ptr"
)

// UseCase use case планирования серии регулярных бронирований
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

// Execute выполняет use case создания серии регулярных бронирований
//
// Порядок строго соответствует политике fail fast: вся валидация выполняется
// до обращения к БД; проверка конфликтов и пакетная вставка выполняются
// в одной сериализуемой транзакции, поэтому частично созданная серия
// невозможна - при конкурирующей записи транзакция либо увидит новые строки
// на повторной проверке, либо будет прервана и откатится целиком
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("PlanRecurringBooking: customer=%q, start=%s, end=%s, days=%v, until=%s",
		req.CustomerName, req.StartTime.Format(domain.DateFormat+" "+domain.TimeFormat),
		req.EndTime.Format(domain.TimeFormat), req.RecurringDays,
		req.RecurringEndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных (до любого чтения/записи)
	days, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("PlanRecurringBooking: validation failed: %v", err)
		return nil, err
	}

	charge, err := resolveCharge(req.Charge)
	if err != nil {
		uc.logger.Warn("PlanRecurringBooking: charge validation failed: %v", err)
		return nil, err
	}

	// 2. Генерация кандидатов по правилу повторения
	now := uc.timeProvider.Now()
	intervals := generateOccurrences(req.StartTime, req.EndTime, days, req.RecurringEndDate, now)

	if len(intervals) == 0 {
		uc.logger.Warn("PlanRecurringBooking: no valid dates after filtering past occurrences")
		return nil, ErrNoValidDates
	}

	if len(intervals) > domain.MaxSeriesInstances {
		uc.logger.Warn("PlanRecurringBooking: %d instances exceed ceiling of %d",
			len(intervals), domain.MaxSeriesInstances)
		return nil, fmt.Errorf("%w: %d instances, maximum is %d",
			ErrTooManyInstances, len(intervals), domain.MaxSeriesInstances)
	}

	// Кандидаты дизъюнктны по построению - проверяем явно, а не полагаемся
	if err := assertDisjoint(intervals); err != nil {
		uc.logger.Error("PlanRecurringBooking: %v", err)
		return nil, err
	}

	// 3. Единый идентификатор серии
	parentBookingID := uuid.NewString()

	customerName := strings.TrimSpace(req.CustomerName)
	customerPhone := strings.TrimSpace(req.CustomerPhone)
	serializedDays := days.String()

	// 4. Проверка конфликтов + пакетная вставка в одной сериализуемой транзакции
	var created []*domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Один пакетный запрос по всем кандидатам сразу
		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, intervals)
		if err != nil {
			uc.logger.Error("PlanRecurringBooking: failed to check conflicts: %v", err)
			return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
		}

		if len(overlapping) > 0 {
			uc.logger.Warn("PlanRecurringBooking: %d existing bookings conflict with requested series",
				len(overlapping))
			return &ConflictError{Count: len(overlapping)}
		}

		// 4.2. Собираем бронирования серии
		bookings := make([]*domain.Booking, len(intervals))
		for i, iv := range intervals {
			bookings[i] = &domain.Booking{
				CustomerName:     customerName,
				CustomerPhone:    customerPhone,
				StartTime:        iv.Start,
				EndTime:          iv.End,
				Charge:           charge,
				Status:           domain.StatusConfirmed,
				Notes:            req.Notes,
				ParentBookingID:  ptr.Ptr(parentBookingID),
				RecurringDays:    ptr.Ptr(serializedDays),
				RecurringEndDate: ptr.Ptr(req.RecurringEndDate),
				CreatedBy:        req.CreatedBy,
			}
		}

		// 4.3. Вся серия одним INSERT - либо все строки, либо ни одной
		created, err = uc.bookingRepo.CreateMany(txCtx, bookings)
		if err != nil {
			uc.logger.Error("PlanRecurringBooking: failed to create series: %v", err)
			return fmt.Errorf("%w: failed to create series: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	dates := make([]time.Time, len(created))
	for i, b := range created {
		dates[i] = b.StartTime
	}

	uc.logger.Info("PlanRecurringBooking: created %d bookings, parent=%s",
		len(created), parentBookingID)

	return &Response{
		Count:           len(created),
		ParentBookingID: parentBookingID,
		Dates:           dates,
	}, nil
}
