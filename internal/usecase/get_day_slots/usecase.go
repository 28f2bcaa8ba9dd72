package get_day_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/Turf-BookingService/internal/domain"
	"github.com/m04kA/Turf-BookingService/pkg/ptr"
	"github.com/m04kA/Turf-BookingService/pkg/types"
)

// UseCase use case для получения публичной сетки слотов на день
type UseCase struct {
	bookingRepo  BookingRepository
	openTime     types.TimeString
	closeTime    types.TimeString
	slotDuration int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// Рабочие часы и шаг сетки приходят из конфигурации площадки
func NewUseCase(
	bookingRepo BookingRepository,
	openTime types.TimeString,
	closeTime types.TimeString,
	slotDurationMinutes int,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		openTime:     openTime,
		closeTime:    closeTime,
		slotDuration: slotDurationMinutes,
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDaySlots: date=%s", req.Date.Format(domain.DateFormat))

	if req.Date.IsZero() {
		uc.logger.Warn("GetDaySlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// 1. Генерируем сетку слотов из рабочих часов площадки
	grid, err := generateSlotGrid(uc.openTime, uc.closeTime, uc.slotDuration)
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to generate slot grid: %v", err)
		return nil, err
	}

	// 2. Получаем активные бронирования на весь день
	dayStart := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, req.Date.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		StartDate: ptr.Ptr(dayStart),
		EndDate:   ptr.Ptr(dayEnd),
	})
	if err != nil {
		uc.logger.Error("GetDaySlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 3. Отмечаем занятость каждого слота
	slots := markAvailability(grid, dayStart, uc.slotDuration, bookings)

	uc.logger.Info("GetDaySlots: generated %d slots for %s", len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  dayStart,
		Slots: slots,
	}, nil
}
