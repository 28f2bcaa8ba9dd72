package get_day_slots

import (
	"time"

	"github.com/m04kA/Turf-BookingService/internal/domain"
	"github.com/m04kA/Turf-BookingService/pkg/types"
)

// generateSlotGrid генерирует все слоты дня от открытия до закрытия
// с фиксированным шагом slotDuration. Слот, не помещающийся целиком
// до закрытия, отбрасывается
func generateSlotGrid(openTime, closeTime types.TimeString, slotDuration int) ([]types.TimeString, error) {
	if openTime.IsZero() || closeTime.IsZero() || !openTime.IsBefore(closeTime) {
		return nil, ErrInvalidGroundHours
	}

	slots := make([]types.TimeString, 0)
	current := openTime

	for current.IsBefore(closeTime) {
		slotEnd, err := current.AddMinutes(slotDuration)
		if err != nil {
			// Следующий слот пересёк бы полночь - сетка закончилась
			break
		}
		if slotEnd.IsAfter(closeTime) {
			break
		}

		slots = append(slots, current)

		current, err = current.AddMinutes(slotDuration)
		if err != nil {
			break
		}
	}

	return slots, nil
}

// markAvailability отмечает занятость каждого слота по активным бронированиям
// Используется общий полуоткрытый примитив пересечения интервалов
func markAvailability(
	grid []types.TimeString,
	date time.Time,
	slotDuration int,
	bookings []*domain.Booking,
) []Slot {
	result := make([]Slot, len(grid))

	for i, slotStart := range grid {
		interval := slotInterval(date, slotStart, slotDuration)

		available := true
		for _, b := range bookings {
			if !b.IsActive() {
				continue
			}
			if interval.Overlaps(b.Interval()) {
				available = false
				break
			}
		}

		result[i] = Slot{
			StartTime:       slotStart,
			DurationMinutes: slotDuration,
			Available:       available,
		}
	}

	return result
}

// slotInterval строит конкретный интервал слота на указанную дату
func slotInterval(date time.Time, start types.TimeString, durationMinutes int) domain.Interval {
	minutes, err := start.Minutes()
	if err != nil {
		// Сетка генерируется из валидированной конфигурации
		minutes = 0
	}

	startAt := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).
		Add(time.Duration(minutes) * time.Minute)

	return domain.Interval{
		Start: startAt,
		End:   startAt.Add(time.Duration(durationMinutes) * time.Minute),
	}
}
