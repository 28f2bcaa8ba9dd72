package plan_recurring_booking

import (
	"fmt"
	"time"

	"github.com/m04kA/Turf-BookingService/internal/domain"
)

// generateOccurrences генерирует интервалы серии по правилу повторения.
//
// Алгоритм: обходим календарные дни от дня первого бронирования до дня
// recurringEndDate включительно; на каждый день из набора recurringDays
// строим кандидата с тем же временем суток и длительностью, что у первого
// бронирования. Кандидаты, не лежащие строго в будущем относительно now,
// молча отбрасываются - это намеренная фильтрация, а не ошибка.
func generateOccurrences(
	startTime time.Time,
	endTime time.Time,
	days domain.RecurringDays,
	recurringEndDate time.Time,
	now time.Time,
) []domain.Interval {
	duration := endTime.Sub(startTime)
	startHour, startMinute := startTime.Hour(), startTime.Minute()

	day := truncateToDay(startTime)
	lastDay := truncateToDay(recurringEndDate)

	intervals := make([]domain.Interval, 0)

	for !day.After(lastDay) {
		if days.Contains(day.Weekday()) {
			candidate := time.Date(
				day.Year(), day.Month(), day.Day(),
				startHour, startMinute, 0, 0,
				day.Location(),
			)
			if candidate.After(now) {
				intervals = append(intervals, domain.Interval{
					Start: candidate,
					End:   candidate.Add(duration),
				})
			}
		}
		day = day.AddDate(0, 0, 1)
	}

	return intervals
}

// assertDisjoint проверяет, что кандидаты серии не пересекаются между собой.
// По построению это невозможно (разные календарные дни, одинаковое время
// суток, длительность не больше суток), поэтому нарушение - внутренняя ошибка
func assertDisjoint(intervals []domain.Interval) error {
	for i := 1; i < len(intervals); i++ {
		if intervals[i-1].Overlaps(intervals[i]) {
			return fmt.Errorf("%w: generated occurrences overlap each other (%s and %s)",
				ErrInternal, intervals[i-1].Start, intervals[i].Start)
		}
	}
	return nil
}

// truncateToDay обнуляет время, оставляя только дату
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
